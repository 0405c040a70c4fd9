package localserver

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type yamlConfig struct {
	Address  string `yaml:"address"`
	Debug    bool   `yaml:"debug"`
	Function struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"function"`
}

func optionFromConfigBytes(b []byte) (Option, error) {
	var cfg yamlConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}

	return HttpOption(func(o *Options) {
		if cfg.Address != "" {
			o.Address = cfg.Address
		}
		o.DebugMode = cfg.Debug
		if cfg.Function.Name != "" {
			o.FunctionName = cfg.Function.Name
		}
		if cfg.Function.Version != "" {
			o.FunctionVersion = cfg.Function.Version
		}
	}), nil
}

// WithConfig parses YAML bytes following the http section of lambda.yaml and applies it to Options.
// It panics if the YAML is invalid.
func WithConfig(yamlBytes []byte) Option {
	opt, err := optionFromConfigBytes(yamlBytes)
	if err != nil {
		return HttpOption(func(*Options) {
			panic(fmt.Errorf("localserver.WithConfig: %w", err))
		})
	}
	return opt
}

// WithConfigFile loads a YAML file and applies it to Options.
// It panics if the file cannot be read or YAML is invalid.
func WithConfigFile(path string) Option {
	b, err := os.ReadFile(path)
	if err != nil {
		return HttpOption(func(*Options) {
			panic(fmt.Errorf("localserver.WithConfigFile(%s): %w", path, err))
		})
	}
	return WithConfig(b)
}
