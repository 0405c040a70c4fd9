package greet

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type yamlConfig struct {
	Mode struct {
		Debug bool `yaml:"debug"`
	} `yaml:"mode"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func optionFromConfig(cfg yamlConfig) Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = cfg.Mode.Debug
		if cfg.Log.Level != "" {
			o.LogLevel = cfg.Log.Level
		}
		if cfg.Log.Format != "" {
			switch cfg.Log.Format {
			case LogFormatText, LogFormatJSON:
				o.LogFormat = cfg.Log.Format
			default:
				panic(fmt.Errorf("greet: unrecognized log format: %q", cfg.Log.Format))
			}
		}
	})
}

func optionFromConfigBytes(b []byte) (Option, error) {
	var cfg yamlConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}

	return optionFromConfig(cfg), nil
}

// WithConfig parses YAML bytes following greet.yaml structure and applies it to Options.
// It panics if the YAML is invalid.
func WithConfig(yamlBytes []byte) Option {
	opt, err := optionFromConfigBytes(yamlBytes)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("greet.WithConfig: %w", err))
		})
	}
	return opt
}

// WithConfigFile loads a YAML file and applies it to Options.
// It panics if the file cannot be read or YAML is invalid.
func WithConfigFile(path string) Option {
	b, err := os.ReadFile(path)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("greet.WithConfigFile(%s): %w", path, err))
		})
	}
	return WithConfig(b)
}
