package server

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aura-studio/hello/greet"
	"github.com/aura-studio/hello/localserver"
	yaml "gopkg.in/yaml.v2"
)

const (
	ModeLambda = "lambda"
	ModeHTTP   = "http"
)

type yamlServerConfig struct {
	Lambda string `yaml:"lambda"`
	Greet  any    `yaml:"greet"`
	HTTP   any    `yaml:"http"`
}

type Option interface {
	Apply(*Options)
}

type Options struct {
	Lambda string
	Greet  []greet.Option
	Http   []localserver.Option
}

type OptionFunc func(*Options)

func (f OptionFunc) Apply(o *Options) { f(o) }

type serveConfigOption struct {
	lambda   string
	greetOpt greet.Option
	httpOpt  localserver.Option
}

func (o serveConfigOption) Apply(opts *Options) {
	if o.lambda != "" {
		opts.Lambda = o.lambda
	}
	if o.greetOpt != nil {
		opts.Greet = append(opts.Greet, o.greetOpt)
	}
	if o.httpOpt != nil {
		opts.Http = append(opts.Http, o.httpOpt)
	}
}

func NewOptions(opts ...Option) *Options {
	options := &Options{Lambda: ModeLambda}
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(options)
		}
	}
	return options
}

func WithMode(mode string) Option {
	return OptionFunc(func(o *Options) {
		o.Lambda = mode
	})
}

func WithGreetOptions(opts ...greet.Option) Option {
	return OptionFunc(func(o *Options) {
		o.Greet = append(o.Greet, opts...)
	})
}

func WithHttpOptions(opts ...localserver.Option) Option {
	return OptionFunc(func(o *Options) {
		o.Http = append(o.Http, opts...)
	})
}

// WithServeConfig parses YAML bytes following lambda.yaml structure.
// It panics if the YAML is invalid or names an unknown mode.
func WithServeConfig(yamlBytes []byte) Option {
	var cfg yamlServerConfig
	if err := yaml.Unmarshal(yamlBytes, &cfg); err != nil {
		panic(fmt.Errorf("server.WithServeConfig: %w", err))
	}

	switch cfg.Lambda {
	case "", ModeLambda, ModeHTTP:
	default:
		panic(fmt.Errorf("server.WithServeConfig: unrecognized mode: %q", cfg.Lambda))
	}

	var greetOpt greet.Option
	if cfg.Greet != nil {
		b, err := yaml.Marshal(cfg.Greet)
		if err != nil {
			panic(fmt.Errorf("server.WithServeConfig: %w", err))
		}
		greetOpt = greet.WithConfig(b)
	}

	var httpOpt localserver.Option
	if cfg.HTTP != nil {
		b, err := yaml.Marshal(cfg.HTTP)
		if err != nil {
			panic(fmt.Errorf("server.WithServeConfig: %w", err))
		}
		httpOpt = localserver.WithConfig(b)
	}

	return serveConfigOption{
		lambda:   cfg.Lambda,
		greetOpt: greetOpt,
		httpOpt:  httpOpt,
	}
}

// WithServeConfigFile loads a YAML file and applies it as Option.
func WithServeConfigFile(path string) Option {
	b, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Errorf("server.WithServeConfigFile(%s): %w", path, err))
	}
	return WithServeConfig(b)
}

// DefaultServeConfigCandidates returns relative paths that will be checked (in order)
// when searching for a default server config.
func DefaultServeConfigCandidates() []string {
	return []string{
		"lambda.yaml",
		"lambda.yml",
		"server.yaml",
		"server.yml",
		"config.yaml",
		"config.yml",
	}
}

// FindDefaultServeConfigFile searches for a server config file in a small set of
// well-known locations (CWD then executable directory).
func FindDefaultServeConfigFile() (string, error) {
	candidates := DefaultServeConfigCandidates()

	dirs := []string{"."}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}

	for _, dir := range dirs {
		for _, rel := range candidates {
			p := rel
			if dir != "." {
				p = filepath.Join(dir, rel)
			}
			if st, err := os.Stat(p); err == nil && !st.IsDir() {
				return p, nil
			}
		}
	}

	return "", fmt.Errorf("server config not found (expected %v)", candidates)
}

// WithDefaultServeConfigFile loads the default server config file when one
// exists. Without one the built-in defaults apply.
func WithDefaultServeConfigFile() Option {
	p, err := FindDefaultServeConfigFile()
	if err != nil {
		return nil
	}
	return WithServeConfigFile(p)
}
