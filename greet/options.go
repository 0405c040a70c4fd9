package greet

import (
	"github.com/aura-studio/hello/envconf"
	"github.com/mohae/deepcopy"
	"github.com/sirupsen/logrus"
)

type Option interface {
	Apply(o *Options)
}

type OptionFunc func(*Options)

func (f OptionFunc) Apply(o *Options) { f(o) }

type Options struct {
	DebugMode bool
	LogLevel  string
	LogFormat string
	Logger    *logrus.Logger
	Source    envconf.Source
}

var defaultOptions = &Options{
	DebugMode: false,
	LogLevel:  "info",
	LogFormat: LogFormatText,
}

func NewOptions(opts ...Option) *Options {
	options := deepcopy.Copy(defaultOptions).(*Options)
	options.init(opts...)
	return options
}

func (o *Options) init(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(o)
		}
	}
}

func WithDebugMode() Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = true
	})
}

func WithLogLevel(level string) Option {
	return OptionFunc(func(o *Options) {
		o.LogLevel = level
	})
}

func WithLogFormat(format string) Option {
	return OptionFunc(func(o *Options) {
		o.LogFormat = format
	})
}

// WithLogger replaces the logger built from LogLevel and LogFormat.
func WithLogger(l *logrus.Logger) Option {
	return OptionFunc(func(o *Options) {
		o.Logger = l
	})
}

// WithConfigSource sets where ENVIRONMENT and PROJECT are read from.
// The default reads the process environment on every call.
func WithConfigSource(s envconf.Source) Option {
	return OptionFunc(func(o *Options) {
		o.Source = s
	})
}
