package localserver

import (
	"github.com/mohae/deepcopy"
	"github.com/sirupsen/logrus"
)

type Option interface {
	Apply(o *Options)
}

type HttpOption func(*Options)

func (f HttpOption) Apply(o *Options) { f(o) }

type Options struct {
	Address         string
	DebugMode       bool
	FunctionName    string
	FunctionVersion string
	Logger          *logrus.Logger
}

var defaultOptions = &Options{
	Address:         ":8080",
	DebugMode:       false,
	FunctionName:    "hello-local",
	FunctionVersion: "$LATEST",
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

func WithAddress(addr string) Option {
	return HttpOption(func(o *Options) {
		o.Address = addr
	})
}

func WithDebugMode() Option {
	return HttpOption(func(o *Options) {
		o.DebugMode = true
	})
}

// WithFunction sets the identity reported to the handler for every
// emulated invocation.
func WithFunction(name string, version string) Option {
	return HttpOption(func(o *Options) {
		o.FunctionName = name
		o.FunctionVersion = version
	})
}

func WithLogger(l *logrus.Logger) Option {
	return HttpOption(func(o *Options) {
		o.Logger = l
	})
}
