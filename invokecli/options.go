package invokecli

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/mohae/deepcopy"
)

// LambdaClient is the subset of the Lambda API the client uses.
type LambdaClient interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput,
		optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

type Options struct {
	LambdaClient   LambdaClient
	FunctionName   string
	Qualifier      string
	DefaultTimeout time.Duration
}

type Option interface {
	Apply(o *Options)
}

type OptionFunc func(*Options)

func (f OptionFunc) Apply(o *Options) { f(o) }

var defaultOptions = &Options{
	DefaultTimeout: 30 * time.Second,
}

func NewOptions(opts ...Option) *Options {
	o := deepcopy.Copy(defaultOptions).(*Options)
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(o)
		}
	}
	return o
}

func WithLambdaClient(client LambdaClient) Option {
	return OptionFunc(func(o *Options) {
		o.LambdaClient = client
	})
}

func WithFunctionName(name string) Option {
	return OptionFunc(func(o *Options) {
		o.FunctionName = name
	})
}

// WithQualifier selects a version or alias of the function.
func WithQualifier(qualifier string) Option {
	return OptionFunc(func(o *Options) {
		o.Qualifier = qualifier
	})
}

// WithDefaultTimeout bounds calls whose context has no deadline.
func WithDefaultTimeout(timeout time.Duration) Option {
	return OptionFunc(func(o *Options) {
		o.DefaultTimeout = timeout
	})
}
