package greet

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/go-playground/validator/v10"
)

var ErrNoLambdaContext = errors.New("invocation: no lambda context in request context")

// Invocation is the runtime metadata of the current call. A nil field is an
// absent attribute; an empty string is a present one.
type Invocation struct {
	RequestID       *string `json:"aws_request_id" validate:"required"`
	FunctionName    *string `json:"function_name" validate:"required"`
	FunctionVersion *string `json:"function_version" validate:"required"`
}

// NewInvocation returns an Invocation with every attribute present.
func NewInvocation(requestID, functionName, functionVersion string) *Invocation {
	return &Invocation{
		RequestID:       &requestID,
		FunctionName:    &functionName,
		FunctionVersion: &functionVersion,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// InvocationFromContext reads the invocation metadata the Lambda runtime
// attaches to ctx. Function identity comes from the runtime environment.
func InvocationFromContext(ctx context.Context) (*Invocation, error) {
	lc, ok := lambdacontext.FromContext(ctx)
	if !ok || lc == nil {
		return nil, ErrNoLambdaContext
	}
	return NewInvocation(lc.AwsRequestID, lambdacontext.FunctionName, lambdacontext.FunctionVersion), nil
}

// Validate reports the first missing attribute.
func (inv *Invocation) Validate() error {
	if inv == nil {
		return errors.New("invocation: context is nil")
	}
	if err := validate.Struct(inv); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invocation: missing attribute %q", verrs[0].Field())
		}
		return fmt.Errorf("invocation: %w", err)
	}
	return nil
}
