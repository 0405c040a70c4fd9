// Package invokecli calls the deployed handler through the Lambda Invoke
// API and decodes the envelope it returns.
package invokecli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aura-studio/hello/greet"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var ErrNoLambdaClient = errors.New("invokecli: lambda client is not configured")

// FunctionError is returned when the function itself failed and the
// runtime reported it instead of an envelope.
type FunctionError struct {
	Kind    string
	Payload string
}

func (e *FunctionError) Error() string {
	msg := gjson.Get(e.Payload, "errorMessage").String()
	if msg == "" {
		msg = e.Payload
	}
	return fmt.Sprintf("invokecli: function error (%s): %s", e.Kind, msg)
}

type Client struct {
	*Options
}

func NewClient(opts ...Option) *Client {
	return &Client{
		Options: NewOptions(opts...),
	}
}

// Call invokes the function synchronously with event, which must be JSON.
func (c *Client) Call(ctx context.Context, event []byte) (*greet.Envelope, error) {
	if c.LambdaClient == nil {
		return nil, ErrNoLambdaClient
	}
	if len(event) == 0 {
		event = []byte("{}")
	}
	if !gjson.ValidBytes(event) {
		return nil, fmt.Errorf("invokecli: event is not valid JSON: %q", event)
	}

	if _, ok := ctx.Deadline(); !ok && c.DefaultTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.DefaultTimeout)
		defer cancel()
	}

	input := &lambda.InvokeInput{
		FunctionName:   aws.String(c.FunctionName),
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        event,
	}
	if c.Qualifier != "" {
		input.Qualifier = aws.String(c.Qualifier)
	}

	output, err := c.LambdaClient.Invoke(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("invokecli: lambda invoke failed: %w", err)
	}
	if output.FunctionError != nil {
		return nil, &FunctionError{Kind: aws.ToString(output.FunctionError), Payload: string(output.Payload)}
	}

	var env greet.Envelope
	if err := json.Unmarshal(output.Payload, &env); err != nil {
		return nil, fmt.Errorf("invokecli: decode envelope: %w", err)
	}

	return &env, nil
}

// BuildEvent applies path=value assignments to a JSON document, so nested
// events can be written as "a.b=1" on the command line.
func BuildEvent(base string, assignments map[string]string) (string, error) {
	if base == "" {
		base = "{}"
	}
	if !gjson.Valid(base) {
		return "", fmt.Errorf("invokecli: base event is not valid JSON: %q", base)
	}

	event := base
	for path, value := range assignments {
		var err error
		event, err = sjson.Set(event, path, value)
		if err != nil {
			return "", fmt.Errorf("invokecli: set %q: %w", path, err)
		}
	}
	return event, nil
}
