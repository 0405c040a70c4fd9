package invokecli

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aura-studio/hello/greet"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/tidwall/gjson"
)

type mockLambdaClient struct {
	responsePayload []byte
	functionError   *string
	invokeError     error
	delay           time.Duration

	mu        sync.Mutex
	lastInput *lambda.InvokeInput
	deadline  bool
}

func (m *mockLambdaClient) Invoke(ctx context.Context, params *lambda.InvokeInput,
	optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	m.mu.Lock()
	m.lastInput = params
	_, m.deadline = ctx.Deadline()
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if m.invokeError != nil {
		return nil, m.invokeError
	}

	return &lambda.InvokeOutput{
		Payload:       m.responsePayload,
		FunctionError: m.functionError,
	}, nil
}

func envelopePayload(t *testing.T, env *greet.Envelope) []byte {
	t.Helper()
	b, err := json.Marshal(env)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestCall_Success(t *testing.T) {
	want := &greet.Envelope{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "application/json", "Access-Control-Allow-Origin": "*"},
		Body:       `{"message":"Hello from AWS Lambda!","timestamp":"req-1"}`,
	}
	mock := &mockLambdaClient{responsePayload: envelopePayload(t, want)}
	c := NewClient(WithLambdaClient(mock), WithFunctionName("hello"), WithQualifier("live"))

	env, err := c.Call(context.Background(), []byte(`{"test":"data"}`))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if env.StatusCode != 200 || env.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Errorf("envelope = %+v", env)
	}
	if gjson.Get(env.Body, "message").String() != greet.Greeting {
		t.Errorf("body = %s", env.Body)
	}

	in := mock.lastInput
	if aws.ToString(in.FunctionName) != "hello" || aws.ToString(in.Qualifier) != "live" {
		t.Errorf("input = %+v", in)
	}
	if in.InvocationType != types.InvocationTypeRequestResponse {
		t.Errorf("InvocationType = %v", in.InvocationType)
	}
	if string(in.Payload) != `{"test":"data"}` {
		t.Errorf("Payload = %s", in.Payload)
	}
	if !mock.deadline {
		t.Errorf("default timeout not applied")
	}
}

func TestCall_EmptyEventDefaultsToObject(t *testing.T) {
	mock := &mockLambdaClient{responsePayload: []byte(`{"statusCode":200,"headers":{},"body":"{}"}`)}
	c := NewClient(WithLambdaClient(mock), WithFunctionName("hello"))

	if _, err := c.Call(context.Background(), nil); err != nil {
		t.Fatalf("Call: %v", err)
	}
	if string(mock.lastInput.Payload) != "{}" {
		t.Errorf("Payload = %s, want {}", mock.lastInput.Payload)
	}
}

func TestCall_InvalidEvent(t *testing.T) {
	mock := &mockLambdaClient{}
	c := NewClient(WithLambdaClient(mock))

	if _, err := c.Call(context.Background(), []byte("{nope")); err == nil {
		t.Errorf("expected error for invalid JSON")
	}
	if mock.lastInput != nil {
		t.Errorf("lambda invoked with invalid event")
	}
}

func TestCall_NoClient(t *testing.T) {
	if _, err := NewClient().Call(context.Background(), nil); !errors.Is(err, ErrNoLambdaClient) {
		t.Errorf("err = %v, want %v", err, ErrNoLambdaClient)
	}
}

func TestCall_InvokeError(t *testing.T) {
	cause := errors.New("throttled")
	c := NewClient(WithLambdaClient(&mockLambdaClient{invokeError: cause}))

	if _, err := c.Call(context.Background(), nil); !errors.Is(err, cause) {
		t.Errorf("err = %v, want wrapping %v", err, cause)
	}
}

func TestCall_FunctionError(t *testing.T) {
	c := NewClient(WithLambdaClient(&mockLambdaClient{
		functionError:   aws.String("Unhandled"),
		responsePayload: []byte(`{"errorMessage":"Runtime exited","errorType":"Runtime.ExitError"}`),
	}))

	_, err := c.Call(context.Background(), nil)
	var fe *FunctionError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FunctionError", err)
	}
	if fe.Kind != "Unhandled" || fe.Error() != "invokecli: function error (Unhandled): Runtime exited" {
		t.Errorf("FunctionError = %q", fe.Error())
	}
}

func TestCall_Timeout(t *testing.T) {
	c := NewClient(
		WithLambdaClient(&mockLambdaClient{delay: time.Second}),
		WithDefaultTimeout(10*time.Millisecond),
	)

	if _, err := c.Call(context.Background(), nil); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestCall_UndecodablePayload(t *testing.T) {
	c := NewClient(WithLambdaClient(&mockLambdaClient{responsePayload: []byte(`"just a string"`)}))

	if _, err := c.Call(context.Background(), nil); err == nil {
		t.Errorf("expected decode error")
	}
}

// For any envelope the function returns, Call hands back the same envelope.
func TestCall_RoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(42)

	properties := gopter.NewProperties(parameters)

	properties.Property("Call: envelope decoded unchanged", prop.ForAll(
		func(status int, body string) bool {
			want := &greet.Envelope{
				StatusCode: status,
				Headers:    map[string]string{"Content-Type": "application/json"},
				Body:       body,
			}
			b, err := json.Marshal(want)
			if err != nil {
				return false
			}
			c := NewClient(WithLambdaClient(&mockLambdaClient{responsePayload: b}))

			got, err := c.Call(context.Background(), nil)
			if err != nil {
				t.Logf("Call: %v", err)
				return false
			}
			return got.StatusCode == want.StatusCode &&
				got.Body == want.Body &&
				got.Headers["Content-Type"] == "application/json"
		},
		gen.OneConstOf(200, 500),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestBuildEvent(t *testing.T) {
	event, err := BuildEvent("", map[string]string{"test": "data", "nested.key": "v"})
	if err != nil {
		t.Fatalf("BuildEvent: %v", err)
	}
	if gjson.Get(event, "test").String() != "data" || gjson.Get(event, "nested.key").String() != "v" {
		t.Errorf("event = %s", event)
	}

	event, err = BuildEvent(`{"keep":1}`, map[string]string{"add": "x"})
	if err != nil {
		t.Fatalf("BuildEvent: %v", err)
	}
	if gjson.Get(event, "keep").Int() != 1 || gjson.Get(event, "add").String() != "x" {
		t.Errorf("event = %s", event)
	}

	if _, err := BuildEvent("{", nil); err == nil {
		t.Errorf("expected error for invalid base")
	}
}
