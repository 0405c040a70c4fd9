// Package greet implements the Lambda request handler: it echoes the
// configured environment and the invocation metadata back as a JSON
// envelope, and turns every failure into a 500 envelope.
package greet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aura-studio/hello/envconf"
	"github.com/sirupsen/logrus"
)

// Engine is safe for concurrent use; it holds no per-call state.
type Engine struct {
	*Options
	log *logrus.Entry
}

type resolver func() (*Invocation, error)

// NewEngine panics if the configured log level or format is invalid.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		Options: NewOptions(opts...),
	}

	if e.Source == nil {
		e.Source = envconf.NewReader()
	}

	logger, err := e.BuildLogger()
	if err != nil {
		panic(err)
	}
	e.log = logger.WithField("scope", "hello.greet")

	return e
}

// Invoke is the function registered with the Lambda runtime. The returned
// error is always nil: failures are reported through the envelope.
func (e *Engine) Invoke(ctx context.Context, event json.RawMessage) (*Envelope, error) {
	return e.handle(event, func() (*Invocation, error) {
		return InvocationFromContext(ctx)
	}), nil
}

// Handle runs one invocation with explicit metadata.
func (e *Engine) Handle(event any, inv *Invocation) *Envelope {
	return e.handle(event, func() (*Invocation, error) {
		return inv, nil
	})
}

func (e *Engine) handle(event any, resolve resolver) *Envelope {
	var (
		entry = e.log
		env   *Envelope
	)

	err := doSafe(func() error {
		data, err := marshal(event)
		if err != nil {
			return fail(StageEvent, err)
		}

		inv, invErr := resolve()
		if inv != nil && inv.RequestID != nil {
			entry = entry.WithField("request_id", *inv.RequestID)
		}
		entry.Infof("Received event: %s", data)
		if invErr != nil {
			return fail(StageInvocation, invErr)
		}

		env, err = e.build(inv)
		return err
	})
	if err != nil {
		var f *Failure
		if !errors.As(err, &f) {
			f = fail(StageBody, err)
		}
		entry.WithField("stage", f.Stage).Errorf("Error processing request: %s", f.Error())
		env = failureEnvelope(f)
	}

	if e.DebugMode {
		entry.WithField("status", env.StatusCode).Debugf("Response: %s", env.Body)
	}

	return env
}

func (e *Engine) build(inv *Invocation) (*Envelope, error) {
	environment := e.Source.Environment()
	project := e.Source.Project()

	if err := inv.Validate(); err != nil {
		return nil, fail(StageInvocation, err)
	}

	body, err := marshal(Body{
		Message:         Greeting,
		Environment:     environment,
		Project:         project,
		Timestamp:       *inv.RequestID,
		FunctionName:    *inv.FunctionName,
		FunctionVersion: *inv.FunctionVersion,
	})
	if err != nil {
		return nil, fail(StageBody, err)
	}

	return newEnvelope(http.StatusOK, string(body)), nil
}

func failureEnvelope(f *Failure) *Envelope {
	body, _ := marshal(ErrorBody{
		Error:   InternalServerError,
		Message: f.Error(),
	})
	return newEnvelope(http.StatusInternalServerError, string(body))
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
