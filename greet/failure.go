package greet

import "fmt"

const (
	StageEvent      = "event"
	StageInvocation = "invocation"
	StageBody       = "body"
	StagePanic      = "panic"
)

// Failure is the single error kind of the handler. It never leaves Handle:
// it is logged and collapsed into a 500 envelope.
type Failure struct {
	Stage string
	Err   error
}

func (f *Failure) Error() string {
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func fail(stage string, err error) *Failure {
	return &Failure{Stage: stage, Err: err}
}

func doSafe(f func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fail(StagePanic, fmt.Errorf("panic: %v", v))
		}
	}()

	return f()
}
