package greet

import (
	"github.com/aws/aws-lambda-go/lambda"
)

var engine *Engine

// Serve registers the handler with the Lambda runtime and blocks.
func Serve(opts ...Option) {
	engine = NewEngine(opts...)
	lambda.StartWithOptions(engine.Invoke, lambda.WithEnableSIGTERM(shutdown))
}

func shutdown() {
	if engine != nil {
		engine.log.Info("Runtime shutting down")
	}
}
