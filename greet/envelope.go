package greet

import "net/http"

const (
	Greeting            = "Hello from AWS Lambda!"
	InternalServerError = "Internal server error"
)

// Envelope is the API Gateway proxy shaped result of one invocation.
type Envelope struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// Body is the success payload. Timestamp carries the request id.
type Body struct {
	Message         string `json:"message"`
	Environment     string `json:"environment"`
	Project         string `json:"project"`
	Timestamp       string `json:"timestamp"`
	FunctionName    string `json:"function_name"`
	FunctionVersion string `json:"function_version"`
}

type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

func newEnvelope(statusCode int, body string) *Envelope {
	return &Envelope{
		StatusCode: statusCode,
		Headers:    newHeaders(),
		Body:       body,
	}
}

func (e *Envelope) OK() bool {
	return e.StatusCode == http.StatusOK
}
