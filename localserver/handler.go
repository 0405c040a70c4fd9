package localserver

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aura-studio/hello/greet"
	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var methods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodHead, http.MethodOptions}

func (e *Engine) InstallHandlers() {
	e.HandleAllMethods("/health-check", e.OK)
	e.NoRoute(e.Invoke)
}

func (e *Engine) HandleAllMethods(relativePath string, handlers ...gin.HandlerFunc) {
	for _, method := range methods {
		e.Handle(method, relativePath, handlers...)
	}
}

func (e *Engine) OK(c *gin.Context) {
	c.String(http.StatusOK, "OK")
	c.Abort()
}

func (e *Engine) AccessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	e.log.WithFields(logrus.Fields{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}).Info("request")
}

// Invoke turns the HTTP request into an API Gateway proxy event, runs one
// invocation and writes the envelope back verbatim.
func (e *Engine) Invoke(c *gin.Context) {
	requestID := uuid.NewString()

	event, err := e.genEvent(c, requestID)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		c.Abort()
		return
	}

	env := e.greet.Handle(event, greet.NewInvocation(requestID, e.FunctionName, e.FunctionVersion))

	for k, v := range env.Headers {
		c.Header(k, v)
	}
	c.Header("X-Amzn-RequestId", requestID)
	c.Data(env.StatusCode, env.Headers["Content-Type"], []byte(env.Body))
	c.Abort()
}

func (e *Engine) genEvent(c *gin.Context, requestID string) (json.RawMessage, error) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	defer c.Request.Body.Close()

	req := events.APIGatewayProxyRequest{
		Resource:              c.Request.URL.Path,
		Path:                  c.Request.URL.Path,
		HTTPMethod:            c.Request.Method,
		Headers:               map[string]string{},
		MultiValueHeaders:     map[string][]string(c.Request.Header),
		QueryStringParameters: map[string]string{},
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:    requestID,
			HTTPMethod:   c.Request.Method,
			Path:         c.Request.URL.Path,
			ResourcePath: c.Request.URL.Path,
			Stage:        "local",
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  c.ClientIP(),
				UserAgent: c.Request.UserAgent(),
			},
		},
	}
	for k, v := range c.Request.Header {
		req.Headers[k] = strings.Join(v, ",")
	}
	query := c.Request.URL.Query()
	req.MultiValueQueryStringParameters = map[string][]string(query)
	for k, v := range query {
		req.QueryStringParameters[k] = v[len(v)-1]
	}
	if utf8.Valid(data) {
		req.Body = string(data)
	} else {
		req.Body = base64.StdEncoding.EncodeToString(data)
		req.IsBase64Encoded = true
	}

	return json.Marshal(req)
}
