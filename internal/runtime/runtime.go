// Package runtime adapts the handler to AWS Lambda and plain HTTP.
package runtime

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/isometry/gh-jira-bridge/internal/config"
	"github.com/isometry/gh-jira-bridge/internal/handler"
	"github.com/isometry/gh-jira-bridge/internal/helpers"
	"github.com/isometry/gh-jira-bridge/internal/models"
)

type Option func(*Runtime)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithPayloadType selects the Lambda event format. See config.PayloadAPIGatewayV1 and friends.
func WithPayloadType(payloadType string) Option {
	return func(r *Runtime) {
		r.payloadType = payloadType
	}
}

type Runtime struct {
	*handler.Handler
	logger      *slog.Logger
	payloadType string
}

// NewRuntime creates a new runtime instance
func NewRuntime(handler *handler.Handler, opts ...Option) *Runtime {
	_inst := &Runtime{Handler: handler}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	if _inst.payloadType == "" {
		_inst.payloadType = config.PayloadAPIGatewayV1
	}
	return _inst
}

// Lambda is the Lambda handler for the runtime
func (r *Runtime) Lambda(ctx context.Context, payload json.RawMessage) (any, error) {
	r.logger.Info("received lambda event", slog.String("payloadType", r.payloadType))

	req, err := r.decodeEvent(payload)
	if err != nil {
		return nil, err
	}
	resp := r.Handler.Process(ctx, req)

	switch r.payloadType {
	case config.PayloadAPIGatewayV1:
		return events.APIGatewayProxyResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}, nil
	case config.PayloadAPIGatewayV2:
		return events.APIGatewayV2HTTPResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}, nil
	default:
		return events.LambdaFunctionURLResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}, nil
	}
}

// decodeEvent extracts headers and the raw body from payload.
// Events that do not match the configured format are processed as empty requests.
func (r *Runtime) decodeEvent(payload json.RawMessage) (models.Request, error) {
	var (
		headers  map[string]string
		body     string
		isBase64 bool
		err      error
	)
	switch r.payloadType {
	case config.PayloadAPIGatewayV1:
		var e events.APIGatewayProxyRequest
		err = json.Unmarshal(payload, &e)
		headers, body, isBase64 = e.Headers, e.Body, e.IsBase64Encoded
		if headers == nil && len(e.MultiValueHeaders) > 0 {
			headers = make(map[string]string, len(e.MultiValueHeaders))
			for k, v := range e.MultiValueHeaders {
				if len(v) > 0 {
					headers[k] = v[0]
				}
			}
		}
	case config.PayloadAPIGatewayV2:
		var e events.APIGatewayV2HTTPRequest
		err = json.Unmarshal(payload, &e)
		headers, body, isBase64 = e.Headers, e.Body, e.IsBase64Encoded
	case config.PayloadLambdaURL:
		var e events.LambdaFunctionURLRequest
		err = json.Unmarshal(payload, &e)
		headers, body, isBase64 = e.Headers, e.Body, e.IsBase64Encoded
	default:
		return models.Request{}, fmt.Errorf("unsupported lambda payload type: %s", r.payloadType)
	}
	if err != nil {
		r.logger.Warn("failed to decode lambda event", slog.Any("error", err))
		return models.Request{}, nil
	}

	if isBase64 {
		decoded, decodeErr := base64.StdEncoding.DecodeString(body)
		if decodeErr != nil {
			r.logger.Warn("failed to decode base64 body", slog.Any("error", decodeErr))
		} else {
			body = string(decoded)
		}
	}
	return models.Request{Body: body, Headers: helpers.NormaliseHeaders(headers)}, nil
}

// ServeHTTP is the HTTP handler for the runtime
func (r *Runtime) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodPost:
		break
	default:
		r.logger.Debug("rejecting HTTP request...", slog.Any("requestor", req.RemoteAddr), "reason", "method not allowed", slog.Any("method", req.Method))
		helpers.RespondHTTP(models.Response{StatusCode: http.StatusMethodNotAllowed}, resp)
		return
	}

	r.logger.Debug("received HTTP request...", slog.Any("requestor", req.RemoteAddr), slog.Any("method", req.Method), slog.Any("path", req.URL.Path), slog.Any("headers", req.Header))
	r.logger.Debug("normalising headers...")
	headers := make(map[string]string)
	for k, v := range req.Header {
		// XXX: we're losing duplicated headers here
		headers[strings.ToLower(k)] = v[0]
	}

	r.logger.Debug("processing request...")
	body, err := io.ReadAll(req.Body)
	if err != nil {
		r.logger.Error("failed to read request body", slog.Any("error", err))
		helpers.RespondHTTP(models.Response{StatusCode: http.StatusInternalServerError}, resp)
		return
	}
	helpers.RespondHTTP(r.Handler.Process(req.Context(), models.Request{
		Body:    string(body),
		Headers: headers,
	}), resp)
}
