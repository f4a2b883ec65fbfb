// Package jira provides a Controller creating Jira tickets over the REST API.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	jira "github.com/andygrunwald/go-jira"
	"github.com/isometry/gh-jira-bridge/internal/config"
	"github.com/isometry/gh-jira-bridge/internal/helpers"
	"github.com/isometry/gh-jira-bridge/internal/ticket"
	"github.com/pkg/errors"
)

// Option is a functional option used to configure a Controller instance.
type Option func(*Controller)

// Controller wraps an authenticated Jira client.
type Controller struct {
	logger    *slog.Logger
	transport http.RoundTripper
	client    *jira.Client
}

// NewController builds a Jira client authenticating with basic credentials from settings.
// No request is sent until a ticket is created.
func NewController(settings config.Jira, opts ...Option) (*Controller, error) {
	_inst := new(Controller)
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	if _inst.transport == nil {
		_inst.transport = http.DefaultTransport
	}
	if settings.Endpoint == "" {
		return nil, errors.Errorf("missing Jira API endpoint [%s]", config.EnvJiraAPIEndpoint)
	}

	tp := jira.BasicAuthTransport{
		Username:  settings.Username,
		Password:  settings.Password,
		Transport: &loggingRoundTripper{logger: _inst.logger, next: _inst.transport},
	}
	client, err := jira.NewClient(tp.Client(), settings.Endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create jira client")
	}
	_inst.client = client
	_inst.logger.Debug("jira client ready", slog.String("endpoint", settings.Endpoint), slog.String("username", settings.Username))
	return _inst, nil
}

// CreateTicket submits req and returns the key of the created issue.
func (c *Controller) CreateTicket(ctx context.Context, req ticket.Request) (string, error) {
	issue := &jira.Issue{
		Fields: &jira.IssueFields{
			Project:     jira.Project{Key: req.ProjectKey},
			Summary:     req.Summary,
			Description: req.Description,
			Type:        jira.IssueType{Name: req.IssueType},
		},
	}

	c.logger.Debug("creating issue...", slog.String("project", req.ProjectKey), slog.String("summary", helpers.Truncate(req.Summary, 80)))
	created, resp, err := c.client.Issue.CreateWithContext(ctx, issue)
	if err != nil {
		return "", jira.NewJiraError(resp, err)
	}
	c.logger.Info("created issue", slog.String("key", created.Key))
	return created.Key, nil
}

// levelTrace sits below slog.LevelDebug and is enabled from verbosity 3.
const levelTrace = slog.Level(-8)

// loggingRoundTripper logs outbound requests at trace level.
type loggingRoundTripper struct {
	logger *slog.Logger
	next   http.RoundTripper
}

// RoundTrip logs the request and response. The body is only read when trace logging is enabled.
func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if !l.logger.Enabled(ctx, levelTrace) {
		return l.next.RoundTrip(req)
	}

	var buf bytes.Buffer
	if req.Body != nil {
		_, _ = io.ReadAll(io.TeeReader(req.Body, &buf))
		req.Body = io.NopCloser(bytes.NewReader(buf.Bytes()))
	}
	var container map[string]any
	_ = json.Unmarshal(buf.Bytes(), &container)
	l.logger.Log(ctx, levelTrace, "sending request", slog.String("method", req.Method), slog.String("url", req.URL.String()), slog.Any("body", container))
	resp, err := l.next.RoundTrip(req)
	if err != nil {
		l.logger.Log(ctx, levelTrace, "failed to send request", slog.Any("error", err))
		return nil, err
	}
	l.logger.Log(ctx, levelTrace, "received response", slog.String("status", resp.Status))
	return resp, nil
}
