// Package handler combines the invocation steps into a single response.
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v84/github"
	"github.com/isometry/gh-jira-bridge/internal/config"
	"github.com/isometry/gh-jira-bridge/internal/controllers/jira"
	"github.com/isometry/gh-jira-bridge/internal/handler/processor"
	"github.com/isometry/gh-jira-bridge/internal/helpers"
	"github.com/isometry/gh-jira-bridge/internal/models"
)

// Option is a functional option used to configure a Handler instance.
type Option func(*Handler)

// Handler processes webhook invocations.
type Handler struct {
	logger      *slog.Logger
	resolver    config.SecretResolver
	jiraOptions []jira.Option
}

// NewHandler returns a Handler configured with options.
func NewHandler(options ...Option) *Handler {
	_inst := &Handler{}
	for _, opt := range options {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	return _inst
}

// Process verifies the signature of req and creates a Jira ticket from it.
//
// Both steps always run: a failed verification does not prevent ticket
// creation. The response is always 200; the outcome of each step is carried
// in the body as a models.Combined value.
func (h *Handler) Process(ctx context.Context, req models.Request) models.Response {
	logger := h.logger
	if eventType, found := helpers.Header(req.Headers, github.EventTypeHeader); found {
		logger = logger.With(slog.String("event", eventType))
	}
	if deliveryID, found := helpers.Header(req.Headers, github.DeliveryIDHeader); found {
		logger = logger.With(slog.String("deliveryID", deliveryID))
	}
	logger.InfoContext(ctx, "processing request...")

	settings := config.LoadSettings(ctx, h.resolver, logger)

	verifier := processor.NewSignatureVerifierProcessor(settings.GitHub)
	verifier.SetLogger(logger)
	creator := processor.NewTicketCreatorProcessor(settings.Jira, h.jiraOptions...)
	creator.SetLogger(logger)

	combined := models.Combined{
		VerifyGitHubWebhook: verifier.Process(ctx, &req),
		CreateJiraTicket:    creator.Process(ctx, &req),
	}
	logger.InfoContext(ctx, "processed request",
		slog.Int("verifyStatus", combined.VerifyGitHubWebhook.StatusCode),
		slog.Int("ticketStatus", combined.CreateJiraTicket.StatusCode))

	return models.Response{
		StatusCode: http.StatusOK,
		Body:       encode(combined),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

func encode(combined models.Combined) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Only strings and ints: encoding cannot fail.
	_ = enc.Encode(combined)
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
