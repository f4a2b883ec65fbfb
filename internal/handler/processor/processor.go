// Package processor provides the steps executed for every webhook invocation.
package processor

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/isometry/gh-jira-bridge/internal/models"
)

// Processor is a single invocation step. Steps never fail outright: every
// outcome, including errors, is reported as a result.
type Processor interface {
	SetLogger(logger *slog.Logger)
	Process(ctx context.Context, req *models.Request) models.Result
}

// logRequest writes the inbound event to the diagnostic log.
func logRequest(ctx context.Context, logger *slog.Logger, req *models.Request) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	event, _ := json.MarshalIndent(map[string]any{
		"headers": req.Headers,
		"body":    req.Body,
	}, "", "  ")
	logger.DebugContext(ctx, "received event", slog.String("event", string(event)))
	logger.DebugContext(ctx, "headers", slog.Any("headers", req.Headers))
	logger.DebugContext(ctx, "body", slog.String("body", req.Body))
}
