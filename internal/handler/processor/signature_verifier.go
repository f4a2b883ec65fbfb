package processor

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/isometry/gh-jira-bridge/internal/config"
	"github.com/isometry/gh-jira-bridge/internal/failure"
	"github.com/isometry/gh-jira-bridge/internal/helpers"
	"github.com/isometry/gh-jira-bridge/internal/models"
	"github.com/isometry/gh-jira-bridge/internal/validation"
)

// MsgWebhookVerified is reported when the signature matches.
const MsgWebhookVerified = "GitHub webhook connection verified."

type signatureVerifierProcessor struct {
	logger *slog.Logger
	secret *validation.WebhookSecret
}

// NewSignatureVerifierProcessor returns the step checking the X-Hub-Signature header against settings.Secret.
func NewSignatureVerifierProcessor(settings config.GitHub) Processor {
	return &signatureVerifierProcessor{
		logger: helpers.NewNoopLogger(),
		secret: validation.NewWebhookSecret(settings.Secret),
	}
}

func (p *signatureVerifierProcessor) SetLogger(logger *slog.Logger) {
	p.logger = logger.WithGroup("processor:signature")
}

func (p *signatureVerifierProcessor) Process(ctx context.Context, req *models.Request) models.Result {
	if p.secret == nil {
		helpers.OnceAMinute.Do(func() {
			p.logger.WarnContext(ctx, "webhook signature cannot be verified", slog.String("missing", config.EnvGitHubSecret))
		})
	}
	logRequest(ctx, p.logger, req)

	if err := p.secret.ValidateSignature([]byte(req.Body), req.Headers); err != nil {
		p.logger.WarnContext(ctx, "signature verification failed", slog.String("kind", failure.KindOf(err).String()), slog.Any("error", err))
		return failure.ToResult(err)
	}
	p.logger.DebugContext(ctx, "signature verified")
	return models.Result{StatusCode: http.StatusOK, Body: MsgWebhookVerified}
}
