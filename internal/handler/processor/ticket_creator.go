package processor

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/isometry/gh-jira-bridge/internal/config"
	"github.com/isometry/gh-jira-bridge/internal/controllers/jira"
	"github.com/isometry/gh-jira-bridge/internal/failure"
	"github.com/isometry/gh-jira-bridge/internal/helpers"
	"github.com/isometry/gh-jira-bridge/internal/models"
	"github.com/isometry/gh-jira-bridge/internal/ticket"
)

type ticketCreatorProcessor struct {
	logger      *slog.Logger
	settings    config.Jira
	jiraOptions []jira.Option
}

// NewTicketCreatorProcessor returns the step creating a Jira ticket from the webhook payload.
func NewTicketCreatorProcessor(settings config.Jira, opts ...jira.Option) Processor {
	return &ticketCreatorProcessor{
		logger:      helpers.NewNoopLogger(),
		settings:    settings,
		jiraOptions: opts,
	}
}

func (p *ticketCreatorProcessor) SetLogger(logger *slog.Logger) {
	p.logger = logger.WithGroup("processor:ticket")
}

func (p *ticketCreatorProcessor) Process(ctx context.Context, req *models.Request) models.Result {
	key, err := p.createTicket(ctx, req)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to create jira ticket", slog.Any("error", err))
		return failure.ToResult(failure.Wrap(failure.ExternalService, err, "Error creating Jira ticket: %v", err))
	}
	return models.Result{
		StatusCode: http.StatusOK,
		Body:       fmt.Sprintf("Jira ticket created successfully. Issue Key: %s", key),
	}
}

func (p *ticketCreatorProcessor) createTicket(ctx context.Context, req *models.Request) (string, error) {
	opts := append([]jira.Option{jira.WithLogger(p.logger)}, p.jiraOptions...)
	ctl, err := jira.NewController(p.settings, opts...)
	if err != nil {
		return "", err
	}

	logRequest(ctx, p.logger, req)
	t := ticket.NewRequest(p.settings.ProjectKey, req.Body)
	p.logger.DebugContext(ctx, "built ticket request", slog.String("summary", t.Summary), slog.String("description", t.Description))

	return ctl.CreateTicket(ctx, t)
}
