package handler

import (
	"log/slog"

	"github.com/isometry/gh-jira-bridge/internal/config"
	"github.com/isometry/gh-jira-bridge/internal/controllers/jira"
)

// WithLogger sets the logger instance for the handler.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithSecretResolver enables resolving secrets from a parameter store when they are not set in the environment.
func WithSecretResolver(resolver config.SecretResolver) Option {
	return func(h *Handler) {
		h.resolver = resolver
	}
}

// WithJiraOptions sets options applied to every Jira controller the handler creates.
func WithJiraOptions(opts ...jira.Option) Option {
	return func(h *Handler) {
		h.jiraOptions = opts
	}
}
