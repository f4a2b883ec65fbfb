package jira

import (
	"log/slog"
	"net/http"
)

// WithLogger sets a custom logger for the Controller instance to use for logging operations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithTransport sets the round tripper used beneath basic authentication.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Controller) {
		c.transport = transport
	}
}
