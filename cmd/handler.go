package cmd

import (
	"context"
	"os"

	"github.com/isometry/gh-jira-bridge/internal/config"
	"github.com/isometry/gh-jira-bridge/internal/controllers/aws"
	"github.com/isometry/gh-jira-bridge/internal/handler"
)

// newHandler builds the webhook handler. SSM indirection is only enabled when
// one of the *_ssm_parameter variables is set, so no AWS configuration is
// loaded otherwise.
func newHandler(ctx context.Context) *handler.Handler {
	opts := []handler.Option{
		handler.WithLogger(logger.With("component", "handler")),
	}

	_, secretSSM := os.LookupEnv(config.EnvGitHubSecretSSMParameter)
	_, passwordSSM := os.LookupEnv(config.EnvJiraPasswordSSMParameter)
	if secretSSM || passwordSSM {
		logger.Debug("creating AWS controller...")
		awsCtl, err := aws.NewController(
			aws.WithContext(ctx),
			aws.WithLogger(logger.With("component", "aws-controller")))
		if err != nil {
			logger.Warn("SSM parameters disabled", "error", err)
		} else {
			opts = append(opts, handler.WithSecretResolver(awsCtl))
		}
	}

	return handler.NewHandler(opts...)
}
