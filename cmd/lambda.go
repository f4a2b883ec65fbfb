package cmd

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/isometry/gh-jira-bridge/internal/config"
	"github.com/isometry/gh-jira-bridge/internal/runtime"
	"github.com/spf13/cobra"
)

func cmdLambda() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lambda",
		Short: "Run as an AWS Lambda handler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			logger = logger.With("mode", config.ModeLambda)
			hdl := newHandler(cmd.Context())

			logger.Debug("creating runtime...")
			rt := runtime.NewRuntime(hdl,
				runtime.WithPayloadType(config.Lambda.PayloadType),
				runtime.WithLogger(logger.With("component", "runtime")))

			logger.Info("lambda starting...", "payloadType", config.Lambda.PayloadType)
			lambda.StartWithOptions(rt.Lambda,
				lambda.WithContext(cmd.Context()))
			return nil
		},
	}

	bindEnvMap(cmd, lambdaEnvMapString)
	return cmd
}
