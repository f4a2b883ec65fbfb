package cmd

import (
	"fmt"

	"github.com/isometry/gh-jira-bridge/internal/config"
)

var lambdaEnvMapString = map[*string]boundEnvVar[string]{
	&config.Lambda.PayloadType: {
		Name: "lambda-payload-type",
		Description: fmt.Sprintf("Event format of the trigger delivering webhooks: '%s' (API Gateway REST API), '%s' (API Gateway HTTP API) or '%s' (function URL)",
			config.PayloadAPIGatewayV1, config.PayloadAPIGatewayV2, config.PayloadLambdaURL),
	},
}
