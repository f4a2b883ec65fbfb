package cmd

import (
	"github.com/isometry/gh-jira-bridge/internal/config"
	"github.com/isometry/gh-jira-bridge/internal/helpers"
)

// Flags shared by every subcommand.
var (
	envMapString = map[*string]boundEnvVar[string]{
		&config.Global.Mode: {
			Name:        "mode",
			Description: "Where webhooks are received when no subcommand is given: 'lambda' (AWS Lambda invocations) or 'service' (local HTTP listener)",
			Short:       helpers.Ptr("m"),
		},
	}
	envMapBool = map[*bool]boundEnvVar[bool]{
		&config.Global.Logging.CallerTrace: {
			Name:        "verbosity-caller-trace",
			Description: "Add the source file and line to every log record",
			Short:       helpers.Ptr("V"),
		},
	}
	envMapCount = map[*int]boundEnvVar[int]{
		&config.Global.Logging.Verbosity: {
			Name:        "verbosity",
			Description: "Lower the log level one step per repetition: warn, info, debug, then trace (outbound Jira requests)",
			Short:       helpers.Ptr("v"),
		},
	}
)
