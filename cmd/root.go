// Package cmd provides the entrypoint for the gh-jira-bridge cli.
package cmd

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/isometry/gh-jira-bridge/internal/config"
	"github.com/isometry/gh-jira-bridge/internal/helpers"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configFilePath string
	logger         *slog.Logger
	logOutput      io.Writer = os.Stdout
)

type boundEnvVar[T argType] struct {
	Name, Description string
	Env, Short        *string
	Default           *T
	Hidden            bool
}

// New returns the root command for the gh-jira-bridge.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gh-jira-bridge",
		Short:        "Create Jira tickets from signed GitHub webhook deliveries",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfigFile(cmd, configFilePath); err != nil {
				return err
			}
			config.Global.Mode = strings.TrimSpace(config.Global.Mode)
			logger = helpers.NewLogger(logOutput, config.Global.Logging.Verbosity, config.Global.Logging.CallerTrace)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			if config.Global.Mode == config.ModeService {
				return cmdService().RunE(cmd, args)
			}
			return cmdLambda().RunE(cmd, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", "config.yaml", "path to the configuration file")

	if err := config.SetDefaults(); err != nil {
		panic(err)
	}

	setupDynamicFlags(cmd)
	cmd.AddCommand(cmdLambda(), cmdService())
	return cmd
}

// loadConfigFile applies the configuration file at path underneath the values
// already taken from the environment and the command line. Precedence, lowest
// first: defaults, file, environment, flags.
func loadConfigFile(cmd *cobra.Command, path string) error {
	overrides := make(map[*pflag.Flag]string)
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || envIsSet(f.Name) {
			overrides[f] = f.Value.String()
		}
	})

	if err := config.LoadFromFile(path); err != nil {
		return err
	}
	if err := config.SetDefaults(); err != nil {
		return err
	}

	for f, value := range overrides {
		if err := f.Value.Set(value); err != nil {
			return errors.Wrapf(err, "failed to reapply --%s", f.Name)
		}
	}
	return nil
}

func setupDynamicFlags(cmd *cobra.Command) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(replacer)

	bindEnvMap(cmd, envMapString)
	bindEnvMap(cmd, envMapBool)
	bindEnvMap(cmd, envMapCount)
}
