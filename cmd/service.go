package cmd

import (
	"net"
	"net/http"

	"github.com/isometry/gh-jira-bridge/internal/config"
	"github.com/isometry/gh-jira-bridge/internal/runtime"
	"github.com/spf13/cobra"
)

func cmdService() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "service",
		Aliases: []string{"s", "serve", "standalone", "server"},
		Short:   "Run as a standalone HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger = logger.With("mode", config.ModeService)
			logger.Info("spawning...")
			hdl := newHandler(cmd.Context())

			logger.Debug("creating runtime...")
			rt := runtime.NewRuntime(hdl,
				runtime.WithLogger(logger.With("component", "runtime")))

			logger.Debug("creating HTTP server...")
			h := http.NewServeMux()
			h.HandleFunc(config.Service.Path, rt.ServeHTTP)

			s := &http.Server{
				Handler:      h,
				Addr:         net.JoinHostPort(config.Service.Addr, config.Service.Port),
				WriteTimeout: config.Service.Timeout,
				ReadTimeout:  config.Service.Timeout,
				IdleTimeout:  config.Service.Timeout,
			}

			logger.Info("serving...", "address", s.Addr, "path", config.Service.Path, "timeout", config.Service.Timeout.String())
			return s.ListenAndServe()
		},
	}

	bindEnvMap(cmd, svcEnvMapString)
	bindEnvMap(cmd, svcEnvMapDuration)
	return cmd
}
