package cmd_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/isometry/gh-jira-bridge/cmd"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	root := cmd.New()

	for _, name := range []string{"lambda", "service"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"config", "mode", "verbosity", "verbosity-caller-trace"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}

	svc, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.NotNil(t, svc.PersistentFlags().Lookup("service-host-port"))
	assert.NotNil(t, svc.PersistentFlags().Lookup("service-io-timeout"))
}

func TestNew_ModeFromEnvironment(t *testing.T) {
	t.Setenv("MODE", "service")
	root := cmd.New()

	assert.Equal(t, "service", root.PersistentFlags().Lookup("mode").Value.String())
}

func TestNew_InvalidMode(t *testing.T) {
	err := execute(cmd.New(), "--mode", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode: bogus")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(root *cobra.Command, args ...string) error {
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestNew_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
global:
  mode: bogus
lambda:
  payloadType: bogus
`)

	for _, flag := range []string{"--config", "-c"} {
		t.Run(flag, func(t *testing.T) {
			err := execute(cmd.New(), flag, path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid mode: bogus")
			assert.Contains(t, err.Error(), "invalid lambda payload type: bogus")
		})
	}
}

func TestNew_ConfigFilePrecedence(t *testing.T) {
	path := writeConfig(t, `
global:
  mode: service
lambda:
  payloadType: from-file
`)

	t.Run("flag over file", func(t *testing.T) {
		err := execute(cmd.New(), "--config", path, "--mode", "from-flag")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid mode: from-flag")
		assert.Contains(t, err.Error(), "invalid lambda payload type: from-file")
	})

	t.Run("environment over file", func(t *testing.T) {
		t.Setenv("MODE", "from-env")
		err := execute(cmd.New(), "--config", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid mode: from-env")
	})
}

func TestNew_FlagUsage(t *testing.T) {
	root := cmd.New()
	assert.Contains(t, root.PersistentFlags().Lookup("mode").Usage, "[MODE] Where webhooks are received")

	lambda, _, err := root.Find([]string{"lambda"})
	require.NoError(t, err)
	usage := lambda.PersistentFlags().Lookup("lambda-payload-type").Usage
	assert.Contains(t, usage, "[LAMBDA_PAYLOAD_TYPE]")
	for _, payloadType := range []string{"api-gateway-v1", "api-gateway-v2", "lambda-url"} {
		assert.Contains(t, usage, payloadType)
	}
}
