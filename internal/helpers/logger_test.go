package helpers_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/isometry/gh-jira-bridge/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		Name      string
		Verbosity int
		Enabled   slog.Level
		Disabled  slog.Level
	}{
		{
			Name:      "default_warn",
			Verbosity: 0,
			Enabled:   slog.LevelWarn,
			Disabled:  slog.LevelInfo,
		},
		{
			Name:      "info",
			Verbosity: 1,
			Enabled:   slog.LevelInfo,
			Disabled:  slog.LevelDebug,
		},
		{
			Name:      "debug",
			Verbosity: 2,
			Enabled:   slog.LevelDebug,
			Disabled:  slog.Level(-8),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			logger := helpers.NewLogger(&bytes.Buffer{}, tc.Verbosity, false)
			assert.True(t, logger.Enabled(context.Background(), tc.Enabled))
			assert.False(t, logger.Enabled(context.Background(), tc.Disabled))
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	helpers.NewLogger(&buf, 0, true).Warn("hello", slog.String("k", "v"))

	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
	assert.Contains(t, buf.String(), `"source"`)
}
