package main

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

func TestRootCmd(t *testing.T) {
	missingConfig := filepath.Join(t.TempDir(), "missing.yml")

	t.Run("Plays by default", func(t *testing.T) {
		// Given: X filling the left column
		t.Setenv("REDIS_ENABLED", "false")

		out := &bytes.Buffer{}
		cmd := newRootCmd()
		cmd.SetArgs([]string{"--config", missingConfig})
		cmd.SetIn(strings.NewReader("1\n2\n4\n5\n7\n"))
		cmd.SetOut(out)

		// When: the root command runs
		err := cmd.Execute()

		// Then: X is congratulated
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Congratulations X, you won!")
	})

	t.Run("Scores need redis", func(t *testing.T) {
		t.Setenv("REDIS_ENABLED", "false")

		cmd := newRootCmd()
		cmd.SetArgs([]string{"scores", "--config", missingConfig})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.Execute()

		require.ErrorIs(t, err, apperror.ErrScoreboardUnavailable)
	})
}

func TestInitLogger(t *testing.T) {
	testCases := []struct {
		level    string
		expected slog.Level
	}{
		{level: "debug", expected: slog.LevelDebug},
		{level: "info", expected: slog.LevelInfo},
		{level: "warn", expected: slog.LevelWarn},
		{level: "error", expected: slog.LevelError},
		{level: "", expected: slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			logger := initLogger(&config.Config{LogLevel: tc.level})

			assert.True(t, logger.Enabled(context.Background(), tc.expected))
			assert.False(t, logger.Enabled(context.Background(), tc.expected-1))
		})
	}
}
