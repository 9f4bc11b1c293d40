package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

const defaultConfigFile = "config.yml"

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Tic-tac-toe on a configurable board, played on the console",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, configPath)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file (default ./config.yml)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "play",
			Short: "Play one game",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runPlay(cmd, configPath)
			},
		},
		&cobra.Command{
			Use:   "scores",
			Short: "Print the scoreboard kept in redis",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				conf := initConfig(configPath)
				logger := initLogger(conf)

				if err := app.ShowScores(logger, conf, cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("failed to show scores: %w", err)
				}

				return nil
			},
		},
	)

	return rootCmd
}

func runPlay(cmd *cobra.Command, configPath string) error {
	conf := initConfig(configPath)
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// initialize config.
func initConfig(configPath string) *config.Config {
	if configPath != "" {
		return config.MustLoad(configPath)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, defaultConfigFile))
}

// initialize logger. Logs go to stderr so they never mix with the board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
