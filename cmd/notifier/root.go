package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexmorbo/build-hipchat-notifier/infrastructure/config"
	"github.com/alexmorbo/build-hipchat-notifier/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "hcnotifier",
	Short:         "HipChat notifications for completed builds",
	Long:          "hcnotifier posts build results to HipChat rooms. Run it as a webhook service with `serve`, or once per build with `notify`.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var jobsPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&jobsPath, "jobs", "", "jobs file path (overrides CONFIG_PATH)")
}

// loadConfig reads the environment and applies persistent flags. Logs go to
// the command's error stream so stdout carries only command output.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, nil, err
	}
	if jobsPath != "" {
		cfg.ConfigPath = jobsPath
	}

	log := logger.NewWithWriter(cfg.Server.LogLevel, cmd.ErrOrStderr())
	slog.SetDefault(log)

	return cfg, log, nil
}
