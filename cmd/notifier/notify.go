package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexmorbo/build-hipchat-notifier/application/dto"
	"github.com/alexmorbo/build-hipchat-notifier/application/usecase"
	"github.com/alexmorbo/build-hipchat-notifier/infrastructure/composer"
	"github.com/alexmorbo/build-hipchat-notifier/infrastructure/config"
	"github.com/alexmorbo/build-hipchat-notifier/infrastructure/hipchat"
)

// notify never fails the calling build because of delivery: it exits 0 once
// a notification was attempted and only returns errors for bad input.
var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send the notification for one completed build",
	Long:  "Resolves the job's settings from the jobs file and the HIPCHAT_* environment, then posts once. The decision and delivery log is printed to stdout.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		input := dto.BuildCompletedInput{}
		input.Job, _ = cmd.Flags().GetString("job")
		input.BuildNumber, _ = cmd.Flags().GetInt("build")
		input.Result, _ = cmd.Flags().GetString("result")
		input.URL, _ = cmd.Flags().GetString("url")
		input.Workspace, _ = cmd.Flags().GetString("workspace")
		input.Env, _ = cmd.Flags().GetStringToString("env")

		jobsFile, err := config.LoadJobsFile(cfg.ConfigPath)
		if err != nil {
			return err
		}

		settings := config.StaticSettings(cfg.HipChat.GlobalConfig())

		notifyUC := usecase.NewNotifyBuildUseCase(
			composer.NewComposer(),
			hipchat.NewClient(log.With("component", "hipchat_client")),
			log.With("component", "notify_build_usecase"),
		)
		uc := usecase.NewHandleBuildCompletedUseCase(jobsFile, settings, nil, notifyUC, log.With("component", "handle_build_usecase"))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out, err := uc.Execute(ctx, input)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, line := range out.LogLines {
			_, _ = fmt.Fprintln(w, line)
		}
		return nil
	},
}

func init() {
	notifyCmd.Flags().String("job", "", "job name as configured in the jobs file")
	notifyCmd.Flags().Int("build", 0, "build number")
	notifyCmd.Flags().String("result", "", "build result: SUCCESS, UNSTABLE, FAILURE, NOT_BUILT or ABORTED")
	notifyCmd.Flags().String("url", "", "build URL")
	notifyCmd.Flags().String("workspace", "", "workspace root for message files")
	notifyCmd.Flags().StringToString("env", nil, "extra macro variables, KEY=VALUE")
	_ = notifyCmd.MarkFlagRequired("job")
	_ = notifyCmd.MarkFlagRequired("result")
	rootCmd.AddCommand(notifyCmd)
}
