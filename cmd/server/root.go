package main

import (
	"taskara-review-service/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:           "review-service",
		Short:         "Tracks pending reviewers and review requirements of tasks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configDir, "config", "./config", "directory holding config.yaml")

	load := func() (*config.Config, error) {
		return config.Load(configDir)
	}

	cmd.AddCommand(
		newServeCmd(load),
		newMigrateCmd(load),
	)
	return cmd
}
