package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"priority-scheduler/config"
	"priority-scheduler/internal/logging"
)

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "priority-scheduler",
		Short:         "Non-preemptive cpu scheduling calculator",
		Long:          "Computes waiting, turnaround and completion times for non-preemptive priority, fcfs and sjf scheduling.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ./config.yaml)")

	loadConfig := func() (*config.SchedulerConfig, zerolog.Logger, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
		}

		return cfg, logging.Setup(cfg.Environment, cfg.LogLevel), nil
	}

	rootCmd.AddCommand(
		newServeCmd(loadConfig),
		newScheduleCmd(loadConfig),
	)
	return rootCmd
}

type configLoader func() (*config.SchedulerConfig, zerolog.Logger, error)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
