package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"priority-scheduler/api"
)

func newServeCmd(loadConfig configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the scheduling HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			app := api.NewApp(cfg, logger)

			errs := make(chan error, 1)
			go func() {
				addr := fmt.Sprintf(":%d", cfg.Port)
				logger.Info().Str("addr", addr).Msg("HTTP server listening")
				errs <- app.Listen(addr)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errs:
				return fmt.Errorf("http server: %w", err)
			case <-quit:
			}

			logger.Info().Msg("shutting down gracefully...")
			if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
				logger.Error().Err(err).Msg("graceful shutdown failed")
				return err
			}

			logger.Info().Msg("server stopped")
			return nil
		},
	}
}
