package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/itchan-dev/forumview/internal/config"
	"github.com/itchan-dev/forumview/internal/fixtures"
	"github.com/itchan-dev/forumview/internal/logger"
	"github.com/itchan-dev/forumview/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var configFolder string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the fixture preview server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoad(configFolder)
			logger.Initialize(cfg.Log.Level, cfg.Log.JSON)

			renderer, err := newRenderer(cfg.Render)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Render.TemplatesDir != "" && cfg.Render.ReloadInterval > 0 {
				renderer.StartReloader(ctx, cfg.Render.TemplatesDir, cfg.Render.ReloadInterval)
			}

			source := fixtures.Embedded()
			if cfg.Fixtures.Dir != "" {
				source = fixtures.Dir(cfg.Fixtures.Dir)
			}

			h := server.NewHandler(renderer, source, cfg.Server.ExportScriptURL)
			srv := &http.Server{
				Addr:         cfg.Server.Addr,
				Handler:      server.New(cfg.Server, h),
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Log.Info("starting preview server", "addr", srv.Addr, "language", cfg.Render.Language)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	return cmd
}
