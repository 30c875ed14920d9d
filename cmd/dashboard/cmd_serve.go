package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"rescue-dashboard/internal/adapters/storage"
	"rescue-dashboard/internal/platform/config"
	"rescue-dashboard/internal/platform/logger"
	"rescue-dashboard/internal/router"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// serveCmd levanta el dashboard HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP dashboard",
	Long: `Load config (defaults, config.yaml, env), open the configured store
and serve the dashboard until SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Error("open store", map[string]any{"error": err})
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("close store", map[string]any{"error": err})
		}
	}()

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Repository: store.Repository,
			Backend:    store.Backend,
			Config:     cfg,
			Logger:     log,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "store": store.Backend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		log.Info("shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", map[string]any{"error": err})
		return err
	}
	return nil
}
