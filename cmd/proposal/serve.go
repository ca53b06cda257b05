package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"

	"github.com/aretw0/proposal"
	"github.com/aretw0/proposal/internal/platform"
	"github.com/aretw0/proposal/internal/server"
	adapter "github.com/aretw0/proposal/pkg/adapters/lifecycle"
	"github.com/aretw0/proposal/pkg/core"
)

var (
	serveAddr   string
	serveStatic string
	serveWatch  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the selection page and the JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger := slog.Default()
		opts := append(platform.FromConfig(cfg),
			proposal.WithLogger(logger),
			proposal.WithWatcherErrorHandler(func(err error) {
				logger.Warn("dataset watcher error", "error", err)
			}),
		)
		svc, err := proposal.New(opts...)
		if err != nil {
			return err
		}

		// A failed first load is not fatal here: the page shows the status and
		// POST /api/reload retries.
		if st, err := svc.Reload(ctx); err != nil {
			logger.Warn("initial load failed", "status", st.Message())
		}

		if serveWatch {
			if err := watch(ctx, svc, logger); err != nil {
				return err
			}
		}

		addr := serveAddr
		if addr == "" {
			addr = cfg.Addr
		}
		static := serveStatic
		if static == "" {
			static = cfg.StaticDir
		}

		srv, err := server.New(server.Config{
			Service:       svc,
			Logger:        logger,
			StaticDir:     static,
			FreshPatterns: cfg.FreshPatterns,
		})
		if err != nil {
			return err
		}
		if err := srv.Run(ctx, addr); err != nil {
			fatal("server stopped", err)
		}
		return nil
	},
}

// watch reloads the dataset on every change event until ctx is done.
func watch(ctx context.Context, svc *core.Service, logger *slog.Logger) error {
	events, err := svc.Watch(ctx)
	if errors.Is(err, core.ErrNotWatchable) {
		logger.Warn("dataset source cannot be watched, use POST /api/reload instead")
		return nil
	}
	if err != nil {
		return err
	}

	src := adapter.NewSource(events)
	if err := src.Start(ctx); err != nil {
		return err
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		for e := range src.Events() {
			logger.Info("dataset changed", "event", e.String())
			if st, err := svc.Reload(ctx); err != nil {
				logger.Warn("reload failed", "status", st.Message())
			}
		}
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		logger.Error("reload loop failed", "error", err)
	}))
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
	serveCmd.Flags().StringVar(&serveStatic, "static", "", "Directory served under /static")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "Reload the dataset when the file changes")

	rootCmd.AddCommand(serveCmd)
}
