package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"buildtrack/storage"
	"buildtrack/web"
)

const shutdownTimeout = 10 * time.Second

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP import service",
	Long: `Start an HTTP server exposing the spreadsheet import endpoint and read-only record views.

Endpoints:
- POST /api/import          multipart upload, field "file", .xlsx or .xls
- GET  /api/records/{kind}  stored records of one kind
- GET  /api/summary         stored record counts per kind
- GET  /health              liveness probe`,
	Example: `
  # Start on the configured port
  buildtrack serve

  # Start on a custom port against a specific SQLite file
  buildtrack serve --port 9090 --db ./site-data.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, err := storage.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer store.Close()

		port := resolveServePort(servePort, cfg.Server.Port)
		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           web.NewServer(store, *cfg, zap.L().Named("web")),
			ReadHeaderTimeout: 10 * time.Second,
		}

		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			zap.L().Info("starting server", zap.Int("port", port), zap.String("store", cfg.Store.Driver))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return eris.Wrap(err, "server listen")
			}
			return nil
		})
		group.Go(func() error {
			<-groupCtx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return eris.Wrap(server.Shutdown(shutdownCtx), "shutdown server")
		})

		return group.Wait()
	},
}

func resolveServePort(flagPort, configPort int) int {
	if flagPort > 0 {
		return flagPort
	}
	return configPort
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP port (default from server.port)")
}
