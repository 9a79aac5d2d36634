package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sternrassler/go-webkit/pkg/logging"
	"github.com/Sternrassler/go-webkit/pkg/ratelimit"
	"github.com/Sternrassler/go-webkit/pkg/store"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Args:  cobra.NoArgs,
		Short: "Serve the demo list over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides server.port)")

	return cmd
}

func (a *app) serve(ctx context.Context) error {
	logger := logging.NewLogger("pagedemo")

	redisClient := a.redisClient()
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	err := redisClient.Ping(pingCtx).Err()
	cancel()
	if err != nil {
		logger.Error().Err(err).Str("addr", a.cfg.Redis.Addr).Msg("Failed to connect to Redis")
		return fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info().Str("addr", a.cfg.Redis.Addr).Msg("Connected to Redis")

	var limiter *ratelimit.Limiter
	if a.cfg.RateLimit.Enabled {
		limiter, err = ratelimit.NewLimiter(redisClient, a.cfg.RateLimit.Limiter(), logging.NewLogger("ratelimit"))
		if err != nil {
			return err
		}
	}

	list := store.NewList[Item](redisClient, a.cfg.Redis.ListKey())
	srv := newServer(serverConfig{
		Pagination: a.cfg.Pagination,
		Source:     listSource(list),
		Pinger:     redisClient,
		Limiter:    limiter,
		Logger:     logger,
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.Server.Port),
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", httpServer.Addr).
			Str("list", list.Key().String()).
			Bool("rate_limit", limiter != nil).
			Msg("Starting pagedemo server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-sigCtx.Done():
		logger.Info().Msg("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown error")
		return err
	}
	logger.Info().Msg("Server stopped")
	return nil
}
