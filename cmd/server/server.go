package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dm/internal/handlers"
	gamev1 "github.com/KirkDiggler/rpg-dm/internal/handlers/game/v1"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/clock"
)

var httpPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the rpg-dm HTTP API with the event stream and metrics.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP port, overrides HTTP_PORT")
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	if cmd.Flags().Changed("port") {
		cfg.HTTPPort = httpPort
	}

	session, cleanup, err := buildSession(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build game session: %w", err)
	}
	defer cleanup()

	gameHandler, err := gamev1.NewHandler(&gamev1.HandlerConfig{
		Service:      session,
		Clock:        clock.New(),
		VictoryDelay: cfg.VictoryDelay,
	})
	if err != nil {
		return fmt.Errorf("failed to create game handler: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router, err := handlers.NewRouter(&handlers.RouterConfig{
		Game:        gameHandler,
		CORSOrigins: cfg.CORSOrigins,
		Metrics:     true,
	})
	if err != nil {
		return fmt.Errorf("failed to create router: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "port", cfg.HTTPPort, "narrator", cfg.NarratorBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down http server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown timeout exceeded, forcing stop", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
