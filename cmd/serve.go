package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lehigh-university-libraries/artworks/internal/catalog"
	"github.com/lehigh-university-libraries/artworks/internal/handlers"
	"github.com/lehigh-university-libraries/artworks/internal/storage"
	"github.com/lehigh-university-libraries/artworks/internal/viewer"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var apiURL string
	var timeout time.Duration
	var sessionTTL time.Duration

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web server for the artworks viewer",
		Long: `Starts the artworks web interface on the specified port.

Each browser visit to / starts a session with its own selection. Sessions live
in memory only and are dropped after --session-ttl without activity.`,
		Example: `  # Start server on default port 8888
  artworks serve

  # Start server on custom port against a different API host
  artworks serve --port 3000 --api-url http://localhost:8080/api/v1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			port = stringFromEnv(cmd, "port", "ARTWORKS_PORT", port)
			sessionTTL = durationFromEnv(cmd, "session-ttl", "ARTWORKS_SESSION_TTL", sessionTTL)

			client := catalog.NewClient(apiURL, timeout)
			sessionStore := storage.New(func() *viewer.Controller {
				return viewer.New(client)
			})
			handler := handlers.New(sessionStore)

			// Set up routes
			mux := http.NewServeMux()
			handler.Routes(mux)

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			go sweepSessions(cmd.Context(), sessionStore, sessionTTL)

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Artworks interface available", "addr", addr, "url", "http://localhost"+addr, "api", client.BaseURL)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on (env ARTWORKS_PORT)")
	cmd.Flags().StringVar(&apiURL, "api-url", "", "Artworks API base URL (env ARTIC_API_URL, default "+catalog.DefaultBaseURL+")")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "HTTP timeout for API requests (0 for none)")
	cmd.Flags().DurationVar(&sessionTTL, "session-ttl", time.Hour, "Drop sessions idle for longer than this (env ARTWORKS_SESSION_TTL)")

	return cmd
}

func sweepSessions(ctx context.Context, sessionStore *storage.SessionStore, ttl time.Duration) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if pruned := sessionStore.Prune(ttl); pruned > 0 {
				slog.Info("Pruned idle sessions", "count", pruned, "remaining", sessionStore.Len())
			}
		}
	}
}
