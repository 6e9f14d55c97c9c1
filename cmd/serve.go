package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/novelscope/novelscope/internal/analysis"
	"github.com/novelscope/novelscope/internal/catalogstore"
	"github.com/novelscope/novelscope/internal/handlers"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var catalogDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web server for the novel analysis interface",
		Long: `Starts the NovelScope web interface on the specified port.

The interface lets you pick a curated novel (or upload your own .txt),
generate a plot summary, extract characters, infer a Big Five personality
profile and retell the story from that character's perspective.

The curated catalog must exist before serving; produce it with
"novelscope curate".`,
		Example: `  # Start server on default port 8888
  novelscope serve

  # Start server on custom port with a custom catalog location
  novelscope serve --port 3000 --catalog ./catalog`,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, titleMap, err := catalogstore.Load(catalogDir)
			if err != nil {
				return fmt.Errorf("unable to load catalog: %w", err)
			}

			service, err := analysis.NewService()
			if err != nil {
				return err
			}
			if err := service.CheckCredentials(); err != nil {
				return err
			}

			handler := handlers.New(service, books, titleMap)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/catalog", handler.HandleCatalog)
			mux.HandleFunc("/api/sessions", handler.HandleSessions)
			mux.HandleFunc("/api/sessions/", handler.HandleSessionDetail)
			mux.HandleFunc("/api/upload", handler.HandleUpload)
			mux.HandleFunc("/", handler.HandleStatic)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("NovelScope interface available", "addr", addr, "url", "http://localhost"+addr, "model", service.Model())
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

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVar(&catalogDir, "catalog", ".", "Directory holding books_data.json and korean_map.json")

	return cmd
}
