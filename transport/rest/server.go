package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// NewRouter registers the ping probe and the game API.
func NewRouter(logger *slog.Logger, games gameUseCase) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", pingHandler)

	handlers := NewGameHandlers(logger, games)

	mux.HandleFunc("POST /games", handlers.Create)
	mux.HandleFunc("GET /games/{id}", handlers.Get)
	mux.HandleFunc("DELETE /games/{id}", handlers.Delete)
	mux.HandleFunc("POST /games/{id}/roll", handlers.Roll)
	mux.HandleFunc("POST /games/{id}/move", handlers.Move)
	mux.HandleFunc("POST /games/{id}/pass", handlers.Pass)
	mux.HandleFunc("POST /games/{id}/reset", handlers.Reset)
	mux.HandleFunc("GET /games/{id}/path", handlers.Path)

	return mux
}

// Start serves handler on port until ctx is canceled, then shuts down gracefully.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
