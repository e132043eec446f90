package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kaheicheng13-source/Interactive-Teaching/internal/api"
	"github.com/kaheicheng13-source/Interactive-Teaching/internal/catalog"
	"github.com/kaheicheng13-source/Interactive-Teaching/internal/infrastructure/config"
	"github.com/kaheicheng13-source/Interactive-Teaching/internal/store"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	// The catalog is loaded once; a failed load is reported once and
	// the game runs with an empty set rather than crashing.
	cat, err := catalog.Load(cfg.QuestionsPath)
	if err != nil {
		logger.Error("failed to load question catalog", "path", cfg.QuestionsPath, "error", err)
		cat = catalog.Empty()
	} else {
		logger.Info("question catalog loaded", "path", cfg.QuestionsPath, "questions", cat.Count())
	}

	sessions := store.NewMemory()
	handler := api.NewHandler(sessions, cat, cfg.GridTiles, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
