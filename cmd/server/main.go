package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vocamate/vocamate/internal/api"
	"github.com/vocamate/vocamate/internal/catalog"
	"github.com/vocamate/vocamate/internal/config"
	"github.com/vocamate/vocamate/internal/orchestrator"
	"github.com/vocamate/vocamate/internal/provider"
	"github.com/vocamate/vocamate/internal/provider/llm"
	"github.com/vocamate/vocamate/internal/provider/tts"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cat, err := catalog.Load(cfg.VoicesFile)
	if err != nil {
		slog.Error("failed to load voice catalog", "error", err)
		os.Exit(1)
	}

	registry := provider.NewRegistry()
	murf := tts.NewMurfAdapter(cfg.MurfAPIKey, cfg.MurfBaseURL)
	if err := registerProviders(cfg, registry, murf); err != nil {
		slog.Error("failed to register providers", "error", err)
		os.Exit(1)
	}

	orch := orchestrator.New(registry, murf, cat, cfg.DefaultAIProvider)
	router := api.NewRouter(cfg, registry, orch, murf, cat)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
		// Speech synthesis can take close to a minute; keep write
		// headroom above the orchestrator's speech budget.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting",
			"port", cfg.Port,
			"environment", cfg.Env,
			"cors_origin", cfg.AllowedOrigin,
			"openai_configured", cfg.OpenAIAPIKey != "",
			"gemini_configured", cfg.GeminiAPIKey != "",
			"murf_configured", cfg.MurfAPIKey != "",
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}

// registerProviders wires every adapter into the registry. Adapters are
// registered even without credentials so requests that select them get
// a NotConfigured error instead of an unknown-provider fallback.
func registerProviders(cfg *config.Config, registry *provider.Registry, murf *tts.MurfAdapter) error {
	gemini, err := llm.NewGeminiAdapter(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return err
	}
	registry.RegisterChat(gemini)
	slog.Info("registered chat provider", "name", gemini.Name(), "available", gemini.Available())

	openai := llm.NewOpenAIAdapter(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	registry.RegisterChat(openai)
	slog.Info("registered chat provider", "name", openai.Name(), "available", openai.Available())

	registry.RegisterSpeech(murf)
	slog.Info("registered speech provider", "name", murf.Name(), "available", murf.Available())

	return nil
}
