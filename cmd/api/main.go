package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/handlers"
	"portfolio-api/internal/http"
	"portfolio-api/internal/llm"
	"portfolio-api/internal/prompt"
	"portfolio-api/internal/ratelimit"
	"portfolio-api/internal/service"
	"portfolio-api/internal/spotify"
	"portfolio-api/internal/telegram"
	"portfolio-api/internal/wakatime"
)

const (
	chatRateLimit    = 20
	contactRateLimit = 5
	rateLimitWindow  = time.Minute

	// integrationTimeout bounds the short request/response calls to Telegram, Spotify and WakaTime.
	integrationTimeout = 10 * time.Second
	shutdownTimeout    = 15 * time.Second
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	systemPrompt, err := prompt.Load(cfg.ChatPromptPath)
	if err != nil {
		log.Fatalf("Failed to load chat prompt: %v", err)
	}

	// External clients
	llmClient := llm.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.UpstreamTimeout)
	if !llmClient.Configured() {
		slog.Warn("GEMINI_API_KEY not set, chat endpoint disabled")
	}

	telegramClient := telegram.NewClient(cfg.TelegramBaseURL, cfg.TelegramBotToken, integrationTimeout)
	notifier := telegram.NewNotifier(telegramClient, cfg.TelegramChatID)
	if !notifier.Configured() {
		slog.Warn("Telegram bot token or chat id not set, contact form cannot deliver messages")
	}

	spotifyClient := spotify.NewClient(spotify.Config{
		ClientID:     cfg.SpotifyClientID,
		ClientSecret: cfg.SpotifyClientSecret,
		RefreshToken: cfg.SpotifyRefreshToken,
		RedirectURI:  cfg.SpotifyRedirectURI,
		AccountsURL:  cfg.SpotifyAccountsURL,
		APIURL:       cfg.SpotifyAPIURL,
	}, integrationTimeout)
	tokenCache := spotify.NewTokenCache(spotifyClient, spotify.TokenTTL)

	wakatimeClient := wakatime.NewClient(cfg.WakaTimeBaseURL, cfg.WakaTimeAPIKey, integrationTimeout)

	// Rate limiters, swept in the background until shutdown
	chatLimiter := ratelimit.NewFixedWindow(chatRateLimit, rateLimitWindow)
	contactLimiter := ratelimit.NewFixedWindow(contactRateLimit, rateLimitWindow)
	go chatLimiter.Run(ctx, cfg.RateLimitSweepInterval)
	go contactLimiter.Run(ctx, cfg.RateLimitSweepInterval)

	deps := &http.Deps{
		ChatService:     service.NewChatService(llmClient, systemPrompt),
		ContactService:  service.NewContactService(notifier),
		MusicService:    service.NewMusicService(spotifyClient, tokenCache),
		StatsService:    service.NewCodingStatsService(wakatimeClient),
		TelegramUpdates: telegramClient,
		ChatLimiter:     chatLimiter,
		ContactLimiter:  contactLimiter,
		HealthChecks: []handlers.HealthCheck{
			{Name: "gemini", Integration: llmClient, Critical: true},
			{Name: "telegram", Integration: notifier},
			{Name: "spotify", Integration: spotifyClient},
			{Name: "wakatime", Integration: wakatimeClient},
		},
	}
	router := http.NewRouter(deps)

	// WriteTimeout stays unset: chat responses are long-lived streams.
	srv := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("Starting API server", "addr", srv.Addr)
		slog.Debug("Gemini configuration", "base_url", cfg.GeminiBaseURL, "model", cfg.GeminiModel)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
