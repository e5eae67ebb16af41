package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"portfolio-api/internal/handlers"
	"portfolio-api/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService     service.ChatService
	ContactService  service.ContactService
	MusicService    service.MusicService
	StatsService    service.CodingStatsService
	TelegramUpdates service.UpdatesClient

	ChatLimiter    handlers.Limiter
	ContactLimiter handlers.Limiter

	HealthChecks []handlers.HealthCheck
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(Recoverer)
	r.Use(CORS)
	r.Use(middleware.Heartbeat("/ping"))

	r.NotFound(jsonError(http.StatusNotFound, "Not found"))
	r.MethodNotAllowed(jsonError(http.StatusMethodNotAllowed, "Method not allowed"))

	chatHandler := handlers.NewChatHandler(deps.ChatService, deps.ChatLimiter)
	contactHandler := handlers.NewContactHandler(deps.ContactService, deps.ContactLimiter)
	spotifyHandler := handlers.NewSpotifyHandler(deps.MusicService)
	wakatimeHandler := handlers.NewWakaTimeHandler(deps.StatsService)
	telegramHandler := handlers.NewTelegramHandler(deps.TelegramUpdates)
	healthHandler := handlers.NewHealthHandler(deps.HealthChecks...)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		// The chat and contact handlers answer every method themselves so that
		// a GET gets their JSON 405.
		r.Handle("/chat", chatHandler)
		r.Handle("/contact", contactHandler)
		r.Handle("/health", healthHandler)

		r.Get("/telegram-chat-id", telegramHandler.ServeHTTP)
		r.Get("/wakatime/stats", wakatimeHandler.ServeHTTP)

		r.Route("/spotify", func(r chi.Router) {
			r.Get("/now-playing", spotifyHandler.NowPlaying)
			r.Get("/token", spotifyHandler.Token)
			r.Put("/play", spotifyHandler.Play)
			r.Get("/callback", spotifyHandler.Callback)
		})
	})

	return r
}

func jsonError(status int, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(handlers.ErrorResponse{Error: message})
	}
}
