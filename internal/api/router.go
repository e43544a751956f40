package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordscramble/internal/api/handler"
	"github.com/mcoot/wordscramble/internal/api/middleware"
	"github.com/mcoot/wordscramble/internal/services/dictionary"
	"github.com/mcoot/wordscramble/internal/services/game"
	"github.com/mcoot/wordscramble/internal/services/wordsource"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	GameController    *game.Controller
	DictionaryService *dictionary.Service
	WordSource        *wordsource.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.GameController)
	healthHandler := handler.NewHealthHandler(cfg.DictionaryService, cfg.WordSource)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	useMiddleware(api, cfg.Logger)

	// Session routes
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", sessionHandler.End).Methods(http.MethodDelete)
	sessions.HandleFunc("/{id}/words", sessionHandler.Submit).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/restart", sessionHandler.Restart).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler.Get).Methods(http.MethodGet)

	return r
}

// useMiddleware installs request logging outside panic recovery, so a
// recovered panic carries the request ID and still gets an access log line.
func useMiddleware(r *mux.Router, logger *slog.Logger) {
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
}
