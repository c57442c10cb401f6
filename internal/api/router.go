package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pitwall/pitgames/internal/api/handler"
	"github.com/pitwall/pitgames/internal/api/middleware"
	"github.com/pitwall/pitgames/internal/entity"
	"github.com/pitwall/pitgames/internal/services/guesswho"
	"github.com/pitwall/pitgames/internal/services/puzzle"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	PuzzleService   *puzzle.Service
	GuessWhoService *guesswho.Service
	EntityStore     entity.Store
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	puzzleHandler := handler.NewPuzzleHandler(cfg.PuzzleService)
	guessWhoHandler := handler.NewGuessWhoHandler(cfg.GuessWhoService)
	championshipHandler := handler.NewChampionshipHandler(cfg.EntityStore)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Driverdle routes
	api.HandleFunc("/puzzle/today", puzzleHandler.Today).Methods(http.MethodGet)
	api.HandleFunc("/puzzle/guess", puzzleHandler.Guess).Methods(http.MethodPost)
	api.HandleFunc("/puzzle/score", puzzleHandler.Score).Methods(http.MethodPost)

	// Guess-who routes
	api.HandleFunc("/guesswho/games", guessWhoHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/guesswho/join", guessWhoHandler.Join).Methods(http.MethodGet)

	// Championship listing
	api.HandleFunc("/championships", championshipHandler.List).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
