package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/blockgame-go/internal/api/handler"
	"github.com/mcoot/blockgame-go/internal/api/middleware"
	"github.com/mcoot/blockgame-go/internal/dependencies/clock"
	"github.com/mcoot/blockgame-go/internal/services/leaderboard"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	Leaderboard leaderboard.ServiceInterface
	Clock       clock.Clock
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)

	scoreHandler := handler.NewScoreHandler(cfg.Leaderboard, cfg.Clock)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(middleware.LimitBody())

	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api.HandleFunc("/scores", scoreHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/scores", scoreHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/scores/{id}", scoreHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/scores/{id}", scoreHandler.Delete).Methods(http.MethodDelete)

	return r
}
