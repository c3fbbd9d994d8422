package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Johnpaulreju/Digit-duel/internal/api/handler"
	"github.com/Johnpaulreju/Digit-duel/internal/api/middleware"
	"github.com/Johnpaulreju/Digit-duel/internal/services/room"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	RoomController *room.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	roomHandler := handler.NewRoomHandler(cfg.RoomController)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Room routes
	api.HandleFunc("/rooms", roomHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}", roomHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{code}/join", roomHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/secret", roomHandler.SetSecret).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/guess", roomHandler.Guess).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/rematch", roomHandler.Rematch).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/reaction", roomHandler.React).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
