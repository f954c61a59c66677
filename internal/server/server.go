package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"chorenet/internal/engine"
	"chorenet/internal/handler"
	"chorenet/internal/middleware"
	ws "chorenet/internal/websocket"
)

// Server owns the HTTP surface: the JSON API, the health check, and the
// WebSocket upgrade endpoint. All state lives behind the Coordinator.
type Server struct {
	coord     *engine.Coordinator
	hub       *ws.Hub
	instanceH *handler.InstanceHandler
	snapshotH *handler.SnapshotHandler
	choreH    *handler.ChoreHandler
	logger    *slog.Logger
}

func New(coord *engine.Coordinator, hub *ws.Hub, logger *slog.Logger) *Server {
	return &Server{
		coord:     coord,
		hub:       hub,
		instanceH: handler.NewInstanceHandler(coord, logger.With("component", "instance")),
		snapshotH: handler.NewSnapshotHandler(coord, logger.With("component", "snapshot")),
		choreH:    handler.NewChoreHandler(coord, logger.With("component", "chore")),
		logger:    logger,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)

	mux.HandleFunc("GET /api/snapshot", s.snapshotH.Snapshot)
	mux.HandleFunc("GET /api/people", s.snapshotH.People)
	mux.HandleFunc("GET /api/chores", s.snapshotH.Chores)
	mux.HandleFunc("GET /api/summary", s.snapshotH.Summary)

	mux.HandleFunc("POST /api/chores/{id}/enable", s.choreH.Enable)
	mux.HandleFunc("POST /api/chores/{id}/disable", s.choreH.Disable)

	mux.HandleFunc("GET /api/instances", s.instanceH.List)
	mux.HandleFunc("POST /api/instances/{id}/complete", s.instanceH.Complete)
	mux.HandleFunc("POST /api/instances/{id}/uncomplete", s.instanceH.Uncomplete)

	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
