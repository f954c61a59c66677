package handler

import (
	"log/slog"
	"net/http"

	"chorenet/internal/engine"
)

// ChoreHandler exposes the one chore mutation the engine supports: toggling
// the enabled flag.
type ChoreHandler struct {
	coord  *engine.Coordinator
	logger *slog.Logger
}

func NewChoreHandler(coord *engine.Coordinator, logger *slog.Logger) *ChoreHandler {
	return &ChoreHandler{coord: coord, logger: logger}
}

func (h *ChoreHandler) Enable(w http.ResponseWriter, r *http.Request) {
	h.setEnabled(w, r, true)
}

func (h *ChoreHandler) Disable(w http.ResponseWriter, r *http.Request) {
	h.setEnabled(w, r, false)
}

func (h *ChoreHandler) setEnabled(w http.ResponseWriter, r *http.Request, enabled bool) {
	choreID := r.PathValue("id")
	if !h.coord.SetChoreEnabled(choreID, enabled) {
		errorJSON(w, http.StatusNotFound, "chore not found")
		return
	}
	h.logger.Info("chore toggled", "chore_id", choreID, "enabled", enabled)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
