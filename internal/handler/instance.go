package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"chorenet/internal/engine"
)

// InstanceHandler exposes the chore-instance command surface: the read view
// plus complete/uncomplete, the only externally invocable mutations.
type InstanceHandler struct {
	coord  *engine.Coordinator
	logger *slog.Logger
}

func NewInstanceHandler(coord *engine.Coordinator, logger *slog.Logger) *InstanceHandler {
	return &InstanceHandler{coord: coord, logger: logger}
}

// List returns all chore instances.
func (h *InstanceHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.coord.Snapshot().Instances)
}

type completionRequest struct {
	PersonID string `json:"person_id"`
	PIN      string `json:"pin,omitempty"`
}

// Complete marks an instance completed for a person. If the person has a
// configured PIN, the request must carry it. The engine re-runs its full
// tick sequence before this returns, so a subsequent read sees consistent
// state.
func (h *InstanceHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.applyCompletion(w, r, h.coord.Complete)
}

// Uncomplete reverts a person's completion of an instance.
func (h *InstanceHandler) Uncomplete(w http.ResponseWriter, r *http.Request) {
	h.applyCompletion(w, r, h.coord.Uncomplete)
}

func (h *InstanceHandler) applyCompletion(w http.ResponseWriter, r *http.Request, apply func(instanceKey, personID string) bool) {
	instanceKey := r.PathValue("id")

	var req completionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.PersonID = strings.TrimSpace(req.PersonID)
	if req.PersonID == "" {
		errorJSON(w, http.StatusBadRequest, "person_id is required")
		return
	}

	if person, ok := h.coord.Person(req.PersonID); ok && person.HasPIN() {
		if err := bcrypt.CompareHashAndPassword([]byte(person.PINHash), []byte(req.PIN)); err != nil {
			errorJSON(w, http.StatusForbidden, "invalid PIN")
			return
		}
	}

	if !apply(instanceKey, req.PersonID) {
		errorJSON(w, http.StatusNotFound, "instance not found or person not assigned")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
