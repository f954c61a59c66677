package handler

import (
	"log/slog"
	"net/http"
	"sort"

	"chorenet/internal/engine"
	"chorenet/internal/model"
)

// SnapshotHandler serves the read-only views over household state.
type SnapshotHandler struct {
	coord  *engine.Coordinator
	logger *slog.Logger
}

func NewSnapshotHandler(coord *engine.Coordinator, logger *slog.Logger) *SnapshotHandler {
	return &SnapshotHandler{coord: coord, logger: logger}
}

// Snapshot returns the full household state in one payload.
func (h *SnapshotHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.coord.Snapshot())
}

func (h *SnapshotHandler) People(w http.ResponseWriter, r *http.Request) {
	snap := h.coord.Snapshot()
	people := make([]model.Person, 0, len(snap.People))
	for _, p := range snap.People {
		people = append(people, p)
	}
	sort.Slice(people, func(i, j int) bool { return people[i].ID < people[j].ID })
	writeJSON(w, http.StatusOK, people)
}

func (h *SnapshotHandler) Chores(w http.ResponseWriter, r *http.Request) {
	snap := h.coord.Snapshot()
	chores := make([]model.Chore, 0, len(snap.Chores))
	for _, c := range snap.Chores {
		chores = append(chores, c)
	}
	sort.Slice(chores, func(i, j int) bool { return chores[i].ID < chores[j].ID })
	writeJSON(w, http.StatusOK, chores)
}

type personSummary struct {
	PersonID     string `json:"person_id"`
	PersonName   string `json:"person_name"`
	ActiveCount  int    `json:"active_count"`
	OverdueCount int    `json:"overdue_count"`
}

type summaryResponse struct {
	PendingCount int             `json:"pending_count"`
	OverdueCount int             `json:"overdue_count"`
	ActiveTotal  int             `json:"active_total"`
	People       []personSummary `json:"people"`
}

// Summary aggregates household-wide and per-person counts of active and
// overdue chores.
func (h *SnapshotHandler) Summary(w http.ResponseWriter, r *http.Request) {
	snap := h.coord.Snapshot()

	perPerson := make(map[string]*personSummary, len(snap.People))
	for _, p := range snap.People {
		perPerson[p.ID] = &personSummary{PersonID: p.ID, PersonName: p.Name}
	}

	var resp summaryResponse
	for _, inst := range snap.Instances {
		if inst.Status != model.StatusPending && inst.Status != model.StatusOverdue {
			continue
		}
		resp.ActiveTotal++
		if inst.Status == model.StatusPending {
			resp.PendingCount++
		} else {
			resp.OverdueCount++
		}
		for _, pid := range inst.AssignedPeople {
			ps, ok := perPerson[pid]
			if !ok {
				continue
			}
			if inst.CompletedBy(pid) {
				continue
			}
			ps.ActiveCount++
			if inst.Status == model.StatusOverdue {
				ps.OverdueCount++
			}
		}
	}

	resp.People = make([]personSummary, 0, len(perPerson))
	for _, ps := range perPerson {
		resp.People = append(resp.People, *ps)
	}
	sort.Slice(resp.People, func(i, j int) bool { return resp.People[i].PersonID < resp.People[j].PersonID })

	writeJSON(w, http.StatusOK, resp)
}
