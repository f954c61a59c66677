package engine

import (
	"time"

	"chorenet/internal/model"
)

// MarkOverdue demotes pending instances whose due day has fully elapsed:
// the current calendar date is strictly later than the due date. The
// date-only check applies to morning/afternoon/evening chores as well, not
// just all-day ones; a timed chore only turns overdue at the next day
// boundary. Overdue never regresses to pending on its own. Returns the
// number of instances marked.
func MarkOverdue(s *Store, now time.Time) int {
	marked := 0
	today := startOfDay(now)

	for _, inst := range s.instances {
		if inst.Status != model.StatusPending {
			continue
		}
		if today.After(startOfDay(inst.DueDate)) {
			inst.Status = model.StatusOverdue
			marked++
		}
	}

	return marked
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
