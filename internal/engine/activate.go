package engine

import (
	"time"

	"chorenet/internal/model"
)

// Activate promotes inactive instances to pending when their chore's time
// window permits. Returns clones of the instances activated this pass, to be
// reported together as one batch event.
func Activate(s *Store, now time.Time) []*model.Instance {
	var activated []*model.Instance

	for _, inst := range s.instances {
		if inst.Status != model.StatusInactive {
			continue
		}
		chore, ok := s.chores[inst.ChoreID]
		if !ok {
			// Orphaned instance from a removed chore; leave it dormant.
			continue
		}
		if !shouldActivate(s, chore, inst, now) {
			continue
		}
		inst.Status = model.StatusPending
		activated = append(activated, inst.Clone())
	}

	return activated
}

// shouldActivate applies the activation policy: all-day chores activate
// unconditionally; otherwise any assigned person whose window for the
// chore's period contains the current wall-clock time activates it. An
// instance with no assignees never activates.
func shouldActivate(s *Store, chore model.Chore, inst *model.Instance, now time.Time) bool {
	if chore.Period == model.PeriodAllDay {
		return true
	}

	clock := now.Format("15:04")
	for _, personID := range inst.AssignedPeople {
		person, ok := s.people[personID]
		if !ok {
			continue
		}
		start, end := windowRange(person.TimeWindows, chore.Period)
		if start <= clock && clock <= end {
			return true
		}
	}
	return false
}

// windowRange resolves a person's window for a period, falling back to the
// documented defaults when the person has no explicit window configured.
func windowRange(w model.TimeWindows, p model.Period) (start, end string) {
	start, end = w.Range(p)
	if start == "" || end == "" {
		defStart, defEnd := model.DefaultTimeWindows().Range(p)
		if start == "" {
			start = defStart
		}
		if end == "" {
			end = defEnd
		}
	}
	return start, end
}
