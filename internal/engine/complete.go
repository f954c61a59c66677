package engine

import (
	"log/slog"

	"chorenet/internal/model"
)

// Complete records a person's completion of an instance. It returns false
// when the instance does not exist or the person is not in the instance's
// assignee snapshot (recording a stray completion would break the invariant
// that completion keys are a subset of the assignees).
//
// Two events can result: a chore_completed event exactly when this call
// flips the last outstanding assignee, and a person_completed event when the
// acting person now has zero incomplete active instances (provided they had
// at least one active instance going in).
func Complete(s *Store, instanceKey, personID string, logger *slog.Logger) (bool, []Event) {
	inst, ok := s.instances[instanceKey]
	if !ok {
		logger.Warn("complete: unknown instance", "key", instanceKey)
		return false, nil
	}
	if !inst.Assigned(personID) {
		logger.Warn("complete: person not assigned", "key", instanceKey, "person_id", personID)
		return false, nil
	}

	hadActive := len(s.ActiveInstancesFor(personID)) > 0

	inst.Completions[personID] = true

	var events []Event
	if inst.Status != model.StatusCompleted && inst.FullyCompleted() {
		inst.Status = model.StatusCompleted
		chore := s.chores[inst.ChoreID]
		events = append(events, ChoreCompleted{
			Chore:    chore,
			Instance: inst.Clone(),
			Target:   chore.NotifyTarget,
		})
	}

	if ev, ok := personCompletedEvent(s, personID, hadActive); ok {
		events = append(events, ev)
	}

	return true, events
}

// personCompletedEvent checks whether the person has finished everything
// currently on their plate. The empty active set does not count as "all
// complete": the event only fires when the person had active work before
// this call.
func personCompletedEvent(s *Store, personID string, hadActive bool) (PersonCompleted, bool) {
	if !hadActive {
		return PersonCompleted{}, false
	}
	person, ok := s.people[personID]
	if !ok {
		return PersonCompleted{}, false
	}

	var remaining []*model.Instance
	var done []*model.Instance
	for _, inst := range s.ActiveInstancesFor(personID) {
		if inst.CompletedBy(personID) {
			done = append(done, inst.Clone())
		} else {
			remaining = append(remaining, inst)
		}
	}
	if len(remaining) > 0 {
		return PersonCompleted{}, false
	}

	return PersonCompleted{
		PersonID:   personID,
		PersonName: person.Name,
		Instances:  done,
		Target:     person.NotifyTarget,
	}, true
}

// Uncomplete reverts a person's completion. A completed instance goes back
// to pending, never straight to overdue even if its due date has since
// passed. Returns false for an unknown instance or a non-assignee.
func Uncomplete(s *Store, instanceKey, personID string, logger *slog.Logger) bool {
	inst, ok := s.instances[instanceKey]
	if !ok {
		logger.Warn("uncomplete: unknown instance", "key", instanceKey)
		return false
	}
	if !inst.Assigned(personID) {
		logger.Warn("uncomplete: person not assigned", "key", instanceKey, "person_id", personID)
		return false
	}

	inst.Completions[personID] = false
	if inst.Status == model.StatusCompleted {
		inst.Status = model.StatusPending
	}
	return true
}

// CheckAllCompleted gathers the active set and reports the aggregate
// all-chores-completed event when it is non-empty and every instance in it
// has all of its assignees marked complete. An empty active set reports
// nothing.
func CheckAllCompleted(s *Store) (AllChoresCompleted, bool) {
	active := s.ActiveInstances()
	if len(active) == 0 {
		return AllChoresCompleted{}, false
	}

	var completed []*model.Instance
	for _, inst := range active {
		if !inst.FullyCompleted() {
			return AllChoresCompleted{}, false
		}
		completed = append(completed, inst.Clone())
	}
	return AllChoresCompleted{Instances: completed}, true
}
