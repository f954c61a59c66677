package engine

import (
	"log/slog"
	"time"

	"chorenet/internal/model"
	"chorenet/internal/recurrence"
)

// Generate creates instances for every enabled chore whose next due date has
// arrived. Generation is idempotent within a calendar day: the instance key
// dedups by (chore, due date). Returns the number of instances created.
//
// A malformed rule skips only that chore; generation continues for the rest.
func Generate(s *Store, now time.Time, logger *slog.Logger) int {
	created := 0

	for choreID, chore := range s.chores {
		if !chore.Enabled {
			continue
		}

		// A once chore is consumed by its first instance.
		if chore.Recurrence.Type == model.RecurrenceOnce && s.HasInstanceFor(choreID) {
			continue
		}

		due, ok := recurrence.NextDue(chore.Recurrence, now)
		if !ok {
			if err := recurrence.Validate(chore.Recurrence); err != nil {
				logger.Warn("skipping chore with malformed recurrence",
					"chore_id", choreID, "error", err)
			}
			continue
		}
		if due.After(now) {
			continue
		}

		key := model.InstanceKey(choreID, due)
		if _, exists := s.instances[key]; exists {
			continue
		}

		s.instances[key] = &model.Instance{
			ChoreID:        choreID,
			DueDate:        due,
			Status:         model.StatusInactive,
			AssignedPeople: append([]string(nil), chore.AssignedPeople...),
			Completions:    map[string]bool{},
		}
		created++
		logger.Debug("generated instance", "key", key, "due", due)
	}

	return created
}
