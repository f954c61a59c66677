package model

import "time"

// Status is the lifecycle state of a chore instance.
type Status string

const (
	StatusInactive  Status = "inactive"
	StatusPending   Status = "pending"
	StatusOverdue   Status = "overdue"
	StatusCompleted Status = "completed"
)

// Instance is one dated occurrence of a chore, the unit that carries
// completion state. AssignedPeople is snapshotted at generation time and does
// not follow later edits to the chore. Completions keys are always a subset
// of AssignedPeople; a missing key means not completed.
type Instance struct {
	ChoreID        string          `json:"chore_id"`
	DueDate        time.Time       `json:"due_date"`
	Status         Status          `json:"status"`
	AssignedPeople []string        `json:"assigned_people"`
	Completions    map[string]bool `json:"completions"`
}

// InstanceKey builds the deduplication key for a chore occurrence: one
// instance per (chore, calendar day).
func InstanceKey(choreID string, due time.Time) string {
	return choreID + "_" + due.Format("2006-01-02")
}

// Key returns the instance's own deduplication key.
func (i *Instance) Key() string {
	return InstanceKey(i.ChoreID, i.DueDate)
}

// Assigned reports whether the person is in the instance's assignee snapshot.
func (i *Instance) Assigned(personID string) bool {
	for _, id := range i.AssignedPeople {
		if id == personID {
			return true
		}
	}
	return false
}

// CompletedBy reports whether the person has completed this instance.
func (i *Instance) CompletedBy(personID string) bool {
	return i.Completions[personID]
}

// FullyCompleted reports whether every assignee has completed the instance.
// An instance with no assignees is never considered fully completed.
func (i *Instance) FullyCompleted() bool {
	if len(i.AssignedPeople) == 0 {
		return false
	}
	for _, id := range i.AssignedPeople {
		if !i.Completions[id] {
			return false
		}
	}
	return true
}

// Active reports whether the instance is actionable (pending or overdue).
func (i *Instance) Active() bool {
	return i.Status == StatusPending || i.Status == StatusOverdue
}

// Clone returns a deep copy safe to hand to readers outside the engine.
func (i *Instance) Clone() *Instance {
	c := *i
	c.AssignedPeople = append([]string(nil), i.AssignedPeople...)
	c.Completions = make(map[string]bool, len(i.Completions))
	for k, v := range i.Completions {
		c.Completions[k] = v
	}
	return &c
}
