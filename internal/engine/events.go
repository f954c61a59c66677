package engine

import "chorenet/internal/model"

// Event is a typed notification produced by the engine's state transitions.
// Events are collected during a tick or completion call and handed to the
// Sink once the mutations are done; delivery is the Sink's problem.
type Event interface {
	EventName() string
}

// ChoresActivated carries all instances activated within one tick.
type ChoresActivated struct {
	Instances []*model.Instance
}

func (ChoresActivated) EventName() string { return "chores_activated" }

// ChoreCompleted fires when the last outstanding assignee completes an
// instance. Target names the chore's notification target, if any.
type ChoreCompleted struct {
	Chore    model.Chore
	Instance *model.Instance
	Target   string
}

func (ChoreCompleted) EventName() string { return "chore_completed" }

// PersonCompleted fires when a person finishes the last of their active
// instances. Instances holds the active instances the person had at the time
// of the completing call.
type PersonCompleted struct {
	PersonID   string
	PersonName string
	Instances  []*model.Instance
	Target     string
}

func (PersonCompleted) EventName() string { return "person_completed" }

// AllChoresCompleted carries the active set once every assignee of every
// active instance is done.
type AllChoresCompleted struct {
	Instances []*model.Instance
}

func (AllChoresCompleted) EventName() string { return "all_chores_completed" }

// Sink receives engine output. Implementations must not block: the engine
// calls Publish while holding its lock.
type Sink interface {
	Publish(events []Event)
	PublishSnapshot(snap model.Snapshot)
}
