package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chorenet/internal/model"
)

// DefaultInterval is the documented tick cadence.
const DefaultInterval = 60 * time.Second

// Persister is the persistence port. Load is called once at startup (by the
// composition root); the Coordinator only saves. Save failures are surfaced
// in the log, never propagated: the in-memory store stays authoritative.
type Persister interface {
	Save(snap model.Snapshot) error
}

// Coordinator owns the tick cadence and serializes every read-modify-write
// over the store: periodic ticks, on-demand re-runs, and completion commands
// all queue on one mutex and run to completion. There is no cancellation of
// a tick in flight.
type Coordinator struct {
	mu       sync.Mutex
	store    *Store
	persist  Persister
	sink     Sink
	interval time.Duration
	logger   *slog.Logger
	lastRun  time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// NewCoordinator wires the engine together. A nil sink or persister is
// allowed (events and saves are then dropped), which the tests use.
func NewCoordinator(store *Store, persist Persister, sink Sink, interval time.Duration, logger *slog.Logger) *Coordinator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Coordinator{
		store:    store,
		persist:  persist,
		sink:     sink,
		interval: interval,
		logger:   logger,
	}
}

// Start begins the periodic tick loop and runs one tick immediately so
// consumers see state before the first interval elapses.
func (c *Coordinator) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})

	c.RunNow()

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.RunNow()
			}
		}
	}()
}

// Stop halts the tick loop and waits for it to exit.
func (c *Coordinator) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	if c.done != nil {
		<-c.done
	}
}

// RunNow executes one full tick sequence immediately.
func (c *Coordinator) RunNow() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick(time.Now())
}

// tick runs generate -> mark overdue -> activate -> aggregate check, then
// publishes the snapshot and persists if anything changed. Caller holds the
// lock.
func (c *Coordinator) tick(now time.Time) {
	generated := Generate(c.store, now, c.logger)
	overdue := MarkOverdue(c.store, now)
	activated := Activate(c.store, now)

	var events []Event
	if len(activated) > 0 {
		events = append(events, ChoresActivated{Instances: activated})
	}
	if ev, ok := CheckAllCompleted(c.store); ok {
		events = append(events, ev)
	}

	c.lastRun = now
	c.publish(events)
	if c.sink != nil {
		c.sink.PublishSnapshot(c.store.Snapshot(c.lastRun))
	}

	if generated > 0 || overdue > 0 || len(activated) > 0 {
		c.logger.Info("tick",
			"generated", generated,
			"overdue", overdue,
			"activated", len(activated))
		c.save()
	}
}

// Complete handles the externally invoked completion command: record the
// completion, persist, publish the resulting events, then re-run the full
// tick sequence so dependent views observe consistent state without waiting
// for the next interval.
func (c *Coordinator) Complete(instanceKey, personID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	ok, events := Complete(c.store, instanceKey, personID, c.logger)
	if !ok {
		return false
	}

	c.save()
	c.publish(events)
	c.tick(time.Now())
	return true
}

// Uncomplete reverts a completion and re-runs the tick sequence.
func (c *Coordinator) Uncomplete(instanceKey, personID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !Uncomplete(c.store, instanceKey, personID, c.logger) {
		return false
	}

	c.save()
	c.tick(time.Now())
	return true
}

// SetChoreEnabled toggles a chore's enabled flag and re-runs the tick
// sequence so a newly enabled chore gets its instance without waiting for
// the next interval. Disabling leaves existing instances untouched.
func (c *Coordinator) SetChoreEnabled(choreID string, enabled bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.store.SetChoreEnabled(choreID, enabled) {
		return false
	}

	c.save()
	c.tick(time.Now())
	return true
}

// Snapshot returns a deep copy of the current state for the read surface.
func (c *Coordinator) Snapshot() model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Snapshot(c.lastRun)
}

// Person resolves a person from the live configuration (used by the command
// surface for PIN checks).
func (c *Coordinator) Person(id string) (model.Person, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Person(id)
}

func (c *Coordinator) publish(events []Event) {
	if c.sink == nil || len(events) == 0 {
		return
	}
	c.sink.Publish(events)
}

func (c *Coordinator) save() {
	if c.persist == nil {
		return
	}
	if err := c.persist.Save(c.store.Snapshot(c.lastRun)); err != nil {
		c.logger.Error("persist save failed", "error", err)
	}
}
