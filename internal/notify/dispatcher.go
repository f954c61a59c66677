package notify

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"chorenet/internal/engine"
	"chorenet/internal/model"
	"chorenet/internal/websocket"
)

// Sender pushes a payload to a webpush target. *PushService implements it;
// tests substitute a fake.
type Sender interface {
	Send(target model.PushTarget, payload Payload) error
}

// Dispatcher drains engine output: every event and snapshot is broadcast to
// WebSocket consumers, and events carrying a notification target reference
// additionally trigger a webpush send. Target invocation is fire-and-forget:
// it runs on its own goroutine, failures are logged, and nothing propagates
// back to the engine.
type Dispatcher struct {
	push    Sender
	targets map[string]model.PushTarget
	hub     *websocket.Hub
	logger  *slog.Logger

	mu      sync.Mutex
	expired map[string]struct{}
}

// NewDispatcher creates a dispatcher. push may be nil when no VAPID keys are
// configured; target invocations are then skipped with a debug log.
func NewDispatcher(push Sender, targets map[string]model.PushTarget, hub *websocket.Hub, logger *slog.Logger) *Dispatcher {
	if targets == nil {
		targets = map[string]model.PushTarget{}
	}
	return &Dispatcher{
		push:    push,
		targets: targets,
		hub:     hub,
		logger:  logger,
		expired: map[string]struct{}{},
	}
}

// Publish implements engine.Sink.
func (d *Dispatcher) Publish(events []engine.Event) {
	for _, ev := range events {
		if d.hub != nil {
			d.hub.Broadcast(websocket.Message{Type: ev.EventName(), Payload: ev})
		}

		switch e := ev.(type) {
		case engine.ChoreCompleted:
			d.invoke(e.Target, Payload{
				Title: e.Chore.Name,
				Body:  "Everyone has completed this chore.",
				Tag:   "chore-" + e.Chore.ID,
			})
		case engine.PersonCompleted:
			d.invoke(e.Target, Payload{
				Title: "All chores done",
				Body:  fmt.Sprintf("%s has finished every assigned chore.", e.PersonName),
				Tag:   "person-" + e.PersonID,
			})
		}
	}
}

// PublishSnapshot implements engine.Sink.
func (d *Dispatcher) PublishSnapshot(snap model.Snapshot) {
	if d.hub == nil {
		return
	}
	d.hub.BroadcastSnapshot(websocket.Message{Type: "snapshot", Payload: snap})
}

// invoke resolves a target name and sends to it asynchronously. Expired
// subscriptions are remembered and skipped for the rest of the process.
func (d *Dispatcher) invoke(name string, payload Payload) {
	if name == "" {
		return
	}
	if d.push == nil {
		d.logger.Debug("push disabled, skipping target", "target", name)
		return
	}
	target, ok := d.targets[name]
	if !ok {
		d.logger.Warn("unknown notify target", "target", name)
		return
	}

	d.mu.Lock()
	_, gone := d.expired[name]
	d.mu.Unlock()
	if gone {
		return
	}

	go func() {
		if err := d.push.Send(target, payload); err != nil {
			if errors.Is(err, ErrExpired) {
				d.mu.Lock()
				d.expired[name] = struct{}{}
				d.mu.Unlock()
				d.logger.Warn("notify target expired", "target", name)
				return
			}
			d.logger.Error("notify target send failed", "target", name, "error", err)
		}
	}()
}
