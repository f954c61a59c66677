package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(testLogger)
	c := NewClient(hub, nil)
	hub.Register(c)
	defer hub.Unregister(c)

	hub.Broadcast(Message{Type: "chore_completed", Payload: map[string]string{"chore_id": "dishes"}})

	select {
	case data := <-c.send:
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if msg.Type != "chore_completed" {
			t.Errorf("type = %q, want chore_completed", msg.Type)
		}
	default:
		t.Fatal("no message delivered")
	}
}

func TestHubSnapshotReplayOnRegister(t *testing.T) {
	hub := NewHub(testLogger)
	hub.BroadcastSnapshot(Message{Type: "snapshot", Payload: map[string]int{"instances": 3}})

	// A client connecting after the broadcast still gets the snapshot.
	c := NewClient(hub, nil)
	hub.Register(c)
	defer hub.Unregister(c)

	select {
	case data := <-c.send:
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if msg.Type != "snapshot" {
			t.Errorf("type = %q, want snapshot", msg.Type)
		}
	default:
		t.Fatal("snapshot not replayed to late client")
	}
}

func TestHubDropsWhenClientBufferFull(t *testing.T) {
	hub := NewHub(testLogger)
	c := NewClient(hub, nil)
	hub.Register(c)
	defer hub.Unregister(c)

	// Fill the buffer and then some; Broadcast must not block.
	for i := 0; i < sendBufferSize*2; i++ {
		hub.Broadcast(Message{Type: "tick"})
	}

	if len(c.send) != sendBufferSize {
		t.Errorf("buffered = %d, want %d", len(c.send), sendBufferSize)
	}
}

func TestHubClientCount(t *testing.T) {
	hub := NewHub(testLogger)
	if hub.ClientCount() != 0 {
		t.Fatal("fresh hub has clients")
	}

	c1 := NewClient(hub, nil)
	c2 := NewClient(hub, nil)
	hub.Register(c1)
	hub.Register(c2)
	if hub.ClientCount() != 2 {
		t.Errorf("count = %d, want 2", hub.ClientCount())
	}

	hub.Unregister(c1)
	if hub.ClientCount() != 1 {
		t.Errorf("count = %d, want 1", hub.ClientCount())
	}
}
