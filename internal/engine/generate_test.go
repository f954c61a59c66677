package engine

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"chorenet/internal/model"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Wednesday 2025-06-11, 09:00 local.
var wednesday = time.Date(2025, 6, 11, 9, 0, 0, 0, time.Local)

func testPeople() map[string]model.Person {
	return map[string]model.Person{
		"alice": {ID: "alice", Name: "Alice", TimeWindows: model.DefaultTimeWindows()},
		"bob":   {ID: "bob", Name: "Bob", TimeWindows: model.DefaultTimeWindows()},
	}
}

func dailyChore(id string, people ...string) model.Chore {
	return model.Chore{
		ID:             id,
		Name:           id,
		Enabled:        true,
		Recurrence:     model.Rule{Type: model.RecurrenceDaily},
		Period:         model.PeriodAllDay,
		AssignedPeople: people,
	}
}

func TestGenerateDailyIdempotent(t *testing.T) {
	s := NewStore(testPeople(), map[string]model.Chore{
		"dishes": dailyChore("dishes", "alice", "bob"),
	}, nil)

	if n := Generate(s, wednesday, testLogger); n != 1 {
		t.Fatalf("first generate created %d, want 1", n)
	}
	// Later the same day: no new instance.
	if n := Generate(s, wednesday.Add(5*time.Hour), testLogger); n != 0 {
		t.Fatalf("second generate created %d, want 0", n)
	}
	if len(s.Instances()) != 1 {
		t.Fatalf("store holds %d instances, want 1", len(s.Instances()))
	}

	inst, ok := s.Instance("dishes_2025-06-11")
	if !ok {
		t.Fatal("expected instance dishes_2025-06-11")
	}
	if inst.Status != model.StatusInactive {
		t.Errorf("status = %q, want inactive", inst.Status)
	}
	if len(inst.Completions) != 0 {
		t.Errorf("completions = %v, want empty", inst.Completions)
	}
}

func TestGenerateSkipsDisabled(t *testing.T) {
	chore := dailyChore("dishes", "alice")
	chore.Enabled = false
	s := NewStore(testPeople(), map[string]model.Chore{"dishes": chore}, nil)

	if n := Generate(s, wednesday, testLogger); n != 0 {
		t.Errorf("generated %d for disabled chore, want 0", n)
	}
}

func TestGenerateWeeklyNotDueToday(t *testing.T) {
	// Wednesday is Monday-weekday 2; a rule for weekday 2 rolls a week
	// ahead, so nothing is due now.
	s := NewStore(testPeople(), map[string]model.Chore{
		"bins": {
			ID: "bins", Name: "bins", Enabled: true,
			Recurrence:     model.Rule{Type: model.RecurrenceWeekly, Weekday: 2},
			Period:         model.PeriodAllDay,
			AssignedPeople: []string{"alice"},
		},
	}, nil)

	if n := Generate(s, wednesday, testLogger); n != 0 {
		t.Errorf("generated %d, want 0 (due date is next week)", n)
	}
}

func TestGenerateOnceRetiresAfterFirstInstance(t *testing.T) {
	s := NewStore(testPeople(), map[string]model.Chore{
		"fix-gate": {
			ID: "fix-gate", Name: "fix-gate", Enabled: true,
			Recurrence:     model.Rule{Type: model.RecurrenceOnce},
			Period:         model.PeriodAllDay,
			AssignedPeople: []string{"bob"},
		},
	}, nil)

	if n := Generate(s, wednesday, testLogger); n != 1 {
		t.Fatalf("generated %d, want 1", n)
	}
	// Next day: the once chore must not regenerate even though the dedup
	// key differs.
	if n := Generate(s, wednesday.AddDate(0, 0, 1), testLogger); n != 0 {
		t.Errorf("generated %d on day two, want 0", n)
	}
}

func TestGenerateMalformedRuleSkipsOnlyThatChore(t *testing.T) {
	s := NewStore(testPeople(), map[string]model.Chore{
		"broken": {
			ID: "broken", Name: "broken", Enabled: true,
			Recurrence:     model.Rule{Type: "fortnightly"},
			AssignedPeople: []string{"alice"},
		},
		"dishes": dailyChore("dishes", "alice"),
	}, nil)

	if n := Generate(s, wednesday, testLogger); n != 1 {
		t.Fatalf("generated %d, want 1 (broken chore skipped)", n)
	}
	if _, ok := s.Instance("dishes_2025-06-11"); !ok {
		t.Error("expected dishes instance despite broken sibling")
	}
}

func TestGenerateSnapshotsAssignees(t *testing.T) {
	chores := map[string]model.Chore{"dishes": dailyChore("dishes", "alice")}
	s := NewStore(testPeople(), chores, nil)
	Generate(s, wednesday, testLogger)

	// Reassign the chore after generation; the instance keeps its snapshot.
	c := chores["dishes"]
	c.AssignedPeople = []string{"bob"}
	chores["dishes"] = c

	inst, _ := s.Instance("dishes_2025-06-11")
	if len(inst.AssignedPeople) != 1 || inst.AssignedPeople[0] != "alice" {
		t.Errorf("assignee snapshot = %v, want [alice]", inst.AssignedPeople)
	}
}
