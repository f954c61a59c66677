package engine

import (
	"testing"
	"time"

	"chorenet/internal/model"
)

func TestMarkOverdueNextDay(t *testing.T) {
	s := NewStore(testPeople(), map[string]model.Chore{
		"dishes": dailyChore("dishes", "alice"),
	}, nil)
	inst := inactiveInstance("dishes", startOfDay(wednesday), "alice")
	inst.Status = model.StatusPending
	s.Put(inst)

	// Still day D: not overdue, even late at night.
	lateSameDay := time.Date(2025, 6, 11, 23, 59, 0, 0, time.Local)
	if n := MarkOverdue(s, lateSameDay); n != 0 {
		t.Fatalf("marked %d on due day, want 0", n)
	}

	// Day D+1: overdue.
	if n := MarkOverdue(s, wednesday.AddDate(0, 0, 1)); n != 1 {
		t.Fatalf("marked %d on D+1, want 1", n)
	}
	if inst.Status != model.StatusOverdue {
		t.Errorf("status = %q, want overdue", inst.Status)
	}

	// Overdue never regresses to pending on its own.
	MarkOverdue(s, wednesday.AddDate(0, 0, 2))
	if inst.Status != model.StatusOverdue {
		t.Errorf("status = %q after another pass, want overdue", inst.Status)
	}
}

func TestMarkOverdueLeavesOtherStatuses(t *testing.T) {
	s := NewStore(testPeople(), map[string]model.Chore{
		"dishes": dailyChore("dishes", "alice"),
	}, nil)

	dormant := inactiveInstance("dishes", startOfDay(wednesday), "alice")
	s.Put(dormant)

	done := inactiveInstance("dishes", startOfDay(wednesday.AddDate(0, 0, -1)), "alice")
	done.Status = model.StatusCompleted
	s.Put(done)

	if n := MarkOverdue(s, wednesday.AddDate(0, 0, 3)); n != 0 {
		t.Errorf("marked %d, want 0 (only pending instances qualify)", n)
	}
	if dormant.Status != model.StatusInactive || done.Status != model.StatusCompleted {
		t.Error("non-pending statuses must not change")
	}
}
