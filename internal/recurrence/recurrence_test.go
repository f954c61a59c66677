package recurrence

import (
	"testing"
	"time"

	"chorenet/internal/model"
)

// Monday 2025-06-09, 14:30 local.
var monday = time.Date(2025, 6, 9, 14, 30, 0, 0, time.Local)

func TestNextDueDaily(t *testing.T) {
	due, ok := NextDue(model.Rule{Type: model.RecurrenceDaily}, monday)
	if !ok {
		t.Fatal("expected an occurrence")
	}
	want := time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local)
	if !due.Equal(want) {
		t.Errorf("due = %v, want %v", due, want)
	}
}

func TestNextDueOnceBehavesLikeDaily(t *testing.T) {
	due, ok := NextDue(model.Rule{Type: model.RecurrenceOnce}, monday)
	if !ok {
		t.Fatal("expected an occurrence")
	}
	if due.Day() != 9 || due.Hour() != 0 {
		t.Errorf("due = %v, want midnight today", due)
	}
}

func TestNextDueWeekly(t *testing.T) {
	tests := []struct {
		name    string
		weekday int
		wantDay int
	}{
		{"same weekday rolls a full week", 0, 16},
		{"tomorrow", 1, 10},
		{"past weekday rolls forward", 6, 15}, // Sunday
		{"friday", 4, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, ok := NextDue(model.Rule{Type: model.RecurrenceWeekly, Weekday: tt.weekday}, monday)
			if !ok {
				t.Fatal("expected an occurrence")
			}
			if due.Day() != tt.wantDay {
				t.Errorf("due day = %d, want %d", due.Day(), tt.wantDay)
			}
			if due.Hour() != 0 || due.Minute() != 0 {
				t.Errorf("due = %v, want midnight", due)
			}
		})
	}
}

func TestNextDueWeeklyInvalidWeekday(t *testing.T) {
	if _, ok := NextDue(model.Rule{Type: model.RecurrenceWeekly, Weekday: 7}, monday); ok {
		t.Error("expected no occurrence for weekday 7")
	}
	if _, ok := NextDue(model.Rule{Type: model.RecurrenceWeekly, Weekday: -1}, monday); ok {
		t.Error("expected no occurrence for weekday -1")
	}
}

func TestNextDueMonthly(t *testing.T) {
	// 2025-06-09; target day 15 is still ahead this month.
	due, ok := NextDue(model.Rule{Type: model.RecurrenceMonthly, Day: 15}, monday)
	if !ok {
		t.Fatal("expected an occurrence")
	}
	if due.Month() != time.June || due.Day() != 15 {
		t.Errorf("due = %v, want June 15", due)
	}

	// Target day already passed; rolls to next month.
	due, ok = NextDue(model.Rule{Type: model.RecurrenceMonthly, Day: 5}, monday)
	if !ok {
		t.Fatal("expected an occurrence")
	}
	if due.Month() != time.July || due.Day() != 5 {
		t.Errorf("due = %v, want July 5", due)
	}
}

func TestNextDueMonthlySameDayIsDueToday(t *testing.T) {
	due, ok := NextDue(model.Rule{Type: model.RecurrenceMonthly, Day: 9}, monday)
	if !ok {
		t.Fatal("expected an occurrence")
	}
	if due.Month() != time.June || due.Day() != 9 {
		t.Errorf("due = %v, want June 9", due)
	}
}

func TestNextDueMonthlyMissingDay(t *testing.T) {
	// April has 30 days; day 31 yields no occurrence instead of shifting.
	april := time.Date(2025, 4, 10, 8, 0, 0, 0, time.Local)
	if _, ok := NextDue(model.Rule{Type: model.RecurrenceMonthly, Day: 31}, april); ok {
		t.Error("expected no occurrence for day 31 in April")
	}

	// January 31 rolling into February.
	lateJan := time.Date(2025, 1, 31, 8, 0, 0, 0, time.Local)
	if _, ok := NextDue(model.Rule{Type: model.RecurrenceMonthly, Day: 30}, lateJan); ok {
		t.Error("expected no occurrence for day 30 in February")
	}
}

func TestNextDueUnknownType(t *testing.T) {
	if _, ok := NextDue(model.Rule{Type: "yearly"}, monday); ok {
		t.Error("expected no occurrence for unknown type")
	}
	if _, ok := NextDue(model.Rule{}, monday); ok {
		t.Error("expected no occurrence for empty type")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		rule    model.Rule
		wantErr bool
	}{
		{model.Rule{Type: model.RecurrenceDaily}, false},
		{model.Rule{Type: model.RecurrenceOnce}, false},
		{model.Rule{Type: model.RecurrenceWeekly, Weekday: 6}, false},
		{model.Rule{Type: model.RecurrenceWeekly, Weekday: 7}, true},
		{model.Rule{Type: model.RecurrenceMonthly, Day: 1}, false},
		{model.Rule{Type: model.RecurrenceMonthly, Day: 0}, true},
		{model.Rule{Type: model.RecurrenceMonthly, Day: 32}, true},
		{model.Rule{Type: "hourly"}, true},
	}

	for _, tt := range tests {
		err := Validate(tt.rule)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.rule, err, tt.wantErr)
		}
	}
}

func TestDescribe(t *testing.T) {
	got := Describe(model.Rule{Type: model.RecurrenceWeekly, Weekday: 0})
	if got != "Repeats weekly on Monday" {
		t.Errorf("Describe = %q", got)
	}
	if Describe(model.Rule{Type: model.RecurrenceDaily}) != "Repeats daily" {
		t.Error("daily description mismatch")
	}
}
