package model

// Period is the time-of-day slot a chore belongs to.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
	PeriodAllDay    Period = "all_day"
)

// RecurrenceType tags a recurrence rule variant.
type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceOnce    RecurrenceType = "once"
)

// Rule is a chore's recurrence rule. Weekday applies to weekly rules
// (0 = Monday), Day to monthly rules (day of month).
type Rule struct {
	Type    RecurrenceType `json:"type" yaml:"type"`
	Weekday int            `json:"weekday,omitempty" yaml:"weekday"`
	Day     int            `json:"day,omitempty" yaml:"day"`
}

// Chore is a recurring task definition, not an occurrence. Created by the
// configuration producer; the engine reads it and may only toggle Enabled.
type Chore struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	Enabled        bool     `json:"enabled" yaml:"enabled"`
	Required       bool     `json:"required" yaml:"required"`
	Recurrence     Rule     `json:"recurrence" yaml:"recurrence"`
	Period         Period   `json:"time_period" yaml:"time_period"`
	AssignedPeople []string `json:"assigned_people" yaml:"assigned_people"`
	NotifyTarget   string   `json:"notify_target,omitempty" yaml:"notify_target"`
}
