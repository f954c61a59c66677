package model

// TimeWindows holds a person's wall-clock windows for each named period.
// Times are "HH:MM" strings compared lexically, which works because they are
// zero-padded 24-hour values.
type TimeWindows struct {
	MorningStart   string `json:"morning_start" yaml:"morning_start"`
	MorningEnd     string `json:"morning_end" yaml:"morning_end"`
	AfternoonStart string `json:"afternoon_start" yaml:"afternoon_start"`
	AfternoonEnd   string `json:"afternoon_end" yaml:"afternoon_end"`
	EveningStart   string `json:"evening_start" yaml:"evening_start"`
	EveningEnd     string `json:"evening_end" yaml:"evening_end"`
}

// DefaultTimeWindows returns the documented default windows.
func DefaultTimeWindows() TimeWindows {
	return TimeWindows{
		MorningStart:   "06:00",
		MorningEnd:     "12:00",
		AfternoonStart: "12:00",
		AfternoonEnd:   "18:00",
		EveningStart:   "18:00",
		EveningEnd:     "22:00",
	}
}

// Range returns the start and end of the window for the given period.
// The all-day period covers the whole day.
func (w TimeWindows) Range(p Period) (start, end string) {
	switch p {
	case PeriodMorning:
		return w.MorningStart, w.MorningEnd
	case PeriodAfternoon:
		return w.AfternoonStart, w.AfternoonEnd
	case PeriodEvening:
		return w.EveningStart, w.EveningEnd
	default:
		return "00:00", "24:00"
	}
}

// Person is a household member chores can be assigned to. Created by the
// configuration producer; read-only to the engine.
type Person struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	TimeWindows  TimeWindows `json:"time_windows" yaml:"time_windows"`
	PINHash      string      `json:"-" yaml:"pin_hash"`
	NotifyTarget string      `json:"notify_target,omitempty" yaml:"notify_target"`
}

// HasPIN reports whether completions by this person require a PIN.
func (p Person) HasPIN() bool { return p.PINHash != "" }
