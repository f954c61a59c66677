package recurrence

import (
	"fmt"
	"time"

	"chorenet/internal/model"
)

// NextDue computes the next nominal due timestamp for a rule, truncated to
// midnight in now's location. The second return value is false when the rule
// yields no occurrence: unknown rule type, invalid parameters, or a monthly
// target day the candidate month does not have.
//
// A once rule is due "today" every time it is evaluated; retiring it after
// its single occurrence is the generator's job (dedup by instance key).
func NextDue(rule model.Rule, now time.Time) (time.Time, bool) {
	switch rule.Type {
	case model.RecurrenceDaily, model.RecurrenceOnce:
		return startOfDay(now), true

	case model.RecurrenceWeekly:
		if rule.Weekday < 0 || rule.Weekday > 6 {
			return time.Time{}, false
		}
		// Weekday numbering is Monday=0. Same-day or past weekdays roll
		// forward a full week; "today" is only reachable via the daily path.
		daysAhead := rule.Weekday - mondayWeekday(now)
		if daysAhead <= 0 {
			daysAhead += 7
		}
		return startOfDay(now).AddDate(0, 0, daysAhead), true

	case model.RecurrenceMonthly:
		if rule.Day < 1 || rule.Day > 31 {
			return time.Time{}, false
		}
		year, month := now.Year(), now.Month()
		if now.Day() > rule.Day {
			// Roll to next month.
			next := time.Date(year, month, 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
			year, month = next.Year(), next.Month()
		}
		due := time.Date(year, month, rule.Day, 0, 0, 0, 0, now.Location())
		if due.Month() != month {
			// Target day does not exist in this month (e.g. day 31 in
			// April); no occurrence rather than a silently shifted date.
			return time.Time{}, false
		}
		return due, true

	default:
		return time.Time{}, false
	}
}

// Validate checks a rule's parameters, returning a descriptive error for
// malformed configuration.
func Validate(rule model.Rule) error {
	switch rule.Type {
	case model.RecurrenceDaily, model.RecurrenceOnce:
		return nil
	case model.RecurrenceWeekly:
		if rule.Weekday < 0 || rule.Weekday > 6 {
			return fmt.Errorf("weekly rule: weekday %d out of range 0-6", rule.Weekday)
		}
		return nil
	case model.RecurrenceMonthly:
		if rule.Day < 1 || rule.Day > 31 {
			return fmt.Errorf("monthly rule: day %d out of range 1-31", rule.Day)
		}
		return nil
	default:
		return fmt.Errorf("unknown recurrence type %q", rule.Type)
	}
}

// Describe returns a human-readable description of the rule.
func Describe(rule model.Rule) string {
	switch rule.Type {
	case model.RecurrenceDaily:
		return "Repeats daily"
	case model.RecurrenceWeekly:
		if rule.Weekday >= 0 && rule.Weekday < 7 {
			wd := time.Weekday((rule.Weekday + 1) % 7)
			return "Repeats weekly on " + wd.String()
		}
		return "Repeats weekly"
	case model.RecurrenceMonthly:
		return fmt.Sprintf("Repeats monthly on day %d", rule.Day)
	case model.RecurrenceOnce:
		return "Happens once"
	}
	return ""
}

// mondayWeekday converts Go's Sunday=0 weekday to Monday=0.
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
