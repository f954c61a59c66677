package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"chorenet/internal/model"
	"chorenet/internal/recurrence"
)

// Household is the configuration-producer input: the people and chore
// definitions the engine runs against, plus the notification targets their
// target references resolve to.
type Household struct {
	People  map[string]model.Person
	Chores  map[string]model.Chore
	Targets map[string]model.PushTarget
}

// yamlChore mirrors model.Chore with pointer booleans so that omitted flags
// can take their documented defaults (enabled and required both default to
// true) instead of YAML's zero value.
type yamlChore struct {
	Name           string     `yaml:"name"`
	Description    string     `yaml:"description"`
	Enabled        *bool      `yaml:"enabled"`
	Required       *bool      `yaml:"required"`
	Recurrence     model.Rule `yaml:"recurrence"`
	Period         string     `yaml:"time_period"`
	AssignedPeople []string   `yaml:"assigned_people"`
	NotifyTarget   string     `yaml:"notify_target"`
}

type yamlHousehold struct {
	People  map[string]model.Person     `yaml:"people"`
	Chores  map[string]yamlChore        `yaml:"chores"`
	Targets map[string]model.PushTarget `yaml:"targets"`
}

// LoadHousehold parses and normalizes a household file. Optional fields get
// their defaults here, once, so the engine never needs lookup fallbacks.
// Suspicious-but-tolerable configuration (malformed recurrence, dangling
// references) is logged and kept: the generator skips what it cannot
// schedule, and one bad chore must not take down the rest.
func LoadHousehold(path string, logger *slog.Logger) (*Household, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read household file: %w", err)
	}
	return ParseHousehold(data, logger)
}

// ParseHousehold normalizes household configuration from YAML bytes.
func ParseHousehold(data []byte, logger *slog.Logger) (*Household, error) {
	var raw yamlHousehold
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse household file: %w", err)
	}

	h := &Household{
		People:  make(map[string]model.Person, len(raw.People)),
		Chores:  make(map[string]model.Chore, len(raw.Chores)),
		Targets: raw.Targets,
	}
	if h.Targets == nil {
		h.Targets = map[string]model.PushTarget{}
	}

	for id, person := range raw.People {
		person.ID = id
		if person.Name == "" {
			person.Name = id
		}
		person.TimeWindows = fillWindows(person.TimeWindows)
		if person.NotifyTarget != "" {
			if _, ok := h.Targets[person.NotifyTarget]; !ok {
				logger.Warn("person references unknown notify target",
					"person_id", id, "target", person.NotifyTarget)
			}
		}
		h.People[id] = person
	}

	for id, yc := range raw.Chores {
		chore := model.Chore{
			ID:             id,
			Name:           yc.Name,
			Description:    yc.Description,
			Enabled:        boolOr(yc.Enabled, true),
			Required:       boolOr(yc.Required, true),
			Recurrence:     yc.Recurrence,
			Period:         normalizePeriod(yc.Period, id, logger),
			AssignedPeople: yc.AssignedPeople,
			NotifyTarget:   yc.NotifyTarget,
		}
		if chore.Name == "" {
			chore.Name = id
		}
		if chore.Recurrence.Type == "" {
			chore.Recurrence.Type = model.RecurrenceDaily
		}

		if err := recurrence.Validate(chore.Recurrence); err != nil {
			logger.Warn("chore has malformed recurrence; it will not generate instances",
				"chore_id", id, "error", err)
		}
		if chore.Recurrence.Type == model.RecurrenceMonthly && chore.Recurrence.Day > 28 {
			logger.Warn("monthly chore targets a day missing from some months",
				"chore_id", id, "day", chore.Recurrence.Day)
		}
		for _, pid := range chore.AssignedPeople {
			if _, ok := h.People[pid]; !ok {
				logger.Warn("chore assigned to unknown person", "chore_id", id, "person_id", pid)
			}
		}
		if chore.NotifyTarget != "" {
			if _, ok := h.Targets[chore.NotifyTarget]; !ok {
				logger.Warn("chore references unknown notify target",
					"chore_id", id, "target", chore.NotifyTarget)
			}
		}

		h.Chores[id] = chore
	}

	return h, nil
}

func normalizePeriod(p, choreID string, logger *slog.Logger) model.Period {
	switch model.Period(p) {
	case model.PeriodMorning, model.PeriodAfternoon, model.PeriodEvening, model.PeriodAllDay:
		return model.Period(p)
	case "":
		return model.PeriodAllDay
	default:
		logger.Warn("unknown time period, treating as all_day", "chore_id", choreID, "period", p)
		return model.PeriodAllDay
	}
}

func fillWindows(w model.TimeWindows) model.TimeWindows {
	def := model.DefaultTimeWindows()
	if w.MorningStart == "" {
		w.MorningStart = def.MorningStart
	}
	if w.MorningEnd == "" {
		w.MorningEnd = def.MorningEnd
	}
	if w.AfternoonStart == "" {
		w.AfternoonStart = def.AfternoonStart
	}
	if w.AfternoonEnd == "" {
		w.AfternoonEnd = def.AfternoonEnd
	}
	if w.EveningStart == "" {
		w.EveningStart = def.EveningStart
	}
	if w.EveningEnd == "" {
		w.EveningEnd = def.EveningEnd
	}
	return w
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
