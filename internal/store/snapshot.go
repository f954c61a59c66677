package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"chorenet/internal/model"
)

// SnapshotStore persists the engine's state snapshot. People and chores are
// stored as JSON payloads (they are configuration echoes, overridden by the
// live household file on load); chore instances get structured columns so
// they can be inspected with plain SQL.
type SnapshotStore struct {
	db *sql.DB
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Save replaces the persisted snapshot with the given one, atomically.
func (s *SnapshotStore) Save(snap model.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"chore_instances", "people_snapshot", "chores_snapshot"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for key, inst := range snap.Instances {
		assigned, err := json.Marshal(inst.AssignedPeople)
		if err != nil {
			return fmt.Errorf("marshal assignees: %w", err)
		}
		completions, err := json.Marshal(inst.Completions)
		if err != nil {
			return fmt.Errorf("marshal completions: %w", err)
		}
		_, err = tx.Exec(
			`INSERT INTO chore_instances (key, chore_id, due_date, status, assigned_people, completions) VALUES (?, ?, ?, ?, ?, ?)`,
			key, inst.ChoreID, inst.DueDate.Format(time.RFC3339), string(inst.Status), string(assigned), string(completions),
		)
		if err != nil {
			return fmt.Errorf("insert instance %s: %w", key, err)
		}
	}

	for id, person := range snap.People {
		payload, err := json.Marshal(person)
		if err != nil {
			return fmt.Errorf("marshal person: %w", err)
		}
		if _, err := tx.Exec(`INSERT INTO people_snapshot (id, payload) VALUES (?, ?)`, id, string(payload)); err != nil {
			return fmt.Errorf("insert person %s: %w", id, err)
		}
	}

	for id, chore := range snap.Chores {
		payload, err := json.Marshal(chore)
		if err != nil {
			return fmt.Errorf("marshal chore: %w", err)
		}
		if _, err := tx.Exec(`INSERT INTO chores_snapshot (id, payload) VALUES (?, ?)`, id, string(payload)); err != nil {
			return fmt.Errorf("insert chore %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// Load reads the persisted snapshot. Called once at startup; the caller
// keeps only the instances and replaces people/chores with the live
// configuration.
func (s *SnapshotStore) Load() (model.Snapshot, error) {
	snap := model.Snapshot{
		People:    map[string]model.Person{},
		Chores:    map[string]model.Chore{},
		Instances: map[string]*model.Instance{},
	}

	rows, err := s.db.Query(`SELECT key, chore_id, due_date, status, assigned_people, completions FROM chore_instances`)
	if err != nil {
		return snap, fmt.Errorf("query instances: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, choreID, due, status, assigned, completions string
		if err := rows.Scan(&key, &choreID, &due, &status, &assigned, &completions); err != nil {
			return snap, fmt.Errorf("scan instance: %w", err)
		}
		inst := &model.Instance{
			ChoreID: choreID,
			Status:  model.Status(status),
		}
		if inst.DueDate, err = time.Parse(time.RFC3339, due); err != nil {
			return snap, fmt.Errorf("parse due date for %s: %w", key, err)
		}
		if err := json.Unmarshal([]byte(assigned), &inst.AssignedPeople); err != nil {
			return snap, fmt.Errorf("unmarshal assignees for %s: %w", key, err)
		}
		if err := json.Unmarshal([]byte(completions), &inst.Completions); err != nil {
			return snap, fmt.Errorf("unmarshal completions for %s: %w", key, err)
		}
		if inst.Completions == nil {
			inst.Completions = map[string]bool{}
		}
		snap.Instances[key] = inst
	}
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("iterate instances: %w", err)
	}

	if err := s.loadPayloads("people_snapshot", func(id string, payload []byte) error {
		var p model.Person
		if err := json.Unmarshal(payload, &p); err != nil {
			return err
		}
		snap.People[id] = p
		return nil
	}); err != nil {
		return snap, err
	}

	if err := s.loadPayloads("chores_snapshot", func(id string, payload []byte) error {
		var c model.Chore
		if err := json.Unmarshal(payload, &c); err != nil {
			return err
		}
		snap.Chores[id] = c
		return nil
	}); err != nil {
		return snap, err
	}

	return snap, nil
}

func (s *SnapshotStore) loadPayloads(table string, decode func(id string, payload []byte) error) error {
	rows, err := s.db.Query(`SELECT id, payload FROM ` + table)
	if err != nil {
		return fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		if err := decode(id, []byte(payload)); err != nil {
			return fmt.Errorf("decode %s %s: %w", table, id, err)
		}
	}
	return rows.Err()
}
