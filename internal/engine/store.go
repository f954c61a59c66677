package engine

import (
	"time"

	"chorenet/internal/model"
)

// Store holds all engine state: the people/chores configuration and the
// chore-instance map. It has a single logical owner (the Coordinator); all
// mutation happens under the Coordinator's lock.
type Store struct {
	people    map[string]model.Person
	chores    map[string]model.Chore
	instances map[string]*model.Instance
}

// NewStore builds a store from the live configuration and the persisted
// instance map. People and chores always come from configuration; persisted
// copies of them are ignored by the caller.
func NewStore(people map[string]model.Person, chores map[string]model.Chore, instances map[string]*model.Instance) *Store {
	if people == nil {
		people = map[string]model.Person{}
	}
	if chores == nil {
		chores = map[string]model.Chore{}
	}
	if instances == nil {
		instances = map[string]*model.Instance{}
	}
	return &Store{people: people, chores: chores, instances: instances}
}

func (s *Store) Person(id string) (model.Person, bool) {
	p, ok := s.people[id]
	return p, ok
}

func (s *Store) Chore(id string) (model.Chore, bool) {
	c, ok := s.chores[id]
	return c, ok
}

func (s *Store) Instance(key string) (*model.Instance, bool) {
	i, ok := s.instances[key]
	return i, ok
}

// Put inserts or replaces an instance under its dedup key.
func (s *Store) Put(inst *model.Instance) {
	s.instances[inst.Key()] = inst
}

// Instances returns the live instance map. Callers outside the engine must
// use Snapshot instead.
func (s *Store) Instances() map[string]*model.Instance {
	return s.instances
}

// Chores returns the live chore map.
func (s *Store) Chores() map[string]model.Chore {
	return s.chores
}

// HasInstanceFor reports whether any instance exists for the chore,
// regardless of date. Used to retire once chores after their single
// occurrence.
func (s *Store) HasInstanceFor(choreID string) bool {
	for _, inst := range s.instances {
		if inst.ChoreID == choreID {
			return true
		}
	}
	return false
}

// ActiveInstances returns all pending or overdue instances.
func (s *Store) ActiveInstances() []*model.Instance {
	var active []*model.Instance
	for _, inst := range s.instances {
		if inst.Active() {
			active = append(active, inst)
		}
	}
	return active
}

// ActiveInstancesFor returns the pending/overdue instances the person is
// assigned to.
func (s *Store) ActiveInstancesFor(personID string) []*model.Instance {
	var active []*model.Instance
	for _, inst := range s.instances {
		if inst.Active() && inst.Assigned(personID) {
			active = append(active, inst)
		}
	}
	return active
}

// SetChoreEnabled toggles a chore's enabled flag, the only piece of
// configuration the engine may mutate.
func (s *Store) SetChoreEnabled(choreID string, enabled bool) bool {
	c, ok := s.chores[choreID]
	if !ok {
		return false
	}
	c.Enabled = enabled
	s.chores[choreID] = c
	return true
}

// Snapshot returns a deep copy of the store safe for readers outside the
// engine's lock.
func (s *Store) Snapshot(lastRun time.Time) model.Snapshot {
	snap := model.Snapshot{
		People:    make(map[string]model.Person, len(s.people)),
		Chores:    make(map[string]model.Chore, len(s.chores)),
		Instances: make(map[string]*model.Instance, len(s.instances)),
		LastRun:   lastRun,
	}
	for id, p := range s.people {
		snap.People[id] = p
	}
	for id, c := range s.chores {
		c.AssignedPeople = append([]string(nil), c.AssignedPeople...)
		snap.Chores[id] = c
	}
	for key, inst := range s.instances {
		snap.Instances[key] = inst.Clone()
	}
	return snap
}
