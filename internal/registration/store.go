package registration

import (
	"sync"

	"github.com/PetroczyP/mergington-activities/internal/models"
)

// Store holds the participant set of every activity, keyed by canonical id.
//
// The key space is fixed at construction, so the map itself is never written
// after New and needs no lock. Each activity carries its own mutex: the
// duplicate check, the capacity check and the mutation of one activity run
// as a single critical section, while different activities never contend.
type Store struct {
	slots map[string]*slot
}

type slot struct {
	mu       sync.Mutex
	capacity int
	// members keeps signup order; index mirrors it for O(1) lookups.
	members []string
	index   map[string]struct{}
}

// NewStore seeds a store from catalog activities.
func NewStore(activities []models.Activity) *Store {
	s := &Store{slots: make(map[string]*slot, len(activities))}
	for _, a := range activities {
		sl := &slot{
			capacity: a.MaxParticipants,
			members:  make([]string, 0, a.MaxParticipants),
			index:    make(map[string]struct{}, a.MaxParticipants),
		}
		for _, p := range a.Participants {
			if _, dup := sl.index[p]; dup || len(sl.members) >= sl.capacity {
				continue
			}
			sl.members = append(sl.members, p)
			sl.index[p] = struct{}{}
		}
		s.slots[a.ID] = sl
	}
	return s
}

// Add inserts participant into the activity if it is absent and a spot is
// open. It returns the number of spots left after the insert.
func (s *Store) Add(id, participant string) (int, error) {
	sl, ok := s.slots[id]
	if !ok {
		return 0, ErrNotFound
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()

	if _, exists := sl.index[participant]; exists {
		return sl.capacity - len(sl.members), ErrAlreadyRegistered
	}
	if len(sl.members) >= sl.capacity {
		return 0, ErrCapacityExceeded
	}
	sl.members = append(sl.members, participant)
	sl.index[participant] = struct{}{}
	return sl.capacity - len(sl.members), nil
}

// Remove deletes participant from the activity, preserving the order of the
// others. It returns the number of spots left after the removal.
func (s *Store) Remove(id, participant string) (int, error) {
	sl, ok := s.slots[id]
	if !ok {
		return 0, ErrNotFound
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()

	if _, exists := sl.index[participant]; !exists {
		return sl.capacity - len(sl.members), ErrNotRegistered
	}
	for i, m := range sl.members {
		if m == participant {
			sl.members = append(sl.members[:i], sl.members[i+1:]...)
			break
		}
	}
	delete(sl.index, participant)
	return sl.capacity - len(sl.members), nil
}

// Participants returns a copy of the activity's participants in signup order.
func (s *Store) Participants(id string) ([]string, bool) {
	sl, ok := s.slots[id]
	if !ok {
		return nil, false
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()

	return append(make([]string, 0, len(sl.members)), sl.members...), true
}

// Contains reports whether participant is registered for the activity.
func (s *Store) Contains(id, participant string) bool {
	sl, ok := s.slots[id]
	if !ok {
		return false
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()

	_, exists := sl.index[participant]
	return exists
}

// Len returns the current number of participants of the activity.
func (s *Store) Len(id string) int {
	sl, ok := s.slots[id]
	if !ok {
		return 0
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()

	return len(sl.members)
}
