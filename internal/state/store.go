package state

import (
	"sync"
	"sync/atomic"

	"dashd/internal/model"
)

// Snapshot is the immutable shared user state. Consumers hold a value copy
// of the current snapshot, never a mutable handle; mutation goes through
// Store.Apply or Store.Replace, which install a whole new snapshot.
type Snapshot struct {
	Name       string
	EmojiStyle string
	Tasks      []model.Task
	Settings   model.Settings
	// Version increments on every installed snapshot. Derived-state caches
	// key on it to detect that the task collection changed.
	Version uint64
}

// WithTasks returns a copy of the snapshot carrying the given task slice.
// The slice is owned by the new snapshot; callers must not retain it.
func (s Snapshot) WithTasks(tasks []model.Task) Snapshot {
	s.Tasks = tasks
	return s
}

type Store struct {
	mu   sync.Mutex
	curr atomic.Pointer[Snapshot]
}

func NewStore(initial Snapshot) *Store {
	s := &Store{}
	s.curr.Store(&initial)
	return s
}

// Snapshot returns the current state. Readers never observe a partially
// updated value because writers replace the whole snapshot atomically.
func (s *Store) Snapshot() Snapshot {
	return *s.curr.Load()
}

// Apply runs fn against the current snapshot and installs its result as the
// next snapshot, bumping Version. fn must be pure: it receives a value copy
// and returns the desired next state.
func (s *Store) Apply(fn func(Snapshot) Snapshot) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(*s.curr.Load())
	next.Version = s.curr.Load().Version + 1
	s.curr.Store(&next)
	return next
}

// Replace installs the given snapshot wholesale, bumping Version.
func (s *Store) Replace(next Snapshot) Snapshot {
	return s.Apply(func(Snapshot) Snapshot { return next })
}
