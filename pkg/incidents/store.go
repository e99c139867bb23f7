package incidents

import "sync/atomic"

// Snapshot is the outcome of one dataset load: either a dataset or the error
// that prevented loading it.
type Snapshot struct {
	Dataset *Dataset
	Err     error
}

// Store publishes the current snapshot to request handlers. Snapshots are
// replaced whole and never mutated.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store holding the given initial snapshot.
func NewStore(initial *Snapshot) *Store {
	s := &Store{}
	if initial == nil {
		initial = &Snapshot{Dataset: NewDataset("", nil)}
	}
	s.current.Store(initial)
	return s
}

// Current returns the latest published snapshot.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Publish replaces the current snapshot.
func (s *Store) Publish(snapshot *Snapshot) {
	if snapshot == nil {
		return
	}
	s.current.Store(snapshot)
}
