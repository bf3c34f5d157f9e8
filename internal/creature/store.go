package creature

import "sync"

// Store holds the most recently loaded creature data. Readers see either the
// previous or the new set, never a mix.
type Store struct {
	mu  sync.RWMutex
	set *Set
}

// NewStore returns a store filled with default stats and an empty type list.
func NewStore() *Store {
	set := &Set{Config: &Config{}}
	def := DefaultStats()
	for i := range set.Stats {
		set.Stats[i] = def
	}
	return &Store{set: set}
}

// Reload loads everything through l and swaps it in. The new set replaces
// the old one as long as creature.cfg itself was read; model errors are
// returned alongside.
func (s *Store) Reload(l *Loader) error {
	set, err := l.LoadAll()
	if set == nil {
		return err
	}
	s.Replace(set)
	return err
}

// Replace swaps in a set loaded elsewhere.
func (s *Store) Replace(set *Set) {
	s.mu.Lock()
	s.set = set
	s.mu.Unlock()
}

// Set returns the current set. Sets are replaced on reload, never modified,
// so the result stays consistent after the lock is released.
func (s *Store) Set() *Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set
}

// Config returns the current type list.
func (s *Store) Config() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Config
}

// Stats returns a copy of the record for a model id.
func (s *Store) Stats(model int) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Stats[Index(model)]
}

// View runs fn with the current set under the read lock. fn must not retain
// or modify the set.
func (s *Store) View(fn func(*Set)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.set)
}
