package antglob

import "sync"

// Store wraps a PatternSet with the internal synchronization the bare
// PatternSet deliberately does not provide (spec §5 leaves structural
// mutation serialization to the caller). Store is for callers that
// want a drop-in thread-safe facade instead of hand-rolling that
// serialization — the same tradeoff the teacher library's Matcher
// makes with its sync.RWMutex-guarded rule slice.
//
// Store is safe for concurrent use. Concurrent Append/Extend/Remove
// calls are serialized against each other and against MatchFiles/
// MatchFile/AllFiles; multiple concurrent readers do not block each
// other.
type Store struct {
	mu  sync.RWMutex
	set *PatternSet
}

// NewStore returns an empty, ready-to-use Store.
func NewStore() *Store {
	return &Store{set: NewPatternSet()}
}

// Append adds one Pattern to the underlying set.
func (s *Store) Append(p *Pattern) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.Append(p)
}

// Extend adds every Pattern in patterns to the underlying set.
func (s *Store) Extend(patterns ...*Pattern) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.Extend(patterns...)
}

// Remove removes one occurrence of a Pattern structurally equal to p.
func (s *Store) Remove(p *Pattern) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Remove(p)
}

// Empty reports whether the underlying set currently has no Patterns.
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Empty()
}

// AllFiles reports whether any member Pattern matches every candidate
// file name. Takes the write lock because it may memoize the answer.
func (s *Store) AllFiles() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.AllFiles()
}

// MatchFiles applies the underlying set's file filters to unmatched,
// moving selected names into matched.
func (s *Store) MatchFiles(matched, unmatched map[string]bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.set.MatchFiles(matched, unmatched)
}

// MatchFile reports whether any member Pattern matches elements.
func (s *Store) MatchFile(elements []string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.MatchFile(elements)
}

// Patterns returns a snapshot of the underlying set's current members.
func (s *Store) Patterns() []*Pattern {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Patterns()
}
