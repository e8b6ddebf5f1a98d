package antglob

import "strings"

// triState models PatternSet's lazily-computed all_files cache: it
// starts unknown, becomes definitely true or false once computed, and
// is invalidated back to unknown by any structural mutation that
// could change the answer cheaper to not track precisely (Extend,
// Remove) than to recompute eagerly.
type triState int

const (
	triUnknown triState = iota
	triTrue
	triFalse
)

// PatternSet is an unordered, duplicate-permitting collection of
// Patterns with set-level operations: union-match of file names
// across members, and a lazily-cached "matches every file" flag.
//
// PatternSet is not internally synchronized — per spec §5, callers
// serialize structural mutations themselves. Store, in safeset.go,
// wraps a PatternSet with that synchronization for callers who want
// it built in.
type PatternSet struct {
	patterns []*Pattern
	allFiles triState
}

// NewPatternSet returns an empty PatternSet.
func NewPatternSet() *PatternSet {
	return &PatternSet{allFiles: triUnknown}
}

// Append adds one Pattern to the set. Duplicates are permitted. If p
// matches all files, the AllFiles cache is updated to true regardless
// of its prior state; otherwise the cache is left as-is (it may
// already be true from an earlier member, or still need computing).
func (ps *PatternSet) Append(p *Pattern) {
	if p == nil {
		panic("antglob: PatternSet.Append called with a nil Pattern")
	}
	ps.patterns = append(ps.patterns, p)
	if p.AllFiles() {
		ps.allFiles = triTrue
	}
}

// Extend adds every Pattern in patterns to the set and invalidates
// the AllFiles cache to unknown (recomputing eagerly for a bulk
// insert would be quadratic across repeated Extend calls).
func (ps *PatternSet) Extend(patterns ...*Pattern) {
	for _, p := range patterns {
		if p == nil {
			panic("antglob: PatternSet.Extend called with a nil Pattern")
		}
	}
	ps.patterns = append(ps.patterns, patterns...)
	ps.allFiles = triUnknown
}

// ExtendSet adds every Pattern currently in other to the set.
func (ps *PatternSet) ExtendSet(other *PatternSet) {
	ps.Extend(other.Patterns()...)
}

// Remove removes one occurrence of a Pattern structurally equal to p
// (per Pattern.Equal), reporting whether anything was removed. The
// AllFiles cache is invalidated to unknown when a Pattern is removed;
// a call that removes nothing leaves it as it was.
func (ps *PatternSet) Remove(p *Pattern) bool {
	for i, existing := range ps.patterns {
		if existing == p || existing.Equal(p) {
			ps.patterns = append(ps.patterns[:i], ps.patterns[i+1:]...)
			ps.allFiles = triUnknown
			return true
		}
	}
	return false
}

// Empty reports whether the set has no Patterns.
func (ps *PatternSet) Empty() bool {
	return len(ps.patterns) == 0
}

// AllFiles reports whether any member Pattern matches every candidate
// file name, computing and memoizing the answer on first use after
// any invalidating mutation.
func (ps *PatternSet) AllFiles() bool {
	if ps.allFiles == triUnknown {
		ps.allFiles = triFalse
		for _, p := range ps.patterns {
			if p.AllFiles() {
				ps.allFiles = triTrue
				break
			}
		}
	}
	return ps.allFiles == triTrue
}

// Patterns returns a snapshot slice of the set's current members. The
// returned slice is the caller's to keep; mutating the set afterward
// does not affect it.
func (ps *PatternSet) Patterns() []*Pattern {
	out := make([]*Pattern, len(ps.patterns))
	copy(out, ps.patterns)
	return out
}

// MatchFiles applies every member's file filter to unmatched, moving
// selected names into matched. Iteration runs over a snapshot of the
// set's members, so a caller may safely mutate the PatternSet (e.g.
// while processing excludes) during the call. Iteration stops early
// once unmatched is empty.
func (ps *PatternSet) MatchFiles(matched, unmatched map[string]bool) {
	for _, p := range ps.Patterns() {
		p.MatchFiles(matched, unmatched)
		if len(unmatched) == 0 {
			return
		}
	}
}

// MatchFile reports whether any member Pattern matches elements.
func (ps *PatternSet) MatchFile(elements []string) bool {
	for _, p := range ps.Patterns() {
		if p.MatchFile(elements) {
			return true
		}
	}
	return false
}

func (ps *PatternSet) String() string {
	parts := make([]string, len(ps.patterns))
	for i, p := range ps.patterns {
		parts[i] = p.String()
	}
	return "PatternSet(allFiles=" + boolString(ps.AllFiles()) + ") [" + strings.Join(parts, ", ") + "]"
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
