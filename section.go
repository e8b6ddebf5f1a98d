package antglob

import "strings"

// section is a maximal run of matchers between "**" separators in a
// compiled Pattern. boundStart/boundEnd are assigned once by the
// enclosing Pattern immediately after construction and never mutated
// again.
type section struct {
	matchers   []matcher
	length     int
	boundStart bool
	boundEnd   bool
}

// newSection builds a section from a non-empty ordered run of
// (original, normalized) glob elements. Construction panics if given
// no elements — an empty section between two adjacent "**" cannot
// occur after normalization, and a caller passing one anyway is a
// programmer error, not a recoverable runtime condition.
func newSection(elements []compiledElement) *section {
	if len(elements) == 0 {
		panic("antglob: section constructed with no elements")
	}
	s := &section{matchers: make([]matcher, len(elements)), length: len(elements)}
	for i, e := range elements {
		s.matchers[i] = newMatcher(e.original, e.normalized)
	}
	return s
}

// matchIter calls yield once for every end index i such that the
// section's matchers match path[j:j+length] for some j >= startAt,
// where i = j+length — the index of the first path element after the
// consumed run, ready for the next section to resume from. Indices
// are produced in ascending order. yield returning false stops the
// search early (mirrors a generator's consumer breaking out of the
// loop) and matchIter returns immediately.
func (s *section) matchIter(path []string, startAt int, yield func(end int) bool) {
	if s.length == 1 {
		s.matchIterSingle(path, startAt, yield)
		return
	}
	s.matchIterGeneric(path, startAt, yield)
}

func (s *section) matchIterGeneric(path []string, startAt int, yield func(end int) bool) {
	length := len(path)

	end := length - s.length + 1
	if s.boundStart {
		end = 1
	}

	start := startAt
	if s.boundEnd {
		start = length - s.length
	}

	if start > end || start < startAt || end > length-s.length+1 {
		return
	}

	for index := start; index < end; index++ {
		matched := true
		i := index
		for _, m := range s.matchers {
			if !m.match(path[i]) {
				matched = false
				break
			}
			i++
		}
		if matched {
			if !yield(index + s.length) {
				return
			}
		}
	}
}

// matchIterSingle is the required fast path for single-element
// sections: it skips the inner per-matcher loop entirely, comparing
// directly against the one matcher.
func (s *section) matchIterSingle(path []string, startAt int, yield func(end int) bool) {
	length := len(path)
	if length == 0 {
		return
	}

	start := startAt
	if s.boundEnd {
		start = length - 1
		if start < startAt {
			return
		}
	}

	end := length
	if s.boundStart {
		end = 1
		if start > end {
			return
		}
	}

	m := s.matchers[0]
	for index := start; index < end; index++ {
		if m.match(path[index]) {
			if !yield(index + 1) {
				return
			}
		}
	}
}

// equal reports whether two sections are structurally identical:
// same matchers in the same order. Bound flags are not part of
// equality — they are assigned by the enclosing Pattern, not an
// intrinsic property of the section's element list.
func (s *section) equal(other *section) bool {
	if s == other {
		return true
	}
	if other == nil || s.length != other.length {
		return false
	}
	for i, m := range s.matchers {
		if !m.equal(other.matchers[i]) {
			return false
		}
	}
	return true
}

// String reconstructs the "/"-joined original element text of the
// section, e.g. "top/second".
func (s *section) String() string {
	var b strings.Builder
	for i, m := range s.matchers {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(m.String())
	}
	return b.String()
}
