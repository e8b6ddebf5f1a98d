package antglob

import "strings"

// matcher matches one path component against one element of a
// compiled glob. There are two kinds: a literalMatcher for elements
// with no wildcard, and a wildcardMatcher for elements containing "?"
// or "*". newMatcher is the factory that picks between them.
type matcher interface {
	// match reports whether the normalized candidate matches. The
	// caller has already applied the Pattern's Normalizer.
	match(normalizedCandidate string) bool
	// equal reports structural equality against another matcher of
	// the same underlying kind, used by section.equal/Pattern.Equal.
	equal(other matcher) bool
	// String returns the original (pre-normalization) element text.
	String() string
}

// newMatcher builds the matcher appropriate for a single normalized
// glob element. element must already have been passed through the
// Pattern's Normalizer; original is kept only for String().
func newMatcher(original, element string) matcher {
	if strings.ContainsAny(element, "?*") {
		return wildcardMatcher{original: original, pattern: element}
	}
	return literalMatcher{original: original, pattern: element}
}

// literalMatcher matches iff the normalized candidate equals the
// normalized pattern element exactly.
type literalMatcher struct {
	original string
	pattern  string
}

func (m literalMatcher) match(normalizedCandidate string) bool {
	return m.pattern == normalizedCandidate
}

func (m literalMatcher) equal(other matcher) bool {
	o, ok := other.(literalMatcher)
	return ok && o.pattern == m.pattern
}

func (m literalMatcher) String() string {
	return m.original
}

// wildcardMatcher matches via shell-style wildcard semantics: "*"
// matches any run of characters (including empty) and never crosses
// component boundaries (it is never handed one — a wildcardMatcher
// only ever sees a single already-split path component); "?" matches
// exactly one character. No character classes are supported.
type wildcardMatcher struct {
	original string
	pattern  string
}

func (m wildcardMatcher) match(normalizedCandidate string) bool {
	return matchGlob(m.pattern, normalizedCandidate)
}

func (m wildcardMatcher) equal(other matcher) bool {
	o, ok := other.(wildcardMatcher)
	return ok && o.pattern == m.pattern
}

func (m wildcardMatcher) String() string {
	return m.original
}

// matchGlob reports whether s matches the shell-style wildcard
// pattern: "*" matches zero or more characters, "?" matches exactly
// one, no other metacharacters are recognized. Matching operates on
// runes so multi-byte UTF-8 sequences are never split by "?".
func matchGlob(pattern, s string) bool {
	if !strings.ContainsAny(pattern, "?*") {
		return pattern == s
	}
	if pattern == "*" {
		return true
	}
	return matchGlobRunes([]rune(pattern), []rune(s))
}

// matchGlobRunes is the classic two-pointer wildcard matcher,
// backtracking to the most recent "*" on a mismatch rather than
// recursing, so it runs in linear extra space regardless of how many
// stars the pattern contains.
func matchGlobRunes(pattern, s []rune) bool {
	var pi, si int
	starIdx, matchIdx := -1, 0

	for si < len(s) {
		switch {
		case pi < len(pattern) && (pattern[pi] == '?' || pattern[pi] == s[si]):
			pi++
			si++
		case pi < len(pattern) && pattern[pi] == '*':
			starIdx = pi
			matchIdx = si
			pi++
		case starIdx != -1:
			pi = starIdx + 1
			matchIdx++
			si = matchIdx
		default:
			return false
		}
	}

	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}

	return pi == len(pattern)
}
