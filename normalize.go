package antglob

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalizer reduces a path component or pattern element to the form
// that the engine compares for equality. The same Normalizer is
// applied at compile time (to pattern elements and literal file
// patterns) and at match time (to candidate path components and file
// names), so equality never depends on which side produced the
// string.
//
// A Normalizer must be a pure function of its input: given the same
// string it must always return the same result, since Pattern treats
// its output as cacheable compiled state.
type Normalizer func(string) string

// DefaultNormalizer lowercases ASCII letters only, leaving every other
// byte untouched. CaseInsensitive selects it; Compile uses no
// normalization at all unless an option names a Normalizer.
func DefaultNormalizer(s string) string {
	if !hasASCIIUpper(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

func hasASCIIUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			return true
		}
	}
	return false
}

// caseFolder is the shared golang.org/x/text/cases folder used by
// CaseFoldNormalizer. Fold's Transformer is safe for concurrent use
// through String, which does not mutate shared state.
var caseFolder = cases.Fold(cases.Compact)

// CaseFoldNormalizer performs full Unicode case folding (via
// golang.org/x/text/cases) rather than ASCII-only lowercasing. Use it
// when matching trees that contain non-ASCII file and directory names
// on a case-insensitive filesystem.
func CaseFoldNormalizer(s string) string {
	return caseFolder.String(s)
}

// identityNormalizer performs no normalization; equality then reduces
// to exact Go string equality. It is the default when Compile is
// given no normalizer option (case-sensitive matching).
func identityNormalizer(s string) string {
	return s
}
