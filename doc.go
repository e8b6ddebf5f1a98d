// Package antglob implements Apache Ant FileSet glob matching.
//
// A glob such as "src/**/*.go" or "/build/**" is compiled once into a
// Pattern (or, for patterns ending in "**", a small PatternSet of two
// Patterns — see "** expansion" below) and then matched repeatedly
// against directories and file names supplied by an external
// filesystem walker. The engine itself performs no I/O: it is a pure,
// synchronous function of the component lists it is handed.
//
// # Basic usage
//
//	p, err := antglob.Compile("src/**/*.go")
//	if err != nil {
//	    // ...
//	}
//	verdict := p.MatchDirectory([]string{"src", "internal"})
//	if verdict.Match() {
//	    unmatched := map[string]bool{"a.go": true, "README.md": true}
//	    matched := map[string]bool{}
//	    p.MatchFiles(matched, unmatched)
//	}
//
// # Search verdicts
//
// MatchDirectory does not return a plain boolean. It returns a
// MatchVerdict, a small bitfield that additionally tells a directory
// walker whether every descendant of the directory is guaranteed to
// match (ALL_SUBDIRECTORIES) or whether no descendant can possibly
// match (NO_SUBDIRECTORIES), so the walker can prune a traversal
// early without re-evaluating the pattern at every depth.
//
// # "**" expansion
//
// A glob whose normalized form ends in "**" with more than one
// element — e.g. "logs/**" — compiles into two Patterns returned as a
// PatternSet: one matching "logs" itself, one matching its
// descendants. Compile returns this as a *PatternSet; single-element
// patterns and patterns not ending in "**" return a single *Pattern.
// Use CompileSet when the caller always wants a *PatternSet regardless
// of which form Compile would otherwise choose.
//
// # Supported syntax
//
//   - "/" separates path components.
//   - "?" matches exactly one character within a component.
//   - "*" matches zero or more characters within a component; it
//     never crosses a "/".
//   - "**" as a whole component matches zero or more directory
//     levels.
//   - A trailing "/" is sugar for a trailing "/**".
//   - Repeated "/" are collapsed; "." components are dropped; ".."
//     is rejected at compile time with a *PatternError.
//
// # Case normalization
//
// Equality between a pattern element and a path component is decided
// after both are passed through the same Normalizer. By default no
// folding happens (case-sensitive, like a POSIX path.normcase). Pass
// CaseInsensitive() to Compile for ASCII-only folding, or
// UnicodeCaseInsensitive() for full Unicode case folding via
// golang.org/x/text/cases — useful for trees containing non-ASCII
// file names on a case-insensitive filesystem. The normalizer is a
// compile-time configuration knob, not a per-call argument.
//
// # Non-goals
//
// POSIX character classes ("[abc]"), brace expansion ("{a,b}"),
// regular expressions, and symlink policy are intentionally
// unsupported; callers needing those should pre/post-process paths
// themselves.
//
// # Thread safety
//
// Compiled Patterns, Sections and Matchers are immutable and safe for
// concurrent read-only use once Compile returns. PatternSet is
// mutable: callers must serialize Append/Extend/Remove against each
// other and against MatchFiles/MatchFile/AllFiles. Store, in
// safeset.go, wraps a PatternSet with that serialization built in for
// callers who want a drop-in thread-safe facade.
package antglob
