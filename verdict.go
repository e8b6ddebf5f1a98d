package antglob

// MatchVerdict is the tri-state result of matching a directory against
// a Pattern. It combines "does this directory match" with "could any
// descendant of this directory match", so a directory walker can
// prune a traversal early instead of re-evaluating the pattern at
// every depth.
//
// The bits may be tested individually, but only the five combinations
// below are ever produced by this package; a caller that wants the
// informal name can call String().
type MatchVerdict uint8

const (
	// bitMatch means this directory matches the pattern.
	bitMatch MatchVerdict = 1 << iota
	// bitAllSubdirectories means every descendant of this directory
	// also matches, so the walker never needs to ask again below here.
	bitAllSubdirectories
	// bitNoSubdirectories means no descendant of this directory can
	// possibly match, so the walker may prune the traversal here, whether
	// or not this directory itself matches.
	bitNoSubdirectories
)

const (
	// NoMatch: this directory does not match, and some descendant
	// still might (the walker must keep descending to find out).
	NoMatch MatchVerdict = 0

	// Match: this directory matches; descendants are not guaranteed to
	// match and are not guaranteed not to — evaluate them individually.
	Match MatchVerdict = bitMatch

	// MatchAllSubdirectories: this directory matches, and so does
	// every descendant; the walker may stop asking and assume a match
	// for the rest of the subtree.
	MatchAllSubdirectories MatchVerdict = bitMatch | bitAllSubdirectories

	// MatchButNoSubdirectories: this directory matches, but the
	// pattern names exactly this directory — no descendant can match.
	MatchButNoSubdirectories MatchVerdict = bitMatch | bitNoSubdirectories

	// NoMatchNoSubdirectories: this directory does not match, and the
	// pattern's anchoring guarantees no descendant can match either.
	NoMatchNoSubdirectories MatchVerdict = bitNoSubdirectories
)

// Match reports whether the directory itself matches the pattern.
func (v MatchVerdict) Match() bool {
	return v&bitMatch != 0
}

// AllSubdirectories reports whether every descendant of this directory
// is guaranteed to also match.
func (v MatchVerdict) AllSubdirectories() bool {
	return v&bitAllSubdirectories != 0
}

// NoSubdirectories reports whether no descendant of this directory can
// possibly match, regardless of whether this directory itself matches.
func (v MatchVerdict) NoSubdirectories() bool {
	return v&bitNoSubdirectories != 0
}

// String returns the canonical name of one of the five well-formed
// verdict values, or a numeric fallback for any other bit pattern.
func (v MatchVerdict) String() string {
	switch v {
	case NoMatch:
		return "NoMatch"
	case Match:
		return "Match"
	case MatchAllSubdirectories:
		return "MatchAllSubdirectories"
	case MatchButNoSubdirectories:
		return "MatchButNoSubdirectories"
	case NoMatchNoSubdirectories:
		return "NoMatchNoSubdirectories"
	default:
		return "MatchVerdict(invalid)"
	}
}
