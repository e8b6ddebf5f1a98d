package antglob

import "strings"

// compiledElement pairs the original (pre-normalization) text of a
// glob element with its normalized form. Both are kept: the original
// for diagnostics (Pattern.String), the normalized form for every
// comparison the engine makes.
type compiledElement struct {
	original   string
	normalized string
}

func (e compiledElement) isDoubleStar() bool {
	return e.original == "**"
}

// filePatternKind classifies how a Pattern's trailing file pattern is
// matched, chosen once at compile time so MatchFile/MatchFiles never
// re-inspect the pattern text at match time.
type filePatternKind int

const (
	fpAll filePatternKind = iota
	fpWildcard
	fpLiteral
)

// Pattern is a single compiled Ant glob. It is immutable after
// Compile returns and safe for concurrent read-only use.
type Pattern struct {
	original string

	boundStart bool
	boundEnd   bool
	sections   []*section

	fileOriginal string
	filePattern  string // normalized
	fileKind     filePatternKind

	normalizer Normalizer
}

// compileOptions holds the resolved configuration for one Compile
// call. The zero value is not valid on its own — resolveOptions
// always fills in a normalizer.
type compileOptions struct {
	normalizer Normalizer
}

// Option configures a single Compile/CompileSet call.
type Option func(*compileOptions)

// WithNormalizer overrides the Normalizer used to compare pattern
// elements and path components. The default is case-sensitive (no
// folding at all).
func WithNormalizer(n Normalizer) Option {
	return func(o *compileOptions) { o.normalizer = n }
}

// CaseInsensitive selects DefaultNormalizer (ASCII-only case folding).
func CaseInsensitive() Option {
	return WithNormalizer(DefaultNormalizer)
}

// UnicodeCaseInsensitive selects CaseFoldNormalizer (full Unicode case
// folding via golang.org/x/text/cases).
func UnicodeCaseInsensitive() Option {
	return WithNormalizer(CaseFoldNormalizer)
}

func resolveOptions(opts []Option) compileOptions {
	o := compileOptions{normalizer: identityNormalizer}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Compiled is the result of compiling one glob: exactly one of
// Pattern or Set is non-nil. Set is populated when the glob's
// normalized form ends in "**" with more than one element — Ant
// FileSet semantics require that to match both the named directory
// itself and everything beneath it, which needs two Patterns (see
// the package doc comment's "** expansion" section).
type Compiled struct {
	Pattern *Pattern
	Set     *PatternSet
}

// Patterns returns the one or two Patterns backing this Compiled,
// regardless of which form Compile chose.
func (c Compiled) Patterns() []*Pattern {
	if c.Set != nil {
		return c.Set.Patterns()
	}
	return []*Pattern{c.Pattern}
}

// MatchDirectory evaluates every constituent Pattern and combines
// their verdicts: the MATCH and ALL_SUBDIRECTORIES bits are set if
// any Pattern sets them (a single matching Pattern is enough for the
// directory, or its descendants, to count as matched); the
// NO_SUBDIRECTORIES bit is set only if every Pattern agrees no
// descendant can match (if even one Pattern might still match deeper,
// the walker must keep descending).
func (c Compiled) MatchDirectory(path []string) MatchVerdict {
	patterns := c.Patterns()
	var verdict MatchVerdict
	noSub := true
	for _, p := range patterns {
		v := p.MatchDirectory(path)
		verdict |= v & (bitMatch | bitAllSubdirectories)
		noSub = noSub && v.NoSubdirectories()
	}
	if noSub {
		verdict |= bitNoSubdirectories
	}
	return verdict
}

// MatchFiles delegates to every constituent Pattern in turn.
func (c Compiled) MatchFiles(matched, unmatched map[string]bool) {
	for _, p := range c.Patterns() {
		p.MatchFiles(matched, unmatched)
		if len(unmatched) == 0 {
			return
		}
	}
}

// MatchFile reports whether any constituent Pattern matches elements.
func (c Compiled) MatchFile(elements []string) bool {
	for _, p := range c.Patterns() {
		if p.MatchFile(elements) {
			return true
		}
	}
	return false
}

// AllFiles reports whether any constituent Pattern matches all files.
func (c Compiled) AllFiles() bool {
	for _, p := range c.Patterns() {
		if p.AllFiles() {
			return true
		}
	}
	return false
}

func (c Compiled) String() string {
	var parts []string
	for _, p := range c.Patterns() {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " | ")
}

// Compile compiles glob into a Pattern, or into a two-Pattern
// PatternSet when the glob requires the "**" expansion (see package
// doc comment). Compile rejects ".." elements and empty globs with a
// *PatternError.
func Compile(glob string, opts ...Option) (Compiled, error) {
	o := resolveOptions(opts)
	if glob == "" {
		return Compiled{}, newPatternError(glob, "empty glob")
	}

	elements, err := simplifyGlob(glob, o.normalizer)
	if err != nil {
		return Compiled{}, err
	}

	if len(elements) > 1 && elements[len(elements)-1].isDoubleStar() {
		set := NewPatternSet()
		set.Append(newPatternFromElements(glob, elements, o.normalizer))
		set.Append(newPatternFromElements(glob, elements[:len(elements)-1], o.normalizer))
		return Compiled{Set: set}, nil
	}

	return Compiled{Pattern: newPatternFromElements(glob, elements, o.normalizer)}, nil
}

// CompileSet is Compile, except it always returns a *PatternSet (with
// a single member when Compile would have returned a lone *Pattern),
// for callers that want uniform handling regardless of whether the
// glob triggered the "**" expansion.
func CompileSet(glob string, opts ...Option) (*PatternSet, error) {
	c, err := Compile(glob, opts...)
	if err != nil {
		return nil, err
	}
	if c.Set != nil {
		return c.Set, nil
	}
	set := NewPatternSet()
	set.Append(c.Pattern)
	return set, nil
}

// collapseSeparators replaces every run of one or more "/" with a
// single "/". A single leading or trailing "/" passes through
// untouched — those carry meaning (anchoring, trailing-slash sugar)
// handled later in the pipeline.
func collapseSeparators(glob string) string {
	if !strings.Contains(glob, "//") {
		return glob
	}
	var b strings.Builder
	b.Grow(len(glob))
	prevSlash := false
	for i := 0; i < len(glob); i++ {
		if glob[i] == '/' {
			if !prevSlash {
				b.WriteByte('/')
			}
			prevSlash = true
		} else {
			b.WriteByte(glob[i])
			prevSlash = false
		}
	}
	return b.String()
}

// simplifyGlob runs the normalization pipeline from spec §4.3 steps
// 1-8: collapse separators, split, reject "..", drop ".", collapse
// adjacent "**", case-normalize, apply trailing-slash-as-"**" sugar,
// and resolve leading-slash anchoring (including the implicit "**"
// prefix for unanchored globs not already starting with "**").
func simplifyGlob(glob string, normalize Normalizer) ([]compiledElement, error) {
	collapsed := collapseSeparators(glob)
	parts := strings.Split(collapsed, "/")

	elements := make([]compiledElement, 0, len(parts))
	prevDoubleStar := false
	for _, part := range parts {
		switch part {
		case "..":
			return nil, newPatternError(glob, "contains a '..' element")
		case ".":
			continue
		case "**":
			if prevDoubleStar {
				continue
			}
			elements = append(elements, compiledElement{original: "**", normalized: "**"})
			prevDoubleStar = true
		default:
			elements = append(elements, compiledElement{original: part, normalized: normalize(part)})
			prevDoubleStar = false
		}
	}

	if len(elements) == 0 {
		return nil, newPatternError(glob, "reduces to no path elements")
	}

	// Step 7: trailing "" (trailing slash) is sugar for a trailing "**".
	if elements[len(elements)-1].original == "" {
		elements[len(elements)-1] = compiledElement{original: "**", normalized: "**"}
	}

	// Step 8: leading "" (leading slash) anchors the pattern; otherwise
	// an implicit "**" is prepended unless the glob already starts with
	// one.
	if elements[0].original == "" {
		elements = elements[1:]
		if len(elements) == 0 {
			return nil, newPatternError(glob, "reduces to no path elements after removing leading '/'")
		}
	} else if elements[0].original != "**" {
		elements = append([]compiledElement{{original: "**", normalized: "**"}}, elements...)
	}

	return elements, nil
}

// newPatternFromElements builds one Pattern from a fully simplified
// element list, mirroring spec §4.3's Pattern construction: pop the
// trailing file pattern, derive bound_end (including the open-
// question case where the directory portion is empty), split the
// remaining elements into sections on "**", and propagate the bound
// flags to the first/last section.
func newPatternFromElements(original string, elements []compiledElement, normalizer Normalizer) *Pattern {
	boundStart := elements[0].original != "**"

	dirElements := elements
	var fileOriginal, fileNormalized string
	if dirElements[len(dirElements)-1].original != "**" {
		last := dirElements[len(dirElements)-1]
		fileOriginal, fileNormalized = last.original, last.normalized
		dirElements = dirElements[:len(dirElements)-1]
	} else {
		fileOriginal, fileNormalized = "*", "*"
	}

	var boundEnd bool
	if len(dirElements) > 0 {
		boundEnd = dirElements[len(dirElements)-1].original != "**"
	} else {
		// Open question resolved per original_source/foldersync:
		// an empty directory portion inherits bound_start, which is
		// load-bearing for the NO_MATCH_NO_SUBDIRECTORIES verdict a
		// pattern like "/*.py" must produce against a non-root
		// directory.
		boundEnd = boundStart
	}

	var sections []*section
	var fragment []compiledElement
	for _, e := range dirElements {
		if e.original == "**" {
			if len(fragment) > 0 {
				sections = append(sections, newSection(fragment))
				fragment = nil
			}
			continue
		}
		fragment = append(fragment, e)
	}
	if len(fragment) > 0 {
		sections = append(sections, newSection(fragment))
	}

	if boundStart && len(sections) > 0 {
		sections[0].boundStart = true
	}
	if boundEnd && len(sections) > 0 {
		sections[len(sections)-1].boundEnd = true
	}

	kind := fpLiteral
	switch {
	case fileNormalized == "*":
		kind = fpAll
	case strings.ContainsAny(fileNormalized, "?*"):
		kind = fpWildcard
	}

	return &Pattern{
		original:     original,
		boundStart:   boundStart,
		boundEnd:     boundEnd,
		sections:     sections,
		fileOriginal: fileOriginal,
		filePattern:  fileNormalized,
		fileKind:     kind,
		normalizer:   normalizer,
	}
}

// MatchDirectory decides whether path (an ordered list of directory
// components, root-relative) matches the directory portion of the
// pattern, returning a MatchVerdict that also tells a walker whether
// descendants are guaranteed to match or guaranteed not to.
func (p *Pattern) MatchDirectory(path []string) MatchVerdict {
	if len(p.sections) == 0 {
		// Degenerate directory portion: patterns like "*.py" or "/*.py".
		if p.boundStart {
			if len(path) == 0 {
				return MatchButNoSubdirectories
			}
			return NoMatchNoSubdirectories
		}
		return MatchAllSubdirectories
	}
	normalized := make([]string, len(path))
	for i, component := range path {
		normalized[i] = p.normalizer(component)
	}
	return p.matchRecurse(true, 0, normalized, 0)
}

// matchRecurse implements the depth-first search over sections
// described in spec §4.4. sectionIdx indexes the section still to be
// matched; location is the path index the search may resume from.
func (p *Pattern) matchRecurse(isStart bool, sectionIdx int, path []string, location int) MatchVerdict {
	if sectionIdx < len(p.sections) {
		sec := p.sections[sectionIdx]

		anyEnd := false
		found := false
		var result MatchVerdict
		sec.matchIter(path, location, func(end int) bool {
			anyEnd = true
			v := p.matchRecurse(false, sectionIdx+1, path, end)
			if v.Match() {
				result = v
				found = true
				return false
			}
			return true
		})
		if found {
			return result
		}

		if isStart && p.boundStart && !anyEnd {
			pathLen := len(path)
			sectionLen := len(sec.matchers)
			switch {
			case pathLen >= sectionLen:
				// The anchored first section had enough room to
				// match and still failed: no descendant can recover.
				return NoMatchNoSubdirectories
			case pathLen > 0:
				if !sec.matchers[pathLen-1].match(path[pathLen-1]) {
					return NoMatchNoSubdirectories
				}
				return NoMatch
			default:
				return NoMatch
			}
		}
		return NoMatch
	}

	// All sections consumed: a match witness exists.
	if len(p.sections) == 1 && p.boundStart && p.boundEnd {
		return MatchButNoSubdirectories
	}
	if p.boundEnd {
		return Match
	}
	return MatchAllSubdirectories
}

// AllFiles reports whether the pattern's file sub-pattern matches
// every candidate name (true iff the glob ended in "**", a trailing
// "/", or an explicit "*").
func (p *Pattern) AllFiles() bool {
	return p.fileKind == fpAll
}

// fileMatches applies the file sub-pattern to one already-unqualified
// candidate name.
func (p *Pattern) fileMatches(candidate string) bool {
	switch p.fileKind {
	case fpAll:
		return true
	case fpWildcard:
		return matchGlob(p.filePattern, p.normalizer(candidate))
	default:
		return p.filePattern == p.normalizer(candidate)
	}
}

// MatchFiles moves every name in unmatched that satisfies the file
// sub-pattern into matched, leaving non-matching names untouched in
// unmatched.
func (p *Pattern) MatchFiles(matched, unmatched map[string]bool) {
	for name := range unmatched {
		if p.fileMatches(name) {
			matched[name] = true
			delete(unmatched, name)
		}
	}
}

// MatchFile reports whether elements (directory components followed
// by a file name) matches this pattern, both its directory portion
// and its file sub-pattern.
func (p *Pattern) MatchFile(elements []string) bool {
	if len(elements) == 0 {
		return false
	}
	dir := elements[:len(elements)-1]
	if !p.MatchDirectory(dir).Match() {
		return false
	}
	return p.fileMatches(elements[len(elements)-1])
}

// Equal reports whether two Patterns are structurally identical.
func (p *Pattern) Equal(other *Pattern) bool {
	if p == other {
		return true
	}
	if other == nil {
		return false
	}
	if p.boundStart != other.boundStart || p.boundEnd != other.boundEnd {
		return false
	}
	if p.fileKind != other.fileKind || p.filePattern != other.filePattern {
		return false
	}
	if len(p.sections) != len(other.sections) {
		return false
	}
	for i, s := range p.sections {
		if !s.equal(other.sections[i]) {
			return false
		}
	}
	return true
}

// String reconstructs a normalized glob string for the pattern,
// suitable for the idempotence-of-normalization property in spec §8:
// compiling String() again yields an equal Pattern.
func (p *Pattern) String() string {
	var start, body, end string
	if len(p.sections) > 0 {
		if p.boundStart {
			start = "/"
		} else {
			start = "**/"
		}
		parts := make([]string, len(p.sections))
		for i, s := range p.sections {
			parts[i] = s.String()
		}
		body = strings.Join(parts, "/**/")
		if !p.boundEnd {
			end = "/**"
		}
	} else if !p.boundEnd {
		end = "**"
	}
	return start + body + end + "/" + p.fileOriginal
}
