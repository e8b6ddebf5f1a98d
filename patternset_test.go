package antglob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternSetEmpty(t *testing.T) {
	ps := NewPatternSet()
	assert.True(t, ps.Empty())
	assert.False(t, ps.AllFiles())
}

func TestPatternSetAppendAndAllFiles(t *testing.T) {
	ps := NewPatternSet()
	specific, err := Compile("*.go")
	require.NoError(t, err)
	ps.Append(specific.Pattern)
	assert.False(t, ps.Empty())
	assert.False(t, ps.AllFiles())

	all, err := Compile("**")
	require.NoError(t, err)
	ps.Append(all.Pattern)
	assert.True(t, ps.AllFiles())
}

func TestPatternSetAppendPanicsOnNil(t *testing.T) {
	ps := NewPatternSet()
	assert.Panics(t, func() { ps.Append(nil) })
}

func TestPatternSetExtendPanicsOnNil(t *testing.T) {
	ps := NewPatternSet()
	p, err := Compile("*.go")
	require.NoError(t, err)
	assert.Panics(t, func() { ps.Extend(p.Pattern, nil) })
}

func TestPatternSetRemove(t *testing.T) {
	ps := NewPatternSet()
	p, err := Compile("*.go")
	require.NoError(t, err)
	ps.Append(p.Pattern)
	assert.Equal(t, 1, len(ps.Patterns()))

	other, err := Compile("*.go")
	require.NoError(t, err)
	assert.True(t, ps.Remove(other.Pattern), "Remove should match by structural equality, not identity")
	assert.True(t, ps.Empty())

	assert.False(t, ps.Remove(other.Pattern), "a second Remove of an already-removed Pattern should report false")
}

func TestPatternSetMatchFiles(t *testing.T) {
	ps := NewPatternSet()
	goFiles, err := Compile("*.go")
	require.NoError(t, err)
	mdFiles, err := Compile("*.md")
	require.NoError(t, err)
	ps.Extend(goFiles.Pattern, mdFiles.Pattern)

	unmatched := map[string]bool{"main.go": true, "README.md": true, "data.json": true}
	matched := map[string]bool{}
	ps.MatchFiles(matched, unmatched)

	assert.True(t, matched["main.go"])
	assert.True(t, matched["README.md"])
	assert.False(t, matched["data.json"])
	assert.Equal(t, map[string]bool{"data.json": true}, unmatched)
}

func TestPatternSetMatchFile(t *testing.T) {
	set, err := CompileSet("/src/**")
	require.NoError(t, err)

	assert.True(t, set.MatchFile([]string{"src", "main.go"}))
	assert.False(t, set.MatchFile([]string{"other", "main.go"}))
}

func TestPatternSetStringIncludesMembers(t *testing.T) {
	ps := NewPatternSet()
	p, err := Compile("*.go")
	require.NoError(t, err)
	ps.Append(p.Pattern)
	s := ps.String()
	assert.Contains(t, s, p.Pattern.String())
}
