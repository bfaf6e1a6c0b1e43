package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MoreDelay/inori/internal/match"
)

// entries is a Collection where each entry has one or more strings.
type entries [][]string

func (e entries) Len() int                     { return len(e) }
func (e entries) SearchStrings(i int) []string { return e[i] }

func single(names ...string) entries {
	e := make(entries, len(names))
	for i, n := range names {
		e[i] = []string{n}
	}
	return e
}

// substringOracle matches case-insensitive substrings; earlier matches score higher.
var substringOracle = match.Func(func(q, c string) (match.Result, bool) {
	idx := strings.Index(strings.ToLower(c), strings.ToLower(q))
	if idx < 0 {
		return match.Result{}, false
	}
	pos := make([]int, 0, len(q))
	for i := range len(q) {
		pos = append(pos, idx+i)
	}
	return match.Result{Score: 100 - idx, Positions: pos}, true
})

// countingOracle counts calls to detect recomputation.
type countingOracle struct {
	calls int
}

func (c *countingOracle) Match(q, s string) (match.Result, bool) {
	c.calls++
	return substringOracle.Match(q, s)
}

func TestRefilter_EmptyQueryIsIdentity(t *testing.T) {
	coll := single("Abba", "Radiohead", "The Beatles")

	c := Refilter(substringOracle, coll, "")

	assert.True(t, c.Valid())
	assert.Equal(t, []int{0, 1, 2}, c.Order())
	for rank := range c.Len() {
		assert.Empty(t, c.Highlights(rank))
	}
}

func TestRefilter_Exclusion(t *testing.T) {
	coll := single("Abba", "Radiohead", "The Beatles", "Beach House")

	c := Refilter(substringOracle, coll, "bea")

	assert.NotContains(t, c.Order(), 0)
	assert.NotContains(t, c.Order(), 1)
	assert.ElementsMatch(t, []int{2, 3}, c.Order())
}

func TestRefilter_ScenarioWithFuzzyOracle(t *testing.T) {
	coll := single("Abba", "Radiohead", "The Beatles")

	c := Refilter(match.Fuzzy{}, coll, "be")

	require.Equal(t, 1, c.Len())
	idx, ok := c.Index(0)
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, []int{4, 5}, c.Highlights(0))
}

func TestRefilter_SortsByScoreStable(t *testing.T) {
	// "ab" at index 0 scores 100, at index 2 scores 98.
	coll := single("xxab", "ab", "zzab", "abc", "xxab")

	c := Refilter(substringOracle, coll, "ab")

	assert.Equal(t, []int{1, 3, 0, 2, 4}, c.Order())
}

func TestRefilter_Deterministic(t *testing.T) {
	coll := single("one", "bone", "stone", "ozone", "phone")

	a := Refilter(match.Fuzzy{}, coll, "one")
	b := Refilter(match.Fuzzy{}, coll, "one")

	assert.Equal(t, a.Order(), b.Order())
	for rank := range a.Len() {
		assert.Equal(t, a.Highlights(rank), b.Highlights(rank))
	}
}

func TestRefilter_BestStringWins(t *testing.T) {
	coll := entries{
		{"The Beatles", "Beatles, The"},
		{"Xbeatles"},
	}

	c := Refilter(substringOracle, coll, "beatles")

	require.Equal(t, 2, c.Len())
	assert.Equal(t, 0, c.Order()[0])
	// The sort-name variant matched at position 0.
	assert.Equal(t, 0, c.Highlights(0)[0])
	assert.Equal(t, 1, c.Source(0))
	assert.Equal(t, 0, c.Source(1))
}

func TestCache_Rank(t *testing.T) {
	c := Refilter(substringOracle, single("aa", "b", "ca"), "a")

	rank, ok := c.Rank(2)
	assert.True(t, ok)
	assert.Equal(t, 1, rank)

	_, ok = c.Rank(1)
	assert.False(t, ok)

	_, ok = c.Index(5)
	assert.False(t, ok)
	assert.Nil(t, c.Highlights(-1))
}

func TestFilter_StateMachine(t *testing.T) {
	var f Filter
	assert.Equal(t, Inactive, f.State())

	f.Append('x')
	assert.Empty(t, f.Query(), "appending while inactive is ignored")

	f.Enter()
	assert.Equal(t, ActiveEmpty, f.State())

	f.Append('b')
	f.Append('é')
	assert.Equal(t, ActiveQuery, f.State())
	assert.Equal(t, "bé", f.Query())

	f.Backspace()
	assert.Equal(t, "b", f.Query())
	f.Backspace()
	f.Backspace()
	assert.Equal(t, ActiveEmpty, f.State())

	f.Append('q')
	f.Exit()
	assert.Equal(t, Inactive, f.State())
	assert.Empty(t, f.Query())
	assert.Empty(t, f.EffectiveQuery())
}

func TestFilter_RefreshOnlyWhenStale(t *testing.T) {
	coll := single("Abba", "Radiohead", "The Beatles")
	o := &countingOracle{}
	var f Filter

	assert.True(t, f.Refresh(o, coll), "first refresh computes identity")
	assert.Equal(t, []int{0, 1, 2}, f.Cache().Order())

	f.Enter()
	assert.False(t, f.Refresh(o, coll), "entering search with empty query keeps cache")

	f.Append('a')
	assert.True(t, f.Refresh(o, coll))
	calls := o.calls
	assert.False(t, f.Refresh(o, coll))
	assert.Equal(t, calls, o.calls)
	assert.Equal(t, "a", f.Cache().Query())

	f.Invalidate()
	assert.True(t, f.Stale(coll.Len()))
	assert.True(t, f.Refresh(o, coll))

	f.Exit()
	assert.True(t, f.Refresh(o, coll))
	assert.Equal(t, []int{0, 1, 2}, f.Cache().Order())
}

func TestFilter_InactiveIdentityTracksLength(t *testing.T) {
	var f Filter
	f.Refresh(substringOracle, single("a", "b"))

	assert.True(t, f.Stale(3))
	f.Refresh(substringOracle, single("a", "b", "c"))
	assert.Equal(t, 3, f.Cache().Len())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "inactive", Inactive.String())
	assert.Equal(t, "active", ActiveEmpty.String())
	assert.Equal(t, "searching", ActiveQuery.String())
}
