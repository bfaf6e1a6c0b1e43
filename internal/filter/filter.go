// Package filter maintains the fuzzy-filtered, ranked view of a collection.
//
// A Cache is always built in one pass and never patched: any change to the
// query or to the underlying collection discards it and a later Refresh
// recomputes it from scratch.
package filter

import (
	"sort"
	"unicode/utf8"

	"github.com/MoreDelay/inori/internal/match"
)

// Collection is a sequence of searchable entries.
type Collection interface {
	Len() int
	// SearchStrings returns the strings entry i can be matched on.
	// The first string is the entry's display string.
	SearchStrings(i int) []string
}

// Cache is the result of applying one query to a Collection.
// Ranks index into order and indices; rank 0 is the best match.
type Cache struct {
	query   string
	order   []int
	indices [][]int
	sources []int // which search string produced indices[rank]
	valid   bool
}

// Identity returns the unfiltered view of a collection of n entries.
func Identity(n int) Cache {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return Cache{
		order:   order,
		indices: make([][]int, n),
		sources: make([]int, n),
		valid:   true,
	}
}

type scored struct {
	index     int
	source    int
	score     int
	positions []int
}

// Refilter applies query to every entry of coll.
// An empty query yields the identity order with no highlights.
func Refilter(o match.Oracle, coll Collection, query string) Cache {
	n := coll.Len()
	if query == "" {
		return Identity(n)
	}

	var hits []scored
	for i := range n {
		best, found := scored{index: i}, false
		for si, s := range coll.SearchStrings(i) {
			res, ok := o.Match(query, s)
			if !ok {
				continue
			}
			if !found || res.Score > best.score {
				best.score = res.Score
				best.positions = res.Positions
				best.source = si
				found = true
			}
		}
		if found {
			hits = append(hits, best)
		}
	}

	// Stable: equal scores keep storage order.
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].score > hits[b].score
	})

	c := Cache{
		query:   query,
		order:   make([]int, len(hits)),
		indices: make([][]int, len(hits)),
		sources: make([]int, len(hits)),
		valid:   true,
	}
	for rank, h := range hits {
		c.order[rank] = h.index
		c.indices[rank] = h.positions
		c.sources[rank] = h.source
	}
	return c
}

// Query returns the query this cache was computed for.
func (c Cache) Query() string { return c.query }

// Valid reports whether the cache holds a completed pass.
func (c Cache) Valid() bool { return c.valid }

// Len returns the number of surviving entries.
func (c Cache) Len() int { return len(c.order) }

// Order returns the storage indices in rank order. The slice must not be modified.
func (c Cache) Order() []int { return c.order }

// Index returns the storage index at rank.
func (c Cache) Index(rank int) (int, bool) {
	if rank < 0 || rank >= len(c.order) {
		return 0, false
	}
	return c.order[rank], true
}

// Highlights returns the matched rune positions of the entry at rank.
func (c Cache) Highlights(rank int) []int {
	if rank < 0 || rank >= len(c.indices) {
		return nil
	}
	return c.indices[rank]
}

// Source returns which of the entry's search strings the highlights at rank
// refer to. 0 is the display string.
func (c Cache) Source(rank int) int {
	if rank < 0 || rank >= len(c.sources) {
		return 0
	}
	return c.sources[rank]
}

// Rank returns the rank of the entry stored at index, if it survived.
func (c Cache) Rank(index int) (int, bool) {
	for rank, idx := range c.order {
		if idx == index {
			return rank, true
		}
	}
	return 0, false
}

// State is the position of a Filter in its search state machine.
type State int

const (
	Inactive State = iota
	ActiveEmpty
	ActiveQuery
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case ActiveEmpty:
		return "active"
	case ActiveQuery:
		return "searching"
	}
	return "unknown"
}

// Filter couples a query with the cache derived from it.
// The zero value is an inactive filter with an empty (invalid) cache.
type Filter struct {
	active bool
	query  string
	cache  Cache
}

// Active reports whether filtering is applied.
func (f *Filter) Active() bool { return f.active }

// Query returns the query text typed so far.
func (f *Filter) Query() string { return f.query }

// State returns the current state machine position.
func (f *Filter) State() State {
	switch {
	case !f.active:
		return Inactive
	case f.query == "":
		return ActiveEmpty
	default:
		return ActiveQuery
	}
}

// EffectiveQuery is the query the cache must be computed for.
func (f *Filter) EffectiveQuery() string {
	if !f.active {
		return ""
	}
	return f.query
}

// Enter switches to search mode. An empty query keeps the current cache.
func (f *Filter) Enter() {
	f.active = true
}

// Exit leaves search mode and clears the query.
func (f *Filter) Exit() {
	f.active = false
	f.query = ""
}

// Append adds one character to the query. It is a no-op while inactive.
func (f *Filter) Append(r rune) {
	if !f.active {
		return
	}
	f.query += string(r)
}

// Backspace removes the last character of the query.
func (f *Filter) Backspace() {
	if !f.active || f.query == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(f.query)
	f.query = f.query[:len(f.query)-size]
}

// Invalidate discards the cache. Call it whenever the collection mutates.
func (f *Filter) Invalidate() {
	f.cache = Cache{}
}

// Stale reports whether the cache cannot be trusted for a collection of n entries.
func (f *Filter) Stale(n int) bool {
	if !f.cache.valid || f.cache.query != f.EffectiveQuery() {
		return true
	}
	return f.EffectiveQuery() == "" && f.cache.Len() != n
}

// Refresh recomputes the cache if it is stale and reports whether it did.
func (f *Filter) Refresh(o match.Oracle, coll Collection) bool {
	if !f.Stale(coll.Len()) {
		return false
	}
	f.cache = Refilter(o, coll, f.EffectiveQuery())
	return true
}

// Cache returns the last computed cache. Call Refresh first.
func (f *Filter) Cache() Cache { return f.cache }
