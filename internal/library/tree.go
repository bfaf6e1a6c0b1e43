// Package library holds the two-level library tree (artists, then each
// artist's albums and tracks) and the coupled artist and track cursors.
//
// Cursors are ranks into the current filtered order. Every mutation of the
// tree, a query, or a fold state is applied to completion before returning:
// the affected cache is dropped, recomputed, and the cursor moved back onto
// the entry it was on.
package library

import (
	"errors"

	"github.com/MoreDelay/inori/internal/filter"
	"github.com/MoreDelay/inori/internal/match"
	"github.com/MoreDelay/inori/internal/selection"
)

// Errors returned by ApplyAlbums. Neither changes the tree.
var (
	ErrStaleFetch    = errors.New("album fetch from an older library generation")
	ErrUnknownArtist = errors.New("artist not in library")
)

// Selector names which of the two cursors receives navigation.
type Selector int

const (
	ArtistSelector Selector = iota
	TrackSelector
)

func (s Selector) String() string {
	if s == TrackSelector {
		return "tracks"
	}
	return "artists"
}

// ParseSelector converts a selector name back into a Selector.
func ParseSelector(name string) (Selector, bool) {
	switch name {
	case "artists":
		return ArtistSelector, true
	case "tracks":
		return TrackSelector, true
	}
	return ArtistSelector, false
}

// FetchRequest asks the server for one artist's albums. Generation is the
// tree generation at request time; results from an older generation are
// rejected.
type FetchRequest struct {
	Artist     string
	Generation uint64
}

// Tree is the library: the artist list with its filter and cursor, and the
// active selector.
type Tree struct {
	oracle match.Oracle
	margin int
	height int

	artists []*ArtistData
	search  filter.Filter
	cursor  selection.Cursor
	active  Selector

	gen     uint64
	pending map[string]uint64
}

// NewTree creates an empty tree filtered with o.
// margin is the scroll margin for every cursor in the tree.
func NewTree(o match.Oracle, margin int) *Tree {
	return &Tree{
		oracle:  o,
		margin:  margin,
		cursor:  selection.New(margin),
		pending: make(map[string]uint64),
	}
}

// SetHeight sets the number of rows visible in each list.
func (t *Tree) SetHeight(h int) {
	t.height = h
	t.cursor.EnsureVisible(t.search.Cache().Len(), h)
	if a := t.SelectedArtist(); a != nil {
		a.cursor.EnsureVisible(a.search.Cache().Len(), h)
	}
}

// Generation returns the current library generation.
func (t *Tree) Generation() uint64 { return t.gen }

// Active returns the selector receiving navigation.
func (t *Tree) Active() Selector { return t.active }

// SetActive switches selectors. Neither cursor moves.
func (t *Tree) SetActive(s Selector) { t.active = s }

// Artists returns every artist in library order.
func (t *Tree) Artists() []*ArtistData { return t.artists }

// Find returns the artist with the given name, or nil.
func (t *Tree) Find(name string) *ArtistData {
	for _, a := range t.artists {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Filter returns the artist-list filter.
func (t *Tree) Filter() *filter.Filter { return &t.search }

// FocusedFilter returns the filter typed queries go to: the artist list's
// when the artist selector is active, else the focused artist's track filter.
// It is nil when the track selector is active without an artist.
func (t *Tree) FocusedFilter() *filter.Filter {
	if t.active == ArtistSelector {
		return &t.search
	}
	if a := t.SelectedArtist(); a != nil {
		return &a.search
	}
	return nil
}

// SelectedArtist returns the artist under the artist cursor, or nil.
func (t *Tree) SelectedArtist() *ArtistData {
	t.search.Refresh(t.oracle, artistList(t.artists))
	rank, ok := t.cursor.Selected()
	if !ok {
		return nil
	}
	idx, ok := t.search.Cache().Index(rank)
	if !ok {
		return nil
	}
	return t.artists[idx]
}

// ArtistView is the render input for the artist list.
type ArtistView struct {
	Artists    []*ArtistData
	Highlights [][]int
	// Sources[i] is the index into Artists[i].SearchStrings() that
	// Highlights[i] refers to.
	Sources []int
	Cursor  selection.Cursor
}

// ArtistView refreshes the artist filter if needed and returns the visible
// artists in rank order.
func (t *Tree) ArtistView() ArtistView {
	t.search.Refresh(t.oracle, artistList(t.artists))
	c := t.search.Cache()

	v := ArtistView{
		Artists:    make([]*ArtistData, c.Len()),
		Highlights: make([][]int, c.Len()),
		Sources:    make([]int, c.Len()),
		Cursor:     t.cursor,
	}
	for rank, idx := range c.Order() {
		v.Artists[rank] = t.artists[idx]
		v.Highlights[rank] = c.Highlights(rank)
		v.Sources[rank] = c.Source(rank)
	}
	return v
}

// TrackView returns the focused artist's track view.
func (t *Tree) TrackView() (TrackView, bool) {
	a := t.SelectedArtist()
	if a == nil {
		return TrackView{}, false
	}
	return a.View(t.oracle), true
}

// SelectedRow returns the track row under the focused artist's cursor.
func (t *Tree) SelectedRow() (TrackSelItem, bool) {
	a := t.SelectedArtist()
	if a == nil {
		return nil, false
	}
	return a.Selected(t.oracle)
}

// SetArtists replaces the artist list wholesale and starts a new generation.
// In-flight album fetches for the old generation are abandoned.
func (t *Tree) SetArtists(infos []ArtistInfo) {
	prev, ok := t.selectedArtistKey()

	artists := make([]*ArtistData, 0, len(infos))
	for _, info := range infos {
		artists = append(artists, newArtist(info, t.margin))
	}
	t.artists = artists
	t.gen++
	clear(t.pending)

	t.search.Invalidate()
	t.syncArtists(prev, ok)
}

// RequestAlbums returns the fetch request for a's albums. ok is false when a
// is already fetched or a request for it is in flight.
func (t *Tree) RequestAlbums(a *ArtistData) (FetchRequest, bool) {
	if a == nil || a.fetched {
		return FetchRequest{}, false
	}
	if gen, inFlight := t.pending[a.Name]; inFlight && gen == t.gen {
		return FetchRequest{}, false
	}
	t.pending[a.Name] = t.gen
	return FetchRequest{Artist: a.Name, Generation: t.gen}, true
}

// ApplyAlbums stores the result of req. Results from an older generation
// return ErrStaleFetch and leave the artist unfetched. Within a generation
// the last applied result wins.
func (t *Tree) ApplyAlbums(req FetchRequest, albums []AlbumInfo) error {
	if req.Generation != t.gen {
		return ErrStaleFetch
	}
	delete(t.pending, req.Artist)

	a := t.Find(req.Artist)
	if a == nil {
		return ErrUnknownArtist
	}
	a.setAlbums(t.oracle, albums)
	a.cursor.EnsureVisible(a.search.Cache().Len(), t.height)
	return nil
}

// FailAlbums forgets an in-flight request so the next selection retries it.
func (t *Tree) FailAlbums(req FetchRequest) {
	if t.pending[req.Artist] == req.Generation {
		delete(t.pending, req.Artist)
	}
}

// Move moves the active cursor by delta rows.
func (t *Tree) Move(delta int) {
	if t.active == TrackSelector {
		if a := t.SelectedArtist(); a != nil {
			a.move(t.oracle, delta, t.height)
		}
		return
	}
	prev, ok := t.selectedArtistKey()
	t.syncArtists(prev, ok)
	t.cursor.Move(delta, t.search.Cache().Len(), t.height)
}

// SelectArtist puts the artist cursor on the named artist if it is visible.
func (t *Tree) SelectArtist(name string) bool {
	t.search.Refresh(t.oracle, artistList(t.artists))
	c := t.search.Cache()
	for rank, idx := range c.Order() {
		if t.artists[idx].Name == name {
			t.cursor.Jump(rank, c.Len(), t.height)
			return true
		}
	}
	return false
}

// ToggleFold folds or expands the album of the row under the track cursor.
// It only acts in the track selector and reports whether anything changed.
func (t *Tree) ToggleFold() bool {
	if t.active != TrackSelector {
		return false
	}
	a := t.SelectedArtist()
	if a == nil {
		return false
	}
	row, ok := a.Selected(t.oracle)
	if !ok {
		return false
	}
	switch r := row.(type) {
	case AlbumRow:
		a.toggleFold(t.oracle, r.Album)
	case SongRow:
		a.toggleFold(t.oracle, r.Album)
	}
	a.cursor.EnsureVisible(a.search.Cache().Len(), t.height)
	return true
}

// Expand expands the named albums of a fetched artist.
func (t *Tree) Expand(artist string, albums []string) bool {
	a := t.Find(artist)
	if a == nil || !a.fetched {
		return false
	}
	a.expand(t.oracle, albums)
	a.cursor.EnsureVisible(a.search.Cache().Len(), t.height)
	return true
}

// Expanded returns the names of expanded albums per fetched artist.
func (t *Tree) Expanded() map[string][]string {
	out := make(map[string][]string)
	for _, a := range t.artists {
		for _, al := range a.albums {
			if al.Expanded {
				out[a.Name] = append(out[a.Name], al.Name)
			}
		}
	}
	return out
}

// EnterSearch activates the focused filter.
func (t *Tree) EnterSearch() {
	t.editQuery((*filter.Filter).Enter)
}

// ExitSearch deactivates the focused filter and clears its query.
func (t *Tree) ExitSearch() {
	t.editQuery((*filter.Filter).Exit)
}

// AppendQuery adds r to the focused filter's query.
func (t *Tree) AppendQuery(r rune) {
	t.editQuery(func(f *filter.Filter) { f.Append(r) })
}

// Backspace removes the last rune of the focused filter's query.
func (t *Tree) Backspace() {
	t.editQuery((*filter.Filter).Backspace)
}

func (t *Tree) editQuery(edit func(*filter.Filter)) {
	if t.active == ArtistSelector {
		prev, ok := t.selectedArtistKey()
		edit(&t.search)
		t.syncArtists(prev, ok)
		return
	}
	a := t.SelectedArtist()
	if a == nil {
		return
	}
	prev, ok := a.selectedKey(t.oracle)
	edit(&a.search)
	a.sync(t.oracle, prev, ok)
	a.cursor.EnsureVisible(a.search.Cache().Len(), t.height)
}

func (t *Tree) selectedArtistKey() (string, bool) {
	if a := t.SelectedArtist(); a != nil {
		return a.Name, true
	}
	return "", false
}

func (t *Tree) syncArtists(prev string, ok bool) {
	t.search.Refresh(t.oracle, artistList(t.artists))
	c := t.search.Cache()
	t.cursor.Relocate(prev, ok, c.Len(), func(rank int) string {
		idx, _ := c.Index(rank)
		return t.artists[idx].Name
	})
	t.cursor.EnsureVisible(c.Len(), t.height)
}
