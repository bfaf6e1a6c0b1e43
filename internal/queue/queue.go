// Package queue holds the play queue as a flat, filterable list.
package queue

import (
	"strconv"

	"github.com/MoreDelay/inori/internal/filter"
	"github.com/MoreDelay/inori/internal/library"
	"github.com/MoreDelay/inori/internal/match"
	"github.com/MoreDelay/inori/internal/selection"
)

// Search string slots of a queue entry, as reported by View.Sources.
const (
	SourceTitle = iota
	SourceArtist
	SourceAlbum
)

// List is the play queue with its filter and cursor.
type List struct {
	oracle match.Oracle
	height int

	songs   []library.Song
	search  filter.Filter
	cursor  selection.Cursor
	current int // queue id of the playing entry, 0 if none
}

// New creates an empty queue filtered with o.
func New(o match.Oracle, margin int) *List {
	return &List{
		oracle: o,
		cursor: selection.New(margin),
	}
}

// Key identifies a queue entry: its queue id when known, else its file.
func Key(s library.Song) string {
	if s.ID != 0 {
		return "id:" + strconv.Itoa(s.ID)
	}
	return s.File
}

// Len returns the number of entries, ignoring the filter.
func (l *List) Len() int { return len(l.songs) }

// Songs returns the queue in play order.
func (l *List) Songs() []library.Song { return l.songs }

// Filter returns the queue filter.
func (l *List) Filter() *filter.Filter { return &l.search }

// Current returns the queue id of the playing entry.
func (l *List) Current() int { return l.current }

// SetCurrent marks the playing entry by queue id; 0 clears it.
func (l *List) SetCurrent(id int) { l.current = id }

// SetHeight sets the number of visible rows.
func (l *List) SetHeight(h int) {
	l.height = h
	l.cursor.EnsureVisible(l.search.Cache().Len(), h)
}

// SetSongs replaces the queue contents. The cursor stays on the same entry
// when it is still present.
func (l *List) SetSongs(songs []library.Song) {
	prev, ok := l.selectedKey()
	l.songs = songs
	l.search.Invalidate()
	l.sync(prev, ok)
}

// Selected returns the entry under the cursor.
func (l *List) Selected() (library.Song, bool) {
	l.refresh()
	rank, ok := l.cursor.Selected()
	if !ok {
		return library.Song{}, false
	}
	idx, ok := l.search.Cache().Index(rank)
	if !ok {
		return library.Song{}, false
	}
	return l.songs[idx], true
}

// Select moves the cursor onto the entry with the given key if visible.
func (l *List) Select(key string) bool {
	l.refresh()
	c := l.search.Cache()
	for rank, idx := range c.Order() {
		if Key(l.songs[idx]) == key {
			l.cursor.Jump(rank, c.Len(), l.height)
			return true
		}
	}
	return false
}

// Move moves the cursor by delta rows.
func (l *List) Move(delta int) {
	l.refresh()
	l.cursor.Move(delta, l.search.Cache().Len(), l.height)
}

// EnterSearch activates the filter.
func (l *List) EnterSearch() { l.editQuery((*filter.Filter).Enter) }

// ExitSearch deactivates the filter and clears its query.
func (l *List) ExitSearch() { l.editQuery((*filter.Filter).Exit) }

// AppendQuery adds r to the query.
func (l *List) AppendQuery(r rune) {
	l.editQuery(func(f *filter.Filter) { f.Append(r) })
}

// Backspace removes the last rune of the query.
func (l *List) Backspace() { l.editQuery((*filter.Filter).Backspace) }

// View is the render input for the queue.
type View struct {
	Songs      []library.Song
	Highlights [][]int
	// Sources[i] says which column Highlights[i] belongs to.
	Sources []int
	Cursor  selection.Cursor
	Current int
}

// View refreshes the filter if needed and returns the visible entries.
func (l *List) View() View {
	l.refresh()
	c := l.search.Cache()
	v := View{
		Songs:      make([]library.Song, c.Len()),
		Highlights: make([][]int, c.Len()),
		Sources:    make([]int, c.Len()),
		Cursor:     l.cursor,
		Current:    l.current,
	}
	for rank, idx := range c.Order() {
		v.Songs[rank] = l.songs[idx]
		v.Highlights[rank] = c.Highlights(rank)
		v.Sources[rank] = c.Source(rank)
	}
	return v
}

func (l *List) editQuery(edit func(*filter.Filter)) {
	prev, ok := l.selectedKey()
	edit(&l.search)
	l.sync(prev, ok)
}

func (l *List) selectedKey() (string, bool) {
	s, ok := l.Selected()
	if !ok {
		return "", false
	}
	return Key(s), true
}

func (l *List) refresh() {
	l.search.Refresh(l.oracle, songList(l.songs))
}

func (l *List) sync(prev string, ok bool) {
	l.refresh()
	c := l.search.Cache()
	l.cursor.Relocate(prev, ok, c.Len(), func(rank int) string {
		idx, _ := c.Index(rank)
		return Key(l.songs[idx])
	})
	l.cursor.EnsureVisible(c.Len(), l.height)
}

// songList adapts queue entries to filter.Collection.
type songList []library.Song

func (l songList) Len() int { return len(l) }

func (l songList) SearchStrings(i int) []string {
	s := l[i]
	return []string{SourceTitle: s.DisplayTitle(), SourceArtist: s.Artist, SourceAlbum: s.Album}
}
