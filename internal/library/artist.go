package library

import (
	"slices"

	"github.com/MoreDelay/inori/internal/filter"
	"github.com/MoreDelay/inori/internal/match"
	"github.com/MoreDelay/inori/internal/selection"
)

// AlbumData is an album owned by exactly one ArtistData.
type AlbumData struct {
	Name     string
	Expanded bool
	Tracks   []Song

	// dup counts earlier albums of the same artist with the same name.
	dup int
}

// ArtistData is one artist of the library tree together with its own
// track view: a cursor and a filter over its flattened rows.
type ArtistData struct {
	Name      string
	SortNames []string

	fetched bool
	albums  []*AlbumData

	cursor selection.Cursor
	search filter.Filter
}

func newArtist(info ArtistInfo, margin int) *ArtistData {
	return &ArtistData{
		Name:      info.Name,
		SortNames: info.SortNames,
		cursor:    selection.New(margin),
	}
}

// Fetched reports whether the artist's albums have been loaded.
func (a *ArtistData) Fetched() bool { return a.fetched }

// Albums returns the artist's albums; empty until fetched.
func (a *ArtistData) Albums() []*AlbumData { return a.albums }

// Filter returns the artist's track-view filter.
func (a *ArtistData) Filter() *filter.Filter { return &a.search }

// Cursor returns the artist's track-view cursor.
func (a *ArtistData) Cursor() selection.Cursor { return a.cursor }

// SearchStrings returns the name followed by every distinct sort name.
func (a *ArtistData) SearchStrings() []string {
	out := make([]string, 0, 1+len(a.SortNames))
	out = append(out, a.Name)
	for _, s := range a.SortNames {
		if s != "" && s != a.Name {
			out = append(out, s)
		}
	}
	return out
}

// setAlbums replaces the albums wholesale and marks the artist fetched.
func (a *ArtistData) setAlbums(o match.Oracle, infos []AlbumInfo) {
	prev, ok := a.selectedKey(o)

	albums := make([]*AlbumData, 0, len(infos))
	seen := make(map[string]int, len(infos))
	for _, info := range infos {
		albums = append(albums, &AlbumData{Name: info.Name, Tracks: info.Tracks, dup: seen[info.Name]})
		seen[info.Name]++
	}
	a.albums = albums
	a.fetched = true

	a.search.Invalidate()
	a.sync(o, prev, ok)
}

// Rows returns the flattened track view: every album row, followed by its
// tracks when the album is expanded.
func (a *ArtistData) Rows() []TrackSelItem {
	var rows []TrackSelItem
	for _, al := range a.albums {
		rows = append(rows, AlbumRow{Album: al})
		if !al.Expanded {
			continue
		}
		for i := range al.Tracks {
			rows = append(rows, SongRow{Song: &al.Tracks[i], Album: al})
		}
	}
	return rows
}

// View refreshes the track filter if needed and returns the visible rows in
// rank order with their highlights.
func (a *ArtistData) View(o match.Oracle) TrackView {
	rows := a.Rows()
	a.search.Refresh(o, rowList(rows))
	c := a.search.Cache()

	v := TrackView{Rows: make([]TrackSelItem, c.Len()), Highlights: make([][]int, c.Len())}
	for rank, idx := range c.Order() {
		v.Rows[rank] = rows[idx]
		v.Highlights[rank] = c.Highlights(rank)
	}
	v.Cursor = a.cursor
	return v
}

// Selected returns the row under the track cursor.
func (a *ArtistData) Selected(o match.Oracle) (TrackSelItem, bool) {
	v := a.View(o)
	rank, ok := v.Cursor.Selected()
	if !ok || rank >= len(v.Rows) {
		return nil, false
	}
	return v.Rows[rank], true
}

func (a *ArtistData) selectedKey(o match.Oracle) (string, bool) {
	rank, ok := a.cursor.Selected()
	if !ok {
		return "", false
	}
	rows := a.Rows()
	a.search.Refresh(o, rowList(rows))
	idx, ok := a.search.Cache().Index(rank)
	if !ok {
		return "", false
	}
	return rows[idx].Key(), true
}

// sync recomputes the track filter and moves the cursor back onto prev.
func (a *ArtistData) sync(o match.Oracle, prev string, ok bool) {
	rows := a.Rows()
	a.search.Refresh(o, rowList(rows))
	c := a.search.Cache()
	a.cursor.Relocate(prev, ok, c.Len(), func(rank int) string {
		idx, _ := c.Index(rank)
		return rows[idx].Key()
	})
}

func (a *ArtistData) move(o match.Oracle, delta, height int) {
	prev, ok := a.selectedKey(o)
	a.sync(o, prev, ok)
	a.cursor.Move(delta, a.search.Cache().Len(), height)
}

// toggleFold flips album's expansion. Only this artist's view is touched:
// its filter cache is dropped and the cursor follows the same row, or the
// album row when the song under the cursor was folded away.
func (a *ArtistData) toggleFold(o match.Oracle, album *AlbumData) {
	prev, ok := a.selectedKey(o)
	album.Expanded = !album.Expanded
	if !album.Expanded && ok {
		if owner, found := a.songAlbum(prev); found && owner == album {
			prev = albumKey(album)
		}
	}
	a.search.Invalidate()
	a.sync(o, prev, ok)
}

// expand expands the named albums, keeping the cursor on its row.
func (a *ArtistData) expand(o match.Oracle, names []string) {
	prev, ok := a.selectedKey(o)
	for _, al := range a.albums {
		if slices.Contains(names, al.Name) {
			al.Expanded = true
		}
	}
	a.search.Invalidate()
	a.sync(o, prev, ok)
}

// songAlbum returns the album owning the song row with the given key.
func (a *ArtistData) songAlbum(key string) (*AlbumData, bool) {
	for _, al := range a.albums {
		for _, s := range al.Tracks {
			if songKey(s.Key()) == key {
				return al, true
			}
		}
	}
	return nil, false
}

// TrackView is the render input for one artist's track list.
type TrackView struct {
	Rows       []TrackSelItem
	Highlights [][]int
	Cursor     selection.Cursor
}

// artistList adapts the artists to filter.Collection.
type artistList []*ArtistData

func (l artistList) Len() int                     { return len(l) }
func (l artistList) SearchStrings(i int) []string { return l[i].SearchStrings() }
