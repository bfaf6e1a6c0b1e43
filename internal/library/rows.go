package library

import "strconv"

// TrackSelItem is one visible row of an artist's flattened track view.
// It is a closed sum: the only implementations are AlbumRow and SongRow.
type TrackSelItem interface {
	// Key identifies the row across rebuilds of the view.
	Key() string
	// SearchString is the text the row is filtered and highlighted on.
	SearchString() string

	trackSelItem()
}

// AlbumRow is the header row of an album.
type AlbumRow struct {
	Album *AlbumData
}

func (r AlbumRow) Key() string          { return albumKey(r.Album) }
func (r AlbumRow) SearchString() string { return r.Album.Name }
func (AlbumRow) trackSelItem()          {}

// SongRow is a track shown under its expanded album.
type SongRow struct {
	Song  *Song
	Album *AlbumData
}

func (r SongRow) Key() string          { return songKey(r.Song.Key()) }
func (r SongRow) SearchString() string { return r.Song.DisplayTitle() }
func (SongRow) trackSelItem()          {}

// albumKey tells apart albums sharing a name by their occurrence number.
func albumKey(a *AlbumData) string { return "album:" + strconv.Itoa(a.dup) + ":" + a.Name }
func songKey(file string) string   { return "song:" + file }

// rowList adapts a flattened view to filter.Collection.
type rowList []TrackSelItem

func (l rowList) Len() int                     { return len(l) }
func (l rowList) SearchStrings(i int) []string { return []string{l[i].SearchString()} }
