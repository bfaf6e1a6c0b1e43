package library

import (
	"path"
	"time"
)

// Song is one track as reported by the music server.
// The engine never modifies a Song; it is replaced on re-fetch.
type Song struct {
	File     string // storage URI, the stable identity
	Title    string
	Artist   string
	Album    string
	Track    string
	Duration time.Duration

	// Queue entry fields; zero for songs outside the queue.
	ID  int
	Pos int
}

// Key returns the song's stable identity.
func (s Song) Key() string {
	return s.File
}

// DisplayTitle returns the title, falling back to the file name.
func (s Song) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return path.Base(s.File)
}

// ArtistInfo is one entry of the artist listing.
type ArtistInfo struct {
	Name      string
	SortNames []string
}

// AlbumInfo is one album of an artist, with its tracks in library order.
type AlbumInfo struct {
	Name   string
	Tracks []Song
}
