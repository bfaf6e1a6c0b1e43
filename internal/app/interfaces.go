package app

import (
	"github.com/MoreDelay/inori/internal/library"
	"github.com/MoreDelay/inori/internal/mpd"
)

// Server is the music server surface the application uses.
type Server interface {
	Artists() ([]library.ArtistInfo, error)
	Albums(artist string) ([]library.AlbumInfo, error)
	Queue() ([]library.Song, error)
	Status() (mpd.Status, error)

	Add(songs []library.Song) error
	PlayID(id int) error
	DeleteID(id int) error
	Clear() error
	TogglePause(st mpd.Status) error
	Toggle(f mpd.Flag, st mpd.Status) error
}

var _ Server = (*mpd.Client)(nil)
