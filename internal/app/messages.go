// Package app is the terminal front end: it turns key presses into engine
// commands, runs the resulting server requests as tea commands and feeds
// their results back into the engine.
package app

import (
	"time"

	"github.com/MoreDelay/inori/internal/errmsg"
	"github.com/MoreDelay/inori/internal/library"
	"github.com/MoreDelay/inori/internal/mpd"
)

// TickMsg triggers a status poll.
type TickMsg time.Time

// ArtistsMsg carries the artist listing.
type ArtistsMsg struct {
	Artists []library.ArtistInfo
	Err     error
}

// AlbumsMsg carries one artist's albums for the request that asked.
type AlbumsMsg struct {
	Request library.FetchRequest
	Albums  []library.AlbumInfo
	Err     error
}

// QueueMsg carries the play queue.
type QueueMsg struct {
	Songs []library.Song
	Err   error
}

// StatusMsg carries the player status.
type StatusMsg struct {
	Status mpd.Status
	Err    error
}

// ActionDoneMsg reports a finished server request that changes state.
type ActionDoneMsg struct {
	Op  errmsg.Op
	Err error
}
