package engine

import "github.com/MoreDelay/inori/internal/library"

// Effect is a request to the music server produced by a command.
// The engine never performs I/O; the caller executes effects and feeds the
// results back through the Apply methods.
type Effect interface {
	effect()
}

// FetchAlbums asks for one artist's albums.
type FetchAlbums struct {
	Request library.FetchRequest
}

// Enqueue appends songs to the play queue.
type Enqueue struct {
	Songs []library.Song
}

// Play starts the queue entry with the given id.
type Play struct {
	ID int
}

// Delete removes the queue entry with the given id.
type Delete struct {
	ID int
}

// ClearQueue empties the play queue.
type ClearQueue struct{}

func (FetchAlbums) effect() {}
func (Enqueue) effect()     {}
func (Play) effect()        {}
func (Delete) effect()      {}
func (ClearQueue) effect()  {}
