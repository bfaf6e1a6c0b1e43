// Package engine drives one browsing session: it owns the library tree and
// the play queue, applies abstract commands and fetch results to them, and
// hands ready-to-draw views to the render layer.
//
// Everything here is synchronous. Server requests leave the engine as
// Effects and come back through ApplyArtists, ApplyAlbums and ApplyQueue.
package engine

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/MoreDelay/inori/internal/filter"
	"github.com/MoreDelay/inori/internal/library"
	"github.com/MoreDelay/inori/internal/match"
	"github.com/MoreDelay/inori/internal/queue"
)

// Screen is the list currently shown.
type Screen int

const (
	ScreenQueue Screen = iota
	ScreenLibrary
)

func (s Screen) String() string {
	if s == ScreenLibrary {
		return "library"
	}
	return "queue"
}

// ParseScreen converts a screen name back into a Screen.
func ParseScreen(name string) (Screen, bool) {
	switch name {
	case "library":
		return ScreenLibrary, true
	case "queue":
		return ScreenQueue, true
	}
	return ScreenQueue, false
}

// FetchError reports a collection the server could not deliver.
// The collection it names keeps its previous contents.
type FetchError struct {
	Collection string // "artists", "albums" or "queue"
	Artist     string // set for album fetches
	Err        error
}

func (e *FetchError) Error() string {
	if e.Artist != "" {
		return fmt.Sprintf("fetch %s of %q: %v", e.Collection, e.Artist, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Collection, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Engine is the filtering and selection state of one session.
type Engine struct {
	logger *zap.Logger

	screen Screen
	typing bool

	library *library.Tree
	queue   *queue.List

	// Expanded albums from a previous session, applied when each artist's
	// albums arrive.
	folds map[string][]string
}

// New creates an engine. o scores every filter; margin is the scroll margin
// of every list.
func New(o match.Oracle, margin int, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger:  logger,
		library: library.NewTree(o, margin),
		queue:   queue.New(o, margin),
	}
}

// Screen returns the visible screen.
func (e *Engine) Screen() Screen { return e.screen }

// SetScreen switches screens. Typing ends; filters stay.
func (e *Engine) SetScreen(s Screen) {
	e.screen = s
	e.typing = false
}

// Typing reports whether printable keys go to the query.
func (e *Engine) Typing() bool { return e.typing }

// Library returns the library tree.
func (e *Engine) Library() *library.Tree { return e.library }

// Queue returns the play queue.
func (e *Engine) Queue() *queue.List { return e.queue }

// SetHeight sets the number of visible rows of every list.
func (e *Engine) SetHeight(h int) {
	e.library.SetHeight(h)
	e.queue.SetHeight(h)
}

// Search returns the query and state of the filter typing goes to.
func (e *Engine) Search() (string, filter.State) {
	f := e.focusedFilter()
	if f == nil {
		return "", filter.Inactive
	}
	return f.Query(), f.State()
}

func (e *Engine) focusedFilter() *filter.Filter {
	if e.screen == ScreenQueue {
		return e.queue.Filter()
	}
	return e.library.FocusedFilter()
}

// Handle applies one command and returns the server requests it produced.
func (e *Engine) Handle(cmd Command) []Effect {
	start := time.Now()
	defer func() {
		e.logger.Debug("command",
			zap.Stringer("op", cmd.Op),
			zap.Stringer("screen", e.screen),
			zap.Bool("typing", e.typing),
			zap.Duration("took", time.Since(start)))
	}()

	effects := e.handle(cmd)
	return append(effects, e.prefetch()...)
}

func (e *Engine) handle(cmd Command) []Effect {
	switch cmd.Op {
	case OpMoveUp:
		e.move(-1)
	case OpMoveDown:
		e.move(1)
	case OpMoveLeft:
		e.typing = false
		if e.screen == ScreenLibrary {
			e.library.SetActive(library.ArtistSelector)
		}
	case OpMoveRight:
		e.typing = false
		if e.screen == ScreenLibrary && e.library.Active() == library.ArtistSelector {
			return e.openArtist()
		}
	case OpToggleFold:
		if e.screen == ScreenLibrary {
			e.library.ToggleFold()
		}
	case OpEnterSearch:
		e.enterSearch()
	case OpExitSearch:
		e.exitSearch()
	case OpAppendQuery:
		if e.typing {
			e.editQuery(func(s searcher) { s.AppendQuery(cmd.Char) })
		}
	case OpBackspace:
		if e.typing {
			e.editQuery(searcher.Backspace)
		}
	case OpSelect:
		if e.typing {
			e.typing = false
			return nil
		}
		return e.selectRow()
	case OpSwitchToLibrary:
		e.SetScreen(ScreenLibrary)
	case OpSwitchToQueue:
		e.SetScreen(ScreenQueue)
	case OpToggleScreen:
		if e.screen == ScreenLibrary {
			e.SetScreen(ScreenQueue)
		} else {
			e.SetScreen(ScreenLibrary)
		}
	case OpDelete:
		if e.screen == ScreenQueue {
			if s, ok := e.queue.Selected(); ok && s.ID != 0 {
				return []Effect{Delete{ID: s.ID}}
			}
		}
	case OpClearQueue:
		return []Effect{ClearQueue{}}
	}
	return nil
}

// searcher is the query interface shared by the library tree and the queue.
type searcher interface {
	EnterSearch()
	ExitSearch()
	AppendQuery(r rune)
	Backspace()
}

func (e *Engine) focusedSearcher() searcher {
	if e.screen == ScreenQueue {
		return e.queue
	}
	return e.library
}

func (e *Engine) editQuery(edit func(searcher)) {
	edit(e.focusedSearcher())
}

func (e *Engine) enterSearch() {
	if e.focusedFilter() == nil {
		return
	}
	e.focusedSearcher().EnterSearch()
	e.typing = true
}

// exitSearch leaves typing mode and clears the focused filter.
func (e *Engine) exitSearch() {
	e.typing = false
	if f := e.focusedFilter(); f != nil && f.Active() {
		e.focusedSearcher().ExitSearch()
	}
}

func (e *Engine) move(delta int) {
	if e.screen == ScreenQueue {
		e.queue.Move(delta)
		return
	}
	e.library.Move(delta)
}

// openArtist focuses the track list of the artist under the cursor and
// requests its albums if they were never loaded.
func (e *Engine) openArtist() []Effect {
	a := e.library.SelectedArtist()
	if a == nil {
		return nil
	}
	e.library.SetActive(library.TrackSelector)
	return e.requestAlbums(a)
}

// prefetch requests the albums of the artist under the artist cursor while
// the library is shown, so its track list is never left waiting on nothing.
func (e *Engine) prefetch() []Effect {
	if e.screen != ScreenLibrary {
		return nil
	}
	return e.requestAlbums(e.library.SelectedArtist())
}

func (e *Engine) requestAlbums(a *library.ArtistData) []Effect {
	req, ok := e.library.RequestAlbums(a)
	if !ok {
		return nil
	}
	e.logger.Debug("requesting albums",
		zap.String("artist", req.Artist),
		zap.Uint64("generation", req.Generation))
	return []Effect{FetchAlbums{Request: req}}
}

func (e *Engine) selectRow() []Effect {
	if e.screen == ScreenQueue {
		s, ok := e.queue.Selected()
		if !ok || s.ID == 0 {
			return nil
		}
		return []Effect{Play{ID: s.ID}}
	}

	if e.library.Active() == library.ArtistSelector {
		return e.openArtist()
	}
	row, ok := e.library.SelectedRow()
	if !ok {
		return nil
	}
	switch r := row.(type) {
	case library.AlbumRow:
		if len(r.Album.Tracks) == 0 {
			return nil
		}
		songs := make([]library.Song, len(r.Album.Tracks))
		copy(songs, r.Album.Tracks)
		return []Effect{Enqueue{Songs: songs}}
	case library.SongRow:
		return []Effect{Enqueue{Songs: []library.Song{*r.Song}}}
	}
	return nil
}

// ApplyArtists replaces the artist list, or reports err and keeps the
// current one. When the artist under the cursor is on screen or its track
// list is focused, its album fetch is returned.
func (e *Engine) ApplyArtists(infos []library.ArtistInfo, err error) ([]Effect, error) {
	if err != nil {
		e.logger.Warn("artist fetch failed", zap.Error(err))
		return nil, &FetchError{Collection: "artists", Err: err}
	}
	e.library.SetArtists(infos)
	e.logger.Debug("artists applied",
		zap.Int("count", len(infos)),
		zap.Uint64("generation", e.library.Generation()))

	if e.screen == ScreenLibrary || e.library.Active() == library.TrackSelector {
		return e.requestAlbums(e.library.SelectedArtist()), nil
	}
	return nil, nil
}

// ApplyAlbums stores the albums fetched for req. Results from an older
// library generation are dropped without error.
func (e *Engine) ApplyAlbums(req library.FetchRequest, albums []library.AlbumInfo, err error) error {
	if err != nil {
		e.library.FailAlbums(req)
		e.logger.Warn("album fetch failed", zap.String("artist", req.Artist), zap.Error(err))
		return &FetchError{Collection: "albums", Artist: req.Artist, Err: err}
	}
	err = e.library.ApplyAlbums(req, albums)
	switch {
	case errors.Is(err, library.ErrStaleFetch):
		e.logger.Debug("dropping stale album fetch",
			zap.String("artist", req.Artist),
			zap.Uint64("generation", req.Generation),
			zap.Uint64("current", e.library.Generation()))
		return nil
	case errors.Is(err, library.ErrUnknownArtist):
		e.logger.Debug("dropping albums of removed artist", zap.String("artist", req.Artist))
		return nil
	case err != nil:
		return err
	}
	if names, ok := e.folds[req.Artist]; ok {
		e.library.Expand(req.Artist, names)
		delete(e.folds, req.Artist)
	}
	return nil
}

// RememberFolds sets albums to expand once their artist is fetched.
func (e *Engine) RememberFolds(folds map[string][]string) {
	e.folds = folds
}

// Folds returns every expanded album, including remembered ones whose
// artist was not fetched in this session.
func (e *Engine) Folds() map[string][]string {
	out := e.library.Expanded()
	for artist, names := range e.folds {
		if _, seen := out[artist]; !seen {
			out[artist] = names
		}
	}
	return out
}

// ApplyQueue replaces the queue contents, or reports err and keeps them.
func (e *Engine) ApplyQueue(songs []library.Song, err error) error {
	if err != nil {
		e.logger.Warn("queue fetch failed", zap.Error(err))
		return &FetchError{Collection: "queue", Err: err}
	}
	e.queue.SetSongs(songs)
	return nil
}

// SetCurrent marks the playing queue entry.
func (e *Engine) SetCurrent(id int) {
	e.queue.SetCurrent(id)
}

// Selection is the identity of what the user is looking at, saved between
// sessions.
type Selection struct {
	Screen   Screen
	Selector library.Selector
	Artist   string
	QueueKey string
}

// Selection returns the current selection identity.
func (e *Engine) Selection() Selection {
	sel := Selection{Screen: e.screen, Selector: e.library.Active()}
	if a := e.library.SelectedArtist(); a != nil {
		sel.Artist = a.Name
	}
	if s, ok := e.queue.Selected(); ok {
		sel.QueueKey = queue.Key(s)
	}
	return sel
}

// RestoreArtist moves the artist cursor onto a saved artist.
func (e *Engine) RestoreArtist(name string) bool {
	if name == "" {
		return false
	}
	return e.library.SelectArtist(name)
}

// RestoreSelector focuses the saved library list. Focusing the track list
// may need the artist's albums, which are returned as an effect.
func (e *Engine) RestoreSelector(s library.Selector) []Effect {
	if s != library.TrackSelector {
		e.library.SetActive(library.ArtistSelector)
		return e.prefetch()
	}
	return e.openArtist()
}

// RestoreQueue moves the queue cursor onto a saved entry.
func (e *Engine) RestoreQueue(key string) bool {
	if key == "" {
		return false
	}
	return e.queue.Select(key)
}

// LibraryView is everything needed to draw the library screen.
type LibraryView struct {
	Artists   library.ArtistView
	Tracks    library.TrackView
	HasTracks bool // an artist is focused
	Fetched   bool // the focused artist's albums are loaded
	Active    library.Selector
}

// LibraryView returns the library screen with every cache current.
func (e *Engine) LibraryView() LibraryView {
	v := LibraryView{
		Artists: e.library.ArtistView(),
		Active:  e.library.Active(),
	}
	if a := e.library.SelectedArtist(); a != nil {
		v.Tracks, v.HasTracks = e.library.TrackView()
		v.Fetched = a.Fetched()
	}
	return v
}

// QueueView returns the queue screen with its cache current.
func (e *Engine) QueueView() queue.View {
	return e.queue.View()
}
