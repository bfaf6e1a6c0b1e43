package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/MoreDelay/inori/internal/filter"
	"github.com/MoreDelay/inori/internal/library"
	"github.com/MoreDelay/inori/internal/match"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(match.Fuzzy{}, 0, zaptest.NewLogger(t))
	e.SetHeight(20)
	return e
}

func artists(names ...string) []library.ArtistInfo {
	out := make([]library.ArtistInfo, len(names))
	for i, n := range names {
		out[i] = library.ArtistInfo{Name: n}
	}
	return out
}

func albums() []library.AlbumInfo {
	return []library.AlbumInfo{
		{Name: "Mezzanine", Tracks: []library.Song{
			{File: "ma/mezz/01.flac", Title: "Angel"},
			{File: "ma/mezz/02.flac", Title: "Risingson"},
			{File: "ma/mezz/03.flac", Title: "Teardrop"},
		}},
		{Name: "Blue Lines", Tracks: []library.Song{
			{File: "ma/bl/01.flac", Title: "Safe from Harm"},
		}},
	}
}

func queueSongs() []library.Song {
	return []library.Song{
		{File: "a.flac", Title: "Angel", ID: 10},
		{File: "b.flac", Title: "Teardrop", ID: 11},
		{File: "c.flac", Title: "Roads", ID: 12},
	}
}

func typeQuery(e *Engine, q string) {
	for _, r := range q {
		e.Handle(Append(r))
	}
}

// loadLibrary shows the library, applies the artist list and returns the
// album fetch for the artist under the cursor.
func loadLibrary(t *testing.T, e *Engine, names ...string) FetchAlbums {
	t.Helper()
	e.SetScreen(ScreenLibrary)
	effects, err := e.ApplyArtists(artists(names...), nil)
	require.NoError(t, err)
	require.Len(t, effects, 1)
	fetch, ok := effects[0].(FetchAlbums)
	require.True(t, ok)
	return fetch
}

// openFirstArtist applies the artist list, answers the first artist's album
// fetch and opens its track list.
func openFirstArtist(t *testing.T, e *Engine) {
	t.Helper()
	fetch := loadLibrary(t, e, "Massive Attack", "Portishead")
	assert.Equal(t, "Massive Attack", fetch.Request.Artist)
	require.NoError(t, e.ApplyAlbums(fetch.Request, albums(), nil))

	assert.Empty(t, e.Handle(Do(OpSelect)))
	require.Equal(t, library.TrackSelector, e.Library().Active())
}

func TestEngine_StartsOnQueue(t *testing.T) {
	e := newEngine(t)
	assert.Equal(t, ScreenQueue, e.Screen())
	assert.False(t, e.Typing())
}

func TestEngine_ScreenSwitching(t *testing.T) {
	e := newEngine(t)

	e.Handle(Do(OpToggleScreen))
	assert.Equal(t, ScreenLibrary, e.Screen())
	e.Handle(Do(OpToggleScreen))
	assert.Equal(t, ScreenQueue, e.Screen())
	e.Handle(Do(OpSwitchToLibrary))
	assert.Equal(t, ScreenLibrary, e.Screen())
	e.Handle(Do(OpSwitchToQueue))
	assert.Equal(t, ScreenQueue, e.Screen())
}

func TestEngine_SelectArtistFetchesOnce(t *testing.T) {
	e := newEngine(t)
	loadLibrary(t, e, "Massive Attack")

	assert.Empty(t, e.Handle(Do(OpSelect)), "fetch already in flight")
	assert.Equal(t, library.TrackSelector, e.Library().Active())

	// Until the fetch completes the track view is empty but valid.
	v := e.LibraryView()
	assert.True(t, v.HasTracks)
	assert.False(t, v.Fetched)
	assert.Empty(t, v.Tracks.Rows)

	e.Handle(Do(OpMoveLeft))
	assert.Empty(t, e.Handle(Do(OpMoveRight)), "fetch already in flight")
}

func TestEngine_SelectAlbumEnqueuesTracks(t *testing.T) {
	e := newEngine(t)
	openFirstArtist(t, e)

	effects := e.Handle(Do(OpSelect))

	require.Len(t, effects, 1)
	enq, ok := effects[0].(Enqueue)
	require.True(t, ok)
	require.Len(t, enq.Songs, 3)
	assert.Equal(t, "Angel", enq.Songs[0].Title)
}

func TestEngine_SelectSongEnqueuesSong(t *testing.T) {
	e := newEngine(t)
	openFirstArtist(t, e)
	e.Handle(Do(OpToggleFold))
	e.Handle(Do(OpMoveDown))
	e.Handle(Do(OpMoveDown))

	effects := e.Handle(Do(OpSelect))

	require.Len(t, effects, 1)
	enq := effects[0].(Enqueue)
	require.Len(t, enq.Songs, 1)
	assert.Equal(t, "Risingson", enq.Songs[0].Title)
}

func TestEngine_FoldScenario(t *testing.T) {
	e := newEngine(t)
	openFirstArtist(t, e)

	e.Handle(Do(OpToggleFold))

	v := e.LibraryView()
	require.Len(t, v.Tracks.Rows, 5)
	_, isAlbum := v.Tracks.Rows[4].(library.AlbumRow)
	assert.True(t, isAlbum)
}

func TestEngine_SearchTypingMode(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.ApplyQueue(queueSongs(), nil))

	// Printable input is ignored outside typing mode.
	e.Handle(Append('x'))
	q, state := e.Search()
	assert.Empty(t, q)
	assert.Equal(t, filter.Inactive, state)

	e.Handle(Do(OpEnterSearch))
	assert.True(t, e.Typing())
	typeQuery(e, "tear")
	q, state = e.Search()
	assert.Equal(t, "tear", q)
	assert.Equal(t, filter.ActiveQuery, state)
	require.Len(t, e.QueueView().Songs, 1)

	// Select ends typing but keeps the filter.
	assert.Empty(t, e.Handle(Do(OpSelect)))
	assert.False(t, e.Typing())
	assert.Len(t, e.QueueView().Songs, 1)

	// A second select plays the entry.
	effects := e.Handle(Do(OpSelect))
	require.Len(t, effects, 1)
	assert.Equal(t, Play{ID: 11}, effects[0])

	// Escape outside typing clears the filter; the cursor stays on Teardrop.
	e.Handle(Do(OpExitSearch))
	_, state = e.Search()
	assert.Equal(t, filter.Inactive, state)
	v := e.QueueView()
	require.Len(t, v.Songs, 3)
	assert.Equal(t, 1, v.Cursor.Pos())
}

func TestEngine_BackspaceEditsQuery(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.ApplyQueue(queueSongs(), nil))
	e.Handle(Do(OpEnterSearch))
	typeQuery(e, "rx")
	assert.Empty(t, e.QueueView().Songs)

	e.Handle(Do(OpBackspace))

	q, _ := e.Search()
	assert.Equal(t, "r", q)
	assert.NotEmpty(t, e.QueueView().Songs)
}

func TestEngine_LibraryQueryTargetsFocusedList(t *testing.T) {
	e := newEngine(t)
	openFirstArtist(t, e)
	e.Handle(Do(OpToggleFold))

	e.Handle(Do(OpEnterSearch))
	typeQuery(e, "tear")

	v := e.LibraryView()
	require.Len(t, v.Tracks.Rows, 1)
	assert.Equal(t, "song:ma/mezz/03.flac", v.Tracks.Rows[0].Key())
	assert.Len(t, v.Artists.Artists, 2, "artist list is not filtered")

	e.Handle(Do(OpExitSearch))
	e.Handle(Do(OpMoveLeft))
	e.Handle(Do(OpEnterSearch))
	typeQuery(e, "port")
	v = e.LibraryView()
	require.Len(t, v.Artists.Artists, 1)
	assert.Equal(t, "Portishead", v.Artists.Artists[0].Name)
}

func TestEngine_DeleteAndClear(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.ApplyQueue(queueSongs(), nil))
	e.Handle(Do(OpMoveDown))

	assert.Equal(t, []Effect{Delete{ID: 11}}, e.Handle(Do(OpDelete)))
	assert.Equal(t, []Effect{ClearQueue{}}, e.Handle(Do(OpClearQueue)))

	e.SetScreen(ScreenLibrary)
	assert.Empty(t, e.Handle(Do(OpDelete)))
}

func TestEngine_FetchFailureKeepsLastKnownGood(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.ApplyQueue(queueSongs(), nil))

	boom := errors.New("connection reset")
	err := e.ApplyQueue(nil, boom)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "queue", fe.Collection)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, e.QueueView().Songs, 3)

	_, err = e.ApplyArtists(nil, boom)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "artists", fe.Collection)
}

func TestEngine_AlbumFetchFailureAllowsRetry(t *testing.T) {
	e := newEngine(t)
	fetch := loadLibrary(t, e, "Massive Attack")

	err := e.ApplyAlbums(fetch.Request, nil, errors.New("timeout"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Massive Attack")

	retry := e.Handle(Do(OpMoveRight))
	require.Len(t, retry, 1)
	assert.Equal(t, "Massive Attack", retry[0].(FetchAlbums).Request.Artist)
}

func TestEngine_StaleAlbumFetchDropped(t *testing.T) {
	e := newEngine(t)
	stale := loadLibrary(t, e, "Massive Attack")
	e.Handle(Do(OpSelect))

	// A library re-fetch lands while the album fetch is in flight. The
	// track list is still focused, so a new fetch is requested.
	effects, err := e.ApplyArtists(artists("Massive Attack"), nil)
	require.NoError(t, err)
	require.Len(t, effects, 1)
	fresh := effects[0].(FetchAlbums)
	assert.Greater(t, fresh.Request.Generation, stale.Request.Generation)

	require.NoError(t, e.ApplyAlbums(stale.Request, albums(), nil))
	assert.False(t, e.LibraryView().Fetched)

	require.NoError(t, e.ApplyAlbums(fresh.Request, albums(), nil))
	assert.True(t, e.LibraryView().Fetched)
}

func TestEngine_SelectionRoundTrip(t *testing.T) {
	e := newEngine(t)
	_, err := e.ApplyArtists(artists("Air", "Massive Attack", "Portishead"), nil)
	require.NoError(t, err)
	require.NoError(t, e.ApplyQueue(queueSongs(), nil))
	e.SetScreen(ScreenLibrary)
	e.Handle(Do(OpMoveDown))
	e.Handle(Do(OpSwitchToQueue))
	e.Handle(Do(OpMoveDown))
	e.Handle(Do(OpMoveDown))

	sel := e.Selection()
	assert.Equal(t, Selection{Screen: ScreenQueue, Artist: "Massive Attack", QueueKey: "id:12"}, sel)

	other := newEngine(t)
	_, err = other.ApplyArtists(artists("Air", "Massive Attack", "Portishead"), nil)
	require.NoError(t, err)
	require.NoError(t, other.ApplyQueue(queueSongs(), nil))
	other.SetScreen(sel.Screen)
	assert.True(t, other.RestoreArtist(sel.Artist))
	assert.True(t, other.RestoreQueue(sel.QueueKey))
	assert.Equal(t, sel, other.Selection())
}

func TestEngine_RestoreSelectorFetches(t *testing.T) {
	e := newEngine(t)
	_, err := e.ApplyArtists(artists("Air", "Massive Attack"), nil)
	require.NoError(t, err)
	require.True(t, e.RestoreArtist("Massive Attack"))

	effects := e.RestoreSelector(library.TrackSelector)
	require.Len(t, effects, 1)
	assert.Equal(t, "Massive Attack", effects[0].(FetchAlbums).Request.Artist)
	assert.Equal(t, library.TrackSelector, e.Selection().Selector)

	assert.Empty(t, e.RestoreSelector(library.ArtistSelector))
	assert.Equal(t, library.ArtistSelector, e.Selection().Selector)
}

func TestEngine_HoverFetchesAlbums(t *testing.T) {
	e := newEngine(t)
	first := loadLibrary(t, e, "Massive Attack", "Portishead")
	assert.Equal(t, "Massive Attack", first.Request.Artist)

	effects := e.Handle(Do(OpMoveDown))
	require.Len(t, effects, 1)
	fetch := effects[0].(FetchAlbums)
	assert.Equal(t, "Portishead", fetch.Request.Artist)

	v := e.LibraryView()
	assert.True(t, v.HasTracks)
	assert.False(t, v.Fetched)

	// Moving back and forth while both fetches are in flight asks for nothing.
	assert.Empty(t, e.Handle(Do(OpMoveUp)))
	assert.Empty(t, e.Handle(Do(OpMoveDown)))

	require.NoError(t, e.ApplyAlbums(fetch.Request, albums(), nil))
	assert.True(t, e.LibraryView().Fetched)
}

func TestEngine_HoverFetchesOnlyOnLibraryScreen(t *testing.T) {
	e := newEngine(t)
	effects, err := e.ApplyArtists(artists("Massive Attack", "Portishead"), nil)
	require.NoError(t, err)
	assert.Empty(t, effects)

	effects = e.Handle(Do(OpSwitchToLibrary))
	require.Len(t, effects, 1)
	assert.Equal(t, "Massive Attack", effects[0].(FetchAlbums).Request.Artist)
}

func TestEngine_QueryMovingCursorFetchesAlbums(t *testing.T) {
	e := newEngine(t)
	loadLibrary(t, e, "Massive Attack", "Portishead")

	e.Handle(Do(OpEnterSearch))
	var fetched []string
	for _, r := range "port" {
		for _, eff := range e.Handle(Append(r)) {
			fetched = append(fetched, eff.(FetchAlbums).Request.Artist)
		}
	}
	assert.Equal(t, []string{"Portishead"}, fetched)
}

func TestParseScreen(t *testing.T) {
	s, ok := ParseScreen("library")
	assert.True(t, ok)
	assert.Equal(t, ScreenLibrary, s)
	_, ok = ParseScreen("playlists")
	assert.False(t, ok)
}

func TestEngine_RememberedFoldsApplyOnFetch(t *testing.T) {
	e := newEngine(t)
	e.RememberFolds(map[string][]string{
		"Massive Attack": {"Blue Lines"},
		"Portishead":     {"Dummy"},
	})
	openFirstArtist(t, e)

	view, ok := e.Library().TrackView()
	require.True(t, ok)
	rows := view.Rows
	// Mezzanine stays collapsed, Blue Lines shows its one song.
	require.Len(t, rows, 3)

	folds := e.Folds()
	assert.Equal(t, []string{"Blue Lines"}, folds["Massive Attack"])
	assert.Equal(t, []string{"Dummy"}, folds["Portishead"])
}
