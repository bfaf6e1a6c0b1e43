package librarypane

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MoreDelay/inori/internal/engine"
	"github.com/MoreDelay/inori/internal/library"
	"github.com/MoreDelay/inori/internal/match"
	"github.com/MoreDelay/inori/internal/ui"
	"github.com/MoreDelay/inori/internal/ui/styles"
	"github.com/MoreDelay/inori/internal/ui/testutil"
)

const (
	width  = 90
	height = 12
)

func setup(t *testing.T) (*engine.Engine, Model) {
	t.Helper()
	e := engine.New(match.Fuzzy{}, 0, zap.NewNop())
	m := New(styles.Default())
	m.SetSize(width, height)
	e.SetHeight(m.ListHeight())
	e.SetScreen(engine.ScreenLibrary)

	_, err := e.ApplyArtists([]library.ArtistInfo{
		{Name: "Massive Attack"},
		{Name: "The Beatles", SortNames: []string{"Beatles, The"}},
	}, nil)
	require.NoError(t, err)
	return e, m
}

func openFirst(t *testing.T, e *engine.Engine) {
	t.Helper()
	effects := e.Handle(engine.Do(engine.OpSelect))
	require.Len(t, effects, 1)
	fetch := effects[0].(engine.FetchAlbums)
	require.NoError(t, e.ApplyAlbums(fetch.Request, []library.AlbumInfo{
		{Name: "Mezzanine", Tracks: []library.Song{
			{File: "01.flac", Title: "Angel", Duration: 379 * time.Second},
			{File: "02.flac", Title: "Teardrop", Duration: 330 * time.Second},
		}},
	}, nil))
}

// artistColumn cuts the artist panel out of a rendered line, without its
// right border and padding.
func artistColumn(line string) string {
	runes := []rune(line)
	return strings.TrimRight(string(runes[:ui.ArtistWidth(width)]), "│ ")
}

func TestView_ArtistPanel(t *testing.T) {
	e, m := setup(t)
	out := m.View(e.LibraryView())

	header, ok := testutil.FindLine(out, "Artists")
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(artistColumn(header), "2"))

	line, ok := testutil.FindLine(out, "The Beatles")
	require.True(t, ok)
	assert.Contains(t, line, "(Beatles, The)")
	assert.Equal(t, width, testutil.Width(out))
	assert.Len(t, testutil.Lines(out), height)
}

func TestView_TrackPanelLoading(t *testing.T) {
	e, m := setup(t)
	e.Handle(engine.Do(engine.OpSelect))

	out := m.View(e.LibraryView())
	assert.GreaterOrEqual(t, testutil.LineIndex(out, "Loading…"), 0)
}

func TestView_TrackPanelRows(t *testing.T) {
	e, m := setup(t)
	openFirst(t, e)

	out := m.View(e.LibraryView())
	line, ok := testutil.FindLine(out, "Mezzanine")
	require.True(t, ok)
	assert.Contains(t, line, collapsedSymbol)
	assert.Contains(t, out, "1 album")
	assert.Equal(t, -1, testutil.LineIndex(out, "Angel"))

	e.Handle(engine.Do(engine.OpToggleFold))
	out = m.View(e.LibraryView())
	line, ok = testutil.FindLine(out, "Mezzanine")
	require.True(t, ok)
	assert.Contains(t, line, expandedSymbol)
	angel, ok := testutil.FindLine(out, "Angel")
	require.True(t, ok)
	assert.Contains(t, angel, "6:19")
	assert.Equal(t, width, testutil.Width(out))
}

func TestView_FilteredArtists(t *testing.T) {
	e, m := setup(t)
	e.Handle(engine.Do(engine.OpEnterSearch))
	for _, r := range "beatles" {
		e.Handle(engine.Append(r))
	}

	out := m.View(e.LibraryView())
	assert.Equal(t, -1, testutil.LineIndex(out, "Massive Attack"))
	header, _ := testutil.FindLine(out, "Artists")
	assert.True(t, strings.HasSuffix(artistColumn(header), "1"))
}

func TestView_ZeroSize(t *testing.T) {
	e, _ := setup(t)
	assert.Empty(t, New(styles.Default()).View(e.LibraryView()))
}
