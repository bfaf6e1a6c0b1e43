package mpd

import (
	"testing"
	"time"

	"github.com/fhs/gompd/v2/mpd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MoreDelay/inori/internal/library"
)

func TestParseStatus(t *testing.T) {
	st := parseStatus(mpd.Attrs{
		"state":          "pause",
		"repeat":         "1",
		"random":         "0",
		"single":         "1",
		"consume":        "0",
		"volume":         "80",
		"playlist":       "42",
		"playlistlength": "3",
		"songid":         "12",
		"elapsed":        "61.5",
		"duration":       "240.000",
	}, mpd.Attrs{
		"file":  "ma/mezz/03.flac",
		"Title": "Teardrop",
		"Id":    "12",
		"Pos":   "2",
	})

	assert.Equal(t, Paused, st.State)
	assert.True(t, st.Repeat)
	assert.False(t, st.Random)
	assert.True(t, st.Single)
	assert.Equal(t, 42, st.Playlist)
	assert.Equal(t, 12, st.SongID)
	assert.Equal(t, 61500*time.Millisecond, st.Elapsed)
	assert.Equal(t, 4*time.Minute, st.Duration)
	require.True(t, st.HasCurrent)
	assert.Equal(t, "Teardrop", st.Current.Title)
}

func TestParseStatus_StoppedWithoutSong(t *testing.T) {
	st := parseStatus(mpd.Attrs{"state": "stop"}, mpd.Attrs{})
	assert.Equal(t, Stopped, st.State)
	assert.False(t, st.HasCurrent)
	assert.Equal(t, "stopped", st.State.String())
}

func TestParseSongs(t *testing.T) {
	songs := parseSongs([]mpd.Attrs{
		{"file": "a.flac", "Title": "Angel", "Time": "379", "Id": "10", "Pos": "0"},
		{"directory": "ma"},
		{"file": "b.flac", "duration": "330.5"},
	})

	require.Len(t, songs, 2)
	assert.Equal(t, library.Song{
		File:     "a.flac",
		Title:    "Angel",
		Duration: 379 * time.Second,
		ID:       10,
	}, songs[0])
	assert.Equal(t, 330500*time.Millisecond, songs[1].Duration)
	assert.Equal(t, "b.flac", songs[1].DisplayTitle())
}

func TestParseArtists(t *testing.T) {
	infos := parseArtists([]mpd.Attrs{
		{"AlbumArtist": "Massive Attack", "AlbumArtistSort": "Massive Attack"},
		{"AlbumArtist": "The Beatles", "AlbumArtistSort": "Beatles, The"},
		{"AlbumArtist": ""},
		{"AlbumArtist": "The Beatles", "AlbumArtistSort": "Beatles"},
	})

	require.Len(t, infos, 2)
	assert.Equal(t, "Massive Attack", infos[0].Name)
	assert.Empty(t, infos[0].SortNames)
	assert.Equal(t, []string{"Beatles, The", "Beatles"}, infos[1].SortNames)
}

func TestGroupAlbums(t *testing.T) {
	albums := groupAlbums([]library.Song{
		{File: "1", Album: "Mezzanine"},
		{File: "2", Album: "Blue Lines"},
		{File: "3", Album: "Mezzanine"},
	})

	require.Len(t, albums, 2)
	assert.Equal(t, "Mezzanine", albums[0].Name)
	assert.Len(t, albums[0].Tracks, 2)
	assert.Equal(t, "3", albums[0].Tracks[1].File)
	assert.Equal(t, "Blue Lines", albums[1].Name)
}

func TestOptions_Addr(t *testing.T) {
	assert.Equal(t, "localhost:6600", Options{Host: "localhost", Port: 6600}.Addr())
	assert.Equal(t, "[::1]:6601", Options{Host: "::1", Port: 6601}.Addr())
}

func TestClient_ClosedReturnsErrNotConnected(t *testing.T) {
	c := New(Options{Host: "localhost", Port: 6600}, nil)
	require.NoError(t, c.Close())

	_, err := c.Queue()
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestFlag_String(t *testing.T) {
	assert.Equal(t, "repeat", FlagRepeat.String())
	assert.Equal(t, "consume", FlagConsume.String())
}
