package mpd

import (
	"slices"
	"strconv"
	"time"

	"github.com/fhs/gompd/v2/mpd"

	"github.com/MoreDelay/inori/internal/library"
)

// PlayState is the player state reported by the server.
type PlayState int

const (
	Stopped PlayState = iota
	Playing
	Paused
)

func (s PlayState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Status is a snapshot of the player.
type Status struct {
	State    PlayState
	Repeat   bool
	Random   bool
	Single   bool
	Consume  bool
	Volume   int
	Playlist int // queue version, bumped by the server on every change
	Length   int // queue length
	SongID   int // queue id of the current entry, 0 if none
	Elapsed  time.Duration
	Duration time.Duration

	Current    library.Song
	HasCurrent bool
}

func parseStatus(attrs, current mpd.Attrs) Status {
	s := Status{
		Repeat:   attrs["repeat"] == "1",
		Random:   attrs["random"] == "1",
		Single:   attrs["single"] == "1",
		Consume:  attrs["consume"] == "1",
		Volume:   atoi(attrs["volume"]),
		Playlist: atoi(attrs["playlist"]),
		Length:   atoi(attrs["playlistlength"]),
		SongID:   atoi(attrs["songid"]),
		Elapsed:  seconds(attrs["elapsed"]),
		Duration: seconds(attrs["duration"]),
	}
	switch attrs["state"] {
	case "play":
		s.State = Playing
	case "pause":
		s.State = Paused
	}
	if len(current) > 0 && current["file"] != "" {
		s.Current = parseSong(current)
		s.HasCurrent = true
	}
	return s
}

func parseSong(attrs mpd.Attrs) library.Song {
	dur := seconds(attrs["duration"])
	if dur == 0 {
		dur = seconds(attrs["Time"])
	}
	return library.Song{
		File:     attrs["file"],
		Title:    attrs["Title"],
		Artist:   attrs["Artist"],
		Album:    attrs["Album"],
		Track:    attrs["Track"],
		Duration: dur,
		ID:       atoi(attrs["Id"]),
		Pos:      atoi(attrs["Pos"]),
	}
}

func parseSongs(list []mpd.Attrs) []library.Song {
	songs := make([]library.Song, 0, len(list))
	for _, attrs := range list {
		if attrs["file"] == "" {
			continue
		}
		songs = append(songs, parseSong(attrs))
	}
	return songs
}

// parseArtists turns a grouped album artist listing into artist infos,
// keeping server order and merging repeated names.
func parseArtists(list []mpd.Attrs) []library.ArtistInfo {
	infos := make([]library.ArtistInfo, 0, len(list))
	index := make(map[string]int, len(list))
	for _, attrs := range list {
		name := attrs["AlbumArtist"]
		if name == "" {
			continue
		}
		sort := attrs["AlbumArtistSort"]
		i, seen := index[name]
		if !seen {
			index[name] = len(infos)
			infos = append(infos, library.ArtistInfo{Name: name})
			i = len(infos) - 1
		}
		if sort != "" && sort != name && !slices.Contains(infos[i].SortNames, sort) {
			infos[i].SortNames = append(infos[i].SortNames, sort)
		}
	}
	return infos
}

// groupAlbums splits an artist's songs into albums in order of first
// appearance.
func groupAlbums(songs []library.Song) []library.AlbumInfo {
	var albums []library.AlbumInfo
	index := make(map[string]int)
	for _, s := range songs {
		i, ok := index[s.Album]
		if !ok {
			i = len(albums)
			index[s.Album] = i
			albums = append(albums, library.AlbumInfo{Name: s.Album})
		}
		albums[i].Tracks = append(albums[i].Tracks, s)
	}
	return albums
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func seconds(s string) time.Duration {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return time.Duration(f * float64(time.Second))
}
