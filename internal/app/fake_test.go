package app

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MoreDelay/inori/internal/library"
	"github.com/MoreDelay/inori/internal/mpd"
)

// fakeServer is an in-memory music server. Queue edits bump the queue
// version like the real one.
type fakeServer struct {
	mu sync.Mutex

	artists []library.ArtistInfo
	albums  map[string][]library.AlbumInfo
	queue   []library.Song
	status  mpd.Status
	nextID  int

	artistsErr error
	albumCalls map[string]int
	played     []int
	toggled    []mpd.Flag
	pauses     int
}

func newFakeServer() *fakeServer {
	s := &fakeServer{
		artists: []library.ArtistInfo{
			{Name: "Massive Attack"},
			{Name: "Portishead"},
		},
		albums: map[string][]library.AlbumInfo{
			"Massive Attack": {
				{Name: "Mezzanine", Tracks: []library.Song{
					{File: "ma/01.flac", Title: "Angel", Artist: "Massive Attack", Album: "Mezzanine"},
					{File: "ma/02.flac", Title: "Teardrop", Artist: "Massive Attack", Album: "Mezzanine"},
				}},
			},
			"Portishead": {
				{Name: "Dummy", Tracks: []library.Song{
					{File: "p/01.flac", Title: "Mysterons", Artist: "Portishead", Album: "Dummy"},
					{File: "p/02.flac", Title: "Roads", Artist: "Portishead", Album: "Dummy"},
				}},
				{Name: "Third", Tracks: []library.Song{
					{File: "p/11.flac", Title: "Silence", Artist: "Portishead", Album: "Third"},
				}},
			},
		},
		albumCalls: make(map[string]int),
		status:     mpd.Status{Playlist: 1},
	}
	s.enqueue(s.albums["Portishead"][0].Tracks)
	return s
}

func (s *fakeServer) enqueue(songs []library.Song) {
	for _, song := range songs {
		s.nextID++
		song.ID = s.nextID
		song.Pos = len(s.queue)
		s.queue = append(s.queue, song)
	}
	s.status.Playlist++
	s.status.Length = len(s.queue)
}

func (s *fakeServer) Artists() ([]library.ArtistInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.artistsErr != nil {
		return nil, s.artistsErr
	}
	return append([]library.ArtistInfo(nil), s.artists...), nil
}

func (s *fakeServer) Albums(artist string) ([]library.AlbumInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.albumCalls[artist]++
	return s.albums[artist], nil
}

func (s *fakeServer) Queue() ([]library.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]library.Song(nil), s.queue...), nil
}

func (s *fakeServer) Status() (mpd.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, nil
}

func (s *fakeServer) Add(songs []library.Song) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enqueue(songs)
	return nil
}

func (s *fakeServer) PlayID(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.played = append(s.played, id)
	s.status.State = mpd.Playing
	s.status.SongID = id
	return nil
}

func (s *fakeServer) DeleteID(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, song := range s.queue {
		if song.ID == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			break
		}
	}
	s.status.Playlist++
	return nil
}

func (s *fakeServer) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = nil
	s.status.Playlist++
	return nil
}

func (s *fakeServer) TogglePause(mpd.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pauses++
	return nil
}

func (s *fakeServer) Toggle(f mpd.Flag, _ mpd.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toggled = append(s.toggled, f)
	return nil
}

// run executes cmd and every command that follows from it, feeding the
// messages back into m. It reports whether tea.Quit was reached.
func run(t *testing.T, m Model, cmd tea.Cmd) (Model, bool) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	quit := false
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 1000 {
			t.Fatal("command loop did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			quit = true
		case nil:
		default:
			next, more := m.Update(msg)
			m = next.(Model)
			queue = append(queue, more)
		}
	}
	return m, quit
}

// press sends one key and runs what follows.
func press(t *testing.T, m Model, k string) Model {
	t.Helper()
	next, cmd := m.Update(keyMsg(k))
	m, _ = run(t, next.(Model), cmd)
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, string(r))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}
