package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MoreDelay/inori/internal/engine"
	"github.com/MoreDelay/inori/internal/errmsg"
	"github.com/MoreDelay/inori/internal/library"
	"github.com/MoreDelay/inori/internal/mpd"
)

// TickCmd returns a command that sends TickMsg after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) fetchArtists() tea.Cmd {
	server := m.server
	return func() tea.Msg {
		artists, err := server.Artists()
		return ArtistsMsg{Artists: artists, Err: err}
	}
}

func (m Model) fetchAlbums(req library.FetchRequest) tea.Cmd {
	server := m.server
	return func() tea.Msg {
		albums, err := server.Albums(req.Artist)
		return AlbumsMsg{Request: req, Albums: albums, Err: err}
	}
}

func (m Model) fetchQueue() tea.Cmd {
	server := m.server
	return func() tea.Msg {
		songs, err := server.Queue()
		return QueueMsg{Songs: songs, Err: err}
	}
}

func (m Model) fetchStatus() tea.Cmd {
	server := m.server
	return func() tea.Msg {
		st, err := server.Status()
		return StatusMsg{Status: st, Err: err}
	}
}

// serverAction runs a state-changing request off the update loop.
func serverAction(op errmsg.Op, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return ActionDoneMsg{Op: op, Err: fn()}
	}
}

// runEffects converts engine effects into commands.
func (m Model) runEffects(effects []engine.Effect) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, e := range effects {
		cmds = append(cmds, m.runEffect(e))
	}
	return tea.Batch(cmds...)
}

func (m Model) runEffect(e engine.Effect) tea.Cmd {
	server := m.server
	switch e := e.(type) {
	case engine.FetchAlbums:
		return m.fetchAlbums(e.Request)
	case engine.Enqueue:
		return serverAction(errmsg.OpQueueAdd, func() error { return server.Add(e.Songs) })
	case engine.Play:
		return serverAction(errmsg.OpPlay, func() error { return server.PlayID(e.ID) })
	case engine.Delete:
		return serverAction(errmsg.OpQueueDelete, func() error { return server.DeleteID(e.ID) })
	case engine.ClearQueue:
		return serverAction(errmsg.OpQueueClear, server.Clear)
	}
	return nil
}

func (m Model) togglePause() tea.Cmd {
	server, st := m.server, m.status
	return serverAction(errmsg.OpPause, func() error { return server.TogglePause(st) })
}

func (m Model) toggleFlag(f mpd.Flag) tea.Cmd {
	server, st := m.server, m.status
	return serverAction(errmsg.OpToggleFlag, func() error { return server.Toggle(f, st) })
}
