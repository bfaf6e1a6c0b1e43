package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/MoreDelay/inori/internal/errmsg"
	"github.com/MoreDelay/inori/internal/ui"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		return m, tea.Batch(m.fetchStatus(), TickCmd(m.poll))

	case ArtistsMsg:
		return m.handleArtists(msg)

	case AlbumsMsg:
		return m.handleAlbums(msg)

	case QueueMsg:
		return m.handleQueue(msg)

	case StatusMsg:
		return m.handleStatus(msg)

	case ActionDoneMsg:
		if msg.Err != nil {
			m.logger.Warn("server request failed", zap.String("op", string(msg.Op)), zap.Error(msg.Err))
			m.setError(errmsg.Format(msg.Op, msg.Err))
		}
		// Any change shows up as a new queue version or player state.
		return m, m.fetchStatus()
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	panelHeight := ui.PanelHeight(msg.Height)
	m.libraryPane.SetSize(msg.Width, panelHeight)
	m.queuePane.SetSize(msg.Width, panelHeight)
	m.engine.SetHeight(ui.ListHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleArtists(msg ArtistsMsg) (tea.Model, tea.Cmd) {
	effects, err := m.engine.ApplyArtists(msg.Artists, msg.Err)
	if err != nil {
		m.setError(errmsg.Format(errmsg.OpArtistsLoad, msg.Err))
		if m.restore != nil {
			m.restore.artistsOK = true
		}
		return m, nil
	}
	effects = append(effects, m.restoreArtists()...)
	return m, m.runEffects(effects)
}

func (m Model) handleAlbums(msg AlbumsMsg) (tea.Model, tea.Cmd) {
	if err := m.engine.ApplyAlbums(msg.Request, msg.Albums, msg.Err); err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpAlbumsLoad, msg.Request.Artist, msg.Err))
	}
	return m, nil
}

func (m Model) handleQueue(msg QueueMsg) (tea.Model, tea.Cmd) {
	if err := m.engine.ApplyQueue(msg.Songs, msg.Err); err != nil {
		m.setError(errmsg.Format(errmsg.OpQueueLoad, msg.Err))
		// Fetch again on the next poll.
		m.haveVersion = false
		if m.restore != nil {
			m.restore.queueOK = true
		}
		return m, nil
	}
	m.restoreQueue()
	return m, nil
}

// handleStatus keeps the player state and refetches the queue whenever
// the server reports a new queue version.
func (m Model) handleStatus(msg StatusMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Debug("status poll failed", zap.Error(msg.Err))
		m.setError(errmsg.Format(errmsg.OpStatusFetch, msg.Err))
		m.statusFailed = true
		return m, nil
	}
	if m.statusFailed {
		m.statusFailed = false
		m.clearMessage()
	}

	m.status = msg.Status
	m.engine.SetCurrent(msg.Status.SongID)

	if m.haveVersion && msg.Status.Playlist == m.queueVersion {
		return m, nil
	}
	m.queueVersion = msg.Status.Playlist
	m.haveVersion = true
	return m, m.fetchQueue()
}
