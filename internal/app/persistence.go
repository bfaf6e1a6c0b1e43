package app

import (
	"github.com/MoreDelay/inori/internal/engine"
	"github.com/MoreDelay/inori/internal/library"
	"github.com/MoreDelay/inori/internal/state"
)

// applySaved restores what can be restored right away and remembers the
// rest until the artists and the queue arrive.
func (m *Model) applySaved(nav state.NavigationState) {
	if s, ok := engine.ParseScreen(nav.Screen); ok {
		m.engine.SetScreen(s)
	}
	sel, _ := library.ParseSelector(nav.Selector)
	m.restore = &restore{
		artist:   nav.Artist,
		selector: sel,
		queueKey: nav.QueueKey,
	}

	if len(nav.Expanded) > 0 {
		folds := make(map[string][]string)
		for _, ref := range nav.Expanded {
			folds[ref.Artist] = append(folds[ref.Artist], ref.Album)
		}
		m.engine.RememberFolds(folds)
	}
}

// restoreArtists applies the saved artist and list focus once the artist
// list is loaded. It returns the effects of focusing the track list.
func (m *Model) restoreArtists() []engine.Effect {
	if m.restore == nil || m.restore.artistsOK {
		return nil
	}
	m.restore.artistsOK = true
	if !m.engine.RestoreArtist(m.restore.artist) {
		return nil
	}
	return m.engine.RestoreSelector(m.restore.selector)
}

func (m *Model) restoreQueue() {
	if m.restore == nil || m.restore.queueOK {
		return
	}
	m.restore.queueOK = true
	m.engine.RestoreQueue(m.restore.queueKey)
}

// saveState stores the current selection. Nothing is written until the
// saved one has been applied, so an early keypress cannot erase it.
func (m Model) saveState() {
	if m.stateMgr == nil || !m.restore.done() {
		return
	}
	sel := m.engine.Selection()
	nav := state.NavigationState{
		Screen:   sel.Screen.String(),
		Selector: sel.Selector.String(),
		Artist:   sel.Artist,
		QueueKey: sel.QueueKey,
	}
	for artist, albums := range m.engine.Folds() {
		for _, album := range albums {
			nav.Expanded = append(nav.Expanded, state.AlbumRef{Artist: artist, Album: album})
		}
	}
	m.stateMgr.SaveNavigation(nav)
}
