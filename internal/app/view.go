package app

import (
	"strings"

	"github.com/MoreDelay/inori/internal/engine"
	"github.com/MoreDelay/inori/internal/keymap"
	"github.com/MoreDelay/inori/internal/ui/footer"
	"github.com/MoreDelay/inori/internal/ui/headerbar"
	"github.com/MoreDelay/inori/internal/ui/playerbar"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	screen := m.engine.Screen()
	var body string
	if screen == engine.ScreenLibrary {
		body = m.libraryPane.View(m.engine.LibraryView())
	} else {
		body = m.queuePane.View(m.engine.QueueView())
	}

	query, filterState := m.engine.Search()
	foot := footer.Render(footer.State{
		Query:   query,
		Filter:  filterState,
		Typing:  m.engine.Typing(),
		Pending: m.resolver.Prefix(),
		Message: m.message,
		IsError: m.isError,
	}, m.help, m.helpKeys, m.theme, m.width)

	return strings.Join([]string{
		headerbar.Render(m.tabs(), screen.String(), m.addr, m.theme, m.width),
		body,
		playerbar.Render(playerbar.NewState(m.status), m.theme, m.width),
		foot,
	}, "\n")
}

func (m Model) tabs() []headerbar.Tab {
	return []headerbar.Tab{
		{Key: m.firstKey(keymap.ActionSwitchToLibrary), Name: "Library", ID: engine.ScreenLibrary.String()},
		{Key: m.firstKey(keymap.ActionSwitchToQueue), Name: "Queue", ID: engine.ScreenQueue.String()},
	}
}

func (m Model) firstKey(a keymap.Action) string {
	keys := m.resolver.KeysFor(a)
	if len(keys) == 0 {
		return ""
	}
	return keymap.Display(keys[0])
}
