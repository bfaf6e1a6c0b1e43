package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/MoreDelay/inori/internal/engine"
	"github.com/MoreDelay/inori/internal/errmsg"
	"github.com/MoreDelay/inori/internal/keymap"
	"github.com/MoreDelay/inori/internal/library"
	"github.com/MoreDelay/inori/internal/match"
	"github.com/MoreDelay/inori/internal/mpd"
	"github.com/MoreDelay/inori/internal/state"
	"github.com/MoreDelay/inori/internal/ui"
	"github.com/MoreDelay/inori/internal/ui/librarypane"
	"github.com/MoreDelay/inori/internal/ui/queuepane"
	"github.com/MoreDelay/inori/internal/ui/styles"
)

// Options configures a Model.
type Options struct {
	Server   Server
	State    state.Interface
	Logger   *zap.Logger
	Oracle   match.Oracle
	Bindings []keymap.Binding
	Theme    *styles.Theme
	Screen   engine.Screen // start screen when no session was saved
	Addr     string        // shown in the header

	// PollInterval is the status polling period; zero disables polling.
	PollInterval time.Duration
}

// restore is a saved selection waiting for the collections it refers to.
type restore struct {
	artist    string
	selector  library.Selector
	queueKey  string
	artistsOK bool // artist part applied (or given up)
	queueOK   bool
}

func (r *restore) done() bool {
	return r == nil || (r.artistsOK && r.queueOK)
}

// Model is the root application model.
type Model struct {
	engine   *engine.Engine
	server   Server
	stateMgr state.Interface
	logger   *zap.Logger
	resolver *keymap.Resolver
	help     help.Model
	helpKeys keymap.Help
	theme    *styles.Theme
	addr     string
	poll     time.Duration

	libraryPane librarypane.Model
	queuePane   queuepane.Model

	status       mpd.Status
	statusFailed bool
	queueVersion int
	haveVersion  bool
	restore      *restore

	message string
	isError bool

	width, height int
}

// New creates the application model and applies the saved session.
func New(opts Options) (Model, error) {
	resolver, err := keymap.NewResolver(opts.Bindings)
	if err != nil {
		return Model{}, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.Default()
	}

	m := Model{
		engine:      engine.New(opts.Oracle, ui.ScrollMargin, logger),
		server:      opts.Server,
		stateMgr:    opts.State,
		logger:      logger,
		resolver:    resolver,
		help:        help.New(),
		helpKeys:    keymap.NewHelp(resolver),
		theme:       theme,
		addr:        opts.Addr,
		poll:        opts.PollInterval,
		libraryPane: librarypane.New(theme),
		queuePane:   queuepane.New(theme),
	}
	m.engine.SetScreen(opts.Screen)

	if m.stateMgr == nil {
		return m, nil
	}
	nav, err := m.stateMgr.GetNavigation()
	if err != nil {
		m.logger.Warn("session state unreadable", zap.Error(err))
		m.setError(errmsg.Format(errmsg.OpStateLoad, err))
		return m, nil
	}
	if nav != nil {
		m.applySaved(*nav)
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchArtists(), m.fetchStatus()}
	if m.poll > 0 {
		cmds = append(cmds, TickCmd(m.poll))
	}
	return tea.Batch(cmds...)
}

// Engine exposes the browsing engine.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

func (m *Model) setError(msg string) {
	m.message = msg
	m.isError = true
}

func (m *Model) clearMessage() {
	m.message = ""
	m.isError = false
}
