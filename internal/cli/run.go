package cli

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/MoreDelay/inori/internal/app"
	"github.com/MoreDelay/inori/internal/config"
	"github.com/MoreDelay/inori/internal/engine"
	"github.com/MoreDelay/inori/internal/errmsg"
	"github.com/MoreDelay/inori/internal/logging"
	"github.com/MoreDelay/inori/internal/match"
	"github.com/MoreDelay/inori/internal/mpd"
	"github.com/MoreDelay/inori/internal/state"
	"github.com/MoreDelay/inori/internal/ui/styles"
)

const pollInterval = time.Second

func run(cfg *config.Config) error {
	logger, closeLog, err := logging.New(cfg.GetLogConfig().Logging())
	if err != nil {
		return err
	}
	defer closeLog()

	oracle, err := match.New(cfg.GetMatcher())
	if err != nil {
		return err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}
	screen, _ := engine.ParseScreen(cfg.GetScreen())

	mpdCfg := cfg.GetMPDConfig()
	opts := mpd.Options{
		Host:     mpdCfg.Host,
		Port:     mpdCfg.Port,
		Password: mpdCfg.Password,
		Timeout:  mpdCfg.Timeout(),
	}
	client := mpd.New(opts, logger.Named("mpd"))
	if err := client.Connect(); err != nil {
		logger.Error("connect failed", zap.String("addr", opts.Addr()), zap.Error(err))
		return errors.New(errmsg.FormatWith(errmsg.OpConnect, opts.Addr(), err))
	}
	defer client.Close()

	var st state.Interface
	if mgr, err := state.Open(logger.Named("state")); err != nil {
		// The session is still usable without saved state.
		logger.Warn("session state disabled", zap.Error(err))
	} else {
		st = mgr
		defer mgr.Close()
	}

	m, err := app.New(app.Options{
		Server:       client,
		State:        st,
		Logger:       logger.Named("app"),
		Oracle:       oracle,
		Bindings:     bindings,
		Theme:        styles.FromConfig(cfg.Theme),
		Screen:       screen,
		Addr:         opts.Addr(),
		PollInterval: pollInterval,
	})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	logger.Info("starting", zap.String("addr", opts.Addr()), zap.String("matcher", cfg.GetMatcher()))
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
