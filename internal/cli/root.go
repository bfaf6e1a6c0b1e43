// Package cli is the command line entry point.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MoreDelay/inori/internal/config"
)

// flags holds the command line overrides of the configuration file.
type flags struct {
	configPath string
	host       string
	port       int
	matcher    string
	logLevel   string
}

// apply copies the flags the user set onto cfg.
func (f flags) apply(cmd *cobra.Command, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("host") {
		cfg.MPD.Host = f.host
	}
	if set("port") {
		cfg.MPD.Port = f.port
	}
	if set("matcher") {
		cfg.Matcher = f.matcher
	}
	if set("log-level") {
		cfg.Log.Level = f.logLevel
	}
}

// NewRootCmd builds the inori command tree.
func NewRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:           "inori",
		Short:         "inori is a terminal client for the Music Player Daemon.",
		Long:          "Browse the MPD library by artist, album and track, filter any list with fuzzy search and manage the play queue.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	pf := root.Flags()
	pf.StringVarP(&f.configPath, "config", "c", "", "configuration file (default: search the XDG config dirs)")
	pf.StringVar(&f.host, "host", "", "MPD host (overrides config and MPD_HOST)")
	pf.IntVar(&f.port, "port", 0, "MPD port (overrides config and MPD_PORT)")
	pf.StringVar(&f.matcher, "matcher", "", "fuzzy matcher: fuzzy or fzf")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error or off")

	root.AddCommand(newVersionCmd())
	return root
}

func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	f.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
