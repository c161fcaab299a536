// ABOUTME: Root cobra command and the shared app state: settings, logging, theme, metrics
// ABOUTME: PersistentPreRunE loads settings once; subcommands read them from app

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauromedda/coachmark-go/internal/config"
	"github.com/mauromedda/coachmark-go/internal/keybindings"
	"github.com/mauromedda/coachmark-go/internal/log"
	"github.com/mauromedda/coachmark-go/internal/metrics"
	"github.com/mauromedda/coachmark-go/pkg/coachmark"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// app carries what every subcommand shares.
type app struct {
	projectRoot string
	themeRef    string
	logFile     string
	metricsAddr string
	verbose     bool

	settings *config.Settings
	recorder metrics.Recorder
	prom     *metrics.PrometheusRecorder
	logOut   io.Closer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "coachmark",
		Short:         "Coach marks for terminal interfaces",
		Long:          "coachmark shows anchored overlays (bubbles, punch holes, layered and highlight marks) over a sample terminal screen, runs tours from YAML, TOML, or JSON files, and prints the placement math.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("coachmark %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	f := root.PersistentFlags()
	f.StringVar(&a.projectRoot, "root", ".", "project root holding .coachmark/")
	f.StringVar(&a.themeRef, "theme", "", "builtin theme name or JSON theme file")
	f.StringVar(&a.logFile, "log-file", "", "append logs to this file")
	f.StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newTourCmd(a))
	root.AddCommand(newGeometryCmd(a))
	return root
}

// setup loads settings and applies log level, log file, theme, and the
// metrics recorder. Flags override settings.
func (a *app) setup() error {
	s, err := config.Load(a.projectRoot)
	if err != nil {
		return err
	}
	a.settings = s

	if s.LogLevel != "" {
		lvl, err := log.ParseLevel(s.LogLevel)
		if err != nil {
			return fmt.Errorf("settings: %w", err)
		}
		log.SetLevel(lvl)
	}
	if a.verbose {
		log.SetLevel(log.LevelDebug)
	}

	if a.logFile != "" {
		f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		log.SetOutput(f)
		a.logOut = f
	}

	ref := a.themeRef
	if ref == "" {
		ref = s.Theme
	}
	if ref != "" {
		if err := theme.Use(ref); err != nil {
			return err
		}
	}

	if a.metricsAddr == "" {
		a.metricsAddr = s.MetricsAddr
	}
	a.recorder = metrics.Nop()
	if a.metricsAddr != "" {
		a.prom = metrics.NewPrometheusRecorder(nil)
		a.recorder = a.prom
	}
	return nil
}

// quietLogs drops log output while a fullscreen session owns the terminal,
// unless it already goes to a file.
func (a *app) quietLogs() (restore func()) {
	if a.logOut != nil {
		return func() {}
	}
	log.SetOutput(io.Discard)
	return func() { log.SetOutput(os.Stderr) }
}

// markOptions returns the options every coach mark of a session gets.
func (a *app) markOptions() ([]coachmark.Option, error) {
	opts, err := coachmark.ApplySettings(a.settings)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	if a.settings.Locale == "" {
		if loc := coachmark.LocaleFromEnv(); loc != "" {
			opts = append(opts, coachmark.WithLocale(loc))
		}
	}
	return append(opts, coachmark.WithRecorder(a.recorder)), nil
}

// keyBindings merges the settings' key overrides onto the default bindings.
func (a *app) keyBindings() (*keybindings.Manager, error) {
	keys, err := keybindings.New(a.settings.Keys)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	for _, c := range keys.Conflicts() {
		log.Warn("key %q is bound to %v; %s wins", c.Key, c.Actions, c.Actions[0])
	}
	return keys, nil
}

func (a *app) close() {
	if a.logOut != nil {
		log.SetOutput(os.Stderr)
		_ = a.logOut.Close()
		a.logOut = nil
	}
}
