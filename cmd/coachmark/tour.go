// ABOUTME: tour command: loads a tour file, validates it against the demo anchors, and runs it
// ABOUTME: With --watch, edits to the file restart the tour from its first step

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mauromedda/coachmark-go/internal/config"
	"github.com/mauromedda/coachmark-go/internal/log"
)

func newTourCmd(a *app) *cobra.Command {
	var (
		check    bool
		watch    bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "tour NAME|FILE",
		Short: "Run a tour over the sample screen",
		Long: `Run a tour over the sample screen.

NAME is looked up as NAME.yaml, NAME.yml, NAME.toml, or NAME.json in
.coachmark/tours/ under the project root, then in ~/.coachmark/tours/.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveTour(a.projectRoot, args[0])
			if err != nil {
				return err
			}
			t, err := loadTour(path)
			if err != nil {
				return err
			}
			if check {
				fmt.Fprintf(cmd.OutOrStdout(), "tour %s: %d steps ok\n", t.Name, len(t.Steps))
				return nil
			}

			return runFullscreen(cmd.Context(), a, func(s *demoScreen) {
				s.runTour(t)
				if !watch {
					return
				}
				w := config.NewWatcher([]string{path}, func([]string) {
					s.ui.Post(func() { reloadTour(s, path) })
				})
				w.SetInterval(interval)
				w.Start()
				s.onClose(w.Stop)
			})
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "validate the tour and exit")
	cmd.Flags().BoolVar(&watch, "watch", true, "restart the tour when its file changes")
	cmd.Flags().DurationVar(&interval, "watch-interval", time.Second, "how often to poll the tour file")
	return cmd
}

// demoAnchorIDs are the anchors tours may point at.
func demoAnchorIDs() []string {
	ids := []string{"publish"}
	for _, b := range toolbar {
		ids = append(ids, b.id)
	}
	slices.Sort(ids)
	return ids
}

// loadTour reads and validates the tour at path.
func loadTour(path string) (*config.Tour, error) {
	t, err := config.LoadTour(path)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(demoAnchorIDs()); err != nil {
		return nil, fmt.Errorf("tour %s:\n%w", t.Name, err)
	}
	return t, nil
}

func reloadTour(s *demoScreen, path string) {
	t, err := loadTour(path)
	if err != nil {
		log.Warn("tour reload: %v", err)
		s.status = "reload failed: " + firstLine(err.Error())
		s.refreshFooter()
		return
	}
	log.Info("tour reload: %s (%d steps)", t.Name, len(t.Steps))
	s.runTour(t)
	s.refreshFooter()
}

// resolveTour finds the tour file for ref, suggesting close names when
// nothing matches.
func resolveTour(projectRoot, ref string) (string, error) {
	if path, ok := config.FindTour(projectRoot, ref); ok {
		return path, nil
	}
	msg := fmt.Sprintf("tour %q not found", ref)
	if s := config.Suggest(ref, availableTours(projectRoot), 3); len(s) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(s, ", "))
	}
	return "", errors.New(msg)
}

// availableTours lists tour names in the tours directories, project first.
func availableTours(projectRoot string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, dir := range config.ToursDirs(projectRoot) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			ext := filepath.Ext(e.Name())
			if e.IsDir() || !isTourExt(ext) {
				continue
			}
			name := strings.TrimSuffix(e.Name(), ext)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

func isTourExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml", ".toml", ".json":
		return true
	}
	return false
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
