// ABOUTME: demo command: the sample screen with every variant on a key
// ABOUTME: Runs on the fullscreen tui engine, or inside Bubble Tea with --tea

package main

import (
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	var (
		useTea  bool
		runTour bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Show coach marks over a sample screen",
		Long: `Show coach marks over a sample screen.

Keys 1-5 show one variant each; t runs the built-in tour; d dismisses; q quits.
Escape and presses outside a mark dismiss it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if useTea {
				return runTea(cmd.Context(), a, runTour)
			}
			return runFullscreen(cmd.Context(), a, func(s *demoScreen) {
				if runTour {
					s.runTour(&demoTour)
				}
			})
		},
	}

	cmd.Flags().BoolVar(&useTea, "tea", false, "host the screen in a Bubble Tea program")
	cmd.Flags().BoolVar(&runTour, "tour", false, "start the built-in tour right away")
	return cmd
}
