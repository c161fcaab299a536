// ABOUTME: geometry command: prints popup width, position, and pointer offset for given inputs
// ABOUTME: Uses the same functions the variants place their overlays with

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mauromedda/coachmark-go/pkg/coachmark"
)

type geometryArgs struct {
	anchor    string
	size      string
	screen    string
	padding   int
	minWidth  int
	maxWidth  int
	arrow     int
	target    float64
	showBelow bool
	locale    string
}

// geometryResult is what geometry computes for one set of inputs.
type geometryResult struct {
	Width    int
	Position coachmark.Point
	Below    bool
	Arrow    int
}

func newGeometryCmd(_ *app) *cobra.Command {
	var g geometryArgs

	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Compute where a popup goes for an anchor",
		Example: `  coachmark geometry --anchor 100,500,200,50 --size 250x80 --screen 400x800 \
    --padding 10 --min 20 --max 300`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := g.compute()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			side := "above"
			if res.Below {
				side = "below"
			}
			fmt.Fprintf(tw, "width\t%d\n", res.Width)
			fmt.Fprintf(tw, "position\t%d,%d\n", res.Position.X, res.Position.Y)
			fmt.Fprintf(tw, "side\t%s\n", side)
			fmt.Fprintf(tw, "arrow\t%d\n", res.Arrow)
			return tw.Flush()
		},
	}

	f := cmd.Flags()
	f.StringVar(&g.anchor, "anchor", "", "anchor bounds as X,Y,W,H")
	f.StringVar(&g.size, "size", "", "desired popup size as WxH")
	f.StringVar(&g.screen, "screen", "80x24", "screen size as WxH")
	f.IntVar(&g.padding, "padding", 0, "horizontal screen padding")
	f.IntVar(&g.minWidth, "min", 0, "minimum popup width")
	f.IntVar(&g.maxWidth, "max", 0, "maximum popup width (default: screen width minus padding)")
	f.IntVar(&g.arrow, "arrow", 1, "pointer width")
	f.Float64Var(&g.target, "target", 0.5, "pointer target as a fraction of the anchor width")
	f.BoolVar(&g.showBelow, "below", false, "prefer placing the popup below the anchor")
	f.StringVar(&g.locale, "locale", "en", "locale; right-to-left locales mirror the target")
	_ = cmd.MarkFlagRequired("anchor")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

func (g geometryArgs) compute() (geometryResult, error) {
	anchor, err := parseBounds(g.anchor)
	if err != nil {
		return geometryResult{}, err
	}
	w, h, err := parseSize(g.size)
	if err != nil {
		return geometryResult{}, fmt.Errorf("--size: %w", err)
	}
	sw, sh, err := parseSize(g.screen)
	if err != nil {
		return geometryResult{}, fmt.Errorf("--screen: %w", err)
	}
	if g.target < 0 || g.target > 1 {
		return geometryResult{}, fmt.Errorf("--target %v outside [0,1]", g.target)
	}

	maxW := g.maxWidth
	if maxW <= 0 {
		maxW = sw - 2*g.padding
	}
	target := coachmark.MirrorTarget(g.target, coachmark.IsRightToLeft(g.locale))

	var res geometryResult
	res.Width = coachmark.PopupWidth(g.minWidth, maxW, w, anchor.Width, target)
	res.Position = coachmark.PopupPosition(anchor, res.Width, h, sw, sh, g.padding, g.showBelow)
	res.Below = res.Position.Y >= anchor.Y+anchor.Height
	res.Arrow = coachmark.ArrowOffset(target, anchor.Width, g.arrow, anchor.X, res.Position.X, 0, res.Width-g.arrow)
	return res, nil
}

func parseBounds(s string) (coachmark.Dimens[int], error) {
	var d coachmark.Dimens[int]
	if _, err := fmt.Sscanf(s, "%d,%d,%d,%d", &d.X, &d.Y, &d.Width, &d.Height); err != nil {
		return d, fmt.Errorf("--anchor %q: want X,Y,W,H", s)
	}
	if d.Width < 0 || d.Height < 0 {
		return d, fmt.Errorf("--anchor %q: negative size", s)
	}
	return d, nil
}

func parseSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil || w < 0 || h < 0 {
		return 0, 0, fmt.Errorf("%q: want WxH", s)
	}
	return w, h, nil
}
