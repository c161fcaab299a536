// ABOUTME: Converts file-based coach-mark defaults into configuration options
// ABOUTME: Place the returned options before per-mark options so the latter win

package coachmark

import (
	"fmt"
	"time"

	"github.com/mauromedda/coachmark-go/internal/config"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
)

// ApplySettings turns settings into options. Colors that fail to parse
// are reported; a default text color is ignored by non-textual content.
func ApplySettings(s *config.Settings) ([]Option, error) {
	if s == nil {
		return nil, nil
	}
	d := s.CoachMark

	var opts []Option
	if s.Locale != "" {
		opts = append(opts, WithLocale(s.Locale))
	}
	if d.TimeoutMs != nil {
		opts = append(opts, WithTimeout(time.Duration(*d.TimeoutMs)*time.Millisecond))
	}
	if d.Padding != nil {
		opts = append(opts, WithPadding(*d.Padding))
	}
	if d.DismissOnAnchorDetach != nil {
		opts = append(opts, WithDismissOnAnchorDetach(*d.DismissOnAnchorDetach))
	}
	if d.FitsScreen != nil {
		opts = append(opts, WithFitsScreen(*d.FitsScreen))
	}
	if d.Animation != "" {
		opts = append(opts, WithAnimation(d.Animation))
	}
	if d.Background != "" {
		bg, err := theme.ParseBackground(d.Background)
		if err != nil {
			return nil, fmt.Errorf("coach_mark.background: %w", err)
		}
		opts = append(opts, WithBackground(bg))
	}
	if d.TextColor != "" {
		fg, err := theme.ParseForeground(d.TextColor)
		if err != nil {
			return nil, fmt.Errorf("coach_mark.text_color: %w", err)
		}
		opts = append(opts, withDefaultTextColor(fg))
	}
	return opts, nil
}
