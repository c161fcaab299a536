// ABOUTME: Immutable coach-mark configuration built from required parts and functional options
// ABOUTME: Defaults: 10s timeout, no padding, dismiss on detach, transparent, animation "none"

package coachmark

import (
	"fmt"
	"time"

	"github.com/mauromedda/coachmark-go/internal/metrics"
	"github.com/mauromedda/coachmark-go/pkg/tui"
	"github.com/mauromedda/coachmark-go/pkg/tui/theme"
)

const (
	// DefaultTimeout is how long a coach mark stays up unless configured.
	DefaultTimeout = 10 * time.Second

	// DefaultAnimation is the animation id used when none is configured.
	DefaultAnimation = "none"
)

// Config holds every tunable of one coach mark. It is built once by
// NewConfig and read-only afterwards.
type Config struct {
	anchor          Anchor
	tokenAnchor     Anchor
	content         Content
	timeout         time.Duration
	padding         int
	dismissOnDetach bool
	background      theme.Color
	animation       string
	fitsScreen      bool
	textColor       theme.Color
	hasTextColor    bool
	locale          string
	onShow          func()
	onDismiss       func()
	onTimeout       func()
	newSurface      SurfaceFactory
	recorder        metrics.Recorder
}

// Option configures a Config. Options run in order and may reject the
// configuration.
type Option func(*Config) error

// NewConfig validates anchor and content and applies opts over the defaults.
func NewConfig(anchor Anchor, content Content, opts ...Option) (Config, error) {
	if isNilAnchor(anchor) {
		return Config{}, ErrNilAnchor
	}
	if content.IsZero() {
		return Config{}, ErrNilContent
	}

	cfg := Config{
		anchor:          anchor,
		content:         content,
		timeout:         DefaultTimeout,
		dismissOnDetach: true,
		animation:       DefaultAnimation,
		locale:          LocaleFromEnv(),
		newSurface:      NewPopupSurface,
		recorder:        metrics.Nop(),
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func isNilAnchor(a Anchor) bool {
	if a == nil {
		return true
	}
	ta, ok := a.(*tui.Anchor)
	return ok && ta == nil
}

// WithTokenAnchor names an alternative anchor whose window hosts the
// overlay, for anchors that are not attached to one themselves.
func WithTokenAnchor(a Anchor) Option {
	return func(c *Config) error {
		if !isNilAnchor(a) {
			c.tokenAnchor = a
		}
		return nil
	}
}

// WithTimeout sets the auto-dismiss delay. Zero or less disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) error {
		c.timeout = max(d, 0)
		return nil
	}
}

// WithPadding sets the minimum gap, in columns, between overlay and screen edges.
func WithPadding(cols int) Option {
	return func(c *Config) error {
		c.padding = max(cols, 0)
		return nil
	}
}

// WithDismissOnAnchorDetach controls whether detaching the anchor dismisses.
func WithDismissOnAnchorDetach(dismiss bool) Option {
	return func(c *Config) error {
		c.dismissOnDetach = dismiss
		return nil
	}
}

// WithBackground sets the surface fill.
func WithBackground(bg theme.Color) Option {
	return func(c *Config) error {
		c.background = bg
		return nil
	}
}

// WithAnimation records the surface animation id. An empty id keeps the default.
func WithAnimation(id string) Option {
	return func(c *Config) error {
		if id != "" {
			c.animation = id
		}
		return nil
	}
}

// WithFitsScreen makes the overlay cover the whole visible frame and
// forces it focusable.
func WithFitsScreen(fits bool) Option {
	return func(c *Config) error {
		c.fitsScreen = fits
		return nil
	}
}

// WithTextColor colors textual content. It fails with ErrNotTextual for
// any other content.
func WithTextColor(fg theme.Color) Option {
	return func(c *Config) error {
		if !c.content.IsTextual() {
			return fmt.Errorf("%w: got %s content", ErrNotTextual, c.content.kind)
		}
		c.textColor = fg
		c.hasTextColor = true
		return nil
	}
}

// withDefaultTextColor is WithTextColor for shared defaults: non-textual
// content ignores it instead of failing.
func withDefaultTextColor(fg theme.Color) Option {
	return func(c *Config) error {
		if c.content.IsTextual() && !c.hasTextColor {
			c.textColor = fg
			c.hasTextColor = true
		}
		return nil
	}
}

// WithLocale overrides the locale used to detect right-to-left layouts.
func WithLocale(locale string) Option {
	return func(c *Config) error {
		c.locale = locale
		return nil
	}
}

// WithSurfaceFactory replaces how the overlay surface is created.
func WithSurfaceFactory(f SurfaceFactory) Option {
	return func(c *Config) error {
		if f != nil {
			c.newSurface = f
		}
		return nil
	}
}

// WithRecorder reports lifecycle metrics to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(c *Config) error {
		if r != nil {
			c.recorder = r
		}
		return nil
	}
}

// OnShow runs fn after the overlay becomes visible.
func OnShow(fn func()) Option {
	return func(c *Config) error {
		c.onShow = fn
		return nil
	}
}

// OnDismiss runs fn after the overlay is closed.
func OnDismiss(fn func()) Option {
	return func(c *Config) error {
		c.onDismiss = fn
		return nil
	}
}

// OnTimeout runs fn when the timeout fires, before the dismissal it causes.
func OnTimeout(fn func()) Option {
	return func(c *Config) error {
		c.onTimeout = fn
		return nil
	}
}

// Anchor returns the anchor the overlay follows.
func (c Config) Anchor() Anchor { return c.anchor }

// TokenAnchor returns the anchor whose window hosts the overlay.
func (c Config) TokenAnchor() Anchor {
	if c.tokenAnchor != nil {
		return c.tokenAnchor
	}
	return c.anchor
}

// Content returns the content descriptor.
func (c Config) Content() Content { return c.content }

// Timeout returns the auto-dismiss delay; zero means disabled.
func (c Config) Timeout() time.Duration { return c.timeout }

// Padding returns the screen-edge padding in columns.
func (c Config) Padding() int { return c.padding }

// DismissOnAnchorDetach reports whether detaching the anchor dismisses.
func (c Config) DismissOnAnchorDetach() bool { return c.dismissOnDetach }

// Background returns the surface fill.
func (c Config) Background() theme.Color { return c.background }

// Animation returns the animation id.
func (c Config) Animation() string { return c.animation }

// FitsScreen reports whether the overlay covers the visible frame.
func (c Config) FitsScreen() bool { return c.fitsScreen }

// TextColor returns the configured text color and whether one was set.
func (c Config) TextColor() (theme.Color, bool) { return c.textColor, c.hasTextColor }

// Locale returns the locale used for direction detection.
func (c Config) Locale() string { return c.locale }

// IsRightToLeft reports whether the configured locale is right to left.
func (c Config) IsRightToLeft() bool { return IsRightToLeft(c.locale) }

// window resolves the hosting window: the token anchor's, then the anchor's.
func (c Config) window() tui.Window {
	if w := c.TokenAnchor().Window(); w != nil {
		return w
	}
	return c.anchor.Window()
}

func (k contentKind) String() string {
	switch k {
	case kindText:
		return "text"
	case kindMarkdown:
		return "markdown"
	case kindView:
		return "view"
	default:
		return "empty"
	}
}
