// ABOUTME: Tour files: ordered coach-mark steps loaded from YAML, TOML, or JSON
// ABOUTME: Validation checks variants and anchor names, suggesting close matches for typos

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for tour files with an unsupported extension.
	ErrUnknownFormat = errors.New("unknown tour format")

	// ErrEmptyTour is returned for tours without steps.
	ErrEmptyTour = errors.New("tour has no steps")

	// ErrInvalidStep is returned when a step fails validation.
	ErrInvalidStep = errors.New("invalid tour step")
)

var tourExtensions = []string{".yaml", ".yml", ".toml", ".json"}

// Variant names accepted in tour steps.
const (
	VariantBubble        = "bubble"
	VariantPunchHole     = "punch_hole"
	VariantLayered       = "layered"
	VariantHighlight     = "highlight"
	VariantPunchedBubble = "punched_bubble"
)

// Variants lists every accepted variant name.
var Variants = []string{
	VariantBubble,
	VariantPunchHole,
	VariantLayered,
	VariantHighlight,
	VariantPunchedBubble,
}

// Tour is an ordered list of coach marks shown one after another.
type Tour struct {
	Name  string `yaml:"name" toml:"name" json:"name"`
	Steps []Step `yaml:"steps" toml:"steps" json:"steps"`
}

// Step describes one coach mark of a tour.
type Step struct {
	Anchor    string   `yaml:"anchor" toml:"anchor" json:"anchor"`
	Variant   string   `yaml:"variant" toml:"variant" json:"variant"`
	Text      string   `yaml:"text,omitempty" toml:"text,omitempty" json:"text,omitempty"`
	Markdown  string   `yaml:"markdown,omitempty" toml:"markdown,omitempty" json:"markdown,omitempty"`
	Target    *float64 `yaml:"target,omitempty" toml:"target,omitempty" json:"target,omitempty"`
	ShowBelow bool     `yaml:"show_below,omitempty" toml:"show_below,omitempty" json:"show_below,omitempty"`
	TimeoutMs *int     `yaml:"timeout_ms,omitempty" toml:"timeout_ms,omitempty" json:"timeout_ms,omitempty"`
	Focusable bool     `yaml:"focusable,omitempty" toml:"focusable,omitempty" json:"focusable,omitempty"`

	// TargetAnchor names the region a punch hole reveals when it differs
	// from the anchor the mark is positioned against.
	TargetAnchor string `yaml:"target_anchor,omitempty" toml:"target_anchor,omitempty" json:"target_anchor,omitempty"`
}

// LoadTour reads a tour file, choosing the decoder by extension.
func LoadTour(path string) (*Tour, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tour %s: %w", path, err)
	}

	var t Tour
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &t)
	case ".toml":
		err = toml.Unmarshal(data, &t)
	case ".json":
		err = json.Unmarshal(data, &t)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse tour %s: %w", path, err)
	}

	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	for i := range t.Steps {
		if t.Steps[i].Variant == "" {
			t.Steps[i].Variant = VariantBubble
		}
	}
	return &t, nil
}

// Validate checks every step against the anchors a host offers. Unknown
// anchor names carry a suggestion when one is close.
func (t *Tour) Validate(anchors []string) error {
	if len(t.Steps) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTour, t.Name)
	}

	known := make(map[string]bool, len(anchors))
	for _, a := range anchors {
		known[a] = true
	}

	var errs []error
	for i, s := range t.Steps {
		if err := s.validate(known, anchors); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

func (s Step) validate(known map[string]bool, anchors []string) error {
	if !isVariant(s.Variant) {
		return fmt.Errorf("%w: unknown variant %q%s", ErrInvalidStep, s.Variant, didYouMean(s.Variant, Variants))
	}
	if s.Text == "" && s.Markdown == "" {
		return fmt.Errorf("%w: text or markdown is required", ErrInvalidStep)
	}
	if s.Text != "" && s.Markdown != "" {
		return fmt.Errorf("%w: text and markdown are exclusive", ErrInvalidStep)
	}
	if s.Target != nil && (*s.Target < 0 || *s.Target > 1) {
		return fmt.Errorf("%w: target %v outside [0,1]", ErrInvalidStep, *s.Target)
	}
	if s.TimeoutMs != nil && *s.TimeoutMs < 0 {
		return fmt.Errorf("%w: negative timeout_ms", ErrInvalidStep)
	}
	for _, name := range []string{s.Anchor, s.TargetAnchor} {
		if name == "" || known[name] {
			continue
		}
		return fmt.Errorf("%w: unknown anchor %q%s", ErrInvalidStep, name, didYouMean(name, anchors))
	}
	if s.Anchor == "" {
		return fmt.Errorf("%w: anchor is required", ErrInvalidStep)
	}
	return nil
}

func isVariant(name string) bool {
	for _, v := range Variants {
		if v == name {
			return true
		}
	}
	return false
}
