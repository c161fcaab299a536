// ABOUTME: JSON theme file loading with validation and default fallback
// ABOUTME: Unset palette fields inherit from DefaultPalette to ensure completeness

package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"
)

// jsonPalette is the JSON-friendly representation of a Palette.
// Fields use snake_case to match the JSON file format.
type jsonPalette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Muted     string `json:"muted"`
	Accent    string `json:"accent"`

	BubbleBg   string `json:"bubble_bg"`
	BubbleText string `json:"bubble_text"`
	Arrow      string `json:"arrow"`
	OverlayDim string `json:"overlay_dim"`
	Highlight  string `json:"highlight"`
	Border     string `json:"border"`

	Bold      string `json:"bold"`
	Dim       string `json:"dim"`
	Italic    string `json:"italic"`
	Underline string `json:"underline"`
}

type jsonTheme struct {
	Name    string      `json:"name"`
	Palette jsonPalette `json:"palette"`
}

// backgroundFields names the palette roles that paint cell backgrounds.
var backgroundFields = map[string]bool{
	"BubbleBg":   true,
	"OverlayDim": true,
}

// LoadFile reads a JSON theme file and returns a Theme.
// Palette values are raw ANSI codes, "#rrggbb" or a 256-color index.
// Missing palette fields fall back to DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	p, err := convertPalette(jt.Palette, DefaultPalette())
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", jt.Name, err)
	}

	return &Theme{
		Name:    jt.Name,
		Palette: p,
	}, nil
}

// convertPalette maps jsonPalette fields onto a Palette, using base for empty fields.
func convertPalette(jp jsonPalette, base Palette) (Palette, error) {
	p := base

	jpv := reflect.ValueOf(jp)
	pv := reflect.ValueOf(&p).Elem()
	jpt := jpv.Type()

	for i := range jpt.NumField() {
		raw := jpv.Field(i).String()
		if raw == "" {
			continue
		}
		fieldName := jpt.Field(i).Name
		pf := pv.FieldByName(fieldName)
		if !pf.IsValid() || !pf.CanSet() {
			continue
		}
		c, err := parseValue(raw, backgroundFields[fieldName])
		if err != nil {
			return base, fmt.Errorf("palette field %s: %w", jpt.Field(i).Tag.Get("json"), err)
		}
		pf.Set(reflect.ValueOf(c))
	}

	return p, nil
}

func parseValue(raw string, background bool) (Color, error) {
	if strings.HasPrefix(raw, "\x1b") {
		return NewColor(raw), nil
	}
	if background {
		return ParseBackground(raw)
	}
	return ParseForeground(raw)
}
