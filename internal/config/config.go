// ABOUTME: Settings loading with global + project config deep merge
// ABOUTME: JSON settings carry theme, locale, logging, metrics, and coach-mark defaults

package config

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
)

// Settings holds the merged configuration.
type Settings struct {
	Theme       string            `json:"theme,omitempty"`
	Locale      string            `json:"locale,omitempty"`
	LogLevel    string            `json:"log_level,omitempty"`
	MetricsAddr string            `json:"metrics_addr,omitempty"`
	CoachMark   CoachMarkDefaults `json:"coach_mark,omitempty"`

	// Keys maps demo actions to key strings, e.g. {"quit": ["q", "ctrl+q"]}.
	Keys map[string][]string `json:"keys,omitempty"`
}

// CoachMarkDefaults are option defaults applied to every coach mark a host
// builds. Pointer fields distinguish "unset" from an explicit zero.
type CoachMarkDefaults struct {
	TimeoutMs             *int   `json:"timeout_ms,omitempty"`
	Padding               *int   `json:"padding,omitempty"`
	DismissOnAnchorDetach *bool  `json:"dismiss_on_anchor_detach,omitempty"`
	FitsScreen            *bool  `json:"fits_screen,omitempty"`
	Background            string `json:"background,omitempty"`
	TextColor             string `json:"text_color,omitempty"`
	Animation             string `json:"animation,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	return merged, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge deep-merges project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Theme != "" {
		result.Theme = project.Theme
	}
	if project.Locale != "" {
		result.Locale = project.Locale
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.MetricsAddr != "" {
		result.MetricsAddr = project.MetricsAddr
	}

	result.CoachMark = mergeCoachMark(global.CoachMark, project.CoachMark)

	// Project key bindings override global ones per action.
	if len(project.Keys) > 0 {
		keys := make(map[string][]string, len(global.Keys)+len(project.Keys))
		maps.Copy(keys, global.Keys)
		maps.Copy(keys, project.Keys)
		result.Keys = keys
	}
	return &result
}

func mergeCoachMark(global, project CoachMarkDefaults) CoachMarkDefaults {
	result := global
	if project.TimeoutMs != nil {
		result.TimeoutMs = project.TimeoutMs
	}
	if project.Padding != nil {
		result.Padding = project.Padding
	}
	if project.DismissOnAnchorDetach != nil {
		result.DismissOnAnchorDetach = project.DismissOnAnchorDetach
	}
	if project.FitsScreen != nil {
		result.FitsScreen = project.FitsScreen
	}
	if project.Background != "" {
		result.Background = project.Background
	}
	if project.TextColor != "" {
		result.TextColor = project.TextColor
	}
	if project.Animation != "" {
		result.Animation = project.Animation
	}
	return result
}
