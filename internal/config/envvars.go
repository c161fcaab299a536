// ABOUTME: Environment variable expansion in config string fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.Theme = expandEnv(s.Theme)
	s.Locale = expandEnv(s.Locale)
	s.LogLevel = expandEnv(s.LogLevel)
	s.MetricsAddr = expandEnv(s.MetricsAddr)
	s.CoachMark.Background = expandEnv(s.CoachMark.Background)
	s.CoachMark.TextColor = expandEnv(s.CoachMark.TextColor)
	s.CoachMark.Animation = expandEnv(s.CoachMark.Animation)
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
