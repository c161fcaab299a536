// ABOUTME: Writing-direction detection from POSIX locale strings via x/text/language
// ABOUTME: Variants mirror pointer targets and alignment in right-to-left layouts

package coachmark

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// IsRightToLeft reports whether locale is written right to left. Locales
// without direction information ("", "C", "POSIX", or unparsable) report
// left-to-right.
func IsRightToLeft(locale string) bool {
	tag, ok := parseLocale(locale)
	if !ok {
		return false
	}
	script, conf := tag.Script()
	if conf == language.No {
		return false
	}
	return rtlScripts[script.String()]
}

// rtlScripts are the ISO 15924 codes of scripts written right to left.
var rtlScripts = map[string]bool{
	"Arab": true,
	"Hebr": true,
	"Syrc": true,
	"Thaa": true,
	"Nkoo": true,
	"Adlm": true,
	"Rohg": true,
	"Mand": true,
	"Samr": true,
}

// parseLocale turns "ar_EG.UTF-8@latin" style strings into a language tag.
func parseLocale(locale string) (language.Tag, bool) {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	switch locale {
	case "", "C", "POSIX":
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// LocaleFromEnv returns the first non-empty of LC_ALL, LC_MESSAGES, and LANG.
func LocaleFromEnv() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// MirrorTarget flips a pointer target fraction for right-to-left layouts.
func MirrorTarget(target float64, rtl bool) float64 {
	if rtl {
		return 1 - target
	}
	return target
}
