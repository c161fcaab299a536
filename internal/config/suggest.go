// ABOUTME: Fuzzy "did you mean" suggestions for misspelled anchor and variant names
// ABOUTME: Thin wrapper over sahilm/fuzzy returning the best-scoring candidates

package config

import (
	"fmt"

	"github.com/sahilm/fuzzy"
)

// Suggest returns up to limit candidates that fuzzily match name, best first.
// Candidates that merely share a few letters are not returned.
func Suggest(name string, candidates []string, limit int) []string {
	if name == "" || len(candidates) == 0 || limit <= 0 {
		return nil
	}

	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		// Typos rarely keep every letter in order; retry with the candidates
		// as the patterns so "btn" still finds "button".
		for _, c := range candidates {
			if len(fuzzy.Find(c, []string{name})) > 0 {
				matches = append(matches, fuzzy.Match{Str: c})
			}
		}
	}

	out := make([]string, 0, limit)
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

// didYouMean formats the best suggestion as an error-message suffix.
func didYouMean(name string, candidates []string) string {
	s := Suggest(name, candidates, 1)
	if len(s) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", s[0])
}
