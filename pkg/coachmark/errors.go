// ABOUTME: Sentinel errors for coach-mark configuration and lifecycle misuse
// ABOUTME: Checked with errors.Is; surface races are swallowed, never returned

package coachmark

import "errors"

var (
	// ErrNilAnchor is returned when a config has no anchor.
	ErrNilAnchor = errors.New("coachmark: nil anchor")

	// ErrNilContent is returned when a config has no content.
	ErrNilContent = errors.New("coachmark: nil content")

	// ErrNotTextual is returned when a text color is set on non-textual content.
	ErrNotTextual = errors.New("coachmark: text color requires textual content")

	// ErrAlreadyShown is returned by Show on a showing coach mark.
	ErrAlreadyShown = errors.New("coachmark: already shown")

	// ErrDismissed is returned by Show on a dismissed coach mark.
	ErrDismissed = errors.New("coachmark: dismissed")

	// ErrNoWindow is returned by Show when neither the anchor nor the
	// token anchor is attached to a window.
	ErrNoWindow = errors.New("coachmark: anchor has no window")
)
