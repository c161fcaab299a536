// ABOUTME: Recorder interface for coach-mark lifecycle metrics and a no-op implementation
// ABOUTME: The engine reports shows, dismissals by reason, timeouts, and swallowed surface races

package metrics

import "time"

// Recorder records coach-mark lifecycle events.
type Recorder interface {
	// ObserveShown records a coach mark becoming visible.
	ObserveShown(variant string)

	// ObserveDismissed records a dismissal and how long the mark was visible.
	ObserveDismissed(variant, reason string, visible time.Duration)

	// IncTimeout records a timeout firing while the mark was visible.
	IncTimeout(variant string)

	// IncSurfaceRace records a surface that was already gone at dismissal.
	IncSurfaceRace(variant string)
}

// NoopRecorder implements Recorder with no-op behavior for when metrics are disabled.
type NoopRecorder struct{}

// Nop returns a no-op metrics recorder that discards all metrics.
func Nop() Recorder {
	return NoopRecorder{}
}

// ObserveShown does nothing in the no-op recorder.
func (NoopRecorder) ObserveShown(string) {}

// ObserveDismissed does nothing in the no-op recorder.
func (NoopRecorder) ObserveDismissed(_, _ string, _ time.Duration) {}

// IncTimeout does nothing in the no-op recorder.
func (NoopRecorder) IncTimeout(string) {}

// IncSurfaceRace does nothing in the no-op recorder.
func (NoopRecorder) IncSurfaceRace(string) {}
