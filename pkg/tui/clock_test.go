// ABOUTME: Tests for ManualClock ordering, stopping, and pending accounting
// ABOUTME: ManualClock backs every timeout test in the module

package tui

import (
	"testing"
	"time"
)

func TestManualClock_FiresInDueOrder(t *testing.T) {
	t.Parallel()

	c := NewManualClock(time.Unix(0, 0))
	var order []string
	c.AfterFunc(3*time.Second, func() { order = append(order, "c") })
	c.AfterFunc(1*time.Second, func() { order = append(order, "a") })
	c.AfterFunc(1*time.Second, func() { order = append(order, "b") })

	c.Advance(2 * time.Second)
	if got := len(order); got != 2 {
		t.Fatalf("fired %d timers after 2s, want 2", got)
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", c.Pending())
	}

	c.Advance(time.Second)
	want := []string{"a", "b", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestManualClock_Stop(t *testing.T) {
	t.Parallel()

	c := NewManualClock(time.Unix(0, 0))
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Fatal("Stop() = false on a pending timer, want true")
	}
	if timer.Stop() {
		t.Error("second Stop() = true, want false")
	}
	c.Advance(time.Minute)
	if fired {
		t.Error("stopped timer fired")
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", c.Pending())
	}
}

func TestManualClock_Now(t *testing.T) {
	t.Parallel()

	start := time.Unix(100, 0)
	c := NewManualClock(start)
	c.Advance(5 * time.Second)
	if got := c.Now(); !got.Equal(start.Add(5 * time.Second)) {
		t.Errorf("Now() = %v, want %v", got, start.Add(5*time.Second))
	}
}
