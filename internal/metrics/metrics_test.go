// ABOUTME: Tests for the Prometheus and no-op coach-mark recorders
// ABOUTME: Uses prometheus/testutil against isolated registries

package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecorder_Counters(t *testing.T) {
	t.Parallel()

	r := NewPrometheusRecorder(prometheus.NewRegistry())

	r.ObserveShown("bubble")
	r.ObserveShown("bubble")
	r.ObserveShown("highlight")
	r.ObserveDismissed("bubble", "timeout", 10*time.Second)
	r.ObserveDismissed("bubble", "explicit", time.Second)
	r.IncTimeout("bubble")
	r.IncSurfaceRace("bubble")

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"shown bubble", testutil.ToFloat64(r.shownTotal.WithLabelValues("bubble")), 2},
		{"shown highlight", testutil.ToFloat64(r.shownTotal.WithLabelValues("highlight")), 1},
		{"dismissed timeout", testutil.ToFloat64(r.dismissedTotal.WithLabelValues("bubble", "timeout")), 1},
		{"dismissed explicit", testutil.ToFloat64(r.dismissedTotal.WithLabelValues("bubble", "explicit")), 1},
		{"timeouts", testutil.ToFloat64(r.timeoutTotal.WithLabelValues("bubble")), 1},
		{"races", testutil.ToFloat64(r.raceTotal.WithLabelValues("bubble")), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if n := testutil.CollectAndCount(r.visibleSeconds); n != 1 {
		t.Errorf("visible histogram series = %d, want 1", n)
	}
}

func TestPrometheusRecorder_IndependentRegistries(t *testing.T) {
	t.Parallel()

	// Registering twice on fresh registries must not panic.
	a := NewPrometheusRecorder(nil)
	b := NewPrometheusRecorder(nil)
	a.ObserveShown("bubble")

	if got := testutil.ToFloat64(b.shownTotal.WithLabelValues("bubble")); got != 0 {
		t.Errorf("second recorder shown = %v, want 0", got)
	}
}

func TestPrometheusRecorder_Handler(t *testing.T) {
	t.Parallel()

	r := NewPrometheusRecorder(nil)
	r.ObserveShown("punch_hole")

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), `coachmark_shown_total{variant="punch_hole"} 1`) {
		t.Errorf("metrics output missing shown counter:\n%s", body)
	}
}

func TestNop(t *testing.T) {
	t.Parallel()

	r := Nop()
	r.ObserveShown("bubble")
	r.ObserveDismissed("bubble", "explicit", time.Second)
	r.IncTimeout("bubble")
	r.IncSurfaceRace("bubble")
}
