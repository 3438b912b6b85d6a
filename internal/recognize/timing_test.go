package recognize

import (
	"testing"
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

func TestTimingElapsed(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	tr := NewTiming(start)

	trig := pattern.TimeWindow{Mode: pattern.TimeElapsed, Duration: 10 * time.Minute}

	m := tr.Match(trig, start.Add(5*time.Minute))
	if m == nil {
		t.Fatal("Match returned nil at half duration")
	}
	if m.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", m.Confidence)
	}

	m = tr.Match(trig, start.Add(10*time.Minute))
	if m == nil || !m.DiscoveredNow() {
		t.Errorf("Match = %+v at full duration, want discovery", m)
	}
}

func TestTimingClockWindow(t *testing.T) {
	start := time.Date(2026, 3, 14, 2, 30, 0, 0, time.UTC)
	tr := NewTiming(start)

	trig := pattern.TimeWindow{Mode: pattern.TimeClock, StartHour: 0, EndHour: 5}
	m := tr.Match(trig, start)
	if m == nil || !m.DiscoveredNow() {
		t.Errorf("Match = %+v at 02:30 in [0,5), want discovery", m)
	}

	noon := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	if m := tr.Match(trig, noon); m != nil {
		t.Errorf("Match = %+v at noon in [0,5), want nil", m)
	}
}

func TestTimingClockWraparound(t *testing.T) {
	cases := []struct {
		hour int
		in   bool
	}{
		{23, true},
		{0, true},
		{3, true},
		{4, false},
		{12, false},
		{21, false},
	}
	for _, tc := range cases {
		if got := hourInWindow(tc.hour, 22, 4); got != tc.in {
			t.Errorf("hourInWindow(%d, 22, 4) = %v, want %v", tc.hour, got, tc.in)
		}
	}
}

func TestTimingIdleResetsOnActivity(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	tr := NewTiming(start)

	trig := pattern.TimeWindow{Mode: pattern.TimeIdle, Duration: 2 * time.Minute}

	m := tr.Match(trig, start.Add(2*time.Minute))
	if m == nil || !m.DiscoveredNow() {
		t.Errorf("Match = %+v after 2m idle, want discovery", m)
	}

	// User input resets the idle clock; timer events do not.
	tr.Observe(pattern.KeyEvent(start.Add(90*time.Second), "x", false, false, false))
	m = tr.Match(trig, start.Add(2*time.Minute))
	if m != nil && m.DiscoveredNow() {
		t.Errorf("Match = %+v 30s after activity, want partial at most", m)
	}

	tr.Observe(pattern.TickEvent(start.Add(100 * time.Second)))
	m = tr.Match(trig, start.Add(210*time.Second))
	if m == nil || !m.DiscoveredNow() {
		t.Errorf("Match = %+v after ticks only, want discovery", m)
	}
}

func TestTimingZeroStartNoSignal(t *testing.T) {
	tr := NewTiming(time.Now())
	tr.Reset()
	trig := pattern.TimeWindow{Mode: pattern.TimeElapsed, Duration: time.Minute}
	if m := tr.Match(trig, time.Now().Add(time.Hour)); m != nil {
		t.Errorf("Match = %+v after Reset, want nil", m)
	}
}
