package recognize

import (
	"testing"
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

func feedFPS(p *Perf, start time.Time, gap time.Duration, values ...float64) time.Time {
	at := start
	for _, v := range values {
		p.Observe(pattern.PerfEvent(at, v, 32<<20))
		at = at.Add(gap)
	}
	return at
}

func TestPerfSustainedHighFPS(t *testing.T) {
	p := NewPerf()
	start := time.Now()
	end := feedFPS(p, start, time.Second, 58, 59, 60, 58, 61, 59, 60, 58, 59, 60, 61)

	trig := pattern.PerfThreshold{Metric: pattern.MetricFPS, Min: 55, Sustain: 10 * time.Second}
	m := p.Match(trig, end)
	if m == nil {
		t.Fatal("Match returned nil for sustained high fps")
	}
	if !m.DiscoveredNow() {
		t.Errorf("Confidence = %v, want >= 1.0", m.Confidence)
	}
}

func TestPerfShortWindowPartial(t *testing.T) {
	p := NewPerf()
	start := time.Now()
	end := feedFPS(p, start, time.Second, 58, 59, 60, 58, 61)

	trig := pattern.PerfThreshold{Metric: pattern.MetricFPS, Min: 55, Sustain: 10 * time.Second}
	m := p.Match(trig, end)
	if m == nil {
		t.Fatal("Match returned nil for half-covered window")
	}
	if m.DiscoveredNow() {
		t.Errorf("Confidence = %v for half-covered window, want < 1.0", m.Confidence)
	}
}

func TestPerfDipBreaksSustain(t *testing.T) {
	p := NewPerf()
	start := time.Now()
	end := feedFPS(p, start, time.Second, 58, 59, 12, 58, 61, 59, 60, 58, 59, 60, 61)

	trig := pattern.PerfThreshold{Metric: pattern.MetricFPS, Min: 55, Sustain: 10 * time.Second}
	m := p.Match(trig, end)
	if m != nil && m.DiscoveredNow() {
		t.Errorf("Confidence = %v with a dip in the window, want < 1.0", m.Confidence)
	}
}

func TestPerfHeapCeiling(t *testing.T) {
	p := NewPerf()
	at := time.Now()
	for i := 0; i < 11; i++ {
		p.Observe(pattern.PerfEvent(at, 60, 8<<20))
		at = at.Add(time.Second)
	}

	trig := pattern.PerfThreshold{Metric: pattern.MetricHeap, Min: 0, Max: 16 << 20, Sustain: 10 * time.Second}
	m := p.Match(trig, at)
	if m == nil || !m.DiscoveredNow() {
		t.Errorf("Match = %+v for heap under ceiling, want discovery", m)
	}
}

func TestPerfStaleSamplesNoSignal(t *testing.T) {
	p := NewPerf()
	old := time.Now().Add(-time.Hour)
	feedFPS(p, old, time.Second, 60, 60, 60)

	trig := pattern.PerfThreshold{Metric: pattern.MetricFPS, Min: 55, Sustain: 10 * time.Second}
	if m := p.Match(trig, time.Now()); m != nil {
		t.Errorf("Match = %+v on stale samples, want nil", m)
	}
}
