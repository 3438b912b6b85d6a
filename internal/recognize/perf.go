package recognize

import (
	"fmt"
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

// perfBufferCap bounds the performance-sample history.
const perfBufferCap = 120

type perfSample struct {
	fps  float64
	heap uint64
	at   time.Time
}

// Perf matches sustained performance thresholds over a rolling sample
// window. Confidence is the fraction of in-window samples that satisfy the
// threshold, scaled down while the window is still shorter than the
// required sustain duration.
type Perf struct {
	samples []perfSample
}

// NewPerf creates a performance-threshold recognizer.
func NewPerf() *Perf {
	return &Perf{}
}

func (p *Perf) Observe(ev pattern.Event) {
	if ev.Type != pattern.EventPerf || ev.Perf == nil {
		return
	}
	p.samples = append(p.samples, perfSample{fps: ev.Perf.FPS, heap: ev.Perf.HeapBytes, at: ev.At})
	if len(p.samples) > perfBufferCap {
		p.samples = p.samples[len(p.samples)-perfBufferCap:]
	}
}

func (p *Perf) Reset() {
	p.samples = nil
}

func (p *Perf) Match(trig pattern.Trigger, now time.Time) *pattern.Match {
	pt, ok := trig.(pattern.PerfThreshold)
	if !ok {
		return nil
	}
	if pt.Sustain <= 0 || len(p.samples) == 0 {
		return nil
	}
	// Stale data cannot sustain anything.
	if p.samples[len(p.samples)-1].at.Before(now.Add(-pt.Sustain)) {
		return nil
	}

	// Keep samples inside the sustain window, plus the one immediately
	// before it so the window can actually span the full duration.
	cutoff := now.Add(-pt.Sustain)
	idx := len(p.samples)
	for i, smp := range p.samples {
		if !smp.at.Before(cutoff) {
			idx = i
			break
		}
	}
	if idx > 0 {
		idx--
	}
	window := p.samples[idx:]
	if len(window) == 0 {
		return nil
	}

	qualifying := 0
	for _, smp := range window {
		v := smp.fps
		if pt.Metric == pattern.MetricHeap {
			v = float64(smp.heap)
		}
		if v < pt.Min {
			continue
		}
		if pt.Max > 0 && v > pt.Max {
			continue
		}
		qualifying++
	}

	frac := float64(qualifying) / float64(len(window))
	span := now.Sub(window[0].at)
	coverage := float64(span) / float64(pt.Sustain)
	if coverage > 1 {
		coverage = 1
	}
	confidence := frac * coverage

	if confidence <= pattern.NoSignal {
		return nil
	}
	return &pattern.Match{
		Confidence:  confidence,
		Progress:    fmt.Sprintf("%d/%d samples for %s", qualifying, len(window), span.Round(time.Second)),
		WindowStart: window[0].at,
		WindowEnd:   now,
		Events:      len(window),
	}
}
