package recognize

import (
	"fmt"
	"math"
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

// scrollBufferCap bounds the scroll-sample history.
const scrollBufferCap = 128

type scrollSample struct {
	delta    float64
	position float64
	at       time.Time
}

// Scroll matches wheel activity: rhythm (cadence of scroll steps), cumulative
// distance, and direction-change counting.
type Scroll struct {
	samples []scrollSample
}

// NewScroll creates a scroll-pattern recognizer.
func NewScroll() *Scroll {
	return &Scroll{}
}

func (s *Scroll) Observe(ev pattern.Event) {
	if ev.Type != pattern.EventScroll || ev.Scroll == nil {
		return
	}
	s.samples = append(s.samples, scrollSample{
		delta:    ev.Scroll.Delta,
		position: ev.Scroll.Position,
		at:       ev.At,
	})
	if len(s.samples) > scrollBufferCap {
		s.samples = s.samples[len(s.samples)-scrollBufferCap:]
	}
}

func (s *Scroll) Reset() {
	s.samples = nil
}

func (s *Scroll) Match(trig pattern.Trigger, now time.Time) *pattern.Match {
	sp, ok := trig.(pattern.ScrollPattern)
	if !ok {
		return nil
	}
	window := s.windowed(sp.Window, now)
	if len(window) == 0 {
		return nil
	}

	var confidence float64
	var progress string
	switch sp.Mode {
	case pattern.ScrollRhythm:
		confidence, progress = rhythmScore(window, sp)
	case pattern.ScrollDistance:
		confidence, progress = distanceScore(window, sp)
	case pattern.ScrollDirections:
		confidence, progress = directionScore(window, sp)
	default:
		return nil
	}
	if confidence <= pattern.NoSignal {
		return nil
	}
	return &pattern.Match{
		Confidence:  confidence,
		Progress:    progress,
		WindowStart: window[0].at,
		WindowEnd:   window[len(window)-1].at,
		Events:      len(window),
	}
}

// windowed returns the samples within the trailing window, or all samples
// when the window is unbounded.
func (s *Scroll) windowed(window time.Duration, now time.Time) []scrollSample {
	if window <= 0 {
		return s.samples
	}
	cutoff := now.Add(-window)
	for i, smp := range s.samples {
		if !smp.at.Before(cutoff) {
			return s.samples[i:]
		}
	}
	return nil
}

// rhythmScore compares the gaps between the most recent len(Cadence)+1
// scroll steps against the target cadence.
func rhythmScore(window []scrollSample, sp pattern.ScrollPattern) (float64, string) {
	need := len(sp.Cadence) + 1
	if need < 2 || len(window) < 2 {
		return 0, ""
	}
	if len(window) > need {
		window = window[len(window)-need:]
	}
	tol := sp.CadenceTolerance
	if tol <= 0 {
		tol = 0.25
	}

	hits := 0
	checked := 0
	for i := 1; i < len(window); i++ {
		target := sp.Cadence[i-1]
		if target <= 0 {
			continue
		}
		checked++
		gap := window[i].at.Sub(window[i-1].at)
		dev := math.Abs(float64(gap-target)) / float64(target)
		if dev <= tol {
			hits++
		}
	}
	if checked == 0 {
		return 0, ""
	}
	// Scale by how much of the cadence has been seen at all.
	conf := float64(hits) / float64(len(sp.Cadence))
	return conf, fmt.Sprintf("%d/%d beats", hits, len(sp.Cadence))
}

// distanceScore ratios cumulative absolute scroll distance against the
// target. Confidence saturates at 1.0 once the target is reached.
func distanceScore(window []scrollSample, sp pattern.ScrollPattern) (float64, string) {
	if sp.Distance <= 0 {
		return 0, ""
	}
	var total float64
	for _, smp := range window {
		total += math.Abs(smp.delta)
	}
	conf := total / sp.Distance
	if conf > 1 {
		conf = 1
	}
	return conf, fmt.Sprintf("%.0f/%.0f scrolled", total, sp.Distance)
}

// directionScore counts sign flips in scroll deltas against the target.
func directionScore(window []scrollSample, sp pattern.ScrollPattern) (float64, string) {
	if sp.DirectionChanges <= 0 {
		return 0, ""
	}
	changes := 0
	var prev float64
	for _, smp := range window {
		if smp.delta == 0 {
			continue
		}
		if prev != 0 && (smp.delta > 0) != (prev > 0) {
			changes++
		}
		prev = smp.delta
	}
	conf := float64(changes) / float64(sp.DirectionChanges)
	if conf > 1 {
		conf = 1
	}
	return conf, fmt.Sprintf("%d/%d reversals", changes, sp.DirectionChanges)
}
