package recognize

import (
	"testing"
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

func TestScrollDistance(t *testing.T) {
	s := NewScroll()
	at := time.Now()
	pos := 0.0
	for i := 0; i < 10; i++ {
		pos += 3
		s.Observe(pattern.ScrollEvent(at, 3, pos))
		at = at.Add(100 * time.Millisecond)
	}

	trig := pattern.ScrollPattern{Mode: pattern.ScrollDistance, Distance: 30}
	m := s.Match(trig, at)
	if m == nil {
		t.Fatal("Match returned nil at full distance")
	}
	if !m.DiscoveredNow() {
		t.Errorf("Confidence = %v, want >= 1.0", m.Confidence)
	}

	// Halfway gives partial progress.
	s.Reset()
	pos = 0
	for i := 0; i < 5; i++ {
		pos += 3
		s.Observe(pattern.ScrollEvent(at, 3, pos))
		at = at.Add(100 * time.Millisecond)
	}
	m = s.Match(trig, at)
	if m == nil {
		t.Fatal("Match returned nil at half distance")
	}
	if m.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", m.Confidence)
	}
}

func TestScrollDistanceWindowExpiry(t *testing.T) {
	s := NewScroll()
	at := time.Now()
	s.Observe(pattern.ScrollEvent(at, 30, 30))

	trig := pattern.ScrollPattern{
		Mode:     pattern.ScrollDistance,
		Distance: 30,
		Window:   5 * time.Second,
	}
	if m := s.Match(trig, at.Add(time.Second)); m == nil || !m.DiscoveredNow() {
		t.Errorf("Match = %+v inside window, want discovery", m)
	}
	if m := s.Match(trig, at.Add(10*time.Second)); m != nil {
		t.Errorf("Match = %+v after window expiry, want nil", m)
	}
}

func TestScrollRhythm(t *testing.T) {
	s := NewScroll()
	cadence := []time.Duration{
		300 * time.Millisecond,
		300 * time.Millisecond,
		600 * time.Millisecond,
	}
	at := time.Now()
	s.Observe(pattern.ScrollEvent(at, 1, 1))
	at = at.Add(310 * time.Millisecond)
	s.Observe(pattern.ScrollEvent(at, 1, 2))
	at = at.Add(295 * time.Millisecond)
	s.Observe(pattern.ScrollEvent(at, 1, 3))
	at = at.Add(590 * time.Millisecond)
	s.Observe(pattern.ScrollEvent(at, 1, 4))

	trig := pattern.ScrollPattern{
		Mode:             pattern.ScrollRhythm,
		Cadence:          cadence,
		CadenceTolerance: 0.2,
	}
	m := s.Match(trig, at)
	if m == nil {
		t.Fatal("Match returned nil for on-beat cadence")
	}
	if !m.DiscoveredNow() {
		t.Errorf("Confidence = %v, want >= 1.0", m.Confidence)
	}
}

func TestScrollRhythmOffBeat(t *testing.T) {
	s := NewScroll()
	at := time.Now()
	for i := 0; i < 4; i++ {
		s.Observe(pattern.ScrollEvent(at, 1, float64(i)))
		at = at.Add(1500 * time.Millisecond)
	}

	trig := pattern.ScrollPattern{
		Mode:             pattern.ScrollRhythm,
		Cadence:          []time.Duration{300 * time.Millisecond, 300 * time.Millisecond, 600 * time.Millisecond},
		CadenceTolerance: 0.2,
	}
	if m := s.Match(trig, at); m != nil {
		t.Errorf("Match = %+v for off-beat cadence, want nil", m)
	}
}

func TestScrollDirectionChanges(t *testing.T) {
	s := NewScroll()
	at := time.Now()
	delta := 2.0
	for i := 0; i < 7; i++ {
		s.Observe(pattern.ScrollEvent(at, delta, 0))
		delta = -delta
		at = at.Add(100 * time.Millisecond)
	}

	trig := pattern.ScrollPattern{Mode: pattern.ScrollDirections, DirectionChanges: 6}
	m := s.Match(trig, at)
	if m == nil {
		t.Fatal("Match returned nil for alternating scroll")
	}
	if !m.DiscoveredNow() {
		t.Errorf("Confidence = %v, want >= 1.0 for 6 reversals", m.Confidence)
	}
}

func TestScrollBufferBounded(t *testing.T) {
	s := NewScroll()
	at := time.Now()
	for i := 0; i < scrollBufferCap*2; i++ {
		s.Observe(pattern.ScrollEvent(at.Add(time.Duration(i)*time.Millisecond), 1, float64(i)))
	}
	if len(s.samples) != scrollBufferCap {
		t.Errorf("buffer length = %d, want %d", len(s.samples), scrollBufferCap)
	}
}
