package recognize

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

func feedCircle(g *Gesture, cx, cy, r float64, n int, start time.Time) time.Time {
	at := start
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		g.Observe(pattern.MoveEvent(at, cx+r*math.Cos(a), cy+r*math.Sin(a)))
		at = at.Add(20 * time.Millisecond)
	}
	return at
}

func circleTrigger() pattern.Gesture {
	return pattern.Gesture{
		Shape:     pattern.ShapeCircle,
		MinPoints: 24,
		MinRadius: 3,
		MaxRadius: 40,
		Tolerance: 0.3,
	}
}

func TestGestureCircleDiscovered(t *testing.T) {
	g := NewGesture()
	end := feedCircle(g, 40, 20, 10, 24, time.Now())

	m := g.Match(circleTrigger(), end)
	if m == nil {
		t.Fatal("Match returned nil for a clean circle")
	}
	if m.Confidence < 0.9 {
		t.Errorf("Confidence = %v, want >= 0.9 for a clean circle", m.Confidence)
	}
}

func TestGestureCircleFullConfidence(t *testing.T) {
	// Exactly MinPoints spanning one full turn: the sampling gap between
	// the last and first point must not keep the score below 1.
	g := NewGesture()
	end := feedCircle(g, 40, 20, 10, 24, time.Now())
	m := g.Match(circleTrigger(), end)
	if m == nil {
		t.Fatal("Match returned nil for a clean circle")
	}
	if m.Confidence < 1 {
		t.Errorf("Confidence = %v at MinPoints, want 1.0", m.Confidence)
	}

	// Dense sampling: one and a half loops over 54 samples. The shape
	// spans more than MinPoints, so wider trailing windows must be tried.
	g = NewGesture()
	at := time.Now()
	n := 54
	for i := 0; i < n; i++ {
		a := 3 * math.Pi * float64(i) / float64(n)
		g.Observe(pattern.MoveEvent(at, 40+10*math.Cos(a), 20+10*math.Sin(a)))
		at = at.Add(20 * time.Millisecond)
	}
	m = g.Match(circleTrigger(), at)
	if m == nil {
		t.Fatal("Match returned nil for a densely sampled circle")
	}
	if m.Confidence < 1 {
		t.Errorf("Confidence = %v with dense sampling, want 1.0", m.Confidence)
	}
}

func TestGestureSpiralFullConfidenceWithJitter(t *testing.T) {
	g := NewGesture()
	at := time.Now()
	n := 48
	for i := 0; i < n; i++ {
		a := 4 * math.Pi * float64(i) / float64(n)
		r := 2 + 10*float64(i)/float64(n) + 0.2*math.Sin(float64(7*i))
		g.Observe(pattern.MoveEvent(at, 40+r*math.Cos(a), 20+r*math.Sin(a)))
		at = at.Add(20 * time.Millisecond)
	}

	trig := pattern.Gesture{Shape: pattern.ShapeSpiral, MinPoints: 48, Tolerance: 0.5}
	m := g.Match(trig, at)
	if m == nil {
		t.Fatal("Match returned nil for a jittery spiral")
	}
	if m.Confidence < 1 {
		t.Errorf("Confidence = %v for a hand-steady spiral, want 1.0", m.Confidence)
	}
}

func TestGestureStraightLineRejected(t *testing.T) {
	g := NewGesture()
	at := time.Now()
	for i := 0; i < 24; i++ {
		g.Observe(pattern.MoveEvent(at, float64(10+i*2), 20))
		at = at.Add(20 * time.Millisecond)
	}

	m := g.Match(circleTrigger(), at)
	if m != nil && m.Confidence >= 0.5 {
		t.Errorf("Confidence = %v for a straight line, want low or nil", m.Confidence)
	}
}

func TestGestureRadiusBounds(t *testing.T) {
	g := NewGesture()
	// Tiny circle: radius 1, below MinRadius 3.
	end := feedCircle(g, 40, 20, 1, 24, time.Now())
	if m := g.Match(circleTrigger(), end); m != nil {
		t.Errorf("Match = %+v, want nil for radius below MinRadius", m)
	}
}

func TestGestureNotEnoughPoints(t *testing.T) {
	g := NewGesture()
	end := feedCircle(g, 40, 20, 10, 10, time.Now())
	if m := g.Match(circleTrigger(), end); m != nil {
		t.Errorf("Match = %+v, want nil below MinPoints", m)
	}
}

func TestGestureSpiral(t *testing.T) {
	g := NewGesture()
	at := time.Now()
	n := 48
	for i := 0; i < n; i++ {
		a := 4 * math.Pi * float64(i) / float64(n)
		r := 2 + 10*float64(i)/float64(n)
		g.Observe(pattern.MoveEvent(at, 40+r*math.Cos(a), 20+r*math.Sin(a)))
		at = at.Add(20 * time.Millisecond)
	}

	trig := pattern.Gesture{Shape: pattern.ShapeSpiral, MinPoints: 48, Tolerance: 0.5}
	m := g.Match(trig, at)
	if m == nil {
		t.Fatal("Match returned nil for a spiral")
	}
	if m.Confidence < 0.6 {
		t.Errorf("Confidence = %v, want >= 0.6 for a clean spiral", m.Confidence)
	}
}

func TestGestureSpiralRejectsConstantRadius(t *testing.T) {
	g := NewGesture()
	end := feedCircle(g, 40, 20, 10, 48, time.Now())

	trig := pattern.Gesture{Shape: pattern.ShapeSpiral, MinPoints: 48, Tolerance: 0.5}
	m := g.Match(trig, end)
	if m != nil && m.Confidence >= 0.5 {
		t.Errorf("Confidence = %v for non-growing radius, want low or nil", m.Confidence)
	}
}

func TestGestureFigure8(t *testing.T) {
	g := NewGesture()
	at := time.Now()
	n := 64
	// Lemniscate-like path: two lobes sharing a crossing point.
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n/2)
		cx := 30.0
		if i >= n/2 {
			cx = 42.0
		}
		g.Observe(pattern.MoveEvent(at, cx+8*math.Cos(a), 20+8*math.Sin(a)))
		at = at.Add(20 * time.Millisecond)
	}

	trig := pattern.Gesture{
		Shape:     pattern.ShapeFigure8,
		MinPoints: 64,
		MinRadius: 2,
		MaxRadius: 40,
		Tolerance: 0.4,
	}
	m := g.Match(trig, at)
	if m == nil {
		t.Fatal("Match returned nil for a figure-8")
	}
	if m.Confidence < 0.5 {
		t.Errorf("Confidence = %v, want >= 0.5 for two clean lobes", m.Confidence)
	}
}

func TestGestureSparseSampling(t *testing.T) {
	g := NewGesture()
	g.SetSampleRate(SampleSparse)
	at := time.Now()
	for i := 0; i < 30; i++ {
		g.Observe(pattern.MoveEvent(at, float64(i), float64(i)))
		at = at.Add(time.Millisecond)
	}
	if len(g.points) != 10 {
		t.Errorf("buffered %d points under sparse sampling, want 10", len(g.points))
	}
}
