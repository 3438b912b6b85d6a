package recognize

import (
	"fmt"
	"math"
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

// pointBufferCap bounds the pointer-sample history.
const pointBufferCap = 256

// scoreSaturation is the raw score treated as full confidence. Discrete
// sampling leaves angular gaps and radius jitter even on a cleanly drawn
// shape, so raw scores are rescaled against this point and clamped at 1.
const scoreSaturation = 0.9

type point struct {
	x, y float64
	at   time.Time
}

// Gesture matches pointer paths against circle, spiral, and figure-8 shapes.
// Scoring is tolerance-driven and approximate; the goal is "clearly drew a
// circle", not geometric exactness.
type Gesture struct {
	points []point
	rate   SampleRate
	skip   int
}

// NewGesture creates a mouse-gesture recognizer.
func NewGesture() *Gesture {
	return &Gesture{rate: SampleFull}
}

// SetSampleRate adjusts move-sample thinning. Under SampleSparse only every
// third move sample is buffered; clicks are always kept.
func (g *Gesture) SetSampleRate(rate SampleRate) {
	g.rate = rate
}

func (g *Gesture) Observe(ev pattern.Event) {
	switch ev.Type {
	case pattern.EventMouseMove:
		if g.rate == SampleSparse {
			g.skip++
			if g.skip%3 != 0 {
				return
			}
		}
	case pattern.EventMouseClick:
	default:
		return
	}
	if ev.Pointer == nil {
		return
	}
	g.points = append(g.points, point{x: ev.Pointer.X, y: ev.Pointer.Y, at: ev.At})
	if len(g.points) > pointBufferCap {
		g.points = g.points[len(g.points)-pointBufferCap:]
	}
}

func (g *Gesture) Reset() {
	g.points = nil
	g.skip = 0
}

func (g *Gesture) Match(trig pattern.Trigger, now time.Time) *pattern.Match {
	gt, ok := trig.(pattern.Gesture)
	if !ok {
		return nil
	}
	minPoints := gt.MinPoints
	if minPoints < 8 {
		minPoints = 8
	}
	if len(g.points) < minPoints {
		return nil
	}

	// The shape may span more samples than MinPoints (slow drawing, dense
	// sampling), so score doubling trailing windows and keep the best fit.
	var score float64
	var pts []point
	for n := minPoints; ; n *= 2 {
		if n > len(g.points) {
			n = len(g.points)
		}
		window := g.points[len(g.points)-n:]
		if s := shapeScore(window, gt); s > score {
			score = s
			pts = window
		}
		if n == len(g.points) {
			break
		}
	}
	if score <= pattern.NoSignal || pts == nil {
		return nil
	}
	return &pattern.Match{
		Confidence:  score,
		Progress:    fmt.Sprintf("%s %.0f%%", gt.Shape, score*100),
		WindowStart: pts[0].at,
		WindowEnd:   pts[len(pts)-1].at,
		Events:      len(pts),
	}
}

func shapeScore(pts []point, gt pattern.Gesture) float64 {
	switch gt.Shape {
	case pattern.ShapeCircle:
		return circleScore(pts, gt)
	case pattern.ShapeSpiral:
		return spiralScore(pts, gt)
	case pattern.ShapeFigure8:
		return figure8Score(pts, gt)
	default:
		return 0
	}
}

// circleScore averages a radius-consistency score and an angular-coverage
// score around the path centroid. Paths whose average radius falls outside
// [MinRadius, MaxRadius] are rejected outright.
func circleScore(pts []point, gt pattern.Gesture) float64 {
	cx, cy := centroid(pts)

	radii := make([]float64, len(pts))
	var sum float64
	for i, p := range pts {
		radii[i] = math.Hypot(p.x-cx, p.y-cy)
		sum += radii[i]
	}
	avg := sum / float64(len(pts))
	if avg <= 0 {
		return 0
	}
	if gt.MinRadius > 0 && avg < gt.MinRadius {
		return 0
	}
	if gt.MaxRadius > 0 && avg > gt.MaxRadius {
		return 0
	}

	var varSum float64
	for _, r := range radii {
		d := r - avg
		varSum += d * d
	}
	stddev := math.Sqrt(varSum / float64(len(pts)))
	tol := gt.Tolerance
	if tol <= 0 {
		tol = 0.3
	}
	varScore := 1 - (stddev/avg)/tol
	if varScore < 0 {
		varScore = 0
	}

	covScore := angularCoverage(pts, cx, cy) / (2 * math.Pi)
	if covScore > 1 {
		covScore = 1
	}

	return saturate((varScore + covScore) / 2)
}

// spiralScore rewards radii that track a monotonically growing expectation
// from the first sample's radius to the last's.
func spiralScore(pts []point, gt pattern.Gesture) float64 {
	cx, cy := centroid(pts)

	first := math.Hypot(pts[0].x-cx, pts[0].y-cy)
	last := math.Hypot(pts[len(pts)-1].x-cx, pts[len(pts)-1].y-cy)
	span := last - first
	if span <= 0 {
		return 0
	}
	if gt.MaxRadius > 0 && last > gt.MaxRadius {
		return 0
	}

	tol := gt.Tolerance
	if tol <= 0 {
		tol = 0.3
	}

	// Per-point deviation from the linearly growing expected radius.
	var devSum float64
	grow := 0
	for i, p := range pts {
		expected := first + span*float64(i)/float64(len(pts)-1)
		r := math.Hypot(p.x-cx, p.y-cy)
		devSum += math.Abs(r - expected)
		if i > 0 {
			prev := math.Hypot(pts[i-1].x-cx, pts[i-1].y-cy)
			if r >= prev-span*0.05 {
				grow++
			}
		}
	}
	avgDev := devSum / float64(len(pts))
	trackScore := 1 - (avgDev/span)/tol
	if trackScore < 0 {
		trackScore = 0
	}
	monoScore := float64(grow) / float64(len(pts)-1)

	return saturate((trackScore + monoScore) / 2)
}

// saturate rescales a raw shape score so anything at or above the
// saturation point counts as full confidence.
func saturate(s float64) float64 {
	s /= scoreSaturation
	if s > 1 {
		s = 1
	}
	return s
}

// figure8Score scores each half of the path as a circle and applies a bonus
// when the path self-intersects (the crossing of the eight) or a penalty
// when it does not.
func figure8Score(pts []point, gt pattern.Gesture) float64 {
	half := len(pts) / 2
	if half < 4 {
		return 0
	}
	// Each lobe may be half the configured radius band.
	lobe := gt
	lobe.MinRadius = gt.MinRadius / 2
	lobe.MaxRadius = gt.MaxRadius

	s1 := circleScore(pts[:half], lobe)
	s2 := circleScore(pts[half:], lobe)
	score := (s1 + s2) / 2

	if pathSelfIntersects(pts) {
		score *= 1.15
	} else {
		score *= 0.6
	}
	if score > 1 {
		score = 1
	}
	return score
}

func centroid(pts []point) (float64, float64) {
	var sx, sy float64
	for _, p := range pts {
		sx += p.x
		sy += p.y
	}
	n := float64(len(pts))
	return sx / n, sy / n
}

// angularCoverage sums absolute angle deltas around the centroid, capped at
// one full turn. Sharp reversals contribute little because deltas are taken
// modulo pi.
func angularCoverage(pts []point, cx, cy float64) float64 {
	var total float64
	prev := math.Atan2(pts[0].y-cy, pts[0].x-cx)
	for _, p := range pts[1:] {
		a := math.Atan2(p.y-cy, p.x-cx)
		d := math.Abs(a - prev)
		if d > math.Pi {
			d = 2*math.Pi - d
		}
		total += d
		prev = a
	}
	if total > 2*math.Pi {
		total = 2 * math.Pi
	}
	return total
}

// pathSelfIntersects checks whether any segment from the first half crosses
// a segment from the second half.
func pathSelfIntersects(pts []point) bool {
	half := len(pts) / 2
	for i := 0; i < half-1; i++ {
		for j := half; j < len(pts)-1; j++ {
			if segmentsCross(pts[i], pts[i+1], pts[j], pts[j+1]) {
				return true
			}
		}
	}
	return false
}

func segmentsCross(a, b, c, d point) bool {
	o1 := orient(a, b, c)
	o2 := orient(a, b, d)
	o3 := orient(c, d, a)
	o4 := orient(c, d, b)
	return o1*o2 < 0 && o3*o4 < 0
}

func orient(a, b, c point) float64 {
	return (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
}
