// Package perfmon samples render throughput and heap usage so that
// performance-threshold eggs have something to match against.
package perfmon

import (
	"runtime"
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

// Monitor counts rendered frames and periodically turns them into
// performance events. Not safe for concurrent use; it lives on the UI
// goroutine like everything else.
type Monitor struct {
	frames      int
	lastSample  time.Time
	readMem     func() uint64
	clock       func() time.Time
	maxInterval time.Duration
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithClock overrides time.Now, for tests.
func WithClock(clock func() time.Time) Option {
	return func(m *Monitor) { m.clock = clock }
}

// WithMemReader overrides the heap reader, for tests.
func WithMemReader(read func() uint64) Option {
	return func(m *Monitor) { m.readMem = read }
}

// New creates a Monitor anchored at the current time.
func New(opts ...Option) *Monitor {
	m := &Monitor{
		readMem:     heapInUse,
		clock:       time.Now,
		maxInterval: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.lastSample = m.clock()
	return m
}

// Frame records one completed render.
func (m *Monitor) Frame() {
	m.frames++
}

// Sample closes the current measurement interval and returns it as a
// performance event. Returns false when the interval is too short to give
// a meaningful rate.
func (m *Monitor) Sample() (pattern.Event, bool) {
	now := m.clock()
	elapsed := now.Sub(m.lastSample)
	if elapsed < 100*time.Millisecond {
		return pattern.Event{}, false
	}

	fps := float64(m.frames) / elapsed.Seconds()
	// A stalled sampler (laptop asleep, suspended process) would report a
	// near-zero rate; treat oversized intervals as a fresh start instead.
	stale := elapsed > m.maxInterval

	m.frames = 0
	m.lastSample = now

	if stale {
		return pattern.Event{}, false
	}
	return pattern.PerfEvent(now, fps, m.readMem()), true
}

func heapInUse() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapInuse
}
