package perfmon

import (
	"testing"
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

func TestSampleComputesFrameRate(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	m := New(
		WithClock(func() time.Time { return now }),
		WithMemReader(func() uint64 { return 8 << 20 }),
	)

	for i := 0; i < 60; i++ {
		m.Frame()
	}
	now = now.Add(time.Second)

	ev, ok := m.Sample()
	if !ok {
		t.Fatal("Sample returned false for a 1s interval")
	}
	if ev.Type != pattern.EventPerf || ev.Perf == nil {
		t.Fatalf("event = %+v, want perf event", ev)
	}
	if ev.Perf.FPS < 59 || ev.Perf.FPS > 61 {
		t.Errorf("FPS = %v, want ~60", ev.Perf.FPS)
	}
	if ev.Perf.HeapBytes != 8<<20 {
		t.Errorf("HeapBytes = %d, want %d", ev.Perf.HeapBytes, 8<<20)
	}
}

func TestSampleResetsCounter(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	m := New(
		WithClock(func() time.Time { return now }),
		WithMemReader(func() uint64 { return 0 }),
	)

	for i := 0; i < 30; i++ {
		m.Frame()
	}
	now = now.Add(time.Second)
	if _, ok := m.Sample(); !ok {
		t.Fatal("first sample failed")
	}

	now = now.Add(time.Second)
	ev, ok := m.Sample()
	if !ok {
		t.Fatal("second sample failed")
	}
	if ev.Perf.FPS != 0 {
		t.Errorf("FPS = %v after no frames, want 0", ev.Perf.FPS)
	}
}

func TestSampleRejectsTinyInterval(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	m := New(WithClock(func() time.Time { return now }))

	m.Frame()
	now = now.Add(10 * time.Millisecond)
	if _, ok := m.Sample(); ok {
		t.Error("Sample accepted a 10ms interval")
	}
}

func TestSampleDiscardsStaleInterval(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	m := New(WithClock(func() time.Time { return now }))

	m.Frame()
	now = now.Add(time.Minute)
	if _, ok := m.Sample(); ok {
		t.Error("Sample accepted a minute-long interval")
	}

	// The stale interval still re-anchors the sampler.
	for i := 0; i < 30; i++ {
		m.Frame()
	}
	now = now.Add(time.Second)
	ev, ok := m.Sample()
	if !ok {
		t.Fatal("sample after re-anchor failed")
	}
	if ev.Perf.FPS < 29 || ev.Perf.FPS > 31 {
		t.Errorf("FPS = %v, want ~30", ev.Perf.FPS)
	}
}
