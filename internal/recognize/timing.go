package recognize

import (
	"fmt"
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

// Timing matches session-duration, clock-window, and idle triggers. It keeps
// no event buffer, only the session start and the last user activity; tick
// and perf events advance evaluation without counting as activity.
type Timing struct {
	startedAt    time.Time
	lastActivity time.Time
}

// NewTiming creates a time-window recognizer anchored at start.
func NewTiming(start time.Time) *Timing {
	return &Timing{startedAt: start, lastActivity: start}
}

func (t *Timing) Observe(ev pattern.Event) {
	if ev.UserInput() {
		t.lastActivity = ev.At
	}
}

// Reset re-anchors the session clock. The engine calls this on Start.
func (t *Timing) Reset() {
	t.startedAt = time.Time{}
	t.lastActivity = time.Time{}
}

// Restart re-anchors both clocks at now.
func (t *Timing) Restart(now time.Time) {
	t.startedAt = now
	t.lastActivity = now
}

func (t *Timing) Match(trig pattern.Trigger, now time.Time) *pattern.Match {
	tw, ok := trig.(pattern.TimeWindow)
	if !ok {
		return nil
	}
	if t.startedAt.IsZero() {
		return nil
	}

	var confidence float64
	var progress string
	switch tw.Mode {
	case pattern.TimeElapsed:
		if tw.Duration <= 0 {
			return nil
		}
		elapsed := now.Sub(t.startedAt)
		confidence = ratio(elapsed, tw.Duration)
		progress = fmt.Sprintf("%s/%s elapsed", elapsed.Round(time.Second), tw.Duration)

	case pattern.TimeClock:
		if hourInWindow(now.Hour(), tw.StartHour, tw.EndHour) {
			confidence = 1
		}
		progress = fmt.Sprintf("hour %d in [%d,%d)", now.Hour(), tw.StartHour, tw.EndHour)

	case pattern.TimeIdle:
		if tw.Duration <= 0 {
			return nil
		}
		idle := now.Sub(t.lastActivity)
		confidence = ratio(idle, tw.Duration)
		progress = fmt.Sprintf("%s/%s idle", idle.Round(time.Second), tw.Duration)

	default:
		return nil
	}

	if confidence <= pattern.NoSignal {
		return nil
	}
	return &pattern.Match{
		Confidence:  confidence,
		Progress:    progress,
		WindowStart: t.startedAt,
		WindowEnd:   now,
	}
}

func ratio(have, want time.Duration) float64 {
	r := float64(have) / float64(want)
	if r > 1 {
		r = 1
	}
	if r < 0 {
		r = 0
	}
	return r
}

// hourInWindow reports membership in [start, end), wrapping past midnight
// when start > end. start == end means the full day.
func hourInWindow(hour, start, end int) bool {
	if start == end {
		return true
	}
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}
