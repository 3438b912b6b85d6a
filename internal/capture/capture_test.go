package capture

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/egghunt/internal/engine"
	"github.com/abhisek/egghunt/internal/pattern"
)

func fixedClock(c *Capture, at *time.Time) {
	c.clock = func() time.Time { return *at }
}

func TestTranslateKey(t *testing.T) {
	c := New(engine.ModeHigh)

	ev, ok := c.Translate(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if !ok {
		t.Fatal("key press not translated")
	}
	if ev.Type != pattern.EventKey || ev.Key.Code != "a" {
		t.Errorf("event = %+v", ev)
	}
	if ev.Key.Shift || ev.Key.Ctrl || ev.Key.Alt {
		t.Errorf("modifiers set on bare key: %+v", ev.Key)
	}
}

func TestSplitKeyModifiers(t *testing.T) {
	cases := []struct {
		in    string
		code  string
		shift bool
		ctrl  bool
		alt   bool
	}{
		{"a", "a", false, false, false},
		{"B", "b", true, false, false},
		{"ctrl+p", "p", false, true, false},
		{"ctrl+shift+p", "p", true, true, false},
		{"alt+enter", "enter", false, false, true},
		{"up", "up", false, false, false},
	}
	for _, tc := range cases {
		code, shift, ctrl, alt := splitKey(tc.in)
		if code != tc.code || shift != tc.shift || ctrl != tc.ctrl || alt != tc.alt {
			t.Errorf("splitKey(%q) = %q/%v/%v/%v, want %q/%v/%v/%v",
				tc.in, code, shift, ctrl, alt, tc.code, tc.shift, tc.ctrl, tc.alt)
		}
	}
}

func TestTranslateWheelAccumulatesPosition(t *testing.T) {
	c := New(engine.ModeHigh)

	ev, ok := c.Translate(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	if !ok {
		t.Fatal("wheel not translated")
	}
	if ev.Type != pattern.EventScroll || ev.Scroll.Delta != wheelStep {
		t.Errorf("event = %+v", ev)
	}

	ev, _ = c.Translate(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	if ev.Scroll.Position != 2*wheelStep {
		t.Errorf("position = %v, want %v", ev.Scroll.Position, 2*wheelStep)
	}

	ev, _ = c.Translate(tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	if ev.Scroll.Delta != -wheelStep || ev.Scroll.Position != wheelStep {
		t.Errorf("after scrolling back up: %+v", ev.Scroll)
	}
}

func TestTranslateMotionThrottling(t *testing.T) {
	at := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	c := New(engine.ModeLow)
	fixedClock(c, &at)

	if _, ok := c.Translate(tea.MouseMotionMsg{X: 1, Y: 1}); !ok {
		t.Fatal("first motion dropped")
	}

	at = at.Add(10 * time.Millisecond)
	if _, ok := c.Translate(tea.MouseMotionMsg{X: 2, Y: 1}); ok {
		t.Error("motion 10ms apart kept in low mode")
	}

	at = at.Add(100 * time.Millisecond)
	if _, ok := c.Translate(tea.MouseMotionMsg{X: 3, Y: 1}); !ok {
		t.Error("motion 110ms apart dropped in low mode")
	}

	c.SetMode(engine.ModeHigh)
	at = at.Add(time.Millisecond)
	if _, ok := c.Translate(tea.MouseMotionMsg{X: 4, Y: 1}); !ok {
		t.Error("motion dropped in high mode")
	}
}

func TestTranslateIgnoresOtherMessages(t *testing.T) {
	c := New(engine.ModeHigh)
	if _, ok := c.Translate(tea.WindowSizeMsg{Width: 80, Height: 24}); ok {
		t.Error("window size translated to an input event")
	}
}
