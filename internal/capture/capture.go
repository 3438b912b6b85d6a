package capture

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/egghunt/internal/engine"
	"github.com/abhisek/egghunt/internal/pattern"
)

// wheelStep is the scroll distance one wheel notch contributes.
const wheelStep = 3.0

// Capture normalizes Bubble Tea input messages into pattern events. It
// tracks the cumulative scroll offset and throttles pointer motion in the
// lower performance modes.
type Capture struct {
	scrollPos float64
	mode      engine.Mode
	lastMove  time.Time
	clock     func() time.Time
}

// New creates a capture bridge.
func New(mode engine.Mode) *Capture {
	return &Capture{mode: mode, clock: time.Now}
}

// SetMode changes the throttling behavior.
func (c *Capture) SetMode(mode engine.Mode) {
	c.mode = mode
}

// Translate converts one message. Returns false for messages that carry no
// user input (window sizes, custom messages, ticks are built elsewhere).
func (c *Capture) Translate(msg tea.Msg) (pattern.Event, bool) {
	now := c.clock()

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		code, shift, ctrl, alt := splitKey(msg.String())
		if code == "" {
			return pattern.Event{}, false
		}
		return pattern.KeyEvent(now, code, shift, ctrl, alt), true

	case tea.MouseMotionMsg:
		if c.throttled(now) {
			return pattern.Event{}, false
		}
		c.lastMove = now
		m := msg.Mouse()
		return pattern.MoveEvent(now, float64(m.X), float64(m.Y)), true

	case tea.MouseClickMsg:
		m := msg.Mouse()
		return pattern.ClickEvent(now, float64(m.X), float64(m.Y)), true

	case tea.MouseWheelMsg:
		m := msg.Mouse()
		var delta float64
		switch m.Button {
		case tea.MouseWheelDown:
			delta = wheelStep
		case tea.MouseWheelUp:
			delta = -wheelStep
		default:
			return pattern.Event{}, false
		}
		c.scrollPos += delta
		return pattern.ScrollEvent(now, delta, c.scrollPos), true
	}

	return pattern.Event{}, false
}

// throttled reports whether a motion event arrives too soon after the
// previous one for the current mode.
func (c *Capture) throttled(now time.Time) bool {
	var gap time.Duration
	switch c.mode {
	case engine.ModeLow:
		gap = 80 * time.Millisecond
	case engine.ModeMedium:
		gap = 30 * time.Millisecond
	default:
		return false
	}
	return now.Sub(c.lastMove) < gap
}

// splitKey breaks a key string like "ctrl+shift+p" into a normalized code
// and modifier flags.
func splitKey(s string) (code string, shift, ctrl, alt bool) {
	if s == "" {
		return "", false, false, false
	}
	parts := strings.Split(s, "+")
	code = strings.ToLower(parts[len(parts)-1])
	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(mod) {
		case "shift":
			shift = true
		case "ctrl":
			ctrl = true
		case "alt":
			alt = true
		}
	}
	// A bare uppercase letter is shift without the prefix.
	if len(parts) == 1 && len(s) == 1 && s >= "A" && s <= "Z" {
		shift = true
	}
	return code, shift, ctrl, alt
}
