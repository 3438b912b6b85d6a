package pattern

import "time"

// EventType identifies the kind of normalized input event.
type EventType string

const (
	EventKey        EventType = "key"
	EventMouseMove  EventType = "mouse_move"
	EventMouseClick EventType = "mouse_click"
	EventScroll     EventType = "scroll"
	EventPerf       EventType = "perf"
	EventTick       EventType = "tick"
)

// KeyPayload carries a normalized keystroke.
type KeyPayload struct {
	// Code is the normalized key name ("up", "a", "enter", ...).
	Code  string
	Shift bool
	Ctrl  bool
	Alt   bool
}

// PointerPayload carries a pointer position in cell coordinates.
type PointerPayload struct {
	X float64
	Y float64
}

// ScrollPayload carries one wheel step.
type ScrollPayload struct {
	// Delta is positive when scrolling down, negative when scrolling up.
	Delta float64
	// Position is the cumulative scroll offset after applying Delta.
	Position float64
}

// PerfPayload carries one runtime performance sample.
type PerfPayload struct {
	FPS       float64
	HeapBytes uint64
}

// Event is a normalized, timestamped input record. Exactly one payload
// pointer is set, matching Type; EventTick carries none. Events are
// immutable after creation.
type Event struct {
	Type    EventType
	At      time.Time
	Key     *KeyPayload
	Pointer *PointerPayload
	Scroll  *ScrollPayload
	Perf    *PerfPayload
}

// KeyEvent builds a keystroke event.
func KeyEvent(at time.Time, code string, shift, ctrl, alt bool) Event {
	return Event{Type: EventKey, At: at, Key: &KeyPayload{Code: code, Shift: shift, Ctrl: ctrl, Alt: alt}}
}

// MoveEvent builds a pointer-move event.
func MoveEvent(at time.Time, x, y float64) Event {
	return Event{Type: EventMouseMove, At: at, Pointer: &PointerPayload{X: x, Y: y}}
}

// ClickEvent builds a pointer-click event.
func ClickEvent(at time.Time, x, y float64) Event {
	return Event{Type: EventMouseClick, At: at, Pointer: &PointerPayload{X: x, Y: y}}
}

// ScrollEvent builds a wheel event.
func ScrollEvent(at time.Time, delta, position float64) Event {
	return Event{Type: EventScroll, At: at, Scroll: &ScrollPayload{Delta: delta, Position: position}}
}

// PerfEvent builds a performance-sample event.
func PerfEvent(at time.Time, fps float64, heapBytes uint64) Event {
	return Event{Type: EventPerf, At: at, Perf: &PerfPayload{FPS: fps, HeapBytes: heapBytes}}
}

// TickEvent builds a bare clock event. Ticks carry no payload; they exist so
// time-based triggers are re-evaluated while the user is idle.
func TickEvent(at time.Time) Event {
	return Event{Type: EventTick, At: at}
}

// UserInput reports whether the event was produced by the user rather than
// by a timer. Idle detection only resets on user input.
func (e Event) UserInput() bool {
	switch e.Type {
	case EventKey, EventMouseMove, EventMouseClick, EventScroll:
		return true
	}
	return false
}
