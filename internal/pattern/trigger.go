package pattern

import "time"

// TriggerKind identifies which recognizer evaluates a trigger.
type TriggerKind string

const (
	KindKeySequence   TriggerKind = "key_sequence"
	KindGesture       TriggerKind = "gesture"
	KindScrollPattern TriggerKind = "scroll_pattern"
	KindTimeWindow    TriggerKind = "time_window"
	KindPerfThreshold TriggerKind = "perf_threshold"
)

// Trigger is the tagged union over pattern kinds. Each variant carries its
// own statically typed condition payload; recognizers switch on the concrete
// type, never on loosely typed fields.
type Trigger interface {
	Kind() TriggerKind
}

// Modifiers describes required modifier keys on the final keystroke of a
// sequence. A nil Modifiers means no requirement.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// KeySequence matches an ordered list of key codes typed within timing
// constraints.
type KeySequence struct {
	// Keys are normalized key codes, in order.
	Keys []string
	// MaxInterval is the maximum gap between consecutive keys (0 = no limit).
	MaxInterval time.Duration
	// MaxTotal is the maximum elapsed time across the whole sequence
	// (0 = no limit).
	MaxTotal time.Duration
	// FinalModifiers, when non-nil, must be held on the last keystroke.
	FinalModifiers *Modifiers
}

func (KeySequence) Kind() TriggerKind { return KindKeySequence }

// GestureShape names a pointer-path shape.
type GestureShape string

const (
	ShapeCircle  GestureShape = "circle"
	ShapeSpiral  GestureShape = "spiral"
	ShapeFigure8 GestureShape = "figure8"
)

// Gesture matches a pointer path against a target shape with tolerance.
type Gesture struct {
	Shape GestureShape
	// MinPoints is the number of recent samples evaluated.
	MinPoints int
	// MinRadius and MaxRadius bound the acceptable average radius (cells).
	MinRadius float64
	MaxRadius float64
	// Tolerance scales how much radius variance is forgiven, in (0, 1].
	Tolerance float64
}

func (Gesture) Kind() TriggerKind { return KindGesture }

// ScrollMode selects which scroll property is matched.
type ScrollMode string

const (
	ScrollRhythm     ScrollMode = "rhythm"
	ScrollDistance   ScrollMode = "distance"
	ScrollDirections ScrollMode = "directions"
)

// ScrollPattern matches wheel activity: a target cadence, a cumulative
// distance, or a direction-change count, all within a rolling window.
type ScrollPattern struct {
	Mode ScrollMode
	// Cadence is the target gaps between successive scroll steps (rhythm).
	Cadence []time.Duration
	// CadenceTolerance is the allowed fractional deviation per gap.
	CadenceTolerance float64
	// Distance is the target cumulative absolute scroll distance.
	Distance float64
	// DirectionChanges is the target number of sign flips.
	DirectionChanges int
	// Window bounds how far back scroll samples count (0 = unbounded).
	Window time.Duration
}

func (ScrollPattern) Kind() TriggerKind { return KindScrollPattern }

// TimeMode selects which temporal property is matched.
type TimeMode string

const (
	TimeElapsed TimeMode = "elapsed"
	TimeClock   TimeMode = "clock"
	TimeIdle    TimeMode = "idle"
)

// TimeWindow matches session duration, local clock hour, or idle time.
type TimeWindow struct {
	Mode TimeMode
	// Duration is the target for elapsed and idle modes.
	Duration time.Duration
	// StartHour and EndHour bound the clock window [StartHour, EndHour);
	// StartHour > EndHour wraps past midnight.
	StartHour int
	EndHour   int
}

func (TimeWindow) Kind() TriggerKind { return KindTimeWindow }

// PerfMetric names a sampled performance metric.
type PerfMetric string

const (
	MetricFPS  PerfMetric = "fps"
	MetricHeap PerfMetric = "heap_bytes"
)

// PerfThreshold matches a metric staying inside [Min, Max] for a sustained
// duration. Max == 0 means unbounded above.
type PerfThreshold struct {
	Metric  PerfMetric
	Min     float64
	Max     float64
	Sustain time.Duration
}

func (PerfThreshold) Kind() TriggerKind { return KindPerfThreshold }
