package recognize

import (
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

// Recognizer evaluates triggers of one kind against recent input. Each
// recognizer keeps its own bounded buffer; Observe ignores event types it
// does not consume, and Match returns nil for triggers of the wrong kind or
// when the signal is below the reporting floor.
type Recognizer interface {
	Observe(ev pattern.Event)
	Match(trig pattern.Trigger, now time.Time) *pattern.Match
	Reset()
}

// SampleRate controls how aggressively high-frequency input is buffered.
// Under Sparse, recognizers keep every Nth pointer-move sample.
type SampleRate int

const (
	SampleFull SampleRate = iota
	SampleSparse
)
