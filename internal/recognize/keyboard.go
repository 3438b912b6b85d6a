package recognize

import (
	"fmt"
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

// keyBufferCap bounds the keystroke history. Longer sequences than this
// cannot be registered as triggers.
const keyBufferCap = 32

type bufferedKey struct {
	code  string
	shift bool
	ctrl  bool
	alt   bool
	at    time.Time
}

// Keyboard matches ordered key sequences with timing and modifier
// constraints. Confidence is the fraction of trailing positions that match;
// timing or modifier violations invalidate the match outright instead of
// degrading it.
type Keyboard struct {
	keys []bufferedKey
}

// NewKeyboard creates a keyboard sequence recognizer.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Observe(ev pattern.Event) {
	if ev.Type != pattern.EventKey || ev.Key == nil {
		return
	}
	k.keys = append(k.keys, bufferedKey{
		code:  ev.Key.Code,
		shift: ev.Key.Shift,
		ctrl:  ev.Key.Ctrl,
		alt:   ev.Key.Alt,
		at:    ev.At,
	})
	if len(k.keys) > keyBufferCap {
		k.keys = k.keys[len(k.keys)-keyBufferCap:]
	}
}

func (k *Keyboard) Reset() {
	k.keys = nil
}

func (k *Keyboard) Match(trig pattern.Trigger, now time.Time) *pattern.Match {
	seq, ok := trig.(pattern.KeySequence)
	if !ok {
		return nil
	}
	n := len(seq.Keys)
	if n == 0 || len(k.keys) == 0 {
		return nil
	}

	// Compare the last min(n, buffered) keys positionally against the
	// target sequence.
	window := k.keys
	if len(window) > n {
		window = window[len(window)-n:]
	}
	target := seq.Keys[:len(window)]

	matched := 0
	for i, bk := range window {
		if bk.code == target[i] {
			matched++
		}
	}
	confidence := float64(matched) / float64(n)
	if confidence <= pattern.NoSignal {
		return nil
	}

	// Past the halfway mark, constraints are enforced strictly: any
	// violation returns nil rather than a degraded score.
	if confidence > 0.5 {
		if seq.MaxInterval > 0 {
			for i := 1; i < len(window); i++ {
				if window[i].at.Sub(window[i-1].at) > seq.MaxInterval {
					return nil
				}
			}
		}
		if seq.MaxTotal > 0 && len(window) > 1 {
			if window[len(window)-1].at.Sub(window[0].at) > seq.MaxTotal {
				return nil
			}
		}
		if seq.FinalModifiers != nil && matched == n {
			last := window[len(window)-1]
			m := seq.FinalModifiers
			if last.shift != m.Shift || last.ctrl != m.Ctrl || last.alt != m.Alt {
				return nil
			}
		}
	}

	return &pattern.Match{
		Confidence:  confidence,
		Progress:    fmt.Sprintf("%d/%d keys", matched, n),
		WindowStart: window[0].at,
		WindowEnd:   window[len(window)-1].at,
		Events:      len(window),
	}
}
