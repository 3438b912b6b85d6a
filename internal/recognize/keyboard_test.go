package recognize

import (
	"testing"
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

var konamiKeys = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"}

func feedKeys(k *Keyboard, start time.Time, gap time.Duration, codes ...string) time.Time {
	at := start
	for _, c := range codes {
		k.Observe(pattern.KeyEvent(at, c, false, false, false))
		at = at.Add(gap)
	}
	return at
}

func TestKeyboardFullSequence(t *testing.T) {
	k := NewKeyboard()
	start := time.Now()
	end := feedKeys(k, start, 200*time.Millisecond, konamiKeys...)

	trig := pattern.KeySequence{
		Keys:        konamiKeys,
		MaxInterval: 2 * time.Second,
		MaxTotal:    10 * time.Second,
	}
	m := k.Match(trig, end)
	if m == nil {
		t.Fatal("Match returned nil for exact sequence")
	}
	if !m.DiscoveredNow() {
		t.Errorf("Confidence = %v, want >= 1.0", m.Confidence)
	}
	if m.Events != len(konamiKeys) {
		t.Errorf("Events = %d, want %d", m.Events, len(konamiKeys))
	}
}

func TestKeyboardSlowGapInvalidates(t *testing.T) {
	k := NewKeyboard()
	start := time.Now()
	at := feedKeys(k, start, 200*time.Millisecond, konamiKeys[:9]...)
	// Final key arrives after a gap exceeding MaxInterval.
	at = at.Add(5 * time.Second)
	k.Observe(pattern.KeyEvent(at, "a", false, false, false))

	trig := pattern.KeySequence{
		Keys:        konamiKeys,
		MaxInterval: 2 * time.Second,
	}
	if m := k.Match(trig, at); m != nil {
		t.Errorf("Match = %+v, want nil for violated MaxInterval", m)
	}
}

func TestKeyboardTotalBudgetInvalidates(t *testing.T) {
	k := NewKeyboard()
	start := time.Now()
	end := feedKeys(k, start, 1500*time.Millisecond, konamiKeys...)

	trig := pattern.KeySequence{
		Keys:     konamiKeys,
		MaxTotal: 10 * time.Second,
	}
	if m := k.Match(trig, end); m != nil {
		t.Errorf("Match = %+v, want nil for violated MaxTotal", m)
	}
}

func TestKeyboardPartialProgress(t *testing.T) {
	k := NewKeyboard()
	start := time.Now()
	end := feedKeys(k, start, 200*time.Millisecond, konamiKeys[:5]...)

	trig := pattern.KeySequence{Keys: konamiKeys}
	m := k.Match(trig, end)
	if m == nil {
		t.Fatal("Match returned nil for half-typed sequence")
	}
	if m.DiscoveredNow() {
		t.Error("half-typed sequence reported as discovered")
	}
	if m.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", m.Confidence)
	}
}

func TestKeyboardWrongKeysNoSignal(t *testing.T) {
	k := NewKeyboard()
	start := time.Now()
	end := feedKeys(k, start, 200*time.Millisecond, "x", "y", "z")

	trig := pattern.KeySequence{Keys: konamiKeys}
	if m := k.Match(trig, end); m != nil {
		t.Errorf("Match = %+v, want nil for unrelated keys", m)
	}
}

func TestKeyboardFinalModifiers(t *testing.T) {
	k := NewKeyboard()
	at := time.Now()
	k.Observe(pattern.KeyEvent(at, "g", false, false, false))
	k.Observe(pattern.KeyEvent(at.Add(100*time.Millisecond), "o", false, false, false))

	trig := pattern.KeySequence{
		Keys:           []string{"g", "o"},
		FinalModifiers: &pattern.Modifiers{Ctrl: true},
	}
	if m := k.Match(trig, at.Add(time.Second)); m != nil {
		t.Errorf("Match = %+v, want nil without required ctrl", m)
	}

	k.Reset()
	k.Observe(pattern.KeyEvent(at, "g", false, false, false))
	k.Observe(pattern.KeyEvent(at.Add(100*time.Millisecond), "o", false, true, false))
	m := k.Match(trig, at.Add(time.Second))
	if m == nil || !m.DiscoveredNow() {
		t.Errorf("Match = %+v, want discovery with ctrl held", m)
	}
}

func TestKeyboardBufferBounded(t *testing.T) {
	k := NewKeyboard()
	at := time.Now()
	for i := 0; i < keyBufferCap*2; i++ {
		k.Observe(pattern.KeyEvent(at.Add(time.Duration(i)*time.Millisecond), "x", false, false, false))
	}
	if len(k.keys) != keyBufferCap {
		t.Errorf("buffer length = %d, want %d", len(k.keys), keyBufferCap)
	}
}

func TestKeyboardIgnoresOtherEvents(t *testing.T) {
	k := NewKeyboard()
	k.Observe(pattern.MoveEvent(time.Now(), 1, 1))
	k.Observe(pattern.TickEvent(time.Now()))
	if len(k.keys) != 0 {
		t.Errorf("buffer length = %d, want 0", len(k.keys))
	}
}
