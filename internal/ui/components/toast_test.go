package components

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/egghunt/internal/ui/theme"
)

func TestToastStackPushAndView(t *testing.T) {
	s := NewToastStack(2 * time.Second)
	now := time.Now()

	s.Push("🥚 Konami Code", "Legendary · The classic", theme.RarityColor("legendary"), now)
	s.Push("A whisper...", "Try drawing something round", theme.TextDim, now)

	view := s.View(80)
	if !strings.Contains(view, "Konami Code") {
		t.Errorf("View missing discovery toast:\n%s", view)
	}
	if !strings.Contains(view, "A whisper...") {
		t.Errorf("View missing hint toast:\n%s", view)
	}
}

func TestToastStackExpire(t *testing.T) {
	s := NewToastStack(2 * time.Second)
	now := time.Now()

	s.Push("first", "", theme.TextDim, now)
	s.Push("second", "", theme.TextDim, now.Add(time.Second))

	if remaining := s.Expire(now.Add(2500 * time.Millisecond)); !remaining {
		t.Error("second toast expired too early")
	}
	if strings.Contains(s.View(80), "first") {
		t.Error("first toast survived past its deadline")
	}
	if remaining := s.Expire(now.Add(4 * time.Second)); remaining {
		t.Error("all toasts should be gone")
	}
}
