package components

import (
	"image/color"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/egghunt/internal/ui/theme"
)

// Toast is one transient notification.
type Toast struct {
	Title string
	Body  string
	Color color.Color
	Until time.Time
}

// ToastStack holds the currently visible toasts, newest last.
type ToastStack struct {
	toasts []Toast
	ttl    time.Duration
}

// NewToastStack creates a stack whose toasts live for ttl.
func NewToastStack(ttl time.Duration) ToastStack {
	if ttl <= 0 {
		ttl = 4 * time.Second
	}
	return ToastStack{ttl: ttl}
}

// Push adds a toast.
func (s *ToastStack) Push(title, body string, c color.Color, now time.Time) {
	s.toasts = append(s.toasts, Toast{
		Title: title,
		Body:  body,
		Color: c,
		Until: now.Add(s.ttl),
	})
}

// Expire drops toasts past their deadline. Returns true if any remain.
func (s *ToastStack) Expire(now time.Time) bool {
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if now.Before(t.Until) {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
	return len(s.toasts) > 0
}

// View renders the stack.
func (s ToastStack) View(width int) string {
	var out string
	for _, t := range s.toasts {
		title := lipgloss.NewStyle().Foreground(t.Color).Bold(true).Render(t.Title)
		body := lipgloss.NewStyle().Foreground(theme.Text).Render(t.Body)
		card := theme.Toast.BorderForeground(t.Color).MaxWidth(width)
		if out != "" {
			out += "\n"
		}
		out += card.Render(title + "\n" + body)
	}
	return out
}
