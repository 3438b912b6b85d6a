package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/egghunt/internal/ui/theme"
)

// confettiFrames cycle while a celebration runs.
var confettiFrames = []string{
	"  ✦ · ✧ ·  ✦   · ✧  ",
	" · ✧  ✦  · ✧ · ✦  · ",
	"✧ ·  · ✦ ✧ ·  ✦ · ✧ ",
	" ✦ ✧ · ·  ✦ · ✧  ✦ ·",
}

// Celebration is the short burst shown when an egg is found. With reduced
// motion it renders a single static line instead of animating.
type Celebration struct {
	Message       string
	ReducedMotion bool

	frame     int
	ticksLeft int
}

// StartCelebration begins a celebration lasting the given number of ticks.
func StartCelebration(message string, ticks int, reducedMotion bool) Celebration {
	if reducedMotion {
		ticks = 1
	}
	return Celebration{
		Message:       message,
		ReducedMotion: reducedMotion,
		ticksLeft:     ticks,
	}
}

// Active reports whether the celebration is still showing.
func (c Celebration) Active() bool {
	return c.ticksLeft > 0
}

// Advance moves to the next animation frame. Reduced-motion celebrations
// hold their single frame until dismissed by the caller.
func (c Celebration) Advance() Celebration {
	if c.ReducedMotion {
		return c
	}
	if c.ticksLeft > 0 {
		c.ticksLeft--
		c.frame = (c.frame + 1) % len(confettiFrames)
	}
	return c
}

// Dismiss ends the celebration.
func (c Celebration) Dismiss() Celebration {
	c.ticksLeft = 0
	return c
}

// View renders the celebration centered in the given width.
func (c Celebration) View(width int) string {
	if !c.Active() {
		return ""
	}

	msg := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("🎉 " + c.Message + " 🎉")

	if c.ReducedMotion {
		return center(msg, width)
	}

	sparkle := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(confettiFrames[c.frame])

	return center(sparkle, width) + "\n" + center(msg, width) + "\n" + center(sparkle, width)
}

func center(s string, width int) string {
	gap := (width - lipgloss.Width(s)) / 2
	if gap < 0 {
		gap = 0
	}
	return strings.Repeat(" ", gap) + s
}
