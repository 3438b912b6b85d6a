// Package hunt is the playground screen: every keystroke, pointer motion,
// and wheel step in here feeds the discovery engine.
package hunt

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/egghunt/internal/capture"
	"github.com/abhisek/egghunt/internal/device"
	"github.com/abhisek/egghunt/internal/engine"
	"github.com/abhisek/egghunt/internal/pattern"
	"github.com/abhisek/egghunt/internal/perfmon"
	"github.com/abhisek/egghunt/internal/router"
	"github.com/abhisek/egghunt/internal/screen"
	"github.com/abhisek/egghunt/internal/ui/components"
	"github.com/abhisek/egghunt/internal/ui/layout"
	"github.com/abhisek/egghunt/internal/ui/theme"
)

const (
	tickInterval     = time.Second
	perfInterval     = 2 * time.Second
	celebrationTicks = 4
)

// TickMsg drives idle detection, toast expiry, and the celebration
// animation.
type TickMsg time.Time

// perfTickMsg closes one performance sampling interval.
type perfTickMsg time.Time

// HuntScreen hosts a live hunt session.
type HuntScreen struct {
	eng           *engine.Engine
	cap           *capture.Capture
	mon           *perfmon.Monitor
	caps          device.Capabilities
	notifications bool

	toasts      components.ToastStack
	celebration components.Celebration
	found       []engine.Discovery
}

var _ screen.Screen = (*HuntScreen)(nil)

// New creates the hunt screen and starts a session on the engine.
func New(eng *engine.Engine, cap *capture.Capture, mon *perfmon.Monitor, caps device.Capabilities, notifications bool) *HuntScreen {
	eng.Start(context.Background())
	return &HuntScreen{
		eng:           eng,
		cap:           cap,
		mon:           mon,
		caps:          caps,
		notifications: notifications,
		toasts:        components.NewToastStack(4 * time.Second),
	}
}

// Init starts the tick loops. Mouse reporting is requested by the app's
// View while this screen is active.
func (h *HuntScreen) Init() tea.Cmd {
	return tea.Batch(tickCmd(), perfTickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func perfTickCmd() tea.Cmd {
	return tea.Tick(perfInterval, func(t time.Time) tea.Msg { return perfTickMsg(t) })
}

func (h *HuntScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		now := time.Time(msg)
		h.toasts.Expire(now)
		h.celebration = h.celebration.Advance()
		out := h.eng.HandleEvent(context.Background(), pattern.TickEvent(now))
		h.apply(out, now)
		return h, tickCmd()

	case perfTickMsg:
		if h.mon != nil {
			if ev, ok := h.mon.Sample(); ok {
				out := h.eng.HandleEvent(context.Background(), ev)
				h.apply(out, ev.At)
			}
		}
		return h, perfTickCmd()
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "esc" {
		h.Close()
		return h, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if ev, ok := h.cap.Translate(msg); ok {
		out := h.eng.HandleEvent(context.Background(), ev)
		h.apply(out, ev.At)
	}
	return h, nil
}

// apply folds one engine outcome into the screen state.
func (h *HuntScreen) apply(out engine.Outcome, now time.Time) {
	for _, d := range out.Discoveries {
		h.found = append(h.found, d)
		h.celebration = components.StartCelebration(
			fmt.Sprintf("%s found!", d.Name), celebrationTicks, h.caps.ReducedMotion)
		if h.notifications {
			h.toasts.Push(
				fmt.Sprintf("%s %s", d.Icon, d.Name),
				fmt.Sprintf("%s · %s", d.Rarity.DisplayName(), d.Description),
				theme.RarityColor(string(d.Rarity)), now)
		}
	}
	for _, hint := range out.Hints {
		if h.notifications {
			h.toasts.Push("A whisper...", hint.Text, theme.TextDim, now)
		}
	}
}

func (h *HuntScreen) View(width, height int) string {
	if h.mon != nil {
		h.mon.Frame()
	}

	var sections []string

	intro := theme.Subtitle.Width(width).Render(
		"This room keeps secrets.\nKeys, motion, rhythm, patience — something here rewards each of them.")
	sections = append(sections, intro)

	meterWidth := width / 2
	if meterWidth < 20 {
		meterWidth = 20
	}
	meter := components.Meter{
		Label:   "warmth",
		Percent: h.eng.Warmth(),
		Hot:     0.7,
		Width:   meterWidth,
	}
	sections = append(sections, center(meter.View(), width))

	tally := theme.Hint.Render(fmt.Sprintf(
		"%d found this session · %d events observed",
		len(h.found), h.eng.EventsSeen()))
	sections = append(sections, center(tally, width))

	if h.celebration.Active() {
		sections = append(sections, "", h.celebration.View(width))
	}

	if toasts := h.toasts.View(width); toasts != "" {
		sections = append(sections, "", toasts)
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HuntScreen) Title() string {
	return "Hunt"
}

// Close ends the hunt session. The app calls this when the screen is
// popped or the program quits.
func (h *HuntScreen) Close() {
	h.eng.Stop(context.Background())
}

// KeyHints implements screen.KeyHintProvider. Deliberately vague: spelling
// out the inputs would spoil the eggs.
func (h *HuntScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "...", Description: "Experiment"},
		{Key: "Esc", Description: "Back"},
	}
}

func center(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}
