package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/egghunt/internal/capture"
	"github.com/abhisek/egghunt/internal/device"
	"github.com/abhisek/egghunt/internal/engine"
	"github.com/abhisek/egghunt/internal/perfmon"
	"github.com/abhisek/egghunt/internal/router"
	"github.com/abhisek/egghunt/internal/screen"
	"github.com/abhisek/egghunt/internal/screens/hunt"
	"github.com/abhisek/egghunt/internal/screens/stats"
	"github.com/abhisek/egghunt/internal/screens/vault"
	"github.com/abhisek/egghunt/internal/store"
	"github.com/abhisek/egghunt/internal/ui/components"
	"github.com/abhisek/egghunt/internal/ui/theme"
)

var banner = []string{
	"╔═╗╔═╗╔═╗  ╦ ╦╦ ╦╔╗╔╔╦╗",
	"║╣ ║ ╦║ ╦  ╠═╣║ ║║║║ ║ ",
	"╚═╝╚═╝╚═╝  ╩ ╩╚═╝╝╚╝ ╩ ",
}

// Deps bundles what the home screen's children need.
type Deps struct {
	Engine        *engine.Engine
	Capture       *capture.Capture
	Monitor       *perfmon.Monitor
	Events        store.EventRepo
	Caps          device.Capabilities
	Notifications bool
}

// HomeScreen is the entry screen: a banner, the running tally, and the
// navigation menu.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "ENTER THE HUNT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: hunt.New(
					deps.Engine, deps.Capture, deps.Monitor, deps.Caps, deps.Notifications)}
			}
		}},
		{Label: "VAULT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: vault.New(deps.Engine)}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(deps.Events)}
			}
		}, Disabled: deps.Events == nil},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	art := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(strings.Join(banner, "\n"))
	sections = append(sections, art)

	sections = append(sections, theme.Subtitle.Render("somewhere in this terminal, things are hidden"))

	found := 0
	items := h.deps.Engine.Items()
	for _, item := range items {
		if h.deps.Engine.IsDiscovered(item.ID) {
			found++
		}
	}
	tally := theme.Hint.Render(tallyLine(found, len(items)))
	sections = append(sections, tally)

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func tallyLine(found, total int) string {
	if found == 0 {
		return "nothing found yet"
	}
	if found == total {
		return "every last egg found — well done"
	}
	return strings.Repeat("🥚", found) + strings.Repeat(" ·", total-found)
}
