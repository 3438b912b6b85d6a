package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/egghunt/internal/catalog"
	"github.com/abhisek/egghunt/internal/router"
	"github.com/abhisek/egghunt/internal/screen"
	"github.com/abhisek/egghunt/internal/store"
	"github.com/abhisek/egghunt/internal/ui/layout"
	"github.com/abhisek/egghunt/internal/ui/theme"
)

type statsLoadedMsg struct {
	Discoveries []store.DiscoveryEventRecord
	ByRarity    map[string]int
	Total       int
	Sessions    []store.SessionSummaryRecord
	Err         error
}

// StatsScreen shows discovery totals and past hunt sessions.
type StatsScreen struct {
	eventRepo   store.EventRepo
	discoveries []store.DiscoveryEventRecord
	byRarity    map[string]int
	total       int
	sessions    []store.SessionSummaryRecord
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{eventRepo: eventRepo}
}

func (s *StatsScreen) Init() tea.Cmd {
	if s.eventRepo == nil {
		return func() tea.Msg { return statsLoadedMsg{ByRarity: map[string]int{}} }
	}
	return func() tea.Msg {
		ctx := context.Background()

		byRarity, total, err := s.eventRepo.DiscoveryCounts(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		discoveries, err := s.eventRepo.QueryDiscoveryEvents(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		sessions, err := s.eventRepo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		return statsLoadedMsg{
			Discoveries: discoveries,
			ByRarity:    byRarity,
			Total:       total,
			Sessions:    sessions,
		}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.discoveries = msg.Discoveries
			s.byRarity = msg.ByRarity
			s.total = msg.Total
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nTotal discoveries: %d\n", s.total)))
	b.WriteString("\n")

	// Per-rarity tallies.
	var parts []string
	for _, r := range catalog.AllRarities() {
		label := fmt.Sprintf("%s %d", r.DisplayName(), s.byRarity[string(r)])
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.RarityColor(string(r))).Render(label))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, "     ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Recent finds")))
	b.WriteString("\n")
	if len(s.discoveries) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Nothing found yet — go hunt"))
		b.WriteString("\n")
	}
	for _, d := range s.discoveries {
		line := fmt.Sprintf("  %-10s %-26s %s",
			catalog.Rarity(d.Rarity).DisplayName(), d.Name,
			d.Timestamp.Format("Jan 02, 2006"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.RarityColor(d.Rarity)).Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Recent sessions")))
	b.WriteString("\n")
	for _, sess := range s.sessions {
		dur := time.Duration(sess.DurationSecs) * time.Second
		line := fmt.Sprintf("  %s   %4d events   %2d found   %s",
			sess.Timestamp.Format("Jan 02 15:04"), sess.EventsSeen,
			sess.Discoveries, dur.Truncate(time.Second))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
