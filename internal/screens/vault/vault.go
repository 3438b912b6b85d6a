package vault

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/egghunt/internal/catalog"
	"github.com/abhisek/egghunt/internal/engine"
	"github.com/abhisek/egghunt/internal/router"
	"github.com/abhisek/egghunt/internal/screen"
	"github.com/abhisek/egghunt/internal/ui/components"
	"github.com/abhisek/egghunt/internal/ui/layout"
	"github.com/abhisek/egghunt/internal/ui/theme"
)

// VaultScreen lists every registered egg: found ones in full, hidden ones
// as silhouettes with whatever hints have been earned.
type VaultScreen struct {
	eng          *engine.Engine
	search       components.Search
	selectedCat  int // index into catalog.AllCategories
	scrollOffset int
}

var _ screen.Screen = (*VaultScreen)(nil)
var _ screen.KeyHintProvider = (*VaultScreen)(nil)

// New creates a new VaultScreen.
func New(eng *engine.Engine) *VaultScreen {
	return &VaultScreen{
		eng:    eng,
		search: components.NewSearch("filter eggs"),
	}
}

func (s *VaultScreen) Init() tea.Cmd {
	return nil
}

func (s *VaultScreen) Title() string {
	return "Vault"
}

func (s *VaultScreen) KeyHints() []layout.KeyHint {
	if s.search.Active() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Category"},
		{Key: "/", Description: "Filter"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *VaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && s.search.Active() {
		switch kmsg.String() {
		case "esc":
			s.search.Deactivate()
			return s, nil
		case "enter":
			s.search.Model.Blur()
			return s, nil
		}
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		s.scrollOffset = 0
		return s, cmd
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			if s.search.Query() != "" {
				s.search.Deactivate()
				return s, nil
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "/":
			return s, s.search.Activate()
		case "tab":
			s.selectedCat = (s.selectedCat + 1) % (len(catalog.AllCategories()) + 1)
			s.scrollOffset = 0
		case "shift+tab":
			n := len(catalog.AllCategories()) + 1
			s.selectedCat = (s.selectedCat - 1 + n) % n
			s.scrollOffset = 0
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.filtered())-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *VaultScreen) View(width, height int) string {
	var b strings.Builder

	items := s.eng.Items()
	found := 0
	for _, item := range items {
		if s.eng.IsDiscovered(item.ID) {
			found++
		}
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\n%d of %d eggs found\n", found, len(items))))
	b.WriteString("\n")

	// Category tabs, with "All" first.
	var tabs []string
	labels := append([]string{"All"}, categoryLabels()...)
	for i, label := range labels {
		if i == s.selectedCat {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "    ")))
	b.WriteString("\n")

	if s.search.Active() || s.search.Query() != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.search.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	filtered := s.filtered()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Nothing here matches"))
		return b.String()
	}

	maxVisible := (height - 12) / 2
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	if start > len(filtered)-1 {
		start = len(filtered) - 1
	}
	end := start + maxVisible
	if end > len(filtered) {
		end = len(filtered)
	}

	for i := start; i < end; i++ {
		b.WriteString(s.renderItem(filtered[i], width))
	}

	if end < len(filtered) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(filtered)-end)))
	}

	return b.String()
}

// renderItem renders one two-line entry: found eggs in full, hidden ones
// as silhouettes plus any earned hints.
func (s *VaultScreen) renderItem(item catalog.Item, width int) string {
	var line, sub string

	if s.eng.IsDiscovered(item.ID) {
		color := theme.RarityColor(string(item.Rarity))
		line = lipgloss.NewStyle().Foreground(color).Bold(true).
			Render(fmt.Sprintf("%s %s", item.Category.Icon(), item.Name)) +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  · %s", item.Rarity.DisplayName()))
		sub = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + item.Description)
	} else {
		line = theme.Undiscovered.Render(fmt.Sprintf("? ??? · %s", item.Category.DisplayName()))
		hints := s.eng.HintsRevealed(item.ID)
		if len(hints) > 0 {
			sub = theme.Hint.Render("   " + hints[len(hints)-1].Text)
		} else {
			sub = theme.Undiscovered.Render("   no hints yet")
		}
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width-8, 60)).Render(line+"\n"+sub)) + "\n"
}

func (s *VaultScreen) filtered() []catalog.Item {
	var cat catalog.Category
	if s.selectedCat > 0 {
		cat = catalog.AllCategories()[s.selectedCat-1]
	}
	query := s.search.Query()

	var out []catalog.Item
	for _, item := range s.eng.Items() {
		if cat != "" && item.Category != cat {
			continue
		}
		if query != "" {
			discovered := s.eng.IsDiscovered(item.ID)
			name := "???"
			if discovered {
				name = strings.ToLower(item.Name)
			}
			if !strings.Contains(name, query) &&
				!strings.Contains(string(item.Category), query) {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

func categoryLabels() []string {
	cats := catalog.AllCategories()
	labels := make([]string, len(cats))
	for i, c := range cats {
		labels[i] = c.DisplayName()
	}
	return labels
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
