package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/egghunt/internal/ui/theme"
)

// Search wraps bubbles/textinput as an inline filter field.
type Search struct {
	Model  textinput.Model
	active bool
}

// NewSearch creates a styled, initially inactive search field.
func NewSearch(placeholder string) Search {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 40
	return Search{Model: ti}
}

// Activate focuses the field.
func (s *Search) Activate() tea.Cmd {
	s.active = true
	return s.Model.Focus()
}

// Deactivate blurs the field and clears the query.
func (s *Search) Deactivate() {
	s.active = false
	s.Model.Blur()
	s.Model.SetValue("")
}

// Active reports whether the field currently captures keystrokes.
func (s Search) Active() bool {
	return s.active
}

// Update handles messages while active.
func (s Search) Update(msg tea.Msg) (Search, tea.Cmd) {
	if !s.active {
		return s, nil
	}
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// Query returns the lowercased filter text.
func (s Search) Query() string {
	return strings.ToLower(strings.TrimSpace(s.Model.Value()))
}

// View renders the field with a leading slash, matching how it is opened.
func (s Search) View() string {
	if !s.active {
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("/") + s.Model.View()
}
