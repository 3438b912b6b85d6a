package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/egghunt/internal/ui/theme"
)

// Meter displays a horizontal fill bar. Above the hot threshold the fill
// switches color, which the hunt screen uses to signal "very close".
type Meter struct {
	Label       string
	Percent     float64
	Hot         float64
	ShowPercent bool
	Width       int
}

// NewMeter creates a meter with no hot zone.
func NewMeter(label string, percent float64, showPercent bool, width int) Meter {
	return Meter{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the meter.
func (m Meter) View() string {
	var result string

	if m.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(m.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if m.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := m.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * m.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fillStyle := theme.MeterFilled
	if m.Hot > 0 && m.Percent >= m.Hot {
		fillStyle = theme.MeterHot
	}

	result += fillStyle.Render(strings.Repeat(" ", filled))
	result += theme.MeterEmpty.Render(strings.Repeat(" ", empty))

	if m.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(m.Percent*100)))
	}

	return result
}
