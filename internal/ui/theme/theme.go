package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — night-sky tones, discoveries glow against them
var (
	Primary   = lipgloss.Color("#A78BFA") // Soft Violet
	Secondary = lipgloss.Color("#34D399") // Emerald
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1120") // Near Black
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Rarity colors
var (
	Common    = lipgloss.Color("#94A3B8") // Slate
	Rare      = lipgloss.Color("#60A5FA") // Blue
	Legendary = lipgloss.Color("#FBBF24") // Amber
)

// RarityColor maps a rarity name to its color. Unknown names render dim.
func RarityColor(rarity string) color.Color {
	switch rarity {
	case "common":
		return Common
	case "rare":
		return Rare
	case "legendary":
		return Legendary
	default:
		return TextDim
	}
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Discovered = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Undiscovered = lipgloss.NewStyle().
			Foreground(TextDim)
)

// Components
var (
	MeterFilled = lipgloss.NewStyle().
			Background(Secondary)

	MeterHot = lipgloss.NewStyle().
			Background(Accent)

	MeterEmpty = lipgloss.NewStyle().
			Background(Border)

	Toast = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
)
