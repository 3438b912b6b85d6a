package catalog

import "github.com/abhisek/egghunt/internal/pattern"

// Category identifies the discovery category of an egg.
type Category string

const (
	CategorySequence    Category = "sequence"
	CategoryInteraction Category = "interaction"
	CategoryPerformance Category = "performance"
	CategoryTime        Category = "time"
	CategoryContextual  Category = "contextual"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategorySequence,
		CategoryInteraction,
		CategoryPerformance,
		CategoryTime,
		CategoryContextual,
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategorySequence:
		return "Sequence"
	case CategoryInteraction:
		return "Interaction"
	case CategoryPerformance:
		return "Performance"
	case CategoryTime:
		return "Time"
	case CategoryContextual:
		return "Contextual"
	default:
		return string(c)
	}
}

// Icon returns the display icon for the category.
func (c Category) Icon() string {
	switch c {
	case CategorySequence:
		return "⌨"
	case CategoryInteraction:
		return "🖱"
	case CategoryPerformance:
		return "⚡"
	case CategoryTime:
		return "⏳"
	case CategoryContextual:
		return "🔮"
	default:
		return "✦"
	}
}

// RewardKind selects how a discovery is surfaced.
type RewardKind string

const (
	RewardToast        RewardKind = "toast"
	RewardEffect       RewardKind = "effect"
	RewardNotification RewardKind = "notification"
)

// Reward describes what happens when an egg is discovered.
type Reward struct {
	Kind RewardKind
	// Effect names a celebration effect for RewardEffect ("confetti",
	// "sparkle", ...). Empty otherwise.
	Effect string
}

// Item is one discoverable egg. Items are immutable once registered; the
// engine only ever reads them.
type Item struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Rarity      Rarity
	Trigger     pattern.Trigger
	Reward      Reward
	// Hints are ordered from vague to revealing. The hint system walks
	// them front to back as near-misses accumulate.
	Hints []string
}

// Tier returns the item's fixed difficulty tier.
func (i Item) Tier() int {
	return i.Rarity.Tier(i.ID)
}
