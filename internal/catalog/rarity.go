package catalog

import "hash/fnv"

// Rarity represents how hard an egg is meant to be to find.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityLegendary}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// MaxTier is the hardest difficulty tier.
const MaxTier = 5

// Tier maps the rarity to a difficulty tier in [1, MaxTier]. Within a
// rarity's band the tier is picked by hashing the item ID, so the same item
// always lands on the same tier across sessions.
func (r Rarity) Tier(itemID string) int {
	h := fnv.New32a()
	h.Write([]byte(itemID))
	bit := int(h.Sum32() & 1)

	switch r {
	case RarityCommon:
		return 1 + bit
	case RarityRare:
		return 3 + bit
	case RarityLegendary:
		return MaxTier
	default:
		return 1
	}
}

// HintsAllowed reports whether the tier participates in the hint system.
// The two hardest tiers never get hints.
func HintsAllowed(tier int) bool {
	return tier <= MaxTier-2
}

// NearMissesPerHint returns how many near-misses must accumulate before the
// next hint is released, scaling with difficulty.
func NearMissesPerHint(tier int) int {
	return tier + 1
}
