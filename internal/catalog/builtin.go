package catalog

import (
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

// Builtin returns the stock egg catalog in registration order.
func Builtin() []Item {
	return []Item{
		{
			ID:          "konami-code",
			Name:        "The Old Ways",
			Description: "Some sequences never die.",
			Category:    CategorySequence,
			Rarity:      RarityLegendary,
			Trigger: pattern.KeySequence{
				Keys:        []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"},
				MaxInterval: 2 * time.Second,
				MaxTotal:    15 * time.Second,
			},
			Reward: Reward{Kind: RewardEffect, Effect: "confetti"},
			Hints: []string{
				"Thirty lives were once earned this way.",
				"It starts by looking up. Twice.",
				"Up up, down down, and you know the rest.",
			},
		},
		{
			ID:          "perfect-circle",
			Name:        "Perfect Circle",
			Description: "Drew a full circle with the pointer.",
			Category:    CategoryInteraction,
			Rarity:      RarityRare,
			Trigger: pattern.Gesture{
				Shape:     pattern.ShapeCircle,
				MinPoints: 24,
				MinRadius: 3,
				MaxRadius: 30,
				Tolerance: 0.35,
			},
			Reward: Reward{Kind: RewardToast},
			Hints: []string{
				"Giotto could do it freehand.",
				"Round and round the pointer goes.",
			},
		},
		{
			ID:          "golden-spiral",
			Name:        "Golden Spiral",
			Description: "Spiraled outward without breaking the curve.",
			Category:    CategoryInteraction,
			Rarity:      RarityRare,
			Trigger: pattern.Gesture{
				Shape:     pattern.ShapeSpiral,
				MinPoints: 40,
				MaxRadius: 40,
				Tolerance: 0.5,
			},
			Reward: Reward{Kind: RewardToast},
			Hints: []string{
				"Start small. Grow outward.",
			},
		},
		{
			ID:          "figure-eight",
			Name:        "Infinity and Beyond",
			Description: "Traced a figure-eight in one stroke.",
			Category:    CategoryInteraction,
			Rarity:      RarityLegendary,
			Trigger: pattern.Gesture{
				Shape:     pattern.ShapeFigure8,
				MinPoints: 48,
				MinRadius: 3,
				MaxRadius: 30,
				Tolerance: 0.4,
			},
			Reward: Reward{Kind: RewardEffect, Effect: "sparkle"},
			Hints: []string{
				"Two circles, one path.",
			},
		},
		{
			ID:          "drum-scroller",
			Name:        "Drummer's Wheel",
			Description: "Scrolled to the beat: short, short, long.",
			Category:    CategoryInteraction,
			Rarity:      RarityRare,
			Trigger: pattern.ScrollPattern{
				Mode: pattern.ScrollRhythm,
				Cadence: []time.Duration{
					400 * time.Millisecond,
					400 * time.Millisecond,
					800 * time.Millisecond,
				},
				CadenceTolerance: 0.35,
				Window:           10 * time.Second,
			},
			Reward: Reward{Kind: RewardToast},
			Hints: []string{
				"The wheel can keep time too.",
				"Short, short, long.",
			},
		},
		{
			ID:          "deep-diver",
			Name:        "Deep Diver",
			Description: "Scrolled a very long way in one sitting.",
			Category:    CategoryInteraction,
			Rarity:      RarityCommon,
			Trigger: pattern.ScrollPattern{
				Mode:     pattern.ScrollDistance,
				Distance: 500,
			},
			Reward: Reward{Kind: RewardToast},
			Hints: []string{
				"Keep going. Further down.",
			},
		},
		{
			ID:          "cant-decide",
			Name:        "Can't Decide",
			Description: "Reversed scroll direction a dozen times in a row.",
			Category:    CategoryInteraction,
			Rarity:      RarityCommon,
			Trigger: pattern.ScrollPattern{
				Mode:             pattern.ScrollDirections,
				DirectionChanges: 12,
				Window:           15 * time.Second,
			},
			Reward: Reward{Kind: RewardToast},
			Hints: []string{
				"Up? Down? Up? Down?",
			},
		},
		{
			ID:          "night-owl",
			Name:        "Night Owl",
			Description: "Here in the small hours.",
			Category:    CategoryContextual,
			Rarity:      RarityRare,
			Trigger: pattern.TimeWindow{
				Mode:      pattern.TimeClock,
				StartHour: 0,
				EndHour:   5,
			},
			Reward: Reward{Kind: RewardNotification},
			Hints: []string{
				"Some things only appear after midnight.",
			},
		},
		{
			ID:          "marathoner",
			Name:        "Marathoner",
			Description: "Stayed for half an hour straight.",
			Category:    CategoryTime,
			Rarity:      RarityCommon,
			Trigger: pattern.TimeWindow{
				Mode:     pattern.TimeElapsed,
				Duration: 30 * time.Minute,
			},
			Reward: Reward{Kind: RewardToast},
			Hints: []string{
				"Patience is its own reward.",
			},
		},
		{
			ID:          "zen-master",
			Name:        "Zen Master",
			Description: "Touched nothing for two whole minutes.",
			Category:    CategoryTime,
			Rarity:      RarityCommon,
			Trigger: pattern.TimeWindow{
				Mode:     pattern.TimeIdle,
				Duration: 2 * time.Minute,
			},
			Reward: Reward{Kind: RewardToast},
			Hints: []string{
				"Sometimes the move is not to move.",
			},
		},
		{
			ID:          "smooth-operator",
			Name:        "Smooth Operator",
			Description: "Held a high frame rate for ten seconds.",
			Category:    CategoryPerformance,
			Rarity:      RarityRare,
			Trigger: pattern.PerfThreshold{
				Metric:  pattern.MetricFPS,
				Min:     55,
				Sustain: 10 * time.Second,
			},
			Reward: Reward{Kind: RewardToast},
			Hints: []string{
				"A quiet machine runs fast.",
			},
		},
		{
			ID:          "featherweight",
			Name:        "Featherweight",
			Description: "Kept the heap tiny for a full minute.",
			Category:    CategoryPerformance,
			Rarity:      RarityLegendary,
			Trigger: pattern.PerfThreshold{
				Metric:  pattern.MetricHeap,
				Min:     0,
				Max:     24 << 20,
				Sustain: time.Minute,
			},
			Reward: Reward{Kind: RewardEffect, Effect: "sparkle"},
			Hints: []string{
				"Lightness is a discipline.",
			},
		},
	}
}
