package pattern

import "time"

// Confidence bands shared by all recognizers.
const (
	// NoSignal is the floor below which a partial match is discarded.
	NoSignal = 0.3
	// Discovered is the confidence at which an item is discovered.
	Discovered = 1.0
)

// Match is a recognizer's verdict on one item's trigger against recent
// input history.
type Match struct {
	// ItemID is set by the engine when it stores the match as progress.
	ItemID string
	// Confidence is in [0, 1]; >= Discovered means "discovered now".
	Confidence float64
	// Progress is a short human-readable state, e.g. "7/10 keys".
	Progress string
	// WindowStart and WindowEnd bound the contributing input.
	WindowStart time.Time
	WindowEnd   time.Time
	// Events is the number of input events that contributed.
	Events int
}

// Discovered reports whether the match completes its trigger.
func (m *Match) DiscoveredNow() bool {
	return m != nil && m.Confidence >= Discovered
}

// Reportable reports whether the match carries enough signal to store as
// partial progress.
func (m *Match) Reportable() bool {
	return m != nil && m.Confidence > NoSignal
}
