package store

import (
	"context"
	"time"

	"github.com/abhisek/egghunt/ent"
)

// DiscoveryEventData captures one egg discovery for persistence.
type DiscoveryEventData struct {
	ItemID     string
	Name       string
	Category   string
	Rarity     string
	SessionID  string
	Confidence float64
	NearMisses int
}

// DiscoveryEventRecord is a read-model row for a discovery.
type DiscoveryEventRecord struct {
	ItemID     string
	Name       string
	Category   string
	Rarity     string
	SessionID  string
	Confidence float64
	NearMisses int
	Sequence   int64
	Timestamp  time.Time
}

// HintEventData captures one hint release for persistence.
type HintEventData struct {
	ItemID    string
	HintIndex int
	HintText  string
	SessionID string
}

// HintEventRecord is a read-model row for a released hint.
type HintEventRecord struct {
	ItemID    string
	HintIndex int
	HintText  string
	SessionID string
	Sequence  int64
	Timestamp time.Time
}

// SessionEventData captures a hunt lifecycle event for persistence.
type SessionEventData struct {
	SessionID    string
	Action       string
	EventsSeen   int
	Discoveries  int
	DurationSecs int
}

// SessionSummaryRecord aggregates one completed hunt session.
type SessionSummaryRecord struct {
	SessionID    string
	Timestamp    time.Time
	EventsSeen   int
	Discoveries  int
	DurationSecs int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendDiscoveryEvent records an egg discovery.
	AppendDiscoveryEvent(ctx context.Context, data DiscoveryEventData) error

	// QueryDiscoveryEvents returns discoveries, newest first.
	QueryDiscoveryEvents(ctx context.Context, opts QueryOpts) ([]DiscoveryEventRecord, error)

	// DiscoveryCounts returns per-rarity discovery counts and the total.
	DiscoveryCounts(ctx context.Context) (map[string]int, int, error)

	// AppendHintEvent records a released hint.
	AppendHintEvent(ctx context.Context, data HintEventData) error

	// QueryHintEvents returns released hints, newest first.
	QueryHintEvents(ctx context.Context, opts QueryOpts) ([]HintEventRecord, error)

	// AppendSessionEvent records a hunt lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessionSummaries returns completed sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)
}

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}
