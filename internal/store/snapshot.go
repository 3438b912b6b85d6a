package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/egghunt/ent"
	"github.com/abhisek/egghunt/ent/snapshot"
)

// SnapshotVersion is the current snapshot data format version. Snapshots
// carrying a different version are ignored on load.
const SnapshotVersion = 1

// DiscoveredEntry records one discovered egg inside a snapshot.
type DiscoveredEntry struct {
	ItemID       string    `json:"item_id"`
	DiscoveredAt time.Time `json:"discovered_at"`
}

// SnapshotData captures the full discovery state at a point in time.
type SnapshotData struct {
	Version    int               `json:"version"`
	Discovered []DiscoveredEntry `json:"discovered"`
	NearMisses map[string]int    `json:"near_misses,omitempty"`
	HintsShown map[string]int    `json:"hints_shown,omitempty"`
}

// Snapshot represents a point-in-time capture of discovery state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages discovery-state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot. A zero Sequence is stamped from the
	// shared event sequence, so "events after this snapshot" queries can
	// compare against it.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	if snap.Sequence == 0 && r.seq != nil {
		seq, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("snapshot sequence: %w", err)
		}
		snap.Sequence = seq
	}

	dataMap, err := snapshotDataToMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return entSnapshotToSnapshot(s)
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Collect IDs outside the newest keep. Deleting by ID avoids timestamp
	// comparisons, which lose precision round-tripping through SQLite.
	stale, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp), ent.Desc(snapshot.FieldID)).
		Offset(keep).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(stale) == 0 {
		return nil // fewer than keep snapshots exist
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.IDIn(stale...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// snapshotDataToMap converts SnapshotData to map[string]any for ent JSON
// storage.
func snapshotDataToMap(data SnapshotData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSnapshotToSnapshot converts an ent Snapshot to a store Snapshot.
// Malformed or version-mismatched data degrades to an empty state rather
// than failing the load.
func entSnapshotToSnapshot(s *ent.Snapshot) (*Snapshot, error) {
	snap := &Snapshot{
		ID:        s.ID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
	}

	b, err := json.Marshal(s.Data)
	if err != nil {
		snap.Data = SnapshotData{Version: SnapshotVersion}
		return snap, nil
	}
	var data SnapshotData
	if err := json.Unmarshal(b, &data); err != nil || data.Version != SnapshotVersion {
		snap.Data = SnapshotData{Version: SnapshotVersion}
		return snap, nil
	}
	snap.Data = data
	return snap, nil
}
