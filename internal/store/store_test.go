package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendDiscoveryEvent(ctx, DiscoveryEventData{
		ItemID: "konami-code", Name: "The Old Ways", Category: "sequence",
		Rarity: "legendary", SessionID: "sess-1", Confidence: 1,
	}); err != nil {
		t.Fatalf("append discovery: %v", err)
	}
	if err := repo.AppendHintEvent(ctx, HintEventData{
		ItemID: "night-owl", HintIndex: 0, HintText: "after midnight", SessionID: "sess-1",
	}); err != nil {
		t.Fatalf("append hint: %v", err)
	}

	discoveries, err := repo.QueryDiscoveryEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query discoveries: %v", err)
	}
	hints, err := repo.QueryHintEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query hints: %v", err)
	}
	if len(discoveries) != 1 || len(hints) != 1 {
		t.Fatalf("got %d discoveries, %d hints, want 1 and 1", len(discoveries), len(hints))
	}
	if hints[0].Sequence <= discoveries[0].Sequence {
		t.Errorf("hint sequence %d not after discovery sequence %d",
			hints[0].Sequence, discoveries[0].Sequence)
	}
}

func TestDiscoveryCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, rarity := range []string{"common", "common", "legendary"} {
		if err := repo.AppendDiscoveryEvent(ctx, DiscoveryEventData{
			ItemID: "egg-" + rarity, Name: "Egg", Category: "time",
			Rarity: rarity, SessionID: "sess-1", Confidence: 1,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byRarity, total, err := repo.DiscoveryCounts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if byRarity["common"] != 2 || byRarity["legendary"] != 1 {
		t.Errorf("byRarity = %v", byRarity)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest on empty store: %v", err)
	}
	if snap != nil {
		t.Fatalf("snapshot = %+v on empty store, want nil", snap)
	}

	saved := &Snapshot{
		Sequence:  7,
		Timestamp: time.Now(),
		Data: SnapshotData{
			Version: SnapshotVersion,
			Discovered: []DiscoveredEntry{
				{ItemID: "night-owl", DiscoveredAt: time.Now().UTC()},
			},
			NearMisses: map[string]int{"konami-code": 2},
		},
	}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("latest returned nil after save")
	}
	if got.Sequence != 7 {
		t.Errorf("Sequence = %d, want 7", got.Sequence)
	}
	if len(got.Data.Discovered) != 1 || got.Data.Discovered[0].ItemID != "night-owl" {
		t.Errorf("Discovered = %+v", got.Data.Discovered)
	}
	if got.Data.NearMisses["konami-code"] != 2 {
		t.Errorf("NearMisses = %v", got.Data.NearMisses)
	}
}

func TestSnapshotVersionMismatchFallsBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Write a snapshot with a future version directly through ent.
	_, err := s.Client().Snapshot.Create().
		SetSequence(1).
		SetTimestamp(time.Now()).
		SetData(map[string]any{"version": 99, "discovered": []any{"garbage"}}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	got, err := s.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("latest returned nil")
	}
	if len(got.Data.Discovered) != 0 {
		t.Errorf("Discovered = %+v, want empty state for unknown version", got.Data.Discovered)
	}
}

func TestSnapshotSaveStampsSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.EventRepo().AppendDiscoveryEvent(ctx, DiscoveryEventData{
		ItemID: "perfect-circle", Name: "Round Trip", Category: "interaction",
		Rarity: "rare", SessionID: "sess-1", Confidence: 1,
	}); err != nil {
		t.Fatalf("append discovery: %v", err)
	}
	events, err := s.EventRepo().QueryDiscoveryEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query discoveries: %v", err)
	}

	repo := s.SnapshotRepo()
	snap := &Snapshot{
		Timestamp: time.Now(),
		Data:      SnapshotData{Version: SnapshotVersion},
	}
	if err := repo.Save(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.Sequence == 0 {
		t.Error("snapshot sequence not stamped")
	}
	if got.Sequence <= events[0].Sequence {
		t.Errorf("snapshot sequence %d not after event sequence %d",
			got.Sequence, events[0].Sequence)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: SnapshotVersion},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	n, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("snapshots remaining = %d, want 2", n)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.Sequence != 4 {
		t.Errorf("latest after prune = %+v, want the newest snapshot", latest)
	}
}
