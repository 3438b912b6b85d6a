package engine

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/abhisek/egghunt/internal/catalog"
	"github.com/abhisek/egghunt/internal/pattern"
	"github.com/abhisek/egghunt/internal/store"
)

type fakeEventRepo struct {
	discoveries []store.DiscoveryEventData
	hints       []store.HintEventData
	sessions    []store.SessionEventData
}

func (f *fakeEventRepo) AppendDiscoveryEvent(_ context.Context, data store.DiscoveryEventData) error {
	f.discoveries = append(f.discoveries, data)
	return nil
}

func (f *fakeEventRepo) QueryDiscoveryEvents(context.Context, store.QueryOpts) ([]store.DiscoveryEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) DiscoveryCounts(context.Context) (map[string]int, int, error) {
	return nil, len(f.discoveries), nil
}

func (f *fakeEventRepo) AppendHintEvent(_ context.Context, data store.HintEventData) error {
	f.hints = append(f.hints, data)
	return nil
}

func (f *fakeEventRepo) QueryHintEvents(context.Context, store.QueryOpts) ([]store.HintEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	f.sessions = append(f.sessions, data)
	return nil
}

func (f *fakeEventRepo) QuerySessionSummaries(context.Context, store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}

type fakeSnapshotRepo struct {
	saved  []*store.Snapshot
	latest *store.Snapshot
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	f.saved = append(f.saved, snap)
	f.latest = snap
	return nil
}

func (f *fakeSnapshotRepo) Latest(context.Context) (*store.Snapshot, error) {
	return f.latest, nil
}

func (f *fakeSnapshotRepo) Prune(context.Context, int) error {
	return nil
}

type recordSink struct {
	discoveries []Discovery
	hints       []Hint
}

func (s *recordSink) ItemDiscovered(d Discovery) { s.discoveries = append(s.discoveries, d) }
func (s *recordSink) HintRevealed(h Hint)        { s.hints = append(s.hints, h) }

func konamiItem() catalog.Item {
	return catalog.Item{
		ID:       "konami-code",
		Name:     "The Old Ways",
		Category: catalog.CategorySequence,
		Rarity:   catalog.RarityLegendary,
		Trigger: pattern.KeySequence{
			Keys:        []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"},
			MaxInterval: 2 * time.Second,
			MaxTotal:    15 * time.Second,
		},
	}
}

func scrollItem(rarity catalog.Rarity, hints ...string) catalog.Item {
	return catalog.Item{
		ID:       "deep-scroller",
		Name:     "Deep Scroller",
		Category: catalog.CategoryInteraction,
		Rarity:   rarity,
		Trigger: pattern.ScrollPattern{
			Mode:     pattern.ScrollDistance,
			Distance: 100,
			Window:   2 * time.Second,
		},
		Hints: hints,
	}
}

func startedEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	e, err := New(opts)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	e.Start(context.Background())
	return e
}

func feedKeys(e *Engine, at time.Time, gap time.Duration, codes ...string) (Outcome, time.Time) {
	var last Outcome
	for _, code := range codes {
		last = e.HandleEvent(context.Background(), pattern.KeyEvent(at, code, false, false, false))
		at = at.Add(gap)
	}
	return last, at
}

func TestRegisterDuplicateFails(t *testing.T) {
	e, err := New(Options{})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if err := e.Register(konamiItem()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := e.Register(konamiItem()); err == nil {
		t.Fatal("duplicate register succeeded, want error")
	}
}

func TestReplaceKeepsOrder(t *testing.T) {
	e, err := New(Options{Items: []catalog.Item{konamiItem(), scrollItem(catalog.RarityCommon)}})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	updated := konamiItem()
	updated.Name = "Renamed"
	if err := e.Replace(updated); err != nil {
		t.Fatalf("replace: %v", err)
	}

	items := e.Items()
	if items[0].ID != "konami-code" || items[0].Name != "Renamed" {
		t.Errorf("items[0] = %q/%q, want konami-code/Renamed", items[0].ID, items[0].Name)
	}

	if err := e.Replace(catalog.Item{ID: "never-registered"}); err == nil {
		t.Error("replace of unknown item succeeded, want error")
	}
}

func TestInactiveEngineIgnoresEvents(t *testing.T) {
	e, err := New(Options{Items: []catalog.Item{konamiItem()}})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out := e.HandleEvent(context.Background(), pattern.KeyEvent(time.Now(), "up", false, false, false))
	if len(out.Discoveries) != 0 || len(out.Hints) != 0 {
		t.Errorf("outcome = %+v, want empty before Start", out)
	}
	if e.EventsSeen() != 0 {
		t.Errorf("EventsSeen = %d, want 0", e.EventsSeen())
	}
}

func TestKonamiDiscovery(t *testing.T) {
	sink := &recordSink{}
	e := startedEngine(t, Options{Items: []catalog.Item{konamiItem()}, Sink: sink})

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	out, _ := feedKeys(e, base, 100*time.Millisecond,
		"up", "up", "down", "down", "left", "right", "left", "right", "b", "a")

	if len(out.Discoveries) != 1 {
		t.Fatalf("discoveries = %d, want 1", len(out.Discoveries))
	}
	d := out.Discoveries[0]
	if d.ItemID != "konami-code" || d.Rarity != catalog.RarityLegendary {
		t.Errorf("discovery = %+v", d)
	}
	if !e.IsDiscovered("konami-code") {
		t.Error("IsDiscovered = false after discovery")
	}
	if len(sink.discoveries) != 1 {
		t.Errorf("sink discoveries = %d, want 1", len(sink.discoveries))
	}
}

func TestWrongSequenceNoDiscovery(t *testing.T) {
	e := startedEngine(t, Options{Items: []catalog.Item{konamiItem()}})

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	out, _ := feedKeys(e, base, 100*time.Millisecond,
		"up", "up", "down", "down", "left", "right", "left", "right", "a", "b")

	if len(out.Discoveries) != 0 {
		t.Fatalf("discoveries = %d for wrong final keys, want 0", len(out.Discoveries))
	}
	if e.IsDiscovered("konami-code") {
		t.Error("IsDiscovered = true for wrong sequence")
	}
}

func TestDiscoveryIsPermanent(t *testing.T) {
	sink := &recordSink{}
	e := startedEngine(t, Options{Items: []catalog.Item{konamiItem()}, Sink: sink})

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	codes := []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"}
	_, next := feedKeys(e, base, 100*time.Millisecond, codes...)
	feedKeys(e, next.Add(time.Minute), 100*time.Millisecond, codes...)

	if len(sink.discoveries) != 1 {
		t.Errorf("sink discoveries = %d after replaying the sequence, want 1", len(sink.discoveries))
	}
	if len(e.Discovered()) != 1 {
		t.Errorf("Discovered() = %d entries, want 1", len(e.Discovered()))
	}
}

func TestCircleGestureDiscovery(t *testing.T) {
	item := catalog.Item{
		ID:       "perfect-circle",
		Name:     "Perfect Circle",
		Category: catalog.CategoryInteraction,
		Rarity:   catalog.RarityRare,
		Trigger: pattern.Gesture{
			Shape:     pattern.ShapeCircle,
			MinPoints: 20,
			MinRadius: 5,
			MaxRadius: 20,
			Tolerance: 0.25,
		},
	}
	e := startedEngine(t, Options{Items: []catalog.Item{item}})

	// A loop and a half around (50, 50): full angular coverage with a
	// steady radius.
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	var out Outcome
	for i := 0; i < 54; i++ {
		angle := 2 * math.Pi * float64(i) / 36
		ev := pattern.MoveEvent(base.Add(time.Duration(i)*20*time.Millisecond),
			50+10*math.Cos(angle), 50+10*math.Sin(angle))
		o := e.HandleEvent(context.Background(), ev)
		if len(o.Discoveries) > 0 {
			out = o
		}
	}

	if len(out.Discoveries) != 1 {
		t.Fatalf("no discovery after tracing a clean circle")
	}
	if out.Discoveries[0].ItemID != "perfect-circle" {
		t.Errorf("discovered %q, want perfect-circle", out.Discoveries[0].ItemID)
	}
}

func TestNearMissesReleaseHints(t *testing.T) {
	item := scrollItem(catalog.RarityCommon, "try scrolling", "a long way down")
	sink := &recordSink{}
	e := startedEngine(t, Options{Items: []catalog.Item{item}, Sink: sink})

	need := catalog.NearMissesPerHint(item.Tier())

	// Each attempt lands well past the pattern timeout, so every 75%
	// scroll is a fresh near miss.
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	var hintAt []int
	for attempt := 1; attempt <= 4*need; attempt++ {
		at := base.Add(time.Duration(attempt) * time.Minute)
		out := e.HandleEvent(context.Background(), pattern.ScrollEvent(at, 75, float64(attempt)*75))
		if len(out.Hints) > 0 {
			hintAt = append(hintAt, attempt)
		}
	}

	if len(sink.hints) != 2 {
		t.Fatalf("hints released = %d, want 2 (item has 2 hints)", len(sink.hints))
	}
	if hintAt[0] != need || hintAt[1] != 2*need {
		t.Errorf("hints released at attempts %v, want [%d %d]", hintAt, need, 2*need)
	}
	if sink.hints[0].Text != "try scrolling" || sink.hints[1].Text != "a long way down" {
		t.Errorf("hint texts = %q, %q", sink.hints[0].Text, sink.hints[1].Text)
	}

	revealed := e.HintsRevealed(item.ID)
	if len(revealed) != 2 {
		t.Errorf("HintsRevealed = %d entries, want 2", len(revealed))
	}
}

func TestHardTiersGetNoHints(t *testing.T) {
	item := scrollItem(catalog.RarityLegendary, "never shown")
	sink := &recordSink{}
	e := startedEngine(t, Options{Items: []catalog.Item{item}, Sink: sink})

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	for attempt := 1; attempt <= 20; attempt++ {
		at := base.Add(time.Duration(attempt) * time.Minute)
		e.HandleEvent(context.Background(), pattern.ScrollEvent(at, 75, float64(attempt)*75))
	}

	if len(sink.hints) != 0 {
		t.Errorf("hints released = %d for a legendary egg, want 0", len(sink.hints))
	}
}

func TestProgressExpires(t *testing.T) {
	e := startedEngine(t, Options{Items: []catalog.Item{scrollItem(catalog.RarityCommon)}})

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	e.HandleEvent(context.Background(), pattern.ScrollEvent(base, 50, 50))
	if w := e.Warmth(); w < 0.49 || w > 0.51 {
		t.Fatalf("warmth = %v after half the distance, want ~0.5", w)
	}

	e.HandleEvent(context.Background(), pattern.TickEvent(base.Add(31*time.Second)))
	if w := e.Warmth(); w != 0 {
		t.Errorf("warmth = %v after pattern timeout, want 0", w)
	}
}

func TestSessionLifecyclePersisted(t *testing.T) {
	events := &fakeEventRepo{}
	snaps := &fakeSnapshotRepo{}
	e := startedEngine(t, Options{
		Items:     []catalog.Item{konamiItem()},
		Events:    events,
		Snapshots: snaps,
	})

	first := e.SessionID()
	if first == "" {
		t.Fatal("empty session id while active")
	}
	e.Start(context.Background())
	if e.SessionID() != first {
		t.Error("Start while active changed the session id")
	}

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	feedKeys(e, base, 100*time.Millisecond,
		"up", "up", "down", "down", "left", "right", "left", "right", "b", "a")

	e.Stop(context.Background())
	e.Stop(context.Background())

	if len(events.sessions) != 2 {
		t.Fatalf("session events = %d, want start and end", len(events.sessions))
	}
	if events.sessions[0].Action != "start" || events.sessions[1].Action != "end" {
		t.Errorf("session actions = %q, %q", events.sessions[0].Action, events.sessions[1].Action)
	}
	if events.sessions[1].EventsSeen != 10 {
		t.Errorf("EventsSeen = %d, want 10", events.sessions[1].EventsSeen)
	}

	if len(events.discoveries) != 1 || events.discoveries[0].ItemID != "konami-code" {
		t.Errorf("discovery events = %+v", events.discoveries)
	}
	if len(snaps.saved) == 0 {
		t.Fatal("no snapshot saved on discovery")
	}
	last := snaps.latest.Data
	if last.Version != store.SnapshotVersion || len(last.Discovered) != 1 {
		t.Errorf("snapshot data = %+v", last)
	}
}

func TestLoadStateRestoresDiscoveries(t *testing.T) {
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	snaps := &fakeSnapshotRepo{latest: &store.Snapshot{
		Timestamp: at,
		Data: store.SnapshotData{
			Version: store.SnapshotVersion,
			Discovered: []store.DiscoveredEntry{
				{ItemID: "konami-code", DiscoveredAt: at},
			},
			HintsShown: map[string]int{"deep-scroller": 1},
		},
	}}

	e, err := New(Options{
		Items:     []catalog.Item{konamiItem(), scrollItem(catalog.RarityCommon, "try scrolling")},
		Snapshots: snaps,
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	e.LoadState(context.Background())

	if !e.IsDiscovered("konami-code") {
		t.Error("konami-code not restored from snapshot")
	}
	if got := e.HintsRevealed("deep-scroller"); len(got) != 1 || got[0].Text != "try scrolling" {
		t.Errorf("HintsRevealed = %+v", got)
	}

	// Replaying the sequence must not award it again.
	sink := &recordSink{}
	e.sink = sink
	e.Start(context.Background())
	feedKeys(e, at.Add(time.Hour), 100*time.Millisecond,
		"up", "up", "down", "down", "left", "right", "left", "right", "b", "a")
	if len(sink.discoveries) != 0 {
		t.Errorf("rediscovered a restored item: %+v", sink.discoveries)
	}
}

func TestStopClearsTransientState(t *testing.T) {
	e := startedEngine(t, Options{Items: []catalog.Item{scrollItem(catalog.RarityCommon)}})

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	e.HandleEvent(context.Background(), pattern.ScrollEvent(base, 50, 50))
	if e.Warmth() == 0 {
		t.Fatal("no partial progress before Stop")
	}

	e.Stop(context.Background())
	if e.Warmth() != 0 {
		t.Error("partial progress survived Stop")
	}
	if e.Active() {
		t.Error("Active = true after Stop")
	}
	if e.SessionID() != "" {
		t.Errorf("SessionID = %q after Stop, want empty", e.SessionID())
	}
}
