package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/egghunt/internal/catalog"
	"github.com/abhisek/egghunt/internal/pattern"
	"github.com/abhisek/egghunt/internal/recognize"
	"github.com/abhisek/egghunt/internal/store"
)

// ErrDuplicateItem is returned when registering an item whose ID is already
// taken. Use Replace for intentional redefinition.
var ErrDuplicateItem = errors.New("item id already registered")

// Defaults for Options fields left zero.
const (
	DefaultNearMissThreshold = 0.7
	DefaultPatternTimeout    = 30 * time.Second
	DefaultMaxHints          = 3
	DefaultBufferSize        = 512
	snapshotKeep             = 10
)

// Mode adjusts recognizer sampling aggressiveness.
type Mode string

const (
	ModeLow    Mode = "low"
	ModeMedium Mode = "medium"
	ModeHigh   Mode = "high"
)

// Discovery is an awarded egg: what the achievement surface renders and
// what query commands list.
type Discovery struct {
	ItemID      string
	Name        string
	Description string
	Icon        string
	Category    catalog.Category
	Rarity      catalog.Rarity
	Reward      catalog.Reward
	At          time.Time
	SessionID   string
}

// Hint is one released hint for an undiscovered egg.
type Hint struct {
	ItemID string
	Index  int
	Text   string
}

// Outcome is what one HandleEvent call produced.
type Outcome struct {
	Discoveries []Discovery
	Hints       []Hint
}

// Sink receives discovery and hint notifications. All calls happen
// synchronously inside HandleEvent, on the caller's goroutine.
type Sink interface {
	ItemDiscovered(Discovery)
	HintRevealed(Hint)
}

// WarnFunc receives non-fatal engine warnings (persistence failures,
// catalog oddities). Nil means silent.
type WarnFunc func(format string, args ...any)

// Options configures a new Engine. Items, repos, and sink are all optional;
// a zero Options yields a working in-memory engine with no catalog.
type Options struct {
	Items     []catalog.Item
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Sink      Sink
	Warn      WarnFunc

	// NearMissThreshold is the confidence at which a partial match counts
	// as a near miss (default 0.7).
	NearMissThreshold float64
	// PatternTimeout expires inactive partial progress (default 30s).
	PatternTimeout time.Duration
	// MaxHints caps hints released per item (default 3). Negative
	// disables hints entirely.
	MaxHints int
	// BufferSize bounds the engine's event ring buffer (default 512).
	BufferSize int
	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

type progressEntry struct {
	match     pattern.Match
	updatedAt time.Time
}

// Engine owns the item registry, the discovered set, the active-progress
// map, and the event ring buffer. It is not safe for concurrent use; all
// calls are expected on a single goroutine (the UI update loop).
type Engine struct {
	items []catalog.Item
	index map[string]int

	discovered map[string]time.Time
	order      []string // discovery order
	nearMisses map[string]int
	hintsShown map[string]int
	progress   map[string]*progressEntry

	buffer     []pattern.Event
	bufferSize int
	eventsSeen int

	keyboard *recognize.Keyboard
	gesture  *recognize.Gesture
	scroll   *recognize.Scroll
	timing   *recognize.Timing
	perf     *recognize.Perf

	events    store.EventRepo
	snapshots store.SnapshotRepo
	sink      Sink
	warn      WarnFunc
	clock     func() time.Time

	nearMissThreshold float64
	patternTimeout    time.Duration
	maxHints          int
	accessible        bool
	mode              Mode

	active    bool
	sessionID string
	startedAt time.Time
}

// New creates an Engine and registers opts.Items in order.
func New(opts Options) (*Engine, error) {
	e := &Engine{
		index:             make(map[string]int),
		discovered:        make(map[string]time.Time),
		nearMisses:        make(map[string]int),
		hintsShown:        make(map[string]int),
		progress:          make(map[string]*progressEntry),
		keyboard:          recognize.NewKeyboard(),
		gesture:           recognize.NewGesture(),
		scroll:            recognize.NewScroll(),
		timing:            recognize.NewTiming(time.Time{}),
		perf:              recognize.NewPerf(),
		events:            opts.Events,
		snapshots:         opts.Snapshots,
		sink:              opts.Sink,
		warn:              opts.Warn,
		clock:             opts.Clock,
		nearMissThreshold: opts.NearMissThreshold,
		patternTimeout:    opts.PatternTimeout,
		maxHints:          opts.MaxHints,
		bufferSize:        opts.BufferSize,
		mode:              ModeHigh,
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	if e.nearMissThreshold <= 0 {
		e.nearMissThreshold = DefaultNearMissThreshold
	}
	if e.patternTimeout <= 0 {
		e.patternTimeout = DefaultPatternTimeout
	}
	// MaxHints zero means default; negative disables hints entirely.
	if e.maxHints == 0 {
		e.maxHints = DefaultMaxHints
	}
	if e.bufferSize <= 0 {
		e.bufferSize = DefaultBufferSize
	}

	for _, item := range opts.Items {
		if err := e.Register(item); err != nil {
			return nil, fmt.Errorf("register %q: %w", item.ID, err)
		}
	}
	return e, nil
}

// Register adds an item to the registry. Registering an ID twice is an
// error; use Replace to overwrite an item deliberately.
func (e *Engine) Register(item catalog.Item) error {
	if item.ID == "" {
		return errors.New("item id is empty")
	}
	if item.Trigger == nil {
		return errors.New("item trigger is nil")
	}
	if _, exists := e.index[item.ID]; exists {
		return ErrDuplicateItem
	}
	e.index[item.ID] = len(e.items)
	e.items = append(e.items, item)
	return nil
}

// Replace swaps the definition of an already registered item in place,
// keeping registration order. Intended for live catalog reloads.
func (e *Engine) Replace(item catalog.Item) error {
	i, exists := e.index[item.ID]
	if !exists {
		return fmt.Errorf("item %q not registered", item.ID)
	}
	e.items[i] = item
	return nil
}

// Items returns the registered items in registration order.
func (e *Engine) Items() []catalog.Item {
	out := make([]catalog.Item, len(e.items))
	copy(out, e.items)
	return out
}

// LoadState restores discovered-set and hint state from the latest
// snapshot. Missing or malformed snapshots yield an empty state; only a
// repo failure is warned about, never surfaced.
func (e *Engine) LoadState(ctx context.Context) {
	if e.snapshots == nil {
		return
	}
	snap, err := e.snapshots.Latest(ctx)
	if err != nil {
		e.warnf("load snapshot: %v", err)
		return
	}
	if snap == nil {
		return
	}
	for _, d := range snap.Data.Discovered {
		if _, ok := e.discovered[d.ItemID]; !ok {
			e.discovered[d.ItemID] = d.DiscoveredAt
			e.order = append(e.order, d.ItemID)
		}
	}
	for id, n := range snap.Data.NearMisses {
		e.nearMisses[id] = n
	}
	for id, n := range snap.Data.HintsShown {
		e.hintsShown[id] = n
	}
}

// Start begins a hunt session. Idempotent: calling Start while active is a
// no-op.
func (e *Engine) Start(ctx context.Context) {
	if e.active {
		return
	}
	now := e.clock()
	e.active = true
	e.sessionID = uuid.New().String()
	e.startedAt = now
	e.eventsSeen = 0
	e.timing.Restart(now)

	if e.events != nil {
		err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: e.sessionID,
			Action:    "start",
		})
		if err != nil {
			e.warnf("record session start: %v", err)
		}
	}
}

// Stop ends the session and clears all in-memory buffers and partial
// progress. Persisted discovery state is untouched. Idempotent.
func (e *Engine) Stop(ctx context.Context) {
	if !e.active {
		return
	}
	now := e.clock()

	if e.events != nil {
		discoveries := 0
		for _, id := range e.order {
			if e.discovered[id].After(e.startedAt) || e.discovered[id].Equal(e.startedAt) {
				discoveries++
			}
		}
		err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:    e.sessionID,
			Action:       "end",
			EventsSeen:   e.eventsSeen,
			Discoveries:  discoveries,
			DurationSecs: int(now.Sub(e.startedAt).Seconds()),
		})
		if err != nil {
			e.warnf("record session end: %v", err)
		}
	}

	e.active = false
	e.buffer = nil
	e.progress = make(map[string]*progressEntry)
	e.keyboard.Reset()
	e.gesture.Reset()
	e.scroll.Reset()
	e.perf.Reset()
	e.timing.Reset()
}

// Active reports whether a session is running.
func (e *Engine) Active() bool {
	return e.active
}

// SessionID returns the current session's ID, or "" when stopped.
func (e *Engine) SessionID() string {
	if !e.active {
		return ""
	}
	return e.sessionID
}

// IsDiscovered reports whether the item has ever been discovered.
func (e *Engine) IsDiscovered(id string) bool {
	_, ok := e.discovered[id]
	return ok
}

// Discovered returns all discovered items in discovery order.
func (e *Engine) Discovered() []Discovery {
	out := make([]Discovery, 0, len(e.order))
	for _, id := range e.order {
		at := e.discovered[id]
		if i, ok := e.index[id]; ok {
			out = append(out, e.discoveryRecord(e.items[i], at))
		} else {
			// Persisted discovery for an item no longer in the catalog.
			out = append(out, Discovery{ItemID: id, Name: id, At: at})
		}
	}
	return out
}

// HintsRevealed returns the hints released so far for an undiscovered item.
func (e *Engine) HintsRevealed(id string) []Hint {
	i, ok := e.index[id]
	if !ok {
		return nil
	}
	item := e.items[i]
	n := e.hintsShown[id]
	if n > len(item.Hints) {
		n = len(item.Hints)
	}
	out := make([]Hint, 0, n)
	for j := 0; j < n; j++ {
		out = append(out, Hint{ItemID: id, Index: j, Text: item.Hints[j]})
	}
	return out
}

// Warmth returns the highest live partial-match confidence, for ambient
// "getting closer" UI that doesn't give away which egg it is.
func (e *Engine) Warmth() float64 {
	var max float64
	for _, p := range e.progress {
		if p.match.Confidence > max {
			max = p.match.Confidence
		}
	}
	return max
}

// EventsSeen returns the number of events processed this session.
func (e *Engine) EventsSeen() int {
	return e.eventsSeen
}

// SetAccessibilityMode widens tolerances: sparse pointer sampling and more
// generous hint gating.
func (e *Engine) SetAccessibilityMode(on bool) {
	e.accessible = on
	e.applySampling()
}

// SetPerformanceMode adjusts recognizer sampling aggressiveness.
func (e *Engine) SetPerformanceMode(mode Mode) {
	e.mode = mode
	e.applySampling()
}

func (e *Engine) applySampling() {
	if e.accessible || e.mode == ModeLow {
		e.gesture.SetSampleRate(recognize.SampleSparse)
	} else {
		e.gesture.SetSampleRate(recognize.SampleFull)
	}
}

// HandleEvent runs the full evaluation pass for one event: buffer it, feed
// the recognizers, check every undiscovered item, update progress and
// near-miss state, and sweep expired progress. Returns what was discovered
// or hinted; the sink, when set, is notified synchronously as well.
func (e *Engine) HandleEvent(ctx context.Context, ev pattern.Event) Outcome {
	var out Outcome
	if !e.active {
		return out
	}
	now := ev.At
	if now.IsZero() {
		now = e.clock()
	}

	e.buffer = append(e.buffer, ev)
	if len(e.buffer) > e.bufferSize {
		e.buffer = e.buffer[len(e.buffer)-e.bufferSize:]
	}
	e.eventsSeen++

	e.keyboard.Observe(ev)
	e.gesture.Observe(ev)
	e.scroll.Observe(ev)
	e.timing.Observe(ev)
	e.perf.Observe(ev)

	e.sweep(now)

	for _, item := range e.items {
		if _, done := e.discovered[item.ID]; done {
			continue
		}
		m := e.recognizerFor(item.Trigger).Match(item.Trigger, now)
		if m == nil {
			continue
		}
		m.ItemID = item.ID

		if m.DiscoveredNow() {
			out.Discoveries = append(out.Discoveries, e.discover(ctx, item, m, now))
			continue
		}
		if !m.Reportable() {
			continue
		}
		if hint := e.trackProgress(ctx, item, m, now); hint != nil {
			out.Hints = append(out.Hints, *hint)
		}
	}
	return out
}

func (e *Engine) recognizerFor(trig pattern.Trigger) recognize.Recognizer {
	switch trig.Kind() {
	case pattern.KindKeySequence:
		return e.keyboard
	case pattern.KindGesture:
		return e.gesture
	case pattern.KindScrollPattern:
		return e.scroll
	case pattern.KindTimeWindow:
		return e.timing
	default:
		return e.perf
	}
}

func (e *Engine) discover(ctx context.Context, item catalog.Item, m *pattern.Match, now time.Time) Discovery {
	e.discovered[item.ID] = now
	e.order = append(e.order, item.ID)
	delete(e.progress, item.ID)

	if e.events != nil {
		err := e.events.AppendDiscoveryEvent(ctx, store.DiscoveryEventData{
			ItemID:     item.ID,
			Name:       item.Name,
			Category:   string(item.Category),
			Rarity:     string(item.Rarity),
			SessionID:  e.sessionID,
			Confidence: m.Confidence,
			NearMisses: e.nearMisses[item.ID],
		})
		if err != nil {
			e.warnf("record discovery %s: %v", item.ID, err)
		}
	}
	e.saveSnapshot(ctx, now)

	d := e.discoveryRecord(item, now)
	if e.sink != nil {
		e.sink.ItemDiscovered(d)
	}
	return d
}

// trackProgress stores the match as the item's running progress and runs
// the near-miss/hint bookkeeping. Returns a hint if one came due.
func (e *Engine) trackProgress(ctx context.Context, item catalog.Item, m *pattern.Match, now time.Time) *Hint {
	prev := e.progress[item.ID]
	crossed := m.Confidence >= e.nearMissThreshold &&
		(prev == nil || prev.match.Confidence < e.nearMissThreshold)
	e.progress[item.ID] = &progressEntry{match: *m, updatedAt: now}

	if !crossed {
		return nil
	}
	e.nearMisses[item.ID]++

	tier := item.Tier()
	if e.accessible && tier > 1 {
		tier--
	}
	if !catalog.HintsAllowed(tier) {
		return nil
	}

	shown := e.hintsShown[item.ID]
	limit := e.maxHints
	if len(item.Hints) < limit {
		limit = len(item.Hints)
	}
	if shown >= limit {
		return nil
	}
	if e.nearMisses[item.ID] < catalog.NearMissesPerHint(tier)*(shown+1) {
		return nil
	}

	hint := Hint{ItemID: item.ID, Index: shown, Text: item.Hints[shown]}
	e.hintsShown[item.ID] = shown + 1

	if e.events != nil {
		err := e.events.AppendHintEvent(ctx, store.HintEventData{
			ItemID:    item.ID,
			HintIndex: hint.Index,
			HintText:  hint.Text,
			SessionID: e.sessionID,
		})
		if err != nil {
			e.warnf("record hint %s/%d: %v", item.ID, hint.Index, err)
		}
	}
	e.saveSnapshot(ctx, now)

	if e.sink != nil {
		e.sink.HintRevealed(hint)
	}
	return &hint
}

// sweep drops partial progress that has been inactive past the pattern
// timeout. Discovery state is never swept.
func (e *Engine) sweep(now time.Time) {
	for id, p := range e.progress {
		if now.Sub(p.updatedAt) > e.patternTimeout {
			delete(e.progress, id)
		}
	}
}

// saveSnapshot persists the current discovery state, best effort.
func (e *Engine) saveSnapshot(ctx context.Context, now time.Time) {
	if e.snapshots == nil {
		return
	}
	data := store.SnapshotData{
		Version:    store.SnapshotVersion,
		NearMisses: e.nearMisses,
		HintsShown: e.hintsShown,
	}
	for _, id := range e.order {
		data.Discovered = append(data.Discovered, store.DiscoveredEntry{
			ItemID:       id,
			DiscoveredAt: e.discovered[id],
		})
	}
	err := e.snapshots.Save(ctx, &store.Snapshot{Timestamp: now, Data: data})
	if err != nil {
		e.warnf("save snapshot: %v", err)
		return
	}
	if err := e.snapshots.Prune(ctx, snapshotKeep); err != nil {
		e.warnf("prune snapshots: %v", err)
	}
}

func (e *Engine) discoveryRecord(item catalog.Item, at time.Time) Discovery {
	return Discovery{
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		Icon:        item.Category.Icon(),
		Category:    item.Category,
		Rarity:      item.Rarity,
		Reward:      item.Reward,
		At:          at,
		SessionID:   e.sessionID,
	}
}

func (e *Engine) warnf(format string, args ...any) {
	if e.warn != nil {
		e.warn(format, args...)
	}
}
