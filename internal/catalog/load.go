package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/egghunt/internal/pattern"
)

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compiled returns the compiled egg-file schema, compiling it once.
func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(eggSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse embedded schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("eggs.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("eggs.schema.json")
	})
	return compiledSchema, schemaErr
}

// File mirrors the on-disk egg catalog format.
type fileCatalog struct {
	Version int       `json:"version"`
	Eggs    []fileEgg `json:"eggs"`
}

type fileEgg struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Rarity      string          `json:"rarity"`
	Reward      *fileReward     `json:"reward"`
	Hints       []string        `json:"hints"`
	Trigger     json.RawMessage `json:"trigger"`
}

type fileReward struct {
	Kind   string `json:"kind"`
	Effect string `json:"effect"`
}

type fileTrigger struct {
	Kind string `json:"kind"`

	// key_sequence
	Keys           []string       `json:"keys"`
	MaxIntervalMS  int            `json:"max_interval_ms"`
	MaxTotalMS     int            `json:"max_total_ms"`
	FinalModifiers *fileModifiers `json:"final_modifiers"`

	// gesture
	Shape     string  `json:"shape"`
	MinPoints int     `json:"min_points"`
	MinRadius float64 `json:"min_radius"`
	MaxRadius float64 `json:"max_radius"`
	Tolerance float64 `json:"tolerance"`

	// scroll_pattern / time_window
	Mode             string  `json:"mode"`
	CadenceMS        []int   `json:"cadence_ms"`
	CadenceTolerance float64 `json:"cadence_tolerance"`
	Distance         float64 `json:"distance"`
	DirectionChanges int     `json:"direction_changes"`
	WindowMS         int     `json:"window_ms"`
	DurationMS       int     `json:"duration_ms"`
	StartHour        int     `json:"start_hour"`
	EndHour          int     `json:"end_hour"`

	// perf_threshold
	Metric    string  `json:"metric"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	SustainMS int     `json:"sustain_ms"`
}

type fileModifiers struct {
	Shift bool `json:"shift"`
	Ctrl  bool `json:"ctrl"`
	Alt   bool `json:"alt"`
}

// Parse validates raw egg-file JSON against the embedded schema and decodes
// it into items.
func Parse(raw []byte) ([]Item, error) {
	schema, err := compiled()
	if err != nil {
		return nil, err
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var fc fileCatalog
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	items := make([]Item, 0, len(fc.Eggs))
	for _, fe := range fc.Eggs {
		item, err := fe.toItem()
		if err != nil {
			return nil, fmt.Errorf("egg %q: %w", fe.ID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// LoadFile parses one egg catalog file.
func LoadFile(path string) ([]Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	items, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return items, nil
}

// LoadDir loads every *.json file in dir, sorted by name for stable
// registration order. A missing directory yields an empty catalog.
func LoadDir(dir string) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var items []Item
	for _, name := range names {
		loaded, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		items = append(items, loaded...)
	}
	return items, nil
}

func (fe fileEgg) toItem() (Item, error) {
	var ft fileTrigger
	if err := json.Unmarshal(fe.Trigger, &ft); err != nil {
		return Item{}, fmt.Errorf("decode trigger: %w", err)
	}
	trig, err := ft.toTrigger()
	if err != nil {
		return Item{}, err
	}

	reward := Reward{Kind: RewardToast}
	if fe.Reward != nil {
		reward = Reward{Kind: RewardKind(fe.Reward.Kind), Effect: fe.Reward.Effect}
	}

	return Item{
		ID:          fe.ID,
		Name:        fe.Name,
		Description: fe.Description,
		Category:    Category(fe.Category),
		Rarity:      Rarity(fe.Rarity),
		Trigger:     trig,
		Reward:      reward,
		Hints:       fe.Hints,
	}, nil
}

func (ft fileTrigger) toTrigger() (pattern.Trigger, error) {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }

	switch pattern.TriggerKind(ft.Kind) {
	case pattern.KindKeySequence:
		seq := pattern.KeySequence{
			Keys:        ft.Keys,
			MaxInterval: ms(ft.MaxIntervalMS),
			MaxTotal:    ms(ft.MaxTotalMS),
		}
		if ft.FinalModifiers != nil {
			seq.FinalModifiers = &pattern.Modifiers{
				Shift: ft.FinalModifiers.Shift,
				Ctrl:  ft.FinalModifiers.Ctrl,
				Alt:   ft.FinalModifiers.Alt,
			}
		}
		return seq, nil

	case pattern.KindGesture:
		return pattern.Gesture{
			Shape:     pattern.GestureShape(ft.Shape),
			MinPoints: ft.MinPoints,
			MinRadius: ft.MinRadius,
			MaxRadius: ft.MaxRadius,
			Tolerance: ft.Tolerance,
		}, nil

	case pattern.KindScrollPattern:
		sp := pattern.ScrollPattern{
			Mode:             pattern.ScrollMode(ft.Mode),
			CadenceTolerance: ft.CadenceTolerance,
			Distance:         ft.Distance,
			DirectionChanges: ft.DirectionChanges,
			Window:           ms(ft.WindowMS),
		}
		for _, c := range ft.CadenceMS {
			sp.Cadence = append(sp.Cadence, ms(c))
		}
		return sp, nil

	case pattern.KindTimeWindow:
		return pattern.TimeWindow{
			Mode:      pattern.TimeMode(ft.Mode),
			Duration:  ms(ft.DurationMS),
			StartHour: ft.StartHour,
			EndHour:   ft.EndHour,
		}, nil

	case pattern.KindPerfThreshold:
		return pattern.PerfThreshold{
			Metric:  pattern.PerfMetric(ft.Metric),
			Min:     ft.Min,
			Max:     ft.Max,
			Sustain: ms(ft.SustainMS),
		}, nil
	}
	return nil, fmt.Errorf("unknown trigger kind %q", ft.Kind)
}
