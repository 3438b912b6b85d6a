package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/egghunt/internal/pattern"
)

const validCatalog = `{
  "version": 1,
  "eggs": [
    {
      "id": "secret-word",
      "name": "Secret Word",
      "description": "Typed the magic word.",
      "category": "sequence",
      "rarity": "rare",
      "reward": {"kind": "effect", "effect": "confetti"},
      "hints": ["It opens sesame."],
      "trigger": {
        "kind": "key_sequence",
        "keys": ["o", "p", "e", "n"],
        "max_interval_ms": 1000,
        "final_modifiers": {"ctrl": true}
      }
    },
    {
      "id": "tiny-loop",
      "name": "Tiny Loop",
      "category": "interaction",
      "rarity": "common",
      "trigger": {
        "kind": "gesture",
        "shape": "circle",
        "min_points": 16,
        "min_radius": 2,
        "max_radius": 10,
        "tolerance": 0.4
      }
    }
  ]
}`

func TestParseValidCatalog(t *testing.T) {
	items, err := Parse([]byte(validCatalog))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("parsed %d items, want 2", len(items))
	}

	first := items[0]
	if first.ID != "secret-word" {
		t.Errorf("ID = %q, want %q", first.ID, "secret-word")
	}
	if first.Rarity != RarityRare {
		t.Errorf("Rarity = %q, want rare", first.Rarity)
	}
	if first.Reward.Kind != RewardEffect || first.Reward.Effect != "confetti" {
		t.Errorf("Reward = %+v, want effect/confetti", first.Reward)
	}
	seq, ok := first.Trigger.(pattern.KeySequence)
	if !ok {
		t.Fatalf("Trigger type = %T, want KeySequence", first.Trigger)
	}
	if len(seq.Keys) != 4 || seq.MaxInterval != time.Second {
		t.Errorf("decoded sequence = %+v", seq)
	}
	if seq.FinalModifiers == nil || !seq.FinalModifiers.Ctrl {
		t.Error("FinalModifiers.Ctrl not decoded")
	}

	gest, ok := items[1].Trigger.(pattern.Gesture)
	if !ok {
		t.Fatalf("Trigger type = %T, want Gesture", items[1].Trigger)
	}
	if gest.Shape != pattern.ShapeCircle || gest.MinPoints != 16 {
		t.Errorf("decoded gesture = %+v", gest)
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Error("Parse accepted malformed JSON")
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing trigger": `{"version": 1, "eggs": [{"id": "x", "name": "X", "category": "time", "rarity": "common"}]}`,
		"bad rarity":      `{"version": 1, "eggs": [{"id": "x", "name": "X", "category": "time", "rarity": "mythic", "trigger": {"kind": "time_window", "mode": "elapsed", "duration_ms": 1000}}]}`,
		"bad kind":        `{"version": 1, "eggs": [{"id": "x", "name": "X", "category": "time", "rarity": "common", "trigger": {"kind": "telepathy"}}]}`,
		"bad id":          `{"version": 1, "eggs": [{"id": "Not Valid!", "name": "X", "category": "time", "rarity": "common", "trigger": {"kind": "time_window", "mode": "elapsed", "duration_ms": 1000}}]}`,
		"wrong version":   `{"version": 2, "eggs": []}`,
	}
	for name, raw := range cases {
		if _, err := Parse([]byte(raw)); err == nil {
			t.Errorf("%s: Parse accepted invalid catalog", name)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "extra.json"), []byte(validCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	items, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("loaded %d items, want 2", len(items))
	}
}

func TestLoadDirMissing(t *testing.T) {
	items, err := LoadDir(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("LoadDir on missing dir: %v", err)
	}
	if items != nil {
		t.Errorf("items = %v, want nil", items)
	}
}

func TestBuiltinCatalogSane(t *testing.T) {
	seen := map[string]bool{}
	for _, item := range Builtin() {
		if seen[item.ID] {
			t.Errorf("duplicate builtin id %q", item.ID)
		}
		seen[item.ID] = true
		if item.Trigger == nil {
			t.Errorf("%s: nil trigger", item.ID)
		}
		if item.Name == "" {
			t.Errorf("%s: empty name", item.ID)
		}
		tier := item.Tier()
		if tier < 1 || tier > MaxTier {
			t.Errorf("%s: tier %d out of range", item.ID, tier)
		}
	}
}

func TestTierDeterministic(t *testing.T) {
	for _, r := range AllRarities() {
		a := r.Tier("some-egg")
		for i := 0; i < 10; i++ {
			if got := r.Tier("some-egg"); got != a {
				t.Fatalf("%s tier flapped: %d then %d", r, a, got)
			}
		}
	}
	if got := RarityLegendary.Tier("anything"); got != MaxTier {
		t.Errorf("legendary tier = %d, want %d", got, MaxTier)
	}
}

func TestHintGating(t *testing.T) {
	for tier := 1; tier <= MaxTier; tier++ {
		allowed := HintsAllowed(tier)
		if tier >= MaxTier-1 && allowed {
			t.Errorf("tier %d allows hints, want withheld", tier)
		}
		if tier <= MaxTier-2 && !allowed {
			t.Errorf("tier %d withholds hints, want allowed", tier)
		}
	}
}
