package catalog

// eggSchema is the JSON Schema user catalog files are validated against
// before decoding. Trigger payloads are discriminated by "kind".
const eggSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "eggs"],
  "properties": {
    "version": {"type": "integer", "const": 1},
    "eggs": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "category", "rarity", "trigger"],
        "properties": {
          "id": {"type": "string", "minLength": 1, "pattern": "^[a-z0-9][a-z0-9-]*$"},
          "name": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "category": {"enum": ["sequence", "interaction", "performance", "time", "contextual"]},
          "rarity": {"enum": ["common", "rare", "legendary"]},
          "reward": {
            "type": "object",
            "properties": {
              "kind": {"enum": ["toast", "effect", "notification"]},
              "effect": {"type": "string"}
            }
          },
          "hints": {"type": "array", "items": {"type": "string"}},
          "trigger": {
            "type": "object",
            "required": ["kind"],
            "properties": {
              "kind": {"enum": ["key_sequence", "gesture", "scroll_pattern", "time_window", "perf_threshold"]}
            },
            "allOf": [
              {
                "if": {"properties": {"kind": {"const": "key_sequence"}}},
                "then": {
                  "required": ["keys"],
                  "properties": {
                    "keys": {"type": "array", "minItems": 1, "items": {"type": "string"}},
                    "max_interval_ms": {"type": "integer", "minimum": 0},
                    "max_total_ms": {"type": "integer", "minimum": 0},
                    "final_modifiers": {
                      "type": "object",
                      "properties": {
                        "shift": {"type": "boolean"},
                        "ctrl": {"type": "boolean"},
                        "alt": {"type": "boolean"}
                      }
                    }
                  }
                }
              },
              {
                "if": {"properties": {"kind": {"const": "gesture"}}},
                "then": {
                  "required": ["shape"],
                  "properties": {
                    "shape": {"enum": ["circle", "spiral", "figure8"]},
                    "min_points": {"type": "integer", "minimum": 8},
                    "min_radius": {"type": "number", "minimum": 0},
                    "max_radius": {"type": "number", "minimum": 0},
                    "tolerance": {"type": "number", "exclusiveMinimum": 0, "maximum": 1}
                  }
                }
              },
              {
                "if": {"properties": {"kind": {"const": "scroll_pattern"}}},
                "then": {
                  "required": ["mode"],
                  "properties": {
                    "mode": {"enum": ["rhythm", "distance", "directions"]},
                    "cadence_ms": {"type": "array", "items": {"type": "integer", "minimum": 1}},
                    "cadence_tolerance": {"type": "number", "minimum": 0},
                    "distance": {"type": "number", "minimum": 0},
                    "direction_changes": {"type": "integer", "minimum": 0},
                    "window_ms": {"type": "integer", "minimum": 0}
                  }
                }
              },
              {
                "if": {"properties": {"kind": {"const": "time_window"}}},
                "then": {
                  "required": ["mode"],
                  "properties": {
                    "mode": {"enum": ["elapsed", "clock", "idle"]},
                    "duration_ms": {"type": "integer", "minimum": 0},
                    "start_hour": {"type": "integer", "minimum": 0, "maximum": 23},
                    "end_hour": {"type": "integer", "minimum": 0, "maximum": 23}
                  }
                }
              },
              {
                "if": {"properties": {"kind": {"const": "perf_threshold"}}},
                "then": {
                  "required": ["metric", "sustain_ms"],
                  "properties": {
                    "metric": {"enum": ["fps", "heap_bytes"]},
                    "min": {"type": "number", "minimum": 0},
                    "max": {"type": "number", "minimum": 0},
                    "sustain_ms": {"type": "integer", "minimum": 1}
                  }
                }
              }
            ]
          }
        }
      }
    }
  }
}`
