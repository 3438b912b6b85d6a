package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records hunt lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a hunt session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("events_seen").
			Default(0).
			Comment("Input events processed (on end only)"),
		field.Int("discoveries").
			Default(0).
			Comment("Eggs discovered this session (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
