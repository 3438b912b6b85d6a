package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiscoveryEvent records one egg discovery. At most one exists per egg ID;
// the engine never re-evaluates a discovered egg.
type DiscoveryEvent struct {
	ent.Schema
}

func (DiscoveryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DiscoveryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("category").NotEmpty(),
		field.String("rarity").NotEmpty(),
		field.String("session_id").NotEmpty(),
		field.Float("confidence").Default(1),
		field.Int("near_misses").
			Default(0).
			Comment("Near-miss count accumulated before discovery"),
	}
}

func (DiscoveryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("category"),
		index.Fields("rarity"),
		index.Fields("session_id"),
	}
}
