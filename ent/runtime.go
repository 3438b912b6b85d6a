// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/egghunt/ent/discoveryevent"
	"github.com/abhisek/egghunt/ent/hintevent"
	"github.com/abhisek/egghunt/ent/schema"
	"github.com/abhisek/egghunt/ent/sessionevent"
	"github.com/abhisek/egghunt/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	discoveryeventMixin := schema.DiscoveryEvent{}.Mixin()
	discoveryeventMixinFields0 := discoveryeventMixin[0].Fields()
	_ = discoveryeventMixinFields0
	discoveryeventFields := schema.DiscoveryEvent{}.Fields()
	_ = discoveryeventFields
	// discoveryeventDescTimestamp is the schema descriptor for timestamp field.
	discoveryeventDescTimestamp := discoveryeventMixinFields0[1].Descriptor()
	// discoveryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	discoveryevent.DefaultTimestamp = discoveryeventDescTimestamp.Default.(func() time.Time)
	// discoveryeventDescItemID is the schema descriptor for item_id field.
	discoveryeventDescItemID := discoveryeventFields[0].Descriptor()
	// discoveryevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	discoveryevent.ItemIDValidator = discoveryeventDescItemID.Validators[0].(func(string) error)
	// discoveryeventDescName is the schema descriptor for name field.
	discoveryeventDescName := discoveryeventFields[1].Descriptor()
	// discoveryevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	discoveryevent.NameValidator = discoveryeventDescName.Validators[0].(func(string) error)
	// discoveryeventDescCategory is the schema descriptor for category field.
	discoveryeventDescCategory := discoveryeventFields[2].Descriptor()
	// discoveryevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	discoveryevent.CategoryValidator = discoveryeventDescCategory.Validators[0].(func(string) error)
	// discoveryeventDescRarity is the schema descriptor for rarity field.
	discoveryeventDescRarity := discoveryeventFields[3].Descriptor()
	// discoveryevent.RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	discoveryevent.RarityValidator = discoveryeventDescRarity.Validators[0].(func(string) error)
	// discoveryeventDescSessionID is the schema descriptor for session_id field.
	discoveryeventDescSessionID := discoveryeventFields[4].Descriptor()
	// discoveryevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	discoveryevent.SessionIDValidator = discoveryeventDescSessionID.Validators[0].(func(string) error)
	// discoveryeventDescConfidence is the schema descriptor for confidence field.
	discoveryeventDescConfidence := discoveryeventFields[5].Descriptor()
	// discoveryevent.DefaultConfidence holds the default value on creation for the confidence field.
	discoveryevent.DefaultConfidence = discoveryeventDescConfidence.Default.(float64)
	// discoveryeventDescNearMisses is the schema descriptor for near_misses field.
	discoveryeventDescNearMisses := discoveryeventFields[6].Descriptor()
	// discoveryevent.DefaultNearMisses holds the default value on creation for the near_misses field.
	discoveryevent.DefaultNearMisses = discoveryeventDescNearMisses.Default.(int)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescItemID is the schema descriptor for item_id field.
	hinteventDescItemID := hinteventFields[0].Descriptor()
	// hintevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	hintevent.ItemIDValidator = hinteventDescItemID.Validators[0].(func(string) error)
	// hinteventDescHintIndex is the schema descriptor for hint_index field.
	hinteventDescHintIndex := hinteventFields[1].Descriptor()
	// hintevent.HintIndexValidator is a validator for the "hint_index" field. It is called by the builders before save.
	hintevent.HintIndexValidator = hinteventDescHintIndex.Validators[0].(func(int) error)
	// hinteventDescHintText is the schema descriptor for hint_text field.
	hinteventDescHintText := hinteventFields[2].Descriptor()
	// hintevent.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hintevent.HintTextValidator = hinteventDescHintText.Validators[0].(func(string) error)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[3].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescEventsSeen is the schema descriptor for events_seen field.
	sessioneventDescEventsSeen := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultEventsSeen holds the default value on creation for the events_seen field.
	sessionevent.DefaultEventsSeen = sessioneventDescEventsSeen.Default.(int)
	// sessioneventDescDiscoveries is the schema descriptor for discoveries field.
	sessioneventDescDiscoveries := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultDiscoveries holds the default value on creation for the discoveries field.
	sessionevent.DefaultDiscoveries = sessioneventDescDiscoveries.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
