// Code generated by ent, DO NOT EDIT.

package discoveryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/egghunt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldItemID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldCategory, v))
}

// Rarity applies equality check predicate on the "rarity" field. It's identical to RarityEQ.
func Rarity(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldRarity, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldSessionID, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldConfidence, v))
}

// NearMisses applies equality check predicate on the "near_misses" field. It's identical to NearMissesEQ.
func NearMisses(v int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldNearMisses, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldContainsFold(FieldItemID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldContainsFold(FieldName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldContainsFold(FieldCategory, v))
}

// RarityEQ applies the EQ predicate on the "rarity" field.
func RarityEQ(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldRarity, v))
}

// RarityNEQ applies the NEQ predicate on the "rarity" field.
func RarityNEQ(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNEQ(FieldRarity, v))
}

// RarityIn applies the In predicate on the "rarity" field.
func RarityIn(vs ...string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldIn(FieldRarity, vs...))
}

// RarityNotIn applies the NotIn predicate on the "rarity" field.
func RarityNotIn(vs ...string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNotIn(FieldRarity, vs...))
}

// RarityGT applies the GT predicate on the "rarity" field.
func RarityGT(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGT(FieldRarity, v))
}

// RarityGTE applies the GTE predicate on the "rarity" field.
func RarityGTE(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGTE(FieldRarity, v))
}

// RarityLT applies the LT predicate on the "rarity" field.
func RarityLT(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLT(FieldRarity, v))
}

// RarityLTE applies the LTE predicate on the "rarity" field.
func RarityLTE(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLTE(FieldRarity, v))
}

// RarityContains applies the Contains predicate on the "rarity" field.
func RarityContains(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldContains(FieldRarity, v))
}

// RarityHasPrefix applies the HasPrefix predicate on the "rarity" field.
func RarityHasPrefix(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldHasPrefix(FieldRarity, v))
}

// RarityHasSuffix applies the HasSuffix predicate on the "rarity" field.
func RarityHasSuffix(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldHasSuffix(FieldRarity, v))
}

// RarityEqualFold applies the EqualFold predicate on the "rarity" field.
func RarityEqualFold(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEqualFold(FieldRarity, v))
}

// RarityContainsFold applies the ContainsFold predicate on the "rarity" field.
func RarityContainsFold(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldContainsFold(FieldRarity, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLTE(FieldConfidence, v))
}

// NearMissesEQ applies the EQ predicate on the "near_misses" field.
func NearMissesEQ(v int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldEQ(FieldNearMisses, v))
}

// NearMissesNEQ applies the NEQ predicate on the "near_misses" field.
func NearMissesNEQ(v int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNEQ(FieldNearMisses, v))
}

// NearMissesIn applies the In predicate on the "near_misses" field.
func NearMissesIn(vs ...int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldIn(FieldNearMisses, vs...))
}

// NearMissesNotIn applies the NotIn predicate on the "near_misses" field.
func NearMissesNotIn(vs ...int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldNotIn(FieldNearMisses, vs...))
}

// NearMissesGT applies the GT predicate on the "near_misses" field.
func NearMissesGT(v int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGT(FieldNearMisses, v))
}

// NearMissesGTE applies the GTE predicate on the "near_misses" field.
func NearMissesGTE(v int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldGTE(FieldNearMisses, v))
}

// NearMissesLT applies the LT predicate on the "near_misses" field.
func NearMissesLT(v int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLT(FieldNearMisses, v))
}

// NearMissesLTE applies the LTE predicate on the "near_misses" field.
func NearMissesLTE(v int) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.FieldLTE(FieldNearMisses, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiscoveryEvent) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiscoveryEvent) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiscoveryEvent) predicate.DiscoveryEvent {
	return predicate.DiscoveryEvent(sql.NotPredicates(p))
}
