// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/egghunt/ent/discoveryevent"
	"github.com/abhisek/egghunt/ent/predicate"
)

// DiscoveryEventUpdate is the builder for updating DiscoveryEvent entities.
type DiscoveryEventUpdate struct {
	config
	hooks    []Hook
	mutation *DiscoveryEventMutation
}

// Where appends a list predicates to the DiscoveryEventUpdate builder.
func (_u *DiscoveryEventUpdate) Where(ps ...predicate.DiscoveryEvent) *DiscoveryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *DiscoveryEventUpdate) SetItemID(v string) *DiscoveryEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *DiscoveryEventUpdate) SetNillableItemID(v *string) *DiscoveryEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DiscoveryEventUpdate) SetName(v string) *DiscoveryEventUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DiscoveryEventUpdate) SetNillableName(v *string) *DiscoveryEventUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *DiscoveryEventUpdate) SetCategory(v string) *DiscoveryEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DiscoveryEventUpdate) SetNillableCategory(v *string) *DiscoveryEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetRarity sets the "rarity" field.
func (_u *DiscoveryEventUpdate) SetRarity(v string) *DiscoveryEventUpdate {
	_u.mutation.SetRarity(v)
	return _u
}

// SetNillableRarity sets the "rarity" field if the given value is not nil.
func (_u *DiscoveryEventUpdate) SetNillableRarity(v *string) *DiscoveryEventUpdate {
	if v != nil {
		_u.SetRarity(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DiscoveryEventUpdate) SetSessionID(v string) *DiscoveryEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiscoveryEventUpdate) SetNillableSessionID(v *string) *DiscoveryEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DiscoveryEventUpdate) SetConfidence(v float64) *DiscoveryEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DiscoveryEventUpdate) SetNillableConfidence(v *float64) *DiscoveryEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DiscoveryEventUpdate) AddConfidence(v float64) *DiscoveryEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetNearMisses sets the "near_misses" field.
func (_u *DiscoveryEventUpdate) SetNearMisses(v int) *DiscoveryEventUpdate {
	_u.mutation.ResetNearMisses()
	_u.mutation.SetNearMisses(v)
	return _u
}

// SetNillableNearMisses sets the "near_misses" field if the given value is not nil.
func (_u *DiscoveryEventUpdate) SetNillableNearMisses(v *int) *DiscoveryEventUpdate {
	if v != nil {
		_u.SetNearMisses(*v)
	}
	return _u
}

// AddNearMisses adds value to the "near_misses" field.
func (_u *DiscoveryEventUpdate) AddNearMisses(v int) *DiscoveryEventUpdate {
	_u.mutation.AddNearMisses(v)
	return _u
}

// Mutation returns the DiscoveryEventMutation object of the builder.
func (_u *DiscoveryEventUpdate) Mutation() *DiscoveryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiscoveryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscoveryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiscoveryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscoveryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiscoveryEventUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := discoveryevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := discoveryevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := discoveryevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rarity(); ok {
		if err := discoveryevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.rarity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := discoveryevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DiscoveryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(discoveryevent.Table, discoveryevent.Columns, sqlgraph.NewFieldSpec(discoveryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(discoveryevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(discoveryevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(discoveryevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rarity(); ok {
		_spec.SetField(discoveryevent.FieldRarity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(discoveryevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(discoveryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(discoveryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NearMisses(); ok {
		_spec.SetField(discoveryevent.FieldNearMisses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNearMisses(); ok {
		_spec.AddField(discoveryevent.FieldNearMisses, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discoveryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiscoveryEventUpdateOne is the builder for updating a single DiscoveryEvent entity.
type DiscoveryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiscoveryEventMutation
}

// SetItemID sets the "item_id" field.
func (_u *DiscoveryEventUpdateOne) SetItemID(v string) *DiscoveryEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *DiscoveryEventUpdateOne) SetNillableItemID(v *string) *DiscoveryEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DiscoveryEventUpdateOne) SetName(v string) *DiscoveryEventUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DiscoveryEventUpdateOne) SetNillableName(v *string) *DiscoveryEventUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *DiscoveryEventUpdateOne) SetCategory(v string) *DiscoveryEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DiscoveryEventUpdateOne) SetNillableCategory(v *string) *DiscoveryEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetRarity sets the "rarity" field.
func (_u *DiscoveryEventUpdateOne) SetRarity(v string) *DiscoveryEventUpdateOne {
	_u.mutation.SetRarity(v)
	return _u
}

// SetNillableRarity sets the "rarity" field if the given value is not nil.
func (_u *DiscoveryEventUpdateOne) SetNillableRarity(v *string) *DiscoveryEventUpdateOne {
	if v != nil {
		_u.SetRarity(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DiscoveryEventUpdateOne) SetSessionID(v string) *DiscoveryEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiscoveryEventUpdateOne) SetNillableSessionID(v *string) *DiscoveryEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DiscoveryEventUpdateOne) SetConfidence(v float64) *DiscoveryEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DiscoveryEventUpdateOne) SetNillableConfidence(v *float64) *DiscoveryEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DiscoveryEventUpdateOne) AddConfidence(v float64) *DiscoveryEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetNearMisses sets the "near_misses" field.
func (_u *DiscoveryEventUpdateOne) SetNearMisses(v int) *DiscoveryEventUpdateOne {
	_u.mutation.ResetNearMisses()
	_u.mutation.SetNearMisses(v)
	return _u
}

// SetNillableNearMisses sets the "near_misses" field if the given value is not nil.
func (_u *DiscoveryEventUpdateOne) SetNillableNearMisses(v *int) *DiscoveryEventUpdateOne {
	if v != nil {
		_u.SetNearMisses(*v)
	}
	return _u
}

// AddNearMisses adds value to the "near_misses" field.
func (_u *DiscoveryEventUpdateOne) AddNearMisses(v int) *DiscoveryEventUpdateOne {
	_u.mutation.AddNearMisses(v)
	return _u
}

// Mutation returns the DiscoveryEventMutation object of the builder.
func (_u *DiscoveryEventUpdateOne) Mutation() *DiscoveryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiscoveryEventUpdate builder.
func (_u *DiscoveryEventUpdateOne) Where(ps ...predicate.DiscoveryEvent) *DiscoveryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiscoveryEventUpdateOne) Select(field string, fields ...string) *DiscoveryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiscoveryEvent entity.
func (_u *DiscoveryEventUpdateOne) Save(ctx context.Context) (*DiscoveryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscoveryEventUpdateOne) SaveX(ctx context.Context) *DiscoveryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiscoveryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscoveryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiscoveryEventUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := discoveryevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := discoveryevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := discoveryevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rarity(); ok {
		if err := discoveryevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.rarity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := discoveryevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DiscoveryEventUpdateOne) sqlSave(ctx context.Context) (_node *DiscoveryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(discoveryevent.Table, discoveryevent.Columns, sqlgraph.NewFieldSpec(discoveryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiscoveryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, discoveryevent.FieldID)
		for _, f := range fields {
			if !discoveryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != discoveryevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(discoveryevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(discoveryevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(discoveryevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rarity(); ok {
		_spec.SetField(discoveryevent.FieldRarity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(discoveryevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(discoveryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(discoveryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NearMisses(); ok {
		_spec.SetField(discoveryevent.FieldNearMisses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNearMisses(); ok {
		_spec.AddField(discoveryevent.FieldNearMisses, field.TypeInt, value)
	}
	_node = &DiscoveryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discoveryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
