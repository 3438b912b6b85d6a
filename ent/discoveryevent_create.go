// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/egghunt/ent/discoveryevent"
)

// DiscoveryEventCreate is the builder for creating a DiscoveryEvent entity.
type DiscoveryEventCreate struct {
	config
	mutation *DiscoveryEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DiscoveryEventCreate) SetSequence(v int64) *DiscoveryEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DiscoveryEventCreate) SetTimestamp(v time.Time) *DiscoveryEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DiscoveryEventCreate) SetNillableTimestamp(v *time.Time) *DiscoveryEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *DiscoveryEventCreate) SetItemID(v string) *DiscoveryEventCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DiscoveryEventCreate) SetName(v string) *DiscoveryEventCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *DiscoveryEventCreate) SetCategory(v string) *DiscoveryEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetRarity sets the "rarity" field.
func (_c *DiscoveryEventCreate) SetRarity(v string) *DiscoveryEventCreate {
	_c.mutation.SetRarity(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *DiscoveryEventCreate) SetSessionID(v string) *DiscoveryEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DiscoveryEventCreate) SetConfidence(v float64) *DiscoveryEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *DiscoveryEventCreate) SetNillableConfidence(v *float64) *DiscoveryEventCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetNearMisses sets the "near_misses" field.
func (_c *DiscoveryEventCreate) SetNearMisses(v int) *DiscoveryEventCreate {
	_c.mutation.SetNearMisses(v)
	return _c
}

// SetNillableNearMisses sets the "near_misses" field if the given value is not nil.
func (_c *DiscoveryEventCreate) SetNillableNearMisses(v *int) *DiscoveryEventCreate {
	if v != nil {
		_c.SetNearMisses(*v)
	}
	return _c
}

// Mutation returns the DiscoveryEventMutation object of the builder.
func (_c *DiscoveryEventCreate) Mutation() *DiscoveryEventMutation {
	return _c.mutation
}

// Save creates the DiscoveryEvent in the database.
func (_c *DiscoveryEventCreate) Save(ctx context.Context) (*DiscoveryEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiscoveryEventCreate) SaveX(ctx context.Context) *DiscoveryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscoveryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscoveryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiscoveryEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := discoveryevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := discoveryevent.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.NearMisses(); !ok {
		v := discoveryevent.DefaultNearMisses
		_c.mutation.SetNearMisses(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiscoveryEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DiscoveryEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DiscoveryEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "DiscoveryEvent.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := discoveryevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DiscoveryEvent.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := discoveryevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "DiscoveryEvent.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := discoveryevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rarity(); !ok {
		return &ValidationError{Name: "rarity", err: errors.New(`ent: missing required field "DiscoveryEvent.rarity"`)}
	}
	if v, ok := _c.mutation.Rarity(); ok {
		if err := discoveryevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.rarity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DiscoveryEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := discoveryevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiscoveryEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "DiscoveryEvent.confidence"`)}
	}
	if _, ok := _c.mutation.NearMisses(); !ok {
		return &ValidationError{Name: "near_misses", err: errors.New(`ent: missing required field "DiscoveryEvent.near_misses"`)}
	}
	return nil
}

func (_c *DiscoveryEventCreate) sqlSave(ctx context.Context) (*DiscoveryEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DiscoveryEventCreate) createSpec() (*DiscoveryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DiscoveryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(discoveryevent.Table, sqlgraph.NewFieldSpec(discoveryevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(discoveryevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(discoveryevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(discoveryevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(discoveryevent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(discoveryevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Rarity(); ok {
		_spec.SetField(discoveryevent.FieldRarity, field.TypeString, value)
		_node.Rarity = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(discoveryevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(discoveryevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.NearMisses(); ok {
		_spec.SetField(discoveryevent.FieldNearMisses, field.TypeInt, value)
		_node.NearMisses = value
	}
	return _node, _spec
}

// DiscoveryEventCreateBulk is the builder for creating many DiscoveryEvent entities in bulk.
type DiscoveryEventCreateBulk struct {
	config
	err      error
	builders []*DiscoveryEventCreate
}

// Save creates the DiscoveryEvent entities in the database.
func (_c *DiscoveryEventCreateBulk) Save(ctx context.Context) ([]*DiscoveryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiscoveryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiscoveryEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DiscoveryEventCreateBulk) SaveX(ctx context.Context) []*DiscoveryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscoveryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscoveryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
