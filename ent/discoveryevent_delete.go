// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/egghunt/ent/discoveryevent"
	"github.com/abhisek/egghunt/ent/predicate"
)

// DiscoveryEventDelete is the builder for deleting a DiscoveryEvent entity.
type DiscoveryEventDelete struct {
	config
	hooks    []Hook
	mutation *DiscoveryEventMutation
}

// Where appends a list predicates to the DiscoveryEventDelete builder.
func (_d *DiscoveryEventDelete) Where(ps ...predicate.DiscoveryEvent) *DiscoveryEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DiscoveryEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiscoveryEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DiscoveryEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(discoveryevent.Table, sqlgraph.NewFieldSpec(discoveryevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DiscoveryEventDeleteOne is the builder for deleting a single DiscoveryEvent entity.
type DiscoveryEventDeleteOne struct {
	_d *DiscoveryEventDelete
}

// Where appends a list predicates to the DiscoveryEventDelete builder.
func (_d *DiscoveryEventDeleteOne) Where(ps ...predicate.DiscoveryEvent) *DiscoveryEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DiscoveryEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{discoveryevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiscoveryEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
