// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muselink-c/muselink-app/ent/predicate"
	"github.com/muselink-c/muselink-app/ent/workversion"
)

// WorkVersionDelete is the builder for deleting a WorkVersion entity.
type WorkVersionDelete struct {
	config
	hooks    []Hook
	mutation *WorkVersionMutation
}

// Where appends a list predicates to the WorkVersionDelete builder.
func (wvd *WorkVersionDelete) Where(ps ...predicate.WorkVersion) *WorkVersionDelete {
	wvd.mutation.Where(ps...)
	return wvd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (wvd *WorkVersionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, wvd.sqlExec, wvd.mutation, wvd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (wvd *WorkVersionDelete) ExecX(ctx context.Context) int {
	n, err := wvd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (wvd *WorkVersionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(workversion.Table, sqlgraph.NewFieldSpec(workversion.FieldID, field.TypeUint))
	if ps := wvd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, wvd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	wvd.mutation.done = true
	return affected, err
}

// WorkVersionDeleteOne is the builder for deleting a single WorkVersion entity.
type WorkVersionDeleteOne struct {
	wvd *WorkVersionDelete
}

// Where appends a list predicates to the WorkVersionDelete builder.
func (wvdo *WorkVersionDeleteOne) Where(ps ...predicate.WorkVersion) *WorkVersionDeleteOne {
	wvdo.wvd.mutation.Where(ps...)
	return wvdo
}

// Exec executes the deletion query.
func (wvdo *WorkVersionDeleteOne) Exec(ctx context.Context) error {
	n, err := wvdo.wvd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workversion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (wvdo *WorkVersionDeleteOne) ExecX(ctx context.Context) {
	if err := wvdo.Exec(ctx); err != nil {
		panic(err)
	}
}
