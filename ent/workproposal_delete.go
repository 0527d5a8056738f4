// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muselink-c/muselink-app/ent/predicate"
	"github.com/muselink-c/muselink-app/ent/workproposal"
)

// WorkProposalDelete is the builder for deleting a WorkProposal entity.
type WorkProposalDelete struct {
	config
	hooks    []Hook
	mutation *WorkProposalMutation
}

// Where appends a list predicates to the WorkProposalDelete builder.
func (wpd *WorkProposalDelete) Where(ps ...predicate.WorkProposal) *WorkProposalDelete {
	wpd.mutation.Where(ps...)
	return wpd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (wpd *WorkProposalDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, wpd.sqlExec, wpd.mutation, wpd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (wpd *WorkProposalDelete) ExecX(ctx context.Context) int {
	n, err := wpd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (wpd *WorkProposalDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(workproposal.Table, sqlgraph.NewFieldSpec(workproposal.FieldID, field.TypeUint))
	if ps := wpd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, wpd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	wpd.mutation.done = true
	return affected, err
}

// WorkProposalDeleteOne is the builder for deleting a single WorkProposal entity.
type WorkProposalDeleteOne struct {
	wpd *WorkProposalDelete
}

// Where appends a list predicates to the WorkProposalDelete builder.
func (wpdo *WorkProposalDeleteOne) Where(ps ...predicate.WorkProposal) *WorkProposalDeleteOne {
	wpdo.wpd.mutation.Where(ps...)
	return wpdo
}

// Exec executes the deletion query.
func (wpdo *WorkProposalDeleteOne) Exec(ctx context.Context) error {
	n, err := wpdo.wpd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workproposal.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (wpdo *WorkProposalDeleteOne) ExecX(ctx context.Context) {
	if err := wpdo.Exec(ctx); err != nil {
		panic(err)
	}
}
