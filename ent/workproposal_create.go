// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muselink-c/muselink-app/ent/work"
	"github.com/muselink-c/muselink-app/ent/workproposal"
	"github.com/muselink-c/muselink-app/ent/workversion"
)

// WorkProposalCreate is the builder for creating a WorkProposal entity.
type WorkProposalCreate struct {
	config
	mutation *WorkProposalMutation
	hooks    []Hook
}

// SetWorkID sets the "work_id" field.
func (wpc *WorkProposalCreate) SetWorkID(u uint) *WorkProposalCreate {
	wpc.mutation.SetWorkID(u)
	return wpc
}

// SetVersionID sets the "version_id" field.
func (wpc *WorkProposalCreate) SetVersionID(u uint) *WorkProposalCreate {
	wpc.mutation.SetVersionID(u)
	return wpc
}

// SetRequesterID sets the "requester_id" field.
func (wpc *WorkProposalCreate) SetRequesterID(u uint) *WorkProposalCreate {
	wpc.mutation.SetRequesterID(u)
	return wpc
}

// SetTitle sets the "title" field.
func (wpc *WorkProposalCreate) SetTitle(s string) *WorkProposalCreate {
	wpc.mutation.SetTitle(s)
	return wpc
}

// SetDescription sets the "description" field.
func (wpc *WorkProposalCreate) SetDescription(s string) *WorkProposalCreate {
	wpc.mutation.SetDescription(s)
	return wpc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (wpc *WorkProposalCreate) SetNillableDescription(s *string) *WorkProposalCreate {
	if s != nil {
		wpc.SetDescription(*s)
	}
	return wpc
}

// SetStatus sets the "status" field.
func (wpc *WorkProposalCreate) SetStatus(w workproposal.Status) *WorkProposalCreate {
	wpc.mutation.SetStatus(w)
	return wpc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wpc *WorkProposalCreate) SetNillableStatus(w *workproposal.Status) *WorkProposalCreate {
	if w != nil {
		wpc.SetStatus(*w)
	}
	return wpc
}

// SetReviewedBy sets the "reviewed_by" field.
func (wpc *WorkProposalCreate) SetReviewedBy(u uint) *WorkProposalCreate {
	wpc.mutation.SetReviewedBy(u)
	return wpc
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (wpc *WorkProposalCreate) SetNillableReviewedBy(u *uint) *WorkProposalCreate {
	if u != nil {
		wpc.SetReviewedBy(*u)
	}
	return wpc
}

// SetReviewedAt sets the "reviewed_at" field.
func (wpc *WorkProposalCreate) SetReviewedAt(t time.Time) *WorkProposalCreate {
	wpc.mutation.SetReviewedAt(t)
	return wpc
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (wpc *WorkProposalCreate) SetNillableReviewedAt(t *time.Time) *WorkProposalCreate {
	if t != nil {
		wpc.SetReviewedAt(*t)
	}
	return wpc
}

// SetReviewComment sets the "review_comment" field.
func (wpc *WorkProposalCreate) SetReviewComment(s string) *WorkProposalCreate {
	wpc.mutation.SetReviewComment(s)
	return wpc
}

// SetNillableReviewComment sets the "review_comment" field if the given value is not nil.
func (wpc *WorkProposalCreate) SetNillableReviewComment(s *string) *WorkProposalCreate {
	if s != nil {
		wpc.SetReviewComment(*s)
	}
	return wpc
}

// SetCreatedAt sets the "created_at" field.
func (wpc *WorkProposalCreate) SetCreatedAt(t time.Time) *WorkProposalCreate {
	wpc.mutation.SetCreatedAt(t)
	return wpc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wpc *WorkProposalCreate) SetNillableCreatedAt(t *time.Time) *WorkProposalCreate {
	if t != nil {
		wpc.SetCreatedAt(*t)
	}
	return wpc
}

// SetUpdatedAt sets the "updated_at" field.
func (wpc *WorkProposalCreate) SetUpdatedAt(t time.Time) *WorkProposalCreate {
	wpc.mutation.SetUpdatedAt(t)
	return wpc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (wpc *WorkProposalCreate) SetNillableUpdatedAt(t *time.Time) *WorkProposalCreate {
	if t != nil {
		wpc.SetUpdatedAt(*t)
	}
	return wpc
}

// SetID sets the "id" field.
func (wpc *WorkProposalCreate) SetID(u uint) *WorkProposalCreate {
	wpc.mutation.SetID(u)
	return wpc
}

// SetWork sets the "work" edge to the Work entity.
func (wpc *WorkProposalCreate) SetWork(w *Work) *WorkProposalCreate {
	return wpc.SetWorkID(w.ID)
}

// SetVersion sets the "version" edge to the WorkVersion entity.
func (wpc *WorkProposalCreate) SetVersion(w *WorkVersion) *WorkProposalCreate {
	return wpc.SetVersionID(w.ID)
}

// Mutation returns the WorkProposalMutation object of the builder.
func (wpc *WorkProposalCreate) Mutation() *WorkProposalMutation {
	return wpc.mutation
}

// Save creates the WorkProposal in the database.
func (wpc *WorkProposalCreate) Save(ctx context.Context) (*WorkProposal, error) {
	wpc.defaults()
	return withHooks(ctx, wpc.sqlSave, wpc.mutation, wpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wpc *WorkProposalCreate) SaveX(ctx context.Context) *WorkProposal {
	v, err := wpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wpc *WorkProposalCreate) Exec(ctx context.Context) error {
	_, err := wpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wpc *WorkProposalCreate) ExecX(ctx context.Context) {
	if err := wpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wpc *WorkProposalCreate) defaults() {
	if _, ok := wpc.mutation.Status(); !ok {
		v := workproposal.DefaultStatus
		wpc.mutation.SetStatus(v)
	}
	if _, ok := wpc.mutation.CreatedAt(); !ok {
		v := workproposal.DefaultCreatedAt()
		wpc.mutation.SetCreatedAt(v)
	}
	if _, ok := wpc.mutation.UpdatedAt(); !ok {
		v := workproposal.DefaultUpdatedAt()
		wpc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wpc *WorkProposalCreate) check() error {
	if _, ok := wpc.mutation.WorkID(); !ok {
		return &ValidationError{Name: "work_id", err: errors.New(`ent: missing required field "WorkProposal.work_id"`)}
	}
	if _, ok := wpc.mutation.VersionID(); !ok {
		return &ValidationError{Name: "version_id", err: errors.New(`ent: missing required field "WorkProposal.version_id"`)}
	}
	if _, ok := wpc.mutation.RequesterID(); !ok {
		return &ValidationError{Name: "requester_id", err: errors.New(`ent: missing required field "WorkProposal.requester_id"`)}
	}
	if _, ok := wpc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "WorkProposal.title"`)}
	}
	if v, ok := wpc.mutation.Title(); ok {
		if err := workproposal.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "WorkProposal.title": %w`, err)}
		}
	}
	if _, ok := wpc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkProposal.status"`)}
	}
	if v, ok := wpc.mutation.Status(); ok {
		if err := workproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkProposal.status": %w`, err)}
		}
	}
	if v, ok := wpc.mutation.ReviewComment(); ok {
		if err := workproposal.ReviewCommentValidator(v); err != nil {
			return &ValidationError{Name: "review_comment", err: fmt.Errorf(`ent: validator failed for field "WorkProposal.review_comment": %w`, err)}
		}
	}
	if _, ok := wpc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkProposal.created_at"`)}
	}
	if _, ok := wpc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkProposal.updated_at"`)}
	}
	if len(wpc.mutation.WorkIDs()) == 0 {
		return &ValidationError{Name: "work", err: errors.New(`ent: missing required edge "WorkProposal.work"`)}
	}
	if len(wpc.mutation.VersionIDs()) == 0 {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required edge "WorkProposal.version"`)}
	}
	return nil
}

func (wpc *WorkProposalCreate) sqlSave(ctx context.Context) (*WorkProposal, error) {
	if err := wpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wpc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	wpc.mutation.id = &_node.ID
	wpc.mutation.done = true
	return _node, nil
}

func (wpc *WorkProposalCreate) createSpec() (*WorkProposal, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkProposal{config: wpc.config}
		_spec = sqlgraph.NewCreateSpec(workproposal.Table, sqlgraph.NewFieldSpec(workproposal.FieldID, field.TypeUint))
	)
	if id, ok := wpc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := wpc.mutation.RequesterID(); ok {
		_spec.SetField(workproposal.FieldRequesterID, field.TypeUint, value)
		_node.RequesterID = value
	}
	if value, ok := wpc.mutation.Title(); ok {
		_spec.SetField(workproposal.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := wpc.mutation.Description(); ok {
		_spec.SetField(workproposal.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := wpc.mutation.Status(); ok {
		_spec.SetField(workproposal.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := wpc.mutation.ReviewedBy(); ok {
		_spec.SetField(workproposal.FieldReviewedBy, field.TypeUint, value)
		_node.ReviewedBy = &value
	}
	if value, ok := wpc.mutation.ReviewedAt(); ok {
		_spec.SetField(workproposal.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := wpc.mutation.ReviewComment(); ok {
		_spec.SetField(workproposal.FieldReviewComment, field.TypeString, value)
		_node.ReviewComment = value
	}
	if value, ok := wpc.mutation.CreatedAt(); ok {
		_spec.SetField(workproposal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := wpc.mutation.UpdatedAt(); ok {
		_spec.SetField(workproposal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := wpc.mutation.WorkIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workproposal.WorkTable,
			Columns: []string{workproposal.WorkColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(work.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := wpc.mutation.VersionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   workproposal.VersionTable,
			Columns: []string{workproposal.VersionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workversion.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.VersionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkProposalCreateBulk is the builder for creating many WorkProposal entities in bulk.
type WorkProposalCreateBulk struct {
	config
	err      error
	builders []*WorkProposalCreate
}

// Save creates the WorkProposal entities in the database.
func (wpcb *WorkProposalCreateBulk) Save(ctx context.Context) ([]*WorkProposal, error) {
	if wpcb.err != nil {
		return nil, wpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wpcb.builders))
	nodes := make([]*WorkProposal, len(wpcb.builders))
	mutators := make([]Mutator, len(wpcb.builders))
	for i := range wpcb.builders {
		func(i int, root context.Context) {
			builder := wpcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkProposalMutation)
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
					_, err = mutators[i+1].Mutate(root, wpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wpcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint(id)
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
		if _, err := mutators[0].Mutate(ctx, wpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wpcb *WorkProposalCreateBulk) SaveX(ctx context.Context) []*WorkProposal {
	v, err := wpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wpcb *WorkProposalCreateBulk) Exec(ctx context.Context) error {
	_, err := wpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wpcb *WorkProposalCreateBulk) ExecX(ctx context.Context) {
	if err := wpcb.Exec(ctx); err != nil {
		panic(err)
	}
}
