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

// WorkVersionCreate is the builder for creating a WorkVersion entity.
type WorkVersionCreate struct {
	config
	mutation *WorkVersionMutation
	hooks    []Hook
}

// SetWorkID sets the "work_id" field.
func (wvc *WorkVersionCreate) SetWorkID(u uint) *WorkVersionCreate {
	wvc.mutation.SetWorkID(u)
	return wvc
}

// SetVersion sets the "version" field.
func (wvc *WorkVersionCreate) SetVersion(i int) *WorkVersionCreate {
	wvc.mutation.SetVersion(i)
	return wvc
}

// SetUserID sets the "user_id" field.
func (wvc *WorkVersionCreate) SetUserID(u uint) *WorkVersionCreate {
	wvc.mutation.SetUserID(u)
	return wvc
}

// SetCommitMessage sets the "commit_message" field.
func (wvc *WorkVersionCreate) SetCommitMessage(s string) *WorkVersionCreate {
	wvc.mutation.SetCommitMessage(s)
	return wvc
}

// SetChangesSummary sets the "changes_summary" field.
func (wvc *WorkVersionCreate) SetChangesSummary(s string) *WorkVersionCreate {
	wvc.mutation.SetChangesSummary(s)
	return wvc
}

// SetNillableChangesSummary sets the "changes_summary" field if the given value is not nil.
func (wvc *WorkVersionCreate) SetNillableChangesSummary(s *string) *WorkVersionCreate {
	if s != nil {
		wvc.SetChangesSummary(*s)
	}
	return wvc
}

// SetFilePath sets the "file_path" field.
func (wvc *WorkVersionCreate) SetFilePath(s string) *WorkVersionCreate {
	wvc.mutation.SetFilePath(s)
	return wvc
}

// SetFileSize sets the "file_size" field.
func (wvc *WorkVersionCreate) SetFileSize(i int64) *WorkVersionCreate {
	wvc.mutation.SetFileSize(i)
	return wvc
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (wvc *WorkVersionCreate) SetNillableFileSize(i *int64) *WorkVersionCreate {
	if i != nil {
		wvc.SetFileSize(*i)
	}
	return wvc
}

// SetIsMerged sets the "is_merged" field.
func (wvc *WorkVersionCreate) SetIsMerged(b bool) *WorkVersionCreate {
	wvc.mutation.SetIsMerged(b)
	return wvc
}

// SetNillableIsMerged sets the "is_merged" field if the given value is not nil.
func (wvc *WorkVersionCreate) SetNillableIsMerged(b *bool) *WorkVersionCreate {
	if b != nil {
		wvc.SetIsMerged(*b)
	}
	return wvc
}

// SetMergedAt sets the "merged_at" field.
func (wvc *WorkVersionCreate) SetMergedAt(t time.Time) *WorkVersionCreate {
	wvc.mutation.SetMergedAt(t)
	return wvc
}

// SetNillableMergedAt sets the "merged_at" field if the given value is not nil.
func (wvc *WorkVersionCreate) SetNillableMergedAt(t *time.Time) *WorkVersionCreate {
	if t != nil {
		wvc.SetMergedAt(*t)
	}
	return wvc
}

// SetMergedBy sets the "merged_by" field.
func (wvc *WorkVersionCreate) SetMergedBy(u uint) *WorkVersionCreate {
	wvc.mutation.SetMergedBy(u)
	return wvc
}

// SetNillableMergedBy sets the "merged_by" field if the given value is not nil.
func (wvc *WorkVersionCreate) SetNillableMergedBy(u *uint) *WorkVersionCreate {
	if u != nil {
		wvc.SetMergedBy(*u)
	}
	return wvc
}

// SetCreatedAt sets the "created_at" field.
func (wvc *WorkVersionCreate) SetCreatedAt(t time.Time) *WorkVersionCreate {
	wvc.mutation.SetCreatedAt(t)
	return wvc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wvc *WorkVersionCreate) SetNillableCreatedAt(t *time.Time) *WorkVersionCreate {
	if t != nil {
		wvc.SetCreatedAt(*t)
	}
	return wvc
}

// SetID sets the "id" field.
func (wvc *WorkVersionCreate) SetID(u uint) *WorkVersionCreate {
	wvc.mutation.SetID(u)
	return wvc
}

// SetWork sets the "work" edge to the Work entity.
func (wvc *WorkVersionCreate) SetWork(w *Work) *WorkVersionCreate {
	return wvc.SetWorkID(w.ID)
}

// SetProposalID sets the "proposal" edge to the WorkProposal entity by ID.
func (wvc *WorkVersionCreate) SetProposalID(id uint) *WorkVersionCreate {
	wvc.mutation.SetProposalID(id)
	return wvc
}

// SetNillableProposalID sets the "proposal" edge to the WorkProposal entity by ID if the given value is not nil.
func (wvc *WorkVersionCreate) SetNillableProposalID(id *uint) *WorkVersionCreate {
	if id != nil {
		wvc = wvc.SetProposalID(*id)
	}
	return wvc
}

// SetProposal sets the "proposal" edge to the WorkProposal entity.
func (wvc *WorkVersionCreate) SetProposal(w *WorkProposal) *WorkVersionCreate {
	return wvc.SetProposalID(w.ID)
}

// Mutation returns the WorkVersionMutation object of the builder.
func (wvc *WorkVersionCreate) Mutation() *WorkVersionMutation {
	return wvc.mutation
}

// Save creates the WorkVersion in the database.
func (wvc *WorkVersionCreate) Save(ctx context.Context) (*WorkVersion, error) {
	wvc.defaults()
	return withHooks(ctx, wvc.sqlSave, wvc.mutation, wvc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wvc *WorkVersionCreate) SaveX(ctx context.Context) *WorkVersion {
	v, err := wvc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wvc *WorkVersionCreate) Exec(ctx context.Context) error {
	_, err := wvc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wvc *WorkVersionCreate) ExecX(ctx context.Context) {
	if err := wvc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wvc *WorkVersionCreate) defaults() {
	if _, ok := wvc.mutation.FileSize(); !ok {
		v := workversion.DefaultFileSize
		wvc.mutation.SetFileSize(v)
	}
	if _, ok := wvc.mutation.IsMerged(); !ok {
		v := workversion.DefaultIsMerged
		wvc.mutation.SetIsMerged(v)
	}
	if _, ok := wvc.mutation.CreatedAt(); !ok {
		v := workversion.DefaultCreatedAt()
		wvc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wvc *WorkVersionCreate) check() error {
	if _, ok := wvc.mutation.WorkID(); !ok {
		return &ValidationError{Name: "work_id", err: errors.New(`ent: missing required field "WorkVersion.work_id"`)}
	}
	if _, ok := wvc.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "WorkVersion.version"`)}
	}
	if v, ok := wvc.mutation.Version(); ok {
		if err := workversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "WorkVersion.version": %w`, err)}
		}
	}
	if _, ok := wvc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "WorkVersion.user_id"`)}
	}
	if _, ok := wvc.mutation.CommitMessage(); !ok {
		return &ValidationError{Name: "commit_message", err: errors.New(`ent: missing required field "WorkVersion.commit_message"`)}
	}
	if v, ok := wvc.mutation.CommitMessage(); ok {
		if err := workversion.CommitMessageValidator(v); err != nil {
			return &ValidationError{Name: "commit_message", err: fmt.Errorf(`ent: validator failed for field "WorkVersion.commit_message": %w`, err)}
		}
	}
	if _, ok := wvc.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "WorkVersion.file_path"`)}
	}
	if v, ok := wvc.mutation.FilePath(); ok {
		if err := workversion.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "WorkVersion.file_path": %w`, err)}
		}
	}
	if _, ok := wvc.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "WorkVersion.file_size"`)}
	}
	if v, ok := wvc.mutation.FileSize(); ok {
		if err := workversion.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "WorkVersion.file_size": %w`, err)}
		}
	}
	if _, ok := wvc.mutation.IsMerged(); !ok {
		return &ValidationError{Name: "is_merged", err: errors.New(`ent: missing required field "WorkVersion.is_merged"`)}
	}
	if _, ok := wvc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkVersion.created_at"`)}
	}
	if len(wvc.mutation.WorkIDs()) == 0 {
		return &ValidationError{Name: "work", err: errors.New(`ent: missing required edge "WorkVersion.work"`)}
	}
	return nil
}

func (wvc *WorkVersionCreate) sqlSave(ctx context.Context) (*WorkVersion, error) {
	if err := wvc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wvc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wvc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	wvc.mutation.id = &_node.ID
	wvc.mutation.done = true
	return _node, nil
}

func (wvc *WorkVersionCreate) createSpec() (*WorkVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkVersion{config: wvc.config}
		_spec = sqlgraph.NewCreateSpec(workversion.Table, sqlgraph.NewFieldSpec(workversion.FieldID, field.TypeUint))
	)
	if id, ok := wvc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := wvc.mutation.Version(); ok {
		_spec.SetField(workversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := wvc.mutation.UserID(); ok {
		_spec.SetField(workversion.FieldUserID, field.TypeUint, value)
		_node.UserID = value
	}
	if value, ok := wvc.mutation.CommitMessage(); ok {
		_spec.SetField(workversion.FieldCommitMessage, field.TypeString, value)
		_node.CommitMessage = value
	}
	if value, ok := wvc.mutation.ChangesSummary(); ok {
		_spec.SetField(workversion.FieldChangesSummary, field.TypeString, value)
		_node.ChangesSummary = value
	}
	if value, ok := wvc.mutation.FilePath(); ok {
		_spec.SetField(workversion.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := wvc.mutation.FileSize(); ok {
		_spec.SetField(workversion.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := wvc.mutation.IsMerged(); ok {
		_spec.SetField(workversion.FieldIsMerged, field.TypeBool, value)
		_node.IsMerged = value
	}
	if value, ok := wvc.mutation.MergedAt(); ok {
		_spec.SetField(workversion.FieldMergedAt, field.TypeTime, value)
		_node.MergedAt = &value
	}
	if value, ok := wvc.mutation.MergedBy(); ok {
		_spec.SetField(workversion.FieldMergedBy, field.TypeUint, value)
		_node.MergedBy = &value
	}
	if value, ok := wvc.mutation.CreatedAt(); ok {
		_spec.SetField(workversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := wvc.mutation.WorkIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workversion.WorkTable,
			Columns: []string{workversion.WorkColumn},
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
	if nodes := wvc.mutation.ProposalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   workversion.ProposalTable,
			Columns: []string{workversion.ProposalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workproposal.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkVersionCreateBulk is the builder for creating many WorkVersion entities in bulk.
type WorkVersionCreateBulk struct {
	config
	err      error
	builders []*WorkVersionCreate
}

// Save creates the WorkVersion entities in the database.
func (wvcb *WorkVersionCreateBulk) Save(ctx context.Context) ([]*WorkVersion, error) {
	if wvcb.err != nil {
		return nil, wvcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wvcb.builders))
	nodes := make([]*WorkVersion, len(wvcb.builders))
	mutators := make([]Mutator, len(wvcb.builders))
	for i := range wvcb.builders {
		func(i int, root context.Context) {
			builder := wvcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkVersionMutation)
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
					_, err = mutators[i+1].Mutate(root, wvcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wvcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wvcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wvcb *WorkVersionCreateBulk) SaveX(ctx context.Context) []*WorkVersion {
	v, err := wvcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wvcb *WorkVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := wvcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wvcb *WorkVersionCreateBulk) ExecX(ctx context.Context) {
	if err := wvcb.Exec(ctx); err != nil {
		panic(err)
	}
}
