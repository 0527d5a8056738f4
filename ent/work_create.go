// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muselink-c/muselink-app/ent/user"
	"github.com/muselink-c/muselink-app/ent/work"
	"github.com/muselink-c/muselink-app/ent/workproposal"
	"github.com/muselink-c/muselink-app/ent/workversion"
)

// WorkCreate is the builder for creating a Work entity.
type WorkCreate struct {
	config
	mutation *WorkMutation
	hooks    []Hook
}

// SetDeletedAt sets the "deleted_at" field.
func (wc *WorkCreate) SetDeletedAt(t time.Time) *WorkCreate {
	wc.mutation.SetDeletedAt(t)
	return wc
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (wc *WorkCreate) SetNillableDeletedAt(t *time.Time) *WorkCreate {
	if t != nil {
		wc.SetDeletedAt(*t)
	}
	return wc
}

// SetCreatedAt sets the "created_at" field.
func (wc *WorkCreate) SetCreatedAt(t time.Time) *WorkCreate {
	wc.mutation.SetCreatedAt(t)
	return wc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wc *WorkCreate) SetNillableCreatedAt(t *time.Time) *WorkCreate {
	if t != nil {
		wc.SetCreatedAt(*t)
	}
	return wc
}

// SetUpdatedAt sets the "updated_at" field.
func (wc *WorkCreate) SetUpdatedAt(t time.Time) *WorkCreate {
	wc.mutation.SetUpdatedAt(t)
	return wc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (wc *WorkCreate) SetNillableUpdatedAt(t *time.Time) *WorkCreate {
	if t != nil {
		wc.SetUpdatedAt(*t)
	}
	return wc
}

// SetUserID sets the "user_id" field.
func (wc *WorkCreate) SetUserID(u uint) *WorkCreate {
	wc.mutation.SetUserID(u)
	return wc
}

// SetTitle sets the "title" field.
func (wc *WorkCreate) SetTitle(s string) *WorkCreate {
	wc.mutation.SetTitle(s)
	return wc
}

// SetDescription sets the "description" field.
func (wc *WorkCreate) SetDescription(s string) *WorkCreate {
	wc.mutation.SetDescription(s)
	return wc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (wc *WorkCreate) SetNillableDescription(s *string) *WorkCreate {
	if s != nil {
		wc.SetDescription(*s)
	}
	return wc
}

// SetGenre sets the "genre" field.
func (wc *WorkCreate) SetGenre(s string) *WorkCreate {
	wc.mutation.SetGenre(s)
	return wc
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (wc *WorkCreate) SetNillableGenre(s *string) *WorkCreate {
	if s != nil {
		wc.SetGenre(*s)
	}
	return wc
}

// SetFilePath sets the "file_path" field.
func (wc *WorkCreate) SetFilePath(s string) *WorkCreate {
	wc.mutation.SetFilePath(s)
	return wc
}

// SetFileSize sets the "file_size" field.
func (wc *WorkCreate) SetFileSize(i int64) *WorkCreate {
	wc.mutation.SetFileSize(i)
	return wc
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (wc *WorkCreate) SetNillableFileSize(i *int64) *WorkCreate {
	if i != nil {
		wc.SetFileSize(*i)
	}
	return wc
}

// SetAllowCollaboration sets the "allow_collaboration" field.
func (wc *WorkCreate) SetAllowCollaboration(b bool) *WorkCreate {
	wc.mutation.SetAllowCollaboration(b)
	return wc
}

// SetNillableAllowCollaboration sets the "allow_collaboration" field if the given value is not nil.
func (wc *WorkCreate) SetNillableAllowCollaboration(b *bool) *WorkCreate {
	if b != nil {
		wc.SetAllowCollaboration(*b)
	}
	return wc
}

// SetPlayCount sets the "play_count" field.
func (wc *WorkCreate) SetPlayCount(i int64) *WorkCreate {
	wc.mutation.SetPlayCount(i)
	return wc
}

// SetNillablePlayCount sets the "play_count" field if the given value is not nil.
func (wc *WorkCreate) SetNillablePlayCount(i *int64) *WorkCreate {
	if i != nil {
		wc.SetPlayCount(*i)
	}
	return wc
}

// SetStarCount sets the "star_count" field.
func (wc *WorkCreate) SetStarCount(i int64) *WorkCreate {
	wc.mutation.SetStarCount(i)
	return wc
}

// SetNillableStarCount sets the "star_count" field if the given value is not nil.
func (wc *WorkCreate) SetNillableStarCount(i *int64) *WorkCreate {
	if i != nil {
		wc.SetStarCount(*i)
	}
	return wc
}

// SetStatus sets the "status" field.
func (wc *WorkCreate) SetStatus(i int) *WorkCreate {
	wc.mutation.SetStatus(i)
	return wc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wc *WorkCreate) SetNillableStatus(i *int) *WorkCreate {
	if i != nil {
		wc.SetStatus(*i)
	}
	return wc
}

// SetID sets the "id" field.
func (wc *WorkCreate) SetID(u uint) *WorkCreate {
	wc.mutation.SetID(u)
	return wc
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (wc *WorkCreate) SetOwnerID(id uint) *WorkCreate {
	wc.mutation.SetOwnerID(id)
	return wc
}

// SetOwner sets the "owner" edge to the User entity.
func (wc *WorkCreate) SetOwner(u *User) *WorkCreate {
	return wc.SetOwnerID(u.ID)
}

// AddVersionIDs adds the "versions" edge to the WorkVersion entity by IDs.
func (wc *WorkCreate) AddVersionIDs(ids ...uint) *WorkCreate {
	wc.mutation.AddVersionIDs(ids...)
	return wc
}

// AddVersions adds the "versions" edges to the WorkVersion entity.
func (wc *WorkCreate) AddVersions(w ...*WorkVersion) *WorkCreate {
	ids := make([]uint, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wc.AddVersionIDs(ids...)
}

// AddProposalIDs adds the "proposals" edge to the WorkProposal entity by IDs.
func (wc *WorkCreate) AddProposalIDs(ids ...uint) *WorkCreate {
	wc.mutation.AddProposalIDs(ids...)
	return wc
}

// AddProposals adds the "proposals" edges to the WorkProposal entity.
func (wc *WorkCreate) AddProposals(w ...*WorkProposal) *WorkCreate {
	ids := make([]uint, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wc.AddProposalIDs(ids...)
}

// Mutation returns the WorkMutation object of the builder.
func (wc *WorkCreate) Mutation() *WorkMutation {
	return wc.mutation
}

// Save creates the Work in the database.
func (wc *WorkCreate) Save(ctx context.Context) (*Work, error) {
	if err := wc.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, wc.sqlSave, wc.mutation, wc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wc *WorkCreate) SaveX(ctx context.Context) *Work {
	v, err := wc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wc *WorkCreate) Exec(ctx context.Context) error {
	_, err := wc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wc *WorkCreate) ExecX(ctx context.Context) {
	if err := wc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wc *WorkCreate) defaults() error {
	if _, ok := wc.mutation.CreatedAt(); !ok {
		if work.DefaultCreatedAt == nil {
			return fmt.Errorf("ent: uninitialized work.DefaultCreatedAt (forgotten import ent/runtime?)")
		}
		v := work.DefaultCreatedAt()
		wc.mutation.SetCreatedAt(v)
	}
	if _, ok := wc.mutation.UpdatedAt(); !ok {
		if work.DefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized work.DefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := work.DefaultUpdatedAt()
		wc.mutation.SetUpdatedAt(v)
	}
	if _, ok := wc.mutation.FileSize(); !ok {
		v := work.DefaultFileSize
		wc.mutation.SetFileSize(v)
	}
	if _, ok := wc.mutation.AllowCollaboration(); !ok {
		v := work.DefaultAllowCollaboration
		wc.mutation.SetAllowCollaboration(v)
	}
	if _, ok := wc.mutation.PlayCount(); !ok {
		v := work.DefaultPlayCount
		wc.mutation.SetPlayCount(v)
	}
	if _, ok := wc.mutation.StarCount(); !ok {
		v := work.DefaultStarCount
		wc.mutation.SetStarCount(v)
	}
	if _, ok := wc.mutation.Status(); !ok {
		v := work.DefaultStatus
		wc.mutation.SetStatus(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (wc *WorkCreate) check() error {
	if _, ok := wc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Work.created_at"`)}
	}
	if _, ok := wc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Work.updated_at"`)}
	}
	if _, ok := wc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Work.user_id"`)}
	}
	if _, ok := wc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Work.title"`)}
	}
	if v, ok := wc.mutation.Title(); ok {
		if err := work.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Work.title": %w`, err)}
		}
	}
	if v, ok := wc.mutation.Genre(); ok {
		if err := work.GenreValidator(v); err != nil {
			return &ValidationError{Name: "genre", err: fmt.Errorf(`ent: validator failed for field "Work.genre": %w`, err)}
		}
	}
	if _, ok := wc.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "Work.file_path"`)}
	}
	if v, ok := wc.mutation.FilePath(); ok {
		if err := work.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Work.file_path": %w`, err)}
		}
	}
	if _, ok := wc.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Work.file_size"`)}
	}
	if v, ok := wc.mutation.FileSize(); ok {
		if err := work.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Work.file_size": %w`, err)}
		}
	}
	if _, ok := wc.mutation.AllowCollaboration(); !ok {
		return &ValidationError{Name: "allow_collaboration", err: errors.New(`ent: missing required field "Work.allow_collaboration"`)}
	}
	if _, ok := wc.mutation.PlayCount(); !ok {
		return &ValidationError{Name: "play_count", err: errors.New(`ent: missing required field "Work.play_count"`)}
	}
	if v, ok := wc.mutation.PlayCount(); ok {
		if err := work.PlayCountValidator(v); err != nil {
			return &ValidationError{Name: "play_count", err: fmt.Errorf(`ent: validator failed for field "Work.play_count": %w`, err)}
		}
	}
	if _, ok := wc.mutation.StarCount(); !ok {
		return &ValidationError{Name: "star_count", err: errors.New(`ent: missing required field "Work.star_count"`)}
	}
	if v, ok := wc.mutation.StarCount(); ok {
		if err := work.StarCountValidator(v); err != nil {
			return &ValidationError{Name: "star_count", err: fmt.Errorf(`ent: validator failed for field "Work.star_count": %w`, err)}
		}
	}
	if _, ok := wc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Work.status"`)}
	}
	if len(wc.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Work.owner"`)}
	}
	return nil
}

func (wc *WorkCreate) sqlSave(ctx context.Context) (*Work, error) {
	if err := wc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	wc.mutation.id = &_node.ID
	wc.mutation.done = true
	return _node, nil
}

func (wc *WorkCreate) createSpec() (*Work, *sqlgraph.CreateSpec) {
	var (
		_node = &Work{config: wc.config}
		_spec = sqlgraph.NewCreateSpec(work.Table, sqlgraph.NewFieldSpec(work.FieldID, field.TypeUint))
	)
	if id, ok := wc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := wc.mutation.DeletedAt(); ok {
		_spec.SetField(work.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := wc.mutation.CreatedAt(); ok {
		_spec.SetField(work.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := wc.mutation.UpdatedAt(); ok {
		_spec.SetField(work.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := wc.mutation.Title(); ok {
		_spec.SetField(work.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := wc.mutation.Description(); ok {
		_spec.SetField(work.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := wc.mutation.Genre(); ok {
		_spec.SetField(work.FieldGenre, field.TypeString, value)
		_node.Genre = value
	}
	if value, ok := wc.mutation.FilePath(); ok {
		_spec.SetField(work.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := wc.mutation.FileSize(); ok {
		_spec.SetField(work.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := wc.mutation.AllowCollaboration(); ok {
		_spec.SetField(work.FieldAllowCollaboration, field.TypeBool, value)
		_node.AllowCollaboration = value
	}
	if value, ok := wc.mutation.PlayCount(); ok {
		_spec.SetField(work.FieldPlayCount, field.TypeInt64, value)
		_node.PlayCount = value
	}
	if value, ok := wc.mutation.StarCount(); ok {
		_spec.SetField(work.FieldStarCount, field.TypeInt64, value)
		_node.StarCount = value
	}
	if value, ok := wc.mutation.Status(); ok {
		_spec.SetField(work.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if nodes := wc.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   work.OwnerTable,
			Columns: []string{work.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := wc.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   work.VersionsTable,
			Columns: []string{work.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workversion.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := wc.mutation.ProposalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   work.ProposalsTable,
			Columns: []string{work.ProposalsColumn},
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

// WorkCreateBulk is the builder for creating many Work entities in bulk.
type WorkCreateBulk struct {
	config
	err      error
	builders []*WorkCreate
}

// Save creates the Work entities in the database.
func (wcb *WorkCreateBulk) Save(ctx context.Context) ([]*Work, error) {
	if wcb.err != nil {
		return nil, wcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wcb.builders))
	nodes := make([]*Work, len(wcb.builders))
	mutators := make([]Mutator, len(wcb.builders))
	for i := range wcb.builders {
		func(i int, root context.Context) {
			builder := wcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkMutation)
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
					_, err = mutators[i+1].Mutate(root, wcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wcb *WorkCreateBulk) SaveX(ctx context.Context) []*Work {
	v, err := wcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wcb *WorkCreateBulk) Exec(ctx context.Context) error {
	_, err := wcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wcb *WorkCreateBulk) ExecX(ctx context.Context) {
	if err := wcb.Exec(ctx); err != nil {
		panic(err)
	}
}
