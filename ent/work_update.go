// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muselink-c/muselink-app/ent/predicate"
	"github.com/muselink-c/muselink-app/ent/user"
	"github.com/muselink-c/muselink-app/ent/work"
	"github.com/muselink-c/muselink-app/ent/workproposal"
	"github.com/muselink-c/muselink-app/ent/workversion"
)

// WorkUpdate is the builder for updating Work entities.
type WorkUpdate struct {
	config
	hooks    []Hook
	mutation *WorkMutation
}

// Where appends a list predicates to the WorkUpdate builder.
func (wu *WorkUpdate) Where(ps ...predicate.Work) *WorkUpdate {
	wu.mutation.Where(ps...)
	return wu
}

// SetDeletedAt sets the "deleted_at" field.
func (wu *WorkUpdate) SetDeletedAt(t time.Time) *WorkUpdate {
	wu.mutation.SetDeletedAt(t)
	return wu
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (wu *WorkUpdate) SetNillableDeletedAt(t *time.Time) *WorkUpdate {
	if t != nil {
		wu.SetDeletedAt(*t)
	}
	return wu
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (wu *WorkUpdate) ClearDeletedAt() *WorkUpdate {
	wu.mutation.ClearDeletedAt()
	return wu
}

// SetUpdatedAt sets the "updated_at" field.
func (wu *WorkUpdate) SetUpdatedAt(t time.Time) *WorkUpdate {
	wu.mutation.SetUpdatedAt(t)
	return wu
}

// SetUserID sets the "user_id" field.
func (wu *WorkUpdate) SetUserID(u uint) *WorkUpdate {
	wu.mutation.SetUserID(u)
	return wu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (wu *WorkUpdate) SetNillableUserID(u *uint) *WorkUpdate {
	if u != nil {
		wu.SetUserID(*u)
	}
	return wu
}

// SetTitle sets the "title" field.
func (wu *WorkUpdate) SetTitle(s string) *WorkUpdate {
	wu.mutation.SetTitle(s)
	return wu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (wu *WorkUpdate) SetNillableTitle(s *string) *WorkUpdate {
	if s != nil {
		wu.SetTitle(*s)
	}
	return wu
}

// SetDescription sets the "description" field.
func (wu *WorkUpdate) SetDescription(s string) *WorkUpdate {
	wu.mutation.SetDescription(s)
	return wu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (wu *WorkUpdate) SetNillableDescription(s *string) *WorkUpdate {
	if s != nil {
		wu.SetDescription(*s)
	}
	return wu
}

// ClearDescription clears the value of the "description" field.
func (wu *WorkUpdate) ClearDescription() *WorkUpdate {
	wu.mutation.ClearDescription()
	return wu
}

// SetGenre sets the "genre" field.
func (wu *WorkUpdate) SetGenre(s string) *WorkUpdate {
	wu.mutation.SetGenre(s)
	return wu
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (wu *WorkUpdate) SetNillableGenre(s *string) *WorkUpdate {
	if s != nil {
		wu.SetGenre(*s)
	}
	return wu
}

// ClearGenre clears the value of the "genre" field.
func (wu *WorkUpdate) ClearGenre() *WorkUpdate {
	wu.mutation.ClearGenre()
	return wu
}

// SetFilePath sets the "file_path" field.
func (wu *WorkUpdate) SetFilePath(s string) *WorkUpdate {
	wu.mutation.SetFilePath(s)
	return wu
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (wu *WorkUpdate) SetNillableFilePath(s *string) *WorkUpdate {
	if s != nil {
		wu.SetFilePath(*s)
	}
	return wu
}

// SetFileSize sets the "file_size" field.
func (wu *WorkUpdate) SetFileSize(i int64) *WorkUpdate {
	wu.mutation.ResetFileSize()
	wu.mutation.SetFileSize(i)
	return wu
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (wu *WorkUpdate) SetNillableFileSize(i *int64) *WorkUpdate {
	if i != nil {
		wu.SetFileSize(*i)
	}
	return wu
}

// AddFileSize adds i to the "file_size" field.
func (wu *WorkUpdate) AddFileSize(i int64) *WorkUpdate {
	wu.mutation.AddFileSize(i)
	return wu
}

// SetAllowCollaboration sets the "allow_collaboration" field.
func (wu *WorkUpdate) SetAllowCollaboration(b bool) *WorkUpdate {
	wu.mutation.SetAllowCollaboration(b)
	return wu
}

// SetNillableAllowCollaboration sets the "allow_collaboration" field if the given value is not nil.
func (wu *WorkUpdate) SetNillableAllowCollaboration(b *bool) *WorkUpdate {
	if b != nil {
		wu.SetAllowCollaboration(*b)
	}
	return wu
}

// SetPlayCount sets the "play_count" field.
func (wu *WorkUpdate) SetPlayCount(i int64) *WorkUpdate {
	wu.mutation.ResetPlayCount()
	wu.mutation.SetPlayCount(i)
	return wu
}

// SetNillablePlayCount sets the "play_count" field if the given value is not nil.
func (wu *WorkUpdate) SetNillablePlayCount(i *int64) *WorkUpdate {
	if i != nil {
		wu.SetPlayCount(*i)
	}
	return wu
}

// AddPlayCount adds i to the "play_count" field.
func (wu *WorkUpdate) AddPlayCount(i int64) *WorkUpdate {
	wu.mutation.AddPlayCount(i)
	return wu
}

// SetStarCount sets the "star_count" field.
func (wu *WorkUpdate) SetStarCount(i int64) *WorkUpdate {
	wu.mutation.ResetStarCount()
	wu.mutation.SetStarCount(i)
	return wu
}

// SetNillableStarCount sets the "star_count" field if the given value is not nil.
func (wu *WorkUpdate) SetNillableStarCount(i *int64) *WorkUpdate {
	if i != nil {
		wu.SetStarCount(*i)
	}
	return wu
}

// AddStarCount adds i to the "star_count" field.
func (wu *WorkUpdate) AddStarCount(i int64) *WorkUpdate {
	wu.mutation.AddStarCount(i)
	return wu
}

// SetStatus sets the "status" field.
func (wu *WorkUpdate) SetStatus(i int) *WorkUpdate {
	wu.mutation.ResetStatus()
	wu.mutation.SetStatus(i)
	return wu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wu *WorkUpdate) SetNillableStatus(i *int) *WorkUpdate {
	if i != nil {
		wu.SetStatus(*i)
	}
	return wu
}

// AddStatus adds i to the "status" field.
func (wu *WorkUpdate) AddStatus(i int) *WorkUpdate {
	wu.mutation.AddStatus(i)
	return wu
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (wu *WorkUpdate) SetOwnerID(id uint) *WorkUpdate {
	wu.mutation.SetOwnerID(id)
	return wu
}

// SetOwner sets the "owner" edge to the User entity.
func (wu *WorkUpdate) SetOwner(u *User) *WorkUpdate {
	return wu.SetOwnerID(u.ID)
}

// AddVersionIDs adds the "versions" edge to the WorkVersion entity by IDs.
func (wu *WorkUpdate) AddVersionIDs(ids ...uint) *WorkUpdate {
	wu.mutation.AddVersionIDs(ids...)
	return wu
}

// AddVersions adds the "versions" edges to the WorkVersion entity.
func (wu *WorkUpdate) AddVersions(w ...*WorkVersion) *WorkUpdate {
	ids := make([]uint, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wu.AddVersionIDs(ids...)
}

// AddProposalIDs adds the "proposals" edge to the WorkProposal entity by IDs.
func (wu *WorkUpdate) AddProposalIDs(ids ...uint) *WorkUpdate {
	wu.mutation.AddProposalIDs(ids...)
	return wu
}

// AddProposals adds the "proposals" edges to the WorkProposal entity.
func (wu *WorkUpdate) AddProposals(w ...*WorkProposal) *WorkUpdate {
	ids := make([]uint, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wu.AddProposalIDs(ids...)
}

// Mutation returns the WorkMutation object of the builder.
func (wu *WorkUpdate) Mutation() *WorkMutation {
	return wu.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (wu *WorkUpdate) ClearOwner() *WorkUpdate {
	wu.mutation.ClearOwner()
	return wu
}

// ClearVersions clears all "versions" edges to the WorkVersion entity.
func (wu *WorkUpdate) ClearVersions() *WorkUpdate {
	wu.mutation.ClearVersions()
	return wu
}

// RemoveVersionIDs removes the "versions" edge to WorkVersion entities by IDs.
func (wu *WorkUpdate) RemoveVersionIDs(ids ...uint) *WorkUpdate {
	wu.mutation.RemoveVersionIDs(ids...)
	return wu
}

// RemoveVersions removes "versions" edges to WorkVersion entities.
func (wu *WorkUpdate) RemoveVersions(w ...*WorkVersion) *WorkUpdate {
	ids := make([]uint, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wu.RemoveVersionIDs(ids...)
}

// ClearProposals clears all "proposals" edges to the WorkProposal entity.
func (wu *WorkUpdate) ClearProposals() *WorkUpdate {
	wu.mutation.ClearProposals()
	return wu
}

// RemoveProposalIDs removes the "proposals" edge to WorkProposal entities by IDs.
func (wu *WorkUpdate) RemoveProposalIDs(ids ...uint) *WorkUpdate {
	wu.mutation.RemoveProposalIDs(ids...)
	return wu
}

// RemoveProposals removes "proposals" edges to WorkProposal entities.
func (wu *WorkUpdate) RemoveProposals(w ...*WorkProposal) *WorkUpdate {
	ids := make([]uint, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wu.RemoveProposalIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wu *WorkUpdate) Save(ctx context.Context) (int, error) {
	if err := wu.defaults(); err != nil {
		return 0, err
	}
	return withHooks(ctx, wu.sqlSave, wu.mutation, wu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wu *WorkUpdate) SaveX(ctx context.Context) int {
	affected, err := wu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wu *WorkUpdate) Exec(ctx context.Context) error {
	_, err := wu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wu *WorkUpdate) ExecX(ctx context.Context) {
	if err := wu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wu *WorkUpdate) defaults() error {
	if _, ok := wu.mutation.UpdatedAt(); !ok {
		if work.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized work.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := work.UpdateDefaultUpdatedAt()
		wu.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (wu *WorkUpdate) check() error {
	if v, ok := wu.mutation.Title(); ok {
		if err := work.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Work.title": %w`, err)}
		}
	}
	if v, ok := wu.mutation.Genre(); ok {
		if err := work.GenreValidator(v); err != nil {
			return &ValidationError{Name: "genre", err: fmt.Errorf(`ent: validator failed for field "Work.genre": %w`, err)}
		}
	}
	if v, ok := wu.mutation.FilePath(); ok {
		if err := work.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Work.file_path": %w`, err)}
		}
	}
	if v, ok := wu.mutation.FileSize(); ok {
		if err := work.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Work.file_size": %w`, err)}
		}
	}
	if v, ok := wu.mutation.PlayCount(); ok {
		if err := work.PlayCountValidator(v); err != nil {
			return &ValidationError{Name: "play_count", err: fmt.Errorf(`ent: validator failed for field "Work.play_count": %w`, err)}
		}
	}
	if v, ok := wu.mutation.StarCount(); ok {
		if err := work.StarCountValidator(v); err != nil {
			return &ValidationError{Name: "star_count", err: fmt.Errorf(`ent: validator failed for field "Work.star_count": %w`, err)}
		}
	}
	if wu.mutation.OwnerCleared() && len(wu.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Work.owner"`)
	}
	return nil
}

func (wu *WorkUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(work.Table, work.Columns, sqlgraph.NewFieldSpec(work.FieldID, field.TypeUint))
	if ps := wu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wu.mutation.DeletedAt(); ok {
		_spec.SetField(work.FieldDeletedAt, field.TypeTime, value)
	}
	if wu.mutation.DeletedAtCleared() {
		_spec.ClearField(work.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := wu.mutation.UpdatedAt(); ok {
		_spec.SetField(work.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := wu.mutation.Title(); ok {
		_spec.SetField(work.FieldTitle, field.TypeString, value)
	}
	if value, ok := wu.mutation.Description(); ok {
		_spec.SetField(work.FieldDescription, field.TypeString, value)
	}
	if wu.mutation.DescriptionCleared() {
		_spec.ClearField(work.FieldDescription, field.TypeString)
	}
	if value, ok := wu.mutation.Genre(); ok {
		_spec.SetField(work.FieldGenre, field.TypeString, value)
	}
	if wu.mutation.GenreCleared() {
		_spec.ClearField(work.FieldGenre, field.TypeString)
	}
	if value, ok := wu.mutation.FilePath(); ok {
		_spec.SetField(work.FieldFilePath, field.TypeString, value)
	}
	if value, ok := wu.mutation.FileSize(); ok {
		_spec.SetField(work.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := wu.mutation.AddedFileSize(); ok {
		_spec.AddField(work.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := wu.mutation.AllowCollaboration(); ok {
		_spec.SetField(work.FieldAllowCollaboration, field.TypeBool, value)
	}
	if value, ok := wu.mutation.PlayCount(); ok {
		_spec.SetField(work.FieldPlayCount, field.TypeInt64, value)
	}
	if value, ok := wu.mutation.AddedPlayCount(); ok {
		_spec.AddField(work.FieldPlayCount, field.TypeInt64, value)
	}
	if value, ok := wu.mutation.StarCount(); ok {
		_spec.SetField(work.FieldStarCount, field.TypeInt64, value)
	}
	if value, ok := wu.mutation.AddedStarCount(); ok {
		_spec.AddField(work.FieldStarCount, field.TypeInt64, value)
	}
	if value, ok := wu.mutation.Status(); ok {
		_spec.SetField(work.FieldStatus, field.TypeInt, value)
	}
	if value, ok := wu.mutation.AddedStatus(); ok {
		_spec.AddField(work.FieldStatus, field.TypeInt, value)
	}
	if wu.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wu.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if wu.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wu.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !wu.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wu.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if wu.mutation.ProposalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wu.mutation.RemovedProposalsIDs(); len(nodes) > 0 && !wu.mutation.ProposalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wu.mutation.ProposalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{work.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wu.mutation.done = true
	return n, nil
}

// WorkUpdateOne is the builder for updating a single Work entity.
type WorkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkMutation
}

// SetDeletedAt sets the "deleted_at" field.
func (wuo *WorkUpdateOne) SetDeletedAt(t time.Time) *WorkUpdateOne {
	wuo.mutation.SetDeletedAt(t)
	return wuo
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (wuo *WorkUpdateOne) SetNillableDeletedAt(t *time.Time) *WorkUpdateOne {
	if t != nil {
		wuo.SetDeletedAt(*t)
	}
	return wuo
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (wuo *WorkUpdateOne) ClearDeletedAt() *WorkUpdateOne {
	wuo.mutation.ClearDeletedAt()
	return wuo
}

// SetUpdatedAt sets the "updated_at" field.
func (wuo *WorkUpdateOne) SetUpdatedAt(t time.Time) *WorkUpdateOne {
	wuo.mutation.SetUpdatedAt(t)
	return wuo
}

// SetUserID sets the "user_id" field.
func (wuo *WorkUpdateOne) SetUserID(u uint) *WorkUpdateOne {
	wuo.mutation.SetUserID(u)
	return wuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (wuo *WorkUpdateOne) SetNillableUserID(u *uint) *WorkUpdateOne {
	if u != nil {
		wuo.SetUserID(*u)
	}
	return wuo
}

// SetTitle sets the "title" field.
func (wuo *WorkUpdateOne) SetTitle(s string) *WorkUpdateOne {
	wuo.mutation.SetTitle(s)
	return wuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (wuo *WorkUpdateOne) SetNillableTitle(s *string) *WorkUpdateOne {
	if s != nil {
		wuo.SetTitle(*s)
	}
	return wuo
}

// SetDescription sets the "description" field.
func (wuo *WorkUpdateOne) SetDescription(s string) *WorkUpdateOne {
	wuo.mutation.SetDescription(s)
	return wuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (wuo *WorkUpdateOne) SetNillableDescription(s *string) *WorkUpdateOne {
	if s != nil {
		wuo.SetDescription(*s)
	}
	return wuo
}

// ClearDescription clears the value of the "description" field.
func (wuo *WorkUpdateOne) ClearDescription() *WorkUpdateOne {
	wuo.mutation.ClearDescription()
	return wuo
}

// SetGenre sets the "genre" field.
func (wuo *WorkUpdateOne) SetGenre(s string) *WorkUpdateOne {
	wuo.mutation.SetGenre(s)
	return wuo
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (wuo *WorkUpdateOne) SetNillableGenre(s *string) *WorkUpdateOne {
	if s != nil {
		wuo.SetGenre(*s)
	}
	return wuo
}

// ClearGenre clears the value of the "genre" field.
func (wuo *WorkUpdateOne) ClearGenre() *WorkUpdateOne {
	wuo.mutation.ClearGenre()
	return wuo
}

// SetFilePath sets the "file_path" field.
func (wuo *WorkUpdateOne) SetFilePath(s string) *WorkUpdateOne {
	wuo.mutation.SetFilePath(s)
	return wuo
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (wuo *WorkUpdateOne) SetNillableFilePath(s *string) *WorkUpdateOne {
	if s != nil {
		wuo.SetFilePath(*s)
	}
	return wuo
}

// SetFileSize sets the "file_size" field.
func (wuo *WorkUpdateOne) SetFileSize(i int64) *WorkUpdateOne {
	wuo.mutation.ResetFileSize()
	wuo.mutation.SetFileSize(i)
	return wuo
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (wuo *WorkUpdateOne) SetNillableFileSize(i *int64) *WorkUpdateOne {
	if i != nil {
		wuo.SetFileSize(*i)
	}
	return wuo
}

// AddFileSize adds i to the "file_size" field.
func (wuo *WorkUpdateOne) AddFileSize(i int64) *WorkUpdateOne {
	wuo.mutation.AddFileSize(i)
	return wuo
}

// SetAllowCollaboration sets the "allow_collaboration" field.
func (wuo *WorkUpdateOne) SetAllowCollaboration(b bool) *WorkUpdateOne {
	wuo.mutation.SetAllowCollaboration(b)
	return wuo
}

// SetNillableAllowCollaboration sets the "allow_collaboration" field if the given value is not nil.
func (wuo *WorkUpdateOne) SetNillableAllowCollaboration(b *bool) *WorkUpdateOne {
	if b != nil {
		wuo.SetAllowCollaboration(*b)
	}
	return wuo
}

// SetPlayCount sets the "play_count" field.
func (wuo *WorkUpdateOne) SetPlayCount(i int64) *WorkUpdateOne {
	wuo.mutation.ResetPlayCount()
	wuo.mutation.SetPlayCount(i)
	return wuo
}

// SetNillablePlayCount sets the "play_count" field if the given value is not nil.
func (wuo *WorkUpdateOne) SetNillablePlayCount(i *int64) *WorkUpdateOne {
	if i != nil {
		wuo.SetPlayCount(*i)
	}
	return wuo
}

// AddPlayCount adds i to the "play_count" field.
func (wuo *WorkUpdateOne) AddPlayCount(i int64) *WorkUpdateOne {
	wuo.mutation.AddPlayCount(i)
	return wuo
}

// SetStarCount sets the "star_count" field.
func (wuo *WorkUpdateOne) SetStarCount(i int64) *WorkUpdateOne {
	wuo.mutation.ResetStarCount()
	wuo.mutation.SetStarCount(i)
	return wuo
}

// SetNillableStarCount sets the "star_count" field if the given value is not nil.
func (wuo *WorkUpdateOne) SetNillableStarCount(i *int64) *WorkUpdateOne {
	if i != nil {
		wuo.SetStarCount(*i)
	}
	return wuo
}

// AddStarCount adds i to the "star_count" field.
func (wuo *WorkUpdateOne) AddStarCount(i int64) *WorkUpdateOne {
	wuo.mutation.AddStarCount(i)
	return wuo
}

// SetStatus sets the "status" field.
func (wuo *WorkUpdateOne) SetStatus(i int) *WorkUpdateOne {
	wuo.mutation.ResetStatus()
	wuo.mutation.SetStatus(i)
	return wuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wuo *WorkUpdateOne) SetNillableStatus(i *int) *WorkUpdateOne {
	if i != nil {
		wuo.SetStatus(*i)
	}
	return wuo
}

// AddStatus adds i to the "status" field.
func (wuo *WorkUpdateOne) AddStatus(i int) *WorkUpdateOne {
	wuo.mutation.AddStatus(i)
	return wuo
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (wuo *WorkUpdateOne) SetOwnerID(id uint) *WorkUpdateOne {
	wuo.mutation.SetOwnerID(id)
	return wuo
}

// SetOwner sets the "owner" edge to the User entity.
func (wuo *WorkUpdateOne) SetOwner(u *User) *WorkUpdateOne {
	return wuo.SetOwnerID(u.ID)
}

// AddVersionIDs adds the "versions" edge to the WorkVersion entity by IDs.
func (wuo *WorkUpdateOne) AddVersionIDs(ids ...uint) *WorkUpdateOne {
	wuo.mutation.AddVersionIDs(ids...)
	return wuo
}

// AddVersions adds the "versions" edges to the WorkVersion entity.
func (wuo *WorkUpdateOne) AddVersions(w ...*WorkVersion) *WorkUpdateOne {
	ids := make([]uint, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wuo.AddVersionIDs(ids...)
}

// AddProposalIDs adds the "proposals" edge to the WorkProposal entity by IDs.
func (wuo *WorkUpdateOne) AddProposalIDs(ids ...uint) *WorkUpdateOne {
	wuo.mutation.AddProposalIDs(ids...)
	return wuo
}

// AddProposals adds the "proposals" edges to the WorkProposal entity.
func (wuo *WorkUpdateOne) AddProposals(w ...*WorkProposal) *WorkUpdateOne {
	ids := make([]uint, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wuo.AddProposalIDs(ids...)
}

// Mutation returns the WorkMutation object of the builder.
func (wuo *WorkUpdateOne) Mutation() *WorkMutation {
	return wuo.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (wuo *WorkUpdateOne) ClearOwner() *WorkUpdateOne {
	wuo.mutation.ClearOwner()
	return wuo
}

// ClearVersions clears all "versions" edges to the WorkVersion entity.
func (wuo *WorkUpdateOne) ClearVersions() *WorkUpdateOne {
	wuo.mutation.ClearVersions()
	return wuo
}

// RemoveVersionIDs removes the "versions" edge to WorkVersion entities by IDs.
func (wuo *WorkUpdateOne) RemoveVersionIDs(ids ...uint) *WorkUpdateOne {
	wuo.mutation.RemoveVersionIDs(ids...)
	return wuo
}

// RemoveVersions removes "versions" edges to WorkVersion entities.
func (wuo *WorkUpdateOne) RemoveVersions(w ...*WorkVersion) *WorkUpdateOne {
	ids := make([]uint, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wuo.RemoveVersionIDs(ids...)
}

// ClearProposals clears all "proposals" edges to the WorkProposal entity.
func (wuo *WorkUpdateOne) ClearProposals() *WorkUpdateOne {
	wuo.mutation.ClearProposals()
	return wuo
}

// RemoveProposalIDs removes the "proposals" edge to WorkProposal entities by IDs.
func (wuo *WorkUpdateOne) RemoveProposalIDs(ids ...uint) *WorkUpdateOne {
	wuo.mutation.RemoveProposalIDs(ids...)
	return wuo
}

// RemoveProposals removes "proposals" edges to WorkProposal entities.
func (wuo *WorkUpdateOne) RemoveProposals(w ...*WorkProposal) *WorkUpdateOne {
	ids := make([]uint, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wuo.RemoveProposalIDs(ids...)
}

// Where appends a list predicates to the WorkUpdate builder.
func (wuo *WorkUpdateOne) Where(ps ...predicate.Work) *WorkUpdateOne {
	wuo.mutation.Where(ps...)
	return wuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wuo *WorkUpdateOne) Select(field string, fields ...string) *WorkUpdateOne {
	wuo.fields = append([]string{field}, fields...)
	return wuo
}

// Save executes the query and returns the updated Work entity.
func (wuo *WorkUpdateOne) Save(ctx context.Context) (*Work, error) {
	if err := wuo.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, wuo.sqlSave, wuo.mutation, wuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wuo *WorkUpdateOne) SaveX(ctx context.Context) *Work {
	node, err := wuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wuo *WorkUpdateOne) Exec(ctx context.Context) error {
	_, err := wuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wuo *WorkUpdateOne) ExecX(ctx context.Context) {
	if err := wuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wuo *WorkUpdateOne) defaults() error {
	if _, ok := wuo.mutation.UpdatedAt(); !ok {
		if work.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized work.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := work.UpdateDefaultUpdatedAt()
		wuo.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (wuo *WorkUpdateOne) check() error {
	if v, ok := wuo.mutation.Title(); ok {
		if err := work.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Work.title": %w`, err)}
		}
	}
	if v, ok := wuo.mutation.Genre(); ok {
		if err := work.GenreValidator(v); err != nil {
			return &ValidationError{Name: "genre", err: fmt.Errorf(`ent: validator failed for field "Work.genre": %w`, err)}
		}
	}
	if v, ok := wuo.mutation.FilePath(); ok {
		if err := work.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Work.file_path": %w`, err)}
		}
	}
	if v, ok := wuo.mutation.FileSize(); ok {
		if err := work.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Work.file_size": %w`, err)}
		}
	}
	if v, ok := wuo.mutation.PlayCount(); ok {
		if err := work.PlayCountValidator(v); err != nil {
			return &ValidationError{Name: "play_count", err: fmt.Errorf(`ent: validator failed for field "Work.play_count": %w`, err)}
		}
	}
	if v, ok := wuo.mutation.StarCount(); ok {
		if err := work.StarCountValidator(v); err != nil {
			return &ValidationError{Name: "star_count", err: fmt.Errorf(`ent: validator failed for field "Work.star_count": %w`, err)}
		}
	}
	if wuo.mutation.OwnerCleared() && len(wuo.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Work.owner"`)
	}
	return nil
}

func (wuo *WorkUpdateOne) sqlSave(ctx context.Context) (_node *Work, err error) {
	if err := wuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(work.Table, work.Columns, sqlgraph.NewFieldSpec(work.FieldID, field.TypeUint))
	id, ok := wuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Work.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, work.FieldID)
		for _, f := range fields {
			if !work.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != work.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wuo.mutation.DeletedAt(); ok {
		_spec.SetField(work.FieldDeletedAt, field.TypeTime, value)
	}
	if wuo.mutation.DeletedAtCleared() {
		_spec.ClearField(work.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := wuo.mutation.UpdatedAt(); ok {
		_spec.SetField(work.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := wuo.mutation.Title(); ok {
		_spec.SetField(work.FieldTitle, field.TypeString, value)
	}
	if value, ok := wuo.mutation.Description(); ok {
		_spec.SetField(work.FieldDescription, field.TypeString, value)
	}
	if wuo.mutation.DescriptionCleared() {
		_spec.ClearField(work.FieldDescription, field.TypeString)
	}
	if value, ok := wuo.mutation.Genre(); ok {
		_spec.SetField(work.FieldGenre, field.TypeString, value)
	}
	if wuo.mutation.GenreCleared() {
		_spec.ClearField(work.FieldGenre, field.TypeString)
	}
	if value, ok := wuo.mutation.FilePath(); ok {
		_spec.SetField(work.FieldFilePath, field.TypeString, value)
	}
	if value, ok := wuo.mutation.FileSize(); ok {
		_spec.SetField(work.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := wuo.mutation.AddedFileSize(); ok {
		_spec.AddField(work.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := wuo.mutation.AllowCollaboration(); ok {
		_spec.SetField(work.FieldAllowCollaboration, field.TypeBool, value)
	}
	if value, ok := wuo.mutation.PlayCount(); ok {
		_spec.SetField(work.FieldPlayCount, field.TypeInt64, value)
	}
	if value, ok := wuo.mutation.AddedPlayCount(); ok {
		_spec.AddField(work.FieldPlayCount, field.TypeInt64, value)
	}
	if value, ok := wuo.mutation.StarCount(); ok {
		_spec.SetField(work.FieldStarCount, field.TypeInt64, value)
	}
	if value, ok := wuo.mutation.AddedStarCount(); ok {
		_spec.AddField(work.FieldStarCount, field.TypeInt64, value)
	}
	if value, ok := wuo.mutation.Status(); ok {
		_spec.SetField(work.FieldStatus, field.TypeInt, value)
	}
	if value, ok := wuo.mutation.AddedStatus(); ok {
		_spec.AddField(work.FieldStatus, field.TypeInt, value)
	}
	if wuo.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wuo.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if wuo.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wuo.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !wuo.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wuo.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if wuo.mutation.ProposalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wuo.mutation.RemovedProposalsIDs(); len(nodes) > 0 && !wuo.mutation.ProposalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wuo.mutation.ProposalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Work{config: wuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{work.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wuo.mutation.done = true
	return _node, nil
}
