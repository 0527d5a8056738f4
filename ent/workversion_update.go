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
	"github.com/muselink-c/muselink-app/ent/work"
	"github.com/muselink-c/muselink-app/ent/workproposal"
	"github.com/muselink-c/muselink-app/ent/workversion"
)

// WorkVersionUpdate is the builder for updating WorkVersion entities.
type WorkVersionUpdate struct {
	config
	hooks    []Hook
	mutation *WorkVersionMutation
}

// Where appends a list predicates to the WorkVersionUpdate builder.
func (wvu *WorkVersionUpdate) Where(ps ...predicate.WorkVersion) *WorkVersionUpdate {
	wvu.mutation.Where(ps...)
	return wvu
}

// SetWorkID sets the "work_id" field.
func (wvu *WorkVersionUpdate) SetWorkID(u uint) *WorkVersionUpdate {
	wvu.mutation.SetWorkID(u)
	return wvu
}

// SetNillableWorkID sets the "work_id" field if the given value is not nil.
func (wvu *WorkVersionUpdate) SetNillableWorkID(u *uint) *WorkVersionUpdate {
	if u != nil {
		wvu.SetWorkID(*u)
	}
	return wvu
}

// SetVersion sets the "version" field.
func (wvu *WorkVersionUpdate) SetVersion(i int) *WorkVersionUpdate {
	wvu.mutation.ResetVersion()
	wvu.mutation.SetVersion(i)
	return wvu
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (wvu *WorkVersionUpdate) SetNillableVersion(i *int) *WorkVersionUpdate {
	if i != nil {
		wvu.SetVersion(*i)
	}
	return wvu
}

// AddVersion adds i to the "version" field.
func (wvu *WorkVersionUpdate) AddVersion(i int) *WorkVersionUpdate {
	wvu.mutation.AddVersion(i)
	return wvu
}

// SetUserID sets the "user_id" field.
func (wvu *WorkVersionUpdate) SetUserID(u uint) *WorkVersionUpdate {
	wvu.mutation.ResetUserID()
	wvu.mutation.SetUserID(u)
	return wvu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (wvu *WorkVersionUpdate) SetNillableUserID(u *uint) *WorkVersionUpdate {
	if u != nil {
		wvu.SetUserID(*u)
	}
	return wvu
}

// AddUserID adds u to the "user_id" field.
func (wvu *WorkVersionUpdate) AddUserID(u int) *WorkVersionUpdate {
	wvu.mutation.AddUserID(u)
	return wvu
}

// SetCommitMessage sets the "commit_message" field.
func (wvu *WorkVersionUpdate) SetCommitMessage(s string) *WorkVersionUpdate {
	wvu.mutation.SetCommitMessage(s)
	return wvu
}

// SetNillableCommitMessage sets the "commit_message" field if the given value is not nil.
func (wvu *WorkVersionUpdate) SetNillableCommitMessage(s *string) *WorkVersionUpdate {
	if s != nil {
		wvu.SetCommitMessage(*s)
	}
	return wvu
}

// SetChangesSummary sets the "changes_summary" field.
func (wvu *WorkVersionUpdate) SetChangesSummary(s string) *WorkVersionUpdate {
	wvu.mutation.SetChangesSummary(s)
	return wvu
}

// SetNillableChangesSummary sets the "changes_summary" field if the given value is not nil.
func (wvu *WorkVersionUpdate) SetNillableChangesSummary(s *string) *WorkVersionUpdate {
	if s != nil {
		wvu.SetChangesSummary(*s)
	}
	return wvu
}

// ClearChangesSummary clears the value of the "changes_summary" field.
func (wvu *WorkVersionUpdate) ClearChangesSummary() *WorkVersionUpdate {
	wvu.mutation.ClearChangesSummary()
	return wvu
}

// SetFilePath sets the "file_path" field.
func (wvu *WorkVersionUpdate) SetFilePath(s string) *WorkVersionUpdate {
	wvu.mutation.SetFilePath(s)
	return wvu
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (wvu *WorkVersionUpdate) SetNillableFilePath(s *string) *WorkVersionUpdate {
	if s != nil {
		wvu.SetFilePath(*s)
	}
	return wvu
}

// SetFileSize sets the "file_size" field.
func (wvu *WorkVersionUpdate) SetFileSize(i int64) *WorkVersionUpdate {
	wvu.mutation.ResetFileSize()
	wvu.mutation.SetFileSize(i)
	return wvu
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (wvu *WorkVersionUpdate) SetNillableFileSize(i *int64) *WorkVersionUpdate {
	if i != nil {
		wvu.SetFileSize(*i)
	}
	return wvu
}

// AddFileSize adds i to the "file_size" field.
func (wvu *WorkVersionUpdate) AddFileSize(i int64) *WorkVersionUpdate {
	wvu.mutation.AddFileSize(i)
	return wvu
}

// SetIsMerged sets the "is_merged" field.
func (wvu *WorkVersionUpdate) SetIsMerged(b bool) *WorkVersionUpdate {
	wvu.mutation.SetIsMerged(b)
	return wvu
}

// SetNillableIsMerged sets the "is_merged" field if the given value is not nil.
func (wvu *WorkVersionUpdate) SetNillableIsMerged(b *bool) *WorkVersionUpdate {
	if b != nil {
		wvu.SetIsMerged(*b)
	}
	return wvu
}

// SetMergedAt sets the "merged_at" field.
func (wvu *WorkVersionUpdate) SetMergedAt(t time.Time) *WorkVersionUpdate {
	wvu.mutation.SetMergedAt(t)
	return wvu
}

// SetNillableMergedAt sets the "merged_at" field if the given value is not nil.
func (wvu *WorkVersionUpdate) SetNillableMergedAt(t *time.Time) *WorkVersionUpdate {
	if t != nil {
		wvu.SetMergedAt(*t)
	}
	return wvu
}

// ClearMergedAt clears the value of the "merged_at" field.
func (wvu *WorkVersionUpdate) ClearMergedAt() *WorkVersionUpdate {
	wvu.mutation.ClearMergedAt()
	return wvu
}

// SetMergedBy sets the "merged_by" field.
func (wvu *WorkVersionUpdate) SetMergedBy(u uint) *WorkVersionUpdate {
	wvu.mutation.ResetMergedBy()
	wvu.mutation.SetMergedBy(u)
	return wvu
}

// SetNillableMergedBy sets the "merged_by" field if the given value is not nil.
func (wvu *WorkVersionUpdate) SetNillableMergedBy(u *uint) *WorkVersionUpdate {
	if u != nil {
		wvu.SetMergedBy(*u)
	}
	return wvu
}

// AddMergedBy adds u to the "merged_by" field.
func (wvu *WorkVersionUpdate) AddMergedBy(u int) *WorkVersionUpdate {
	wvu.mutation.AddMergedBy(u)
	return wvu
}

// ClearMergedBy clears the value of the "merged_by" field.
func (wvu *WorkVersionUpdate) ClearMergedBy() *WorkVersionUpdate {
	wvu.mutation.ClearMergedBy()
	return wvu
}

// SetWork sets the "work" edge to the Work entity.
func (wvu *WorkVersionUpdate) SetWork(w *Work) *WorkVersionUpdate {
	return wvu.SetWorkID(w.ID)
}

// SetProposalID sets the "proposal" edge to the WorkProposal entity by ID.
func (wvu *WorkVersionUpdate) SetProposalID(id uint) *WorkVersionUpdate {
	wvu.mutation.SetProposalID(id)
	return wvu
}

// SetNillableProposalID sets the "proposal" edge to the WorkProposal entity by ID if the given value is not nil.
func (wvu *WorkVersionUpdate) SetNillableProposalID(id *uint) *WorkVersionUpdate {
	if id != nil {
		wvu = wvu.SetProposalID(*id)
	}
	return wvu
}

// SetProposal sets the "proposal" edge to the WorkProposal entity.
func (wvu *WorkVersionUpdate) SetProposal(w *WorkProposal) *WorkVersionUpdate {
	return wvu.SetProposalID(w.ID)
}

// Mutation returns the WorkVersionMutation object of the builder.
func (wvu *WorkVersionUpdate) Mutation() *WorkVersionMutation {
	return wvu.mutation
}

// ClearWork clears the "work" edge to the Work entity.
func (wvu *WorkVersionUpdate) ClearWork() *WorkVersionUpdate {
	wvu.mutation.ClearWork()
	return wvu
}

// ClearProposal clears the "proposal" edge to the WorkProposal entity.
func (wvu *WorkVersionUpdate) ClearProposal() *WorkVersionUpdate {
	wvu.mutation.ClearProposal()
	return wvu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wvu *WorkVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, wvu.sqlSave, wvu.mutation, wvu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wvu *WorkVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := wvu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wvu *WorkVersionUpdate) Exec(ctx context.Context) error {
	_, err := wvu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wvu *WorkVersionUpdate) ExecX(ctx context.Context) {
	if err := wvu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wvu *WorkVersionUpdate) check() error {
	if v, ok := wvu.mutation.Version(); ok {
		if err := workversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "WorkVersion.version": %w`, err)}
		}
	}
	if v, ok := wvu.mutation.CommitMessage(); ok {
		if err := workversion.CommitMessageValidator(v); err != nil {
			return &ValidationError{Name: "commit_message", err: fmt.Errorf(`ent: validator failed for field "WorkVersion.commit_message": %w`, err)}
		}
	}
	if v, ok := wvu.mutation.FilePath(); ok {
		if err := workversion.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "WorkVersion.file_path": %w`, err)}
		}
	}
	if v, ok := wvu.mutation.FileSize(); ok {
		if err := workversion.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "WorkVersion.file_size": %w`, err)}
		}
	}
	if wvu.mutation.WorkCleared() && len(wvu.mutation.WorkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkVersion.work"`)
	}
	return nil
}

func (wvu *WorkVersionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wvu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(workversion.Table, workversion.Columns, sqlgraph.NewFieldSpec(workversion.FieldID, field.TypeUint))
	if ps := wvu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wvu.mutation.Version(); ok {
		_spec.SetField(workversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := wvu.mutation.AddedVersion(); ok {
		_spec.AddField(workversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := wvu.mutation.UserID(); ok {
		_spec.SetField(workversion.FieldUserID, field.TypeUint, value)
	}
	if value, ok := wvu.mutation.AddedUserID(); ok {
		_spec.AddField(workversion.FieldUserID, field.TypeUint, value)
	}
	if value, ok := wvu.mutation.CommitMessage(); ok {
		_spec.SetField(workversion.FieldCommitMessage, field.TypeString, value)
	}
	if value, ok := wvu.mutation.ChangesSummary(); ok {
		_spec.SetField(workversion.FieldChangesSummary, field.TypeString, value)
	}
	if wvu.mutation.ChangesSummaryCleared() {
		_spec.ClearField(workversion.FieldChangesSummary, field.TypeString)
	}
	if value, ok := wvu.mutation.FilePath(); ok {
		_spec.SetField(workversion.FieldFilePath, field.TypeString, value)
	}
	if value, ok := wvu.mutation.FileSize(); ok {
		_spec.SetField(workversion.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := wvu.mutation.AddedFileSize(); ok {
		_spec.AddField(workversion.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := wvu.mutation.IsMerged(); ok {
		_spec.SetField(workversion.FieldIsMerged, field.TypeBool, value)
	}
	if value, ok := wvu.mutation.MergedAt(); ok {
		_spec.SetField(workversion.FieldMergedAt, field.TypeTime, value)
	}
	if wvu.mutation.MergedAtCleared() {
		_spec.ClearField(workversion.FieldMergedAt, field.TypeTime)
	}
	if value, ok := wvu.mutation.MergedBy(); ok {
		_spec.SetField(workversion.FieldMergedBy, field.TypeUint, value)
	}
	if value, ok := wvu.mutation.AddedMergedBy(); ok {
		_spec.AddField(workversion.FieldMergedBy, field.TypeUint, value)
	}
	if wvu.mutation.MergedByCleared() {
		_spec.ClearField(workversion.FieldMergedBy, field.TypeUint)
	}
	if wvu.mutation.WorkCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wvu.mutation.WorkIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if wvu.mutation.ProposalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wvu.mutation.ProposalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wvu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wvu.mutation.done = true
	return n, nil
}

// WorkVersionUpdateOne is the builder for updating a single WorkVersion entity.
type WorkVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkVersionMutation
}

// SetWorkID sets the "work_id" field.
func (wvuo *WorkVersionUpdateOne) SetWorkID(u uint) *WorkVersionUpdateOne {
	wvuo.mutation.SetWorkID(u)
	return wvuo
}

// SetNillableWorkID sets the "work_id" field if the given value is not nil.
func (wvuo *WorkVersionUpdateOne) SetNillableWorkID(u *uint) *WorkVersionUpdateOne {
	if u != nil {
		wvuo.SetWorkID(*u)
	}
	return wvuo
}

// SetVersion sets the "version" field.
func (wvuo *WorkVersionUpdateOne) SetVersion(i int) *WorkVersionUpdateOne {
	wvuo.mutation.ResetVersion()
	wvuo.mutation.SetVersion(i)
	return wvuo
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (wvuo *WorkVersionUpdateOne) SetNillableVersion(i *int) *WorkVersionUpdateOne {
	if i != nil {
		wvuo.SetVersion(*i)
	}
	return wvuo
}

// AddVersion adds i to the "version" field.
func (wvuo *WorkVersionUpdateOne) AddVersion(i int) *WorkVersionUpdateOne {
	wvuo.mutation.AddVersion(i)
	return wvuo
}

// SetUserID sets the "user_id" field.
func (wvuo *WorkVersionUpdateOne) SetUserID(u uint) *WorkVersionUpdateOne {
	wvuo.mutation.ResetUserID()
	wvuo.mutation.SetUserID(u)
	return wvuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (wvuo *WorkVersionUpdateOne) SetNillableUserID(u *uint) *WorkVersionUpdateOne {
	if u != nil {
		wvuo.SetUserID(*u)
	}
	return wvuo
}

// AddUserID adds u to the "user_id" field.
func (wvuo *WorkVersionUpdateOne) AddUserID(u int) *WorkVersionUpdateOne {
	wvuo.mutation.AddUserID(u)
	return wvuo
}

// SetCommitMessage sets the "commit_message" field.
func (wvuo *WorkVersionUpdateOne) SetCommitMessage(s string) *WorkVersionUpdateOne {
	wvuo.mutation.SetCommitMessage(s)
	return wvuo
}

// SetNillableCommitMessage sets the "commit_message" field if the given value is not nil.
func (wvuo *WorkVersionUpdateOne) SetNillableCommitMessage(s *string) *WorkVersionUpdateOne {
	if s != nil {
		wvuo.SetCommitMessage(*s)
	}
	return wvuo
}

// SetChangesSummary sets the "changes_summary" field.
func (wvuo *WorkVersionUpdateOne) SetChangesSummary(s string) *WorkVersionUpdateOne {
	wvuo.mutation.SetChangesSummary(s)
	return wvuo
}

// SetNillableChangesSummary sets the "changes_summary" field if the given value is not nil.
func (wvuo *WorkVersionUpdateOne) SetNillableChangesSummary(s *string) *WorkVersionUpdateOne {
	if s != nil {
		wvuo.SetChangesSummary(*s)
	}
	return wvuo
}

// ClearChangesSummary clears the value of the "changes_summary" field.
func (wvuo *WorkVersionUpdateOne) ClearChangesSummary() *WorkVersionUpdateOne {
	wvuo.mutation.ClearChangesSummary()
	return wvuo
}

// SetFilePath sets the "file_path" field.
func (wvuo *WorkVersionUpdateOne) SetFilePath(s string) *WorkVersionUpdateOne {
	wvuo.mutation.SetFilePath(s)
	return wvuo
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (wvuo *WorkVersionUpdateOne) SetNillableFilePath(s *string) *WorkVersionUpdateOne {
	if s != nil {
		wvuo.SetFilePath(*s)
	}
	return wvuo
}

// SetFileSize sets the "file_size" field.
func (wvuo *WorkVersionUpdateOne) SetFileSize(i int64) *WorkVersionUpdateOne {
	wvuo.mutation.ResetFileSize()
	wvuo.mutation.SetFileSize(i)
	return wvuo
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (wvuo *WorkVersionUpdateOne) SetNillableFileSize(i *int64) *WorkVersionUpdateOne {
	if i != nil {
		wvuo.SetFileSize(*i)
	}
	return wvuo
}

// AddFileSize adds i to the "file_size" field.
func (wvuo *WorkVersionUpdateOne) AddFileSize(i int64) *WorkVersionUpdateOne {
	wvuo.mutation.AddFileSize(i)
	return wvuo
}

// SetIsMerged sets the "is_merged" field.
func (wvuo *WorkVersionUpdateOne) SetIsMerged(b bool) *WorkVersionUpdateOne {
	wvuo.mutation.SetIsMerged(b)
	return wvuo
}

// SetNillableIsMerged sets the "is_merged" field if the given value is not nil.
func (wvuo *WorkVersionUpdateOne) SetNillableIsMerged(b *bool) *WorkVersionUpdateOne {
	if b != nil {
		wvuo.SetIsMerged(*b)
	}
	return wvuo
}

// SetMergedAt sets the "merged_at" field.
func (wvuo *WorkVersionUpdateOne) SetMergedAt(t time.Time) *WorkVersionUpdateOne {
	wvuo.mutation.SetMergedAt(t)
	return wvuo
}

// SetNillableMergedAt sets the "merged_at" field if the given value is not nil.
func (wvuo *WorkVersionUpdateOne) SetNillableMergedAt(t *time.Time) *WorkVersionUpdateOne {
	if t != nil {
		wvuo.SetMergedAt(*t)
	}
	return wvuo
}

// ClearMergedAt clears the value of the "merged_at" field.
func (wvuo *WorkVersionUpdateOne) ClearMergedAt() *WorkVersionUpdateOne {
	wvuo.mutation.ClearMergedAt()
	return wvuo
}

// SetMergedBy sets the "merged_by" field.
func (wvuo *WorkVersionUpdateOne) SetMergedBy(u uint) *WorkVersionUpdateOne {
	wvuo.mutation.ResetMergedBy()
	wvuo.mutation.SetMergedBy(u)
	return wvuo
}

// SetNillableMergedBy sets the "merged_by" field if the given value is not nil.
func (wvuo *WorkVersionUpdateOne) SetNillableMergedBy(u *uint) *WorkVersionUpdateOne {
	if u != nil {
		wvuo.SetMergedBy(*u)
	}
	return wvuo
}

// AddMergedBy adds u to the "merged_by" field.
func (wvuo *WorkVersionUpdateOne) AddMergedBy(u int) *WorkVersionUpdateOne {
	wvuo.mutation.AddMergedBy(u)
	return wvuo
}

// ClearMergedBy clears the value of the "merged_by" field.
func (wvuo *WorkVersionUpdateOne) ClearMergedBy() *WorkVersionUpdateOne {
	wvuo.mutation.ClearMergedBy()
	return wvuo
}

// SetWork sets the "work" edge to the Work entity.
func (wvuo *WorkVersionUpdateOne) SetWork(w *Work) *WorkVersionUpdateOne {
	return wvuo.SetWorkID(w.ID)
}

// SetProposalID sets the "proposal" edge to the WorkProposal entity by ID.
func (wvuo *WorkVersionUpdateOne) SetProposalID(id uint) *WorkVersionUpdateOne {
	wvuo.mutation.SetProposalID(id)
	return wvuo
}

// SetNillableProposalID sets the "proposal" edge to the WorkProposal entity by ID if the given value is not nil.
func (wvuo *WorkVersionUpdateOne) SetNillableProposalID(id *uint) *WorkVersionUpdateOne {
	if id != nil {
		wvuo = wvuo.SetProposalID(*id)
	}
	return wvuo
}

// SetProposal sets the "proposal" edge to the WorkProposal entity.
func (wvuo *WorkVersionUpdateOne) SetProposal(w *WorkProposal) *WorkVersionUpdateOne {
	return wvuo.SetProposalID(w.ID)
}

// Mutation returns the WorkVersionMutation object of the builder.
func (wvuo *WorkVersionUpdateOne) Mutation() *WorkVersionMutation {
	return wvuo.mutation
}

// ClearWork clears the "work" edge to the Work entity.
func (wvuo *WorkVersionUpdateOne) ClearWork() *WorkVersionUpdateOne {
	wvuo.mutation.ClearWork()
	return wvuo
}

// ClearProposal clears the "proposal" edge to the WorkProposal entity.
func (wvuo *WorkVersionUpdateOne) ClearProposal() *WorkVersionUpdateOne {
	wvuo.mutation.ClearProposal()
	return wvuo
}

// Where appends a list predicates to the WorkVersionUpdate builder.
func (wvuo *WorkVersionUpdateOne) Where(ps ...predicate.WorkVersion) *WorkVersionUpdateOne {
	wvuo.mutation.Where(ps...)
	return wvuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wvuo *WorkVersionUpdateOne) Select(field string, fields ...string) *WorkVersionUpdateOne {
	wvuo.fields = append([]string{field}, fields...)
	return wvuo
}

// Save executes the query and returns the updated WorkVersion entity.
func (wvuo *WorkVersionUpdateOne) Save(ctx context.Context) (*WorkVersion, error) {
	return withHooks(ctx, wvuo.sqlSave, wvuo.mutation, wvuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wvuo *WorkVersionUpdateOne) SaveX(ctx context.Context) *WorkVersion {
	node, err := wvuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wvuo *WorkVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := wvuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wvuo *WorkVersionUpdateOne) ExecX(ctx context.Context) {
	if err := wvuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wvuo *WorkVersionUpdateOne) check() error {
	if v, ok := wvuo.mutation.Version(); ok {
		if err := workversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "WorkVersion.version": %w`, err)}
		}
	}
	if v, ok := wvuo.mutation.CommitMessage(); ok {
		if err := workversion.CommitMessageValidator(v); err != nil {
			return &ValidationError{Name: "commit_message", err: fmt.Errorf(`ent: validator failed for field "WorkVersion.commit_message": %w`, err)}
		}
	}
	if v, ok := wvuo.mutation.FilePath(); ok {
		if err := workversion.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "WorkVersion.file_path": %w`, err)}
		}
	}
	if v, ok := wvuo.mutation.FileSize(); ok {
		if err := workversion.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "WorkVersion.file_size": %w`, err)}
		}
	}
	if wvuo.mutation.WorkCleared() && len(wvuo.mutation.WorkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkVersion.work"`)
	}
	return nil
}

func (wvuo *WorkVersionUpdateOne) sqlSave(ctx context.Context) (_node *WorkVersion, err error) {
	if err := wvuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workversion.Table, workversion.Columns, sqlgraph.NewFieldSpec(workversion.FieldID, field.TypeUint))
	id, ok := wvuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wvuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workversion.FieldID)
		for _, f := range fields {
			if !workversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workversion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wvuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wvuo.mutation.Version(); ok {
		_spec.SetField(workversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := wvuo.mutation.AddedVersion(); ok {
		_spec.AddField(workversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := wvuo.mutation.UserID(); ok {
		_spec.SetField(workversion.FieldUserID, field.TypeUint, value)
	}
	if value, ok := wvuo.mutation.AddedUserID(); ok {
		_spec.AddField(workversion.FieldUserID, field.TypeUint, value)
	}
	if value, ok := wvuo.mutation.CommitMessage(); ok {
		_spec.SetField(workversion.FieldCommitMessage, field.TypeString, value)
	}
	if value, ok := wvuo.mutation.ChangesSummary(); ok {
		_spec.SetField(workversion.FieldChangesSummary, field.TypeString, value)
	}
	if wvuo.mutation.ChangesSummaryCleared() {
		_spec.ClearField(workversion.FieldChangesSummary, field.TypeString)
	}
	if value, ok := wvuo.mutation.FilePath(); ok {
		_spec.SetField(workversion.FieldFilePath, field.TypeString, value)
	}
	if value, ok := wvuo.mutation.FileSize(); ok {
		_spec.SetField(workversion.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := wvuo.mutation.AddedFileSize(); ok {
		_spec.AddField(workversion.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := wvuo.mutation.IsMerged(); ok {
		_spec.SetField(workversion.FieldIsMerged, field.TypeBool, value)
	}
	if value, ok := wvuo.mutation.MergedAt(); ok {
		_spec.SetField(workversion.FieldMergedAt, field.TypeTime, value)
	}
	if wvuo.mutation.MergedAtCleared() {
		_spec.ClearField(workversion.FieldMergedAt, field.TypeTime)
	}
	if value, ok := wvuo.mutation.MergedBy(); ok {
		_spec.SetField(workversion.FieldMergedBy, field.TypeUint, value)
	}
	if value, ok := wvuo.mutation.AddedMergedBy(); ok {
		_spec.AddField(workversion.FieldMergedBy, field.TypeUint, value)
	}
	if wvuo.mutation.MergedByCleared() {
		_spec.ClearField(workversion.FieldMergedBy, field.TypeUint)
	}
	if wvuo.mutation.WorkCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wvuo.mutation.WorkIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if wvuo.mutation.ProposalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wvuo.mutation.ProposalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkVersion{config: wvuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wvuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wvuo.mutation.done = true
	return _node, nil
}
