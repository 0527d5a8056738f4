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

// WorkProposalUpdate is the builder for updating WorkProposal entities.
type WorkProposalUpdate struct {
	config
	hooks    []Hook
	mutation *WorkProposalMutation
}

// Where appends a list predicates to the WorkProposalUpdate builder.
func (wpu *WorkProposalUpdate) Where(ps ...predicate.WorkProposal) *WorkProposalUpdate {
	wpu.mutation.Where(ps...)
	return wpu
}

// SetWorkID sets the "work_id" field.
func (wpu *WorkProposalUpdate) SetWorkID(u uint) *WorkProposalUpdate {
	wpu.mutation.SetWorkID(u)
	return wpu
}

// SetNillableWorkID sets the "work_id" field if the given value is not nil.
func (wpu *WorkProposalUpdate) SetNillableWorkID(u *uint) *WorkProposalUpdate {
	if u != nil {
		wpu.SetWorkID(*u)
	}
	return wpu
}

// SetVersionID sets the "version_id" field.
func (wpu *WorkProposalUpdate) SetVersionID(u uint) *WorkProposalUpdate {
	wpu.mutation.SetVersionID(u)
	return wpu
}

// SetNillableVersionID sets the "version_id" field if the given value is not nil.
func (wpu *WorkProposalUpdate) SetNillableVersionID(u *uint) *WorkProposalUpdate {
	if u != nil {
		wpu.SetVersionID(*u)
	}
	return wpu
}

// SetRequesterID sets the "requester_id" field.
func (wpu *WorkProposalUpdate) SetRequesterID(u uint) *WorkProposalUpdate {
	wpu.mutation.ResetRequesterID()
	wpu.mutation.SetRequesterID(u)
	return wpu
}

// SetNillableRequesterID sets the "requester_id" field if the given value is not nil.
func (wpu *WorkProposalUpdate) SetNillableRequesterID(u *uint) *WorkProposalUpdate {
	if u != nil {
		wpu.SetRequesterID(*u)
	}
	return wpu
}

// AddRequesterID adds u to the "requester_id" field.
func (wpu *WorkProposalUpdate) AddRequesterID(u int) *WorkProposalUpdate {
	wpu.mutation.AddRequesterID(u)
	return wpu
}

// SetTitle sets the "title" field.
func (wpu *WorkProposalUpdate) SetTitle(s string) *WorkProposalUpdate {
	wpu.mutation.SetTitle(s)
	return wpu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (wpu *WorkProposalUpdate) SetNillableTitle(s *string) *WorkProposalUpdate {
	if s != nil {
		wpu.SetTitle(*s)
	}
	return wpu
}

// SetDescription sets the "description" field.
func (wpu *WorkProposalUpdate) SetDescription(s string) *WorkProposalUpdate {
	wpu.mutation.SetDescription(s)
	return wpu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (wpu *WorkProposalUpdate) SetNillableDescription(s *string) *WorkProposalUpdate {
	if s != nil {
		wpu.SetDescription(*s)
	}
	return wpu
}

// ClearDescription clears the value of the "description" field.
func (wpu *WorkProposalUpdate) ClearDescription() *WorkProposalUpdate {
	wpu.mutation.ClearDescription()
	return wpu
}

// SetStatus sets the "status" field.
func (wpu *WorkProposalUpdate) SetStatus(w workproposal.Status) *WorkProposalUpdate {
	wpu.mutation.SetStatus(w)
	return wpu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wpu *WorkProposalUpdate) SetNillableStatus(w *workproposal.Status) *WorkProposalUpdate {
	if w != nil {
		wpu.SetStatus(*w)
	}
	return wpu
}

// SetReviewedBy sets the "reviewed_by" field.
func (wpu *WorkProposalUpdate) SetReviewedBy(u uint) *WorkProposalUpdate {
	wpu.mutation.ResetReviewedBy()
	wpu.mutation.SetReviewedBy(u)
	return wpu
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (wpu *WorkProposalUpdate) SetNillableReviewedBy(u *uint) *WorkProposalUpdate {
	if u != nil {
		wpu.SetReviewedBy(*u)
	}
	return wpu
}

// AddReviewedBy adds u to the "reviewed_by" field.
func (wpu *WorkProposalUpdate) AddReviewedBy(u int) *WorkProposalUpdate {
	wpu.mutation.AddReviewedBy(u)
	return wpu
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (wpu *WorkProposalUpdate) ClearReviewedBy() *WorkProposalUpdate {
	wpu.mutation.ClearReviewedBy()
	return wpu
}

// SetReviewedAt sets the "reviewed_at" field.
func (wpu *WorkProposalUpdate) SetReviewedAt(t time.Time) *WorkProposalUpdate {
	wpu.mutation.SetReviewedAt(t)
	return wpu
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (wpu *WorkProposalUpdate) SetNillableReviewedAt(t *time.Time) *WorkProposalUpdate {
	if t != nil {
		wpu.SetReviewedAt(*t)
	}
	return wpu
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (wpu *WorkProposalUpdate) ClearReviewedAt() *WorkProposalUpdate {
	wpu.mutation.ClearReviewedAt()
	return wpu
}

// SetReviewComment sets the "review_comment" field.
func (wpu *WorkProposalUpdate) SetReviewComment(s string) *WorkProposalUpdate {
	wpu.mutation.SetReviewComment(s)
	return wpu
}

// SetNillableReviewComment sets the "review_comment" field if the given value is not nil.
func (wpu *WorkProposalUpdate) SetNillableReviewComment(s *string) *WorkProposalUpdate {
	if s != nil {
		wpu.SetReviewComment(*s)
	}
	return wpu
}

// ClearReviewComment clears the value of the "review_comment" field.
func (wpu *WorkProposalUpdate) ClearReviewComment() *WorkProposalUpdate {
	wpu.mutation.ClearReviewComment()
	return wpu
}

// SetUpdatedAt sets the "updated_at" field.
func (wpu *WorkProposalUpdate) SetUpdatedAt(t time.Time) *WorkProposalUpdate {
	wpu.mutation.SetUpdatedAt(t)
	return wpu
}

// SetWork sets the "work" edge to the Work entity.
func (wpu *WorkProposalUpdate) SetWork(w *Work) *WorkProposalUpdate {
	return wpu.SetWorkID(w.ID)
}

// SetVersion sets the "version" edge to the WorkVersion entity.
func (wpu *WorkProposalUpdate) SetVersion(w *WorkVersion) *WorkProposalUpdate {
	return wpu.SetVersionID(w.ID)
}

// Mutation returns the WorkProposalMutation object of the builder.
func (wpu *WorkProposalUpdate) Mutation() *WorkProposalMutation {
	return wpu.mutation
}

// ClearWork clears the "work" edge to the Work entity.
func (wpu *WorkProposalUpdate) ClearWork() *WorkProposalUpdate {
	wpu.mutation.ClearWork()
	return wpu
}

// ClearVersion clears the "version" edge to the WorkVersion entity.
func (wpu *WorkProposalUpdate) ClearVersion() *WorkProposalUpdate {
	wpu.mutation.ClearVersion()
	return wpu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wpu *WorkProposalUpdate) Save(ctx context.Context) (int, error) {
	wpu.defaults()
	return withHooks(ctx, wpu.sqlSave, wpu.mutation, wpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wpu *WorkProposalUpdate) SaveX(ctx context.Context) int {
	affected, err := wpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wpu *WorkProposalUpdate) Exec(ctx context.Context) error {
	_, err := wpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wpu *WorkProposalUpdate) ExecX(ctx context.Context) {
	if err := wpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wpu *WorkProposalUpdate) defaults() {
	if _, ok := wpu.mutation.UpdatedAt(); !ok {
		v := workproposal.UpdateDefaultUpdatedAt()
		wpu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wpu *WorkProposalUpdate) check() error {
	if v, ok := wpu.mutation.Title(); ok {
		if err := workproposal.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "WorkProposal.title": %w`, err)}
		}
	}
	if v, ok := wpu.mutation.Status(); ok {
		if err := workproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkProposal.status": %w`, err)}
		}
	}
	if v, ok := wpu.mutation.ReviewComment(); ok {
		if err := workproposal.ReviewCommentValidator(v); err != nil {
			return &ValidationError{Name: "review_comment", err: fmt.Errorf(`ent: validator failed for field "WorkProposal.review_comment": %w`, err)}
		}
	}
	if wpu.mutation.WorkCleared() && len(wpu.mutation.WorkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkProposal.work"`)
	}
	if wpu.mutation.VersionCleared() && len(wpu.mutation.VersionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkProposal.version"`)
	}
	return nil
}

func (wpu *WorkProposalUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wpu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(workproposal.Table, workproposal.Columns, sqlgraph.NewFieldSpec(workproposal.FieldID, field.TypeUint))
	if ps := wpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wpu.mutation.RequesterID(); ok {
		_spec.SetField(workproposal.FieldRequesterID, field.TypeUint, value)
	}
	if value, ok := wpu.mutation.AddedRequesterID(); ok {
		_spec.AddField(workproposal.FieldRequesterID, field.TypeUint, value)
	}
	if value, ok := wpu.mutation.Title(); ok {
		_spec.SetField(workproposal.FieldTitle, field.TypeString, value)
	}
	if value, ok := wpu.mutation.Description(); ok {
		_spec.SetField(workproposal.FieldDescription, field.TypeString, value)
	}
	if wpu.mutation.DescriptionCleared() {
		_spec.ClearField(workproposal.FieldDescription, field.TypeString)
	}
	if value, ok := wpu.mutation.Status(); ok {
		_spec.SetField(workproposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wpu.mutation.ReviewedBy(); ok {
		_spec.SetField(workproposal.FieldReviewedBy, field.TypeUint, value)
	}
	if value, ok := wpu.mutation.AddedReviewedBy(); ok {
		_spec.AddField(workproposal.FieldReviewedBy, field.TypeUint, value)
	}
	if wpu.mutation.ReviewedByCleared() {
		_spec.ClearField(workproposal.FieldReviewedBy, field.TypeUint)
	}
	if value, ok := wpu.mutation.ReviewedAt(); ok {
		_spec.SetField(workproposal.FieldReviewedAt, field.TypeTime, value)
	}
	if wpu.mutation.ReviewedAtCleared() {
		_spec.ClearField(workproposal.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := wpu.mutation.ReviewComment(); ok {
		_spec.SetField(workproposal.FieldReviewComment, field.TypeString, value)
	}
	if wpu.mutation.ReviewCommentCleared() {
		_spec.ClearField(workproposal.FieldReviewComment, field.TypeString)
	}
	if value, ok := wpu.mutation.UpdatedAt(); ok {
		_spec.SetField(workproposal.FieldUpdatedAt, field.TypeTime, value)
	}
	if wpu.mutation.WorkCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wpu.mutation.WorkIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if wpu.mutation.VersionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wpu.mutation.VersionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workproposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wpu.mutation.done = true
	return n, nil
}

// WorkProposalUpdateOne is the builder for updating a single WorkProposal entity.
type WorkProposalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkProposalMutation
}

// SetWorkID sets the "work_id" field.
func (wpuo *WorkProposalUpdateOne) SetWorkID(u uint) *WorkProposalUpdateOne {
	wpuo.mutation.SetWorkID(u)
	return wpuo
}

// SetNillableWorkID sets the "work_id" field if the given value is not nil.
func (wpuo *WorkProposalUpdateOne) SetNillableWorkID(u *uint) *WorkProposalUpdateOne {
	if u != nil {
		wpuo.SetWorkID(*u)
	}
	return wpuo
}

// SetVersionID sets the "version_id" field.
func (wpuo *WorkProposalUpdateOne) SetVersionID(u uint) *WorkProposalUpdateOne {
	wpuo.mutation.SetVersionID(u)
	return wpuo
}

// SetNillableVersionID sets the "version_id" field if the given value is not nil.
func (wpuo *WorkProposalUpdateOne) SetNillableVersionID(u *uint) *WorkProposalUpdateOne {
	if u != nil {
		wpuo.SetVersionID(*u)
	}
	return wpuo
}

// SetRequesterID sets the "requester_id" field.
func (wpuo *WorkProposalUpdateOne) SetRequesterID(u uint) *WorkProposalUpdateOne {
	wpuo.mutation.ResetRequesterID()
	wpuo.mutation.SetRequesterID(u)
	return wpuo
}

// SetNillableRequesterID sets the "requester_id" field if the given value is not nil.
func (wpuo *WorkProposalUpdateOne) SetNillableRequesterID(u *uint) *WorkProposalUpdateOne {
	if u != nil {
		wpuo.SetRequesterID(*u)
	}
	return wpuo
}

// AddRequesterID adds u to the "requester_id" field.
func (wpuo *WorkProposalUpdateOne) AddRequesterID(u int) *WorkProposalUpdateOne {
	wpuo.mutation.AddRequesterID(u)
	return wpuo
}

// SetTitle sets the "title" field.
func (wpuo *WorkProposalUpdateOne) SetTitle(s string) *WorkProposalUpdateOne {
	wpuo.mutation.SetTitle(s)
	return wpuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (wpuo *WorkProposalUpdateOne) SetNillableTitle(s *string) *WorkProposalUpdateOne {
	if s != nil {
		wpuo.SetTitle(*s)
	}
	return wpuo
}

// SetDescription sets the "description" field.
func (wpuo *WorkProposalUpdateOne) SetDescription(s string) *WorkProposalUpdateOne {
	wpuo.mutation.SetDescription(s)
	return wpuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (wpuo *WorkProposalUpdateOne) SetNillableDescription(s *string) *WorkProposalUpdateOne {
	if s != nil {
		wpuo.SetDescription(*s)
	}
	return wpuo
}

// ClearDescription clears the value of the "description" field.
func (wpuo *WorkProposalUpdateOne) ClearDescription() *WorkProposalUpdateOne {
	wpuo.mutation.ClearDescription()
	return wpuo
}

// SetStatus sets the "status" field.
func (wpuo *WorkProposalUpdateOne) SetStatus(w workproposal.Status) *WorkProposalUpdateOne {
	wpuo.mutation.SetStatus(w)
	return wpuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wpuo *WorkProposalUpdateOne) SetNillableStatus(w *workproposal.Status) *WorkProposalUpdateOne {
	if w != nil {
		wpuo.SetStatus(*w)
	}
	return wpuo
}

// SetReviewedBy sets the "reviewed_by" field.
func (wpuo *WorkProposalUpdateOne) SetReviewedBy(u uint) *WorkProposalUpdateOne {
	wpuo.mutation.ResetReviewedBy()
	wpuo.mutation.SetReviewedBy(u)
	return wpuo
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (wpuo *WorkProposalUpdateOne) SetNillableReviewedBy(u *uint) *WorkProposalUpdateOne {
	if u != nil {
		wpuo.SetReviewedBy(*u)
	}
	return wpuo
}

// AddReviewedBy adds u to the "reviewed_by" field.
func (wpuo *WorkProposalUpdateOne) AddReviewedBy(u int) *WorkProposalUpdateOne {
	wpuo.mutation.AddReviewedBy(u)
	return wpuo
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (wpuo *WorkProposalUpdateOne) ClearReviewedBy() *WorkProposalUpdateOne {
	wpuo.mutation.ClearReviewedBy()
	return wpuo
}

// SetReviewedAt sets the "reviewed_at" field.
func (wpuo *WorkProposalUpdateOne) SetReviewedAt(t time.Time) *WorkProposalUpdateOne {
	wpuo.mutation.SetReviewedAt(t)
	return wpuo
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (wpuo *WorkProposalUpdateOne) SetNillableReviewedAt(t *time.Time) *WorkProposalUpdateOne {
	if t != nil {
		wpuo.SetReviewedAt(*t)
	}
	return wpuo
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (wpuo *WorkProposalUpdateOne) ClearReviewedAt() *WorkProposalUpdateOne {
	wpuo.mutation.ClearReviewedAt()
	return wpuo
}

// SetReviewComment sets the "review_comment" field.
func (wpuo *WorkProposalUpdateOne) SetReviewComment(s string) *WorkProposalUpdateOne {
	wpuo.mutation.SetReviewComment(s)
	return wpuo
}

// SetNillableReviewComment sets the "review_comment" field if the given value is not nil.
func (wpuo *WorkProposalUpdateOne) SetNillableReviewComment(s *string) *WorkProposalUpdateOne {
	if s != nil {
		wpuo.SetReviewComment(*s)
	}
	return wpuo
}

// ClearReviewComment clears the value of the "review_comment" field.
func (wpuo *WorkProposalUpdateOne) ClearReviewComment() *WorkProposalUpdateOne {
	wpuo.mutation.ClearReviewComment()
	return wpuo
}

// SetUpdatedAt sets the "updated_at" field.
func (wpuo *WorkProposalUpdateOne) SetUpdatedAt(t time.Time) *WorkProposalUpdateOne {
	wpuo.mutation.SetUpdatedAt(t)
	return wpuo
}

// SetWork sets the "work" edge to the Work entity.
func (wpuo *WorkProposalUpdateOne) SetWork(w *Work) *WorkProposalUpdateOne {
	return wpuo.SetWorkID(w.ID)
}

// SetVersion sets the "version" edge to the WorkVersion entity.
func (wpuo *WorkProposalUpdateOne) SetVersion(w *WorkVersion) *WorkProposalUpdateOne {
	return wpuo.SetVersionID(w.ID)
}

// Mutation returns the WorkProposalMutation object of the builder.
func (wpuo *WorkProposalUpdateOne) Mutation() *WorkProposalMutation {
	return wpuo.mutation
}

// ClearWork clears the "work" edge to the Work entity.
func (wpuo *WorkProposalUpdateOne) ClearWork() *WorkProposalUpdateOne {
	wpuo.mutation.ClearWork()
	return wpuo
}

// ClearVersion clears the "version" edge to the WorkVersion entity.
func (wpuo *WorkProposalUpdateOne) ClearVersion() *WorkProposalUpdateOne {
	wpuo.mutation.ClearVersion()
	return wpuo
}

// Where appends a list predicates to the WorkProposalUpdate builder.
func (wpuo *WorkProposalUpdateOne) Where(ps ...predicate.WorkProposal) *WorkProposalUpdateOne {
	wpuo.mutation.Where(ps...)
	return wpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wpuo *WorkProposalUpdateOne) Select(field string, fields ...string) *WorkProposalUpdateOne {
	wpuo.fields = append([]string{field}, fields...)
	return wpuo
}

// Save executes the query and returns the updated WorkProposal entity.
func (wpuo *WorkProposalUpdateOne) Save(ctx context.Context) (*WorkProposal, error) {
	wpuo.defaults()
	return withHooks(ctx, wpuo.sqlSave, wpuo.mutation, wpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wpuo *WorkProposalUpdateOne) SaveX(ctx context.Context) *WorkProposal {
	node, err := wpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wpuo *WorkProposalUpdateOne) Exec(ctx context.Context) error {
	_, err := wpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wpuo *WorkProposalUpdateOne) ExecX(ctx context.Context) {
	if err := wpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wpuo *WorkProposalUpdateOne) defaults() {
	if _, ok := wpuo.mutation.UpdatedAt(); !ok {
		v := workproposal.UpdateDefaultUpdatedAt()
		wpuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wpuo *WorkProposalUpdateOne) check() error {
	if v, ok := wpuo.mutation.Title(); ok {
		if err := workproposal.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "WorkProposal.title": %w`, err)}
		}
	}
	if v, ok := wpuo.mutation.Status(); ok {
		if err := workproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkProposal.status": %w`, err)}
		}
	}
	if v, ok := wpuo.mutation.ReviewComment(); ok {
		if err := workproposal.ReviewCommentValidator(v); err != nil {
			return &ValidationError{Name: "review_comment", err: fmt.Errorf(`ent: validator failed for field "WorkProposal.review_comment": %w`, err)}
		}
	}
	if wpuo.mutation.WorkCleared() && len(wpuo.mutation.WorkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkProposal.work"`)
	}
	if wpuo.mutation.VersionCleared() && len(wpuo.mutation.VersionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkProposal.version"`)
	}
	return nil
}

func (wpuo *WorkProposalUpdateOne) sqlSave(ctx context.Context) (_node *WorkProposal, err error) {
	if err := wpuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workproposal.Table, workproposal.Columns, sqlgraph.NewFieldSpec(workproposal.FieldID, field.TypeUint))
	id, ok := wpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkProposal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workproposal.FieldID)
		for _, f := range fields {
			if !workproposal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workproposal.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wpuo.mutation.RequesterID(); ok {
		_spec.SetField(workproposal.FieldRequesterID, field.TypeUint, value)
	}
	if value, ok := wpuo.mutation.AddedRequesterID(); ok {
		_spec.AddField(workproposal.FieldRequesterID, field.TypeUint, value)
	}
	if value, ok := wpuo.mutation.Title(); ok {
		_spec.SetField(workproposal.FieldTitle, field.TypeString, value)
	}
	if value, ok := wpuo.mutation.Description(); ok {
		_spec.SetField(workproposal.FieldDescription, field.TypeString, value)
	}
	if wpuo.mutation.DescriptionCleared() {
		_spec.ClearField(workproposal.FieldDescription, field.TypeString)
	}
	if value, ok := wpuo.mutation.Status(); ok {
		_spec.SetField(workproposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wpuo.mutation.ReviewedBy(); ok {
		_spec.SetField(workproposal.FieldReviewedBy, field.TypeUint, value)
	}
	if value, ok := wpuo.mutation.AddedReviewedBy(); ok {
		_spec.AddField(workproposal.FieldReviewedBy, field.TypeUint, value)
	}
	if wpuo.mutation.ReviewedByCleared() {
		_spec.ClearField(workproposal.FieldReviewedBy, field.TypeUint)
	}
	if value, ok := wpuo.mutation.ReviewedAt(); ok {
		_spec.SetField(workproposal.FieldReviewedAt, field.TypeTime, value)
	}
	if wpuo.mutation.ReviewedAtCleared() {
		_spec.ClearField(workproposal.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := wpuo.mutation.ReviewComment(); ok {
		_spec.SetField(workproposal.FieldReviewComment, field.TypeString, value)
	}
	if wpuo.mutation.ReviewCommentCleared() {
		_spec.ClearField(workproposal.FieldReviewComment, field.TypeString)
	}
	if value, ok := wpuo.mutation.UpdatedAt(); ok {
		_spec.SetField(workproposal.FieldUpdatedAt, field.TypeTime, value)
	}
	if wpuo.mutation.WorkCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wpuo.mutation.WorkIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if wpuo.mutation.VersionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wpuo.mutation.VersionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkProposal{config: wpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workproposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wpuo.mutation.done = true
	return _node, nil
}
