// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muselink-c/muselink-app/ent/predicate"
	"github.com/muselink-c/muselink-app/ent/workstar"
)

// WorkStarUpdate is the builder for updating WorkStar entities.
type WorkStarUpdate struct {
	config
	hooks    []Hook
	mutation *WorkStarMutation
}

// Where appends a list predicates to the WorkStarUpdate builder.
func (wsu *WorkStarUpdate) Where(ps ...predicate.WorkStar) *WorkStarUpdate {
	wsu.mutation.Where(ps...)
	return wsu
}

// SetWorkID sets the "work_id" field.
func (wsu *WorkStarUpdate) SetWorkID(u uint) *WorkStarUpdate {
	wsu.mutation.ResetWorkID()
	wsu.mutation.SetWorkID(u)
	return wsu
}

// SetNillableWorkID sets the "work_id" field if the given value is not nil.
func (wsu *WorkStarUpdate) SetNillableWorkID(u *uint) *WorkStarUpdate {
	if u != nil {
		wsu.SetWorkID(*u)
	}
	return wsu
}

// AddWorkID adds u to the "work_id" field.
func (wsu *WorkStarUpdate) AddWorkID(u int) *WorkStarUpdate {
	wsu.mutation.AddWorkID(u)
	return wsu
}

// SetUserID sets the "user_id" field.
func (wsu *WorkStarUpdate) SetUserID(u uint) *WorkStarUpdate {
	wsu.mutation.ResetUserID()
	wsu.mutation.SetUserID(u)
	return wsu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (wsu *WorkStarUpdate) SetNillableUserID(u *uint) *WorkStarUpdate {
	if u != nil {
		wsu.SetUserID(*u)
	}
	return wsu
}

// AddUserID adds u to the "user_id" field.
func (wsu *WorkStarUpdate) AddUserID(u int) *WorkStarUpdate {
	wsu.mutation.AddUserID(u)
	return wsu
}

// Mutation returns the WorkStarMutation object of the builder.
func (wsu *WorkStarUpdate) Mutation() *WorkStarMutation {
	return wsu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wsu *WorkStarUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, wsu.sqlSave, wsu.mutation, wsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wsu *WorkStarUpdate) SaveX(ctx context.Context) int {
	affected, err := wsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wsu *WorkStarUpdate) Exec(ctx context.Context) error {
	_, err := wsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wsu *WorkStarUpdate) ExecX(ctx context.Context) {
	if err := wsu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (wsu *WorkStarUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(workstar.Table, workstar.Columns, sqlgraph.NewFieldSpec(workstar.FieldID, field.TypeUint))
	if ps := wsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wsu.mutation.WorkID(); ok {
		_spec.SetField(workstar.FieldWorkID, field.TypeUint, value)
	}
	if value, ok := wsu.mutation.AddedWorkID(); ok {
		_spec.AddField(workstar.FieldWorkID, field.TypeUint, value)
	}
	if value, ok := wsu.mutation.UserID(); ok {
		_spec.SetField(workstar.FieldUserID, field.TypeUint, value)
	}
	if value, ok := wsu.mutation.AddedUserID(); ok {
		_spec.AddField(workstar.FieldUserID, field.TypeUint, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workstar.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wsu.mutation.done = true
	return n, nil
}

// WorkStarUpdateOne is the builder for updating a single WorkStar entity.
type WorkStarUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkStarMutation
}

// SetWorkID sets the "work_id" field.
func (wsuo *WorkStarUpdateOne) SetWorkID(u uint) *WorkStarUpdateOne {
	wsuo.mutation.ResetWorkID()
	wsuo.mutation.SetWorkID(u)
	return wsuo
}

// SetNillableWorkID sets the "work_id" field if the given value is not nil.
func (wsuo *WorkStarUpdateOne) SetNillableWorkID(u *uint) *WorkStarUpdateOne {
	if u != nil {
		wsuo.SetWorkID(*u)
	}
	return wsuo
}

// AddWorkID adds u to the "work_id" field.
func (wsuo *WorkStarUpdateOne) AddWorkID(u int) *WorkStarUpdateOne {
	wsuo.mutation.AddWorkID(u)
	return wsuo
}

// SetUserID sets the "user_id" field.
func (wsuo *WorkStarUpdateOne) SetUserID(u uint) *WorkStarUpdateOne {
	wsuo.mutation.ResetUserID()
	wsuo.mutation.SetUserID(u)
	return wsuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (wsuo *WorkStarUpdateOne) SetNillableUserID(u *uint) *WorkStarUpdateOne {
	if u != nil {
		wsuo.SetUserID(*u)
	}
	return wsuo
}

// AddUserID adds u to the "user_id" field.
func (wsuo *WorkStarUpdateOne) AddUserID(u int) *WorkStarUpdateOne {
	wsuo.mutation.AddUserID(u)
	return wsuo
}

// Mutation returns the WorkStarMutation object of the builder.
func (wsuo *WorkStarUpdateOne) Mutation() *WorkStarMutation {
	return wsuo.mutation
}

// Where appends a list predicates to the WorkStarUpdate builder.
func (wsuo *WorkStarUpdateOne) Where(ps ...predicate.WorkStar) *WorkStarUpdateOne {
	wsuo.mutation.Where(ps...)
	return wsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wsuo *WorkStarUpdateOne) Select(field string, fields ...string) *WorkStarUpdateOne {
	wsuo.fields = append([]string{field}, fields...)
	return wsuo
}

// Save executes the query and returns the updated WorkStar entity.
func (wsuo *WorkStarUpdateOne) Save(ctx context.Context) (*WorkStar, error) {
	return withHooks(ctx, wsuo.sqlSave, wsuo.mutation, wsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wsuo *WorkStarUpdateOne) SaveX(ctx context.Context) *WorkStar {
	node, err := wsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wsuo *WorkStarUpdateOne) Exec(ctx context.Context) error {
	_, err := wsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wsuo *WorkStarUpdateOne) ExecX(ctx context.Context) {
	if err := wsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (wsuo *WorkStarUpdateOne) sqlSave(ctx context.Context) (_node *WorkStar, err error) {
	_spec := sqlgraph.NewUpdateSpec(workstar.Table, workstar.Columns, sqlgraph.NewFieldSpec(workstar.FieldID, field.TypeUint))
	id, ok := wsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkStar.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workstar.FieldID)
		for _, f := range fields {
			if !workstar.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workstar.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wsuo.mutation.WorkID(); ok {
		_spec.SetField(workstar.FieldWorkID, field.TypeUint, value)
	}
	if value, ok := wsuo.mutation.AddedWorkID(); ok {
		_spec.AddField(workstar.FieldWorkID, field.TypeUint, value)
	}
	if value, ok := wsuo.mutation.UserID(); ok {
		_spec.SetField(workstar.FieldUserID, field.TypeUint, value)
	}
	if value, ok := wsuo.mutation.AddedUserID(); ok {
		_spec.AddField(workstar.FieldUserID, field.TypeUint, value)
	}
	_node = &WorkStar{config: wsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workstar.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wsuo.mutation.done = true
	return _node, nil
}
