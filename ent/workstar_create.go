// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muselink-c/muselink-app/ent/workstar"
)

// WorkStarCreate is the builder for creating a WorkStar entity.
type WorkStarCreate struct {
	config
	mutation *WorkStarMutation
	hooks    []Hook
}

// SetWorkID sets the "work_id" field.
func (wsc *WorkStarCreate) SetWorkID(u uint) *WorkStarCreate {
	wsc.mutation.SetWorkID(u)
	return wsc
}

// SetUserID sets the "user_id" field.
func (wsc *WorkStarCreate) SetUserID(u uint) *WorkStarCreate {
	wsc.mutation.SetUserID(u)
	return wsc
}

// SetCreatedAt sets the "created_at" field.
func (wsc *WorkStarCreate) SetCreatedAt(t time.Time) *WorkStarCreate {
	wsc.mutation.SetCreatedAt(t)
	return wsc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wsc *WorkStarCreate) SetNillableCreatedAt(t *time.Time) *WorkStarCreate {
	if t != nil {
		wsc.SetCreatedAt(*t)
	}
	return wsc
}

// SetID sets the "id" field.
func (wsc *WorkStarCreate) SetID(u uint) *WorkStarCreate {
	wsc.mutation.SetID(u)
	return wsc
}

// Mutation returns the WorkStarMutation object of the builder.
func (wsc *WorkStarCreate) Mutation() *WorkStarMutation {
	return wsc.mutation
}

// Save creates the WorkStar in the database.
func (wsc *WorkStarCreate) Save(ctx context.Context) (*WorkStar, error) {
	wsc.defaults()
	return withHooks(ctx, wsc.sqlSave, wsc.mutation, wsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wsc *WorkStarCreate) SaveX(ctx context.Context) *WorkStar {
	v, err := wsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wsc *WorkStarCreate) Exec(ctx context.Context) error {
	_, err := wsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wsc *WorkStarCreate) ExecX(ctx context.Context) {
	if err := wsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wsc *WorkStarCreate) defaults() {
	if _, ok := wsc.mutation.CreatedAt(); !ok {
		v := workstar.DefaultCreatedAt()
		wsc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wsc *WorkStarCreate) check() error {
	if _, ok := wsc.mutation.WorkID(); !ok {
		return &ValidationError{Name: "work_id", err: errors.New(`ent: missing required field "WorkStar.work_id"`)}
	}
	if _, ok := wsc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "WorkStar.user_id"`)}
	}
	if _, ok := wsc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkStar.created_at"`)}
	}
	return nil
}

func (wsc *WorkStarCreate) sqlSave(ctx context.Context) (*WorkStar, error) {
	if err := wsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wsc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	wsc.mutation.id = &_node.ID
	wsc.mutation.done = true
	return _node, nil
}

func (wsc *WorkStarCreate) createSpec() (*WorkStar, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkStar{config: wsc.config}
		_spec = sqlgraph.NewCreateSpec(workstar.Table, sqlgraph.NewFieldSpec(workstar.FieldID, field.TypeUint))
	)
	if id, ok := wsc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := wsc.mutation.WorkID(); ok {
		_spec.SetField(workstar.FieldWorkID, field.TypeUint, value)
		_node.WorkID = value
	}
	if value, ok := wsc.mutation.UserID(); ok {
		_spec.SetField(workstar.FieldUserID, field.TypeUint, value)
		_node.UserID = value
	}
	if value, ok := wsc.mutation.CreatedAt(); ok {
		_spec.SetField(workstar.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WorkStarCreateBulk is the builder for creating many WorkStar entities in bulk.
type WorkStarCreateBulk struct {
	config
	err      error
	builders []*WorkStarCreate
}

// Save creates the WorkStar entities in the database.
func (wscb *WorkStarCreateBulk) Save(ctx context.Context) ([]*WorkStar, error) {
	if wscb.err != nil {
		return nil, wscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wscb.builders))
	nodes := make([]*WorkStar, len(wscb.builders))
	mutators := make([]Mutator, len(wscb.builders))
	for i := range wscb.builders {
		func(i int, root context.Context) {
			builder := wscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkStarMutation)
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
					_, err = mutators[i+1].Mutate(root, wscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wscb *WorkStarCreateBulk) SaveX(ctx context.Context) []*WorkStar {
	v, err := wscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wscb *WorkStarCreateBulk) Exec(ctx context.Context) error {
	_, err := wscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wscb *WorkStarCreateBulk) ExecX(ctx context.Context) {
	if err := wscb.Exec(ctx); err != nil {
		panic(err)
	}
}
