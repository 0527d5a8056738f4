// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/muselink-c/muselink-app/ent/predicate"
	"github.com/muselink-c/muselink-app/ent/workstar"
)

// WorkStarQuery is the builder for querying WorkStar entities.
type WorkStarQuery struct {
	config
	ctx        *QueryContext
	order      []workstar.OrderOption
	inters     []Interceptor
	predicates []predicate.WorkStar
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WorkStarQuery builder.
func (wsq *WorkStarQuery) Where(ps ...predicate.WorkStar) *WorkStarQuery {
	wsq.predicates = append(wsq.predicates, ps...)
	return wsq
}

// Limit the number of records to be returned by this query.
func (wsq *WorkStarQuery) Limit(limit int) *WorkStarQuery {
	wsq.ctx.Limit = &limit
	return wsq
}

// Offset to start from.
func (wsq *WorkStarQuery) Offset(offset int) *WorkStarQuery {
	wsq.ctx.Offset = &offset
	return wsq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (wsq *WorkStarQuery) Unique(unique bool) *WorkStarQuery {
	wsq.ctx.Unique = &unique
	return wsq
}

// Order specifies how the records should be ordered.
func (wsq *WorkStarQuery) Order(o ...workstar.OrderOption) *WorkStarQuery {
	wsq.order = append(wsq.order, o...)
	return wsq
}

// First returns the first WorkStar entity from the query.
// Returns a *NotFoundError when no WorkStar was found.
func (wsq *WorkStarQuery) First(ctx context.Context) (*WorkStar, error) {
	nodes, err := wsq.Limit(1).All(setContextOp(ctx, wsq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{workstar.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (wsq *WorkStarQuery) FirstX(ctx context.Context) *WorkStar {
	node, err := wsq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WorkStar ID from the query.
// Returns a *NotFoundError when no WorkStar ID was found.
func (wsq *WorkStarQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wsq.Limit(1).IDs(setContextOp(ctx, wsq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{workstar.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (wsq *WorkStarQuery) FirstIDX(ctx context.Context) uint {
	id, err := wsq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WorkStar entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WorkStar entity is found.
// Returns a *NotFoundError when no WorkStar entities are found.
func (wsq *WorkStarQuery) Only(ctx context.Context) (*WorkStar, error) {
	nodes, err := wsq.Limit(2).All(setContextOp(ctx, wsq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{workstar.Label}
	default:
		return nil, &NotSingularError{workstar.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (wsq *WorkStarQuery) OnlyX(ctx context.Context) *WorkStar {
	node, err := wsq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WorkStar ID in the query.
// Returns a *NotSingularError when more than one WorkStar ID is found.
// Returns a *NotFoundError when no entities are found.
func (wsq *WorkStarQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wsq.Limit(2).IDs(setContextOp(ctx, wsq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{workstar.Label}
	default:
		err = &NotSingularError{workstar.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (wsq *WorkStarQuery) OnlyIDX(ctx context.Context) uint {
	id, err := wsq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WorkStars.
func (wsq *WorkStarQuery) All(ctx context.Context) ([]*WorkStar, error) {
	ctx = setContextOp(ctx, wsq.ctx, ent.OpQueryAll)
	if err := wsq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WorkStar, *WorkStarQuery]()
	return withInterceptors[[]*WorkStar](ctx, wsq, qr, wsq.inters)
}

// AllX is like All, but panics if an error occurs.
func (wsq *WorkStarQuery) AllX(ctx context.Context) []*WorkStar {
	nodes, err := wsq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WorkStar IDs.
func (wsq *WorkStarQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if wsq.ctx.Unique == nil && wsq.path != nil {
		wsq.Unique(true)
	}
	ctx = setContextOp(ctx, wsq.ctx, ent.OpQueryIDs)
	if err = wsq.Select(workstar.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (wsq *WorkStarQuery) IDsX(ctx context.Context) []uint {
	ids, err := wsq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (wsq *WorkStarQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, wsq.ctx, ent.OpQueryCount)
	if err := wsq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, wsq, querierCount[*WorkStarQuery](), wsq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (wsq *WorkStarQuery) CountX(ctx context.Context) int {
	count, err := wsq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (wsq *WorkStarQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, wsq.ctx, ent.OpQueryExist)
	switch _, err := wsq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (wsq *WorkStarQuery) ExistX(ctx context.Context) bool {
	exist, err := wsq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WorkStarQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (wsq *WorkStarQuery) Clone() *WorkStarQuery {
	if wsq == nil {
		return nil
	}
	return &WorkStarQuery{
		config:     wsq.config,
		ctx:        wsq.ctx.Clone(),
		order:      append([]workstar.OrderOption{}, wsq.order...),
		inters:     append([]Interceptor{}, wsq.inters...),
		predicates: append([]predicate.WorkStar{}, wsq.predicates...),
		// clone intermediate query.
		sql:  wsq.sql.Clone(),
		path: wsq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		WorkID uint `json:"work_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.WorkStar.Query().
//		GroupBy(workstar.FieldWorkID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (wsq *WorkStarQuery) GroupBy(field string, fields ...string) *WorkStarGroupBy {
	wsq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WorkStarGroupBy{build: wsq}
	grbuild.flds = &wsq.ctx.Fields
	grbuild.label = workstar.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		WorkID uint `json:"work_id,omitempty"`
//	}
//
//	client.WorkStar.Query().
//		Select(workstar.FieldWorkID).
//		Scan(ctx, &v)
func (wsq *WorkStarQuery) Select(fields ...string) *WorkStarSelect {
	wsq.ctx.Fields = append(wsq.ctx.Fields, fields...)
	sbuild := &WorkStarSelect{WorkStarQuery: wsq}
	sbuild.label = workstar.Label
	sbuild.flds, sbuild.scan = &wsq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WorkStarSelect configured with the given aggregations.
func (wsq *WorkStarQuery) Aggregate(fns ...AggregateFunc) *WorkStarSelect {
	return wsq.Select().Aggregate(fns...)
}

func (wsq *WorkStarQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range wsq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, wsq); err != nil {
				return err
			}
		}
	}
	for _, f := range wsq.ctx.Fields {
		if !workstar.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if wsq.path != nil {
		prev, err := wsq.path(ctx)
		if err != nil {
			return err
		}
		wsq.sql = prev
	}
	return nil
}

func (wsq *WorkStarQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WorkStar, error) {
	var (
		nodes = []*WorkStar{}
		_spec = wsq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WorkStar).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WorkStar{config: wsq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, wsq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (wsq *WorkStarQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := wsq.querySpec()
	_spec.Node.Columns = wsq.ctx.Fields
	if len(wsq.ctx.Fields) > 0 {
		_spec.Unique = wsq.ctx.Unique != nil && *wsq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, wsq.driver, _spec)
}

func (wsq *WorkStarQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(workstar.Table, workstar.Columns, sqlgraph.NewFieldSpec(workstar.FieldID, field.TypeUint))
	_spec.From = wsq.sql
	if unique := wsq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if wsq.path != nil {
		_spec.Unique = true
	}
	if fields := wsq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workstar.FieldID)
		for i := range fields {
			if fields[i] != workstar.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := wsq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := wsq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := wsq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := wsq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (wsq *WorkStarQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(wsq.driver.Dialect())
	t1 := builder.Table(workstar.Table)
	columns := wsq.ctx.Fields
	if len(columns) == 0 {
		columns = workstar.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if wsq.sql != nil {
		selector = wsq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if wsq.ctx.Unique != nil && *wsq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range wsq.predicates {
		p(selector)
	}
	for _, p := range wsq.order {
		p(selector)
	}
	if offset := wsq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := wsq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// WorkStarGroupBy is the group-by builder for WorkStar entities.
type WorkStarGroupBy struct {
	selector
	build *WorkStarQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (wsgb *WorkStarGroupBy) Aggregate(fns ...AggregateFunc) *WorkStarGroupBy {
	wsgb.fns = append(wsgb.fns, fns...)
	return wsgb
}

// Scan applies the selector query and scans the result into the given value.
func (wsgb *WorkStarGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wsgb.build.ctx, ent.OpQueryGroupBy)
	if err := wsgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkStarQuery, *WorkStarGroupBy](ctx, wsgb.build, wsgb, wsgb.build.inters, v)
}

func (wsgb *WorkStarGroupBy) sqlScan(ctx context.Context, root *WorkStarQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(wsgb.fns))
	for _, fn := range wsgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*wsgb.flds)+len(wsgb.fns))
		for _, f := range *wsgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*wsgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wsgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WorkStarSelect is the builder for selecting fields of WorkStar entities.
type WorkStarSelect struct {
	*WorkStarQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (wss *WorkStarSelect) Aggregate(fns ...AggregateFunc) *WorkStarSelect {
	wss.fns = append(wss.fns, fns...)
	return wss
}

// Scan applies the selector query and scans the result into the given value.
func (wss *WorkStarSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wss.ctx, ent.OpQuerySelect)
	if err := wss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkStarQuery, *WorkStarSelect](ctx, wss.WorkStarQuery, wss, wss.inters, v)
}

func (wss *WorkStarSelect) sqlScan(ctx context.Context, root *WorkStarQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(wss.fns))
	for _, fn := range wss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*wss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
