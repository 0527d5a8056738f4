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
	"github.com/muselink-c/muselink-app/ent/work"
	"github.com/muselink-c/muselink-app/ent/workproposal"
	"github.com/muselink-c/muselink-app/ent/workversion"
)

// WorkProposalQuery is the builder for querying WorkProposal entities.
type WorkProposalQuery struct {
	config
	ctx         *QueryContext
	order       []workproposal.OrderOption
	inters      []Interceptor
	predicates  []predicate.WorkProposal
	withWork    *WorkQuery
	withVersion *WorkVersionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WorkProposalQuery builder.
func (wpq *WorkProposalQuery) Where(ps ...predicate.WorkProposal) *WorkProposalQuery {
	wpq.predicates = append(wpq.predicates, ps...)
	return wpq
}

// Limit the number of records to be returned by this query.
func (wpq *WorkProposalQuery) Limit(limit int) *WorkProposalQuery {
	wpq.ctx.Limit = &limit
	return wpq
}

// Offset to start from.
func (wpq *WorkProposalQuery) Offset(offset int) *WorkProposalQuery {
	wpq.ctx.Offset = &offset
	return wpq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (wpq *WorkProposalQuery) Unique(unique bool) *WorkProposalQuery {
	wpq.ctx.Unique = &unique
	return wpq
}

// Order specifies how the records should be ordered.
func (wpq *WorkProposalQuery) Order(o ...workproposal.OrderOption) *WorkProposalQuery {
	wpq.order = append(wpq.order, o...)
	return wpq
}

// QueryWork chains the current query on the "work" edge.
func (wpq *WorkProposalQuery) QueryWork() *WorkQuery {
	query := (&WorkClient{config: wpq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := wpq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := wpq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workproposal.Table, workproposal.FieldID, selector),
			sqlgraph.To(work.Table, work.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workproposal.WorkTable, workproposal.WorkColumn),
		)
		fromU = sqlgraph.SetNeighbors(wpq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVersion chains the current query on the "version" edge.
func (wpq *WorkProposalQuery) QueryVersion() *WorkVersionQuery {
	query := (&WorkVersionClient{config: wpq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := wpq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := wpq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workproposal.Table, workproposal.FieldID, selector),
			sqlgraph.To(workversion.Table, workversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, workproposal.VersionTable, workproposal.VersionColumn),
		)
		fromU = sqlgraph.SetNeighbors(wpq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first WorkProposal entity from the query.
// Returns a *NotFoundError when no WorkProposal was found.
func (wpq *WorkProposalQuery) First(ctx context.Context) (*WorkProposal, error) {
	nodes, err := wpq.Limit(1).All(setContextOp(ctx, wpq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{workproposal.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (wpq *WorkProposalQuery) FirstX(ctx context.Context) *WorkProposal {
	node, err := wpq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WorkProposal ID from the query.
// Returns a *NotFoundError when no WorkProposal ID was found.
func (wpq *WorkProposalQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wpq.Limit(1).IDs(setContextOp(ctx, wpq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{workproposal.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (wpq *WorkProposalQuery) FirstIDX(ctx context.Context) uint {
	id, err := wpq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WorkProposal entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WorkProposal entity is found.
// Returns a *NotFoundError when no WorkProposal entities are found.
func (wpq *WorkProposalQuery) Only(ctx context.Context) (*WorkProposal, error) {
	nodes, err := wpq.Limit(2).All(setContextOp(ctx, wpq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{workproposal.Label}
	default:
		return nil, &NotSingularError{workproposal.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (wpq *WorkProposalQuery) OnlyX(ctx context.Context) *WorkProposal {
	node, err := wpq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WorkProposal ID in the query.
// Returns a *NotSingularError when more than one WorkProposal ID is found.
// Returns a *NotFoundError when no entities are found.
func (wpq *WorkProposalQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wpq.Limit(2).IDs(setContextOp(ctx, wpq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{workproposal.Label}
	default:
		err = &NotSingularError{workproposal.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (wpq *WorkProposalQuery) OnlyIDX(ctx context.Context) uint {
	id, err := wpq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WorkProposals.
func (wpq *WorkProposalQuery) All(ctx context.Context) ([]*WorkProposal, error) {
	ctx = setContextOp(ctx, wpq.ctx, ent.OpQueryAll)
	if err := wpq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WorkProposal, *WorkProposalQuery]()
	return withInterceptors[[]*WorkProposal](ctx, wpq, qr, wpq.inters)
}

// AllX is like All, but panics if an error occurs.
func (wpq *WorkProposalQuery) AllX(ctx context.Context) []*WorkProposal {
	nodes, err := wpq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WorkProposal IDs.
func (wpq *WorkProposalQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if wpq.ctx.Unique == nil && wpq.path != nil {
		wpq.Unique(true)
	}
	ctx = setContextOp(ctx, wpq.ctx, ent.OpQueryIDs)
	if err = wpq.Select(workproposal.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (wpq *WorkProposalQuery) IDsX(ctx context.Context) []uint {
	ids, err := wpq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (wpq *WorkProposalQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, wpq.ctx, ent.OpQueryCount)
	if err := wpq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, wpq, querierCount[*WorkProposalQuery](), wpq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (wpq *WorkProposalQuery) CountX(ctx context.Context) int {
	count, err := wpq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (wpq *WorkProposalQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, wpq.ctx, ent.OpQueryExist)
	switch _, err := wpq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (wpq *WorkProposalQuery) ExistX(ctx context.Context) bool {
	exist, err := wpq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WorkProposalQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (wpq *WorkProposalQuery) Clone() *WorkProposalQuery {
	if wpq == nil {
		return nil
	}
	return &WorkProposalQuery{
		config:      wpq.config,
		ctx:         wpq.ctx.Clone(),
		order:       append([]workproposal.OrderOption{}, wpq.order...),
		inters:      append([]Interceptor{}, wpq.inters...),
		predicates:  append([]predicate.WorkProposal{}, wpq.predicates...),
		withWork:    wpq.withWork.Clone(),
		withVersion: wpq.withVersion.Clone(),
		// clone intermediate query.
		sql:  wpq.sql.Clone(),
		path: wpq.path,
	}
}

// WithWork tells the query-builder to eager-load the nodes that are connected to
// the "work" edge. The optional arguments are used to configure the query builder of the edge.
func (wpq *WorkProposalQuery) WithWork(opts ...func(*WorkQuery)) *WorkProposalQuery {
	query := (&WorkClient{config: wpq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	wpq.withWork = query
	return wpq
}

// WithVersion tells the query-builder to eager-load the nodes that are connected to
// the "version" edge. The optional arguments are used to configure the query builder of the edge.
func (wpq *WorkProposalQuery) WithVersion(opts ...func(*WorkVersionQuery)) *WorkProposalQuery {
	query := (&WorkVersionClient{config: wpq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	wpq.withVersion = query
	return wpq
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
//	client.WorkProposal.Query().
//		GroupBy(workproposal.FieldWorkID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (wpq *WorkProposalQuery) GroupBy(field string, fields ...string) *WorkProposalGroupBy {
	wpq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WorkProposalGroupBy{build: wpq}
	grbuild.flds = &wpq.ctx.Fields
	grbuild.label = workproposal.Label
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
//	client.WorkProposal.Query().
//		Select(workproposal.FieldWorkID).
//		Scan(ctx, &v)
func (wpq *WorkProposalQuery) Select(fields ...string) *WorkProposalSelect {
	wpq.ctx.Fields = append(wpq.ctx.Fields, fields...)
	sbuild := &WorkProposalSelect{WorkProposalQuery: wpq}
	sbuild.label = workproposal.Label
	sbuild.flds, sbuild.scan = &wpq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WorkProposalSelect configured with the given aggregations.
func (wpq *WorkProposalQuery) Aggregate(fns ...AggregateFunc) *WorkProposalSelect {
	return wpq.Select().Aggregate(fns...)
}

func (wpq *WorkProposalQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range wpq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, wpq); err != nil {
				return err
			}
		}
	}
	for _, f := range wpq.ctx.Fields {
		if !workproposal.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if wpq.path != nil {
		prev, err := wpq.path(ctx)
		if err != nil {
			return err
		}
		wpq.sql = prev
	}
	return nil
}

func (wpq *WorkProposalQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WorkProposal, error) {
	var (
		nodes       = []*WorkProposal{}
		_spec       = wpq.querySpec()
		loadedTypes = [2]bool{
			wpq.withWork != nil,
			wpq.withVersion != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WorkProposal).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WorkProposal{config: wpq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, wpq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := wpq.withWork; query != nil {
		if err := wpq.loadWork(ctx, query, nodes, nil,
			func(n *WorkProposal, e *Work) { n.Edges.Work = e }); err != nil {
			return nil, err
		}
	}
	if query := wpq.withVersion; query != nil {
		if err := wpq.loadVersion(ctx, query, nodes, nil,
			func(n *WorkProposal, e *WorkVersion) { n.Edges.Version = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (wpq *WorkProposalQuery) loadWork(ctx context.Context, query *WorkQuery, nodes []*WorkProposal, init func(*WorkProposal), assign func(*WorkProposal, *Work)) error {
	ids := make([]uint, 0, len(nodes))
	nodeids := make(map[uint][]*WorkProposal)
	for i := range nodes {
		fk := nodes[i].WorkID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(work.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "work_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (wpq *WorkProposalQuery) loadVersion(ctx context.Context, query *WorkVersionQuery, nodes []*WorkProposal, init func(*WorkProposal), assign func(*WorkProposal, *WorkVersion)) error {
	ids := make([]uint, 0, len(nodes))
	nodeids := make(map[uint][]*WorkProposal)
	for i := range nodes {
		fk := nodes[i].VersionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(workversion.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "version_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (wpq *WorkProposalQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := wpq.querySpec()
	_spec.Node.Columns = wpq.ctx.Fields
	if len(wpq.ctx.Fields) > 0 {
		_spec.Unique = wpq.ctx.Unique != nil && *wpq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, wpq.driver, _spec)
}

func (wpq *WorkProposalQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(workproposal.Table, workproposal.Columns, sqlgraph.NewFieldSpec(workproposal.FieldID, field.TypeUint))
	_spec.From = wpq.sql
	if unique := wpq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if wpq.path != nil {
		_spec.Unique = true
	}
	if fields := wpq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workproposal.FieldID)
		for i := range fields {
			if fields[i] != workproposal.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if wpq.withWork != nil {
			_spec.Node.AddColumnOnce(workproposal.FieldWorkID)
		}
		if wpq.withVersion != nil {
			_spec.Node.AddColumnOnce(workproposal.FieldVersionID)
		}
	}
	if ps := wpq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := wpq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := wpq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := wpq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (wpq *WorkProposalQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(wpq.driver.Dialect())
	t1 := builder.Table(workproposal.Table)
	columns := wpq.ctx.Fields
	if len(columns) == 0 {
		columns = workproposal.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if wpq.sql != nil {
		selector = wpq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if wpq.ctx.Unique != nil && *wpq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range wpq.predicates {
		p(selector)
	}
	for _, p := range wpq.order {
		p(selector)
	}
	if offset := wpq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := wpq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// WorkProposalGroupBy is the group-by builder for WorkProposal entities.
type WorkProposalGroupBy struct {
	selector
	build *WorkProposalQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (wpgb *WorkProposalGroupBy) Aggregate(fns ...AggregateFunc) *WorkProposalGroupBy {
	wpgb.fns = append(wpgb.fns, fns...)
	return wpgb
}

// Scan applies the selector query and scans the result into the given value.
func (wpgb *WorkProposalGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wpgb.build.ctx, ent.OpQueryGroupBy)
	if err := wpgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkProposalQuery, *WorkProposalGroupBy](ctx, wpgb.build, wpgb, wpgb.build.inters, v)
}

func (wpgb *WorkProposalGroupBy) sqlScan(ctx context.Context, root *WorkProposalQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(wpgb.fns))
	for _, fn := range wpgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*wpgb.flds)+len(wpgb.fns))
		for _, f := range *wpgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*wpgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wpgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WorkProposalSelect is the builder for selecting fields of WorkProposal entities.
type WorkProposalSelect struct {
	*WorkProposalQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (wps *WorkProposalSelect) Aggregate(fns ...AggregateFunc) *WorkProposalSelect {
	wps.fns = append(wps.fns, fns...)
	return wps
}

// Scan applies the selector query and scans the result into the given value.
func (wps *WorkProposalSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wps.ctx, ent.OpQuerySelect)
	if err := wps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkProposalQuery, *WorkProposalSelect](ctx, wps.WorkProposalQuery, wps, wps.inters, v)
}

func (wps *WorkProposalSelect) sqlScan(ctx context.Context, root *WorkProposalQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(wps.fns))
	for _, fn := range wps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*wps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
