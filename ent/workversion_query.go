// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
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

// WorkVersionQuery is the builder for querying WorkVersion entities.
type WorkVersionQuery struct {
	config
	ctx          *QueryContext
	order        []workversion.OrderOption
	inters       []Interceptor
	predicates   []predicate.WorkVersion
	withWork     *WorkQuery
	withProposal *WorkProposalQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WorkVersionQuery builder.
func (wvq *WorkVersionQuery) Where(ps ...predicate.WorkVersion) *WorkVersionQuery {
	wvq.predicates = append(wvq.predicates, ps...)
	return wvq
}

// Limit the number of records to be returned by this query.
func (wvq *WorkVersionQuery) Limit(limit int) *WorkVersionQuery {
	wvq.ctx.Limit = &limit
	return wvq
}

// Offset to start from.
func (wvq *WorkVersionQuery) Offset(offset int) *WorkVersionQuery {
	wvq.ctx.Offset = &offset
	return wvq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (wvq *WorkVersionQuery) Unique(unique bool) *WorkVersionQuery {
	wvq.ctx.Unique = &unique
	return wvq
}

// Order specifies how the records should be ordered.
func (wvq *WorkVersionQuery) Order(o ...workversion.OrderOption) *WorkVersionQuery {
	wvq.order = append(wvq.order, o...)
	return wvq
}

// QueryWork chains the current query on the "work" edge.
func (wvq *WorkVersionQuery) QueryWork() *WorkQuery {
	query := (&WorkClient{config: wvq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := wvq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := wvq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workversion.Table, workversion.FieldID, selector),
			sqlgraph.To(work.Table, work.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workversion.WorkTable, workversion.WorkColumn),
		)
		fromU = sqlgraph.SetNeighbors(wvq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryProposal chains the current query on the "proposal" edge.
func (wvq *WorkVersionQuery) QueryProposal() *WorkProposalQuery {
	query := (&WorkProposalClient{config: wvq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := wvq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := wvq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workversion.Table, workversion.FieldID, selector),
			sqlgraph.To(workproposal.Table, workproposal.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, workversion.ProposalTable, workversion.ProposalColumn),
		)
		fromU = sqlgraph.SetNeighbors(wvq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first WorkVersion entity from the query.
// Returns a *NotFoundError when no WorkVersion was found.
func (wvq *WorkVersionQuery) First(ctx context.Context) (*WorkVersion, error) {
	nodes, err := wvq.Limit(1).All(setContextOp(ctx, wvq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{workversion.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (wvq *WorkVersionQuery) FirstX(ctx context.Context) *WorkVersion {
	node, err := wvq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WorkVersion ID from the query.
// Returns a *NotFoundError when no WorkVersion ID was found.
func (wvq *WorkVersionQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wvq.Limit(1).IDs(setContextOp(ctx, wvq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{workversion.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (wvq *WorkVersionQuery) FirstIDX(ctx context.Context) uint {
	id, err := wvq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WorkVersion entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WorkVersion entity is found.
// Returns a *NotFoundError when no WorkVersion entities are found.
func (wvq *WorkVersionQuery) Only(ctx context.Context) (*WorkVersion, error) {
	nodes, err := wvq.Limit(2).All(setContextOp(ctx, wvq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{workversion.Label}
	default:
		return nil, &NotSingularError{workversion.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (wvq *WorkVersionQuery) OnlyX(ctx context.Context) *WorkVersion {
	node, err := wvq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WorkVersion ID in the query.
// Returns a *NotSingularError when more than one WorkVersion ID is found.
// Returns a *NotFoundError when no entities are found.
func (wvq *WorkVersionQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wvq.Limit(2).IDs(setContextOp(ctx, wvq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{workversion.Label}
	default:
		err = &NotSingularError{workversion.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (wvq *WorkVersionQuery) OnlyIDX(ctx context.Context) uint {
	id, err := wvq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WorkVersions.
func (wvq *WorkVersionQuery) All(ctx context.Context) ([]*WorkVersion, error) {
	ctx = setContextOp(ctx, wvq.ctx, ent.OpQueryAll)
	if err := wvq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WorkVersion, *WorkVersionQuery]()
	return withInterceptors[[]*WorkVersion](ctx, wvq, qr, wvq.inters)
}

// AllX is like All, but panics if an error occurs.
func (wvq *WorkVersionQuery) AllX(ctx context.Context) []*WorkVersion {
	nodes, err := wvq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WorkVersion IDs.
func (wvq *WorkVersionQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if wvq.ctx.Unique == nil && wvq.path != nil {
		wvq.Unique(true)
	}
	ctx = setContextOp(ctx, wvq.ctx, ent.OpQueryIDs)
	if err = wvq.Select(workversion.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (wvq *WorkVersionQuery) IDsX(ctx context.Context) []uint {
	ids, err := wvq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (wvq *WorkVersionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, wvq.ctx, ent.OpQueryCount)
	if err := wvq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, wvq, querierCount[*WorkVersionQuery](), wvq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (wvq *WorkVersionQuery) CountX(ctx context.Context) int {
	count, err := wvq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (wvq *WorkVersionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, wvq.ctx, ent.OpQueryExist)
	switch _, err := wvq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (wvq *WorkVersionQuery) ExistX(ctx context.Context) bool {
	exist, err := wvq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WorkVersionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (wvq *WorkVersionQuery) Clone() *WorkVersionQuery {
	if wvq == nil {
		return nil
	}
	return &WorkVersionQuery{
		config:       wvq.config,
		ctx:          wvq.ctx.Clone(),
		order:        append([]workversion.OrderOption{}, wvq.order...),
		inters:       append([]Interceptor{}, wvq.inters...),
		predicates:   append([]predicate.WorkVersion{}, wvq.predicates...),
		withWork:     wvq.withWork.Clone(),
		withProposal: wvq.withProposal.Clone(),
		// clone intermediate query.
		sql:  wvq.sql.Clone(),
		path: wvq.path,
	}
}

// WithWork tells the query-builder to eager-load the nodes that are connected to
// the "work" edge. The optional arguments are used to configure the query builder of the edge.
func (wvq *WorkVersionQuery) WithWork(opts ...func(*WorkQuery)) *WorkVersionQuery {
	query := (&WorkClient{config: wvq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	wvq.withWork = query
	return wvq
}

// WithProposal tells the query-builder to eager-load the nodes that are connected to
// the "proposal" edge. The optional arguments are used to configure the query builder of the edge.
func (wvq *WorkVersionQuery) WithProposal(opts ...func(*WorkProposalQuery)) *WorkVersionQuery {
	query := (&WorkProposalClient{config: wvq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	wvq.withProposal = query
	return wvq
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
//	client.WorkVersion.Query().
//		GroupBy(workversion.FieldWorkID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (wvq *WorkVersionQuery) GroupBy(field string, fields ...string) *WorkVersionGroupBy {
	wvq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WorkVersionGroupBy{build: wvq}
	grbuild.flds = &wvq.ctx.Fields
	grbuild.label = workversion.Label
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
//	client.WorkVersion.Query().
//		Select(workversion.FieldWorkID).
//		Scan(ctx, &v)
func (wvq *WorkVersionQuery) Select(fields ...string) *WorkVersionSelect {
	wvq.ctx.Fields = append(wvq.ctx.Fields, fields...)
	sbuild := &WorkVersionSelect{WorkVersionQuery: wvq}
	sbuild.label = workversion.Label
	sbuild.flds, sbuild.scan = &wvq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WorkVersionSelect configured with the given aggregations.
func (wvq *WorkVersionQuery) Aggregate(fns ...AggregateFunc) *WorkVersionSelect {
	return wvq.Select().Aggregate(fns...)
}

func (wvq *WorkVersionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range wvq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, wvq); err != nil {
				return err
			}
		}
	}
	for _, f := range wvq.ctx.Fields {
		if !workversion.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if wvq.path != nil {
		prev, err := wvq.path(ctx)
		if err != nil {
			return err
		}
		wvq.sql = prev
	}
	return nil
}

func (wvq *WorkVersionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WorkVersion, error) {
	var (
		nodes       = []*WorkVersion{}
		_spec       = wvq.querySpec()
		loadedTypes = [2]bool{
			wvq.withWork != nil,
			wvq.withProposal != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WorkVersion).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WorkVersion{config: wvq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, wvq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := wvq.withWork; query != nil {
		if err := wvq.loadWork(ctx, query, nodes, nil,
			func(n *WorkVersion, e *Work) { n.Edges.Work = e }); err != nil {
			return nil, err
		}
	}
	if query := wvq.withProposal; query != nil {
		if err := wvq.loadProposal(ctx, query, nodes, nil,
			func(n *WorkVersion, e *WorkProposal) { n.Edges.Proposal = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (wvq *WorkVersionQuery) loadWork(ctx context.Context, query *WorkQuery, nodes []*WorkVersion, init func(*WorkVersion), assign func(*WorkVersion, *Work)) error {
	ids := make([]uint, 0, len(nodes))
	nodeids := make(map[uint][]*WorkVersion)
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
func (wvq *WorkVersionQuery) loadProposal(ctx context.Context, query *WorkProposalQuery, nodes []*WorkVersion, init func(*WorkVersion), assign func(*WorkVersion, *WorkProposal)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uint]*WorkVersion)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(workproposal.FieldVersionID)
	}
	query.Where(predicate.WorkProposal(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workversion.ProposalColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.VersionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "version_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (wvq *WorkVersionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := wvq.querySpec()
	_spec.Node.Columns = wvq.ctx.Fields
	if len(wvq.ctx.Fields) > 0 {
		_spec.Unique = wvq.ctx.Unique != nil && *wvq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, wvq.driver, _spec)
}

func (wvq *WorkVersionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(workversion.Table, workversion.Columns, sqlgraph.NewFieldSpec(workversion.FieldID, field.TypeUint))
	_spec.From = wvq.sql
	if unique := wvq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if wvq.path != nil {
		_spec.Unique = true
	}
	if fields := wvq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workversion.FieldID)
		for i := range fields {
			if fields[i] != workversion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if wvq.withWork != nil {
			_spec.Node.AddColumnOnce(workversion.FieldWorkID)
		}
	}
	if ps := wvq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := wvq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := wvq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := wvq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (wvq *WorkVersionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(wvq.driver.Dialect())
	t1 := builder.Table(workversion.Table)
	columns := wvq.ctx.Fields
	if len(columns) == 0 {
		columns = workversion.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if wvq.sql != nil {
		selector = wvq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if wvq.ctx.Unique != nil && *wvq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range wvq.predicates {
		p(selector)
	}
	for _, p := range wvq.order {
		p(selector)
	}
	if offset := wvq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := wvq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// WorkVersionGroupBy is the group-by builder for WorkVersion entities.
type WorkVersionGroupBy struct {
	selector
	build *WorkVersionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (wvgb *WorkVersionGroupBy) Aggregate(fns ...AggregateFunc) *WorkVersionGroupBy {
	wvgb.fns = append(wvgb.fns, fns...)
	return wvgb
}

// Scan applies the selector query and scans the result into the given value.
func (wvgb *WorkVersionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wvgb.build.ctx, ent.OpQueryGroupBy)
	if err := wvgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkVersionQuery, *WorkVersionGroupBy](ctx, wvgb.build, wvgb, wvgb.build.inters, v)
}

func (wvgb *WorkVersionGroupBy) sqlScan(ctx context.Context, root *WorkVersionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(wvgb.fns))
	for _, fn := range wvgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*wvgb.flds)+len(wvgb.fns))
		for _, f := range *wvgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*wvgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wvgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WorkVersionSelect is the builder for selecting fields of WorkVersion entities.
type WorkVersionSelect struct {
	*WorkVersionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (wvs *WorkVersionSelect) Aggregate(fns ...AggregateFunc) *WorkVersionSelect {
	wvs.fns = append(wvs.fns, fns...)
	return wvs
}

// Scan applies the selector query and scans the result into the given value.
func (wvs *WorkVersionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wvs.ctx, ent.OpQuerySelect)
	if err := wvs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkVersionQuery, *WorkVersionSelect](ctx, wvs.WorkVersionQuery, wvs, wvs.inters, v)
}

func (wvs *WorkVersionSelect) sqlScan(ctx context.Context, root *WorkVersionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(wvs.fns))
	for _, fn := range wvs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*wvs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wvs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
