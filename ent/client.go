// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/muselink-c/muselink-app/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/muselink-c/muselink-app/ent/comment"
	"github.com/muselink-c/muselink-app/ent/user"
	"github.com/muselink-c/muselink-app/ent/work"
	"github.com/muselink-c/muselink-app/ent/workproposal"
	"github.com/muselink-c/muselink-app/ent/workstar"
	"github.com/muselink-c/muselink-app/ent/workversion"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Comment is the client for interacting with the Comment builders.
	Comment *CommentClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// Work is the client for interacting with the Work builders.
	Work *WorkClient
	// WorkProposal is the client for interacting with the WorkProposal builders.
	WorkProposal *WorkProposalClient
	// WorkStar is the client for interacting with the WorkStar builders.
	WorkStar *WorkStarClient
	// WorkVersion is the client for interacting with the WorkVersion builders.
	WorkVersion *WorkVersionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Comment = NewCommentClient(c.config)
	c.User = NewUserClient(c.config)
	c.Work = NewWorkClient(c.config)
	c.WorkProposal = NewWorkProposalClient(c.config)
	c.WorkStar = NewWorkStarClient(c.config)
	c.WorkVersion = NewWorkVersionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Comment:      NewCommentClient(cfg),
		User:         NewUserClient(cfg),
		Work:         NewWorkClient(cfg),
		WorkProposal: NewWorkProposalClient(cfg),
		WorkStar:     NewWorkStarClient(cfg),
		WorkVersion:  NewWorkVersionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Comment:      NewCommentClient(cfg),
		User:         NewUserClient(cfg),
		Work:         NewWorkClient(cfg),
		WorkProposal: NewWorkProposalClient(cfg),
		WorkStar:     NewWorkStarClient(cfg),
		WorkVersion:  NewWorkVersionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Comment.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Comment, c.User, c.Work, c.WorkProposal, c.WorkStar, c.WorkVersion,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Comment, c.User, c.Work, c.WorkProposal, c.WorkStar, c.WorkVersion,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CommentMutation:
		return c.Comment.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WorkMutation:
		return c.Work.mutate(ctx, m)
	case *WorkProposalMutation:
		return c.WorkProposal.mutate(ctx, m)
	case *WorkStarMutation:
		return c.WorkStar.mutate(ctx, m)
	case *WorkVersionMutation:
		return c.WorkVersion.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CommentClient is a client for the Comment schema.
type CommentClient struct {
	config
}

// NewCommentClient returns a client for the Comment from the given config.
func NewCommentClient(c config) *CommentClient {
	return &CommentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `comment.Hooks(f(g(h())))`.
func (c *CommentClient) Use(hooks ...Hook) {
	c.hooks.Comment = append(c.hooks.Comment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `comment.Intercept(f(g(h())))`.
func (c *CommentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Comment = append(c.inters.Comment, interceptors...)
}

// Create returns a builder for creating a Comment entity.
func (c *CommentClient) Create() *CommentCreate {
	mutation := newCommentMutation(c.config, OpCreate)
	return &CommentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Comment entities.
func (c *CommentClient) CreateBulk(builders ...*CommentCreate) *CommentCreateBulk {
	return &CommentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommentClient) MapCreateBulk(slice any, setFunc func(*CommentCreate, int)) *CommentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommentCreateBulk{err: fmt.Errorf("calling to CommentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Comment.
func (c *CommentClient) Update() *CommentUpdate {
	mutation := newCommentMutation(c.config, OpUpdate)
	return &CommentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommentClient) UpdateOne(co *Comment) *CommentUpdateOne {
	mutation := newCommentMutation(c.config, OpUpdateOne, withComment(co))
	return &CommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommentClient) UpdateOneID(id uint) *CommentUpdateOne {
	mutation := newCommentMutation(c.config, OpUpdateOne, withCommentID(id))
	return &CommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Comment.
func (c *CommentClient) Delete() *CommentDelete {
	mutation := newCommentMutation(c.config, OpDelete)
	return &CommentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommentClient) DeleteOne(co *Comment) *CommentDeleteOne {
	return c.DeleteOneID(co.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommentClient) DeleteOneID(id uint) *CommentDeleteOne {
	builder := c.Delete().Where(comment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommentDeleteOne{builder}
}

// Query returns a query builder for Comment.
func (c *CommentClient) Query() *CommentQuery {
	return &CommentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeComment},
		inters: c.Interceptors(),
	}
}

// Get returns a Comment entity by its id.
func (c *CommentClient) Get(ctx context.Context, id uint) (*Comment, error) {
	return c.Query().Where(comment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommentClient) GetX(ctx context.Context, id uint) *Comment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAuthor queries the author edge of a Comment.
func (c *CommentClient) QueryAuthor(co *Comment) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := co.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(comment.Table, comment.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, comment.AuthorTable, comment.AuthorColumn),
		)
		fromV = sqlgraph.Neighbors(co.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommentClient) Hooks() []Hook {
	hooks := c.hooks.Comment
	return append(hooks[:len(hooks):len(hooks)], comment.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *CommentClient) Interceptors() []Interceptor {
	return c.inters.Comment
}

func (c *CommentClient) mutate(ctx context.Context, m *CommentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Comment mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(u *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(u))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uint) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(u *User) *UserDeleteOne {
	return c.DeleteOneID(u.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uint) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uint) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uint) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorks queries the works edge of a User.
func (c *UserClient) QueryWorks(u *User) *WorkQuery {
	query := (&WorkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := u.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(work.Table, work.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.WorksTable, user.WorksColumn),
		)
		fromV = sqlgraph.Neighbors(u.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryComments queries the comments edge of a User.
func (c *UserClient) QueryComments(u *User) *CommentQuery {
	query := (&CommentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := u.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(comment.Table, comment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.CommentsTable, user.CommentsColumn),
		)
		fromV = sqlgraph.Neighbors(u.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	hooks := c.hooks.User
	return append(hooks[:len(hooks):len(hooks)], user.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// WorkClient is a client for the Work schema.
type WorkClient struct {
	config
}

// NewWorkClient returns a client for the Work from the given config.
func NewWorkClient(c config) *WorkClient {
	return &WorkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `work.Hooks(f(g(h())))`.
func (c *WorkClient) Use(hooks ...Hook) {
	c.hooks.Work = append(c.hooks.Work, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `work.Intercept(f(g(h())))`.
func (c *WorkClient) Intercept(interceptors ...Interceptor) {
	c.inters.Work = append(c.inters.Work, interceptors...)
}

// Create returns a builder for creating a Work entity.
func (c *WorkClient) Create() *WorkCreate {
	mutation := newWorkMutation(c.config, OpCreate)
	return &WorkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Work entities.
func (c *WorkClient) CreateBulk(builders ...*WorkCreate) *WorkCreateBulk {
	return &WorkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkClient) MapCreateBulk(slice any, setFunc func(*WorkCreate, int)) *WorkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkCreateBulk{err: fmt.Errorf("calling to WorkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Work.
func (c *WorkClient) Update() *WorkUpdate {
	mutation := newWorkMutation(c.config, OpUpdate)
	return &WorkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkClient) UpdateOne(w *Work) *WorkUpdateOne {
	mutation := newWorkMutation(c.config, OpUpdateOne, withWork(w))
	return &WorkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkClient) UpdateOneID(id uint) *WorkUpdateOne {
	mutation := newWorkMutation(c.config, OpUpdateOne, withWorkID(id))
	return &WorkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Work.
func (c *WorkClient) Delete() *WorkDelete {
	mutation := newWorkMutation(c.config, OpDelete)
	return &WorkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkClient) DeleteOne(w *Work) *WorkDeleteOne {
	return c.DeleteOneID(w.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkClient) DeleteOneID(id uint) *WorkDeleteOne {
	builder := c.Delete().Where(work.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkDeleteOne{builder}
}

// Query returns a query builder for Work.
func (c *WorkClient) Query() *WorkQuery {
	return &WorkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWork},
		inters: c.Interceptors(),
	}
}

// Get returns a Work entity by its id.
func (c *WorkClient) Get(ctx context.Context, id uint) (*Work, error) {
	return c.Query().Where(work.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkClient) GetX(ctx context.Context, id uint) *Work {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a Work.
func (c *WorkClient) QueryOwner(w *Work) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := w.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(work.Table, work.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, work.OwnerTable, work.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(w.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVersions queries the versions edge of a Work.
func (c *WorkClient) QueryVersions(w *Work) *WorkVersionQuery {
	query := (&WorkVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := w.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(work.Table, work.FieldID, id),
			sqlgraph.To(workversion.Table, workversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, work.VersionsTable, work.VersionsColumn),
		)
		fromV = sqlgraph.Neighbors(w.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProposals queries the proposals edge of a Work.
func (c *WorkClient) QueryProposals(w *Work) *WorkProposalQuery {
	query := (&WorkProposalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := w.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(work.Table, work.FieldID, id),
			sqlgraph.To(workproposal.Table, workproposal.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, work.ProposalsTable, work.ProposalsColumn),
		)
		fromV = sqlgraph.Neighbors(w.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkClient) Hooks() []Hook {
	hooks := c.hooks.Work
	return append(hooks[:len(hooks):len(hooks)], work.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *WorkClient) Interceptors() []Interceptor {
	return c.inters.Work
}

func (c *WorkClient) mutate(ctx context.Context, m *WorkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Work mutation op: %q", m.Op())
	}
}

// WorkProposalClient is a client for the WorkProposal schema.
type WorkProposalClient struct {
	config
}

// NewWorkProposalClient returns a client for the WorkProposal from the given config.
func NewWorkProposalClient(c config) *WorkProposalClient {
	return &WorkProposalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workproposal.Hooks(f(g(h())))`.
func (c *WorkProposalClient) Use(hooks ...Hook) {
	c.hooks.WorkProposal = append(c.hooks.WorkProposal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workproposal.Intercept(f(g(h())))`.
func (c *WorkProposalClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkProposal = append(c.inters.WorkProposal, interceptors...)
}

// Create returns a builder for creating a WorkProposal entity.
func (c *WorkProposalClient) Create() *WorkProposalCreate {
	mutation := newWorkProposalMutation(c.config, OpCreate)
	return &WorkProposalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkProposal entities.
func (c *WorkProposalClient) CreateBulk(builders ...*WorkProposalCreate) *WorkProposalCreateBulk {
	return &WorkProposalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkProposalClient) MapCreateBulk(slice any, setFunc func(*WorkProposalCreate, int)) *WorkProposalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkProposalCreateBulk{err: fmt.Errorf("calling to WorkProposalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkProposalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkProposalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkProposal.
func (c *WorkProposalClient) Update() *WorkProposalUpdate {
	mutation := newWorkProposalMutation(c.config, OpUpdate)
	return &WorkProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkProposalClient) UpdateOne(wp *WorkProposal) *WorkProposalUpdateOne {
	mutation := newWorkProposalMutation(c.config, OpUpdateOne, withWorkProposal(wp))
	return &WorkProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkProposalClient) UpdateOneID(id uint) *WorkProposalUpdateOne {
	mutation := newWorkProposalMutation(c.config, OpUpdateOne, withWorkProposalID(id))
	return &WorkProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkProposal.
func (c *WorkProposalClient) Delete() *WorkProposalDelete {
	mutation := newWorkProposalMutation(c.config, OpDelete)
	return &WorkProposalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkProposalClient) DeleteOne(wp *WorkProposal) *WorkProposalDeleteOne {
	return c.DeleteOneID(wp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkProposalClient) DeleteOneID(id uint) *WorkProposalDeleteOne {
	builder := c.Delete().Where(workproposal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkProposalDeleteOne{builder}
}

// Query returns a query builder for WorkProposal.
func (c *WorkProposalClient) Query() *WorkProposalQuery {
	return &WorkProposalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkProposal},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkProposal entity by its id.
func (c *WorkProposalClient) Get(ctx context.Context, id uint) (*WorkProposal, error) {
	return c.Query().Where(workproposal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkProposalClient) GetX(ctx context.Context, id uint) *WorkProposal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWork queries the work edge of a WorkProposal.
func (c *WorkProposalClient) QueryWork(wp *WorkProposal) *WorkQuery {
	query := (&WorkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := wp.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workproposal.Table, workproposal.FieldID, id),
			sqlgraph.To(work.Table, work.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workproposal.WorkTable, workproposal.WorkColumn),
		)
		fromV = sqlgraph.Neighbors(wp.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVersion queries the version edge of a WorkProposal.
func (c *WorkProposalClient) QueryVersion(wp *WorkProposal) *WorkVersionQuery {
	query := (&WorkVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := wp.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workproposal.Table, workproposal.FieldID, id),
			sqlgraph.To(workversion.Table, workversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, workproposal.VersionTable, workproposal.VersionColumn),
		)
		fromV = sqlgraph.Neighbors(wp.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkProposalClient) Hooks() []Hook {
	return c.hooks.WorkProposal
}

// Interceptors returns the client interceptors.
func (c *WorkProposalClient) Interceptors() []Interceptor {
	return c.inters.WorkProposal
}

func (c *WorkProposalClient) mutate(ctx context.Context, m *WorkProposalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkProposalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkProposalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkProposal mutation op: %q", m.Op())
	}
}

// WorkStarClient is a client for the WorkStar schema.
type WorkStarClient struct {
	config
}

// NewWorkStarClient returns a client for the WorkStar from the given config.
func NewWorkStarClient(c config) *WorkStarClient {
	return &WorkStarClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workstar.Hooks(f(g(h())))`.
func (c *WorkStarClient) Use(hooks ...Hook) {
	c.hooks.WorkStar = append(c.hooks.WorkStar, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workstar.Intercept(f(g(h())))`.
func (c *WorkStarClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkStar = append(c.inters.WorkStar, interceptors...)
}

// Create returns a builder for creating a WorkStar entity.
func (c *WorkStarClient) Create() *WorkStarCreate {
	mutation := newWorkStarMutation(c.config, OpCreate)
	return &WorkStarCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkStar entities.
func (c *WorkStarClient) CreateBulk(builders ...*WorkStarCreate) *WorkStarCreateBulk {
	return &WorkStarCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkStarClient) MapCreateBulk(slice any, setFunc func(*WorkStarCreate, int)) *WorkStarCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkStarCreateBulk{err: fmt.Errorf("calling to WorkStarClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkStarCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkStarCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkStar.
func (c *WorkStarClient) Update() *WorkStarUpdate {
	mutation := newWorkStarMutation(c.config, OpUpdate)
	return &WorkStarUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkStarClient) UpdateOne(ws *WorkStar) *WorkStarUpdateOne {
	mutation := newWorkStarMutation(c.config, OpUpdateOne, withWorkStar(ws))
	return &WorkStarUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkStarClient) UpdateOneID(id uint) *WorkStarUpdateOne {
	mutation := newWorkStarMutation(c.config, OpUpdateOne, withWorkStarID(id))
	return &WorkStarUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkStar.
func (c *WorkStarClient) Delete() *WorkStarDelete {
	mutation := newWorkStarMutation(c.config, OpDelete)
	return &WorkStarDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkStarClient) DeleteOne(ws *WorkStar) *WorkStarDeleteOne {
	return c.DeleteOneID(ws.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkStarClient) DeleteOneID(id uint) *WorkStarDeleteOne {
	builder := c.Delete().Where(workstar.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkStarDeleteOne{builder}
}

// Query returns a query builder for WorkStar.
func (c *WorkStarClient) Query() *WorkStarQuery {
	return &WorkStarQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkStar},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkStar entity by its id.
func (c *WorkStarClient) Get(ctx context.Context, id uint) (*WorkStar, error) {
	return c.Query().Where(workstar.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkStarClient) GetX(ctx context.Context, id uint) *WorkStar {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkStarClient) Hooks() []Hook {
	return c.hooks.WorkStar
}

// Interceptors returns the client interceptors.
func (c *WorkStarClient) Interceptors() []Interceptor {
	return c.inters.WorkStar
}

func (c *WorkStarClient) mutate(ctx context.Context, m *WorkStarMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkStarCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkStarUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkStarUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkStarDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkStar mutation op: %q", m.Op())
	}
}

// WorkVersionClient is a client for the WorkVersion schema.
type WorkVersionClient struct {
	config
}

// NewWorkVersionClient returns a client for the WorkVersion from the given config.
func NewWorkVersionClient(c config) *WorkVersionClient {
	return &WorkVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workversion.Hooks(f(g(h())))`.
func (c *WorkVersionClient) Use(hooks ...Hook) {
	c.hooks.WorkVersion = append(c.hooks.WorkVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workversion.Intercept(f(g(h())))`.
func (c *WorkVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkVersion = append(c.inters.WorkVersion, interceptors...)
}

// Create returns a builder for creating a WorkVersion entity.
func (c *WorkVersionClient) Create() *WorkVersionCreate {
	mutation := newWorkVersionMutation(c.config, OpCreate)
	return &WorkVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkVersion entities.
func (c *WorkVersionClient) CreateBulk(builders ...*WorkVersionCreate) *WorkVersionCreateBulk {
	return &WorkVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkVersionClient) MapCreateBulk(slice any, setFunc func(*WorkVersionCreate, int)) *WorkVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkVersionCreateBulk{err: fmt.Errorf("calling to WorkVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkVersion.
func (c *WorkVersionClient) Update() *WorkVersionUpdate {
	mutation := newWorkVersionMutation(c.config, OpUpdate)
	return &WorkVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkVersionClient) UpdateOne(wv *WorkVersion) *WorkVersionUpdateOne {
	mutation := newWorkVersionMutation(c.config, OpUpdateOne, withWorkVersion(wv))
	return &WorkVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkVersionClient) UpdateOneID(id uint) *WorkVersionUpdateOne {
	mutation := newWorkVersionMutation(c.config, OpUpdateOne, withWorkVersionID(id))
	return &WorkVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkVersion.
func (c *WorkVersionClient) Delete() *WorkVersionDelete {
	mutation := newWorkVersionMutation(c.config, OpDelete)
	return &WorkVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkVersionClient) DeleteOne(wv *WorkVersion) *WorkVersionDeleteOne {
	return c.DeleteOneID(wv.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkVersionClient) DeleteOneID(id uint) *WorkVersionDeleteOne {
	builder := c.Delete().Where(workversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkVersionDeleteOne{builder}
}

// Query returns a query builder for WorkVersion.
func (c *WorkVersionClient) Query() *WorkVersionQuery {
	return &WorkVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkVersion entity by its id.
func (c *WorkVersionClient) Get(ctx context.Context, id uint) (*WorkVersion, error) {
	return c.Query().Where(workversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkVersionClient) GetX(ctx context.Context, id uint) *WorkVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWork queries the work edge of a WorkVersion.
func (c *WorkVersionClient) QueryWork(wv *WorkVersion) *WorkQuery {
	query := (&WorkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := wv.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workversion.Table, workversion.FieldID, id),
			sqlgraph.To(work.Table, work.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workversion.WorkTable, workversion.WorkColumn),
		)
		fromV = sqlgraph.Neighbors(wv.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProposal queries the proposal edge of a WorkVersion.
func (c *WorkVersionClient) QueryProposal(wv *WorkVersion) *WorkProposalQuery {
	query := (&WorkProposalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := wv.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workversion.Table, workversion.FieldID, id),
			sqlgraph.To(workproposal.Table, workproposal.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, workversion.ProposalTable, workversion.ProposalColumn),
		)
		fromV = sqlgraph.Neighbors(wv.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkVersionClient) Hooks() []Hook {
	return c.hooks.WorkVersion
}

// Interceptors returns the client interceptors.
func (c *WorkVersionClient) Interceptors() []Interceptor {
	return c.inters.WorkVersion
}

func (c *WorkVersionClient) mutate(ctx context.Context, m *WorkVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkVersion mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Comment, User, Work, WorkProposal, WorkStar, WorkVersion []ent.Hook
	}
	inters struct {
		Comment, User, Work, WorkProposal, WorkStar, WorkVersion []ent.Interceptor
	}
)
