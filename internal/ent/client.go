// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fachebot/inbox-hero/internal/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/inbox-hero/internal/ent/draft"
	"github.com/fachebot/inbox-hero/internal/ent/summarycache"
	"github.com/fachebot/inbox-hero/internal/ent/triagerun"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Draft is the client for interacting with the Draft builders.
	Draft *DraftClient
	// SummaryCache is the client for interacting with the SummaryCache builders.
	SummaryCache *SummaryCacheClient
	// TriageRun is the client for interacting with the TriageRun builders.
	TriageRun *TriageRunClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Draft = NewDraftClient(c.config)
	c.SummaryCache = NewSummaryCacheClient(c.config)
	c.TriageRun = NewTriageRunClient(c.config)
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
		Draft:        NewDraftClient(cfg),
		SummaryCache: NewSummaryCacheClient(cfg),
		TriageRun:    NewTriageRunClient(cfg),
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
		Draft:        NewDraftClient(cfg),
		SummaryCache: NewSummaryCacheClient(cfg),
		TriageRun:    NewTriageRunClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Draft.
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
	c.Draft.Use(hooks...)
	c.SummaryCache.Use(hooks...)
	c.TriageRun.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Draft.Intercept(interceptors...)
	c.SummaryCache.Intercept(interceptors...)
	c.TriageRun.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DraftMutation:
		return c.Draft.mutate(ctx, m)
	case *SummaryCacheMutation:
		return c.SummaryCache.mutate(ctx, m)
	case *TriageRunMutation:
		return c.TriageRun.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DraftClient is a client for the Draft schema.
type DraftClient struct {
	config
}

// NewDraftClient returns a client for the Draft from the given config.
func NewDraftClient(c config) *DraftClient {
	return &DraftClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `draft.Hooks(f(g(h())))`.
func (c *DraftClient) Use(hooks ...Hook) {
	c.hooks.Draft = append(c.hooks.Draft, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `draft.Intercept(f(g(h())))`.
func (c *DraftClient) Intercept(interceptors ...Interceptor) {
	c.inters.Draft = append(c.inters.Draft, interceptors...)
}

// Create returns a builder for creating a Draft entity.
func (c *DraftClient) Create() *DraftCreate {
	mutation := newDraftMutation(c.config, OpCreate)
	return &DraftCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Draft entities.
func (c *DraftClient) CreateBulk(builders ...*DraftCreate) *DraftCreateBulk {
	return &DraftCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DraftClient) MapCreateBulk(slice any, setFunc func(*DraftCreate, int)) *DraftCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DraftCreateBulk{err: fmt.Errorf("calling to DraftClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DraftCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DraftCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Draft.
func (c *DraftClient) Update() *DraftUpdate {
	mutation := newDraftMutation(c.config, OpUpdate)
	return &DraftUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DraftClient) UpdateOne(_m *Draft) *DraftUpdateOne {
	mutation := newDraftMutation(c.config, OpUpdateOne, withDraft(_m))
	return &DraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DraftClient) UpdateOneID(id int) *DraftUpdateOne {
	mutation := newDraftMutation(c.config, OpUpdateOne, withDraftID(id))
	return &DraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Draft.
func (c *DraftClient) Delete() *DraftDelete {
	mutation := newDraftMutation(c.config, OpDelete)
	return &DraftDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DraftClient) DeleteOne(_m *Draft) *DraftDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DraftClient) DeleteOneID(id int) *DraftDeleteOne {
	builder := c.Delete().Where(draft.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DraftDeleteOne{builder}
}

// Query returns a query builder for Draft.
func (c *DraftClient) Query() *DraftQuery {
	return &DraftQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDraft},
		inters: c.Interceptors(),
	}
}

// Get returns a Draft entity by its id.
func (c *DraftClient) Get(ctx context.Context, id int) (*Draft, error) {
	return c.Query().Where(draft.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DraftClient) GetX(ctx context.Context, id int) *Draft {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DraftClient) Hooks() []Hook {
	return c.hooks.Draft
}

// Interceptors returns the client interceptors.
func (c *DraftClient) Interceptors() []Interceptor {
	return c.inters.Draft
}

func (c *DraftClient) mutate(ctx context.Context, m *DraftMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DraftCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DraftUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DraftDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Draft mutation op: %q", m.Op())
	}
}

// SummaryCacheClient is a client for the SummaryCache schema.
type SummaryCacheClient struct {
	config
}

// NewSummaryCacheClient returns a client for the SummaryCache from the given config.
func NewSummaryCacheClient(c config) *SummaryCacheClient {
	return &SummaryCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `summarycache.Hooks(f(g(h())))`.
func (c *SummaryCacheClient) Use(hooks ...Hook) {
	c.hooks.SummaryCache = append(c.hooks.SummaryCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `summarycache.Intercept(f(g(h())))`.
func (c *SummaryCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.SummaryCache = append(c.inters.SummaryCache, interceptors...)
}

// Create returns a builder for creating a SummaryCache entity.
func (c *SummaryCacheClient) Create() *SummaryCacheCreate {
	mutation := newSummaryCacheMutation(c.config, OpCreate)
	return &SummaryCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SummaryCache entities.
func (c *SummaryCacheClient) CreateBulk(builders ...*SummaryCacheCreate) *SummaryCacheCreateBulk {
	return &SummaryCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SummaryCacheClient) MapCreateBulk(slice any, setFunc func(*SummaryCacheCreate, int)) *SummaryCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SummaryCacheCreateBulk{err: fmt.Errorf("calling to SummaryCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SummaryCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SummaryCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SummaryCache.
func (c *SummaryCacheClient) Update() *SummaryCacheUpdate {
	mutation := newSummaryCacheMutation(c.config, OpUpdate)
	return &SummaryCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SummaryCacheClient) UpdateOne(_m *SummaryCache) *SummaryCacheUpdateOne {
	mutation := newSummaryCacheMutation(c.config, OpUpdateOne, withSummaryCache(_m))
	return &SummaryCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SummaryCacheClient) UpdateOneID(id int) *SummaryCacheUpdateOne {
	mutation := newSummaryCacheMutation(c.config, OpUpdateOne, withSummaryCacheID(id))
	return &SummaryCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SummaryCache.
func (c *SummaryCacheClient) Delete() *SummaryCacheDelete {
	mutation := newSummaryCacheMutation(c.config, OpDelete)
	return &SummaryCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SummaryCacheClient) DeleteOne(_m *SummaryCache) *SummaryCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SummaryCacheClient) DeleteOneID(id int) *SummaryCacheDeleteOne {
	builder := c.Delete().Where(summarycache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SummaryCacheDeleteOne{builder}
}

// Query returns a query builder for SummaryCache.
func (c *SummaryCacheClient) Query() *SummaryCacheQuery {
	return &SummaryCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSummaryCache},
		inters: c.Interceptors(),
	}
}

// Get returns a SummaryCache entity by its id.
func (c *SummaryCacheClient) Get(ctx context.Context, id int) (*SummaryCache, error) {
	return c.Query().Where(summarycache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SummaryCacheClient) GetX(ctx context.Context, id int) *SummaryCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SummaryCacheClient) Hooks() []Hook {
	return c.hooks.SummaryCache
}

// Interceptors returns the client interceptors.
func (c *SummaryCacheClient) Interceptors() []Interceptor {
	return c.inters.SummaryCache
}

func (c *SummaryCacheClient) mutate(ctx context.Context, m *SummaryCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SummaryCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SummaryCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SummaryCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SummaryCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SummaryCache mutation op: %q", m.Op())
	}
}

// TriageRunClient is a client for the TriageRun schema.
type TriageRunClient struct {
	config
}

// NewTriageRunClient returns a client for the TriageRun from the given config.
func NewTriageRunClient(c config) *TriageRunClient {
	return &TriageRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `triagerun.Hooks(f(g(h())))`.
func (c *TriageRunClient) Use(hooks ...Hook) {
	c.hooks.TriageRun = append(c.hooks.TriageRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `triagerun.Intercept(f(g(h())))`.
func (c *TriageRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.TriageRun = append(c.inters.TriageRun, interceptors...)
}

// Create returns a builder for creating a TriageRun entity.
func (c *TriageRunClient) Create() *TriageRunCreate {
	mutation := newTriageRunMutation(c.config, OpCreate)
	return &TriageRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TriageRun entities.
func (c *TriageRunClient) CreateBulk(builders ...*TriageRunCreate) *TriageRunCreateBulk {
	return &TriageRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TriageRunClient) MapCreateBulk(slice any, setFunc func(*TriageRunCreate, int)) *TriageRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TriageRunCreateBulk{err: fmt.Errorf("calling to TriageRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TriageRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TriageRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TriageRun.
func (c *TriageRunClient) Update() *TriageRunUpdate {
	mutation := newTriageRunMutation(c.config, OpUpdate)
	return &TriageRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TriageRunClient) UpdateOne(_m *TriageRun) *TriageRunUpdateOne {
	mutation := newTriageRunMutation(c.config, OpUpdateOne, withTriageRun(_m))
	return &TriageRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TriageRunClient) UpdateOneID(id int) *TriageRunUpdateOne {
	mutation := newTriageRunMutation(c.config, OpUpdateOne, withTriageRunID(id))
	return &TriageRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TriageRun.
func (c *TriageRunClient) Delete() *TriageRunDelete {
	mutation := newTriageRunMutation(c.config, OpDelete)
	return &TriageRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TriageRunClient) DeleteOne(_m *TriageRun) *TriageRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TriageRunClient) DeleteOneID(id int) *TriageRunDeleteOne {
	builder := c.Delete().Where(triagerun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TriageRunDeleteOne{builder}
}

// Query returns a query builder for TriageRun.
func (c *TriageRunClient) Query() *TriageRunQuery {
	return &TriageRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTriageRun},
		inters: c.Interceptors(),
	}
}

// Get returns a TriageRun entity by its id.
func (c *TriageRunClient) Get(ctx context.Context, id int) (*TriageRun, error) {
	return c.Query().Where(triagerun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TriageRunClient) GetX(ctx context.Context, id int) *TriageRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TriageRunClient) Hooks() []Hook {
	return c.hooks.TriageRun
}

// Interceptors returns the client interceptors.
func (c *TriageRunClient) Interceptors() []Interceptor {
	return c.inters.TriageRun
}

func (c *TriageRunClient) mutate(ctx context.Context, m *TriageRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TriageRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TriageRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TriageRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TriageRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TriageRun mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Draft, SummaryCache, TriageRun []ent.Hook
	}
	inters struct {
		Draft, SummaryCache, TriageRun []ent.Interceptor
	}
)
