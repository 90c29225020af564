// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/santescan/santescan/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/santescan/santescan/gen/ent/account"
	"github.com/santescan/santescan/gen/ent/analysis"
	"github.com/santescan/santescan/gen/ent/analysisdetail"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Account is the client for interacting with the Account builders.
	Account *AccountClient
	// Analysis is the client for interacting with the Analysis builders.
	Analysis *AnalysisClient
	// AnalysisDetail is the client for interacting with the AnalysisDetail builders.
	AnalysisDetail *AnalysisDetailClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Account = NewAccountClient(c.config)
	c.Analysis = NewAnalysisClient(c.config)
	c.AnalysisDetail = NewAnalysisDetailClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		Account:        NewAccountClient(cfg),
		Analysis:       NewAnalysisClient(cfg),
		AnalysisDetail: NewAnalysisDetailClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		Account:        NewAccountClient(cfg),
		Analysis:       NewAnalysisClient(cfg),
		AnalysisDetail: NewAnalysisDetailClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Account.
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
	c.Account.Use(hooks...)
	c.Analysis.Use(hooks...)
	c.AnalysisDetail.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Account.Intercept(interceptors...)
	c.Analysis.Intercept(interceptors...)
	c.AnalysisDetail.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AccountMutation:
		return c.Account.mutate(ctx, m)
	case *AnalysisMutation:
		return c.Analysis.mutate(ctx, m)
	case *AnalysisDetailMutation:
		return c.AnalysisDetail.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AccountClient is a client for the Account schema.
type AccountClient struct {
	config
}

// NewAccountClient returns a client for the Account from the given config.
func NewAccountClient(c config) *AccountClient {
	return &AccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `account.Hooks(f(g(h())))`.
func (c *AccountClient) Use(hooks ...Hook) {
	c.hooks.Account = append(c.hooks.Account, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `account.Intercept(f(g(h())))`.
func (c *AccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.Account = append(c.inters.Account, interceptors...)
}

// Create returns a builder for creating a Account entity.
func (c *AccountClient) Create() *AccountCreate {
	mutation := newAccountMutation(c.config, OpCreate)
	return &AccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Account entities.
func (c *AccountClient) CreateBulk(builders ...*AccountCreate) *AccountCreateBulk {
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AccountClient) MapCreateBulk(slice any, setFunc func(*AccountCreate, int)) *AccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AccountCreateBulk{err: fmt.Errorf("calling to AccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Account.
func (c *AccountClient) Update() *AccountUpdate {
	mutation := newAccountMutation(c.config, OpUpdate)
	return &AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AccountClient) UpdateOne(_m *Account) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccount(_m))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AccountClient) UpdateOneID(id uuid.UUID) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccountID(id))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Account.
func (c *AccountClient) Delete() *AccountDelete {
	mutation := newAccountMutation(c.config, OpDelete)
	return &AccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AccountClient) DeleteOne(_m *Account) *AccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AccountClient) DeleteOneID(id uuid.UUID) *AccountDeleteOne {
	builder := c.Delete().Where(account.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AccountDeleteOne{builder}
}

// Query returns a query builder for Account.
func (c *AccountClient) Query() *AccountQuery {
	return &AccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a Account entity by its id.
func (c *AccountClient) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return c.Query().Where(account.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AccountClient) GetX(ctx context.Context, id uuid.UUID) *Account {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnalyses queries the analyses edge of a Account.
func (c *AccountClient) QueryAnalyses(_m *Account) *AnalysisQuery {
	query := (&AnalysisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(analysis.Table, analysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, account.AnalysesTable, account.AnalysesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AccountClient) Hooks() []Hook {
	return c.hooks.Account
}

// Interceptors returns the client interceptors.
func (c *AccountClient) Interceptors() []Interceptor {
	return c.inters.Account
}

func (c *AccountClient) mutate(ctx context.Context, m *AccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Account mutation op: %q", m.Op())
	}
}

// AnalysisClient is a client for the Analysis schema.
type AnalysisClient struct {
	config
}

// NewAnalysisClient returns a client for the Analysis from the given config.
func NewAnalysisClient(c config) *AnalysisClient {
	return &AnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysis.Hooks(f(g(h())))`.
func (c *AnalysisClient) Use(hooks ...Hook) {
	c.hooks.Analysis = append(c.hooks.Analysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysis.Intercept(f(g(h())))`.
func (c *AnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.Analysis = append(c.inters.Analysis, interceptors...)
}

// Create returns a builder for creating a Analysis entity.
func (c *AnalysisClient) Create() *AnalysisCreate {
	mutation := newAnalysisMutation(c.config, OpCreate)
	return &AnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Analysis entities.
func (c *AnalysisClient) CreateBulk(builders ...*AnalysisCreate) *AnalysisCreateBulk {
	return &AnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisClient) MapCreateBulk(slice any, setFunc func(*AnalysisCreate, int)) *AnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisCreateBulk{err: fmt.Errorf("calling to AnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Analysis.
func (c *AnalysisClient) Update() *AnalysisUpdate {
	mutation := newAnalysisMutation(c.config, OpUpdate)
	return &AnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisClient) UpdateOne(_m *Analysis) *AnalysisUpdateOne {
	mutation := newAnalysisMutation(c.config, OpUpdateOne, withAnalysis(_m))
	return &AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisClient) UpdateOneID(id uuid.UUID) *AnalysisUpdateOne {
	mutation := newAnalysisMutation(c.config, OpUpdateOne, withAnalysisID(id))
	return &AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Analysis.
func (c *AnalysisClient) Delete() *AnalysisDelete {
	mutation := newAnalysisMutation(c.config, OpDelete)
	return &AnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisClient) DeleteOne(_m *Analysis) *AnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisClient) DeleteOneID(id uuid.UUID) *AnalysisDeleteOne {
	builder := c.Delete().Where(analysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisDeleteOne{builder}
}

// Query returns a query builder for Analysis.
func (c *AnalysisClient) Query() *AnalysisQuery {
	return &AnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a Analysis entity by its id.
func (c *AnalysisClient) Get(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	return c.Query().Where(analysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisClient) GetX(ctx context.Context, id uuid.UUID) *Analysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAccount queries the account edge of a Analysis.
func (c *AnalysisClient) QueryAccount(_m *Analysis) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysis.Table, analysis.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysis.AccountTable, analysis.AccountColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDetails queries the details edge of a Analysis.
func (c *AnalysisClient) QueryDetails(_m *Analysis) *AnalysisDetailQuery {
	query := (&AnalysisDetailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysis.Table, analysis.FieldID, id),
			sqlgraph.To(analysisdetail.Table, analysisdetail.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysis.DetailsTable, analysis.DetailsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisClient) Hooks() []Hook {
	return c.hooks.Analysis
}

// Interceptors returns the client interceptors.
func (c *AnalysisClient) Interceptors() []Interceptor {
	return c.inters.Analysis
}

func (c *AnalysisClient) mutate(ctx context.Context, m *AnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Analysis mutation op: %q", m.Op())
	}
}

// AnalysisDetailClient is a client for the AnalysisDetail schema.
type AnalysisDetailClient struct {
	config
}

// NewAnalysisDetailClient returns a client for the AnalysisDetail from the given config.
func NewAnalysisDetailClient(c config) *AnalysisDetailClient {
	return &AnalysisDetailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisdetail.Hooks(f(g(h())))`.
func (c *AnalysisDetailClient) Use(hooks ...Hook) {
	c.hooks.AnalysisDetail = append(c.hooks.AnalysisDetail, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisdetail.Intercept(f(g(h())))`.
func (c *AnalysisDetailClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisDetail = append(c.inters.AnalysisDetail, interceptors...)
}

// Create returns a builder for creating a AnalysisDetail entity.
func (c *AnalysisDetailClient) Create() *AnalysisDetailCreate {
	mutation := newAnalysisDetailMutation(c.config, OpCreate)
	return &AnalysisDetailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisDetail entities.
func (c *AnalysisDetailClient) CreateBulk(builders ...*AnalysisDetailCreate) *AnalysisDetailCreateBulk {
	return &AnalysisDetailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisDetailClient) MapCreateBulk(slice any, setFunc func(*AnalysisDetailCreate, int)) *AnalysisDetailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisDetailCreateBulk{err: fmt.Errorf("calling to AnalysisDetailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisDetailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisDetailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisDetail.
func (c *AnalysisDetailClient) Update() *AnalysisDetailUpdate {
	mutation := newAnalysisDetailMutation(c.config, OpUpdate)
	return &AnalysisDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisDetailClient) UpdateOne(_m *AnalysisDetail) *AnalysisDetailUpdateOne {
	mutation := newAnalysisDetailMutation(c.config, OpUpdateOne, withAnalysisDetail(_m))
	return &AnalysisDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisDetailClient) UpdateOneID(id uuid.UUID) *AnalysisDetailUpdateOne {
	mutation := newAnalysisDetailMutation(c.config, OpUpdateOne, withAnalysisDetailID(id))
	return &AnalysisDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisDetail.
func (c *AnalysisDetailClient) Delete() *AnalysisDetailDelete {
	mutation := newAnalysisDetailMutation(c.config, OpDelete)
	return &AnalysisDetailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisDetailClient) DeleteOne(_m *AnalysisDetail) *AnalysisDetailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisDetailClient) DeleteOneID(id uuid.UUID) *AnalysisDetailDeleteOne {
	builder := c.Delete().Where(analysisdetail.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisDetailDeleteOne{builder}
}

// Query returns a query builder for AnalysisDetail.
func (c *AnalysisDetailClient) Query() *AnalysisDetailQuery {
	return &AnalysisDetailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisDetail},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisDetail entity by its id.
func (c *AnalysisDetailClient) Get(ctx context.Context, id uuid.UUID) (*AnalysisDetail, error) {
	return c.Query().Where(analysisdetail.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisDetailClient) GetX(ctx context.Context, id uuid.UUID) *AnalysisDetail {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnalysis queries the analysis edge of a AnalysisDetail.
func (c *AnalysisDetailClient) QueryAnalysis(_m *AnalysisDetail) *AnalysisQuery {
	query := (&AnalysisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisdetail.Table, analysisdetail.FieldID, id),
			sqlgraph.To(analysis.Table, analysis.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysisdetail.AnalysisTable, analysisdetail.AnalysisColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisDetailClient) Hooks() []Hook {
	return c.hooks.AnalysisDetail
}

// Interceptors returns the client interceptors.
func (c *AnalysisDetailClient) Interceptors() []Interceptor {
	return c.inters.AnalysisDetail
}

func (c *AnalysisDetailClient) mutate(ctx context.Context, m *AnalysisDetailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisDetailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisDetailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisDetail mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Account, Analysis, AnalysisDetail []ent.Hook
	}
	inters struct {
		Account, Analysis, AnalysisDetail []ent.Interceptor
	}
)
