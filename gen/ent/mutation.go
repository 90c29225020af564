// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/santescan/santescan/gen/ent/account"
	"github.com/santescan/santescan/gen/ent/analysis"
	"github.com/santescan/santescan/gen/ent/analysisdetail"
	"github.com/santescan/santescan/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount        = "Account"
	TypeAnalysis       = "Analysis"
	TypeAnalysisDetail = "AnalysisDetail"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	email           *string
	password_hash   *string
	age             *int
	addage          *int
	gender          *string
	is_guest        *bool
	session_token   *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	analyses        map[uuid.UUID]struct{}
	removedanalyses map[uuid.UUID]struct{}
	clearedanalyses bool
	done            bool
	oldValue        func(context.Context) (*Account, error)
	predicates      []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id uuid.UUID) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Account entities.
func (m *AccountMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *AccountMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AccountMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *AccountMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *AccountMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *AccountMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *AccountMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetAge sets the "age" field.
func (m *AccountMutation) SetAge(i int) {
	m.age = &i
	m.addage = nil
}

// Age returns the value of the "age" field in the mutation.
func (m *AccountMutation) Age() (r int, exists bool) {
	v := m.age
	if v == nil {
		return
	}
	return *v, true
}

// OldAge returns the old "age" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldAge(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAge: %w", err)
	}
	return oldValue.Age, nil
}

// AddAge adds i to the "age" field.
func (m *AccountMutation) AddAge(i int) {
	if m.addage != nil {
		*m.addage += i
	} else {
		m.addage = &i
	}
}

// AddedAge returns the value that was added to the "age" field in this mutation.
func (m *AccountMutation) AddedAge() (r int, exists bool) {
	v := m.addage
	if v == nil {
		return
	}
	return *v, true
}

// ResetAge resets all changes to the "age" field.
func (m *AccountMutation) ResetAge() {
	m.age = nil
	m.addage = nil
}

// SetGender sets the "gender" field.
func (m *AccountMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *AccountMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldGender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ResetGender resets all changes to the "gender" field.
func (m *AccountMutation) ResetGender() {
	m.gender = nil
}

// SetIsGuest sets the "is_guest" field.
func (m *AccountMutation) SetIsGuest(b bool) {
	m.is_guest = &b
}

// IsGuest returns the value of the "is_guest" field in the mutation.
func (m *AccountMutation) IsGuest() (r bool, exists bool) {
	v := m.is_guest
	if v == nil {
		return
	}
	return *v, true
}

// OldIsGuest returns the old "is_guest" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldIsGuest(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsGuest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsGuest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsGuest: %w", err)
	}
	return oldValue.IsGuest, nil
}

// ResetIsGuest resets all changes to the "is_guest" field.
func (m *AccountMutation) ResetIsGuest() {
	m.is_guest = nil
}

// SetSessionToken sets the "session_token" field.
func (m *AccountMutation) SetSessionToken(s string) {
	m.session_token = &s
}

// SessionToken returns the value of the "session_token" field in the mutation.
func (m *AccountMutation) SessionToken() (r string, exists bool) {
	v := m.session_token
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionToken returns the old "session_token" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldSessionToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionToken: %w", err)
	}
	return oldValue.SessionToken, nil
}

// ClearSessionToken clears the value of the "session_token" field.
func (m *AccountMutation) ClearSessionToken() {
	m.session_token = nil
	m.clearedFields[account.FieldSessionToken] = struct{}{}
}

// SessionTokenCleared returns if the "session_token" field was cleared in this mutation.
func (m *AccountMutation) SessionTokenCleared() bool {
	_, ok := m.clearedFields[account.FieldSessionToken]
	return ok
}

// ResetSessionToken resets all changes to the "session_token" field.
func (m *AccountMutation) ResetSessionToken() {
	m.session_token = nil
	delete(m.clearedFields, account.FieldSessionToken)
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by ids.
func (m *AccountMutation) AddAnalysisIDs(ids ...uuid.UUID) {
	if m.analyses == nil {
		m.analyses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.analyses[ids[i]] = struct{}{}
	}
}

// ClearAnalyses clears the "analyses" edge to the Analysis entity.
func (m *AccountMutation) ClearAnalyses() {
	m.clearedanalyses = true
}

// AnalysesCleared reports if the "analyses" edge to the Analysis entity was cleared.
func (m *AccountMutation) AnalysesCleared() bool {
	return m.clearedanalyses
}

// RemoveAnalysisIDs removes the "analyses" edge to the Analysis entity by IDs.
func (m *AccountMutation) RemoveAnalysisIDs(ids ...uuid.UUID) {
	if m.removedanalyses == nil {
		m.removedanalyses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.analyses, ids[i])
		m.removedanalyses[ids[i]] = struct{}{}
	}
}

// RemovedAnalyses returns the removed IDs of the "analyses" edge to the Analysis entity.
func (m *AccountMutation) RemovedAnalysesIDs() (ids []uuid.UUID) {
	for id := range m.removedanalyses {
		ids = append(ids, id)
	}
	return
}

// AnalysesIDs returns the "analyses" edge IDs in the mutation.
func (m *AccountMutation) AnalysesIDs() (ids []uuid.UUID) {
	for id := range m.analyses {
		ids = append(ids, id)
	}
	return
}

// ResetAnalyses resets all changes to the "analyses" edge.
func (m *AccountMutation) ResetAnalyses() {
	m.analyses = nil
	m.clearedanalyses = false
	m.removedanalyses = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.email != nil {
		fields = append(fields, account.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, account.FieldPasswordHash)
	}
	if m.age != nil {
		fields = append(fields, account.FieldAge)
	}
	if m.gender != nil {
		fields = append(fields, account.FieldGender)
	}
	if m.is_guest != nil {
		fields = append(fields, account.FieldIsGuest)
	}
	if m.session_token != nil {
		fields = append(fields, account.FieldSessionToken)
	}
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldEmail:
		return m.Email()
	case account.FieldPasswordHash:
		return m.PasswordHash()
	case account.FieldAge:
		return m.Age()
	case account.FieldGender:
		return m.Gender()
	case account.FieldIsGuest:
		return m.IsGuest()
	case account.FieldSessionToken:
		return m.SessionToken()
	case account.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldEmail:
		return m.OldEmail(ctx)
	case account.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case account.FieldAge:
		return m.OldAge(ctx)
	case account.FieldGender:
		return m.OldGender(ctx)
	case account.FieldIsGuest:
		return m.OldIsGuest(ctx)
	case account.FieldSessionToken:
		return m.OldSessionToken(ctx)
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case account.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case account.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAge(v)
		return nil
	case account.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case account.FieldIsGuest:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsGuest(v)
		return nil
	case account.FieldSessionToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionToken(v)
		return nil
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	var fields []string
	if m.addage != nil {
		fields = append(fields, account.FieldAge)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case account.FieldAge:
		return m.AddedAge()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case account.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAge(v)
		return nil
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(account.FieldSessionToken) {
		fields = append(fields, account.FieldSessionToken)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	switch name {
	case account.FieldSessionToken:
		m.ClearSessionToken()
		return nil
	}
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldEmail:
		m.ResetEmail()
		return nil
	case account.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case account.FieldAge:
		m.ResetAge()
		return nil
	case account.FieldGender:
		m.ResetGender()
		return nil
	case account.FieldIsGuest:
		m.ResetIsGuest()
		return nil
	case account.FieldSessionToken:
		m.ResetSessionToken()
		return nil
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.analyses != nil {
		edges = append(edges, account.EdgeAnalyses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.analyses))
		for id := range m.analyses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedanalyses != nil {
		edges = append(edges, account.EdgeAnalyses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.removedanalyses))
		for id := range m.removedanalyses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanalyses {
		edges = append(edges, account.EdgeAnalyses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	switch name {
	case account.EdgeAnalyses:
		return m.clearedanalyses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	switch name {
	case account.EdgeAnalyses:
		m.ResetAnalyses()
		return nil
	}
	return fmt.Errorf("unknown Account edge %s", name)
}

// AnalysisMutation represents an operation that mutates the Analysis nodes in the graph.
type AnalysisMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	session_token  *string
	uploaded_at    *time.Time
	raw_text       *string
	ai_summary     *string
	status         *string
	disclaimer     *string
	clearedFields  map[string]struct{}
	account        *uuid.UUID
	clearedaccount bool
	details        map[uuid.UUID]struct{}
	removeddetails map[uuid.UUID]struct{}
	cleareddetails bool
	done           bool
	oldValue       func(context.Context) (*Analysis, error)
	predicates     []predicate.Analysis
}

var _ ent.Mutation = (*AnalysisMutation)(nil)

// analysisOption allows management of the mutation configuration using functional options.
type analysisOption func(*AnalysisMutation)

// newAnalysisMutation creates new mutation for the Analysis entity.
func newAnalysisMutation(c config, op Op, opts ...analysisOption) *AnalysisMutation {
	m := &AnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisID sets the ID field of the mutation.
func withAnalysisID(id uuid.UUID) analysisOption {
	return func(m *AnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *Analysis
		)
		m.oldValue = func(ctx context.Context) (*Analysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Analysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysis sets the old Analysis of the mutation.
func withAnalysis(node *Analysis) analysisOption {
	return func(m *AnalysisMutation) {
		m.oldValue = func(context.Context) (*Analysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Analysis entities.
func (m *AnalysisMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Analysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *AnalysisMutation) SetAccountID(u uuid.UUID) {
	m.account = &u
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *AnalysisMutation) AccountID() (r uuid.UUID, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldAccountID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *AnalysisMutation) ResetAccountID() {
	m.account = nil
}

// SetSessionToken sets the "session_token" field.
func (m *AnalysisMutation) SetSessionToken(s string) {
	m.session_token = &s
}

// SessionToken returns the value of the "session_token" field in the mutation.
func (m *AnalysisMutation) SessionToken() (r string, exists bool) {
	v := m.session_token
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionToken returns the old "session_token" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldSessionToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionToken: %w", err)
	}
	return oldValue.SessionToken, nil
}

// ClearSessionToken clears the value of the "session_token" field.
func (m *AnalysisMutation) ClearSessionToken() {
	m.session_token = nil
	m.clearedFields[analysis.FieldSessionToken] = struct{}{}
}

// SessionTokenCleared returns if the "session_token" field was cleared in this mutation.
func (m *AnalysisMutation) SessionTokenCleared() bool {
	_, ok := m.clearedFields[analysis.FieldSessionToken]
	return ok
}

// ResetSessionToken resets all changes to the "session_token" field.
func (m *AnalysisMutation) ResetSessionToken() {
	m.session_token = nil
	delete(m.clearedFields, analysis.FieldSessionToken)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *AnalysisMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *AnalysisMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *AnalysisMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetRawText sets the "raw_text" field.
func (m *AnalysisMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *AnalysisMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *AnalysisMutation) ResetRawText() {
	m.raw_text = nil
}

// SetAiSummary sets the "ai_summary" field.
func (m *AnalysisMutation) SetAiSummary(s string) {
	m.ai_summary = &s
}

// AiSummary returns the value of the "ai_summary" field in the mutation.
func (m *AnalysisMutation) AiSummary() (r string, exists bool) {
	v := m.ai_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldAiSummary returns the old "ai_summary" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldAiSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiSummary: %w", err)
	}
	return oldValue.AiSummary, nil
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (m *AnalysisMutation) ClearAiSummary() {
	m.ai_summary = nil
	m.clearedFields[analysis.FieldAiSummary] = struct{}{}
}

// AiSummaryCleared returns if the "ai_summary" field was cleared in this mutation.
func (m *AnalysisMutation) AiSummaryCleared() bool {
	_, ok := m.clearedFields[analysis.FieldAiSummary]
	return ok
}

// ResetAiSummary resets all changes to the "ai_summary" field.
func (m *AnalysisMutation) ResetAiSummary() {
	m.ai_summary = nil
	delete(m.clearedFields, analysis.FieldAiSummary)
}

// SetStatus sets the "status" field.
func (m *AnalysisMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalysisMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnalysisMutation) ResetStatus() {
	m.status = nil
}

// SetDisclaimer sets the "disclaimer" field.
func (m *AnalysisMutation) SetDisclaimer(s string) {
	m.disclaimer = &s
}

// Disclaimer returns the value of the "disclaimer" field in the mutation.
func (m *AnalysisMutation) Disclaimer() (r string, exists bool) {
	v := m.disclaimer
	if v == nil {
		return
	}
	return *v, true
}

// OldDisclaimer returns the old "disclaimer" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldDisclaimer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisclaimer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisclaimer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisclaimer: %w", err)
	}
	return oldValue.Disclaimer, nil
}

// ResetDisclaimer resets all changes to the "disclaimer" field.
func (m *AnalysisMutation) ResetDisclaimer() {
	m.disclaimer = nil
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *AnalysisMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[analysis.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *AnalysisMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *AnalysisMutation) AccountIDs() (ids []uuid.UUID) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *AnalysisMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// AddDetailIDs adds the "details" edge to the AnalysisDetail entity by ids.
func (m *AnalysisMutation) AddDetailIDs(ids ...uuid.UUID) {
	if m.details == nil {
		m.details = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.details[ids[i]] = struct{}{}
	}
}

// ClearDetails clears the "details" edge to the AnalysisDetail entity.
func (m *AnalysisMutation) ClearDetails() {
	m.cleareddetails = true
}

// DetailsCleared reports if the "details" edge to the AnalysisDetail entity was cleared.
func (m *AnalysisMutation) DetailsCleared() bool {
	return m.cleareddetails
}

// RemoveDetailIDs removes the "details" edge to the AnalysisDetail entity by IDs.
func (m *AnalysisMutation) RemoveDetailIDs(ids ...uuid.UUID) {
	if m.removeddetails == nil {
		m.removeddetails = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.details, ids[i])
		m.removeddetails[ids[i]] = struct{}{}
	}
}

// RemovedDetails returns the removed IDs of the "details" edge to the AnalysisDetail entity.
func (m *AnalysisMutation) RemovedDetailsIDs() (ids []uuid.UUID) {
	for id := range m.removeddetails {
		ids = append(ids, id)
	}
	return
}

// DetailsIDs returns the "details" edge IDs in the mutation.
func (m *AnalysisMutation) DetailsIDs() (ids []uuid.UUID) {
	for id := range m.details {
		ids = append(ids, id)
	}
	return
}

// ResetDetails resets all changes to the "details" edge.
func (m *AnalysisMutation) ResetDetails() {
	m.details = nil
	m.cleareddetails = false
	m.removeddetails = nil
}

// Where appends a list predicates to the AnalysisMutation builder.
func (m *AnalysisMutation) Where(ps ...predicate.Analysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Analysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Analysis).
func (m *AnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.account != nil {
		fields = append(fields, analysis.FieldAccountID)
	}
	if m.session_token != nil {
		fields = append(fields, analysis.FieldSessionToken)
	}
	if m.uploaded_at != nil {
		fields = append(fields, analysis.FieldUploadedAt)
	}
	if m.raw_text != nil {
		fields = append(fields, analysis.FieldRawText)
	}
	if m.ai_summary != nil {
		fields = append(fields, analysis.FieldAiSummary)
	}
	if m.status != nil {
		fields = append(fields, analysis.FieldStatus)
	}
	if m.disclaimer != nil {
		fields = append(fields, analysis.FieldDisclaimer)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysis.FieldAccountID:
		return m.AccountID()
	case analysis.FieldSessionToken:
		return m.SessionToken()
	case analysis.FieldUploadedAt:
		return m.UploadedAt()
	case analysis.FieldRawText:
		return m.RawText()
	case analysis.FieldAiSummary:
		return m.AiSummary()
	case analysis.FieldStatus:
		return m.Status()
	case analysis.FieldDisclaimer:
		return m.Disclaimer()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysis.FieldAccountID:
		return m.OldAccountID(ctx)
	case analysis.FieldSessionToken:
		return m.OldSessionToken(ctx)
	case analysis.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case analysis.FieldRawText:
		return m.OldRawText(ctx)
	case analysis.FieldAiSummary:
		return m.OldAiSummary(ctx)
	case analysis.FieldStatus:
		return m.OldStatus(ctx)
	case analysis.FieldDisclaimer:
		return m.OldDisclaimer(ctx)
	}
	return nil, fmt.Errorf("unknown Analysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysis.FieldAccountID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case analysis.FieldSessionToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionToken(v)
		return nil
	case analysis.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case analysis.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case analysis.FieldAiSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiSummary(v)
		return nil
	case analysis.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analysis.FieldDisclaimer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisclaimer(v)
		return nil
	}
	return fmt.Errorf("unknown Analysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Analysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysis.FieldSessionToken) {
		fields = append(fields, analysis.FieldSessionToken)
	}
	if m.FieldCleared(analysis.FieldAiSummary) {
		fields = append(fields, analysis.FieldAiSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisMutation) ClearField(name string) error {
	switch name {
	case analysis.FieldSessionToken:
		m.ClearSessionToken()
		return nil
	case analysis.FieldAiSummary:
		m.ClearAiSummary()
		return nil
	}
	return fmt.Errorf("unknown Analysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisMutation) ResetField(name string) error {
	switch name {
	case analysis.FieldAccountID:
		m.ResetAccountID()
		return nil
	case analysis.FieldSessionToken:
		m.ResetSessionToken()
		return nil
	case analysis.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case analysis.FieldRawText:
		m.ResetRawText()
		return nil
	case analysis.FieldAiSummary:
		m.ResetAiSummary()
		return nil
	case analysis.FieldStatus:
		m.ResetStatus()
		return nil
	case analysis.FieldDisclaimer:
		m.ResetDisclaimer()
		return nil
	}
	return fmt.Errorf("unknown Analysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.account != nil {
		edges = append(edges, analysis.EdgeAccount)
	}
	if m.details != nil {
		edges = append(edges, analysis.EdgeDetails)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysis.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	case analysis.EdgeDetails:
		ids := make([]ent.Value, 0, len(m.details))
		for id := range m.details {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddetails != nil {
		edges = append(edges, analysis.EdgeDetails)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case analysis.EdgeDetails:
		ids := make([]ent.Value, 0, len(m.removeddetails))
		for id := range m.removeddetails {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaccount {
		edges = append(edges, analysis.EdgeAccount)
	}
	if m.cleareddetails {
		edges = append(edges, analysis.EdgeDetails)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case analysis.EdgeAccount:
		return m.clearedaccount
	case analysis.EdgeDetails:
		return m.cleareddetails
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisMutation) ClearEdge(name string) error {
	switch name {
	case analysis.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown Analysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisMutation) ResetEdge(name string) error {
	switch name {
	case analysis.EdgeAccount:
		m.ResetAccount()
		return nil
	case analysis.EdgeDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown Analysis edge %s", name)
}

// AnalysisDetailMutation represents an operation that mutates the AnalysisDetail nodes in the graph.
type AnalysisDetailMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	parameter_name  *string
	value           *float64
	addvalue        *float64
	unit            *string
	reference_range *string
	status          *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	analysis        *uuid.UUID
	clearedanalysis bool
	done            bool
	oldValue        func(context.Context) (*AnalysisDetail, error)
	predicates      []predicate.AnalysisDetail
}

var _ ent.Mutation = (*AnalysisDetailMutation)(nil)

// analysisdetailOption allows management of the mutation configuration using functional options.
type analysisdetailOption func(*AnalysisDetailMutation)

// newAnalysisDetailMutation creates new mutation for the AnalysisDetail entity.
func newAnalysisDetailMutation(c config, op Op, opts ...analysisdetailOption) *AnalysisDetailMutation {
	m := &AnalysisDetailMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisDetail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisDetailID sets the ID field of the mutation.
func withAnalysisDetailID(id uuid.UUID) analysisdetailOption {
	return func(m *AnalysisDetailMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisDetail
		)
		m.oldValue = func(ctx context.Context) (*AnalysisDetail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisDetail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisDetail sets the old AnalysisDetail of the mutation.
func withAnalysisDetail(node *AnalysisDetail) analysisdetailOption {
	return func(m *AnalysisDetailMutation) {
		m.oldValue = func(context.Context) (*AnalysisDetail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisDetailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisDetailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisDetail entities.
func (m *AnalysisDetailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisDetailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisDetailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisDetail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnalysisID sets the "analysis_id" field.
func (m *AnalysisDetailMutation) SetAnalysisID(u uuid.UUID) {
	m.analysis = &u
}

// AnalysisID returns the value of the "analysis_id" field in the mutation.
func (m *AnalysisDetailMutation) AnalysisID() (r uuid.UUID, exists bool) {
	v := m.analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisID returns the old "analysis_id" field's value of the AnalysisDetail entity.
// If the AnalysisDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisDetailMutation) OldAnalysisID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisID: %w", err)
	}
	return oldValue.AnalysisID, nil
}

// ResetAnalysisID resets all changes to the "analysis_id" field.
func (m *AnalysisDetailMutation) ResetAnalysisID() {
	m.analysis = nil
}

// SetParameterName sets the "parameter_name" field.
func (m *AnalysisDetailMutation) SetParameterName(s string) {
	m.parameter_name = &s
}

// ParameterName returns the value of the "parameter_name" field in the mutation.
func (m *AnalysisDetailMutation) ParameterName() (r string, exists bool) {
	v := m.parameter_name
	if v == nil {
		return
	}
	return *v, true
}

// OldParameterName returns the old "parameter_name" field's value of the AnalysisDetail entity.
// If the AnalysisDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisDetailMutation) OldParameterName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameterName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameterName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameterName: %w", err)
	}
	return oldValue.ParameterName, nil
}

// ResetParameterName resets all changes to the "parameter_name" field.
func (m *AnalysisDetailMutation) ResetParameterName() {
	m.parameter_name = nil
}

// SetValue sets the "value" field.
func (m *AnalysisDetailMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *AnalysisDetailMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the AnalysisDetail entity.
// If the AnalysisDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisDetailMutation) OldValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *AnalysisDetailMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *AnalysisDetailMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ClearValue clears the value of the "value" field.
func (m *AnalysisDetailMutation) ClearValue() {
	m.value = nil
	m.addvalue = nil
	m.clearedFields[analysisdetail.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *AnalysisDetailMutation) ValueCleared() bool {
	_, ok := m.clearedFields[analysisdetail.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *AnalysisDetailMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
	delete(m.clearedFields, analysisdetail.FieldValue)
}

// SetUnit sets the "unit" field.
func (m *AnalysisDetailMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *AnalysisDetailMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the AnalysisDetail entity.
// If the AnalysisDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisDetailMutation) OldUnit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *AnalysisDetailMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[analysisdetail.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *AnalysisDetailMutation) UnitCleared() bool {
	_, ok := m.clearedFields[analysisdetail.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *AnalysisDetailMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, analysisdetail.FieldUnit)
}

// SetReferenceRange sets the "reference_range" field.
func (m *AnalysisDetailMutation) SetReferenceRange(s string) {
	m.reference_range = &s
}

// ReferenceRange returns the value of the "reference_range" field in the mutation.
func (m *AnalysisDetailMutation) ReferenceRange() (r string, exists bool) {
	v := m.reference_range
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceRange returns the old "reference_range" field's value of the AnalysisDetail entity.
// If the AnalysisDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisDetailMutation) OldReferenceRange(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceRange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceRange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceRange: %w", err)
	}
	return oldValue.ReferenceRange, nil
}

// ResetReferenceRange resets all changes to the "reference_range" field.
func (m *AnalysisDetailMutation) ResetReferenceRange() {
	m.reference_range = nil
}

// SetStatus sets the "status" field.
func (m *AnalysisDetailMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalysisDetailMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnalysisDetail entity.
// If the AnalysisDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisDetailMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnalysisDetailMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisDetailMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisDetailMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisDetail entity.
// If the AnalysisDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisDetailMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisDetailMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAnalysis clears the "analysis" edge to the Analysis entity.
func (m *AnalysisDetailMutation) ClearAnalysis() {
	m.clearedanalysis = true
	m.clearedFields[analysisdetail.FieldAnalysisID] = struct{}{}
}

// AnalysisCleared reports if the "analysis" edge to the Analysis entity was cleared.
func (m *AnalysisDetailMutation) AnalysisCleared() bool {
	return m.clearedanalysis
}

// AnalysisIDs returns the "analysis" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnalysisID instead. It exists only for internal usage by the builders.
func (m *AnalysisDetailMutation) AnalysisIDs() (ids []uuid.UUID) {
	if id := m.analysis; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnalysis resets all changes to the "analysis" edge.
func (m *AnalysisDetailMutation) ResetAnalysis() {
	m.analysis = nil
	m.clearedanalysis = false
}

// Where appends a list predicates to the AnalysisDetailMutation builder.
func (m *AnalysisDetailMutation) Where(ps ...predicate.AnalysisDetail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisDetailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisDetailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisDetail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisDetailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisDetailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisDetail).
func (m *AnalysisDetailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisDetailMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.analysis != nil {
		fields = append(fields, analysisdetail.FieldAnalysisID)
	}
	if m.parameter_name != nil {
		fields = append(fields, analysisdetail.FieldParameterName)
	}
	if m.value != nil {
		fields = append(fields, analysisdetail.FieldValue)
	}
	if m.unit != nil {
		fields = append(fields, analysisdetail.FieldUnit)
	}
	if m.reference_range != nil {
		fields = append(fields, analysisdetail.FieldReferenceRange)
	}
	if m.status != nil {
		fields = append(fields, analysisdetail.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, analysisdetail.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisDetailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisdetail.FieldAnalysisID:
		return m.AnalysisID()
	case analysisdetail.FieldParameterName:
		return m.ParameterName()
	case analysisdetail.FieldValue:
		return m.Value()
	case analysisdetail.FieldUnit:
		return m.Unit()
	case analysisdetail.FieldReferenceRange:
		return m.ReferenceRange()
	case analysisdetail.FieldStatus:
		return m.Status()
	case analysisdetail.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisDetailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisdetail.FieldAnalysisID:
		return m.OldAnalysisID(ctx)
	case analysisdetail.FieldParameterName:
		return m.OldParameterName(ctx)
	case analysisdetail.FieldValue:
		return m.OldValue(ctx)
	case analysisdetail.FieldUnit:
		return m.OldUnit(ctx)
	case analysisdetail.FieldReferenceRange:
		return m.OldReferenceRange(ctx)
	case analysisdetail.FieldStatus:
		return m.OldStatus(ctx)
	case analysisdetail.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisDetail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisDetailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisdetail.FieldAnalysisID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisID(v)
		return nil
	case analysisdetail.FieldParameterName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameterName(v)
		return nil
	case analysisdetail.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case analysisdetail.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case analysisdetail.FieldReferenceRange:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceRange(v)
		return nil
	case analysisdetail.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analysisdetail.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisDetail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisDetailMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, analysisdetail.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisDetailMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisdetail.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisDetailMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisdetail.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisDetail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisDetailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisdetail.FieldValue) {
		fields = append(fields, analysisdetail.FieldValue)
	}
	if m.FieldCleared(analysisdetail.FieldUnit) {
		fields = append(fields, analysisdetail.FieldUnit)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisDetailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisDetailMutation) ClearField(name string) error {
	switch name {
	case analysisdetail.FieldValue:
		m.ClearValue()
		return nil
	case analysisdetail.FieldUnit:
		m.ClearUnit()
		return nil
	}
	return fmt.Errorf("unknown AnalysisDetail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisDetailMutation) ResetField(name string) error {
	switch name {
	case analysisdetail.FieldAnalysisID:
		m.ResetAnalysisID()
		return nil
	case analysisdetail.FieldParameterName:
		m.ResetParameterName()
		return nil
	case analysisdetail.FieldValue:
		m.ResetValue()
		return nil
	case analysisdetail.FieldUnit:
		m.ResetUnit()
		return nil
	case analysisdetail.FieldReferenceRange:
		m.ResetReferenceRange()
		return nil
	case analysisdetail.FieldStatus:
		m.ResetStatus()
		return nil
	case analysisdetail.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisDetail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisDetailMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.analysis != nil {
		edges = append(edges, analysisdetail.EdgeAnalysis)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisDetailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysisdetail.EdgeAnalysis:
		if id := m.analysis; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisDetailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisDetailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisDetailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanalysis {
		edges = append(edges, analysisdetail.EdgeAnalysis)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisDetailMutation) EdgeCleared(name string) bool {
	switch name {
	case analysisdetail.EdgeAnalysis:
		return m.clearedanalysis
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisDetailMutation) ClearEdge(name string) error {
	switch name {
	case analysisdetail.EdgeAnalysis:
		m.ClearAnalysis()
		return nil
	}
	return fmt.Errorf("unknown AnalysisDetail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisDetailMutation) ResetEdge(name string) error {
	switch name {
	case analysisdetail.EdgeAnalysis:
		m.ResetAnalysis()
		return nil
	}
	return fmt.Errorf("unknown AnalysisDetail edge %s", name)
}
