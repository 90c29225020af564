// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/santescan/santescan/gen/ent/account"
	"github.com/santescan/santescan/gen/ent/analysis"
	"github.com/santescan/santescan/gen/ent/predicate"
)

// AccountUpdate is the builder for updating Account entities.
type AccountUpdate struct {
	config
	hooks    []Hook
	mutation *AccountMutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdate) Where(ps ...predicate.Account) *AccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *AccountUpdate) SetEmail(v string) *AccountUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableEmail(v *string) *AccountUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *AccountUpdate) SetPasswordHash(v string) *AccountUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *AccountUpdate) SetNillablePasswordHash(v *string) *AccountUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *AccountUpdate) SetAge(v int) *AccountUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableAge(v *int) *AccountUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *AccountUpdate) AddAge(v int) *AccountUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// SetGender sets the "gender" field.
func (_u *AccountUpdate) SetGender(v string) *AccountUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableGender(v *string) *AccountUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetIsGuest sets the "is_guest" field.
func (_u *AccountUpdate) SetIsGuest(v bool) *AccountUpdate {
	_u.mutation.SetIsGuest(v)
	return _u
}

// SetNillableIsGuest sets the "is_guest" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableIsGuest(v *bool) *AccountUpdate {
	if v != nil {
		_u.SetIsGuest(*v)
	}
	return _u
}

// SetSessionToken sets the "session_token" field.
func (_u *AccountUpdate) SetSessionToken(v string) *AccountUpdate {
	_u.mutation.SetSessionToken(v)
	return _u
}

// SetNillableSessionToken sets the "session_token" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableSessionToken(v *string) *AccountUpdate {
	if v != nil {
		_u.SetSessionToken(*v)
	}
	return _u
}

// ClearSessionToken clears the value of the "session_token" field.
func (_u *AccountUpdate) ClearSessionToken() *AccountUpdate {
	_u.mutation.ClearSessionToken()
	return _u
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by IDs.
func (_u *AccountUpdate) AddAnalysisIDs(ids ...uuid.UUID) *AccountUpdate {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the Analysis entity.
func (_u *AccountUpdate) AddAnalyses(v ...*Analysis) *AccountUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdate) Mutation() *AccountMutation {
	return _u.mutation
}

// ClearAnalyses clears all "analyses" edges to the Analysis entity.
func (_u *AccountUpdate) ClearAnalyses() *AccountUpdate {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to Analysis entities by IDs.
func (_u *AccountUpdate) RemoveAnalysisIDs(ids ...uuid.UUID) *AccountUpdate {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to Analysis entities.
func (_u *AccountUpdate) RemoveAnalyses(v ...*Analysis) *AccountUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccountUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := account.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "Account.password_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Age(); ok {
		if err := account.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "Account.age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionToken(); ok {
		if err := account.SessionTokenValidator(v); err != nil {
			return &ValidationError{Name: "session_token", err: fmt.Errorf(`ent: validator failed for field "Account.session_token": %w`, err)}
		}
	}
	return nil
}

func (_u *AccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(account.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(account.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(account.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(account.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsGuest(); ok {
		_spec.SetField(account.FieldIsGuest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionToken(); ok {
		_spec.SetField(account.FieldSessionToken, field.TypeString, value)
	}
	if _u.mutation.SessionTokenCleared() {
		_spec.ClearField(account.FieldSessionToken, field.TypeString)
	}
	if _u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AnalysesTable,
			Columns: []string{account.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AnalysesTable,
			Columns: []string{account.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AnalysesTable,
			Columns: []string{account.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccountUpdateOne is the builder for updating a single Account entity.
type AccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccountMutation
}

// SetEmail sets the "email" field.
func (_u *AccountUpdateOne) SetEmail(v string) *AccountUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableEmail(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *AccountUpdateOne) SetPasswordHash(v string) *AccountUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillablePasswordHash(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *AccountUpdateOne) SetAge(v int) *AccountUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableAge(v *int) *AccountUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *AccountUpdateOne) AddAge(v int) *AccountUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// SetGender sets the "gender" field.
func (_u *AccountUpdateOne) SetGender(v string) *AccountUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableGender(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetIsGuest sets the "is_guest" field.
func (_u *AccountUpdateOne) SetIsGuest(v bool) *AccountUpdateOne {
	_u.mutation.SetIsGuest(v)
	return _u
}

// SetNillableIsGuest sets the "is_guest" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableIsGuest(v *bool) *AccountUpdateOne {
	if v != nil {
		_u.SetIsGuest(*v)
	}
	return _u
}

// SetSessionToken sets the "session_token" field.
func (_u *AccountUpdateOne) SetSessionToken(v string) *AccountUpdateOne {
	_u.mutation.SetSessionToken(v)
	return _u
}

// SetNillableSessionToken sets the "session_token" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableSessionToken(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetSessionToken(*v)
	}
	return _u
}

// ClearSessionToken clears the value of the "session_token" field.
func (_u *AccountUpdateOne) ClearSessionToken() *AccountUpdateOne {
	_u.mutation.ClearSessionToken()
	return _u
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by IDs.
func (_u *AccountUpdateOne) AddAnalysisIDs(ids ...uuid.UUID) *AccountUpdateOne {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the Analysis entity.
func (_u *AccountUpdateOne) AddAnalyses(v ...*Analysis) *AccountUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdateOne) Mutation() *AccountMutation {
	return _u.mutation
}

// ClearAnalyses clears all "analyses" edges to the Analysis entity.
func (_u *AccountUpdateOne) ClearAnalyses() *AccountUpdateOne {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to Analysis entities by IDs.
func (_u *AccountUpdateOne) RemoveAnalysisIDs(ids ...uuid.UUID) *AccountUpdateOne {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to Analysis entities.
func (_u *AccountUpdateOne) RemoveAnalyses(v ...*Analysis) *AccountUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdateOne) Where(ps ...predicate.Account) *AccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccountUpdateOne) Select(field string, fields ...string) *AccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Account entity.
func (_u *AccountUpdateOne) Save(ctx context.Context) (*Account, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdateOne) SaveX(ctx context.Context) *Account {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := account.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "Account.password_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Age(); ok {
		if err := account.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "Account.age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionToken(); ok {
		if err := account.SessionTokenValidator(v); err != nil {
			return &ValidationError{Name: "session_token", err: fmt.Errorf(`ent: validator failed for field "Account.session_token": %w`, err)}
		}
	}
	return nil
}

func (_u *AccountUpdateOne) sqlSave(ctx context.Context) (_node *Account, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Account.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, account.FieldID)
		for _, f := range fields {
			if !account.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != account.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(account.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(account.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(account.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(account.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsGuest(); ok {
		_spec.SetField(account.FieldIsGuest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionToken(); ok {
		_spec.SetField(account.FieldSessionToken, field.TypeString, value)
	}
	if _u.mutation.SessionTokenCleared() {
		_spec.ClearField(account.FieldSessionToken, field.TypeString)
	}
	if _u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AnalysesTable,
			Columns: []string{account.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AnalysesTable,
			Columns: []string{account.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AnalysesTable,
			Columns: []string{account.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Account{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
