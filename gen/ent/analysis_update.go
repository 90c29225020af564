// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/santescan/santescan/gen/ent/account"
	"github.com/santescan/santescan/gen/ent/analysis"
	"github.com/santescan/santescan/gen/ent/analysisdetail"
	"github.com/santescan/santescan/gen/ent/predicate"
)

// AnalysisUpdate is the builder for updating Analysis entities.
type AnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisMutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdate) Where(ps ...predicate.Analysis) *AnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *AnalysisUpdate) SetAccountID(v uuid.UUID) *AnalysisUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableAccountID(v *uuid.UUID) *AnalysisUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetSessionToken sets the "session_token" field.
func (_u *AnalysisUpdate) SetSessionToken(v string) *AnalysisUpdate {
	_u.mutation.SetSessionToken(v)
	return _u
}

// SetNillableSessionToken sets the "session_token" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableSessionToken(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetSessionToken(*v)
	}
	return _u
}

// ClearSessionToken clears the value of the "session_token" field.
func (_u *AnalysisUpdate) ClearSessionToken() *AnalysisUpdate {
	_u.mutation.ClearSessionToken()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *AnalysisUpdate) SetUploadedAt(v time.Time) *AnalysisUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableUploadedAt(v *time.Time) *AnalysisUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *AnalysisUpdate) SetRawText(v string) *AnalysisUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableRawText(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetAiSummary sets the "ai_summary" field.
func (_u *AnalysisUpdate) SetAiSummary(v string) *AnalysisUpdate {
	_u.mutation.SetAiSummary(v)
	return _u
}

// SetNillableAiSummary sets the "ai_summary" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableAiSummary(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetAiSummary(*v)
	}
	return _u
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (_u *AnalysisUpdate) ClearAiSummary() *AnalysisUpdate {
	_u.mutation.ClearAiSummary()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisUpdate) SetStatus(v string) *AnalysisUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableStatus(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *AnalysisUpdate) SetAccount(v *Account) *AnalysisUpdate {
	return _u.SetAccountID(v.ID)
}

// AddDetailIDs adds the "details" edge to the AnalysisDetail entity by IDs.
func (_u *AnalysisUpdate) AddDetailIDs(ids ...uuid.UUID) *AnalysisUpdate {
	_u.mutation.AddDetailIDs(ids...)
	return _u
}

// AddDetails adds the "details" edges to the AnalysisDetail entity.
func (_u *AnalysisUpdate) AddDetails(v ...*AnalysisDetail) *AnalysisUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDetailIDs(ids...)
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdate) Mutation() *AnalysisMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *AnalysisUpdate) ClearAccount() *AnalysisUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// ClearDetails clears all "details" edges to the AnalysisDetail entity.
func (_u *AnalysisUpdate) ClearDetails() *AnalysisUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// RemoveDetailIDs removes the "details" edge to AnalysisDetail entities by IDs.
func (_u *AnalysisUpdate) RemoveDetailIDs(ids ...uuid.UUID) *AnalysisUpdate {
	_u.mutation.RemoveDetailIDs(ids...)
	return _u
}

// RemoveDetails removes "details" edges to AnalysisDetail entities.
func (_u *AnalysisUpdate) RemoveDetails(v ...*AnalysisDetail) *AnalysisUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDetailIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdate) check() error {
	if v, ok := _u.mutation.SessionToken(); ok {
		if err := analysis.SessionTokenValidator(v); err != nil {
			return &ValidationError{Name: "session_token", err: fmt.Errorf(`ent: validator failed for field "Analysis.session_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawText(); ok {
		if err := analysis.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "Analysis.raw_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := analysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Analysis.status": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Analysis.account"`)
	}
	return nil
}

func (_u *AnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionToken(); ok {
		_spec.SetField(analysis.FieldSessionToken, field.TypeString, value)
	}
	if _u.mutation.SessionTokenCleared() {
		_spec.ClearField(analysis.FieldSessionToken, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(analysis.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(analysis.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiSummary(); ok {
		_spec.SetField(analysis.FieldAiSummary, field.TypeString, value)
	}
	if _u.mutation.AiSummaryCleared() {
		_spec.ClearField(analysis.FieldAiSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysis.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysis.AccountTable,
			Columns: []string{analysis.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysis.AccountTable,
			Columns: []string{analysis.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DetailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysis.DetailsTable,
			Columns: []string{analysis.DetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisdetail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDetailsIDs(); len(nodes) > 0 && !_u.mutation.DetailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysis.DetailsTable,
			Columns: []string{analysis.DetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisdetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DetailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysis.DetailsTable,
			Columns: []string{analysis.DetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisdetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisUpdateOne is the builder for updating a single Analysis entity.
type AnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisMutation
}

// SetAccountID sets the "account_id" field.
func (_u *AnalysisUpdateOne) SetAccountID(v uuid.UUID) *AnalysisUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableAccountID(v *uuid.UUID) *AnalysisUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetSessionToken sets the "session_token" field.
func (_u *AnalysisUpdateOne) SetSessionToken(v string) *AnalysisUpdateOne {
	_u.mutation.SetSessionToken(v)
	return _u
}

// SetNillableSessionToken sets the "session_token" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableSessionToken(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetSessionToken(*v)
	}
	return _u
}

// ClearSessionToken clears the value of the "session_token" field.
func (_u *AnalysisUpdateOne) ClearSessionToken() *AnalysisUpdateOne {
	_u.mutation.ClearSessionToken()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *AnalysisUpdateOne) SetUploadedAt(v time.Time) *AnalysisUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableUploadedAt(v *time.Time) *AnalysisUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *AnalysisUpdateOne) SetRawText(v string) *AnalysisUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableRawText(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetAiSummary sets the "ai_summary" field.
func (_u *AnalysisUpdateOne) SetAiSummary(v string) *AnalysisUpdateOne {
	_u.mutation.SetAiSummary(v)
	return _u
}

// SetNillableAiSummary sets the "ai_summary" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableAiSummary(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetAiSummary(*v)
	}
	return _u
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (_u *AnalysisUpdateOne) ClearAiSummary() *AnalysisUpdateOne {
	_u.mutation.ClearAiSummary()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisUpdateOne) SetStatus(v string) *AnalysisUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableStatus(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *AnalysisUpdateOne) SetAccount(v *Account) *AnalysisUpdateOne {
	return _u.SetAccountID(v.ID)
}

// AddDetailIDs adds the "details" edge to the AnalysisDetail entity by IDs.
func (_u *AnalysisUpdateOne) AddDetailIDs(ids ...uuid.UUID) *AnalysisUpdateOne {
	_u.mutation.AddDetailIDs(ids...)
	return _u
}

// AddDetails adds the "details" edges to the AnalysisDetail entity.
func (_u *AnalysisUpdateOne) AddDetails(v ...*AnalysisDetail) *AnalysisUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDetailIDs(ids...)
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdateOne) Mutation() *AnalysisMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *AnalysisUpdateOne) ClearAccount() *AnalysisUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// ClearDetails clears all "details" edges to the AnalysisDetail entity.
func (_u *AnalysisUpdateOne) ClearDetails() *AnalysisUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// RemoveDetailIDs removes the "details" edge to AnalysisDetail entities by IDs.
func (_u *AnalysisUpdateOne) RemoveDetailIDs(ids ...uuid.UUID) *AnalysisUpdateOne {
	_u.mutation.RemoveDetailIDs(ids...)
	return _u
}

// RemoveDetails removes "details" edges to AnalysisDetail entities.
func (_u *AnalysisUpdateOne) RemoveDetails(v ...*AnalysisDetail) *AnalysisUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDetailIDs(ids...)
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdateOne) Where(ps ...predicate.Analysis) *AnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisUpdateOne) Select(field string, fields ...string) *AnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Analysis entity.
func (_u *AnalysisUpdateOne) Save(ctx context.Context) (*Analysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdateOne) SaveX(ctx context.Context) *Analysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.SessionToken(); ok {
		if err := analysis.SessionTokenValidator(v); err != nil {
			return &ValidationError{Name: "session_token", err: fmt.Errorf(`ent: validator failed for field "Analysis.session_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawText(); ok {
		if err := analysis.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "Analysis.raw_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := analysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Analysis.status": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Analysis.account"`)
	}
	return nil
}

func (_u *AnalysisUpdateOne) sqlSave(ctx context.Context) (_node *Analysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Analysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysis.FieldID)
		for _, f := range fields {
			if !analysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysis.FieldID {
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
	if value, ok := _u.mutation.SessionToken(); ok {
		_spec.SetField(analysis.FieldSessionToken, field.TypeString, value)
	}
	if _u.mutation.SessionTokenCleared() {
		_spec.ClearField(analysis.FieldSessionToken, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(analysis.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(analysis.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiSummary(); ok {
		_spec.SetField(analysis.FieldAiSummary, field.TypeString, value)
	}
	if _u.mutation.AiSummaryCleared() {
		_spec.ClearField(analysis.FieldAiSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysis.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysis.AccountTable,
			Columns: []string{analysis.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysis.AccountTable,
			Columns: []string{analysis.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DetailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysis.DetailsTable,
			Columns: []string{analysis.DetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisdetail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDetailsIDs(); len(nodes) > 0 && !_u.mutation.DetailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysis.DetailsTable,
			Columns: []string{analysis.DetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisdetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DetailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysis.DetailsTable,
			Columns: []string{analysis.DetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisdetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Analysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
