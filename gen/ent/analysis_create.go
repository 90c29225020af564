// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/santescan/santescan/gen/ent/account"
	"github.com/santescan/santescan/gen/ent/analysis"
	"github.com/santescan/santescan/gen/ent/analysisdetail"
)

// AnalysisCreate is the builder for creating a Analysis entity.
type AnalysisCreate struct {
	config
	mutation *AnalysisMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (_c *AnalysisCreate) SetAccountID(v uuid.UUID) *AnalysisCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetSessionToken sets the "session_token" field.
func (_c *AnalysisCreate) SetSessionToken(v string) *AnalysisCreate {
	_c.mutation.SetSessionToken(v)
	return _c
}

// SetNillableSessionToken sets the "session_token" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableSessionToken(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetSessionToken(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *AnalysisCreate) SetUploadedAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableUploadedAt(v *time.Time) *AnalysisCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *AnalysisCreate) SetRawText(v string) *AnalysisCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetAiSummary sets the "ai_summary" field.
func (_c *AnalysisCreate) SetAiSummary(v string) *AnalysisCreate {
	_c.mutation.SetAiSummary(v)
	return _c
}

// SetNillableAiSummary sets the "ai_summary" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableAiSummary(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetAiSummary(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisCreate) SetStatus(v string) *AnalysisCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableStatus(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDisclaimer sets the "disclaimer" field.
func (_c *AnalysisCreate) SetDisclaimer(v string) *AnalysisCreate {
	_c.mutation.SetDisclaimer(v)
	return _c
}

// SetNillableDisclaimer sets the "disclaimer" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableDisclaimer(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetDisclaimer(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisCreate) SetID(v uuid.UUID) *AnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableID(v *uuid.UUID) *AnalysisCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *AnalysisCreate) SetAccount(v *Account) *AnalysisCreate {
	return _c.SetAccountID(v.ID)
}

// AddDetailIDs adds the "details" edge to the AnalysisDetail entity by IDs.
func (_c *AnalysisCreate) AddDetailIDs(ids ...uuid.UUID) *AnalysisCreate {
	_c.mutation.AddDetailIDs(ids...)
	return _c
}

// AddDetails adds the "details" edges to the AnalysisDetail entity.
func (_c *AnalysisCreate) AddDetails(v ...*AnalysisDetail) *AnalysisCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDetailIDs(ids...)
}

// Mutation returns the AnalysisMutation object of the builder.
func (_c *AnalysisCreate) Mutation() *AnalysisMutation {
	return _c.mutation
}

// Save creates the Analysis in the database.
func (_c *AnalysisCreate) Save(ctx context.Context) (*Analysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisCreate) SaveX(ctx context.Context) *Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := analysis.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := analysis.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Disclaimer(); !ok {
		v := analysis.DefaultDisclaimer
		_c.mutation.SetDisclaimer(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analysis.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "Analysis.account_id"`)}
	}
	if v, ok := _c.mutation.SessionToken(); ok {
		if err := analysis.SessionTokenValidator(v); err != nil {
			return &ValidationError{Name: "session_token", err: fmt.Errorf(`ent: validator failed for field "Analysis.session_token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "Analysis.uploaded_at"`)}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "Analysis.raw_text"`)}
	}
	if v, ok := _c.mutation.RawText(); ok {
		if err := analysis.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "Analysis.raw_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Analysis.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Analysis.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Disclaimer(); !ok {
		return &ValidationError{Name: "disclaimer", err: errors.New(`ent: missing required field "Analysis.disclaimer"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "Analysis.account"`)}
	}
	return nil
}

func (_c *AnalysisCreate) sqlSave(ctx context.Context) (*Analysis, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisCreate) createSpec() (*Analysis, *sqlgraph.CreateSpec) {
	var (
		_node = &Analysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysis.Table, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SessionToken(); ok {
		_spec.SetField(analysis.FieldSessionToken, field.TypeString, value)
		_node.SessionToken = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(analysis.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(analysis.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.AiSummary(); ok {
		_spec.SetField(analysis.FieldAiSummary, field.TypeString, value)
		_node.AiSummary = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysis.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Disclaimer(); ok {
		_spec.SetField(analysis.FieldDisclaimer, field.TypeString, value)
		_node.Disclaimer = value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
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
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DetailsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisCreateBulk is the builder for creating many Analysis entities in bulk.
type AnalysisCreateBulk struct {
	config
	err      error
	builders []*AnalysisCreate
}

// Save creates the Analysis entities in the database.
func (_c *AnalysisCreateBulk) Save(ctx context.Context) ([]*Analysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Analysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisCreateBulk) SaveX(ctx context.Context) []*Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
