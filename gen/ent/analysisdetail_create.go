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
	"github.com/santescan/santescan/gen/ent/analysis"
	"github.com/santescan/santescan/gen/ent/analysisdetail"
)

// AnalysisDetailCreate is the builder for creating a AnalysisDetail entity.
type AnalysisDetailCreate struct {
	config
	mutation *AnalysisDetailMutation
	hooks    []Hook
}

// SetAnalysisID sets the "analysis_id" field.
func (_c *AnalysisDetailCreate) SetAnalysisID(v uuid.UUID) *AnalysisDetailCreate {
	_c.mutation.SetAnalysisID(v)
	return _c
}

// SetParameterName sets the "parameter_name" field.
func (_c *AnalysisDetailCreate) SetParameterName(v string) *AnalysisDetailCreate {
	_c.mutation.SetParameterName(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *AnalysisDetailCreate) SetValue(v float64) *AnalysisDetailCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *AnalysisDetailCreate) SetNillableValue(v *float64) *AnalysisDetailCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *AnalysisDetailCreate) SetUnit(v string) *AnalysisDetailCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *AnalysisDetailCreate) SetNillableUnit(v *string) *AnalysisDetailCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetReferenceRange sets the "reference_range" field.
func (_c *AnalysisDetailCreate) SetReferenceRange(v string) *AnalysisDetailCreate {
	_c.mutation.SetReferenceRange(v)
	return _c
}

// SetNillableReferenceRange sets the "reference_range" field if the given value is not nil.
func (_c *AnalysisDetailCreate) SetNillableReferenceRange(v *string) *AnalysisDetailCreate {
	if v != nil {
		_c.SetReferenceRange(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisDetailCreate) SetStatus(v string) *AnalysisDetailCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisDetailCreate) SetCreatedAt(v time.Time) *AnalysisDetailCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisDetailCreate) SetNillableCreatedAt(v *time.Time) *AnalysisDetailCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisDetailCreate) SetID(v uuid.UUID) *AnalysisDetailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalysisDetailCreate) SetNillableID(v *uuid.UUID) *AnalysisDetailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAnalysis sets the "analysis" edge to the Analysis entity.
func (_c *AnalysisDetailCreate) SetAnalysis(v *Analysis) *AnalysisDetailCreate {
	return _c.SetAnalysisID(v.ID)
}

// Mutation returns the AnalysisDetailMutation object of the builder.
func (_c *AnalysisDetailCreate) Mutation() *AnalysisDetailMutation {
	return _c.mutation
}

// Save creates the AnalysisDetail in the database.
func (_c *AnalysisDetailCreate) Save(ctx context.Context) (*AnalysisDetail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisDetailCreate) SaveX(ctx context.Context) *AnalysisDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisDetailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisDetailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisDetailCreate) defaults() {
	if _, ok := _c.mutation.ReferenceRange(); !ok {
		v := analysisdetail.DefaultReferenceRange
		_c.mutation.SetReferenceRange(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisdetail.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analysisdetail.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisDetailCreate) check() error {
	if _, ok := _c.mutation.AnalysisID(); !ok {
		return &ValidationError{Name: "analysis_id", err: errors.New(`ent: missing required field "AnalysisDetail.analysis_id"`)}
	}
	if _, ok := _c.mutation.ParameterName(); !ok {
		return &ValidationError{Name: "parameter_name", err: errors.New(`ent: missing required field "AnalysisDetail.parameter_name"`)}
	}
	if v, ok := _c.mutation.ParameterName(); ok {
		if err := analysisdetail.ParameterNameValidator(v); err != nil {
			return &ValidationError{Name: "parameter_name", err: fmt.Errorf(`ent: validator failed for field "AnalysisDetail.parameter_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Unit(); ok {
		if err := analysisdetail.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "AnalysisDetail.unit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReferenceRange(); !ok {
		return &ValidationError{Name: "reference_range", err: errors.New(`ent: missing required field "AnalysisDetail.reference_range"`)}
	}
	if v, ok := _c.mutation.ReferenceRange(); ok {
		if err := analysisdetail.ReferenceRangeValidator(v); err != nil {
			return &ValidationError{Name: "reference_range", err: fmt.Errorf(`ent: validator failed for field "AnalysisDetail.reference_range": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnalysisDetail.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysisdetail.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisDetail.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisDetail.created_at"`)}
	}
	if len(_c.mutation.AnalysisIDs()) == 0 {
		return &ValidationError{Name: "analysis", err: errors.New(`ent: missing required edge "AnalysisDetail.analysis"`)}
	}
	return nil
}

func (_c *AnalysisDetailCreate) sqlSave(ctx context.Context) (*AnalysisDetail, error) {
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

func (_c *AnalysisDetailCreate) createSpec() (*AnalysisDetail, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisDetail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisdetail.Table, sqlgraph.NewFieldSpec(analysisdetail.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ParameterName(); ok {
		_spec.SetField(analysisdetail.FieldParameterName, field.TypeString, value)
		_node.ParameterName = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(analysisdetail.FieldValue, field.TypeFloat64, value)
		_node.Value = &value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(analysisdetail.FieldUnit, field.TypeString, value)
		_node.Unit = &value
	}
	if value, ok := _c.mutation.ReferenceRange(); ok {
		_spec.SetField(analysisdetail.FieldReferenceRange, field.TypeString, value)
		_node.ReferenceRange = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysisdetail.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisdetail.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AnalysisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisdetail.AnalysisTable,
			Columns: []string{analysisdetail.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AnalysisID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisDetailCreateBulk is the builder for creating many AnalysisDetail entities in bulk.
type AnalysisDetailCreateBulk struct {
	config
	err      error
	builders []*AnalysisDetailCreate
}

// Save creates the AnalysisDetail entities in the database.
func (_c *AnalysisDetailCreateBulk) Save(ctx context.Context) ([]*AnalysisDetail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisDetail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisDetailMutation)
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
func (_c *AnalysisDetailCreateBulk) SaveX(ctx context.Context) []*AnalysisDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisDetailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisDetailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
