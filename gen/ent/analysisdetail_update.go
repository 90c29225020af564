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
	"github.com/santescan/santescan/gen/ent/analysis"
	"github.com/santescan/santescan/gen/ent/analysisdetail"
	"github.com/santescan/santescan/gen/ent/predicate"
)

// AnalysisDetailUpdate is the builder for updating AnalysisDetail entities.
type AnalysisDetailUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisDetailMutation
}

// Where appends a list predicates to the AnalysisDetailUpdate builder.
func (_u *AnalysisDetailUpdate) Where(ps ...predicate.AnalysisDetail) *AnalysisDetailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *AnalysisDetailUpdate) SetAnalysisID(v uuid.UUID) *AnalysisDetailUpdate {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *AnalysisDetailUpdate) SetNillableAnalysisID(v *uuid.UUID) *AnalysisDetailUpdate {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// SetParameterName sets the "parameter_name" field.
func (_u *AnalysisDetailUpdate) SetParameterName(v string) *AnalysisDetailUpdate {
	_u.mutation.SetParameterName(v)
	return _u
}

// SetNillableParameterName sets the "parameter_name" field if the given value is not nil.
func (_u *AnalysisDetailUpdate) SetNillableParameterName(v *string) *AnalysisDetailUpdate {
	if v != nil {
		_u.SetParameterName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *AnalysisDetailUpdate) SetValue(v float64) *AnalysisDetailUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *AnalysisDetailUpdate) SetNillableValue(v *float64) *AnalysisDetailUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *AnalysisDetailUpdate) AddValue(v float64) *AnalysisDetailUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *AnalysisDetailUpdate) ClearValue() *AnalysisDetailUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *AnalysisDetailUpdate) SetUnit(v string) *AnalysisDetailUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *AnalysisDetailUpdate) SetNillableUnit(v *string) *AnalysisDetailUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *AnalysisDetailUpdate) ClearUnit() *AnalysisDetailUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetReferenceRange sets the "reference_range" field.
func (_u *AnalysisDetailUpdate) SetReferenceRange(v string) *AnalysisDetailUpdate {
	_u.mutation.SetReferenceRange(v)
	return _u
}

// SetNillableReferenceRange sets the "reference_range" field if the given value is not nil.
func (_u *AnalysisDetailUpdate) SetNillableReferenceRange(v *string) *AnalysisDetailUpdate {
	if v != nil {
		_u.SetReferenceRange(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisDetailUpdate) SetStatus(v string) *AnalysisDetailUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisDetailUpdate) SetNillableStatus(v *string) *AnalysisDetailUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalysisDetailUpdate) SetCreatedAt(v time.Time) *AnalysisDetailUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalysisDetailUpdate) SetNillableCreatedAt(v *time.Time) *AnalysisDetailUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAnalysis sets the "analysis" edge to the Analysis entity.
func (_u *AnalysisDetailUpdate) SetAnalysis(v *Analysis) *AnalysisDetailUpdate {
	return _u.SetAnalysisID(v.ID)
}

// Mutation returns the AnalysisDetailMutation object of the builder.
func (_u *AnalysisDetailUpdate) Mutation() *AnalysisDetailMutation {
	return _u.mutation
}

// ClearAnalysis clears the "analysis" edge to the Analysis entity.
func (_u *AnalysisDetailUpdate) ClearAnalysis() *AnalysisDetailUpdate {
	_u.mutation.ClearAnalysis()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisDetailUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisDetailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisDetailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisDetailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisDetailUpdate) check() error {
	if v, ok := _u.mutation.ParameterName(); ok {
		if err := analysisdetail.ParameterNameValidator(v); err != nil {
			return &ValidationError{Name: "parameter_name", err: fmt.Errorf(`ent: validator failed for field "AnalysisDetail.parameter_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := analysisdetail.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "AnalysisDetail.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReferenceRange(); ok {
		if err := analysisdetail.ReferenceRangeValidator(v); err != nil {
			return &ValidationError{Name: "reference_range", err: fmt.Errorf(`ent: validator failed for field "AnalysisDetail.reference_range": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisdetail.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisDetail.status": %w`, err)}
		}
	}
	if _u.mutation.AnalysisCleared() && len(_u.mutation.AnalysisIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisDetail.analysis"`)
	}
	return nil
}

func (_u *AnalysisDetailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisdetail.Table, analysisdetail.Columns, sqlgraph.NewFieldSpec(analysisdetail.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParameterName(); ok {
		_spec.SetField(analysisdetail.FieldParameterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(analysisdetail.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(analysisdetail.FieldValue, field.TypeFloat64, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(analysisdetail.FieldValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(analysisdetail.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(analysisdetail.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceRange(); ok {
		_spec.SetField(analysisdetail.FieldReferenceRange, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisdetail.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analysisdetail.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalysisCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisdetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisDetailUpdateOne is the builder for updating a single AnalysisDetail entity.
type AnalysisDetailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisDetailMutation
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *AnalysisDetailUpdateOne) SetAnalysisID(v uuid.UUID) *AnalysisDetailUpdateOne {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *AnalysisDetailUpdateOne) SetNillableAnalysisID(v *uuid.UUID) *AnalysisDetailUpdateOne {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// SetParameterName sets the "parameter_name" field.
func (_u *AnalysisDetailUpdateOne) SetParameterName(v string) *AnalysisDetailUpdateOne {
	_u.mutation.SetParameterName(v)
	return _u
}

// SetNillableParameterName sets the "parameter_name" field if the given value is not nil.
func (_u *AnalysisDetailUpdateOne) SetNillableParameterName(v *string) *AnalysisDetailUpdateOne {
	if v != nil {
		_u.SetParameterName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *AnalysisDetailUpdateOne) SetValue(v float64) *AnalysisDetailUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *AnalysisDetailUpdateOne) SetNillableValue(v *float64) *AnalysisDetailUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *AnalysisDetailUpdateOne) AddValue(v float64) *AnalysisDetailUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *AnalysisDetailUpdateOne) ClearValue() *AnalysisDetailUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *AnalysisDetailUpdateOne) SetUnit(v string) *AnalysisDetailUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *AnalysisDetailUpdateOne) SetNillableUnit(v *string) *AnalysisDetailUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *AnalysisDetailUpdateOne) ClearUnit() *AnalysisDetailUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetReferenceRange sets the "reference_range" field.
func (_u *AnalysisDetailUpdateOne) SetReferenceRange(v string) *AnalysisDetailUpdateOne {
	_u.mutation.SetReferenceRange(v)
	return _u
}

// SetNillableReferenceRange sets the "reference_range" field if the given value is not nil.
func (_u *AnalysisDetailUpdateOne) SetNillableReferenceRange(v *string) *AnalysisDetailUpdateOne {
	if v != nil {
		_u.SetReferenceRange(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisDetailUpdateOne) SetStatus(v string) *AnalysisDetailUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisDetailUpdateOne) SetNillableStatus(v *string) *AnalysisDetailUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalysisDetailUpdateOne) SetCreatedAt(v time.Time) *AnalysisDetailUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalysisDetailUpdateOne) SetNillableCreatedAt(v *time.Time) *AnalysisDetailUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAnalysis sets the "analysis" edge to the Analysis entity.
func (_u *AnalysisDetailUpdateOne) SetAnalysis(v *Analysis) *AnalysisDetailUpdateOne {
	return _u.SetAnalysisID(v.ID)
}

// Mutation returns the AnalysisDetailMutation object of the builder.
func (_u *AnalysisDetailUpdateOne) Mutation() *AnalysisDetailMutation {
	return _u.mutation
}

// ClearAnalysis clears the "analysis" edge to the Analysis entity.
func (_u *AnalysisDetailUpdateOne) ClearAnalysis() *AnalysisDetailUpdateOne {
	_u.mutation.ClearAnalysis()
	return _u
}

// Where appends a list predicates to the AnalysisDetailUpdate builder.
func (_u *AnalysisDetailUpdateOne) Where(ps ...predicate.AnalysisDetail) *AnalysisDetailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisDetailUpdateOne) Select(field string, fields ...string) *AnalysisDetailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisDetail entity.
func (_u *AnalysisDetailUpdateOne) Save(ctx context.Context) (*AnalysisDetail, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisDetailUpdateOne) SaveX(ctx context.Context) *AnalysisDetail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisDetailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisDetailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisDetailUpdateOne) check() error {
	if v, ok := _u.mutation.ParameterName(); ok {
		if err := analysisdetail.ParameterNameValidator(v); err != nil {
			return &ValidationError{Name: "parameter_name", err: fmt.Errorf(`ent: validator failed for field "AnalysisDetail.parameter_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := analysisdetail.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "AnalysisDetail.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReferenceRange(); ok {
		if err := analysisdetail.ReferenceRangeValidator(v); err != nil {
			return &ValidationError{Name: "reference_range", err: fmt.Errorf(`ent: validator failed for field "AnalysisDetail.reference_range": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisdetail.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisDetail.status": %w`, err)}
		}
	}
	if _u.mutation.AnalysisCleared() && len(_u.mutation.AnalysisIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisDetail.analysis"`)
	}
	return nil
}

func (_u *AnalysisDetailUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisDetail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisdetail.Table, analysisdetail.Columns, sqlgraph.NewFieldSpec(analysisdetail.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisDetail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisdetail.FieldID)
		for _, f := range fields {
			if !analysisdetail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisdetail.FieldID {
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
	if value, ok := _u.mutation.ParameterName(); ok {
		_spec.SetField(analysisdetail.FieldParameterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(analysisdetail.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(analysisdetail.FieldValue, field.TypeFloat64, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(analysisdetail.FieldValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(analysisdetail.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(analysisdetail.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceRange(); ok {
		_spec.SetField(analysisdetail.FieldReferenceRange, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisdetail.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analysisdetail.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalysisCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalysisDetail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisdetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
