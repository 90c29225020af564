// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/santescan/santescan/gen/ent/analysisdetail"
	"github.com/santescan/santescan/gen/ent/predicate"
)

// AnalysisDetailDelete is the builder for deleting a AnalysisDetail entity.
type AnalysisDetailDelete struct {
	config
	hooks    []Hook
	mutation *AnalysisDetailMutation
}

// Where appends a list predicates to the AnalysisDetailDelete builder.
func (_d *AnalysisDetailDelete) Where(ps ...predicate.AnalysisDetail) *AnalysisDetailDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalysisDetailDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisDetailDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalysisDetailDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analysisdetail.Table, sqlgraph.NewFieldSpec(analysisdetail.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnalysisDetailDeleteOne is the builder for deleting a single AnalysisDetail entity.
type AnalysisDetailDeleteOne struct {
	_d *AnalysisDetailDelete
}

// Where appends a list predicates to the AnalysisDetailDelete builder.
func (_d *AnalysisDetailDeleteOne) Where(ps ...predicate.AnalysisDetail) *AnalysisDetailDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalysisDetailDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analysisdetail.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisDetailDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
