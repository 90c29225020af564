// Code generated by ent, DO NOT EDIT.

package analysisdetail

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/santescan/santescan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldLTE(FieldID, id))
}

// AnalysisID applies equality check predicate on the "analysis_id" field. It's identical to AnalysisIDEQ.
func AnalysisID(v uuid.UUID) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldAnalysisID, v))
}

// ParameterName applies equality check predicate on the "parameter_name" field. It's identical to ParameterNameEQ.
func ParameterName(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldParameterName, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldValue, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldUnit, v))
}

// ReferenceRange applies equality check predicate on the "reference_range" field. It's identical to ReferenceRangeEQ.
func ReferenceRange(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldReferenceRange, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldCreatedAt, v))
}

// AnalysisIDEQ applies the EQ predicate on the "analysis_id" field.
func AnalysisIDEQ(v uuid.UUID) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldAnalysisID, v))
}

// AnalysisIDNEQ applies the NEQ predicate on the "analysis_id" field.
func AnalysisIDNEQ(v uuid.UUID) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNEQ(FieldAnalysisID, v))
}

// AnalysisIDIn applies the In predicate on the "analysis_id" field.
func AnalysisIDIn(vs ...uuid.UUID) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldIn(FieldAnalysisID, vs...))
}

// AnalysisIDNotIn applies the NotIn predicate on the "analysis_id" field.
func AnalysisIDNotIn(vs ...uuid.UUID) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNotIn(FieldAnalysisID, vs...))
}

// ParameterNameEQ applies the EQ predicate on the "parameter_name" field.
func ParameterNameEQ(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldParameterName, v))
}

// ParameterNameNEQ applies the NEQ predicate on the "parameter_name" field.
func ParameterNameNEQ(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNEQ(FieldParameterName, v))
}

// ParameterNameIn applies the In predicate on the "parameter_name" field.
func ParameterNameIn(vs ...string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldIn(FieldParameterName, vs...))
}

// ParameterNameNotIn applies the NotIn predicate on the "parameter_name" field.
func ParameterNameNotIn(vs ...string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNotIn(FieldParameterName, vs...))
}

// ParameterNameGT applies the GT predicate on the "parameter_name" field.
func ParameterNameGT(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldGT(FieldParameterName, v))
}

// ParameterNameGTE applies the GTE predicate on the "parameter_name" field.
func ParameterNameGTE(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldGTE(FieldParameterName, v))
}

// ParameterNameLT applies the LT predicate on the "parameter_name" field.
func ParameterNameLT(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldLT(FieldParameterName, v))
}

// ParameterNameLTE applies the LTE predicate on the "parameter_name" field.
func ParameterNameLTE(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldLTE(FieldParameterName, v))
}

// ParameterNameContains applies the Contains predicate on the "parameter_name" field.
func ParameterNameContains(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldContains(FieldParameterName, v))
}

// ParameterNameHasPrefix applies the HasPrefix predicate on the "parameter_name" field.
func ParameterNameHasPrefix(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldHasPrefix(FieldParameterName, v))
}

// ParameterNameHasSuffix applies the HasSuffix predicate on the "parameter_name" field.
func ParameterNameHasSuffix(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldHasSuffix(FieldParameterName, v))
}

// ParameterNameEqualFold applies the EqualFold predicate on the "parameter_name" field.
func ParameterNameEqualFold(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEqualFold(FieldParameterName, v))
}

// ParameterNameContainsFold applies the ContainsFold predicate on the "parameter_name" field.
func ParameterNameContainsFold(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldContainsFold(FieldParameterName, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldLTE(FieldValue, v))
}

// ValueIsNil applies the IsNil predicate on the "value" field.
func ValueIsNil() predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldIsNull(FieldValue))
}

// ValueNotNil applies the NotNil predicate on the "value" field.
func ValueNotNil() predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNotNull(FieldValue))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldContainsFold(FieldUnit, v))
}

// ReferenceRangeEQ applies the EQ predicate on the "reference_range" field.
func ReferenceRangeEQ(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldReferenceRange, v))
}

// ReferenceRangeNEQ applies the NEQ predicate on the "reference_range" field.
func ReferenceRangeNEQ(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNEQ(FieldReferenceRange, v))
}

// ReferenceRangeIn applies the In predicate on the "reference_range" field.
func ReferenceRangeIn(vs ...string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldIn(FieldReferenceRange, vs...))
}

// ReferenceRangeNotIn applies the NotIn predicate on the "reference_range" field.
func ReferenceRangeNotIn(vs ...string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNotIn(FieldReferenceRange, vs...))
}

// ReferenceRangeGT applies the GT predicate on the "reference_range" field.
func ReferenceRangeGT(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldGT(FieldReferenceRange, v))
}

// ReferenceRangeGTE applies the GTE predicate on the "reference_range" field.
func ReferenceRangeGTE(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldGTE(FieldReferenceRange, v))
}

// ReferenceRangeLT applies the LT predicate on the "reference_range" field.
func ReferenceRangeLT(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldLT(FieldReferenceRange, v))
}

// ReferenceRangeLTE applies the LTE predicate on the "reference_range" field.
func ReferenceRangeLTE(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldLTE(FieldReferenceRange, v))
}

// ReferenceRangeContains applies the Contains predicate on the "reference_range" field.
func ReferenceRangeContains(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldContains(FieldReferenceRange, v))
}

// ReferenceRangeHasPrefix applies the HasPrefix predicate on the "reference_range" field.
func ReferenceRangeHasPrefix(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldHasPrefix(FieldReferenceRange, v))
}

// ReferenceRangeHasSuffix applies the HasSuffix predicate on the "reference_range" field.
func ReferenceRangeHasSuffix(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldHasSuffix(FieldReferenceRange, v))
}

// ReferenceRangeEqualFold applies the EqualFold predicate on the "reference_range" field.
func ReferenceRangeEqualFold(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEqualFold(FieldReferenceRange, v))
}

// ReferenceRangeContainsFold applies the ContainsFold predicate on the "reference_range" field.
func ReferenceRangeContainsFold(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldContainsFold(FieldReferenceRange, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAnalysis applies the HasEdge predicate on the "analysis" edge.
func HasAnalysis() predicate.AnalysisDetail {
	return predicate.AnalysisDetail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnalysisTable, AnalysisColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalysisWith applies the HasEdge predicate on the "analysis" edge with a given conditions (other predicates).
func HasAnalysisWith(preds ...predicate.Analysis) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(func(s *sql.Selector) {
		step := newAnalysisStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisDetail) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisDetail) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisDetail) predicate.AnalysisDetail {
	return predicate.AnalysisDetail(sql.NotPredicates(p))
}
