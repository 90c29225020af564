// Code generated by ent, DO NOT EDIT.

package analysisdetail

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the analysisdetail type in the database.
	Label = "analysis_detail"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAnalysisID holds the string denoting the analysis_id field in the database.
	FieldAnalysisID = "analysis_id"
	// FieldParameterName holds the string denoting the parameter_name field in the database.
	FieldParameterName = "parameter_name"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldReferenceRange holds the string denoting the reference_range field in the database.
	FieldReferenceRange = "reference_range"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAnalysis holds the string denoting the analysis edge name in mutations.
	EdgeAnalysis = "analysis"
	// Table holds the table name of the analysisdetail in the database.
	Table = "analysis_details"
	// AnalysisTable is the table that holds the analysis relation/edge.
	AnalysisTable = "analysis_details"
	// AnalysisInverseTable is the table name for the Analysis entity.
	// It exists in this package in order to avoid circular dependency with the "analysis" package.
	AnalysisInverseTable = "analyses"
	// AnalysisColumn is the table column denoting the analysis relation/edge.
	AnalysisColumn = "analysis_id"
)

// Columns holds all SQL columns for analysisdetail fields.
var Columns = []string{
	FieldID,
	FieldAnalysisID,
	FieldParameterName,
	FieldValue,
	FieldUnit,
	FieldReferenceRange,
	FieldStatus,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ParameterNameValidator is a validator for the "parameter_name" field. It is called by the builders before save.
	ParameterNameValidator func(string) error
	// UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	UnitValidator func(string) error
	// DefaultReferenceRange holds the default value on creation for the "reference_range" field.
	DefaultReferenceRange string
	// ReferenceRangeValidator is a validator for the "reference_range" field. It is called by the builders before save.
	ReferenceRangeValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AnalysisDetail queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAnalysisID orders the results by the analysis_id field.
func ByAnalysisID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisID, opts...).ToFunc()
}

// ByParameterName orders the results by the parameter_name field.
func ByParameterName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParameterName, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByReferenceRange orders the results by the reference_range field.
func ByReferenceRange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceRange, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAnalysisField orders the results by analysis field.
func ByAnalysisField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysisStep(), sql.OrderByField(field, opts...))
	}
}
func newAnalysisStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysisInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnalysisTable, AnalysisColumn),
	)
}
