// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/santescan/santescan/gen/ent/analysis"
	"github.com/santescan/santescan/gen/ent/analysisdetail"
)

// AnalysisDetail is the model entity for the AnalysisDetail schema.
type AnalysisDetail struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AnalysisID holds the value of the "analysis_id" field.
	AnalysisID uuid.UUID `json:"analysis_id,omitempty"`
	// ParameterName holds the value of the "parameter_name" field.
	ParameterName string `json:"parameter_name,omitempty"`
	// Value holds the value of the "value" field.
	Value *float64 `json:"value,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit *string `json:"unit,omitempty"`
	// ReferenceRange holds the value of the "reference_range" field.
	ReferenceRange string `json:"reference_range,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisDetailQuery when eager-loading is set.
	Edges        AnalysisDetailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisDetailEdges holds the relations/edges for other nodes in the graph.
type AnalysisDetailEdges struct {
	// Analysis holds the value of the analysis edge.
	Analysis *Analysis `json:"analysis,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AnalysisOrErr returns the Analysis value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisDetailEdges) AnalysisOrErr() (*Analysis, error) {
	if e.Analysis != nil {
		return e.Analysis, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: analysis.Label}
	}
	return nil, &NotLoadedError{edge: "analysis"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisDetail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisdetail.FieldValue:
			values[i] = new(sql.NullFloat64)
		case analysisdetail.FieldParameterName, analysisdetail.FieldUnit, analysisdetail.FieldReferenceRange, analysisdetail.FieldStatus:
			values[i] = new(sql.NullString)
		case analysisdetail.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case analysisdetail.FieldID, analysisdetail.FieldAnalysisID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisDetail fields.
func (_m *AnalysisDetail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisdetail.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case analysisdetail.FieldAnalysisID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_id", values[i])
			} else if value != nil {
				_m.AnalysisID = *value
			}
		case analysisdetail.FieldParameterName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parameter_name", values[i])
			} else if value.Valid {
				_m.ParameterName = value.String
			}
		case analysisdetail.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = new(float64)
				*_m.Value = value.Float64
			}
		case analysisdetail.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = new(string)
				*_m.Unit = value.String
			}
		case analysisdetail.FieldReferenceRange:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference_range", values[i])
			} else if value.Valid {
				_m.ReferenceRange = value.String
			}
		case analysisdetail.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case analysisdetail.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the AnalysisDetail.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisDetail) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnalysis queries the "analysis" edge of the AnalysisDetail entity.
func (_m *AnalysisDetail) QueryAnalysis() *AnalysisQuery {
	return NewAnalysisDetailClient(_m.config).QueryAnalysis(_m)
}

// Update returns a builder for updating this AnalysisDetail.
// Note that you need to call AnalysisDetail.Unwrap() before calling this method if this AnalysisDetail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisDetail) Update() *AnalysisDetailUpdateOne {
	return NewAnalysisDetailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisDetail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisDetail) Unwrap() *AnalysisDetail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisDetail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisDetail) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisDetail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("analysis_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisID))
	builder.WriteString(", ")
	builder.WriteString("parameter_name=")
	builder.WriteString(_m.ParameterName)
	builder.WriteString(", ")
	if v := _m.Value; v != nil {
		builder.WriteString("value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Unit; v != nil {
		builder.WriteString("unit=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("reference_range=")
	builder.WriteString(_m.ReferenceRange)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisDetails is a parsable slice of AnalysisDetail.
type AnalysisDetails []*AnalysisDetail
