// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/santescan/santescan/gen/ent/account"
	"github.com/santescan/santescan/gen/ent/analysis"
)

// Analysis is the model entity for the Analysis schema.
type Analysis struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID uuid.UUID `json:"account_id,omitempty"`
	// SessionToken holds the value of the "session_token" field.
	SessionToken *string `json:"session_token,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// AiSummary holds the value of the "ai_summary" field.
	AiSummary *string `json:"ai_summary,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Disclaimer holds the value of the "disclaimer" field.
	Disclaimer string `json:"disclaimer,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisQuery when eager-loading is set.
	Edges        AnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisEdges holds the relations/edges for other nodes in the graph.
type AnalysisEdges struct {
	// Account holds the value of the account edge.
	Account *Account `json:"account,omitempty"`
	// Details holds the value of the details edge.
	Details []*AnalysisDetail `json:"details,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisEdges) AccountOrErr() (*Account, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: account.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// DetailsOrErr returns the Details value or an error if the edge
// was not loaded in eager-loading.
func (e AnalysisEdges) DetailsOrErr() ([]*AnalysisDetail, error) {
	if e.loadedTypes[1] {
		return e.Details, nil
	}
	return nil, &NotLoadedError{edge: "details"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Analysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysis.FieldSessionToken, analysis.FieldRawText, analysis.FieldAiSummary, analysis.FieldStatus, analysis.FieldDisclaimer:
			values[i] = new(sql.NullString)
		case analysis.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case analysis.FieldID, analysis.FieldAccountID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Analysis fields.
func (_m *Analysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysis.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case analysis.FieldAccountID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value != nil {
				_m.AccountID = *value
			}
		case analysis.FieldSessionToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_token", values[i])
			} else if value.Valid {
				_m.SessionToken = new(string)
				*_m.SessionToken = value.String
			}
		case analysis.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		case analysis.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case analysis.FieldAiSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_summary", values[i])
			} else if value.Valid {
				_m.AiSummary = new(string)
				*_m.AiSummary = value.String
			}
		case analysis.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case analysis.FieldDisclaimer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field disclaimer", values[i])
			} else if value.Valid {
				_m.Disclaimer = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Analysis.
// This includes values selected through modifiers, order, etc.
func (_m *Analysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAccount queries the "account" edge of the Analysis entity.
func (_m *Analysis) QueryAccount() *AccountQuery {
	return NewAnalysisClient(_m.config).QueryAccount(_m)
}

// QueryDetails queries the "details" edge of the Analysis entity.
func (_m *Analysis) QueryDetails() *AnalysisDetailQuery {
	return NewAnalysisClient(_m.config).QueryDetails(_m)
}

// Update returns a builder for updating this Analysis.
// Note that you need to call Analysis.Unwrap() before calling this method if this Analysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Analysis) Update() *AnalysisUpdateOne {
	return NewAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Analysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Analysis) Unwrap() *Analysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Analysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Analysis) String() string {
	var builder strings.Builder
	builder.WriteString("Analysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccountID))
	builder.WriteString(", ")
	if v := _m.SessionToken; v != nil {
		builder.WriteString("session_token=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	if v := _m.AiSummary; v != nil {
		builder.WriteString("ai_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("disclaimer=")
	builder.WriteString(_m.Disclaimer)
	builder.WriteByte(')')
	return builder.String()
}

// Analyses is a parsable slice of Analysis.
type Analyses []*Analysis
