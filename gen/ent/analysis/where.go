// Code generated by ent, DO NOT EDIT.

package analysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/santescan/santescan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldAccountID, v))
}

// SessionToken applies equality check predicate on the "session_token" field. It's identical to SessionTokenEQ.
func SessionToken(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldSessionToken, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldUploadedAt, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldRawText, v))
}

// AiSummary applies equality check predicate on the "ai_summary" field. It's identical to AiSummaryEQ.
func AiSummary(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldAiSummary, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldStatus, v))
}

// Disclaimer applies equality check predicate on the "disclaimer" field. It's identical to DisclaimerEQ.
func Disclaimer(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldDisclaimer, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...uuid.UUID) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldAccountID, vs...))
}

// SessionTokenEQ applies the EQ predicate on the "session_token" field.
func SessionTokenEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldSessionToken, v))
}

// SessionTokenNEQ applies the NEQ predicate on the "session_token" field.
func SessionTokenNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldSessionToken, v))
}

// SessionTokenIn applies the In predicate on the "session_token" field.
func SessionTokenIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldSessionToken, vs...))
}

// SessionTokenNotIn applies the NotIn predicate on the "session_token" field.
func SessionTokenNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldSessionToken, vs...))
}

// SessionTokenGT applies the GT predicate on the "session_token" field.
func SessionTokenGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldSessionToken, v))
}

// SessionTokenGTE applies the GTE predicate on the "session_token" field.
func SessionTokenGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldSessionToken, v))
}

// SessionTokenLT applies the LT predicate on the "session_token" field.
func SessionTokenLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldSessionToken, v))
}

// SessionTokenLTE applies the LTE predicate on the "session_token" field.
func SessionTokenLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldSessionToken, v))
}

// SessionTokenContains applies the Contains predicate on the "session_token" field.
func SessionTokenContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldSessionToken, v))
}

// SessionTokenHasPrefix applies the HasPrefix predicate on the "session_token" field.
func SessionTokenHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldSessionToken, v))
}

// SessionTokenHasSuffix applies the HasSuffix predicate on the "session_token" field.
func SessionTokenHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldSessionToken, v))
}

// SessionTokenIsNil applies the IsNil predicate on the "session_token" field.
func SessionTokenIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldSessionToken))
}

// SessionTokenNotNil applies the NotNil predicate on the "session_token" field.
func SessionTokenNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldSessionToken))
}

// SessionTokenEqualFold applies the EqualFold predicate on the "session_token" field.
func SessionTokenEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldSessionToken, v))
}

// SessionTokenContainsFold applies the ContainsFold predicate on the "session_token" field.
func SessionTokenContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldSessionToken, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldUploadedAt, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldRawText, v))
}

// AiSummaryEQ applies the EQ predicate on the "ai_summary" field.
func AiSummaryEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldAiSummary, v))
}

// AiSummaryNEQ applies the NEQ predicate on the "ai_summary" field.
func AiSummaryNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldAiSummary, v))
}

// AiSummaryIn applies the In predicate on the "ai_summary" field.
func AiSummaryIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldAiSummary, vs...))
}

// AiSummaryNotIn applies the NotIn predicate on the "ai_summary" field.
func AiSummaryNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldAiSummary, vs...))
}

// AiSummaryGT applies the GT predicate on the "ai_summary" field.
func AiSummaryGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldAiSummary, v))
}

// AiSummaryGTE applies the GTE predicate on the "ai_summary" field.
func AiSummaryGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldAiSummary, v))
}

// AiSummaryLT applies the LT predicate on the "ai_summary" field.
func AiSummaryLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldAiSummary, v))
}

// AiSummaryLTE applies the LTE predicate on the "ai_summary" field.
func AiSummaryLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldAiSummary, v))
}

// AiSummaryContains applies the Contains predicate on the "ai_summary" field.
func AiSummaryContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldAiSummary, v))
}

// AiSummaryHasPrefix applies the HasPrefix predicate on the "ai_summary" field.
func AiSummaryHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldAiSummary, v))
}

// AiSummaryHasSuffix applies the HasSuffix predicate on the "ai_summary" field.
func AiSummaryHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldAiSummary, v))
}

// AiSummaryIsNil applies the IsNil predicate on the "ai_summary" field.
func AiSummaryIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldAiSummary))
}

// AiSummaryNotNil applies the NotNil predicate on the "ai_summary" field.
func AiSummaryNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldAiSummary))
}

// AiSummaryEqualFold applies the EqualFold predicate on the "ai_summary" field.
func AiSummaryEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldAiSummary, v))
}

// AiSummaryContainsFold applies the ContainsFold predicate on the "ai_summary" field.
func AiSummaryContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldAiSummary, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldStatus, v))
}

// DisclaimerEQ applies the EQ predicate on the "disclaimer" field.
func DisclaimerEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldDisclaimer, v))
}

// DisclaimerNEQ applies the NEQ predicate on the "disclaimer" field.
func DisclaimerNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldDisclaimer, v))
}

// DisclaimerIn applies the In predicate on the "disclaimer" field.
func DisclaimerIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldDisclaimer, vs...))
}

// DisclaimerNotIn applies the NotIn predicate on the "disclaimer" field.
func DisclaimerNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldDisclaimer, vs...))
}

// DisclaimerGT applies the GT predicate on the "disclaimer" field.
func DisclaimerGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldDisclaimer, v))
}

// DisclaimerGTE applies the GTE predicate on the "disclaimer" field.
func DisclaimerGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldDisclaimer, v))
}

// DisclaimerLT applies the LT predicate on the "disclaimer" field.
func DisclaimerLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldDisclaimer, v))
}

// DisclaimerLTE applies the LTE predicate on the "disclaimer" field.
func DisclaimerLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldDisclaimer, v))
}

// DisclaimerContains applies the Contains predicate on the "disclaimer" field.
func DisclaimerContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldDisclaimer, v))
}

// DisclaimerHasPrefix applies the HasPrefix predicate on the "disclaimer" field.
func DisclaimerHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldDisclaimer, v))
}

// DisclaimerHasSuffix applies the HasSuffix predicate on the "disclaimer" field.
func DisclaimerHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldDisclaimer, v))
}

// DisclaimerEqualFold applies the EqualFold predicate on the "disclaimer" field.
func DisclaimerEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldDisclaimer, v))
}

// DisclaimerContainsFold applies the ContainsFold predicate on the "disclaimer" field.
func DisclaimerContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldDisclaimer, v))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDetails applies the HasEdge predicate on the "details" edge.
func HasDetails() predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DetailsTable, DetailsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDetailsWith applies the HasEdge predicate on the "details" edge with a given conditions (other predicates).
func HasDetailsWith(preds ...predicate.AnalysisDetail) predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := newDetailsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.NotPredicates(p))
}
