package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/santescan/santescan/constants"
	"github.com/santescan/santescan/db/ent/schema/utils"
)

type Analysis struct{ ent.Schema }

func (Analysis) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analyses"},
	}
}

func (Analysis) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so ownership transfer is a plain column update
		field.UUID("account_id", uuid.UUID{}),
		// set iff the owning account was a guest at creation time and no
		// migration has occurred since; cleared by reconciliation
		field.String("session_token").MaxLen(constants.MaxSessionTokenLen).Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
		field.String("raw_text").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("ai_summary").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").Default(string(constants.AnalysisPending)).
			Validate(utils.EnumValidator(constants.AnalysisStatuses...)),
		field.String("disclaimer").Default(constants.MedicalDisclaimer).Immutable(),
	}
}

func (Analysis) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY analyses -> ONE account
		edge.From("account", Account.Type).
			Ref("analyses").
			Field("account_id").
			Required().
			Unique(),
		// ONE analysis -> MANY detail lines
		edge.To("details", AnalysisDetail.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Analysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_token"),
		index.Fields("account_id", "uploaded_at"),
	}
}
