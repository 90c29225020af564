package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/santescan/santescan/constants"
	"github.com/santescan/santescan/db/ent/schema/utils"
)

type AnalysisDetail struct{ ent.Schema }

func (AnalysisDetail) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analysis_details"},
	}
}

func (AnalysisDetail) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("analysis_id", uuid.UUID{}),
		field.String("parameter_name").NotEmpty().MaxLen(100),
		field.Float("value").Optional().Nillable(),
		field.String("unit").MaxLen(50).Optional().Nillable(),
		field.String("reference_range").MaxLen(100).Default(""),
		field.String("status").
			Validate(utils.EnumValidator(constants.DetailStatuses...)),
		field.Time("created_at").Default(time.Now),
	}
}

func (AnalysisDetail) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("analysis", Analysis.Type).
			Ref("details").
			Field("analysis_id").
			Required().
			Unique(),
	}
}

func (AnalysisDetail) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("analysis_id"),
	}
}
