package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/santescan/santescan/constants"
)

type Account struct{ ent.Schema }

func (Account) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "accounts"},
	}
}

func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// Guests carry a synthetic guest_<token>@santescan.local address,
		// so a single unique index also enforces registered uniqueness.
		field.String("email").NotEmpty().Unique(),
		field.String("password_hash").NotEmpty(),
		field.Int("age").Default(0).Min(0),
		field.String("gender").Default("Non spécifié"),
		field.Bool("is_guest").Default(false),
		// At most one account may hold a token. NULL for registered
		// accounts; the constraint is the race guard for concurrent
		// guest creation.
		field.String("session_token").MaxLen(constants.MaxSessionTokenLen).Optional().Nillable().Unique(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Account) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("analyses", Analysis.Type),
	}
}
