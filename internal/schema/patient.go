package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Patient is a person with a file at the clinic.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			NotEmpty().
			MaxLen(255),

		field.String("last_name").
			NotEmpty().
			MaxLen(255),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("records", MedicalRecord.Type),
	}
}
