package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MedicalRecord is one clinic visit entry belonging to a patient.
type MedicalRecord struct {
	ent.Schema
}

func (MedicalRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeStampedMixin{},
	}
}

func (MedicalRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("patient_id").
			Comment("FK → patients.id"),

		field.Time("visit_date"),

		field.Text("diagnosis").
			NotEmpty(),

		field.Text("prescription").
			NotEmpty(),
	}
}

func (MedicalRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("records").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (MedicalRecord) Indexes() []ent.Index {
	return []ent.Index{
		// Supports the per-patient list ordered by visit_date.
		index.Fields("patient_id", "visit_date"),
	}
}
