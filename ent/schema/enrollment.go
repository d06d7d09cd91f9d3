package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Enrollment tracks a learner's progress through a course: the highest
// chapter completed and, once the final chapter is done, the completion
// timestamp that unlocks the certificate.
type Enrollment struct {
	ent.Schema
}

func (Enrollment) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("course_id").
			NotEmpty(),
		field.Int("last_completed_chapter").
			Default(0),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Enrollment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "course_id").Unique(),
	}
}
