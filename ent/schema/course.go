package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Course groups lessons into an ordered sequence of chapters. Course
// authoring is managed elsewhere; the engine reads it only to resolve
// end-of-lesson actions.
type Course struct {
	ent.Schema
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.Bool("published").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
