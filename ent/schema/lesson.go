package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson is one published chapter of a course: the raw authored script
// plus its compiled step sequence. The compiled steps are immutable from
// the engine's point of view; re-authoring replaces them wholesale.
type Lesson struct {
	ent.Schema
}

// StepRecord is the persisted form of one compiled lesson step.
type StepRecord struct {
	Index      int            `json:"index"`
	Kind       string         `json:"kind"`
	Text       string         `json:"text,omitempty"`
	AltText    string         `json:"alt_text,omitempty"`
	MediaURL   string         `json:"media_url,omitempty"`
	Question   string         `json:"question,omitempty"`
	Options    []OptionRecord `json:"options,omitempty"`
	CorrectKey string         `json:"correct_key,omitempty"`
	Keywords   []string       `json:"keywords,omitempty"`
}

// OptionRecord is one MCQ answer choice, order-preserving.
type OptionRecord struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned at authoring time"),
		field.String("course_id").
			NotEmpty().
			Comment("UUID of the owning course"),
		field.String("title").
			NotEmpty(),
		field.Int("chapter_number").
			Positive().
			Comment("1-based position within the course"),
		field.Text("raw_script").
			Comment("Authored markup as submitted"),
		field.JSON("steps", []StepRecord{}).
			Comment("Compiled step sequence, END step included"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "chapter_number").Unique(),
	}
}
