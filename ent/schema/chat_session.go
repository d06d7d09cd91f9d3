package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatSession is the per-(learner, lesson) conversation state: the step
// pointer, the turn history, and the checkpoint log that makes
// delete-last-turn exact.
type ChatSession struct {
	ent.Schema
}

// Turn is the serialized form of one utterance in a session's history.
type Turn struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Checkpoint is the pre-transition snapshot recorded by each dispatch
// round. PendingQuestion is the step index of the question awaiting an
// answer at checkpoint time, nil when none.
type Checkpoint struct {
	StepIndex       int  `json:"step_index"`
	PendingQuestion *int `json:"pending_question"`
	HistoryLen      int  `json:"history_len"`
}

func (ChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Learner identity supplied by the transport layer"),
		field.String("lesson_id").
			NotEmpty().
			Comment("UUID of the lesson the session runs against"),
		field.Int("current_step").
			Default(0).
			Comment("Pointer into the compiled lesson script"),
		field.Int("pending_question").
			Optional().
			Nillable().
			Comment("Step index of the question awaiting an answer"),
		field.JSON("history", []Turn{}).
			Optional().
			Comment("Ordered turn history"),
		field.JSON("checkpoints", []Checkpoint{}).
			Optional().
			Comment("Bounded trailing log of pre-transition checkpoints"),
		field.Int64("version").
			Default(1).
			Comment("Optimistic-concurrency version, bumped on every save"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ChatSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "lesson_id").Unique(),
	}
}
