// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/coursewell/coursewell/ent/chatsession"
	"github.com/coursewell/coursewell/ent/predicate"
	"github.com/coursewell/coursewell/ent/schema"
)

// ChatSessionUpdate is the builder for updating ChatSession entities.
type ChatSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ChatSessionMutation
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdate) Where(ps ...predicate.ChatSession) *ChatSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ChatSessionUpdate) SetLearnerID(v string) *ChatSessionUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableLearnerID(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ChatSessionUpdate) SetLessonID(v string) *ChatSessionUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableLessonID(v *string) *ChatSessionUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *ChatSessionUpdate) SetCurrentStep(v int) *ChatSessionUpdate {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableCurrentStep(v *int) *ChatSessionUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *ChatSessionUpdate) AddCurrentStep(v int) *ChatSessionUpdate {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetPendingQuestion sets the "pending_question" field.
func (_u *ChatSessionUpdate) SetPendingQuestion(v int) *ChatSessionUpdate {
	_u.mutation.ResetPendingQuestion()
	_u.mutation.SetPendingQuestion(v)
	return _u
}

// SetNillablePendingQuestion sets the "pending_question" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillablePendingQuestion(v *int) *ChatSessionUpdate {
	if v != nil {
		_u.SetPendingQuestion(*v)
	}
	return _u
}

// AddPendingQuestion adds value to the "pending_question" field.
func (_u *ChatSessionUpdate) AddPendingQuestion(v int) *ChatSessionUpdate {
	_u.mutation.AddPendingQuestion(v)
	return _u
}

// ClearPendingQuestion clears the value of the "pending_question" field.
func (_u *ChatSessionUpdate) ClearPendingQuestion() *ChatSessionUpdate {
	_u.mutation.ClearPendingQuestion()
	return _u
}

// SetHistory sets the "history" field.
func (_u *ChatSessionUpdate) SetHistory(v []schema.Turn) *ChatSessionUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *ChatSessionUpdate) AppendHistory(v []schema.Turn) *ChatSessionUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *ChatSessionUpdate) ClearHistory() *ChatSessionUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// SetCheckpoints sets the "checkpoints" field.
func (_u *ChatSessionUpdate) SetCheckpoints(v []schema.Checkpoint) *ChatSessionUpdate {
	_u.mutation.SetCheckpoints(v)
	return _u
}

// AppendCheckpoints appends value to the "checkpoints" field.
func (_u *ChatSessionUpdate) AppendCheckpoints(v []schema.Checkpoint) *ChatSessionUpdate {
	_u.mutation.AppendCheckpoints(v)
	return _u
}

// ClearCheckpoints clears the value of the "checkpoints" field.
func (_u *ChatSessionUpdate) ClearCheckpoints() *ChatSessionUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ChatSessionUpdate) SetVersion(v int64) *ChatSessionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ChatSessionUpdate) SetNillableVersion(v *int64) *ChatSessionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ChatSessionUpdate) AddVersion(v int64) *ChatSessionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSessionUpdate) SetUpdatedAt(v time.Time) *ChatSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdate) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatSessionUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := chatsession.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ChatSession.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := chatsession.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "ChatSession.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(chatsession.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(chatsession.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(chatsession.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(chatsession.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PendingQuestion(); ok {
		_spec.SetField(chatsession.FieldPendingQuestion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPendingQuestion(); ok {
		_spec.AddField(chatsession.FieldPendingQuestion, field.TypeInt, value)
	}
	if _u.mutation.PendingQuestionCleared() {
		_spec.ClearField(chatsession.FieldPendingQuestion, field.TypeInt)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(chatsession.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(chatsession.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.Checkpoints(); ok {
		_spec.SetField(chatsession.FieldCheckpoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCheckpoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldCheckpoints, value)
		})
	}
	if _u.mutation.CheckpointsCleared() {
		_spec.ClearField(chatsession.FieldCheckpoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(chatsession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(chatsession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatSessionUpdateOne is the builder for updating a single ChatSession entity.
type ChatSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatSessionMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ChatSessionUpdateOne) SetLearnerID(v string) *ChatSessionUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableLearnerID(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ChatSessionUpdateOne) SetLessonID(v string) *ChatSessionUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableLessonID(v *string) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *ChatSessionUpdateOne) SetCurrentStep(v int) *ChatSessionUpdateOne {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableCurrentStep(v *int) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *ChatSessionUpdateOne) AddCurrentStep(v int) *ChatSessionUpdateOne {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetPendingQuestion sets the "pending_question" field.
func (_u *ChatSessionUpdateOne) SetPendingQuestion(v int) *ChatSessionUpdateOne {
	_u.mutation.ResetPendingQuestion()
	_u.mutation.SetPendingQuestion(v)
	return _u
}

// SetNillablePendingQuestion sets the "pending_question" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillablePendingQuestion(v *int) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetPendingQuestion(*v)
	}
	return _u
}

// AddPendingQuestion adds value to the "pending_question" field.
func (_u *ChatSessionUpdateOne) AddPendingQuestion(v int) *ChatSessionUpdateOne {
	_u.mutation.AddPendingQuestion(v)
	return _u
}

// ClearPendingQuestion clears the value of the "pending_question" field.
func (_u *ChatSessionUpdateOne) ClearPendingQuestion() *ChatSessionUpdateOne {
	_u.mutation.ClearPendingQuestion()
	return _u
}

// SetHistory sets the "history" field.
func (_u *ChatSessionUpdateOne) SetHistory(v []schema.Turn) *ChatSessionUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *ChatSessionUpdateOne) AppendHistory(v []schema.Turn) *ChatSessionUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *ChatSessionUpdateOne) ClearHistory() *ChatSessionUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// SetCheckpoints sets the "checkpoints" field.
func (_u *ChatSessionUpdateOne) SetCheckpoints(v []schema.Checkpoint) *ChatSessionUpdateOne {
	_u.mutation.SetCheckpoints(v)
	return _u
}

// AppendCheckpoints appends value to the "checkpoints" field.
func (_u *ChatSessionUpdateOne) AppendCheckpoints(v []schema.Checkpoint) *ChatSessionUpdateOne {
	_u.mutation.AppendCheckpoints(v)
	return _u
}

// ClearCheckpoints clears the value of the "checkpoints" field.
func (_u *ChatSessionUpdateOne) ClearCheckpoints() *ChatSessionUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ChatSessionUpdateOne) SetVersion(v int64) *ChatSessionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ChatSessionUpdateOne) SetNillableVersion(v *int64) *ChatSessionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ChatSessionUpdateOne) AddVersion(v int64) *ChatSessionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSessionUpdateOne) SetUpdatedAt(v time.Time) *ChatSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_u *ChatSessionUpdateOne) Mutation() *ChatSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatSessionUpdate builder.
func (_u *ChatSessionUpdateOne) Where(ps ...predicate.ChatSession) *ChatSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatSessionUpdateOne) Select(field string, fields ...string) *ChatSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatSession entity.
func (_u *ChatSessionUpdateOne) Save(ctx context.Context) (*ChatSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) SaveX(ctx context.Context) *ChatSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatSessionUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := chatsession.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ChatSession.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := chatsession.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "ChatSession.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatSessionUpdateOne) sqlSave(ctx context.Context) (_node *ChatSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatsession.Table, chatsession.Columns, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatsession.FieldID)
		for _, f := range fields {
			if !chatsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(chatsession.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(chatsession.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(chatsession.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(chatsession.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PendingQuestion(); ok {
		_spec.SetField(chatsession.FieldPendingQuestion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPendingQuestion(); ok {
		_spec.AddField(chatsession.FieldPendingQuestion, field.TypeInt, value)
	}
	if _u.mutation.PendingQuestionCleared() {
		_spec.ClearField(chatsession.FieldPendingQuestion, field.TypeInt)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(chatsession.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(chatsession.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.Checkpoints(); ok {
		_spec.SetField(chatsession.FieldCheckpoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCheckpoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chatsession.FieldCheckpoints, value)
		})
	}
	if _u.mutation.CheckpointsCleared() {
		_spec.ClearField(chatsession.FieldCheckpoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(chatsession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(chatsession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ChatSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
