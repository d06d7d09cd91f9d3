// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/coursewell/coursewell/ent/enrollment"
	"github.com/coursewell/coursewell/ent/predicate"
)

// EnrollmentUpdate is the builder for updating Enrollment entities.
type EnrollmentUpdate struct {
	config
	hooks    []Hook
	mutation *EnrollmentMutation
}

// Where appends a list predicates to the EnrollmentUpdate builder.
func (_u *EnrollmentUpdate) Where(ps ...predicate.Enrollment) *EnrollmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *EnrollmentUpdate) SetLearnerID(v string) *EnrollmentUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableLearnerID(v *string) *EnrollmentUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *EnrollmentUpdate) SetCourseID(v string) *EnrollmentUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableCourseID(v *string) *EnrollmentUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetLastCompletedChapter sets the "last_completed_chapter" field.
func (_u *EnrollmentUpdate) SetLastCompletedChapter(v int) *EnrollmentUpdate {
	_u.mutation.ResetLastCompletedChapter()
	_u.mutation.SetLastCompletedChapter(v)
	return _u
}

// SetNillableLastCompletedChapter sets the "last_completed_chapter" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableLastCompletedChapter(v *int) *EnrollmentUpdate {
	if v != nil {
		_u.SetLastCompletedChapter(*v)
	}
	return _u
}

// AddLastCompletedChapter adds value to the "last_completed_chapter" field.
func (_u *EnrollmentUpdate) AddLastCompletedChapter(v int) *EnrollmentUpdate {
	_u.mutation.AddLastCompletedChapter(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EnrollmentUpdate) SetCompletedAt(v time.Time) *EnrollmentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableCompletedAt(v *time.Time) *EnrollmentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EnrollmentUpdate) ClearCompletedAt() *EnrollmentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the EnrollmentMutation object of the builder.
func (_u *EnrollmentUpdate) Mutation() *EnrollmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnrollmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrollmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnrollmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrollmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrollmentUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := enrollment.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := enrollment.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.course_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EnrollmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrollment.Table, enrollment.Columns, sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(enrollment.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(enrollment.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastCompletedChapter(); ok {
		_spec.SetField(enrollment.FieldLastCompletedChapter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastCompletedChapter(); ok {
		_spec.AddField(enrollment.FieldLastCompletedChapter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(enrollment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(enrollment.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrollment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnrollmentUpdateOne is the builder for updating a single Enrollment entity.
type EnrollmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnrollmentMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *EnrollmentUpdateOne) SetLearnerID(v string) *EnrollmentUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableLearnerID(v *string) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *EnrollmentUpdateOne) SetCourseID(v string) *EnrollmentUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableCourseID(v *string) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetLastCompletedChapter sets the "last_completed_chapter" field.
func (_u *EnrollmentUpdateOne) SetLastCompletedChapter(v int) *EnrollmentUpdateOne {
	_u.mutation.ResetLastCompletedChapter()
	_u.mutation.SetLastCompletedChapter(v)
	return _u
}

// SetNillableLastCompletedChapter sets the "last_completed_chapter" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableLastCompletedChapter(v *int) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetLastCompletedChapter(*v)
	}
	return _u
}

// AddLastCompletedChapter adds value to the "last_completed_chapter" field.
func (_u *EnrollmentUpdateOne) AddLastCompletedChapter(v int) *EnrollmentUpdateOne {
	_u.mutation.AddLastCompletedChapter(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EnrollmentUpdateOne) SetCompletedAt(v time.Time) *EnrollmentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableCompletedAt(v *time.Time) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EnrollmentUpdateOne) ClearCompletedAt() *EnrollmentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the EnrollmentMutation object of the builder.
func (_u *EnrollmentUpdateOne) Mutation() *EnrollmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the EnrollmentUpdate builder.
func (_u *EnrollmentUpdateOne) Where(ps ...predicate.Enrollment) *EnrollmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnrollmentUpdateOne) Select(field string, fields ...string) *EnrollmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Enrollment entity.
func (_u *EnrollmentUpdateOne) Save(ctx context.Context) (*Enrollment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrollmentUpdateOne) SaveX(ctx context.Context) *Enrollment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnrollmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrollmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrollmentUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := enrollment.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseID(); ok {
		if err := enrollment.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.course_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EnrollmentUpdateOne) sqlSave(ctx context.Context) (_node *Enrollment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrollment.Table, enrollment.Columns, sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Enrollment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enrollment.FieldID)
		for _, f := range fields {
			if !enrollment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != enrollment.FieldID {
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
		_spec.SetField(enrollment.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(enrollment.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastCompletedChapter(); ok {
		_spec.SetField(enrollment.FieldLastCompletedChapter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastCompletedChapter(); ok {
		_spec.AddField(enrollment.FieldLastCompletedChapter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(enrollment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(enrollment.FieldCompletedAt, field.TypeTime)
	}
	_node = &Enrollment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrollment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
