package store

import (
	"context"
	"fmt"
	"time"

	"github.com/coursewell/coursewell/ent"
	"github.com/coursewell/coursewell/ent/enrollment"
)

// enrollmentRepo implements EnrollmentRepo using the ent client.
type enrollmentRepo struct {
	client *ent.Client
}

func (r *enrollmentRepo) Get(ctx context.Context, learnerID, courseID string) (*Enrollment, error) {
	row, err := r.client.Enrollment.Query().
		Where(
			enrollment.LearnerID(learnerID),
			enrollment.CourseID(courseID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("enrollment %s/%s: %w", learnerID, courseID, ErrNotFound)
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return entEnrollmentToEnrollment(row), nil
}

func (r *enrollmentRepo) RecordCompletion(ctx context.Context, learnerID, courseID string, chapter, totalChapters int) (*Enrollment, error) {
	row, err := r.client.Enrollment.Query().
		Where(
			enrollment.LearnerID(learnerID),
			enrollment.CourseID(courseID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("load enrollment: %w", err)
	}

	if row == nil {
		create := r.client.Enrollment.Create().
			SetLearnerID(learnerID).
			SetCourseID(courseID).
			SetLastCompletedChapter(chapter)
		if chapter >= totalChapters {
			create.SetCompletedAt(time.Now())
		}
		row, err = create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create enrollment: %w", err)
		}
		return entEnrollmentToEnrollment(row), nil
	}

	// Progress never moves backwards; repeating an earlier chapter is a
	// no-op on the record.
	if chapter <= row.LastCompletedChapter {
		return entEnrollmentToEnrollment(row), nil
	}

	update := row.Update().SetLastCompletedChapter(chapter)
	if chapter >= totalChapters && row.CompletedAt == nil {
		update.SetCompletedAt(time.Now())
	}
	row, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update enrollment: %w", err)
	}
	return entEnrollmentToEnrollment(row), nil
}

func entEnrollmentToEnrollment(row *ent.Enrollment) *Enrollment {
	return &Enrollment{
		LearnerID:            row.LearnerID,
		CourseID:             row.CourseID,
		LastCompletedChapter: row.LastCompletedChapter,
		CompletedAt:          row.CompletedAt,
	}
}
