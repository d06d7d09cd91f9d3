package progress

import (
	"context"
	"fmt"

	"github.com/coursewell/coursewell/internal/store"
)

// Completion is what the dispatcher calls when a session reaches the end
// of a lesson. It records course progress and resolves the actions the
// learner can take next.
type Completion interface {
	RecordLessonComplete(ctx context.Context, learnerID string, lesson *store.Lesson) (*Summary, error)
}

// Summary is the end-of-lesson action set. At most one of the URLs is
// set: the certificate once the whole course is done, the next chapter
// otherwise, neither when the course has no further chapters yet.
type Summary struct {
	NextChapterURL string
	CertificateURL string
}

// Tracker implements Completion over the enrollment and lesson repos.
type Tracker struct {
	enrollments store.EnrollmentRepo
	lessons     store.LessonRepo
}

// NewTracker creates a Tracker.
func NewTracker(enrollments store.EnrollmentRepo, lessons store.LessonRepo) *Tracker {
	return &Tracker{enrollments: enrollments, lessons: lessons}
}

func (t *Tracker) RecordLessonComplete(ctx context.Context, learnerID string, lesson *store.Lesson) (*Summary, error) {
	total, err := t.lessons.ChapterCount(ctx, lesson.CourseID)
	if err != nil {
		return nil, fmt.Errorf("chapter count: %w", err)
	}

	enr, err := t.enrollments.RecordCompletion(ctx, learnerID, lesson.CourseID, lesson.Chapter, total)
	if err != nil {
		return nil, fmt.Errorf("record completion: %w", err)
	}

	if enr.CompletedAt != nil && lesson.Chapter >= total {
		return &Summary{CertificateURL: fmt.Sprintf("/course/%s/certificate", lesson.CourseID)}, nil
	}
	if lesson.Chapter < total {
		return &Summary{NextChapterURL: fmt.Sprintf("/course/%s/%d", lesson.CourseID, lesson.Chapter+1)}, nil
	}
	return &Summary{}, nil
}
