package store

import (
	"context"
	"fmt"

	"github.com/coursewell/coursewell/ent"
	"github.com/coursewell/coursewell/ent/lesson"
	entschema "github.com/coursewell/coursewell/ent/schema"
	"github.com/coursewell/coursewell/internal/script"
)

// lessonRepo implements LessonRepo using the ent client.
type lessonRepo struct {
	client *ent.Client
}

func (r *lessonRepo) Get(ctx context.Context, id string) (*Lesson, error) {
	row, err := r.client.Lesson.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("lesson %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	return entLessonToLesson(row)
}

func (r *lessonRepo) Put(ctx context.Context, l *Lesson) error {
	records := stepsToRecords(l.Script.Steps())

	err := r.client.Lesson.UpdateOneID(l.ID).
		SetCourseID(l.CourseID).
		SetTitle(l.Title).
		SetChapterNumber(l.Chapter).
		SetRawScript(l.RawScript).
		SetSteps(records).
		Exec(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("update lesson: %w", err)
	}

	err = r.client.Lesson.Create().
		SetID(l.ID).
		SetCourseID(l.CourseID).
		SetTitle(l.Title).
		SetChapterNumber(l.Chapter).
		SetRawScript(l.RawScript).
		SetSteps(records).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create lesson: %w", err)
	}
	return nil
}

func (r *lessonRepo) NextChapterNumber(ctx context.Context, courseID string) (int, error) {
	last, err := r.client.Lesson.Query().
		Where(lesson.CourseID(courseID)).
		Order(ent.Desc(lesson.FieldChapterNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("next chapter number: %w", err)
	}
	return last.ChapterNumber + 1, nil
}

func (r *lessonRepo) ByChapter(ctx context.Context, courseID string, chapter int) (*Lesson, error) {
	row, err := r.client.Lesson.Query().
		Where(
			lesson.CourseID(courseID),
			lesson.ChapterNumber(chapter),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("course %s chapter %d: %w", courseID, chapter, ErrNotFound)
		}
		return nil, fmt.Errorf("lesson by chapter: %w", err)
	}
	return entLessonToLesson(row)
}

func (r *lessonRepo) ChapterCount(ctx context.Context, courseID string) (int, error) {
	n, err := r.client.Lesson.Query().
		Where(lesson.CourseID(courseID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("chapter count: %w", err)
	}
	return n, nil
}

func entLessonToLesson(row *ent.Lesson) (*Lesson, error) {
	steps := make([]script.Step, len(row.Steps))
	for i, rec := range row.Steps {
		steps[i] = recordToStep(rec)
	}
	compiled, err := script.New(steps)
	if err != nil {
		return nil, fmt.Errorf("lesson %s has invalid steps: %w", row.ID, err)
	}
	return &Lesson{
		ID:        row.ID,
		CourseID:  row.CourseID,
		Title:     row.Title,
		Chapter:   row.ChapterNumber,
		RawScript: row.RawScript,
		Script:    compiled,
	}, nil
}

func stepsToRecords(steps []script.Step) []entschema.StepRecord {
	out := make([]entschema.StepRecord, len(steps))
	for i, s := range steps {
		rec := entschema.StepRecord{
			Index:      s.Index,
			Kind:       string(s.Kind),
			Text:       s.Text,
			AltText:    s.AltText,
			MediaURL:   s.MediaURL,
			Question:   s.Question,
			CorrectKey: s.CorrectKey,
			Keywords:   s.Keywords,
		}
		for _, o := range s.Options {
			rec.Options = append(rec.Options, entschema.OptionRecord{Key: o.Key, Text: o.Text})
		}
		out[i] = rec
	}
	return out
}

func recordToStep(rec entschema.StepRecord) script.Step {
	s := script.Step{
		Index:      rec.Index,
		Kind:       script.Kind(rec.Kind),
		Text:       rec.Text,
		AltText:    rec.AltText,
		MediaURL:   rec.MediaURL,
		Question:   rec.Question,
		CorrectKey: rec.CorrectKey,
		Keywords:   rec.Keywords,
	}
	for _, o := range rec.Options {
		s.Options = append(s.Options, script.Option{Key: o.Key, Text: o.Text})
	}
	return s
}
