package progress

import (
	"context"
	"testing"

	"github.com/coursewell/coursewell/internal/script"
	"github.com/coursewell/coursewell/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func putLesson(t *testing.T, s *store.Store, id, courseID string, chapter int) *store.Lesson {
	t.Helper()
	sc, err := script.New([]script.Step{
		{Kind: script.KindContent, Text: "body"},
		{Kind: script.KindEnd},
	})
	if err != nil {
		t.Fatalf("build script: %v", err)
	}
	l := &store.Lesson{ID: id, CourseID: courseID, Title: "Ch", Chapter: chapter,
		RawScript: "body", Script: sc}
	if err := s.LessonRepo().Put(context.Background(), l); err != nil {
		t.Fatalf("put lesson: %v", err)
	}
	return l
}

func TestRecordLessonCompleteNextChapter(t *testing.T) {
	s := openTestStore(t)
	ch1 := putLesson(t, s, "l1", "c1", 1)
	putLesson(t, s, "l2", "c1", 2)

	tracker := NewTracker(s.EnrollmentRepo(), s.LessonRepo())
	sum, err := tracker.RecordLessonComplete(context.Background(), "learner-1", ch1)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if sum.NextChapterURL != "/course/c1/2" {
		t.Errorf("next chapter url = %q", sum.NextChapterURL)
	}
	if sum.CertificateURL != "" {
		t.Errorf("certificate url = %q, want empty", sum.CertificateURL)
	}

	enr, err := s.EnrollmentRepo().Get(context.Background(), "learner-1", "c1")
	if err != nil {
		t.Fatalf("get enrollment: %v", err)
	}
	if enr.LastCompletedChapter != 1 {
		t.Errorf("last completed = %d, want 1", enr.LastCompletedChapter)
	}
}

func TestRecordLessonCompleteCertificate(t *testing.T) {
	s := openTestStore(t)
	putLesson(t, s, "l1", "c1", 1)
	ch2 := putLesson(t, s, "l2", "c1", 2)

	tracker := NewTracker(s.EnrollmentRepo(), s.LessonRepo())
	ctx := context.Background()

	sum, err := tracker.RecordLessonComplete(ctx, "learner-1", ch2)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if sum.CertificateURL != "/course/c1/certificate" {
		t.Errorf("certificate url = %q", sum.CertificateURL)
	}
	if sum.NextChapterURL != "" {
		t.Errorf("next chapter url = %q, want empty", sum.NextChapterURL)
	}

	// Repeating the last chapter keeps resolving the certificate.
	sum, err = tracker.RecordLessonComplete(ctx, "learner-1", ch2)
	if err != nil {
		t.Fatalf("record repeat: %v", err)
	}
	if sum.CertificateURL == "" {
		t.Error("certificate url should persist on repeat")
	}
}

func TestRecordLessonCompleteEarlierChapterOfDoneCourse(t *testing.T) {
	s := openTestStore(t)
	ch1 := putLesson(t, s, "l1", "c1", 1)
	ch2 := putLesson(t, s, "l2", "c1", 2)

	tracker := NewTracker(s.EnrollmentRepo(), s.LessonRepo())
	ctx := context.Background()

	if _, err := tracker.RecordLessonComplete(ctx, "learner-1", ch2); err != nil {
		t.Fatalf("record ch2: %v", err)
	}
	sum, err := tracker.RecordLessonComplete(ctx, "learner-1", ch1)
	if err != nil {
		t.Fatalf("record ch1: %v", err)
	}
	if sum.NextChapterURL != "/course/c1/2" {
		t.Errorf("next chapter url = %q", sum.NextChapterURL)
	}
}
