// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/coursewell/coursewell/ent/chatsession"
	"github.com/coursewell/coursewell/ent/course"
	"github.com/coursewell/coursewell/ent/enrollment"
	"github.com/coursewell/coursewell/ent/lesson"
	"github.com/coursewell/coursewell/ent/llmrequestevent"
	"github.com/coursewell/coursewell/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescLearnerID is the schema descriptor for learner_id field.
	chatsessionDescLearnerID := chatsessionFields[0].Descriptor()
	// chatsession.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	chatsession.LearnerIDValidator = chatsessionDescLearnerID.Validators[0].(func(string) error)
	// chatsessionDescLessonID is the schema descriptor for lesson_id field.
	chatsessionDescLessonID := chatsessionFields[1].Descriptor()
	// chatsession.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	chatsession.LessonIDValidator = chatsessionDescLessonID.Validators[0].(func(string) error)
	// chatsessionDescCurrentStep is the schema descriptor for current_step field.
	chatsessionDescCurrentStep := chatsessionFields[2].Descriptor()
	// chatsession.DefaultCurrentStep holds the default value on creation for the current_step field.
	chatsession.DefaultCurrentStep = chatsessionDescCurrentStep.Default.(int)
	// chatsessionDescVersion is the schema descriptor for version field.
	chatsessionDescVersion := chatsessionFields[6].Descriptor()
	// chatsession.DefaultVersion holds the default value on creation for the version field.
	chatsession.DefaultVersion = chatsessionDescVersion.Default.(int64)
	// chatsessionDescUpdatedAt is the schema descriptor for updated_at field.
	chatsessionDescUpdatedAt := chatsessionFields[7].Descriptor()
	// chatsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatsession.DefaultUpdatedAt = chatsessionDescUpdatedAt.Default.(func() time.Time)
	// chatsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatsession.UpdateDefaultUpdatedAt = chatsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescTitle is the schema descriptor for title field.
	courseDescTitle := courseFields[1].Descriptor()
	// course.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	course.TitleValidator = courseDescTitle.Validators[0].(func(string) error)
	// courseDescPublished is the schema descriptor for published field.
	courseDescPublished := courseFields[2].Descriptor()
	// course.DefaultPublished holds the default value on creation for the published field.
	course.DefaultPublished = courseDescPublished.Default.(bool)
	// courseDescCreatedAt is the schema descriptor for created_at field.
	courseDescCreatedAt := courseFields[3].Descriptor()
	// course.DefaultCreatedAt holds the default value on creation for the created_at field.
	course.DefaultCreatedAt = courseDescCreatedAt.Default.(func() time.Time)
	// courseDescID is the schema descriptor for id field.
	courseDescID := courseFields[0].Descriptor()
	// course.IDValidator is a validator for the "id" field. It is called by the builders before save.
	course.IDValidator = courseDescID.Validators[0].(func(string) error)
	enrollmentFields := schema.Enrollment{}.Fields()
	_ = enrollmentFields
	// enrollmentDescLearnerID is the schema descriptor for learner_id field.
	enrollmentDescLearnerID := enrollmentFields[0].Descriptor()
	// enrollment.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	enrollment.LearnerIDValidator = enrollmentDescLearnerID.Validators[0].(func(string) error)
	// enrollmentDescCourseID is the schema descriptor for course_id field.
	enrollmentDescCourseID := enrollmentFields[1].Descriptor()
	// enrollment.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	enrollment.CourseIDValidator = enrollmentDescCourseID.Validators[0].(func(string) error)
	// enrollmentDescLastCompletedChapter is the schema descriptor for last_completed_chapter field.
	enrollmentDescLastCompletedChapter := enrollmentFields[2].Descriptor()
	// enrollment.DefaultLastCompletedChapter holds the default value on creation for the last_completed_chapter field.
	enrollment.DefaultLastCompletedChapter = enrollmentDescLastCompletedChapter.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescCourseID is the schema descriptor for course_id field.
	lessonDescCourseID := lessonFields[1].Descriptor()
	// lesson.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	lesson.CourseIDValidator = lessonDescCourseID.Validators[0].(func(string) error)
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[2].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescChapterNumber is the schema descriptor for chapter_number field.
	lessonDescChapterNumber := lessonFields[3].Descriptor()
	// lesson.ChapterNumberValidator is a validator for the "chapter_number" field. It is called by the builders before save.
	lesson.ChapterNumberValidator = lessonDescChapterNumber.Validators[0].(func(int) error)
	// lessonDescCreatedAt is the schema descriptor for created_at field.
	lessonDescCreatedAt := lessonFields[6].Descriptor()
	// lesson.DefaultCreatedAt holds the default value on creation for the created_at field.
	lesson.DefaultCreatedAt = lessonDescCreatedAt.Default.(func() time.Time)
	// lessonDescUpdatedAt is the schema descriptor for updated_at field.
	lessonDescUpdatedAt := lessonFields[7].Descriptor()
	// lesson.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lesson.DefaultUpdatedAt = lessonDescUpdatedAt.Default.(func() time.Time)
	// lesson.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lesson.UpdateDefaultUpdatedAt = lessonDescUpdatedAt.UpdateDefault.(func() time.Time)
	// lessonDescID is the schema descriptor for id field.
	lessonDescID := lessonFields[0].Descriptor()
	// lesson.IDValidator is a validator for the "id" field. It is called by the builders before save.
	lesson.IDValidator = lessonDescID.Validators[0].(func(string) error)
}
