package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/coursewell/coursewell/internal/llm"
	"github.com/coursewell/coursewell/internal/script"
	"github.com/coursewell/coursewell/internal/store"
)

var compileCmd = &cobra.Command{
	Use:   "compile <script-file>",
	Short: "Compile an authored lesson script and publish it as a chapter",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().String("course", "", "Course ID to publish into (created if missing)")
	compileCmd.Flags().String("course-title", "", "Course title, used when the course is created")
	compileCmd.Flags().String("title", "", "Chapter title")
	compileCmd.Flags().Int("chapter", 0, "Chapter number (0 appends after the last chapter)")
}

func runCompile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	courseID, _ := cmd.Flags().GetString("course")
	courseTitle, _ := cmd.Flags().GetString("course-title")
	title, _ := cmd.Flags().GetString("title")
	chapter, _ := cmd.Flags().GetInt("chapter")
	if title == "" {
		return fmt.Errorf("--title is required")
	}
	if courseID == "" {
		courseID = uuid.NewString()
	}
	if courseTitle == "" {
		courseTitle = title
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	compiled, err := script.NewCompiler(provider, script.DefaultConfig()).Compile(ctx, string(raw))
	if err != nil {
		return fmt.Errorf("compile script: %w", err)
	}

	if err := st.CourseRepo().Ensure(ctx, &store.Course{ID: courseID, Title: courseTitle, Published: true}); err != nil {
		return err
	}
	if chapter == 0 {
		chapter, err = st.LessonRepo().NextChapterNumber(ctx, courseID)
		if err != nil {
			return err
		}
	}

	lesson := &store.Lesson{
		ID:        uuid.NewString(),
		CourseID:  courseID,
		Title:     title,
		Chapter:   chapter,
		RawScript: string(raw),
		Script:    compiled,
	}
	if err := st.LessonRepo().Put(ctx, lesson); err != nil {
		return err
	}

	fmt.Printf("published lesson %s (course %s, chapter %d, %d steps)\n",
		lesson.ID, courseID, chapter, compiled.Len())
	return nil
}
