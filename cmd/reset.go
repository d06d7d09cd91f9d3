package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursewell/coursewell/internal/engine"
	"github.com/coursewell/coursewell/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <learner-id> <lesson-id>",
	Short: "Reset a learner's session for a lesson",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		// The gateway and completion tracker are not needed to reset.
		eng := engine.New(st.SessionRepo(), st.LessonRepo(), nil, nil, nil)
		if err := eng.Reset(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("session reset")
		return nil
	},
}
