package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coursewell/coursewell/internal/engine"
	"github.com/coursewell/coursewell/internal/httpapi"
	"github.com/coursewell/coursewell/internal/llm"
	"github.com/coursewell/coursewell/internal/progress"
	"github.com/coursewell/coursewell/internal/store"
	"github.com/coursewell/coursewell/internal/tutor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the lesson session server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	gateway := tutor.NewService(provider, tutor.DefaultConfig())
	eng := engine.New(
		st.SessionRepo(),
		st.LessonRepo(),
		gateway,
		progress.NewTracker(st.EnrollmentRepo(), st.LessonRepo()),
		logger.Named("engine"),
	)

	server := httpapi.NewServer(eng, httpapi.ConfigFromEnv(), logger.Named("http"))
	return server.Run(ctx)
}

// newLogger builds a zap logger. COURSEWELL_LOG=prod selects the
// production config; anything else gets the development one.
func newLogger() (*zap.Logger, error) {
	switch strings.ToLower(os.Getenv("COURSEWELL_LOG")) {
	case "prod", "production":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}
