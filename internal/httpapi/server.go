package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coursewell/coursewell/internal/engine"
)

// SessionEngine is the engine surface the transport needs.
type SessionEngine interface {
	Dispatch(ctx context.Context, req engine.Request) (*engine.Response, error)
	Reset(ctx context.Context, learnerID, lessonID string) error
	DeleteLastTurn(ctx context.Context, learnerID, lessonID string) error
}

// Server is the HTTP front of the session engine.
type Server struct {
	engine SessionEngine
	logger *zap.Logger
	cfg    Config
}

// NewServer creates a Server. A nil logger disables request logging.
func NewServer(eng SessionEngine, cfg Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{engine: eng, logger: logger, cfg: cfg}
}

// Router builds the gin engine with all middleware and routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.logger))
	r.Use(CORS(s.cfg.CORSOrigins))
	r.Use(LearnerIdentity())

	r.GET("/healthcheck", s.handleHealthcheck)
	r.POST("/chat", s.handleChat)
	r.POST("/chat/reset", s.handleReset)
	r.POST("/chat/delete_last_turn", s.handleDeleteLastTurn)
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
