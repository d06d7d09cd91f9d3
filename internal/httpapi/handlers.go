package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coursewell/coursewell/internal/engine"
)

type chatRequest struct {
	LessonID    string  `json:"lesson_id"`
	RequestKind string  `json:"request_kind"`
	UserInput   *string `json:"user_input"`
}

type optionPayload struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

type questionPayload struct {
	Type     string          `json:"type"`
	Question string          `json:"question"`
	Options  []optionPayload `json:"options,omitempty"`
}

type chatResponse struct {
	Kind           string           `json:"kind"`
	TutorText      string           `json:"tutor_text,omitempty"`
	Feedback       string           `json:"feedback,omitempty"`
	MediaURL       string           `json:"media_url,omitempty"`
	Question       *questionPayload `json:"question,omitempty"`
	AutoContinue   bool             `json:"auto_continue,omitempty"`
	IsQnaResponse  bool             `json:"is_qna_response,omitempty"`
	IsLessonEnd    bool             `json:"is_lesson_end,omitempty"`
	NextChapterURL string           `json:"next_chapter_url,omitempty"`
	CertificateURL string           `json:"certificate_url,omitempty"`
}

type sessionRequest struct {
	LessonID string `json:"lesson_id"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	kind := engine.RequestKind(req.RequestKind)
	if req.RequestKind == "" {
		kind = engine.LessonFlow
	}

	resp, err := s.engine.Dispatch(c.Request.Context(), engine.Request{
		LearnerID: learnerID(c),
		LessonID:  req.LessonID,
		Kind:      kind,
		Input:     req.UserInput,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWire(resp))
}

func (s *Server) handleReset(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	if err := s.engine.Reset(c.Request.Context(), learnerID(c), req.LessonID); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleDeleteLastTurn(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	err := s.engine.DeleteLastTurn(c.Request.Context(), learnerID(c), req.LessonID)
	if err != nil {
		if errors.Is(err, engine.ErrNotAvailable) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Nothing to undo."})
			return
		}
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleHealthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func toWire(resp *engine.Response) chatResponse {
	out := chatResponse{
		Kind:           string(resp.Kind),
		TutorText:      resp.TutorText,
		Feedback:       resp.Feedback,
		MediaURL:       resp.MediaURL,
		AutoContinue:   resp.AutoContinue,
		IsQnaResponse:  resp.Kind == engine.QnaAnswered,
		IsLessonEnd:    resp.Kind == engine.LessonEnded,
		NextChapterURL: resp.NextChapterURL,
		CertificateURL: resp.CertificateURL,
	}
	if resp.Question != nil {
		out.Question = &questionPayload{
			Type:     string(resp.Question.Type),
			Question: resp.Question.Question,
		}
		for _, o := range resp.Question.Options {
			out.Question.Options = append(out.Question.Options, optionPayload(o))
		}
	}
	return out
}

// writeError maps engine error kinds onto HTTP statuses.
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrMalformed):
		status = http.StatusBadRequest
	case errors.Is(err, engine.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, engine.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, engine.ErrGatewayTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, engine.ErrGatewayFailure):
		status = http.StatusBadGateway
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
