package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursewell/coursewell/internal/engine"
	"github.com/coursewell/coursewell/internal/script"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEngine struct {
	resp      *engine.Response
	err       error
	resetErr  error
	deleteErr error

	lastReq     engine.Request
	lastLearner string
	lastLesson  string
}

func (s *stubEngine) Dispatch(_ context.Context, req engine.Request) (*engine.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubEngine) Reset(_ context.Context, learnerID, lessonID string) error {
	s.lastLearner, s.lastLesson = learnerID, lessonID
	return s.resetErr
}

func (s *stubEngine) DeleteLastTurn(_ context.Context, learnerID, lessonID string) error {
	s.lastLearner, s.lastLesson = learnerID, lessonID
	return s.deleteErr
}

func doJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Learner-ID", "learner-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatDeliversResponse(t *testing.T) {
	stub := &stubEngine{resp: &engine.Response{
		Kind:      engine.AwaitingAnswer,
		TutorText: "Here we go.",
		Question: &engine.Question{
			Type:     script.KindQuestionMCQ,
			Question: "What is 2+2?",
			Options:  []script.Option{{Key: "A", Text: "2"}, {Key: "B", Text: "4"}},
		},
	}}
	router := NewServer(stub, DefaultConfig(), nil).Router()

	w := doJSON(t, router, "/chat", gin.H{
		"lesson_id": "lesson-1", "request_kind": "LESSON_FLOW", "user_input": nil,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AWAITING_ANSWER", resp.Kind)
	assert.Equal(t, "Here we go.", resp.TutorText)
	require.NotNil(t, resp.Question)
	assert.Equal(t, "QUESTION_MCQ", resp.Question.Type)
	require.Len(t, resp.Question.Options, 2)
	assert.Equal(t, "B", resp.Question.Options[1].Key)
	assert.False(t, resp.IsLessonEnd)

	assert.Equal(t, "learner-1", stub.lastReq.LearnerID)
	assert.Equal(t, "lesson-1", stub.lastReq.LessonID)
	assert.Equal(t, engine.LessonFlow, stub.lastReq.Kind)
}

func TestChatDefaultsToLessonFlow(t *testing.T) {
	stub := &stubEngine{resp: &engine.Response{Kind: engine.Delivering}}
	router := NewServer(stub, DefaultConfig(), nil).Router()

	w := doJSON(t, router, "/chat", gin.H{"lesson_id": "lesson-1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, engine.LessonFlow, stub.lastReq.Kind)
}

func TestChatLessonEndFlags(t *testing.T) {
	stub := &stubEngine{resp: &engine.Response{
		Kind:           engine.LessonEnded,
		TutorText:      "Done!",
		NextChapterURL: "/course/c1/2",
	}}
	router := NewServer(stub, DefaultConfig(), nil).Router()

	w := doJSON(t, router, "/chat", gin.H{"lesson_id": "lesson-1"})
	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsLessonEnd)
	assert.False(t, resp.IsQnaResponse)
	assert.Equal(t, "/course/c1/2", resp.NextChapterURL)
}

func TestChatInvalidBody(t *testing.T) {
	stub := &stubEngine{}
	router := NewServer(stub, DefaultConfig(), nil).Router()

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: empty answer", engine.ErrMalformed), http.StatusBadRequest},
		{fmt.Errorf("%w: lesson x", engine.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: stale version", engine.ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: deadline", engine.ErrGatewayTimeout), http.StatusGatewayTimeout},
		{fmt.Errorf("%w: boom", engine.ErrGatewayFailure), http.StatusBadGateway},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		stub := &stubEngine{err: tt.err}
		router := NewServer(stub, DefaultConfig(), nil).Router()
		w := doJSON(t, router, "/chat", gin.H{"lesson_id": "lesson-1"})
		assert.Equal(t, tt.want, w.Code, "error %v", tt.err)
	}
}

func TestResetSuccess(t *testing.T) {
	stub := &stubEngine{}
	router := NewServer(stub, DefaultConfig(), nil).Router()

	w := doJSON(t, router, "/chat/reset", gin.H{"lesson_id": "lesson-1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
	assert.Equal(t, "learner-1", stub.lastLearner)
	assert.Equal(t, "lesson-1", stub.lastLesson)
}

func TestDeleteLastTurnNotAvailable(t *testing.T) {
	stub := &stubEngine{deleteErr: engine.ErrNotAvailable}
	router := NewServer(stub, DefaultConfig(), nil).Router()

	w := doJSON(t, router, "/chat/delete_last_turn", gin.H{"lesson_id": "lesson-1"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestDeleteLastTurnSuccess(t *testing.T) {
	stub := &stubEngine{}
	router := NewServer(stub, DefaultConfig(), nil).Router()

	w := doJSON(t, router, "/chat/delete_last_turn", gin.H{"lesson_id": "lesson-1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}

func TestHealthcheck(t *testing.T) {
	router := NewServer(&stubEngine{}, DefaultConfig(), nil).Router()
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMissingLearnerHeaderRejected(t *testing.T) {
	stub := &stubEngine{err: fmt.Errorf("%w: missing learner id", engine.ErrMalformed)}
	router := NewServer(stub, DefaultConfig(), nil).Router()

	buf, _ := json.Marshal(gin.H{"lesson_id": "lesson-1"})
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, stub.lastReq.LearnerID)
}
