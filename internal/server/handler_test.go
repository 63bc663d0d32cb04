package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/yigitturan/QuizBite/internal/llm"
	"github.com/yigitturan/QuizBite/internal/quizgen"
)

const providerBatch = `{"questions":[{
	"id": "g1",
	"stem": "Which planet is closest to the sun?",
	"options": ["Mercury", "Venus", "Earth", "Mars"],
	"correct_index": 0,
	"explanation": "Mercury orbits closest.",
	"difficulty": "easy",
	"category": "science",
	"tags": ["space"],
	"lang": "en"
}]}`

func newTestRouter(t *testing.T, provider llm.Provider, strict bool) http.Handler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := quizgen.DefaultConfig()
	cfg.Strict = strict
	svc := quizgen.NewService(provider, cfg, log)
	return NewRouter(NewSessionHandler(svc, log))
}

type sessionBody struct {
	Questions []quizgen.Question `json:"questions"`
}

func TestSessionEndpoint_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: providerBatch, Surface: "gemini-v1beta"})
	router := newTestRouter(t, mock, false)

	req := httptest.NewRequest(http.MethodPost, "/api/quiz/session",
		strings.NewReader(`{"count":5,"topics":["space"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "gemini-v1beta", rec.Header().Get("X-Quiz-Source"))

	var body sessionBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Questions, 1)
	require.Equal(t, "g1", body.Questions[0].ID)
}

func TestSessionEndpoint_ProviderFailureStillReturns200(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrHTTP{Status: 500, Body: "upstream down"},
	})
	router := newTestRouter(t, mock, false)

	req := httptest.NewRequest(http.MethodPost, "/api/quiz/session", strings.NewReader(`{"count":10}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "fallback", rec.Header().Get("X-Quiz-Source"))

	var body sessionBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Questions, 10)
}

func TestSessionEndpoint_EmptyBodyUsesDefaults(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: providerBatch})
	router := newTestRouter(t, mock, false)

	req := httptest.NewRequest(http.MethodPost, "/api/quiz/session", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, mock.CallCount())

	var userMsg map[string]any
	require.NoError(t, json.Unmarshal([]byte(mock.Calls[0].UserMessage), &userMsg))
	require.EqualValues(t, 10, userMsg["count"])
}

func TestSessionEndpoint_MalformedBody(t *testing.T) {
	mock := llm.NewMockProvider()
	router := newTestRouter(t, mock, false)

	req := httptest.NewRequest(http.MethodPost, "/api/quiz/session", strings.NewReader(`{"count":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"invalid request body"}`, rec.Body.String())
	require.Equal(t, 0, mock.CallCount())
}

func TestSessionEndpoint_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, llm.NewMockProvider(), false)

	req := httptest.NewRequest(http.MethodGet, "/api/quiz/session", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

func TestSessionEndpoint_StrictModeReturns500(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "not json at all"})
	router := newTestRouter(t, mock, true)

	req := httptest.NewRequest(http.MethodPost, "/api/quiz/session", strings.NewReader(`{"count":3}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"quiz_generation_failed"}`, rec.Body.String())
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, llm.NewMockProvider(), false)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
