package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/yigitturan/QuizBite/internal/quizgen"
)

// SessionHandler serves quiz session requests.
type SessionHandler struct {
	svc *quizgen.Service
	log logrus.FieldLogger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc *quizgen.Service, log logrus.FieldLogger) *SessionHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SessionHandler{svc: svc, log: log}
}

// Generate handles POST /api/quiz/session. An empty body means defaults;
// a malformed body is the caller's fault and gets a 400 rather than the
// fallback bank.
func (h *SessionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req quizgen.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	session, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		// Reachable only under the strict policy.
		h.log.WithError(err).WithField("reason", quizgen.ErrorKind(err)).
			Error("quiz generation failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "quiz_generation_failed"})
		return
	}

	w.Header().Set("X-Quiz-Source", session.Source)
	writeJSON(w, http.StatusOK, session)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
