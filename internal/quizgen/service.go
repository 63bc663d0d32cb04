package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yigitturan/QuizBite/internal/llm"
)

// rawLogLimit bounds how much unparseable provider text reaches the logs.
const rawLogLimit = 800

// Service orchestrates one session generation: difficulty plan, prompts,
// provider call, parse, sanitize. It is stateless between calls; concurrent
// use is safe.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      logrus.FieldLogger
}

// NewService creates a session Service.
func NewService(provider llm.Provider, cfg Config, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{provider: provider, cfg: cfg, log: log}
}

// Generate produces a quiz session for the request. Under the default
// fail-open policy it never returns an error: any pipeline failure is
// logged with its kind and the fallback bank is served instead. In
// strict mode the pipeline error is returned as-is.
func (s *Service) Generate(ctx context.Context, req Request) (*Session, error) {
	req.Normalize(s.cfg.MaxCount)

	session, err := s.generate(ctx, req)
	if err == nil {
		return session, nil
	}

	if s.cfg.Strict {
		return nil, err
	}

	s.log.WithError(err).WithField("reason", ErrorKind(err)).
		Warn("quiz generation failed, serving fallback bank")

	return &Session{Questions: FallbackQuestions(), Source: SourceFallback}, nil
}

func (s *Service) generate(ctx context.Context, req Request) (*Session, error) {
	plan := BuildPlan(req.Count)
	instruction := BuildInstruction(req.Lang, req.Topics)

	userMsg, err := BuildUserMessage(req.Topics, plan, req.Count)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "quiz-session")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Instruction: instruction,
		UserMessage: userMsg,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	batch, err := ParseBatch(resp.Text)
	if err != nil {
		s.log.WithField("raw", truncate(resp.Text, rawLogLimit)).
			Error("quiz response parse failed")
		return nil, err
	}

	questions, err := Sanitize(batch)
	if err != nil {
		return nil, err
	}

	session := &Session{Questions: questions, Source: resp.Surface}
	if err := s.assertSchema(session); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"source":    session.Source,
		"questions": len(session.Questions),
	}).Info("quiz session generated")

	return session, nil
}

// assertSchema checks the outgoing payload against SessionSchema. The
// sanitizer guarantees conformance by construction, so a failure here is
// a bug, but it is still routed through the fallback policy rather than
// shipping a malformed session.
func (s *Service) assertSchema(session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return llm.Validate(SessionSchema, payload)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
