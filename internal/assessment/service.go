package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/impa-jovem/impa/internal/content"
	"github.com/impa-jovem/impa/internal/logging"
)

// Service runs the quiz completion flow: generate, fall back, persist.
type Service struct {
	gen     Generator
	results *ResultStore
	timeout time.Duration
	log     *logging.Logger
}

// NewService wires the flow. gen may be nil, in which case every
// completion yields FallbackMap. A zero timeout disables the deadline.
func NewService(gen Generator, results *ResultStore, timeout time.Duration, log *logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{gen: gen, results: results, timeout: timeout, log: log}
}

// Complete produces the user's potential map. Generator failures,
// including timeouts, are logged and replaced by FallbackMap. The map is
// saved when userID is set.
func (s *Service) Complete(ctx context.Context, userID string, answers Answers, r Reflection) (*PotentialMap, error) {
	if err := CheckAnswers(answers); err != nil {
		return nil, err
	}

	m, err := s.generate(ctx, answers, r)
	if err != nil {
		s.log.Warn("potential map generation failed, using fallback", "userID", userID, "error", err)
		m = FallbackMap()
	}

	if userID != "" {
		if err := s.results.Save(ctx, userID, m); err != nil {
			return m, err
		}
	}
	return m, nil
}

// Result returns the saved map of a user, or nil.
func (s *Service) Result(ctx context.Context, userID string) (*PotentialMap, error) {
	return s.results.Get(ctx, userID)
}

func (s *Service) generate(ctx context.Context, answers Answers, r Reflection) (*PotentialMap, error) {
	if s.gen == nil {
		return nil, fmt.Errorf("no generator configured")
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	m, err := s.gen.Generate(ctx, answers, r)
	if err != nil {
		return nil, err
	}
	s.log.Debug("potential map generated", "latency", time.Since(start), "track", m.SuggestedTrackID)
	return m, nil
}

// CheckAnswers verifies that every quiz question has a known option
// selected.
func CheckAnswers(answers Answers) error {
	for _, q := range content.QuizQuestions() {
		v, ok := answers[q.ID]
		if !ok {
			return fmt.Errorf("%w: question %d has no answer", ErrIncompleteQuiz, q.ID)
		}
		if _, ok := q.Option(v); !ok {
			return fmt.Errorf("%w: %q is not an option of question %d", ErrIncompleteQuiz, v, q.ID)
		}
	}
	return nil
}
