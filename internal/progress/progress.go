// Package progress tracks how far each user got in each track, and the
// free-text answer given for every step.
package progress

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/impa-jovem/impa/internal/content"
	"github.com/impa-jovem/impa/internal/logging"
	"github.com/impa-jovem/impa/internal/store"
)

var (
	ErrEmptyResponse = errors.New("response must not be empty")
	ErrStepLocked    = errors.New("step is locked: complete the previous steps first")
	ErrUnknownTrack  = errors.New("unknown track")
	ErrUnknownStep   = errors.New("unknown step")
)

// Store persists completed-step counters under "progress" and step
// answers under "step_responses".
type Store struct {
	kv  store.KV
	log *logging.Logger
}

func NewStore(kv store.KV, log *logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{kv: kv, log: log}
}

// StepIndex returns the number of completed steps, 0 if the track was
// never touched.
func (s *Store) StepIndex(ctx context.Context, userID, trackID string) (int, error) {
	counts, err := s.counts(ctx)
	if err != nil {
		return 0, err
	}
	return counts[store.CompositeKey(userID, trackID)], nil
}

// All returns the completed-step count of every track the user touched.
func (s *Store) All(ctx context.Context, userID string) (map[string]int, error) {
	counts, err := s.counts(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int)
	for key, n := range counts {
		parts := store.SplitCompositeKey(key)
		if len(parts) != 2 || parts[0] != userID {
			continue
		}
		out[parts[1]] = n
	}
	return out, nil
}

// Advance raises the completed count to n. Values not above the stored
// one are ignored.
func (s *Store) Advance(ctx context.Context, userID, trackID string, n int) error {
	key := store.CompositeKey(userID, trackID)
	counts := map[string]int{}
	err := s.kv.Update(ctx, store.KeyProgress, &counts, func(bool) (bool, error) {
		if n <= counts[key] {
			return false, nil
		}
		counts[key] = n
		return true, nil
	})
	if err != nil {
		return fmt.Errorf("advance %s/%s: %w", userID, trackID, err)
	}
	return nil
}

// SaveStepResponse stores text as the answer to a step, replacing any
// previous answer.
func (s *Store) SaveStepResponse(ctx context.Context, userID, trackID string, stepID int, text string) error {
	key := store.CompositeKey(userID, trackID, strconv.Itoa(stepID))
	responses := map[string]string{}
	err := s.kv.Update(ctx, store.KeyStepResponses, &responses, func(bool) (bool, error) {
		responses[key] = text
		return true, nil
	})
	if err != nil {
		return fmt.Errorf("save response %s/%s/%d: %w", userID, trackID, stepID, err)
	}
	return nil
}

// StepResponse returns the saved answer, or "" if none exists.
func (s *Store) StepResponse(ctx context.Context, userID, trackID string, stepID int) (string, error) {
	var responses map[string]string
	if _, err := s.kv.Get(ctx, store.KeyStepResponses, &responses); err != nil {
		return "", fmt.Errorf("load responses: %w", err)
	}
	return responses[store.CompositeKey(userID, trackID, strconv.Itoa(stepID))], nil
}

// CompleteStep records the answer to stepID and marks the track completed
// up to that step. Steps past the current one are locked. Answering an
// already completed step again only replaces its response.
func (s *Store) CompleteStep(ctx context.Context, userID string, track content.Track, stepID int, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, ErrEmptyResponse
	}
	if stepID < 1 || stepID > len(track.Steps) {
		return 0, fmt.Errorf("%w: %s has no step %d", ErrUnknownStep, track.ID, stepID)
	}

	completed, err := s.StepIndex(ctx, userID, track.ID)
	if err != nil {
		return 0, err
	}
	if StateOf(stepID-1, completed) == StepLocked {
		return completed, ErrStepLocked
	}

	if err := s.SaveStepResponse(ctx, userID, track.ID, stepID, text); err != nil {
		return completed, err
	}
	if err := s.Advance(ctx, userID, track.ID, stepID); err != nil {
		return completed, err
	}

	if stepID > completed {
		completed = stepID
		s.log.Debug("step completed", "userID", userID, "track", track.ID, "step", stepID)
	}
	return completed, nil
}

func (s *Store) counts(ctx context.Context) (map[string]int, error) {
	var counts map[string]int
	if _, err := s.kv.Get(ctx, store.KeyProgress, &counts); err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return counts, nil
}
