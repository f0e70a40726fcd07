// Package inbox is the question and suggestion queue shared by all mentors.
package inbox

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/impa-jovem/impa/internal/logging"
	"github.com/impa-jovem/impa/internal/store"
)

var ErrEmptyContent = errors.New("question must not be empty")

type Status string

const (
	StatusReceived Status = "received"
	StatusAnswered Status = "answered"
)

type Kind string

const (
	KindQuestion   Kind = "question"
	KindSuggestion Kind = "suggestion"
)

// DefaultTopic is used when a question is submitted without a topic.
const DefaultTopic = "General"

// Question is a message from a user to the mentors. Only Status changes
// after submission.
type Question struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	Topic     string    `json:"topic"`
	Content   string    `json:"content"`
	Status    Status    `json:"status"`
	Date      time.Time `json:"date"`
	Type      Kind      `json:"type"`
}

// Store keeps the shared inbox under "questions", newest first.
type Store struct {
	kv  store.KV
	log *logging.Logger
	now func() time.Time
}

func NewStore(kv store.KV, log *logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{kv: kv, log: log, now: time.Now}
}

// Submit adds q to the inbox as received and returns the stored question.
func (s *Store) Submit(ctx context.Context, q Question) (Question, error) {
	if strings.TrimSpace(q.Content) == "" {
		return Question{}, ErrEmptyContent
	}
	if strings.TrimSpace(q.Topic) == "" {
		q.Topic = DefaultTopic
	}
	if q.Type == "" {
		q.Type = KindQuestion
	}
	q.ID = uuid.NewString()
	q.Status = StatusReceived

	var questions []Question
	err := s.kv.Update(ctx, store.KeyQuestions, &questions, func(bool) (bool, error) {
		q.Date = s.now().UTC()
		questions = append([]Question{q}, questions...)
		return true, nil
	})
	if err != nil {
		return Question{}, fmt.Errorf("submit question: %w", err)
	}

	s.log.Info("question submitted", "id", q.ID, "userID", q.UserID, "type", q.Type)
	return q, nil
}

// List returns every question, newest first.
func (s *Store) List(ctx context.Context) ([]Question, error) {
	var questions []Question
	if _, err := s.kv.Get(ctx, store.KeyQuestions, &questions); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return questions, nil
}

// MarkAnswered moves a received question to answered. Unknown ids and
// already answered questions are left alone.
func (s *Store) MarkAnswered(ctx context.Context, id string) error {
	var questions []Question
	err := s.kv.Update(ctx, store.KeyQuestions, &questions, func(bool) (bool, error) {
		for i := range questions {
			if questions[i].ID != id {
				continue
			}
			if questions[i].Status == StatusAnswered {
				return false, nil
			}
			questions[i].Status = StatusAnswered
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return fmt.Errorf("mark answered %s: %w", id, err)
	}
	return nil
}

// Pending counts questions still waiting for an answer.
func (s *Store) Pending(ctx context.Context) (int, error) {
	questions, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, q := range questions {
		if q.Status == StatusReceived {
			n++
		}
	}
	return n, nil
}
