package inbox

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impa-jovem/impa/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewStore(s, nil)
}

func TestSubmit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	q, err := s.Submit(ctx, Question{
		UserID:    "ana",
		UserName:  "Ana",
		UserEmail: "ana@example.com",
		Content:   "How do I price my drawings?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, StatusReceived, q.Status)
	assert.Equal(t, DefaultTopic, q.Topic)
	assert.Equal(t, KindQuestion, q.Type)
	assert.False(t, q.Date.IsZero())

	sug, err := s.Submit(ctx, Question{UserID: "ana", Topic: "App", Content: "Add a dark mode", Type: KindSuggestion})
	require.NoError(t, err)
	assert.Equal(t, "App", sug.Topic)
	assert.Equal(t, KindSuggestion, sug.Type)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, sug.ID, list[0].ID)
	assert.Equal(t, q.ID, list[1].ID)
}

func TestSubmit_EmptyContent(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Submit(context.Background(), Question{UserID: "ana", Content: " "})
	require.ErrorIs(t, err, ErrEmptyContent)
}

func TestSubmit_IgnoresCallerStatus(t *testing.T) {
	s := newTestStore(t)
	q, err := s.Submit(context.Background(), Question{UserID: "ana", Content: "hi", Status: StatusAnswered})
	require.NoError(t, err)
	assert.Equal(t, StatusReceived, q.Status)
}

func TestMarkAnswered(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	q1, err := s.Submit(ctx, Question{UserID: "ana", Content: "first"})
	require.NoError(t, err)
	q2, err := s.Submit(ctx, Question{UserID: "bia", Content: "second"})
	require.NoError(t, err)

	pending, err := s.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, pending)

	require.NoError(t, s.MarkAnswered(ctx, q1.ID))
	// Repeated calls and unknown ids are no-ops.
	require.NoError(t, s.MarkAnswered(ctx, q1.ID))
	require.NoError(t, s.MarkAnswered(ctx, "missing"))

	list, err := s.List(ctx)
	require.NoError(t, err)
	status := map[string]Status{}
	for _, q := range list {
		status[q.ID] = q.Status
	}
	assert.Equal(t, StatusAnswered, status[q1.ID])
	assert.Equal(t, StatusReceived, status[q2.ID])

	pending, err = s.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

func TestList_Empty(t *testing.T) {
	s := newTestStore(t)
	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	n, err := s.Pending(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
