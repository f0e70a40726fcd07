package progress

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impa-jovem/impa/internal/content"
	"github.com/impa-jovem/impa/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewStore(s, nil)
}

func TestStepIndex_Absent(t *testing.T) {
	s := newTestStore(t)
	n, err := s.StepIndex(context.Background(), "ana", "money")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAdvance_Ratchet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		advance int
		want    int
	}{
		{2, 2},
		{1, 2},
		{2, 2},
		{0, 2},
		{3, 3},
		{4, 4},
	}
	for _, tt := range tests {
		require.NoError(t, s.Advance(ctx, "ana", "money", tt.advance))
		got, err := s.StepIndex(ctx, "ana", "money")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "after advance(%d)", tt.advance)
	}
}

func TestAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Advance(ctx, "ana", "money", 2))
	require.NoError(t, s.Advance(ctx, "ana", "leadership", 1))
	require.NoError(t, s.Advance(ctx, "bia", "money", 4))

	all, err := s.All(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"money": 2, "leadership": 1}, all)

	none, err := s.All(ctx, "carla")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAll_IDsWithSeparator(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// "ana" is a prefix of "ana_x"; neither may see the other's tracks.
	require.NoError(t, s.Advance(ctx, "ana", "x_money", 1))
	require.NoError(t, s.Advance(ctx, "ana_x", "money", 3))
	require.NoError(t, s.Advance(ctx, `we\ird`, "lead", 2))

	ana, err := s.All(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"x_money": 1}, ana)

	anaX, err := s.All(ctx, "ana_x")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"money": 3}, anaX)

	weird, err := s.All(ctx, `we\ird`)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"lead": 2}, weird)
}

func TestStepResponses(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveStepResponse(ctx, "ana", "money", 1, "drawing"))
	require.NoError(t, s.SaveStepResponse(ctx, "ana", "money", 1, "drawing, tutoring, baking"))

	got, err := s.StepResponse(ctx, "ana", "money", 1)
	require.NoError(t, err)
	assert.Equal(t, "drawing, tutoring, baking", got)

	other, err := s.StepResponse(ctx, "ana", "money", 2)
	require.NoError(t, err)
	assert.Equal(t, "", other)

	otherUser, err := s.StepResponse(ctx, "bia", "money", 1)
	require.NoError(t, err)
	assert.Equal(t, "", otherUser)
}

func TestCompleteStep(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	money := content.MustTrack("money")

	_, err := s.CompleteStep(ctx, "ana", money, 2, "skipping ahead")
	require.ErrorIs(t, err, ErrStepLocked)

	_, err = s.CompleteStep(ctx, "ana", money, 1, "   ")
	require.ErrorIs(t, err, ErrEmptyResponse)

	_, err = s.CompleteStep(ctx, "ana", money, 5, "no such step")
	require.ErrorIs(t, err, ErrUnknownStep)

	n, err := s.CompleteStep(ctx, "ana", money, 1, "drawing")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.CompleteStep(ctx, "ana", money, 2, "commissions")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Revisiting step 1 rewrites the answer but keeps progress.
	n, err = s.CompleteStep(ctx, "ana", money, 1, "drawing and tutoring")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	idx, err := s.StepIndex(ctx, "ana", "money")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	resp, err := s.StepResponse(ctx, "ana", "money", 1)
	require.NoError(t, err)
	assert.Equal(t, "drawing and tutoring", resp)
}

func TestAdvance_Concurrent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 4; i++ {
		for _, track := range []string{"money", "leadership"} {
			wg.Add(1)
			go func(n int, track string) {
				defer wg.Done()
				assert.NoError(t, s.Advance(ctx, "ana", track, n))
			}(i, track)
		}
	}
	wg.Wait()

	all, err := s.All(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"money": 4, "leadership": 4}, all)
}

func TestScenario_ProfilePercentage(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Advance(ctx, "ana", "money", 2))
	all, err := s.All(ctx, "ana")
	require.NoError(t, err)

	sum := Summarize(all, content.Tracks())
	require.Len(t, sum.Started, 1)
	assert.Equal(t, "money", sum.Started[0].Track.ID)
	assert.Equal(t, 50, sum.Started[0].Percent)
}
