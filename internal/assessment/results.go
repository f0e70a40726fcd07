package assessment

import (
	"context"
	"fmt"

	"github.com/impa-jovem/impa/internal/store"
)

// ResultStore caches the latest potential map of each user under
// "quiz_results".
type ResultStore struct {
	kv store.KV
}

func NewResultStore(kv store.KV) *ResultStore {
	return &ResultStore{kv: kv}
}

// Save replaces the user's map.
func (r *ResultStore) Save(ctx context.Context, userID string, m *PotentialMap) error {
	results := map[string]*PotentialMap{}
	err := r.kv.Update(ctx, store.KeyQuizResults, &results, func(bool) (bool, error) {
		results[userID] = m
		return true, nil
	})
	if err != nil {
		return fmt.Errorf("save potential map for %s: %w", userID, err)
	}
	return nil
}

// Get returns the user's map, or nil if none was saved.
func (r *ResultStore) Get(ctx context.Context, userID string) (*PotentialMap, error) {
	var results map[string]*PotentialMap
	if _, err := r.kv.Get(ctx, store.KeyQuizResults, &results); err != nil {
		return nil, fmt.Errorf("load potential maps: %w", err)
	}
	return results[userID], nil
}
