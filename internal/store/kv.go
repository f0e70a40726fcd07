package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// Logical keys of the persisted layout.
const (
	KeyAccounts      = "accounts"
	KeySession       = "session"
	KeyProgress      = "progress"
	KeyStepResponses = "step_responses"
	KeyDiaryEntries  = "diary_entries"
	KeyQuestions     = "questions"
	KeyQuizResults   = "quiz_results"
)

const kvTable = "kv"

// KV is the key-value contract the domain stores are written against.
// Values are JSON documents; absent keys are not errors.
type KV interface {
	// Get decodes the value stored under key into dst.
	// It reports false, and leaves dst untouched, when the key is absent.
	Get(ctx context.Context, key string, dst any) (bool, error)

	// Put encodes v and stores it under key, replacing any previous value.
	Put(ctx context.Context, key string, v any) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Update runs a read-modify-write cycle on key atomically. The current
	// value (if any) is decoded into dst, then fn is called with whether it
	// was found. When fn returns true, dst is encoded and written back.
	Update(ctx context.Context, key string, dst any, fn func(found bool) (bool, error)) error
}

var _ KV = (*Store)(nil)

func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	return get(ctx, s.drv, key, dst)
}

func (s *Store) Put(ctx context.Context, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return put(ctx, s.drv, key, v)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query, args := entsql.Dialect(dialect.SQLite).
		Delete(kvTable).
		Where(entsql.EQ("key", key)).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, key string, dst any, fn func(found bool) (bool, error)) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin update %q: %w", key, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	found, err := get(ctx, tx, key, dst)
	if err != nil {
		return err
	}
	write, err := fn(found)
	if err != nil {
		return err
	}
	if write {
		if err = put(ctx, tx, key, dst); err != nil {
			return err
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit update %q: %w", key, err)
	}
	return nil
}

func get(ctx context.Context, q dialect.ExecQuerier, key string, dst any) (bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("value").
		From(entsql.Table(kvTable)).
		Where(entsql.EQ("key", key)).
		Query()

	rows := &entsql.Rows{}
	if err := q.Query(ctx, query, args, rows); err != nil {
		return false, fmt.Errorf("get %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return false, rows.Err()
	}
	var raw string
	if err := rows.Scan(&raw); err != nil {
		return false, fmt.Errorf("scan %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func put(ctx context.Context, q dialect.ExecQuerier, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, string(raw), time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := q.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}
