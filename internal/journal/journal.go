// Package journal is the append-only diary of students.
package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/impa-jovem/impa/internal/content"
	"github.com/impa-jovem/impa/internal/logging"
	"github.com/impa-jovem/impa/internal/store"
)

var ErrEmptyContent = errors.New("journal entry must not be empty")

// Entry is one diary entry. TrackID is a track id or content.GeneralTrackID.
type Entry struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	TrackID  string    `json:"trackId"`
	Content  string    `json:"content"`
	ImageURL string    `json:"imageUrl,omitempty"`
	Date     time.Time `json:"date"`
}

// Store keeps every entry of every user under "diary_entries", newest
// first.
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

// Append stores e with a fresh id and timestamp and returns the stored
// entry. The timestamp never goes backwards relative to the newest entry.
func (s *Store) Append(ctx context.Context, e Entry) (Entry, error) {
	if strings.TrimSpace(e.Content) == "" {
		return Entry{}, ErrEmptyContent
	}
	if e.TrackID == "" {
		e.TrackID = content.GeneralTrackID
	}
	e.ID = uuid.NewString()

	var entries []Entry
	err := s.kv.Update(ctx, store.KeyDiaryEntries, &entries, func(bool) (bool, error) {
		e.Date = s.now().UTC()
		if len(entries) > 0 && e.Date.Before(entries[0].Date) {
			e.Date = entries[0].Date
		}
		entries = append([]Entry{e}, entries...)
		return true, nil
	})
	if err != nil {
		return Entry{}, fmt.Errorf("append journal entry: %w", err)
	}

	s.log.Debug("journal entry added", "userID", e.UserID, "track", e.TrackID)
	return e, nil
}

// List returns entries newest first. An empty userID lists every entry.
func (s *Store) List(ctx context.Context, userID string) ([]Entry, error) {
	var entries []Entry
	if _, err := s.kv.Get(ctx, store.KeyDiaryEntries, &entries); err != nil {
		return nil, fmt.Errorf("load journal: %w", err)
	}
	if userID == "" {
		return entries, nil
	}
	var out []Entry
	for _, e := range entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}
