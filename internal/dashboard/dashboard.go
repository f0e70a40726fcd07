// Package dashboard joins the stores into the views mentors read.
package dashboard

import (
	"context"

	"github.com/impa-jovem/impa/internal/account"
	"github.com/impa-jovem/impa/internal/assessment"
	"github.com/impa-jovem/impa/internal/content"
	"github.com/impa-jovem/impa/internal/journal"
	"github.com/impa-jovem/impa/internal/progress"
)

// StudentRow is one line of the student list.
type StudentRow struct {
	User    account.User
	Summary progress.Summary
}

// DiaryItem is a journal entry with its track title resolved.
type DiaryItem struct {
	journal.Entry
	TrackTitle string
}

// StudentDetail is everything a mentor sees about one student.
type StudentDetail struct {
	User    account.User
	Summary progress.Summary
	Diary   []DiaryItem

	// Map is nil until the student finishes the quiz.
	Map *assessment.PotentialMap

	// SuggestedTrack is the title of the map's suggested track, or "" when
	// it does not resolve to a track.
	SuggestedTrack string
}

type Dashboard struct {
	accounts *account.Service
	progress *progress.Store
	journal  *journal.Store
	results  *assessment.ResultStore
}

func New(accounts *account.Service, prog *progress.Store, j *journal.Store, results *assessment.ResultStore) *Dashboard {
	return &Dashboard{accounts: accounts, progress: prog, journal: j, results: results}
}

// Students lists every student with their progress summary.
func (d *Dashboard) Students(ctx context.Context) ([]StudentRow, error) {
	if _, err := account.RequireRole(ctx, account.RoleMentor); err != nil {
		return nil, err
	}

	users, err := d.accounts.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	tracks := content.Tracks()

	rows := make([]StudentRow, 0, len(users))
	for _, u := range users {
		counts, err := d.progress.All(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, StudentRow{User: u, Summary: progress.Summarize(counts, tracks)})
	}
	return rows, nil
}

// Student returns the detail view of one student, or nil when studentID
// is not a student account.
func (d *Dashboard) Student(ctx context.Context, studentID string) (*StudentDetail, error) {
	if _, err := account.RequireRole(ctx, account.RoleMentor); err != nil {
		return nil, err
	}

	u, err := d.accounts.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Role != account.RoleStudent {
		return nil, nil
	}

	counts, err := d.progress.All(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	entries, err := d.journal.List(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	m, err := d.results.Get(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	detail := &StudentDetail{
		User:    *u,
		Summary: progress.Summarize(counts, content.Tracks()),
		Map:     m,
	}
	for _, e := range entries {
		detail.Diary = append(detail.Diary, DiaryItem{Entry: e, TrackTitle: content.TrackTitle(e.TrackID)})
	}
	if m != nil {
		if t, ok := content.ResolveSuggestedTrack(m.SuggestedTrackID); ok {
			detail.SuggestedTrack = t.Title
		}
	}
	return detail, nil
}
