package views

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/impa-jovem/impa/internal/account"
	"github.com/impa-jovem/impa/internal/assessment"
	"github.com/impa-jovem/impa/internal/content"
	"github.com/impa-jovem/impa/internal/dashboard"
	"github.com/impa-jovem/impa/internal/inbox"
	"github.com/impa-jovem/impa/internal/journal"
	"github.com/impa-jovem/impa/internal/progress"
)

func plain(s string) string { return ansi.Strip(s) }

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestTrackList(t *testing.T) {
	out := plain(TrackList(content.Tracks(), map[string]int{"money": 2}, 80))
	assertContains(t, out, "Earn", "Youth", "50%", "0%", "leadership")
}

func TestTrackDetail_States(t *testing.T) {
	money := content.MustTrack("money")
	out := plain(TrackDetail(money, 1, map[int]string{1: "drawing"}, 80))

	assertContains(t, out, "✓ 1.", "▸ 2.", "· 3.", "drawing", "25%")
	// Locked steps hide their instructions.
	if strings.Contains(out, "journal: was anyone") {
		t.Errorf("locked step content rendered:\n%s", out)
	}
	if strings.Contains(out, "reflect") {
		t.Error("reflection prompts shown before completion")
	}
}

func TestTrackDetail_Completed(t *testing.T) {
	lead := content.MustTrack("leadership")
	out := plain(TrackDetail(lead, 4, nil, 80))
	assertContains(t, out, "100%", "reflect", lead.ReflectionQuestions[0])
}

func TestPotentialMap(t *testing.T) {
	out := plain(PotentialMap(assessment.FallbackMap(), "Project Organization", 80))
	assertContains(t, out, "Curiosity", "Resilience", "Autonomy", "Project Organization (organize)")

	m := assessment.FallbackMap()
	m.SuggestedTrackID = "selfcare"
	out = plain(PotentialMap(m, "", 80))
	assertContains(t, out, "Self-care")
}

func TestProfile(t *testing.T) {
	u := account.User{
		Name:    "Ana",
		Email:   "ana@example.com",
		Role:    account.RoleStudent,
		Age:     16,
		Country: "Brazil",
		Avatar:  account.DefaultAvatar(),
	}
	sum := progress.Summarize(map[string]int{"money": 2, "leadership": 4}, content.Tracks())

	out := plain(Profile(u, sum, 80))
	assertContains(t, out, "Ana", "ana@example.com", "[student]", "16 years", "Brazil",
		"2 started", "1 completed", "6 missions", "50%", "100%", "#f5d0b0", "short")
}

func TestProfile_NoProgress(t *testing.T) {
	out := plain(Profile(account.User{Name: "Bia", Role: account.RoleStudent}, progress.Summary{}, 80))
	assertContains(t, out, "No tracks started yet")
}

func TestJournal(t *testing.T) {
	if out := plain(Journal(nil, 80)); !strings.Contains(out, "empty") {
		t.Errorf("empty journal: %q", out)
	}

	entries := []journal.Entry{
		{ID: "2", TrackID: "general", Content: "second", Date: time.Now()},
		{ID: "1", TrackID: "money", Content: "first", ImageURL: "https://x/y.png", Date: time.Now()},
	}
	out := plain(Journal(entries, 80))
	assertContains(t, out, "General", "Earn Income", "second", "first", "https://x/y.png")
	if strings.Index(out, "second") > strings.Index(out, "first") {
		t.Error("entries not in given order")
	}
}

func TestInbox(t *testing.T) {
	qs := []inbox.Question{
		{ID: "q2", UserName: "Bia", UserEmail: "bia@example.com", Topic: "App", Content: "dark mode", Status: inbox.StatusReceived, Type: inbox.KindSuggestion},
		{ID: "q1", UserName: "Ana", UserEmail: "ana@example.com", Topic: "General", Content: "pricing?", Status: inbox.StatusAnswered, Type: inbox.KindQuestion},
	}
	out := plain(Inbox(qs, 100))
	assertContains(t, out, "[received]", "[suggestion]", "[answered]", "dark mode", "q1", "bia@example.com")
}

func TestStudents(t *testing.T) {
	if out := plain(Students(nil)); !strings.Contains(out, "No students") {
		t.Errorf("empty list: %q", out)
	}
	rows := []dashboard.StudentRow{{
		User:    account.User{ID: "u1", Name: "Ana", Email: "ana@example.com"},
		Summary: progress.Summarize(map[string]int{"money": 4}, content.Tracks()),
	}}
	out := plain(Students(rows))
	assertContains(t, out, "u1", "Ana", "MISSIONS")
}

func TestStudentDetail(t *testing.T) {
	d := &dashboard.StudentDetail{
		User: account.User{Name: "Ana", Role: account.RoleStudent},
		Diary: []dashboard.DiaryItem{
			{Entry: journal.Entry{Content: "offered drawings", Date: time.Now()}, TrackTitle: "Earn Income"},
		},
	}
	out := plain(StudentDetail(d, 80))
	assertContains(t, out, "Quiz not taken yet", "offered drawings", "Earn Income")

	d.Map = assessment.FallbackMap()
	d.SuggestedTrack = "Project Organization"
	out = plain(StudentDetail(d, 80))
	assertContains(t, out, "Potential map", "Curiosity")
}

func TestTruncate(t *testing.T) {
	if got := truncate("Ana", 5); got != "Ana" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("Maria Eduarda", 6); got != "Maria…" {
		t.Errorf("truncate = %q", got)
	}
}
