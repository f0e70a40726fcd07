package content

import (
	"strings"
	"testing"
)

func TestRegistryValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("registry invalid: %v", err)
	}
}

func TestTracks(t *testing.T) {
	tracks := Tracks()
	if len(tracks) != 5 {
		t.Fatalf("got %d tracks, want 5", len(tracks))
	}
	want := []string{"money", "social-impact", "project-management", "social-media", "leadership"}
	for i, id := range want {
		if tracks[i].ID != id {
			t.Errorf("tracks[%d] = %q, want %q", i, tracks[i].ID, id)
		}
		if tracks[i].StepsCount != len(tracks[i].Steps) {
			t.Errorf("%s: StepsCount %d != %d steps", id, tracks[i].StepsCount, len(tracks[i].Steps))
		}
	}
}

func TestTracks_ReturnsCopies(t *testing.T) {
	tracks := Tracks()
	tracks[0].Title = "changed"
	tracks[0].Steps[0].Title = "changed"

	money, _ := GetTrack("money")
	if money.Title == "changed" || money.Steps[0].Title == "changed" {
		t.Fatal("mutating a returned track leaked into the registry")
	}
}

func TestGetTrack(t *testing.T) {
	tr, ok := GetTrack("leadership")
	if !ok {
		t.Fatal("leadership not found")
	}
	if tr.Title != "Youth Leadership" || tr.Duration != "4 weeks" {
		t.Errorf("unexpected track: %+v", tr)
	}
	if len(tr.ReflectionQuestions) != 3 {
		t.Errorf("reflection questions = %d", len(tr.ReflectionQuestions))
	}

	if _, ok := GetTrack("cooking"); ok {
		t.Error("unknown track should not be found")
	}
}

func TestMustTrack_PanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustTrack("nope")
}

func TestTrackTitle(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"money", "Earn Income"},
		{"social-media", "Social Media → Causes"},
		{GeneralTrackID, "General"},
		{"does-not-exist", "General"},
		{"", "General"},
	}
	for _, tt := range tests {
		if got := TrackTitle(tt.id); got != tt.want {
			t.Errorf("TrackTitle(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestStepsCount(t *testing.T) {
	if got := StepsCount("project-management"); got != 4 {
		t.Errorf("StepsCount = %d, want 4", got)
	}
	if got := StepsCount("nope"); got != 0 {
		t.Errorf("StepsCount(unknown) = %d, want 0", got)
	}
}

func TestQuizQuestions(t *testing.T) {
	qs := QuizQuestions()
	if len(qs) != 5 {
		t.Fatalf("got %d questions, want 5", len(qs))
	}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Errorf("question %d has id %d", i, q.ID)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options", q.ID, len(q.Options))
		}
	}

	q, ok := GetQuizQuestion(2)
	if !ok {
		t.Fatal("question 2 not found")
	}
	if o, ok := q.Option("saver"); !ok || o.Label == "" {
		t.Errorf("option saver = %+v, %v", o, ok)
	}
	if _, ok := q.Option("organizer"); ok {
		t.Error("option from another question should not match")
	}
	if _, ok := GetQuizQuestion(99); ok {
		t.Error("question 99 should not exist")
	}
}

func TestResolveSuggestedTrack(t *testing.T) {
	tests := []struct {
		id     string
		want   string
		wantOK bool
	}{
		{"money", "money", true},
		{"impact", "social-impact", true},
		{"organize", "project-management", true},
		{"lead", "leadership", true},
		{"selfcare", "", false},
		{"business", "", false},
		{"social-media", "social-media", true},
		{"unknown", "", false},
	}
	for _, tt := range tests {
		tr, ok := ResolveSuggestedTrack(tt.id)
		if ok != tt.wantOK || tr.ID != tt.want {
			t.Errorf("ResolveSuggestedTrack(%q) = %q, %v; want %q, %v", tt.id, tr.ID, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSuggestedTrackIDs(t *testing.T) {
	ids := SuggestedTrackIDs()
	want := []string{"money", "impact", "organize", "lead", "selfcare", "business"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for _, id := range ids {
		if SuggestedTrackLabel(id) == "" {
			t.Errorf("%q has no label", id)
		}
	}
}

func TestValidateRegistry_Errors(t *testing.T) {
	bad := buildRegistry(
		[]Track{
			{ID: "a", Title: "A", StepsCount: 3, Steps: []Step{{ID: 1, Title: "x", Content: "y"}}},
			{ID: "a", Title: "Dup", StepsCount: 1, Steps: []Step{{ID: 2, Title: "x", Content: "y"}}},
			{ID: "under_score", Title: "U", StepsCount: 0},
			{ID: GeneralTrackID, Title: "G", StepsCount: 1, Steps: []Step{{ID: 1, Title: "x", Content: "y"}}},
		},
		[]QuizQuestion{
			{ID: 1, Text: "q", Options: []QuizOption{{Label: "a", Value: "v"}, {Label: "b", Value: "v"}}},
			{ID: 1, Text: "", Options: []QuizOption{{Label: "a", Value: "x"}}},
		},
	)

	err := validateRegistry(bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{
		`track "a": StepsCount is 3 but 1 steps are defined`,
		`duplicate track id: "a"`,
		`step 0 has id 2, want 1`,
		`track "under_score": id must not contain '_'`,
		`track "under_score": must have at least one step`,
		`track "general": id is reserved`,
		`duplicate option value "v"`,
		`duplicate quiz question id: 1`,
		`quiz question 1: empty text`,
		`needs at least two options`,
		`suggested track "money" maps to unknown track "money"`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("missing %q in:\n%s", want, msg)
		}
	}
}
