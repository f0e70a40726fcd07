package content

import (
	"fmt"
	"slices"
)

type registry struct {
	tracks []Track
	byID   map[string]int
	quiz   []QuizQuestion
}

// reg is the package singleton, built in init.
var reg *registry

func buildRegistry(tracks []Track, quiz []QuizQuestion) *registry {
	r := &registry{
		tracks: tracks,
		byID:   make(map[string]int, len(tracks)),
		quiz:   quiz,
	}
	for i, t := range tracks {
		if _, dup := r.byID[t.ID]; !dup {
			r.byID[t.ID] = i
		}
	}
	return r
}

// Tracks returns all tracks in display order.
func Tracks() []Track {
	out := make([]Track, len(reg.tracks))
	for i, t := range reg.tracks {
		out[i] = cloneTrack(t)
	}
	return out
}

// GetTrack returns the track with the given id.
func GetTrack(id string) (Track, bool) {
	i, ok := reg.byID[id]
	if !ok {
		return Track{}, false
	}
	return cloneTrack(reg.tracks[i]), true
}

// MustTrack is GetTrack for callers that already checked the id.
func MustTrack(id string) Track {
	t, ok := GetTrack(id)
	if !ok {
		panic(fmt.Sprintf("content: unknown track %q", id))
	}
	return t
}

// TrackIDs returns track ids in display order.
func TrackIDs() []string {
	ids := make([]string, len(reg.tracks))
	for i, t := range reg.tracks {
		ids[i] = t.ID
	}
	return ids
}

// TrackTitle returns the display title for a track id. The general tag and
// unknown ids both render as "General".
func TrackTitle(id string) string {
	if i, ok := reg.byID[id]; ok {
		return reg.tracks[i].Title
	}
	return "General"
}

// StepsCount returns the number of steps of a track, or 0 if unknown.
func StepsCount(id string) int {
	if i, ok := reg.byID[id]; ok {
		return reg.tracks[i].StepsCount
	}
	return 0
}

// QuizQuestions returns the quiz in presentation order.
func QuizQuestions() []QuizQuestion {
	out := make([]QuizQuestion, len(reg.quiz))
	for i, q := range reg.quiz {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}

// GetQuizQuestion returns the question with the given id.
func GetQuizQuestion(id int) (QuizQuestion, bool) {
	for _, q := range reg.quiz {
		if q.ID == id {
			q.Options = slices.Clone(q.Options)
			return q, true
		}
	}
	return QuizQuestion{}, false
}

// SuggestedTrackIDs returns the ids the assessment generator may suggest.
func SuggestedTrackIDs() []string {
	ids := make([]string, len(suggestedTracks))
	for i, s := range suggestedTracks {
		ids[i] = s.ID
	}
	return ids
}

// SuggestedTrackLabel describes a suggested id for prompts and display.
func SuggestedTrackLabel(id string) string {
	for _, s := range suggestedTracks {
		if s.ID == id {
			return s.Label
		}
	}
	return ""
}

// ResolveSuggestedTrack maps a generator track id onto a registry track.
// Suggestions without a matching track return false.
func ResolveSuggestedTrack(id string) (Track, bool) {
	for _, s := range suggestedTracks {
		if s.ID == id {
			if s.TrackID == "" {
				return Track{}, false
			}
			return GetTrack(s.TrackID)
		}
	}
	// Registry ids are accepted as-is.
	return GetTrack(id)
}

func cloneTrack(t Track) Track {
	t.Steps = slices.Clone(t.Steps)
	t.ReflectionQuestions = slices.Clone(t.ReflectionQuestions)
	return t
}
