// Package assessment turns quiz answers into a potential map and caches
// one map per user.
package assessment

import (
	"context"
	"errors"
)

var ErrIncompleteQuiz = errors.New("every quiz question must be answered")

// PotentialMap is the generated summary of a user's strengths.
type PotentialMap struct {
	TopSkills            []SkillInsight `json:"topSkills"`
	PracticalApplication string         `json:"practicalApplication"`

	// SuggestedTrackID is one of content.SuggestedTrackIDs. It does not
	// always name a registry track; see content.ResolveSuggestedTrack.
	SuggestedTrackID string `json:"suggestedTrackId"`
	Encouragement    string `json:"encouragement"`
}

type SkillInsight struct {
	Skill       string `json:"skill"`
	Description string `json:"description"`
}

// Answers maps quiz question id to the selected option value.
type Answers map[int]string

// Reflection is the free-text part of the quiz.
type Reflection struct {
	Likes   string
	GoodAt  string
	Develop string
}

// Generator produces a potential map. Implementations may fail; callers
// substitute FallbackMap.
type Generator interface {
	Generate(ctx context.Context, answers Answers, reflection Reflection) (*PotentialMap, error)
}

// FallbackMap is returned whenever generation fails.
func FallbackMap() *PotentialMap {
	return &PotentialMap{
		TopSkills: []SkillInsight{
			{Skill: "Curiosity", Description: "Eagerness to learn new things"},
			{Skill: "Resilience", Description: "Ability to try again"},
			{Skill: "Autonomy", Description: "Strength to start on your own"},
		},
		PracticalApplication: "Try starting a small personal project today using what you already have.",
		SuggestedTrackID:     "organize",
		Encouragement:        "What matters is starting. You already have what you need.",
	}
}
