package progress

import (
	"math"

	"github.com/impa-jovem/impa/internal/content"
)

// StepState is how a step renders in a track.
type StepState int

const (
	StepLocked StepState = iota
	StepCurrent
	StepCompleted
)

func (s StepState) String() string {
	switch s {
	case StepCompleted:
		return "completed"
	case StepCurrent:
		return "current"
	default:
		return "locked"
	}
}

// StateOf classifies the step at 0-based index given the completed count.
func StateOf(index, completed int) StepState {
	switch {
	case index < completed:
		return StepCompleted
	case index == completed:
		return StepCurrent
	default:
		return StepLocked
	}
}

// Percent returns completed/stepsCount as a rounded percentage in [0,100].
func Percent(completed, stepsCount int) int {
	if stepsCount <= 0 {
		return 0
	}
	p := int(math.Round(float64(completed) / float64(stepsCount) * 100))
	return max(0, min(100, p))
}

// TrackProgress is one started track in a Summary.
type TrackProgress struct {
	Track     content.Track
	Completed int
	Percent   int
}

// Done reports whether every step of the track is completed.
func (p TrackProgress) Done() bool {
	return p.Completed >= p.Track.StepsCount
}

// Summary aggregates a user's progress for the profile view.
type Summary struct {
	// Started lists tracks with at least one completed step, in registry
	// order.
	Started         []TrackProgress
	CompletedTracks int

	// Missions is the total number of completed steps.
	Missions int
}

// Summarize joins progress counts against the tracks. Ids that are not
// in tracks are skipped.
func Summarize(counts map[string]int, tracks []content.Track) Summary {
	var sum Summary
	for _, t := range tracks {
		n := counts[t.ID]
		if n <= 0 {
			continue
		}
		tp := TrackProgress{Track: t, Completed: n, Percent: Percent(n, t.StepsCount)}
		sum.Started = append(sum.Started, tp)
		sum.Missions += n
		if tp.Done() {
			sum.CompletedTracks++
		}
	}
	return sum
}
