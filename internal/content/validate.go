package content

import (
	"fmt"
	"strings"
)

// Validate checks the registry for consistency.
func Validate() error {
	return validateRegistry(reg)
}

func validateRegistry(r *registry) error {
	var errs []string

	if len(r.tracks) == 0 {
		errs = append(errs, "no tracks defined")
	}

	seen := make(map[string]bool, len(r.tracks))
	for _, t := range r.tracks {
		if t.ID == "" {
			errs = append(errs, fmt.Sprintf("track %q: empty id", t.Title))
			continue
		}
		if t.ID == GeneralTrackID {
			errs = append(errs, fmt.Sprintf("track %q: id is reserved", t.ID))
		}
		if strings.Contains(t.ID, "_") {
			errs = append(errs, fmt.Sprintf("track %q: id must not contain '_'", t.ID))
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate track id: %q", t.ID))
		}
		seen[t.ID] = true

		if t.Title == "" {
			errs = append(errs, fmt.Sprintf("track %q: empty title", t.ID))
		}
		if t.StepsCount < 1 {
			errs = append(errs, fmt.Sprintf("track %q: must have at least one step", t.ID))
		}
		if t.StepsCount != len(t.Steps) {
			errs = append(errs, fmt.Sprintf("track %q: StepsCount is %d but %d steps are defined",
				t.ID, t.StepsCount, len(t.Steps)))
		}
		for i, s := range t.Steps {
			if s.ID != i+1 {
				errs = append(errs, fmt.Sprintf("track %q: step %d has id %d, want %d", t.ID, i, s.ID, i+1))
			}
			if s.Title == "" || s.Content == "" {
				errs = append(errs, fmt.Sprintf("track %q: step %d is missing title or content", t.ID, s.ID))
			}
		}
	}

	qseen := make(map[int]bool, len(r.quiz))
	for _, q := range r.quiz {
		if qseen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate quiz question id: %d", q.ID))
		}
		qseen[q.ID] = true
		if q.Text == "" {
			errs = append(errs, fmt.Sprintf("quiz question %d: empty text", q.ID))
		}
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("quiz question %d: needs at least two options", q.ID))
		}
		values := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.Value == "" {
				errs = append(errs, fmt.Sprintf("quiz question %d: option %q has empty value", q.ID, o.Label))
			}
			if values[o.Value] {
				errs = append(errs, fmt.Sprintf("quiz question %d: duplicate option value %q", q.ID, o.Value))
			}
			values[o.Value] = true
		}
	}

	for _, s := range suggestedTracks {
		if s.TrackID != "" && !seen[s.TrackID] {
			errs = append(errs, fmt.Sprintf("suggested track %q maps to unknown track %q", s.ID, s.TrackID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("content registry validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
