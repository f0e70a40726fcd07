package content

// Track is a guided practical program: a fixed sequence of steps that a
// student completes one at a time.
type Track struct {
	ID          string
	Title       string
	Description string
	Duration    string
	StepsCount  int
	Icon        string
	Mission     string
	Steps       []Step

	// ReflectionQuestions are prompts shown once the track is finished.
	ReflectionQuestions []string
}

// Step is one unit of a track. IDs are 1-based positions.
type Step struct {
	ID      int
	Title   string
	Content string
}

// QuizQuestion is a multiple-choice question of the self-assessment quiz.
type QuizQuestion struct {
	ID      int
	Text    string
	Options []QuizOption
}

// QuizOption is one answer; Value is what gets stored and sent to the
// generator.
type QuizOption struct {
	Label string
	Value string
}

// Option returns the option with the given value.
func (q QuizQuestion) Option(value string) (QuizOption, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return QuizOption{}, false
}

// GeneralTrackID tags journal entries not tied to any track.
const GeneralTrackID = "general"
