package content

var seedTracks = []Track{
	{
		ID:          "money",
		Title:       "Earn Income",
		Description: "Turn skills you already have into extra money, without complications.",
		Duration:    "4 weeks",
		StepsCount:  4,
		Icon:        "dollar",
		Mission:     "Identify a skill and make your first offer.",
		ReflectionQuestions: []string{
			"Which skill did I choose?",
			"How did making the first offer go?",
			"What did I learn about selling my work?",
		},
		Steps: []Step{
			{ID: 1, Title: "Identify a Skill", Content: "List 3 things you do well (e.g. drawing, explaining school subjects, pet sitting, editing videos)."},
			{ID: 2, Title: "Offer", Content: "Think of 2 ways to offer this skill to someone, as a product or a service."},
			{ID: 3, Title: "Take Action", Content: "Take one small action: offer it to 3 people you know or post it in a group."},
			{ID: 4, Title: "Record", Content: "Write in your journal: was anyone interested? How did you feel? What would you do differently?"},
		},
	},
	{
		ID:          "social-impact",
		Title:       "Communication → Impact",
		Description: "Use your voice to stand up for a cause and mobilize people.",
		Duration:    "3 weeks",
		StepsCount:  4,
		Icon:        "megaphone",
		Mission:     "Create and share a message about something that matters to you.",
		ReflectionQuestions: []string{
			"Was my message clear?",
			"How did people react?",
			"Did I feel I made an impact?",
		},
		Steps: []Step{
			{ID: 1, Title: "Your Cause", Content: "Pick a topic you care about (environment, education, equality, animals)."},
			{ID: 2, Title: "Content", Content: "Create simple content (text, short video or poster) explaining why it matters."},
			{ID: 3, Title: "Mini Action", Content: "Share it, or host a small conversation circle about the topic."},
			{ID: 4, Title: "Reflection", Content: "How was it received? Did you change anyone's view? Write it down."},
		},
	},
	{
		ID:          "project-management",
		Title:       "Project Organization",
		Description: "Get ideas off paper with simple organization, from plan to execution.",
		Duration:    "5 weeks",
		StepsCount:  4,
		Icon:        "layout",
		Mission:     "Plan and carry out a simple action with a beginning, middle and end.",
		ReflectionQuestions: []string{
			"Did the plan work?",
			"What turned out differently than expected?",
			"How did I feel while organizing?",
		},
		Steps: []Step{
			{ID: 1, Title: "The Plan", Content: "Define a simple action (e.g. tidying your room, a study group, a small event)."},
			{ID: 2, Title: "Tools", Content: "Create a task checklist or a simple schedule with dates."},
			{ID: 3, Title: "Coordination", Content: "If other people are involved, split the tasks. If it's just you, follow the schedule."},
			{ID: 4, Title: "Review", Content: "At the end, compare what you planned with what happened. What worked? What failed?"},
		},
	},
	{
		ID:          "social-media",
		Title:       "Social Media → Causes",
		Description: "Use social networks to create movement and engagement, not just to consume.",
		Duration:    "4 weeks",
		StepsCount:  4,
		Icon:        "smartphone",
		Mission:     "Create a post meant to drive real engagement on a useful topic.",
		ReflectionQuestions: []string{
			"Did I engage anyone?",
			"Do the numbers matter, or the message?",
			"What did I learn about strategy?",
		},
		Steps: []Step{
			{ID: 1, Title: "Strategy", Content: "Set a goal: inform, inspire or call to action?"},
			{ID: 2, Title: "Creation", Content: "Create an engagement post (poll, question, informative carousel)."},
			{ID: 3, Title: "Analysis", Content: "After 24h, look beyond likes at comments and saves. What do they tell you?"},
			{ID: 4, Title: "Adjust", Content: "Based on the data, what would you change for the next post?"},
		},
	},
	{
		ID:          "leadership",
		Title:       "Youth Leadership",
		Description: "To lead is to serve. Learn to guide small groups and initiatives.",
		Duration:    "4 weeks",
		StepsCount:  4,
		Icon:        "users",
		Mission:     "Lead a small activity or initiative.",
		ReflectionQuestions: []string{
			"Was it hard to lead?",
			"Did I listen to people?",
			"Was the goal achieved?",
		},
		Steps: []Step{
			{ID: 1, Title: "Initiative", Content: "Find a chance to lead (school assignment, sports, family project)."},
			{ID: 2, Title: "Action Plan", Content: "Write a simple plan of who does what and the shared goal."},
			{ID: 3, Title: "Guidance", Content: "Guide your peers, answer questions and keep the group motivated while doing it."},
			{ID: 4, Title: "Reflection", Content: "Ask the group how your leadership went and write down what you learned."},
		},
	},
}

var seedQuiz = []QuizQuestion{
	{
		ID:   1,
		Text: "In a school group project, what do you usually do?",
		Options: []QuizOption{
			{Label: "I organize who does what and the deadlines.", Value: "organizer"},
			{Label: "I come up with the creative and visual ideas.", Value: "creative"},
			{Label: "I present the work in front of the class.", Value: "communicator"},
			{Label: "I do the research and write the text.", Value: "executor"},
		},
	},
	{
		ID:   2,
		Text: "If you had $100 to multiply, what would you do?",
		Options: []QuizOption{
			{Label: "Buy ingredients to make something and sell it.", Value: "entrepreneur"},
			{Label: "Save it so I don't spend it.", Value: "saver"},
			{Label: "Invest in a short course.", Value: "learner"},
			{Label: "Pool it with friends to do something bigger.", Value: "collaborator"},
		},
	},
	{
		ID:   3,
		Text: "What bothers you most about the world?",
		Options: []QuizOption{
			{Label: "Things being disorganized.", Value: "order"},
			{Label: "Injustice towards people.", Value: "justice"},
			{Label: "A lack of creativity and beauty.", Value: "beauty"},
			{Label: "Inefficiency (things that don't work).", Value: "efficiency"},
		},
	},
	{
		ID:   4,
		Text: "How would your friends describe you?",
		Options: []QuizOption{
			{Label: "The advisor, who knows how to listen.", Value: "listener"},
			{Label: "The lively one, who gets things going.", Value: "energizer"},
			{Label: "The smart one, who knows stuff.", Value: "knowledgeable"},
			{Label: "The reliable one, who always helps.", Value: "reliable"},
		},
	},
	{
		ID:   5,
		Text: "What do you prefer to do in your free time?",
		Options: []QuizOption{
			{Label: "Play strategy games or solve puzzles.", Value: "strategy"},
			{Label: "Make videos, drawings or writing.", Value: "creation"},
			{Label: "Go out and meet new people.", Value: "social"},
			{Label: "Organize my room or my things.", Value: "organization"},
		},
	},
}

// suggestedTracks is the track vocabulary of the potential-map generator,
// in declaration order. Values are registry ids, or "" where the
// generator names a track the registry does not offer.
var suggestedTracks = []struct {
	ID      string
	TrackID string
	Label   string
}{
	{"money", "money", "Earn money with what you already know"},
	{"impact", "social-impact", "Create impact with ideas and communication"},
	{"organize", "project-management", "Organize ideas and projects"},
	{"lead", "leadership", "Lead people"},
	{"selfcare", "", "Self-care and health"},
	{"business", "", "Start your own company"},
}

func init() {
	reg = buildRegistry(seedTracks, seedQuiz)
	if err := Validate(); err != nil {
		panic(err)
	}
}
