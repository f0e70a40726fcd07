// Package quizui is the interactive self-assessment quiz.
package quizui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/impa-jovem/impa/internal/assessment"
	"github.com/impa-jovem/impa/internal/content"
	"github.com/impa-jovem/impa/internal/ui/components"
	"github.com/impa-jovem/impa/internal/ui/layout"
	"github.com/impa-jovem/impa/internal/ui/theme"
)

// ErrCancelled is returned by Run when the user quits before finishing.
var ErrCancelled = errors.New("quiz cancelled")

type phase int

const (
	phaseQuestions phase = iota
	phaseReflection
	phaseDone
)

// Result is what the user entered.
type Result struct {
	Answers    assessment.Answers
	Reflection assessment.Reflection
}

// Model walks through the quiz questions, then the three reflection
// prompts.
type Model struct {
	questions []content.QuizQuestion
	index     int
	choice    components.Choice
	answers   assessment.Answers

	inputs []components.TextInput
	field  int

	phase     phase
	cancelled bool
	width     int
}

func New() Model {
	m := Model{
		questions: content.QuizQuestions(),
		answers:   assessment.Answers{},
		inputs: []components.TextInput{
			components.NewTextInput("What do you like doing?", "e.g. drawing, gaming, talking to people", 280),
			components.NewTextInput("What are you good at?", "e.g. explaining things, organizing", 280),
			components.NewTextInput("What do you want to develop?", "e.g. public speaking", 280),
		},
	}
	for i := 1; i < len(m.inputs); i++ {
		m.inputs[i].Model.Blur()
	}
	m.choice = m.choiceFor(0)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
		if m.phase == phaseQuestions {
			return m.updateQuestions(msg)
		}
		if m.phase == phaseReflection {
			return m.updateReflection(msg)
		}
	}

	return m, nil
}

func (m Model) updateQuestions(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "left" && m.index > 0 {
		m.index--
		m.choice = m.choiceFor(m.index)
		return m, nil
	}

	m.choice, _ = m.choice.Update(msg)
	if !m.choice.Submitted {
		return m, nil
	}

	q := m.questions[m.index]
	m.answers[q.ID] = q.Options[m.choice.Selected].Value
	m.index++
	if m.index < len(m.questions) {
		m.choice = m.choiceFor(m.index)
		return m, nil
	}

	m.phase = phaseReflection
	return m, m.inputs[0].Model.Focus()
}

func (m Model) updateReflection(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "tab":
		if m.field == len(m.inputs)-1 {
			if msg.String() == "enter" {
				m.phase = phaseDone
				return m, tea.Quit
			}
			return m, nil
		}
		return m, m.focus(m.field + 1)
	case "shift+tab", "up":
		if m.field > 0 {
			return m, m.focus(m.field - 1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	return m, cmd
}

// focus moves the cursor to field i. It mutates the inputs slice shared
// with the returned model copy.
func (m *Model) focus(i int) tea.Cmd {
	m.inputs[m.field].Model.Blur()
	m.field = i
	return m.inputs[i].Model.Focus()
}

func (m Model) choiceFor(i int) components.Choice {
	q := m.questions[i]
	labels := make([]string, len(q.Options))
	preselect := 0
	for j, o := range q.Options {
		labels[j] = o.Label
		if o.Value == m.answers[q.ID] {
			preselect = j
		}
	}
	return components.NewChoice(q.Text, labels, preselect)
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.SetContent(m.render())
	return v
}

func (m Model) render() string {
	width := layout.ClampWidth(m.width)

	var title, body string
	var hints []layout.KeyHint
	switch m.phase {
	case phaseQuestions:
		title = fmt.Sprintf("Question %d of %d", m.index+1, len(m.questions))
		body = m.choice.View() + "\n" +
			components.NewProgressBar("", m.index*100/len(m.questions), false, components.ContentWidth(width)).View()
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "←", Description: "Back"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseReflection:
		title = "About you"
		parts := make([]string, len(m.inputs))
		for i, in := range m.inputs {
			parts[i] = in.View()
		}
		body = theme.Subtitle.Render("A few words help your mentor-bot get it right.") + "\n\n" +
			strings.Join(parts, "\n\n")
		hints = []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Shift+Tab", Description: "Previous"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		title = "Done"
		body = theme.Completed.Render("Thanks! Building your potential map...")
	}

	return layout.RenderFrame(
		layout.RenderHeader(title, width),
		lipgloss.NewStyle().Width(width).Render(body),
		layout.RenderFooter(hints),
	)
}

// Result returns the collected answers once the quiz is finished.
func (m Model) Result() (Result, bool) {
	if m.phase != phaseDone || m.cancelled {
		return Result{}, false
	}
	return Result{
		Answers: m.answers,
		Reflection: assessment.Reflection{
			Likes:   m.inputs[0].Value(),
			GoodAt:  m.inputs[1].Value(),
			Develop: m.inputs[2].Value(),
		},
	}, true
}

// Run shows the quiz on the terminal and returns what the user entered.
func Run(ctx context.Context) (Result, error) {
	p := tea.NewProgram(New(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	res, ok := final.(Model).Result()
	if !ok {
		return Result{}, ErrCancelled
	}
	return res, nil
}
