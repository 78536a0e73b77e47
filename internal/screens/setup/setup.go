// Package setup hosts the quiz configuration form: passage text,
// per-category question counts and difficulty.
package setup

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcraft/internal/identity"
	"github.com/abhisek/quizcraft/internal/quizgen"
	"github.com/abhisek/quizcraft/internal/router"
	"github.com/abhisek/quizcraft/internal/screen"
	quizscreen "github.com/abhisek/quizcraft/internal/screens/quiz"
	"github.com/abhisek/quizcraft/internal/store"
	"github.com/abhisek/quizcraft/internal/ui/components"
	"github.com/abhisek/quizcraft/internal/ui/layout"
	"github.com/abhisek/quizcraft/internal/ui/theme"
)

// Form field indices, in tab order.
const (
	fieldPassage = iota
	fieldMCQs
	fieldFIBs
	fieldTFs
	fieldDifficulty
	fieldStart
	fieldCount
)

var difficulties = []quizgen.Difficulty{
	quizgen.DifficultyEasy,
	quizgen.DifficultyMedium,
	quizgen.DifficultyHard,
}

// SetupScreen collects the generation request before a quiz starts.
type SetupScreen struct {
	gen         quizgen.Generator
	attemptRepo store.AttemptRepo
	ident       identity.Provider

	passage    components.TextArea
	mcqs       components.TextInput
	fibs       components.TextInput
	tfs        components.TextInput
	difficulty int
	start      components.Button

	focus  int
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(gen quizgen.Generator, attemptRepo store.AttemptRepo, ident identity.Provider) *SetupScreen {
	s := &SetupScreen{
		gen:         gen,
		attemptRepo: attemptRepo,
		ident:       ident,
		passage:     components.NewTextArea("Paste or type the study text here...", 70, 8),
		mcqs:        components.NewTextInput("0", true, 2),
		fibs:        components.NewTextInput("0", true, 2),
		tfs:         components.NewTextInput("0", true, 2),
		difficulty:  1, // medium
	}
	s.start = components.NewButton("Generate Quiz", false, s.startQuiz)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.passage.Focus()
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Difficulty"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			return s, s.setFocus((s.focus + 1) % fieldCount)
		case "shift+tab":
			return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
		case "left":
			if s.focus == fieldDifficulty {
				s.difficulty = (s.difficulty + len(difficulties) - 1) % len(difficulties)
				return s, nil
			}
		case "right":
			if s.focus == fieldDifficulty {
				s.difficulty = (s.difficulty + 1) % len(difficulties)
				return s, nil
			}
		case "enter":
			// Enter inside the passage inserts a newline; anywhere else
			// it submits the form.
			if s.focus != fieldPassage {
				return s, s.startQuiz()
			}
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldPassage:
		s.passage, cmd = s.passage.Update(msg)
	case fieldMCQs:
		s.mcqs, cmd = s.mcqs.Update(msg)
	case fieldFIBs:
		s.fibs, cmd = s.fibs.Update(msg)
	case fieldTFs:
		s.tfs, cmd = s.tfs.Update(msg)
	}
	return s, cmd
}

// setFocus moves focus, blurring the passage when leaving it.
func (s *SetupScreen) setFocus(next int) tea.Cmd {
	s.focus = next
	s.start.Active = next == fieldStart
	if next == fieldPassage {
		return s.passage.Focus()
	}
	s.passage.Blur()
	return nil
}

// request assembles the generation request from the form. Malformed
// counts read as zero; range checks happen in Validate.
func (s *SetupScreen) request() quizgen.Request {
	return quizgen.Request{
		Passage:      s.passage.Value(),
		Difficulty:   difficulties[s.difficulty],
		MCQs:         count(s.mcqs),
		FillInBlanks: count(s.fibs),
		TrueFalse:    count(s.tfs),
	}
}

// startQuiz validates the form and hands off to the quiz screen.
func (s *SetupScreen) startQuiz() tea.Cmd {
	req := s.request()

	if err := req.Validate(); err != nil {
		s.errMsg = userMessage(err)
		return nil
	}
	if req.TotalQuestions() == 0 {
		s.errMsg = "Pick at least one question."
		return nil
	}
	if _, _, err := quizgen.PlanBudget(req.Passage, req.TotalQuestions()); err != nil {
		s.errMsg = userMessage(err)
		return nil
	}

	s.errMsg = ""
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: quizscreen.New(s.gen, s.attemptRepo, s.ident, req),
		}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	label := func(text string, focused bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return style.Render(text)
	}

	b.WriteString(label("Study text", s.focus == fieldPassage))
	b.WriteString("\n")
	b.WriteString(s.passage.View())
	b.WriteString("\n\n")

	counts := fmt.Sprintf("%s %s    %s %s    %s %s",
		label("Multiple choice:", s.focus == fieldMCQs), s.mcqs.View(),
		label("Fill in the blank:", s.focus == fieldFIBs), s.fibs.View(),
		label("True/False:", s.focus == fieldTFs), s.tfs.View(),
	)
	b.WriteString(counts)
	b.WriteString("\n\n")

	b.WriteString(label("Difficulty:", s.focus == fieldDifficulty))
	b.WriteString("  ")
	b.WriteString(s.renderDifficulty())
	b.WriteString("\n\n")

	b.WriteString(s.start.View())

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *SetupScreen) renderDifficulty() string {
	parts := make([]string, len(difficulties))
	for i, d := range difficulties {
		if i == s.difficulty {
			parts[i] = theme.Selected.Render("[" + string(d) + "]")
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + string(d) + " ")
		}
	}
	return strings.Join(parts, " ")
}

// count reads a numeric field, treating empty or malformed as zero.
func count(in components.TextInput) int {
	n, err := in.NumericValue()
	if err != nil {
		return 0
	}
	return n
}

// userMessage maps validation errors to form messages.
func userMessage(err error) string {
	var budgetErr *quizgen.BudgetError
	switch {
	case errors.Is(err, quizgen.ErrMissingInput):
		return "No text provided."
	case errors.Is(err, quizgen.ErrCountOutOfRange):
		return fmt.Sprintf("Counts must be between 0 and %d.", quizgen.MaxPerCategory)
	case errors.As(err, &budgetErr):
		return budgetErr.UserMessage()
	default:
		return err.Error()
	}
}
