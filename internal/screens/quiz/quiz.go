// Package quiz hosts the active quiz screen: question presentation,
// answer entry, timed feedback and the hand-off to results.
package quiz

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizcraft/internal/identity"
	"github.com/abhisek/quizcraft/internal/llm"
	quizeng "github.com/abhisek/quizcraft/internal/quiz"
	"github.com/abhisek/quizcraft/internal/quizgen"
	"github.com/abhisek/quizcraft/internal/router"
	"github.com/abhisek/quizcraft/internal/screen"
	"github.com/abhisek/quizcraft/internal/screens/results"
	"github.com/abhisek/quizcraft/internal/store"
	"github.com/abhisek/quizcraft/internal/ui/components"
	"github.com/abhisek/quizcraft/internal/ui/layout"
)

// QuizScreen implements screen.Screen for an active quiz run.
type QuizScreen struct {
	gen         quizgen.Generator
	attemptRepo store.AttemptRepo
	ident       identity.Provider
	req         quizgen.Request

	machine *quizeng.Machine

	// Answer entry for the current question. optionsActive selects
	// between the option list (MCQ, True/False) and free text.
	options       components.OptionList
	input         components.TextInput
	optionsActive bool

	last   quizeng.AnsweredQuestion
	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a new QuizScreen for the given request.
func New(gen quizgen.Generator, attemptRepo store.AttemptRepo, ident identity.Provider, req quizgen.Request) *QuizScreen {
	return &QuizScreen{
		gen:         gen,
		attemptRepo: attemptRepo,
		ident:       ident,
		req:         req,
		machine:     quizeng.NewMachine(),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	epoch, ok := s.machine.BeginGeneration()
	if !ok {
		return nil
	}
	return s.generate(epoch)
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.machine.State() {
	case quizeng.StatePresenting:
		if s.optionsActive {
			return []layout.KeyHint{
				{Key: "↑↓", Description: "Choose"},
				{Key: "Enter", Description: "Submit"},
				{Key: "Esc", Description: "Abandon"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	case quizeng.StateFeedback:
		return nil
	default:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
}

// generate runs the generation pipeline off the UI loop.
func (s *QuizScreen) generate(epoch int) tea.Cmd {
	gen, req := s.gen, s.req
	return func() tea.Msg {
		questions, err := gen.Generate(context.Background(), req)
		return generatedMsg{Epoch: epoch, Questions: questions, Err: err}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		return s.handleGenerated(msg)

	case feedbackElapsedMsg:
		return s.handleFeedbackElapsed(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.machine.State() == quizeng.StatePresenting && !s.optionsActive {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleGenerated(msg generatedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.machine.FailGeneration(msg.Epoch)
		s.errMsg = generationErrorMessage(msg.Err)
		return s, nil
	}
	if !s.machine.CompleteGeneration(msg.Epoch, msg.Questions, s.req.Difficulty) {
		return s, nil
	}
	return s, s.setupAnswerEntry()
}

func (s *QuizScreen) handleFeedbackElapsed(msg feedbackElapsedMsg) (screen.Screen, tea.Cmd) {
	if !s.machine.AdvanceFeedback(msg.Epoch, msg.Index) {
		return s, nil
	}
	if s.machine.State() == quizeng.StateFinished {
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: results.New(s.machine, s.attemptRepo, s.ident),
			}
		}
	}
	return s, s.setupAnswerEntry()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Generation failure: any key goes back to the form.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.machine.State() {
	case quizeng.StateFeedback:
		// Feedback advances on its own timer; keys are ignored so a
		// double enter cannot skip or re-score anything.
		return s, nil

	case quizeng.StatePresenting:
		switch key {
		case "enter":
			return s.submit()
		}
		if s.optionsActive {
			var cmd tea.Cmd
			s.options, cmd = s.options.Update(msg)
			return s, cmd
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submit grades the current entry and arms the feedback hold timer.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	q := s.machine.Session().Current()
	if q == nil {
		return s, nil
	}

	var answered quizeng.AnsweredQuestion
	var ok bool
	switch {
	case s.optionsActive && q.Category == quizgen.CategoryMultipleChoice:
		answered, ok = s.machine.SubmitOption(s.options.Selected)
	case s.optionsActive:
		answered, ok = s.machine.Submit(s.options.Options[s.options.Selected])
	default:
		if s.input.Value() == "" {
			return s, nil
		}
		answered, ok = s.machine.Submit(s.input.Value())
	}
	if !ok {
		return s, nil
	}

	s.last = answered
	if s.optionsActive {
		s.options.Reveal(correctOptionIndex(q, s.options.Options), s.options.Selected)
	} else {
		s.input.Submit(answered.Correct)
	}

	epoch := s.machine.Epoch()
	index := s.machine.Session().Index
	return s, tea.Tick(quizeng.FeedbackHold, func(time.Time) tea.Msg {
		return feedbackElapsedMsg{Epoch: epoch, Index: index}
	})
}

// setupAnswerEntry prepares the input widgets for the current question.
func (s *QuizScreen) setupAnswerEntry() tea.Cmd {
	q := s.machine.Session().Current()
	if q == nil {
		return nil
	}

	switch q.Category {
	case quizgen.CategoryMultipleChoice:
		s.optionsActive = true
		s.options = components.NewOptionList(q.Options)
		return nil
	case quizgen.CategoryTrueFalse:
		s.optionsActive = true
		s.options = components.NewOptionList([]string{"True", "False"})
		return nil
	default:
		s.optionsActive = false
		s.input = components.NewTextInput("Type your answer...", false, 60)
		return s.input.Init()
	}
}

// correctOptionIndex finds the option the canonical answer matches, or
// -1 when none does.
func correctOptionIndex(q *quizgen.Question, options []string) int {
	for i, opt := range options {
		if quizgen.Matches(opt, q.Answer) {
			return i
		}
	}
	return -1
}

// generationErrorMessage maps pipeline errors to user-facing text.
func generationErrorMessage(err error) string {
	var budgetErr *quizgen.BudgetError
	var rateLimit *llm.ErrRateLimit
	var credits *llm.ErrCreditsRequired

	switch {
	case errors.As(err, &budgetErr):
		return budgetErr.UserMessage()
	case errors.Is(err, quizgen.ErrNoQuestions):
		return "No questions were generated. Try a longer or clearer text."
	case errors.As(err, &rateLimit):
		return "Rate limit exceeded. Please try again later."
	case errors.As(err, &credits):
		return "Payment required. Please add credits to your workspace."
	default:
		return "Failed to generate quiz. Please try again."
	}
}
