// Package results shows the end-of-quiz summary and records the
// attempt for the current user.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcraft/internal/identity"
	quizeng "github.com/abhisek/quizcraft/internal/quiz"
	"github.com/abhisek/quizcraft/internal/router"
	"github.com/abhisek/quizcraft/internal/screen"
	"github.com/abhisek/quizcraft/internal/store"
	"github.com/abhisek/quizcraft/internal/ui/components"
	"github.com/abhisek/quizcraft/internal/ui/layout"
	"github.com/abhisek/quizcraft/internal/ui/theme"
)

// attemptSavedMsg reports the outcome of attempt persistence.
type attemptSavedMsg struct {
	Saved bool // false when the run was anonymous
	Err   error
}

// ResultsScreen displays the summary for a finished run.
type ResultsScreen struct {
	machine     *quizeng.Machine
	attemptRepo store.AttemptRepo
	ident       identity.Provider

	saveDone bool
	saved    bool
	saveErr  error
	selected int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen over a finished machine.
func New(machine *quizeng.Machine, attemptRepo store.AttemptRepo, ident identity.Provider) *ResultsScreen {
	return &ResultsScreen{
		machine:     machine,
		attemptRepo: attemptRepo,
		ident:       ident,
	}
}

// Init persists the attempt. Anonymous runs and repeat visits are
// no-ops; the machine hands out the record at most once.
func (s *ResultsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		if s.attemptRepo == nil || s.ident == nil {
			return attemptSavedMsg{}
		}
		userID, ok := s.ident.CurrentUserID(ctx)
		if !ok {
			return attemptSavedMsg{}
		}
		rec, ok := s.machine.BuildRecord(userID)
		if !ok {
			return attemptSavedMsg{}
		}

		err := s.attemptRepo.Append(ctx, store.QuizAttemptData{
			UserID:          rec.UserID,
			TotalQuestions:  rec.TotalQuestions,
			CorrectAnswers:  rec.CorrectAnswers,
			ScorePercentage: rec.ScorePercentage,
			Difficulty:      rec.Difficulty,
			QuizType:        rec.QuizType,
		})
		return attemptSavedMsg{Saved: err == nil, Err: err}
	}
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Review"},
		{Key: "Esc", Description: "New quiz"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptSavedMsg:
		s.saveDone = true
		s.saved = msg.Saved
		s.saveErr = msg.Err
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.answers())-1 {
				s.selected++
			}
		case "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) answers() []quizeng.AnsweredQuestion {
	sess := s.machine.Session()
	if sess == nil {
		return nil
	}
	return sess.Answers
}

func (s *ResultsScreen) View(width, height int) string {
	sess := s.machine.Session()
	if sess == nil {
		return ""
	}

	total := len(sess.Questions)
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Quiz Complete"))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("%d / %d correct", sess.Score, total)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(scoreLine))
	b.WriteString("\n\n")

	var percent float64
	if total > 0 {
		percent = float64(sess.Score) / float64(total)
	}
	bar := components.NewProgressBar("", percent, true, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Per-question review.
	for i, a := range sess.Answers {
		mark := theme.Correct.Render("✓")
		if !a.Correct {
			mark = theme.Incorrect.Render("✗")
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s %s", prefix, mark, truncate(a.Question.Text, width-20))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if i == s.selected && !a.Correct {
			detail := fmt.Sprintf("    your answer: %s   correct: %s", a.Submitted, a.Question.Answer)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(truncate(detail, width-8))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render(s.saveStatus()))

	return b.String()
}

func (s *ResultsScreen) saveStatus() string {
	switch {
	case !s.saveDone:
		return "Saving attempt..."
	case s.saveErr != nil:
		return "Could not save this attempt."
	case s.saved:
		return "Attempt saved."
	default:
		return "Sign in to save attempts."
	}
}

func truncate(s string, width int) string {
	if width < 4 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
