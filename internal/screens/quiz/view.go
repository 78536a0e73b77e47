package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	quizeng "github.com/abhisek/quizcraft/internal/quiz"
	"github.com/abhisek/quizcraft/internal/quizgen"
	"github.com/abhisek/quizcraft/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}

	switch s.machine.State() {
	case quizeng.StateGenerating:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Generating your quiz...")
	case quizeng.StatePresenting, quizeng.StateFeedback:
		return s.renderQuestion(width, height)
	default:
		return ""
	}
}

// renderQuestion renders the current question with its answer entry,
// plus the verdict line while feedback is showing.
func (s *QuizScreen) renderQuestion(width, height int) string {
	sess := s.machine.Session()
	q := sess.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Progress line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + categoryName(q.Category))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d/%d  Score %d", sess.Index+1, len(sess.Questions), sess.Score))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text (centered).
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	// Answer entry.
	if s.optionsActive {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}

	// Verdict during the feedback hold.
	if s.machine.State() == quizeng.StateFeedback {
		b.WriteString("\n\n")
		if s.last.Correct {
			b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Not quite"))
			if q.Answer != "" {
				b.WriteString("\n")
				b.WriteString(lipgloss.NewStyle().
					Width(width).
					Align(lipgloss.Center).
					Foreground(theme.TextDim).
					Render(fmt.Sprintf("Correct answer: %s", q.Answer)))
			}
		}
	}

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg))
}

func categoryName(c quizgen.Category) string {
	switch c {
	case quizgen.CategoryMultipleChoice:
		return "Multiple Choice"
	case quizgen.CategoryFillInBlank:
		return "Fill in the Blank"
	case quizgen.CategoryTrueFalse:
		return "True or False"
	default:
		return string(c)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
