package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcraft/internal/identity"
	"github.com/abhisek/quizcraft/internal/quizgen"
	"github.com/abhisek/quizcraft/internal/router"
	"github.com/abhisek/quizcraft/internal/screen"
	"github.com/abhisek/quizcraft/internal/screens/history"
	"github.com/abhisek/quizcraft/internal/screens/setup"
	"github.com/abhisek/quizcraft/internal/store"
	"github.com/abhisek/quizcraft/internal/ui/components"
	"github.com/abhisek/quizcraft/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu        components.Menu
	attempts    int
	avgScore    float64
	hasStats    bool
	providerSet bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(gen quizgen.Generator, attemptRepo store.AttemptRepo, ident identity.Provider) *HomeScreen {
	h := &HomeScreen{providerSet: gen != nil}

	// Pull quick stats for the banner when a user is resolved.
	if attemptRepo != nil && ident != nil {
		if userID, ok := ident.CurrentUserID(context.Background()); ok {
			if stats, err := attemptRepo.Stats(context.Background(), userID); err == nil && stats.Attempts > 0 {
				h.attempts = stats.Attempts
				h.avgScore = stats.AvgScore
				h.hasStats = true
			}
		}
	}

	items := []components.MenuItem{
		{
			Label:    "START QUIZ",
			Disabled: gen == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: setup.New(gen, attemptRepo, ident)}
				}
			},
		},
		{
			Label:    "HISTORY",
			Disabled: attemptRepo == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(attemptRepo, ident)}
				}
			},
		},
		{
			Label:  "EXIT",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("Q U I Z C R A F T")
	subtitle := theme.Subtitle.Width(width).Render("Turn any text into a quiz")
	sections = append(sections, title, subtitle)

	if h.hasStats {
		stats := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(pluralAttempts(h.attempts) + "  ·  avg score " + percent(h.avgScore))
		sections = append(sections, stats)
	}

	if !h.providerSet {
		warn := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("No generation provider configured. Set GROQ_API_KEY to enable quizzes.")
		sections = append(sections, warn)
	}

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func pluralAttempts(n int) string {
	if n == 1 {
		return "1 quiz taken"
	}
	return fmt.Sprintf("%d quizzes taken", n)
}

func percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}
