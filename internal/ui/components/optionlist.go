package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcraft/internal/ui/theme"
)

// OptionList is a selector over answer options. The caller decides what
// a selection means; after grading it can reveal the outcome so the
// correct option shows green and a wrong pick shows red.
type OptionList struct {
	Options  []string
	Selected int

	revealed   bool
	correctIdx int
	chosenIdx  int
}

// NewOptionList creates a new option selector.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options:    options,
		correctIdx: -1,
		chosenIdx:  -1,
	}
}

// Update handles keyboard navigation. Number keys jump directly to an
// option; selection is confirmed by the caller on enter.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.revealed {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(o.Options) {
				o.Selected = i
			}
		}
	}

	return o, nil
}

// Reveal locks the list and marks the grading outcome. Pass -1 for
// correctIdx when the canonical answer matches no option.
func (o *OptionList) Reveal(correctIdx, chosenIdx int) {
	o.revealed = true
	o.correctIdx = correctIdx
	o.chosenIdx = chosenIdx
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected && !o.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'a'+i, opt)

		switch {
		case o.revealed && i == o.correctIdx:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case o.revealed && i == o.chosenIdx:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case o.revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
