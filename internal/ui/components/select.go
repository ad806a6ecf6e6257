package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/theme"
)

// Select is a single-choice selector cycled with the arrow keys.
type Select struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewSelect creates a selector with the first option selected.
func NewSelect(label string, options []string) Select {
	return Select{
		Label:   label,
		Options: options,
	}
}

// Update handles left/right (and h/l) while focused.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	if !s.Focused || len(s.Options) == 0 {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Selected = (s.Selected - 1 + len(s.Options)) % len(s.Options)
	case "right", "l":
		s.Selected = (s.Selected + 1) % len(s.Options)
	}
	return s, nil
}

// Value returns the selected option, or "" when there are none.
func (s Select) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected]
}

// View renders the label and the options in a row.
func (s Select) View() string {
	label := theme.Label.Render(s.Label)
	if s.Focused {
		label = theme.Focused.Render(s.Label)
	}

	parts := make([]string, 0, len(s.Options))
	for i, opt := range s.Options {
		if i == s.Selected {
			style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
			if s.Focused {
				style = style.Foreground(theme.Primary)
			}
			parts = append(parts, style.Render("("+opt+")"))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(" "+opt+" "))
		}
	}

	row := strings.Join(parts, " ")
	if s.Focused {
		row = theme.Hint.Render("‹ ") + row + theme.Hint.Render(" ›")
	}
	return label + "\n" + row
}
