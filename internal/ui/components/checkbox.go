package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/theme"
)

// Checkbox is an independently toggled option.
type Checkbox struct {
	Label   string
	Checked bool
	Focused bool
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(label string) Checkbox {
	return Checkbox{Label: label}
}

// Update toggles the box on space while focused.
func (c Checkbox) Update(msg tea.Msg) (Checkbox, tea.Cmd) {
	if !c.Focused {
		return c, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "space" {
		c.Checked = !c.Checked
	}
	return c, nil
}

// View renders the checkbox.
func (c Checkbox) View() string {
	box := "[ ]"
	if c.Checked {
		box = "[x]"
	}
	line := box + " " + c.Label
	if c.Focused {
		return theme.Focused.Render("▸ " + line)
	}
	return theme.Unfocused.Render("  " + line)
}
