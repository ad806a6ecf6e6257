package components

import (
	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/theme"
)

// Button is a styled submit control. A disabled button renders greyed out
// and callers must not act on it.
type Button struct {
	Label   string
	Focused bool
	Enabled bool
}

// NewButton creates a new enabled button.
func NewButton(label string) Button {
	return Button{
		Label:   label,
		Enabled: true,
	}
}

// View renders the button.
func (b Button) View() string {
	switch {
	case !b.Enabled:
		return theme.ButtonDisabled.Render("    " + b.Label + " ")
	case b.Focused:
		return theme.ButtonActive.Render("  ▸ " + b.Label + " ")
	default:
		return theme.ButtonInactive.Render("    " + b.Label + " ")
	}
}
