package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and EduGenie styling.
type TextInput struct {
	Label string
	Model textinput.Model
}

// NewTextInput creates a new labelled text input. A charLimit of zero
// means unlimited.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Prompt = "› "

	return TextInput{
		Label: label,
		Model: ti,
	}
}

// Focus gives the input keyboard focus and starts the cursor blink.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has keyboard focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label and the input.
func (t TextInput) View() string {
	label := theme.Label.Render(t.Label)
	if t.Focused() {
		label = theme.Focused.Render(t.Label)
	}
	return label + "\n" + t.Model.View()
}

// Value returns the current input value exactly as typed.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}
