package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Raj-Mandhyan/EduGenie3/internal/screen"
	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/layout"
	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/theme"
)

var bindings = []layout.KeyHint{
	{Key: "Tab / ↓", Description: "Next field"},
	{Key: "Shift+Tab / ↑", Description: "Previous field"},
	{Key: "← →", Description: "Change difficulty"},
	{Key: "Space", Description: "Toggle a format"},
	{Key: "Enter", Description: "Generate the lesson"},
	{Key: "Esc", Description: "Close this help"},
	{Key: "Ctrl+C", Description: "Quit"},
}

// Screen lists the form's key bindings and where requests are sent.
type Screen struct {
	endpoint string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

func New(endpoint string) *Screen {
	return &Screen{endpoint: endpoint}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Help" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *Screen) View(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(16)

	var b strings.Builder
	b.WriteString(theme.Label.Render("Keys"))
	b.WriteString("\n\n")
	for _, k := range bindings {
		b.WriteString(keyStyle.Render(k.Key))
		b.WriteString(theme.Body.Render(k.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Label.Render("Lessons are requested from"))
	b.WriteString("\n")
	b.WriteString(theme.Link.Render(s.endpoint))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Formats you leave unchecked are not requested. Video is requested but not shown."))

	return lipgloss.NewStyle().PaddingLeft(2).PaddingTop(1).Render(b.String())
}
