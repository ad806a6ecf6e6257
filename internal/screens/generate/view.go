package generate

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/theme"
)

// renderForm renders the input fields and the submit button.
func (s *Screen) renderForm(width int) string {
	var b strings.Builder

	b.WriteString(s.topic.View())
	b.WriteString("\n\n")
	b.WriteString(s.difficulty.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Label.Render("Formats"))
	b.WriteString("\n")
	for _, cb := range s.formats {
		b.WriteString(cb.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.submit.View())

	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

// renderBusy renders the busy indicator.
func (s *Screen) renderBusy() string {
	return s.spinner.View() + " " + theme.Hint.Render("Please wait, generating your lesson...")
}

// renderResults renders the results region. An empty region renders as
// nothing at all.
func (s *Screen) renderResults(width int) string {
	if len(s.results) == 0 {
		return ""
	}

	textWidth := width - 4 // border + padding
	if textWidth < 10 {
		textWidth = 10
	}

	parts := make([]string, 0, len(s.results))
	for _, f := range s.results {
		parts = append(parts, renderFragment(f, textWidth))
	}

	return theme.Results.Width(width).Render(strings.Join(parts, "\n\n"))
}

func renderFragment(f fragment, width int) string {
	switch f.kind {
	case fragmentText:
		return theme.Body.Width(width).Render(f.content)
	case fragmentImage:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("▣ "+f.alt) +
			"\n" + theme.Link.Render(f.content)
	case fragmentAudio:
		label := "♪ Audio"
		if f.controls {
			label += "  ▶ ⏸"
		}
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(label) +
			"\n" + theme.Link.Render(f.content)
	case fragmentError:
		return theme.Alert.Width(width).Render(f.content)
	default:
		return ""
	}
}
