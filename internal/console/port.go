// Package console provides a non-interactive controller port for running a
// single lesson request from the command line.
package console

import (
	"io"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Raj-Mandhyan/EduGenie3/internal/controller"
	"github.com/Raj-Mandhyan/EduGenie3/internal/lesson"
	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/theme"
)

// Form holds the values a terminal form would otherwise collect.
type Form struct {
	Topic      string
	Difficulty string
	Formats    []lesson.Format
}

// Port implements controller.Port over plain writers. Results are buffered
// and written by Flush; busy transitions go to the status writer as they
// happen.
type Port struct {
	form   Form
	out    io.Writer
	status io.Writer

	busy          bool
	submitEnabled bool
	failed        bool
	blocks        []string
}

var _ controller.Port = (*Port)(nil)

// NewPort creates a Port. status may be nil to suppress progress output.
func NewPort(form Form, out, status io.Writer) *Port {
	if status == nil {
		status = io.Discard
	}
	return &Port{form: form, out: out, status: status, submitEnabled: true}
}

func (p *Port) Topic() string      { return p.form.Topic }
func (p *Port) Difficulty() string { return p.form.Difficulty }

func (p *Port) FormatChecked(f lesson.Format) bool {
	return slices.Contains(p.form.Formats, f)
}

func (p *Port) SetBusy(busy bool) {
	if busy && !p.busy {
		lipgloss.Fprintln(p.status, theme.Hint.Render("Please wait, generating your lesson..."))
	}
	p.busy = busy
}

func (p *Port) SetSubmitEnabled(enabled bool) { p.submitEnabled = enabled }

func (p *Port) ClearResults() {
	p.blocks = p.blocks[:0]
	p.failed = false
}

func (p *Port) AppendText(text string) {
	p.blocks = append(p.blocks, text)
}

func (p *Port) AppendImage(src, alt string) {
	p.blocks = append(p.blocks,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("[image] "+alt)+"\n"+theme.Link.Render(src))
}

func (p *Port) AppendAudio(src string, controls bool) {
	label := "[audio]"
	if controls {
		label += " ▶"
	}
	p.blocks = append(p.blocks,
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(label)+"\n"+theme.Link.Render(src))
}

func (p *Port) ShowError(message string) {
	p.blocks = append(p.blocks, theme.Alert.Render(message))
	p.failed = true
}

// Busy reports whether the busy indicator is showing.
func (p *Port) Busy() bool { return p.busy }

// SubmitEnabled reports whether another submission would be accepted.
func (p *Port) SubmitEnabled() bool { return p.submitEnabled }

// Failed reports whether the results region holds an error.
func (p *Port) Failed() bool { return p.failed }

// Flush writes the results region to the output writer. An empty region
// writes nothing.
func (p *Port) Flush() error {
	if len(p.blocks) == 0 {
		return nil
	}
	_, err := lipgloss.Fprintln(p.out, strings.Join(p.blocks, "\n\n"))
	return err
}
