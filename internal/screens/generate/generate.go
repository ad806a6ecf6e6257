package generate

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Raj-Mandhyan/EduGenie3/internal/controller"
	"github.com/Raj-Mandhyan/EduGenie3/internal/lesson"
	"github.com/Raj-Mandhyan/EduGenie3/internal/logger"
	"github.com/Raj-Mandhyan/EduGenie3/internal/router"
	"github.com/Raj-Mandhyan/EduGenie3/internal/screen"
	"github.com/Raj-Mandhyan/EduGenie3/internal/screens/help"
	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/components"
	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/layout"
	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/theme"
)

// Form fields in tab order.
const (
	focusTopic = iota
	focusDifficulty
	focusDiagram
	focusAudio
	focusVideo
	focusSubmit
	focusCount
)

// Screen is the lesson request form together with its results region.
// It is the controller's UI port.
type Screen struct {
	ctx      context.Context
	ctrl     *controller.Controller
	endpoint string

	topic      components.TextInput
	difficulty components.Select
	formats    [3]components.Checkbox // indexed like lesson.AllFormats
	submit     components.Button
	spinner    spinner.Model
	focus      int

	busy    bool
	results []fragment
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the form screen. Requests go through gen; endpoint is only
// shown on the help screen.
func New(gen lesson.Generator, log *logger.Logger, endpoint string) *Screen {
	difficulties := lesson.Difficulties()
	options := make([]string, len(difficulties))
	for i, d := range difficulties {
		options[i] = string(d)
	}

	s := &Screen{
		ctx:        context.Background(),
		endpoint:   endpoint,
		topic:      components.NewTextInput("Topic", "e.g. Photosynthesis", 0),
		difficulty: components.NewSelect("Difficulty", options),
		formats: [3]components.Checkbox{
			components.NewCheckbox("Diagram"),
			components.NewCheckbox("Audio narration"),
			components.NewCheckbox("Video"),
		},
		submit:  components.NewButton("Generate Lesson"),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.Spinner)),
	}
	s.ctrl = controller.New(s, gen, log)
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.setFocus(focusTopic)
}

func (s *Screen) Title() string {
	return "New Lesson"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.busy {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
	}
	switch s.focus {
	case focusDifficulty:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Change"})
	case focusDiagram, focusAudio, focusVideo:
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Generate"},
		layout.KeyHint{Key: "F1", Description: "Help"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// Busy reports whether the busy indicator is showing.
func (s *Screen) Busy() bool {
	return s.busy
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonDoneMsg:
		s.ctrl.Complete(msg.Result, msg.Err)
		return s, nil

	case spinner.TickMsg:
		if !s.busy {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and other input housekeeping.
	if s.focus == focusTopic {
		var cmd tea.Cmd
		s.topic, cmd = s.topic.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return s, s.submitForm()
	case "f1":
		// The router only feeds the top screen, so stay put while a
		// response is pending.
		if s.busy {
			return s, nil
		}
		h := help.New(s.endpoint)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: h} }
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % focusCount)
	case "shift+tab", "up":
		return s, s.setFocus((s.focus - 1 + focusCount) % focusCount)
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusTopic:
		s.topic, cmd = s.topic.Update(msg)
	case focusDifficulty:
		s.difficulty, cmd = s.difficulty.Update(msg)
	case focusDiagram, focusAudio, focusVideo:
		i := s.focus - focusDiagram
		s.formats[i], cmd = s.formats[i].Update(msg)
	}
	return s, cmd
}

func (s *Screen) setFocus(f int) tea.Cmd {
	s.focus = f
	s.difficulty.Focused = f == focusDifficulty
	for i := range s.formats {
		s.formats[i].Focused = f == focusDiagram+i
	}
	s.submit.Focused = f == focusSubmit

	if f == focusTopic {
		return s.topic.Focus()
	}
	s.topic.Blur()
	return nil
}

// submitForm starts a request unless the submit control is disabled.
func (s *Screen) submitForm() tea.Cmd {
	if !s.submit.Enabled {
		return nil
	}
	req, err := s.ctrl.Begin()
	if err != nil {
		return nil
	}
	return tea.Batch(s.spinner.Tick, s.request(req))
}

// request performs the network call off the update loop.
func (s *Screen) request(req lesson.Request) tea.Cmd {
	ctx, ctrl := s.ctx, s.ctrl
	return func() tea.Msg {
		res, err := ctrl.Generate(ctx, req)
		return lessonDoneMsg{Result: res, Err: err}
	}
}

func (s *Screen) View(width, height int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	b.WriteString(s.renderForm(inner))
	b.WriteString("\n\n")
	if s.busy {
		b.WriteString(s.renderBusy())
		b.WriteString("\n\n")
	}
	b.WriteString(s.renderResults(inner))

	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}
