package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Raj-Mandhyan/EduGenie3/internal/lesson"
	"github.com/Raj-Mandhyan/EduGenie3/internal/logger"
	"github.com/Raj-Mandhyan/EduGenie3/internal/router"
	"github.com/Raj-Mandhyan/EduGenie3/internal/screen"
	"github.com/Raj-Mandhyan/EduGenie3/internal/screens/generate"
	"github.com/Raj-Mandhyan/EduGenie3/internal/screens/welcome"
	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/layout"
)

// Options holds dependencies injected into the TUI.
type Options struct {
	Generator lesson.Generator
	Logger    *logger.Logger

	// Endpoint is shown in the header and on the help screen. Display only.
	Endpoint string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	endpoint string
	width    int
	height   int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	form := func() screen.Screen {
		return generate.New(opts.Generator, log, opts.Endpoint)
	}
	return AppModel{
		router:   router.New(welcome.New(form)),
		endpoint: opts.Endpoint,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.endpoint, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
