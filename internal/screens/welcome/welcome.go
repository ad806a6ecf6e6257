package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Raj-Mandhyan/EduGenie3/internal/router"
	"github.com/Raj-Mandhyan/EduGenie3/internal/screen"
	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	lampLitAt    = 500 * time.Millisecond
	bannerAt     = 1200 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const lampArt = `      .-.
     (   )
      '-'
   ___|_|___
  /  ~~~~~  \
 /___________\`

// glow frames alternate above the lamp once it is lit
var glowFrames = []string{"· ✦ ·", "✦ · ✦"}

const tagline = "Any topic, explained your way."

type tickMsg time.Time

// WelcomeScreen shows a short splash, then hands over to the lesson form.
// Any key skips the animation.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with next() on key press.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	if w.elapsed >= lampLitAt {
		glow := glowFrames[w.tickCount%len(glowFrames)]
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(glow))
	} else {
		sections = append(sections, "")
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Render(lampArt))

	if w.elapsed >= bannerAt {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
			"",
			theme.Hint.Render("press any key to start"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
