package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/layout"
)

// Screen is one full-window view managed by the router.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to replace the default footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
