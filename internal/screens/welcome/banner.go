package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/Raj-Mandhyan/EduGenie3/internal/ui/theme"
)

const bannerArt = `
 ███████╗██████╗ ██╗   ██╗ ██████╗ ███████╗███╗   ██╗██╗███████╗
 ██╔════╝██╔══██╗██║   ██║██╔════╝ ██╔════╝████╗  ██║██║██╔════╝
 █████╗  ██║  ██║██║   ██║██║  ███╗█████╗  ██╔██╗ ██║██║█████╗
 ██╔══╝  ██║  ██║██║   ██║██║   ██║██╔══╝  ██║╚██╗██║██║██╔══╝
 ███████╗██████╔╝╚██████╔╝╚██████╔╝███████╗██║ ╚████║██║███████╗
 ╚══════╝╚═════╝  ╚═════╝  ╚═════╝ ╚══════╝╚═╝  ╚═══╝╚═╝╚══════╝`

const bannerCompact = "E D U G E N I E"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 65

// RenderBanner returns the banner in the primary color, falling back to
// spaced letters when the terminal is too narrow for the block art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
