package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/languify/internal/ui/theme"
)

const bannerArt = `
 ██╗      █████╗ ███╗   ██╗ ██████╗ ██╗   ██╗██╗███████╗██╗   ██╗
 ██║     ██╔══██╗████╗  ██║██╔════╝ ██║   ██║██║██╔════╝╚██╗ ██╔╝
 ██║     ███████║██╔██╗ ██║██║  ███╗██║   ██║██║█████╗   ╚████╔╝
 ██║     ██╔══██║██║╚██╗██║██║   ██║██║   ██║██║██╔══╝    ╚██╔╝
 ███████╗██║  ██║██║ ╚████║╚██████╔╝╚██████╔╝██║██║        ██║
 ╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝ ╚═════╝  ╚═════╝ ╚═╝╚═╝        ╚═╝`

const bannerCompact = "L A N G U I F Y"

// RenderBanner returns the banner, falling back to spaced letters on
// terminals narrower than the block art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 68 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
