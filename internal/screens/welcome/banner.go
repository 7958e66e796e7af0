package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/mymath/mymath/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗██╗   ██╗    ███╗   ███╗ █████╗ ████████╗██╗  ██╗
 ████╗ ████║╚██╗ ██╔╝    ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║
 ██╔████╔██║ ╚████╔╝     ██╔████╔██║███████║   ██║   ███████║
 ██║╚██╔╝██║  ╚██╔╝      ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║
 ██║ ╚═╝ ██║   ██║       ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
 ╚═╝     ╚═╝   ╚═╝       ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝`

// bannerWidth is the width of the block-letter art.
const bannerWidth = 64

// RenderBanner returns the title banner styled in the primary color. The
// block art is only used for the default title on terminals wide enough
// to hold it.
func RenderBanner(title string, width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if title != "MyMath" || width < bannerWidth {
		return style.Render(title)
	}
	return style.Render(bannerArt)
}
