package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mymath/mymath/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = ` ███╗   ███╗██╗   ██╗    ███╗   ███╗ █████╗ ████████╗██╗  ██╗
 ████╗ ████║╚██╗ ██╔╝    ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║
 ██╔████╔██║ ╚████╔╝     ██╔████╔██║███████║   ██║   ███████║
 ██║╚██╔╝██║  ╚██╔╝      ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║
 ██║ ╚═╝ ██║   ██║       ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
 ╚═╝     ╚═╝   ╚═╝       ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝`

// defaultTitle is drawn with the block art; any other configured title is
// drawn as spaced letters.
const defaultTitle = "MyMath"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(title string, cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	text := spaced(title)
	if !compact && title == defaultTitle && cw >= lipgloss.Width(arcadeTitleFull) {
		text = arcadeTitleFull
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

// spaced renders "MyMath" as "M · Y · M · A · T · H".
func spaced(title string) string {
	letters := make([]string, 0, len(title))
	for _, r := range strings.ToUpper(title) {
		if r == ' ' {
			continue
		}
		letters = append(letters, string(r))
	}
	return strings.Join(letters, " · ")
}

// renderStatsBar renders the play stats in a bordered box matching content width.
func renderStatsBar(sessions, videos, cw int, compact bool) string {
	sessionStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	videoStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			sessionStyle.Render(fmt.Sprintf("★%d", sessions)),
			videoStyle.Render(fmt.Sprintf("🎬%d", videos)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			sessionStyle.Render(fmt.Sprintf("★ %d GAMES PLAYED", sessions)),
			videoStyle.Render(fmt.Sprintf("🎬 %d VIDEOS WON", videos)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := normalBtn.Foreground(theme.TextDim)

	var buttons []string
	for i, label := range items {
		switch {
		case disabled[i]:
			buttons = append(buttons, disabledBtn.Render(label))
		case i == selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		default:
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as plain lines for small
// terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		switch {
		case disabled[i]:
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		case i == selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		default:
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, badge string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant, badge))
}
