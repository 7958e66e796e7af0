package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mymath/mymath/internal/store"
	"github.com/mymath/mymath/internal/ui/theme"
)

// MascotVariant selects which mascot face to draw.
type MascotVariant int

const (
	MascotIdle MascotVariant = iota
	// MascotCelebrating: the last game won a video.
	MascotCelebrating
	// MascotCheering: the last game had mistakes.
	MascotCheering
)

// badgeWidth is the inside width of the mascot's screen.
const badgeWidth = 5

// mascotFor picks the face and the badge for the most recent session, nil
// when nothing has been played yet.
func mascotFor(last *store.SessionRecord) (MascotVariant, string) {
	if last == nil {
		return MascotIdle, "123"
	}
	badge := fmt.Sprintf("%d/%d", last.Correct, last.Rounds)
	if len(badge) > badgeWidth {
		badge = fmt.Sprintf("%.0f%%", last.Accuracy()*100)
	}
	switch {
	case last.VideoPath != "":
		return MascotCelebrating, badge
	case last.Correct < last.Rounds:
		return MascotCheering, badge
	}
	return MascotIdle, badge
}

// RenderMascot draws the mascot with badge on its screen.
func RenderMascot(variant MascotVariant, badge string) string {
	eyes, mouth, fg := "◉   ◉", "▽", theme.Primary
	switch variant {
	case MascotCelebrating:
		eyes, mouth, fg = "★   ★", "▿", theme.ArcadeYellow
	case MascotCheering:
		eyes, mouth, fg = "◕   ◕", "◡", theme.ArcadeCyan
	}

	border := strings.Repeat("─", badgeWidth+2)
	lines := []string{
		"┌" + border + "┐",
		"│ " + center(eyes) + " │",
		"│ " + center(mouth) + " │",
		"│ " + center(badge) + " │",
		"└" + border + "┘",
	}
	if variant == MascotCelebrating {
		lines[4] = "└─╥═══╥─┘"
		lines = append(lines, "  ╚═══╝")
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(strings.Join(lines, "\n"))
}

func center(s string) string {
	w := lipgloss.Width(s)
	if w >= badgeWidth {
		return s
	}
	left := (badgeWidth - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", badgeWidth-w-left)
}
