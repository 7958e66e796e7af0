package welcome

import (
	"fmt"

	"github.com/mymath/mymath/internal/config"
)

// Sources lists the asset files found on disk.
type Sources interface {
	Images() []string
	Sounds() []string
	Videos() []string
}

// Inventory is what the game found at startup: which mini-games the config
// allows and which assets and players are present.
type Inventory struct {
	Title string

	Rounds    int
	MinCount  int
	MaxCount  int
	MaxNumber int

	Images int
	Sounds int
	Videos int

	SoundEnabled bool
	SoundPlayer  bool
	VideoPlayer  bool
}

// TakeInventory counts the assets in src and copies the numbers each mini-game
// runs with from cfg.
func TakeInventory(cfg config.Config, src Sources, soundPlayer, videoPlayer bool) Inventory {
	return Inventory{
		Title:        cfg.Title,
		Rounds:       cfg.Game.Rounds,
		MinCount:     cfg.Counting.MinCount,
		MaxCount:     cfg.Counting.MaxCount,
		MaxNumber:    cfg.Game.MaxNumber,
		Images:       len(src.Images()),
		Sounds:       len(src.Sounds()),
		Videos:       len(src.Videos()),
		SoundEnabled: cfg.Sound.Enabled,
		SoundPlayer:  soundPlayer,
		VideoPlayer:  videoPlayer,
	}
}

// CheckLine is one row of the startup check.
type CheckLine struct {
	Text string
	OK   bool
}

// Lines describes the inventory. A line that is not OK names the fallback
// the game uses instead.
func (inv Inventory) Lines() []CheckLine {
	lines := []CheckLine{
		{Text: fmt.Sprintf("Counting: %d to %d things, %s", inv.MinCount, inv.MaxCount, plural(inv.Rounds, "round")), OK: true},
	}

	if inv.MaxNumber >= 2 {
		lines = append(lines, CheckLine{Text: fmt.Sprintf("Addition: sums up to %d", inv.MaxNumber), OK: true})
	} else {
		lines = append(lines, CheckLine{Text: "Addition: needs game.max_number of 2 or more"})
	}

	if inv.Images > 0 {
		lines = append(lines, CheckLine{Text: plural(inv.Images, "picture"), OK: true})
	} else {
		lines = append(lines, CheckLine{Text: "No pictures, counting colored shapes"})
	}

	switch {
	case !inv.SoundEnabled:
		lines = append(lines, CheckLine{Text: "Sound is off"})
	case inv.Sounds == 0:
		lines = append(lines, CheckLine{Text: "No cheer sounds found, playing quietly"})
	case !inv.SoundPlayer:
		lines = append(lines, CheckLine{Text: "No sound player installed, playing quietly"})
	default:
		lines = append(lines, CheckLine{Text: plural(inv.Sounds, "cheer sound"), OK: true})
	}

	switch {
	case inv.Videos == 0:
		lines = append(lines, CheckLine{Text: "No reward videos, a gold star instead"})
	case !inv.VideoPlayer:
		lines = append(lines, CheckLine{Text: "No video player installed, a gold star instead"})
	default:
		lines = append(lines, CheckLine{Text: plural(inv.Videos, "reward video"), OK: true})
	}

	return lines
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
