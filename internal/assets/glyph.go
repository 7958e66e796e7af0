package assets

import (
	"path/filepath"
	"strings"
)

// glyphs maps words found in image file names to the emoji drawn in the
// terminal in place of the picture.
var glyphs = map[string]string{
	"apple":      "🍎",
	"banana":     "🍌",
	"ball":       "⚽",
	"bear":       "🐻",
	"bird":       "🐦",
	"butterfly":  "🦋",
	"car":        "🚗",
	"cat":        "🐱",
	"cherry":     "🍒",
	"dog":        "🐶",
	"duck":       "🦆",
	"fish":       "🐟",
	"flower":     "🌸",
	"frog":       "🐸",
	"heart":      "💖",
	"lemon":      "🍋",
	"moon":       "🌙",
	"orange":     "🍊",
	"pear":       "🍐",
	"rabbit":     "🐰",
	"star":       "⭐",
	"strawberry": "🍓",
	"sun":        "🌞",
	"tree":       "🌳",
	"turtle":     "🐢",
}

// DefaultGlyph is drawn for images whose name matches nothing in the table.
const DefaultGlyph = "◆"

// Glyph returns the emoji for an image path. The longest matching word wins.
func Glyph(path string) string {
	if path == "" {
		return DefaultGlyph
	}
	name := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

	best := ""
	for word := range glyphs {
		if !strings.Contains(name, word) {
			continue
		}
		if len(word) > len(best) || (len(word) == len(best) && word < best) {
			best = word
		}
	}
	if best == "" {
		return DefaultGlyph
	}
	return glyphs[best]
}
