// Package assets discovers the image, sound and video files the game uses.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ImageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp"}
	SoundExts = []string{".wav", ".mp3", ".ogg"}
	VideoExts = []string{".mp4", ".avi", ".mkv", ".mov", ".webm"}
)

// Dir lists assets from three folders. Missing or unreadable folders yield
// empty lists.
type Dir struct {
	ImagesFolder string
	SoundsFolder string
	VideosFolder string
}

// Images returns the image files, sorted by path.
func (d Dir) Images() []string {
	return List(d.ImagesFolder, ImageExts)
}

// Sounds returns the sound files, sorted by path.
func (d Dir) Sounds() []string {
	return List(d.SoundsFolder, SoundExts)
}

// Videos returns the video files, sorted by path.
func (d Dir) Videos() []string {
	return List(d.VideosFolder, VideoExts)
}

// List returns the files directly inside dir whose extension (case
// insensitive) is one of exts.
func List(dir string, exts []string) []string {
	files, _ := Scan(dir, exts)
	return files
}

// Scan is List with the read error exposed for diagnostics. A missing
// folder is not an error.
func Scan(dir string, exts []string) ([]string, error) {
	if dir == "" {
		return []string{}, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return []string{}, fmt.Errorf("read %s: %w", dir, err)
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasExt(entry.Name(), exts) {
			out = append(out, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
