package assets

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", n, err)
		}
	}
}

func TestDirListsByExtension(t *testing.T) {
	root := t.TempDir()
	images := filepath.Join(root, "images")
	videos := filepath.Join(root, "videos")
	for _, d := range []string{images, videos} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	touch(t, images, "cat.PNG", "dog.jpg", "notes.txt", "bird.jpeg")
	touch(t, videos, "dance.mp4", "thumb.png")
	if err := os.Mkdir(filepath.Join(images, "nested.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	d := Dir{ImagesFolder: images, VideosFolder: videos}

	wantImages := []string{
		filepath.Join(images, "bird.jpeg"),
		filepath.Join(images, "cat.PNG"),
		filepath.Join(images, "dog.jpg"),
	}
	if got := d.Images(); !slices.Equal(got, wantImages) {
		t.Errorf("Images() = %v, want %v", got, wantImages)
	}
	if got := d.Videos(); !slices.Equal(got, []string{filepath.Join(videos, "dance.mp4")}) {
		t.Errorf("Videos() = %v", got)
	}
}

func TestDirMissingFoldersAreEmpty(t *testing.T) {
	d := Dir{
		ImagesFolder: filepath.Join(t.TempDir(), "nope"),
		SoundsFolder: "",
	}

	if got := d.Images(); got == nil || len(got) != 0 {
		t.Errorf("Images() = %#v, want empty non-nil", got)
	}
	if got := d.Sounds(); len(got) != 0 {
		t.Errorf("Sounds() = %v, want empty", got)
	}
	if got := d.Videos(); len(got) != 0 {
		t.Errorf("Videos() = %v, want empty", got)
	}
}

func TestScanNotADirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "file.png")

	files, err := Scan(filepath.Join(dir, "file.png"), ImageExts)
	if err == nil {
		t.Fatal("expected error scanning a regular file")
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/img/apple.png", "🍎"},
		{"/img/Red_Apple_02.JPG", "🍎"},
		{"/img/strawberry.png", "🍓"},
		{"/img/cat.png", "🐱"},
		{"/img/zebra.png", DefaultGlyph},
		{"", DefaultGlyph},
	}

	for _, tt := range tests {
		if got := Glyph(tt.path); got != tt.want {
			t.Errorf("Glyph(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
