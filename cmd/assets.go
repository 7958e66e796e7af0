package cmd

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/mymath/mymath/internal/assets"
	"github.com/mymath/mymath/internal/media"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List the pictures, sounds and videos the game will use",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := resolveEnv(cmd)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(env)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printAssets(out, "Pictures", cfg.ImagesFolder, assets.ImageExts, true)
		printAssets(out, "Sounds", cfg.Sound.CorrectSound, assets.SoundExts, false)
		printAssets(out, "Videos", cfg.Video.VideosFolder, assets.VideoExts, false)

		fmt.Fprintln(out)
		printPlayer(cmd, out, "Sound player", cfg.Sound.Command, media.SoundCandidates)
		printPlayer(cmd, out, "Video player", cfg.Video.Command, media.VideoCandidates)
		return nil
	},
}

func printAssets(out io.Writer, label, dir string, exts []string, glyphs bool) {
	files, err := assets.Scan(dir, exts)
	fmt.Fprintf(out, "%s (%s): %d\n", label, dir, len(files))
	if err != nil {
		fmt.Fprintf(out, "  %v\n", err)
		return
	}
	for _, f := range files {
		if glyphs {
			fmt.Fprintf(out, "  %s %s\n", runewidth.FillRight(assets.Glyph(f), 2), filepath.Base(f))
			continue
		}
		fmt.Fprintf(out, "  %s\n", filepath.Base(f))
	}
}

func printPlayer(cmd *cobra.Command, out io.Writer, label, command string, candidates []media.Command) {
	p := media.New(cmd.Context(), command, candidates, log.New(io.Discard, "", 0))
	if !p.Available() {
		fmt.Fprintf(out, "%s: none found\n", label)
		return
	}
	fmt.Fprintf(out, "%s: %s\n", label, p.Command())
}

