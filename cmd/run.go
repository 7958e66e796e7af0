package cmd

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/mymath/mymath/internal/app"
	"github.com/mymath/mymath/internal/assets"
	"github.com/mymath/mymath/internal/media"
	"github.com/mymath/mymath/internal/reward"
	"github.com/mymath/mymath/internal/round"
	"github.com/mymath/mymath/internal/screen"
	"github.com/mymath/mymath/internal/screens/game"
	"github.com/mymath/mymath/internal/screens/home"
	"github.com/mymath/mymath/internal/screens/welcome"
)

// runApp opens the store, builds dependencies, and launches the TUI. With a
// nil mode the welcome screen is shown first; otherwise that game starts
// straight away on top of the home screen.
func runApp(cmd *cobra.Command, mode *round.Mode) error {
	ctx := cmd.Context()

	env, err := resolveEnv(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	if env.LogFile != "" {
		f, err := tea.LogToFile(env.LogFile, "mymath ")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	logger := log.Default()

	cfg, err := loadConfig(env)
	if err != nil {
		return err
	}
	logger.Printf("config: %s", describeConfigPath(cfg.Path))

	st, err := openStore(env)
	if err != nil {
		return err
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	dir := assets.Dir{
		ImagesFolder: cfg.ImagesFolder,
		SoundsFolder: cfg.Sound.CorrectSound,
		VideosFolder: cfg.Video.VideosFolder,
	}
	sound := media.New(ctx, cfg.Sound.Command, media.SoundCandidates, logger)
	video := media.New(ctx, cfg.Video.Command, media.VideoCandidates, logger)

	seed := time.Now().UnixNano()
	deps := game.Deps{
		Config:    *cfg,
		Assets:    dir,
		Sound:     sound,
		Video:     video,
		Rewards:   reward.NewService(dir, eventRepo, rand.New(rand.NewSource(seed+1)), logger),
		EventRepo: eventRepo,
		Rand:      rand.New(rand.NewSource(seed)),
		Logger:    logger,
	}

	opts := app.Options{
		Title:     cfg.Title,
		AltScreen: cfg.Window.Fullscreen,
	}

	var root screen.Screen
	if mode != nil {
		root = home.New(deps, eventRepo)
		opts.Start = game.New(*mode, deps)
	} else {
		inventory := welcome.TakeInventory(*cfg, dir, sound.Available(), video.Available())
		root = welcome.New(inventory, func() screen.Screen {
			return home.New(deps, eventRepo)
		})
	}

	return app.Run(app.New(root, opts))
}

func describeConfigPath(p string) string {
	if p == "" {
		return "defaults"
	}
	return p
}
