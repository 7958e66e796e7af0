// Package media plays sound and video files through an external player
// program, so the game never blocks on decoding.
package media

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// Auto selects the first installed candidate.
const Auto = "auto"

// ErrNoPlayer is returned by Play when no player program is available.
var ErrNoPlayer = errors.New("no media player available")

// Command is a player program and the arguments placed before the file path.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// SoundCandidates are tried in order when the sound command is auto.
var SoundCandidates = []Command{
	{Name: "paplay"},
	{Name: "afplay"},
	{Name: "aplay", Args: []string{"-q"}},
	{Name: "ffplay", Args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{Name: "mpv", Args: []string{"--no-video", "--really-quiet"}},
}

// VideoCandidates are tried in order when the video command is auto.
var VideoCandidates = []Command{
	{Name: "mpv", Args: []string{"--fs", "--really-quiet"}},
	{Name: "vlc", Args: []string{"--play-and-exit", "--fullscreen"}},
	{Name: "ffplay", Args: []string{"-autoexit", "-fs", "-loglevel", "quiet"}},
	{Name: "open"},
	{Name: "xdg-open"},
}

// Player starts one external process per Play call and does not wait for it.
type Player struct {
	ctx    context.Context
	cmd    *Command
	logger *log.Logger

	start func(*exec.Cmd) error
}

// New returns a Player for command. An empty or "auto" command picks the
// first candidate found on PATH. A Player with no command is valid; its
// Play returns ErrNoPlayer. Processes are killed when ctx is cancelled.
func New(ctx context.Context, command string, candidates []Command, logger *log.Logger) *Player {
	return newPlayer(ctx, command, candidates, logger, exec.LookPath)
}

func newPlayer(ctx context.Context, command string, candidates []Command, logger *log.Logger, lookPath func(string) (string, error)) *Player {
	if logger == nil {
		logger = log.Default()
	}
	p := &Player{ctx: ctx, logger: logger, start: startAndReap}

	command = strings.TrimSpace(command)
	if command != "" && command != Auto {
		parts := strings.Fields(command)
		p.cmd = &Command{Name: parts[0], Args: parts[1:]}
		return p
	}

	for _, c := range candidates {
		if _, err := lookPath(c.Name); err == nil {
			p.cmd = &c
			break
		}
	}
	if p.cmd == nil {
		logger.Printf("media: no player found among %d candidates", len(candidates))
	}
	return p
}

// Available reports whether Play can start anything.
func (p *Player) Available() bool {
	return p.cmd != nil
}

// Command returns the resolved player command, empty if none.
func (p *Player) Command() string {
	if p.cmd == nil {
		return ""
	}
	return p.cmd.String()
}

// Play starts the player on path and returns without waiting.
func (p *Player) Play(path string) error {
	if p.cmd == nil {
		return ErrNoPlayer
	}
	args := append(append([]string{}, p.cmd.Args...), path)
	cmd := exec.CommandContext(p.ctx, p.cmd.Name, args...)
	if err := p.start(cmd); err != nil {
		return fmt.Errorf("start %s: %w", p.cmd.Name, err)
	}
	p.logger.Printf("media: playing %s with %s", path, p.cmd.Name)
	return nil
}

func startAndReap(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// Noop is a player that plays nothing.
type Noop struct{}

// Play implements round.SoundPlayer.
func (Noop) Play(string) error { return nil }
