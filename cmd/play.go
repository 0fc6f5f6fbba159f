package cmd

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goosechase/internal/audio"
	"goosechase/internal/config"
	"goosechase/internal/desktop"
	"goosechase/internal/game"
	"goosechase/internal/tty"
)

func newPlayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in a window or in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.play(cmd)
		},
	}
	fs := cmd.Flags()
	fs.String("frontend", config.FrontendDesktop, "desktop or tty")
	fs.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	fs.Bool("demo", false, "let the autopilot play")
	fs.Int("flock", 0, "number of geese")
	fs.Int("scale", 0, "window pixels per field unit")
	fs.Bool("mute", false, "start with audio muted")
	bindFlag(fs, "frontend", "display.frontend")
	bindFlag(fs, "seed", "game.seed")
	bindFlag(fs, "demo", "game.demo")
	bindFlag(fs, "flock", "game.flock_size")
	bindFlag(fs, "scale", "display.scale")
	return cmd
}

func (a *app) play(cmd *cobra.Command) error {
	cfg := a.cfg
	settings, mode, err := settingsFrom(cfg)
	if err != nil {
		return err
	}
	session, err := game.NewGameSession(settings, game.SystemClock{}, a.log.Named("session"))
	if err != nil {
		return err
	}
	a.log.Info("starting game",
		zap.String("frontend", cfg.Display.Frontend),
		zap.Uint64("seed", settings.Seed),
		zap.Int("flock", settings.FlockSize),
		zap.Bool("demo", cfg.Game.Demo))

	useAudio := cfg.Audio.Enabled
	if useAudio {
		if err := audio.Init(cfg.Audio.Volume, a.log.Named("audio")); err != nil {
			a.log.Warn("audio init failed, continuing without sound", zap.Error(err))
			useAudio = false
		}
	}
	if muted, _ := cmd.Flags().GetBool("mute"); muted {
		audio.SetMuted(true)
	}

	ctx := cmd.Context()
	switch cfg.Display.Frontend {
	case config.FrontendTTY:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init terminal: %w", err)
		}
		defer screen.Fini()
		return tty.Run(ctx, screen, session, tty.Options{
			HoldTicks: cfg.Display.HoldTicks,
			Demo:      cfg.Game.Demo,
			Mode:      mode,
			Audio:     useAudio,
			Log:       a.log.Named("tty"),
		})
	case config.FrontendDesktop:
		return desktop.Run(ctx, desktop.Options{
			Session: session,
			Scale:   cfg.Display.Scale,
			VSync:   cfg.Display.VSync,
			Demo:    cfg.Game.Demo,
			Mode:    mode,
			Audio:   useAudio,
			Seed:    settings.Seed,
			Log:     a.log.Named("desktop"),
		})
	}
	return fmt.Errorf("%w %q", config.ErrUnknownFrontend, cfg.Display.Frontend)
}

// settingsFrom turns the decoded config into core settings. Seed 0 is
// replaced by one taken from the clock.
func settingsFrom(cfg *config.Config) (game.Settings, game.Mode, error) {
	mode, err := game.ParseMode(cfg.Game.Mode)
	if err != nil {
		return game.Settings{}, 0, err
	}
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return game.Settings{
		Field:     game.DefaultField(),
		FlockSize: cfg.Game.FlockSize,
		Seed:      seed,
	}, mode, nil
}
