package tty

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"goosechase/internal/audio"
	"goosechase/internal/game"
)

// flashTicks is how long a cue message stays on the status bar.
const flashTicks = 90

var errQuit = errors.New("tty: quit")

type Options struct {
	HoldTicks int           // ticks a key press stays held
	Interval  time.Duration // tick period, TickDuration when zero
	MaxTicks  int           // stop after this many ticks, 0 runs until quit
	Demo      bool
	Mode      game.Mode // mode the autopilot starts in
	Audio     bool
	Log       *zap.Logger
}

// Run drives session on an initialized screen until the player quits, ctx is
// cancelled or MaxTicks pass. The caller owns Init and Fini.
func Run(ctx context.Context, screen tcell.Screen, session *game.GameSession, opts Options) error {
	if session == nil {
		return errors.New("tty: no session")
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Interval <= 0 {
		opts.Interval = game.TickDuration
	}

	actions := make(chan action, 64)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case nil:
				// Screen finalized.
				return nil
			case *tcell.EventInterrupt:
				if gctx.Err() != nil {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				a := mapKey(ev)
				if a == actQuit {
					return errQuit
				}
				if a == actNone {
					continue
				}
				select {
				case actions <- a:
				case <-gctx.Done():
					return nil
				}
			}
		}
	})

	g.Go(func() error {
		// Stop the poller too: cancel, then wake it so it sees the cancellation.
		defer func() {
			cancel()
			if err := screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
				log.Debug("post interrupt", zap.Error(err))
			}
		}()
		return loop(gctx, screen, session, opts, actions, log)
	})

	err := g.Wait()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func loop(ctx context.Context, screen tcell.Screen, session *game.GameSession, opts Options, actions <-chan action, log *zap.Logger) error {
	holds := NewHolds(opts.HoldTicks)
	pilot := game.NewAutopilot(opts.Mode)
	pilot.Loop = true
	demo := opts.Demo

	bus := game.NewEventBus()
	if opts.Audio {
		audio.Subscribe(bus)
	}
	var ov Overlay
	flash := 0
	say := func(msg string) { ov.Flash, flash = msg, flashTicks }
	bus.Subscribe(game.CueHerded, func(c game.Cue) {
		if c.Data > 1 {
			say(fmt.Sprintf("HONK x%d!", c.Data))
			return
		}
		say("HONK!")
	})
	bus.Subscribe(game.CuePowerUpGrabbed, func(c game.Cue) { say(fmt.Sprintf("P%d got BIG!", c.Data+1)) })
	bus.Subscribe(game.CuePowerDown, func(c game.Cue) { say(fmt.Sprintf("P%d shrank", c.Data+1)) })
	bus.Subscribe(game.CuePowerUpExpired, func(game.Cue) { say("power-up fizzled") })
	bus.Subscribe(game.CueRestarted, func(game.Cue) { ov.Flash, flash = "", 0 })

	var prev, cur game.Snapshot
	var cues []game.Cue
	session.SnapshotInto(&prev)

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for ticks := 0; opts.MaxTicks == 0 || ticks < opts.MaxTicks; {
		select {
		case <-ctx.Done():
			return nil
		case a := <-actions:
			switch a {
			case actDemo:
				demo = !demo
				log.Info("demo toggled", zap.Bool("demo", demo))
			case actMute:
				audio.SetMuted(!audio.Muted())
			default:
				holds.Press(a)
			}
		case <-ticker.C:
			in := holds.Input()
			if demo {
				in = pilot.Next(&prev)
			}
			session.Step(in)
			session.SnapshotInto(&cur)
			cues = game.DiffCues(cues[:0], &prev, &cur)
			bus.EmitAll(cues)
			prev, cur = cur, prev

			if flash > 0 {
				flash--
				if flash == 0 {
					ov.Flash = ""
				}
			}
			ov.Demo, ov.Muted = demo, audio.Muted()
			Draw(screen, &prev, ov)
			screen.Show()
			ticks++
		}
	}
	return nil
}
