// Package sim plays whole sessions with the autopilot and no frontend.
package sim

import (
	"context"
	"fmt"
	"io"
	"time"

	json "github.com/json-iterator/go"
	"go.uber.org/zap"

	"goosechase/internal/game"
)

// DefaultMaxTicks bounds a run that never clears the flock.
const DefaultMaxTicks = 60 * 60 * 30

type Options struct {
	Settings game.Settings
	Mode     game.Mode
	MaxTicks int
	Log      *zap.Logger
}

// Report summarises one headless session.
type Report struct {
	SessionID       string  `json:"session_id"`
	Seed            uint64  `json:"seed"`
	Mode            string  `json:"mode"`
	Won             bool    `json:"won"`
	Ticks           int     `json:"ticks"`
	ElapsedSeconds  float64 `json:"elapsed_seconds"`
	Herded          int     `json:"herded"`
	Total           int     `json:"total"`
	Score           int     `json:"score"`
	Coverage        float64 `json:"coverage_pct"`
	PoopCount       int     `json:"poop_count"`
	PowerUpsGrabbed int     `json:"power_ups_grabbed"`
}

// Run starts a session in opts.Mode and steps it until the flock is cleared,
// MaxTicks running ticks pass or ctx is cancelled. A cancelled run still
// returns the report so far together with ctx.Err().
func Run(ctx context.Context, opts Options) (Report, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = DefaultMaxTicks
	}

	clock := game.NewManualClock(time.Unix(0, 0))
	session, err := game.NewGameSession(opts.Settings, clock, log.Named("session"))
	if err != nil {
		return Report{}, fmt.Errorf("sim: %w", err)
	}

	pilot := game.NewAutopilot(opts.Mode)
	var snap game.Snapshot
	session.SnapshotInto(&snap)
	session.Step(pilot.Next(&snap))

	for session.State == game.StateRunning && session.S.Tick < opts.MaxTicks {
		if err := ctx.Err(); err != nil {
			log.Info("sim cancelled", zap.Int("tick", session.S.Tick))
			session.SnapshotInto(&snap)
			return report(session, &snap), err
		}
		session.SnapshotInto(&snap)
		clock.Advance(game.TickDuration)
		session.Step(pilot.Next(&snap))
	}
	session.SnapshotInto(&snap)

	r := report(session, &snap)
	log.Info("sim finished",
		zap.String("session_id", r.SessionID),
		zap.Bool("won", r.Won),
		zap.Int("ticks", r.Ticks),
		zap.Int("score", r.Score))
	return r, nil
}

func report(s *game.GameSession, snap *game.Snapshot) Report {
	st := s.S
	r := Report{
		SessionID:       s.ID.String(),
		Seed:            s.Settings.Seed,
		Mode:            s.Mode.String(),
		Won:             s.Won(),
		Ticks:           st.Tick,
		ElapsedSeconds:  s.ElapsedSeconds(),
		Herded:          st.Herded,
		Total:           s.Settings.FlockSize,
		PoopCount:       st.Fouling.Count(),
		PowerUpsGrabbed: snap.PowerUpsGrabbed,
	}
	if r.Won {
		r.Score = s.FinalScore
		r.Coverage = s.Coverage
	} else {
		r.Score = s.LiveScore()
		r.Coverage = st.Fouling.Coverage(s.Settings.Field)
	}
	return r
}

// Write encodes r as indented JSON.
func (r Report) Write(w io.Writer) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
