package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GameState int

const (
	StateNotStarted GameState = iota // start screen
	StateRunning                     // herding
	StateWon                         // last goose is out
)

func (s GameState) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

type Mode int

const (
	ModeSolo Mode = iota
	ModeDuo
)

func (m Mode) String() string {
	if m == ModeDuo {
		return "duo"
	}
	return "solo"
}

// ParseMode accepts "solo"/"1" and "duo"/"2".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "solo", "1", "":
		return ModeSolo, nil
	case "duo", "2":
		return ModeDuo, nil
	}
	return ModeSolo, fmt.Errorf("unknown game mode %q", s)
}

type GameSession struct {
	State GameState
	Mode  Mode
	ID    uuid.UUID

	Settings Settings
	S        *SessionState

	StartedAt  time.Time
	Elapsed    time.Duration // frozen once won
	FinalScore int
	Coverage   float64
	Restarts   int

	clock       Clock
	rng         *Rand
	log         *zap.Logger
	prevConfirm bool
}

// NewGameSession validates the settings and returns a session on the start screen.
func NewGameSession(cfg Settings, clock Clock, log *zap.Logger) (*GameSession, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("new game session: %w", err)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &GameSession{
		State:    StateNotStarted,
		Settings: cfg,
		clock:    clock,
		rng:      NewRand(cfg.Seed),
		log:      log,
	}
	s.S = newSessionState(cfg, ModeSolo, s.rng)
	return s, nil
}

// Step runs one fixed tick with input sampled at tick start.
func (s *GameSession) Step(in Input) {
	confirm := in.Confirm && !s.prevConfirm
	s.prevConfirm = in.Confirm

	switch s.State {
	case StateNotStarted:
		if in.StartOne {
			s.Start(ModeSolo)
		} else if in.StartTwo {
			s.Start(ModeDuo)
		}
	case StateRunning:
		s.tick(in)
	case StateWon:
		if confirm {
			s.Restart()
		}
	}
}

// Start leaves the start screen in the given mode.
func (s *GameSession) Start(mode Mode) {
	s.Mode = mode
	s.reset()
	s.log.Info("session started",
		zap.String("session_id", s.ID.String()),
		zap.Stringer("mode", mode),
		zap.Int("flock", s.Settings.FlockSize),
		zap.Uint64("seed", s.Settings.Seed))
}

// Restart re-initializes every entity and counter and returns to Running.
// The mode chosen at the start screen is kept.
func (s *GameSession) Restart() {
	prev := s.ID
	s.Restarts++
	s.reset()
	s.log.Info("session restarted",
		zap.String("session_id", s.ID.String()),
		zap.String("previous_id", prev.String()),
		zap.Int("restarts", s.Restarts))
}

func (s *GameSession) reset() {
	s.S = newSessionState(s.Settings, s.Mode, s.rng)
	s.ID = uuid.New()
	s.StartedAt = s.clock.Now()
	s.Elapsed = 0
	s.FinalScore = 0
	s.Coverage = 0
	s.State = StateRunning
}

func (s *GameSession) tick(in Input) {
	st := s.S
	f := s.Settings.Field

	s.Elapsed = s.clock.Now().Sub(s.StartedAt)
	if s.Elapsed < 0 {
		s.Elapsed = 0
	}

	st.P1.Player().Move(in.P1, f)
	if p2 := st.P2.Player(); p2 != nil {
		p2.Move(in.P2, f)
	}

	for _, slot := range [2]*PlayerSlot{&st.P1, &st.P2} {
		if p := slot.Player(); p != nil {
			p.TickBoost()
		}
	}

	pu := st.PowerUps.Update(&st.P1, &st.P2, f)
	for i, granted := range pu.Grants {
		if granted {
			s.log.Debug("power-up grabbed",
				zap.String("session_id", s.ID.String()),
				zap.Int("player", i+1),
				zap.Int("tick", st.Tick))
		}
	}

	fr := st.Flock.Update(&st.P1, &st.P2, f, st.Fouling)
	st.Herded += fr.Herded
	st.Tick++

	if fr.Emptied {
		s.win()
	}
}

func (s *GameSession) win() {
	if s.State != StateRunning {
		return
	}
	s.State = StateWon
	s.FinalScore = Score(s.Elapsed.Seconds())
	s.Coverage = s.S.Fouling.Coverage(s.Settings.Field)
	s.log.Info("session won",
		zap.String("session_id", s.ID.String()),
		zap.Duration("elapsed", s.Elapsed),
		zap.Int("score", s.FinalScore),
		zap.Float64("coverage_pct", s.Coverage),
		zap.Int("poops", s.S.Fouling.Count()),
		zap.Int("ticks", s.S.Tick))
}

// ElapsedSeconds is the session time shown on the HUD.
func (s *GameSession) ElapsedSeconds() float64 { return s.Elapsed.Seconds() }

// LiveScore is the score the current elapsed time would earn.
func (s *GameSession) LiveScore() int { return Score(s.ElapsedSeconds()) }

// Won reports whether the flock has been cleared.
func (s *GameSession) Won() bool { return s.State == StateWon }
