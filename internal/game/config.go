package game

import (
	"errors"
	"fmt"
)

// Play-field dimensions (in field pixels).
// Sized for the arcade cabinet screen; all motion constants are tuned to it.
const (
	FieldWidth  = 336
	FieldHeight = 262
)

// Goal (elevator) placement relative to the field.
const (
	GoalWidth       = 50
	GoalHeight      = 40
	GoalRightMargin = 20 // gap between goal and right wall
	GoalSink        = 10 // how far the goal's top edge sits above the bottom wall
)

// Simulation rate.
const (
	TickRate    = 60
	DefaultSize = 404 // geese per session
)

// Goose motion constants.
const (
	GooseSize         = 8.0
	GooseFleeDistance = 65.0
	GooseFleeSpeed    = 2.5
	GooseWanderSpeed  = 0.7
	GooseFriction     = 0.93
	GooseMaxSpeed     = 4.0

	ChaseBonusStep = 0.3 // extra flee speed per chase episode
	ChaseBonusMax  = 3.0
	FleeSizeDamp   = 0.6 // how much of a player's size gain widens the flee radius

	CornerMarginFactor = 3.0 // corner zone = factor * goose size
	CornerEscapeSpeed  = 1.0 // below this a cornered goose gets kicked
	CornerEscapeKick   = 2.0
	WallEscapeBias     = 0.5
	GoalOvershoot      = 20.0 // max depth past the bottom wall inside the opening
)

// Fouling.
const (
	PoopMinTicks = 300 // 5s at 60Hz
	PoopMaxTicks = 1200
	PoopMinSize  = 2.0
	PoopMaxSize  = 3.5
	PoopShadeMin = 20
	PoopShadeMax = 60
)

// Players.
const (
	PlayerSpeed    = 4.0
	PlayerBaseSize = 10.0
)

// Power-ups.
const (
	PowerUpRadius      = 12.0
	PowerUpPickupSlack = 10.0
	PowerUpMinLife     = 180
	PowerUpMaxLife     = 480
	PowerUpMarginX     = 30.0
	PowerUpMarginTop   = 30.0
	PowerUpMarginBelow = 60.0
	PowerUpSizeMult    = 2.5
	PowerUpBoostTicks  = 300

	// First spawn of a session comes sooner than the rest.
	PowerUpFirstSpawnMin = 180
	PowerUpFirstSpawnMax = 420
	PowerUpSpawnMin      = 480
	PowerUpSpawnMax      = 1200
)

// Scoring.
const (
	ScoreBase        = 100000.0
	ScorePerSecondUp = 15.0
)

var (
	ErrInvalidField = errors.New("invalid field geometry")
	ErrInvalidFlock = errors.New("invalid flock size")
)

// Field is the fixed play-field geometry handed to the core.
type Field struct {
	Width, Height float64
	Goal          RectF
}

// DefaultField returns the cabinet field with the elevator in the bottom-right.
func DefaultField() Field {
	w, h := float64(FieldWidth), float64(FieldHeight)
	gx := w - GoalWidth - GoalRightMargin
	gy := h - GoalSink
	return Field{
		Width:  w,
		Height: h,
		Goal:   RectF{X0: gx, Y0: gy, X1: gx + GoalWidth, Y1: gy + GoalHeight},
	}
}

// Area returns the field area in square field pixels.
func (f Field) Area() float64 { return f.Width * f.Height }

// Validate checks the geometry once at session setup.
func (f Field) Validate() error {
	switch {
	case f.Width <= 2*GooseSize || f.Height <= 2*GooseSize:
		return fmt.Errorf("%w: field %.0fx%.0f too small", ErrInvalidField, f.Width, f.Height)
	case f.Goal.X1 <= f.Goal.X0 || f.Goal.Y1 <= f.Goal.Y0:
		return fmt.Errorf("%w: goal has no area", ErrInvalidField)
	case f.Goal.X0 < 0 || f.Goal.X1 > f.Width:
		return fmt.Errorf("%w: goal x-span [%.0f,%.0f] outside field", ErrInvalidField, f.Goal.X0, f.Goal.X1)
	case f.Goal.Y0 <= 0 || f.Goal.Y0 > f.Height:
		return fmt.Errorf("%w: goal threshold %.0f outside field", ErrInvalidField, f.Goal.Y0)
	}
	return nil
}

// Settings configures a GameSession.
type Settings struct {
	Field     Field
	FlockSize int
	Seed      uint64
}

// DefaultSettings returns the arcade defaults.
func DefaultSettings() Settings {
	return Settings{Field: DefaultField(), FlockSize: DefaultSize, Seed: 1}
}

func (s Settings) validate() error {
	if err := s.Field.Validate(); err != nil {
		return err
	}
	if s.FlockSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidFlock, s.FlockSize)
	}
	return nil
}
