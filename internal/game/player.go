package game

import "math"

// Direction is the per-tick movement intent of one player.
type Direction struct {
	Up, Down, Left, Right bool
}

// Idle reports whether no direction is held.
func (d Direction) Idle() bool { return !d.Up && !d.Down && !d.Left && !d.Right }

type Player struct {
	X, Y       float64
	Size       float64
	BoostTicks int // remaining power-up duration
	Grabs      int // power-ups picked up this session
}

func NewPlayer(x, y float64) Player {
	return Player{X: x, Y: y, Size: PlayerBaseSize}
}

// Move applies one tick of held directions and keeps the player inside the field.
func (p *Player) Move(d Direction, f Field) {
	if d.Up {
		p.Y -= PlayerSpeed
	}
	if d.Down {
		p.Y += PlayerSpeed
	}
	if d.Left {
		p.X -= PlayerSpeed
	}
	if d.Right {
		p.X += PlayerSpeed
	}
	p.clamp(f)
}

func (p *Player) clamp(f Field) {
	h := p.Size / 2
	p.X = clampF(p.X, h, f.Width-h)
	p.Y = clampF(p.Y, h, f.Height-h)
}

// Grant applies the power-up size boost. A second pickup refreshes the
// duration. The grown player is pulled back inside the field.
func (p *Player) Grant(f Field) {
	p.Size = PlayerBaseSize * PowerUpSizeMult
	p.BoostTicks = PowerUpBoostTicks
	p.Grabs++
	p.clamp(f)
}

// Boosted reports whether a power-up is active.
func (p *Player) Boosted() bool { return p.BoostTicks > 0 }

// TickBoost counts the boost down and reports whether it expired this tick.
func (p *Player) TickBoost() bool {
	if p.BoostTicks <= 0 {
		return false
	}
	p.BoostTicks--
	if p.BoostTicks == 0 {
		p.Size = PlayerBaseSize
		return true
	}
	return false
}

// FleeRadius scales the base flee radius by the player's size gain, damped.
func (p *Player) FleeRadius(base float64) float64 {
	return base * (1 + (p.Size/PlayerBaseSize-1)*FleeSizeDamp)
}

// PlayerSlot holds either an active player or nothing.
type PlayerSlot struct {
	active bool
	p      Player
}

func ActiveSlot(p Player) PlayerSlot { return PlayerSlot{active: true, p: p} }
func InactiveSlot() PlayerSlot       { return PlayerSlot{} }

func (s *PlayerSlot) Active() bool { return s.active }

// Player returns the slot's player, or nil when inactive.
func (s *PlayerSlot) Player() *Player {
	if !s.active {
		return nil
	}
	return &s.p
}

// Distance from (x, y) to the player; +Inf when the slot is empty.
func (s *PlayerSlot) Distance(x, y float64) float64 {
	if !s.active {
		return math.Inf(1)
	}
	return math.Hypot(x-s.p.X, y-s.p.Y)
}

// FleeRadius is 0 for an empty slot, so nothing ever flees from it.
func (s *PlayerSlot) FleeRadius(base float64) float64 {
	if !s.active {
		return 0
	}
	return s.p.FleeRadius(base)
}
