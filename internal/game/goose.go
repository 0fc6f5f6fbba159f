package game

import "math"

type Goose struct {
	X, Y   float64
	VX, VY float64
	Size   float64

	// Fouling.
	PoopTimer int
	NextPoop  int

	// Chase memory. ChaseCount counts episodes, not ticks, and never decays.
	ChaseCount     int
	WasBeingChased bool
}

func NewGoose(r *Rand, f Field) Goose {
	return Goose{
		X:        r.RangeF(GooseSize, f.Width-GooseSize),
		Y:        r.RangeF(GooseSize, f.Height-GooseSize),
		Size:     GooseSize,
		NextPoop: r.Range(PoopMinTicks, PoopMaxTicks),
	}
}

// ChaseBonus is the extra flee speed earned from past chase episodes.
func (g *Goose) ChaseBonus() float64 {
	return math.Min(float64(g.ChaseCount)*ChaseBonusStep, ChaseBonusMax)
}

// Speed returns the current velocity magnitude.
func (g *Goose) Speed() float64 { return math.Hypot(g.VX, g.VY) }

// Bounds is the goose's bounding square used for goal contact.
func (g *Goose) Bounds() RectF { return SquareAt(g.X, g.Y, g.Size) }

// threat picks the player this goose flees from, if any.
// Only players strictly inside their flee radius and not exactly on top of
// the goose count; the nearer of those wins.
func (g *Goose) threat(p1, p2 *PlayerSlot) (*Player, bool) {
	var pick *Player
	best := math.Inf(1)
	for _, s := range [2]*PlayerSlot{p1, p2} {
		if s == nil || !s.Active() {
			continue
		}
		d := s.Distance(g.X, g.Y)
		if d <= 0 || d >= s.FleeRadius(GooseFleeDistance) {
			continue
		}
		if d < best {
			best, pick = d, s.Player()
		}
	}
	return pick, pick != nil
}

// Update advances one tick of motion. It reports whether the goose dropped
// a poop this tick; the marker position is the goose's resolved position.
func (g *Goose) Update(r *Rand, p1, p2 *PlayerSlot, f Field) bool {
	p, chased := g.threat(p1, p2)
	if chased && !g.WasBeingChased {
		g.ChaseCount++
	}
	g.WasBeingChased = chased

	if chased {
		a := math.Atan2(g.Y-p.Y, g.X-p.X)
		s := GooseFleeSpeed + g.ChaseBonus()
		g.VX += math.Cos(a) * s
		g.VY += math.Sin(a) * s
	} else {
		g.VX += r.RangeF(-GooseWanderSpeed, GooseWanderSpeed)
		g.VY += r.RangeF(-GooseWanderSpeed, GooseWanderSpeed)
	}

	g.VX *= GooseFriction
	g.VY *= GooseFriction

	// The corner check below looks at the speed before capping.
	speed := g.Speed()
	if speed > GooseMaxSpeed {
		k := GooseMaxSpeed / speed
		g.VX *= k
		g.VY *= k
	}

	g.X += g.VX
	g.Y += g.VY

	g.escapeCorner(speed, f)
	g.bounce(f)

	return g.tickFouling(r)
}

func (g *Goose) escapeCorner(speed float64, f Field) {
	if speed >= CornerEscapeSpeed {
		return
	}
	m := g.Size * CornerMarginFactor
	left, right := g.X < m, g.X > f.Width-m
	top, bottom := g.Y < m, g.Y > f.Height-m

	var kx, ky float64
	switch {
	case left && top:
		kx, ky = 1, 1
	case right && top:
		kx, ky = -1, 1
	case left && bottom:
		kx, ky = 1, -1
	case right && bottom:
		kx, ky = -1, -1
	default:
		return
	}
	g.VX += kx * CornerEscapeKick
	g.VY += ky * CornerEscapeKick
}

func (g *Goose) bounce(f Field) {
	lo := g.Size
	if g.X < lo {
		g.X = lo
		g.VX = math.Abs(g.VX) + WallEscapeBias
	}
	if g.X > f.Width-lo {
		g.X = f.Width - lo
		g.VX = -math.Abs(g.VX) - WallEscapeBias
	}
	if g.Y < lo {
		g.Y = lo
		g.VY = math.Abs(g.VY) + WallEscapeBias
	}

	// The bottom wall is open over the goal's x-span once the goose is at
	// or past the goal threshold.
	opening := f.Goal.InSpanX(g.X) && g.Y >= f.Goal.Y0
	switch {
	case g.Y > f.Height-lo && !opening:
		g.Y = f.Height - lo
		g.VY = -math.Abs(g.VY) - WallEscapeBias
	case g.Y > f.Height+GoalOvershoot:
		g.Y = f.Height + GoalOvershoot
		g.VY = -math.Abs(g.VY)
	}
}

func (g *Goose) tickFouling(r *Rand) bool {
	g.PoopTimer++
	if g.PoopTimer < g.NextPoop {
		return false
	}
	g.PoopTimer = 0
	g.NextPoop = r.Range(PoopMinTicks, PoopMaxTicks)
	return true
}
