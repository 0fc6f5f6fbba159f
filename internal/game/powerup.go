package game

import "math"

type PowerUp struct {
	X, Y     float64
	Radius   float64
	Age      int
	Lifetime int
}

func (pu *PowerUp) Alive() bool    { return pu.Age < pu.Lifetime }
func (pu *PowerUp) Remaining() int { return pu.Lifetime - pu.Age }

// Hits reports whether a player centred at (x, y) picks this power-up up.
func (pu *PowerUp) Hits(x, y float64) bool {
	return math.Hypot(pu.X-x, pu.Y-y) < pu.Radius+PowerUpPickupSlack
}

// PowerUpSystem spawns, ages and resolves pickups.
type PowerUpSystem struct {
	Active     []PowerUp
	SpawnTimer int // ticks until the next spawn
	Spawned    int
	Grabbed    int
	rng        *Rand
}

func NewPowerUpSystem(r *Rand) *PowerUpSystem {
	ps := &PowerUpSystem{rng: r}
	ps.SpawnTimer = r.Range(PowerUpFirstSpawnMin, PowerUpFirstSpawnMax)
	return ps
}

func (ps *PowerUpSystem) spawn(f Field) {
	r := ps.rng
	ps.Active = append(ps.Active, PowerUp{
		X:        r.RangeF(PowerUpMarginX, f.Width-PowerUpMarginX),
		Y:        r.RangeF(PowerUpMarginTop, f.Height-PowerUpMarginBelow),
		Radius:   PowerUpRadius,
		Lifetime: r.Range(PowerUpMinLife, PowerUpMaxLife),
	})
	ps.Spawned++
	ps.SpawnTimer = r.Range(PowerUpSpawnMin, PowerUpSpawnMax)
}

// PowerUpResult reports what happened during one tick.
type PowerUpResult struct {
	Expired int
	Grants  [2]bool // per player slot
}

// Update ages every power-up, prunes the expired ones, resolves pickups
// (player 1 first) and finally advances the spawn countdown.
func (ps *PowerUpSystem) Update(p1, p2 *PlayerSlot, f Field) PowerUpResult {
	var res PowerUpResult

	kept := ps.Active[:0]
	for i := range ps.Active {
		pu := ps.Active[i]
		pu.Age++
		if !pu.Alive() {
			res.Expired++
			continue
		}
		kept = append(kept, pu)
	}
	ps.Active = kept

	for i, s := range [2]*PlayerSlot{p1, p2} {
		if s == nil {
			continue
		}
		p := s.Player()
		if p == nil {
			continue
		}
		kept := ps.Active[:0]
		for j := range ps.Active {
			pu := ps.Active[j]
			if pu.Hits(p.X, p.Y) {
				p.Grant(f)
				res.Grants[i] = true
				ps.Grabbed++
				continue
			}
			kept = append(kept, pu)
		}
		ps.Active = kept
	}

	ps.SpawnTimer--
	if ps.SpawnTimer <= 0 {
		ps.spawn(f)
	}
	return res
}
