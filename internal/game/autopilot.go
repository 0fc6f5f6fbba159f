package game

import (
	"math"
	"sort"
)

// Autopilot herds the flock from snapshots alone. It drives the headless
// simulator and the demo mode of the frontends.
type Autopilot struct {
	Mode Mode // mode picked on the start screen
	Loop bool // restart after a win

	// Standoff is how far behind its goose a player tries to stand.
	Standoff float64
	// Deadzone stops jitter once a player is close to its herding point.
	Deadzone float64

	order []int
	held  bool
}

func NewAutopilot(mode Mode) *Autopilot {
	return &Autopilot{Mode: mode, Standoff: 18, Deadzone: 2}
}

// Next picks the input for the coming tick.
func (a *Autopilot) Next(snap *Snapshot) Input {
	var in Input
	switch snap.State {
	case StateNotStarted:
		if a.Mode == ModeDuo {
			in.StartTwo = true
		} else {
			in.StartOne = true
		}
		return in
	case StateWon:
		// Confirm is edge detected, so release between presses.
		a.held = a.Loop && !a.held
		in.Confirm = a.held
		return in
	}

	if len(snap.Geese) == 0 {
		return in
	}
	a.rankByGoal(snap)

	gx, gy := goalTarget(snap.Field)
	for i := range snap.Players {
		p := &snap.Players[i]
		if !p.Active {
			continue
		}
		pick := a.order[0]
		if i == 1 && len(a.order) > 1 {
			pick = a.order[1]
		}
		g := &snap.Geese[pick]
		tx, ty := a.herdPoint(g, p, gx, gy)
		d := steer(p.X, p.Y, tx, ty, a.Deadzone)
		if i == 0 {
			in.P1 = d
		} else {
			in.P2 = d
		}
	}
	return in
}

// rankByGoal orders goose indices by distance to the goal, nearest first.
func (a *Autopilot) rankByGoal(snap *Snapshot) {
	gx, gy := goalTarget(snap.Field)
	a.order = a.order[:0]
	for i := range snap.Geese {
		a.order = append(a.order, i)
	}
	dist := func(i int) float64 {
		g := &snap.Geese[i]
		return math.Hypot(g.X-gx, g.Y-gy)
	}
	sort.SliceStable(a.order, func(i, j int) bool {
		return dist(a.order[i]) < dist(a.order[j])
	})
}

// herdPoint is the spot behind the goose on the goal-to-goose line. A player
// that is on the goal side of its goose swings wide around it first.
func (a *Autopilot) herdPoint(g *GooseView, p *PlayerView, gx, gy float64) (float64, float64) {
	ux, uy := g.X-gx, g.Y-gy
	l := math.Hypot(ux, uy)
	if l == 0 {
		return g.X, g.Y
	}
	ux, uy = ux/l, uy/l
	tx, ty := g.X+ux*a.Standoff, g.Y+uy*a.Standoff

	// Positive when the player stands between goose and goal.
	ahead := (g.X-p.X)*ux + (g.Y-p.Y)*uy
	if ahead > 0 && math.Hypot(p.X-g.X, p.Y-g.Y) < a.Standoff*3 {
		// Perpendicular detour, on the side the player is already on.
		nx, ny := -uy, ux
		if (p.X-g.X)*nx+(p.Y-g.Y)*ny < 0 {
			nx, ny = -nx, -ny
		}
		tx, ty = g.X+nx*a.Standoff*2, g.Y+ny*a.Standoff*2
	}
	return tx, ty
}

func goalTarget(f Field) (float64, float64) {
	return (f.Goal.X0 + f.Goal.X1) / 2, f.Goal.Y0 + f.Goal.Height()/2
}

func steer(x, y, tx, ty, dead float64) Direction {
	var d Direction
	dx, dy := tx-x, ty-y
	if dx > dead {
		d.Right = true
	} else if dx < -dead {
		d.Left = true
	}
	if dy > dead {
		d.Down = true
	} else if dy < -dead {
		d.Up = true
	}
	return d
}
