package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idleGoose(x, y float64) Goose {
	return Goose{X: x, Y: y, Size: GooseSize, NextPoop: PoopMaxTicks}
}

func TestGooseFleesNearPlayer(t *testing.T) {
	f := DefaultField()
	r := NewRand(1)
	g := idleGoose(100, 100)
	p1 := ActiveSlot(NewPlayer(110, 100))
	p2 := InactiveSlot()

	g.Update(r, &p1, &p2, f)
	assert.Equal(t, 1, g.ChaseCount)
	assert.True(t, g.WasBeingChased)
	assert.InDelta(t, -(GooseFleeSpeed+ChaseBonusStep)*GooseFriction, g.VX, 1e-9)
	assert.InDelta(t, 0, g.VY, 1e-9)
	assert.Less(t, g.X, 100.0)
}

func TestGooseChaseCountRisingEdge(t *testing.T) {
	f := DefaultField()
	r := NewRand(1)
	g := idleGoose(150, 130)
	p2 := InactiveSlot()

	near := func() PlayerSlot { return ActiveSlot(NewPlayer(g.X+20, g.Y)) }
	far := func() PlayerSlot { return ActiveSlot(NewPlayer(g.X+200, g.Y)) }

	for i := 0; i < 5; i++ {
		p := near()
		g.Update(r, &p, &p2, f)
	}
	assert.Equal(t, 1, g.ChaseCount, "sustained chase is one episode")

	for i := 0; i < 5; i++ {
		p := far()
		g.Update(r, &p, &p2, f)
		g.X, g.Y = 150, 130
	}
	assert.Equal(t, 1, g.ChaseCount, "not-chased ticks never count")

	p := near()
	g.Update(r, &p, &p2, f)
	assert.Equal(t, 2, g.ChaseCount)
}

func TestGooseChaseBonusCapped(t *testing.T) {
	g := Goose{ChaseCount: 4}
	assert.InDelta(t, 1.2, g.ChaseBonus(), 1e-9)
	g.ChaseCount = 10
	assert.InDelta(t, 3.0, g.ChaseBonus(), 1e-9)
	g.ChaseCount = 50
	assert.InDelta(t, 3.0, g.ChaseBonus(), 1e-9)
}

func TestGooseZeroDistanceDoesNotFlee(t *testing.T) {
	f := DefaultField()
	g := idleGoose(100, 100)
	p1 := ActiveSlot(NewPlayer(100, 100))
	p2 := InactiveSlot()
	g.Update(NewRand(3), &p1, &p2, f)
	assert.False(t, g.WasBeingChased)
	assert.Zero(t, g.ChaseCount)
}

func TestGooseFleesFromNearerThreat(t *testing.T) {
	f := DefaultField()
	g := idleGoose(150, 130)
	p1 := ActiveSlot(NewPlayer(150, 90)) // 40 above
	p2 := ActiveSlot(NewPlayer(170, 130)) // 20 to the right
	g.Update(NewRand(3), &p1, &p2, f)
	assert.Less(t, g.VX, 0.0, "flees left, away from player 2")
	assert.InDelta(t, 0, g.VY, 1e-9)
}

func TestGooseBoostedPlayerWidensThreat(t *testing.T) {
	f := DefaultField()
	p2 := InactiveSlot()

	base := ActiveSlot(NewPlayer(200, 130))
	g := idleGoose(100, 130)
	g.Update(NewRand(3), &base, &p2, f)
	assert.False(t, g.WasBeingChased, "100 is outside the base radius")

	boosted := NewPlayer(200, 130)
	boosted.Grant(f)
	big := ActiveSlot(boosted)
	g = idleGoose(100, 130)
	g.Update(NewRand(3), &big, &p2, f)
	assert.True(t, g.WasBeingChased)
}

func TestGooseSpeedCap(t *testing.T) {
	f := DefaultField()
	g := idleGoose(168, 131)
	g.ChaseCount = 50
	g.WasBeingChased = true
	p1 := ActiveSlot(NewPlayer(160, 131))
	p2 := InactiveSlot()
	g.Update(NewRand(1), &p1, &p2, f)
	assert.InDelta(t, GooseMaxSpeed, g.Speed(), 1e-9)
	assert.InDelta(t, 172, g.X, 1e-9)
}

func TestGooseStaysInBounds(t *testing.T) {
	f := DefaultField()
	r := NewRand(11)
	pr := NewRand(12)
	geese := make([]Goose, 64)
	for i := range geese {
		geese[i] = NewGoose(r, f)
	}
	p1 := ActiveSlot(NewPlayer(f.Width/3, f.Height/2))
	p2 := ActiveSlot(NewPlayer(f.Width*2/3, f.Height/2))

	for tick := 0; tick < 3000; tick++ {
		for _, s := range []*PlayerSlot{&p1, &p2} {
			s.Player().Move(Direction{
				Up:    pr.Intn(2) == 0,
				Down:  pr.Intn(2) == 0,
				Left:  pr.Intn(2) == 0,
				Right: pr.Intn(2) == 0,
			}, f)
		}
		for i := range geese {
			g := &geese[i]
			g.Update(r, &p1, &p2, f)

			require.GreaterOrEqual(t, g.X, g.Size)
			require.LessOrEqual(t, g.X, f.Width-g.Size)
			require.GreaterOrEqual(t, g.Y, g.Size)
			if f.Goal.InSpanX(g.X) && g.Y >= f.Goal.Y0 {
				require.LessOrEqual(t, g.Y, f.Height+GoalOvershoot)
				continue
			}
			require.LessOrEqual(t, g.Y, f.Height-g.Size, "tick %d goose %d", tick, i)
		}
	}
}

func TestGooseGoalOpening(t *testing.T) {
	f := DefaultField()
	none1, none2 := InactiveSlot(), InactiveSlot()

	g := idleGoose(291, 253)
	g.VY = 3
	g.Update(NewRand(5), &none1, &none2, f)
	assert.Greater(t, g.Y, f.Height-GooseSize, "bottom wall is open over the goal")

	g = idleGoose(100, 253)
	g.VY = 3
	g.Update(NewRand(5), &none1, &none2, f)
	assert.Equal(t, f.Height-GooseSize, g.Y)
	assert.LessOrEqual(t, g.VY, -WallEscapeBias)
}

func TestGooseOvershootClamped(t *testing.T) {
	f := DefaultField()
	none1, none2 := InactiveSlot(), InactiveSlot()
	g := idleGoose(291, 281)
	g.VY = 3
	g.Update(NewRand(5), &none1, &none2, f)
	assert.Equal(t, f.Height+GoalOvershoot, g.Y)
	assert.Less(t, g.VY, 0.0)
}

func TestGooseCornerEscape(t *testing.T) {
	f := DefaultField()
	none1, none2 := InactiveSlot(), InactiveSlot()
	corners := []struct {
		name   string
		x, y   float64
		sx, sy float64
	}{
		{"top-left", 10, 10, 1, 1},
		{"top-right", f.Width - 10, 10, -1, 1},
		{"bottom-left", 10, f.Height - 10, 1, -1},
		{"bottom-right", f.Width - 10, f.Height - 10, -1, -1},
	}
	for _, c := range corners {
		t.Run(c.name, func(t *testing.T) {
			g := idleGoose(c.x, c.y)
			g.Update(NewRand(5), &none1, &none2, f)
			assert.Greater(t, g.VX*c.sx, 1.0)
			assert.Greater(t, g.VY*c.sy, 1.0)
		})
	}
}

func TestGooseFoulingTimer(t *testing.T) {
	f := DefaultField()
	none1, none2 := InactiveSlot(), InactiveSlot()
	r := NewRand(5)
	g := idleGoose(150, 130)
	g.NextPoop = 3

	assert.False(t, g.Update(r, &none1, &none2, f))
	assert.False(t, g.Update(r, &none1, &none2, f))
	assert.True(t, g.Update(r, &none1, &none2, f))
	assert.Zero(t, g.PoopTimer)
	assert.GreaterOrEqual(t, g.NextPoop, PoopMinTicks)
	assert.Less(t, g.NextPoop, PoopMaxTicks)
}

func TestNewGooseInsideMargins(t *testing.T) {
	f := DefaultField()
	r := NewRand(99)
	for i := 0; i < 1000; i++ {
		g := NewGoose(r, f)
		require.GreaterOrEqual(t, g.X, GooseSize)
		require.Less(t, g.X, f.Width-GooseSize)
		require.GreaterOrEqual(t, g.Y, GooseSize)
		require.Less(t, g.Y, f.Height-GooseSize)
		require.GreaterOrEqual(t, g.NextPoop, PoopMinTicks)
	}
}
