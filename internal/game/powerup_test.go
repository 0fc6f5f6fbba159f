package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerUpFirstSpawnWindow(t *testing.T) {
	for seed := uint64(1); seed < 200; seed++ {
		ps := NewPowerUpSystem(NewRand(seed))
		require.GreaterOrEqual(t, ps.SpawnTimer, PowerUpFirstSpawnMin)
		require.Less(t, ps.SpawnTimer, PowerUpFirstSpawnMax)
	}
}

func TestPowerUpSpawnsOnCountdown(t *testing.T) {
	f := DefaultField()
	none1, none2 := InactiveSlot(), InactiveSlot()
	ps := NewPowerUpSystem(NewRand(3))

	wait := ps.SpawnTimer
	for i := 0; i < wait-1; i++ {
		ps.Update(&none1, &none2, f)
	}
	assert.Empty(t, ps.Active)

	ps.Update(&none1, &none2, f)
	require.Len(t, ps.Active, 1)
	assert.Equal(t, 1, ps.Spawned)

	pu := ps.Active[0]
	assert.GreaterOrEqual(t, pu.X, PowerUpMarginX)
	assert.Less(t, pu.X, f.Width-PowerUpMarginX)
	assert.GreaterOrEqual(t, pu.Y, PowerUpMarginTop)
	assert.Less(t, pu.Y, f.Height-PowerUpMarginBelow)
	assert.GreaterOrEqual(t, pu.Lifetime, PowerUpMinLife)
	assert.Less(t, pu.Lifetime, PowerUpMaxLife)

	assert.GreaterOrEqual(t, ps.SpawnTimer, PowerUpSpawnMin, "later spawns use the longer window")
	assert.Less(t, ps.SpawnTimer, PowerUpSpawnMax)
}

func TestPowerUpExpires(t *testing.T) {
	f := DefaultField()
	none1, none2 := InactiveSlot(), InactiveSlot()
	ps := &PowerUpSystem{
		Active:     []PowerUp{{X: 100, Y: 100, Radius: PowerUpRadius, Lifetime: 3}},
		SpawnTimer: 10000,
		rng:        NewRand(1),
	}
	assert.Zero(t, ps.Update(&none1, &none2, f).Expired)
	assert.Zero(t, ps.Update(&none1, &none2, f).Expired)
	assert.Equal(t, 1, ps.Update(&none1, &none2, f).Expired)
	assert.Empty(t, ps.Active)
}

func TestPowerUpPickupIsOneShot(t *testing.T) {
	f := DefaultField()
	p1 := ActiveSlot(NewPlayer(100, 105))
	p2 := InactiveSlot()
	ps := &PowerUpSystem{
		Active:     []PowerUp{{X: 100, Y: 100, Radius: PowerUpRadius, Lifetime: 400}},
		SpawnTimer: 10000,
		rng:        NewRand(1),
	}

	res := ps.Update(&p1, &p2, f)
	assert.True(t, res.Grants[0])
	assert.Empty(t, ps.Active)
	assert.Equal(t, 1, ps.Grabbed)
	assert.Equal(t, 25.0, p1.Player().Size)

	res = ps.Update(&p1, &p2, f)
	assert.False(t, res.Grants[0])
	assert.Equal(t, 1, ps.Grabbed)
}

func TestPowerUpPickupDistanceIsStrict(t *testing.T) {
	pu := PowerUp{X: 100, Y: 100, Radius: PowerUpRadius}
	assert.False(t, pu.Hits(122, 100))
	assert.True(t, pu.Hits(121.9, 100))
}

func TestPowerUpBothPlayers(t *testing.T) {
	f := DefaultField()
	p1 := ActiveSlot(NewPlayer(60, 60))
	p2 := ActiveSlot(NewPlayer(250, 150))
	ps := &PowerUpSystem{
		Active: []PowerUp{
			{X: 62, Y: 60, Radius: PowerUpRadius, Lifetime: 400},
			{X: 250, Y: 148, Radius: PowerUpRadius, Lifetime: 400},
		},
		SpawnTimer: 10000,
		rng:        NewRand(1),
	}
	res := ps.Update(&p1, &p2, f)
	assert.Equal(t, [2]bool{true, true}, res.Grants)
	assert.True(t, p1.Player().Boosted())
	assert.True(t, p2.Player().Boosted())
}

func TestPowerUpSharedGoesToPlayerOne(t *testing.T) {
	f := DefaultField()
	p1 := ActiveSlot(NewPlayer(100, 100))
	p2 := ActiveSlot(NewPlayer(104, 100))
	ps := &PowerUpSystem{
		Active:     []PowerUp{{X: 102, Y: 100, Radius: PowerUpRadius, Lifetime: 400}},
		SpawnTimer: 10000,
		rng:        NewRand(1),
	}
	res := ps.Update(&p1, &p2, f)
	assert.Equal(t, [2]bool{true, false}, res.Grants)
	assert.False(t, p2.Player().Boosted())
}
