package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoulingDrop(t *testing.T) {
	fo := NewFouling(NewRand(8))
	for i := 0; i < 500; i++ {
		prev := fo.Count()
		fo.Drop(float64(i%300), 40)
		require.Equal(t, prev+1, fo.Count(), "markers only accumulate")

		m := fo.Markers[i]
		require.GreaterOrEqual(t, m.Size, PoopMinSize)
		require.Less(t, m.Size, PoopMaxSize)

		shade := int(m.Color.G)
		require.GreaterOrEqual(t, shade, PoopShadeMin)
		require.Less(t, shade, PoopShadeMax)
		require.Equal(t, uint8(shade+15), m.Color.R)
	}
}

func TestPoopColorFloorsBlue(t *testing.T) {
	assert.Equal(t, RGB{R: 20, G: 5, B: 0}, poopColor(5))
	assert.Equal(t, RGB{R: 55, G: 40, B: 30}, poopColor(40))
}

func TestFoulingCoverage(t *testing.T) {
	f := Field{Width: 100, Height: 100}
	fo := &Fouling{Markers: []Poop{{Size: 2}, {Size: 2}}}
	// two unit circles over 10000 px²
	assert.InDelta(t, 2*math.Pi/10000*100, fo.Coverage(f), 1e-12)

	assert.Zero(t, (&Fouling{}).Coverage(f))
	assert.Zero(t, fo.Coverage(Field{}))
}
