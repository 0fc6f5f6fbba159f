package game

import "math"

type Poop struct {
	X, Y  float64
	Size  float64
	Color RGB
}

// Fouling collects the markers dropped by the flock. Markers live until reset.
type Fouling struct {
	Markers []Poop
	rng     *Rand
}

func NewFouling(r *Rand) *Fouling {
	return &Fouling{rng: r}
}

// Drop places a marker with a random size and brown shade.
func (fo *Fouling) Drop(x, y float64) {
	fo.Markers = append(fo.Markers, Poop{
		X:     x,
		Y:     y,
		Size:  fo.rng.RangeF(PoopMinSize, PoopMaxSize),
		Color: poopColor(fo.rng.Range(PoopShadeMin, PoopShadeMax)),
	})
}

func (fo *Fouling) Count() int { return len(fo.Markers) }

// Coverage is the summed marker area as a percentage of the field area.
func (fo *Fouling) Coverage(f Field) float64 {
	area := f.Area()
	if area <= 0 {
		return 0
	}
	var sum float64
	for i := range fo.Markers {
		r := fo.Markers[i].Size / 2
		sum += math.Pi * r * r
	}
	return sum / area * 100
}
