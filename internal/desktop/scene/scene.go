package scene

import (
	"math"

	"goosechase/internal/game"
)

// Rect is a filled axis-aligned rectangle in field space.
type Rect struct {
	X, Y, W, H float32
	Col        game.RGB
}

// Frame holds the draw lists for one snapshot. Buffers are reused between
// frames; sprite buffers use [x, y, size, r, g, b, a, rotation] * N.
type Frame struct {
	Rects  []Rect
	Ground []float32 // droppings, drawn under everything that moves
	Discs  []float32 // goose bodies and heads, power-ups
	Marks  []float32 // beaks and player strokes, drawn over the discs
	Glows  []float32
}

// ArrowPeriod is how many ticks one on/off cycle of the goal arrow lasts.
const ArrowPeriod = 30

// Build refills f from snap. tick drives the flashing arrow.
func (f *Frame) Build(snap *game.Snapshot, tick int) {
	f.Rects = f.Rects[:0]
	f.Ground = f.Ground[:0]
	f.Discs = f.Discs[:0]
	f.Marks = f.Marks[:0]
	f.Glows = f.Glows[:0]

	f.goal(snap.Field.Goal, tick)
	if snap.State == game.StateNotStarted {
		return
	}

	for i := range snap.Poops {
		p := &snap.Poops[i]
		s := math.Round(p.Size)
		// Markers are anchored at their top-left corner.
		f.Ground = appendSprite(f.Ground, math.Round(p.X)+s/2, math.Round(p.Y)+s/2, s, p.Color, 1)
	}

	for i := range snap.PowerUps {
		f.powerUp(&snap.PowerUps[i], tick)
	}

	for i := range snap.Geese {
		f.goose(&snap.Geese[i])
	}

	for i := range snap.Players {
		p := &snap.Players[i]
		if !p.Active {
			continue
		}
		col := game.Palette.Player1
		if i == 1 {
			col = game.Palette.Player2
		}
		f.player(p, col, tick)
	}
}

func (f *Frame) goal(g game.RectF, tick int) {
	x, y := float32(g.X0), float32(g.Y0)
	w, h := float32(g.Width()), float32(g.Height())
	const frame = 2

	f.Rects = append(f.Rects,
		Rect{X: x, Y: y, W: w, H: h, Col: game.Palette.Elevator},
		Rect{X: x, Y: y, W: w, H: frame, Col: game.Palette.DoorFrame},
		Rect{X: x, Y: y, W: frame, H: h, Col: game.Palette.DoorFrame},
		Rect{X: x + w - frame, Y: y, W: frame, H: h, Col: game.Palette.DoorFrame},
		Rect{X: x + w/2 - frame/2, Y: y, W: frame, H: h, Col: game.Palette.DoorFrame},
	)

	if tick%ArrowPeriod >= ArrowPeriod/2 {
		return
	}
	// Downward triangle 20 units above the doors, built from 2 unit rows.
	const size = 8
	ax, ay := x+w/2, y-20
	for row := 0; row < size; row++ {
		half := float32(size - row)
		f.Rects = append(f.Rects, Rect{
			X: ax - half, Y: ay - size + float32(row*2),
			W: half * 2, H: 2,
			Col: game.Palette.Arrow,
		})
	}
}

func (f *Frame) goose(g *game.GooseView) {
	dir := 1.0
	if g.VX < 0 {
		dir = -1
	}
	f.Discs = appendSprite(f.Discs, g.X, g.Y, g.Size, game.Palette.Goose, 1)
	hx, hy := g.X+dir*g.Size*0.4, g.Y-g.Size*0.35
	f.Discs = appendSprite(f.Discs, hx, hy, g.Size*0.45, game.Palette.GooseHead, 1)
	f.Marks = appendSprite(f.Marks, hx+dir*g.Size*0.3, hy, 1.5, game.Palette.Beak, 1)
}

func (f *Frame) powerUp(p *game.PowerUpView, tick int) {
	a := 1.0
	// Blink through the last second of life.
	if p.Remaining < game.TickRate && (tick/6)%2 == 0 {
		a = 0.35
	}
	f.Discs = appendSprite(f.Discs, p.X, p.Y, p.Radius*2, game.Palette.PowerUp, a)
	pulse := 1 + 0.15*math.Sin(float64(tick)*0.15)
	glow := game.Palette.PowerUp.Mul(uint8(110 * a))
	f.Glows = appendSprite(f.Glows, p.X, p.Y, p.Radius*4*pulse, glow, 1)
}

// player draws an X mark with 4 unit strokes.
func (f *Frame) player(p *game.PlayerView, col game.RGB, tick int) {
	const stroke = 4
	half := p.Size / 2
	n := int(math.Ceil(p.Size)) + 1
	for i := 0; i < n; i++ {
		t := float64(i)/float64(n-1)*p.Size - half
		f.Marks = appendSprite(f.Marks, p.X+t, p.Y+t, stroke, col, 1)
		f.Marks = appendSprite(f.Marks, p.X+t, p.Y-t, stroke, col, 1)
	}
	if p.BoostTicks > 0 {
		pulse := 1 + 0.2*math.Sin(float64(tick)*0.3)
		f.Glows = appendSprite(f.Glows, p.X, p.Y, p.Size*1.6*pulse, game.Palette.PowerUp.Mul(70), 1)
	}
}

func appendSprite(buf []float32, x, y, size float64, col game.RGB, a float64) []float32 {
	r, g, b := col.Floats()
	return append(buf, float32(x), float32(y), float32(size), r, g, b, float32(a), 0)
}
