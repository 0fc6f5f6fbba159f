package scene

import (
	"math"

	"goosechase/internal/game"
)

const MaxParticles = 2048

type ParticleKind uint8

const (
	ParticleFeather ParticleKind = iota
	ParticleSparkle
	ParticleDust
	ParticleConfetti
)

type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64

	Life    float64 // negative = delayed start
	MaxLife float64

	Col  game.RGB
	Kind ParticleKind
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *game.Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: game.NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Update advances every particle by dt seconds and drops the finished ones.
func (ps *ParticleSystem) Update(dt float64) {
	kept := ps.P[:0]
	for _, p := range ps.P {
		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}
		if p.Life >= 0 {
			switch p.Kind {
			case ParticleFeather:
				// Feathers drift down and rock sideways.
				p.VY += 18 * dt
				p.VX *= 1 - 1.5*dt
				p.X += math.Sin(p.Life*9) * 6 * dt
			case ParticleConfetti:
				p.VY += 40 * dt
				p.VX *= 1 - 0.8*dt
			case ParticleDust:
				p.VX *= 1 - 4*dt
				p.VY *= 1 - 4*dt
			}
			p.X += p.VX * dt
			p.Y += p.VY * dt
		}
		kept = append(kept, p)
	}
	ps.P = kept
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// Feathers bursts white-grey feathers from the elevator doors.
func (ps *ParticleSystem) Feathers(x, y float64, n int) {
	for i := 0; i < n*6; i++ {
		shade := uint8(ps.rng.Range(200, 256))
		ps.Add(Particle{
			X: x + ps.rng.RangeF(-12, 12), Y: y,
			VX: ps.rng.RangeF(-25, 25), VY: ps.rng.RangeF(-45, -15),
			Size:    ps.rng.RangeF(1.5, 2.5),
			Life:    -ps.rng.RangeF(0, 0.1),
			MaxLife: ps.rng.RangeF(0.7, 1.3),
			Col:     game.RGB{R: shade, G: shade, B: shade - 20},
			Kind:    ParticleFeather,
		})
	}
}

// Sparkles rings a player who just picked up a power-up.
func (ps *ParticleSystem) Sparkles(x, y float64) {
	const n = 18
	for i := 0; i < n; i++ {
		a := float64(i) / n * 2 * math.Pi
		v := ps.rng.RangeF(30, 60)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(a) * v, VY: math.Sin(a) * v,
			Size:    ps.rng.RangeF(2, 4),
			MaxLife: ps.rng.RangeF(0.35, 0.6),
			Col:     game.Palette.PowerUp,
			Kind:    ParticleSparkle,
		})
	}
}

// Plop kicks up a little dust where a marker landed.
func (ps *ParticleSystem) Plop(x, y float64) {
	for i := 0; i < 3; i++ {
		ps.Add(Particle{
			X: x, Y: y,
			VX: ps.rng.RangeF(-12, 12), VY: ps.rng.RangeF(-12, 4),
			Size:    1,
			MaxLife: 0.3,
			Col:     game.RGB{R: 90, G: 70, B: 50},
			Kind:    ParticleDust,
		})
	}
}

// Confetti rains from the top edge of the field.
func (ps *ParticleSystem) Confetti(f game.Field) {
	colors := [...]game.RGB{game.Palette.Player1, game.Palette.Player2, game.Palette.PowerUp, game.Palette.Goose}
	for i := 0; i < 160; i++ {
		ps.Add(Particle{
			X: ps.rng.RangeF(0, f.Width), Y: ps.rng.RangeF(-10, 0),
			VX: ps.rng.RangeF(-20, 20), VY: ps.rng.RangeF(10, 40),
			Size:    ps.rng.RangeF(1.5, 3),
			Life:    -ps.rng.RangeF(0, 1.2),
			MaxLife: ps.rng.RangeF(2.5, 4),
			Col:     colors[ps.rng.Intn(len(colors))],
			Kind:    ParticleConfetti,
		})
	}
}

// ParticleRenderData splits particles into glow (additive) and normal (alpha blend) buffers.
// Format: [x, y, size, r, g, b, a, rotation] * N.
func (ps *ParticleSystem) ParticleRenderData(glowBuf, normBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	for _, p := range ps.P {
		if p.Life < 0 {
			continue
		}
		t := p.Life / p.MaxLife
		if t > 1 {
			t = 1
		}

		a := 1.0 - t
		size := p.Size
		switch p.Kind {
		case ParticleFeather:
			a = 1.0 - t*t
		case ParticleSparkle:
			a = (1.0 - t) * 1.2
			size *= 1.0 + t
		case ParticleDust:
			a = (1.0 - t) * 0.7
		case ParticleConfetti:
			a = 1.0
			if t > 0.8 {
				a = (1.0 - t) * 5
			}
		}
		if a <= 0 {
			continue
		}
		if a > 1 {
			a = 1
		}

		rc, gc, bc := p.Col.Floats()
		ac := float32(a)
		sx := float32(p.X)
		sy := float32(p.Y)
		rot := float32(p.Life * 4)

		if p.Kind == ParticleSparkle {
			// Additive: pre-multiply color by alpha.
			glowBuf = append(glowBuf, sx, sy, float32(size), rc*ac, gc*ac, bc*ac, ac, 0)
		} else {
			normBuf = append(normBuf, sx, sy, float32(size), rc, gc, bc, ac, rot)
		}
	}
	return glowBuf, normBuf
}
