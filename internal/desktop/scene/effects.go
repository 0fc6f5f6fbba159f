package scene

import "goosechase/internal/game"

// Effects turns cues into particles and camera shake.
type Effects struct {
	Particles *ParticleSystem
	Camera    Camera
	field     game.Field
}

func NewEffects(seed uint64, f game.Field) *Effects {
	r := game.NewRand(seed)
	return &Effects{
		Particles: NewParticleSystem(MaxParticles, r.NextU64()),
		Camera:    NewCamera(r.NextU64()),
		field:     f,
	}
}

// Subscribe hooks the effects onto bus.
func (e *Effects) Subscribe(bus *game.EventBus) {
	bus.Subscribe(game.CueStarted, func(game.Cue) { e.Particles.Clear() })
	bus.Subscribe(game.CueRestarted, func(game.Cue) { e.Particles.Clear() })
	bus.Subscribe(game.CueHerded, func(c game.Cue) {
		e.Particles.Feathers(c.X, c.Y, c.Data)
		e.Camera.AddShake(0.6, 0.12)
	})
	bus.Subscribe(game.CuePowerUpGrabbed, func(c game.Cue) { e.Particles.Sparkles(c.X, c.Y) })
	bus.Subscribe(game.CuePoop, func(c game.Cue) { e.Particles.Plop(c.X, c.Y) })
	bus.Subscribe(game.CueWon, func(game.Cue) {
		e.Particles.Confetti(e.field)
		e.Camera.AddShake(3, 0.6)
	})
}

// Update advances particles and shake by dt seconds.
func (e *Effects) Update(dt float64) {
	e.Particles.Update(dt)
	e.Camera.UpdateShake(dt)
}
