package audio

import (
	"math"

	"goosechase/internal/game"
)

// Subscribe plays the matching effect for every cue on bus.
func Subscribe(bus *game.EventBus) {
	bus.Subscribe(game.CueStarted, func(game.Cue) { Play(SoundSelect) })
	bus.Subscribe(game.CueRestarted, func(game.Cue) { Play(SoundSelect) })
	bus.Subscribe(game.CueHerded, func(c game.Cue) {
		// Several geese through the doors on one tick honk louder, not longer.
		PlayWithGain(SoundHonk, math.Min(1, 0.6+0.1*float64(c.Data)))
	})
	bus.Subscribe(game.CuePowerUpGrabbed, func(game.Cue) { Play(SoundChime) })
	bus.Subscribe(game.CuePowerDown, func(game.Cue) { Play(SoundPowerDown) })
	bus.Subscribe(game.CuePoop, func(game.Cue) { PlayWithGain(SoundPlop, 0.35) })
	bus.Subscribe(game.CueWon, func(game.Cue) { Play(SoundFanfare) })
}
