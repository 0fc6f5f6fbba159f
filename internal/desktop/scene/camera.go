package scene

import (
	"math"

	"goosechase/internal/game"
)

type Camera struct {
	X, Y float64 // field space, camera centre
	Zoom float64 // screen pixels per field unit

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in field units
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude

	rng *game.Rand
}

func NewCamera(seed uint64) Camera {
	return Camera{Zoom: 1, rng: game.NewRand(seed)}
}

// Fit centres the field and picks the largest zoom that shows all of it.
func (c *Camera) Fit(f game.Field, fbW, fbH int) {
	c.X = f.Width / 2
	c.Y = f.Height / 2
	if fbW <= 0 || fbH <= 0 || f.Width <= 0 || f.Height <= 0 {
		c.Zoom = 1
		return
	}
	c.Zoom = math.Min(float64(fbW)/f.Width, float64(fbH)/f.Height)
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and picks a new random offset.
func (c *Camera) UpdateShake(dt float64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	if c.rng == nil {
		c.rng = game.NewRand(1)
	}
	t := c.ShakeTimer
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = c.rng.RangeF(-mag, mag)
	c.ShakeY = c.rng.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}

// ToScreen maps a field point to framebuffer pixels, ignoring shake.
func (c *Camera) ToScreen(x, y float64, fbW, fbH int) (int, int) {
	sx := (x-c.X)*c.Zoom + float64(fbW)/2
	sy := (y-c.Y)*c.Zoom + float64(fbH)/2
	return int(math.Round(sx)), int(math.Round(sy))
}
