package scene

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goosechase/internal/game"
)

func texts(h *HUD) []string {
	out := make([]string, 0, len(h.Lines))
	for _, l := range h.Lines {
		out = append(out, l.Text)
	}
	return out
}

func fitted(fbW, fbH int) Camera {
	cam := NewCamera(1)
	cam.Fit(game.DefaultField(), fbW, fbH)
	return cam
}

func TestCameraFit(t *testing.T) {
	cam := fitted(1008, 786)
	assert.Equal(t, 3.0, cam.Zoom)
	assert.Equal(t, 168.0, cam.X)
	x, y := cam.ToScreen(0, 0, 1008, 786)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	wide := fitted(2000, 786)
	assert.Equal(t, 3.0, wide.Zoom, "limited by height")

	var zero Camera
	zero.Fit(game.DefaultField(), 0, 0)
	assert.Equal(t, 1.0, zero.Zoom)
}

func TestCameraShakeDecays(t *testing.T) {
	cam := NewCamera(4)
	cam.AddShake(3, 0.5)
	cam.AddShake(1, 0.1)
	assert.Equal(t, 3.0, cam.ShakeIntensity)
	assert.Equal(t, 0.5, cam.ShakeTimer)

	cam.UpdateShake(0.1)
	assert.LessOrEqual(t, cam.ShakeX, 3.0)
	for i := 0; i < 10; i++ {
		cam.UpdateShake(0.1)
	}
	assert.Zero(t, cam.ShakeX)
	assert.Zero(t, cam.ShakeIntensity)
}

func TestHUDStartScreen(t *testing.T) {
	var h HUD
	snap := game.Snapshot{State: game.StateNotStarted, Field: game.DefaultField()}
	h.Build(&snap, fitted(1008, 786), 1008, 786, false)

	require.Len(t, h.Lines, 4)
	title := h.Lines[0]
	assert.Equal(t, "GOOSE CHASE", title.Text)
	mid := title.X + TextWidth(title.Text, title.Scale)/2
	assert.InDelta(t, 504, mid, 1, "title is centred")
	assert.Greater(t, title.Scale, h.Lines[1].Scale)
}

func TestHUDRunning(t *testing.T) {
	var h HUD
	snap := game.Snapshot{
		State:     game.StateRunning,
		Field:     game.DefaultField(),
		Herded:    12,
		Total:     404,
		Elapsed:   9*time.Second + 250*time.Millisecond,
		LiveScore: 49000,
		Players:   [2]game.PlayerView{{Active: true}, {Active: true, BoostTicks: 90}},
	}
	h.Build(&snap, fitted(1008, 786), 1008, 786, true)

	got := texts(&h)
	assert.Contains(t, got, "Geese: 12/404")
	assert.Contains(t, got, "Time: 9.25s")
	assert.Contains(t, got, "Score: 49000")
	assert.Contains(t, got, "P2 BIG 1.5s")
	assert.Contains(t, got, "DEMO")
	for _, s := range got {
		assert.False(t, strings.HasPrefix(s, "P1 BIG"), "unboosted player has no timer")
	}

	first := h.Lines[0]
	assert.Equal(t, 30, first.X)
	assert.Equal(t, 30, first.Y)
}

func TestHUDWinScreen(t *testing.T) {
	var h HUD
	snap := game.Snapshot{
		State:      game.StateWon,
		Field:      game.DefaultField(),
		Herded:     404,
		Total:      404,
		Elapsed:    time.Minute,
		FinalScore: 35002,
		Coverage:   1.5,
	}
	h.Build(&snap, fitted(1008, 786), 1008, 786, false)

	got := texts(&h)
	assert.Contains(t, got, "YOU WIN!")
	assert.Contains(t, got, "Score: 35002")
	assert.Contains(t, got, "Lawn fouled: 1.50%")
	assert.Contains(t, got, "Press SPACE to restart")
}
