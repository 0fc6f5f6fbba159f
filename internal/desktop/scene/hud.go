package scene

import (
	"fmt"

	"goosechase/internal/game"
)

// TextLine is one HUD string placed in framebuffer pixels.
type TextLine struct {
	Text  string
	X, Y  int
	Scale float32
	Col   game.RGB
}

// HUD lays out per-state text. Sizes are given in field units so the
// overlay scales with the window.
type HUD struct {
	Lines []TextLine
	cam   Camera
	fbW   int
	fbH   int
}

func (h *HUD) scale(size float64) float32 {
	return float32(size * h.cam.Zoom / FontCellH)
}

func (h *HUD) left(text string, fx, fy, size float64, col game.RGB) {
	x, y := h.cam.ToScreen(fx, fy, h.fbW, h.fbH)
	h.Lines = append(h.Lines, TextLine{Text: text, X: x, Y: y, Scale: h.scale(size), Col: col})
}

func (h *HUD) centred(text string, fy, size float64, col game.RGB, f game.Field) {
	s := h.scale(size)
	x, y := h.cam.ToScreen(f.Width/2, fy, h.fbW, h.fbH)
	x -= TextWidth(text, s) / 2
	y -= int(float32(FontCellH)*s) / 2
	h.Lines = append(h.Lines, TextLine{Text: text, X: x, Y: y, Scale: s, Col: col})
}

// Build refills the HUD for snap.
func (h *HUD) Build(snap *game.Snapshot, cam Camera, fbW, fbH int, demo bool) {
	h.Lines = h.Lines[:0]
	h.cam, h.fbW, h.fbH = cam, fbW, fbH
	f := snap.Field
	white := game.Palette.Text

	switch snap.State {
	case game.StateNotStarted:
		h.centred("GOOSE CHASE", f.Height/2-30, 12, white, f)
		h.centred("Press 1 for solo", f.Height/2, 8, white, f)
		h.centred("Press 2 for team", f.Height/2+20, 8, white, f)
		h.centred("WASD / arrows: chase the geese into the elevator", f.Height/2+45, 6, white, f)

	case game.StateRunning, game.StateWon:
		elapsed := game.FormatElapsed(snap.Elapsed)
		h.left(fmt.Sprintf("Geese: %d/%d", snap.Herded, snap.Total), 10, 10, 8, white)
		h.left("Time: "+elapsed, 10, 30, 8, white)
		h.left(fmt.Sprintf("Score: %d", snap.LiveScore), 10, 50, 8, white)

		y := 70.0
		for i := range snap.Players {
			p := &snap.Players[i]
			if !p.Active || p.BoostTicks <= 0 {
				continue
			}
			secs := float64(p.BoostTicks) / game.TickRate
			h.left(fmt.Sprintf("P%d BIG %.1fs", i+1, secs), 10, y, 6, game.Palette.PowerUp)
			y += 12
		}

		if snap.State == game.StateWon {
			yellow := game.Palette.TextWin
			h.centred("YOU WIN!", f.Height/2-20, 16, yellow, f)
			h.centred("Time: "+elapsed, f.Height/2+10, 10, yellow, f)
			h.centred(fmt.Sprintf("Score: %d", snap.FinalScore), f.Height/2+35, 10, yellow, f)
			h.centred(fmt.Sprintf("Lawn fouled: %.2f%%", snap.Coverage), f.Height/2+52, 7, yellow, f)
			h.centred("Press SPACE to restart", f.Height/2+70, 8, yellow, f)
		}
	}

	if demo {
		h.left("DEMO", f.Width-40, 10, 6, game.Palette.Arrow)
	}
}
