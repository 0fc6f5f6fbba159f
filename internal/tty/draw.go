package tty

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"goosechase/internal/game"
)

func color(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	grass     = tcell.StyleDefault.Background(color(game.Palette.Grass))
	styleText = grass.Foreground(color(game.Palette.Text)).Bold(true)
	styleWin  = grass.Foreground(color(game.Palette.TextWin)).Bold(true)
	styleBar  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleGoal = tcell.StyleDefault.Background(color(game.Palette.Elevator)).Foreground(color(game.Palette.DoorFrame))
)

// Grid maps field coordinates onto the terminal, leaving the last row for
// the status bar.
type Grid struct {
	W, H  int // playfield cells
	Field game.Field
}

func NewGrid(screenW, screenH int, f game.Field) Grid {
	h := screenH - 1
	if h < 1 {
		h = 1
	}
	if screenW < 1 {
		screenW = 1
	}
	return Grid{W: screenW, H: h, Field: f}
}

// Cell returns the cell containing field point (x, y) and whether it is on
// the playfield.
func (g Grid) Cell(x, y float64) (int, int, bool) {
	cx := int(math.Floor(x / g.Field.Width * float64(g.W)))
	cy := int(math.Floor(y / g.Field.Height * float64(g.H)))
	if cx < 0 || cy < 0 || cx >= g.W || cy >= g.H {
		return cx, cy, false
	}
	return cx, cy, true
}

// Overlay is transient text shown above the status bar.
type Overlay struct {
	Flash string
	Demo  bool
	Muted bool
}

// Draw renders snap onto screen. It does not call Show.
func Draw(screen tcell.Screen, snap *game.Snapshot, ov Overlay) {
	sw, sh := screen.Size()
	g := NewGrid(sw, sh, snap.Field)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			screen.SetContent(x, y, ' ', nil, grass)
		}
	}
	drawGoal(screen, g)

	switch snap.State {
	case game.StateNotStarted:
		centre(screen, g, g.H/2-2, "GOOSE CHASE", styleText)
		centre(screen, g, g.H/2, "Press 1 for solo, 2 for team", styleText)
		centre(screen, g, g.H/2+2, "WASD / arrows: chase the geese into the elevator", styleText)
	default:
		drawField(screen, g, snap)
		if snap.State == game.StateWon {
			centre(screen, g, g.H/2-2, "YOU WIN!", styleWin)
			centre(screen, g, g.H/2, fmt.Sprintf("Time: %s   Score: %d", game.FormatElapsed(snap.Elapsed), snap.FinalScore), styleWin)
			centre(screen, g, g.H/2+1, fmt.Sprintf("Lawn fouled: %.2f%%", snap.Coverage), styleWin)
			centre(screen, g, g.H/2+3, "Press SPACE to restart", styleWin)
		}
	}

	drawStatus(screen, sw, sh-1, snap, ov)
}

func drawGoal(screen tcell.Screen, g Grid) {
	goal := g.Field.Goal
	x0, y0, _ := g.Cell(goal.X0, goal.Y0)
	x1, _, _ := g.Cell(goal.X1, goal.Y0)
	for y := y0; y < g.H; y++ {
		for x := x0; x <= x1 && x < g.W; x++ {
			if x < 0 || y < 0 {
				continue
			}
			screen.SetContent(x, y, '▒', nil, styleGoal)
		}
	}
}

func drawField(screen tcell.Screen, g Grid, snap *game.Snapshot) {
	put := func(x, y float64, r rune, st tcell.Style) {
		if cx, cy, ok := g.Cell(x, y); ok {
			screen.SetContent(cx, cy, r, nil, st)
		}
	}

	for i := range snap.Poops {
		p := &snap.Poops[i]
		put(p.X, p.Y, '.', grass.Foreground(color(p.Color)))
	}
	pu := grass.Foreground(color(game.Palette.PowerUp)).Bold(true)
	for i := range snap.PowerUps {
		put(snap.PowerUps[i].X, snap.PowerUps[i].Y, '*', pu)
	}
	goose := grass.Foreground(color(game.Palette.Goose))
	for i := range snap.Geese {
		gv := &snap.Geese[i]
		r := 'g'
		if gv.Chased {
			r = 'G'
		}
		put(gv.X, gv.Y, r, goose)
	}
	marks := [2]rune{'X', 'Y'}
	cols := [2]game.RGB{game.Palette.Player1, game.Palette.Player2}
	for i := range snap.Players {
		p := &snap.Players[i]
		if !p.Active {
			continue
		}
		st := grass.Foreground(color(cols[i])).Bold(true)
		if p.BoostTicks > 0 {
			st = st.Reverse(true)
		}
		put(p.X, p.Y, marks[i], st)
	}
}

func drawStatus(screen tcell.Screen, w, y int, snap *game.Snapshot, ov Overlay) {
	for x := 0; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, styleBar)
	}
	var line string
	switch snap.State {
	case game.StateNotStarted:
		line = "q quits  p demo  m mute"
	default:
		line = fmt.Sprintf("Geese %d/%d  Time %s  Score %d",
			snap.Herded, snap.Total, game.FormatElapsed(snap.Elapsed), snap.LiveScore)
	}
	if ov.Flash != "" {
		line += "  " + ov.Flash
	}
	if ov.Demo {
		line += "  [DEMO]"
	}
	if ov.Muted {
		line += "  [MUTE]"
	}
	text(screen, 0, y, line, styleBar)
}

func centre(screen tcell.Screen, g Grid, y int, s string, st tcell.Style) {
	n := len([]rune(s))
	x := (g.W - n) / 2
	if x < 0 {
		x = 0
	}
	text(screen, x, y, s, st)
}

func text(screen tcell.Screen, x, y int, s string, st tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, st)
		x++
	}
}
