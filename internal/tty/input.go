package tty

import (
	"github.com/gdamore/tcell/v2"

	"goosechase/internal/game"
)

// DefaultHoldTicks is how long one key press keeps its action held.
const DefaultHoldTicks = 6

type action int

const (
	actNone action = iota
	actP1Up
	actP1Down
	actP1Left
	actP1Right
	actP2Up
	actP2Down
	actP2Left
	actP2Right
	actStartOne
	actStartTwo
	actConfirm
	actDemo
	actMute
	actQuit
	actCount
)

// opposite cancels the reverse direction so a tap turns immediately.
var opposite = [actCount]action{
	actP1Up: actP1Down, actP1Down: actP1Up, actP1Left: actP1Right, actP1Right: actP1Left,
	actP2Up: actP2Down, actP2Down: actP2Up, actP2Left: actP2Right, actP2Right: actP2Left,
}

func mapKey(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyUp:
		return actP2Up
	case tcell.KeyDown:
		return actP2Down
	case tcell.KeyLeft:
		return actP2Left
	case tcell.KeyRight:
		return actP2Right
	case tcell.KeyEnter:
		return actConfirm
	case tcell.KeyRune:
	default:
		return actNone
	}
	switch ev.Rune() {
	case 'w', 'W':
		return actP1Up
	case 's', 'S':
		return actP1Down
	case 'a', 'A':
		return actP1Left
	case 'd', 'D':
		return actP1Right
	case '1':
		return actStartOne
	case '2':
		return actStartTwo
	case ' ':
		return actConfirm
	case 'p', 'P':
		return actDemo
	case 'm', 'M':
		return actMute
	case 'q', 'Q':
		return actQuit
	}
	return actNone
}

// Holds turns key presses into held levels. Terminals send no key-up, so
// every press holds its action for a fixed number of ticks and a repeat
// refreshes it.
type Holds struct {
	ticks  int
	remain [actCount]int
}

func NewHolds(ticks int) *Holds {
	if ticks < 1 {
		ticks = DefaultHoldTicks
	}
	return &Holds{ticks: ticks}
}

// Press starts or refreshes the hold window of a.
func (h *Holds) Press(a action) {
	if a <= actNone || a >= actCount {
		return
	}
	h.remain[a] = h.ticks
	if o := opposite[a]; o != actNone {
		h.remain[o] = 0
	}
}

// Input samples the held levels and counts every hold down by one tick.
func (h *Holds) Input() game.Input {
	on := func(a action) bool { return h.remain[a] > 0 }
	in := game.Input{
		P1:       game.Direction{Up: on(actP1Up), Down: on(actP1Down), Left: on(actP1Left), Right: on(actP1Right)},
		P2:       game.Direction{Up: on(actP2Up), Down: on(actP2Down), Left: on(actP2Left), Right: on(actP2Right)},
		StartOne: on(actStartOne),
		StartTwo: on(actStartTwo),
		Confirm:  on(actConfirm),
	}
	for i := range h.remain {
		if h.remain[i] > 0 {
			h.remain[i]--
		}
	}
	return in
}
