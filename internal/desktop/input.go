package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"goosechase/internal/game"
)

// Keys maps one player's directions.
type Keys struct {
	Up, Down, Left, Right glfw.Key
}

var (
	player1Keys = Keys{Up: glfw.KeyW, Down: glfw.KeyS, Left: glfw.KeyA, Right: glfw.KeyD}
	player2Keys = Keys{Up: glfw.KeyUp, Down: glfw.KeyDown, Left: glfw.KeyLeft, Right: glfw.KeyRight}
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

// JustPressed reports a key on the frame it goes down. Used for frontend
// toggles; the session does its own edge detection on Confirm.
func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func held(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

func direction(window *glfw.Window, k Keys) game.Direction {
	return game.Direction{
		Up:    held(window, k.Up),
		Down:  held(window, k.Down),
		Left:  held(window, k.Left),
		Right: held(window, k.Right),
	}
}

// Sample reads the level state of every game key.
func Sample(window *glfw.Window) game.Input {
	return game.Input{
		P1:       direction(window, player1Keys),
		P2:       direction(window, player2Keys),
		StartOne: held(window, glfw.Key1, glfw.KeyKP1),
		StartTwo: held(window, glfw.Key2, glfw.KeyKP2),
		Confirm:  held(window, glfw.KeySpace, glfw.KeyEnter, glfw.KeyKPEnter),
	}
}
