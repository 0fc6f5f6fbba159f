package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Floats returns the channels normalised to [0,1] for GL upload.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var Palette = struct {
	Grass     RGB
	Elevator  RGB
	DoorFrame RGB
	Arrow     RGB
	Goose     RGB
	GooseHead RGB
	Beak      RGB
	Player1   RGB
	Player2   RGB
	PowerUp   RGB
	Text      RGB
	TextWin   RGB
}{
	Grass:     RGB{R: 120, G: 180, B: 120},
	Elevator:  RGB{R: 60, G: 60, B: 70},
	DoorFrame: RGB{R: 40, G: 40, B: 50},
	Arrow:     RGB{R: 255, G: 50, B: 50},
	Goose:     RGB{R: 255, G: 255, B: 200},
	GooseHead: RGB{R: 40, G: 40, B: 40},
	Beak:      RGB{R: 245, G: 160, B: 40},
	Player1:   RGB{R: 200, G: 50, B: 50},
	Player2:   RGB{R: 50, G: 100, B: 255},
	PowerUp:   RGB{R: 255, G: 215, B: 0},
	Text:      RGB{R: 255, G: 255, B: 255},
	TextWin:   RGB{R: 255, G: 255, B: 100},
}

// poopColor builds a dark brown from a grey shade.
func poopColor(shade int) RGB {
	b := shade - 10
	if b < 0 {
		b = 0
	}
	return RGB{R: uint8(shade + 15), G: uint8(shade), B: uint8(b)}
}
