package game

// RectF is an axis-aligned rectangle in field-pixel space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

// SquareAt returns the square of the given side centred on (x, y).
func SquareAt(x, y, side float64) RectF {
	h := side / 2
	return RectF{X0: x - h, Y0: y - h, X1: x + h, Y1: y + h}
}

func (r RectF) Width() float64  { return r.X1 - r.X0 }
func (r RectF) Height() float64 { return r.Y1 - r.Y0 }

// Touches reports whether r and o overlap or share an edge.
func (r RectF) Touches(o RectF) bool {
	return r.X0 <= o.X1 && r.X1 >= o.X0 && r.Y0 <= o.Y1 && r.Y1 >= o.Y0
}

// InSpanX reports whether x lies in [X0, X1].
func (r RectF) InSpanX(x float64) bool {
	return x >= r.X0 && x <= r.X1
}
