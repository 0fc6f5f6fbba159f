package scene

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas layout: printable ASCII in a 16 column grid of 7x13 cells.
const (
	FontCols   = 16
	FontCellW  = 7
	FontCellH  = 13
	FontFirst  = 32
	FontLast   = 126
	FontRows   = (FontLast - FontFirst + FontCols) / FontCols
	FontAtlasW = FontCols * FontCellW
	FontAtlasH = FontRows * FontCellH
)

// BuildFontAtlas rasterises basicfont.Face7x13 into a white-on-transparent
// atlas suitable for a tinted text shader.
func BuildFontAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := font.Drawer{Dst: img, Src: image.White, Face: face}
	for ch := rune(FontFirst); ch <= FontLast; ch++ {
		c := int(ch - FontFirst)
		col, row := c%FontCols, c/FontCols
		d.Dot = fixed.P(col*FontCellW, row*FontCellH+face.Ascent)
		d.DrawString(string(ch))
	}
	return img
}

// GlyphUV returns the atlas texture coordinates of ch.
func GlyphUV(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if ch < FontFirst || ch > FontLast {
		return 0, 0, 0, 0, false
	}
	c := int(ch - FontFirst)
	col, row := c%FontCols, c/FontCols
	u0 = float32(col*FontCellW) / FontAtlasW
	v0 = float32(row*FontCellH) / FontAtlasH
	u1 = float32((col+1)*FontCellW) / FontAtlasW
	v1 = float32((row+1)*FontCellH) / FontAtlasH
	return u0, v0, u1, v1, true
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLineLen {
				maxLineLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLineLen {
		maxLineLen = lineLen
	}
	return int(float32(maxLineLen*FontCellW) * scale)
}
