package scene

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellInk(img *image.NRGBA, ch rune) int {
	c := int(ch - FontFirst)
	x0, y0 := (c%FontCols)*FontCellW, (c/FontCols)*FontCellH
	ink := 0
	for y := y0; y < y0+FontCellH; y++ {
		for x := x0; x < x0+FontCellW; x++ {
			if img.NRGBAAt(x, y).A > 0 {
				ink++
			}
		}
	}
	return ink
}

func TestBuildFontAtlas(t *testing.T) {
	img := BuildFontAtlas()
	require.Equal(t, image.Rect(0, 0, 112, 78), img.Bounds())

	assert.Zero(t, cellInk(img, ' '))
	for _, ch := range "AZaz09!~" {
		assert.Positive(t, cellInk(img, ch), "glyph %q", ch)
	}
	assert.Greater(t, cellInk(img, 'W'), cellInk(img, '.'))
}

func TestGlyphUV(t *testing.T) {
	u0, v0, u1, v1, ok := GlyphUV(' ')
	require.True(t, ok)
	assert.Zero(t, u0)
	assert.Zero(t, v0)
	assert.InDelta(t, 7.0/112, u1, 1e-6)
	assert.InDelta(t, 13.0/78, v1, 1e-6)

	_, _, u1, v1, ok = GlyphUV('~')
	require.True(t, ok)
	assert.InDelta(t, 15.0/16, u1, 1e-6)
	assert.InDelta(t, 1, v1, 1e-6)

	_, _, _, _, ok = GlyphUV('\t')
	assert.False(t, ok)
	_, _, _, _, ok = GlyphUV('é')
	assert.False(t, ok)
}

func TestTextWidth(t *testing.T) {
	assert.Equal(t, 0, TextWidth("", 1))
	assert.Equal(t, 35, TextWidth("Geese", 1))
	assert.Equal(t, 70, TextWidth("Geese", 2))
	assert.Equal(t, 28, TextWidth("ab\nwxyz\nc", 1), "widest line wins")
}
