package desktop

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"goosechase/internal/desktop/scene"
	"goosechase/internal/game"
)

const (
	fontUnit       = 2 // texture unit of the atlas
	textVertFloats = 8 // x, y, u, v, r, g, b, a
	maxTextGlyphs  = 512
)

// InitFont uploads the glyph atlas and builds the text program and buffers.
func (r *Renderer) InitFont() error {
	atlas := scene.BuildFontAtlas()
	gl.GenTextures(1, &r.fontTex)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	for _, p := range [][2]int32{
		{gl.TEXTURE_MIN_FILTER, gl.NEAREST},
		{gl.TEXTURE_MAG_FILTER, gl.NEAREST},
		{gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE},
		{gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE},
	} {
		gl.TexParameteri(gl.TEXTURE_2D, uint32(p[0]), p[1])
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, scene.FontAtlasW, scene.FontAtlasH, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, fontUnit)

	gl.GenVertexArrays(1, &r.textVAO)
	gl.GenBuffers(1, &r.textVBO)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	stride := int32(textVertFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxTextGlyphs*6*int(stride), nil, gl.STREAM_DRAW)
	// aPos, aUV, aColor
	for i, a := range [][2]int32{{2, 0}, {2, 2}, {4, 4}} {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), a[0], gl.FLOAT, false, stride, glOffset(int(a[1])*4))
	}
	gl.BindVertexArray(0)
	return nil
}

// DrawLines queues every HUD line as glyph quads in framebuffer pixels.
func (r *Renderer) DrawLines(lines []scene.TextLine) {
	for _, l := range lines {
		r.queueText(l.Text, float32(l.X), float32(l.Y), l.Scale, l.Col)
	}
}

func (r *Renderer) queueText(text string, x0, y0, scale float32, col game.RGB) {
	cw, ch := float32(scene.FontCellW)*scale, float32(scene.FontCellH)*scale
	cr, cg, cb := col.Floats()
	x, y := x0, y0
	for _, c := range text {
		if c == '\n' {
			x, y = x0, y+ch
			continue
		}
		if u0, v0, u1, v1, ok := scene.GlyphUV(c); ok && c != ' ' {
			corner := func(px, py, u, v float32) {
				r.textBuf = append(r.textBuf, px, py, u, v, cr, cg, cb, 1)
			}
			corner(x, y, u0, v0)
			corner(x+cw, y, u1, v0)
			corner(x, y+ch, u0, v1)
			corner(x+cw, y, u1, v0)
			corner(x+cw, y+ch, u1, v1)
			corner(x, y+ch, u0, v1)
		}
		x += cw
	}
}

// FlushText draws the queued glyphs with alpha blending and empties the queue.
func (r *Renderer) FlushText() {
	n := len(r.textBuf) / textVertFloats
	if n == 0 {
		return
	}
	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.Uniform2f(r.textURes, float32(r.fbW), float32(r.fbH))
	gl.ActiveTexture(gl.TEXTURE0 + fontUnit)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(n))
	gl.Disable(gl.BLEND)

	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
