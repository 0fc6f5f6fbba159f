package desktop

import "github.com/go-gl/gl/v4.1-core/gl"

// drawPoints streams buf through prog.
// buf format: [x, y, size, r, g, b, a, rotation] * N (8 floats per sprite).
func (r *Renderer) drawPoints(prog spriteProgram, buf []float32, additive bool) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxSprites {
		count = MaxSprites
	}

	gl.UseProgram(prog.id)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(prog.uCamera, float32(r.camX), float32(r.camY))
	gl.Uniform1f(prog.uZoom, float32(r.zoom))
	gl.Uniform2f(prog.uResolution, float32(r.fbW), float32(r.fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawSquares renders solid square sprites. additive is for pre-multiplied particles.
func (r *Renderer) DrawSquares(buf []float32, additive bool) {
	r.drawPoints(r.square, buf, additive)
}

// DrawDiscs renders round sprites with alpha blending.
func (r *Renderer) DrawDiscs(buf []float32) {
	r.drawPoints(r.disc, buf, false)
}

// DrawGlowSprites renders light sprites with additive blending and radial falloff.
// RGB values should be pre-multiplied by desired brightness.
func (r *Renderer) DrawGlowSprites(buf []float32) {
	r.drawPoints(r.glow, buf, true)
}
