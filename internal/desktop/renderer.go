package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"goosechase/internal/desktop/scene"
	"goosechase/internal/game"
)

// MaxSprites bounds one streamed sprite upload. A full flock is three
// sprites per goose plus a marker per dropping.
const MaxSprites = 16384

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// spriteProgram is a point-sprite shader sharing the sprite VAO.
type spriteProgram struct {
	id          uint32
	uCamera     int32
	uZoom       int32
	uResolution int32
}

func newSpriteProgram(fragSrc string) (spriteProgram, error) {
	id, err := linkProgram(spriteVertSrc, fragSrc)
	if err != nil {
		return spriteProgram{}, err
	}
	gl.UseProgram(id)
	return spriteProgram{
		id:          id,
		uCamera:     gl.GetUniformLocation(id, gl.Str("uCamera\x00")),
		uZoom:       gl.GetUniformLocation(id, gl.Str("uZoom\x00")),
		uResolution: gl.GetUniformLocation(id, gl.Str("uResolution\x00")),
	}, nil
}

type Renderer struct {
	// Rect program.
	rectProg    uint32
	rectVAO     uint32
	rectVBO     uint32
	uOrigin     int32
	uSize       int32
	uRectCamera int32
	uRectZoom   int32
	uRectRes    int32
	uRectColor  int32

	// Point sprites.
	square spriteProgram
	disc   spriteProgram
	glow   spriteProgram

	spriteVAO uint32
	spriteVBO uint32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	// Per-frame view.
	camX, camY float64
	zoom       float64
	fbW, fbH   int
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{}
	var err error

	if r.rectProg, err = linkProgram(rectVertSrc, rectFragSrc); err != nil {
		return nil, fmt.Errorf("rect program: %w", err)
	}
	if r.square, err = newSpriteProgram(squareFragSrc); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("square program: %w", err)
	}
	if r.disc, err = newSpriteProgram(discFragSrc); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("disc program: %w", err)
	}
	if r.glow, err = newSpriteProgram(glowFragSrc); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("glow program: %w", err)
	}

	// Rect VAO/VBO: a unit quad (6 vertices, 2 triangles).
	gl.GenVertexArrays(1, &r.rectVAO)
	gl.GenBuffers(1, &r.rectVBO)
	gl.BindVertexArray(r.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(r.rectProg)
	r.uOrigin = gl.GetUniformLocation(r.rectProg, gl.Str("uOrigin\x00"))
	r.uSize = gl.GetUniformLocation(r.rectProg, gl.Str("uSize\x00"))
	r.uRectCamera = gl.GetUniformLocation(r.rectProg, gl.Str("uCamera\x00"))
	r.uRectZoom = gl.GetUniformLocation(r.rectProg, gl.Str("uZoom\x00"))
	r.uRectRes = gl.GetUniformLocation(r.rectProg, gl.Str("uResolution\x00"))
	r.uRectColor = gl.GetUniformLocation(r.rectProg, gl.Str("uColor\x00"))

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	gl.GenVertexArrays(1, &r.spriteVAO)
	gl.GenBuffers(1, &r.spriteVBO)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSprites*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.rectVBO, r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.rectVAO, r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.rectProg, r.square.id, r.disc.id, r.glow.id, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears to grass and fixes the view for every draw that follows.
func (r *Renderer) BeginFrame(cam scene.Camera, fbW, fbH int) {
	r.camX, r.camY = cam.EffectivePos()
	r.zoom = cam.Zoom
	r.fbW, r.fbH = fbW, fbH

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := game.Palette.Grass.Floats()
	gl.ClearColor(cr, cg, cb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawRects fills each rectangle with its colour.
func (r *Renderer) DrawRects(rects []scene.Rect) {
	if len(rects) == 0 {
		return
	}
	gl.UseProgram(r.rectProg)
	gl.BindVertexArray(r.rectVAO)
	gl.Uniform2f(r.uRectCamera, float32(r.camX), float32(r.camY))
	gl.Uniform1f(r.uRectZoom, float32(r.zoom))
	gl.Uniform2f(r.uRectRes, float32(r.fbW), float32(r.fbH))
	for _, rc := range rects {
		cr, cg, cb := rc.Col.Floats()
		gl.Uniform2f(r.uOrigin, rc.X, rc.Y)
		gl.Uniform2f(r.uSize, rc.W, rc.H)
		gl.Uniform4f(r.uRectColor, cr, cg, cb, 1)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}
}
