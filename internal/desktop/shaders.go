package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glsl joins shader parts under the version line and NUL terminates them.
func glsl(parts ...string) string {
	return "#version 410 core\n" + strings.Join(parts, "\n") + "\x00"
}

// Field units to clip space. The field's y axis points down.
const projectGLSL = `
uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

vec2 toScreen(vec2 field) {
    return (field - uCamera) * uZoom + uResolution * 0.5;
}

vec4 project(vec2 field) {
    vec2 ndc = toScreen(field) / uResolution * 2.0 - 1.0;
    return vec4(ndc.x, -ndc.y, 0.0, 1.0);
}
`

// One rectangle per draw call: the unit quad is stretched over uOrigin..uSize.
var rectVertSrc = glsl(projectGLSL, `
layout(location = 0) in vec2 aCorner;
uniform vec2 uOrigin;
uniform vec2 uSize;

void main() {
    gl_Position = project(uOrigin + aCorner * uSize);
}
`)

var rectFragSrc = glsl(`
uniform vec4 uColor;
out vec4 FragColor;

void main() { FragColor = uColor; }
`)

// Point sprites: [x, y, size, r, g, b, a, rotation] per vertex.
var spriteVertSrc = glsl(projectGLSL, `
layout(location = 0) in vec2 aCentre;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aRotation;

out vec4 vColor;
out float vRotation;

void main() {
    gl_Position = project(aCentre);
    gl_PointSize = max(1.0, floor(aSize * uZoom + 0.5));
    vColor = aColor;
    vRotation = aRotation;
}
`)

const spriteInGLSL = `
in vec4 vColor;
in float vRotation;
out vec4 FragColor;

// 0 at the sprite centre, 1 on its inscribed circle.
float radial() { return length(gl_PointCoord - 0.5) * 2.0; }
`

// Spinning sprites (feathers) are cut to a smaller square so the corners
// stay inside the point.
var squareFragSrc = glsl(spriteInGLSL, `
void main() {
    if (vRotation != 0.0) {
        vec2 p = gl_PointCoord - 0.5;
        float c = cos(vRotation), s = sin(vRotation);
        vec2 q = mat2(c, s, -s, c) * p;
        if (max(abs(q.x), abs(q.y)) > 0.36) discard;
    }
    FragColor = vColor;
}
`)

var discFragSrc = glsl(spriteInGLSL, `
void main() {
    float d = radial();
    float a = 1.0 - smoothstep(1.0 - fwidth(d), 1.0, d);
    if (a <= 0.0) discard;
    FragColor = vec4(vColor.rgb, vColor.a * a);
}
`)

// Additive halo. Callers premultiply brightness into the colour.
var glowFragSrc = glsl(spriteInGLSL, `
void main() {
    float f = clamp(1.0 - radial(), 0.0, 1.0);
    FragColor = vec4(vColor.rgb * f * f, 1.0);
}
`)

// HUD text is laid out in framebuffer pixels, not field units.
var textVertSrc = glsl(`
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;
uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = aPos / uResolution * 2.0 - 1.0;
    gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
`)

var textFragSrc = glsl(`
uniform sampler2D uFontTex;
in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    float ink = texture(uFontTex, vUV).a;
    if (ink < 0.01) discard;
    FragColor = vec4(vColor.rgb, vColor.a * ink);
}
`)

// glLog reads a shader or program info log through the matching getters.
func glLog(id uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(id, gl.INFO_LOG_LENGTH, &n)
	buf := make([]byte, n+1)
	getLog(id, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func compileShader(src string, kind uint32) (uint32, error) {
	id := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(id, 1, csrc, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		msg := glLog(id, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(id)
		return 0, fmt.Errorf("compile shader: %s", msg)
	}
	return id, nil
}

// linkProgram compiles both stages and links them. The shader objects are
// released whatever the outcome.
func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	var stages [2]uint32
	for i, s := range [2]struct {
		src  string
		kind uint32
	}{{vertSrc, gl.VERTEX_SHADER}, {fragSrc, gl.FRAGMENT_SHADER}} {
		id, err := compileShader(s.src, s.kind)
		if err != nil {
			for _, done := range stages[:i] {
				gl.DeleteShader(done)
			}
			return 0, err
		}
		stages[i] = id
	}

	prog := gl.CreateProgram()
	for _, id := range stages {
		gl.AttachShader(prog, id)
	}
	gl.LinkProgram(prog)
	for _, id := range stages {
		gl.DetachShader(prog, id)
		gl.DeleteShader(id)
	}

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		msg := glLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link program: %s", msg)
	}
	return prog, nil
}
