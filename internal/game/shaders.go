package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Ground vertex shader: one textured quad covering the city rectangle.
const groundVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // 0..1 quad vertex

uniform vec2 uOrigin;
uniform vec2 uSize;
uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec2 vUV;

void main() {
    vUV = aPos;
    vec2 worldPos = uOrigin + aPos * uSize;
    vec2 screenPos = (worldPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

// Ground fragment shader: sample the city texture under the sun cycle.
const groundFragSrc = `#version 410 core

uniform sampler2D uTex;
uniform float uAmbient;
uniform vec3 uSunTint;

in vec2 vUV;
out vec4 FragColor;

void main() {
    vec4 t = texture(uTex, vUV);
    FragColor = vec4(t.rgb * uAmbient * uSunTint, 1.0);
}
` + "\x00"

// Quad vertex shader: world-space triangles with per-vertex uv/color.
// Used for buildings, the vehicle boxes and shadows.
const quadVertSrc = `#version 410 core

layout(location = 0) in vec2 aWorldPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 screenPos = (aWorldPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Quad fragment shader: flat fill with a soft bevel from the uv, sun lit.
const quadFragSrc = `#version 410 core

uniform float uAmbient;
uniform vec3 uSunTint;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec3 col = vColor.rgb;
    // Top-left bevel highlight, bottom-right shadow.
    vec2 c = vUV - vec2(0.5);
    float hi = clamp((max(0.0, -c.x - 0.3) + max(0.0, -c.y - 0.3)) * 1.8, 0.0, 0.35);
    float sh = clamp((max(0.0, c.x - 0.3) + max(0.0, c.y - 0.3)) * 1.6, 0.0, 0.3);
    col = mix(col, vec3(1.0), hi);
    col = mix(col, vec3(0.0), sh);
    FragColor = vec4(col * uAmbient * uSunTint, vColor.a);
}
` + "\x00"

// Sprite vertex shader: point sprites with per-vertex pos/size/color/rotation.
const spriteVertSrc = `#version 410 core

layout(location = 0) in vec2 aWorldPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aRotation;

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec4 vColor;
out float vRotation;

void main() {
    vec2 screenPos = (aWorldPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    float ps = floor(aSize * uZoom + 0.5);
    gl_PointSize = max(1.0, ps);
    vColor = aColor;
    vRotation = aRotation;
}
` + "\x00"

// Sprite fragment shader: solid round sprite under the sun cycle.
const spriteFragSrc = `#version 410 core

uniform float uAmbient;
uniform vec3 uSunTint;

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0;
    if (dist > 1.0) discard;
    FragColor = vec4(vColor.rgb * uAmbient * uSunTint, vColor.a);
}
` + "\x00"

// Glow fragment shader: additive radial falloff for light sprites.
// vColor.rgb should be pre-multiplied by desired brightness.
const glowFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0;
    float falloff = clamp(1.0 - dist, 0.0, 1.0);
    falloff = falloff * falloff;
    FragColor = vec4(vColor.rgb * falloff, 1.0);
}
` + "\x00"

// Text vertex shader: screen-space textured quads for font rendering.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Text fragment shader: font atlas sampling with color tint.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uFontTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
