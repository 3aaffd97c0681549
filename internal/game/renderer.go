package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Ground program (city texture quad).
	groundProg uint32
	groundVAO  uint32
	groundVBO  uint32
	groundTex  uint32

	gUOrigin     int32
	gUSize       int32
	gUCamera     int32
	gUZoom       int32
	gUResolution int32
	gUTex        int32
	gUAmbient    int32
	gUSunTint    int32

	// Quad program (world-space triangles: buildings, vehicle, shadows).
	quadProg uint32
	quadVAO  uint32
	quadVBO  uint32

	qUCamera     int32
	qUZoom       int32
	qUResolution int32
	qUAmbient    int32
	qUSunTint    int32

	// Sprite program (point sprites: particles, minimap dots).
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUCamera     int32
	spUZoom       int32
	spUResolution int32
	spUAmbient    int32
	spUSunTint    int32

	// Glow (radial light) program. Shares spriteVAO, additive blend only.
	glowProg        uint32
	glowUCamera     int32
	glowUZoom       int32
	glowUResolution int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	groundProg, err := linkProgram(groundVertSrc, groundFragSrc)
	if err != nil {
		return nil, fmt.Errorf("ground program: %w", err)
	}
	quadProg, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		gl.DeleteProgram(groundProg)
		return nil, fmt.Errorf("quad program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(groundProg)
		gl.DeleteProgram(quadProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(groundProg)
		gl.DeleteProgram(quadProg)
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		groundProg: groundProg,
		quadProg:   quadProg,
		spriteProg: spriteProg,
		glowProg:   glowProg,
	}

	// Ground VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var gVAO, gVBO uint32
	gl.GenVertexArrays(1, &gVAO)
	gl.GenBuffers(1, &gVBO)
	gl.BindVertexArray(gVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, gVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.groundVAO = gVAO
	r.groundVBO = gVBO

	gl.UseProgram(groundProg)
	r.gUOrigin = gl.GetUniformLocation(groundProg, gl.Str("uOrigin\x00"))
	r.gUSize = gl.GetUniformLocation(groundProg, gl.Str("uSize\x00"))
	r.gUCamera = gl.GetUniformLocation(groundProg, gl.Str("uCamera\x00"))
	r.gUZoom = gl.GetUniformLocation(groundProg, gl.Str("uZoom\x00"))
	r.gUResolution = gl.GetUniformLocation(groundProg, gl.Str("uResolution\x00"))
	r.gUTex = gl.GetUniformLocation(groundProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.gUTex, 0)
	r.gUAmbient = gl.GetUniformLocation(groundProg, gl.Str("uAmbient\x00"))
	r.gUSunTint = gl.GetUniformLocation(groundProg, gl.Str("uSunTint\x00"))
	gl.Uniform1f(r.gUAmbient, 1.0)
	gl.Uniform3f(r.gUSunTint, 1.0, 1.0, 1.0)

	// Quad VAO/VBO: streaming buffer, 8 floats per vertex (pos2, uv2, color4).
	var qVAO, qVBO uint32
	gl.GenVertexArrays(1, &qVAO)
	gl.GenBuffers(1, &qVBO)
	gl.BindVertexArray(qVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, qVBO)

	qStride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 4096*6*int(qStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, qStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, qStride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, qStride, glOffset(4*4))
	r.quadVAO = qVAO
	r.quadVBO = qVBO

	gl.UseProgram(quadProg)
	r.qUCamera = gl.GetUniformLocation(quadProg, gl.Str("uCamera\x00"))
	r.qUZoom = gl.GetUniformLocation(quadProg, gl.Str("uZoom\x00"))
	r.qUResolution = gl.GetUniformLocation(quadProg, gl.Str("uResolution\x00"))
	r.qUAmbient = gl.GetUniformLocation(quadProg, gl.Str("uAmbient\x00"))
	r.qUSunTint = gl.GetUniformLocation(quadProg, gl.Str("uSunTint\x00"))
	gl.Uniform1f(r.qUAmbient, 1.0)
	gl.Uniform3f(r.qUSunTint, 1.0, 1.0, 1.0)

	// Sprite VAO/VBO: streaming point sprites, 8 floats each
	// (x, z, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticleRender*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spUCamera = gl.GetUniformLocation(spriteProg, gl.Str("uCamera\x00"))
	r.spUZoom = gl.GetUniformLocation(spriteProg, gl.Str("uZoom\x00"))
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))
	r.spUAmbient = gl.GetUniformLocation(spriteProg, gl.Str("uAmbient\x00"))
	r.spUSunTint = gl.GetUniformLocation(spriteProg, gl.Str("uSunTint\x00"))
	gl.Uniform1f(r.spUAmbient, 1.0)
	gl.Uniform3f(r.spUSunTint, 1.0, 1.0, 1.0)

	gl.UseProgram(glowProg)
	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.groundVBO, r.quadVBO, r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.groundVAO, r.quadVAO, r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.groundProg, r.quadProg, r.spriteProg, r.glowProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.groundTex, r.fontTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}

// InitGroundTexture uploads the city ground image (RGBA, 1 texel/unit).
func (r *Renderer) InitGroundTexture(pix []uint8, w, h int) {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	r.groundTex = tex
}

func (r *Renderer) BeginFrame(cam Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.ActiveTexture(gl.TEXTURE0)
}

// SetSunLight sets the ambient multiplier and color tint on the lit programs.
func (r *Renderer) SetSunLight(ambient, tintR, tintG, tintB float32) {
	gl.UseProgram(r.groundProg)
	gl.Uniform1f(r.gUAmbient, ambient)
	gl.Uniform3f(r.gUSunTint, tintR, tintG, tintB)

	gl.UseProgram(r.quadProg)
	gl.Uniform1f(r.qUAmbient, ambient)
	gl.Uniform3f(r.qUSunTint, tintR, tintG, tintB)

	gl.UseProgram(r.spriteProg)
	gl.Uniform1f(r.spUAmbient, ambient)
	gl.Uniform3f(r.spUSunTint, tintR, tintG, tintB)
}

// SetSpriteAmbient overrides ambient on the sprite program only (full
// bright passes like minimap markers).
func (r *Renderer) SetSpriteAmbient(ambient, tintR, tintG, tintB float32) {
	gl.UseProgram(r.spriteProg)
	gl.Uniform1f(r.spUAmbient, ambient)
	gl.Uniform3f(r.spUSunTint, tintR, tintG, tintB)
}

// DrawGround renders the city texture quad.
func (r *Renderer) DrawGround(cam Camera, fbW, fbH int) {
	if r.groundTex == 0 {
		return
	}
	gl.UseProgram(r.groundProg)
	gl.BindVertexArray(r.groundVAO)
	gl.Uniform2f(r.gUOrigin, 0, 0)
	gl.Uniform2f(r.gUSize, float32(WorldWidth), float32(WorldDepth))
	gl.Uniform2f(r.gUCamera, float32(cam.X), float32(cam.Z))
	gl.Uniform1f(r.gUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.gUResolution, float32(fbW), float32(fbH))
	gl.BindTexture(gl.TEXTURE_2D, r.groundTex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// DrawQuads streams world-space triangles (8 floats per vertex:
// x, z, u, v, r, g, b, a).
func (r *Renderer) DrawQuads(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.Uniform2f(r.qUCamera, float32(cam.X), float32(cam.Z))
	gl.Uniform1f(r.qUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.qUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(buf)/8))
	gl.Disable(gl.BLEND)
}

// DrawSprites streams point sprites (8 floats each).
func (r *Renderer) DrawSprites(buf []float32, cam Camera, fbW, fbH int, additive bool) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxParticleRender {
		count = MaxParticleRender
		buf = buf[:count*8]
	}
	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.spUCamera, float32(cam.X), float32(cam.Z))
	gl.Uniform1f(r.spUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(buf))
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}

// DrawGlowSprites renders additive radial light sprites.
func (r *Renderer) DrawGlowSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > MaxParticleRender {
		count = MaxParticleRender
		buf = buf[:count*8]
	}
	gl.UseProgram(r.glowProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.glowUCamera, float32(cam.X), float32(cam.Z))
	gl.Uniform1f(r.glowUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.glowUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(buf))
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}
