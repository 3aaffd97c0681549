package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// InitFont builds the procedural atlas texture and the screen-space text
// pipeline. Text is buffered with DrawString and submitted via FlushText.
func (r *Renderer) InitFont() error {
	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	atlas := buildFontAtlas()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, FontAtlasW, FontAtlasH, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas))
	r.fontTex = tex

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 4096*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	r.textVAO = vao
	r.textVBO = vbo

	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 0)

	gl.BindVertexArray(0)
	return nil
}

// TextWidth returns the pixel width of s at the given scale.
func TextWidth(s string, scale float64) float64 {
	return float64(len(s)*FontCellW) * scale
}

// DrawString buffers one line of text. Lowercase letters draw with the
// uppercase glyphs.
func (r *Renderer) DrawString(s string, x, y, scale float64, col RGB, alpha float64) {
	if r.textProg == 0 {
		return
	}
	cw := float32(FontCellW) * float32(scale)
	gw := float32(FontGlyphW) * float32(scale)
	gh := float32(FontGlyphH) * float32(scale)
	cr := float32(col.R) / 255
	cg := float32(col.G) / 255
	cb := float32(col.B) / 255
	ca := float32(alpha)

	px := float32(x)
	py := float32(y)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch > 32 && int(ch) < 32+FontCols*FontRows {
			idx := int(ch) - 32
			u0 := float32((idx%FontCols)*FontCellW) / FontAtlasW
			v0 := float32((idx/FontCols)*FontCellH) / FontAtlasH
			u1 := u0 + float32(FontGlyphW)/FontAtlasW
			v1 := v0 + float32(FontGlyphH)/FontAtlasH

			x0, y0 := px, py
			x1, y1 := px+gw, py+gh
			r.textBuf = append(r.textBuf,
				x0, y0, u0, v0, cr, cg, cb, ca,
				x1, y0, u1, v0, cr, cg, cb, ca,
				x1, y1, u1, v1, cr, cg, cb, ca,
				x0, y0, u0, v0, cr, cg, cb, ca,
				x1, y1, u1, v1, cr, cg, cb, ca,
				x0, y1, u0, v1, cr, cg, cb, ca,
			)
		}
		px += cw
	}
}

// DrawStringCentered buffers text centered horizontally around x.
func (r *Renderer) DrawStringCentered(s string, x, y, scale float64, col RGB, alpha float64) {
	r.DrawString(s, x-TextWidth(s, scale)/2, y, scale, col, alpha)
}

// FlushText submits all buffered text in one draw call.
func (r *Renderer) FlushText(fbW, fbH int) {
	if r.textProg == 0 || len(r.textBuf) == 0 {
		r.textBuf = r.textBuf[:0]
		return
	}
	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textBuf)/8))
	gl.Disable(gl.BLEND)

	r.textBuf = r.textBuf[:0]
}
