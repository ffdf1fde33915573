// Package ui2d draws screen-space overlays: solid quads and bitmap text.
package ui2d

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/Faultbox/sceneview/internal/engine/shader"
)

const (
	solidStride = 7 // pos3 + color4
	textStride  = 9 // pos3 + uv2 + color4
)

const solidVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
    gl_Position = uProjection * vec4(aPos, 1.0);
    vColor = aColor;
}
`

const solidFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
`

const textVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vTexCoord;
out vec4 vColor;

void main() {
    gl_Position = uProjection * vec4(aPos, 1.0);
    vTexCoord = aTexCoord;
    vColor = aColor;
}
`

const textFragmentShader = `
#version 410 core

uniform sampler2D uTexture;

in vec2 vTexCoord;
in vec4 vColor;
out vec4 FragColor;

void main() {
    float alpha = texture(uTexture, vTexCoord).a;
    FragColor = vec4(vColor.rgb, vColor.a * alpha);
}
`

// Batch collects quads for one overlay frame. It has no GL state and is
// what Renderer flushes.
type Batch struct {
	solidVertices []float32
	textVertices  []float32
	font          *Font
}

// NewBatch creates an empty batch drawing text with f.
func NewBatch(f *Font) *Batch {
	return &Batch{font: f}
}

// Reset empties the batch.
func (b *Batch) Reset() {
	b.solidVertices = b.solidVertices[:0]
	b.textVertices = b.textVertices[:0]
}

// QuadCounts returns how many solid and textured quads are queued.
func (b *Batch) QuadCounts() (solid, text int) {
	return len(b.solidVertices) / (solidStride * 6), len(b.textVertices) / (textStride * 6)
}

// DrawRect draws a filled rectangle.
func (b *Batch) DrawRect(r Rect, c Color) {
	b.addQuad(r.X, r.Y, r.W, r.H, c)
}

// DrawRectOutline draws a rectangle outline.
func (b *Batch) DrawRectOutline(r Rect, thickness float32, c Color) {
	b.addQuad(r.X, r.Y, r.W, thickness, c)
	b.addQuad(r.X, r.Y+r.H-thickness, r.W, thickness, c)
	b.addQuad(r.X, r.Y+thickness, thickness, r.H-thickness*2, c)
	b.addQuad(r.X+r.W-thickness, r.Y+thickness, thickness, r.H-thickness*2, c)
}

// DrawPanel draws a panel with border.
func (b *Batch) DrawPanel(r Rect, bg, border Color) {
	b.DrawRect(r, bg)
	b.DrawRectOutline(r, 1, border)
}

// DrawText draws text with its top-left corner at (x, y).
func (b *Batch) DrawText(x, y float32, text string, scale float32, c Color) {
	if b.font == nil {
		return
	}

	gw, gh := b.font.GlyphSize()
	charW := float32(gw) * scale
	charH := float32(gh) * scale

	curX := x
	for _, ch := range text {
		if ch == '\n' {
			curX = x
			y += charH
			continue
		}
		u0, v0, u1, v1 := b.font.GetGlyphUV(ch)
		b.addTexturedQuad(curX, y, charW, charH, u0, v0, u1, v1, c)
		curX += charW
	}
}

// MeasureText returns the width and height of rendered text.
func (b *Batch) MeasureText(text string, scale float32) (float32, float32) {
	if b.font == nil {
		return 0, 0
	}
	return b.font.MeasureText(text, scale)
}

func (b *Batch) addQuad(x, y, w, h float32, c Color) {
	b.solidVertices = append(b.solidVertices,
		x, y, 0, c.R, c.G, c.B, c.A,
		x+w, y, 0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, c.R, c.G, c.B, c.A,
		x, y, 0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, c.R, c.G, c.B, c.A,
		x, y+h, 0, c.R, c.G, c.B, c.A,
	)
}

func (b *Batch) addTexturedQuad(x, y, w, h float32, u0, v0, u1, v1 float32, c Color) {
	b.textVertices = append(b.textVertices,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y, 0, u1, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
		x, y+h, 0, u0, v1, c.R, c.G, c.B, c.A,
	)
}

// Renderer handles 2D UI rendering with OpenGL.
type Renderer struct {
	Batch

	screenWidth  int
	screenHeight int

	solid *shader.Program
	text  *shader.Program

	solidVAO, solidVBO uint32
	textVAO, textVBO   uint32
}

// New creates a new 2D UI renderer.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		Batch: Batch{
			solidVertices: make([]float32, 0, 4096),
			textVertices:  make([]float32, 0, 4096),
		},
		screenWidth:  width,
		screenHeight: height,
	}

	var err error
	if r.solid, err = shader.New(solidVertexShader, solidFragmentShader); err != nil {
		return nil, errors.Wrap(err, "create solid shader")
	}
	if r.text, err = shader.New(textVertexShader, textFragmentShader); err != nil {
		return nil, errors.Wrap(err, "create text shader")
	}

	r.solidVAO, r.solidVBO = newStreamBuffers(solidStride, []int32{3, 4})
	r.textVAO, r.textVBO = newStreamBuffers(textStride, []int32{3, 2, 4})
	r.font = NewFont()

	return r, nil
}

// newStreamBuffers creates an interleaved VAO with consecutive attribute
// locations of the given component counts.
func newStreamBuffers(stride int, sizes []int32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	offset := 0
	for loc, size := range sizes {
		gl.VertexAttribPointerWithOffset(uint32(loc), size, gl.FLOAT, false, int32(stride*4), uintptr(offset*4))
		gl.EnableVertexAttribArray(uint32(loc))
		offset += int(size)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// Begin starts a new UI frame.
func (r *Renderer) Begin() {
	r.Reset()
}

// End renders everything queued since Begin over the current frame.
func (r *Renderer) End() {
	var prevBlend, prevDepth int32
	gl.GetIntegerv(gl.BLEND, &prevBlend)
	gl.GetIntegerv(gl.DEPTH_TEST, &prevDepth)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	proj := mgl32.Ortho(0, float32(r.screenWidth), float32(r.screenHeight), 0, -1, 1)

	if len(r.solidVertices) > 0 {
		r.solid.Use()
		r.solid.SetMat4("uProjection", proj)
		gl.BindVertexArray(r.solidVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.solidVertices)*4, gl.Ptr(r.solidVertices), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.solidVertices)/solidStride))
	}

	// Text goes on top of panels
	if len(r.textVertices) > 0 && r.font != nil {
		r.text.Use()
		r.text.SetMat4("uProjection", proj)
		r.text.SetInt("uTexture", 0)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.font.TextureID())
		gl.BindVertexArray(r.textVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.textVertices)*4, gl.Ptr(r.textVertices), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textVertices)/textStride))
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	if prevBlend == gl.FALSE {
		gl.Disable(gl.BLEND)
	}
	if prevDepth == gl.TRUE {
		gl.Enable(gl.DEPTH_TEST)
	}
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.font != nil {
		r.font.Close()
	}
	for _, vao := range []*uint32{&r.solidVAO, &r.textVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
		}
	}
	for _, vbo := range []*uint32{&r.solidVBO, &r.textVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
		}
	}
	if r.solid != nil {
		r.solid.Delete()
	}
	if r.text != nil {
		r.text.Delete()
	}
}
