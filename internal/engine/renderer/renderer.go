// Package renderer executes draw frames with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/draw"
	"github.com/Faultbox/sceneview/internal/engine/shader"
	"github.com/Faultbox/sceneview/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background [4]float32
}

type lightUniforms struct {
	ambient, diffuse, specular, position    string
	spotDirection, spotCutoff, spotExponent string
}

// Renderer draws frames into the current framebuffer.
type Renderer struct {
	config  Config
	program *shader.Program
	meshes  *meshCache
	lights  [draw.MaxLights]lightUniforms
	log     *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: newMeshCache(),
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize OpenGL")
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.DITHER)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.New(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scene shader")
	}

	for i := range r.lights {
		prefix := fmt.Sprintf("uLights[%d].", i)
		r.lights[i] = lightUniforms{
			ambient:       prefix + "ambient",
			diffuse:       prefix + "diffuse",
			specular:      prefix + "specular",
			position:      prefix + "position",
			spotDirection: prefix + "spotDirection",
			spotCutoff:    prefix + "spotCutoff",
			spotExponent:  prefix + "spotExponent",
		}
	}

	r.log.Debug("scene shader created", zap.Uint32("program", r.program.ID()))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.meshes.clear()
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Size returns the viewport size.
func (r *Renderer) Size() (width, height int) {
	return r.config.Width, r.config.Height
}

// Begin clears the default framebuffer for a new frame.
func (r *Renderer) Begin() {
	bg := r.config.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Render draws every item of f. Selection frames are drawn unlit with each
// item's flat colour.
func (r *Renderer) Render(f *draw.Frame) {
	p := r.program
	p.Use()
	gl.Enable(gl.DEPTH_TEST)

	p.SetMat4("uProjection", f.Projection)
	p.SetMat4("uView", f.View)
	p.SetBool("uFlat", f.Flat)
	p.SetInt("uTexture", 0)

	if !f.Selection {
		r.applyLights(f)
	}

	for i := range f.Items {
		it := &f.Items[i]
		if it.Mesh.Empty() {
			continue
		}
		g := r.meshes.get(it.Mesh)

		p.SetMat4("uModel", it.Model)
		p.SetMat3("uNormalMatrix", f.View.Mul4(it.Model).Mat3().Inv().Transpose())

		lit := it.Lit && !f.Selection
		textured := it.Texture != 0 && !f.Selection
		p.SetBool("uLit", lit)
		p.SetBool("uVertexColors", g.hasColors && !f.Selection)
		p.SetBool("uTextured", textured)
		p.SetVec4("uColor", it.Color)

		if lit {
			m := it.Material
			p.SetVec4("uMatAmbient", m.Ambient)
			p.SetVec4("uMatDiffuse", m.Diffuse)
			p.SetVec4("uMatSpecular", m.Specular)
			p.SetFloat("uShininess", m.Shininess)
		}

		if textured {
			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, it.Texture)
		}

		g.draw()

		if textured {
			gl.BindTexture(gl.TEXTURE_2D, 0)
		}
	}

	gl.UseProgram(0)
}

// applyLights uploads the frame's lights in eye space.
func (r *Renderer) applyLights(f *draw.Frame) {
	p := r.program
	p.SetVec4("uGlobalAmbient", f.Ambient)

	n := min(len(f.Lights), draw.MaxLights)
	p.SetInt("uLightCount", int32(n))

	viewRot := f.View.Mat3()
	for i := 0; i < n; i++ {
		l := f.Lights[i]
		u := r.lights[i]

		pos := f.View.Mul4x1(mgl32.Vec4(l.Position))
		if l.Position[3] == 0 {
			// Directions ignore translation.
			d := viewRot.Mul3x1(mgl32.Vec3{l.Position[0], l.Position[1], l.Position[2]})
			pos = d.Vec4(0)
		}

		p.SetVec4(u.ambient, l.Ambient)
		p.SetVec4(u.diffuse, l.Diffuse)
		p.SetVec4(u.specular, l.Specular)
		p.SetVec4(u.position, pos)
		p.SetVec3(u.spotDirection, viewRot.Mul3x1(mgl32.Vec3(l.SpotDirection)))
		p.SetFloat(u.spotCutoff, l.SpotCutoff)
		p.SetFloat(u.spotExponent, l.SpotExponent)
	}
}
