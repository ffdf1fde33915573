package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/sceneview/internal/engine/mesh"
)

const (
	attribPosition = 0
	attribNormal   = 1
	attribTexCoord = 2
	attribColor    = 3
)

// gpuMesh is the uploaded form of a mesh.Mesh.
type gpuMesh struct {
	vao        uint32
	buffers    []uint32
	ebo        uint32
	indexCount int32
	mode       uint32
	hasNormals bool
	hasColors  bool
}

func uploadMesh(m *mesh.Mesh) *gpuMesh {
	g := &gpuMesh{
		indexCount: int32(len(m.Indices)),
		mode:       gl.TRIANGLES,
		hasNormals: len(m.Normals) > 0,
		hasColors:  len(m.Colors) > 0,
	}
	if m.Primitive == mesh.Lines {
		g.mode = gl.LINES
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	g.attrib(attribPosition, 3, m.Positions)
	g.attrib(attribNormal, 3, m.Normals)
	g.attrib(attribTexCoord, 2, m.UVs)
	g.attrib(attribColor, 3, m.Colors)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return g
}

// attrib uploads one attribute stream. Missing streams read the generic
// attribute value set in draw.
func (g *gpuMesh) attrib(loc uint32, size int32, data []float32) {
	if len(data) == 0 {
		gl.DisableVertexAttribArray(loc)
		return
	}

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointer(loc, size, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(loc)
	g.buffers = append(g.buffers, vbo)
}

func (g *gpuMesh) draw() {
	if !g.hasNormals {
		gl.VertexAttrib3f(attribNormal, 0, 1, 0)
	}
	if !g.hasColors {
		gl.VertexAttrib3f(attribColor, 1, 1, 1)
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElements(g.mode, g.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (g *gpuMesh) delete() {
	if len(g.buffers) > 0 {
		gl.DeleteBuffers(int32(len(g.buffers)), &g.buffers[0])
	}
	gl.DeleteBuffers(1, &g.ebo)
	gl.DeleteVertexArrays(1, &g.vao)
}

// meshCache uploads meshes on first use. Meshes are treated as immutable.
type meshCache struct {
	meshes map[*mesh.Mesh]*gpuMesh
}

func newMeshCache() *meshCache {
	return &meshCache{meshes: make(map[*mesh.Mesh]*gpuMesh)}
}

func (c *meshCache) get(m *mesh.Mesh) *gpuMesh {
	if g, ok := c.meshes[m]; ok {
		return g
	}
	g := uploadMesh(m)
	c.meshes[m] = g
	return g
}

func (c *meshCache) clear() {
	for m, g := range c.meshes {
		g.delete()
		delete(c.meshes, m)
	}
}
