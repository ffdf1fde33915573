// Package mesh holds CPU-side triangle geometry: OBJ loading and the procedural
// primitives used by the floor, gizmos and the articulated model.
package mesh

// Primitive selects how Indices are assembled.
type Primitive int

const (
	Triangles Primitive = iota
	Lines
)

// Mesh is indexed geometry with interleavable attribute streams.
// Positions and Normals hold 3 floats per vertex, UVs 2 floats per vertex.
// Normals and UVs are either empty or sized for every vertex.
type Mesh struct {
	Name      string
	Primitive Primitive
	Positions []float32
	Normals   []float32
	UVs       []float32
	Colors    []float32 // Optional per-vertex RGB, used by line meshes
	Indices   []uint32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Empty reports whether the mesh has nothing to draw.
func (m *Mesh) Empty() bool {
	return m == nil || len(m.Indices) == 0
}

// Bounds computes the bounding box of all vertices.
func (m *Mesh) Bounds() Bounds {
	var b Bounds
	for i := 0; i+2 < len(m.Positions); i += 3 {
		p := [3]float32{m.Positions[i], m.Positions[i+1], m.Positions[i+2]}
		if i == 0 {
			b.Min, b.Max = p, p
			continue
		}
		for k := 0; k < 3; k++ {
			if p[k] < b.Min[k] {
				b.Min[k] = p[k]
			}
			if p[k] > b.Max[k] {
				b.Max[k] = p[k]
			}
		}
	}
	return b
}

// ComputeNormals replaces Normals with area-weighted smooth vertex normals.
func (m *Mesh) ComputeNormals() {
	normals := make([]float32, len(m.Positions))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i]*3, m.Indices[i+1]*3, m.Indices[i+2]*3
		e1 := [3]float32{
			m.Positions[b] - m.Positions[a],
			m.Positions[b+1] - m.Positions[a+1],
			m.Positions[b+2] - m.Positions[a+2],
		}
		e2 := [3]float32{
			m.Positions[c] - m.Positions[a],
			m.Positions[c+1] - m.Positions[a+1],
			m.Positions[c+2] - m.Positions[a+2],
		}
		n := cross(e1, e2)
		for _, idx := range []uint32{a, b, c} {
			normals[idx] += n[0]
			normals[idx+1] += n[1]
			normals[idx+2] += n[2]
		}
	}

	for i := 0; i+2 < len(normals); i += 3 {
		n := normalize([3]float32{normals[i], normals[i+1], normals[i+2]})
		normals[i], normals[i+1], normals[i+2] = n[0], n[1], n[2]
	}
	m.Normals = normals
}
