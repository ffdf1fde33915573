package mesh

import "math"

// Cube returns an axis-aligned box centred on the origin with per-face normals.
func Cube(sx, sy, sz float32) *Mesh {
	hx, hy, hz := sx/2, sy/2, sz/2
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}},
	}
	uv := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	m := &Mesh{Name: "cube", Primitive: Triangles}
	for _, f := range faces {
		base := uint32(m.VertexCount())
		for i, c := range f.corners {
			m.Positions = append(m.Positions, c[0], c[1], c[2])
			m.Normals = append(m.Normals, f.normal[0], f.normal[1], f.normal[2])
			m.UVs = append(m.UVs, uv[i][0], uv[i][1])
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// Sphere returns a UV sphere. slices and stacks are clamped to a usable minimum.
func Sphere(radius float32, slices, stacks int) *Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	m := &Mesh{Name: "sphere", Primitive: Triangles}
	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			n := [3]float32{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			m.Positions = append(m.Positions, n[0]*radius, n[1]*radius, n[2]*radius)
			m.Normals = append(m.Normals, n[0], n[1], n[2])
			m.UVs = append(m.UVs, float32(j)/float32(slices), 1-float32(i)/float32(stacks))
		}
	}

	row := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*row + uint32(j)
			b := a + row
			m.Indices = append(m.Indices, a, a+1, b, a+1, b+1, b)
		}
	}
	return m
}

// Quad returns a square in the XZ plane facing +Y, centred on the origin,
// with the texture stretched once across it.
func Quad(size float32) *Mesh {
	h := size / 2
	return &Mesh{
		Name:      "quad",
		Primitive: Triangles,
		Positions: []float32{-h, 0, h, h, 0, h, h, 0, -h, -h, 0, -h},
		Normals:   []float32{0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0},
		UVs:       []float32{0, 1, 1, 1, 1, 0, 0, 0},
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
	}
}

// Axes returns three coloured lines through the origin spanning -length..length:
// X red, Y green, Z blue.
func Axes(length float32) *Mesh {
	l := length
	return &Mesh{
		Name:      "axes",
		Primitive: Lines,
		Positions: []float32{
			-l, 0, 0, l, 0, 0,
			0, -l, 0, 0, l, 0,
			0, 0, -l, 0, 0, l,
		},
		Colors: []float32{
			1, 0, 0, 1, 0, 0,
			0, 1, 0, 0, 1, 0,
			0, 0, 1, 0, 0, 1,
		},
		Indices: []uint32{0, 1, 2, 3, 4, 5},
	}
}
