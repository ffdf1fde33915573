package mesh

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// objCorner is one "v/vt/vn" reference from a face line, already zero-based.
// Missing attributes are -1.
type objCorner struct {
	v, vt, vn int
}

// ParseOBJ decodes v, vt, vn and f statements. Polygons are fan-triangulated,
// negative (relative) indices are resolved, and normals are generated when the
// file has none. Material statements are ignored.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	var (
		positions [][3]float32
		uvs       [][2]float32
		normals   [][3]float32
		corners   []objCorner
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: vertex", lineNo)
			}
			positions = append(positions, [3]float32{v[0], v[1], v[2]})
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: texture coordinate", lineNo)
			}
			uvs = append(uvs, [2]float32{v[0], v[1]})
		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: normal", lineNo)
			}
			normals = append(normals, [3]float32{v[0], v[1], v[2]})
		case "f":
			if len(fields) < 4 {
				return nil, errors.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			face := make([]objCorner, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				c, err := parseCorner(ref, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, errors.Wrapf(err, "line %d", lineNo)
				}
				face = append(face, c)
			}
			for i := 1; i+1 < len(face); i++ {
				corners = append(corners, face[0], face[i], face[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read obj")
	}

	return assemble(positions, uvs, normals, corners), nil
}

// assemble de-duplicates corners into a single indexed vertex stream.
func assemble(positions [][3]float32, uvs [][2]float32, normals [][3]float32, corners []objCorner) *Mesh {
	m := &Mesh{Primitive: Triangles}

	hasUV := len(uvs) > 0
	hasNormals := len(normals) > 0
	for _, c := range corners {
		if c.vt < 0 {
			hasUV = false
		}
		if c.vn < 0 {
			hasNormals = false
		}
	}

	seen := make(map[objCorner]uint32, len(corners))
	for _, c := range corners {
		if idx, ok := seen[c]; ok {
			m.Indices = append(m.Indices, idx)
			continue
		}
		idx := uint32(m.VertexCount())
		seen[c] = idx

		p := positions[c.v]
		m.Positions = append(m.Positions, p[0], p[1], p[2])
		if hasUV {
			uv := uvs[c.vt]
			m.UVs = append(m.UVs, uv[0], uv[1])
		}
		if hasNormals {
			n := normals[c.vn]
			m.Normals = append(m.Normals, n[0], n[1], n[2])
		}
		m.Indices = append(m.Indices, idx)
	}

	if !hasNormals {
		m.ComputeNormals()
	}
	return m
}

func parseFloats(fields []string, want int) ([]float32, error) {
	if len(fields) < want {
		return nil, errors.Errorf("expected %d components, got %d", want, len(fields))
	}
	out := make([]float32, want)
	for i := 0; i < want; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, errors.Wrapf(err, "component %d", i)
		}
		out[i] = float32(v)
	}
	return out, nil
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn".
func parseCorner(ref string, nv, nvt, nvn int) (objCorner, error) {
	parts := strings.Split(ref, "/")
	c := objCorner{v: -1, vt: -1, vn: -1}

	var err error
	if c.v, err = resolveIndex(parts[0], nv); err != nil {
		return c, errors.Wrapf(err, "vertex index %q", ref)
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.vt, err = resolveIndex(parts[1], nvt); err != nil {
			return c, errors.Wrapf(err, "texture index %q", ref)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.vn, err = resolveIndex(parts[2], nvn); err != nil {
			return c, errors.Wrapf(err, "normal index %q", ref)
		}
	}
	return c, nil
}

// resolveIndex converts a one-based or negative OBJ index to zero-based.
func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i = count + i
	default:
		return 0, errors.New("index 0 is invalid")
	}
	if i < 0 || i >= count {
		return 0, errors.Errorf("index out of range (%d elements)", count)
	}
	return i, nil
}
