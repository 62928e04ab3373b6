package mesh

import (
	"objviewer/internal/linalg"
)

// Buffers is a non-indexed triangle list, three floats per vertex in each stream.
type Buffers struct {
	Positions []float32
	Colors    []float32
	Normals   []float32
}

func (b Buffers) VertexCount() int {
	return len(b.Positions) / 3
}

// Flatten expands the indexed triangles of s into flat streams. Corners
// without a normal index take the geometric normal of their triangle so
// that every stream has the same length.
func Flatten(a Attrib, s Shape) Buffers {
	n := len(s.Mesh.Indices)
	out := Buffers{
		Positions: make([]float32, 0, n*3),
		Colors:    make([]float32, 0, n*3),
		Normals:   make([]float32, 0, n*3),
	}

	for t := 0; t+2 < n; t += 3 {
		tri := s.Mesh.Indices[t : t+3]
		var face linalg.Vec3
		faceDone := false

		for _, idx := range tri {
			v := idx.Vertex * 3
			out.Positions = append(out.Positions, a.Vertices[v], a.Vertices[v+1], a.Vertices[v+2])
			out.Colors = append(out.Colors, a.Colors[v], a.Colors[v+1], a.Colors[v+2])

			if idx.Normal >= 0 {
				k := idx.Normal * 3
				out.Normals = append(out.Normals, a.Normals[k], a.Normals[k+1], a.Normals[k+2])
				continue
			}
			if !faceDone {
				face = faceNormal(a, tri)
				faceDone = true
			}
			out.Normals = append(out.Normals, face.X, face.Y, face.Z)
		}
	}
	return out
}

// faceNormal is the unit normal of a triangle, or +z for a zero-area one so
// shaders never normalise a zero vector.
func faceNormal(a Attrib, tri []Index) linalg.Vec3 {
	p := func(i Index) linalg.Vec3 {
		v := i.Vertex * 3
		return linalg.Vec3{X: a.Vertices[v], Y: a.Vertices[v+1], Z: a.Vertices[v+2]}
	}
	p0, p1, p2 := p(tri[0]), p(tri[1]), p(tri[2])
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Dot(n) < 1e-20 {
		return linalg.Vec3{Z: 1}
	}
	return n.Normalize()
}

// ShapeMaterial resolves the material of shape i from its first triangle.
// Per-face materials are not supported.
func (o *Object) ShapeMaterial(i int) Material {
	ids := o.Shapes[i].Mesh.MaterialIDs
	if len(ids) == 0 || ids[0] < 0 || ids[0] >= len(o.Materials) {
		return DefaultMaterial
	}
	return o.Materials[ids[0]]
}

// GroundPlane is the two-triangle floor drawn under colour models.
func GroundPlane() Buffers {
	return Buffers{
		Positions: []float32{
			1.0, -0.9, -1.0,
			1.0, -0.9, 1.0,
			-1.0, -0.9, -1.0,
			1.0, -0.9, 1.0,
			-1.0, -0.9, 1.0,
			-1.0, -0.9, -1.0,
		},
		Colors: []float32{
			0.0, 1.0, 0.0,
			0.0, 0.5, 0.8,
			0.0, 1.0, 0.0,
			0.0, 0.5, 0.8,
			0.0, 0.5, 0.8,
			0.0, 1.0, 0.0,
		},
		Normals: []float32{
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
		},
	}
}
