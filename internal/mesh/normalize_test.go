package mesh

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/chewxy/math32"

	"objviewer/internal/linalg"
)

func TestNormalize_CenteredUnitExtent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		n := 3 + rng.Intn(200)
		a := Attrib{Vertices: make([]float32, n*3)}
		off := linalg.Vec3{X: rng.Float32()*200 - 100, Y: rng.Float32()*200 - 100, Z: rng.Float32()*200 - 100}
		size := linalg.Vec3{X: 5 + rng.Float32()*45, Y: 5 + rng.Float32()*45, Z: 5 + rng.Float32()*45}
		for j := 0; j < n; j++ {
			a.Vertices[j*3] = off.X + rng.Float32()*size.X
			a.Vertices[j*3+1] = off.Y + rng.Float32()*size.Y
			a.Vertices[j*3+2] = off.Z + rng.Float32()*size.Z
		}

		Normalize(&a)
		b := ComputeBounds(a.Vertices)
		if c := b.Center(); !c.ApproxEqual(linalg.Vec3{}, 1e-4) {
			t.Fatalf("case %d: center after Normalize = %v", i, c)
		}
		if e := b.LargestExtent(); math32.Abs(e-2) > 1e-4 {
			t.Fatalf("case %d: largest extent after Normalize = %v", i, e)
		}
	}
}

func TestNormalize_Bounds(t *testing.T) {
	a := Attrib{Vertices: []float32{
		1, 2, 3,
		5, 4, 3,
		3, 3, 4,
	}}
	b := Normalize(&a)
	if b.Min != (linalg.Vec3{X: 1, Y: 2, Z: 3}) || b.Max != (linalg.Vec3{X: 5, Y: 4, Z: 4}) {
		t.Errorf("Normalize() bounds = %+v", b)
	}
	want := []float32{
		-1, -0.5, -0.25,
		1, 0.5, -0.25,
		0, 0, 0.25,
	}
	for i := range want {
		if math32.Abs(a.Vertices[i]-want[i]) > 1e-6 {
			t.Errorf("vertex component %d = %v, want %v", i, a.Vertices[i], want[i])
		}
	}
}

func TestNormalize_Degenerate(t *testing.T) {
	a := Attrib{Vertices: []float32{2, 2, 2, 2, 2, 2}}
	Normalize(&a)
	for i, v := range a.Vertices {
		if v != 0 {
			t.Errorf("component %d = %v, want 0", i, v)
		}
	}

	var empty Attrib
	if b := Normalize(&empty); b != (Bounds{}) {
		t.Errorf("Normalize(empty) = %+v", b)
	}
}

func TestFlatten(t *testing.T) {
	obj, _, err := ParseOBJ(strings.NewReader(quadOBJ), nil)
	if err != nil {
		t.Fatal(err)
	}

	quad := Flatten(obj.Attrib, obj.Shapes[0])
	if n := quad.VertexCount(); n != 6 {
		t.Fatalf("VertexCount() = %d, want 6", n)
	}
	if len(quad.Colors) != len(quad.Positions) || len(quad.Normals) != len(quad.Positions) {
		t.Fatalf("stream lengths differ: %d %d %d", len(quad.Positions), len(quad.Colors), len(quad.Normals))
	}
	// second triangle starts again at vertex 1
	if got := quad.Positions[9:12]; got[0] != 0 || got[1] != 0 || got[2] != 0 {
		t.Errorf("fourth corner = %v, want origin", got)
	}
	if got := quad.Colors[3:6]; got[0] != 0 || got[1] != 1 || got[2] != 0 {
		t.Errorf("second corner colour = %v", got)
	}

	// the second shape has no normals and gets the face normal
	tri := Flatten(obj.Attrib, obj.Shapes[1])
	for i := 0; i < tri.VertexCount(); i++ {
		n := linalg.Vec3{X: tri.Normals[i*3], Y: tri.Normals[i*3+1], Z: tri.Normals[i*3+2]}
		if !n.ApproxEqual(linalg.Vec3{Z: 1}, 1e-6) {
			t.Errorf("corner %d normal = %v, want +z", i, n)
		}
	}
}

func TestFlatten_DegenerateFace(t *testing.T) {
	const collinear = `
v 0 0 0
v 1 1 1
v 2 2 2
v 5 5 5
f 1 2 3
f 4 4 4
`
	obj, _, err := ParseOBJ(strings.NewReader(collinear), nil)
	if err != nil {
		t.Fatal(err)
	}
	b := Flatten(obj.Attrib, obj.Shapes[0])
	for i := 0; i < b.VertexCount(); i++ {
		n := linalg.Vec3{X: b.Normals[i*3], Y: b.Normals[i*3+1], Z: b.Normals[i*3+2]}
		if !n.ApproxEqual(linalg.Vec3{Z: 1}, 1e-6) {
			t.Errorf("corner %d normal = %v, want +z fallback", i, n)
		}
	}
}

func TestGroundPlane(t *testing.T) {
	p := GroundPlane()
	if p.VertexCount() != 6 || len(p.Colors) != 18 || len(p.Normals) != 18 {
		t.Errorf("GroundPlane() streams = %d %d %d", len(p.Positions), len(p.Colors), len(p.Normals))
	}
}
