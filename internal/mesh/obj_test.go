package mesh

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cubeMTL = `
# two materials
newmtl red
Ka 0.1 0 0
Kd 0.9 0.1 0.1
Ks 1 1 1
Ns 32
illum 2

newmtl grey
Kd 0.5
d 0.5
map_Kd grey.png
`

const quadOBJ = `
mtllib cube.mtl
v 0 0 0 1 0 0
v 1 0 0 0 1 0
v 1 1 0 0 0 1
v 0 1 0
vn 0 0 1
o quad
usemtl red
f 1//1 2//1 3//1 4//1
g second
usemtl grey
f -4 -2 -1
`

func mapOpener(files map[string]string) MaterialOpener {
	return func(name string) (io.ReadCloser, error) {
		s, ok := files[name]
		if !ok {
			return nil, os.ErrNotExist
		}
		return io.NopCloser(strings.NewReader(s)), nil
	}
}

func TestParseOBJ(t *testing.T) {
	obj, warnings, err := ParseOBJ(strings.NewReader(quadOBJ), mapOpener(map[string]string{"cube.mtl": cubeMTL}))
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	if n := obj.Attrib.VertexCount(); n != 4 {
		t.Fatalf("VertexCount() = %d, want 4", n)
	}
	if got := obj.Attrib.Colors[3:6]; got[0] != 0 || got[1] != 1 || got[2] != 0 {
		t.Errorf("second vertex colour = %v, want [0 1 0]", got)
	}
	if got := obj.Attrib.Colors[9:12]; got[0] != 1 || got[1] != 1 || got[2] != 1 {
		t.Errorf("uncoloured vertex = %v, want white", got)
	}

	if len(obj.Shapes) != 2 {
		t.Fatalf("len(Shapes) = %d, want 2", len(obj.Shapes))
	}
	quad, second := obj.Shapes[0], obj.Shapes[1]
	if quad.Name != "quad" || second.Name != "second" {
		t.Errorf("shape names = %q, %q", quad.Name, second.Name)
	}
	if n := quad.Mesh.TriangleCount(); n != 2 {
		t.Errorf("quad triangles = %d, want 2", n)
	}
	wantQuad := []Index{
		{0, -1, 0}, {1, -1, 0}, {2, -1, 0},
		{0, -1, 0}, {2, -1, 0}, {3, -1, 0},
	}
	for i, idx := range quad.Mesh.Indices {
		if idx != wantQuad[i] {
			t.Errorf("quad index %d = %+v, want %+v", i, idx, wantQuad[i])
		}
	}
	wantSecond := []Index{{0, -1, -1}, {2, -1, -1}, {3, -1, -1}}
	for i, idx := range second.Mesh.Indices {
		if idx != wantSecond[i] {
			t.Errorf("second index %d = %+v, want %+v", i, idx, wantSecond[i])
		}
	}

	if m := obj.ShapeMaterial(0); m.Name != "red" || m.Diffuse != [3]float32{0.9, 0.1, 0.1} || m.Shininess != 32 {
		t.Errorf("ShapeMaterial(0) = %+v", m)
	}
	if m := obj.ShapeMaterial(1); m.Name != "grey" || m.Diffuse != [3]float32{0.5, 0.5, 0.5} || m.Dissolve != 0.5 || m.DiffuseTexname != "grey.png" {
		t.Errorf("ShapeMaterial(1) = %+v", m)
	}
}

func TestParseOBJ_Warnings(t *testing.T) {
	src := `
mtllib missing.mtl
v 0 0 0
v 1 0 0
v 0 1 0
usemtl nothing
curv 0 1
f 1 2 3
`
	obj, warnings, err := ParseOBJ(strings.NewReader(src), mapOpener(nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 3 {
		t.Errorf("warnings = %q, want 3", warnings)
	}
	if m := obj.ShapeMaterial(0); m != DefaultMaterial {
		t.Errorf("ShapeMaterial(0) = %+v, want default", m)
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		Name string
		Src  string
		Err  error
	}{
		{"empty", "# nothing\n", ErrNoVertices},
		{"no faces", "v 0 0 0\nv 1 1 1\n", ErrNoFaces},
		{"bad float", "v 0 x 0\n", nil},
		{"short vertex", "v 0 0\n", nil},
		{"index zero", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", nil},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", nil},
		{"two corners", "v 0 0 0\nv 1 0 0\nf 1 2\n", nil},
		{"normal out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2//1 3//1\n", nil},
	}
	for _, c := range tests {
		_, _, err := ParseOBJ(strings.NewReader(c.Src), nil)
		if err == nil {
			t.Errorf("%s: expected error", c.Name)
			continue
		}
		if c.Err != nil && !errors.Is(err, c.Err) {
			t.Errorf("%s: error = %v, want %v", c.Name, err, c.Err)
		}
	}
}

func TestParseMTL_Errors(t *testing.T) {
	tests := []string{
		"Kd 1 1 1\n",
		"newmtl\n",
		"newmtl a\nNs x\n",
	}
	for _, src := range tests {
		if _, err := ParseMTL(strings.NewReader(src)); err == nil {
			t.Errorf("ParseMTL(%q): expected error", src)
		}
	}
}

func TestParseMTL_LongLine(t *testing.T) {
	src := "# " + strings.Repeat("x", 100*1024) + "\nnewmtl long\nKd 0.5\n"
	mats, err := ParseMTL(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(mats) != 1 || mats[0].Diffuse != [3]float32{0.5, 0.5, 0.5} {
		t.Errorf("ParseMTL() = %+v", mats)
	}
}

func TestLoadOBJ(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cube.mtl"), []byte(cubeMTL), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "quad.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0o644); err != nil {
		t.Fatal(err)
	}

	obj, warnings, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(obj.Materials) != 2 {
		t.Errorf("len(Materials) = %d, want 2", len(obj.Materials))
	}

	if _, _, err := LoadOBJ(filepath.Join(dir, "absent.obj")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadOBJ(absent) error = %v, want ErrNotExist", err)
	}
}
