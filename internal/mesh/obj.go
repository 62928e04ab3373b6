// Package mesh loads Wavefront OBJ/MTL files and prepares their geometry for
// direct upload as non-indexed triangle lists.
//
//	object format   http://paulbourke.net/dataformats/obj/
//	material format http://paulbourke.net/dataformats/mtl/
package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	ErrNoVertices = errors.New("mesh: object has no vertices")
	ErrNoFaces    = errors.New("mesh: object has no faces")
)

// maxLineSize bounds a single OBJ statement.
const maxLineSize = 1 << 20

// Index references one corner of a face. Absent components are -1.
type Index struct {
	Vertex   int
	TexCoord int
	Normal   int
}

// Mesh is a triangle list. Faces with more than three corners are fan
// triangulated on load, so Indices always has three entries per triangle
// and MaterialIDs one entry per triangle.
type Mesh struct {
	Indices     []Index
	MaterialIDs []int
}

func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

type Shape struct {
	Name string
	Mesh Mesh
}

// Attrib holds the shared vertex pools of an object, three floats per entry
// (two for texture coordinates). Colors always parallels Vertices: vertices
// without an explicit colour are white.
type Attrib struct {
	Vertices  []float32
	Colors    []float32
	Normals   []float32
	TexCoords []float32
}

func (a Attrib) VertexCount() int {
	return len(a.Vertices) / 3
}

type Object struct {
	Attrib    Attrib
	Shapes    []Shape
	Materials []Material
}

// MaterialOpener resolves a mtllib name to its content.
type MaterialOpener func(name string) (io.ReadCloser, error)

// DirOpener opens material libraries relative to dir.
func DirOpener(dir string) MaterialOpener {
	return func(name string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(dir, name))
	}
}

// LoadOBJ parses the OBJ file at path. Material libraries are resolved
// relative to the file's directory. Warnings describe statements that were
// skipped; they are not fatal.
func LoadOBJ(path string) (*Object, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	obj, warnings, err := ParseOBJ(file, DirOpener(filepath.Dir(path)))
	if err != nil {
		return nil, warnings, fmt.Errorf("%s: %w", path, err)
	}
	return obj, warnings, nil
}

type objParser struct {
	obj       *Object
	opener    MaterialOpener
	materials map[string]int
	current   Shape
	material  int
	warnings  []string
}

// ParseOBJ reads an OBJ stream. opener may be nil, in which case mtllib
// statements are skipped with a warning.
func ParseOBJ(r io.Reader, opener MaterialOpener) (*Object, []string, error) {
	p := &objParser{
		obj:       &Object{},
		opener:    opener,
		materials: map[string]int{},
		material:  -1,
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if err := p.statement(strings.Fields(line)); err != nil {
			return nil, p.warnings, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, p.warnings, err
	}

	p.flushShape()
	if p.obj.Attrib.VertexCount() == 0 {
		return nil, p.warnings, ErrNoVertices
	}
	if len(p.obj.Shapes) == 0 {
		return nil, p.warnings, ErrNoFaces
	}
	return p.obj, p.warnings, nil
}

func (p *objParser) warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *objParser) statement(fields []string) error {
	a := &p.obj.Attrib

	switch fields[0] {
	case "v": // x y z [w] or x y z r g b
		v, err := parseFloats(fields[1:], 3)
		if err != nil {
			return fmt.Errorf("vertex: %w", err)
		}
		a.Vertices = append(a.Vertices, v[0], v[1], v[2])
		if len(v) >= 6 {
			a.Colors = append(a.Colors, v[3], v[4], v[5])
		} else {
			a.Colors = append(a.Colors, 1, 1, 1)
		}

	case "vn":
		n, err := parseFloats(fields[1:], 3)
		if err != nil {
			return fmt.Errorf("normal: %w", err)
		}
		a.Normals = append(a.Normals, n[0], n[1], n[2])

	case "vt":
		t, err := parseFloats(fields[1:], 2)
		if err != nil {
			return fmt.Errorf("texcoord: %w", err)
		}
		a.TexCoords = append(a.TexCoords, t[0], t[1])

	case "f":
		return p.face(fields[1:])

	case "o", "g":
		p.flushShape()
		if len(fields) > 1 {
			p.current.Name = strings.Join(fields[1:], " ")
		}

	case "usemtl":
		if len(fields) < 2 {
			p.warnf("usemtl without a name")
			p.material = -1
			return nil
		}
		id, ok := p.materials[fields[1]]
		if !ok {
			p.warnf("material %q not found", fields[1])
			id = -1
		}
		p.material = id

	case "mtllib":
		for _, name := range fields[1:] {
			p.loadMaterials(name)
		}

	case "s", "vp", "l", "p", "cstype", "deg", "bmat", "step":
		// smoothing groups, free-form geometry and points/lines are ignored

	default:
		p.warnf("unknown statement %q", fields[0])
	}
	return nil
}

func (p *objParser) face(corners []string) error {
	if len(corners) < 3 {
		return fmt.Errorf("face with %d corners", len(corners))
	}
	idx := make([]Index, len(corners))
	for i, c := range corners {
		var err error
		if idx[i], err = p.parseIndex(c); err != nil {
			return fmt.Errorf("face corner %q: %w", c, err)
		}
	}

	// fan triangulation
	m := &p.current.Mesh
	for i := 1; i+1 < len(idx); i++ {
		m.Indices = append(m.Indices, idx[0], idx[i], idx[i+1])
		m.MaterialIDs = append(m.MaterialIDs, p.material)
	}
	return nil
}

// parseIndex resolves v, v/vt, v//vn or v/vt/vn. OBJ indices are one-based,
// negative values count back from the most recent element.
func (p *objParser) parseIndex(s string) (Index, error) {
	a := &p.obj.Attrib
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return Index{}, errors.New("too many components")
	}

	idx := Index{Vertex: -1, TexCoord: -1, Normal: -1}
	var err error
	if idx.Vertex, err = resolveIndex(parts[0], a.VertexCount()); err != nil {
		return Index{}, err
	}
	if idx.Vertex < 0 {
		return Index{}, errors.New("missing vertex index")
	}
	if len(parts) > 1 {
		if idx.TexCoord, err = resolveIndex(parts[1], len(a.TexCoords)/2); err != nil {
			return Index{}, err
		}
	}
	if len(parts) > 2 {
		if idx.Normal, err = resolveIndex(parts[2], len(a.Normals)/3); err != nil {
			return Index{}, err
		}
	}
	return idx, nil
}

func resolveIndex(s string, count int) (int, error) {
	if s == "" {
		return -1, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += count
	default:
		return 0, errors.New("index 0 is invalid")
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("index %s out of range (%d elements)", s, count)
	}
	return i, nil
}

func (p *objParser) flushShape() {
	if len(p.current.Mesh.Indices) > 0 {
		p.obj.Shapes = append(p.obj.Shapes, p.current)
	}
	p.current = Shape{}
}

func (p *objParser) loadMaterials(name string) {
	if p.opener == nil {
		p.warnf("mtllib %q skipped: no material opener", name)
		return
	}
	rc, err := p.opener(name)
	if err != nil {
		p.warnf("mtllib %q: %v", name, err)
		return
	}
	defer rc.Close()

	mats, err := ParseMTL(rc)
	if err != nil {
		p.warnf("mtllib %q: %v", name, err)
		return
	}
	for _, m := range mats {
		if _, dup := p.materials[m.Name]; dup {
			p.warnf("material %q redefined, keeping first", m.Name)
			continue
		}
		p.materials[m.Name] = len(p.obj.Materials)
		p.obj.Materials = append(p.obj.Materials, m)
	}
}

func parseFloats(fields []string, want int) ([]float32, error) {
	if len(fields) < want {
		return nil, fmt.Errorf("expected at least %d values, got %d", want, len(fields))
	}
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}
