package main

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"objviewer/internal/config"
	"objviewer/internal/linalg"
	"objviewer/internal/mesh"
	"objviewer/internal/scene"
)

const bytesFloat32 = 4

// Attribute locations shared by both shader pairs.
const (
	attribPosition = 0
	attribColor    = 1
	attribNormal   = 2
)

type gpuShape struct {
	vao         uint32
	vbo         uint32
	cbo         uint32
	nbo         uint32
	vertexCount int32
	material    mesh.Material
}

type gpuModel struct {
	shapes []gpuShape
}

func newArrayBuffer(index uint32, data []float32) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*bytesFloat32, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointer(index, 3, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(index)
	return buf
}

func uploadShape(b mesh.Buffers, material mesh.Material) gpuShape {
	s := gpuShape{vertexCount: int32(b.VertexCount()), material: material}
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	s.vbo = newArrayBuffer(attribPosition, b.Positions)
	s.cbo = newArrayBuffer(attribColor, b.Colors)
	s.nbo = newArrayBuffer(attribNormal, b.Normals)
	gl.BindVertexArray(0)
	return s
}

// uploadModel normalises obj in place and uploads one vertex array per shape.
func uploadModel(obj *mesh.Object) gpuModel {
	mesh.Normalize(&obj.Attrib)
	m := gpuModel{shapes: make([]gpuShape, 0, len(obj.Shapes))}
	for i, shape := range obj.Shapes {
		m.shapes = append(m.shapes, uploadShape(mesh.Flatten(obj.Attrib, shape), obj.ShapeMaterial(i)))
	}
	return m
}

func (s gpuShape) draw() {
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, s.vertexCount)
}

type renderer struct {
	program  uint32
	variant  config.Variant
	models   []gpuModel
	plane    *gpuShape
	uniforms map[string]int32
}

func newRenderer(program uint32, variant config.Variant, models []gpuModel) *renderer {
	r := &renderer{
		program:  program,
		variant:  variant,
		models:   models,
		uniforms: map[string]int32{},
	}
	if variant == config.Colored {
		plane := uploadShape(mesh.GroundPlane(), mesh.DefaultMaterial)
		r.plane = &plane
	}
	return r
}

func (r *renderer) uniform(name string) int32 {
	if loc, ok := r.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(r.program, gl.Str(name+"\x00"))
	r.uniforms[name] = loc
	return loc
}

func (r *renderer) setMat4(name string, m linalg.Mat4) {
	cm := m.ColumnMajor()
	gl.UniformMatrix4fv(r.uniform(name), 1, false, &cm[0])
}

func (r *renderer) setVec3(name string, v linalg.Vec3) {
	gl.Uniform3f(r.uniform(name), v.X, v.Y, v.Z)
}

func (r *renderer) setColor(name string, c [3]float32) {
	gl.Uniform3f(r.uniform(name), c[0], c[1], c[2])
}

func (r *renderer) setFloat(name string, f float32) {
	gl.Uniform1f(r.uniform(name), f)
}

func (r *renderer) setInt(name string, i int32) {
	gl.Uniform1i(r.uniform(name), i)
}

func (r *renderer) setLights(l *scene.Lights) {
	r.setInt("lightmode", int32(l.Kind))

	r.setVec3("directional.position", l.Directional.Position)
	r.setVec3("directional.direction", l.Directional.Direction)
	r.setVec3("directional.diffuse", l.Directional.Diffuse)
	r.setVec3("directional.ambient", l.Directional.Ambient)

	r.setVec3("point.position", l.Point.Position)
	r.setVec3("point.diffuse", l.Point.Diffuse)
	r.setVec3("point.ambient", l.Point.Ambient)
	r.setFloat("point.constant", l.Point.Constant)
	r.setFloat("point.linear", l.Point.Linear)
	r.setFloat("point.quadratic", l.Point.Quadratic)

	r.setVec3("spot.position", l.Spot.Position)
	r.setVec3("spot.direction", l.Spot.Direction)
	r.setVec3("spot.diffuse", l.Spot.Diffuse)
	r.setVec3("spot.ambient", l.Spot.Ambient)
	r.setFloat("spot.exponent", l.Spot.Exponent)
	r.setFloat("spot.cutoff", l.Spot.Cutoff)
	r.setFloat("spot.constant", l.Spot.Constant)
	r.setFloat("spot.linear", l.Spot.Linear)
	r.setFloat("spot.quadratic", l.Spot.Quadratic)
}

// setMaterial uploads the shape material. Shininess is shared by all shapes
// and edited interactively.
func (r *renderer) setMaterial(m mesh.Material, shininess float32) {
	r.setColor("material.ambient", m.Ambient)
	r.setColor("material.diffuse", m.Diffuse)
	r.setColor("material.specular", m.Specular)
	r.setFloat("material.shininess", shininess)
}

func (r *renderer) draw(s *scene.State, fbWidth, fbHeight int) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
	if s.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.UseProgram(r.program)
	phong := r.variant == config.Phong
	if phong {
		r.setMat4("mv", s.ModelView())
		r.setMat4("view_matrix", s.View())
		r.setLights(&s.Lights)
	}

	model := r.models[s.Current]
	mvp := s.MVP()
	for _, vp := range s.Viewports(fbWidth, fbHeight) {
		gl.Viewport(vp.X, vp.Y, vp.Width, vp.Height)
		r.setMat4("mvp", mvp)
		if phong {
			var pixel int32
			if vp.PixelLighting {
				pixel = 1
			}
			r.setInt("vertex_pixel", pixel)
		}

		for _, shape := range model.shapes {
			if phong {
				r.setMaterial(shape.material, s.Lights.Shininess)
			}
			shape.draw()
		}

		if r.plane != nil {
			r.setMat4("mvp", s.ProjectionMatrix().Mul(s.View()))
			r.plane.draw()
		}
	}
	gl.BindVertexArray(0)
}
