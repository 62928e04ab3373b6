// Package linalg holds the small fixed-size vector and matrix types used to
// build model, view and projection transforms.
//
// Mat4 is stored row-major so that the literal layout in source matches the
// textbook layout of each transform. ColumnMajor converts to the layout
// expected by glUniformMatrix4fv with transpose=false.
package linalg

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type Mat4 [16]float32

func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float32 {
	return m[r*4+c]
}

func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[r*4+k] * n[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}

// MulN multiplies the matrices left to right.
func MulN(ms ...Mat4) Mat4 {
	out := Ident4()
	for _, m := range ms {
		out = out.Mul(m)
	}
	return out
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r*4+c]
		}
	}
	return out
}

// ColumnMajor returns m laid out column by column, ready for GPU upload.
func (m Mat4) ColumnMajor() mgl32.Mat4 {
	return mgl32.Mat4(m.Transpose())
}

// MulVec3 transforms the point v (w=1) and returns the xyz part without a perspective divide.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

func (m Mat4) ApproxEqual(n Mat4, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-n[i]) > eps {
			return false
		}
	}
	return true
}

// String prints the matrix as four rows of space separated values.
func (m Mat4) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			fmt.Fprintf(&b, "%g ", m[r*4+c])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func Translate(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

func Scaling(v Vec3) Mat4 {
	return Mat4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

func RotateX(a float32) Mat4 {
	s, c := math32.Sincos(a)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

func RotateY(a float32) Mat4 {
	s, c := math32.Sincos(a)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func RotateZ(a float32) Mat4 {
	s, c := math32.Sincos(a)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rotate composes Euler angles (radians) as Rx * Ry * Rz.
func Rotate(v Vec3) Mat4 {
	return RotateX(v.X).Mul(RotateY(v.Y)).Mul(RotateZ(v.Z))
}

func DegToRad(d float32) float32 {
	return d * math32.Pi / 180
}
