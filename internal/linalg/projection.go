package linalg

import (
	"fmt"

	"github.com/chewxy/math32"
)

type ProjectionMode int

const (
	Orthographic ProjectionMode = iota
	Perspective
)

func (m ProjectionMode) String() string {
	switch m {
	case Orthographic:
		return "orthographic"
	case Perspective:
		return "perspective"
	default:
		return fmt.Sprintf("ProjectionMode(%d)", int(m))
	}
}

// Projection holds the clip volume for both projection modes. FovY is in degrees.
type Projection struct {
	Mode   ProjectionMode
	Near   float32
	Far    float32
	FovY   float32
	Aspect float32
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
}

// Matrix returns the matrix for the current mode.
func (p Projection) Matrix() Mat4 {
	if p.Mode == Perspective {
		return p.Perspective()
	}
	return p.Orthographic()
}

func (p Projection) Orthographic() Mat4 {
	rl := p.Right - p.Left
	tb := p.Top - p.Bottom
	fn := p.Far - p.Near
	return Mat4{
		2 / rl, 0, 0, -(p.Right + p.Left) / rl,
		0, 2 / tb, 0, -(p.Top + p.Bottom) / tb,
		0, 0, -2 / fn, -(p.Far + p.Near) / fn,
		0, 0, 0, 1,
	}
}

func (p Projection) Perspective() Mat4 {
	f := 1 / math32.Tan(DegToRad(p.FovY)/2)
	nf := p.Near - p.Far
	return Mat4{
		f / p.Aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (p.Far + p.Near) / nf, 2 * p.Far * p.Near / nf,
		0, 0, -1, 0,
	}
}
