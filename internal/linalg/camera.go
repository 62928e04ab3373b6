package linalg

import (
	"errors"
)

var ErrDegenerateCamera = errors.New("linalg: camera basis is degenerate")

// degenerateEps bounds the squared length below which a basis vector is
// considered to have collapsed.
const degenerateEps = 1e-12

// Camera is a look-at camera. Up is a point, not a direction: the vertical
// reference is taken as Up - Eye.
type Camera struct {
	Eye    Vec3
	Center Vec3
	Up     Vec3
}

// Basis returns the orthonormal camera frame. Forward points from the eye
// toward the center, right is forward x (up - eye), and up is right x forward.
func (c Camera) Basis() (right, up, forward Vec3, err error) {
	f := c.Center.Sub(c.Eye)
	if f.Dot(f) < degenerateEps {
		return Vec3{}, Vec3{}, Vec3{}, ErrDegenerateCamera
	}
	r := f.Cross(c.Up.Sub(c.Eye))
	if r.Dot(r) < degenerateEps {
		return Vec3{}, Vec3{}, Vec3{}, ErrDegenerateCamera
	}
	forward = f.Normalize()
	right = r.Normalize()
	up = right.Cross(forward).Normalize()
	return right, up, forward, nil
}

// ViewMatrix builds [right; up; -forward] * Translate(-eye).
func (c Camera) ViewMatrix() (Mat4, error) {
	r, u, f, err := c.Basis()
	if err != nil {
		return Mat4{}, err
	}
	rot := Mat4{
		r.X, r.Y, r.Z, 0,
		u.X, u.Y, u.Z, 0,
		-f.X, -f.Y, -f.Z, 0,
		0, 0, 0, 1,
	}
	return rot.Mul(Translate(c.Eye.Neg())), nil
}
