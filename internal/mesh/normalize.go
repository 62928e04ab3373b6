package mesh

import (
	"github.com/chewxy/math32"

	"objviewer/internal/linalg"
)

type Bounds struct {
	Min, Max linalg.Vec3
}

func (b Bounds) Center() linalg.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

func (b Bounds) Extent() linalg.Vec3 {
	return b.Max.Sub(b.Min)
}

// LargestExtent returns the size of the box along its longest axis.
func (b Bounds) LargestExtent() float32 {
	e := b.Extent()
	return math32.Max(e.X, math32.Max(e.Y, e.Z))
}

// ComputeBounds returns the axis-aligned bounding box of a packed xyz slice.
func ComputeBounds(vertices []float32) Bounds {
	if len(vertices) < 3 {
		return Bounds{}
	}
	b := Bounds{
		Min: linalg.Vec3{X: vertices[0], Y: vertices[1], Z: vertices[2]},
		Max: linalg.Vec3{X: vertices[0], Y: vertices[1], Z: vertices[2]},
	}
	for i := 3; i+2 < len(vertices); i += 3 {
		x, y, z := vertices[i], vertices[i+1], vertices[i+2]
		b.Min.X = math32.Min(b.Min.X, x)
		b.Min.Y = math32.Min(b.Min.Y, y)
		b.Min.Z = math32.Min(b.Min.Z, z)
		b.Max.X = math32.Max(b.Max.X, x)
		b.Max.Y = math32.Max(b.Max.Y, y)
		b.Max.Z = math32.Max(b.Max.Z, z)
	}
	return b
}

// Normalize recenters the vertex pool on its bounding box midpoint and
// divides by half the largest extent, so the result spans [-1,1] along its
// longest axis. A mesh with zero extent is only recentered. The bounds before
// normalisation are returned.
func Normalize(a *Attrib) Bounds {
	b := ComputeBounds(a.Vertices)
	c := b.Center()
	scale := b.LargestExtent() / 2
	if scale == 0 {
		scale = 1
	}
	for i := 0; i+2 < len(a.Vertices); i += 3 {
		a.Vertices[i] = (a.Vertices[i] - c.X) / scale
		a.Vertices[i+1] = (a.Vertices[i+1] - c.Y) / scale
		a.Vertices[i+2] = (a.Vertices[i+2] - c.Z) / scale
	}
	return b
}
