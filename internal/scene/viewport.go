package scene

import "objviewer/internal/config"

type Viewport struct {
	X, Y, Width, Height int32
	// PixelLighting selects per-fragment lighting in the phong shader.
	PixelLighting bool
}

// FitViewport returns the largest width x height of the given aspect that
// fits inside a framebuffer of fbWidth x fbHeight.
func FitViewport(fbWidth, fbHeight int, aspect float32) (width, height int) {
	if float32(fbWidth) < float32(fbHeight)*aspect {
		height = int(float32(fbWidth) / aspect)
	} else {
		height = fbHeight
	}
	return int(float32(height) * aspect), height
}

// Viewports lays out the drawable area. The phong variant splits it into a
// per-vertex half on the left and a per-pixel half on the right.
func (s *State) Viewports(fbWidth, fbHeight int) []Viewport {
	w, h := FitViewport(fbWidth, fbHeight, s.Projection.Aspect)
	if s.Variant != config.Phong {
		return []Viewport{{Width: int32(w), Height: int32(h)}}
	}
	half := int32(w / 2)
	return []Viewport{
		{Width: half, Height: int32(h)},
		{X: half, Width: half, Height: int32(h), PixelLighting: true},
	}
}
