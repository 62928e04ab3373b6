package scene

import (
	"github.com/chewxy/math32"

	"objviewer/internal/config"
	"objviewer/internal/linalg"
)

type DirectionalLight struct {
	Position  linalg.Vec3
	Direction linalg.Vec3
	Diffuse   linalg.Vec3
	Ambient   linalg.Vec3
}

type PointLight struct {
	Position  linalg.Vec3
	Diffuse   linalg.Vec3
	Ambient   linalg.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
}

type SpotLight struct {
	Position  linalg.Vec3
	Direction linalg.Vec3
	Diffuse   linalg.Vec3
	Ambient   linalg.Vec3
	Exponent  float32
	Cutoff    float32 // degrees
	Constant  float32
	Linear    float32
	Quadratic float32
}

type Lights struct {
	Kind        LightKind
	Directional DirectionalLight
	Point       PointLight
	Spot        SpotLight
	Shininess   float32
}

func newLights(c config.Lights) Lights {
	return Lights{
		Kind: Directional,
		Directional: DirectionalLight{
			Position:  vec(c.Directional.Position),
			Direction: vec(c.Directional.Direction),
			Diffuse:   vec(c.Directional.Diffuse),
			Ambient:   vec(c.Directional.Ambient),
		},
		Point: PointLight{
			Position:  vec(c.Point.Position),
			Diffuse:   vec(c.Point.Diffuse),
			Ambient:   vec(c.Point.Ambient),
			Constant:  c.Point.Constant,
			Linear:    c.Point.Linear,
			Quadratic: c.Point.Quadratic,
		},
		Spot: SpotLight{
			Position:  vec(c.Spot.Position),
			Direction: vec(c.Spot.Direction),
			Diffuse:   vec(c.Spot.Diffuse),
			Ambient:   vec(c.Spot.Ambient),
			Exponent:  c.Spot.Exponent,
			Cutoff:    c.Spot.Cutoff,
			Constant:  c.Spot.Constant,
			Linear:    c.Spot.Linear,
			Quadratic: c.Spot.Quadratic,
		},
		Shininess: c.Shininess,
	}
}

// NextKind cycles directional, point, spot.
func (l *Lights) NextKind() {
	l.Kind = (l.Kind + 1) % 3
}

// Move shifts every light position by d.
func (l *Lights) Move(d linalg.Vec3) {
	l.Directional.Position = l.Directional.Position.Add(d)
	l.Point.Position = l.Point.Position.Add(d)
	l.Spot.Position = l.Spot.Position.Add(d)
}

// Adjust applies a scroll step to the active light: diffuse intensity for
// directional and point lights, cutoff angle for the spot light.
func (l *Lights) Adjust(delta float32) {
	switch l.Kind {
	case Directional:
		l.Directional.Diffuse = l.Directional.Diffuse.Sub(linalg.Vec3{X: delta, Y: delta, Z: delta})
	case Point:
		l.Point.Diffuse = l.Point.Diffuse.Sub(linalg.Vec3{X: delta, Y: delta, Z: delta})
	case Spot:
		l.Spot.Cutoff -= delta
	}
}

func (l *Lights) AdjustShininess(delta float32) {
	l.Shininess = math32.Max(l.Shininess-delta, 0)
}
