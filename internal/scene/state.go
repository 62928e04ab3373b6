// Package scene holds the interactive state of the viewer and maps keyboard,
// drag and scroll input onto it.
package scene

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"objviewer/internal/config"
	"objviewer/internal/linalg"
)

var ErrNoModels = errors.New("scene: at least one model is required")

// Transform is the per-model placement. Rotation holds Euler angles in radians.
type Transform struct {
	Position linalg.Vec3
	Rotation linalg.Vec3
	Scale    linalg.Vec3
}

func NewTransform() Transform {
	return Transform{Scale: linalg.Vec3{X: 1, Y: 1, Z: 1}}
}

// Matrices returns the translation, rotation and scaling matrices.
func (t Transform) Matrices() (tr, rot, sc linalg.Mat4) {
	return linalg.Translate(t.Position), linalg.Rotate(t.Rotation), linalg.Scaling(t.Scale)
}

// Matrix is T * R * S.
func (t Transform) Matrix() linalg.Mat4 {
	return linalg.MulN(t.Matrices())
}

type State struct {
	Variant    config.Variant
	Tuning     config.Tuning
	Models     []Transform
	Current    int
	Mode       Mode
	Camera     linalg.Camera
	Projection linalg.Projection
	Lights     Lights
	Wireframe  bool

	// Out receives matrix dumps.
	Out io.Writer

	view     linalg.Mat4
	dragging bool
	lastX    float64
	lastY    float64
}

// New builds the initial state for the given number of loaded models.
func New(cfg config.Config, models int) (*State, error) {
	if models <= 0 {
		return nil, ErrNoModels
	}

	s := &State{
		Variant: cfg.Variant,
		Tuning:  cfg.Tuning,
		Models:  make([]Transform, models),
		Mode:    Translate,
		Camera: linalg.Camera{
			Eye:    vec(cfg.Camera.Eye),
			Center: vec(cfg.Camera.Center),
			Up:     vec(cfg.Camera.Up),
		},
		Projection: linalg.Projection{
			Mode:   linalg.Perspective,
			Near:   cfg.Projection.Near,
			Far:    cfg.Projection.Far,
			FovY:   cfg.Projection.FovY,
			Aspect: cfg.Aspect(),
			Left:   cfg.Projection.Left,
			Right:  cfg.Projection.Right,
			Top:    cfg.Projection.Top,
			Bottom: cfg.Projection.Bottom,
		},
		Lights: newLights(cfg.Lights),
		Out:    os.Stdout,
	}
	if cfg.Projection.Mode == "orthographic" {
		s.Projection.Mode = linalg.Orthographic
	}
	for i := range s.Models {
		s.Models[i] = NewTransform()
	}

	view, err := s.Camera.ViewMatrix()
	if err != nil {
		return nil, fmt.Errorf("initial camera %+v: %w", s.Camera, err)
	}
	s.view = view
	return s, nil
}

func vec(v config.Vec3) linalg.Vec3 {
	return linalg.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Model returns the transform of the model being displayed.
func (s *State) Model() *Transform {
	return &s.Models[s.Current]
}

func (s *State) View() linalg.Mat4 {
	return s.view
}

func (s *State) ProjectionMatrix() linalg.Mat4 {
	return s.Projection.Matrix()
}

// ModelView is V * T * R * S for the current model.
func (s *State) ModelView() linalg.Mat4 {
	return s.view.Mul(s.Model().Matrix())
}

// MVP is P * V * T * R * S for the current model.
func (s *State) MVP() linalg.Mat4 {
	return s.ProjectionMatrix().Mul(s.ModelView())
}

// updateView recomputes the view matrix after a camera edit. A degenerate
// camera keeps the last valid matrix.
func (s *State) updateView() {
	view, err := s.Camera.ViewMatrix()
	if err != nil {
		slog.Warn("camera edit ignored", "camera", s.Camera, "error", err)
		return
	}
	s.view = view
}

// DumpMatrices writes T, R, S, view and projection matrices of the current model.
func (s *State) DumpMatrices(w io.Writer) {
	t, r, sc := s.Model().Matrices()
	for _, m := range []struct {
		name string
		m    linalg.Mat4
	}{
		{"Translation", t},
		{"Rotation", r},
		{"Scaling", sc},
		{"Viewing", s.view},
		{"Projection", s.ProjectionMatrix()},
	} {
		fmt.Fprintf(w, "\n%s Matrix:\n%s", m.name, m.m)
	}
}
