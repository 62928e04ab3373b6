package scene

import (
	"log/slog"

	"objviewer/internal/config"
	"objviewer/internal/linalg"
)

// Per-unit steps of the lighting edits.
const (
	lightScrollStep     = 0.1
	shininessScrollStep = 0.3
)

type keyBinding struct {
	phongOnly bool
	apply     func(s *State)
}

func setMode(m Mode) func(s *State) {
	return func(s *State) {
		s.Mode = m
		slog.Debug("mode changed", "mode", m)
	}
}

func setProjection(m linalg.ProjectionMode) func(s *State) {
	return func(s *State) {
		s.Projection.Mode = m
		slog.Debug("projection changed", "mode", m)
	}
}

// Keys are glfw key codes, which coincide with upper case ASCII for letters.
var keyTable = map[rune]keyBinding{
	'W': {apply: func(s *State) { s.Wireframe = !s.Wireframe }},
	'Z': {apply: (*State).prevModel},
	'X': {apply: (*State).nextModel},
	'O': {apply: setProjection(linalg.Orthographic)},
	'P': {apply: setProjection(linalg.Perspective)},
	'T': {apply: setMode(Translate)},
	'R': {apply: setMode(Rotate)},
	'S': {apply: setMode(Scale)},
	'E': {apply: setMode(ViewEye)},
	'C': {apply: setMode(ViewCenter)},
	'U': {apply: setMode(ViewUp)},
	'I': {apply: func(s *State) { s.DumpMatrices(s.Out) }},
	'L': {phongOnly: true, apply: func(s *State) { s.Lights.NextKind() }},
	'K': {phongOnly: true, apply: setMode(LightEdit)},
	'J': {phongOnly: true, apply: setMode(ShininessEdit)},
}

// HandleKey applies the binding of a key press and reports whether the key is bound.
func (s *State) HandleKey(key rune) bool {
	b, ok := keyTable[key]
	if !ok || (b.phongOnly && s.Variant != config.Phong) {
		return false
	}
	b.apply(s)
	return true
}

func (s *State) prevModel() {
	if s.Current == 0 {
		s.Current = len(s.Models) - 1
	} else {
		s.Current--
	}
}

func (s *State) nextModel() {
	s.Current = (s.Current + 1) % len(s.Models)
}

// dragTable maps a mode to the edit applied for a drag of (dx, dy), already
// scaled by the drag sensitivity. Screen y grows downward.
var dragTable = map[Mode]func(s *State, dx, dy float32){
	Translate: func(s *State, dx, dy float32) {
		m := s.Model()
		m.Position.X += dx
		m.Position.Y -= dy
	},
	Rotate: func(s *State, dx, dy float32) {
		if s.Tuning.SwapRotateAxes {
			dx, dy = dy, dx
		}
		m := s.Model()
		m.Rotation.X += dy * s.Tuning.RotateDrag
		m.Rotation.Y -= dx * s.Tuning.RotateDrag
	},
	Scale: func(s *State, dx, dy float32) {
		m := s.Model()
		m.Scale.X += dx
		m.Scale.Y -= dy
	},
	ViewCenter: func(s *State, dx, dy float32) {
		s.Camera.Center.X += dx
		s.Camera.Center.Y -= dy
		s.updateView()
	},
	ViewEye: func(s *State, dx, dy float32) {
		s.Camera.Eye.X += dx
		s.Camera.Eye.Y -= dy
		s.updateView()
	},
	ViewUp: func(s *State, dx, dy float32) {
		s.Camera.Up.X += dx
		s.Camera.Up.Y -= dy
		s.updateView()
	},
	LightEdit: func(s *State, dx, dy float32) {
		s.Lights.Move(linalg.Vec3{X: dx, Y: -dy})
	},
}

// scrollTable maps a mode to the edit applied for a vertical scroll of y.
var scrollTable = map[Mode]func(s *State, y float32){
	Translate: func(s *State, y float32) {
		s.Model().Position.Z -= y * s.Tuning.ScrollStep
	},
	Rotate: func(s *State, y float32) {
		s.Model().Rotation.Z -= y * s.Tuning.ScrollRotate
	},
	Scale: func(s *State, y float32) {
		s.Model().Scale.Z -= y * s.Tuning.ScrollStep
	},
	ViewCenter: func(s *State, y float32) {
		s.Camera.Center.Z -= y * s.Tuning.ScrollStep
		s.updateView()
	},
	ViewEye: func(s *State, y float32) {
		s.Camera.Eye.Z -= y * s.Tuning.ScrollStep
		s.updateView()
	},
	ViewUp: func(s *State, y float32) {
		s.Camera.Up.Z -= y * s.Tuning.ScrollStep
		s.updateView()
	},
	LightEdit: func(s *State, y float32) {
		s.Lights.Adjust(y * lightScrollStep)
	},
	ShininessEdit: func(s *State, y float32) {
		s.Lights.AdjustShininess(y * shininessScrollStep)
	},
}

// MouseButton records a left button press at (x, y) or its release.
func (s *State) MouseButton(pressed bool, x, y float64) {
	if !pressed {
		s.dragging = false
		return
	}
	if !s.dragging {
		s.dragging = true
		s.lastX, s.lastY = x, y
	}
}

// CursorMoved applies the drag since the last cursor event while the button is held.
func (s *State) CursorMoved(x, y float64) {
	if !s.dragging {
		return
	}
	dx := float32(x-s.lastX) * s.Tuning.DragSensitivity
	dy := float32(y-s.lastY) * s.Tuning.DragSensitivity
	s.lastX, s.lastY = x, y

	if h, ok := dragTable[s.Mode]; ok {
		h(s, dx, dy)
	}
}

func (s *State) Scroll(y float64) {
	if h, ok := scrollTable[s.Mode]; ok {
		h(s, float32(y))
	}
}
