package scene

import "fmt"

// Mode selects which vector a drag or scroll edits.
type Mode int

const (
	Translate Mode = iota
	Rotate
	Scale
	ViewCenter
	ViewEye
	ViewUp
	LightEdit
	ShininessEdit
)

var modeNames = [...]string{
	Translate:     "translate",
	Rotate:        "rotate",
	Scale:         "scale",
	ViewCenter:    "view-center",
	ViewEye:       "view-eye",
	ViewUp:        "view-up",
	LightEdit:     "light",
	ShininessEdit: "shininess",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// LightKind is the light the phong shader currently evaluates.
type LightKind int

const (
	Directional LightKind = iota
	Point
	Spot
)

func (k LightKind) String() string {
	switch k {
	case Directional:
		return "directional"
	case Point:
		return "point"
	case Spot:
		return "spot"
	default:
		return fmt.Sprintf("LightKind(%d)", int(k))
	}
}
