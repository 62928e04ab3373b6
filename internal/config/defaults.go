package config

import "math"

// Default returns the settings each viewer variant starts with.
func Default(v Variant) Config {
	cfg := Config{
		Variant: v,
		Camera: Camera{
			Eye:    Vec3{0, 0, 2},
			Center: Vec3{0, 0, 0},
			Up:     Vec3{0, 1, 0},
		},
		Projection: Projection{
			Mode:   "perspective",
			Near:   0.001,
			Far:    100,
			FovY:   80,
			Left:   -1,
			Right:  1,
			Top:    1,
			Bottom: -1,
		},
		Lights: Lights{
			Directional: DirectionalLight{
				Position:  Vec3{1, 1, 1},
				Direction: Vec3{-1, -1, -1},
				Diffuse:   Vec3{1, 1, 1},
				Ambient:   Vec3{0.15, 0.15, 0.15},
			},
			Point: PointLight{
				Position:  Vec3{0, 2, 1},
				Diffuse:   Vec3{1, 1, 1},
				Ambient:   Vec3{0.15, 0.15, 0.15},
				Constant:  0.01,
				Linear:    0.8,
				Quadratic: 0.1,
			},
			Spot: SpotLight{
				Position:  Vec3{0, 0, 2},
				Direction: Vec3{0, 0, -1},
				Diffuse:   Vec3{1, 1, 1},
				Ambient:   Vec3{0.15, 0.15, 0.15},
				Exponent:  50,
				Cutoff:    30,
				Constant:  0.05,
				Linear:    0.3,
				Quadratic: 0.6,
			},
			Shininess: 64,
		},
	}

	switch v {
	case Colored:
		cfg.Window = Window{Width: 600, Height: 600, Title: "OBJ Viewer"}
		cfg.Shaders = Shaders{Vertex: "shaders/colored.vs", Fragment: "shaders/colored.fs"}
		cfg.Models = []string{
			"models/ColorModels/bunny5KC.obj",
			"models/ColorModels/dragon10KC.obj",
			"models/ColorModels/lucy25KC.obj",
			"models/ColorModels/teapot4KC.obj",
			"models/ColorModels/dolphinC.obj",
		}
		cfg.Tuning = Tuning{
			DragSensitivity: 0.005,
			RotateDrag:      1,
			ScrollStep:      0.03,
			ScrollRotate:    0.08,
			SwapRotateAxes:  true,
		}
	default:
		cfg.Window = Window{Width: 800, Height: 800, Title: "OBJ Viewer (Phong)"}
		cfg.Shaders = Shaders{Vertex: "shaders/phong.vs", Fragment: "shaders/phong.fs"}
		cfg.Models = []string{
			"models/NormalModels/bunny5KN.obj",
			"models/NormalModels/dragon10KN.obj",
			"models/NormalModels/lucy25KN.obj",
			"models/NormalModels/teapot4KN.obj",
			"models/NormalModels/dolphinN.obj",
		}
		cfg.Tuning = Tuning{
			DragSensitivity: 0.01,
			RotateDrag:      50 * math.Pi / 180,
			ScrollStep:      0.03,
			ScrollRotate:    0.8 * math.Pi / 180,
		}
	}
	return cfg
}
