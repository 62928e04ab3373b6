// Package config loads the viewer settings from a YAML file layered over
// built-in defaults for each variant.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Variant selects between the vertex colour viewer and the Phong lighting viewer.
type Variant string

const (
	Colored Variant = "colored"
	Phong   Variant = "phong"
)

func (v Variant) Valid() bool {
	return v == Colored || v == Phong
}

type Vec3 [3]float32

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Shaders struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type Camera struct {
	Eye    Vec3 `yaml:"eye"`
	Center Vec3 `yaml:"center"`
	Up     Vec3 `yaml:"up"`
}

type Projection struct {
	Mode   string  `yaml:"mode"` // orthographic or perspective
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
	FovY   float32 `yaml:"fovy"` // degrees
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
	Top    float32 `yaml:"top"`
	Bottom float32 `yaml:"bottom"`
}

type DirectionalLight struct {
	Position  Vec3 `yaml:"position"`
	Direction Vec3 `yaml:"direction"`
	Diffuse   Vec3 `yaml:"diffuse"`
	Ambient   Vec3 `yaml:"ambient"`
}

type PointLight struct {
	Position  Vec3    `yaml:"position"`
	Diffuse   Vec3    `yaml:"diffuse"`
	Ambient   Vec3    `yaml:"ambient"`
	Constant  float32 `yaml:"constant"`
	Linear    float32 `yaml:"linear"`
	Quadratic float32 `yaml:"quadratic"`
}

type SpotLight struct {
	Position  Vec3    `yaml:"position"`
	Direction Vec3    `yaml:"direction"`
	Diffuse   Vec3    `yaml:"diffuse"`
	Ambient   Vec3    `yaml:"ambient"`
	Exponent  float32 `yaml:"exponent"`
	Cutoff    float32 `yaml:"cutoff"` // degrees
	Constant  float32 `yaml:"constant"`
	Linear    float32 `yaml:"linear"`
	Quadratic float32 `yaml:"quadratic"`
}

type Lights struct {
	Directional DirectionalLight `yaml:"directional"`
	Point       PointLight       `yaml:"point"`
	Spot        SpotLight        `yaml:"spot"`
	Shininess   float32          `yaml:"shininess"`
}

// Tuning scales raw input deltas into transform changes.
type Tuning struct {
	DragSensitivity float32 `yaml:"drag_sensitivity"` // per pixel of cursor travel
	RotateDrag      float32 `yaml:"rotate_drag"`      // radians per drag unit
	ScrollStep      float32 `yaml:"scroll_step"`
	ScrollRotate    float32 `yaml:"scroll_rotate"` // radians per scroll unit

	// SwapRotateAxes makes a horizontal drag rotate about x and a vertical
	// drag about y.
	SwapRotateAxes bool `yaml:"swap_rotate_axes"`
}

type Config struct {
	Variant    Variant    `yaml:"variant"`
	Window     Window     `yaml:"window"`
	Shaders    Shaders    `yaml:"shaders"`
	Models     []string   `yaml:"models"`
	Camera     Camera     `yaml:"camera"`
	Projection Projection `yaml:"projection"`
	Lights     Lights     `yaml:"lights"`
	Tuning     Tuning     `yaml:"tuning"`
}

// Aspect is the window width over height.
func (c Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}

// Load reads the YAML file at path over the defaults of its variant. If
// variant is non-empty it overrides the variant named in the file. An empty
// path yields the defaults.
func Load(path string, variant Variant) (Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if variant == "" {
		var head struct {
			Variant Variant `yaml:"variant"`
		}
		if err := yaml.Unmarshal(data, &head); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		variant = head.Variant
	}
	if variant == "" {
		variant = Phong
	}
	if !variant.Valid() {
		return Config{}, fmt.Errorf("unknown variant %q", variant)
	}

	cfg := Default(variant)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Variant = variant

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if len(c.Models) == 0 {
		errs = append(errs, errors.New("no models configured"))
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		errs = append(errs, errors.New("vertex and fragment shader paths are required"))
	}
	p := c.Projection
	if p.Mode != "orthographic" && p.Mode != "perspective" {
		errs = append(errs, fmt.Errorf("unknown projection mode %q", p.Mode))
	}
	if p.Near <= 0 || p.Far <= p.Near {
		errs = append(errs, fmt.Errorf("clip planes must satisfy 0 < near < far, got near=%g far=%g", p.Near, p.Far))
	}
	if p.FovY <= 0 || p.FovY >= 180 {
		errs = append(errs, fmt.Errorf("fovy must be in (0, 180) degrees, got %g", p.FovY))
	}
	if p.Left == p.Right || p.Top == p.Bottom {
		errs = append(errs, errors.New("orthographic bounds must have non-zero width and height"))
	}
	if c.Tuning.DragSensitivity == 0 {
		errs = append(errs, errors.New("drag sensitivity must be non-zero"))
	}
	return errors.Join(errs...)
}
