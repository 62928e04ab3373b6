package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/schollz/progressbar/v3"

	"objviewer/internal/config"
	"objviewer/internal/mesh"
	"objviewer/internal/scene"
)

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

// parseModels reads every OBJ file before any GL state exists.
func parseModels(paths []string) ([]*mesh.Object, error) {
	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("loading models"),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Finish()

	objs := make([]*mesh.Object, 0, len(paths))
	for _, path := range paths {
		bar.Describe(path)
		obj, warnings, err := mesh.LoadOBJ(path)
		for _, w := range warnings {
			slog.Warn("obj", "path", path, "warning", w)
		}
		if err != nil {
			return nil, err
		}
		slog.Info("loaded model", "path", path, "shapes", len(obj.Shapes), "materials", len(obj.Materials), "vertices", obj.Attrib.VertexCount())
		objs = append(objs, obj)
		bar.Add(1)
	}
	return objs, nil
}

func printContextInfo() {
	slog.Info("opengl context",
		"vendor", gl.GoStr(gl.GetString(gl.VENDOR)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	)
}

func main() {
	runtime.LockOSThread()

	flags, err := NewFlags()
	if err != nil {
		fmt.Printf("%s\n", err.Error())
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if flags.Verbose() {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(flags.Config(), flags.Variant())
	if err != nil {
		fatal("invalid configuration", "error", err)
	}
	flags.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		fatal("invalid configuration", "error", err)
	}

	objs, err := parseModels(cfg.Models)
	if err != nil {
		fatal("failed to load model", "error", err)
	}

	state, err := scene.New(cfg, len(objs))
	if err != nil {
		fatal("failed to initialise scene", "error", err)
	}

	if err := glfw.Init(); err != nil {
		fatal("failed to initialise glfw", "error", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		fatal("failed to create window", "error", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		fatal("failed to initialise opengl", "error", err)
	}
	printContextInfo()

	vertexSource, fragmentSource, err := loadShaderSources(cfg.Shaders)
	if err != nil {
		fatal("failed to load shaders", "error", err)
	}
	program, err := buildShader(vertexSource, fragmentSource)
	if err != nil {
		fatal("failed to build shader program", "vertex", cfg.Shaders.Vertex, "fragment", cfg.Shaders.Fragment, "error", err)
	}

	models := make([]gpuModel, len(objs))
	for i, obj := range objs {
		models[i] = uploadModel(obj)
	}
	r := newRenderer(program, cfg.Variant, models)

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		if state.HandleKey(rune(key)) {
			slog.Debug("key", "key", string(rune(key)), "mode", state.Mode, "model", state.Current)
		}
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		x, y := w.GetCursorPos()
		state.MouseButton(action == glfw.Press, x, y)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		state.CursorMoved(xpos, ypos)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		state.Scroll(yoff)
	})

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.2, 0.2, 0.2, 1)

	for !window.ShouldClose() {
		w, h := window.GetFramebufferSize()
		r.draw(state, w, h)
		for _, e := range drainGLErrors() {
			slog.Error("opengl", "error", e)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
