package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"objviewer/internal/config"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("objviewer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := touch(t, dir, "viewer.yaml")
	model := touch(t, dir, "bunny.obj")

	f, err := parseFlags(newFlagSet(), []string{"-config", cfgPath, "-variant", "colored", "-size", "1024:768", "-verbose", model})
	if err != nil {
		t.Fatal(err)
	}
	if f.Config() != cfgPath || f.Variant() != config.Colored || !f.Verbose() {
		t.Errorf("flags = %+v", f)
	}

	cfg := config.Default(config.Colored)
	f.apply(&cfg)
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if len(cfg.Models) != 1 || cfg.Models[0] != model {
		t.Errorf("Models = %v", cfg.Models)
	}

	f, err = parseFlags(newFlagSet(), []string{})
	if err != nil {
		t.Fatal(err)
	}
	cfg = config.Default(config.Phong)
	f.apply(&cfg)
	if cfg.Window.Width != 800 || len(cfg.Models) != 5 {
		t.Errorf("empty flags changed config: %+v", cfg)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	dir := t.TempDir()
	txt := touch(t, dir, "viewer.txt")
	stl := touch(t, dir, "bunny.stl")

	tests := []struct {
		Args []string
		Want string
	}{
		{[]string{"-config", filepath.Join(dir, "missing.yml")}, "Config file not found"},
		{[]string{"-config", txt}, "extension"},
		{[]string{"-variant", "toon"}, "Unknown variant"},
		{[]string{"-size", "800"}, "Window size"},
		{[]string{"-size", "0:600"}, "Window size"},
		{[]string{filepath.Join(dir, "missing.obj")}, "Model file not found"},
		{[]string{stl}, ".obj extension"},
	}
	for _, c := range tests {
		_, err := parseFlags(newFlagSet(), c.Args)
		if err == nil {
			t.Errorf("parseFlags(%v): expected error", c.Args)
			continue
		}
		if !strings.Contains(err.Error(), c.Want) {
			t.Errorf("parseFlags(%v) error %q does not mention %q", c.Args, err, c.Want)
		}
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		Size string
		W, H int
		Err  bool
	}{
		{"800:600", 800, 600, false},
		{"1:1", 1, 1, false},
		{"800x600", 0, 0, true},
		{"a:600", 0, 0, true},
		{"800:b", 0, 0, true},
		{"-1:600", 0, 0, true},
	}
	for _, c := range tests {
		w, h, err := parseSize(c.Size)
		if (err != nil) != c.Err || w != c.W || h != c.H {
			t.Errorf("parseSize(%q) = %d, %d, %v", c.Size, w, h, err)
		}
	}
}
