package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"objviewer/internal/config"
)

// checkFile stats path and, when exts are given, checks its extension.
// found is false when path is missing or a directory; err then describes why.
func checkFile(path string, exts ...string) (found bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	if len(exts) > 0 && !slices.Contains(exts, filepath.Ext(path)) {
		return true, fmt.Errorf("%s: extension must be %s", path, strings.Join(exts, " or "))
	}
	return true, nil
}

// loadShaderSources reads both shader stages, NUL terminated for gl.Strs.
func loadShaderSources(s config.Shaders) (vertex, fragment string, err error) {
	var src [2]string
	for i, path := range []string{s.Vertex, s.Fragment} {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("failed to read shader file: %w", err)
		}
		src[i] = string(data) + "\x00"
	}
	return src[0], src[1], nil
}
