package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
)

func buildShader(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertex, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER, "VERTEX")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER, "FRAGMENT")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragment)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)
	if err := checkProgramLinkErrors(program); err != nil {
		gl.DeleteProgram(program)
		return 0, err
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logMsg))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader compile error:\n%s", name, strings.TrimRight(logMsg, "\x00\n "))
	}
	return shader, nil
}

func checkProgramLinkErrors(program uint32) error {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logMsg))
		return fmt.Errorf("program link error:\n%s", strings.TrimRight(logMsg, "\x00\n "))
	}
	return nil
}

var glErrors = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	gl.STACK_OVERFLOW:                "GL_STACK_OVERFLOW",
	gl.STACK_UNDERFLOW:               "GL_STACK_UNDERFLOW",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	gl.CONTEXT_LOST:                  "GL_CONTEXT_LOST",
}

// drainGLErrors returns the names of all pending GL errors.
func drainGLErrors() []string {
	var out []string
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return out
		}
		name, ok := glErrors[code]
		if !ok {
			name = fmt.Sprintf("GL_ERROR(0x%x)", code)
		}
		out = append(out, name)
	}
}
