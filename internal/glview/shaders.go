//go:build gl

package glview

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
)

const vertexShader = `#version 150 core
in vec2 Position;
in vec2 Offset;
void main() {
	gl_Position = vec4(Position + Offset, 0.0, 1.0);
}
`

const fragmentShader = `#version 150 core
uniform vec4 Color;
out vec4 Out_Color;
void main() {
	Out_Color = Color;
}
`

type shader struct {
	handle   uint32
	position uint32
	offset   uint32
	color    int32
}

// createProgram compiles and links the flat colour program.
func createProgram(vertProgram, fragProgram string) (*shader, error) {
	sh := &shader{handle: gl.CreateProgram()}

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()
		gl.ShaderSource(handle, 1, csource, nil)
	}
	glShaderSource(vertHandle, vertProgram)
	glShaderSource(fragHandle, fragProgram)

	gl.CompileShader(vertHandle)
	if log := shaderCompileError(vertHandle); log != "" {
		return nil, fmt.Errorf("glview: vertex shader: %s", log)
	}
	gl.CompileShader(fragHandle)
	if log := shaderCompileError(fragHandle); log != "" {
		return nil, fmt.Errorf("glview: fragment shader: %s", log)
	}

	gl.AttachShader(sh.handle, vertHandle)
	gl.AttachShader(sh.handle, fragHandle)
	gl.LinkProgram(sh.handle)
	gl.DeleteShader(fragHandle)
	gl.DeleteShader(vertHandle)

	var linked int32
	gl.GetProgramiv(sh.handle, gl.LINK_STATUS, &linked)
	if linked == 0 {
		gl.DeleteProgram(sh.handle)
		return nil, fmt.Errorf("glview: program failed to link")
	}

	sh.position = uint32(gl.GetAttribLocation(sh.handle, gl.Str("Position\x00")))
	sh.offset = uint32(gl.GetAttribLocation(sh.handle, gl.Str("Offset\x00")))
	sh.color = gl.GetUniformLocation(sh.handle, gl.Str("Color\x00"))
	return sh, nil
}

func shaderCompileError(handle uint32) string {
	var isCompiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled != 0 {
		return ""
	}
	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "unknown error"
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(handle, logLength, &logLength, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (sh *shader) destroy() {
	if sh.handle != 0 {
		gl.DeleteProgram(sh.handle)
		sh.handle = 0
	}
}
