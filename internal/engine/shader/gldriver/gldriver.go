// Package gldriver implements shader.Driver on top of go-gl.
package gldriver

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/learngl/internal/engine/shader"
)

// Driver forwards every call to the OpenGL 4.1 core bindings.
// gl.Init must have been called on the context thread before use.
type Driver struct{}

// New returns the go-gl driver.
func New() Driver { return Driver{} }

var _ shader.Driver = Driver{}

func (Driver) CreateShader(stage shader.Stage) uint32 {
	switch stage {
	case shader.StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case shader.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

func (Driver) ShaderSource(sh uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
}

func (Driver) CompileShader(sh uint32) { gl.CompileShader(sh) }

func (Driver) ShaderCompiled(sh uint32) bool {
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ShaderInfoLog(sh uint32) string {
	var logLen int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetShaderInfoLog(sh, logLen, nil, &log[0])
	return trimLog(log)
}

func (Driver) DeleteShader(sh uint32) { gl.DeleteShader(sh) }

func (Driver) CreateProgram() uint32 { return gl.CreateProgram() }

func (Driver) AttachShader(program, sh uint32) { gl.AttachShader(program, sh) }

func (Driver) DetachShader(program, sh uint32) { gl.DetachShader(program, sh) }

func (Driver) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (Driver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetProgramInfoLog(program, logLen, nil, &log[0])
	return trimLog(log)
}

func (Driver) UseProgram(program uint32) { gl.UseProgram(program) }

func (Driver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Driver) IsProgram(program uint32) bool { return gl.IsProgram(program) }

func (Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Driver) Uniform1i(loc int32, v int32) { gl.Uniform1i(loc, v) }

func (Driver) Uniform1f(loc int32, v float32) { gl.Uniform1f(loc, v) }

func (Driver) Uniform3f(loc int32, x, y, z float32) { gl.Uniform3f(loc, x, y, z) }

func (Driver) Uniform4f(loc int32, x, y, z, w float32) { gl.Uniform4f(loc, x, y, z, w) }

func (Driver) UniformMatrix4fv(loc int32, count int32, transpose bool, values []float32) {
	gl.UniformMatrix4fv(loc, count, transpose, &values[0])
}

func (Driver) GetUniformf(program uint32, loc int32) float32 {
	var v float32
	gl.GetUniformfv(program, loc, &v)
	return v
}

func (Driver) GetUniformi(program uint32, loc int32) int32 {
	var v int32
	gl.GetUniformiv(program, loc, &v)
	return v
}

// trimLog drops the NUL terminator and trailing whitespace drivers leave in
// info logs.
func trimLog(b []byte) string {
	return strings.TrimRight(string(b), "\x00\r\n\t ")
}
