package shader

// Driver is the subset of the OpenGL API a Program talks to.
//
// Every method is a direct call into the driver and must be made from the
// thread that owns the current GL context. The gldriver package provides the
// go-gl implementation; shadertest provides an in-memory one.
type Driver interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	IsProgram(program uint32) bool

	// UniformLocation returns -1 when name is not an active uniform.
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4fv(location int32, count int32, transpose bool, values []float32)
	GetUniformf(program uint32, location int32) float32
	GetUniformi(program uint32, location int32) int32
}
