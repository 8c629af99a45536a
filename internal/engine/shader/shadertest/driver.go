// Package shadertest provides an in-memory shader.Driver for tests that run
// without a GL context.
//
// The driver understands just enough GLSL to behave like a real one at the
// boundaries the shader package cares about: a stage compiles when it starts
// with a #version directive, has balanced braces and defines main; linking
// fails when a fragment input has no matching vertex output; uniforms are
// collected from `uniform <type> <name>;` declarations and get locations in
// declaration order.
package shadertest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Faultbox/learngl/internal/engine/shader"
)

var (
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	mainFunc     = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(void)?\s*\)`)
	declaration  = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?(?:flat\s+|smooth\s+|noperspective\s+)?(in|out|uniform)\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*(?:\[(\d+)\])?\s*;`)
)

type decl struct {
	qualifier string
	typ       string
	name      string
	count     int
}

type shaderObject struct {
	stage    shader.Stage
	source   string
	compiled bool
	log      string
	decls    []decl
}

type uniform struct {
	name  string
	typ   string
	count int
	f     []float32
	i     []int32
}

type programObject struct {
	attached []uint32
	linked   bool
	log      string
	uniforms []*uniform
}

// Driver is a fake GL driver. The zero value is not usable; call New.
type Driver struct {
	next     uint32
	shaders  map[uint32]*shaderObject
	programs map[uint32]*programObject
	current  uint32
	errs     []string

	// UseCalls counts UseProgram calls.
	UseCalls int
	// UniformCalls counts uniform uploads, including ones the driver rejected.
	UniformCalls int
}

var _ shader.Driver = (*Driver)(nil)

// New returns an empty driver.
func New() *Driver {
	return &Driver{
		shaders:  make(map[uint32]*shaderObject),
		programs: make(map[uint32]*programObject),
	}
}

// Errors returns the GL errors recorded so far, in order.
func (d *Driver) Errors() []string { return d.errs }

// Current returns the program bound by the last UseProgram.
func (d *Driver) Current() uint32 { return d.current }

// LiveShaders returns the number of shader objects not yet deleted.
func (d *Driver) LiveShaders() int { return len(d.shaders) }

// LivePrograms returns the number of program objects not yet deleted.
func (d *Driver) LivePrograms() int { return len(d.programs) }

// Uniform returns the raw float storage of a uniform, or nil if the program
// or name is unknown. Integer uniforms are converted.
func (d *Driver) Uniform(program uint32, name string) []float32 {
	p := d.programs[program]
	if p == nil {
		return nil
	}
	for _, u := range p.uniforms {
		if u.name != name {
			continue
		}
		if u.f != nil {
			return append([]float32(nil), u.f...)
		}
		out := make([]float32, len(u.i))
		for k, v := range u.i {
			out[k] = float32(v)
		}
		return out
	}
	return nil
}

func (d *Driver) errorf(format string, args ...any) {
	d.errs = append(d.errs, fmt.Sprintf(format, args...))
}

func (d *Driver) alloc() uint32 {
	d.next++
	return d.next
}

func (d *Driver) CreateShader(stage shader.Stage) uint32 {
	if stage != shader.StageVertex && stage != shader.StageFragment {
		d.errorf("CreateShader: invalid enum %d", stage)
		return 0
	}
	id := d.alloc()
	d.shaders[id] = &shaderObject{stage: stage}
	return id
}

func (d *Driver) ShaderSource(sh uint32, source string) {
	s := d.shaders[sh]
	if s == nil {
		d.errorf("ShaderSource: invalid shader %d", sh)
		return
	}
	s.source = source
}

func (d *Driver) CompileShader(sh uint32) {
	s := d.shaders[sh]
	if s == nil {
		d.errorf("CompileShader: invalid shader %d", sh)
		return
	}
	s.compiled, s.log, s.decls = false, "", nil

	src := blockComment.ReplaceAllString(s.source, "")
	src = lineComment.ReplaceAllString(src, "")

	switch {
	case !strings.HasPrefix(strings.TrimSpace(src), "#version"):
		s.log = "0:1(1): error: missing #version directive"
	case strings.Count(src, "{") != strings.Count(src, "}"):
		s.log = fmt.Sprintf("0:%d(1): error: syntax error, unexpected end of file", strings.Count(src, "\n")+1)
	case !mainFunc.MatchString(src):
		s.log = "0:1(1): error: main() function not defined"
	default:
		s.compiled = true
		s.decls = parseDecls(src)
	}
}

func parseDecls(src string) []decl {
	var out []decl
	for _, m := range declaration.FindAllStringSubmatch(src, -1) {
		count := 1
		if n, err := strconv.Atoi(m[4]); err == nil && n > 0 {
			count = n
		}
		out = append(out, decl{qualifier: m[1], typ: m[2], name: m[3], count: count})
	}
	return out
}

func (d *Driver) ShaderCompiled(sh uint32) bool {
	s := d.shaders[sh]
	return s != nil && s.compiled
}

func (d *Driver) ShaderInfoLog(sh uint32) string {
	if s := d.shaders[sh]; s != nil {
		return s.log
	}
	return ""
}

func (d *Driver) DeleteShader(sh uint32) {
	if sh == 0 {
		return
	}
	if _, ok := d.shaders[sh]; !ok {
		d.errorf("DeleteShader: invalid shader %d", sh)
		return
	}
	for _, p := range d.programs {
		for _, a := range p.attached {
			if a == sh {
				d.errorf("DeleteShader: shader %d still attached", sh)
				return
			}
		}
	}
	delete(d.shaders, sh)
}

func (d *Driver) CreateProgram() uint32 {
	id := d.alloc()
	d.programs[id] = &programObject{}
	return id
}

func (d *Driver) AttachShader(program, sh uint32) {
	p := d.programs[program]
	if p == nil || d.shaders[sh] == nil {
		d.errorf("AttachShader: invalid program %d or shader %d", program, sh)
		return
	}
	p.attached = append(p.attached, sh)
}

func (d *Driver) DetachShader(program, sh uint32) {
	p := d.programs[program]
	if p == nil {
		d.errorf("DetachShader: invalid program %d", program)
		return
	}
	for k, a := range p.attached {
		if a == sh {
			p.attached = append(p.attached[:k], p.attached[k+1:]...)
			return
		}
	}
	d.errorf("DetachShader: shader %d not attached to %d", sh, program)
}

func (d *Driver) LinkProgram(program uint32) {
	p := d.programs[program]
	if p == nil {
		d.errorf("LinkProgram: invalid program %d", program)
		return
	}
	p.linked, p.log, p.uniforms = false, "", nil

	var vert, frag *shaderObject
	for _, sh := range p.attached {
		s := d.shaders[sh]
		switch s.stage {
		case shader.StageVertex:
			vert = s
		case shader.StageFragment:
			frag = s
		}
	}
	if vert == nil || frag == nil {
		p.log = "error: program needs both a vertex and a fragment shader"
		return
	}
	if !vert.compiled || !frag.compiled {
		p.log = "error: linking with uncompiled shader"
		return
	}

	outputs := make(map[string]string)
	for _, dc := range vert.decls {
		if dc.qualifier == "out" {
			outputs[dc.name] = dc.typ
		}
	}
	for _, dc := range frag.decls {
		if dc.qualifier != "in" {
			continue
		}
		typ, ok := outputs[dc.name]
		if !ok {
			p.log = fmt.Sprintf("error: fragment shader input `%s' has no matching vertex shader output", dc.name)
			return
		}
		if typ != dc.typ {
			p.log = fmt.Sprintf("error: `%s' declared as type `%s' in vertex shader and `%s' in fragment shader", dc.name, typ, dc.typ)
			return
		}
	}

	var uniforms []*uniform
	seen := make(map[string]*uniform)
	for _, s := range []*shaderObject{vert, frag} {
		for _, dc := range s.decls {
			if dc.qualifier != "uniform" {
				continue
			}
			if u, ok := seen[dc.name]; ok {
				if u.typ != dc.typ {
					p.log = fmt.Sprintf("error: uniform `%s' declared as `%s' and `%s'", dc.name, u.typ, dc.typ)
					return
				}
				continue
			}
			u := newUniform(dc)
			seen[dc.name] = u
			uniforms = append(uniforms, u)
		}
	}

	p.uniforms = uniforms
	p.linked = true
}

func newUniform(dc decl) *uniform {
	u := &uniform{name: dc.name, typ: dc.typ, count: dc.count}
	n := components(dc.typ) * dc.count
	if isIntType(dc.typ) {
		u.i = make([]int32, n)
	} else {
		u.f = make([]float32, n)
	}
	return u
}

func components(typ string) int {
	switch typ {
	case "vec2", "ivec2", "bvec2":
		return 2
	case "vec3", "ivec3", "bvec3":
		return 3
	case "vec4", "ivec4", "bvec4", "mat2":
		return 4
	case "mat3":
		return 9
	case "mat4":
		return 16
	default:
		return 1
	}
}

func isIntType(typ string) bool {
	switch typ {
	case "int", "uint", "bool", "ivec2", "ivec3", "ivec4", "bvec2", "bvec3", "bvec4":
		return true
	}
	return strings.HasPrefix(typ, "sampler") || strings.HasPrefix(typ, "isampler") || strings.HasPrefix(typ, "usampler")
}

func (d *Driver) ProgramLinked(program uint32) bool {
	p := d.programs[program]
	return p != nil && p.linked
}

func (d *Driver) ProgramInfoLog(program uint32) string {
	if p := d.programs[program]; p != nil {
		return p.log
	}
	return ""
}

func (d *Driver) UseProgram(program uint32) {
	d.UseCalls++
	if program != 0 {
		p := d.programs[program]
		if p == nil || !p.linked {
			d.errorf("UseProgram: program %d is not a linked program", program)
			return
		}
	}
	d.current = program
}

func (d *Driver) DeleteProgram(program uint32) {
	if program == 0 {
		return
	}
	if _, ok := d.programs[program]; !ok {
		d.errorf("DeleteProgram: invalid program %d", program)
		return
	}
	delete(d.programs, program)
	if d.current == program {
		d.current = 0
	}
}

func (d *Driver) IsProgram(program uint32) bool {
	_, ok := d.programs[program]
	return ok
}

func (d *Driver) UniformLocation(program uint32, name string) int32 {
	p := d.programs[program]
	if p == nil || !p.linked {
		d.errorf("GetUniformLocation: program %d is not linked", program)
		return -1
	}
	for k, u := range p.uniforms {
		if u.name == name {
			return int32(k)
		}
	}
	return -1
}

// target returns the uniform at loc in the bound program. Location -1 is
// ignored without error, as in GL.
func (d *Driver) target(fn string, loc int32) *uniform {
	d.UniformCalls++
	if loc == -1 {
		return nil
	}
	p := d.programs[d.current]
	if d.current == 0 || p == nil {
		d.errorf("%s: no program bound", fn)
		return nil
	}
	if loc < 0 || int(loc) >= len(p.uniforms) {
		d.errorf("%s: invalid location %d", fn, loc)
		return nil
	}
	return p.uniforms[loc]
}

func (d *Driver) Uniform1i(loc int32, v int32) {
	u := d.target("Uniform1i", loc)
	if u == nil {
		return
	}
	if u.i == nil || components(u.typ) != 1 {
		d.errorf("Uniform1i: type mismatch for %s %s", u.typ, u.name)
		return
	}
	u.i[0] = v
}

func (d *Driver) Uniform1f(loc int32, v float32) {
	u := d.target("Uniform1f", loc)
	if u == nil {
		return
	}
	if u.typ != "float" {
		d.errorf("Uniform1f: type mismatch for %s %s", u.typ, u.name)
		return
	}
	u.f[0] = v
}

func (d *Driver) Uniform3f(loc int32, x, y, z float32) {
	u := d.target("Uniform3f", loc)
	if u == nil {
		return
	}
	if u.typ != "vec3" {
		d.errorf("Uniform3f: type mismatch for %s %s", u.typ, u.name)
		return
	}
	copy(u.f, []float32{x, y, z})
}

func (d *Driver) Uniform4f(loc int32, x, y, z, w float32) {
	u := d.target("Uniform4f", loc)
	if u == nil {
		return
	}
	if u.typ != "vec4" {
		d.errorf("Uniform4f: type mismatch for %s %s", u.typ, u.name)
		return
	}
	copy(u.f, []float32{x, y, z, w})
}

func (d *Driver) UniformMatrix4fv(loc int32, count int32, transpose bool, values []float32) {
	u := d.target("UniformMatrix4fv", loc)
	if u == nil {
		return
	}
	if u.typ != "mat4" {
		d.errorf("UniformMatrix4fv: type mismatch for %s %s", u.typ, u.name)
		return
	}
	if int(count) > u.count {
		d.errorf("UniformMatrix4fv: count %d exceeds array size %d", count, u.count)
		return
	}
	for m := 0; m < int(count); m++ {
		src := values[m*16 : m*16+16]
		dst := u.f[m*16 : m*16+16]
		if !transpose {
			copy(dst, src)
			continue
		}
		for c := 0; c < 4; c++ {
			for r := 0; r < 4; r++ {
				dst[c*4+r] = src[r*4+c]
			}
		}
	}
}

func (d *Driver) GetUniformf(program uint32, loc int32) float32 {
	u := d.lookup("GetUniformfv", program, loc)
	if u == nil {
		return 0
	}
	if u.f != nil {
		return u.f[0]
	}
	return float32(u.i[0])
}

func (d *Driver) GetUniformi(program uint32, loc int32) int32 {
	u := d.lookup("GetUniformiv", program, loc)
	if u == nil {
		return 0
	}
	if u.i != nil {
		return u.i[0]
	}
	return int32(u.f[0])
}

func (d *Driver) lookup(fn string, program uint32, loc int32) *uniform {
	p := d.programs[program]
	if p == nil || !p.linked {
		d.errorf("%s: program %d is not linked", fn, program)
		return nil
	}
	if loc < 0 || int(loc) >= len(p.uniforms) {
		d.errorf("%s: invalid location %d", fn, loc)
		return nil
	}
	return p.uniforms[loc]
}
