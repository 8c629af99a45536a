package shader

import (
	"fmt"

	"go.uber.org/zap"
)

// The setters below write to whichever program is currently bound on the
// context. Call Use on this program before setting its uniforms; the
// location is resolved against this program, the value goes to the bound
// one.
//
// A name the linked program does not expose is a silent no-op that is
// counted in MissingUniforms. Values are passed to the driver unchanged.

// SetBool sets a bool uniform. Use must have been called on p first.
func (p *Program) SetBool(name string, v bool) error {
	var i int32
	if v {
		i = 1
	}
	loc, err := p.location(name)
	if err != nil || loc < 0 {
		return err
	}
	p.drv.Uniform1i(loc, i)
	return nil
}

// SetInt sets an int or sampler uniform. Use must have been called on p first.
func (p *Program) SetInt(name string, v int32) error {
	loc, err := p.location(name)
	if err != nil || loc < 0 {
		return err
	}
	p.drv.Uniform1i(loc, v)
	return nil
}

// SetFloat sets a float uniform. Use must have been called on p first.
func (p *Program) SetFloat(name string, v float32) error {
	loc, err := p.location(name)
	if err != nil || loc < 0 {
		return err
	}
	p.drv.Uniform1f(loc, v)
	return nil
}

// SetVec3 sets a vec3 uniform. Use must have been called on p first.
func (p *Program) SetVec3(name string, x, y, z float32) error {
	loc, err := p.location(name)
	if err != nil || loc < 0 {
		return err
	}
	p.drv.Uniform3f(loc, x, y, z)
	return nil
}

// SetVec4 sets a vec4 uniform. Use must have been called on p first.
func (p *Program) SetVec4(name string, x, y, z, w float32) error {
	loc, err := p.location(name)
	if err != nil || loc < 0 {
		return err
	}
	p.drv.Uniform4f(loc, x, y, z, w)
	return nil
}

// SetMatrix uploads count 4x4 matrices from values, 16 floats each,
// column-major unless transpose is set. Use must have been called on p first.
func (p *Program) SetMatrix(name string, count int32, transpose bool, values []float32) error {
	if count <= 0 || len(values) < int(count)*16 {
		return fmt.Errorf("set %q: %d floats for %d matrices: %w", name, len(values), count, ErrShortMatrix)
	}
	loc, err := p.location(name)
	if err != nil || loc < 0 {
		return err
	}
	p.drv.UniformMatrix4fv(loc, count, transpose, values[:count*16])
	return nil
}

// Float reads back the current value of a float uniform.
func (p *Program) Float(name string) (float32, error) {
	loc, err := p.lookup(name)
	if err != nil {
		return 0, err
	}
	return p.drv.GetUniformf(p.handle, loc), nil
}

// Int reads back the current value of an int, bool or sampler uniform.
func (p *Program) Int(name string) (int32, error) {
	loc, err := p.lookup(name)
	if err != nil {
		return 0, err
	}
	return p.drv.GetUniformi(p.handle, loc), nil
}

// MissingUniforms returns how many setter calls named a uniform the program
// does not expose.
func (p *Program) MissingUniforms() uint64 { return p.missing }

// location resolves name for a setter. A missing uniform yields -1 and a nil
// error.
func (p *Program) location(name string) (int32, error) {
	if !p.Linked() {
		return -1, fmt.Errorf("set %q on %q: %w", name, p.name, ErrInvalidProgram)
	}
	loc := p.drv.UniformLocation(p.handle, name)
	if loc < 0 {
		p.missing++
		if _, seen := p.warned[name]; !seen {
			p.warned[name] = struct{}{}
			p.log.Debug("uniform not found",
				zap.String("program", p.name),
				zap.String("uniform", name),
			)
		}
	}
	return loc, nil
}

func (p *Program) lookup(name string) (int32, error) {
	if !p.Linked() {
		return -1, fmt.Errorf("get %q on %q: %w", name, p.name, ErrInvalidProgram)
	}
	loc := p.drv.UniformLocation(p.handle, name)
	if loc < 0 {
		return -1, fmt.Errorf("get %q on %q: %w", name, p.name, ErrUniformNotFound)
	}
	return loc, nil
}
