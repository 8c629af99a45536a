package scene

import (
	"math"

	"github.com/Faultbox/learngl/internal/engine/mesh"
	"github.com/Faultbox/learngl/internal/engine/shader"
)

// Rectangle draws an indexed quad in a single colour whose green channel
// pulses with time.
type Rectangle struct {
	program *shader.Program
	quad    *mesh.Mesh
}

func (r *Rectangle) Name() string { return "rectangle" }

func (r *Rectangle) Init(env Env) error {
	p, err := LoadProgram(env, "rectangle")
	if err != nil {
		return err
	}
	layout, vertices, indices := mesh.Rectangle()
	m, err := mesh.New(layout, vertices, indices)
	if err != nil {
		p.Delete()
		return err
	}
	r.program, r.quad = p, m
	return nil
}

func (r *Rectangle) Update(*State, float64) {}

func (r *Rectangle) Render(st *State) error {
	if err := r.program.Use(); err != nil {
		return err
	}
	red, green, blue := rectangleColor(st.Elapsed)
	if err := r.program.SetVec4("color", red, green, blue, 1); err != nil {
		return err
	}
	r.quad.Draw()
	return nil
}

func (r *Rectangle) Close() {
	if r.quad != nil {
		r.quad.Delete()
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// rectangleColor returns the quad colour at the given time in seconds.
func rectangleColor(elapsed float64) (r, g, b float32) {
	return 0.2, float32(math.Sin(elapsed)/2 + 0.5), 0.3
}
