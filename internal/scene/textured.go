package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/engine/mesh"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/engine/texture"
)

// Textured draws a quad blending two textures by State.MixValue and shifted
// horizontally by State.Offset.
type Textured struct {
	program   *shader.Program
	quad      *mesh.Mesh
	container *texture.Texture
	face      *texture.Texture
}

func (t *Textured) Name() string { return "textured" }

func (t *Textured) Init(env Env) error {
	log := env.Log
	if log == nil {
		log = zap.NewNop()
	}

	p, err := LoadProgram(env, "textured")
	if err != nil {
		return err
	}
	t.program = p

	layout, vertices, indices := mesh.TexturedQuad()
	if t.quad, err = mesh.New(layout, vertices, indices); err != nil {
		t.Close()
		return err
	}
	if t.container, err = loadTexture(log, env.Textures.Container); err != nil {
		t.Close()
		return err
	}
	if t.face, err = loadTexture(log, env.Textures.Face); err != nil {
		t.Close()
		return err
	}

	// Sampler units are fixed for the lifetime of the program
	if err := bindSamplers(p); err != nil {
		t.Close()
		return err
	}
	return nil
}

func (t *Textured) Update(*State, float64) {}

func (t *Textured) Render(st *State) error {
	if err := t.program.Use(); err != nil {
		return err
	}
	if err := applyQuadUniforms(t.program, st); err != nil {
		return err
	}
	t.container.Bind(0)
	t.face.Bind(1)
	t.quad.Draw()
	return nil
}

func (t *Textured) Close() {
	if t.face != nil {
		t.face.Delete()
	}
	if t.container != nil {
		t.container.Delete()
	}
	if t.quad != nil {
		t.quad.Delete()
	}
	if t.program != nil {
		t.program.Delete()
	}
}

// bindSamplers points texture1 and texture2 at units 0 and 1.
func bindSamplers(p *shader.Program) error {
	if err := p.Use(); err != nil {
		return err
	}
	if err := p.SetInt("texture1", 0); err != nil {
		return err
	}
	return p.SetInt("texture2", 1)
}

// applyQuadUniforms uploads the per-frame uniforms of the textured quad.
// The program must be in use.
func applyQuadUniforms(p *shader.Program, st *State) error {
	if err := p.SetFloat("mixValue", st.MixValue); err != nil {
		return err
	}
	if err := p.SetFloat("offset", st.Offset); err != nil {
		return err
	}
	return p.SetBool("tintByVertex", st.Tint)
}
