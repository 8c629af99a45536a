package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/engine/camera"
	"github.com/Faultbox/learngl/internal/engine/mesh"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/engine/texture"
	"github.com/Faultbox/learngl/pkg/math"
)

const (
	fieldOfView = 45.0
	nearPlane   = 0.1
	farPlane    = 100.0

	cameraDistance = 3.0
)

// cubePositions are the world positions of the ten cubes.
var cubePositions = []math.Vec3{
	{X: 0.0, Y: 0.0, Z: 0.0},
	{X: 2.0, Y: 5.0, Z: -15.0},
	{X: -1.5, Y: -2.2, Z: -2.5},
	{X: -3.8, Y: -2.0, Z: -12.3},
	{X: 2.4, Y: -0.4, Z: -3.5},
	{X: -1.7, Y: 3.0, Z: -7.5},
	{X: 1.3, Y: -2.0, Z: -2.5},
	{X: 1.5, Y: 2.0, Z: -2.5},
	{X: 1.5, Y: 0.2, Z: -1.5},
	{X: -1.3, Y: 1.0, Z: -1.5},
}

var cubeAxis = math.Vec3{X: 1.0, Y: 0.3, Z: 0.5}

// tintColors cycle across cubes while tinting is on.
var tintColors = []math.Vec3{
	{X: 1.0, Y: 0.6, Z: 0.6},
	{X: 0.6, Y: 1.0, Z: 0.6},
	{X: 0.6, Y: 0.6, Z: 1.0},
}

// Cubes draws ten textured cubes in perspective, each rotating about a
// shared axis at its own rate.
type Cubes struct {
	program   *shader.Program
	cube      *mesh.Mesh
	container *texture.Texture
	face      *texture.Texture
	camera    *camera.Orbit
}

func (c *Cubes) Name() string { return "cubes" }

func (c *Cubes) Init(env Env) error {
	log := env.Log
	if log == nil {
		log = zap.NewNop()
	}

	p, err := LoadProgram(env, "cubes")
	if err != nil {
		return err
	}
	c.program = p
	c.camera = camera.NewOrbit(cameraDistance)

	layout, vertices, indices := mesh.Cube()
	if c.cube, err = mesh.New(layout, vertices, indices); err != nil {
		c.Close()
		return err
	}
	if c.container, err = loadTexture(log, env.Textures.Container); err != nil {
		c.Close()
		return err
	}
	if c.face, err = loadTexture(log, env.Textures.Face); err != nil {
		c.Close()
		return err
	}
	if err := bindSamplers(p); err != nil {
		c.Close()
		return err
	}

	return nil
}

func (c *Cubes) Update(*State, float64) {}

func (c *Cubes) Render(st *State) error {
	p := c.program
	if err := p.Use(); err != nil {
		return err
	}
	if err := p.SetFloat("mixValue", st.MixValue); err != nil {
		return err
	}

	view := c.camera.ViewMatrix()
	projection := cubeProjection(st.Aspect())
	if err := p.SetMatrix("view", 1, false, view.Slice()); err != nil {
		return err
	}
	if err := p.SetMatrix("projection", 1, false, projection.Slice()); err != nil {
		return err
	}

	c.container.Bind(0)
	c.face.Bind(1)

	for i := range cubePositions {
		model := cubeModel(i, st.Elapsed)
		if err := p.SetMatrix("model", 1, false, model.Slice()); err != nil {
			return err
		}
		tint := cubeTint(i, st.Tint)
		if err := p.SetVec3("tint", tint.X, tint.Y, tint.Z); err != nil {
			return err
		}
		c.cube.Draw()
	}
	return nil
}

func (c *Cubes) Close() {
	if c.face != nil {
		c.face.Delete()
	}
	if c.container != nil {
		c.container.Delete()
	}
	if c.cube != nil {
		c.cube.Delete()
	}
	if c.program != nil {
		c.program.Delete()
	}
}

// cubeModel places cube i at its position, rotated 20 degrees per index
// plus a slow spin on every third cube.
func cubeModel(i int, elapsed float64) math.Mat4 {
	angle := float32(20 * i)
	if i%3 == 0 {
		angle += float32(elapsed) * 25
	}
	rotate := math.Rotate(cubeAxis, math.Radians(angle))
	return math.Translate(cubePositions[i]).Mul(rotate)
}

func cubeProjection(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(fieldOfView), aspect, nearPlane, farPlane)
}

func cubeTint(i int, on bool) math.Vec3 {
	if !on {
		return math.Vec3{X: 1, Y: 1, Z: 1}
	}
	return tintColors[i%len(tintColors)]
}
