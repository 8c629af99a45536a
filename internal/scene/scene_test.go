package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/learngl/internal/engine/camera"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/engine/shader/shadertest"
	"github.com/Faultbox/learngl/pkg/math"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"cubes", "rectangle", "textured"}, Names())

	for _, name := range Names() {
		s, err := New(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}

	_, err := New("teapot")
	assert.Error(t, err)
}

func TestEmbeddedShadersLink(t *testing.T) {
	tests := []struct {
		scene    string
		uniforms []string
	}{
		{"rectangle", []string{"color"}},
		{"textured", []string{"offset", "texture1", "texture2", "mixValue", "tintByVertex"}},
		{"cubes", []string{"model", "view", "projection", "texture1", "texture2", "mixValue", "tint"}},
	}

	for _, tt := range tests {
		t.Run(tt.scene, func(t *testing.T) {
			drv := shadertest.New()
			p, err := LoadProgram(Env{Driver: drv}, tt.scene)
			require.NoError(t, err)
			defer p.Delete()

			assert.Equal(t, tt.scene, p.Name())
			for _, name := range tt.uniforms {
				assert.NotNil(t, drv.Uniform(p.Handle(), name), "uniform %s", name)
			}
		})
	}
}

func TestLoadProgramFromDir(t *testing.T) {
	dir := t.TempDir()
	vert, frag, err := Sources("rectangle")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rectangle.vert"), []byte(vert), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rectangle.frag"), []byte(frag), 0644))

	drv := shadertest.New()
	p, err := LoadProgram(Env{Driver: drv, ShaderDir: dir}, "rectangle")
	require.NoError(t, err)
	defer p.Delete()
	assert.True(t, p.Linked())

	_, err = LoadProgram(Env{Driver: drv, ShaderDir: dir}, "cubes")
	var rerr *shader.SourceReadError
	assert.ErrorAs(t, err, &rerr)
}

func TestSourcesUnknown(t *testing.T) {
	_, _, err := Sources("teapot")
	assert.Error(t, err)
}

func TestQuadUniforms(t *testing.T) {
	drv := shadertest.New()
	p, err := LoadProgram(Env{Driver: drv}, "textured")
	require.NoError(t, err)
	defer p.Delete()

	require.NoError(t, bindSamplers(p))
	st := newTestState()
	st.Offset = 0.25
	st.Tint = true
	require.NoError(t, applyQuadUniforms(p, st))

	assert.Equal(t, []float32{0}, drv.Uniform(p.Handle(), "texture1"))
	assert.Equal(t, []float32{1}, drv.Uniform(p.Handle(), "texture2"))
	assert.Equal(t, []float32{0.2}, drv.Uniform(p.Handle(), "mixValue"))
	assert.Equal(t, []float32{0.25}, drv.Uniform(p.Handle(), "offset"))
	assert.Equal(t, []float32{1}, drv.Uniform(p.Handle(), "tintByVertex"))
	assert.Empty(t, drv.Errors())
}

func TestRectangleColorPulses(t *testing.T) {
	_, g0, _ := rectangleColor(0)
	_, gPeak, _ := rectangleColor(1.5707963)
	assert.InDelta(t, 0.5, g0, 1e-6)
	assert.InDelta(t, 1.0, gPeak, 1e-6)
}

func TestCubeModelPlacesCubes(t *testing.T) {
	for i, pos := range cubePositions {
		m := cubeModel(i, 0)
		origin := m.TransformPoint(math.Vec3{})
		assert.InDelta(t, pos.X, origin.X, 1e-5)
		assert.InDelta(t, pos.Y, origin.Y, 1e-5)
		assert.InDelta(t, pos.Z, origin.Z, 1e-5)
	}
}

func TestCubeModelSpinsEveryThirdCube(t *testing.T) {
	for i := range cubePositions {
		still := cubeModel(i, 0)
		later := cubeModel(i, 2)
		if i%3 == 0 {
			assert.NotEqual(t, still, later, "cube %d should spin", i)
		} else {
			assert.Equal(t, still, later, "cube %d should be static", i)
		}
	}
}

func TestCubeMatricesUpload(t *testing.T) {
	drv := shadertest.New()
	p, err := LoadProgram(Env{Driver: drv}, "cubes")
	require.NoError(t, err)
	defer p.Delete()
	require.NoError(t, p.Use())

	view := camera.NewOrbit(cameraDistance).ViewMatrix()
	projection := cubeProjection(4.0 / 3.0)
	require.NoError(t, p.SetMatrix("view", 1, false, view.Slice()))
	require.NoError(t, p.SetMatrix("projection", 1, false, projection.Slice()))

	got := drv.Uniform(p.Handle(), "view")
	require.Len(t, got, 16)
	assert.InDelta(t, -3, got[14], 1e-5)
	assert.Equal(t, float32(-1), drv.Uniform(p.Handle(), "projection")[11])

	tint := cubeTint(1, true)
	require.NoError(t, p.SetVec3("tint", tint.X, tint.Y, tint.Z))
	assert.Equal(t, []float32{0.6, 1.0, 0.6}, drv.Uniform(p.Handle(), "tint"))
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, cubeTint(1, false))
	assert.Empty(t, drv.Errors())
}
