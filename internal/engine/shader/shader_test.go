package shader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/engine/shader/shadertest"
)

const vertexSrc = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

uniform float offset;

void main() {
	gl_Position = vec4(aPos.x + offset, aPos.y, aPos.z, 1.0);
	TexCoord = aTexCoord;
}
`

const fragmentSrc = `#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D texture1;
uniform sampler2D texture2;
uniform float mixValue;

void main() {
	FragColor = mix(texture(texture1, TexCoord), texture(texture2, TexCoord), mixValue);
}
`

func TestNewFromSourceLinks(t *testing.T) {
	drv := shadertest.New()

	p, err := shader.NewFromSource(drv, vertexSrc, fragmentSrc)
	require.NoError(t, err)
	defer p.Delete()

	assert.Equal(t, shader.StateLinked, p.State())
	assert.NotZero(t, p.Handle())
	assert.True(t, p.Linked())
	assert.NoError(t, p.Err())
	assert.True(t, drv.IsProgram(p.Handle()))
	assert.Zero(t, drv.LiveShaders(), "stage objects must be released after link")
	assert.Empty(t, drv.Errors())
}

func TestCompileErrorNamesStage(t *testing.T) {
	broken := "#version 410 core\nvoid main() {\n"

	tests := []struct {
		name     string
		vertex   string
		fragment string
		stage    shader.Stage
	}{
		{"vertex", broken, fragmentSrc, shader.StageVertex},
		{"fragment", vertexSrc, broken, shader.StageFragment},
		{"missing version", "void main() {}", fragmentSrc, shader.StageVertex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drv := shadertest.New()

			p, err := shader.NewFromSource(drv, tt.vertex, tt.fragment)
			require.Error(t, err)
			require.NotNil(t, p)

			var cerr *shader.CompileError
			require.True(t, errors.As(err, &cerr), "expected CompileError, got %T", err)
			assert.Equal(t, tt.stage, cerr.Stage)
			assert.NotEmpty(t, cerr.Log)
			assert.Contains(t, err.Error(), tt.stage.String())

			assert.Equal(t, shader.StateFailed, p.State())
			assert.Zero(t, p.Handle())
			assert.Equal(t, err, p.Err())
			assert.Zero(t, drv.LiveShaders())
			assert.Zero(t, drv.LivePrograms(), "a failed compile must never reach link")
		})
	}
}

func TestLinkErrorOnInterfaceMismatch(t *testing.T) {
	drv := shadertest.New()
	frag := `#version 410 core
in vec3 vertexColor;
out vec4 FragColor;
void main() { FragColor = vec4(vertexColor, 1.0); }
`

	p, err := shader.NewFromSource(drv, vertexSrc, frag)
	require.Error(t, err)

	var lerr *shader.LinkError
	require.True(t, errors.As(err, &lerr), "expected LinkError, got %T", err)
	assert.NotEmpty(t, lerr.Log)
	assert.Contains(t, lerr.Log, "vertexColor")

	assert.Equal(t, shader.StateFailed, p.State())
	assert.Zero(t, p.Handle())
	assert.Zero(t, drv.LiveShaders())
	assert.Zero(t, drv.LivePrograms(), "failed program object must be deleted")
	assert.Empty(t, drv.Errors())
}

func TestNewReadsFiles(t *testing.T) {
	dir := t.TempDir()
	vertPath := filepath.Join(dir, "shader.vert")
	fragPath := filepath.Join(dir, "shader.frag")
	require.NoError(t, os.WriteFile(vertPath, []byte(vertexSrc), 0644))
	require.NoError(t, os.WriteFile(fragPath, []byte(fragmentSrc), 0644))

	drv := shadertest.New()
	p, err := shader.New(drv, vertPath, fragPath)
	require.NoError(t, err)
	defer p.Delete()

	assert.Equal(t, shader.StateLinked, p.State())
	assert.Equal(t, vertPath+"+"+fragPath, p.Name())
}

func TestNewSourceReadError(t *testing.T) {
	dir := t.TempDir()
	vertPath := filepath.Join(dir, "shader.vert")
	require.NoError(t, os.WriteFile(vertPath, []byte(vertexSrc), 0644))

	tests := []struct {
		name  string
		vert  string
		frag  string
		stage shader.Stage
	}{
		{"vertex missing", filepath.Join(dir, "nope.vert"), vertPath, shader.StageVertex},
		{"fragment missing", vertPath, filepath.Join(dir, "nope.frag"), shader.StageFragment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drv := shadertest.New()

			p, err := shader.New(drv, tt.vert, tt.frag)
			require.Error(t, err)

			var rerr *shader.SourceReadError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, tt.stage, rerr.Stage)
			assert.True(t, errors.Is(err, os.ErrNotExist))

			assert.Equal(t, shader.StateFailed, p.State())
			assert.Zero(t, drv.LiveShaders(), "nothing may be compiled after a read failure")
			assert.Zero(t, drv.LivePrograms())
		})
	}
}

func TestNewFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/quad.vert": {Data: []byte(vertexSrc)},
		"shaders/quad.frag": {Data: []byte(fragmentSrc)},
	}
	drv := shadertest.New()

	p, err := shader.NewFromFS(drv, fsys, "shaders/quad.vert", "shaders/quad.frag", shader.WithName("quad"))
	require.NoError(t, err)
	defer p.Delete()
	assert.Equal(t, "quad", p.Name())
	assert.True(t, p.Linked())

	_, err = shader.NewFromFS(drv, fsys, "shaders/quad.vert", "shaders/missing.frag")
	var rerr *shader.SourceReadError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, shader.StageFragment, rerr.Stage)
}

func TestUseFailedProgram(t *testing.T) {
	drv := shadertest.New()
	p, err := shader.NewFromSource(drv, "garbage", fragmentSrc)
	require.Error(t, err)

	err = p.Use()
	assert.ErrorIs(t, err, shader.ErrInvalidProgram)
	assert.Zero(t, drv.UseCalls, "sentinel handle must not reach the driver")
}

func TestUseBindsProgram(t *testing.T) {
	drv := shadertest.New()
	p, err := shader.NewFromSource(drv, vertexSrc, fragmentSrc)
	require.NoError(t, err)
	defer p.Delete()

	require.NoError(t, p.Use())
	assert.Equal(t, p.Handle(), drv.Current())
}

func TestDeleteReleasesOnce(t *testing.T) {
	drv := shadertest.New()
	p, err := shader.NewFromSource(drv, vertexSrc, fragmentSrc)
	require.NoError(t, err)

	handle := p.Handle()
	p.Delete()
	assert.False(t, drv.IsProgram(handle))
	assert.Zero(t, p.Handle())
	assert.ErrorIs(t, p.Err(), shader.ErrDeleted)

	p.Delete()
	assert.Empty(t, drv.Errors(), "second Delete must not reach the driver")

	assert.ErrorIs(t, p.Use(), shader.ErrInvalidProgram)
}

func TestDeleteFailedProgram(t *testing.T) {
	drv := shadertest.New()
	p, _ := shader.NewFromSource(drv, vertexSrc, "broken")
	p.Delete()
	assert.Empty(t, drv.Errors())
}

func TestIndependentPrograms(t *testing.T) {
	drv := shadertest.New()

	a, err := shader.NewFromSource(drv, vertexSrc, fragmentSrc)
	require.NoError(t, err)
	defer a.Delete()
	b, err := shader.NewFromSource(drv, vertexSrc, fragmentSrc)
	require.NoError(t, err)
	defer b.Delete()

	assert.NotEqual(t, a.Handle(), b.Handle())

	require.NoError(t, a.Use())
	require.NoError(t, a.SetFloat("mixValue", 0.75))
	require.NoError(t, b.Use())
	require.NoError(t, b.SetFloat("mixValue", 0.25))

	av, err := a.Float("mixValue")
	require.NoError(t, err)
	bv, err := b.Float("mixValue")
	require.NoError(t, err)
	assert.Equal(t, float32(0.75), av)
	assert.Equal(t, float32(0.25), bv)
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "uninitialized", shader.StateUninitialized.String())
	assert.Equal(t, "compiling", shader.StateCompiling.String())
	assert.Equal(t, "failed", shader.StateFailed.String())
	assert.Equal(t, "linked", shader.StateLinked.String())
	assert.Equal(t, "vertex", shader.StageVertex.String())
	assert.Equal(t, "fragment", shader.StageFragment.String())
}
