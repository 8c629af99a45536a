// Package scene implements the tutorial programs: a flat rectangle, a
// textured quad and a set of rotating cubes.
package scene

import (
	"fmt"
	"image/color"
	"io/fs"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/config"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/engine/texture"
	"github.com/Faultbox/learngl/internal/scene/shaders"
)

// Scene is one tutorial program. Init, Render and Close need a current GL
// context; Update does not touch the driver.
type Scene interface {
	Name() string
	Init(env Env) error
	Update(st *State, dt float64)
	Render(st *State) error
	Close()
}

// Env carries what scenes need from the outside.
type Env struct {
	Driver shader.Driver
	// ShaderDir, when set, is read with shader.New instead of the embedded
	// sources.
	ShaderDir string
	Textures  config.TexturesConfig
	Log       *zap.Logger
}

var registry = map[string]func() Scene{
	"rectangle": func() Scene { return &Rectangle{} },
	"textured":  func() Scene { return &Textured{} },
	"cubes":     func() Scene { return &Cubes{} },
}

// New returns an uninitialised scene by name.
func New(name string) (Scene, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (want one of %v)", name, Names())
	}
	return ctor(), nil
}

// Names lists the registered scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadProgram builds the <name>.vert/<name>.frag program, from env.ShaderDir
// when set and from the embedded sources otherwise.
func LoadProgram(env Env, name string) (*shader.Program, error) {
	log := env.Log
	if log == nil {
		log = zap.NewNop()
	}
	opts := []shader.Option{shader.WithName(name), shader.WithLogger(log)}

	var (
		p   *shader.Program
		err error
	)
	if env.ShaderDir != "" {
		p, err = shader.New(env.Driver,
			filepath.Join(env.ShaderDir, name+".vert"),
			filepath.Join(env.ShaderDir, name+".frag"),
			opts...)
	} else {
		p, err = shader.NewFromFS(env.Driver, shaders.FS, name+".vert", name+".frag", opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", name, err)
	}
	return p, nil
}

// Sources returns the embedded stage sources of a scene, for tools that
// compile them outside a scene.
func Sources(name string) (vertex, fragment string, err error) {
	v, err := fs.ReadFile(shaders.FS, name+".vert")
	if err != nil {
		return "", "", err
	}
	f, err := fs.ReadFile(shaders.FS, name+".frag")
	if err != nil {
		return "", "", err
	}
	return string(v), string(f), nil
}

// loadTexture uploads the image at path, or a checkerboard if it cannot be
// read so the scene still renders.
func loadTexture(log *zap.Logger, path string) (*texture.Texture, error) {
	img, err := texture.Load(path)
	if err != nil {
		log.Warn("failed to load texture, using placeholder", zap.String("path", path), zap.Error(err))
		img = texture.Checkerboard(64, 8,
			color.NRGBA{R: 255, G: 0, B: 255, A: 255},
			color.NRGBA{R: 32, G: 32, B: 32, A: 255})
	}
	return texture.Upload(img, texture.DefaultParams())
}
