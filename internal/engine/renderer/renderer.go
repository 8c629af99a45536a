// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Info describes the context the renderer is running on.
type Info struct {
	Version  string
	Renderer string
	GLSL     string
}

// Renderer owns the global GL state shared by every scene.
type Renderer struct {
	config    Config
	info      Info
	wireframe bool
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.info = Info{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
	logger.Info("OpenGL initialized",
		zap.String("version", r.info.Version),
		zap.String("renderer", r.info.Renderer),
		zap.String("glsl", r.info.GLSL),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Info returns the driver strings read at startup.
func (r *Renderer) Info() Info { return r.info }

// Close restores the fill mode. Scenes release their own objects.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		r.wireframe = false
	}
}

// Resize updates the viewport. Zero sizes are ignored.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Begin starts a new frame, clearing colour and depth and switching the
// polygon mode when wireframe changed.
func (r *Renderer) Begin(wireframe bool) {
	if wireframe != r.wireframe {
		if wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}
		r.wireframe = wireframe
	}
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ReadPixels returns the current framebuffer as tightly packed RGBA rows,
// bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// End finishes the frame and logs any pending GL errors.
func (r *Renderer) End() {
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		logger.Warn("OpenGL error", zap.String("code", fmt.Sprintf("0x%04X", code)))
	}
}
