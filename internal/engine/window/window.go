// Package window creates the OS window and OpenGL context the shader
// programs render into. SDL2 and GLFW backends are available.
package window

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/engine/input"
	"github.com/Faultbox/learngl/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Context version requested from every backend. 4.1 core is the newest
// macOS offers and matches the go-gl binding in use.
const (
	glMajor = 4
	glMinor = 1
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Hidden     bool
	Backend    string // "sdl" (default) or "glfw"
}

type backend interface {
	swap()
	size() (int, int)
	setTitle(title string)
	poll(dst []input.Event) []input.Event
	close()
}

// Window owns a native window with a current OpenGL context.
type Window struct {
	config  Config
	backend backend
	log     *zap.Logger
}

// New creates a window and makes its OpenGL context current on the calling
// thread.
func New(cfg Config) (*Window, error) {
	log := logger.Named("window")

	var (
		b   backend
		err error
	)
	switch cfg.Backend {
	case "", "sdl":
		b, err = newSDL(cfg, log)
	case "glfw":
		b, err = newGLFW(cfg, log)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	log.Info("window created",
		zap.String("backend", cfg.Backend),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return &Window{config: cfg, backend: b, log: log}, nil
}

// Close destroys the window and shuts the backend down.
func (w *Window) Close() {
	w.log.Info("closing window")
	w.backend.close()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.backend.swap()
}

// GetSize returns the current drawable size.
func (w *Window) GetSize() (int, int) {
	return w.backend.size()
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.backend.setTitle(title)
}

// PollEvents implements input.Source.
func (w *Window) PollEvents(dst []input.Event) []input.Event {
	return w.backend.poll(dst)
}
