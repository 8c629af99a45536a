// Package app implements the main loop: it owns the window, the renderer and
// the active scene.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/config"
	"github.com/Faultbox/learngl/internal/engine/debug"
	"github.com/Faultbox/learngl/internal/engine/input"
	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader/gldriver"
	"github.com/Faultbox/learngl/internal/engine/window"
	"github.com/Faultbox/learngl/internal/logger"
	"github.com/Faultbox/learngl/internal/scene"
)

// App is the running program.
type App struct {
	config   *config.Config
	log      *zap.Logger
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    scene.Scene
	state    *scene.State
	stats    frameStats
	shots    *debug.Screenshots
}

// New opens the window, initialises OpenGL and the configured scene.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")
	log.Info("initializing",
		zap.String("scene", cfg.Scene.Name),
		zap.String("backend", cfg.Window.Backend),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{
		config: cfg,
		log:    log,
		input:  input.New(),
		shots:  debug.NewScreenshots(cfg.Debug.ScreenshotDir, cfg.Scene.Name),
	}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Backend:    cfg.Window.Backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.GetSize()

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.scene, err = scene.New(cfg.Scene.Name)
	if err != nil {
		a.Close()
		return nil, err
	}
	err = a.scene.Init(scene.Env{
		Driver:    gldriver.New(),
		ShaderDir: cfg.Shaders.Dir,
		Textures:  cfg.Textures,
		Log:       logger.Named("scene"),
	})
	if err != nil {
		a.scene = nil
		a.Close()
		return nil, fmt.Errorf("failed to initialize scene %s: %w", cfg.Scene.Name, err)
	}

	a.state = scene.NewState(cfg.Scene, width, height)

	log.Info("initialized successfully")
	return a, nil
}

// Run drives the loop until the window closes or Escape is pressed.
func (a *App) Run() error {
	lastTime := time.Now()
	a.stats.reset(lastTime)

	a.log.Info("starting main loop")

	for {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update(a.window) {
			return nil
		}
		for _, event := range a.input.Events() {
			if event.Type == input.EventWindowResize {
				a.state.Resize(event.Width, event.Height)
				a.renderer.Resize(event.Width, event.Height)
			}
		}
		a.state.HandleInput(a.input, dt)
		if a.state.Quit {
			return nil
		}

		// 2. Update
		a.state.Elapsed += dt
		a.scene.Update(a.state, dt)

		// 3. Render
		a.renderer.Begin(a.state.Wireframe)
		if err := a.scene.Render(a.state); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if a.input.IsKeyPressed(input.KeyP) {
			a.screenshot()
		}
		a.renderer.End()

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		if fps, ok := a.stats.frame(now); ok {
			a.log.Debug("fps", zap.Int("count", fps), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			a.window.SetTitle(fmt.Sprintf("%s [%s] %d fps", a.config.Window.Title, a.scene.Name(), fps))
		}
	}
}

// screenshot saves the frame just rendered, before it is swapped out.
func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.SavePixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the scene, the renderer and the window in that order.
func (a *App) Close() {
	a.log.Info("closing")

	if a.scene != nil {
		a.scene.Close()
		a.scene = nil
	}
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}

// frameStats counts frames over one-second windows.
type frameStats struct {
	start  time.Time
	frames int
}

func (s *frameStats) reset(now time.Time) {
	s.start = now
	s.frames = 0
}

// frame records a frame and reports the count once a second has passed.
func (s *frameStats) frame(now time.Time) (int, bool) {
	s.frames++
	if now.Sub(s.start) < time.Second {
		return 0, false
	}
	fps := s.frames
	s.reset(now)
	return fps, true
}
