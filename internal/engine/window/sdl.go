package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/engine/input"
)

type sdlBackend struct {
	window    *sdl.Window
	glContext sdl.GLContext
}

func newSDL(cfg Config, log *zap.Logger) (*sdlBackend, error) {
	log.Debug("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Attributes must be set before the window is created
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, glMajor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, glMinor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if cfg.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	}

	b := &sdlBackend{}
	var err error
	b.window, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	b.glContext, err = b.window.GLCreateContext()
	if err != nil {
		b.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	return b, nil
}

func (b *sdlBackend) close() {
	if b.glContext != nil {
		sdl.GLDeleteContext(b.glContext)
	}
	if b.window != nil {
		b.window.Destroy()
	}
	sdl.Quit()
}

func (b *sdlBackend) swap() {
	b.window.GLSwap()
}

func (b *sdlBackend) size() (int, int) {
	w, h := b.window.GLGetDrawableSize()
	return int(w), int(h)
}

func (b *sdlBackend) setTitle(title string) {
	b.window.SetTitle(title)
}

func (b *sdlBackend) poll(dst []input.Event) []input.Event {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			dst = append(dst, input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				dst = append(dst, input.Event{
					Type:   input.EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			typ := input.EventKeyUp
			if e.Type == sdl.KEYDOWN {
				typ = input.EventKeyDown
			}
			dst = append(dst, input.Event{Type: typ, Key: sdlKey(e.Keysym.Scancode)})

		case *sdl.MouseMotionEvent:
			dst = append(dst, input.Event{
				Type:   input.EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseButtonEvent:
			typ := input.EventMouseUp
			if e.Type == sdl.MOUSEBUTTONDOWN {
				typ = input.EventMouseDown
			}
			dst = append(dst, input.Event{
				Type:   typ,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})
		}
	}
	return dst
}

func sdlKey(sc sdl.Scancode) input.Key {
	switch sc {
	case sdl.SCANCODE_ESCAPE:
		return input.KeyEscape
	case sdl.SCANCODE_UP:
		return input.KeyUp
	case sdl.SCANCODE_DOWN:
		return input.KeyDown
	case sdl.SCANCODE_LEFT:
		return input.KeyLeft
	case sdl.SCANCODE_RIGHT:
		return input.KeyRight
	case sdl.SCANCODE_W:
		return input.KeyW
	case sdl.SCANCODE_SPACE:
		return input.KeySpace
	case sdl.SCANCODE_R:
		return input.KeyR
	case sdl.SCANCODE_P:
		return input.KeyP
	default:
		return input.KeyUnknown
	}
}
