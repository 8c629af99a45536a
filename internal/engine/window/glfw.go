package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/engine/input"
)

type glfwBackend struct {
	window  *glfw.Window
	pending []input.Event
}

func newGLFW(cfg Config, log *zap.Logger) (*glfwBackend, error) {
	log.Debug("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwInit failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, glMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, glMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwCreateWindow failed: %w", err)
	}
	w.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	b := &glfwBackend{window: w}
	w.SetFramebufferSizeCallback(b.onFramebufferSize)
	w.SetKeyCallback(b.onKey)
	w.SetCursorPosCallback(b.onCursorPos)
	w.SetMouseButtonCallback(b.onMouseButton)
	return b, nil
}

func (b *glfwBackend) close() {
	b.window.Destroy()
	glfw.Terminate()
}

func (b *glfwBackend) swap() {
	b.window.SwapBuffers()
}

func (b *glfwBackend) size() (int, int) {
	return b.window.GetFramebufferSize()
}

func (b *glfwBackend) setTitle(title string) {
	b.window.SetTitle(title)
}

// poll runs the GLFW event loop; callbacks fill pending, which is handed
// over and reset.
func (b *glfwBackend) poll(dst []input.Event) []input.Event {
	glfw.PollEvents()
	dst = append(dst, b.pending...)
	b.pending = b.pending[:0]
	if b.window.ShouldClose() {
		dst = append(dst, input.Event{Type: input.EventQuit})
	}
	return dst
}

func (b *glfwBackend) onFramebufferSize(_ *glfw.Window, width, height int) {
	b.pending = append(b.pending, input.Event{
		Type:   input.EventWindowResize,
		Width:  width,
		Height: height,
	})
}

func (b *glfwBackend) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	var typ input.EventType
	switch action {
	case glfw.Press:
		typ = input.EventKeyDown
	case glfw.Release:
		typ = input.EventKeyUp
	default:
		return
	}
	b.pending = append(b.pending, input.Event{Type: typ, Key: glfwKey(key)})
}

func (b *glfwBackend) onCursorPos(_ *glfw.Window, x, y float64) {
	b.pending = append(b.pending, input.Event{
		Type:   input.EventMouseMove,
		MouseX: int(x),
		MouseY: int(y),
	})
}

func (b *glfwBackend) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	x, y := w.GetCursorPos()
	typ := input.EventMouseUp
	if action == glfw.Press {
		typ = input.EventMouseDown
	}
	b.pending = append(b.pending, input.Event{
		Type:   typ,
		MouseX: int(x),
		MouseY: int(y),
		Button: uint8(button) + 1,
	})
}

func glfwKey(k glfw.Key) input.Key {
	switch k {
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeyUp:
		return input.KeyUp
	case glfw.KeyDown:
		return input.KeyDown
	case glfw.KeyLeft:
		return input.KeyLeft
	case glfw.KeyRight:
		return input.KeyRight
	case glfw.KeyW:
		return input.KeyW
	case glfw.KeySpace:
		return input.KeySpace
	case glfw.KeyR:
		return input.KeyR
	case glfw.KeyP:
		return input.KeyP
	default:
		return input.KeyUnknown
	}
}
