package scene

import (
	"github.com/Faultbox/learngl/internal/config"
	"github.com/Faultbox/learngl/internal/engine/input"
)

// Rates applied while the matching keys are held, per second.
const (
	mixRate    = 1.0
	offsetRate = 0.5
	maxOffset  = 0.5
)

// State is the per-frame data input writes and scenes read.
type State struct {
	MixValue  float32
	Offset    float32
	Tint      bool
	Wireframe bool
	Elapsed   float64
	Width     int
	Height    int
	Quit      bool

	initialMix    float32
	initialOffset float32
}

// NewState returns the starting state for a framebuffer of the given size.
func NewState(cfg config.SceneConfig, width, height int) *State {
	return &State{
		MixValue:      clamp(cfg.MixValue, 0, 1),
		Offset:        clamp(cfg.Offset, -maxOffset, maxOffset),
		Wireframe:     cfg.Wireframe,
		Width:         width,
		Height:        height,
		initialMix:    clamp(cfg.MixValue, 0, 1),
		initialOffset: clamp(cfg.Offset, -maxOffset, maxOffset),
	}
}

// Keys is the key state HandleInput reads.
type Keys interface {
	IsKeyDown(key input.Key) bool
	IsKeyPressed(key input.Key) bool
}

// HandleInput applies one frame of key state.
//
//	Escape       quit
//	Up / Down    raise / lower the texture mix
//	Left / Right move the quad
//	W            toggle wireframe
//	Space        toggle vertex colour tint
//	R            reset mix and offset
func (s *State) HandleInput(keys Keys, dt float64) {
	if keys.IsKeyPressed(input.KeyEscape) {
		s.Quit = true
	}

	step := float32(dt)
	if keys.IsKeyDown(input.KeyUp) {
		s.MixValue = clamp(s.MixValue+mixRate*step, 0, 1)
	}
	if keys.IsKeyDown(input.KeyDown) {
		s.MixValue = clamp(s.MixValue-mixRate*step, 0, 1)
	}
	if keys.IsKeyDown(input.KeyRight) {
		s.Offset = clamp(s.Offset+offsetRate*step, -maxOffset, maxOffset)
	}
	if keys.IsKeyDown(input.KeyLeft) {
		s.Offset = clamp(s.Offset-offsetRate*step, -maxOffset, maxOffset)
	}

	if keys.IsKeyPressed(input.KeyW) {
		s.Wireframe = !s.Wireframe
	}
	if keys.IsKeyPressed(input.KeySpace) {
		s.Tint = !s.Tint
	}
	if keys.IsKeyPressed(input.KeyR) {
		s.MixValue = s.initialMix
		s.Offset = s.initialOffset
	}
}

// Resize records a new framebuffer size. Zero sizes (minimised windows) are
// ignored.
func (s *State) Resize(width, height int) {
	if width > 0 && height > 0 {
		s.Width, s.Height = width, height
	}
}

// Aspect returns width/height, or 1 before a size is known.
func (s *State) Aspect() float32 {
	if s.Height == 0 {
		return 1
	}
	return float32(s.Width) / float32(s.Height)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
