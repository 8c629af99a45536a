package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/learngl/internal/config"
	"github.com/Faultbox/learngl/internal/engine/input"
)

// keys is a fixed key state for one frame.
type keys struct {
	down    map[input.Key]bool
	pressed map[input.Key]bool
}

func held(k ...input.Key) keys {
	s := keys{down: map[input.Key]bool{}, pressed: map[input.Key]bool{}}
	for _, key := range k {
		s.down[key] = true
	}
	return s
}

func tapped(k ...input.Key) keys {
	s := held(k...)
	for _, key := range k {
		s.pressed[key] = true
	}
	return s
}

func (k keys) IsKeyDown(key input.Key) bool    { return k.down[key] }
func (k keys) IsKeyPressed(key input.Key) bool { return k.pressed[key] }

func newTestState() *State {
	return NewState(config.Default().Scene, 800, 600)
}

func TestNewStateClampsConfig(t *testing.T) {
	st := NewState(config.SceneConfig{MixValue: 3, Offset: -2, Wireframe: true}, 640, 480)
	assert.Equal(t, float32(1), st.MixValue)
	assert.Equal(t, float32(-0.5), st.Offset)
	assert.True(t, st.Wireframe)
	assert.InDelta(t, 640.0/480.0, st.Aspect(), 1e-6)
}

func TestMixValueFollowsHeldKeys(t *testing.T) {
	st := newTestState()
	assert.Equal(t, float32(0.2), st.MixValue)

	st.HandleInput(held(input.KeyUp), 0.25)
	assert.InDelta(t, 0.45, st.MixValue, 1e-6)

	st.HandleInput(held(input.KeyDown), 0.1)
	assert.InDelta(t, 0.35, st.MixValue, 1e-6)
}

func TestMixValueClamped(t *testing.T) {
	st := newTestState()

	for i := 0; i < 100; i++ {
		st.HandleInput(held(input.KeyUp), 0.1)
	}
	assert.Equal(t, float32(1), st.MixValue)

	for i := 0; i < 100; i++ {
		st.HandleInput(held(input.KeyDown), 0.1)
	}
	assert.Equal(t, float32(0), st.MixValue)
}

func TestOffsetClamped(t *testing.T) {
	st := newTestState()

	st.HandleInput(held(input.KeyRight), 0.5)
	assert.InDelta(t, 0.25, st.Offset, 1e-6)

	st.HandleInput(held(input.KeyRight), 10)
	assert.Equal(t, float32(0.5), st.Offset)

	st.HandleInput(held(input.KeyLeft), 10)
	assert.Equal(t, float32(-0.5), st.Offset)
}

func TestTogglesOnPressOnly(t *testing.T) {
	st := newTestState()

	st.HandleInput(tapped(input.KeyW, input.KeySpace), 0.016)
	assert.True(t, st.Wireframe)
	assert.True(t, st.Tint)

	// Holding the keys on later frames does not toggle again
	st.HandleInput(held(input.KeyW, input.KeySpace), 0.016)
	assert.True(t, st.Wireframe)
	assert.True(t, st.Tint)

	st.HandleInput(tapped(input.KeyW), 0.016)
	assert.False(t, st.Wireframe)
}

func TestResetRestoresInitialValues(t *testing.T) {
	st := newTestState()
	st.HandleInput(held(input.KeyUp, input.KeyRight), 0.3)
	assert.NotEqual(t, float32(0.2), st.MixValue)

	st.HandleInput(tapped(input.KeyR), 0.016)
	assert.Equal(t, float32(0.2), st.MixValue)
	assert.Equal(t, float32(0), st.Offset)
}

func TestEscapeQuits(t *testing.T) {
	st := newTestState()
	st.HandleInput(held(input.KeyEscape), 0.016)
	assert.False(t, st.Quit)

	st.HandleInput(tapped(input.KeyEscape), 0.016)
	assert.True(t, st.Quit)
}

func TestResizeIgnoresZero(t *testing.T) {
	st := newTestState()
	st.Resize(0, 0)
	assert.Equal(t, 800, st.Width)

	st.Resize(1024, 512)
	assert.Equal(t, float32(2), st.Aspect())

	assert.Equal(t, float32(1), (&State{}).Aspect())
}
