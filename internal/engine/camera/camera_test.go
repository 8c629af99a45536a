package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/learngl/pkg/math"
)

func TestDefaultViewMatchesTranslate(t *testing.T) {
	c := NewOrbit(3)
	view := c.ViewMatrix()
	want := math.Translate(math.Vec3{Z: -3})

	for i := range want {
		assert.InDelta(t, want[i], view[i], 1e-5, "element %d", i)
	}
}

func TestPositionKeepsDistance(t *testing.T) {
	c := NewOrbit(5)
	c.Center = math.Vec3{X: 1, Y: 2, Z: 3}
	c.Pitch, c.Yaw = 0.4, -1.2

	offset := c.Position().Sub(c.Center)
	assert.InDelta(t, 5, offset.Length(), 1e-4)
}

func TestViewMovesCenterToOrigin(t *testing.T) {
	c := NewOrbit(4)
	c.Center = math.Vec3{X: 2, Y: -1, Z: 0}
	c.Yaw = 0.7

	p := c.ViewMatrix().TransformPoint(c.Center)
	assert.InDelta(t, 0, p.X, 1e-5)
	assert.InDelta(t, 0, p.Y, 1e-5)
	assert.InDelta(t, -4, p.Z, 1e-4)
}
