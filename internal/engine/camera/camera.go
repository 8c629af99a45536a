// Package camera provides the viewpoint of the 3D scenes.
package camera

import (
	gomath "math"

	"github.com/Faultbox/learngl/pkg/math"
)

// Orbit looks at Center from Distance away, placed by spherical angles.
type Orbit struct {
	Center math.Vec3

	Distance float32
	Pitch    float32 // radians, positive looks down
	Yaw      float32 // radians, 0 sits on +Z
}

// NewOrbit returns a camera at distance on the +Z axis looking at the
// origin.
func NewOrbit(distance float32) *Orbit {
	return &Orbit{Distance: distance}
}

// Position returns the camera position in world space.
func (c *Orbit) Position() math.Vec3 {
	pitch, yaw := float64(c.Pitch), float64(c.Yaw)
	x := c.Distance * float32(gomath.Cos(pitch)*gomath.Sin(yaw))
	y := c.Distance * float32(gomath.Sin(pitch))
	z := c.Distance * float32(gomath.Cos(pitch)*gomath.Cos(yaw))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *Orbit) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.Center, up)
}
