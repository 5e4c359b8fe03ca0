package renderer

import (
	"math"

	"github.com/df07/go-implicit-raytracer/pkg/core"
)

// CameraConfig describes a pinhole camera
type CameraConfig struct {
	Center core.Vec3 // Eye position
	LookAt core.Vec3 // Point the camera looks at
	Up     core.Vec3 // Approximate up direction
	Width  int       // Image width in pixels
	Height int       // Image height in pixels
	HFov   float64   // Horizontal field of view in degrees
}

// Camera generates unit-direction primary rays through pixel centers
type Camera struct {
	config CameraConfig

	u, v, w core.Vec3 // right, up and backward basis
	su, sv  float64   // view plane size at distance 1
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	su := 2 * math.Tan(config.HFov*math.Pi/180/2)
	sv := su * float64(config.Height) / float64(config.Width)

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Normalize().Cross(w).Normalize()
	v := w.Cross(u).Normalize()

	return &Camera{
		config: config,
		u:      u,
		v:      v,
		w:      w,
		su:     su,
		sv:     sv,
	}
}

// Forward returns the viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}

// GetRay returns the primary ray through the center of pixel (i, j), where
// row 0 is the top of the image
func (c *Camera) GetRay(i, j int) core.Ray {
	x := (float64(i) + 0.5) / float64(c.config.Width)
	y := 1 - (float64(j)+0.5)/float64(c.config.Height)

	// Point on the view plane one unit in front of the eye
	offset := c.u.Multiply(c.su*x - c.su/2).
		Add(c.v.Multiply(c.sv*y - c.sv/2)).
		Subtract(c.w)

	return core.NewRay(c.config.Center, offset.Normalize())
}
