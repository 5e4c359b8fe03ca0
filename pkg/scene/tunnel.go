package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-implicit-raytracer/pkg/core"
	"github.com/df07/go-implicit-raytracer/pkg/geometry"
	"github.com/df07/go-implicit-raytracer/pkg/renderer"
)

// NewTunnelScene creates two thin walls built from flattened boxes with
// spheres and a tilted cylinder between them
func NewTunnelScene() (*Scene, error) {
	s := &Scene{
		Name: "Tunnel",
		Camera: renderer.CameraConfig{
			Center: core.NewVec3(0.0, -8.0, 5.0),
			LookAt: core.NewVec3(0.0, 15.0, 1.5),
			Up:     core.NewVec3(0.0, 0.0, 1.0),
			Width:  500,
			Height: 400,
			HFov:   60,
		},
		Background: core.NewVec3(0.01, 0.01, 0.01),
	}

	s.Add(NewFloor(0, core.NewVec3(0, 1, 0)))

	wall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2.0, 2.0, 2.0))
	var b transformBuilder
	b.add(s, wall, scale(12.0, 0.1, 12.0), core.NewVec3(0.0, 20.0, 10.0))
	b.add(s, wall, scale(12.0, 0.1, 12.0), core.NewVec3(0.0, -12.0, 10.0))

	s.Add(
		geometry.NewSphere(core.NewVec3(-3.5, 0.0, 2.0), 2.0),
		geometry.NewSphere(core.NewVec3(4.0, 8.0, 2.5), 2.5),
	)

	cylinder := geometry.NewCylinder(core.NewVec3(0, 0, 0), 1.0, 2.0)
	tilt := mgl64.Rotate3DX(math.Pi / 2).Mul3(mgl64.Rotate3DZ(math.Pi / 6)).Mul3(scale(1.2, 1.2, 4.0))
	b.add(s, cylinder, tilt, core.NewVec3(1.5, 4.0, 1.2))

	if b.err != nil {
		return nil, b.err
	}
	return s, nil
}
