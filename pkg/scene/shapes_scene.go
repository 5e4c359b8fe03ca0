package scene

import (
	"github.com/df07/go-implicit-raytracer/pkg/core"
	"github.com/df07/go-implicit-raytracer/pkg/geometry"
	"github.com/df07/go-implicit-raytracer/pkg/renderer"
)

// NewShapesScene creates a cylinder and a box standing on a diagonal
// checkered floor
func NewShapesScene() *Scene {
	s := &Scene{
		Name: "Shapes",
		Camera: renderer.CameraConfig{
			Center: core.NewVec3(12, 0, 5),
			LookAt: core.NewVec3(0, 0, 1.5),
			Up:     core.NewVec3(0, 0, 1),
			Width:  400,
			Height: 300,
			HFov:   35,
		},
		Background: core.NewVec3(0.1, 0.1, 0.12),
	}

	s.Add(
		geometry.NewCylinder(core.NewVec3(0, -2.2, 1.5), 1.2, 3.0),
		geometry.NewBox(core.NewVec3(0, 2.2, 1.0), core.NewVec3(2.0, 2.0, 2.0)),
		NewFloor(0, core.NewVec3(1, 1, 0)),
	)

	return s
}
