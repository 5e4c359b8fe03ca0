package scene

import (
	"fmt"

	"github.com/df07/go-implicit-raytracer/pkg/core"
	"github.com/df07/go-implicit-raytracer/pkg/renderer"
	"github.com/df07/go-implicit-raytracer/pkg/surfaces"
)

// NewAlgebraicScene creates the heart and Mitchell surfaces side by side over
// a checkered floor
func NewAlgebraicScene() (*Scene, error) {
	s := &Scene{
		Name: "Algebraic Surfaces",
		Camera: renderer.CameraConfig{
			Center: core.NewVec3(0.0, -10.0, 1.5),
			LookAt: core.NewVec3(0.0, 0.0, 0.5),
			Up:     core.NewVec3(0.0, 0.0, 1.0),
			Width:  400,
			Height: 300,
			HFov:   45,
		},
		Background: core.NewVec3(0.05, 0.05, 0.05),
	}

	s.Add(NewFloor(-1.5, core.NewVec3(0, 1, 0)))

	heart, err := surfaces.NewHeartSurface()
	if err != nil {
		return nil, fmt.Errorf("heart surface: %w", err)
	}
	mitchell, err := surfaces.NewMitchellSurface()
	if err != nil {
		return nil, fmt.Errorf("mitchell surface: %w", err)
	}

	var b transformBuilder
	b.add(s, heart, scale(1.2, 1.2, 1.2), core.NewVec3(-2.0, 0.0, 0.0))
	b.add(s, mitchell, scale(1.0, 1.0, 1.0), core.NewVec3(2.0, 0.0, 0.0))
	if b.err != nil {
		return nil, b.err
	}

	return s, nil
}
