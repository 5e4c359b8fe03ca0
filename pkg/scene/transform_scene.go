package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-implicit-raytracer/pkg/core"
	"github.com/df07/go-implicit-raytracer/pkg/geometry"
	"github.com/df07/go-implicit-raytracer/pkg/renderer"
)

// NewTransformScene creates three columns of shapes: each primitive once as
// is and once under a non-uniform, rotated transform
func NewTransformScene() (*Scene, error) {
	s := &Scene{
		Name: "Object Transforms",
		Camera: renderer.CameraConfig{
			Center: core.NewVec3(0.0, -12.0, 6.5),
			LookAt: core.NewVec3(0.0, 0.0, 1.0),
			Up:     core.NewVec3(0.0, 0.0, 1.0),
			Width:  500,
			Height: 300,
			HFov:   45,
		},
		Background: core.NewVec3(0.1, 0.1, 0.12),
	}

	s.Add(NewFloor(0, core.NewVec3(0, 1, 0)))

	ball := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0)
	box := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2.0, 2.0, 2.0))
	cylinder := geometry.NewCylinder(core.NewVec3(0, 0, 0), 1.0, 2.0)

	var b transformBuilder

	// Spheres at x = -3.5
	b.add(s, ball, mgl64.Ident3(), core.NewVec3(-3.5, -2.0, 1.0))
	ellipsoid := mgl64.Rotate3DY(math.Pi / 4).Mul3(scale(0.5, 1.0, 1.5))
	b.add(s, ball, ellipsoid, core.NewVec3(-3.5, 2.0, 1.5))

	// Boxes at x = 0
	b.add(s, box, mgl64.Ident3(), core.NewVec3(0.0, -2.0, 1.0))
	obb := mgl64.Rotate3DZ(math.Pi / 6).Mul3(scale(1.5, 0.5, 1.5))
	b.add(s, box, obb, core.NewVec3(0.0, 2.0, 2.0))

	// Cylinders at x = 3.5
	b.add(s, cylinder, mgl64.Ident3(), core.NewVec3(3.5, -2.0, 1.0))
	tilted := mgl64.Rotate3DZ(math.Pi / 2).Mul3(mgl64.Rotate3DY(math.Pi / 3)).Mul3(scale(0.5, 0.5, 2.0))
	b.add(s, cylinder, tilted, core.NewVec3(3.5, 2.0, 1.5))

	if b.err != nil {
		return nil, b.err
	}

	// Nested wrappers: a small sphere lifted twice above the tilted box
	inner, err := geometry.NewScaling(ball, core.NewVec3(0.4, 0.4, 0.4), core.NewVec3(0, 0, 0))
	if err != nil {
		return nil, err
	}
	s.Add(geometry.NewTranslation(geometry.NewTranslation(inner, core.NewVec3(0, 2.0, 3.0)), core.NewVec3(0, 0, 1.2)))

	return s, nil
}
