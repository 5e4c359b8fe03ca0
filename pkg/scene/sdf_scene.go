package scene

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-implicit-raytracer/pkg/core"
	"github.com/df07/go-implicit-raytracer/pkg/geometry"
	"github.com/df07/go-implicit-raytracer/pkg/renderer"
	"github.com/df07/go-implicit-raytracer/pkg/surfaces"
)

// NewCSGSolid builds the classic CSG test part: the intersection of a rounded
// cube and a sphere with three orthogonal bores removed
func NewCSGSolid() (sdf.SDF3, error) {
	cube, err := sdf.Box3D(v3.Vec{X: 2.4, Y: 2.4, Z: 2.4}, 0.1)
	if err != nil {
		return nil, fmt.Errorf("cube: %w", err)
	}
	ball, err := sdf.Sphere3D(1.6)
	if err != nil {
		return nil, fmt.Errorf("sphere: %w", err)
	}
	bore, err := sdf.Cylinder3D(3.0, 0.6, 0)
	if err != nil {
		return nil, fmt.Errorf("bore: %w", err)
	}

	bores := sdf.Union3D(
		bore,
		sdf.Transform3D(bore, sdf.RotateX(math.Pi/2)),
		sdf.Transform3D(bore, sdf.RotateY(math.Pi/2)),
	)
	return sdf.Difference3D(sdf.Intersect3D(cube, ball), bores), nil
}

// NewSDFScene creates the CSG solid and a torus, both evaluated as implicit
// surfaces, over a checkered floor
func NewSDFScene() (*Scene, error) {
	s := &Scene{
		Name: "SDF Solids",
		Camera: renderer.CameraConfig{
			Center: core.NewVec3(6.0, -8.0, 4.5),
			LookAt: core.NewVec3(0.0, 0.0, 1.0),
			Up:     core.NewVec3(0.0, 0.0, 1.0),
			Width:  400,
			Height: 300,
			HFov:   40,
		},
		Background: core.NewVec3(0.08, 0.08, 0.1),
	}

	s.Add(NewFloor(0, core.NewVec3(1, 0, 0)))

	solid, err := NewCSGSolid()
	if err != nil {
		return nil, err
	}
	part, err := surfaces.NewSDFSurface(solid, 0.02, geometry.DefaultMaxBisectionSteps)
	if err != nil {
		return nil, fmt.Errorf("csg surface: %w", err)
	}
	s.Add(geometry.NewTranslation(part, core.NewVec3(-1.5, 0, 1.25)))

	torus, err := surfaces.NewTorusSurface(1.0, 0.35)
	if err != nil {
		return nil, fmt.Errorf("torus surface: %w", err)
	}
	var b transformBuilder
	b.add(s, torus, mgl64.Rotate3DX(math.Pi/3), core.NewVec3(2.0, 0.5, 1.3))
	if b.err != nil {
		return nil, b.err
	}

	return s, nil
}
