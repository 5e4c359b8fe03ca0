package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-implicit-raytracer/pkg/core"
	"github.com/df07/go-implicit-raytracer/pkg/geometry"
	"github.com/df07/go-implicit-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	Shapes     []geometry.Shape // Objects in the scene
	Camera     renderer.CameraConfig
	Background core.Vec3
}

// Hit returns the closest intersection with any shape in the scene
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
	group := geometry.Group{Shapes: s.Shapes}
	return group.Hit(ray, tMin, tMax)
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// GetPrimitiveCount returns the number of top-level shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// NewFloor creates a checkered floor plane at height z with the given
// checker orientation
func NewFloor(z float64, forward core.Vec3) *geometry.PlaneUV {
	return geometry.NewPlaneUV(core.NewVec3(0, 0, z), core.NewVec3(0, 0, 1), forward)
}

// transformBuilder collects the first error from a sequence of transform
// constructions so scene builders can stay linear
type transformBuilder struct {
	err error
}

func (b *transformBuilder) add(s *Scene, shape geometry.Shape, linear mgl64.Mat3, translation core.Vec3) {
	if b.err != nil {
		return
	}
	tr, err := geometry.NewTransform(shape, linear, translation)
	if err != nil {
		b.err = err
		return
	}
	s.Add(tr)
}

// scale returns a diagonal scaling matrix
func scale(x, y, z float64) mgl64.Mat3 {
	return mgl64.Diag3(mgl64.Vec3{x, y, z})
}
