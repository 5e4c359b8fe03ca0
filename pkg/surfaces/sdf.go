package surfaces

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/df07/go-implicit-raytracer/pkg/core"
	"github.com/df07/go-implicit-raytracer/pkg/geometry"
)

// Compile-time interface check.
var _ geometry.ScalarField = SDFField{}

// SDFField wraps an sdfx signed distance function as a scalar field.
// Negative distances are inside the solid, matching the implicit surface
// convention.
type SDFField struct {
	SDF sdf.SDF3
}

// Evaluate implements geometry.ScalarField
func (f SDFField) Evaluate(p core.Vec3) float64 {
	return f.SDF.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z})
}

// SDFBounds returns half-extents of a box centered at the origin that
// contains the SDF's bounding box, padded by margin on every side
func SDFBounds(s sdf.SDF3, margin float64) core.Vec3 {
	bb := s.BoundingBox()
	box := core.NewAABB(
		core.NewVec3(bb.Min.X, bb.Min.Y, bb.Min.Z),
		core.NewVec3(bb.Max.X, bb.Max.Y, bb.Max.Z),
	)
	// The search box is centered on the local origin, so it has to reach
	// the far side of an off-center solid
	return box.Center().Abs().
		Add(box.Size().Multiply(0.5)).
		Add(core.NewVec3(margin, margin, margin))
}

// NewSDFSurface creates an implicit surface from an sdfx solid. The search
// box is derived from the solid's bounding box.
func NewSDFSurface(s sdf.SDF3, stepSize float64, maxBisectionSteps int) (*geometry.ImplicitSurface, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil sdf", geometry.ErrInvalidSurface)
	}
	return geometry.NewImplicitSurface(SDFField{SDF: s}, SDFBounds(s, stepSize), stepSize, maxBisectionSteps)
}
