// Package surfaces provides scalar fields for implicit surfaces: classic
// algebraic surfaces and an adapter for sdfx signed distance functions.
package surfaces

import (
	"github.com/df07/go-implicit-raytracer/pkg/core"
	"github.com/df07/go-implicit-raytracer/pkg/geometry"
)

// SphereField is x² + y² + z² - r²
type SphereField struct {
	Radius float64
}

// Evaluate implements geometry.ScalarField
func (f SphereField) Evaluate(p core.Vec3) float64 {
	return p.LengthSquared() - f.Radius*f.Radius
}

// TorusField is a torus around the Z axis:
// (x² + y² + z² + R² - r²)² - 4R²(x² + y²)
type TorusField struct {
	Major float64 // Distance from the center to the tube center
	Minor float64 // Tube radius
}

// Evaluate implements geometry.ScalarField
func (f TorusField) Evaluate(p core.Vec3) float64 {
	majorSq := f.Major * f.Major
	q := p.LengthSquared() + majorSq - f.Minor*f.Minor
	return q*q - 4*majorSq*(p.X*p.X+p.Y*p.Y)
}

// MitchellField is Mitchell's quartic surface:
// 4(x⁴ + (y² + z²)² + 17x²(y² + z²)) - 20(x² + y² + z²) + 17
type MitchellField struct{}

// Evaluate implements geometry.ScalarField
func (MitchellField) Evaluate(p core.Vec3) float64 {
	x2 := p.X * p.X
	y2 := p.Y * p.Y
	z2 := p.Z * p.Z
	yz := y2 + z2

	return 4.0*(x2*x2+yz*yz+17.0*x2*yz) - 20.0*(x2+y2+z2) + 17.0
}

// HeartField is Taubin's heart surface with Z up:
// (x² + 9/4 y² + z² - 1)³ - x²z³ - 9/80 y²z³
type HeartField struct{}

// Evaluate implements geometry.ScalarField
func (HeartField) Evaluate(p core.Vec3) float64 {
	x2 := p.X * p.X
	y2 := p.Y * p.Y
	z2 := p.Z * p.Z
	z3 := z2 * p.Z

	base := x2 + 2.25*y2 + z2 - 1.0
	return base*base*base - x2*z3 - 0.1125*y2*z3
}

// NewSphereSurface creates an implicit sphere of the given radius
func NewSphereSurface(radius float64) (*geometry.ImplicitSurface, error) {
	bound := radius * 1.1
	return geometry.NewImplicitSurface(
		SphereField{Radius: radius},
		core.NewVec3(bound, bound, bound),
		geometry.DefaultStepSize,
		geometry.DefaultMaxBisectionSteps,
	)
}

// NewTorusSurface creates an implicit torus lying in the XY plane
func NewTorusSurface(major, minor float64) (*geometry.ImplicitSurface, error) {
	extent := (major + minor) * 1.05
	height := minor * 1.05
	// Thin tubes need a finer march than the default
	step := min(geometry.DefaultStepSize, minor/4)
	return geometry.NewImplicitSurface(
		TorusField{Major: major, Minor: minor},
		core.NewVec3(extent, extent, height),
		step,
		geometry.DefaultMaxBisectionSteps,
	)
}

// NewMitchellSurface creates Mitchell's surface with its usual bounds
func NewMitchellSurface() (*geometry.ImplicitSurface, error) {
	return geometry.NewImplicitSurface(
		MitchellField{},
		core.NewVec3(2.5, 2.5, 2.5),
		0.02,
		geometry.DefaultMaxBisectionSteps,
	)
}

// NewHeartSurface creates the heart surface with its usual bounds
func NewHeartSurface() (*geometry.ImplicitSurface, error) {
	return geometry.NewImplicitSurface(
		HeartField{},
		core.NewVec3(1.5, 1.5, 1.5),
		0.02,
		geometry.DefaultMaxBisectionSteps,
	)
}
