package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-implicit-raytracer/pkg/core"
)

const (
	// DefaultStepSize is the marching step used when none is configured
	DefaultStepSize = 0.05
	// DefaultMaxBisectionSteps is the number of halvings per bracket
	DefaultMaxBisectionSteps = 20
	// GradientOffset is the central-difference offset for surface normals
	GradientOffset = 1e-4
)

// ScalarField is a function of 3D position whose zero level set is a surface.
// Points where Evaluate is <= 0 are inside.
type ScalarField interface {
	Evaluate(p core.Vec3) float64
}

// FieldFunc adapts an ordinary function to the ScalarField interface
type FieldFunc func(p core.Vec3) float64

// Evaluate calls f(p)
func (f FieldFunc) Evaluate(p core.Vec3) float64 {
	return f(p)
}

// ImplicitSurface intersects rays with the zero set of a scalar field by
// marching the ray through a bounding box and refining the first sign change
// with bisection.
//
// Features thinner than StepSize can be skipped, and rays tangent to the
// surface produce no sign change; both are reported as misses.
type ImplicitSurface struct {
	Field             ScalarField
	Bounds            core.Vec3 // Half-extents of the search box, centered at the local origin
	StepSize          float64
	MaxBisectionSteps int

	box core.AABB
}

// NewImplicitSurface creates an implicit surface over field
func NewImplicitSurface(field ScalarField, bounds core.Vec3, stepSize float64, maxBisectionSteps int) (*ImplicitSurface, error) {
	if field == nil {
		return nil, fmt.Errorf("%w: nil field", ErrInvalidSurface)
	}
	if !(bounds.X > 0 && bounds.Y > 0 && bounds.Z > 0) || !bounds.IsFinite() {
		return nil, fmt.Errorf("%w: bounds must be positive and finite, got %v", ErrInvalidSurface, bounds)
	}
	if !(stepSize > 0) || math.IsInf(stepSize, 1) {
		return nil, fmt.Errorf("%w: step size must be positive, got %g", ErrInvalidSurface, stepSize)
	}
	if maxBisectionSteps < 0 {
		return nil, fmt.Errorf("%w: bisection steps must not be negative, got %d", ErrInvalidSurface, maxBisectionSteps)
	}

	return &ImplicitSurface{
		Field:             field,
		Bounds:            bounds,
		StepSize:          stepSize,
		MaxBisectionSteps: maxBisectionSteps,
		box:               core.NewCenteredAABB(bounds),
	}, nil
}

// Hit finds the nearest zero crossing of the field along the ray
func (s *ImplicitSurface) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	tIn, tOut, ok := s.box.Clip(ray, math.Inf(-1), math.Inf(1))
	if !ok || tOut < tMin {
		return nil, false
	}
	tIn = math.Max(tIn, tMin)
	tOut = math.Min(tOut, tMax)
	// A zero-length direction never leaves the box
	if tIn > tOut || math.IsInf(tOut, 0) {
		return nil, false
	}

	t, found := s.march(ray, tIn, tOut, tMin)
	if !found || !inRange(t, tMin, tMax) {
		return nil, false
	}

	point := ray.At(t)
	gradient := NumericalGradient(s.Field, point, GradientOffset)
	length := gradient.Length()
	// Flat or singular point of the field: drop the hit rather than
	// return an unusable normal
	if !(length > 0) || math.IsInf(length, 0) {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:     t,
		Point: point,
	}
	hitRecord.SetOutwardNormal(ray, gradient.Multiply(1.0/length))

	return hitRecord, true
}

// march walks [tIn, tOut] in StepSize increments and refines the first
// bracket where the field changes sign. A sample exactly on the surface at
// or below tMin is not a bracket, since its root could never be reported.
func (s *ImplicitSurface) march(ray core.Ray, tIn, tOut, tMin float64) (float64, bool) {
	f := func(t float64) float64 {
		return s.Field.Evaluate(ray.At(t))
	}

	tCurrent := tIn
	fCurrent := f(tCurrent)

	for tCurrent < tOut {
		tNext := tCurrent + s.StepSize
		if tNext > tOut {
			tNext = tOut
		}
		if tNext <= tCurrent {
			// Step too small to advance at this magnitude
			return 0, false
		}

		fNext := f(tNext)
		onLowerBound := fCurrent == 0 && tCurrent <= tMin
		if fCurrent*fNext <= 0 && !onLowerBound {
			return Bisect(f, tCurrent, tNext, fCurrent, s.MaxBisectionSteps), true
		}

		tCurrent = tNext
		fCurrent = fNext
	}

	return 0, false
}

// Bisect refines a bracket [ta, tb] of f, where fa = f(ta) and f(tb) has the
// opposite sign or is zero. The endpoint ta always keeps the sign of fa, so
// the bracket straddles the root after every step. It returns ta after at
// most steps halvings, or the midpoint as soon as f is exactly zero there.
func Bisect(f func(float64) float64, ta, tb, fa float64, steps int) float64 {
	if fa == 0 {
		return ta
	}
	for i := 0; i < steps; i++ {
		tMid := (ta + tb) * 0.5
		fMid := f(tMid)

		if fMid == 0 {
			return tMid
		}
		if fa*fMid < 0 {
			tb = tMid
		} else {
			ta = tMid
			fa = fMid
		}
	}
	return ta
}

// NumericalGradient estimates the gradient of field at p with central
// differences of offset h along each axis
func NumericalGradient(field ScalarField, p core.Vec3, h float64) core.Vec3 {
	dx := field.Evaluate(core.NewVec3(p.X+h, p.Y, p.Z)) - field.Evaluate(core.NewVec3(p.X-h, p.Y, p.Z))
	dy := field.Evaluate(core.NewVec3(p.X, p.Y+h, p.Z)) - field.Evaluate(core.NewVec3(p.X, p.Y-h, p.Z))
	dz := field.Evaluate(core.NewVec3(p.X, p.Y, p.Z+h)) - field.Evaluate(core.NewVec3(p.X, p.Y, p.Z-h))
	return core.NewVec3(dx, dy, dz).Multiply(1.0 / (2 * h))
}
