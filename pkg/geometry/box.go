package geometry

import (
	"math"

	"github.com/df07/go-implicit-raytracer/pkg/core"
)

// Box represents an axis-aligned box. Rotated boxes are built by wrapping a
// Box in a Transform.
type Box struct {
	Center   core.Vec3 // Center point of the box
	HalfSize core.Vec3 // Half-extents along each axis
}

// NewBox creates a box with the given center and full size along each axis
func NewBox(center, size core.Vec3) *Box {
	return &Box{
		Center:   center,
		HalfSize: size.Multiply(0.5),
	}
}

// Hit tests if a ray intersects with the box using the slab method
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	localOrigin := ray.Origin.Subtract(b.Center)

	tClose, tFar := math.Inf(-1), math.Inf(1)
	closeAxis, farAxis := -1, -1

	for axis := 0; axis < 3; axis++ {
		origin := localOrigin.Axis(axis)
		direction := ray.Direction.Axis(axis)
		half := b.HalfSize.Axis(axis)

		// Parallel to this slab: either always inside it or never
		if math.Abs(direction) < 1e-6 {
			if math.Abs(origin) > half {
				return nil, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (-half - origin) * invDirection
		t1 := (half - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > tClose {
			tClose, closeAxis = t0, axis
		}
		if t1 < tFar {
			tFar, farAxis = t1, axis
		}
	}

	if tClose > tFar {
		return nil, false
	}

	// Entering face first, exiting face when the origin is inside the box
	t, axis, sign := tClose, closeAxis, -1.0
	if !inRange(t, tMin, tMax) {
		t, axis, sign = tFar, farAxis, 1.0
		if !inRange(t, tMin, tMax) {
			return nil, false
		}
	}
	if axis < 0 {
		// Degenerate direction, every slab was parallel
		return nil, false
	}

	var outwardNormal core.Vec3
	faceSign := sign * math.Copysign(1, ray.Direction.Axis(axis))
	switch axis {
	case 0:
		outwardNormal = core.NewVec3(faceSign, 0, 0)
	case 1:
		outwardNormal = core.NewVec3(0, faceSign, 0)
	default:
		outwardNormal = core.NewVec3(0, 0, faceSign)
	}

	hitRecord := &HitRecord{
		T:     t,
		Point: ray.At(t),
	}
	hitRecord.SetOutwardNormal(ray, outwardNormal)

	return hitRecord, true
}
