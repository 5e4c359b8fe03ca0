package core

import "math"

// parallelEpsilon is the direction component below which a ray is treated
// as parallel to a slab
const parallelEpsilon = 1e-6

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewCenteredAABB creates an AABB centered at the origin with the given half-extents
func NewCenteredAABB(halfExtents Vec3) AABB {
	return AABB{Min: halfExtents.Negate(), Max: halfExtents}
}

// Hit tests if a ray intersects with this AABB inside [tMin, tMax]
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	_, _, ok := aabb.Clip(ray, tMin, tMax)
	return ok
}

// Clip intersects the parameter range [tMin, tMax] with the part of the ray
// inside the box using the slab method. Pass -Inf/+Inf to get the raw
// entry and exit parameters.
func (aabb AABB) Clip(ray Ray, tMin, tMax float64) (float64, float64, bool) {
	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis)
		max := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Ray parallel to this slab: only valid if the origin is inside it
		if math.Abs(direction) < parallelEpsilon {
			if origin < min || origin > max {
				return 0, 0, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, 0, false
		}
	}

	return tMin, tMax, true
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}
