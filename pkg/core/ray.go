package core

// CastEpsilon is the smallest ray parameter accepted as a hit.
// Callers pass it as tMin to Shape.Hit to reject self-intersections.
const CastEpsilon = 1e-4

// Ray represents a ray with an origin, a direction and the recursion depth
// of the path that spawned it. Direction is not required to be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Depth     int
}

// NewRay creates a new primary ray (depth 0)
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayWithDepth creates a ray carrying the given recursion depth
func NewRayWithDepth(origin, direction Vec3, depth int) Ray {
	return Ray{Origin: origin, Direction: direction, Depth: depth}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
