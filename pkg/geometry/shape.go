package geometry

import "github.com/df07/go-implicit-raytracer/pkg/core"

// HitRecord contains information about a ray-object intersection.
// A miss is reported as a nil record together with false.
type HitRecord struct {
	T         float64    // Parameter t along the ray
	Point     core.Vec3  // Point of intersection
	Normal    core.Vec3  // Outward unit surface normal
	FrontFace bool       // Whether the ray arrived from the outward side
	UV        *core.Vec2 // Surface parameters, nil if the shape has none
}

// SetOutwardNormal stores the outward normal and records which side of the
// surface the ray came from
func (h *HitRecord) SetOutwardNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.Normal = outwardNormal
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
}

// Shape interface for objects that can be hit by rays.
//
// Hit returns the nearest intersection with tMin < t <= tMax, given a ray in
// the shape's own coordinate space. Callers pass core.CastEpsilon as tMin.
// Implementations are pure functions of the ray and their immutable fields,
// so a shape may be shared by any number of goroutines.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}

// inRange reports whether t is an acceptable hit parameter
func inRange(t, tMin, tMax float64) bool {
	return t > tMin && t <= tMax
}
