package geometry

import (
	"math"

	"github.com/df07/go-implicit-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal vector
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(), // Ensure normal is normalized
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	t, ok := intersectPlane(p.Point, p.Normal, ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:     t,
		Point: ray.At(t),
	}
	hitRecord.SetOutwardNormal(ray, p.Normal)

	return hitRecord, true
}

// PlaneUV is a plane that also reports (u, v) surface parameters measured
// from Point along the right and forward directions
type PlaneUV struct {
	Point   core.Vec3
	Normal  core.Vec3
	Forward core.Vec3 // v axis

	right core.Vec3 // u axis, Normal × Forward
}

// NewPlaneUV creates a parameterized plane. forward should not be parallel
// to normal.
func NewPlaneUV(point, normal, forward core.Vec3) *PlaneUV {
	n := normal.Normalize()
	f := forward.Normalize()
	return &PlaneUV{
		Point:   point,
		Normal:  n,
		Forward: f,
		right:   n.Cross(f).Normalize(),
	}
}

// Right returns the u axis of the parameterization
func (p *PlaneUV) Right() core.Vec3 {
	return p.right
}

// Hit tests if a ray intersects with the plane and computes its UV
func (p *PlaneUV) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	t, ok := intersectPlane(p.Point, p.Normal, ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	point := ray.At(t)
	offset := point.Subtract(p.Point)

	hitRecord := &HitRecord{
		T:     t,
		Point: point,
		UV:    &core.Vec2{U: offset.Dot(p.right), V: offset.Dot(p.Forward)},
	}
	hitRecord.SetOutwardNormal(ray, p.Normal)

	return hitRecord, true
}

// intersectPlane solves t = (point - origin)·n / (d·n)
func intersectPlane(point, normal core.Vec3, ray core.Ray, tMin, tMax float64) (float64, bool) {
	denominator := ray.Direction.Dot(normal)

	// Parallel ray, no intersection
	if math.Abs(denominator) <= 1e-6 {
		return 0, false
	}

	t := point.Subtract(ray.Origin).Dot(normal) / denominator
	if !inRange(t, tMin, tMax) {
		return 0, false
	}
	return t, true
}
