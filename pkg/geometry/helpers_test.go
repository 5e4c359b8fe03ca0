package geometry

import (
	"math"

	"github.com/df07/go-implicit-raytracer/pkg/core"
)

const eps = core.CastEpsilon

// Helper function for approximate equality
func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

// Helper function for approximate vector equality
func approxEqualVec(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

// rayProbe records the last ray it was asked to intersect
type rayProbe struct {
	inner    Shape
	lastRay  core.Ray
	lastTMin float64
}

func (p *rayProbe) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	p.lastRay = ray
	p.lastTMin = tMin
	return p.inner.Hit(ray, tMin, tMax)
}
