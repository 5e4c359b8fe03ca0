package geometry

import (
	"math"

	"github.com/df07/go-implicit-raytracer/pkg/core"
)

// Cylinder represents a finite capped cylinder whose axis is parallel to Z.
// Other orientations are built by wrapping it in a Transform.
type Cylinder struct {
	Center core.Vec3
	Radius float64

	// Cached derived values
	halfHeight float64
}

// NewCylinder creates a new cylinder centered at center with the given height
func NewCylinder(center core.Vec3, radius, height float64) *Cylinder {
	return &Cylinder{
		Center:     center,
		Radius:     radius,
		halfHeight: height * 0.5,
	}
}

// Height returns the distance between the two caps
func (c *Cylinder) Height() float64 {
	return c.halfHeight * 2
}

// Hit tests if a ray intersects with the cylinder side or either cap
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	o := ray.Origin.Subtract(c.Center)
	d := ray.Direction
	radiusSq := c.Radius * c.Radius

	closest := tMax
	var outwardNormal core.Vec3
	hit := false

	// Side: (ox + t dx)² + (oy + t dy)² = r²
	a := d.X*d.X + d.Y*d.Y
	if math.Abs(a) > 1e-6 {
		b := 2.0 * (o.X*d.X + o.Y*d.Y)
		cc := o.X*o.X + o.Y*o.Y - radiusSq
		discriminant := b*b - 4*a*cc

		if discriminant >= 0 {
			sqrtD := math.Sqrt(discriminant)
			inv2a := 1.0 / (2.0 * a)

			for _, t := range [2]float64{(-b - sqrtD) * inv2a, (-b + sqrtD) * inv2a} {
				if !inRange(t, tMin, closest) {
					continue
				}
				z := o.Z + t*d.Z
				if z < -c.halfHeight || z > c.halfHeight {
					continue
				}
				closest = t
				hit = true
				outwardNormal = core.NewVec3(o.X+t*d.X, o.Y+t*d.Y, 0).Normalize()
				break
			}
		}
	}

	// Caps: discs at z = ±halfHeight
	if math.Abs(d.Z) > 1e-6 {
		invDz := 1.0 / d.Z
		caps := [2]struct {
			z      float64
			normal core.Vec3
		}{
			{-c.halfHeight, core.NewVec3(0, 0, -1)},
			{c.halfHeight, core.NewVec3(0, 0, 1)},
		}

		for _, cp := range caps {
			t := (cp.z - o.Z) * invDz
			if !inRange(t, tMin, closest) {
				continue
			}
			px := o.X + t*d.X
			py := o.Y + t*d.Y
			if px*px+py*py <= radiusSq {
				closest = t
				hit = true
				outwardNormal = cp.normal
			}
		}
	}

	if !hit {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:     closest,
		Point: ray.At(closest),
	}
	hitRecord.SetOutwardNormal(ray, outwardNormal)

	return hitRecord, true
}
