package geometry

import "github.com/df07/go-implicit-raytracer/pkg/core"

// Group is a list of shapes hit as one by keeping the closest intersection.
// It tests every member; there is no acceleration structure.
type Group struct {
	Shapes []Shape
}

// NewGroup creates a group over shapes
func NewGroup(shapes ...Shape) *Group {
	return &Group{Shapes: shapes}
}

// Hit returns the closest hit among all member shapes
func (g *Group) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestT := tMax

	for _, shape := range g.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestT); isHit {
			closestT = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
