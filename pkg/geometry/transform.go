package geometry

import (
	"fmt"

	"github.com/df07/go-implicit-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform places a shape in the world with an affine map
// p_world = M * p_local + Translation, without modifying the shape.
// Transforms may wrap other transforms.
type Transform struct {
	Shape       Shape
	Translation core.Vec3

	inverse          mgl64.Mat3
	inverseTranspose mgl64.Mat3 // maps local normals to world normals
}

// NewTransform wraps shape with the given linear map and translation.
// It fails with ErrSingularTransform if the map cannot be inverted.
func NewTransform(shape Shape, linear mgl64.Mat3, translation core.Vec3) (*Transform, error) {
	if core.IsSingular(linear) {
		return nil, fmt.Errorf("%w: determinant %g", ErrSingularTransform, linear.Det())
	}

	inverse := linear.Inv()
	return &Transform{
		Shape:            shape,
		Translation:      translation,
		inverse:          inverse,
		inverseTranspose: inverse.Transpose(),
	}, nil
}

// NewTranslation wraps shape with a pure translation
func NewTranslation(shape Shape, offset core.Vec3) *Transform {
	t, _ := NewTransform(shape, mgl64.Ident3(), offset)
	return t
}

// NewScaling wraps shape with a per-axis scale followed by a translation
func NewScaling(shape Shape, scale, translation core.Vec3) (*Transform, error) {
	return NewTransform(shape, mgl64.Diag3(core.ToMgl(scale)), translation)
}

// Hit moves the ray into the shape's local space, intersects it there and
// maps the result back to world space
func (tr *Transform) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	localOrigin := core.MulMat3(tr.inverse, ray.Origin.Subtract(tr.Translation))
	localDirection := core.MulMat3(tr.inverse, ray.Direction)

	// The local ray travels scale units per world parameter unit. The shape
	// sees a unit direction, so its parameters divide by scale to get back
	// to the world ray's parameter.
	scale := localDirection.Length()
	if scale == 0 {
		return nil, false
	}
	localRay := core.NewRayWithDepth(localOrigin, localDirection.Multiply(1.0/scale), ray.Depth)

	localHit, ok := tr.Shape.Hit(localRay, tMin*scale, tMax*scale)
	if !ok {
		return nil, false
	}

	t := localHit.T / scale
	if !inRange(t, tMin, tMax) {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:     t,
		Point: ray.At(t), // from the world ray, not a round trip through the map
	}
	if localHit.UV != nil {
		uv := *localHit.UV
		hitRecord.UV = &uv
	}

	// Normals are covectors: they map by the inverse transpose
	worldNormal := core.MulMat3(tr.inverseTranspose, localHit.Normal).Normalize()
	hitRecord.SetOutwardNormal(ray, worldNormal)

	return hitRecord, true
}
