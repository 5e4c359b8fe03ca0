package core

import "github.com/go-gl/mathgl/mgl64"

// SingularTolerance is the determinant magnitude below which a 3x3 linear
// map is treated as non-invertible
const SingularTolerance = 1e-8

// ToMgl converts a Vec3 into a mathgl vector
func ToMgl(v Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromMgl converts a mathgl vector into a Vec3
func FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// MulMat3 applies the linear map m to v
func MulMat3(m mgl64.Mat3, v Vec3) Vec3 {
	return FromMgl(m.Mul3x1(ToMgl(v)))
}

// IsSingular reports whether m has a (near-)zero determinant
func IsSingular(m mgl64.Mat3) bool {
	det := m.Det()
	return !(det > SingularTolerance || det < -SingularTolerance)
}
