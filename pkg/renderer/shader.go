package renderer

import (
	"math"

	"github.com/df07/go-implicit-raytracer/pkg/core"
	"github.com/df07/go-implicit-raytracer/pkg/geometry"
)

// Shader turns a hit record into a linear RGB color. Shaders must be safe
// for concurrent use.
type Shader interface {
	Shade(ray core.Ray, hit *geometry.HitRecord) core.Vec3
}

// NormalShader maps the outward normal to RGB, (n + 1) / 2
type NormalShader struct{}

// Shade implements Shader
func (NormalShader) Shade(ray core.Ray, hit *geometry.HitRecord) core.Vec3 {
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}

// HeadlightShader lights surfaces from the eye with a Lambert term.
// Surfaces with UV parameters get a checkerboard.
type HeadlightShader struct {
	Color       core.Vec3
	Ambient     float64
	CheckerSize float64 // Checker square size in UV units, 0 disables it
}

// NewHeadlightShader returns a light grey shader with a unit checkerboard
func NewHeadlightShader() HeadlightShader {
	return HeadlightShader{
		Color:       core.NewVec3(0.8, 0.8, 0.8),
		Ambient:     0.1,
		CheckerSize: 1.0,
	}
}

// Shade implements Shader
func (s HeadlightShader) Shade(ray core.Ray, hit *geometry.HitRecord) core.Vec3 {
	normal := hit.Normal
	if !hit.FrontFace {
		normal = normal.Negate()
	}
	lambert := math.Max(0, -ray.Direction.Normalize().Dot(normal))
	color := s.Color.Multiply(s.Ambient + (1-s.Ambient)*lambert)

	if hit.UV != nil && s.CheckerSize > 0 {
		cu := int(math.Floor(hit.UV.U / s.CheckerSize))
		cv := int(math.Floor(hit.UV.V / s.CheckerSize))
		if (cu+cv)%2 != 0 {
			color = color.Multiply(0.25)
		}
	}

	return color
}

// ShaderByName returns the shader registered under name
func ShaderByName(name string) (Shader, bool) {
	switch name {
	case "normal":
		return NormalShader{}, true
	case "headlight":
		return NewHeadlightShader(), true
	default:
		return nil, false
	}
}
