package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-implicit-raytracer/pkg/core"
)

func sphereField(radius float64) FieldFunc {
	return func(p core.Vec3) float64 {
		return p.LengthSquared() - radius*radius
	}
}

func mustImplicit(t *testing.T, field ScalarField, bounds core.Vec3, step float64, steps int) *ImplicitSurface {
	t.Helper()
	surface, err := NewImplicitSurface(field, bounds, step, steps)
	if err != nil {
		t.Fatalf("NewImplicitSurface: %v", err)
	}
	return surface
}

func TestNewImplicitSurface_Validation(t *testing.T) {
	field := sphereField(1)
	bounds := core.NewVec3(1, 1, 1)

	tests := []struct {
		name   string
		field  ScalarField
		bounds core.Vec3
		step   float64
		steps  int
	}{
		{"nil field", nil, bounds, 0.05, 20},
		{"zero bound", field, core.NewVec3(1, 0, 1), 0.05, 20},
		{"negative bound", field, core.NewVec3(-1, 1, 1), 0.05, 20},
		{"infinite bound", field, core.NewVec3(math.Inf(1), 1, 1), 0.05, 20},
		{"zero step", field, bounds, 0, 20},
		{"NaN step", field, bounds, math.NaN(), 20},
		{"negative bisection steps", field, bounds, 0.05, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface, err := NewImplicitSurface(tt.field, tt.bounds, tt.step, tt.steps)
			if !errors.Is(err, ErrInvalidSurface) {
				t.Errorf("Expected ErrInvalidSurface, got %v", err)
			}
			if surface != nil {
				t.Error("Expected nil surface on error")
			}
		})
	}
}

func TestImplicitSurface_MatchesAnalyticSphere(t *testing.T) {
	const step = 0.05
	const steps = 20
	surface := mustImplicit(t, sphereField(1), core.NewVec3(1.5, 1.5, 1.5), step, steps)
	sphere := NewSphere(core.Vec3{}, 1)

	offsets := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(0.3, 0, 0),
		core.NewVec3(0, -0.5, 0),
		core.NewVec3(0.4, 0.6, 0),
		core.NewVec3(-0.7, 0.2, 0),
	}

	// Bracket width over 2^steps bounds the bisection error
	tolerance := step / math.Pow(2, steps)

	for _, offset := range offsets {
		ray := core.NewRay(core.NewVec3(offset.X, offset.Y, 5), core.NewVec3(0, 0, -1))

		want, ok := sphere.Hit(ray, eps, math.Inf(1))
		if !ok {
			t.Fatalf("analytic sphere missed ray at offset %v", offset)
		}
		got, ok := surface.Hit(ray, eps, math.Inf(1))
		if !ok {
			t.Fatalf("Expected implicit hit at offset %v, got miss", offset)
		}

		if got.T > want.T+1e-12 || want.T-got.T > tolerance+1e-12 {
			t.Errorf("offset %v: expected t just below %.9f, got %.9f", offset, want.T, got.T)
		}
		if !approxEqualVec(got.Normal, want.Normal, 1e-6) {
			t.Errorf("offset %v: expected normal %v, got %v", offset, want.Normal, got.Normal)
		}
		if !approxEqual(got.Normal.Length(), 1, 1e-12) {
			t.Errorf("offset %v: expected unit normal, got length %f", offset, got.Normal.Length())
		}
		if !got.FrontFace {
			t.Errorf("offset %v: expected front face hit", offset)
		}
	}
}

func TestImplicitSurface_Hit_FromInside(t *testing.T) {
	surface := mustImplicit(t, sphereField(1), core.NewVec3(1.5, 1.5, 1.5), DefaultStepSize, DefaultMaxBisectionSteps)

	hit, isHit := surface.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), eps, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if !approxEqual(hit.T, 1, 1e-6) {
		t.Errorf("Expected t=1, got %f", hit.T)
	}
	if !approxEqualVec(hit.Normal, core.NewVec3(1, 0, 0), 1e-6) {
		t.Errorf("Expected outward normal (1,0,0), got %v", hit.Normal)
	}
	if hit.FrontFace {
		t.Error("Expected back face hit from inside")
	}
}

func TestImplicitSurface_Hit_SurfaceSampleAtTMin(t *testing.T) {
	tests := []struct {
		name      string
		bounds    float64
		origin    core.Vec3
		tMin      float64
		expectedT float64
		normal    core.Vec3
		frontFace bool
	}{
		// At t = 0.5 the ray sits exactly on the near side, so the next
		// crossing is the far side at z = -1
		{"zero at tMin continues to far side", 1.5, core.NewVec3(0, 0, 1.5), 0.5, 2.5, core.NewVec3(0, 0, -1), false},
		// The box entry at t = 2 lies exactly on the surface, above tMin
		{"zero above tMin is a hit", 1, core.NewVec3(0, 0, 3), eps, 2, core.NewVec3(0, 0, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds := core.NewVec3(tt.bounds, tt.bounds, tt.bounds)
			surface := mustImplicit(t, sphereField(1), bounds, DefaultStepSize, DefaultMaxBisectionSteps)
			ray := core.NewRay(tt.origin, core.NewVec3(0, 0, -1))
			hit, isHit := surface.Hit(ray, tt.tMin, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if !approxEqual(hit.T, tt.expectedT, 1e-6) {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if !approxEqualVec(hit.Normal, tt.normal, 1e-6) {
				t.Errorf("Expected normal %v, got %v", tt.normal, hit.Normal)
			}
			if hit.FrontFace != tt.frontFace {
				t.Errorf("Expected FrontFace=%t, got %t", tt.frontFace, hit.FrontFace)
			}
		})
	}
}

func TestImplicitSurface_Hit_NearestOfNestedShells(t *testing.T) {
	shells := FieldFunc(func(p core.Vec3) float64 {
		r := p.Length()
		return (r - 1) * (r - 0.5)
	})
	surface := mustImplicit(t, shells, core.NewVec3(1.5, 1.5, 1.5), 0.02, 30)

	hit, isHit := surface.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), eps, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if !approxEqual(hit.T, 4, 1e-6) {
		t.Errorf("Expected outer shell at t=4, got %f", hit.T)
	}

	// Starting between the shells the inner one is nearest
	hit, isHit = surface.Hit(core.NewRay(core.NewVec3(0, 0, 0.75), core.NewVec3(0, 0, -1)), eps, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if !approxEqual(hit.T, 0.25, 1e-6) {
		t.Errorf("Expected inner shell at t=0.25, got %f", hit.T)
	}
}

func TestImplicitSurface_Hit_RespectsBounds(t *testing.T) {
	// Zero set is the plane x = 2
	plane := FieldFunc(func(p core.Vec3) float64 { return p.X - 2 })
	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))

	small := mustImplicit(t, plane, core.NewVec3(1, 1, 1), 0.05, 20)
	if hit, isHit := small.Hit(ray, eps, math.Inf(1)); isHit {
		t.Errorf("Expected miss outside bounds, got t=%f", hit.T)
	}

	large := mustImplicit(t, plane, core.NewVec3(3, 3, 3), 0.05, 20)
	hit, isHit := large.Hit(ray, eps, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit inside larger bounds, got miss")
	}
	if !approxEqual(hit.T, 7, 1e-6) {
		t.Errorf("Expected t=7, got %f", hit.T)
	}
}

func TestImplicitSurface_Hit_MissesOutsideBoundingBox(t *testing.T) {
	// The zero set x = 0 extends far beyond the box; no hit may come from there
	plane := FieldFunc(func(p core.Vec3) float64 { return p.X })
	bounds := core.NewVec3(1, 1, 1)
	surface := mustImplicit(t, plane, bounds, 0.05, 20)
	box := core.NewCenteredAABB(bounds)

	random := rand.New(rand.NewSource(42))
	tested := 0
	for tested < 200 {
		origin := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		direction := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
		ray := core.NewRay(origin, direction)
		if box.Hit(ray, eps, math.Inf(1)) {
			continue
		}
		tested++

		if hit, isHit := surface.Hit(ray, eps, math.Inf(1)); isHit {
			t.Fatalf("Ray %v outside bounds reported hit at t=%f", ray, hit.T)
		}
	}
}

func TestImplicitSurface_Hit_RangeLimits(t *testing.T) {
	surface := mustImplicit(t, sphereField(1), core.NewVec3(1.5, 1.5, 1.5), 0.05, 20)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	if _, isHit := surface.Hit(ray, eps, 3.9); isHit {
		t.Error("Expected miss when tMax ends before the surface")
	}
	if _, isHit := surface.Hit(ray, eps, 4.5); !isHit {
		t.Error("Expected hit when tMax is past the surface")
	}
	// Box is behind the ray
	behind := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1))
	if _, isHit := surface.Hit(behind, eps, math.Inf(1)); isHit {
		t.Error("Expected miss for surface behind the origin")
	}
}

func TestImplicitSurface_Hit_ZeroDirection(t *testing.T) {
	surface := mustImplicit(t, sphereField(1), core.NewVec3(1.5, 1.5, 1.5), 0.05, 20)

	if _, isHit := surface.Hit(core.NewRay(core.Vec3{}, core.Vec3{}), eps, math.Inf(1)); isHit {
		t.Error("Expected miss for zero-length direction")
	}
}

func TestImplicitSurface_Hit_DegenerateNormalIsMiss(t *testing.T) {
	// Flat zero region around x = 0: the root is found but the gradient vanishes
	flat := FieldFunc(func(p core.Vec3) float64 {
		if math.Abs(p.X) < 0.51 {
			return 0
		}
		return p.X
	})
	surface := mustImplicit(t, flat, core.NewVec3(1, 1, 1), 0.05, 20)

	if hit, isHit := surface.Hit(core.NewRay(core.NewVec3(-2, 0, 0), core.NewVec3(1, 0, 0)), eps, math.Inf(1)); isHit {
		t.Errorf("Expected miss for degenerate gradient, got t=%f normal=%v", hit.T, hit.Normal)
	}
}

func TestImplicitSurface_Hit_Idempotent(t *testing.T) {
	surface := mustImplicit(t, sphereField(1), core.NewVec3(1.5, 1.5, 1.5), 0.05, 20)
	ray := core.NewRay(core.NewVec3(0.3, -0.2, 5), core.NewVec3(0.01, 0.02, -1).Normalize())

	first, ok1 := surface.Hit(ray, eps, math.Inf(1))
	second, ok2 := surface.Hit(ray, eps, math.Inf(1))
	if !ok1 || !ok2 {
		t.Fatal("Expected both calls to hit")
	}
	if *first != *second {
		t.Errorf("Expected identical results, got %+v and %+v", *first, *second)
	}
}

func TestBisect_Convergence(t *testing.T) {
	const root = 0.3
	f := func(x float64) float64 { return x - root }

	for steps := 1; steps <= 30; steps++ {
		got := Bisect(f, 0, 1, f(0), steps)
		width := 1.0 / math.Pow(2, float64(steps))
		if got > root || root-got > width {
			t.Errorf("steps=%d: expected root within %g below %f, got %.12f", steps, width, root, got)
		}
	}
}

func TestBisect_DecreasingField(t *testing.T) {
	// Positive at ta, negative at tb
	f := func(x float64) float64 { return 0.7 - x }
	got := Bisect(f, 0, 1, f(0), 40)
	if !approxEqual(got, 0.7, 1e-9) {
		t.Errorf("Expected 0.7, got %.12f", got)
	}
}

func TestBisect_ExactZero(t *testing.T) {
	calls := 0
	f := func(x float64) float64 {
		calls++
		return x - 0.5
	}

	if got := Bisect(f, 0, 1, -0.5, 20); got != 0.5 {
		t.Errorf("Expected exact root 0.5, got %f", got)
	}
	if calls != 1 {
		t.Errorf("Expected convergence after one evaluation, got %d", calls)
	}

	if got := Bisect(f, 0.25, 1, 0, 20); got != 0.25 {
		t.Errorf("Expected root at lower endpoint, got %f", got)
	}
}

func TestBisect_ZeroSteps(t *testing.T) {
	f := func(x float64) float64 { return x - 0.3 }
	if got := Bisect(f, 0.1, 0.9, f(0.1), 0); got != 0.1 {
		t.Errorf("Expected lower endpoint without refinement, got %f", got)
	}
}

func TestNumericalGradient(t *testing.T) {
	field := FieldFunc(func(p core.Vec3) float64 {
		return p.X*p.X + 2*p.Y*p.Y + 3*p.Z*p.Z
	})

	got := NumericalGradient(field, core.NewVec3(1, 1, 1), GradientOffset)
	if !approxEqualVec(got, core.NewVec3(2, 4, 6), 1e-6) {
		t.Errorf("Expected gradient (2,4,6), got %v", got)
	}
}
