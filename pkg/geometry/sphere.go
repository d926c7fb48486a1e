package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere is the only primitive in the scene: an analytic sphere with its
// material held by value. Spheres are built once at scene setup and are
// read-only during rendering.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// RayIntersect tests the ray against the sphere using the geometric
// solution: project the center onto the ray, compare the perpendicular
// distance against the radius, then pick the nearest non-negative root.
// The caller supplies a unit-length direction, so t is a world-space
// distance. Tangent rays (perpendicular distance exactly the radius)
// count as hits.
func (s Sphere) RayIntersect(origin, direction core.Vec3) (float64, bool) {
	l := s.Center.Subtract(origin)
	tca := l.Dot(direction)
	d := l.Dot(l) - tca*tca
	if d > s.Radius*s.Radius {
		return 0, false
	}

	thc := math.Sqrt(s.Radius*s.Radius - d)
	t0 := tca - thc
	t1 := tca + thc

	// The near root is behind the origin when the ray starts inside the
	// sphere; fall through to the far root.
	if t0 < 0 {
		t0 = t1
	}
	// Both roots behind the origin: the sphere is entirely behind the ray.
	if t0 < 0 {
		return 0, false
	}
	return t0, true
}

// NormalAt returns the outward unit normal at a point on the sphere's
// surface. The orientation is always away from the center, even when the
// querying ray started inside; flipping for inside hits is the shading
// and refraction code's responsibility.
func (s Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Multiply(1.0 / s.Radius)
}
