package tracer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Reflect mirrors an incident direction about a surface normal:
// r = i - n*2*(i·n). The normal must be unit length.
func Reflect(incident, normal core.Vec3) core.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}

// Refract bends an incident direction through a surface with the given
// refractive index using Snell's law. The incident ray may arrive from
// either side of the surface: when the cosine comes out negative the ray
// is exiting the medium, so the indices are swapped and the normal flipped
// before applying the formula. Returns ok=false on total internal
// reflection, in which case the direction is the zero vector and must not
// be used.
func Refract(incident, normal core.Vec3, refractiveIndex float64) (core.Vec3, bool) {
	cosI := -max(-1.0, min(1.0, incident.Dot(normal)))
	etaI, etaT := 1.0, refractiveIndex
	n := normal

	if cosI < 0 {
		// Ray is inside the medium; put the normal on the incident side.
		cosI = -cosI
		etaI, etaT = etaT, etaI
		n = normal.Negate()
	}

	eta := etaI / etaT
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return core.Vec3{}, false
	}
	return incident.Multiply(eta).Add(n.Multiply(eta*cosI - math.Sqrt(k))), true
}
