package tracer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config holds the tracer's read-only tuning parameters
type Config struct {
	MaxDepth   int       // Hard cap on recursion depth
	Bias       float64   // Secondary ray origin offset to avoid self-intersection
	Background core.Vec3 // Color returned for rays that escape the scene
}

// DefaultConfig returns the reference tuning values
func DefaultConfig() Config {
	return Config{
		MaxDepth:   4,
		Bias:       1e-3,
		Background: core.NewVec3(0.2, 0.7, 0.8),
	}
}

// Whitted is a recursive ray tracer: each hit spawns one reflection ray
// and one refraction ray, combined with Phong direct illumination and
// hard shadows. It never mutates the scene, so one tracer may serve any
// number of goroutines.
type Whitted struct {
	scene  *scene.Scene
	config Config
}

// NewWhitted creates a tracer for the given scene
func NewWhitted(s *scene.Scene, config Config) *Whitted {
	return &Whitted{scene: s, config: config}
}

// Config returns the tracer's tuning parameters
func (w *Whitted) Config() Config {
	return w.config
}

// CastRay returns the color seen along a ray. Direction must be unit
// length. Primary rays are cast with depth 0; the recursion adds one per
// reflection or refraction bounce and stops past the depth cap. The
// function is total: every input produces a finite color.
func (w *Whitted) CastRay(origin, direction core.Vec3, depth int) core.Vec3 {
	if depth > w.config.MaxDepth {
		return w.config.Background
	}
	hit, ok := w.scene.Intersect(origin, direction)
	if !ok {
		return w.config.Background
	}

	reflectDir := Reflect(direction, hit.Normal).Normalize()
	reflectOrigin := w.offsetOrigin(hit.Point, hit.Normal, reflectDir)
	reflectColor := w.CastRay(reflectOrigin, reflectDir, depth+1)

	// On total internal reflection the refraction contribution is dropped
	// entirely rather than recursing on a degenerate zero direction.
	var refractColor core.Vec3
	if refractDir, canRefract := Refract(direction, hit.Normal, hit.Material.RefractiveIndex); canRefract {
		refractDir = refractDir.Normalize()
		refractOrigin := w.offsetOrigin(hit.Point, hit.Normal, refractDir)
		refractColor = w.CastRay(refractOrigin, refractDir, depth+1)
	}

	diffuse, specular := w.shade(hit, direction)

	albedo := hit.Material.Albedo
	return hit.Material.DiffuseColor.Multiply(diffuse * albedo.X).
		Add(core.NewVec3(1, 1, 1).Multiply(specular * albedo.Y)).
		Add(reflectColor.Multiply(albedo.Z)).
		Add(refractColor.Multiply(albedo.W))
}

// shade accumulates the Phong diffuse and specular terms over all lights,
// skipping lights occluded by shadow-ray hits closer than the light.
func (w *Whitted) shade(hit *scene.HitRecord, direction core.Vec3) (diffuse, specular float64) {
	for _, light := range w.scene.Lights {
		toLight := light.Position.Subtract(hit.Point)
		lightDist := toLight.Length()
		lightDir := toLight.Multiply(1.0 / lightDist)

		shadowOrigin := w.offsetOrigin(hit.Point, hit.Normal, lightDir)
		if shadowHit, blocked := w.scene.Intersect(shadowOrigin, lightDir); blocked {
			if shadowHit.Point.Subtract(shadowOrigin).Length() < lightDist {
				continue
			}
		}

		diffuse += light.Intensity * math.Max(0, lightDir.Dot(hit.Normal))
		specular += light.Intensity * math.Pow(
			math.Max(0, -Reflect(lightDir.Negate(), hit.Normal).Dot(direction)),
			hit.Material.SpecularExponent)
	}
	return diffuse, specular
}

// offsetOrigin nudges a secondary ray's origin off the surface along the
// normal, on whichever side the outgoing ray leaves, so floating-point
// rounding cannot re-intersect the surface it just left.
func (w *Whitted) offsetOrigin(point, normal, outgoing core.Vec3) core.Vec3 {
	if outgoing.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(w.config.Bias))
	}
	return point.Add(normal.Multiply(w.config.Bias))
}
