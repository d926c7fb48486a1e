package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// MaxRenderDistance bounds how far a ray is allowed to travel before its
// hit is discarded. There is no background geometry, so this is an escape
// check that keeps stray secondary rays from keying off near-infinite hits.
const MaxRenderDistance = 1000.0

// Light is a point light source. Intensity is unbounded and additive
// across lights.
type Light struct {
	Position  core.Vec3
	Intensity float64
}

// NewLight creates a new point light
func NewLight(position core.Vec3, intensity float64) Light {
	return Light{Position: position, Intensity: intensity}
}

// HitRecord carries everything shading needs from a scene intersection.
// Normal is unit length and always points outward from the struck
// sphere's center. Material is a copy of the sphere's material.
type HitRecord struct {
	Point    core.Vec3
	Normal   core.Vec3
	T        float64
	Material material.Material
}

// Scene holds the spheres and lights for a render. It is owned by the
// caller and treated as read-only by every core function, so a single
// scene can back any number of concurrent renders.
type Scene struct {
	Spheres []geometry.Sphere
	Lights  []Light
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{
		Spheres: make([]geometry.Sphere, 0),
		Lights:  make([]Light, 0),
	}
}

// Intersect finds the nearest sphere hit along the ray. Iteration order is
// the scene's sphere order, and the strict < comparison means the first
// sphere wins an exact distance tie. Hits at or beyond MaxRenderDistance
// are treated as misses.
func (s *Scene) Intersect(origin, direction core.Vec3) (*HitRecord, bool) {
	closest := MaxRenderDistance
	nearest := -1

	for i := range s.Spheres {
		dist, ok := s.Spheres[i].RayIntersect(origin, direction)
		if ok && dist < closest {
			closest = dist
			nearest = i
		}
	}
	if nearest < 0 {
		return nil, false
	}

	sphere := &s.Spheres[nearest]
	point := origin.Add(direction.Multiply(closest))
	return &HitRecord{
		Point:    point,
		Normal:   sphere.NormalAt(point),
		T:        closest,
		Material: sphere.Material,
	}, true
}
