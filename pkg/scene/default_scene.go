package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the reference scene: four spheres covering the
// four material behaviors (matte, glass, rubber, mirror) lit by three
// point lights.
func NewDefaultScene() *Scene {
	s := NewScene()

	s.Spheres = append(s.Spheres,
		geometry.NewSphere(core.NewVec3(-3, 0, -16), 2, material.Ivory()),
		geometry.NewSphere(core.NewVec3(-1.0, -1.5, -12), 2, material.Glass()),
		geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, material.RedRubber()),
		geometry.NewSphere(core.NewVec3(7, 5, -18), 4, material.Mirror()),
	)

	s.Lights = append(s.Lights,
		NewLight(core.NewVec3(-20, 20, 20), 1.5),
		NewLight(core.NewVec3(30, 50, -25), 1.8),
		NewLight(core.NewVec3(30, 20, 30), 1.7),
	)

	return s
}

// NewMirrorScene creates a scene of two facing mirror spheres with a matte
// sphere between them. Useful for exercising the recursion depth cap.
func NewMirrorScene() *Scene {
	s := NewScene()

	s.Spheres = append(s.Spheres,
		geometry.NewSphere(core.NewVec3(-4, 0, -16), 3, material.Mirror()),
		geometry.NewSphere(core.NewVec3(4, 0, -16), 3, material.Mirror()),
		geometry.NewSphere(core.NewVec3(0, -2, -20), 1.5, material.RedRubber()),
	)

	s.Lights = append(s.Lights,
		NewLight(core.NewVec3(0, 30, 10), 2.0),
	)

	return s
}
