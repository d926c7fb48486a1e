package scene

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestScene_Intersect_NearestWins(t *testing.T) {
	s := NewScene()
	s.Spheres = append(s.Spheres,
		geometry.NewSphere(core.NewVec3(0, 0, -10), 1, material.RedRubber()),
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.Ivory()),
	)

	hit, ok := s.Intersect(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected nearest hit at t=4, got t=%f", hit.T)
	}
	// Material identifies which sphere was struck
	if hit.Material != material.Ivory() {
		t.Error("Expected the nearer (ivory) sphere to win")
	}
}

func TestScene_Intersect_TieGoesToFirstSphere(t *testing.T) {
	// Two identical spheres at the same position: the first in scene
	// order must win the exact-distance tie.
	s := NewScene()
	s.Spheres = append(s.Spheres,
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.RedRubber()),
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.Ivory()),
	)

	hit, ok := s.Intersect(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Material != material.RedRubber() {
		t.Error("Expected first sphere in scene order to win the tie")
	}
}

func TestScene_Intersect_BeyondMaxRenderDistance(t *testing.T) {
	s := NewScene()
	s.Spheres = append(s.Spheres,
		geometry.NewSphere(core.NewVec3(0, 0, -2000), 1, material.Ivory()),
	)

	_, ok := s.Intersect(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if ok {
		t.Error("Expected hits beyond the render distance to be treated as misses")
	}
}

func TestScene_Intersect_NormalPointsOutward(t *testing.T) {
	s := NewScene()
	s.Spheres = append(s.Spheres,
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.Ivory()),
	)

	hit, ok := s.Intersect(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}

	expected := core.NewVec3(0, 0, 1)
	if hit.Normal.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected outward normal %v, got %v", expected, hit.Normal)
	}

	// Even from inside the sphere, the normal stays outward.
	hit, ok = s.Intersect(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -1))
	if !ok {
		t.Fatal("Expected hit from inside sphere")
	}
	expected = core.NewVec3(0, 0, -1)
	if hit.Normal.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected outward normal %v from inside hit, got %v", expected, hit.Normal)
	}
}

func TestScene_Intersect_EmptyScene(t *testing.T) {
	s := NewScene()
	if _, ok := s.Intersect(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)); ok {
		t.Error("Expected miss in an empty scene")
	}
}

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if len(s.Spheres) != 4 {
		t.Errorf("Expected 4 spheres, got %d", len(s.Spheres))
	}
	if len(s.Lights) != 3 {
		t.Errorf("Expected 3 lights, got %d", len(s.Lights))
	}

	// A ray toward the ivory sphere's center must hit it
	direction := core.NewVec3(-3, 0, -16).Normalize()
	hit, ok := s.Intersect(core.NewVec3(0, 0, 0), direction)
	if !ok {
		t.Fatal("Expected hit on the ivory sphere")
	}
	if hit.Material != material.Ivory() {
		t.Error("Expected the ivory sphere to be struck")
	}
}
