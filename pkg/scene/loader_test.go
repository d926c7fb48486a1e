package scene

import (
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const validSceneYAML = `
spheres:
  - center: [-3, 0, -16]
    radius: 2
    material:
      preset: ivory
  - center: [1.5, -0.5, -18]
    radius: 3
    material:
      refractive_index: 1.0
      albedo: [0.9, 0.1, 0.0, 0.0]
      diffuse_color: [0.3, 0.1, 0.1]
      specular_exponent: 10
lights:
  - position: [-20, 20, 20]
    intensity: 1.5
`

func TestLoad_ValidScene(t *testing.T) {
	s, err := Load([]byte(validSceneYAML))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(s.Spheres) != 2 {
		t.Fatalf("Expected 2 spheres, got %d", len(s.Spheres))
	}
	if len(s.Lights) != 1 {
		t.Fatalf("Expected 1 light, got %d", len(s.Lights))
	}

	if s.Spheres[0].Material != material.Ivory() {
		t.Error("Expected preset to resolve to the ivory material")
	}
	if s.Spheres[1].Material != material.RedRubber() {
		t.Error("Expected explicit fields to match the red rubber material")
	}
	if s.Lights[0].Intensity != 1.5 {
		t.Errorf("Expected intensity 1.5, got %f", s.Lights[0].Intensity)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "negative radius",
			yaml:    "spheres:\n  - center: [0, 0, -5]\n    radius: -1\n    material: {preset: ivory}\n",
			wantErr: "radius must be positive",
		},
		{
			name:    "zero intensity",
			yaml:    "lights:\n  - position: [0, 10, 0]\n    intensity: 0\n",
			wantErr: "intensity must be positive",
		},
		{
			name:    "unknown preset",
			yaml:    "spheres:\n  - center: [0, 0, -5]\n    radius: 1\n    material: {preset: chrome}\n",
			wantErr: "unknown material preset",
		},
		{
			name:    "zero refractive index",
			yaml:    "spheres:\n  - center: [0, 0, -5]\n    radius: 1\n    material: {albedo: [1, 0, 0, 0]}\n",
			wantErr: "refractive index must be positive",
		},
		{
			name:    "not yaml",
			yaml:    "spheres: [",
			wantErr: "parsing scene file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("does-not-exist.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}
