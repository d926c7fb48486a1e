package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// SphereConfig describes one sphere in a scene file
type SphereConfig struct {
	Center   [3]float64     `yaml:"center"`
	Radius   float64        `yaml:"radius"`
	Material MaterialConfig `yaml:"material"`
}

// MaterialConfig describes a sphere's material in a scene file. Either
// Preset names one of the built-in materials, or the numeric fields spell
// the material out in full.
type MaterialConfig struct {
	Preset           string     `yaml:"preset,omitempty"`
	RefractiveIndex  float64    `yaml:"refractive_index"`
	Albedo           [4]float64 `yaml:"albedo"`
	DiffuseColor     [3]float64 `yaml:"diffuse_color"`
	SpecularExponent float64    `yaml:"specular_exponent"`
}

// LightConfig describes one point light in a scene file
type LightConfig struct {
	Position  [3]float64 `yaml:"position"`
	Intensity float64    `yaml:"intensity"`
}

// FileConfig is the top-level scene file layout
type FileConfig struct {
	Spheres []SphereConfig `yaml:"spheres"`
	Lights  []LightConfig  `yaml:"lights"`
}

var presets = map[string]func() material.Material{
	"ivory":      material.Ivory,
	"glass":      material.Glass,
	"red_rubber": material.RedRubber,
	"mirror":     material.Mirror,
}

// Load parses a YAML scene description and validates it
func Load(data []byte) (*Scene, error) {
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}

	s := NewScene()

	for i, sc := range cfg.Spheres {
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be positive, got %g", i, sc.Radius)
		}
		mat, err := sc.Material.build()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.Spheres = append(s.Spheres, geometry.NewSphere(
			core.NewVec3(sc.Center[0], sc.Center[1], sc.Center[2]), sc.Radius, mat))
	}

	for i, lc := range cfg.Lights {
		if lc.Intensity <= 0 {
			return nil, fmt.Errorf("light %d: intensity must be positive, got %g", i, lc.Intensity)
		}
		s.Lights = append(s.Lights, NewLight(
			core.NewVec3(lc.Position[0], lc.Position[1], lc.Position[2]), lc.Intensity))
	}

	return s, nil
}

// LoadFile reads and parses a YAML scene file
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return Load(data)
}

func (mc MaterialConfig) build() (material.Material, error) {
	if mc.Preset != "" {
		preset, ok := presets[mc.Preset]
		if !ok {
			return material.Material{}, fmt.Errorf("unknown material preset %q", mc.Preset)
		}
		return preset(), nil
	}
	if mc.RefractiveIndex <= 0 {
		return material.Material{}, fmt.Errorf("refractive index must be positive, got %g", mc.RefractiveIndex)
	}
	if mc.SpecularExponent < 0 {
		return material.Material{}, fmt.Errorf("specular exponent must be non-negative, got %g", mc.SpecularExponent)
	}
	return material.New(
		mc.RefractiveIndex,
		core.NewVec4(mc.Albedo[0], mc.Albedo[1], mc.Albedo[2], mc.Albedo[3]),
		core.NewVec3(mc.DiffuseColor[0], mc.DiffuseColor[1], mc.DiffuseColor[2]),
		mc.SpecularExponent,
	), nil
}
