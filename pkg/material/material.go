package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface responds to light. The albedo vector
// weights the four contributions to the final color: X=diffuse, Y=specular,
// Z=reflection, W=refraction. There is no sum-to-one constraint.
type Material struct {
	RefractiveIndex  float64   // Index of refraction (1.0 = vacuum, no bending)
	Albedo           core.Vec4 // Contribution weights: diffuse, specular, reflect, refract
	DiffuseColor     core.Vec3 // Linear RGB base color
	SpecularExponent float64   // Phong shininess
}

// New creates a material from its four parameters
func New(refractiveIndex float64, albedo core.Vec4, diffuseColor core.Vec3, specularExponent float64) Material {
	return Material{
		RefractiveIndex:  refractiveIndex,
		Albedo:           albedo,
		DiffuseColor:     diffuseColor,
		SpecularExponent: specularExponent,
	}
}

// Ivory is a dull off-white surface with a mild specular highlight
// and a faint mirror component.
func Ivory() Material {
	return New(1.0, core.NewVec4(0.6, 0.3, 0.1, 0.0), core.NewVec3(0.4, 0.4, 0.3), 50)
}

// Glass is a transparent dielectric dominated by refraction.
func Glass() Material {
	return New(1.5, core.NewVec4(0.0, 0.5, 0.1, 0.8), core.NewVec3(0.6, 0.7, 0.8), 125)
}

// RedRubber is a matte diffuse surface with almost no highlight.
func RedRubber() Material {
	return New(1.0, core.NewVec4(0.9, 0.1, 0.0, 0.0), core.NewVec3(0.3, 0.1, 0.1), 10)
}

// Mirror reflects nearly everything and carries an oversized specular
// weight so highlights stay visible on the reflective surface.
func Mirror() Material {
	return New(1.0, core.NewVec4(0.0, 10.0, 0.8, 0.0), core.NewVec3(1.0, 1.0, 1.0), 1425)
}
