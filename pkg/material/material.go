package material

import (
	"github.com/dmf77/go-whitted-raytracer/pkg/core"
	"github.com/dmf77/go-whitted-raytracer/pkg/pattern"
)

// Material captures the surface attributes fed to the Phong model plus
// the reflection and refraction coefficients used by the recursive
// color resolution. Diffuse and specular must be non-negative, the
// reflective and transparency coefficients live in [0, 1], and the
// refractive index is positive (1.0 is vacuum/air).
type Material struct {
	Pattern         pattern.Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// Default returns the default material: a solid white surface with the
// classic Phong coefficients and no reflection or transparency.
func Default() Material {
	return Material{
		Pattern:         pattern.NewSolid(core.White()),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
	}
}

// Glass returns a fully transparent material with the refractive index
// of glass.
func Glass() Material {
	m := Default()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	return m
}
