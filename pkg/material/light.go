package material

import (
	"fmt"
	"math"

	"github.com/dmf77/go-whitted-raytracer/pkg/core"
	"github.com/dmf77/go-whitted-raytracer/pkg/pattern"
)

// PointLight is a light source with a position in space and an
// intensity color. Scenes carry a single light.
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a light source at position with the given
// intensity. The position must be a point.
func NewPointLight(position core.Tuple, intensity core.Color) (PointLight, error) {
	if !position.IsPoint() {
		return PointLight{}, fmt.Errorf("light position must be a point: %w", core.ErrInvalidTupleRole)
	}
	return PointLight{Position: position, Intensity: intensity}, nil
}

// Lighting shades a point on a surface with the Phong reflection model.
// The surface color is sampled through the material's pattern in the
// object's local frame, so striped or gradient materials shade correctly
// under arbitrary shape transforms. When the point is in shadow only the
// ambient term contributes.
func Lighting(m Material, object pattern.Transformed, light PointLight, point, eyev, normalv core.Tuple, inShadow bool) (core.Color, error) {
	surface, err := pattern.AtShape(m.Pattern, object, point)
	if err != nil {
		return core.Color{}, err
	}

	// combine the surface color with the light's intensity
	effective := surface.Blend(light.Intensity)

	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient, nil
	}

	diffuse := core.Black()
	specular := core.Black()

	// cosine of the angle between the light vector and the normal; a
	// negative value means the light is on the other side of the surface
	lightv := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal >= 0 {
		diffuse = effective.Multiply(m.Diffuse * lightDotNormal)

		// cosine of the angle between the reflection vector and the
		// eye; a negative value means the light reflects away from it
		reflectv := lightv.Negate().Reflect(normalv)
		reflectDotEye := reflectv.Dot(eyev)
		if reflectDotEye >= 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = light.Intensity.Multiply(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular), nil
}
