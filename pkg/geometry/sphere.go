package geometry

import (
	"math"

	"github.com/dmf77/go-whitted-raytracer/pkg/core"
	"github.com/dmf77/go-whitted-raytracer/pkg/material"
)

// Sphere is the unit sphere centered at the origin in object space; its
// transform places and deforms it in the world.
type Sphere struct {
	object
}

// NewSphere creates a unit sphere with the identity transform and the
// default material.
func NewSphere() *Sphere {
	return &Sphere{object: newObject()}
}

// NewGlassSphere creates a unit sphere with a fully transparent material
// of refractive index 1.5.
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.Glass())
	return s
}

// LocalIntersect solves the quadratic for the ray against the unit
// sphere. A tangential graze yields two equal t values, not one, so
// callers must not assume distinct roots.
func (s *Sphere) LocalIntersect(ray core.Ray) Intersections {
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return Intersections{
		{T: t1, Object: s},
		{T: t2, Object: s},
	}
}

// LocalNormalAt returns the normal of the unit sphere, which is simply
// the vector from the origin to the point.
func (s *Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(core.NewPoint(0, 0, 0))
}
