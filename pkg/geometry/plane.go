package geometry

import (
	"math"

	"github.com/dmf77/go-whitted-raytracer/pkg/core"
)

// Plane is the xz plane through the origin in object space, extending
// infinitely in x and z.
type Plane struct {
	object
}

// NewPlane creates a plane with the identity transform and the default
// material.
func NewPlane() *Plane {
	return &Plane{object: newObject()}
}

// LocalIntersect returns at most one hit: none when the ray is parallel
// to the plane (or coplanar with it) within Epsilon.
func (p *Plane) LocalIntersect(ray core.Ray) Intersections {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections{{T: t, Object: p}}
}

// LocalNormalAt returns the constant normal of the xz plane.
func (p *Plane) LocalNormalAt(core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
