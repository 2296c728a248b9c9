package geometry

import (
	"github.com/google/uuid"

	"github.com/dmf77/go-whitted-raytracer/pkg/core"
	"github.com/dmf77/go-whitted-raytracer/pkg/material"
	"github.com/dmf77/go-whitted-raytracer/pkg/matrix"
)

// Shape is the closed set of primitive variants. Each variant implements
// the two local-space operations; the world-space Intersect and NormalAt
// functions are built on top of them and shared by all variants.
//
// Shapes compare by identity, not by value: two geometrically identical
// spheres at different scene positions must remain distinguishable, and
// the refraction containers stack removes shapes by identity.
type Shape interface {
	// ID returns the shape's identity token, assigned at construction.
	ID() uuid.UUID
	Transform() matrix.Matrix4
	SetTransform(m matrix.Matrix4)
	Material() material.Material
	SetMaterial(m material.Material)
	// LocalIntersect runs geometry-specific root finding against a ray
	// already transformed into object space, where the shape has its
	// canonical unit/origin form.
	LocalIntersect(ray core.Ray) Intersections
	// LocalNormalAt returns the surface normal at a point in object
	// space.
	LocalNormalAt(point core.Tuple) core.Tuple
}

// object carries the state every shape variant shares: an identity
// token, a transform and a material.
type object struct {
	id        uuid.UUID
	transform matrix.Matrix4
	material  material.Material
}

func newObject() object {
	return object{
		id:        uuid.New(),
		transform: matrix.Identity(),
		material:  material.Default(),
	}
}

// ID returns the shape's identity token.
func (o *object) ID() uuid.UUID {
	return o.id
}

// Transform returns the shape's current transform.
func (o *object) Transform() matrix.Matrix4 {
	return o.transform
}

// SetTransform replaces the shape's transform.
func (o *object) SetTransform(m matrix.Matrix4) {
	o.transform = m
}

// Material returns the shape's material.
func (o *object) Material() material.Material {
	return o.material
}

// SetMaterial replaces the shape's material.
func (o *object) SetMaterial(m material.Material) {
	o.material = m
}

// Intersect tests a world-space ray against a shape. The ray is
// transformed into object space by the inverse of the shape's transform,
// rather than transforming the shape, so every variant's local math can
// assume its canonical form.
func Intersect(s Shape, ray core.Ray) (Intersections, error) {
	inv, err := s.Transform().Inverse()
	if err != nil {
		return nil, err
	}
	return s.LocalIntersect(inv.MultiplyRay(ray)), nil
}

// NormalAt returns the world-space surface normal at a world-space
// point. Normals transform by the inverse transpose to stay
// perpendicular under non-uniform scaling; the result picks up a
// spurious W and loses unit length, so it is forced back to vector
// semantics and re-normalized.
func NormalAt(s Shape, worldPoint core.Tuple) (core.Tuple, error) {
	inv, err := s.Transform().Inverse()
	if err != nil {
		return core.Tuple{}, err
	}
	localPoint := inv.MultiplyTuple(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	worldNormal := inv.Transpose().MultiplyTuple(localNormal)
	return worldNormal.AsVector().Normalize(), nil
}
