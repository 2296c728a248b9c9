package pattern

import (
	"github.com/dmf77/go-whitted-raytracer/pkg/core"
	"github.com/dmf77/go-whitted-raytracer/pkg/matrix"
)

// Transformed is anything that carries a world-to-local transform. Shapes
// satisfy it, which lets patterns be evaluated on their surfaces without
// this package depending on the geometry package.
type Transformed interface {
	Transform() matrix.Matrix4
}

// Pattern is a procedural color function evaluated in pattern-local
// space. The set of variants is closed: Solid, Stripe, Gradient, Ring,
// Checker and RadialGradient.
type Pattern interface {
	Transformed
	// At returns the pattern color at a point already mapped into
	// pattern space.
	At(point core.Tuple) core.Color
	SetTransform(m matrix.Matrix4)
}

// AtShape evaluates a pattern at a world-space point on a shape's
// surface. The point passes through two inverse transforms, the shape's
// then the pattern's, so a pattern and its host shape can be scaled or
// rotated independently.
func AtShape(p Pattern, object Transformed, worldPoint core.Tuple) (core.Color, error) {
	objectInv, err := object.Transform().Inverse()
	if err != nil {
		return core.Color{}, err
	}
	patternInv, err := p.Transform().Inverse()
	if err != nil {
		return core.Color{}, err
	}
	objectPoint := objectInv.MultiplyTuple(worldPoint)
	patternPoint := patternInv.MultiplyTuple(objectPoint)
	return p.At(patternPoint), nil
}

// base carries the transform shared by every pattern variant.
type base struct {
	transform matrix.Matrix4
}

func newBase() base {
	return base{transform: matrix.Identity()}
}

// Transform returns the pattern's current transform.
func (b *base) Transform() matrix.Matrix4 {
	return b.transform
}

// SetTransform replaces the pattern's transform.
func (b *base) SetTransform(m matrix.Matrix4) {
	b.transform = m
}
