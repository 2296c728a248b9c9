package pattern

import (
	"math"

	"github.com/dmf77/go-whitted-raytracer/pkg/core"
)

// Solid is a pattern with a single color everywhere. The default
// material wraps its surface color in one of these.
type Solid struct {
	base
	Color core.Color
}

// NewSolid creates a solid pattern of the given color.
func NewSolid(c core.Color) *Solid {
	return &Solid{base: newBase(), Color: c}
}

// At returns the solid color regardless of the point.
func (p *Solid) At(core.Tuple) core.Color {
	return p.Color
}

// Stripe alternates between two colors as the x coordinate crosses
// integer boundaries; it is constant in y and z.
type Stripe struct {
	base
	A, B core.Color
}

// NewStripe creates a stripe pattern alternating between a and b.
func NewStripe(a, b core.Color) *Stripe {
	return &Stripe{base: newBase(), A: a, B: b}
}

// At returns a when floor(x) is even, b otherwise.
func (p *Stripe) At(point core.Tuple) core.Color {
	if math.Mod(math.Floor(point.X), 2) == 0 {
		return p.A
	}
	return p.B
}

// Gradient blends linearly from a to b across one unit of x, using the
// fractional part of the coordinate.
type Gradient struct {
	base
	A, B core.Color
}

// NewGradient creates a gradient pattern from a to b.
func NewGradient(a, b core.Color) *Gradient {
	return &Gradient{base: newBase(), A: a, B: b}
}

// At linearly interpolates between the two colors.
func (p *Gradient) At(point core.Tuple) core.Color {
	distance := p.B.Subtract(p.A)
	fraction := point.X - math.Floor(point.X)
	return p.A.Add(distance.Multiply(fraction))
}

// Ring alternates between two colors in concentric circles around the y
// axis, depending on distance in the xz plane.
type Ring struct {
	base
	A, B core.Color
}

// NewRing creates a ring pattern alternating between a and b.
func NewRing(a, b core.Color) *Ring {
	return &Ring{base: newBase(), A: a, B: b}
}

// At returns a when floor(sqrt(x²+z²)) is even, b otherwise.
func (p *Ring) At(point core.Tuple) core.Color {
	distance := math.Sqrt(point.X*point.X + point.Z*point.Z)
	if math.Mod(math.Floor(distance), 2) == 0 {
		return p.A
	}
	return p.B
}

// Checker alternates between two colors in a 3D checkerboard, so
// adjacent unit cubes in any axis direction never share a color.
type Checker struct {
	base
	A, B core.Color
}

// NewChecker creates a checker pattern alternating between a and b.
func NewChecker(a, b core.Color) *Checker {
	return &Checker{base: newBase(), A: a, B: b}
}

// At returns a when floor(x)+floor(y)+floor(z) is even, b otherwise.
func (p *Checker) At(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if math.Mod(sum, 2) == 0 {
		return p.A
	}
	return p.B
}

// RadialGradient blends between two colors in concentric rings,
// reversing the blend direction in alternate rings.
type RadialGradient struct {
	base
	A, B core.Color
}

// NewRadialGradient creates a radial gradient pattern from a to b.
func NewRadialGradient(a, b core.Color) *RadialGradient {
	return &RadialGradient{base: newBase(), A: a, B: b}
}

// At interpolates outward from a to b, flipping endpoints every other
// ring of xz distance.
func (p *RadialGradient) At(point core.Tuple) core.Color {
	distance := math.Sqrt(point.X*point.X + point.Z*point.Z)
	fraction := point.X - math.Floor(point.X)
	if math.Mod(math.Floor(distance), 2) == 0 {
		return p.A.Add(p.B.Subtract(p.A).Multiply(fraction))
	}
	return p.B.Add(p.A.Subtract(p.B).Multiply(fraction))
}
