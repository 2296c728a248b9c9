package matrix

import (
	"math"

	"github.com/dmf77/go-whitted-raytracer/pkg/core"
)

// Translation returns a transform that moves points by (x, y, z).
// Vectors are unaffected since their W component is zero.
func Translation(x, y, z float64) Matrix4 {
	return Matrix4{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scaling returns a transform that scales tuples by (x, y, z). Negative
// factors reflect across the corresponding axis.
func Scaling(x, y, z float64) Matrix4 {
	return Matrix4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotationX returns a transform that rotates tuples by r radians about
// the x axis.
func RotationX(r float64) Matrix4 {
	sin, cos := math.Sin(r), math.Cos(r)
	return Matrix4{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a transform that rotates tuples by r radians about
// the y axis.
func RotationY(r float64) Matrix4 {
	sin, cos := math.Sin(r), math.Cos(r)
	return Matrix4{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a transform that rotates tuples by r radians about
// the z axis.
func RotationZ(r float64) Matrix4 {
	sin, cos := math.Sin(r), math.Cos(r)
	return Matrix4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing returns a transform where each component changes in
// proportion to the other two: xy is the amount x changes per unit y,
// and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	return Matrix4{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// ViewTransform derives the orientation-plus-translation matrix that
// moves the world so the eye sits at the origin looking down -z, from an
// eye position, a target point and an up vector.
func ViewTransform(from, to, up core.Tuple) Matrix4 {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
