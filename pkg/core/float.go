package core

import "math"

// Epsilon is the process-wide tolerance for floating point comparisons.
// Every comparison site (tuple equality, matrix equality, the determinant
// zero check, the plane parallel check) uses this same constant so that
// transform composition drift is tolerated consistently.
const Epsilon = 2e-4

// FloatEquals reports whether a and b are equal within Epsilon.
func FloatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
