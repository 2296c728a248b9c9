package matrix

import (
	"errors"
	"fmt"

	"github.com/dmf77/go-whitted-raytracer/pkg/core"
)

// ErrNotInvertible is returned when inversion is attempted on a matrix
// whose determinant is zero within core.Epsilon.
var ErrNotInvertible = errors.New("matrix is not invertible")

// ErrDimensionMismatch is returned when a matrix is constructed from rows
// that do not form the expected square shape.
var ErrDimensionMismatch = errors.New("matrix dimension mismatch")

// Matrix2 is a 2x2 matrix, the base case of determinant expansion.
type Matrix2 [2][2]float64

// Matrix3 is a 3x3 matrix, used as an intermediate for 4x4 cofactors.
type Matrix3 [3][3]float64

// Matrix4 is a 4x4 matrix, the workhorse transform type. It is an
// immutable value type: all operations return new matrices.
type Matrix4 [4][4]float64

// Identity returns the 4x4 identity matrix, the default transform of
// every transformable entity.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// FromRows builds a Matrix4 from row slices, validating the shape.
func FromRows(rows [][]float64) (Matrix4, error) {
	if len(rows) != 4 {
		return Matrix4{}, fmt.Errorf("expected 4 rows, got %d: %w", len(rows), ErrDimensionMismatch)
	}
	var m Matrix4
	for i, row := range rows {
		if len(row) != 4 {
			return Matrix4{}, fmt.Errorf("expected 4 columns in row %d, got %d: %w", i, len(row), ErrDimensionMismatch)
		}
		copy(m[i][:], row)
	}
	return m, nil
}

// Equals reports element-wise equality within core.Epsilon.
func (m Matrix4) Equals(other Matrix4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !core.FloatEquals(m[i][j], other[i][j]) {
				return false
			}
		}
	}
	return true
}

// Multiply returns the matrix product m * other. Composition is
// order-sensitive: transforms apply right-to-left on column vectors.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var result Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[i][j] = m[i][0]*other[0][j] +
				m[i][1]*other[1][j] +
				m[i][2]*other[2][j] +
				m[i][3]*other[3][j]
		}
	}
	return result
}

// MultiplyTuple returns the tuple transformed by the matrix.
func (m Matrix4) MultiplyTuple(t core.Tuple) core.Tuple {
	components := [4]float64{t.X, t.Y, t.Z, t.W}
	var result [4]float64
	for i := 0; i < 4; i++ {
		result[i] = m[i][0]*components[0] +
			m[i][1]*components[1] +
			m[i][2]*components[2] +
			m[i][3]*components[3]
	}
	return core.Tuple{X: result[0], Y: result[1], Z: result[2], W: result[3]}
}

// MultiplyRay returns the ray with origin and direction transformed by
// the matrix. Shapes use this to move rays into object space instead of
// moving themselves into world space.
func (m Matrix4) MultiplyRay(r core.Ray) core.Ray {
	return core.Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix4) Transpose() Matrix4 {
	var result Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[j][i] = m[i][j]
		}
	}
	return result
}

// Determinant of a 2x2 matrix: ad - bc.
func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Submatrix returns the 2x2 matrix left after removing the given row
// and column.
func (m Matrix3) Submatrix(row, col int) Matrix2 {
	var result Matrix2
	ri := 0
	for i := 0; i < 3; i++ {
		if i == row {
			continue
		}
		rj := 0
		for j := 0; j < 3; j++ {
			if j == col {
				continue
			}
			result[ri][rj] = m[i][j]
			rj++
		}
		ri++
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col).
func (m Matrix3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd.
func (m Matrix3) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant of a 3x3 matrix by cofactor expansion along the first row.
func (m Matrix3) Determinant() float64 {
	return m[0][0]*m.Cofactor(0, 0) +
		m[0][1]*m.Cofactor(0, 1) +
		m[0][2]*m.Cofactor(0, 2)
}

// Submatrix returns the 3x3 matrix left after removing the given row
// and column.
func (m Matrix4) Submatrix(row, col int) Matrix3 {
	var result Matrix3
	ri := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		rj := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			result[ri][rj] = m[i][j]
			rj++
		}
		ri++
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col).
func (m Matrix4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd.
func (m Matrix4) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant of a 4x4 matrix by cofactor expansion along the first row.
func (m Matrix4) Determinant() float64 {
	return m[0][0]*m.Cofactor(0, 0) +
		m[0][1]*m.Cofactor(0, 1) +
		m[0][2]*m.Cofactor(0, 2) +
		m[0][3]*m.Cofactor(0, 3)
}

// IsInvertible reports whether the matrix has a nonzero determinant.
func (m Matrix4) IsInvertible() bool {
	return !core.FloatEquals(m.Determinant(), 0)
}

// Inverse returns the inverse of the matrix via cofactor expansion, or
// ErrNotInvertible when the determinant is zero within core.Epsilon.
// The invariant inverse(M).Multiply(M) ≈ Identity() holds for every
// invertible M.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if core.FloatEquals(det, 0) {
		return Matrix4{}, ErrNotInvertible
	}
	var result Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			// transposed assignment folds the adjugate transpose
			// into the same loop
			result[j][i] = m.Cofactor(i, j) / det
		}
	}
	return result, nil
}
