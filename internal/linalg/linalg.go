/*****************************************************************************************************************/

//	@package	sarproj/internal/linalg
//	@license	Copyright © 2025 sarproj contributors

/*****************************************************************************************************************/

// Package linalg is the small linear-algebra substrate the projection
// kernel needs: 2x2 (and in general NxN) matrix construction, inversion,
// and multiplication, backed by gonum.org/v1/gonum/mat rather than a
// hand-rolled Gaussian elimination. It exists because spec §4.7 requires
// inverting the ground-plane sensitivity matrix M_RRdot_GPXY; spec §9
// explicitly invites a BLAS-like library for this. The image-grid <->
// image-plane 2x2 solve (spec §4.2) does not use this package; it is
// inlined in pkg/imageplane.
package linalg

/*****************************************************************************************************************/

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*****************************************************************************************************************/

// ErrSingular is returned when a matrix inversion is attempted on a
// singular (non-invertible) matrix, corresponding to spec.md §7's
// DegenerateGeometry condition for a singular sensitivity matrix.
var ErrSingular = errors.New("linalg: matrix is singular and cannot be inverted")

/*****************************************************************************************************************/

// Matrix is a dense row-major matrix of float64 values.
type Matrix struct {
	dense *mat.Dense
}

/*****************************************************************************************************************/

// New creates a zero-valued matrix with the given dimensions.
func New(rows, columns int) (*Matrix, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.New("linalg: matrix dimensions must be positive")
	}
	return &Matrix{dense: mat.NewDense(rows, columns, nil)}, nil
}

/*****************************************************************************************************************/

// NewFromSlice creates a matrix from a row-major slice of values. The slice
// must have exactly rows*columns elements; it is copied, not aliased.
func NewFromSlice(value []float64, rows, columns int) (*Matrix, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.New("linalg: matrix dimensions must be positive")
	}
	if len(value) != rows*columns {
		return nil, fmt.Errorf("linalg: length %d does not match matrix dimensions %dx%d", len(value), rows, columns)
	}

	v := make([]float64, len(value))
	copy(v, value)

	return &Matrix{dense: mat.NewDense(rows, columns, v)}, nil
}

/*****************************************************************************************************************/

// Rows returns the number of rows in the matrix.
func (m *Matrix) Rows() int {
	r, _ := m.dense.Dims()
	return r
}

/*****************************************************************************************************************/

// Columns returns the number of columns in the matrix.
func (m *Matrix) Columns() int {
	_, c := m.dense.Dims()
	return c
}

/*****************************************************************************************************************/

// At returns the element at the specified zero-indexed row and column.
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Columns() {
		return 0, fmt.Errorf("linalg: index out of bounds: row=%d, col=%d", row, col)
	}
	return m.dense.At(row, col), nil
}

/*****************************************************************************************************************/

// Set sets the element at the specified zero-indexed row and column.
func (m *Matrix) Set(row, col int, value float64) error {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Columns() {
		return fmt.Errorf("linalg: index out of bounds: row=%d, col=%d", row, col)
	}
	m.dense.Set(row, col, value)
	return nil
}

/*****************************************************************************************************************/

// Transpose returns a new matrix that is the transpose of m.
func (m *Matrix) Transpose() (*Matrix, error) {
	rows, columns := m.Rows(), m.Columns()
	transposed := mat.NewDense(columns, rows, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			transposed.Set(c, r, m.dense.At(r, c))
		}
	}
	return &Matrix{dense: transposed}, nil
}

/*****************************************************************************************************************/

// Multiply returns the matrix product m * other. Requires
// m.Columns() == other.Rows().
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	if m.Columns() != other.Rows() {
		return nil, fmt.Errorf("linalg: cannot multiply: %dx%d with %dx%d", m.Rows(), m.Columns(), other.Rows(), other.Columns())
	}

	var product mat.Dense
	product.Mul(m.dense, other.dense)
	return &Matrix{dense: &product}, nil
}

/*****************************************************************************************************************/

// Invert returns the inverse of m. Only square matrices can be inverted;
// a singular matrix yields ErrSingular.
func (m *Matrix) Invert() (*Matrix, error) {
	if m.Rows() != m.Columns() {
		return nil, errors.New("linalg: only square matrices can be inverted")
	}

	var inv mat.Dense
	if err := inv.Inverse(m.dense); err != nil {
		return nil, ErrSingular
	}
	return &Matrix{dense: &inv}, nil
}

/*****************************************************************************************************************/

// Invert2x2 inverts the 2x2 matrix [[a, b], [c, d]] directly, returning the
// inverse in the same row-major layout. It is a thin convenience wrapper
// around Invert for the projection kernel's one use of it: inverting
// M_RRdot_GPXY (spec §4.7) in sceneray.GpXyParameters.
func Invert2x2(a, b, c, d float64) (ia, ib, ic, id float64, err error) {
	m, err := NewFromSlice([]float64{a, b, c, d}, 2, 2)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	inv, err := m.Invert()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	ia, _ = inv.At(0, 0)
	ib, _ = inv.At(0, 1)
	ic, _ = inv.At(1, 0)
	id, _ = inv.At(1, 1)
	return ia, ib, ic, id, nil
}
