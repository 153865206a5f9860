/*****************************************************************************************************************/

//	@package	sarproj/polynomial
//	@license	Copyright © 2025 sarproj contributors

/*****************************************************************************************************************/

// Package polynomial evaluates the scalar, xyz, and 2-D polynomials that
// describe SICD collection geometry as a function of time (spec §4.1): COA
// time surfaces, aperture position/velocity polynomials, and the PFA polar
// angle / polar aperture scale factor polynomials.
//
// Coefficients are ordered lowest-degree first, i.e. c[i] multiplies t^i,
// matching the SICD metadata convention.
package polynomial

/*****************************************************************************************************************/

import "sarproj/pkg/vec3"

/*****************************************************************************************************************/

// EvalScalar evaluates the 1-D polynomial with coefficients c at t using
// Horner's method.
func EvalScalar(t float64, c []float64) float64 {
	if len(c) == 0 {
		return 0
	}

	result := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		result = result*t + c[i]
	}
	return result
}

/*****************************************************************************************************************/

// DerivScalar returns the coefficients of the derivative of the polynomial
// with coefficients c, applying the i*c[i] rule and reducing the degree by
// one. The derivative of a constant (or empty) polynomial is the zero
// polynomial.
func DerivScalar(c []float64) []float64 {
	if len(c) <= 1 {
		return []float64{0}
	}

	d := make([]float64, len(c)-1)
	for i := 1; i < len(c); i++ {
		d[i-1] = float64(i) * c[i]
	}
	return d
}

/*****************************************************************************************************************/

// EvalXYZ evaluates a (N, 3)-shaped xyz polynomial at t: each of the X, Y,
// and Z coefficient columns is evaluated independently and the results are
// combined into a single 3-vector.
func EvalXYZ(t float64, c [][3]float64) vec3.Vec3 {
	cx, cy, cz := splitXYZ(c)
	return vec3.Vec3{
		X: EvalScalar(t, cx),
		Y: EvalScalar(t, cy),
		Z: EvalScalar(t, cz),
	}
}

/*****************************************************************************************************************/

// DerivXYZ returns the coefficients of the derivative of a (N, 3)-shaped xyz
// polynomial, applied independently to each of the X, Y, Z columns. Used to
// obtain velocity polynomials from position polynomials (spec §4.1).
func DerivXYZ(c [][3]float64) [][3]float64 {
	cx, cy, cz := splitXYZ(c)
	dx := DerivScalar(cx)
	dy := DerivScalar(cy)
	dz := DerivScalar(cz)

	n := len(dx)
	if len(dy) > n {
		n = len(dy)
	}
	if len(dz) > n {
		n = len(dz)
	}

	out := make([][3]float64, n)
	for i := 0; i < n; i++ {
		var row [3]float64
		if i < len(dx) {
			row[0] = dx[i]
		}
		if i < len(dy) {
			row[1] = dy[i]
		}
		if i < len(dz) {
			row[2] = dz[i]
		}
		out[i] = row
	}
	return out
}

/*****************************************************************************************************************/

func splitXYZ(c [][3]float64) (cx, cy, cz []float64) {
	cx = make([]float64, len(c))
	cy = make([]float64, len(c))
	cz = make([]float64, len(c))
	for i, row := range c {
		cx[i] = row[0]
		cy[i] = row[1]
		cz[i] = row[2]
	}
	return
}

/*****************************************************************************************************************/

// Eval2D evaluates the bivariate polynomial c (c[i][j] multiplies
// xrow^i * ycol^j) at (xrow, ycol). Used for the COA time surface,
// cT_COA(xrow, ycol).
func Eval2D(xrow, ycol float64, c [][]float64) float64 {
	var total float64
	for i, row := range c {
		// Evaluate the inner polynomial in ycol for this xrow power, then
		// scale by xrow^i and accumulate.
		inner := EvalScalar(ycol, row)
		total += inner * intPow(xrow, i)
	}
	return total
}

/*****************************************************************************************************************/

func intPow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
