/*****************************************************************************************************************/

//	@package	sarproj/polynomial
//	@license	Copyright © 2025 sarproj contributors

/*****************************************************************************************************************/

package polynomial

/*****************************************************************************************************************/

import (
	"math"
	"testing"
)

/*****************************************************************************************************************/

func floatEquals(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

/*****************************************************************************************************************/

func TestEvalScalarConstant(t *testing.T) {
	if got := EvalScalar(42, []float64{7}); got != 7 {
		t.Errorf("EvalScalar() = %v; want 7", got)
	}
}

/*****************************************************************************************************************/

func TestEvalScalarQuadratic(t *testing.T) {
	// 2 + 3t + 4t^2 at t=2 -> 2 + 6 + 16 = 24
	got := EvalScalar(2, []float64{2, 3, 4})
	if !floatEquals(got, 24, 1e-12) {
		t.Errorf("EvalScalar() = %v; want 24", got)
	}
}

/*****************************************************************************************************************/

func TestDerivScalar(t *testing.T) {
	// d/dt (2 + 3t + 4t^2) = 3 + 8t
	got := DerivScalar([]float64{2, 3, 4})
	want := []float64{3, 8}

	for i := range want {
		if !floatEquals(got[i], want[i], 1e-12) {
			t.Errorf("DerivScalar()[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

/*****************************************************************************************************************/

func TestDerivScalarConstant(t *testing.T) {
	got := DerivScalar([]float64{5})
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("DerivScalar() of constant = %v; want [0]", got)
	}
}

/*****************************************************************************************************************/

func TestEvalXYZ(t *testing.T) {
	c := [][3]float64{
		{0, 0, 100000},
		{1, 2, 3},
	}
	got := EvalXYZ(2, c)
	want := [3]float64{2, 4, 100006}

	if !floatEquals(got.X, want[0], 1e-9) || !floatEquals(got.Y, want[1], 1e-9) || !floatEquals(got.Z, want[2], 1e-9) {
		t.Errorf("EvalXYZ() = %v; want %v", got, want)
	}
}

/*****************************************************************************************************************/

func TestDerivXYZConstantVelocityIsZero(t *testing.T) {
	c := [][3]float64{{1, 2, 3}}
	d := DerivXYZ(c)
	got := EvalXYZ(5, d)

	if got.X != 0 || got.Y != 0 || got.Z != 0 {
		t.Errorf("DerivXYZ() of constant position = %v; want zero velocity", got)
	}
}

/*****************************************************************************************************************/

func TestEval2D(t *testing.T) {
	// c[i][j] * xrow^i * ycol^j; 1 + 2*xrow + 3*ycol + 4*xrow*ycol
	c := [][]float64{
		{1, 3},
		{2, 4},
	}
	got := Eval2D(5, 7, c)
	want := 1.0 + 2*5 + 3*7 + 4*5*7

	if !floatEquals(got, want, 1e-9) {
		t.Errorf("Eval2D() = %v; want %v", got, want)
	}
}

/*****************************************************************************************************************/

func TestEval2DConstant(t *testing.T) {
	c := [][]float64{{9}}
	if got := Eval2D(123, 456, c); got != 9 {
		t.Errorf("Eval2D() = %v; want 9", got)
	}
}
