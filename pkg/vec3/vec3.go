/*****************************************************************************************************************/

//	@package	sarproj/vec3
//	@license	Copyright © 2025 sarproj contributors

/*****************************************************************************************************************/

// Package vec3 provides the 3-element ECEF Cartesian vector arithmetic used
// throughout the projection kernel. All components are in meters unless
// stated otherwise by the caller (e.g. velocities are meters/second).
package vec3

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// Vec3 is a 3-element Cartesian vector, ECEF WGS-84 unless otherwise noted.
type Vec3 struct {
	X, Y, Z float64
}

/*****************************************************************************************************************/

// New constructs a Vec3 from its three components.
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

/*****************************************************************************************************************/

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

/*****************************************************************************************************************/

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

/*****************************************************************************************************************/

// Scale returns s * v.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: s * v.X, Y: s * v.Y, Z: s * v.Z}
}

/*****************************************************************************************************************/

// Dot returns the scalar (inner) product v . w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

/*****************************************************************************************************************/

// Cross returns the vector (cross) product v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

/*****************************************************************************************************************/

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

/*****************************************************************************************************************/

// Unit returns v normalized to unit length. If v is the zero vector, the
// result carries NaN components, matching the projection kernel's
// no-solution-is-NaN propagation policy (spec §7).
func (v Vec3) Unit() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
	}
	return v.Scale(1 / n)
}

/*****************************************************************************************************************/

// IsFinite reports whether all three components of v are finite (not NaN or
// +/-Inf). It is used to detect per-element NoSolution outcomes (spec §7).
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

/*****************************************************************************************************************/

// NaN returns the vector (NaN, NaN, NaN), the kernel's sentinel for a
// per-element projection that has no solution.
func NaN() Vec3 {
	n := math.NaN()
	return Vec3{X: n, Y: n, Z: n}
}
