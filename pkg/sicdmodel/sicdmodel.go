/*****************************************************************************************************************/

//	@package	sarproj/sicdmodel
//	@license	Copyright © 2025 sarproj contributors

/*****************************************************************************************************************/

// Package sicdmodel holds the immutable value aggregates the projection
// kernel is built around (spec §3): the SICD metadata parameters that
// describe a collection geometry, and the intermediate ensembles
// (CoaPosVels, ProjectionSets, ScenePointRRdotParams, ScenePointGpXyParams)
// that the kernel's operations produce and consume. Every type here is a
// plain data aggregate: constructed, read, and discarded within a single
// projection call, with no hidden state.
package sicdmodel

/*****************************************************************************************************************/

import (
	"errors"

	"sarproj/pkg/vec3"
)

/*****************************************************************************************************************/

// SpeedOfLight is the physical constant c, in meters/second, shared by
// every retarded-time and range-rate calculation in the kernel.
const SpeedOfLight = 299792458.0

/*****************************************************************************************************************/

// Sentinel errors for the taxonomy named in spec.md §7. NoSolution and
// NonConvergence are communicated via NaN values and a success flag
// respectively, not errors — only the eager-abort conditions get sentinels.
var (
	// ErrUnsupportedGrid is returned when a (Grid_Type, IFA) pair has no
	// implementation (spec §4.5, §7).
	ErrUnsupportedGrid = errors.New("sicdmodel: unsupported grid type / image formation algorithm combination")

	// ErrDegenerateGeometry is returned when uRow/uCol are collinear
	// (imageplane.ToImageGridLocation), or when the ground-plane
	// sensitivity matrix is singular (sceneray.GpXyParameters) (spec §4.2,
	// §4.7, §7). The scene-to-image projection scale factor is not tested
	// against zero: sceneimage.Project returns no error.
	ErrDegenerateGeometry = errors.New("sicdmodel: degenerate geometry")
)

/*****************************************************************************************************************/

// CollectType distinguishes a monostatic collection (single ARP) from a
// bistatic collection (separate transmit and receive APCs).
type CollectType int

/*****************************************************************************************************************/

const (
	Monostatic CollectType = iota
	Bistatic
)

/*****************************************************************************************************************/

// SideOfTrack selects which side of the flight track the imaged scene lies
// on, which in turn fixes the sign convention ("look" direction) used by
// every slant-plane-normal and azimuth-angle calculation in the kernel
// (spec §9: "Sign conventions").
type SideOfTrack int

/*****************************************************************************************************************/

const (
	Left SideOfTrack = iota
	Right
)

/*****************************************************************************************************************/

// Sign returns the look-direction sign associated with s: +1 for Left,
// -1 for Right.
func (s SideOfTrack) Sign() float64 {
	if s == Left {
		return 1
	}
	return -1
}

/*****************************************************************************************************************/

// GridType is the SICD image formation grid type.
type GridType int

/*****************************************************************************************************************/

const (
	RGAZIM GridType = iota
	RGZERO
	XRGYCR
	XCTYAT
	PLANE
)

/*****************************************************************************************************************/

// IFA is the SICD image formation algorithm.
type IFA int

/*****************************************************************************************************************/

const (
	PFA IFA = iota
	RGAZCOMP
)

/*****************************************************************************************************************/

// Polynomial2D is a bivariate polynomial over (xrow, ycol); element [i][j]
// multiplies xrow^i * ycol^j.
type Polynomial2D [][]float64

/*****************************************************************************************************************/

// XYZPolynomial is an (N, 3)-shaped polynomial in a single variable
// (usually time); row i multiplies t^i, columns are X, Y, Z.
type XYZPolynomial [][3]float64

/*****************************************************************************************************************/

// MetadataParams holds the SICD metadata parameters relevant to projection
// (spec §3). Only the fields applicable to Collect_Type are meaningful;
// callers must check Collect_Type before reading the mono- or
// bistatic-only fields.
type MetadataParams struct {
	CollectType CollectType

	// Scene Center Point, geodetic and ECEF.
	SCP    vec3.Vec3
	SCPLat float64
	SCPLon float64
	SCPHAE float64

	// Image plane basis at SCP.
	URow vec3.Vec3
	UCol vec3.Vec3

	SideOfTrack SideOfTrack
	GridType    GridType
	IFA         IFA

	// COA time surface over (xrow, ycol).
	CTCOA Polynomial2D

	// Monostatic aperture position polynomial.
	ARPPoly XYZPolynomial

	// Bistatic transmit/receive/geometric-reference-point polynomials.
	XmtPoly XYZPolynomial
	RcvPoly XYZPolynomial
	GRPPoly XYZPolynomial

	// PFA polar angle (vs. time) and polar aperture scale factor (vs.
	// polar angle) polynomials.
	CPA  []float64
	CKSF []float64

	// SCP-evaluated COA quantities.
	ARPSCPCOA  vec3.Vec3
	VARPSCPCOA vec3.Vec3

	XmtSCPCOA  vec3.Vec3
	VXmtSCPCOA vec3.Vec3
	RcvSCPCOA  vec3.Vec3
	VRcvSCPCOA vec3.Vec3
}

/*****************************************************************************************************************/

// IsMonostatic reports whether m describes a monostatic collection.
func (m *MetadataParams) IsMonostatic() bool {
	return m.CollectType == Monostatic
}

/*****************************************************************************************************************/

// ImageGridLocation is an (xrow, ycol) offset from SCP, in meters, in the
// image grid (spec §3).
type ImageGridLocation struct {
	Xrow float64
	Ycol float64
}

/*****************************************************************************************************************/

// CoaPosVels is the ensemble of sensor positions/velocities evaluated at
// COA time (spec §3). Only the fields applicable to Collect_Type are
// populated; the others are the zero value.
type CoaPosVels struct {
	// Monostatic.
	ARPCOA  vec3.Vec3
	VARPCOA vec3.Vec3

	// Bistatic.
	GRPCOA  vec3.Vec3
	TxCOA   float64
	TrCOA   float64
	XmtCOA  vec3.Vec3
	VXmtCOA vec3.Vec3
	RcvCOA  vec3.Vec3
	VRcvCOA vec3.Vec3
}

/*****************************************************************************************************************/

// ProjectionSets is the per-grid-location COA projection parameter
// ensemble (spec §3). Only the fields applicable to Collect_Type are
// populated.
type ProjectionSets struct {
	TCOA float64

	// Monostatic.
	ARPCOA  vec3.Vec3
	VARPCOA vec3.Vec3
	RCOA    float64
	RdotCOA float64

	// Bistatic.
	TxCOA      float64
	TrCOA      float64
	XmtCOA     vec3.Vec3
	VXmtCOA    vec3.Vec3
	RcvCOA     vec3.Vec3
	VRcvCOA    vec3.Vec3
	RAvgCOA    float64
	RdotAvgCOA float64
}

/*****************************************************************************************************************/

// ScenePointRRdotParams is the range/range-rate/pointing ensemble computed
// at a scene point relative to a set of aperture positions/velocities
// (spec §3, §4.6).
type ScenePointRRdotParams struct {
	RAvgPT    float64
	RdotAvgPT float64
	BPPT      vec3.Vec3 // bistatic pointing vector
	BPDotPT   vec3.Vec3 // time derivative of the bistatic pointing vector
	USPNPT    vec3.Vec3 // slant-plane unit normal
}

/*****************************************************************************************************************/

// ScenePointGpXyParams is the ground-plane basis and range/range-rate <->
// ground-plane-displacement sensitivity ensemble computed at a scene point
// (spec §3, §4.7).
type ScenePointGpXyParams struct {
	UGX vec3.Vec3
	UGY vec3.Vec3

	// MRRdotGPXY maps ground-plane (gx, gy) displacements to (R, Rdot)
	// displacements; MGPXYRRdot is its inverse.
	MRRdotGPXY [2][2]float64
	MGPXYRRdot [2][2]float64
}
