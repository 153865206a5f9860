/*****************************************************************************************************************/

//	@package	sarproj/sceneray
//	@license	Copyright © 2025 sarproj contributors

/*****************************************************************************************************************/

// Package sceneray computes the range/range-rate parameters of a scene
// point relative to a set of COA sensor positions/velocities (spec §4.6),
// and the ground-plane basis and sensitivity matrices that relate a
// ground-plane displacement to a displacement in (R, Rdot) (spec §4.7).
// Both operations treat a monostatic collection as the bistatic case with
// transmit and receive APC coincident at the ARP, per spec §9's note that
// the monostatic equations are a specialization of the bistatic ones.
package sceneray

/*****************************************************************************************************************/

import (
	"sarproj/internal/linalg"
	"sarproj/pkg/sicdmodel"
	"sarproj/pkg/vec3"
)

/*****************************************************************************************************************/

// PtRRdotParameters computes the range, range-rate, bistatic pointing
// vector, its time derivative, and slant-plane unit normal at scene point
// pt relative to the transmit/receive aperture positions and velocities in
// coaPV (spec §4.6). For a monostatic collection, Xmt_COA and Rcv_COA are
// both the ARP, so the transmit and receive terms coincide.
func PtRRdotParameters(meta *sicdmodel.MetadataParams, coaPV sicdmodel.CoaPosVels, pt vec3.Vec3) sicdmodel.ScenePointRRdotParams {
	xmt, vXmt := coaPV.XmtCOA, coaPV.VXmtCOA
	rcv, vRcv := coaPV.RcvCOA, coaPV.VRcvCOA
	if meta.IsMonostatic() {
		xmt, vXmt = coaPV.ARPCOA, coaPV.VARPCOA
		rcv, vRcv = coaPV.ARPCOA, coaPV.VARPCOA
	}

	rXmtPt := xmt.Sub(pt).Norm()
	uXmtPt := xmt.Sub(pt).Scale(1 / rXmtPt)
	rdotXmtPt := vXmt.Dot(uXmtPt)
	uXmtDotPt := vXmt.Sub(uXmtPt.Scale(rdotXmtPt)).Scale(1 / rXmtPt)

	rRcvPt := rcv.Sub(pt).Norm()
	uRcvPt := rcv.Sub(pt).Scale(1 / rRcvPt)
	rdotRcvPt := vRcv.Dot(uRcvPt)
	uRcvDotPt := vRcv.Sub(uRcvPt.Scale(rdotRcvPt)).Scale(1 / rRcvPt)

	rAvgPt := (rXmtPt + rRcvPt) / 2
	rdotAvgPt := (rdotXmtPt + rdotRcvPt) / 2

	bpPt := uXmtPt.Add(uRcvPt).Scale(0.5)
	bpDotPt := uXmtDotPt.Add(uRcvDotPt).Scale(0.5)

	look := meta.SideOfTrack.Sign()
	uspnPt := bpPt.Cross(bpDotPt).Scale(look).Unit()

	return sicdmodel.ScenePointRRdotParams{
		RAvgPT:    rAvgPt,
		RdotAvgPT: rdotAvgPt,
		BPPT:      bpPt,
		BPDotPT:   bpDotPt,
		USPNPT:    uspnPt,
	}
}

/*****************************************************************************************************************/

// PtRRdotParametersBatch applies PtRRdotParameters to every point in pts.
func PtRRdotParametersBatch(meta *sicdmodel.MetadataParams, coaPV sicdmodel.CoaPosVels, pts []vec3.Vec3) []sicdmodel.ScenePointRRdotParams {
	out := make([]sicdmodel.ScenePointRRdotParams, len(pts))
	for i, pt := range pts {
		out[i] = PtRRdotParameters(meta, coaPV, pt)
	}
	return out
}

/*****************************************************************************************************************/

// GpXyParameters computes the ground-plane basis vectors uGX/uGY at scene
// point pt, with ground-plane unit normal ugpn, and the 2x2 sensitivity
// matrices relating a ground-plane displacement (gx, gy) to a displacement
// in (R, Rdot) (spec §4.7). bpPt and bpDotPt are the bistatic pointing
// vector and its time derivative from PtRRdotParameters, evaluated at the
// same pt.
func GpXyParameters(pt, ugpn, bpPt, bpDotPt vec3.Vec3) (sicdmodel.ScenePointGpXyParams, error) {
	gx := bpPt.Sub(ugpn.Scale(bpPt.Dot(ugpn)))
	ugx := gx.Unit()

	sgn := -1.0
	if ugpn.Dot(pt) > 0 {
		sgn = 1.0
	}

	gy := ugpn.Cross(ugx).Scale(sgn)
	ugy := gy.Unit()

	m00 := -bpPt.Dot(ugx)
	m01 := 0.0
	m10 := -bpDotPt.Dot(ugx)
	m11 := -bpDotPt.Dot(ugy)

	i00, i01, i10, i11, err := linalg.Invert2x2(m00, m01, m10, m11)
	if err != nil {
		return sicdmodel.ScenePointGpXyParams{}, sicdmodel.ErrDegenerateGeometry
	}

	return sicdmodel.ScenePointGpXyParams{
		UGX:        ugx,
		UGY:        ugy,
		MRRdotGPXY: [2][2]float64{{m00, m01}, {m10, m11}},
		MGPXYRRdot: [2][2]float64{{i00, i01}, {i10, i11}},
	}, nil
}

/*****************************************************************************************************************/

// GpXyParametersBatch applies GpXyParameters to every (point, normal,
// bistatic pointing vector, derivative) tuple across the parallel slices.
func GpXyParametersBatch(pts, ugpns, bpPts, bpDotPts []vec3.Vec3) ([]sicdmodel.ScenePointGpXyParams, error) {
	out := make([]sicdmodel.ScenePointGpXyParams, len(pts))
	for i := range pts {
		p, err := GpXyParameters(pts[i], ugpns[i], bpPts[i], bpDotPts[i])
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
