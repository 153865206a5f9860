/*****************************************************************************************************************/

//	@package	sarproj/coa
//	@license	Copyright © 2025 sarproj contributors

/*****************************************************************************************************************/

// Package coa computes Center-of-Aperture (COA) time at a grid location and
// the sensor positions/velocities derived from it (spec §4.3, §4.4), along
// with the SCP-referenced range/range-rate and slant-plane normal that
// anchor every projection (spec §4.6's monostatic special case, folded in
// here since SCP-relative quantities are needed before any grid location is
// known).
package coa

/*****************************************************************************************************************/

import (
	"sarproj/pkg/polynomial"
	"sarproj/pkg/sicdmodel"
	"sarproj/pkg/vec3"
)

/*****************************************************************************************************************/

// Time evaluates the COA time surface at an image grid location:
// cT_COA(xrow, ycol) (spec §4.3).
func Time(meta *sicdmodel.MetadataParams, loc sicdmodel.ImageGridLocation) float64 {
	return polynomial.Eval2D(loc.Xrow, loc.Ycol, meta.CTCOA)
}

/*****************************************************************************************************************/

// TimeBatch applies Time to every location in locs.
func TimeBatch(meta *sicdmodel.MetadataParams, locs []sicdmodel.ImageGridLocation) []float64 {
	out := make([]float64, len(locs))
	for i, loc := range locs {
		out[i] = Time(meta, loc)
	}
	return out
}

/*****************************************************************************************************************/

// PosVel computes the COA sensor positions and velocities at COA time
// tCOA (spec §4.4). For a monostatic collection, ARP_Poly (and its
// derivative) is evaluated directly at tCOA. For a bistatic collection,
// the one-step retarded-time algorithm is used: GRP_COA is evaluated at
// tCOA, and the transmit/receive times are each offset from tCOA by the
// one-way light time to GRP_COA, with no further iteration (spec §4.4,
// §9 "Retarded-time approximation" — this is deliberate and must not be
// iterated to convergence).
func PosVel(meta *sicdmodel.MetadataParams, tCOA float64) sicdmodel.CoaPosVels {
	if meta.IsMonostatic() {
		return sicdmodel.CoaPosVels{
			ARPCOA:  polynomial.EvalXYZ(tCOA, meta.ARPPoly),
			VARPCOA: polynomial.EvalXYZ(tCOA, polynomial.DerivXYZ(meta.ARPPoly)),
		}
	}

	grpCOA := polynomial.EvalXYZ(tCOA, meta.GRPPoly)

	x0 := polynomial.EvalXYZ(tCOA, meta.XmtPoly)
	rX0 := x0.Sub(grpCOA).Norm()
	txCOA := tCOA - rX0/sicdmodel.SpeedOfLight

	r0 := polynomial.EvalXYZ(tCOA, meta.RcvPoly)
	rR0 := r0.Sub(grpCOA).Norm()
	trCOA := tCOA + rR0/sicdmodel.SpeedOfLight

	return sicdmodel.CoaPosVels{
		GRPCOA:  grpCOA,
		TxCOA:   txCOA,
		TrCOA:   trCOA,
		XmtCOA:  polynomial.EvalXYZ(txCOA, meta.XmtPoly),
		VXmtCOA: polynomial.EvalXYZ(txCOA, polynomial.DerivXYZ(meta.XmtPoly)),
		RcvCOA:  polynomial.EvalXYZ(trCOA, meta.RcvPoly),
		VRcvCOA: polynomial.EvalXYZ(trCOA, polynomial.DerivXYZ(meta.RcvPoly)),
	}
}

/*****************************************************************************************************************/

// bistaticSCPContour computes the transmit/receive range, range-rate,
// pointing vector and its time derivative at SCP, shared by
// ScpRRdot and ScpSlantPlaneNormal (spec §9, point 1: both public SCP
// operations reduce to this single private computation in the reference
// implementation).
type bistaticSCPContour struct {
	rAvg, rdotAvg float64
	bp, bpDot     vec3.Vec3
}

/*****************************************************************************************************************/

func computeBistaticSCPContour(meta *sicdmodel.MetadataParams) bistaticSCPContour {
	rXmt := meta.XmtSCPCOA.Sub(meta.SCP).Norm()
	uXmt := meta.XmtSCPCOA.Sub(meta.SCP).Scale(1 / rXmt)
	rdotXmt := meta.VXmtSCPCOA.Dot(uXmt)
	uXmtDot := meta.VXmtSCPCOA.Sub(uXmt.Scale(rdotXmt)).Scale(1 / rXmt)

	rRcv := meta.RcvSCPCOA.Sub(meta.SCP).Norm()
	uRcv := meta.RcvSCPCOA.Sub(meta.SCP).Scale(1 / rRcv)
	rdotRcv := meta.VRcvSCPCOA.Dot(uRcv)
	uRcvDot := meta.VRcvSCPCOA.Sub(uRcv.Scale(rdotRcv)).Scale(1 / rRcv)

	return bistaticSCPContour{
		rAvg:    (rXmt + rRcv) / 2,
		rdotAvg: (rdotXmt + rdotRcv) / 2,
		bp:      uXmt.Add(uRcv).Scale(0.5),
		bpDot:   uXmtDot.Add(uRcvDot).Scale(0.5),
	}
}

/*****************************************************************************************************************/

// ScpRRdot computes the COA range and range-rate for the Scene Center
// Point (spec §6 compute_scp_coa_r_rdot). For a monostatic image these are
// relative to the ARP; for a bistatic image these are averages relative
// to the transmit/receive COA APCs.
func ScpRRdot(meta *sicdmodel.MetadataParams) (r, rdot float64) {
	if meta.IsMonostatic() {
		toSCP := meta.ARPSCPCOA.Sub(meta.SCP)
		r = toSCP.Norm()
		u := toSCP.Scale(1 / r)
		rdot = meta.VARPSCPCOA.Dot(u)
		return r, rdot
	}

	c := computeBistaticSCPContour(meta)
	return c.rAvg, c.rdotAvg
}

/*****************************************************************************************************************/

// ScpSlantPlaneNormal computes the slant-plane unit normal for SCP at its
// COA (spec §6 compute_scp_coa_slant_plane_normal). The look-direction
// sign from SideOfTrack (spec §9) is applied before normalizing.
func ScpSlantPlaneNormal(meta *sicdmodel.MetadataParams) vec3.Vec3 {
	look := meta.SideOfTrack.Sign()

	var spn vec3.Vec3
	if meta.IsMonostatic() {
		spn = meta.ARPSCPCOA.Sub(meta.SCP).Cross(meta.VARPSCPCOA).Scale(look)
	} else {
		c := computeBistaticSCPContour(meta)
		spn = c.bp.Cross(c.bpDot).Scale(look)
	}

	return spn.Unit()
}
