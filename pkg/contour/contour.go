/*****************************************************************************************************************/

//	@package	sarproj/contour
//	@license	Copyright © 2025 sarproj contributors

/*****************************************************************************************************************/

// Package contour computes the COA range/range-rate contour at an image
// grid location (spec §4.5) and assembles the full per-location COA
// projection set (spec §4.10). The contour computation dispatches on
// (Grid_Type, IFA); only RGAZIM+PFA is implemented, matching spec §4.5's
// note that the remaining combinations are out of scope for this kernel
// and must fail loudly rather than silently approximate.
package contour

/*****************************************************************************************************************/

import (
	"math"

	"sarproj/pkg/coa"
	"sarproj/pkg/polynomial"
	"sarproj/pkg/sceneray"
	"sarproj/pkg/sicdmodel"
)

/*****************************************************************************************************************/

// RRdot computes the COA range and range-rate at an image grid location,
// given its COA time and sensor positions/velocities (spec §4.5). It
// returns sicdmodel.ErrUnsupportedGrid for every (Grid_Type, IFA)
// combination other than RGAZIM+PFA.
func RRdot(meta *sicdmodel.MetadataParams, loc sicdmodel.ImageGridLocation, tCOA float64, coaPV sicdmodel.CoaPosVels) (r, rdot float64, err error) {
	if meta.GridType == sicdmodel.RGAZIM && meta.IFA == sicdmodel.PFA {
		return rRdotFromRgazimPfa(meta, loc, tCOA, coaPV)
	}
	return 0, 0, sicdmodel.ErrUnsupportedGrid
}

/*****************************************************************************************************************/

// rRdotFromRgazimPfa implements Image Grid To R/Rdot for Grid_Type =
// RGAZIM, IFA = PFA, following the polar-format-algorithm range/range-rate
// relationship relative to SCP (spec §4.5, §9 "RGAZIM+PFA").
func rRdotFromRgazimPfa(meta *sicdmodel.MetadataParams, loc sicdmodel.ImageGridLocation, tCOA float64, coaPV sicdmodel.CoaPosVels) (r, rdot float64, err error) {
	var rScp, rdotScp float64
	if meta.IsMonostatic() {
		toSCP := coaPV.ARPCOA.Sub(meta.SCP)
		rScp = toSCP.Norm()
		rdotScp = coaPV.VARPCOA.Dot(toSCP) / rScp
	} else {
		params := sceneray.PtRRdotParameters(meta, coaPV, meta.SCP)
		rScp = params.RAvgPT
		rdotScp = params.RdotAvgPT
	}

	rgTgt, azTgt := loc.Xrow, loc.Ycol

	theta := polynomial.EvalScalar(tCOA, meta.CPA)
	dThetaDt := polynomial.EvalScalar(tCOA, polynomial.DerivScalar(meta.CPA))

	ksf := polynomial.EvalScalar(theta, meta.CKSF)
	dKsfDTheta := polynomial.EvalScalar(theta, polynomial.DerivScalar(meta.CKSF))

	dPhiDKa := rgTgt*math.Cos(theta) + azTgt*math.Sin(theta)
	dPhiDKc := -rgTgt*math.Sin(theta) + azTgt*math.Cos(theta)

	deltaR := ksf * dPhiDKa
	deltaRdot := (dKsfDTheta*dPhiDKa + ksf*dPhiDKc) * dThetaDt

	return rScp + deltaR, rdotScp + deltaRdot, nil
}

/*****************************************************************************************************************/

// ProjectionSets computes the full COA projection set at an image grid
// location: COA time, sensor positions/velocities, and R/Rdot (spec
// §4.10). Only the fields relevant to meta.CollectType are populated in
// the result.
func ProjectionSets(meta *sicdmodel.MetadataParams, loc sicdmodel.ImageGridLocation) (sicdmodel.ProjectionSets, error) {
	tCOA := coa.Time(meta, loc)
	coaPV := coa.PosVel(meta, tCOA)

	r, rdot, err := RRdot(meta, loc, tCOA, coaPV)
	if err != nil {
		return sicdmodel.ProjectionSets{}, err
	}

	if meta.IsMonostatic() {
		return sicdmodel.ProjectionSets{
			TCOA:    tCOA,
			ARPCOA:  coaPV.ARPCOA,
			VARPCOA: coaPV.VARPCOA,
			RCOA:    r,
			RdotCOA: rdot,
		}, nil
	}

	return sicdmodel.ProjectionSets{
		TCOA:       tCOA,
		TxCOA:      coaPV.TxCOA,
		TrCOA:      coaPV.TrCOA,
		XmtCOA:     coaPV.XmtCOA,
		VXmtCOA:    coaPV.VXmtCOA,
		RcvCOA:     coaPV.RcvCOA,
		VRcvCOA:    coaPV.VRcvCOA,
		RAvgCOA:    r,
		RdotAvgCOA: rdot,
	}, nil
}

/*****************************************************************************************************************/

// ProjectionSetsBatch applies ProjectionSets to every location in locs. If
// any location's grid/IFA combination is unsupported, it returns the error
// from the first such failure and no partial results.
func ProjectionSetsBatch(meta *sicdmodel.MetadataParams, locs []sicdmodel.ImageGridLocation) ([]sicdmodel.ProjectionSets, error) {
	out := make([]sicdmodel.ProjectionSets, len(locs))
	for i, loc := range locs {
		ps, err := ProjectionSets(meta, loc)
		if err != nil {
			return nil, err
		}
		out[i] = ps
	}
	return out, nil
}
