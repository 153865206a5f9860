/*****************************************************************************************************************/

//	@package	sarproj/groundproj
//	@license	Copyright © 2025 sarproj contributors

/*****************************************************************************************************************/

// Package groundproj projects along R/Rdot contours to an arbitrary
// ground plane: a closed-form solution for monostatic collections (spec
// §4.8) and an iterative solution for bistatic collections (spec §4.9).
// Both take a COA projection set and a ground plane (reference point plus
// unit normal) and return the ground-plane intersection point.
package groundproj

/*****************************************************************************************************************/

import (
	"math"

	"sarproj/pkg/geodetic"
	"sarproj/pkg/sceneray"
	"sarproj/pkg/sicdmodel"
	"sarproj/pkg/vec3"
)

/*****************************************************************************************************************/

// BiOptions holds the tunables for Bi's Newton iteration (spec §4.9, §9
// defaults).
type BiOptions struct {
	// DeltaGPGPP is the ground-plane displacement threshold, in meters,
	// below which the iteration is considered converged.
	DeltaGPGPP float64

	// MaxIter is the maximum number of iterations to perform.
	MaxIter int
}

/*****************************************************************************************************************/

// DefaultBiOptions returns the kernel's default bistatic ground-plane
// projection tunables: DeltaGPGPP = 0.010, MaxIter = 10 (spec §9).
func DefaultBiOptions() BiOptions {
	return BiOptions{DeltaGPGPP: 0.010, MaxIter: 10}
}

/*****************************************************************************************************************/

// Mono projects along the monostatic R/Rdot contour described by ps to the
// plane through gref with unit normal ugpn (spec §4.8). It returns
// vec3.NaN() when the contour does not intersect the plane or the
// azimuth-angle cosine falls outside [-1, 1] (spec §7 NoSolution).
func Mono(meta *sicdmodel.MetadataParams, ps sicdmodel.ProjectionSets, gref, ugpn vec3.Vec3) vec3.Vec3 {
	arpZ := ps.ARPCOA.Sub(gref).Dot(ugpn)
	if math.Abs(arpZ) > ps.RCOA {
		return vec3.NaN()
	}
	agpn := ps.ARPCOA.Sub(ugpn.Scale(arpZ))

	g := math.Sqrt(ps.RCOA*ps.RCOA - arpZ*arpZ)
	cosGraz := g / ps.RCOA
	sinGraz := arpZ / ps.RCOA

	vz := ps.VARPCOA.Dot(ugpn)
	vxSq := ps.VARPCOA.Dot(ps.VARPCOA) - vz*vz
	if vxSq < 0 {
		vxSq = 0
	}
	vx := math.Sqrt(vxSq)
	if vx == 0 {
		return vec3.NaN()
	}

	ux := ps.VARPCOA.Sub(ugpn.Scale(vz)).Scale(1 / vx)
	uy := ugpn.Cross(ux)

	cosAz := (-ps.RdotCOA + vz*sinGraz) / (vx * cosGraz)
	if cosAz < -1.0 || cosAz > 1.0 {
		return vec3.NaN()
	}

	look := meta.SideOfTrack.Sign()
	sinAz := look * math.Sqrt(1-cosAz*cosAz)

	return agpn.Add(ux.Scale(g * cosAz)).Add(uy.Scale(g * sinAz))
}

/*****************************************************************************************************************/

// MonoBatch applies Mono to every projection set in pss.
func MonoBatch(meta *sicdmodel.MetadataParams, pss []sicdmodel.ProjectionSets, gref, ugpn vec3.Vec3) []vec3.Vec3 {
	out := make([]vec3.Vec3, len(pss))
	for i, ps := range pss {
		out[i] = Mono(meta, ps, gref, ugpn)
	}
	return out
}

/*****************************************************************************************************************/

// Bi projects along the bistatic R/Rdot contour described by ps to the
// plane through gref with unit normal ugpn, by Newton iteration on the
// ground-plane sensitivity matrix (spec §4.9). The initial guess is the
// intersection of the "up at SCP" ray from SCP with the plane, per
// spec §9's guidance that this converges quickly near SCP. Iteration
// stops once the ground-plane displacement falls at or below
// opts.DeltaGPGPP, or after opts.MaxIter iterations; success reports
// whether convergence was reached.
func Bi(meta *sicdmodel.MetadataParams, ps sicdmodel.ProjectionSets, gref, ugpn vec3.Vec3, opts BiOptions) (g vec3.Vec3, deltaGP float64, success bool) {
	uUpSCP := geodetic.UpVector(meta.SCPLat, meta.SCPLon)

	denom := uUpSCP.Dot(ugpn)
	distGP := gref.Sub(meta.SCP).Dot(ugpn) / denom
	g = meta.SCP.Add(uUpSCP.Scale(distGP))

	deltaGP = math.NaN()
	success = false

	for iter := 0; iter < opts.MaxIter; iter++ {
		coaPV := sicdmodel.CoaPosVels{
			XmtCOA:  ps.XmtCOA,
			VXmtCOA: ps.VXmtCOA,
			RcvCOA:  ps.RcvCOA,
			VRcvCOA: ps.VRcvCOA,
		}
		rrdot := sceneray.PtRRdotParameters(meta, coaPV, g)

		gpxy, err := sceneray.GpXyParameters(g, ugpn, rrdot.BPPT, rrdot.BPDotPT)
		if err != nil {
			return vec3.NaN(), math.NaN(), false
		}

		deltaRAvg := ps.RAvgCOA - rrdot.RAvgPT
		deltaRdotAvg := ps.RdotAvgCOA - rrdot.RdotAvgPT

		dgx := gpxy.MGPXYRRdot[0][0]*deltaRAvg + gpxy.MGPXYRRdot[0][1]*deltaRdotAvg
		dgy := gpxy.MGPXYRRdot[1][0]*deltaRAvg + gpxy.MGPXYRRdot[1][1]*deltaRdotAvg

		deltaGP = math.Hypot(dgx, dgy)
		g = g.Add(gpxy.UGX.Scale(dgx)).Add(gpxy.UGY.Scale(dgy))

		if deltaGP <= opts.DeltaGPGPP {
			success = true
			break
		}
	}

	return g, deltaGP, success
}
