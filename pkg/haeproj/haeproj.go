/*****************************************************************************************************************/

//	@package	sarproj/haeproj
//	@license	Copyright © 2025 sarproj contributors

/*****************************************************************************************************************/

// Package haeproj projects along a COA R/Rdot contour to a surface of
// constant height above the WGS-84 ellipsoid (spec §4.12). It iterates a
// ground-plane projection (monostatic closed-form or bistatic Newton
// iteration) against a succession of tangent planes until the resulting
// ground-plane point's height settles within tolerance of the target
// surface, then makes one straight-line correction along the slant-plane
// normal to land exactly on the HAE0 surface.
package haeproj

/*****************************************************************************************************************/

import (
	"math"

	"sarproj/pkg/geodetic"
	"sarproj/pkg/groundproj"
	"sarproj/pkg/sceneray"
	"sarproj/pkg/sicdmodel"
	"sarproj/pkg/vec3"
)

/*****************************************************************************************************************/

// Options holds the tunables for ToConstantHAESurface's outer
// tangent-plane iteration (spec §4.12, §9 defaults).
type Options struct {
	// DeltaHAEMax is the height-convergence threshold, in meters.
	DeltaHAEMax float64

	// NLim is the maximum number of outer iterations to perform.
	NLim int

	// Bistatic is forwarded to the inner bistatic ground-plane projection
	// on every outer iteration; unused for a monostatic collection.
	Bistatic groundproj.BiOptions
}

/*****************************************************************************************************************/

// DefaultOptions returns the kernel's default constant-HAE projection
// tunables: DeltaHAEMax = 1.0, NLim = 3, with the default bistatic
// ground-plane projection tunables for the inner loop (spec §9).
func DefaultOptions() Options {
	return Options{DeltaHAEMax: 1.0, NLim: 3, Bistatic: groundproj.DefaultBiOptions()}
}

/*****************************************************************************************************************/

// ToConstantHAESurface projects along the R/Rdot contour described by ps
// to the surface of constant height hae0 above the WGS-84 ellipsoid (spec
// §4.12).
func ToConstantHAESurface(meta *sicdmodel.MetadataParams, ps sicdmodel.ProjectionSets, hae0 float64, opts Options) (spp vec3.Vec3, deltaHAE float64, success bool) {
	uGpn := geodetic.UpVector(meta.SCPLat, meta.SCPLon)
	gref := meta.SCP.Add(uGpn.Scale(hae0 - meta.SCPHAE))

	var gpp, uUp vec3.Vec3
	groundSuccess := false
	deltaHAE = math.NaN()

	for iter := 0; iter < opts.NLim; iter++ {
		if meta.IsMonostatic() {
			gpp = groundproj.Mono(meta, ps, gref, uGpn)
			groundSuccess = gpp.IsFinite()
		} else {
			gpp, _, groundSuccess = groundproj.Bi(meta, ps, gref, uGpn, opts.Bistatic)
		}

		if !groundSuccess {
			return vec3.NaN(), math.NaN(), false
		}

		lat, lon, height := geodetic.ECEFToGeodetic(gpp)
		uUp = geodetic.UpVector(lat, lon)
		deltaHAE = height - hae0

		if deltaHAE <= opts.DeltaHAEMax {
			success = true
			break
		}

		gref = gpp.Sub(uUp.Scale(deltaHAE))
		uGpn = uUp
	}

	// Whether or not the iteration converged, gpp/uUp/deltaHAE reflect its
	// last estimate; finalize and return that best-effort point rather than
	// discarding it, leaving success to report whether it actually converged.
	spp = finalizeSurfacePoint(meta, ps, gpp, uUp, deltaHAE, hae0)

	return spp, deltaHAE, success
}

/*****************************************************************************************************************/

// finalizeSurfacePoint makes the final straight-line correction from the
// converged ground-plane point gpp, along the slant-plane normal tangent
// to the R/Rdot contour there, onto the exact HAE0 surface (spec §4.12,
// final step).
func finalizeSurfacePoint(meta *sicdmodel.MetadataParams, ps sicdmodel.ProjectionSets, gpp, uUp vec3.Vec3, deltaHAE, hae0 float64) vec3.Vec3 {
	var uSpn vec3.Vec3
	look := meta.SideOfTrack.Sign()

	if meta.IsMonostatic() {
		uSpn = ps.VARPCOA.Cross(gpp.Sub(ps.ARPCOA)).Scale(look).Unit()
	} else {
		coaPV := sicdmodel.CoaPosVels{
			XmtCOA:  ps.XmtCOA,
			VXmtCOA: ps.VXmtCOA,
			RcvCOA:  ps.RcvCOA,
			VRcvCOA: ps.VRcvCOA,
		}
		uSpn = sceneray.PtRRdotParameters(meta, coaPV, gpp).USPNPT
	}

	sf := uUp.Dot(uSpn)
	slp := gpp.Sub(uSpn.Scale(deltaHAE / sf))

	lat, lon, _ := geodetic.ECEFToGeodetic(slp)
	return geodetic.GeodeticToECEF(lat, lon, hae0)
}
