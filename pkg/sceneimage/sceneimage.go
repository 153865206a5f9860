/*****************************************************************************************************************/

//	@package	sarproj/sceneimage
//	@license	Copyright © 2025 sarproj contributors

/*****************************************************************************************************************/

// Package sceneimage maps a point in the three-dimensional scene to an
// image grid location by outer iteration (spec §4.11): each iteration
// projects the current ground-plane estimate into the image plane, reads
// off the image grid location there, computes the COA projection set,
// and projects precisely back to the spherical-earth ground plane through
// the scene point; the loop stops once that ground-plane displacement is
// within tolerance.
package sceneimage

/*****************************************************************************************************************/

import (
	"math"

	"sarproj/pkg/coa"
	"sarproj/pkg/contour"
	"sarproj/pkg/groundproj"
	"sarproj/pkg/imageplane"
	"sarproj/pkg/sicdmodel"
	"sarproj/pkg/vec3"
)

/*****************************************************************************************************************/

// Options holds the tunables for Project's outer iteration (spec §4.11,
// §9 defaults).
type Options struct {
	// DeltaGPS2I is the ground-plane displacement threshold, in meters,
	// below which the outer iteration is considered converged.
	DeltaGPS2I float64

	// MaxIter is the maximum number of outer iterations to perform.
	MaxIter int

	// Bistatic is forwarded to the inner bistatic ground-plane projection
	// on every outer iteration; unused for a monostatic collection.
	Bistatic groundproj.BiOptions
}

/*****************************************************************************************************************/

// DefaultOptions returns the kernel's default scene-to-image tunables:
// DeltaGPS2I = 0.001, MaxIter = 10, with the default bistatic ground-plane
// projection tunables for the inner loop (spec §9).
func DefaultOptions() Options {
	return Options{DeltaGPS2I: 0.001, MaxIter: 10, Bistatic: groundproj.DefaultBiOptions()}
}

/*****************************************************************************************************************/

// Project maps scene point s to an image grid location (spec §4.11).
// success is false if convergence was not reached, or if the inner
// ground-plane projection of the converging iteration failed. When the
// image-grid conversion or the projection-set computation returns an
// error, loc is the zero value and deltaGP is NaN. When the last
// iteration's ground-plane projection is not finite, deltaGP is NaN and
// loc is the grid location read on that iteration.
func Project(meta *sicdmodel.MetadataParams, s vec3.Vec3, opts Options) (loc sicdmodel.ImageGridLocation, deltaGP float64, success bool) {
	ugpn := s.Unit()

	uProj := coa.ScpSlantPlaneNormal(meta)
	ipn := meta.URow.Cross(meta.UCol)
	uIpn := ipn.Unit()
	sf := uProj.Dot(uIpn)

	g := s
	deltaGP = math.NaN()
	groundSuccess := false

	for iter := 0; iter < opts.MaxIter; iter++ {
		dist := meta.SCP.Sub(g).Dot(uIpn) / sf
		i := g.Add(uProj.Scale(dist))

		var err error
		loc, err = imageplane.ToImageGridLocation(meta, i)
		if err != nil {
			return sicdmodel.ImageGridLocation{}, math.NaN(), false
		}

		ps, err := contour.ProjectionSets(meta, loc)
		if err != nil {
			return sicdmodel.ImageGridLocation{}, math.NaN(), false
		}

		var p vec3.Vec3
		if meta.IsMonostatic() {
			p = groundproj.Mono(meta, ps, s, ugpn)
			groundSuccess = p.IsFinite()
		} else {
			p, _, groundSuccess = groundproj.Bi(meta, ps, s, ugpn, opts.Bistatic)
		}

		deltaP := s.Sub(p)
		deltaGP = deltaP.Norm()

		if deltaGP <= opts.DeltaGPS2I {
			success = groundSuccess
			break
		}

		g = g.Add(deltaP)
	}

	return loc, deltaGP, success
}

/*****************************************************************************************************************/

// ProjectBatch applies Project to every scene point in pts.
func ProjectBatch(meta *sicdmodel.MetadataParams, pts []vec3.Vec3, opts Options) ([]sicdmodel.ImageGridLocation, []float64, bool) {
	locs := make([]sicdmodel.ImageGridLocation, len(pts))
	deltas := make([]float64, len(pts))
	allSuccess := true

	for i, pt := range pts {
		loc, deltaGP, success := Project(meta, pt, opts)
		locs[i] = loc
		deltas[i] = deltaGP
		allSuccess = allSuccess && success
	}

	return locs, deltas, allSuccess
}
