/*****************************************************************************************************************/

//	@package	sarproj/sceneimage
//	@license	Copyright © 2025 sarproj contributors

/*****************************************************************************************************************/

package sceneimage

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"sarproj/pkg/sicdmodel"
	"sarproj/pkg/vec3"
)

/*****************************************************************************************************************/

func floatEquals(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

/*****************************************************************************************************************/

// identityMonoMeta builds spec.md §8.1's "Identity mono" scenario: SCP on
// the WGS-84 equator/prime-meridian intersection, ARP offset both
// cross-range and in height so the graze angle is away from nadir (a
// true zenith-looking ARP makes the azimuth angle at SCP undefined), with
// an image grid basis along ECEF X and Y.
func identityMonoMeta() *sicdmodel.MetadataParams {
	scpHeight := 6378137.0
	return &sicdmodel.MetadataParams{
		CollectType: sicdmodel.Monostatic,
		SCP:         vec3.New(scpHeight, 0, 0),
		SCPLat:      0,
		SCPLon:      0,
		URow:        vec3.New(1, 0, 0),
		UCol:        vec3.New(0, 1, 0),
		SideOfTrack: sicdmodel.Right,
		GridType:    sicdmodel.RGAZIM,
		IFA:         sicdmodel.PFA,
		CTCOA:       sicdmodel.Polynomial2D{{0}},
		ARPPoly:     sicdmodel.XYZPolynomial{{scpHeight + 50000, 0, 50000}, {0, 7000, 0}},
		ARPSCPCOA:   vec3.New(scpHeight+50000, 0, 50000),
		VARPSCPCOA:  vec3.New(0, 7000, 0),
		CPA:         []float64{0},
		CKSF:        []float64{1},
	}
}

/*****************************************************************************************************************/

// TestProjectAtSCPRecoversOrigin exercises spec.md §8.1's "Identity mono"
// round trip: projecting SCP itself back to the image grid should
// recover loc = (0, 0).
func TestProjectAtSCPRecoversOrigin(t *testing.T) {
	meta := identityMonoMeta()

	loc, deltaGP, success := Project(meta, meta.SCP, DefaultOptions())
	if !success {
		t.Fatalf("Project() did not converge: deltaGP=%v", deltaGP)
	}
	if !floatEquals(loc.Xrow, 0, 1e-3) || !floatEquals(loc.Ycol, 0, 1e-3) {
		t.Errorf("Project(SCP) = %+v; want (0, 0)", loc)
	}
}

/*****************************************************************************************************************/

func TestProjectBatch(t *testing.T) {
	meta := identityMonoMeta()

	pts := []vec3.Vec3{meta.SCP, meta.SCP}
	locs, deltas, success := ProjectBatch(meta, pts, DefaultOptions())
	if !success {
		t.Fatalf("ProjectBatch() did not converge: deltas=%v", deltas)
	}
	if len(locs) != len(pts) {
		t.Fatalf("len(locs) = %d; want %d", len(locs), len(pts))
	}
}
