/*****************************************************************************************************************/

//	@package	sarproj/haeproj
//	@license	Copyright © 2025 sarproj contributors

/*****************************************************************************************************************/

package haeproj

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"sarproj/pkg/geodetic"
	"sarproj/pkg/groundproj"
	"sarproj/pkg/sicdmodel"
	"sarproj/pkg/vec3"
)

/*****************************************************************************************************************/

func floatEquals(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

/*****************************************************************************************************************/

// TestToConstantHAESurfaceRecoversSCPHeight exercises spec.md §8's HAE
// surface invariant: projecting SCP's own R/Rdot contour to the HAE0
// surface equal to SCP's own height must land back on (approximately)
// SCP.
func TestToConstantHAESurfaceRecoversSCPHeight(t *testing.T) {
	scp := geodetic.GeodeticToECEF(0, 0, 500)

	meta := &sicdmodel.MetadataParams{
		CollectType: sicdmodel.Monostatic,
		SCP:         scp,
		SCPLat:      0,
		SCPLon:      0,
		SCPHAE:      500,
		SideOfTrack: sicdmodel.Right,
	}

	// ARP offset both along the local up direction and cross-range, so the
	// graze angle stays away from nadir (see the sceneimage package's
	// identityMonoMeta for why a straight-overhead ARP is degenerate here).
	arp := scp.Add(vec3.New(50000, 0, 50000))
	varp := vec3.New(0, 7000, 0)
	toScp := arp.Sub(scp)

	ps := sicdmodel.ProjectionSets{
		ARPCOA:  arp,
		VARPCOA: varp,
		RCOA:    toScp.Norm(),
		RdotCOA: varp.Dot(toScp) / toScp.Norm(),
	}

	spp, deltaHAE, success := ToConstantHAESurface(meta, ps, 500, DefaultOptions())
	if !success {
		t.Fatalf("ToConstantHAESurface() did not converge: deltaHAE=%v", deltaHAE)
	}

	_, _, height := geodetic.ECEFToGeodetic(spp)
	if !floatEquals(height, 500, 1e-3) {
		t.Errorf("resulting height = %v; want 500", height)
	}
	if !floatEquals(spp.X, scp.X, 1.0) || !floatEquals(spp.Y, scp.Y, 1.0) || !floatEquals(spp.Z, scp.Z, 1.0) {
		t.Errorf("ToConstantHAESurface() = %v; want close to SCP %v", spp, scp)
	}
}

/*****************************************************************************************************************/

// TestToConstantHAESurfaceReturnsBestEffortWhenNotConverged exercises the
// NLim-exhausted path: with a DeltaHAEMax no height residual could ever
// satisfy, the outer iteration never converges, but the final straight-line
// refinement must still run against the last ground-plane estimate and
// return a finite best-effort point, not a zero vector.
func TestToConstantHAESurfaceReturnsBestEffortWhenNotConverged(t *testing.T) {
	scp := geodetic.GeodeticToECEF(0, 0, 500)

	meta := &sicdmodel.MetadataParams{
		CollectType: sicdmodel.Monostatic,
		SCP:         scp,
		SCPLat:      0,
		SCPLon:      0,
		SCPHAE:      500,
		SideOfTrack: sicdmodel.Right,
	}

	arp := scp.Add(vec3.New(50000, 0, 50000))
	varp := vec3.New(0, 7000, 0)
	toScp := arp.Sub(scp)

	ps := sicdmodel.ProjectionSets{
		ARPCOA:  arp,
		VARPCOA: varp,
		RCOA:    toScp.Norm(),
		RdotCOA: varp.Dot(toScp) / toScp.Norm(),
	}

	opts := Options{DeltaHAEMax: -1e9, NLim: 2, Bistatic: groundproj.DefaultBiOptions()}

	spp, deltaHAE, success := ToConstantHAESurface(meta, ps, 500, opts)
	if success {
		t.Fatalf("ToConstantHAESurface() reported success with an unsatisfiable DeltaHAEMax")
	}
	if !spp.IsFinite() {
		t.Errorf("ToConstantHAESurface() = %v; want a finite best-effort point on non-convergence", spp)
	}
	if math.IsNaN(deltaHAE) {
		t.Errorf("deltaHAE = NaN; want the last iteration's height residual")
	}
}

/*****************************************************************************************************************/

// TestToConstantHAESurfaceNoSolutionWhenGroundProjectionFails exercises the
// inner-projection-failure path: when the ground-plane projection itself has
// no solution, ToConstantHAESurface must report failure with the kernel's
// NaN sentinel, never a zero-valued point that could be mistaken for a real
// result.
func TestToConstantHAESurfaceNoSolutionWhenGroundProjectionFails(t *testing.T) {
	meta := &sicdmodel.MetadataParams{
		CollectType: sicdmodel.Monostatic,
		SCP:         vec3.New(0, 0, 0),
		SCPLat:      90,
		SCPLon:      0,
		SCPHAE:      0,
		SideOfTrack: sicdmodel.Right,
	}

	ps := sicdmodel.ProjectionSets{
		ARPCOA:  vec3.New(0, 0, 200000),
		VARPCOA: vec3.New(7000, 0, 0),
		RCOA:    100000, // shorter than the ARP's distance from the plane: no solution
		RdotCOA: 0,
	}

	spp, deltaHAE, success := ToConstantHAESurface(meta, ps, 0, DefaultOptions())
	if success {
		t.Fatalf("ToConstantHAESurface() succeeded unexpectedly: spp=%v deltaHAE=%v", spp, deltaHAE)
	}
	if spp.IsFinite() {
		t.Errorf("ToConstantHAESurface() = %v; want the NaN sentinel on ground-projection failure", spp)
	}
}
