/*****************************************************************************************************************/

//	@package	sarproj/imageplane
//	@license	Copyright © 2025 sarproj contributors

/*****************************************************************************************************************/

// Package imageplane converts between 2-D image grid coordinates and 3-D
// image plane points, the affine relationship anchored at SCP that spec
// §4.2 describes.
package imageplane

/*****************************************************************************************************************/

import (
	"sarproj/pkg/sicdmodel"
	"sarproj/pkg/vec3"
)

/*****************************************************************************************************************/

// ToImagePlanePoint converts an image grid location to its corresponding
// image plane point: SCP + xrow*uRow + ycol*uCol (spec §4.2).
func ToImagePlanePoint(meta *sicdmodel.MetadataParams, loc sicdmodel.ImageGridLocation) vec3.Vec3 {
	delta := meta.URow.Scale(loc.Xrow).Add(meta.UCol.Scale(loc.Ycol))
	return meta.SCP.Add(delta)
}

/*****************************************************************************************************************/

// ToImagePlanePointBatch applies ToImagePlanePoint to every location in
// locs (spec §6/§9's batch-input contract).
func ToImagePlanePointBatch(meta *sicdmodel.MetadataParams, locs []sicdmodel.ImageGridLocation) []vec3.Vec3 {
	out := make([]vec3.Vec3, len(locs))
	for i, loc := range locs {
		out[i] = ToImagePlanePoint(meta, loc)
	}
	return out
}

/*****************************************************************************************************************/

// ToImageGridLocation converts an image plane point to its corresponding
// image grid location by solving the 2x2 linear system spec §4.2
// describes:
//
//	cosTheta = uRow . uCol, sinTheta^2 = 1 - cosTheta^2
//	M = sinTheta^-2 * [[1, -cosTheta], [-cosTheta, 1]]
//	loc = M . [delta.uRow, delta.uCol], delta = P - SCP
//
// It returns sicdmodel.ErrDegenerateGeometry when uRow and uCol are
// (nearly) collinear, i.e. sinTheta ~ 0.
func ToImageGridLocation(meta *sicdmodel.MetadataParams, p vec3.Vec3) (sicdmodel.ImageGridLocation, error) {
	cosTheta := meta.URow.Dot(meta.UCol)
	sinThetaSq := 1 - cosTheta*cosTheta

	const epsilon = 1e-12
	if sinThetaSq <= epsilon {
		return sicdmodel.ImageGridLocation{}, sicdmodel.ErrDegenerateGeometry
	}

	delta := p.Sub(meta.SCP)
	b0 := delta.Dot(meta.URow)
	b1 := delta.Dot(meta.UCol)

	scale := 1 / sinThetaSq
	m00, m01, m10, m11 := scale*1, scale*-cosTheta, scale*-cosTheta, scale*1

	xrow := m00*b0 + m01*b1
	ycol := m10*b0 + m11*b1

	return sicdmodel.ImageGridLocation{Xrow: xrow, Ycol: ycol}, nil
}

/*****************************************************************************************************************/

// ToImageGridLocationBatch applies ToImageGridLocation to every point in
// pts.
func ToImageGridLocationBatch(meta *sicdmodel.MetadataParams, pts []vec3.Vec3) ([]sicdmodel.ImageGridLocation, error) {
	out := make([]sicdmodel.ImageGridLocation, len(pts))
	for i, p := range pts {
		loc, err := ToImageGridLocation(meta, p)
		if err != nil {
			return nil, err
		}
		out[i] = loc
	}
	return out, nil
}

