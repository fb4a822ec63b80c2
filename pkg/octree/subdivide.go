package octree

func lerp(a, b float32) float32 {
	return a + (b-a)*0.5
}

// SubdivideValues refines a cell's 8 corner densities into the 8 corner
// sets of its octant children by trilinear interpolation.
//
// A virtual 3x3x3 grid of 27 points is built over the cell, indexed
// from the bottom-left-back point counting X, then Y, then Z (so the
// bottom layer is points 0..8, the middle layer 9..17, the top layer
// 18..26). The cell's corners seed the grid corners, edge midpoints
// come from lerping the corners, face centers from lerping opposing
// edge midpoints, and the cell center from lerping opposing face
// centers. Each child octant then reads its 8 corners off the grid in
// the same Z-index order used everywhere else.
func SubdivideValues(cube [8]float32) [8][8]float32 {
	var points [27]float32

	// Original corners onto the grid corners.
	points[0] = cube[0]
	points[2] = cube[1]
	points[6] = cube[2]
	points[8] = cube[3]
	points[18] = cube[4]
	points[20] = cube[5]
	points[24] = cube[6]
	points[26] = cube[7]

	// Edge midpoints.
	points[1] = lerp(points[0], points[2])
	points[3] = lerp(points[0], points[6])
	points[5] = lerp(points[2], points[8])
	points[7] = lerp(points[6], points[8])

	points[9] = lerp(points[0], points[18])
	points[11] = lerp(points[2], points[20])
	points[15] = lerp(points[6], points[24])
	points[17] = lerp(points[8], points[26])

	points[19] = lerp(points[18], points[20])
	points[21] = lerp(points[18], points[24])
	points[23] = lerp(points[20], points[26])
	points[25] = lerp(points[24], points[26])

	// Face centers from opposing edge midpoints.
	points[4] = lerp(points[1], points[7])
	points[10] = lerp(points[9], points[11])
	points[12] = lerp(points[3], points[21])
	points[14] = lerp(points[5], points[23])
	points[16] = lerp(points[7], points[25])
	points[22] = lerp(points[19], points[25])

	// Cell center from opposing face centers.
	points[13] = lerp(points[4], points[22])

	// Each child's corners are a 2x2x2 selection off the grid; the
	// offsets +1/+3/+9 step one grid unit along X/Y/Z.
	cell := func(start int) [8]float32 {
		return [8]float32{
			points[start],
			points[start+1],
			points[start+3],
			points[start+4],
			points[start+9],
			points[start+10],
			points[start+12],
			points[start+13],
		}
	}

	return [8][8]float32{
		cell(0), cell(1), cell(3), cell(4),
		cell(9), cell(10), cell(12), cell(13),
	}
}
