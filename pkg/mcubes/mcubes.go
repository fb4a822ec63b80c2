// Package mcubes implements the marching cubes kernel: given the 8
// corner positions and signed densities of a single cell it emits the
// triangles of the isosurface crossing that cell. The package is pure;
// callers drive it once per leaf cell.
package mcubes

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Triangle is one emitted isosurface triangle, positions in world space.
type Triangle [3]mgl32.Vec3

// EdgeCorners maps each of the 12 cube edge slots to the pair of
// Z-order corner indices it connects. The numbering is fixed by
// EdgeTable and TriTable; the three edges incident to corner 0 are
// slots 0, 1 and 8.
var EdgeCorners = [12][2]int{
	{0, 1}, // 0
	{0, 4}, // 1
	{4, 5}, // 2
	{1, 5}, // 3
	{2, 3}, // 4
	{2, 6}, // 5
	{6, 7}, // 6
	{3, 7}, // 7
	{0, 2}, // 8
	{4, 6}, // 9
	{5, 7}, // 10
	{1, 3}, // 11
}

// interpEpsilon guards the edge interpolation against division by a
// near-zero density difference.
const interpEpsilon = 1e-5

// VertInterp finds where the isosurface crosses the edge between two
// sampled points. A near-zero density snaps to that point, a near-zero
// difference falls back to the first point, everything else is a
// clamped linear interpolation toward the zero crossing.
func VertInterp(p1 mgl32.Vec3, v1 float32, p2 mgl32.Vec3, v2 float32) mgl32.Vec3 {
	if math32.Abs(v1) < interpEpsilon {
		return p1
	}
	if math32.Abs(v2) < interpEpsilon {
		return p2
	}
	if math32.Abs(v1-v2) < interpEpsilon {
		return p1
	}
	t := -v1 / (v2 - v1)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p1.Add(p2.Sub(p1).Mul(t))
}

// MarchCube emits the 0 to 5 isosurface triangles for one cell. corners
// and values are the cell's 8 corner positions and densities in Z-index
// order; a corner is inside solid material when its density is positive.
func MarchCube(corners [8]mgl32.Vec3, values [8]float32) []Triangle {
	var config int
	for i, v := range values {
		if v > 0 {
			config |= 1 << i
		}
	}

	edges := EdgeTable[config]
	if edges == 0 {
		return nil
	}

	// Compute the crossing point on every edge this configuration uses.
	var verts [12]mgl32.Vec3
	var present [12]bool
	for slot := 0; slot < 12; slot++ {
		if edges&(1<<slot) == 0 {
			continue
		}
		a, b := EdgeCorners[slot][0], EdgeCorners[slot][1]
		verts[slot] = VertInterp(corners[a], values[a], corners[b], values[b])
		present[slot] = true
	}

	row := &TriTable[config]
	var tris []Triangle
	for i := 0; i+2 < len(row); i += 3 {
		if row[i] < 0 {
			break
		}
		var tri Triangle
		for j := 0; j < 3; j++ {
			slot := row[i+j]
			if !present[slot] {
				// The triangle table referenced an edge the edge table
				// never marked: corrupted tables, not a caller error.
				panic(fmt.Sprintf("mcubes: config %d references missing edge vertex %d", config, slot))
			}
			tri[j] = verts[slot]
		}
		tris = append(tris, tri)
	}
	return tris
}
