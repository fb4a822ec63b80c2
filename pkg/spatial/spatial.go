// Package spatial provides the axis-aligned box math underneath the
// sculpting octree: Z-order corner enumeration, octree subdivision and
// a four-way intersection classification. The sculpt engine branches on
// exactly which of the four intersection kinds holds, so Intersect
// returns a classification rather than a boolean.
package spatial

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CubeCorners enumerates the corners of a unit cube in Z-index order:
// bit 0 of the corner index selects X, bit 1 selects Y, bit 2 selects Z.
// Every corner-indexed array in this module follows this ordering.
var CubeCorners = [8]mgl32.Vec3{
	{0, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
	{1, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
	{0, 1, 1},
	{1, 1, 1},
}

// AABB is an axis-aligned bounding box described by its minimum corner
// and a size vector. Size components must never be negative.
type AABB struct {
	Start mgl32.Vec3
	Size  mgl32.Vec3
}

// Unit is the unit cube at the origin.
func Unit() AABB {
	return AABB{Size: mgl32.Vec3{1, 1, 1}}
}

// FromExtents builds a box centered on pos with the given edge lengths.
func FromExtents(pos, extents mgl32.Vec3) AABB {
	half := extents.Mul(0.5)
	return AABB{Start: pos.Sub(half), Size: extents}
}

// FromRadius builds the bounding cube of a sphere at pos.
func FromRadius(pos mgl32.Vec3, radius float32) AABB {
	r := mgl32.Vec3{radius, radius, radius}
	return AABB{Start: pos.Sub(r), Size: r.Mul(2)}
}

// End returns the maximum corner of the box.
func (a AABB) End() mgl32.Vec3 {
	return a.Start.Add(a.Size)
}

// ContainsPoint reports whether p lies inside the box, boundary included.
func (a AABB) ContainsPoint(p mgl32.Vec3) bool {
	end := a.End()
	for i := 0; i < 3; i++ {
		if p[i] < a.Start[i] || p[i] > end[i] {
			return false
		}
	}
	return true
}

// Expand grows the box just enough to contain p.
func (a *AABB) Expand(p mgl32.Vec3) {
	end := a.End()
	for i := 0; i < 3; i++ {
		a.Start[i] = math32.Min(a.Start[i], p[i])
		end[i] = math32.Max(end[i], p[i])
	}
	a.Size = end.Sub(a.Start)
}

// Corners returns the 8 corner positions in Z-index order.
// Panics if any size component is negative.
func (a AABB) Corners() [8]mgl32.Vec3 {
	a.assertValid()
	var corners [8]mgl32.Vec3
	for i, offset := range CubeCorners {
		corners[i] = mgl32.Vec3{
			a.Start[0] + a.Size[0]*offset[0],
			a.Start[1] + a.Size[1]*offset[1],
			a.Start[2] + a.Size[2]*offset[2],
		}
	}
	return corners
}

// OctreeChild returns the half-size box at octant index i. The octant
// offsets follow CubeCorners, which keeps box subdivision and spatial
// key indexing aligned.
func (a AABB) OctreeChild(i int) AABB {
	half := a.Size.Mul(0.5)
	offset := CubeCorners[i]
	return AABB{
		Start: mgl32.Vec3{
			a.Start[0] + half[0]*offset[0],
			a.Start[1] + half[1]*offset[1],
			a.Start[2] + half[2]*offset[2],
		},
		Size: half,
	}
}

// OctreeSubdivide splits the box into its 8 equal-size octants.
// The children exactly tile the parent.
func (a AABB) OctreeSubdivide() [8]AABB {
	var children [8]AABB
	for i := range children {
		children[i] = a.OctreeChild(i)
	}
	return children
}

func (a AABB) assertValid() {
	if a.Size[0] < 0 || a.Size[1] < 0 || a.Size[2] < 0 {
		panic("spatial: AABB with negative size")
	}
}

// IntersectKind classifies how two boxes relate.
type IntersectKind int

const (
	// Disjoint means the boxes share no volume.
	Disjoint IntersectKind = iota
	// Partial means the boxes overlap without either containing the other.
	Partial
	// Contains means the receiver fully contains the argument.
	Contains
	// ContainedBy means the argument fully contains the receiver.
	ContainedBy
)

func (k IntersectKind) String() string {
	switch k {
	case Disjoint:
		return "Disjoint"
	case Partial:
		return "Partial"
	case Contains:
		return "Contains"
	case ContainedBy:
		return "ContainedBy"
	}
	return "IntersectKind(?)"
}

// Intersection is the result of AABB.Intersect. Overlap is only
// meaningful when Kind is Partial, where it holds the shared region.
type Intersection struct {
	Kind    IntersectKind
	Overlap AABB
}

type axisKind int

const (
	axisDisjoint axisKind = iota
	axisPartial
	axisContains
	axisContainedBy
)

// intersectAxis classifies the 1D ranges [a0,a1] and [b0,b1].
// Ranges that merely touch count as a zero-width partial overlap.
func intersectAxis(a0, a1, b0, b1 float32) (axisKind, float32, float32) {
	switch {
	case a1 < b0 || b1 < a0:
		return axisDisjoint, 0, 0
	case a0 <= b0 && b1 <= a1:
		return axisContains, b0, b1
	case b0 <= a0 && a1 <= b1:
		return axisContainedBy, a0, a1
	default:
		return axisPartial, math32.Max(a0, b0), math32.Min(a1, b1)
	}
}

// Intersect classifies the receiver against other. All three axes
// Contains gives Contains, all three ContainedBy gives ContainedBy, any
// disjoint axis gives Disjoint, anything else is Partial with the
// overlap box filled in.
func (a AABB) Intersect(other AABB) Intersection {
	a.assertValid()
	other.assertValid()

	aEnd, bEnd := a.End(), other.End()
	var kinds [3]axisKind
	var lo, hi mgl32.Vec3
	for i := 0; i < 3; i++ {
		kinds[i], lo[i], hi[i] = intersectAxis(a.Start[i], aEnd[i], other.Start[i], bEnd[i])
		if kinds[i] == axisDisjoint {
			return Intersection{Kind: Disjoint}
		}
	}

	allContains, allContainedBy := true, true
	for _, k := range kinds {
		if k != axisContains {
			allContains = false
		}
		if k != axisContainedBy {
			allContainedBy = false
		}
	}
	switch {
	case allContains:
		return Intersection{Kind: Contains}
	case allContainedBy:
		return Intersection{Kind: ContainedBy}
	}
	return Intersection{
		Kind:    Partial,
		Overlap: AABB{Start: lo, Size: hi.Sub(lo)},
	}
}
