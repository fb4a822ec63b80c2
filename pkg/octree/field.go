package octree

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxground/voxground/pkg/mcubes"
	"github.com/voxground/voxground/pkg/mesh"
	"github.com/voxground/voxground/pkg/spatial"
	"github.com/voxground/voxground/pkg/tool"
)

// EmptyDensity is the sentinel density of untouched terrain: fully
// outside at every corner.
const EmptyDensity = float32(-1)

// Field is a density field storage strategy. Both the pointer tree and
// the flat octant map implement it; the sculpt and extraction semantics
// are identical, which the tests exploit for parity checks.
type Field interface {
	// Scale is the edge length of the root cell.
	Scale() float32
	// Values returns the 8 corner densities of the addressed cell.
	// Panics if the cell does not exist.
	Values(Key) [8]float32
	// IsLeaf reports whether the addressed cell has no children.
	IsLeaf(Key) bool
	// Subdivide splits the addressed leaf into 8 children with
	// trilinearly refined corners. No-op on interior cells.
	Subdivide(Key)
	// Collapse removes the addressed cell's children. No-op on leaves.
	Collapse(Key)

	// ApplyTool sculpts the field with one tool application.
	ApplyTool(t tool.Tool, action tool.Action, maxDepth int)
	// GenerateMesh extracts the isosurface of all leaves (bounded by
	// maxDepth) as an unindexed triangle soup.
	GenerateMesh(maxDepth int) *mesh.Mesh
}

// Compile-time interface checks.
var (
	_ Field = (*Tree)(nil)
	_ Field = (*OctantMap)(nil)
)

// clampDepth keeps caller-supplied depth limits inside the key-
// addressable range; passing a large value means "all levels".
func clampDepth(maxDepth int) int {
	if maxDepth > MaxDepth {
		return MaxDepth
	}
	return maxDepth
}

// diffSigns reports whether any two adjacent corners (the fixed
// Z-order pairing) sit on opposite sides of the isosurface.
func diffSigns(values [8]float32) bool {
	for i := 0; i < 7; i++ {
		if (values[i] < 0) != (values[i+1] < 0) {
			return true
		}
	}
	return false
}

// shouldSubdivide is the refinement rule shared by both strategies.
// Convex tools refine on a sign crossing, or when the check box (tool
// box for Place, AOE box for Remove) partially overlaps the cell or is
// contained by it; a check box that fully contains the cell adds no
// detail by itself. Concave tools refine on any non-disjoint AOE
// overlap.
func shouldSubdivide(t tool.Tool, action tool.Action, cellAABB, toolAABB, aoeAABB spatial.AABB, changed bool) bool {
	if changed {
		return true
	}
	if t.IsConcave() {
		return aoeAABB.Intersect(cellAABB).Kind != spatial.Disjoint
	}
	check := toolAABB
	if action == tool.Remove {
		check = aoeAABB
	}
	kind := check.Intersect(cellAABB).Kind
	return kind == spatial.Partial || kind == spatial.ContainedBy
}

// clipToolAABBs clips a tool's bounds against the terrain box before
// traversal. ok is false when the whole application is a no-op: the
// AOE misses the terrain entirely, or a Place whose tool box misses it.
func clipToolAABBs(t tool.Tool, action tool.Action, root spatial.AABB) (toolAABB, aoeAABB spatial.AABB, ok bool) {
	toolAABB = t.ToolAABB()
	aoeAABB = t.AOEAABB()

	switch it := root.Intersect(toolAABB); it.Kind {
	case spatial.Disjoint:
		if action == tool.Place {
			return toolAABB, aoeAABB, false
		}
	case spatial.Partial:
		toolAABB = it.Overlap
	case spatial.ContainedBy:
		toolAABB = root
	}

	switch it := root.Intersect(aoeAABB); it.Kind {
	case spatial.Disjoint:
		return toolAABB, aoeAABB, false
	case spatial.Partial:
		aoeAABB = it.Overlap
	case spatial.ContainedBy:
		aoeAABB = root
	}

	return toolAABB, aoeAABB, true
}

func mglSplat(v float32) mgl32.Vec3 {
	return mgl32.Vec3{v, v, v}
}

// triangleCollector is the only shared mutable state during parallel
// mesh extraction: an append-only, mutex-guarded triangle list.
type triangleCollector struct {
	mu   sync.Mutex
	tris []mcubes.Triangle
}

func (tc *triangleCollector) add(tris []mcubes.Triangle) {
	tc.mu.Lock()
	tc.tris = append(tc.tris, tris...)
	tc.mu.Unlock()
}

// soupMesh wraps marched triangles into an unindexed mesh.
func soupMesh(tris []mcubes.Triangle) *mesh.Mesh {
	m := &mesh.Mesh{}
	for _, tri := range tris {
		m.Vertices = append(m.Vertices, tri[0], tri[1], tri[2])
	}
	return m
}
