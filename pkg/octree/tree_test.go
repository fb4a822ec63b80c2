package octree

import (
	"sort"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxground/voxground/pkg/mesh"
	"github.com/voxground/voxground/pkg/tool"
)

// cornerSphere is the reference sculpt: a sphere on the terrain origin
// whose radius is small against the unit terrain.
func cornerSphere() tool.Sphere {
	return tool.NewSphere(mgl32.Vec3{0, 0, 0}, 0.3)
}

func centerSphere() tool.Sphere {
	return tool.NewSphere(mgl32.Vec3{0.5, 0.5, 0.5}, 0.3)
}

// sortedVertices canonicalizes a mesh's vertex soup so meshes produced
// in different traversal orders can be compared.
func sortedVertices(m *mesh.Mesh) []mgl32.Vec3 {
	verts := append([]mgl32.Vec3(nil), m.Vertices...)
	sort.Slice(verts, func(i, j int) bool {
		a, b := verts[i], verts[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	return verts
}

func sameVertices(t *testing.T, a, b *mesh.Mesh) {
	t.Helper()
	va, vb := sortedVertices(a), sortedVertices(b)
	if len(va) != len(vb) {
		t.Fatalf("vertex counts differ: %d vs %d", len(va), len(vb))
	}
	for i := range va {
		if va[i] != vb[i] {
			t.Fatalf("vertex %d differs: %v vs %v", i, va[i], vb[i])
		}
	}
}

func TestNewTreeEmpty(t *testing.T) {
	tr := NewTree(1)
	if tr.LeafCount() != 1 {
		t.Errorf("LeafCount = %d, want 1", tr.LeafCount())
	}
	values := tr.Values(RootKey())
	for i, v := range values {
		if v != EmptyDensity {
			t.Errorf("corner %d = %g, want %g", i, v, EmptyDensity)
		}
	}
	if !tr.GenerateMesh(0).IsEmpty() {
		t.Error("empty terrain produced a mesh")
	}
}

func TestApplyToolDepthZeroValues(t *testing.T) {
	tr := NewTree(1)
	tr.ApplyTool(cornerSphere(), tool.Place, 0)

	// At depth 0 the only samples are the root corners: the origin
	// corner reads the sphere's positive interior, the three adjacent
	// corners its falloff, and the diagonal corners clamp to -1.
	got := tr.Values(RootKey())
	want := [8]float32{0.3, -0.7, -0.7, -1, -0.7, -1, -1, -1}
	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("corner %d = %g, want %g", i, got[i], want[i])
		}
	}
	if tr.LeafCount() != 1 {
		t.Errorf("LeafCount = %d, depth 0 must not subdivide", tr.LeafCount())
	}
}

func TestApplyToolSubdividesOnCrossing(t *testing.T) {
	tr := NewTree(1)
	tr.ApplyTool(cornerSphere(), tool.Place, 1)
	if tr.LeafCount() != 8 {
		t.Fatalf("LeafCount = %d, want 8 after one subdivision", tr.LeafCount())
	}
	if tr.IsLeaf(RootKey()) {
		t.Error("root still a leaf after crossing")
	}
	// The child at the origin octant holds the crossing.
	child := RootKey().Child(0)
	if !diffSigns(tr.Values(child)) {
		t.Error("origin octant has no sign crossing")
	}
}

func TestApplyToolIdempotent(t *testing.T) {
	tr := NewTree(1)
	s := centerSphere()
	tr.ApplyTool(s, tool.Place, 3)
	leaves := tr.LeafCount()
	first := tr.GenerateMesh(3)

	tr.ApplyTool(s, tool.Place, 3)
	if tr.LeafCount() != leaves {
		t.Errorf("LeafCount changed on reapply: %d -> %d", leaves, tr.LeafCount())
	}
	second := tr.GenerateMesh(3)
	sameVertices(t, first, second)
}

func TestApplyToolRemoveCollapses(t *testing.T) {
	tr := NewTree(1)
	s := centerSphere()
	tr.ApplyTool(s, tool.Place, 3)
	if tr.LeafCount() == 1 {
		t.Fatal("placement did not refine")
	}

	// Removing with the same sphere empties every cell it filled; the
	// refined region becomes uniformly empty and collapses away.
	tr.ApplyTool(s, tool.Remove, 3)
	if tr.LeafCount() != 1 {
		t.Errorf("LeafCount = %d after removal, want 1", tr.LeafCount())
	}
	if !tr.GenerateMesh(3).IsEmpty() {
		t.Error("mesh not empty after removal")
	}
}

func TestApplyToolOffTerrainNoOp(t *testing.T) {
	tr := NewTree(1)
	far := tool.NewSphere(mgl32.Vec3{100, 100, 100}, 1)
	tr.ApplyTool(far, tool.Place, 5)
	if tr.LeafCount() != 1 {
		t.Error("off-terrain Place refined the tree")
	}
	got := tr.Values(RootKey())
	for i, v := range got {
		if v != EmptyDensity {
			t.Errorf("corner %d = %g, want untouched %g", i, v, EmptyDensity)
		}
	}
}

func TestGenerateMeshNonEmptyAfterPlace(t *testing.T) {
	tr := NewTree(1)
	tr.ApplyTool(centerSphere(), tool.Place, 4)
	m := tr.GenerateMesh(4)
	if m.IsEmpty() {
		t.Fatal("expected a surface mesh")
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("invalid mesh: %v", err)
	}
	// Every vertex lies inside the terrain box.
	for _, v := range m.Vertices {
		for axis := 0; axis < 3; axis++ {
			if v[axis] < 0 || v[axis] > 1 {
				t.Fatalf("vertex %v outside terrain", v)
			}
		}
	}
}

func TestGenerateMeshDepthLimit(t *testing.T) {
	tr := NewTree(1)
	tr.ApplyTool(centerSphere(), tool.Place, 4)

	coarse := tr.GenerateMesh(1)
	fine := tr.GenerateMesh(4)
	if coarse.TriangleCount() >= fine.TriangleCount() {
		t.Errorf("coarse extraction (%d tris) not coarser than fine (%d tris)",
			coarse.TriangleCount(), fine.TriangleCount())
	}
}

func TestApplyToolParallelMatchesSerial(t *testing.T) {
	serial := NewTree(1)
	parallel := NewTree(1)
	s := centerSphere()

	serial.ApplyTool(s, tool.Place, 4)
	parallel.ApplyToolParallel(s, tool.Place, 4)

	if serial.LeafCount() != parallel.LeafCount() {
		t.Fatalf("LeafCount: serial %d, parallel %d", serial.LeafCount(), parallel.LeafCount())
	}
	sameVertices(t, serial.GenerateMesh(4), parallel.GenerateMesh(4))

	// And again for removal of half the placed material.
	carve := tool.NewSphere(mgl32.Vec3{0.5, 0.5, 0.7}, 0.2)
	serial.ApplyTool(carve, tool.Remove, 4)
	parallel.ApplyToolParallel(carve, tool.Remove, 4)
	if serial.LeafCount() != parallel.LeafCount() {
		t.Fatalf("after carve LeafCount: serial %d, parallel %d", serial.LeafCount(), parallel.LeafCount())
	}
	sameVertices(t, serial.GenerateMesh(4), parallel.GenerateMesh(4))
}

func TestGenerateMeshParallelMatchesSerial(t *testing.T) {
	tr := NewTree(1)
	tr.ApplyTool(centerSphere(), tool.Place, 4)
	sameVertices(t, tr.GenerateMesh(4), tr.GenerateMeshParallel(4))
}

func TestTreeFieldAccessors(t *testing.T) {
	tr := NewTree(1)
	tr.Subdivide(RootKey())
	if tr.IsLeaf(RootKey()) {
		t.Error("root still a leaf after Subdivide")
	}
	if tr.LeafCount() != 8 {
		t.Errorf("LeafCount = %d, want 8", tr.LeafCount())
	}
	child := RootKey().Child(3)
	values := tr.Values(child)
	for i, v := range values {
		if v != EmptyDensity {
			t.Errorf("child corner %d = %g, want %g", i, v, EmptyDensity)
		}
	}
	tr.Collapse(RootKey())
	if !tr.IsLeaf(RootKey()) {
		t.Error("root not a leaf after Collapse")
	}
}

func TestTreeMissingCellPanics(t *testing.T) {
	tr := NewTree(1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for key below a leaf")
		}
	}()
	tr.Values(RootKey().Child(0))
}

func TestTreeScaledTerrain(t *testing.T) {
	tr := NewTree(10)
	s := tool.NewSphere(mgl32.Vec3{5, 5, 5}, 3)
	tr.ApplyTool(s, tool.Place, 3)
	m := tr.GenerateMesh(3)
	if m.IsEmpty() {
		t.Fatal("expected a surface mesh on a scaled terrain")
	}
	for _, v := range m.Vertices {
		for axis := 0; axis < 3; axis++ {
			if v[axis] < 0 || v[axis] > 10 {
				t.Fatalf("vertex %v outside scaled terrain", v)
			}
		}
	}
}
