package octree

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxground/voxground/pkg/spatial"
	"github.com/voxground/voxground/pkg/tool"
)

func TestShouldSubdivideSignChange(t *testing.T) {
	s := tool.NewSphere(mgl32.Vec3{10, 10, 10}, 1)
	cell := spatial.Unit()
	// A sign change forces refinement irrespective of box overlap.
	if !shouldSubdivide(s, tool.Place, cell, s.ToolAABB(), s.AOEAABB(), true) {
		t.Error("sign change did not force subdivision")
	}
}

func TestShouldSubdivideConvexPlace(t *testing.T) {
	cell := spatial.Unit()

	// Tool box partially overlapping the cell refines.
	s := tool.NewSphere(mgl32.Vec3{1, 0.5, 0.5}, 0.4)
	if !shouldSubdivide(s, tool.Place, cell, s.ToolAABB(), s.AOEAABB(), false) {
		t.Error("partial tool overlap did not subdivide")
	}

	// Tool box strictly inside the cell refines (ContainedBy from the
	// check box's point of view).
	s = tool.NewSphere(mgl32.Vec3{0.5, 0.5, 0.5}, 0.1)
	if !shouldSubdivide(s, tool.Place, cell, s.ToolAABB(), s.AOEAABB(), false) {
		t.Error("contained tool did not subdivide")
	}

	// Tool box fully containing the cell adds no detail by itself.
	s = tool.NewSphere(mgl32.Vec3{0.5, 0.5, 0.5}, 5)
	if shouldSubdivide(s, tool.Place, cell, s.ToolAABB(), s.AOEAABB(), false) {
		t.Error("tool containing the whole cell should not subdivide")
	}
}

func TestShouldSubdivideRemoveUsesAOE(t *testing.T) {
	cell := spatial.Unit()
	// Sphere far enough that the tool box misses the cell but the
	// unit-padded AOE still clips it: Remove refines, Place does not.
	s := tool.NewSphere(mgl32.Vec3{2.2, 0.5, 0.5}, 0.5)
	if shouldSubdivide(s, tool.Place, cell, s.ToolAABB(), s.AOEAABB(), false) {
		t.Error("Place subdivided on AOE-only overlap")
	}
	if !shouldSubdivide(s, tool.Remove, cell, s.ToolAABB(), s.AOEAABB(), false) {
		t.Error("Remove did not subdivide on AOE overlap")
	}
}

// concaveTool wraps a sphere and flags it concave.
type concaveTool struct {
	tool.Sphere
}

func (concaveTool) IsConcave() bool { return true }

func TestShouldSubdivideConcave(t *testing.T) {
	cell := spatial.Unit()
	c := concaveTool{tool.NewSphere(mgl32.Vec3{0.5, 0.5, 0.5}, 5)}
	// A concave tool refines anywhere its AOE touches, even where the
	// convex rule would skip a fully-contained cell.
	if !shouldSubdivide(c, tool.Place, cell, c.ToolAABB(), c.AOEAABB(), false) {
		t.Error("concave tool did not subdivide a covered cell")
	}

	far := concaveTool{tool.NewSphere(mgl32.Vec3{100, 100, 100}, 0.5)}
	if shouldSubdivide(far, tool.Place, cell, far.ToolAABB(), far.AOEAABB(), false) {
		t.Error("concave tool subdivided a disjoint cell")
	}
}

func TestClipToolAABBsDisjointPlace(t *testing.T) {
	s := tool.NewSphere(mgl32.Vec3{50, 50, 50}, 1)
	if _, _, ok := clipToolAABBs(s, tool.Place, spatial.Unit()); ok {
		t.Error("Place with tool box off the terrain should be a no-op")
	}
}

func TestClipToolAABBsDisjointAOE(t *testing.T) {
	// Tool box misses the terrain and so does the AOE: Remove is a
	// no-op too.
	s := tool.NewSphere(mgl32.Vec3{50, 50, 50}, 1)
	if _, _, ok := clipToolAABBs(s, tool.Remove, spatial.Unit()); ok {
		t.Error("Remove with AOE off the terrain should be a no-op")
	}
}

func TestClipToolAABBsRemoveToolOffTerrain(t *testing.T) {
	// Tool box misses the terrain but the AOE overlaps: Remove still
	// proceeds, since removal acts through the AOE.
	s := tool.NewSphere(mgl32.Vec3{2.2, 0.5, 0.5}, 0.5)
	_, aoe, ok := clipToolAABBs(s, tool.Remove, spatial.Unit())
	if !ok {
		t.Fatal("Remove with overlapping AOE clipped to a no-op")
	}
	if aoe.End()[0] > 1 {
		t.Errorf("AOE not clipped to terrain: end = %v", aoe.End())
	}
}

func TestClipToolAABBsClipsPartialOverlap(t *testing.T) {
	s := tool.NewSphere(mgl32.Vec3{1, 0.5, 0.5}, 0.4)
	toolBox, aoe, ok := clipToolAABBs(s, tool.Place, spatial.Unit())
	if !ok {
		t.Fatal("overlapping Place clipped to a no-op")
	}
	if toolBox.Start[0] < 0.6-1e-6 || toolBox.End()[0] > 1 {
		t.Errorf("tool box not clipped: %v..%v", toolBox.Start, toolBox.End())
	}
	if aoe.Start[0] < 0 || aoe.End()[0] > 1 {
		t.Errorf("AOE not clipped: %v..%v", aoe.Start, aoe.End())
	}
}

func TestClipToolAABBsHugeToolClampsToTerrain(t *testing.T) {
	s := tool.NewSphere(mgl32.Vec3{0.5, 0.5, 0.5}, 10)
	toolBox, aoe, ok := clipToolAABBs(s, tool.Place, spatial.Unit())
	if !ok {
		t.Fatal("covering Place clipped to a no-op")
	}
	if toolBox != spatial.Unit() {
		t.Errorf("tool box = %v, want terrain box", toolBox)
	}
	if aoe != spatial.Unit() {
		t.Errorf("AOE = %v, want terrain box", aoe)
	}
}

func TestSoupMesh(t *testing.T) {
	m := soupMesh(nil)
	if !m.IsEmpty() {
		t.Error("empty soup should give an empty mesh")
	}
}
