package octree

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxground/voxground/pkg/spatial"
)

func TestRootKey(t *testing.T) {
	k := RootKey()
	if k.Depth() != 0 {
		t.Errorf("root depth = %d, want 0", k.Depth())
	}
	if k.AtMaxDepth() {
		t.Error("root should not be at max depth")
	}
}

func TestPushPopRoundtrip(t *testing.T) {
	path := []int{3, 0, 7, 5, 1}
	k := RootKey()
	for _, idx := range path {
		k = k.Push(idx)
	}
	if k.Depth() != len(path) {
		t.Fatalf("depth = %d, want %d", k.Depth(), len(path))
	}
	for d := 1; d <= len(path); d++ {
		if k.Index(d) != path[d-1] {
			t.Errorf("Index(%d) = %d, want %d", d, k.Index(d), path[d-1])
		}
	}

	for i := len(path) - 1; i >= 0; i-- {
		var idx int
		k, idx = k.Pop()
		if idx != path[i] {
			t.Errorf("Pop at depth %d returned %d, want %d", i+1, idx, path[i])
		}
	}
	if k != RootKey() {
		t.Errorf("popped back to %v, want root", k)
	}
}

func TestPushToMaxDepth(t *testing.T) {
	k := RootKey()
	for d := 0; d < MaxDepth; d++ {
		k = k.Push(7)
	}
	if !k.AtMaxDepth() {
		t.Fatalf("depth = %d, want %d", k.Depth(), MaxDepth)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic pushing past max depth")
		}
	}()
	k.Push(0)
}

func TestPopRootPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic popping the root key")
		}
	}()
	RootKey().Pop()
}

func TestSetDepthZeroesTruncatedSegments(t *testing.T) {
	k := RootKey().Push(7).Push(7).Push(7)
	truncated := k.SetDepth(1)
	want := RootKey().Push(7)
	if truncated != want {
		t.Errorf("SetDepth(1) = %#x, want %#x (stale segments must be zeroed)",
			uint64(truncated), uint64(want))
	}
}

func TestSetIndex(t *testing.T) {
	k := RootKey().Push(1).Push(2)
	k = k.SetIndex(1, 6)
	if k.Index(1) != 6 || k.Index(2) != 2 {
		t.Errorf("after SetIndex: path = %v", k)
	}
}

func TestIndexOutOfRangePanics(t *testing.T) {
	k := RootKey().Push(0)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for Index beyond depth")
		}
	}()
	k.Index(2)
}

func TestFromRaw(t *testing.T) {
	// A canonical key roundtrips.
	k := RootKey().Push(5).Push(2)
	got, ok := FromRaw(uint64(k))
	if !ok || got != k {
		t.Errorf("FromRaw(%#x) = %#x, %v; want identity", uint64(k), uint64(got), ok)
	}

	// Depth field beyond MaxDepth is rejected.
	if _, ok := FromRaw(uint64(20) << 59); ok {
		t.Error("accepted depth 20")
	}
	// Spare bits set are rejected.
	if _, ok := FromRaw(uint64(1) << 57); ok {
		t.Error("accepted nonzero spare bits")
	}
	// Nonzero segments beyond depth are rejected.
	raw := uint64(1)<<59 | 0x7<<3 // depth 1, but segment 2 set
	if _, ok := FromRaw(raw); ok {
		t.Error("accepted nonzero segment beyond depth")
	}
}

func TestKeyScale(t *testing.T) {
	k := RootKey()
	if got := k.Scale(8); got != 8 {
		t.Errorf("root Scale(8) = %g, want 8", got)
	}
	k = k.Push(0).Push(0).Push(0)
	if got := k.Scale(8); got != 1 {
		t.Errorf("depth-3 Scale(8) = %g, want 1", got)
	}
}

func TestKeyAABB(t *testing.T) {
	root := spatial.AABB{Size: mgl32.Vec3{8, 8, 8}}

	// Octant 7 twice: the cell hugging the far corner at quarter size.
	k := RootKey().Push(7).Push(7)
	box := k.AABB(root)
	if box.Start != (mgl32.Vec3{6, 6, 6}) {
		t.Errorf("Start = %v, want (6, 6, 6)", box.Start)
	}
	if box.Size != (mgl32.Vec3{2, 2, 2}) {
		t.Errorf("Size = %v, want (2, 2, 2)", box.Size)
	}

	// Octant 1 selects the +x half only.
	k = RootKey().Push(1)
	box = k.AABB(root)
	if box.Start != (mgl32.Vec3{4, 0, 0}) {
		t.Errorf("Start = %v, want (4, 0, 0)", box.Start)
	}
}

func TestKeyString(t *testing.T) {
	k := RootKey().Push(3).Push(0).Push(6)
	if got := k.String(); got != "Key(depth=3 path=306)" {
		t.Errorf("String() = %q", got)
	}
}

func TestCornerKeyPosition(t *testing.T) {
	// Root corner 0 is the lattice origin, corner 7 the far extreme.
	x, y, z := RootKey().Corner(0).Position()
	if x != 0 || y != 0 || z != 0 {
		t.Errorf("root corner 0 = (%d, %d, %d), want origin", x, y, z)
	}
	far := uint32(1) << MaxDepth
	x, y, z = RootKey().Corner(7).Position()
	if x != far || y != far || z != far {
		t.Errorf("root corner 7 = (%d, %d, %d), want (%d, %d, %d)", x, y, z, far, far, far)
	}
}

func TestCornerKeySharedBetweenSiblings(t *testing.T) {
	// Sibling cells across the x split share a face; corner 1 of the
	// -x child coincides with corner 0 of the +x child.
	left := RootKey().Push(0)
	right := RootKey().Push(1)
	if left.Corner(1) != right.Corner(0) {
		t.Errorf("shared face corner differs: %#x vs %#x",
			uint64(left.Corner(1)), uint64(right.Corner(0)))
	}
}

func TestCornerKeySharedAcrossDepths(t *testing.T) {
	// The parent's corner 7 is also corner 7 of its deepest +++ child
	// at any finer level.
	parent := RootKey().Push(7)
	child := parent.Push(7).Push(7)
	if parent.Corner(7) != child.Corner(7) {
		t.Errorf("coarse/fine shared corner differs: %#x vs %#x",
			uint64(parent.Corner(7)), uint64(child.Corner(7)))
	}
}

func TestCornerKeyCenterOfRoot(t *testing.T) {
	// All 8 children of the root meet at the terrain center; each
	// child's corner facing the center must be the same key.
	children := RootKey().Children()
	center := children[0].Corner(7)
	for i, child := range children {
		// The corner of child i facing the center is the one with all
		// bits flipped.
		if got := child.Corner(7 - i); got != center {
			t.Errorf("child %d center corner = %#x, want %#x", i, uint64(got), uint64(center))
		}
	}
}
