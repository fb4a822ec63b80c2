// Package octree holds the adaptive density field: bit-packed spatial
// keys, the pointer-tree and flat-map storage strategies, the sculpt
// traversal that applies tools to the field, and isosurface mesh
// extraction over the leaf cells.
package octree

import (
	"fmt"

	"github.com/voxground/voxground/pkg/spatial"
)

// MaxDepth is the deepest level a Key can address: nineteen 3-bit
// octant segments fit in the packed layout below the depth field.
const MaxDepth = 19

// Key is a 64-bit packed octree cell address.
//
// Bit layout:
//
//	63..59  depth (0..=19), the number of valid octant segments
//	58..57  spare, always zero
//	56..0   nineteen 3-bit octant segments; segment d (1-based) sits at
//	        bits 3*(d-1)..3*(d-1)+2 and selects the child taken at
//	        depth d
//
// Segments beyond the depth must be zero. Keeping that invariant is
// what makes equal cells compare equal under ==, so every mutating
// operation below re-zeroes truncated segments.
type Key uint64

const (
	depthShift   = 59
	depthMask    = 0x1f
	spareMask    = uint64(0x3) << 57
	segmentsMask = (uint64(1) << 57) - 1
)

// RootKey addresses the root cell.
func RootKey() Key { return 0 }

// FromRaw reinterprets a raw uint64 as a Key, rejecting values that
// violate the packing invariants (depth out of range, spare bits set,
// or nonzero segments beyond the depth).
func FromRaw(raw uint64) (Key, bool) {
	k := Key(raw)
	if !k.valid() {
		return 0, false
	}
	return k, true
}

func (k Key) valid() bool {
	d := uint64(k) >> depthShift & depthMask
	if d > MaxDepth {
		return false
	}
	if uint64(k)&spareMask != 0 {
		return false
	}
	// Segments beyond depth must be zero.
	return uint64(k)&segmentsMask>>(3*d) == 0
}

// Depth returns the number of valid octant segments.
func (k Key) Depth() int {
	return int(uint64(k) >> depthShift & depthMask)
}

// AtMaxDepth reports whether the key can take no further Push.
func (k Key) AtMaxDepth() bool {
	return k.Depth() == MaxDepth
}

// SetDepth truncates or extends the key's valid segment count. Segments
// beyond the new depth are zeroed so truncated keys stay canonical.
func (k Key) SetDepth(d int) Key {
	if d < 0 || d > MaxDepth {
		panic(fmt.Sprintf("octree: SetDepth(%d) out of range", d))
	}
	raw := uint64(k) &^ (uint64(depthMask) << depthShift)
	raw &= (uint64(1)<<(3*d) - 1) & segmentsMask
	raw |= uint64(d) << depthShift
	return Key(raw)
}

// Index returns the octant segment at depth d, which must be in
// 1..=Depth().
func (k Key) Index(d int) int {
	if d < 1 || d > k.Depth() {
		panic(fmt.Sprintf("octree: Index(%d) outside key depth %d", d, k.Depth()))
	}
	return int(uint64(k) >> (3 * (d - 1)) & 0x7)
}

// SetIndex replaces the octant segment at depth d.
func (k Key) SetIndex(d, idx int) Key {
	if d < 1 || d > k.Depth() {
		panic(fmt.Sprintf("octree: SetIndex(%d) outside key depth %d", d, k.Depth()))
	}
	if idx < 0 || idx > 7 {
		panic(fmt.Sprintf("octree: octant index %d out of range", idx))
	}
	shift := 3 * (d - 1)
	raw := uint64(k) &^ (uint64(0x7) << shift)
	return Key(raw | uint64(idx)<<shift)
}

// Push appends idx as the new deepest segment. Panics at MaxDepth.
func (k Key) Push(idx int) Key {
	if k.AtMaxDepth() {
		panic("octree: Push past max key depth")
	}
	if idx < 0 || idx > 7 {
		panic(fmt.Sprintf("octree: octant index %d out of range", idx))
	}
	d := k.Depth() + 1
	return k.SetDepth(d).SetIndex(d, idx)
}

// Pop removes and returns the deepest segment. Panics on the root key.
func (k Key) Pop() (Key, int) {
	d := k.Depth()
	if d == 0 {
		panic("octree: Pop on root key")
	}
	idx := k.Index(d)
	return k.SetDepth(d - 1), idx
}

// Child returns the key of octant i below this cell.
func (k Key) Child(i int) Key {
	return k.Push(i)
}

// Children returns the keys of the 8 child cells.
func (k Key) Children() [8]Key {
	var children [8]Key
	for i := range children {
		children[i] = k.Push(i)
	}
	return children
}

// Scale returns the cell's edge length relative to a root of the given
// edge length.
func (k Key) Scale(rootScale float32) float32 {
	return rootScale / float32(uint64(1)<<k.Depth())
}

// AABB derives the cell's box by folding the octant path down from the
// root box.
func (k Key) AABB(root spatial.AABB) spatial.AABB {
	box := root
	for d := 1; d <= k.Depth(); d++ {
		box = box.OctreeChild(k.Index(d))
	}
	return box
}

func (k Key) String() string {
	d := k.Depth()
	path := make([]byte, 0, d)
	for i := 1; i <= d; i++ {
		path = append(path, byte('0'+k.Index(i)))
	}
	return fmt.Sprintf("Key(depth=%d path=%s)", d, path)
}

// latticeBits is the per-axis coordinate width of a CornerKey. Corner
// coordinates run 0..=2^MaxDepth inclusive, so one extra bit beyond
// MaxDepth is needed.
const latticeBits = MaxDepth + 1

// CornerKey identifies a cell corner by its absolute position on the
// max-resolution corner lattice, packed as three 20-bit coordinates
// (x at bits 0..19, y at 20..39, z at 40..59). Because the position is
// absolute, geometrically coincident corners of different cells — an
// adjacent sibling, or a finer cell sharing the corner — produce
// bit-identical keys.
type CornerKey uint64

// Position unpacks the lattice coordinates. The lattice spans
// 0..=1<<MaxDepth per axis across the root cell.
func (c CornerKey) Position() (x, y, z uint32) {
	mask := uint64(1)<<latticeBits - 1
	x = uint32(uint64(c) & mask)
	y = uint32(uint64(c) >> latticeBits & mask)
	z = uint32(uint64(c) >> (2 * latticeBits) & mask)
	return
}

// Corner returns the key of the cell's i'th corner (Z-index order).
func (k Key) Corner(i int) CornerKey {
	if i < 0 || i > 7 {
		panic(fmt.Sprintf("octree: corner index %d out of range", i))
	}
	d := k.Depth()
	size := uint64(1) << (MaxDepth - d)
	var pos [3]uint64
	for depth := 1; depth <= d; depth++ {
		seg := uint64(k) >> (3 * (depth - 1)) & 0x7
		for axis := 0; axis < 3; axis++ {
			pos[axis] |= (seg >> axis & 1) << (MaxDepth - depth)
		}
	}
	for axis := 0; axis < 3; axis++ {
		pos[axis] += (uint64(i) >> axis & 1) * size
	}
	return CornerKey(pos[0] | pos[1]<<latticeBits | pos[2]<<(2*latticeBits))
}

// Corners returns the keys of all 8 cell corners.
func (k Key) Corners() [8]CornerKey {
	var corners [8]CornerKey
	for i := range corners {
		corners[i] = k.Corner(i)
	}
	return corners
}
