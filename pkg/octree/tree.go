package octree

import (
	"github.com/alitto/pond/v2"

	"github.com/voxground/voxground/pkg/mcubes"
	"github.com/voxground/voxground/pkg/mesh"
	"github.com/voxground/voxground/pkg/spatial"
	"github.com/voxground/voxground/pkg/tool"
)

// sculptWorkers bounds the parallel fan-out over root child subtrees.
const sculptWorkers = 8

// Cell is one node of the pointer-tree density field: 8 corner
// densities in Z-index order and, for interior cells, exclusive
// ownership of 8 children. The strict ownership is what makes the
// parallel fan-out safe — sibling subtrees never alias.
type Cell struct {
	values   [8]float32
	children *[8]Cell
	depth    uint8
}

func newCell(depth uint8) Cell {
	return Cell{
		values: [8]float32{
			EmptyDensity, EmptyDensity, EmptyDensity, EmptyDensity,
			EmptyDensity, EmptyDensity, EmptyDensity, EmptyDensity,
		},
		depth: depth,
	}
}

// Values returns the cell's corner densities.
func (c *Cell) Values() [8]float32 { return c.values }

// Depth returns how far below the root the cell sits.
func (c *Cell) Depth() int { return int(c.depth) }

// IsLeaf reports whether the cell has no children.
func (c *Cell) IsLeaf() bool { return c.children == nil }

// IntersectsSurface reports whether the isosurface crosses the cell,
// judged by adjacent corner signs.
func (c *Cell) IntersectsSurface() bool { return diffSigns(c.values) }

// Subdivide creates 8 children whose corners are trilinearly refined
// from this cell's corners. No-op on interior cells.
func (c *Cell) Subdivide() {
	if c.children != nil {
		return
	}
	childValues := SubdivideValues(c.values)
	children := new([8]Cell)
	for i := range children {
		children[i] = Cell{values: childValues[i], depth: c.depth + 1}
	}
	c.children = children
}

// Collapse drops the cell's children, making it a leaf again.
func (c *Cell) Collapse() { c.children = nil }

func (c *Cell) applyTool(t tool.Tool, toolAABB, aoeAABB spatial.AABB, action tool.Action, cellAABB spatial.AABB, maxDepth int) {
	// The new values are computed from the old ones up front: the
	// subdivision below must interpolate from pre-tool corners, and
	// sibling corners must not observe half-updated state.
	newvals := c.values
	scale := cellAABB.Size[0]
	for i, pos := range cellAABB.Corners() {
		newvals[i] = action.Apply(newvals[i], t.Value(pos, scale))
	}

	if c.IsLeaf() && c.Depth() < maxDepth &&
		shouldSubdivide(t, action, cellAABB, toolAABB, aoeAABB, diffSigns(newvals)) {
		c.Subdivide()
	}

	c.values = newvals

	if c.children != nil {
		childAABBs := cellAABB.OctreeSubdivide()
		for i := range c.children {
			c.children[i].applyTool(t, toolAABB, aoeAABB, action, childAABBs[i], maxDepth)
		}
		c.collapseIfUniform()
	}
}

// collapseIfUniform prunes children that are all leaves on the same
// side of the isosurface; the tool filled or emptied this region
// uniformly and the extra resolution no longer buys anything.
func (c *Cell) collapseIfUniform() {
	for i := range c.children {
		child := &c.children[i]
		if !child.IsLeaf() || child.IntersectsSurface() {
			return
		}
	}
	c.Collapse()
}

func (c *Cell) generateMesh(tris *[]mcubes.Triangle, maxDepth int, cellAABB spatial.AABB) {
	if c.Depth() < maxDepth && c.children != nil {
		childAABBs := cellAABB.OctreeSubdivide()
		for i := range c.children {
			c.children[i].generateMesh(tris, maxDepth, childAABBs[i])
		}
		return
	}
	*tris = append(*tris, mcubes.MarchCube(cellAABB.Corners(), c.values)...)
}

// leafCount counts the leaves of the subtree.
func (c *Cell) leafCount() int {
	if c.IsLeaf() {
		return 1
	}
	n := 0
	for i := range c.children {
		n += c.children[i].leafCount()
	}
	return n
}

// Tree is the pointer-tree density field strategy: a strict ownership
// tree of Cells over a cubic terrain of the given world-space scale,
// rooted at a single empty leaf.
type Tree struct {
	root  Cell
	scale float32
}

// NewTree creates an empty terrain covering the cube from the origin
// to (scale, scale, scale).
func NewTree(scale float32) *Tree {
	return &Tree{root: newCell(0), scale: scale}
}

// Scale returns the terrain's edge length.
func (t *Tree) Scale() float32 { return t.scale }

// Bounds returns the terrain's box.
func (t *Tree) Bounds() spatial.AABB {
	return spatial.AABB{Size: mglSplat(t.scale)}
}

// LeafCount returns the number of leaf cells in the field.
func (t *Tree) LeafCount() int { return t.root.leafCount() }

// ApplyTool sculpts the terrain with one tool application, refining
// and pruning resolution as it goes, down to at most maxDepth levels.
func (t *Tree) ApplyTool(tl tool.Tool, action tool.Action, maxDepth int) {
	maxDepth = clampDepth(maxDepth)
	toolAABB, aoeAABB, ok := clipToolAABBs(tl, action, t.Bounds())
	if !ok {
		return
	}
	t.root.applyTool(tl, toolAABB, aoeAABB, action, t.Bounds(), maxDepth)
}

// ApplyToolParallel is ApplyTool with the 8 root child subtrees
// sculpted concurrently. Each worker owns its subtree exclusively, so
// no synchronization is needed below the root. Must not be called
// concurrently with any other mutation of the same tree.
func (t *Tree) ApplyToolParallel(tl tool.Tool, action tool.Action, maxDepth int) {
	maxDepth = clampDepth(maxDepth)
	toolAABB, aoeAABB, ok := clipToolAABBs(tl, action, t.Bounds())
	if !ok {
		return
	}

	root := &t.root
	rootAABB := t.Bounds()

	// Root-level step, done serially: sample, decide subdivision,
	// commit. The children are then disjoint units of work.
	newvals := root.values
	scale := rootAABB.Size[0]
	for i, pos := range rootAABB.Corners() {
		newvals[i] = action.Apply(newvals[i], tl.Value(pos, scale))
	}
	if root.IsLeaf() && maxDepth > 0 &&
		shouldSubdivide(tl, action, rootAABB, toolAABB, aoeAABB, diffSigns(newvals)) {
		root.Subdivide()
	}
	root.values = newvals

	if root.children != nil {
		childAABBs := rootAABB.OctreeSubdivide()
		pool := pond.NewPool(sculptWorkers)
		group := pool.NewGroup()
		for i := range root.children {
			child := &root.children[i]
			aabb := childAABBs[i]
			group.Submit(func() {
				child.applyTool(tl, toolAABB, aoeAABB, action, aabb, maxDepth)
			})
		}
		group.Wait()
		pool.StopAndWait()
		root.collapseIfUniform()
	}
}

// GenerateMesh extracts the isosurface over all leaf cells, descending
// at most maxDepth levels, as an unindexed triangle soup.
func (t *Tree) GenerateMesh(maxDepth int) *mesh.Mesh {
	var tris []mcubes.Triangle
	t.root.generateMesh(&tris, maxDepth, t.Bounds())
	return soupMesh(tris)
}

// GenerateMeshParallel extracts the mesh with the 8 root child
// subtrees marched concurrently into a shared collector. Triangle
// ordering is not guaranteed.
func (t *Tree) GenerateMeshParallel(maxDepth int) *mesh.Mesh {
	if t.root.IsLeaf() || maxDepth == 0 {
		return t.GenerateMesh(maxDepth)
	}

	var collector triangleCollector
	childAABBs := t.Bounds().OctreeSubdivide()
	pool := pond.NewPool(sculptWorkers)
	group := pool.NewGroup()
	for i := range t.root.children {
		child := &t.root.children[i]
		aabb := childAABBs[i]
		group.Submit(func() {
			var tris []mcubes.Triangle
			child.generateMesh(&tris, maxDepth, aabb)
			collector.add(tris)
		})
	}
	group.Wait()
	pool.StopAndWait()

	return soupMesh(collector.tris)
}

// Field implementation: key-addressed access walks the octant path.

func (t *Tree) cellAt(key Key) *Cell {
	c := &t.root
	for d := 1; d <= key.Depth(); d++ {
		if c.children == nil {
			panic("octree: key addresses a missing cell")
		}
		c = &c.children[key.Index(d)]
	}
	return c
}

// Values returns the corner densities of the cell at key.
func (t *Tree) Values(key Key) [8]float32 { return t.cellAt(key).Values() }

// IsLeaf reports whether the cell at key is a leaf.
func (t *Tree) IsLeaf(key Key) bool { return t.cellAt(key).IsLeaf() }

// Subdivide splits the cell at key.
func (t *Tree) Subdivide(key Key) { t.cellAt(key).Subdivide() }

// Collapse drops the children of the cell at key.
func (t *Tree) Collapse(key Key) { t.cellAt(key).Collapse() }
