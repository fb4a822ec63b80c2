package octree

import (
	"github.com/voxground/voxground/pkg/mcubes"
	"github.com/voxground/voxground/pkg/mesh"
	"github.com/voxground/voxground/pkg/spatial"
	"github.com/voxground/voxground/pkg/tool"
)

// OctantMap is the flat-map density field strategy: one associative
// map from cell key to corner densities, plus a parallel set tracking
// which keys are currently leaves. Subdivision and collapse are
// insert/remove operations. Not safe for concurrent mutation.
type OctantMap struct {
	octants map[Key][8]float32
	leaves  map[Key]struct{}
	scale   float32
}

// NewOctantMap creates an empty terrain covering the cube from the
// origin to (scale, scale, scale), holding a single root leaf.
func NewOctantMap(scale float32) *OctantMap {
	m := &OctantMap{
		octants: make(map[Key][8]float32),
		leaves:  make(map[Key]struct{}),
		scale:   scale,
	}
	m.octants[RootKey()] = [8]float32{
		EmptyDensity, EmptyDensity, EmptyDensity, EmptyDensity,
		EmptyDensity, EmptyDensity, EmptyDensity, EmptyDensity,
	}
	m.leaves[RootKey()] = struct{}{}
	return m
}

// Scale returns the terrain's edge length.
func (m *OctantMap) Scale() float32 { return m.scale }

// Bounds returns the terrain's box.
func (m *OctantMap) Bounds() spatial.AABB {
	return spatial.AABB{Size: mglSplat(m.scale)}
}

// Len returns the number of stored cells.
func (m *OctantMap) Len() int { return len(m.octants) }

// LeafCount returns the number of leaf cells.
func (m *OctantMap) LeafCount() int { return len(m.leaves) }

func (m *OctantMap) exists(key Key) bool {
	_, ok := m.octants[key]
	return ok
}

// HasChildren reports whether the cell at key has been subdivided,
// checked by the existence of its first child entry.
func (m *OctantMap) HasChildren(key Key) bool {
	if key.AtMaxDepth() {
		return false
	}
	return m.exists(key.Child(0))
}

// Values returns the corner densities of the cell at key. Panics on a
// key with no entry.
func (m *OctantMap) Values(key Key) [8]float32 {
	values, ok := m.octants[key]
	if !ok {
		panic("octree: key addresses a missing cell")
	}
	return values
}

// IsLeaf reports whether the cell at key is a leaf.
func (m *OctantMap) IsLeaf(key Key) bool {
	if !m.exists(key) {
		panic("octree: key addresses a missing cell")
	}
	_, ok := m.leaves[key]
	return ok
}

// intersectsSurface reports whether the isosurface crosses the cell.
func (m *OctantMap) intersectsSurface(key Key) bool {
	return diffSigns(m.Values(key))
}

// isCollapsible reports whether every child of the cell is a leaf on a
// single side of the isosurface.
func (m *OctantMap) isCollapsible(key Key) bool {
	if key.AtMaxDepth() || !m.HasChildren(key) {
		return false
	}
	for _, child := range key.Children() {
		if m.HasChildren(child) || m.intersectsSurface(child) {
			return false
		}
	}
	return true
}

// Collapse removes the cell's children and makes it a leaf again.
// No-op unless the children are collapsible.
func (m *OctantMap) Collapse(key Key) {
	if !m.isCollapsible(key) {
		return
	}
	for _, child := range key.Children() {
		delete(m.leaves, child)
		delete(m.octants, child)
	}
	m.leaves[key] = struct{}{}
}

// Subdivide splits the leaf at key into 8 children with trilinearly
// refined corners. No-op on interior cells or at max depth.
func (m *OctantMap) Subdivide(key Key) {
	m.subdivideWithValues(key, m.Values(key))
}

func (m *OctantMap) subdivideWithValues(key Key, values [8]float32) {
	if key.AtMaxDepth() || m.HasChildren(key) {
		return
	}
	childValues := SubdivideValues(values)
	for i, child := range key.Children() {
		m.octants[child] = childValues[i]
		m.leaves[child] = struct{}{}
	}
	delete(m.leaves, key)
}

// ApplyTool sculpts the terrain with one tool application, refining
// and pruning resolution as it goes, down to at most maxDepth levels.
func (m *OctantMap) ApplyTool(t tool.Tool, action tool.Action, maxDepth int) {
	maxDepth = clampDepth(maxDepth)
	toolAABB, aoeAABB, ok := clipToolAABBs(t, action, m.Bounds())
	if !ok {
		return
	}
	m.applyToolAt(t, toolAABB, aoeAABB, action, maxDepth, RootKey())
}

func (m *OctantMap) applyToolAt(t tool.Tool, toolAABB, aoeAABB spatial.AABB, action tool.Action, maxDepth int, key Key) {
	cellAABB := key.AABB(m.Bounds())
	scale := key.Scale(m.scale)

	newvals := m.Values(key)
	for i, pos := range cellAABB.Corners() {
		newvals[i] = action.Apply(newvals[i], t.Value(pos, scale))
	}

	// Subdivision interpolates from the pre-tool values, so it has to
	// happen before the new values are committed.
	if !key.AtMaxDepth() && key.Depth() < maxDepth && !m.HasChildren(key) &&
		shouldSubdivide(t, action, cellAABB, toolAABB, aoeAABB, diffSigns(newvals)) {
		m.Subdivide(key)
	}

	m.octants[key] = newvals

	if m.HasChildren(key) {
		// Pre-existing children update regardless of maxDepth.
		for _, child := range key.Children() {
			m.applyToolAt(t, toolAABB, aoeAABB, action, maxDepth, child)
		}
		m.Collapse(key)
	}
}

// GenerateMesh extracts the isosurface over the leaf cells (and over
// interior cells pinned at maxDepth) as an unindexed triangle soup.
func (m *OctantMap) GenerateMesh(maxDepth int) *mesh.Mesh {
	var tris []mcubes.Triangle
	for key, values := range m.octants {
		depth := key.Depth()
		if depth == maxDepth || (depth < maxDepth && m.IsLeaf(key)) {
			cellAABB := key.AABB(m.Bounds())
			tris = append(tris, mcubes.MarchCube(cellAABB.Corners(), values)...)
		}
	}
	return soupMesh(tris)
}
