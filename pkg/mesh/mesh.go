// Package mesh holds the triangle mesh produced by isosurface
// extraction and the post-processing steps its consumers want: vertex
// dedup/indexing, face and vertex normal generation, and OBJ export.
// Meshes are plain data; every method mutates or reads the receiver
// without touching the density field that produced it.
package mesh

import (
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a triangle mesh. With nil Indices the vertices are an
// unindexed triangle soup, three consecutive vertices per face. At most
// one of FaceNormals and VertexNormals may be set.
type Mesh struct {
	Vertices      []mgl32.Vec3
	Indices       []uint32
	FaceNormals   []mgl32.Vec3
	VertexNormals []mgl32.Vec3
}

// normalWorkers bounds the fan-out of parallel normal generation.
const normalWorkers = 8

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int {
	if m.Indices != nil {
		return len(m.Indices) / 3
	}
	return len(m.Vertices) / 3
}

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Validate checks the structural invariants: triangle-multiple index
// and soup lengths, index bounds, normal counts matching face or
// vertex counts, and at most one normal set.
func (m *Mesh) Validate() error {
	if m.Indices != nil {
		if len(m.Indices)%3 != 0 {
			return fmt.Errorf("mesh: index count %d not a multiple of 3", len(m.Indices))
		}
		for i, idx := range m.Indices {
			if int(idx) >= len(m.Vertices) {
				return fmt.Errorf("mesh: index %d at %d exceeds vertex count %d", idx, i, len(m.Vertices))
			}
		}
	} else if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("mesh: unindexed vertex count %d not a multiple of 3", len(m.Vertices))
	}
	if m.FaceNormals != nil && m.VertexNormals != nil {
		return fmt.Errorf("mesh: both face and vertex normals present")
	}
	if m.FaceNormals != nil && len(m.FaceNormals) != m.TriangleCount() {
		return fmt.Errorf("mesh: %d face normals for %d faces", len(m.FaceNormals), m.TriangleCount())
	}
	if m.VertexNormals != nil && len(m.VertexNormals) != len(m.Vertices) {
		return fmt.Errorf("mesh: %d vertex normals for %d vertices", len(m.VertexNormals), len(m.Vertices))
	}
	return nil
}

// Index deduplicates identical vertex positions and rewrites the mesh
// as an indexed mesh. A no-op when indices already exist. Vertex order
// follows first occurrence. Existing vertex normals are carried over
// from the first occurrence of each position.
func (m *Mesh) Index() {
	if m.Indices != nil {
		return
	}

	seen := make(map[mgl32.Vec3]uint32, len(m.Vertices))
	indices := make([]uint32, 0, len(m.Vertices))
	verts := make([]mgl32.Vec3, 0, len(m.Vertices))
	var normals []mgl32.Vec3
	if m.VertexNormals != nil {
		normals = make([]mgl32.Vec3, 0, len(m.Vertices))
	}

	for i, v := range m.Vertices {
		idx, ok := seen[v]
		if !ok {
			idx = uint32(len(verts))
			seen[v] = idx
			verts = append(verts, v)
			if normals != nil {
				normals = append(normals, m.VertexNormals[i])
			}
		}
		indices = append(indices, idx)
	}

	m.Vertices = verts
	m.Indices = indices
	if normals != nil {
		m.VertexNormals = normals
	}
}

// face returns the vertex indices of face i for both mesh layouts.
func (m *Mesh) face(i int) (a, b, c int) {
	if m.Indices != nil {
		return int(m.Indices[3*i]), int(m.Indices[3*i+1]), int(m.Indices[3*i+2])
	}
	return 3 * i, 3*i + 1, 3*i + 2
}

func (m *Mesh) faceNormal(i int) mgl32.Vec3 {
	a, b, c := m.face(i)
	edgeA := m.Vertices[b].Sub(m.Vertices[a])
	edgeB := m.Vertices[c].Sub(m.Vertices[a])
	n := edgeA.Cross(edgeB)
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

// GenerateFaceNormals computes one normal per face from the winding
// order. A no-op if any normals already exist. Faces fan out over a
// bounded worker pool; each worker writes a disjoint slice range.
func (m *Mesh) GenerateFaceNormals() {
	if m.FaceNormals != nil || m.VertexNormals != nil {
		return
	}

	count := m.TriangleCount()
	normals := make([]mgl32.Vec3, count)

	pool := pond.NewPool(normalWorkers)
	group := pool.NewGroup()
	const chunk = 1024
	for start := 0; start < count; start += chunk {
		start := start
		end := min(start+chunk, count)
		group.Submit(func() {
			for i := start; i < end; i++ {
				normals[i] = m.faceNormal(i)
			}
		})
	}
	group.Wait()
	pool.StopAndWait()

	m.FaceNormals = normals
}

// GenerateVertexNormals computes per-vertex normals by averaging the
// adjoining face normals. The mesh is indexed first if needed (soup
// vertices never share faces, so averaging would be meaningless), and
// any face normals are consumed.
func (m *Mesh) GenerateVertexNormals() {
	if m.VertexNormals != nil {
		return
	}
	m.Index()
	m.GenerateFaceNormals()

	sums := make([]mgl32.Vec3, len(m.Vertices))
	counts := make([]int, len(m.Vertices))
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.face(i)
		for _, v := range [3]int{a, b, c} {
			sums[v] = sums[v].Add(m.FaceNormals[i])
			counts[v]++
		}
	}

	normals := make([]mgl32.Vec3, len(m.Vertices))
	for i := range normals {
		if counts[i] > 0 {
			normals[i] = sums[i].Mul(1 / float32(counts[i]))
		}
	}

	m.FaceNormals = nil
	m.VertexNormals = normals
}
