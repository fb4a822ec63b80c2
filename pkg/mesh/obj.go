package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteOBJ writes the mesh in Wavefront OBJ form: one `v` line per
// vertex, optional `vn` lines, and one `f` line per face. Face lines
// use 1-based indices, with `//normal` suffixes referencing the face's
// normal (for face normals) or the vertex's own normal (for vertex
// normals, where vertex and normal indices coincide).
func (m *Mesh) WriteOBJ(w io.Writer) error {
	if err := m.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# Mesh generated by voxground")
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v[0], v[1], v[2])
	}
	fmt.Fprintln(bw)

	switch {
	case m.VertexNormals != nil:
		fmt.Fprintln(bw, "# Normals: Vertex")
		for _, n := range m.VertexNormals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
		}
		fmt.Fprintln(bw)
	case m.FaceNormals != nil:
		fmt.Fprintln(bw, "# Normals: Face")
		for _, n := range m.FaceNormals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
		}
		fmt.Fprintln(bw)
	default:
		fmt.Fprintln(bw, "# Normals: None")
		fmt.Fprintln(bw)
	}

	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.face(i)
		switch {
		case m.FaceNormals != nil:
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a+1, i+1, b+1, i+1, c+1, i+1)
		case m.VertexNormals != nil:
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a+1, a+1, b+1, b+1, c+1, c+1)
		default:
			fmt.Fprintf(bw, "f %d %d %d\n", a+1, b+1, c+1)
		}
	}

	return bw.Flush()
}

// WriteOBJFile writes the mesh to a new OBJ file at path.
func (m *Mesh) WriteOBJFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mesh: create %s: %w", path, err)
	}
	defer f.Close()
	if err := m.WriteOBJ(f); err != nil {
		return fmt.Errorf("mesh: write %s: %w", path, err)
	}
	return f.Close()
}
