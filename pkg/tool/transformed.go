package tool

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxground/voxground/pkg/spatial"
)

// Transformed wraps another tool with an affine placement: sample
// positions are pulled back into the inner tool's local space, tool
// bounds are pushed forward into world space.
type Transformed struct {
	inner   Tool
	mat     mgl32.Mat4
	inv     mgl32.Mat4
	scale   float32
	concave bool
}

// NewTransformed places inner in the world: translated by translate,
// rotated by the Euler angles rot (degrees, applied X then Y then Z)
// and uniformly scaled. scale must be positive.
func NewTransformed(inner Tool, translate, rot mgl32.Vec3, scale float32) *Transformed {
	if scale <= 0 {
		panic("tool: non-positive transform scale")
	}
	m := mgl32.Translate3D(translate[0], translate[1], translate[2]).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rot[2]))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rot[1]))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rot[0]))).
		Mul4(mgl32.Scale3D(scale, scale, scale))
	return &Transformed{
		inner:   inner,
		mat:     m,
		inv:     m.Inv(),
		scale:   scale,
		concave: inner.IsConcave(),
	}
}

// Value pulls pos back into local space and samples the inner tool.
// The cell scale shrinks by the placement's scale factor so the inner
// tool still sees cell-relative units.
func (t *Transformed) Value(pos mgl32.Vec3, scale float32) float32 {
	local := mgl32.TransformCoordinate(pos, t.inv)
	return t.inner.Value(local, scale/t.scale)
}

// ToolAABB is the world-space bound of the inner tool's add region.
func (t *Transformed) ToolAABB() spatial.AABB {
	return t.forward(t.inner.ToolAABB())
}

// AOEAABB is the world-space bound of the inner tool's effect region.
func (t *Transformed) AOEAABB() spatial.AABB {
	return t.forward(t.inner.AOEAABB())
}

// IsConcave mirrors the inner tool's flag.
func (t *Transformed) IsConcave() bool { return t.concave }

// forward maps a local-space box through the placement and returns the
// axis-aligned bound of the result.
func (t *Transformed) forward(box spatial.AABB) spatial.AABB {
	corners := box.Corners()
	first := mgl32.TransformCoordinate(corners[0], t.mat)
	out := spatial.AABB{Start: first}
	for _, c := range corners[1:] {
		out.Expand(mgl32.TransformCoordinate(c, t.mat))
	}
	return out
}
