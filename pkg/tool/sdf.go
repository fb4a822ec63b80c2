package tool

import (
	"github.com/chewxy/math32"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxground/voxground/pkg/spatial"
)

// SDF adapts a deadsy/sdfx solid into a sculpting tool, so any sdfx
// primitive or boolean combination can sculpt the terrain. sdfx uses
// the signed-distance convention of negative-inside, which is negated
// here to match the density convention of positive-inside.
type SDF struct {
	solid   sdf.SDF3
	concave bool
}

// NewSDF wraps an sdfx solid. Mark boolean combinations that carve
// inward (differences, shells) concave so the sculpt engine refines
// anywhere their effect region touches.
func NewSDF(solid sdf.SDF3, concave bool) *SDF {
	return &SDF{solid: solid, concave: concave}
}

// Value converts the solid's signed distance at pos into a clamped
// cell-relative density.
func (s *SDF) Value(pos mgl32.Vec3, scale float32) float32 {
	d := s.solid.Evaluate(v3.Vec{X: float64(pos[0]), Y: float64(pos[1]), Z: float64(pos[2])})
	v := float32(-d) / scale
	return math32.Max(-1, math32.Min(1, v))
}

// ToolAABB converts the solid's bounding box.
func (s *SDF) ToolAABB() spatial.AABB {
	bb := s.solid.BoundingBox()
	start := mgl32.Vec3{float32(bb.Min.X), float32(bb.Min.Y), float32(bb.Min.Z)}
	end := mgl32.Vec3{float32(bb.Max.X), float32(bb.Max.Y), float32(bb.Max.Z)}
	return spatial.AABB{Start: start, Size: end.Sub(start)}
}

// AOEAABB is the bounding box padded by the unit clamp falloff.
func (s *SDF) AOEAABB() spatial.AABB {
	box := s.ToolAABB()
	one := mgl32.Vec3{1, 1, 1}
	return spatial.AABB{
		Start: box.Start.Sub(one),
		Size:  box.Size.Add(one.Mul(2)),
	}
}

// IsConcave reports the flag given at construction.
func (s *SDF) IsConcave() bool { return s.concave }
