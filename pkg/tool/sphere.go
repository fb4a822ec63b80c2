package tool

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxground/voxground/pkg/spatial"
)

// Sphere is the reference tool: a ball of material around Origin.
type Sphere struct {
	Origin mgl32.Vec3
	Radius float32
}

// NewSphere returns a sphere tool at origin with the given radius.
func NewSphere(origin mgl32.Vec3, radius float32) Sphere {
	return Sphere{Origin: origin, Radius: radius}
}

// Value is the clamped signed distance to the sphere surface,
// normalized by the sampling cell's edge length.
func (s Sphere) Value(pos mgl32.Vec3, scale float32) float32 {
	v := (s.Radius - pos.Sub(s.Origin).Len()) / scale
	return math32.Max(-1, math32.Min(1, v))
}

// ToolAABB bounds the region where the sphere adds material.
func (s Sphere) ToolAABB() spatial.AABB {
	return spatial.FromRadius(s.Origin, s.Radius)
}

// AOEAABB bounds the region where the sphere can affect material; the
// extra unit covers the clamp falloff at unit cell scale.
func (s Sphere) AOEAABB() spatial.AABB {
	return spatial.FromRadius(s.Origin, s.Radius+1)
}

// IsConcave is always false for a sphere.
func (s Sphere) IsConcave() bool { return false }
