// Package tool defines the sculpting tool contract: a signed
// density-like function over space paired with conservative bounds on
// where it can add or affect material, plus the Action rule that
// combines a tool sample with the existing density field.
package tool

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxground/voxground/pkg/spatial"
)

// Tool is a parametric sculpting shape.
//
// Value returns the signed density contribution at a world position,
// where scale is the edge length of the cell being sampled; values are
// conventionally clamped to [-1, 1] with positive meaning inside
// material. ToolAABB bounds the region where Value may exceed 0 (where
// the tool can add material); AOEAABB bounds the region where Value may
// exceed -1 (where it can affect material at all) and always contains
// ToolAABB.
//
// IsConcave is a subdivision heuristic flag, not a statement about the
// boundary curve: concave tools force subdivision anywhere their AOE
// touches a cell, convex tools only subdivide on a sign crossing or
// AABB containment.
type Tool interface {
	Value(pos mgl32.Vec3, scale float32) float32
	ToolAABB() spatial.AABB
	AOEAABB() spatial.AABB
	IsConcave() bool
}

// IsConvex reports the complement of t.IsConcave.
func IsConvex(t Tool) bool {
	return !t.IsConcave()
}

// Action selects how a tool sample combines with an existing density.
type Action int

const (
	// Place adds material: the new density is the max of old and tool
	// value, a monotonic union.
	Place Action = iota
	// Remove subtracts material: the new density is the min of the old
	// value and the negated tool value.
	Remove
)

func (a Action) String() string {
	switch a {
	case Place:
		return "Place"
	case Remove:
		return "Remove"
	}
	return "Action(?)"
}

// Apply combines an existing density with a tool sample. Pure and
// idempotent: applying the same sample twice gives the same result as
// once.
func (a Action) Apply(old, toolVal float32) float32 {
	switch a {
	case Place:
		if toolVal > old {
			return toolVal
		}
		return old
	case Remove:
		if -toolVal < old {
			return -toolVal
		}
		return old
	}
	panic("tool: unknown action")
}
