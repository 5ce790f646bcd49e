package dynbvh

import (
	"github.com/arborix/dynbvh/ray"
	"github.com/arborix/dynbvh/vec3"
)

// AABB is an axis-aligned bounding box, represented as a pair of
// float3 corners.
type AABB struct {
	Min, Max vec3.Vec3
}

// NewAABB returns the box with the given corners. min is not
// required to be componentwise less than max; callers that build
// boxes from a center and a full size should use [FromCenterSize]
// instead if that invariant matters to them.
func NewAABB(min, max vec3.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// FromCenterSize returns the tight AABB of an object at center with
// the given full size, as used throughout the entity registry in
// package demo.
func FromCenterSize(center, size vec3.Vec3) AABB {
	half := size.Scale(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Fattened returns a with margin subtracted from Min and added to Max
// on every axis — the fat-AABB envelope used by [Tree.RefitIfNeeded].
func (a AABB) Fattened(margin float32) AABB {
	m := vec3.Splat(margin)
	return AABB{Min: a.Min.Sub(m), Max: a.Max.Add(m)}
}

// Union returns the smallest AABB enclosing both a and b.
func Union(a, b AABB) AABB {
	return AABB{Min: vec3.Min(a.Min, b.Min), Max: vec3.Max(a.Max, b.Max)}
}

// Area returns the surface area 2*(dx*dy + dy*dz + dz*dx) used as the
// SAH cost proxy throughout insertion.
func Area(a AABB) float32 {
	d := a.Max.Sub(a.Min)
	return 2 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// Contains reports whether a encloses b on every axis: a.Min <= b.Min
// and a.Max >= b.Max, componentwise.
func (a AABB) Contains(b AABB) bool {
	return a.Min.X <= b.Min.X && a.Min.Y <= b.Min.Y && a.Min.Z <= b.Min.Z &&
		a.Max.X >= b.Max.X && a.Max.Y >= b.Max.Y && a.Max.Z >= b.Max.Z
}

// Overlaps reports whether a and b share any point, via a
// separating-axis test on min/max per axis.
func (a AABB) Overlaps(b AABB) bool {
	if a.Min.X > b.Max.X || a.Max.X < b.Min.X {
		return false
	}
	if a.Min.Y > b.Max.Y || a.Max.Y < b.Min.Y {
		return false
	}
	if a.Min.Z > b.Max.Z || a.Max.Z < b.Min.Z {
		return false
	}
	return true
}

// Center returns the midpoint of a.
func (a AABB) Center() vec3.Vec3 {
	return a.Min.Add(a.Max).Scale(0.5)
}

// IntersectRay runs the slab test against r using r's precomputed
// reciprocal direction. Axis-aligned rays rely on IEEE-754 signed
// infinity arithmetic from a zero direction component; this is
// intentional, per spec.
func (a AABB) IntersectRay(r ray.Ray) bool {
	t1 := a.Min.Sub(r.Origin).Mul(r.InvDir)
	t2 := a.Max.Sub(r.Origin).Mul(r.InvDir)

	tEnter := vec3.Min(t1, t2).MaxComponent()
	tExit := vec3.Max(t1, t2).MinComponent()

	return tExit >= tEnter && tExit > 0
}
