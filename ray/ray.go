// Package ray provides the Ray record consumed by the dynbvh core's
// raycast traversal, grounded on original_source/ray.rs: origin,
// direction and a precomputed reciprocal direction for the AABB slab
// test.
package ray

import "github.com/arborix/dynbvh/vec3"

// Ray is a directed line segment's supporting line, with the
// reciprocal direction precomputed once so the slab test in
// [github.com/arborix/dynbvh.AABB.IntersectRay] never divides.
type Ray struct {
	Origin    vec3.Vec3
	Direction vec3.Vec3
	InvDir    vec3.Vec3
}

// New builds a Ray from an origin and a (not necessarily normalized)
// direction. Degenerate (zero-length) directions are the caller's
// responsibility to detect before constructing a Ray for traversal;
// see [github.com/arborix/dynbvh.Tree.Raycast] for the DegenerateRay
// edge case.
func New(origin, direction vec3.Vec3) Ray {
	d := direction.Normalize()
	return Ray{
		Origin:    origin,
		Direction: d,
		InvDir:    d.Reciprocal(),
	}
}

// Between builds the Ray from p0 towards p1, normalizing the segment
// direction. ok is false for a zero-length segment (p0 == p1), in
// which case the returned Ray is the zero value and must not be used
// for traversal.
func Between(p0, p1 vec3.Vec3) (r Ray, ok bool) {
	d := p1.Sub(p0)
	if d == (vec3.Vec3{}) {
		return Ray{}, false
	}
	return New(p0, d), true
}
