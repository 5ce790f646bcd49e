package dynbvh

import (
	"github.com/arborix/dynbvh/internal/stack"
	"github.com/arborix/dynbvh/ray"
	"github.com/arborix/dynbvh/vec3"
)

// Query returns every payload whose stored leaf bbox overlaps box. An
// empty tree yields an empty, non-nil slice (spec.md §7 EmptyTree is
// not an error).
func (t *Tree) Query(box AABB) []int32 {
	out := make([]int32, 0)
	if t.root == NilHandle {
		return out
	}

	s := stack.New()
	s.Push(t.root)

	for {
		idx, ok := s.Pop()
		if !ok {
			break
		}
		n := t.pool.get(idx)
		if !n.bbox.Overlaps(box) {
			continue
		}
		if n.isLeaf {
			out = append(out, n.payload)
			continue
		}
		s.Push(n.left)
		s.Push(n.right)
	}

	return out
}

// Raycast traverses the tree along the ray that starts at p0 and points
// towards p1, visiting every leaf whose bbox the ray's slab test hits
// (the test has no far limit, so boxes beyond p1 on that ray count too)
// and that predicate
// accepts, and returns the payload whose AABB center is closest to p0
// (spec.md §4.5's chosen center-distance tie-break). It returns
// NilHandle if the tree is empty, the segment is degenerate
// (p0 == p1), or no accepted leaf is hit.
func (t *Tree) Raycast(p0, p1 vec3.Vec3, predicate func(int32) bool) int32 {
	if t.root == NilHandle {
		return NilHandle
	}

	r, ok := ray.Between(p0, p1)
	if !ok {
		return NilHandle // DegenerateRay, spec.md §7
	}

	s := stack.New()
	s.Push(t.root)

	best := NilHandle
	bestDist := float32(0)

	for {
		idx, ok := s.Pop()
		if !ok {
			break
		}
		n := t.pool.get(idx)
		if !n.bbox.IntersectRay(r) {
			continue
		}
		if !n.isLeaf {
			s.Push(n.left)
			s.Push(n.right)
			continue
		}
		if predicate != nil && !predicate(n.payload) {
			continue
		}

		d := n.bbox.Center().Sub(p0).Length()
		if best == NilHandle || d < bestDist {
			best = n.payload
			bestDist = d
		}
	}

	return best
}

// RefitIfNeeded implements the fat-AABB policy of spec.md §4.4: if the
// leaf at handle still (tightly) contains tight, nothing changes (the
// fast path) and handle is returned unmodified. Otherwise the leaf is
// removed and reinserted with tight fattened by the tree's margin (the
// slow path), and the new handle is returned; callers must update
// their payload-to-handle mapping to it.
func (t *Tree) RefitIfNeeded(handle int32, tight AABB) int32 {
	n := t.pool.get(handle)
	if n.bbox.Contains(tight) {
		return handle
	}

	payload := n.payload
	t.RemoveLeaf(handle)
	return t.InsertLeaf(payload, tight.Fattened(t.margin))
}
