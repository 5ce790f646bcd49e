// Package demo is a thin embedder built on top of dynbvh.Tree: an
// entity registry with layer/mask filtering and a deferred deletion
// queue, grounded on original_source/entity.rs and
// original_source/test/world.rs. It is explicitly not part of the
// dynbvh core (spec.md §1 excludes "gameplay semantics" from the
// core); it exists to exercise the core's consumed/exposed interfaces
// end to end and to give the ambient stack (metrics, CLI, logging) a
// concrete thing to observe.
package demo

import (
	"github.com/arborix/dynbvh"
	"github.com/arborix/dynbvh/vec3"
)

// Entity is a gameplay object tracked by a World. Unlike
// original_source/entity.rs, it does not carry callback fields:
// spec.md §9 "Dynamic behavior ports" requires callback dispatch to
// happen after query traversal returns, never from inside it, so
// callback storage and invocation are the caller's responsibility, not
// the registry's.
type Entity struct {
	ID       int32
	Pos      vec3.Vec3
	Size     vec3.Vec3
	Category uint32
	Mask     uint32

	Health float32
	Dirty  bool
}

// AABB returns the entity's current tight bounding box.
func (e *Entity) AABB() dynbvh.AABB {
	return dynbvh.FromCenterSize(e.Pos, e.Size)
}
