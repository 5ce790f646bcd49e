package demo

import (
	"log"

	"github.com/arborix/dynbvh"
	"github.com/arborix/dynbvh/internal/maskset"
	"github.com/arborix/dynbvh/vec3"
)

// DefaultMargin is the fat-AABB margin used by NewWorld, matching
// spec.md's reference value.
const DefaultMargin = 0.2

// World owns an entity registry and the dynbvh.Tree backing it,
// grounded on original_source/test/world.rs. A World is not safe for
// concurrent mutation, matching dynbvh.Tree's own contract (spec.md
// §5).
type World struct {
	bvh           *dynbvh.Tree
	registry      map[int32]*Entity
	entityToNode  map[int32]int32
	nextID        int32
	deletionQueue []int32
}

// NewWorld returns an empty World using margin for its tree's
// fat-AABB policy.
func NewWorld(margin float32) *World {
	return &World{
		bvh:          dynbvh.NewTree(margin),
		registry:     make(map[int32]*Entity),
		entityToNode: make(map[int32]int32),
	}
}

// Tree returns the World's underlying dynbvh.Tree, for wiring into
// package metrics or for direct introspection.
func (w *World) Tree() *dynbvh.Tree {
	return w.bvh
}

// CreateEntity allocates a new entity at pos with the given size,
// category and mask, inserts it into the tree, and returns its id.
func (w *World) CreateEntity(pos, size vec3.Vec3, category, mask uint32) int32 {
	w.nextID++
	id := w.nextID

	e := &Entity{ID: id, Pos: pos, Size: size, Category: category, Mask: mask}
	w.registry[id] = e
	w.entityToNode[id] = w.bvh.InsertLeaf(id, e.AABB())

	return id
}

// UpdatePosition moves entity id to pos and refits its tree leaf,
// per spec.md §4.4's fast/slow path, updating the entity-to-node
// mapping when the slow path issues a new handle.
func (w *World) UpdatePosition(id int32, pos vec3.Vec3) {
	e, ok := w.registry[id]
	if !ok {
		return
	}
	e.Pos = pos

	oldHandle, ok := w.entityToNode[id]
	if !ok {
		log.Panicf("demo: entity %d missing from entityToNode map", id)
	}

	newHandle := w.bvh.RefitIfNeeded(oldHandle, e.AABB())
	if newHandle != oldHandle {
		w.entityToNode[id] = newHandle
	}
}

// Query returns the ids of every entity whose stored tree leaf box
// overlaps box. That leaf box is the entity's AABB, fattened by the
// tree's margin once the entity has taken the refit slow path, so an
// entity can be returned when only its fattened box overlaps.
func (w *World) Query(box dynbvh.AABB) []int32 {
	return w.bvh.Query(box)
}

// Raycast casts a ray from p0 through p1 (see dynbvh.Tree.Raycast),
// accepting only entities whose
// Category intersects mask — the bitmask-AND predicate instance named
// in spec.md §4.5 — and returns the id of the center-closest hit, or
// -1.
func (w *World) Raycast(p0, p1 vec3.Vec3, mask uint32) int32 {
	maskSet := maskset.FromBits(mask)
	return w.bvh.Raycast(p0, p1, func(id int32) bool {
		e, ok := w.registry[id]
		if !ok {
			return false
		}
		return maskset.FromBits(e.Category).Intersects(maskSet)
	})
}

// Entity returns entity id and whether it is currently registered.
func (w *World) Entity(id int32) (*Entity, bool) {
	e, ok := w.registry[id]
	return e, ok
}

// MarkForDeletion enqueues id for removal on the next Cleanup, rather
// than removing it immediately — so that removal never happens from
// inside a query callback's call stack (spec.md §5 non-reentrancy,
// §9 "Dynamic behavior ports"), grounded on
// original_source/test/world.rs::mark_for_deletion.
func (w *World) MarkForDeletion(id int32) {
	e, ok := w.registry[id]
	if !ok || e.Dirty {
		return
	}
	e.Dirty = true
	w.deletionQueue = append(w.deletionQueue, id)
}

// Cleanup removes every entity queued by MarkForDeletion from both the
// tree and the registry.
func (w *World) Cleanup() {
	for _, id := range w.deletionQueue {
		if h, ok := w.entityToNode[id]; ok {
			w.bvh.RemoveLeaf(h)
			delete(w.entityToNode, id)
		}
		delete(w.registry, id)
	}
	w.deletionQueue = w.deletionQueue[:0]
}

// ClearAll removes every entity and resets the World, including its
// underlying tree, to empty.
func (w *World) ClearAll() {
	w.Cleanup()
	w.registry = make(map[int32]*Entity)
	w.entityToNode = make(map[int32]int32)
	w.deletionQueue = nil
	w.nextID = 0
	w.bvh.Clear()
}
