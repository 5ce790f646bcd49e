// Copyright (c) 2026 the dynbvh authors
// SPDX-License-Identifier: MIT

// Package dynbvh provides an incremental, self-balancing dynamic
// bounding-volume hierarchy (BVH) of axis-aligned boxes for 3D
// broad-phase spatial queries.
//
// The tree supports three operations on a moving population of boxes:
//
//   - InsertLeaf / RemoveLeaf: incremental maintenance using a
//     surface-area-heuristic (SAH) descent on insertion and
//     AVL-style rotation balancing on the way back to the root.
//   - RefitIfNeeded: a fat-AABB policy that absorbs small movements
//     without touching the tree structure, falling back to
//     remove-then-reinsert only when a leaf's tight box escapes its
//     fattened envelope.
//   - Query / Raycast: stack-driven traversal for box-overlap and
//     ray-intersection broad-phase tests.
//
// Nodes are held in a flat, never-shrinking pool with a free list, so
// external code can hold stable integer handles (node indices) without
// dangling references, mirroring how map/registry keys are expected to
// outlive individual tree mutations.
//
// dynbvh is intentionally narrow: it does not do narrow-phase
// collision resolution, continuous collision detection, persistent
// contact tracking, serialization, or multithreaded mutation, and it
// knows nothing about gameplay concepts like layers or triggers. The
// github.com/arborix/dynbvh/demo package shows one way to build that
// on top.
package dynbvh
