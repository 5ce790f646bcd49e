package dynbvh

import "sync/atomic"

// NilHandle is the sentinel value for "no node": an empty tree's root,
// a root node's parent, a leaf's children.
const NilHandle int32 = -1

// node is one entry of the tree's pool. Every field is present on
// every node; fields that do not apply to the node's current role
// (payload on an internal node, children on a leaf) hold sentinel
// values and must be treated as garbage until reinitialized by
// whichever operation next claims the handle.
type node struct {
	bbox                 AABB
	payload              int32 // leaf only; NilHandle on internal nodes
	parent, left, right  int32 // NilHandle if absent
	height               int32 // 0 for leaves
	isLeaf               bool
	nextFree             int32 // free-list link; valid only while freed
}

func (n *node) reset() {
	*n = node{parent: NilHandle, left: NilHandle, right: NilHandle, payload: NilHandle, nextFree: NilHandle}
}

// pool is the node allocator: a flat, never-shrinking slice of nodes
// threaded with a free list, generalized from bart's pool.go (whose
// pool[V] wraps a sync.Pool of *node[V] for GC-managed reuse) into an
// index-addressed allocator, because spec.md §3 requires stable
// integer handles that survive independently of any external map —
// a sync.Pool hands back arbitrary recycled pointers with no such
// stable identity.
type pool struct {
	nodes    []node
	freeHead int32

	// Instrumentation in the spirit of bart/pool.go's atomic
	// live/total counters, here exported permanently via package
	// metrics rather than left as a "remove once stable" TODO.
	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

func newPool() *pool {
	return &pool{freeHead: NilHandle}
}

// allocate returns a handle to an unused node. The returned node's
// fields are garbage except for parent/left/right/payload, which are
// reset to NilHandle; callers must still set bbox, isLeaf and height
// before releasing the handle to other code.
func (p *pool) allocate() int32 {
	p.totalAllocated.Add(1)
	p.currentLive.Add(1)

	if p.freeHead == NilHandle {
		p.nodes = append(p.nodes, node{})
		idx := int32(len(p.nodes) - 1)
		p.nodes[idx].reset()
		return idx
	}

	idx := p.freeHead
	p.freeHead = p.nodes[idx].nextFree
	p.nodes[idx].reset()
	return idx
}

// free returns handle to the free list. Other fields are left as
// garbage; invariant I6 (a freed handle is unreachable from root) is
// the caller's responsibility to maintain by unlinking first.
func (p *pool) free(handle int32) {
	p.currentLive.Add(-1)

	p.nodes[handle].nextFree = p.freeHead
	p.freeHead = handle
}

// get returns a pointer to the node at handle, panicking loudly if
// handle is out of range. This is the InvalidHandle error kind from
// spec.md §7: a programmer error, not a recoverable condition.
func (p *pool) get(handle int32) *node {
	if handle < 0 || int(handle) >= len(p.nodes) {
		panic("dynbvh: invalid handle")
	}
	return &p.nodes[handle]
}

// clear empties the pool entirely. The next allocate() call after
// clear returns handle 0.
func (p *pool) clear() {
	p.nodes = p.nodes[:0]
	p.freeHead = NilHandle
	p.currentLive.Store(0)
}

// stats reports live (currently allocated, not on the free list) and
// total (ever allocated) node counts, mirroring bart/pool.go's
// Stats() shape; consumed by package metrics.
func (p *pool) stats() (live, total int64) {
	return p.currentLive.Load(), p.totalAllocated.Load()
}
