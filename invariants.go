package dynbvh

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// CheckInvariants walks the whole tree and verifies I1-I6 from
// spec.md §3, returning the first violation found (a BrokenInvariant,
// spec.md §7 — a debug-build-only, non-recoverable condition). It is
// intended for property tests (spec.md §8 P1-P3), not for production
// hot paths.
func (t *Tree) CheckInvariants() error {
	// I1: root == NilHandle iff the tree is empty.
	if t.root == NilHandle && t.count != 0 {
		return fmt.Errorf("I1 violated: root is nil but count = %d", t.count)
	}
	if t.root != NilHandle && t.count == 0 {
		return fmt.Errorf("I1 violated: root = %d but count = 0", t.root)
	}

	// I6: free-listed nodes must not be reachable from root. Track
	// free-list membership with a popcount-friendly bitset, the same
	// primitive bart's prefixCBTree uses for compact membership
	// testing, rather than a map[int32]bool.
	freeSet := bitset.New(uint(len(t.pool.nodes)))
	for h := t.pool.freeHead; h != NilHandle; h = t.pool.nodes[h].nextFree {
		freeSet.Set(uint(h))
	}

	if t.root == NilHandle {
		return nil
	}

	visited := bitset.New(uint(len(t.pool.nodes)))
	return t.checkSubtree(t.root, NilHandle, freeSet, visited)
}

func (t *Tree) checkSubtree(idx, expectedParent int32, freeSet, visited *bitset.BitSet) error {
	if idx < 0 || int(idx) >= len(t.pool.nodes) {
		return fmt.Errorf("I2 violated: handle %d out of pool bounds", idx)
	}
	if freeSet.Test(uint(idx)) {
		return fmt.Errorf("I6 violated: free node %d is reachable from root", idx)
	}
	if visited.Test(uint(idx)) {
		return fmt.Errorf("tree is not a DAG-free tree: node %d visited twice", idx)
	}
	visited.Set(uint(idx))

	n := t.pool.get(idx)

	// I2: every non-root node's parent points back at it.
	if idx != t.root && n.parent != expectedParent {
		return fmt.Errorf("I2 violated: node %d has parent %d, expected %d", idx, n.parent, expectedParent)
	}

	if n.isLeaf {
		if n.height != 0 {
			return fmt.Errorf("I4 violated: leaf %d has height %d, want 0", idx, n.height)
		}
		return nil
	}

	if err := t.checkSubtree(n.left, idx, freeSet, visited); err != nil {
		return err
	}
	if err := t.checkSubtree(n.right, idx, freeSet, visited); err != nil {
		return err
	}

	left := t.pool.get(n.left)
	right := t.pool.get(n.right)

	// I3: internal bbox equals union(left, right), exactly.
	want := Union(left.bbox, right.bbox)
	if n.bbox != want {
		return fmt.Errorf("I3 violated: node %d bbox %+v, want %+v", idx, n.bbox, want)
	}

	// I4: height is 1 + max(child heights).
	wantHeight := 1 + max(left.height, right.height)
	if n.height != wantHeight {
		return fmt.Errorf("I4 violated: node %d height %d, want %d", idx, n.height, wantHeight)
	}

	// I5: children heights differ by at most 1.
	diff := left.height - right.height
	if diff < 0 {
		diff = -diff
	}
	if diff > 1 {
		return fmt.Errorf("I5 violated: node %d children heights %d/%d", idx, left.height, right.height)
	}

	return nil
}
