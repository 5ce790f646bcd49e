// Package maskset implements the layer/category bitmask predicate that
// spec.md §4.5 names as "the canonical instance" of a raycast
// predicate: a bitmask AND between a stored category field and a
// query mask. It is backed by the same bits-and-blooms/bitset library
// bart uses for its popcount-compressed prefix and child sets
// (node.go's prefixCBTree.indexes), reused here for a much smaller,
// fixed-width set instead of a growable compressed one.
package maskset

import "github.com/bits-and-blooms/bitset"

// Set is an immutable, fixed-width set of layer bits (up to 32 of
// them, matching the int32 category/mask fields of the original
// gameplay entity).
type Set struct {
	bits *bitset.BitSet
}

// FromBits builds a Set from the bits set in a uint32 bitmask, e.g.
// LAYER_STATIC|LAYER_TRIGGER.
func FromBits(mask uint32) Set {
	b := bitset.New(32)
	for i := uint(0); i < 32; i++ {
		if mask&(1<<i) != 0 {
			b.Set(i)
		}
	}
	return Set{bits: b}
}

// Intersects reports whether s and other share any bit — the "bitmask
// AND" test from spec.md §4.5.
func (s Set) Intersects(other Set) bool {
	if s.bits == nil || other.bits == nil {
		return false
	}
	return s.bits.IntersectionCardinality(other.bits) > 0
}

// Bits returns the set as a uint32 bitmask.
func (s Set) Bits() uint32 {
	if s.bits == nil {
		return 0
	}
	var out uint32
	for i, e := s.bits.NextSet(0); e; i, e = s.bits.NextSet(i + 1) {
		out |= 1 << i
	}
	return out
}
