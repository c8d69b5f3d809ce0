// Package fingerprint reduces an AST (or a normalized token stream) to a set
// of canonical subtree hashes. Two documents are compared by set overlap, so
// the set type is optimized for intersection and union cardinality.
package fingerprint

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Set is a set of 64-bit fingerprints with duplicate collapse. It is not safe
// for concurrent mutation; build it in one goroutine and publish read-only.
type Set struct {
	bits *roaring64.Bitmap
}

// NewSet creates an empty fingerprint set.
func NewSet() *Set {
	return &Set{bits: roaring64.New()}
}

// Add inserts a fingerprint; re-adding is a no-op.
func (s *Set) Add(h uint64) {
	s.bits.Add(h)
}

// Contains reports membership.
func (s *Set) Contains(h uint64) bool {
	return s.bits.Contains(h)
}

// Len returns the number of distinct fingerprints.
func (s *Set) Len() int {
	return int(s.bits.GetCardinality())
}

// Empty reports whether the set has no fingerprints.
func (s *Set) Empty() bool {
	return s.bits.IsEmpty()
}

// IntersectionLen returns |s ∩ other|.
func (s *Set) IntersectionLen(other *Set) int {
	return int(roaring64.And(s.bits, other.bits).GetCardinality())
}

// UnionLen returns |s ∪ other|.
func (s *Set) UnionLen(other *Set) int {
	return int(roaring64.Or(s.bits, other.bits).GetCardinality())
}

// Values returns the fingerprints in ascending order.
func (s *Set) Values() []uint64 {
	return s.bits.ToArray()
}
