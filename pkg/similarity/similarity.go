// Package similarity scores pairs of fingerprint sets with the Jaccard
// index, scaled to a percentage.
package similarity

import (
	"github.com/codemimic/mimic/pkg/fingerprint"
)

// DefaultThreshold is the score at or above which a pair is flagged.
const DefaultThreshold = 70.0

// Jaccard returns 100 * |A ∩ B| / |A ∪ B|. Two empty sets are identical by
// convention (100); an empty set against a non-empty one shares nothing (0).
func Jaccard(a, b *fingerprint.Set) float64 {
	if a.Empty() && b.Empty() {
		return 100.0
	}
	if a.Empty() || b.Empty() {
		return 0.0
	}
	inter := a.IntersectionLen(b)
	union := a.UnionLen(b)
	return float64(inter) / float64(union) * 100.0
}

// Flagged reports whether a score meets the threshold. The threshold never
// affects the score itself.
func Flagged(score, threshold float64) bool {
	return score >= threshold
}
