package fingerprint

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Winnower is the alternative token-level fingerprinter: it hashes every
// k-gram of the normalized token stream and keeps one representative hash per
// sliding window of w consecutive k-grams. Unlike the structural collector it
// needs no AST, so it also works on token streams that fail to parse.
type Winnower struct {
	k int // k-gram length, in tokens
	w int // window length, in k-gram hashes
}

// DefaultKGramSize and DefaultWindowSize follow the usual winnowing guidance
// of a noise threshold around k+w-1 tokens.
const (
	DefaultKGramSize  = 5
	DefaultWindowSize = 4
)

// NewWinnower creates a winnowing fingerprinter. Non-positive sizes fall back
// to the defaults.
func NewWinnower(kgramSize, windowSize int) *Winnower {
	if kgramSize <= 0 {
		kgramSize = DefaultKGramSize
	}
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &Winnower{k: kgramSize, w: windowSize}
}

// Fingerprint winnows the token stream into a fingerprint set. Streams
// shorter than one k-gram hash as a single gram so that no document comes
// back empty merely for being short.
func (wn *Winnower) Fingerprint(tokens []string) *Set {
	set := NewSet()
	if len(tokens) == 0 {
		return set
	}

	hashes := kgramHashes(tokens, wn.k)
	if len(hashes) <= wn.w {
		// Fewer grams than one window: keep the minimum of what there is.
		set.Add(minRight(hashes))
		return set
	}

	// Standard winnowing: for each window, record the minimum hash, breaking
	// ties toward the rightmost position. A window's selection is only
	// re-recorded when it changes, which dedupes runs of the same minimum.
	prevIdx := -1
	for start := 0; start+wn.w <= len(hashes); start++ {
		minIdx := start
		for i := start + 1; i < start+wn.w; i++ {
			if hashes[i] <= hashes[minIdx] {
				minIdx = i
			}
		}
		if minIdx != prevIdx {
			set.Add(hashes[minIdx])
			prevIdx = minIdx
		}
	}
	return set
}

// kgramHashes hashes every k-token window of the stream. Streams shorter
// than k produce a single hash over the whole stream.
func kgramHashes(tokens []string, k int) []uint64 {
	if len(tokens) < k {
		return []uint64{hashGram(tokens)}
	}
	hashes := make([]uint64, 0, len(tokens)-k+1)
	for i := 0; i+k <= len(tokens); i++ {
		hashes = append(hashes, hashGram(tokens[i:i+k]))
	}
	return hashes
}

// hashGram hashes a token sequence with a separator byte so that gram
// boundaries cannot alias ("ab","c" vs "a","bc").
func hashGram(tokens []string) uint64 {
	h := blake3.New()
	for _, t := range tokens {
		h.Write([]byte(t))
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum[:8])
}

func minRight(hashes []uint64) uint64 {
	min := hashes[0]
	for _, h := range hashes[1:] {
		if h <= min {
			min = h
		}
	}
	return min
}
