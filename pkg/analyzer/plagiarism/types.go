package plagiarism

// Pair represents a scored comparison between two documents.
type Pair struct {
	FileA        string  `json:"file_a"`
	FileB        string  `json:"file_b"`
	Similarity   float64 `json:"similarity"`
	Flagged      bool    `json:"flagged"`
	SharedHashes int     `json:"shared_hashes"`
	UnionHashes  int     `json:"union_hashes"`
}

// Skipped records a file that could not be analyzed.
type Skipped struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// DocumentInfo reports per-document fingerprinting results.
type DocumentInfo struct {
	File             string `json:"file"`
	TokenCount       int    `json:"token_count"`
	FingerprintCount int    `json:"fingerprint_count"`
	NormalizedHash   uint64 `json:"normalized_hash"`
}

// Analysis represents the full pairwise comparison result.
type Analysis struct {
	Pairs     []Pair         `json:"pairs"`
	Documents []DocumentInfo `json:"documents,omitempty"`
	Skipped   []Skipped      `json:"skipped,omitempty"`
	Summary   Summary        `json:"summary"`
	Threshold float64        `json:"threshold"`
	Algorithm string         `json:"algorithm"`
}

// Summary provides aggregate statistics over all compared pairs.
type Summary struct {
	FilesAnalyzed int     `json:"files_analyzed"`
	FilesSkipped  int     `json:"files_skipped"`
	PairsCompared int     `json:"pairs_compared"`
	FlaggedPairs  int     `json:"flagged_pairs"`
	AvgSimilarity float64 `json:"avg_similarity"`
	StdDev        float64 `json:"std_dev"`
	P50Similarity float64 `json:"p50_similarity"`
	P95Similarity float64 `json:"p95_similarity"`
	MaxSimilarity float64 `json:"max_similarity"`
}
