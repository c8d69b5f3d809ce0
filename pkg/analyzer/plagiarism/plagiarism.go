// Package plagiarism detects structural similarity between source files by
// comparing canonical subtree fingerprints of their parse trees.
package plagiarism

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"gonum.org/v1/gonum/stat"

	"github.com/codemimic/mimic/internal/fileproc"
	"github.com/codemimic/mimic/pkg/config"
	"github.com/codemimic/mimic/pkg/fingerprint"
	"github.com/codemimic/mimic/pkg/parser"
	"github.com/codemimic/mimic/pkg/similarity"
	"github.com/codemimic/mimic/pkg/source"
	"github.com/codemimic/mimic/pkg/stats"
	"github.com/codemimic/mimic/pkg/token"
)

// Analyzer compares documents pairwise for structural similarity.
type Analyzer struct {
	config      config.DetectorConfig
	maxFileSize int64
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithThreshold sets the similarity percentage at or above which a pair
// is flagged. The threshold never changes the computed score.
func WithThreshold(threshold float64) Option {
	return func(a *Analyzer) {
		a.config.Threshold = threshold
	}
}

// WithAlgorithm selects the fingerprinting algorithm ("ast" or "kgram").
func WithAlgorithm(algorithm string) Option {
	return func(a *Analyzer) {
		a.config.Algorithm = algorithm
	}
}

// WithKGramSize sets the k-gram length for the kgram algorithm.
func WithKGramSize(k int) Option {
	return func(a *Analyzer) {
		a.config.KGramSize = k
	}
}

// WithWindowSize sets the winnowing window for the kgram algorithm.
func WithWindowSize(w int) Option {
	return func(a *Analyzer) {
		a.config.WindowSize = w
	}
}

// WithMaxFileSize sets the maximum file size to analyze (0 = no limit).
func WithMaxFileSize(maxSize int64) Option {
	return func(a *Analyzer) {
		a.maxFileSize = maxSize
	}
}

// WithConfig sets all detector configuration from a config struct.
func WithConfig(cfg config.DetectorConfig) Option {
	return func(a *Analyzer) {
		a.config = cfg
		a.maxFileSize = cfg.MaxFileSize
	}
}

// New creates a new analyzer with default config.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		config: config.DefaultConfig().Detector,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Threshold returns the configured flagging threshold.
func (a *Analyzer) Threshold() float64 {
	return a.config.Threshold
}

// document holds the fingerprints extracted from one file.
type document struct {
	path           string
	tokenCount     int
	normalizedHash uint64
	prints         *fingerprint.Set
}

// Fingerprint tokenizes and fingerprints a single document.
func (a *Analyzer) Fingerprint(path string, content []byte) (*fingerprint.Set, error) {
	doc, err := a.fingerprintContent(path, content)
	if err != nil {
		return nil, err
	}
	return doc.prints, nil
}

func (a *Analyzer) fingerprintContent(path string, content []byte) (document, error) {
	tokens := token.Scan(string(content))

	doc := document{
		path: path,
		// exclude the end marker from the reported count
		tokenCount:     len(tokens) - 1,
		normalizedHash: xxhash.Sum64String(strings.Join(tokens, " ")),
	}

	switch a.config.Algorithm {
	case config.AlgorithmKGram:
		doc.prints = fingerprint.NewWinnower(a.config.KGramSize, a.config.WindowSize).Fingerprint(tokens)
	default:
		program, err := parser.Parse(tokens)
		if err != nil {
			return document{}, fmt.Errorf("parse %s: %w", path, err)
		}
		doc.prints = fingerprint.Collect(program)
	}

	return doc, nil
}

// AnalyzeProject compares all files pairwise, reading them from disk.
func (a *Analyzer) AnalyzeProject(files []string) (*Analysis, error) {
	return a.AnalyzeProjectWithProgress(files, nil)
}

// AnalyzeProjectWithProgress compares all files with optional progress callback.
func (a *Analyzer) AnalyzeProjectWithProgress(files []string, onProgress fileproc.ProgressFunc) (*Analysis, error) {
	var skipped []Skipped
	var mu sync.Mutex

	onError := func(path string, err error) {
		mu.Lock()
		skipped = append(skipped, Skipped{File: path, Reason: err.Error()})
		mu.Unlock()
	}

	docs := fileproc.ForEachFileN(files, 0, func(path string) (document, error) {
		if a.maxFileSize > 0 {
			info, err := os.Stat(path)
			if err != nil {
				return document{}, err
			}
			if info.Size() > a.maxFileSize {
				return document{}, fmt.Errorf("exceeds size limit (%d bytes)", info.Size())
			}
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return document{}, err
		}
		return a.fingerprintContent(path, content)
	}, onProgress, onError)

	return a.buildAnalysis(docs, skipped), nil
}

// AnalyzeFromSource compares files read via a ContentSource.
func (a *Analyzer) AnalyzeFromSource(files []string, src source.ContentSource) (*Analysis, error) {
	var docs []document
	var skipped []Skipped

	for _, path := range files {
		content, err := src.Read(path)
		if err != nil {
			skipped = append(skipped, Skipped{File: path, Reason: err.Error()})
			continue
		}
		if a.maxFileSize > 0 && int64(len(content)) > a.maxFileSize {
			skipped = append(skipped, Skipped{File: path, Reason: fmt.Sprintf("exceeds size limit (%d bytes)", len(content))})
			continue
		}

		doc, err := a.fingerprintContent(path, content)
		if err != nil {
			skipped = append(skipped, Skipped{File: path, Reason: err.Error()})
			continue
		}
		docs = append(docs, doc)
	}

	return a.buildAnalysis(docs, skipped), nil
}

// Compare scores a single pair of documents.
func (a *Analyzer) Compare(pathA string, contentA []byte, pathB string, contentB []byte) (*Pair, error) {
	docA, err := a.fingerprintContent(pathA, contentA)
	if err != nil {
		return nil, err
	}
	docB, err := a.fingerprintContent(pathB, contentB)
	if err != nil {
		return nil, err
	}

	pair := a.scorePair(docA, docB)
	return &pair, nil
}

func (a *Analyzer) scorePair(docA, docB document) Pair {
	score := similarity.Jaccard(docA.prints, docB.prints)
	return Pair{
		FileA:        docA.path,
		FileB:        docB.path,
		Similarity:   score,
		Flagged:      similarity.Flagged(score, a.config.Threshold),
		SharedHashes: docA.prints.IntersectionLen(docB.prints),
		UnionHashes:  docA.prints.UnionLen(docB.prints),
	}
}

// buildAnalysis scores every document pair and aggregates summary statistics.
// Documents are sorted by path so output order is deterministic regardless of
// worker scheduling.
func (a *Analyzer) buildAnalysis(docs []document, skipped []Skipped) *Analysis {
	sort.Slice(docs, func(i, j int) bool { return docs[i].path < docs[j].path })
	sort.Slice(skipped, func(i, j int) bool { return skipped[i].File < skipped[j].File })

	analysis := &Analysis{
		Pairs:     make([]Pair, 0, len(docs)*(len(docs)-1)/2),
		Documents: make([]DocumentInfo, 0, len(docs)),
		Skipped:   skipped,
		Threshold: a.config.Threshold,
		Algorithm: a.algorithmName(),
	}

	for _, doc := range docs {
		analysis.Documents = append(analysis.Documents, DocumentInfo{
			File:             doc.path,
			TokenCount:       doc.tokenCount,
			FingerprintCount: doc.prints.Len(),
			NormalizedHash:   doc.normalizedHash,
		})
	}

	for i := 0; i < len(docs); i++ {
		for j := i + 1; j < len(docs); j++ {
			pair := a.scorePair(docs[i], docs[j])
			analysis.Pairs = append(analysis.Pairs, pair)
			if pair.Flagged {
				analysis.Summary.FlaggedPairs++
			}
		}
	}

	analysis.Summary.FilesAnalyzed = len(docs)
	analysis.Summary.FilesSkipped = len(skipped)
	analysis.Summary.PairsCompared = len(analysis.Pairs)

	if len(analysis.Pairs) > 0 {
		scores := make([]float64, len(analysis.Pairs))
		for i, p := range analysis.Pairs {
			scores[i] = p.Similarity
		}

		analysis.Summary.AvgSimilarity = stat.Mean(scores, nil)
		if len(scores) > 1 {
			analysis.Summary.StdDev = stat.StdDev(scores, nil)
		}

		sort.Float64s(scores)
		analysis.Summary.P50Similarity = stats.Percentile(scores, 50)
		analysis.Summary.P95Similarity = stats.Percentile(scores, 95)
		analysis.Summary.MaxSimilarity = scores[len(scores)-1]
	}

	return analysis
}

func (a *Analyzer) algorithmName() string {
	if a.config.Algorithm == config.AlgorithmKGram {
		return config.AlgorithmKGram
	}
	return config.AlgorithmAST
}
