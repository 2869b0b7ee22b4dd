package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/semograph/internal/lattice"
)

// Analyzer analyzes one document file into an interpretation lattice.
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*lattice.Lattice, error)
}

// AnalyzeJob is one document-analysis job.
type AnalyzeJob struct {
	Path     string
	Analyzer Analyzer
}

func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	l, err := j.Analyzer.AnalyzeFile(ctx, j.Path)
	return &AnalyzeResult{Path: j.Path, Lattice: l, Error: err}
}

// AnalyzeResult is the outcome of analyzing one document file.
type AnalyzeResult struct {
	Path    string
	Lattice *lattice.Lattice
	Error   error
}

func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many document files concurrently.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// ProcessPaths analyzes every path, preserving nothing about ordering: the
// result order is completion order.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&AnalyzeJob{Path: path, Analyzer: b.analyzer})
	}

	results := pool.Wait()
	out := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		out[i] = result.(*AnalyzeResult)
	}
	return out
}

// ProcessFile reads a manifest of document paths (one per line) and analyzes
// them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, manifestPath string) ([]*AnalyzeResult, error) {
	paths, err := ReadPathsFromFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads document paths from a manifest, skipping blanks
// and #-comments and de-duplicating.
func ReadPathsFromFile(manifestPath string) ([]string, error) {
	file, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan manifest: %w", err)
	}
	return paths, nil
}
