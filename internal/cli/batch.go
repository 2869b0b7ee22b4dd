package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/ppiankov/semograph/internal/pipeline"
	"github.com/ppiankov/semograph/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// register, resolveAmb, overridesPath, noCache, cacheDir, noFooter and
	// the LLM flags are defined in analyze.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest-or-directory>",
	Short: "Analyze multiple documents in parallel",
	Long: `Batch analyzes many documents concurrently:
- Read document paths from a manifest file (one per line, # comments)
  or collect every .json file from a directory
- Analyze documents in parallel with a configurable worker count
- Write one graph JSON and one Markdown report per document

Example:
  semograph batch docs.txt
  semograph batch ./corpus --concurrency 10 --output-dir ./graphs
  semograph batch docs.txt --register legal --resolve`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./semograph-graphs", "output directory for graphs")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Analysis flags shared with analyze
	batchCmd.Flags().StringVar(&register, "register", "", "text register biasing heuristics (e.g. legal)")
	batchCmd.Flags().BoolVar(&resolveAmb, "resolve", false, "collapse each lattice to the default reading only")
	batchCmd.Flags().StringVar(&overridesPath, "overrides", "", "YAML file with verb/object-category act-type overrides")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh analysis)")
	batchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "directory for the disk cache layer")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildAnalysisConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	paths, err := collectDocumentPaths(input)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no documents found in %s", input)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Documents:  %d\n", len(paths))
	fmt.Fprintf(os.Stderr, "  Workers:    %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir: %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.New(cfg)
	processor := worker.NewBatchProcessor(p, concurrency)
	results := processor.ProcessPaths(ctx, paths)

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		slug := documentSlug(result.Path)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.RenderJSON(result.Lattice, jsonPath, cfg.Analysis.PreserveAmbiguity); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Path, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Lattice, mdPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", result.Path, err)
			continue
		}

		successCount++
		g := result.Lattice.Default
		fmt.Fprintf(os.Stderr, "✓ %s (%d acts, %d assertions, %d roles)\n",
			g.DocumentID, len(g.Acts), len(g.Assertions), len(g.Roles))
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d documents\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if failureCount > 0 {
		return fmt.Errorf("%d of %d documents failed", failureCount, len(results))
	}
	return nil
}

// collectDocumentPaths resolves the batch input: a directory yields its .json
// files, anything else is read as a manifest.
func collectDocumentPaths(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if !info.IsDir() {
		return worker.ReadPathsFromFile(input)
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(input, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// documentSlug derives a safe output file stem from a document path.
func documentSlug(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	stem = replacer.Replace(stem)
	if len(stem) > 100 {
		stem = stem[:100]
	}
	if stem == "" {
		stem = "document"
	}
	return stem
}
