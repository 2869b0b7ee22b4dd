package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/semograph/internal/model"
	"github.com/ppiankov/semograph/internal/pipeline"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	outJSON       string
	outMD         string
	timeout       time.Duration
	register      string
	resolveAmb    bool
	overridesPath string
	noCache       bool
	cacheDir      string
	noFooter      bool
	llmEnabled    bool
	llmModel      string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <document.json>",
	Short: "Analyze one document into a semantic graph",
	Long: `Analyze reads a syntactically analyzed document (tokens, POS tags,
dependency labels, entity mentions with ontological categories) and builds
its semantic graph:
- Acts with type, modality, actuality and role links
- Structural assertions and inference nodes
- Derived roles with realization tracking
- Genericity verdicts for subject mentions
- An interpretation lattice preserving alternative readings

Example:
  semograph analyze contract.json
  semograph analyze contract.json --json graph.json --md graph.md
  semograph analyze contract.json --register legal --resolve
  semograph analyze contract.json --md graph.md --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "graph.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Analysis flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&register, "register", "", "text register biasing heuristics (e.g. legal)")
	analyzeCmd.Flags().BoolVar(&resolveAmb, "resolve", false, "collapse the lattice to the default reading only")
	analyzeCmd.Flags().StringVar(&overridesPath, "overrides", "", "YAML file with verb/object-category act-type overrides")

	// Cache flags
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh analysis)")
	analyzeCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "directory for the disk cache layer")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate an LLM gloss of the audit trail")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Register: %q\n", register)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildAnalysisConfig()
	if err != nil {
		return err
	}

	p := pipeline.New(cfg)

	l, err := p.AnalyzeFile(ctx, path)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		g := l.Default
		fmt.Fprintf(os.Stderr, "✓ Extracted %d acts\n", len(g.Acts))
		fmt.Fprintf(os.Stderr, "✓ Extracted %d assertions, %d inference nodes\n", len(g.Assertions), len(g.Inferences))
		fmt.Fprintf(os.Stderr, "✓ Derived %d roles\n", len(g.Roles))
		fmt.Fprintln(os.Stderr)
	}

	if err := p.Render(l, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if llmEnabled {
		resp, err := p.Gloss(ctx, l)
		if err != nil {
			return fmt.Errorf("gloss failed: %w", err)
		}
		if err := p.RenderGloss(resp, outMD, verbose); err != nil {
			return fmt.Errorf("render gloss: %w", err)
		}
	}

	return nil
}

// buildAnalysisConfig resolves the shared analysis configuration from flags.
func buildAnalysisConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Analysis.Register = register
	cfg.Analysis.PreserveAmbiguity = !resolveAmb
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if overridesPath != "" {
		overrides, err := loadOverrides(overridesPath)
		if err != nil {
			return nil, err
		}
		cfg.Analysis.Overrides = overrides
	}

	if llmEnabled {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return cfg, nil
}

// loadOverrides reads a verb -> object category -> act type mapping.
func loadOverrides(path string) (map[string]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}
	var overrides map[string]map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}
	return overrides, nil
}
