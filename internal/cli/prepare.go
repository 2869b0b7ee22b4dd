package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/semograph/internal/ingest"
	"github.com/ppiankov/semograph/internal/model"
	"github.com/spf13/cobra"
)

var (
	prepOut      string
	prepTimeout  time.Duration
	prepUA       string
	prepMaxBytes int64
	prepNoRobots bool
	prepRPS      float64
	httpProxy    string
	httpsProxy   string
)

// prepareCmd represents the prepare command
var prepareCmd = &cobra.Command{
	Use:   "prepare <url-or-html-file>",
	Short: "Extract candidate sentences from a web page or HTML file",
	Long: `Prepare pulls raw sentence material for annotation. It fetches a page
(respecting robots.txt and per-domain rate limits) or reads a local HTML
file, strips boilerplate, and writes one candidate sentence per line.

The output is the input to an external syntactic annotator; Semograph
itself consumes annotated documents, not raw text.

Example:
  semograph prepare https://example.com/article
  semograph prepare page.html --out sentences.txt
  semograph prepare https://example.com --no-robots --rps 2`,
	Args: cobra.ExactArgs(1),
	RunE: runPrepare,
}

func init() {
	rootCmd.AddCommand(prepareCmd)

	prepareCmd.Flags().StringVar(&prepOut, "out", "", "output path (default: stdout)")
	prepareCmd.Flags().DurationVar(&prepTimeout, "timeout", 30*time.Second, "fetch timeout")
	prepareCmd.Flags().StringVar(&prepUA, "ua", "Semograph/0.1 (+https://github.com/ppiankov/semograph)", "HTTP User-Agent")
	prepareCmd.Flags().Int64Var(&prepMaxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	prepareCmd.Flags().BoolVar(&prepNoRobots, "no-robots", false, "skip robots.txt checks")
	prepareCmd.Flags().Float64Var(&prepRPS, "rps", 1, "max requests per second per domain")
	prepareCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	prepareCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

func runPrepare(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), prepTimeout)
	defer cancel()

	var sentences []string
	var err error

	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		cfg := model.PrepConfig{
			Timeout:           prepTimeout,
			UserAgent:         prepUA,
			MaxBodyBytes:      prepMaxBytes,
			RespectRobots:     !prepNoRobots,
			RequestsPerSecond: prepRPS,
			HTTPProxy:         httpProxy,
			HTTPSProxy:        httpsProxy,
		}
		fetcher := ingest.NewFetcher(cfg)
		sentences, err = fetcher.FetchSentences(ctx, input)
		if err != nil {
			return fmt.Errorf("fetch failed: %w", err)
		}
	} else {
		data, readErr := os.ReadFile(input)
		if readErr != nil {
			return fmt.Errorf("read file: %w", readErr)
		}
		sentences, err = ingest.ExtractSentences(string(data))
		if err != nil {
			return fmt.Errorf("extract sentences: %w", err)
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d candidate sentences\n", len(sentences))
	}

	body := strings.Join(sentences, "\n")
	if len(sentences) > 0 {
		body += "\n"
	}

	if prepOut == "" {
		fmt.Print(body)
		return nil
	}
	if err := os.WriteFile(prepOut, []byte(body), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", prepOut)
	}
	return nil
}
