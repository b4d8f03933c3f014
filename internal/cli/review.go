package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/reviewdesk/appraisalint/internal/document"
	"github.com/reviewdesk/appraisalint/internal/extract"
	"github.com/reviewdesk/appraisalint/internal/model"
	"github.com/reviewdesk/appraisalint/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	formType    string
	endpoint    string
	timeout     time.Duration
	noCache     bool
	noFooter    bool
	insecureTLS bool
	workers     int
	llmEnabled  bool
	llmModel    string
)

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review <report.json|report.pdf>",
	Short: "Run every consistency rule over an appraisal report",
	Long: `Review evaluates every populated field of an appraisal document against
the full rule catalogue and reports the violations.

A .json input is treated as an already-extracted document tree. Any other
input is uploaded to the extraction service first and the returned fields
become the document.

Example:
  appraisalint review document.json
  appraisalint review appraisal.pdf --form-type 1004 --json findings.json
  appraisalint review document.json --md findings.md --llm`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	// Output flags
	reviewCmd.Flags().StringVar(&outJSON, "json", "review.json", "output JSON path")
	reviewCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	reviewCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Extraction flags
	reviewCmd.Flags().StringVar(&formType, "form-type", "1004", "appraisal form type (1004, 1007, 1073)")
	reviewCmd.Flags().StringVar(&endpoint, "endpoint", "", "extraction service base URL (overrides config)")
	reviewCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall review timeout")
	reviewCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable extraction-response cache")
	reviewCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	reviewCmd.Flags().IntVar(&workers, "workers", 0, "parallel field evaluations (0 = config default)")

	// LLM flags
	reviewCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM narrative summary")
	reviewCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runReview(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Reviewing: %s\n", input)
		fmt.Fprintf(os.Stderr, "Form type: %s\n", formType)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	doc, err := loadDocument(ctx, p, input)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded document with %d top-level keys\n", len(doc))
	}

	report, err := p.Review(ctx, doc, formType)
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Evaluated %d fields (%d violations)\n", report.Totals.Fields, report.Totals.Errors)
		if report.LLM != nil && report.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated LLM summary using %s/%s\n", report.LLM.Provider, report.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// loadDocument reads a JSON document directly or extracts fields from any
// other file format through the extraction service.
func loadDocument(ctx context.Context, p *pipeline.Pipeline, input string) (model.Document, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if strings.EqualFold(filepath.Ext(input), ".json") {
		doc, err := document.Parse(data)
		if err != nil {
			return nil, err
		}
		return doc, nil
	}

	return p.ExtractDocument(ctx, model.Document{}, extract.Request{
		FileName: filepath.Base(input),
		File:     data,
		FormType: formType,
	})
}

// buildConfig layers the command's flags over the defaults.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	if endpoint != "" {
		cfg.HTTP.Endpoint = endpoint
	}
	if workers > 0 {
		cfg.Concurrency.ReviewWorkers = workers
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
