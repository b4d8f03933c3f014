package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/reviewdesk/appraisalint/internal/document"
	"github.com/reviewdesk/appraisalint/internal/extract"
	"github.com/reviewdesk/appraisalint/internal/model"
	"github.com/reviewdesk/appraisalint/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	extractOut      string
	extractCategory string
	extractComment  string
	extractMergeTo  string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <report.pdf>",
	Short: "Extract fields from an appraisal report without reviewing them",
	Long: `Extract uploads a report to the extraction service and writes the
returned field tree as a JSON document, ready for 'appraisalint review'.

With --category only one section is extracted and merged into an existing
document given by --merge-into, mirroring a reviewer re-extracting a
single section.

Example:
  appraisalint extract appraisal.pdf --form-type 1004 -o document.json
  appraisalint extract appraisal.pdf --category NEIGHBORHOOD --merge-into document.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractOut, "output", "o", "document.json", "output document path")
	extractCmd.Flags().StringVar(&extractCategory, "category", "", "extract a single section (uses /extract-by-category)")
	extractCmd.Flags().StringVar(&extractComment, "comment", "", "free-text hint forwarded to the extraction service")
	extractCmd.Flags().StringVar(&extractMergeTo, "merge-into", "", "existing document JSON to merge the extracted fields into")

	extractCmd.Flags().StringVar(&formType, "form-type", "1004", "appraisal form type (1004, 1007, 1073)")
	extractCmd.Flags().StringVar(&endpoint, "endpoint", "", "extraction service base URL (overrides config)")
	extractCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "extraction timeout")
	extractCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable extraction-response cache")
	extractCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	p := pipeline.NewPipeline(cfg)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	base := model.Document{}
	if extractMergeTo != "" {
		existing, err := os.ReadFile(extractMergeTo)
		if err != nil {
			return fmt.Errorf("read merge target: %w", err)
		}
		base, err = document.Parse(existing)
		if err != nil {
			return err
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracting: %s (form %s)\n", input, formType)
		if extractCategory != "" {
			fmt.Fprintf(os.Stderr, "Category: %s\n", extractCategory)
		}
	}

	doc, err := p.ExtractDocument(ctx, base, extract.Request{
		FileName: filepath.Base(input),
		File:     data,
		FormType: formType,
		Category: extractCategory,
		Comment:  extractComment,
	})
	if err != nil {
		return err
	}

	out, err := document.Encode(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(extractOut, out, 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	fmt.Printf("✓ Wrote document: %s (%d top-level keys)\n", extractOut, len(doc))
	return nil
}
