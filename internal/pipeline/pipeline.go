// Package pipeline orchestrates a full review: optional extraction, field
// evaluation across the worker pool, and report rendering.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/reviewdesk/appraisalint/internal/cache"
	"github.com/reviewdesk/appraisalint/internal/document"
	"github.com/reviewdesk/appraisalint/internal/engine"
	"github.com/reviewdesk/appraisalint/internal/extract"
	"github.com/reviewdesk/appraisalint/internal/llm"
	"github.com/reviewdesk/appraisalint/internal/model"
	"github.com/reviewdesk/appraisalint/internal/worker"
)

// Pipeline wires the extraction client, the rule engine, and the renderer.
type Pipeline struct {
	engine     *engine.Engine
	client     *extract.Client
	renderer   *Renderer
	summarizer *llm.Summarizer // nil when disabled
	config     *model.Config
}

// NewPipeline creates a pipeline from configuration.
func NewPipeline(cfg *model.Config) *Pipeline {
	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	var store cache.Cache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			dir = defaultCacheDir()
		}
		store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
	}

	limiter := worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.Burst)

	return &Pipeline{
		engine:     engine.New(),
		client:     extract.NewClient(cfg.HTTP, limiter, store, cfg.Cache.DiskTTL),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		summarizer: summarizer,
		config:     cfg,
	}
}

func defaultCacheDir() string {
	if base, err := os.UserCacheDir(); err == nil {
		return base + "/appraisalint"
	}
	return ".appraisalint-cache"
}

// ExtractDocument uploads a report file and merges the extracted fields
// into doc, returning the merged document.
func (p *Pipeline) ExtractDocument(ctx context.Context, doc model.Document, req extract.Request) (model.Document, error) {
	if err := extract.ValidateFormType(req.FormType); err != nil {
		return nil, err
	}

	resp, err := p.client.Extract(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("extract fields: %w", err)
	}
	if doc == nil {
		doc = model.Document{}
	}
	return document.Merge(doc, map[string]any(resp.Fields)), nil
}

// fieldJob evaluates one leaf against an immutable document snapshot.
type fieldJob struct {
	engine *engine.Engine
	doc    model.Document
	leaf   document.Leaf
}

type fieldResult struct {
	finding model.Finding
}

func (r fieldResult) GetError() error { return nil }

func (j fieldJob) Execute(ctx context.Context) worker.Result {
	verdict := j.engine.Evaluate(j.leaf.Path.Field(), j.leaf.Value, j.doc, j.leaf.Path)
	pres := engine.Present(j.leaf.Path.Field(), j.leaf.Value, verdict)

	return fieldResult{finding: model.Finding{
		Path:    j.leaf.Path,
		Field:   j.leaf.Path.Field(),
		Value:   j.leaf.Value,
		Verdict: verdict,
		Status:  string(pres.Style),
		Tooltip: pres.Tooltip,
	}}
}

// Review evaluates every populated leaf of the document in parallel and
// returns the assembled report. Rules only read the snapshot, so scattering
// the leaves across the pool is safe.
func (p *Pipeline) Review(ctx context.Context, doc model.Document, formType string) (*model.ReviewReport, error) {
	leaves := document.Leaves(doc)

	// The queue holds the whole batch so every Submit lands before Wait
	// closes it.
	pool := worker.NewPoolWithCapacity(p.config.Concurrency.ReviewWorkers, len(leaves))
	pool.Start()
	for _, leaf := range leaves {
		pool.Submit(fieldJob{engine: p.engine, doc: doc, leaf: leaf})
	}
	results := pool.Wait()

	findings := make([]model.Finding, 0, len(results))
	for _, res := range results {
		if fr, ok := res.(fieldResult); ok {
			findings = append(findings, fr.finding)
		}
	}
	sort.Slice(findings, func(i, j int) bool {
		return pathLess(findings[i].Path, findings[j].Path)
	})

	report := &model.ReviewReport{
		FormType:   formType,
		ReviewedAt: time.Now().UTC(),
		Findings:   findings,
		Totals:     tally(findings),
	}

	if p.summarizer != nil && p.summarizer.IsEnabled() {
		summary, err := p.summarizer.GenerateSummary(ctx, *report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else if summary != nil {
			report.LLM = summary
		}
	}

	return report, nil
}

func tally(findings []model.Finding) model.Totals {
	t := model.Totals{Fields: len(findings)}
	for _, f := range findings {
		switch f.Verdict.Kind {
		case model.VerdictError:
			t.Errors++
		case model.VerdictMatch:
			t.Matches++
		default:
			t.NoOpinion++
		}
	}
	return t
}

func pathLess(a, b model.FieldPath) bool {
	return strings.Join(a, "\x00") < strings.Join(b, "\x00")
}

// RenderReport writes the report to the requested outputs and prints the
// stdout summary.
func (p *Pipeline) RenderReport(report *model.ReviewReport, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}
