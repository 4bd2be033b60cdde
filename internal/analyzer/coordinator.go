// Package analyzer orchestrates the detection pipeline: slice, dispatch,
// score, filter, localize, and aggregate.
package analyzer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/debtguard/debtguard/internal/detector"
	"github.com/debtguard/debtguard/internal/llmdetect"
	"github.com/debtguard/debtguard/internal/localizer"
	"github.com/debtguard/debtguard/internal/progress"
	"github.com/debtguard/debtguard/internal/scanner"
	"github.com/debtguard/debtguard/pkg/config"
	"github.com/debtguard/debtguard/pkg/models"
	"github.com/debtguard/debtguard/pkg/slicer"
)

// Analyzer runs the full detection pipeline over text, files, and
// directory trees.
type Analyzer struct {
	cfg        *config.Config
	slicer     *slicer.Slicer
	dispatcher *detector.Dispatcher
	scanner    *scanner.Scanner
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDispatcher overrides the default LLM-backed dispatcher, mainly for
// plugging in stub capabilities.
func WithDispatcher(d *detector.Dispatcher) Option {
	return func(a *Analyzer) { a.dispatcher = d }
}

// New creates an analyzer from config. Detector capabilities are built
// lazily, so constructing an analyzer does not touch the network.
func New(cfg *config.Config, opts ...Option) *Analyzer {
	a := &Analyzer{
		cfg:     cfg,
		slicer:  slicer.New(cfg.Slicer),
		scanner: scanner.New(cfg),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.dispatcher == nil {
		var class, method detector.Capability
		if cfg.Detection.ClassDetector.Enabled {
			dc := cfg.Detection.ClassDetector
			class = detector.NewLazy(models.GranularityClass, func() (detector.Capability, error) {
				return llmdetect.NewClassCapability(dc), nil
			})
		}
		if cfg.Detection.MethodDetector.Enabled {
			dc := cfg.Detection.MethodDetector
			method = detector.NewLazy(models.GranularityMethod, func() (detector.Capability, error) {
				return llmdetect.NewMethodCapability(dc), nil
			})
		}
		a.dispatcher = detector.NewDispatcher(cfg.Detection, class, method)
	}

	return a
}

// AnalyzeText runs the pipeline over raw source text.
func (a *Analyzer) AnalyzeText(ctx context.Context, source, filePath string) *models.FileAnalysis {
	analysis := &models.FileAnalysis{
		FilePath:   filePath,
		Summary:    models.NewFileSummary(),
		Debts:      []models.DetectionResult{},
		AnalyzedAt: time.Now(),
	}

	sliced := a.slicer.Slice(source, filePath)
	analysis.Strategy = sliced.Strategy

	classes, methods := splitUnits(sliced)
	if len(classes)+len(methods) == 0 {
		return analysis
	}

	// Class units go out as one batch, method units as a second.
	results := a.dispatcher.DetectBatch(ctx, classes)
	results = append(results, a.dispatcher.DetectBatch(ctx, methods)...)
	analysis.TotalDetections = len(results)

	filtered := detector.FilterByConfidence(results, a.cfg.Detection.MinConfidence)
	analysis.FilteredDetections = len(filtered)

	for i := range filtered {
		if filtered[i].Unit != nil {
			loc := localizer.Locate(filtered[i].Unit, source)
			filtered[i].Location = &loc
		}
		analysis.Summary.AddDetection(filtered[i])
	}
	analysis.Debts = filtered

	return analysis
}

// AnalyzeFile reads one file and runs the pipeline. Read and slice
// problems are recorded on the analysis rather than returned, so a
// repository run can carry on past a bad file.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) *models.FileAnalysis {
	data, err := os.ReadFile(path)
	if err != nil {
		return &models.FileAnalysis{
			FilePath:   path,
			Summary:    models.NewFileSummary(),
			Debts:      []models.DetectionResult{},
			AnalyzedAt: time.Now(),
			Err:        fmt.Sprintf("read file: %v", err),
		}
	}
	return a.AnalyzeText(ctx, string(data), path)
}

// AnalyzeRepository scans root for source files and analyzes each one.
// One file's failure never aborts the run.
func (a *Analyzer) AnalyzeRepository(ctx context.Context, root string) (*models.RepoAnalysis, error) {
	return a.AnalyzeRepositoryWithProgress(ctx, root, nil)
}

// AnalyzeRepositoryWithProgress is AnalyzeRepository with a progress
// callback invoked after each file.
func (a *Analyzer) AnalyzeRepositoryWithProgress(ctx context.Context, root string, fn progress.Func) (*models.RepoAnalysis, error) {
	files, err := a.scanner.Scan(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	repo := &models.RepoAnalysis{
		Root:       root,
		TotalFiles: len(files),
		Files:      make([]models.FileAnalysis, 0, len(files)),
		AnalyzedAt: time.Now(),
	}

	for i, path := range files {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		analysis := a.AnalyzeFile(ctx, path)
		repo.Files = append(repo.Files, *analysis)
		if analysis.Failed() {
			repo.FailedFiles++
		} else {
			repo.AnalyzedFiles++
		}

		if fn != nil {
			fn(i+1, len(files), path)
		}
	}

	repo.Summary = Aggregate(repo.Files)
	return repo, nil
}

// splitUnits separates a slice result into the two dispatch batches:
// class units, and method units (each class's nested methods followed by
// the standalone methods of the fallback path). Nested methods ride
// along even though the class text already contains them; class and
// method detectors answer different questions about the same code.
func splitUnits(sliced *models.SliceResult) (classes, methods []*models.SourceUnit) {
	for _, class := range sliced.Classes {
		classes = append(classes, class)
		methods = append(methods, class.Methods...)
	}
	methods = append(methods, sliced.Methods...)
	return classes, methods
}
