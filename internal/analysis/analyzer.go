// Package analysis composes extraction, matching, suggestions, and reporting into a
// single resume-versus-job comparison.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/report"
	"github.com/jonathan/resume-analyzer/internal/suggestions"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Step names reported through ProgressCallback
const (
	StepExtractResume = "extract_resume"
	StepExtractJob    = "extract_job"
	StepMatch         = "match"
	StepSuggest       = "suggest"
	StepReport        = "report"
)

// SkillExtractor finds skills in text. Both *extraction.Extractor and
// *extraction.Cached satisfy it.
type SkillExtractor interface {
	Extract(text string) types.SkillSet
}

// ProgressEvent represents a progress update during an analysis
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called as each step completes. It may be called from
// multiple goroutines during extraction.
type ProgressCallback func(event ProgressEvent)

// Options holds optional analyzer configuration
type Options struct {
	OnProgress ProgressCallback
	// SkipReport leaves Analysis.Report empty
	SkipReport bool
	// Now overrides the clock used for CreatedAt
	Now func() time.Time
}

// Analyzer runs the full comparison pipeline. It is safe for concurrent use.
type Analyzer struct {
	extractor SkillExtractor
	opts      Options
}

// NewAnalyzer creates an Analyzer using extractor for both documents
func NewAnalyzer(extractor SkillExtractor, opts Options) (*Analyzer, error) {
	if extractor == nil {
		return nil, fmt.Errorf("analysis: extractor must not be nil")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Analyzer{extractor: extractor, opts: opts}, nil
}

// Analyze extracts skills from both texts concurrently, matches them, and builds the
// suggestions and report. It fails only if ctx is done before the work completes.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) (*types.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	runID := uuid.New()
	slog.Debug("analysis: starting", slog.String("run_id", runID.String()),
		slog.Int("resume_bytes", len(resumeText)), slog.Int("job_bytes", len(jobText)))

	g, gCtx := errgroup.WithContext(ctx)

	var resumeSkills, jobSkills types.SkillSet

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		resumeSkills = a.extractor.Extract(resumeText)
		a.emit(runID, StepExtractResume, fmt.Sprintf("found %d resume skills", resumeSkills.Len()), resumeSkills.Sorted())
		return nil
	})

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		jobSkills = a.extractor.Extract(jobText)
		a.emit(runID, StepExtractJob, fmt.Sprintf("found %d job skills", jobSkills.Len()), jobSkills.Sorted())
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("skill extraction failed: %w", err)
	}

	result := matching.Match(resumeSkills, jobSkills)
	a.emit(runID, StepMatch, fmt.Sprintf("match score %.1f%%", result.Percentage()), result)

	advice := suggestions.Suggest(&result)
	a.emit(runID, StepSuggest, fmt.Sprintf("generated %d suggestions", len(advice)), advice)

	analysis := &types.Analysis{
		ID:           runID,
		ResumeSkills: resumeSkills,
		JobSkills:    jobSkills,
		Result:       result,
		Suggestions:  advice,
		CreatedAt:    a.opts.Now().UTC(),
	}

	if !a.opts.SkipReport {
		analysis.Report = report.Format(&result, advice)
		a.emit(runID, StepReport, "report rendered", nil)
	}

	slog.Debug("analysis: completed", slog.String("run_id", runID.String()),
		slog.Float64("match_percentage", result.Percentage()))

	return analysis, nil
}

// emit calls the progress callback if configured
func (a *Analyzer) emit(runID uuid.UUID, step, message string, content any) {
	if a.opts.OnProgress != nil {
		a.opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID.String(),
			Content: content,
		})
	}
}
