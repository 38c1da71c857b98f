package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
	"github.com/johnquangdev/meeting-reporter/pkg/ai"
	"github.com/johnquangdev/meeting-reporter/pkg/jobcontext"
)

const (
	// DefaultMaxIterations is the number of stages plus a small margin
	DefaultMaxIterations = 6
	// DefaultFallbackDelay is slept after every plain-text fallback extraction
	DefaultFallbackDelay = 2 * time.Second

	runKind = "meeting_report"
)

// Generator is the generation capability the stages depend on
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	GenerateStructured(ctx context.Context, prompt string, schema ai.Schema) (string, error)
}

// Stage transforms a state into a new state. Implementations never mutate their input.
type Stage func(ctx context.Context, state *entities.PipelineState) (*entities.PipelineState, error)

// Option configures a Pipeline
type Option func(*Pipeline)

// WithRouter replaces the default Route function
func WithRouter(r Router) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.route = r
		}
	}
}

// WithMaxIterations sets the routing cap; non-positive values are ignored
func WithMaxIterations(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.maxIterations = n
		}
	}
}

// WithFallbackDelay sets the pause after a fallback extraction
func WithFallbackDelay(d time.Duration) Option {
	return func(p *Pipeline) {
		if d >= 0 {
			p.fallbackDelay = d
		}
	}
}

// WithNormalizeWhitespace makes Preprocess trim every transcript line
func WithNormalizeWhitespace(enabled bool) Option {
	return func(p *Pipeline) {
		p.normalizeWhitespace = enabled
	}
}

// Pipeline drives a transcript through the report stages
type Pipeline struct {
	gen    Generator
	logger *zap.Logger

	route               Router
	stages              map[StageID]Stage
	maxIterations       int
	fallbackDelay       time.Duration
	normalizeWhitespace bool
	sleep               func(ctx context.Context, d time.Duration) error
}

// New creates a Pipeline backed by gen
func New(gen Generator, logger *zap.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Pipeline{
		gen:           gen,
		logger:        logger,
		route:         Route,
		maxIterations: DefaultMaxIterations,
		fallbackDelay: DefaultFallbackDelay,
		sleep:         sleepContext,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.stages = map[StageID]Stage{
		StagePreprocess: p.preprocess,
		StageSummarize:  p.summarize,
		StageExtract:    p.extract,
		StageReport:     p.report,
	}

	return p
}

// Run returns the Markdown report for rawTranscript
func (p *Pipeline) Run(ctx context.Context, rawTranscript string) (string, error) {
	state, err := p.RunState(ctx, rawTranscript)
	if err != nil {
		return "", err
	}
	return *state.FinalReport, nil
}

// RunState executes the pipeline and returns the terminal state.
// A blank transcript fails with entities.ErrEmptyInput before any stage runs.
func (p *Pipeline) RunState(ctx context.Context, rawTranscript string) (*entities.PipelineState, error) {
	if entities.IsBlank(rawTranscript) {
		return nil, entities.ErrEmptyInput
	}

	ctx, cancel := jobcontext.RunBegin(ctx, runKind, 0)
	defer cancel()

	log := p.logger.With(jobcontext.Fields(ctx)...)
	log.Info("Pipeline run started", zap.Int("transcript_length", len(rawTranscript)))

	var final *entities.PipelineState
	err := jobcontext.RunEnd(ctx, func(ctx context.Context) error {
		state := entities.NewPipelineState(rawTranscript)

		for i := 0; i < p.maxIterations; i++ {
			next := p.route(state)
			if next == StageDone {
				if !state.HasFinalReport() {
					return entities.ErrReportNotFound
				}
				final = state
				return nil
			}

			stage, ok := p.stages[next]
			if !ok {
				return fmt.Errorf("router returned unknown stage %q", next)
			}

			log.Debug("Executing stage", zap.String("stage", string(next)), zap.Int("iteration", i+1))
			started := time.Now()

			updated, err := stage(ctx, state)
			if err != nil {
				return fmt.Errorf("stage %s: %w", next, err)
			}
			state = updated

			log.Info("Stage completed",
				zap.String("stage", string(next)),
				zap.Duration("duration", time.Since(started)),
			)
		}

		return fmt.Errorf("%w (%d iterations)", entities.ErrPipelineStalled, p.maxIterations)
	})
	if err != nil {
		log.Error("Pipeline run failed", zap.Error(err), zap.Duration("elapsed", jobcontext.Elapsed(ctx)))
		return nil, err
	}

	meta := jobcontext.GetRunMetadata(ctx)
	log.Info("Pipeline run completed",
		zap.Time("started_at", meta.StartTime),
		zap.Int("action_items", len(final.ActionItems)),
		zap.Int("key_decisions", len(final.KeyDecisions)),
		zap.Duration("elapsed", jobcontext.Elapsed(ctx)),
	)

	return final, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
