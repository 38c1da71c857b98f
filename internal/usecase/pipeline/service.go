package pipeline

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
	"github.com/johnquangdev/meeting-reporter/pkg/config"
)

// User-facing messages returned by RunPipeline
const (
	MsgEmptyInput     = "Please provide a meeting transcript to summarize."
	MsgReportNotFound = "Summary generation completed, but the final report was not found in the state."
	msgUnexpected     = "An unexpected error occurred during summarization: "
)

// Service exposes the pipeline to presentation layers
type Service interface {
	// RunPipeline always returns Markdown or a human-readable message
	RunPipeline(ctx context.Context, rawTranscript string) string
	// Generate returns the terminal state, or the error RunPipeline would have rendered
	Generate(ctx context.Context, rawTranscript string) (*entities.PipelineState, error)
}

type service struct {
	pipeline *Pipeline
}

// NewService wires a Pipeline from configuration
func NewService(gen Generator, cfg *config.PipelineConfig, logger *zap.Logger) Service {
	var opts []Option
	if cfg != nil {
		opts = append(opts,
			WithMaxIterations(cfg.MaxIterations),
			WithFallbackDelay(cfg.FallbackDelay),
			WithNormalizeWhitespace(cfg.NormalizeWhitespace),
		)
	}

	return &service{pipeline: New(gen, logger, opts...)}
}

// NewServiceWithPipeline wraps an already configured Pipeline
func NewServiceWithPipeline(p *Pipeline) Service {
	return &service{pipeline: p}
}

func (s *service) Generate(ctx context.Context, rawTranscript string) (*entities.PipelineState, error) {
	return s.pipeline.RunState(ctx, rawTranscript)
}

func (s *service) RunPipeline(ctx context.Context, rawTranscript string) string {
	state, err := s.pipeline.RunState(ctx, rawTranscript)
	if err != nil {
		return RenderError(err)
	}
	return *state.FinalReport
}

// RenderError converts a pipeline error into the message shown to users
func RenderError(err error) string {
	switch {
	case errors.Is(err, entities.ErrEmptyInput):
		return MsgEmptyInput
	case errors.Is(err, entities.ErrReportNotFound):
		return MsgReportNotFound
	default:
		return msgUnexpected + err.Error()
	}
}
