package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
	"github.com/johnquangdev/meeting-reporter/pkg/config"
)

const sampleTranscript = "John: Let's discuss the Q3 budget. Sarah: I'll send the report by Friday. John: Approved."

func TestRunHappyPath(t *testing.T) {
	gen := newFakeGenerator()
	p := New(gen, zap.NewNop())

	report, err := p.Run(context.Background(), sampleTranscript)
	require.NoError(t, err)

	assert.Contains(t, report, "# Meeting Report\n")
	assert.Contains(t, report, "1. Discussed budget.")
	assert.Contains(t, report, "- **Decision 1:** Approve budget\n  * Category: Strategic\n")
	assert.Contains(t, report, "- **Action 1:** Send report\n  * Who: Sarah\n  * When: Friday\n")
	assert.Contains(t, report, "- **Keywords:** budget, Q3 report\n")
	assert.Contains(t, report, "- **People Mentioned:** Sarah, John\n")
	assert.Contains(t, report, "- **Time-related Expressions:** Friday\n")

	// three entity calls, one summary, two structured
	assert.Len(t, gen.generateCalls, 4)
	assert.Equal(t, []string{ActionItemSchema.Name, DecisionSchema.Name}, gen.structuredCalls)
}

func TestRunStateReturnsTerminalState(t *testing.T) {
	p := New(newFakeGenerator(), nil)

	state, err := p.RunState(context.Background(), sampleTranscript)
	require.NoError(t, err)

	assert.Equal(t, StageDone, Route(state))
	assert.Equal(t, sampleTranscript, state.RawTranscript)
	assert.Len(t, state.ActionItems, 1)
	assert.Len(t, state.KeyDecisions, 1)
}

func TestRunEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t "} {
		gen := newFakeGenerator()
		p := New(gen, nil)

		_, err := p.Run(context.Background(), in)
		assert.ErrorIs(t, err, entities.ErrEmptyInput)
		assert.Zero(t, gen.totalCalls())
	}
}

func TestRunStallsOnNeverDoneRouter(t *testing.T) {
	gen := newFakeGenerator()
	calls := 0
	never := func(*entities.PipelineState) StageID {
		calls++
		return StageReport
	}
	p := New(gen, nil, WithRouter(never), WithMaxIterations(4))

	_, err := p.Run(context.Background(), sampleTranscript)
	require.ErrorIs(t, err, entities.ErrPipelineStalled)
	assert.Equal(t, 4, calls)
}

func TestRunDefaultCap(t *testing.T) {
	calls := 0
	p := New(newFakeGenerator(), nil, WithRouter(func(*entities.PipelineState) StageID {
		calls++
		return StageSummarize
	}))

	_, err := p.Run(context.Background(), sampleTranscript)
	require.ErrorIs(t, err, entities.ErrPipelineStalled)
	assert.Equal(t, DefaultMaxIterations, calls)
}

func TestRunDoneWithoutReport(t *testing.T) {
	p := New(newFakeGenerator(), nil, WithRouter(func(*entities.PipelineState) StageID {
		return StageDone
	}))

	_, err := p.Run(context.Background(), sampleTranscript)
	assert.ErrorIs(t, err, entities.ErrReportNotFound)
}

func TestRunUnknownStage(t *testing.T) {
	p := New(newFakeGenerator(), nil, WithRouter(func(*entities.PipelineState) StageID {
		return StageID("translate")
	}))

	_, err := p.Run(context.Background(), sampleTranscript)
	assert.ErrorContains(t, err, `unknown stage "translate"`)
}

func TestRunPropagatesTransportError(t *testing.T) {
	gen := newFakeGenerator()
	gen.errors[keySummary] = errors.New("429 Too Many Requests")
	p := New(gen, nil)

	_, err := p.Run(context.Background(), sampleTranscript)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage summarize")
	assert.Contains(t, err.Error(), "429 Too Many Requests")
	assert.Zero(t, len(gen.structuredCalls), "extraction never runs after a failed summary")
}

func TestRunLogsWithRunID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := New(newFakeGenerator(), zap.New(core))

	_, err := p.Run(context.Background(), sampleTranscript)
	require.NoError(t, err)

	completed := logs.FilterMessage("Stage completed").All()
	require.Len(t, completed, 4)

	runID := completed[0].ContextMap()["run_id"]
	assert.NotEmpty(t, runID)
	for _, entry := range logs.All() {
		assert.Equal(t, runID, entry.ContextMap()["run_id"])
	}

	done := logs.FilterMessage("Pipeline run completed").All()
	require.Len(t, done, 1)
	startedAt, ok := done[0].ContextMap()["started_at"].(time.Time)
	require.True(t, ok)
	assert.False(t, startedAt.IsZero())
}

func TestRunsAreIndependent(t *testing.T) {
	p := New(newFakeGenerator(), nil)

	first, err := p.RunState(context.Background(), "Meeting one: Sarah owns the report.")
	require.NoError(t, err)
	second, err := p.RunState(context.Background(), "Meeting two: John owns the budget.")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, "Meeting one: Sarah owns the report.", *first.CleanedTranscript)
	assert.Equal(t, "Meeting two: John owns the budget.", *second.CleanedTranscript)
}

func TestServiceRunPipeline(t *testing.T) {
	t.Run("report", func(t *testing.T) {
		svc := NewService(newFakeGenerator(), &config.PipelineConfig{MaxIterations: 6}, nil)
		assert.Contains(t, svc.RunPipeline(context.Background(), sampleTranscript), "# Meeting Report")
	})

	t.Run("empty input", func(t *testing.T) {
		gen := newFakeGenerator()
		svc := NewService(gen, nil, nil)
		assert.Equal(t, MsgEmptyInput, svc.RunPipeline(context.Background(), ""))
		assert.Equal(t, MsgEmptyInput, svc.RunPipeline(context.Background(), "   "))
		assert.Zero(t, gen.totalCalls())
	})

	t.Run("transport failure", func(t *testing.T) {
		gen := newFakeGenerator()
		gen.errors[keySummary] = errors.New("quota exceeded")
		svc := NewService(gen, nil, nil)

		got := svc.RunPipeline(context.Background(), sampleTranscript)
		assert.Equal(t, "An unexpected error occurred during summarization: stage summarize: generate summary: quota exceeded", got)
	})

	t.Run("stalled", func(t *testing.T) {
		p := New(newFakeGenerator(), nil, WithRouter(func(*entities.PipelineState) StageID { return StagePreprocess }))
		got := NewServiceWithPipeline(p).RunPipeline(context.Background(), sampleTranscript)
		assert.Contains(t, got, "An unexpected error occurred during summarization: ")
		assert.Contains(t, got, entities.ErrPipelineStalled.Error())
	})

	t.Run("missing report", func(t *testing.T) {
		p := New(newFakeGenerator(), nil, WithRouter(func(*entities.PipelineState) StageID { return StageDone }))
		assert.Equal(t, MsgReportNotFound, NewServiceWithPipeline(p).RunPipeline(context.Background(), sampleTranscript))
	})
}

func TestServiceGenerateError(t *testing.T) {
	svc := NewService(newFakeGenerator(), nil, nil)

	_, err := svc.Generate(context.Background(), " ")
	assert.ErrorIs(t, err, entities.ErrEmptyInput)
	assert.Equal(t, MsgEmptyInput, RenderError(err))
}
