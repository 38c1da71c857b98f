package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
)

func preprocessed(transcript string) *entities.PipelineState {
	s := entities.NewPipelineState(transcript)
	s.SetCleanedTranscript(transcript)
	s.ExtractedEntities = entities.NewExtractedEntities(nil, nil, nil)
	return s
}

func TestPreprocess(t *testing.T) {
	gen := newFakeGenerator()
	p := New(gen, nil)
	in := entities.NewPipelineState("  Sarah: send the Q3 report by Friday.  ")

	out, err := p.preprocess(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, in.RawTranscript, *out.CleanedTranscript)
	assert.Equal(t, []string{"budget", "Q3 report"}, out.ExtractedEntities.Keywords)
	assert.Equal(t, []string{"Sarah", "John"}, out.ExtractedEntities.PersonNames)
	assert.Equal(t, []string{"Friday"}, out.ExtractedEntities.TimeExpressions)
	assert.Equal(t, 3, gen.totalCalls())

	// input untouched
	assert.False(t, in.HasCleanedTranscript())
	assert.Nil(t, in.ExtractedEntities)
	assert.NotEqual(t, StagePreprocess, Route(out))
}

func TestPreprocessPartialFailure(t *testing.T) {
	gen := newFakeGenerator()
	gen.errors[keyNames] = errors.New("timeout")
	p := New(gen, nil)

	out, err := p.preprocess(context.Background(), entities.NewPipelineState("meeting"))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ExtractedEntities.Keywords)
	assert.NotNil(t, out.ExtractedEntities.PersonNames)
	assert.Empty(t, out.ExtractedEntities.PersonNames)
	assert.Equal(t, []string{"Friday"}, out.ExtractedEntities.TimeExpressions)
}

func TestPreprocessNormalizeWhitespace(t *testing.T) {
	p := New(newFakeGenerator(), nil, WithNormalizeWhitespace(true))

	out, err := p.preprocess(context.Background(), entities.NewPipelineState("  John: hi  \n\tSarah: hello\t"))
	require.NoError(t, err)
	assert.Equal(t, "John: hi\nSarah: hello", *out.CleanedTranscript)
}

func TestSummarize(t *testing.T) {
	gen := newFakeGenerator()
	gen.responses[keySummary] = "1. Discussed budget.\n2. Assigned report."
	p := New(gen, nil)

	out, err := p.summarize(context.Background(), preprocessed("meeting"))
	require.NoError(t, err)
	assert.Equal(t, "1. Discussed budget.\n2. Assigned report.", *out.MeetingSummary)
	assert.NotEqual(t, StageSummarize, Route(out))
}

func TestSummarizeGuardWithoutTranscript(t *testing.T) {
	gen := newFakeGenerator()
	p := New(gen, nil)
	in := entities.NewPipelineState("meeting")

	out, err := p.summarize(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Zero(t, gen.totalCalls())
}

func TestSummarizeErrors(t *testing.T) {
	t.Run("transport", func(t *testing.T) {
		gen := newFakeGenerator()
		gen.errors[keySummary] = errors.New("unauthorized")

		_, err := New(gen, nil).summarize(context.Background(), preprocessed("meeting"))
		assert.EqualError(t, err, "generate summary: unauthorized")
	})

	t.Run("blank", func(t *testing.T) {
		gen := newFakeGenerator()
		gen.responses[keySummary] = "   "

		_, err := New(gen, nil).summarize(context.Background(), preprocessed("meeting"))
		assert.ErrorIs(t, err, errEmptySummary)
	})
}

func TestExtractPrimaryPath(t *testing.T) {
	gen := newFakeGenerator()
	p := New(gen, nil)
	slept := recordSleeps(p)

	out, err := p.extract(context.Background(), preprocessed("meeting"))
	require.NoError(t, err)

	assert.Equal(t, []entities.ActionItem{{What: "Send report", Who: "Sarah", When: "Friday"}}, out.ActionItems)
	assert.Equal(t, []entities.Decision{{Decision: "Approve budget", Category: "Strategic"}}, out.KeyDecisions)
	assert.Empty(t, *slept, "no delay after the primary path")
	assert.Zero(t, gen.callsFor(keyActions))
	assert.Zero(t, gen.callsFor(keyDecisions))
	assert.NotEqual(t, StageExtract, Route(out))
}

func TestExtractFallback(t *testing.T) {
	gen := newFakeGenerator()
	gen.structured[ActionItemSchema.Name] = `{"action_items":[{"what":"Send report"}]}`
	p := New(gen, nil, WithFallbackDelay(2*time.Second))
	slept := recordSleeps(p)

	out, err := p.extract(context.Background(), preprocessed("meeting"))
	require.NoError(t, err)

	require.Len(t, out.ActionItems, 2)
	for _, item := range out.ActionItems {
		assert.NotEmpty(t, item.What)
		assert.Equal(t, entities.NotAvailable, item.Who)
		assert.Equal(t, entities.NotAvailable, item.When)
	}
	assert.Equal(t, "Send report", out.ActionItems[0].What)
	assert.Equal(t, "Book room", out.ActionItems[1].What)

	// decisions took the primary path
	assert.Equal(t, "Strategic", out.KeyDecisions[0].Category)
	assert.Equal(t, []time.Duration{2 * time.Second}, *slept)
}

func TestExtractBlankOwnerKeepsPrimaryList(t *testing.T) {
	gen := newFakeGenerator()
	gen.structured[ActionItemSchema.Name] = `{"action_items":[{"what":"Send report","who":"","when":"Friday"},{"what":"Book room","who":"John","when":"Monday"}]}`
	p := New(gen, nil)
	slept := recordSleeps(p)

	out, err := p.extract(context.Background(), preprocessed("meeting"))
	require.NoError(t, err)

	assert.Equal(t, []entities.ActionItem{
		{What: "Send report", Who: entities.NotAvailable, When: "Friday"},
		{What: "Book room", Who: "John", When: "Monday"},
	}, out.ActionItems)
	assert.Zero(t, gen.callsFor(keyActions))
	assert.Empty(t, *slept)
}

func TestExtractDecisionFallback(t *testing.T) {
	gen := newFakeGenerator()
	gen.structErr[DecisionSchema.Name] = errors.New("rate limited")
	gen.responses[keyDecisions] = "Approve budget\nMove standup to 10am\n"
	p := New(gen, nil)
	recordSleeps(p)

	out, err := p.extract(context.Background(), preprocessed("meeting"))
	require.NoError(t, err)
	assert.Equal(t, []entities.Decision{
		{Decision: "Approve budget", Category: entities.DefaultCategory},
		{Decision: "Move standup to 10am", Category: entities.DefaultCategory},
	}, out.KeyDecisions)
}

func TestExtractIndependentFailures(t *testing.T) {
	gen := newFakeGenerator()
	gen.structErr[ActionItemSchema.Name] = errors.New("boom")
	gen.errors[keyActions] = errors.New("boom again")
	p := New(gen, nil)
	slept := recordSleeps(p)

	out, err := p.extract(context.Background(), preprocessed("meeting"))
	require.NoError(t, err)

	assert.NotNil(t, out.ActionItems)
	assert.Empty(t, out.ActionItems)
	assert.Len(t, out.KeyDecisions, 1)
	assert.Len(t, *slept, 1)
	assert.Equal(t, StageReport, Route(withSummaryCopy(out)))
}

func TestExtractEmptyListsAreSet(t *testing.T) {
	gen := newFakeGenerator()
	gen.structured[ActionItemSchema.Name] = `{"action_items":[]}`
	gen.structured[DecisionSchema.Name] = `{"key_decisions":[]}`
	p := New(gen, nil)

	out, err := p.extract(context.Background(), preprocessed("meeting"))
	require.NoError(t, err)
	assert.True(t, out.HasActionItems())
	assert.True(t, out.HasKeyDecisions())
}

func TestExtractFallbackDelayHonoursContext(t *testing.T) {
	gen := newFakeGenerator()
	gen.structErr[ActionItemSchema.Name] = errors.New("boom")
	p := New(gen, nil, WithFallbackDelay(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.extract(ctx, preprocessed("meeting"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReportStage(t *testing.T) {
	gen := newFakeGenerator()
	p := New(gen, nil)
	in := withSummaryCopy(preprocessed("meeting"))
	in.SetActionItems(nil)
	in.SetKeyDecisions(nil)

	out, err := p.report(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, BuildReport(in), *out.FinalReport)
	assert.False(t, in.HasFinalReport())
	assert.Zero(t, gen.totalCalls())
	assert.Equal(t, StageDone, Route(out))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, splitList(" a, ,b c ,", ","))
	assert.Equal(t, []string{}, splitList("", ","))
	assert.Equal(t, []string{"one", "two"}, splitList("one\r\n\n two", "\n"))
}

func withSummaryCopy(s *entities.PipelineState) *entities.PipelineState {
	out := s.Clone()
	out.SetMeetingSummary("1. Discussed budget.")
	return out
}
