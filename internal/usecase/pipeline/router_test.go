package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
)

func stateWith(mutators ...func(*entities.PipelineState)) *entities.PipelineState {
	s := entities.NewPipelineState("transcript")
	for _, m := range mutators {
		m(s)
	}
	return s
}

func withCleaned(s *entities.PipelineState) { s.SetCleanedTranscript("transcript") }
func withSummary(s *entities.PipelineState) { s.SetMeetingSummary("1. Point") }
func withItems(s *entities.PipelineState)   { s.SetActionItems([]entities.ActionItem{}) }
func withDecisions(s *entities.PipelineState) {
	s.SetKeyDecisions([]entities.Decision{})
}
func withReport(s *entities.PipelineState) { s.SetFinalReport("# Meeting Report\n") }

func TestRoute(t *testing.T) {
	tests := []struct {
		name  string
		state *entities.PipelineState
		want  StageID
	}{
		{"fresh state", stateWith(), StagePreprocess},
		{"summary without transcript", stateWith(withSummary), StagePreprocess},
		{"cleaned only", stateWith(withCleaned), StageSummarize},
		{"summary set", stateWith(withCleaned, withSummary), StageExtract},
		{"only action items", stateWith(withCleaned, withSummary, withItems), StageExtract},
		{"only decisions", stateWith(withCleaned, withSummary, withDecisions), StageExtract},
		{"empty lists count as set", stateWith(withCleaned, withSummary, withItems, withDecisions), StageReport},
		{"report set", stateWith(withCleaned, withSummary, withItems, withDecisions, withReport), StageDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.state))
			// no hidden state between calls
			assert.Equal(t, tt.want, Route(tt.state))
		})
	}
}

func TestRouteEmptyListVersusUnset(t *testing.T) {
	explicitEmpty := stateWith(withCleaned, withSummary, withItems, withDecisions)
	unset := stateWith(withCleaned, withSummary, withDecisions)

	assert.Equal(t, StageReport, Route(explicitEmpty))
	assert.Equal(t, StageExtract, Route(unset))
}

func TestRouteDoesNotMutate(t *testing.T) {
	s := stateWith(withCleaned)
	before := s.Clone()

	Route(s)

	assert.Equal(t, before, s)
}
