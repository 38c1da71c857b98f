package entities

import "strings"

// PipelineState is the record threaded through every pipeline stage.
// A nil pointer or nil slice means the field has not been set yet;
// an empty non-nil slice means the stage ran and found nothing.
type PipelineState struct {
	RawTranscript     string             `json:"raw_transcript"`
	CleanedTranscript *string            `json:"cleaned_transcript,omitempty"`
	ExtractedEntities *ExtractedEntities `json:"extracted_entities,omitempty"`
	MeetingSummary    *string            `json:"meeting_summary,omitempty"`
	ActionItems       []ActionItem       `json:"action_items,omitempty"`
	KeyDecisions      []Decision         `json:"key_decisions,omitempty"`
	FinalReport       *string            `json:"final_report,omitempty"`
}

// NewPipelineState creates a fresh state with only the raw transcript set
func NewPipelineState(rawTranscript string) *PipelineState {
	return &PipelineState{RawTranscript: rawTranscript}
}

// IsBlank reports whether the input is empty or whitespace only
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Clone returns a deep copy of the state
func (s *PipelineState) Clone() *PipelineState {
	if s == nil {
		return nil
	}

	out := &PipelineState{
		RawTranscript:     s.RawTranscript,
		CleanedTranscript: cloneString(s.CleanedTranscript),
		ExtractedEntities: s.ExtractedEntities.clone(),
		MeetingSummary:    cloneString(s.MeetingSummary),
		FinalReport:       cloneString(s.FinalReport),
	}
	if s.ActionItems != nil {
		out.ActionItems = append(make([]ActionItem, 0, len(s.ActionItems)), s.ActionItems...)
	}
	if s.KeyDecisions != nil {
		out.KeyDecisions = append(make([]Decision, 0, len(s.KeyDecisions)), s.KeyDecisions...)
	}
	return out
}

// HasCleanedTranscript reports whether preprocessing has stored a transcript
func (s *PipelineState) HasCleanedTranscript() bool {
	return s.CleanedTranscript != nil
}

// HasSummary reports whether a meeting summary is present
func (s *PipelineState) HasSummary() bool {
	return s.MeetingSummary != nil
}

// HasActionItems reports presence, not non-emptiness
func (s *PipelineState) HasActionItems() bool {
	return s.ActionItems != nil
}

// HasKeyDecisions reports presence, not non-emptiness
func (s *PipelineState) HasKeyDecisions() bool {
	return s.KeyDecisions != nil
}

// HasFinalReport reports whether the terminal field is set
func (s *PipelineState) HasFinalReport() bool {
	return s.FinalReport != nil
}

// SetCleanedTranscript stores the preprocessed transcript
func (s *PipelineState) SetCleanedTranscript(v string) {
	s.CleanedTranscript = &v
}

// SetMeetingSummary stores the summary text
func (s *PipelineState) SetMeetingSummary(v string) {
	s.MeetingSummary = &v
}

// SetActionItems stores the list, keeping an empty list distinct from unset
func (s *PipelineState) SetActionItems(items []ActionItem) {
	if items == nil {
		items = []ActionItem{}
	}
	s.ActionItems = items
}

// SetKeyDecisions stores the list, keeping an empty list distinct from unset
func (s *PipelineState) SetKeyDecisions(decisions []Decision) {
	if decisions == nil {
		decisions = []Decision{}
	}
	s.KeyDecisions = decisions
}

// SetFinalReport stores the assembled report
func (s *PipelineState) SetFinalReport(v string) {
	s.FinalReport = &v
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
