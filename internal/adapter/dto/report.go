package dto

import "github.com/johnquangdev/meeting-reporter/internal/domain/entities"

// GenerateReportRequest is the body of POST /v1/reports
type GenerateReportRequest struct {
	Transcript string `json:"transcript" validate:"required" example:"John: Let's discuss the Q3 budget. Sarah: I'll send the report by Friday."`
}

// ActionItemDTO is an action item in API responses
type ActionItemDTO struct {
	What string `json:"what" example:"Send the Q3 report"`
	Who  string `json:"who" example:"Sarah"`
	When string `json:"when" example:"Friday"`
}

// DecisionDTO is a key decision in API responses
type DecisionDTO struct {
	Decision string `json:"decision" example:"Approve the Q3 budget"`
	Category string `json:"category" example:"Strategic"`
}

// EntitiesDTO holds the supplementary entities
type EntitiesDTO struct {
	Keywords        []string `json:"keywords"`
	PersonNames     []string `json:"person_names"`
	TimeExpressions []string `json:"time_expressions"`
}

// ReportResponse is the data payload of a successful report request
type ReportResponse struct {
	Report       string          `json:"report"`
	Summary      string          `json:"summary"`
	ActionItems  []ActionItemDTO `json:"action_items"`
	KeyDecisions []DecisionDTO   `json:"key_decisions"`
	Entities     EntitiesDTO     `json:"entities"`
	Source       string          `json:"source,omitempty" example:"minutes.pdf"`
}

// NewReportResponse maps a finished pipeline state to the API payload
func NewReportResponse(state *entities.PipelineState) ReportResponse {
	resp := ReportResponse{
		ActionItems:  make([]ActionItemDTO, 0, len(state.ActionItems)),
		KeyDecisions: make([]DecisionDTO, 0, len(state.KeyDecisions)),
		Entities: EntitiesDTO{
			Keywords:        []string{},
			PersonNames:     []string{},
			TimeExpressions: []string{},
		},
	}

	if state.HasFinalReport() {
		resp.Report = *state.FinalReport
	}
	if state.HasSummary() {
		resp.Summary = *state.MeetingSummary
	}
	for _, item := range state.ActionItems {
		resp.ActionItems = append(resp.ActionItems, ActionItemDTO{What: item.What, Who: item.Who, When: item.When})
	}
	for _, d := range state.KeyDecisions {
		resp.KeyDecisions = append(resp.KeyDecisions, DecisionDTO{Decision: d.Decision, Category: d.Category})
	}
	if e := state.ExtractedEntities; e != nil {
		resp.Entities = EntitiesDTO{
			Keywords:        e.Keywords,
			PersonNames:     e.PersonNames,
			TimeExpressions: e.TimeExpressions,
		}
	}

	return resp
}
