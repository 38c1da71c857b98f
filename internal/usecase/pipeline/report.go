package pipeline

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
)

const (
	noSummary      = "No summary available."
	noDecisions    = "No key decisions identified.\n"
	noActionItems  = "No action items identified.\n"
	reportTitle    = "# Meeting Report\n"
	summaryHeading = "## 1. Executive Summary\n"
	decisionsHead  = "## 2. Key Decisions\n"
	actionsHead    = "## 3. Action Items\n"
	supplementHead = "## 4. Supplementary Information\n"
)

// BuildReport renders the Markdown report for state. Sections are joined
// with a single newline and missing fields degrade to placeholder text.
func BuildReport(state *entities.PipelineState) string {
	summary := noSummary
	if state.HasSummary() {
		summary = *state.MeetingSummary
	}

	sections := []string{reportTitle, summaryHeading, summary + "\n"}

	sections = append(sections, decisionsHead)
	if len(state.KeyDecisions) == 0 {
		sections = append(sections, noDecisions)
	}
	for i, d := range state.KeyDecisions {
		sections = append(sections,
			fmt.Sprintf("- **Decision %d:** %s", i+1, d.Decision),
			fmt.Sprintf("  * Category: %s\n", d.Category),
		)
	}

	sections = append(sections, actionsHead)
	if len(state.ActionItems) == 0 {
		sections = append(sections, noActionItems)
	}
	for i, item := range state.ActionItems {
		sections = append(sections,
			fmt.Sprintf("- **Action %d:** %s", i+1, item.What),
			fmt.Sprintf("  * Who: %s", item.Who),
			fmt.Sprintf("  * When: %s\n", item.When),
		)
	}

	sections = append(sections, supplementHead)
	if e := state.ExtractedEntities; e != nil {
		sections = appendListLine(sections, "Keywords", e.Keywords)
		sections = appendListLine(sections, "People Mentioned", e.PersonNames)
		sections = appendListLine(sections, "Time-related Expressions", e.TimeExpressions)
	}

	return strings.Join(sections, "\n")
}

func appendListLine(sections []string, label string, values []string) []string {
	if len(values) == 0 {
		return sections
	}
	return append(sections, fmt.Sprintf("- **%s:** %s\n", label, strings.Join(values, ", ")))
}
