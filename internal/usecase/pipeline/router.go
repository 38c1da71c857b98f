package pipeline

import "github.com/johnquangdev/meeting-reporter/internal/domain/entities"

// StageID names the next step the driver should take
type StageID string

const (
	StagePreprocess StageID = "preprocess"
	StageSummarize  StageID = "summarize"
	StageExtract    StageID = "extract"
	StageReport     StageID = "report"
	StageDone       StageID = "done"
)

// Router decides the next stage from the state alone
type Router func(state *entities.PipelineState) StageID

// Route is the default Router. The first matching rule wins and the order
// is the dependency graph of the pipeline. An empty action item or decision
// list counts as set.
func Route(state *entities.PipelineState) StageID {
	switch {
	case !state.HasCleanedTranscript():
		return StagePreprocess
	case !state.HasSummary():
		return StageSummarize
	case !state.HasActionItems() || !state.HasKeyDecisions():
		return StageExtract
	case !state.HasFinalReport():
		return StageReport
	default:
		return StageDone
	}
}
