package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
	"github.com/johnquangdev/meeting-reporter/pkg/jobcontext"
)

var errEmptySummary = errors.New("model returned an empty summary")

// preprocess stores the cleaned transcript and the three entity lists.
// The entity calls run concurrently; a failing one only empties its own list.
func (p *Pipeline) preprocess(ctx context.Context, state *entities.PipelineState) (*entities.PipelineState, error) {
	next := state.Clone()

	cleaned := next.RawTranscript
	if p.normalizeWhitespace {
		cleaned = normalizeLines(cleaned)
	}
	next.SetCleanedTranscript(cleaned)

	var keywords, names, times []string
	var g errgroup.Group
	g.Go(func() error {
		keywords = p.extractEntityList(ctx, "keywords", keywordsPrompt, cleaned)
		return nil
	})
	g.Go(func() error {
		names = p.extractEntityList(ctx, "person_names", personNamesPrompt, cleaned)
		return nil
	})
	g.Go(func() error {
		times = p.extractEntityList(ctx, "time_expressions", timeExpressionsPrompt, cleaned)
		return nil
	})
	_ = g.Wait() // failures are absorbed per list

	next.ExtractedEntities = entities.NewExtractedEntities(keywords, names, times)
	return next, nil
}

func (p *Pipeline) extractEntityList(ctx context.Context, field, template, transcript string) []string {
	resp, err := p.gen.Generate(ctx, buildPrompt(template, transcript))
	if err != nil {
		p.logger.Warn("Entity extraction failed, using empty list",
			append(jobcontext.Fields(ctx), zap.String("field", field), zap.Error(err))...)
		return []string{}
	}
	return splitList(resp, ",")
}

// summarize stores the generated summary verbatim
func (p *Pipeline) summarize(ctx context.Context, state *entities.PipelineState) (*entities.PipelineState, error) {
	next := state.Clone()
	if !next.HasCleanedTranscript() || entities.IsBlank(*next.CleanedTranscript) {
		p.logger.Warn("No cleaned transcript found for summarization", jobcontext.Fields(ctx)...)
		return next, nil
	}

	summary, err := p.gen.Generate(ctx, buildPrompt(summaryPrompt, *next.CleanedTranscript))
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}
	if entities.IsBlank(summary) {
		return nil, errEmptySummary
	}

	next.SetMeetingSummary(summary)
	return next, nil
}

// extract sets both action items and key decisions, each at least an empty list
func (p *Pipeline) extract(ctx context.Context, state *entities.PipelineState) (*entities.PipelineState, error) {
	next := state.Clone()
	if !next.HasCleanedTranscript() {
		p.logger.Warn("No cleaned transcript found for extraction", jobcontext.Fields(ctx)...)
		return next, nil
	}
	transcript := *next.CleanedTranscript

	items, err := extractWithFallback(ctx, p, ActionItemSchema.Name,
		func(ctx context.Context) ([]entities.ActionItem, error) {
			var list entities.ActionItemList
			if err := extractStructured(ctx, p.gen, buildPrompt(actionItemsPrompt, transcript), ActionItemSchema, &list); err != nil {
				return nil, err
			}
			return list.Items(), nil
		},
		buildPrompt(actionItemsFallbackPrompt, transcript),
		entities.NewActionItem,
	)
	if err != nil {
		return nil, err
	}
	next.SetActionItems(items)

	decisions, err := extractWithFallback(ctx, p, DecisionSchema.Name,
		func(ctx context.Context) ([]entities.Decision, error) {
			var list entities.DecisionList
			if err := extractStructured(ctx, p.gen, buildPrompt(decisionsPrompt, transcript), DecisionSchema, &list); err != nil {
				return nil, err
			}
			return list.Items(), nil
		},
		buildPrompt(decisionsFallbackPrompt, transcript),
		entities.NewDecision,
	)
	if err != nil {
		return nil, err
	}
	next.SetKeyDecisions(decisions)

	return next, nil
}

// extractWithFallback runs primary and, on any error, a plain-text request
// whose non-empty lines are wrapped into records. The fallback delay follows
// the fallback only. The returned error is non-nil only when ctx is done.
func extractWithFallback[T any](
	ctx context.Context,
	p *Pipeline,
	name string,
	primary func(ctx context.Context) ([]T, error),
	fallbackPrompt string,
	wrap func(line string) T,
) ([]T, error) {
	records, err := primary(ctx)
	if err == nil {
		return records, nil
	}

	log := p.logger.With(jobcontext.Fields(ctx)...)
	log.Warn("Structured extraction failed, falling back to plain text",
		zap.String("schema", name), zap.Error(err))

	records = []T{}
	resp, err := p.gen.Generate(ctx, fallbackPrompt)
	if err != nil {
		log.Error("Fallback extraction failed, using empty list",
			zap.String("schema", name), zap.Error(err))
	} else {
		for _, line := range splitList(resp, "\n") {
			records = append(records, wrap(line))
		}
	}

	if err := p.sleep(ctx, p.fallbackDelay); err != nil {
		return nil, fmt.Errorf("fallback delay for %s: %w", name, err)
	}

	return records, nil
}

// report assembles the Markdown document; it never calls the generator
func (p *Pipeline) report(_ context.Context, state *entities.PipelineState) (*entities.PipelineState, error) {
	next := state.Clone()
	next.SetFinalReport(BuildReport(next))
	return next, nil
}

// splitList splits s on sep, trims every token and drops empty ones
func splitList(s, sep string) []string {
	out := []string{}
	for _, token := range strings.Split(s, sep) {
		if token = strings.TrimSpace(token); token != "" {
			out = append(out, token)
		}
	}
	return out
}

func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
