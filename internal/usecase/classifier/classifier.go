package classifier

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// RejectionMessage is shown instead of a report when the text is off topic
const RejectionMessage = "The provided text does not appear to be meeting-related content. Please provide a meeting transcript, notes, or agenda."

// DefaultMinLength is the trimmed length below which text is rejected without a model call
const DefaultMinLength = 50

const fewShotPrompt = `You are an expert text classifier. Your task is to determine if the given text is a meeting transcript, meeting notes, an agenda, or any other content directly related to a business or academic meeting. Respond with ONLY 'YES' if it is, and 'NO' if it is not. Provide no other text or explanation.

Text: John: Let's discuss Q3 budget. Sarah: I'll send the report. David: Action item: Sarah to send report by Friday. Is this meeting-related content? (YES/NO)
YES

Text: The quick brown fox jumps over the lazy dog. Is this meeting-related content? (YES/NO)
NO

Text: Meeting Agenda:
1. Welcome
2. Review past action items
3. New business
4. AOB
5. Close. Is this meeting-related content? (YES/NO)
YES

Text: Hey, just checking in. Are we still on for dinner tonight? Is this meeting-related content? (YES/NO)
NO

Text: Minutes: Project Alpha Status - Green. Next Steps: Report due 10/10. Is this meeting-related content? (YES/NO)
YES

Text: %s
Is this meeting-related content? (YES/NO)`

// TextGenerator is the single call the classifier needs
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Classifier decides whether text is meeting-related
type Classifier interface {
	IsMeetingContent(ctx context.Context, text string) bool
}

type classifier struct {
	gen       TextGenerator
	minLength int
	logger    *zap.Logger
}

// New creates a Classifier; minLength <= 0 selects DefaultMinLength
func New(gen TextGenerator, minLength int, logger *zap.Logger) Classifier {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &classifier{gen: gen, minLength: minLength, logger: logger}
}

// IsMeetingContent returns true only when the model answers exactly YES.
// Errors and unexpected answers reject the text.
func (c *classifier) IsMeetingContent(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < c.minLength {
		c.logger.Info("Classification: text too short or empty", zap.Int("length", len(text)))
		return false
	}

	resp, err := c.gen.Generate(ctx, strings.Replace(fewShotPrompt, "%s", text, 1))
	if err != nil {
		c.logger.Warn("Classification call failed, rejecting text", zap.Error(err))
		return false
	}

	switch answer := strings.ToUpper(strings.TrimSpace(resp)); answer {
	case "YES":
		return true
	case "NO":
		c.logger.Info("Classification: text is not meeting-related")
		return false
	default:
		c.logger.Warn("Classification: unexpected answer, rejecting text", zap.String("answer", answer))
		return false
	}
}
