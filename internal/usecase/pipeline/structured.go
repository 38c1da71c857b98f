package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
	"github.com/johnquangdev/meeting-reporter/pkg/ai"
	"github.com/johnquangdev/meeting-reporter/pkg/validator"
)

var recordValidator = validator.New()

// StripCodeFence removes a surrounding markdown code block, with or without
// a language tag, from a model response. Unfenced input is only trimmed.
func StripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	// Drop the language tag on the opening line (```json, ```JSON, ...)
	if idx := strings.IndexByte(content, '\n'); idx != -1 {
		if tag := strings.TrimSpace(content[:idx]); !strings.ContainsAny(tag, "{[") {
			content = content[idx+1:]
		}
	} else {
		content = strings.TrimLeft(content, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	}
	if idx := strings.LastIndex(content, "```"); idx != -1 {
		content = content[:idx]
	}

	return strings.TrimSpace(content)
}

// extractStructured asks gen for output matching schema and decodes it into out.
// Errors match entities.ErrParse; schema mismatches also match entities.ErrSchemaValidation.
func extractStructured(ctx context.Context, gen Generator, prompt string, schema ai.Schema, out interface{}) error {
	raw, err := gen.GenerateStructured(ctx, prompt, schema)
	if err != nil {
		return fmt.Errorf("structured generation %s: %w", schema.Name, err)
	}

	payload := StripCodeFence(raw)
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("%w: schema %s: %v", entities.ErrParse, schema.Name, err)
	}

	if err := recordValidator.Validate(out); err != nil {
		return &entities.SchemaValidationError{Schema: schema.Name, Err: err}
	}

	return nil
}
