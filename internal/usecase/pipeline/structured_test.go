package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "\n  {\"a\":1}  \n", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"other tag", "```JSON5\n{\"a\":1}\n```", `{"a":1}`},
		{"single line", "```json{\"a\":1}```", `{"a":1}`},
		{"fence without tag line break", "```{\"a\":1}\n```", `{"a":1}`},
		{"unterminated", "```json\n{\"a\":1}", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.in))
		})
	}
}

func TestExtractStructuredFencedAndPlainParseIdentically(t *testing.T) {
	payload := `{"action_items":[{"what":"Send report","who":"Sarah","when":"Friday"}]}`

	gen := newFakeGenerator()
	gen.structured[ActionItemSchema.Name] = payload
	var plain entities.ActionItemList
	require.NoError(t, extractStructured(context.Background(), gen, "p", ActionItemSchema, &plain))

	gen.structured[ActionItemSchema.Name] = "```json\n" + payload + "\n```"
	var fenced entities.ActionItemList
	require.NoError(t, extractStructured(context.Background(), gen, "p", ActionItemSchema, &fenced))

	assert.Equal(t, plain, fenced)
	assert.Equal(t, []entities.ActionItem{{What: "Send report", Who: "Sarah", When: "Friday"}}, plain.Items())
}

func TestExtractStructuredEmptyListIsValid(t *testing.T) {
	gen := newFakeGenerator()
	gen.structured[DecisionSchema.Name] = `{"key_decisions": []}`

	var out entities.DecisionList
	require.NoError(t, extractStructured(context.Background(), gen, "p", DecisionSchema, &out))
	assert.NotNil(t, out.KeyDecisions)
	assert.Empty(t, out.KeyDecisions)
}

func TestExtractStructuredBlankOptionalFieldsDefault(t *testing.T) {
	gen := newFakeGenerator()
	gen.structured[ActionItemSchema.Name] = `{"action_items":[{"what":"Send report","who":"","when":"Friday"},{"what":"Book room","who":"John","when":" "}]}`
	gen.structured[DecisionSchema.Name] = `{"key_decisions":[{"decision":"Approve budget","category":""}]}`

	var items entities.ActionItemList
	require.NoError(t, extractStructured(context.Background(), gen, "p", ActionItemSchema, &items))
	assert.Equal(t, []entities.ActionItem{
		{What: "Send report", Who: entities.NotAvailable, When: "Friday"},
		{What: "Book room", Who: "John", When: entities.NotAvailable},
	}, items.Items())

	var decisions entities.DecisionList
	require.NoError(t, extractStructured(context.Background(), gen, "p", DecisionSchema, &decisions))
	assert.Equal(t, []entities.Decision{{Decision: "Approve budget", Category: entities.DefaultCategory}}, decisions.Items())
}

func TestExtractStructuredErrors(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		schemaErr  bool
		parseMatch bool
	}{
		{"not json", "Here are the action items: none", false, true},
		{"missing record field", `{"action_items":[{"what":"Send report","who":"Sarah"}]}`, true, true},
		{"empty record field", `{"action_items":[{"what":"","who":"Sarah","when":"Friday"}]}`, true, true},
		{"missing list key", `{"items":[]}`, true, true},
		{"null record field", `{"action_items":[{"what":"Send report","who":null,"when":"Friday"}]}`, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newFakeGenerator()
			gen.structured[ActionItemSchema.Name] = tt.raw

			var out entities.ActionItemList
			err := extractStructured(context.Background(), gen, "p", ActionItemSchema, &out)
			require.Error(t, err)
			assert.Equal(t, tt.parseMatch, errors.Is(err, entities.ErrParse))
			assert.Equal(t, tt.schemaErr, errors.Is(err, entities.ErrSchemaValidation))

			if tt.schemaErr {
				var sve *entities.SchemaValidationError
				require.ErrorAs(t, err, &sve)
				assert.Equal(t, ActionItemSchema.Name, sve.Schema)
			}
		})
	}
}

func TestExtractStructuredTransportError(t *testing.T) {
	gen := newFakeGenerator()
	transport := errors.New("quota exceeded")
	gen.structErr[ActionItemSchema.Name] = transport

	var out entities.ActionItemList
	err := extractStructured(context.Background(), gen, "p", ActionItemSchema, &out)
	assert.ErrorIs(t, err, transport)
	assert.NotErrorIs(t, err, entities.ErrParse)
}
