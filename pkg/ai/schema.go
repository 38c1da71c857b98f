package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Field is a string property of every record in a structured response
type Field struct {
	Name        string
	Description string
}

// Schema describes a structured response of the shape
// {"<ListKey>": [{"<field>": "...", ...}, ...]}
type Schema struct {
	Name    string
	ListKey string
	Fields  []Field
}

// FieldNames returns the record property names in declaration order
func (s Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// JSONSchema renders the schema as a JSON Schema document
func (s Schema) JSONSchema() map[string]interface{} {
	props := make(map[string]interface{}, len(s.Fields))
	for _, f := range s.Fields {
		props[f.Name] = map[string]interface{}{
			"type":        "string",
			"description": f.Description,
		}
	}

	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			s.ListKey: map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type":       "object",
					"properties": props,
					"required":   s.FieldNames(),
				},
			},
		},
		"required": []string{s.ListKey},
	}
}

// Instruction describes the expected JSON for providers without native schema support
func (s Schema) Instruction() string {
	example := make(map[string]string, len(s.Fields))
	var b strings.Builder
	for _, f := range s.Fields {
		example[f.Name] = "..."
		fmt.Fprintf(&b, "- %s: %s\n", f.Name, f.Description)
	}
	shape, _ := json.Marshal(map[string]interface{}{s.ListKey: []map[string]string{example}})
	doc, _ := json.Marshal(s.JSONSchema())

	return fmt.Sprintf("Respond ONLY with a JSON object of this shape: %s\nRecord fields:\n%sJSON Schema: %s", shape, b.String(), doc)
}
