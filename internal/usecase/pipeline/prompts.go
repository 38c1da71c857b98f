package pipeline

import (
	"fmt"

	"github.com/johnquangdev/meeting-reporter/pkg/ai"
)

const keywordsPrompt = "Identify and list the 5-10 most important keywords or key phrases from the following meeting transcript segment, separated by commas. Focus on nouns and significant concepts, do not include numbers: \n\nTEXT: %s\n\nKEYWORDS:"

const personNamesPrompt = "Identify and list all distinct proper person names mentioned in the following text, separated by commas. Only include names of people. \n\nTEXT: %s\n\nPERSON NAMES:"

const timeExpressionsPrompt = "Identify and list all distinct time-related expressions (e.g., 'next week', 'by Friday', 'on June 15th', 'in two days') from the following text, separated by commas. \n\nTEXT: %s\n\nTIME EXPRESSIONS:"

const summaryPrompt = `You are an expert meeting summarizer. Your task is to create a concise, high-level summary of the provided meeting transcript.
Focus on the main topics discussed, key outcomes, and important points relevant to the overall meeting purpose.
**Format the summary as a clean, numbered list of 3-5 concise bullet points, each starting directly with a number (e.g., "1. Main topic discussed..."). Do NOT use asterisks or any other leading characters.**
--- MEETING TRANSCRIPT ---
%s
--- SUMMARY ---
`

const actionItemsPrompt = `Analyze the following meeting transcript and identify all explicit or implied action items.
For each action item, extract: 'what' (concise description), 'who' (person responsible, use 'N/A' if not identified), and 'when' (deadline/timeline, use 'N/A' if not identified).

--- MEETING TRANSCRIPT ---
%s
`

const actionItemsFallbackPrompt = `Analyze the following meeting transcript and identify all explicit or implied action items.
List each action item on a new line.

--- MEETING TRANSCRIPT ---
%s
--- ACTION ITEMS ---
`

const decisionsPrompt = `Analyze the following meeting transcript and identify all explicit key decisions made.
For each decision, extract: 'decision' (the main decision text) and 'category' (e.g., 'General', 'Strategic', 'Operational', 'Technical').

--- MEETING TRANSCRIPT ---
%s
`

const decisionsFallbackPrompt = `Analyze the following meeting transcript and identify all explicit key decisions made.
List each decision on a new line.

--- MEETING TRANSCRIPT ---
%s
--- KEY DECISIONS ---
`

// ActionItemSchema is the structured shape requested for action items
var ActionItemSchema = ai.Schema{
	Name:    "action_items",
	ListKey: "action_items",
	Fields: []ai.Field{
		{Name: "what", Description: "A concise summary of the action to be done."},
		{Name: "who", Description: "The person responsible for the action. Use 'N/A' if not identified."},
		{Name: "when", Description: "The deadline or timeline for the action. Use 'N/A' if not identified."},
	},
}

// DecisionSchema is the structured shape requested for key decisions
var DecisionSchema = ai.Schema{
	Name:    "key_decisions",
	ListKey: "key_decisions",
	Fields: []ai.Field{
		{Name: "decision", Description: "The key decision made."},
		{Name: "category", Description: "The category of the decision (e.g., 'General', 'Strategic', 'Operational', 'Technical')."},
	},
}

func buildPrompt(template, transcript string) string {
	return fmt.Sprintf(template, transcript)
}
