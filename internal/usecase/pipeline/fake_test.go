package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/johnquangdev/meeting-reporter/pkg/ai"
)

// fakeGenerator answers prompts by recognising their trailing markers
type fakeGenerator struct {
	mu sync.Mutex

	responses  map[string]string
	errors     map[string]error
	structured map[string]string
	structErr  map[string]error

	generateCalls   []string
	structuredCalls []string
}

const (
	keyKeywords  = "KEYWORDS:"
	keyNames     = "PERSON NAMES:"
	keyTimes     = "TIME EXPRESSIONS:"
	keySummary   = "--- SUMMARY ---"
	keyActions   = "--- ACTION ITEMS ---"
	keyDecisions = "--- KEY DECISIONS ---"
)

var promptKeys = []string{keyKeywords, keyNames, keyTimes, keySummary, keyActions, keyDecisions}

func newFakeGenerator() *fakeGenerator {
	return &fakeGenerator{
		responses: map[string]string{
			keyKeywords:  "budget, Q3 report, ",
			keyNames:     "Sarah, John",
			keyTimes:     "Friday",
			keySummary:   "1. Discussed budget.",
			keyActions:   "Send report\n\n  Book room  \n",
			keyDecisions: "Approve budget",
		},
		errors: map[string]error{},
		structured: map[string]string{
			ActionItemSchema.Name: `{"action_items":[{"what":"Send report","who":"Sarah","when":"Friday"}]}`,
			DecisionSchema.Name:   "```json\n{\"key_decisions\":[{\"decision\":\"Approve budget\",\"category\":\"Strategic\"}]}\n```",
		},
		structErr: map[string]error{},
	}
}

func promptKey(prompt string) string {
	trimmed := strings.TrimSpace(prompt)
	for _, k := range promptKeys {
		if strings.HasSuffix(trimmed, k) {
			return k
		}
	}
	return ""
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := promptKey(prompt)
	f.generateCalls = append(f.generateCalls, key)
	if err := f.errors[key]; err != nil {
		return "", err
	}
	return f.responses[key], nil
}

func (f *fakeGenerator) GenerateStructured(_ context.Context, _ string, schema ai.Schema) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.structuredCalls = append(f.structuredCalls, schema.Name)
	if err := f.structErr[schema.Name]; err != nil {
		return "", err
	}
	return f.structured[schema.Name], nil
}

func (f *fakeGenerator) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.generateCalls) + len(f.structuredCalls)
}

func (f *fakeGenerator) callsFor(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, k := range f.generateCalls {
		if k == key {
			n++
		}
	}
	return n
}

// recordSleeps swaps the pipeline sleeper for one that only counts
func recordSleeps(p *Pipeline) *[]time.Duration {
	var slept []time.Duration
	p.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return ctx.Err()
	}
	return &slept
}
