package entities

// Sentinel values used when a field cannot be determined from the transcript
const (
	NotAvailable    = "N/A"
	DefaultCategory = "General"
)

// ActionItem represents a task extracted from the meeting
type ActionItem struct {
	What string `json:"what"`
	Who  string `json:"who"`
	When string `json:"when"`
}

// NewActionItem creates an action item with unknown owner and deadline
func NewActionItem(what string) ActionItem {
	return ActionItem{
		What: what,
		Who:  NotAvailable,
		When: NotAvailable,
	}
}

// Decision represents a key decision made during the meeting
type Decision struct {
	Decision string `json:"decision"`
	Category string `json:"category"`
}

// NewDecision creates a decision in the General category
func NewDecision(text string) Decision {
	return Decision{
		Decision: text,
		Category: DefaultCategory,
	}
}

// ActionItemRecord is the structured-output form of an action item.
// Pointers separate a missing key (rejected) from an empty value (defaulted).
type ActionItemRecord struct {
	What *string `json:"what" validate:"required,min=1"`
	Who  *string `json:"who" validate:"required"`
	When *string `json:"when" validate:"required"`
}

// ActionItem converts the record, defaulting a blank owner or deadline to N/A
func (r ActionItemRecord) ActionItem() ActionItem {
	return ActionItem{
		What: deref(r.What),
		Who:  orDefault(deref(r.Who), NotAvailable),
		When: orDefault(deref(r.When), NotAvailable),
	}
}

// DecisionRecord is the structured-output form of a decision
type DecisionRecord struct {
	Text     *string `json:"decision" validate:"required,min=1"`
	Category *string `json:"category" validate:"required"`
}

// Decision converts the record, defaulting a blank category to General
func (r DecisionRecord) Decision() Decision {
	return Decision{
		Decision: deref(r.Text),
		Category: orDefault(deref(r.Category), DefaultCategory),
	}
}

// ActionItemList is the structured-output envelope for action items
type ActionItemList struct {
	ActionItems []ActionItemRecord `json:"action_items" validate:"required,dive"`
}

// Items returns the converted action items, never nil
func (l ActionItemList) Items() []ActionItem {
	items := make([]ActionItem, 0, len(l.ActionItems))
	for _, r := range l.ActionItems {
		items = append(items, r.ActionItem())
	}
	return items
}

// DecisionList is the structured-output envelope for key decisions
type DecisionList struct {
	KeyDecisions []DecisionRecord `json:"key_decisions" validate:"required,dive"`
}

// Items returns the converted decisions, never nil
func (l DecisionList) Items() []Decision {
	decisions := make([]Decision, 0, len(l.KeyDecisions))
	for _, r := range l.KeyDecisions {
		decisions = append(decisions, r.Decision())
	}
	return decisions
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDefault(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}
