package entities

// ExtractedEntities holds the supplementary data pulled out during preprocessing.
// The three lists are always present together.
type ExtractedEntities struct {
	Keywords        []string `json:"keywords"`
	PersonNames     []string `json:"person_names"`
	TimeExpressions []string `json:"time_expressions"`
}

// NewExtractedEntities builds an ExtractedEntities, turning nil lists into empty ones
func NewExtractedEntities(keywords, names, times []string) *ExtractedEntities {
	return &ExtractedEntities{
		Keywords:        nonNil(keywords),
		PersonNames:     nonNil(names),
		TimeExpressions: nonNil(times),
	}
}

func (e *ExtractedEntities) clone() *ExtractedEntities {
	if e == nil {
		return nil
	}
	return NewExtractedEntities(
		append([]string(nil), e.Keywords...),
		append([]string(nil), e.PersonNames...),
		append([]string(nil), e.TimeExpressions...),
	)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
