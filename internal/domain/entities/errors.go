package entities

import "errors"

// Domain errors
var (
	// Input errors
	ErrEmptyInput = errors.New("empty transcript")

	// Structured output errors
	ErrParse            = errors.New("structured output could not be parsed")
	ErrSchemaValidation = errors.New("structured output does not match schema")

	// Pipeline errors
	ErrPipelineStalled = errors.New("pipeline made no progress within iteration cap")
)

// SchemaValidationError reports which record failed schema validation.
// It matches both ErrSchemaValidation and ErrParse via errors.Is.
type SchemaValidationError struct {
	Schema string
	Err    error
}

func (e *SchemaValidationError) Error() string {
	return "schema " + e.Schema + ": " + ErrSchemaValidation.Error() + ": " + e.Err.Error()
}

func (e *SchemaValidationError) Unwrap() []error {
	return []error{ErrSchemaValidation, ErrParse, e.Err}
}

// ErrReportNotFound is returned when a run finishes without a final report
var ErrReportNotFound = errors.New("final report not found in state")
