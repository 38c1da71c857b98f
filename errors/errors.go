package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode identifies an application error category
type ErrorCode int

// Error codes
const (
	ErrorCode_HTTP_OK ErrorCode = 200

	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1002
	ErrorCode_NOT_FOUND        ErrorCode = 1003

	ErrorCode_TRANSCRIPT_EMPTY       ErrorCode = 2000
	ErrorCode_TRANSCRIPT_OFF_TOPIC   ErrorCode = 2001
	ErrorCode_TRANSCRIPT_TOO_LARGE   ErrorCode = 2002
	ErrorCode_UNSUPPORTED_FILE_TYPE  ErrorCode = 2003
	ErrorCode_FILE_EXTRACTION_FAILED ErrorCode = 2004

	ErrorCode_REPORT_GENERATION_FAILED ErrorCode = 3000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "HTTP_OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_TRANSCRIPT_EMPTY:         "TRANSCRIPT_EMPTY",
	ErrorCode_TRANSCRIPT_OFF_TOPIC:     "TRANSCRIPT_OFF_TOPIC",
	ErrorCode_TRANSCRIPT_TOO_LARGE:     "TRANSCRIPT_TOO_LARGE",
	ErrorCode_UNSUPPORTED_FILE_TYPE:    "UNSUPPORTED_FILE_TYPE",
	ErrorCode_FILE_EXTRACTION_FAILED:   "FILE_EXTRACTION_FAILED",
	ErrorCode_REPORT_GENERATION_FAILED: "REPORT_GENERATION_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ERROR_CODE_%d", int(c))
}

// AppError là custom error type cho application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// Transcript Errors
func ErrTranscriptEmpty(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_TRANSCRIPT_EMPTY,
		Message:  message,
	}
}

func ErrTranscriptOffTopic(message string) AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_TRANSCRIPT_OFF_TOPIC,
		Message:  message,
	}
}

func ErrTranscriptTooLarge(maxBytes int64) AppError {
	return AppError{
		HTTPCode: http.StatusRequestEntityTooLarge,
		Code:     ErrorCode_TRANSCRIPT_TOO_LARGE,
		Message:  "Transcript file is too large",
	}.WithDetail("max_bytes", fmt.Sprintf("%d", maxBytes))
}

func ErrUnsupportedFileType(filename string) AppError {
	return AppError{
		HTTPCode: http.StatusUnsupportedMediaType,
		Code:     ErrorCode_UNSUPPORTED_FILE_TYPE,
		Message:  "Only .txt and .pdf files are supported",
	}.WithDetail("filename", filename)
}

func ErrFileExtractionFailed(filename string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_FILE_EXTRACTION_FAILED,
		Message:  "Failed to extract text from file",
	}.WithDetail("filename", filename)
}

// Report Errors
func ErrReportGenerationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_REPORT_GENERATION_FAILED,
		Message:  "Failed to generate report",
	}
}
