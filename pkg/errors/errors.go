package errors

import "fmt"

// Error codes
const (
	CodeFetch      = "FETCH_ERROR"
	CodeParse      = "PARSE_ERROR"
	CodeExtraction = "EXTRACTION_ERROR"
	CodeValidation = "VALIDATION_ERROR"
)

type ExtractorError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *ExtractorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExtractorError) Unwrap() error {
	return e.Cause
}

func NewExtractorError(message, code string, statusCode int, context map[string]any) *ExtractorError {
	return &ExtractorError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *ExtractorError) WithCause(cause error) *ExtractorError {
	e.Cause = cause
	return e
}

// FetchError covers network failures, timeouts and non-success responses from
// the upstream directory. It is terminal for the attempt; retrying is a
// caller concern.
type FetchError struct {
	*ExtractorError
	URL        string
	StatusCode int
}

func NewFetchError(message, url string, statusCode int, cause error) *FetchError {
	return &FetchError{
		ExtractorError: &ExtractorError{
			Message:    message,
			Code:       CodeFetch,
			StatusCode: 502,
			Context: map[string]any{
				"url":         url,
				"status_code": statusCode,
			},
			Cause: cause,
		},
		URL:        url,
		StatusCode: statusCode,
	}
}

// ExtractionError wraps any terminal failure of a single member's extraction
// attempt (fetch or parse), keyed by the member identifier.
type ExtractionError struct {
	*ExtractorError
	MemberID int
}

func NewExtractionError(message string, memberID int, cause error) *ExtractionError {
	return &ExtractionError{
		ExtractorError: &ExtractorError{
			Message:    message,
			Code:       CodeExtraction,
			StatusCode: 502,
			Context: map[string]any{
				"member_id": memberID,
			},
			Cause: cause,
		},
		MemberID: memberID,
	}
}

type ValidationError struct {
	*ExtractorError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		ExtractorError: &ExtractorError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

func IsFetchError(err error) bool {
	_, ok := err.(*FetchError)
	return ok
}

func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
