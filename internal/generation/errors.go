package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation boundary.
var (
	// ErrGenerationFailed is returned when the provider call fails for any
	// general reason (unreachable, no candidates, ...).
	ErrGenerationFailed = errors.New("failed to generate locations")

	// ErrInvalidResponse is returned when the provider response cannot be
	// parsed or is malformed. ResponseFormatError wraps it with the raw
	// provider text.
	ErrInvalidResponse = errors.New("invalid response from text-generation provider")

	// ErrContentBlocked is returned when the provider blocks the content
	// due to safety filters.
	ErrContentBlocked = errors.New("content blocked by provider safety filters")

	// ErrInvalidConfig is returned when the generator configuration is
	// invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// ResponseFormatError reports that the provider's raw text output was not a
// parseable JSON array of location entries. The raw text is kept so failure
// responses can include it for diagnostics.
type ResponseFormatError struct {
	// RawResponse is the provider's unparsed text output.
	RawResponse string

	// Err is the underlying parse or validation error.
	Err error
}

// Error implements the error interface.
func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("failed to parse provider response: %v", e.Err)
}

// Unwrap makes the error match ErrInvalidResponse via errors.Is.
func (e *ResponseFormatError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidResponse
}

// NewResponseFormatError wraps err and the offending raw text into a
// *ResponseFormatError whose chain includes ErrInvalidResponse.
func NewResponseFormatError(raw string, err error) *ResponseFormatError {
	return &ResponseFormatError{
		RawResponse: raw,
		Err:         fmt.Errorf("%w: %v", ErrInvalidResponse, err),
	}
}
