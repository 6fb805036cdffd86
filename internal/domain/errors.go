package domain

import "errors"

// Domain errors
var (
	ErrInvalidFile       = errors.New("invalid file")
	ErrNotPDF            = errors.New("only PDF files are allowed")
	ErrFileTooLarge      = errors.New("file too large")
	ErrNoPages           = errors.New("document has no pages")
	ErrOCRUnavailable    = errors.New("ocr is not available")
	ErrRenderUnsupported = errors.New("page rendering is not supported by this reader")
	ErrDocumentClosed    = errors.New("document is closed")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// Unwrap exposes the domain sentinel behind the validation failure, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
