package extraction

import (
	"errors"
	"fmt"
)

// ErrNilInput is returned when extraction is requested without any input source
var ErrNilInput = errors.New("input must not be nil")

// ErrNilVocabulary is returned when an Extractor is constructed without a vocabulary
var ErrNilVocabulary = errors.New("vocabulary must not be nil")

// PreconditionError represents a caller contract violation
type PreconditionError struct {
	Message string
	Cause   error
}

func (e *PreconditionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("precondition violated: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("precondition violated: %s", e.Message)
}

func (e *PreconditionError) Unwrap() error {
	return e.Cause
}

// ReadError represents a failure reading input text
type ReadError struct {
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("read error: %s", e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
