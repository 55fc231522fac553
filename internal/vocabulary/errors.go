package vocabulary

import "fmt"

// LoadError represents a failure to read or parse a vocabulary source
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vocabulary load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("vocabulary load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
