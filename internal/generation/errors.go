package generation

import "fmt"

// APICallError represents a failed LLM call during generation
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation API call error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation API call error: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
