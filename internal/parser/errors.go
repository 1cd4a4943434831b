package parser

import "fmt"

// UpstreamError represents a failed call to the external resume parser:
// the endpoint was unreachable, answered with a non-success status, or
// returned a body that does not match the expected shape.
type UpstreamError struct {
	URL        string
	StatusCode int
	Message    string
	Cause      error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parser error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("parser error for %s: %s", e.URL, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
