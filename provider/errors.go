package provider

import "fmt"

// ModelUnavailableError means the model produced no usable response
// within the configured retry budget. It is absorbed by the fallback
// path and never aborts a run.
type ModelUnavailableError struct {
	Attempts int
	Last     error
}

func (e *ModelUnavailableError) Error() string {
	if e.Last != nil {
		return fmt.Sprintf("model unavailable after %d attempts: %v", e.Attempts, e.Last)
	}
	return fmt.Sprintf("model unavailable after %d attempts", e.Attempts)
}

func (e *ModelUnavailableError) Unwrap() error { return e.Last }
