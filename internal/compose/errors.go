package compose

import "fmt"

// ValidationError reports that the model's output failed schema
// validation, naming the stage and (when known) the offending field.
// It triggers the fallback path and never aborts a run.
type ValidationError struct {
	Stage  string // extract, decode, validate
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid model output (%s, field %q): %s", e.Stage, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid model output (%s): %s", e.Stage, e.Reason)
}
