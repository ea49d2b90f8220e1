package schema

import "fmt"

// ValidationError represents a single property that could not be coerced.
type ValidationError struct {
	Key    string // Property name
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed coercion
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("property %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("property %q: %s (got %T)", e.Key, e.Reason, e.Value)
}

// AggregateError represents multiple coercion failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d property errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
