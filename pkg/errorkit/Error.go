package errorkit

import "fmt"

// Error is an error kind that can be declared as a constant.
//
//	const ErrSomething errorkit.Error = "something is an error"
//
// Details are attached with Wrap or F, and the result still matches the kind with errors.Is.
type Error string

func (err Error) Error() string { return string(err) }

// Wrap attaches cause to the error kind.
// Both the kind and the cause are reachable through errors.Is and errors.As.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return &kindError{kind: err, cause: cause}
}

// F attaches a formatted detail to the error kind.
// A %w verb in format keeps the wrapped error reachable as well.
func (err Error) F(format string, a ...any) error {
	return err.Wrap(fmt.Errorf(format, a...))
}

type kindError struct {
	kind  Error
	cause error
}

func (e *kindError) Error() string { return string(e.kind) + ": " + e.cause.Error() }

func (e *kindError) Unwrap() []error { return []error{e.kind, e.cause} }
