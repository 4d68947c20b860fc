// Package domain implements coverage ranking, test-case synthesis, and the
// code-smell scanner.
package domain

import "fmt"

// NotFoundError reports a missing input path.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found at %s", e.Path)
}

// MalformedReportError reports a coverage document that could not be parsed
// as well-formed XML.
type MalformedReportError struct {
	Path string
	Err  error
}

func (e *MalformedReportError) Error() string {
	return fmt.Sprintf("malformed coverage report %s: %v", e.Path, e.Err)
}

func (e *MalformedReportError) Unwrap() error {
	return e.Err
}

// InvalidSpecificationError reports a parameter or partition specification
// that could not be parsed as the expected structured format. No partial
// case list accompanies it.
type InvalidSpecificationError struct {
	Err error
}

func (e *InvalidSpecificationError) Error() string {
	return fmt.Sprintf("invalid specification: %v", e.Err)
}

func (e *InvalidSpecificationError) Unwrap() error {
	return e.Err
}
