// Package core implements the pattern node graph and the quantified
// matching algorithm that underlies github.com/client9/seqpattern.
package core

import "fmt"

// BuildError is returned for misuse of the pattern builder: applying a
// quantifier or ending() with no pending token, or a count(min, max) with
// min > max.
type BuildError struct {
	ErrorType string // "InvalidBuilderOp"
	Message   string
	Err       error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorType, e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrInvalidBuilderOp constructs the single build-time error kind the
// builder ever reports.
func ErrInvalidBuilderOp(message string) *BuildError {
	return &BuildError{ErrorType: "InvalidBuilderOp", Message: message}
}
