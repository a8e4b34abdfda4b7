package ast

import "fmt"

// RuntimeError is raised during evaluation: undefined
// names, attribute access on a non-instance, method-not-found, type
// mismatches, division by zero, and incompatible comparisons.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func runtimeErrorf(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}
