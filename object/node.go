package object

// Node is the single operation every AST node implements. It lives in
// the object package, not ast: a Method's body is an executable
// statement, and Method is part of the object model, so this package
// must be able to name the executable-statement type without importing
// the package that implements it.
type Node interface {
	Execute(scope *Scope, ctx Context) (StepResult, error)
}

// StepResult is the explicit, non-exception encoding of nonlocal
// return: Returning distinguishes "this is a value produced by
// ordinary evaluation" from "this is a Return unwinding toward the
// nearest enclosing MethodBody."
type StepResult struct {
	Value     Handle
	Returning bool
}

// Val wraps h as a plain (non-returning) step result.
func Val(h Handle) StepResult {
	return StepResult{Value: h}
}

// ReturningValue wraps h as an in-flight nonlocal return.
func ReturningValue(h Handle) StepResult {
	return StepResult{Value: h, Returning: true}
}
