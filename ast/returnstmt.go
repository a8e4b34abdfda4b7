package ast

import "github.com/ogunblade/plox/object"

// Return evaluates Expr and produces a nonlocal exit carrying the
// resulting handle: it unwinds through surrounding
// Compound/IfElse nodes until absorbed by the nearest enclosing
// MethodBody, expressed here as a Returning StepResult rather than a
// thrown value.
type Return struct {
	Expr Node
}

func NewReturn(expr Node) *Return {
	return &Return{Expr: expr}
}

func (r *Return) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	if r.Expr == nil {
		return returning(object.None()), nil
	}
	res, err := r.Expr.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	return returning(res.Value), nil
}

// MethodBody executes Body and absorbs any nonlocal return, yielding
// its payload as the body's final value. Natural completion (no
// Return encountered) yields none.
type MethodBody struct {
	Body Node
}

func NewMethodBody(body Node) *MethodBody {
	return &MethodBody{Body: body}
}

func (m *MethodBody) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	res, err := m.Body.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	if res.Returning {
		return value(res.Value), nil
	}
	return none(), nil
}
