package ast

import "github.com/ogunblade/plox/object"

// IfElse evaluates Cond; if truthy, executes Then, otherwise Else (which
// may be nil, meaning no else-branch). A Returning result from whichever
// branch runs propagates unchanged.
type IfElse struct {
	Cond       Node
	Then, Else Node
}

func NewIfElse(cond, then, els Node) *IfElse {
	return &IfElse{Cond: cond, Then: then, Else: els}
}

func (i *IfElse) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	cr, err := i.Cond.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	if object.IsTrue(cr.Value) {
		return i.Then.Execute(scope, ctx)
	}
	if i.Else == nil {
		return none(), nil
	}
	return i.Else.Execute(scope, ctx)
}
