package ast

import "github.com/ogunblade/plox/object"

// Or evaluates Left; if it is truthy, short-circuits to Bool(true).
// Otherwise evaluates Right and returns Bool(is_true(Right)). The
// result is always a Bool regardless of the operands' types.
type Or struct {
	Left, Right Node
}

func NewOr(left, right Node) *Or {
	return &Or{Left: left, Right: right}
}

func (o *Or) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	lr, err := o.Left.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	if object.IsTrue(lr.Value) {
		return value(object.Own(object.Bool{Value: true})), nil
	}
	rr, err := o.Right.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	return value(object.Own(object.Bool{Value: object.IsTrue(rr.Value)})), nil
}

// And evaluates Left; if it is falsy, short-circuits to Bool(false).
// Otherwise evaluates Right and returns Bool(is_true(Right)).
type And struct {
	Left, Right Node
}

func NewAnd(left, right Node) *And {
	return &And{Left: left, Right: right}
}

func (a *And) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	lr, err := a.Left.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	if !object.IsTrue(lr.Value) {
		return value(object.Own(object.Bool{Value: false})), nil
	}
	rr, err := a.Right.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	return value(object.Own(object.Bool{Value: object.IsTrue(rr.Value)})), nil
}

// Not evaluates Operand and returns its boolean negation.
type Not struct {
	Operand Node
}

func NewNot(operand Node) *Not {
	return &Not{Operand: operand}
}

func (n *Not) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	res, err := n.Operand.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	return value(object.Own(object.Bool{Value: !object.IsTrue(res.Value)})), nil
}
