package ast

import "github.com/ogunblade/plox/object"

// FieldAccess reads Field off whatever Target evaluates to. Unlike
// VariableValue, Target need not be a chain of scope-rooted
// identifiers — it can be any expression, including the result of a
// call or instantiation (e.g. the "x" in "B().x"). If Target does not
// resolve to an Instance, it returns none without error, the same
// leniency as FieldAssignment and MethodCall.
type FieldAccess struct {
	Target Node
	Field  string
}

func NewFieldAccess(target Node, field string) *FieldAccess {
	return &FieldAccess{Target: target, Field: field}
}

func (f *FieldAccess) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	tr, err := f.Target.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	inst, ok := tr.Value.Instance()
	if !ok {
		return none(), nil
	}
	h, ok := inst.Fields.Get(f.Field)
	if !ok {
		return none(), nil
	}
	return value(h), nil
}
