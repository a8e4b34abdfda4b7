package ast

import "github.com/ogunblade/plox/object"

// Assignment evaluates rhs, stores it into scope under var, and returns
// it
type Assignment struct {
	Var string
	Rhs Node
}

func NewAssignment(v string, rhs Node) *Assignment {
	return &Assignment{Var: v, Rhs: rhs}
}

func (a *Assignment) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	res, err := a.Rhs.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	scope.Set(a.Var, res.Value)
	return value(res.Value), nil
}

// FieldAssignment resolves ObjectPath via VariableValue semantics and,
// if it names an Instance, writes Rhs's value into that instance's
// field scope under Field. If the resolved value is not an Instance,
// it returns none without error.
type FieldAssignment struct {
	ObjectPath *VariableValue
	Field      string
	Rhs        Node
}

func NewFieldAssignment(objectPath *VariableValue, field string, rhs Node) *FieldAssignment {
	return &FieldAssignment{ObjectPath: objectPath, Field: field, Rhs: rhs}
}

func (f *FieldAssignment) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	target, err := f.ObjectPath.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	inst, ok := target.Value.Instance()
	if !ok {
		return none(), nil
	}
	res, err := f.Rhs.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	inst.Fields.Set(f.Field, res.Value)
	return value(res.Value), nil
}
