package ast

import "github.com/ogunblade/plox/object"

// MethodCall evaluates Target, requires it to be an Instance, and
// dispatches Name with the evaluated Args on it. If Target does not
// resolve to an Instance, it returns none without error, the same
// leniency as FieldAssignment.
type MethodCall struct {
	Target Node
	Name   string
	Args   []Node
}

func NewMethodCall(target Node, name string, args ...Node) *MethodCall {
	return &MethodCall{Target: target, Name: name, Args: args}
}

func (m *MethodCall) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	tr, err := m.Target.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	inst, ok := tr.Value.Instance()
	if !ok {
		return none(), nil
	}
	args := make([]object.Handle, len(m.Args))
	for i, argNode := range m.Args {
		res, err := argNode.Execute(scope, ctx)
		if err != nil {
			return StepResult{}, err
		}
		args[i] = res.Value
	}
	if !inst.HasMethod(m.Name, len(args)) {
		return StepResult{}, runtimeErrorf("method %s not found", m.Name)
	}
	result, err := inst.Call(m.Name, args, ctx)
	if err != nil {
		return StepResult{}, err
	}
	return value(result), nil
}
