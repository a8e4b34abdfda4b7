package ast

import "github.com/ogunblade/plox/object"

// VariableValue resolves a dotted identifier path:
// the first segment is looked up in scope; each further segment walks
// into the current ClassInstance's field scope.
type VariableValue struct {
	DottedIDs []string
}

func NewVariableValue(dottedIDs ...string) *VariableValue {
	return &VariableValue{DottedIDs: dottedIDs}
}

func (v *VariableValue) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	current := scope
	for i, name := range v.DottedIDs {
		h, ok := current.Get(name)
		if !ok {
			return StepResult{}, runtimeErrorf("Not field %s", name)
		}
		if i == len(v.DottedIDs)-1 {
			return value(h), nil
		}
		inst, ok := h.Instance()
		if !ok {
			return StepResult{}, runtimeErrorf("%s is not an object", name)
		}
		current = inst.Fields
	}
	return none(), nil
}
