package ast

import "github.com/ogunblade/plox/object"

// NewInstance evaluates ClassExpr, requires a Class handle, and
// constructs a fresh object.Instance on every Execute call — evaluating
// the same "new" expression twice (inside a method called more than
// once, for example) always produces two distinct instances. If an
// __init__ method of matching arity exists, it is invoked for its side
// effects before the instance handle is returned.
type NewInstance struct {
	ClassExpr Node
	Args      []Node
}

func NewNewInstance(classExpr Node, args ...Node) *NewInstance {
	return &NewInstance{ClassExpr: classExpr, Args: args}
}

func (n *NewInstance) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	cr, err := n.ClassExpr.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	cls, ok := cr.Value.Class()
	if !ok {
		return StepResult{}, runtimeErrorf("cannot instantiate a non-class value")
	}
	inst := object.NewInstance(cls)

	args := make([]object.Handle, len(n.Args))
	for i, argNode := range n.Args {
		res, err := argNode.Execute(scope, ctx)
		if err != nil {
			return StepResult{}, err
		}
		args[i] = res.Value
	}
	if inst.HasMethod("__init__", len(args)) {
		if _, err := inst.Call("__init__", args, ctx); err != nil {
			return StepResult{}, err
		}
	}
	return value(object.Own(inst)), nil
}
