package ast

import "github.com/ogunblade/plox/object"

type arithOp func(a, b int64) (int64, error)

// Arithmetic evaluates Left and Right and combines their Number values
// with Op: operands must both be numbers, and Div by
// zero is a RuntimeError. Add is handled separately by the Add type,
// since it also accepts Str operands and ClassInstance __add__.
type Arithmetic struct {
	Left, Right Node
	Op          arithOp
	Symbol      string
}

func newArithmetic(symbol string, left, right Node, op arithOp) *Arithmetic {
	return &Arithmetic{Left: left, Right: right, Op: op, Symbol: symbol}
}

func NewSub(left, right Node) *Arithmetic {
	return newArithmetic("-", left, right, func(a, b int64) (int64, error) { return a - b, nil })
}

func NewMult(left, right Node) *Arithmetic {
	return newArithmetic("*", left, right, func(a, b int64) (int64, error) { return a * b, nil })
}

func NewDiv(left, right Node) *Arithmetic {
	return newArithmetic("/", left, right, func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, runtimeErrorf("denominator is zero")
		}
		return a / b, nil
	})
}

func (a *Arithmetic) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	lr, err := a.Left.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	rr, err := a.Right.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	ln, ok := lr.Value.Number()
	if !ok {
		return StepResult{}, runtimeErrorf("left operand of %s is not a number", a.Symbol)
	}
	rn, ok := rr.Value.Number()
	if !ok {
		return StepResult{}, runtimeErrorf("right operand of %s is not a number", a.Symbol)
	}
	result, err := a.Op(ln.Value, rn.Value)
	if err != nil {
		return StepResult{}, err
	}
	return value(object.Own(object.Number{Value: result})), nil
}

// Add evaluates Left and Right: both Number sums
// numerically, both Str concatenates, and a left-hand ClassInstance
// with a unary __add__ dispatches to it. Anything else fails.
type Add struct {
	Left, Right Node
}

func NewAdd(left, right Node) *Add {
	return &Add{Left: left, Right: right}
}

func (a *Add) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	lr, err := a.Left.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	rr, err := a.Right.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	if ln, ok := lr.Value.Number(); ok {
		if rn, ok := rr.Value.Number(); ok {
			return value(object.Own(object.Number{Value: ln.Value + rn.Value})), nil
		}
	}
	if ls, ok := lr.Value.Str(); ok {
		if rs, ok := rr.Value.Str(); ok {
			return value(object.Own(object.Str{Value: ls.Value + rs.Value})), nil
		}
	}
	if li, ok := lr.Value.Instance(); ok && li.HasMethod("__add__", 1) {
		result, err := li.Call("__add__", []object.Handle{rr.Value}, ctx)
		if err != nil {
			return StepResult{}, err
		}
		return value(result), nil
	}
	return StepResult{}, runtimeErrorf("cannot add operands of these types")
}
