package ast

import "github.com/ogunblade/plox/object"

type compareFunc func(a, b object.Handle, ctx object.Context) (bool, error)

// Comparison evaluates Left and Right and combines their values with a
// comparator from the object package.
type Comparison struct {
	Left, Right Node
	Cmp         compareFunc
	Symbol      string
}

func newComparison(symbol string, left, right Node, cmp compareFunc) *Comparison {
	return &Comparison{Left: left, Right: right, Cmp: cmp, Symbol: symbol}
}

func NewEqual(left, right Node) *Comparison {
	return newComparison("==", left, right, object.Equal)
}

func NewNotEqual(left, right Node) *Comparison {
	return newComparison("!=", left, right, object.NotEqual)
}

func NewLess(left, right Node) *Comparison {
	return newComparison("<", left, right, object.Less)
}

func NewLessOrEqual(left, right Node) *Comparison {
	return newComparison("<=", left, right, object.LessOrEqual)
}

func NewGreater(left, right Node) *Comparison {
	return newComparison(">", left, right, object.Greater)
}

func NewGreaterOrEqual(left, right Node) *Comparison {
	return newComparison(">=", left, right, object.GreaterOrEqual)
}

func (c *Comparison) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	lr, err := c.Left.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	rr, err := c.Right.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	result, err := c.Cmp(lr.Value, rr.Value, ctx)
	if err != nil {
		if _, ok := err.(*RuntimeError); ok {
			return StepResult{}, err
		}
		return StepResult{}, runtimeErrorf("%s", err.Error())
	}
	return value(object.Own(object.Bool{Value: result})), nil
}
