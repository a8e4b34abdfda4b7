package ast

import "github.com/ogunblade/plox/object"

// NumericConst owns a Number value object; Execute returns a share-handle
// to it.
type NumericConst struct {
	handle object.Handle
}

func NewNumericConst(v int64) *NumericConst {
	return &NumericConst{handle: object.Own(object.Number{Value: v})}
}

func (n *NumericConst) Execute(*object.Scope, object.Context) (StepResult, error) {
	return value(n.handle), nil
}

// StringConst owns a Str value object.
type StringConst struct {
	handle object.Handle
}

func NewStringConst(v string) *StringConst {
	return &StringConst{handle: object.Own(object.Str{Value: v})}
}

func (n *StringConst) Execute(*object.Scope, object.Context) (StepResult, error) {
	return value(n.handle), nil
}

// BoolConst owns a Bool value object.
type BoolConst struct {
	handle object.Handle
}

func NewBoolConst(v bool) *BoolConst {
	return &BoolConst{handle: object.Own(object.Bool{Value: v})}
}

func (n *BoolConst) Execute(*object.Scope, object.Context) (StepResult, error) {
	return value(n.handle), nil
}

// NoneNode evaluates to the empty handle.
type NoneNode struct{}

func (NoneNode) Execute(*object.Scope, object.Context) (StepResult, error) {
	return none(), nil
}
