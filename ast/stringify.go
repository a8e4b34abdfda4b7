package ast

import (
	"bytes"

	"github.com/ogunblade/plox/object"
)

// Stringify evaluates Arg, prints the result into an in-memory buffer
// the same way Print would, and owns a new Str with that buffer's
// contents. A none argument yields Str("None").
type Stringify struct {
	Arg Node
}

func NewStringify(arg Node) *Stringify {
	return &Stringify{Arg: arg}
}

func (s *Stringify) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	res, err := s.Arg.Execute(scope, ctx)
	if err != nil {
		return StepResult{}, err
	}
	var buf bytes.Buffer
	if err := object.PrintHandle(&buf, res.Value, ctx); err != nil {
		return StepResult{}, err
	}
	return value(object.Own(object.Str{Value: buf.String()})), nil
}
