package ast

import "github.com/ogunblade/plox/object"

// Compound executes each child Statement in order, stopping early and
// propagating the first Returning result it sees so a nonlocal return
// unwinds through it. If no child returns, Compound yields none —
// intermediate statement results are discarded.
type Compound struct {
	Statements []Node
}

func NewCompound(statements ...Node) *Compound {
	return &Compound{Statements: statements}
}

func (c *Compound) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	for _, stmt := range c.Statements {
		res, err := stmt.Execute(scope, ctx)
		if err != nil {
			return StepResult{}, err
		}
		if res.Returning {
			return res, nil
		}
	}
	return none(), nil
}
