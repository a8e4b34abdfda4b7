package ast

import (
	"io"

	"github.com/ogunblade/plox/object"
)

// Print evaluates each argument in order and writes it to ctx's output,
// space-separated, with a trailing newline.
type Print struct {
	Args []Node
}

func NewPrint(args ...Node) *Print {
	return &Print{Args: args}
}

func (p *Print) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	w := ctx.Output()
	for i, arg := range p.Args {
		res, err := arg.Execute(scope, ctx)
		if err != nil {
			return StepResult{}, err
		}
		if err := object.PrintHandle(w, res.Value, ctx); err != nil {
			return StepResult{}, err
		}
		if i != len(p.Args)-1 {
			if _, err := io.WriteString(w, " "); err != nil {
				return StepResult{}, err
			}
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return StepResult{}, err
	}
	return none(), nil
}
