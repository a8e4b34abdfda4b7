// Package interp wires the lexer, parser, and evaluator into a single
// entry point for running plox source against a Context.
package interp

import (
	"io"
	"os"

	"github.com/ogunblade/plox/lexer"
	"github.com/ogunblade/plox/object"
	"github.com/ogunblade/plox/parser"
)

// Run lexes, parses, and executes src against ctx, returning whatever
// error surfaced first: a *lexer.Error, a *parser.Error, or a
// *ast.RuntimeError.
func Run(src string, ctx object.Context) error {
	lx, err := lexer.New(src)
	if err != nil {
		return err
	}
	prog, err := parser.New(lx).Parse()
	if err != nil {
		return err
	}
	_, err = prog.Execute(object.NewScope(), ctx)
	return err
}

// RunString runs src against a live Context wrapping w: an embedder
// hands in a sink and gets back only the error, if any; the root
// node's result value is discarded.
func RunString(src string, w io.Writer) error {
	return Run(src, object.NewStreamContext(w))
}

// RunFile reads path and runs it against os.Stdout.
func RunFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return RunString(string(src), os.Stdout)
}
