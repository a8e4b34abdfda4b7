// Package diag formats errors from the lexer, parser, and evaluator for
// a terminal, and maps them onto process exit codes.
package diag

import (
	"fmt"

	"github.com/ogunblade/plox/ast"
	"github.com/ogunblade/plox/lexer"
	"github.com/ogunblade/plox/parser"
)

// Exit codes follow the sysexits.h convention: 65 for a malformed
// program, 70 for a runtime failure.
const (
	ExitUsage   = 64
	ExitDataErr = 65
	ExitFailure = 70
)

// Format renders err the way it should be printed to stderr.
func Format(err error) string {
	switch e := err.(type) {
	case *lexer.Error:
		return fmt.Sprintf("[line %d] LexerError: %s", e.Line, e.Message)
	case *parser.Error:
		return fmt.Sprintf("[line %d] ParseError: %s", e.Line, e.Message)
	case *ast.RuntimeError:
		return fmt.Sprintf("RuntimeError: %s", e.Message)
	default:
		return err.Error()
	}
}

// ExitCode maps err onto the exit code the CLI should return.
func ExitCode(err error) int {
	switch err.(type) {
	case *lexer.Error, *parser.Error:
		return ExitDataErr
	case *ast.RuntimeError:
		return ExitFailure
	default:
		return ExitFailure
	}
}
