// Package ast implements one evaluator per AST node kind, each
// executing against a shared scope and output context.
package ast

import "github.com/ogunblade/plox/object"

// Node and StepResult are re-exported from object so that ast call sites
// read naturally (ast.Node, ast.StepResult) without every file importing
// object just for these two names. The interface itself is declared in
// object because object.Method.Body must be able to name it without
// importing ast — see object/node.go.
type Node = object.Node
type StepResult = object.StepResult

func value(h object.Handle) StepResult     { return object.Val(h) }
func returning(h object.Handle) StepResult { return object.ReturningValue(h) }
func none() StepResult                     { return object.Val(object.None()) }
