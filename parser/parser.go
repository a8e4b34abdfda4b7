// Package parser builds an AST from a lexer's token stream. It is the
// external collaborator referenced by the evaluator's contract: it
// produces ast.Node values conforming to the node kinds' execute
// signature.
package parser

import (
	"fmt"
	"strconv"

	"github.com/ogunblade/plox/ast"
	"github.com/ogunblade/plox/lexer"
	"github.com/ogunblade/plox/object"
)

// Error is raised for malformed token sequences — a parser-level sibling
// of lexer.Error, carrying the same [line N] message shape.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return "[line " + strconv.Itoa(e.Line) + "] " + e.Message
}

func newError(line int, format string, args ...interface{}) *Error {
	return &Error{Line: line, Message: fmt.Sprintf(format, args...)}
}

/*
Grammar:

	program     => statement* Eof
	block       => Indent statement+ Dedent
	statement   => classDef | ifStmt | printStmt | returnStmt | simpleStmt Newline
	classDef    => "class" Id ( "(" Id ")" )? ":" Newline Indent methodDef* Dedent
	methodDef   => "def" Id "(" Id ( "," Id )* ")" ":" Newline block
	ifStmt      => "if" expression ":" Newline block ( "else" ":" Newline block )?
	printStmt   => "print" expression ( "," expression )* Newline
	returnStmt  => "return" expression? Newline
	simpleStmt  => dottedId "=" expression | expression
	expression  => or
	or          => and ( "or" and )*
	and         => notExpr ( "and" notExpr )*
	notExpr     => "not" notExpr | comparison
	comparison  => term ( ( "==" | "!=" | "<" | "<=" | ">" | ">=" ) term )*
	term        => factor ( ( "+" | "-" ) factor )*
	factor      => call ( ( "*" | "/" ) call )*
	call        => Id ( "." Id ( "(" args ")" )? | "(" args ")" )* | primary
	args        => expression ( "," expression )*
	primary     => Number | String | "True" | "False" | "None" | Id | "(" expression ")"
*/

// Parser consumes a lexer's token stream and produces ast.Node values.
// classes records every class parsed so far by name, so a later
// classDecl's optional parent clause can be resolved structurally at
// parse time rather than through a runtime scope lookup — programs
// define a class before using it as a parent, the same order the
// interpreter would require the name to already be bound at runtime.
type Parser struct {
	lex     *lexer.Lexer
	classes map[string]*object.Class
}

// New returns a Parser positioned at the first token of lex.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex, classes: make(map[string]*object.Class)}
}

// Parse parses the whole token stream into a Compound of top-level
// statements.
func (p *Parser) Parse() (ast.Node, error) {
	var stmts []ast.Node
	for p.cur().Kind != lexer.KindEof {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return ast.NewCompound(stmts...), nil
}

func (p *Parser) cur() lexer.Token {
	return p.lex.Current()
}

func (p *Parser) advance() lexer.Token {
	return p.lex.Advance()
}

func (p *Parser) check(k lexer.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) match(k lexer.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(k lexer.Kind) (lexer.Token, error) {
	if !p.check(k) {
		return lexer.Token{}, newError(p.cur().Line, "expected %s, got %s", k, p.cur().Kind)
	}
	t := p.cur()
	p.advance()
	return t, nil
}

func (p *Parser) expectChar(c byte) error {
	if p.cur().Kind != lexer.KindChar || p.cur().Char != c {
		return newError(p.cur().Line, "expected %q", c)
	}
	p.advance()
	return nil
}

func (p *Parser) checkChar(c byte) bool {
	return p.cur().Kind == lexer.KindChar && p.cur().Char == c
}

func (p *Parser) matchChar(c byte) bool {
	if p.checkChar(c) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) block() (ast.Node, error) {
	if _, err := p.expect(lexer.KindIndent); err != nil {
		return nil, err
	}
	var stmts []ast.Node
	for !p.check(lexer.KindDedent) && !p.check(lexer.KindEof) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(lexer.KindDedent); err != nil {
		return nil, err
	}
	return ast.NewCompound(stmts...), nil
}

func (p *Parser) statement() (ast.Node, error) {
	switch {
	case p.check(lexer.KindClass):
		return p.classDef()
	case p.check(lexer.KindIf):
		return p.ifStatement()
	case p.check(lexer.KindPrint):
		return p.printStatement()
	case p.check(lexer.KindReturn):
		return p.returnStatement()
	default:
		return p.simpleStatement()
	}
}

func (p *Parser) classDef() (ast.Node, error) {
	p.advance() // "class"
	name, err := p.expect(lexer.KindId)
	if err != nil {
		return nil, err
	}

	var parent *object.Class
	if p.matchChar('(') {
		parentName, err := p.expect(lexer.KindId)
		if err != nil {
			return nil, err
		}
		parent, err = p.resolveClass(parentName)
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindNewline); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindIndent); err != nil {
		return nil, err
	}

	var methods []object.Method
	for !p.check(lexer.KindDedent) && !p.check(lexer.KindEof) {
		m, err := p.methodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if _, err := p.expect(lexer.KindDedent); err != nil {
		return nil, err
	}

	cls := object.NewClass(name.StrValue, methods, parent)
	p.classes[name.StrValue] = cls
	return ast.NewClassDefinition(name.StrValue, cls), nil
}

func (p *Parser) resolveClass(name lexer.Token) (*object.Class, error) {
	cls, ok := p.classes[name.StrValue]
	if !ok {
		return nil, newError(name.Line, "unknown class %s", name.StrValue)
	}
	return cls, nil
}

func (p *Parser) methodDef() (object.Method, error) {
	if _, err := p.expect(lexer.KindDef); err != nil {
		return object.Method{}, err
	}
	name, err := p.expect(lexer.KindId)
	if err != nil {
		return object.Method{}, err
	}
	if err := p.expectChar('('); err != nil {
		return object.Method{}, err
	}
	// self is bound automatically by Instance.Call, so it is consumed
	// here but never added to Params.
	if _, err := p.expect(lexer.KindId); err != nil {
		return object.Method{}, err
	}
	var params []string
	for p.matchChar(',') {
		param, err := p.expect(lexer.KindId)
		if err != nil {
			return object.Method{}, err
		}
		params = append(params, param.StrValue)
	}
	if err := p.expectChar(')'); err != nil {
		return object.Method{}, err
	}
	if err := p.expectChar(':'); err != nil {
		return object.Method{}, err
	}
	if _, err := p.expect(lexer.KindNewline); err != nil {
		return object.Method{}, err
	}
	body, err := p.block()
	if err != nil {
		return object.Method{}, err
	}
	return object.Method{Name: name.StrValue, Params: params, Body: ast.NewMethodBody(body)}, nil
}

func (p *Parser) ifStatement() (ast.Node, error) {
	p.advance() // "if"
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindNewline); err != nil {
		return nil, err
	}
	thenBlock, err := p.block()
	if err != nil {
		return nil, err
	}
	var elseBlock ast.Node
	if p.match(lexer.KindElse) {
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.KindNewline); err != nil {
			return nil, err
		}
		elseBlock, err = p.block()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfElse(cond, thenBlock, elseBlock), nil
}

func (p *Parser) printStatement() (ast.Node, error) {
	p.advance() // "print"
	args := []ast.Node{}
	arg, err := p.expression()
	if err != nil {
		return nil, err
	}
	args = append(args, arg)
	for p.matchChar(',') {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(lexer.KindNewline); err != nil {
		return nil, err
	}
	return ast.NewPrint(args...), nil
}

func (p *Parser) returnStatement() (ast.Node, error) {
	p.advance() // "return"
	if p.check(lexer.KindNewline) {
		p.advance()
		return ast.NewReturn(nil), nil
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindNewline); err != nil {
		return nil, err
	}
	return ast.NewReturn(expr), nil
}

func (p *Parser) simpleStatement() (ast.Node, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.matchChar('=') {
		rhs, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.KindNewline); err != nil {
			return nil, err
		}
		return assignmentFor(expr, rhs)
	}
	if _, err := p.expect(lexer.KindNewline); err != nil {
		return nil, err
	}
	return expr, nil
}

// assignmentFor turns a parsed assignment target expr into an
// Assignment or FieldAssignment node.
func assignmentFor(target, rhs ast.Node) (ast.Node, error) {
	switch t := target.(type) {
	case *ast.VariableValue:
		if len(t.DottedIDs) == 1 {
			return ast.NewAssignment(t.DottedIDs[0], rhs), nil
		}
		objectPath := ast.NewVariableValue(t.DottedIDs[:len(t.DottedIDs)-1]...)
		field := t.DottedIDs[len(t.DottedIDs)-1]
		return ast.NewFieldAssignment(objectPath, field, rhs), nil
	default:
		return nil, newError(0, "invalid assignment target")
	}
}

func (p *Parser) expression() (ast.Node, error) {
	return p.or()
}

func (p *Parser) or() (ast.Node, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.KindOr) {
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = ast.NewOr(left, right)
	}
	return left, nil
}

func (p *Parser) and() (ast.Node, error) {
	left, err := p.notExpr()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.KindAnd) {
		right, err := p.notExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewAnd(left, right)
	}
	return left, nil
}

func (p *Parser) notExpr() (ast.Node, error) {
	if p.match(lexer.KindNot) {
		operand, err := p.notExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewNot(operand), nil
	}
	return p.comparison()
}

func (p *Parser) comparison() (ast.Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(lexer.KindEq):
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = ast.NewEqual(left, right)
		case p.match(lexer.KindNotEq):
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = ast.NewNotEqual(left, right)
		case p.match(lexer.KindLessOrEq):
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = ast.NewLessOrEqual(left, right)
		case p.match(lexer.KindGreaterOrEq):
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = ast.NewGreaterOrEqual(left, right)
		case p.checkChar('<'):
			p.advance()
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = ast.NewLess(left, right)
		case p.checkChar('>'):
			p.advance()
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			left = ast.NewGreater(left, right)
		default:
			return left, nil
		}
	}
}

func (p *Parser) term() (ast.Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.checkChar('+'):
			p.advance()
			right, err := p.factor()
			if err != nil {
				return nil, err
			}
			left = ast.NewAdd(left, right)
		case p.checkChar('-'):
			p.advance()
			right, err := p.factor()
			if err != nil {
				return nil, err
			}
			left = ast.NewSub(left, right)
		default:
			return left, nil
		}
	}
}

func (p *Parser) factor() (ast.Node, error) {
	left, err := p.call()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.checkChar('*'):
			p.advance()
			right, err := p.call()
			if err != nil {
				return nil, err
			}
			left = ast.NewMult(left, right)
		case p.checkChar('/'):
			p.advance()
			right, err := p.call()
			if err != nil {
				return nil, err
			}
			left = ast.NewDiv(left, right)
		default:
			return left, nil
		}
	}
}

// call parses an identifier followed by a postfix loop of "." and
// "(...)" operators, so chains like "B().f()" — instantiate, then call
// a method on the result — parse correctly: "(" right after a bare
// identifier instantiates it; "." followed by "(" calls a method on
// whatever has been parsed so far; "." alone extends a dotted field
// path. Looping (rather than handling at most one trailing "(...)")
// is what lets the chain continue past the first call.
func (p *Parser) call() (ast.Node, error) {
	if !p.check(lexer.KindId) {
		return p.primary()
	}

	pending := []string{p.cur().StrValue}
	p.advance()
	var expr ast.Node

	for {
		switch {
		case expr == nil && p.checkChar('('):
			args, err := p.args()
			if err != nil {
				return nil, err
			}
			if len(pending) == 1 {
				expr = ast.NewNewInstance(ast.NewVariableValue(pending[0]), args...)
			} else {
				target := ast.NewVariableValue(pending[:len(pending)-1]...)
				expr = ast.NewMethodCall(target, pending[len(pending)-1], args...)
			}
			pending = nil
		case p.checkChar('.'):
			p.advance()
			id, err := p.expect(lexer.KindId)
			if err != nil {
				return nil, err
			}
			if p.checkChar('(') {
				args, err := p.args()
				if err != nil {
					return nil, err
				}
				target := expr
				if target == nil {
					target = ast.NewVariableValue(pending...)
				}
				expr = ast.NewMethodCall(target, id.StrValue, args...)
				pending = nil
			} else if expr != nil {
				expr = ast.NewFieldAccess(expr, id.StrValue)
			} else {
				pending = append(pending, id.StrValue)
			}
		default:
			if expr != nil {
				return expr, nil
			}
			return ast.NewVariableValue(pending...), nil
		}
	}
}

func (p *Parser) args() ([]ast.Node, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var args []ast.Node
	if !p.checkChar(')') {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.matchChar(',') {
				break
			}
		}
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) primary() (ast.Node, error) {
	switch {
	case p.check(lexer.KindNumber):
		v := p.cur().IntValue
		p.advance()
		return ast.NewNumericConst(int64(v)), nil
	case p.check(lexer.KindString):
		v := p.cur().StrValue
		p.advance()
		return ast.NewStringConst(v), nil
	case p.check(lexer.KindTrue):
		p.advance()
		return ast.NewBoolConst(true), nil
	case p.check(lexer.KindFalse):
		p.advance()
		return ast.NewBoolConst(false), nil
	case p.check(lexer.KindNone):
		p.advance()
		return ast.NoneNode{}, nil
	case p.checkChar('('):
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, newError(p.cur().Line, "expected expression, got %s", p.cur().Kind)
	}
}
