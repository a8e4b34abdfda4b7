package lexer

import (
	"strconv"
	"strings"
)

// Lexer holds the full token buffer produced from a source text and a
// cursor into it.
type Lexer struct {
	tokens []Token
	pos    int
}

// New lexes src in full and returns a Lexer positioned at the first token.
func New(src string) (*Lexer, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	return &Lexer{tokens: tokens}, nil
}

// Current returns the token under the cursor without advancing it.
func (l *Lexer) Current() Token {
	return l.tokens[l.pos]
}

// Advance moves the cursor to the next token and returns it. Advancing
// past Eof is a no-op; Current keeps returning Eof.
func (l *Lexer) Advance() Token {
	if l.pos < len(l.tokens)-1 {
		l.pos++
	}
	return l.tokens[l.pos]
}

// ExpectKind asserts the current token has the given kind.
func (l *Lexer) ExpectKind(k Kind) (Token, error) {
	cur := l.Current()
	if cur.Kind != k {
		return Token{}, newError(cur.Line, "expected %s, got %s", k, cur.Kind)
	}
	return cur, nil
}

// ExpectChar asserts the current token is a Char token with the given value.
func (l *Lexer) ExpectChar(c byte) (Token, error) {
	cur, err := l.ExpectKind(KindChar)
	if err != nil {
		return Token{}, err
	}
	if cur.Char != c {
		return Token{}, newError(cur.Line, "expected char %q, got %q", c, cur.Char)
	}
	return cur, nil
}

// AdvanceExpectKind advances the cursor, then asserts the new current
// token has the given kind.
func (l *Lexer) AdvanceExpectKind(k Kind) (Token, error) {
	l.Advance()
	return l.ExpectKind(k)
}

// AdvanceExpectChar advances the cursor, then asserts the new current
// token is a Char token with the given value.
func (l *Lexer) AdvanceExpectChar(c byte) (Token, error) {
	l.Advance()
	return l.ExpectChar(c)
}

// lex scans the whole source line by line, tracking indentation level
// to emit Indent/Dedent tokens around each line's own tokens.
func lex(src string) ([]Token, error) {
	var tokens []Token
	level := 0

	lines := strings.Split(src, "\n")
	for i, line := range lines {
		lineNo := i + 1
		if isBlankLine(line) {
			continue
		}

		n := leadingSpaces(line)
		if n%2 != 0 {
			return nil, newError(lineNo, "indentation must be a multiple of 2 spaces, got %d", n)
		}
		for level < n {
			tokens = append(tokens, Token{Kind: KindIndent, Line: lineNo})
			level += 2
		}
		for level > n {
			tokens = append(tokens, Token{Kind: KindDedent, Line: lineNo})
			level -= 2
		}

		lineTokens, err := scanLine(line[n:], lineNo)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, lineTokens...)

		if len(tokens) == 0 || tokens[len(tokens)-1].Kind != KindNewline {
			tokens = append(tokens, Token{Kind: KindNewline, Line: lineNo})
		}
	}

	lastLine := len(lines)
	for level > 0 {
		tokens = append(tokens, Token{Kind: KindDedent, Line: lastLine})
		level -= 2
	}
	tokens = append(tokens, Token{Kind: KindEof, Line: lastLine})
	return tokens, nil
}

// isBlankLine reports whether line has only spaces, or spaces followed
// by a '#' comment: such a line carries no tokens and must not perturb
// indentation tracking.
func isBlankLine(line string) bool {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			continue
		case '#':
			return true
		default:
			return false
		}
	}
	return true
}

func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

func scanLine(s string, lineNo int) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ':
			i++
		case c == '#':
			return tokens, nil
		case isDigit(c):
			start := i
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			val, err := strconv.Atoi(s[start:i])
			if err != nil {
				return nil, newError(lineNo, "malformed number literal %q", s[start:i])
			}
			tokens = append(tokens, Token{Kind: KindNumber, IntValue: val, Line: lineNo})
		case c == '"' || c == '\'':
			tok, next, err := scanString(s, i, lineNo)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
		case isLetter(c) || c == '_':
			start := i
			for i < len(s) && (isLetter(s[i]) || isDigit(s[i]) || s[i] == '_') {
				i++
			}
			word := s[start:i]
			if kind, ok := keywords[word]; ok {
				tokens = append(tokens, Token{Kind: kind, Line: lineNo})
			} else {
				tokens = append(tokens, Token{Kind: KindId, StrValue: word, Line: lineNo})
			}
		case c == '=' || c == '!' || c == '<' || c == '>':
			if i+1 < len(s) && s[i+1] == '=' {
				tokens = append(tokens, Token{Kind: twoCharOpKind(c), Line: lineNo})
				i += 2
			} else {
				tokens = append(tokens, Token{Kind: KindChar, Char: c, Line: lineNo})
				i++
			}
		default:
			tokens = append(tokens, Token{Kind: KindChar, Char: c, Line: lineNo})
			i++
		}
	}
	return tokens, nil
}

func twoCharOpKind(c byte) Kind {
	switch c {
	case '=':
		return KindEq
	case '!':
		return KindNotEq
	case '<':
		return KindLessOrEq
	default:
		return KindGreaterOrEq
	}
}

// scanString consumes a quoted string literal starting at s[i] (s[i] is
// the opening delimiter) and returns the decoded token and the index past
// the closing delimiter.
func scanString(s string, i int, lineNo int) (Token, int, error) {
	delim := s[i]
	i++
	var sb strings.Builder
	for i < len(s) && s[i] != delim {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\'':
				sb.WriteByte('\'')
			case '"':
				sb.WriteByte('"')
			default:
				// unrecognized escape: consumed, no character produced
			}
			i += 2
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	if i >= len(s) || s[i] != delim {
		return Token{}, i, newError(lineNo, "unterminated string literal")
	}
	i++
	return Token{Kind: KindString, StrValue: sb.String(), Line: lineNo}, i, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
