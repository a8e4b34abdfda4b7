package lexer

import (
	"testing"
)

func tok(k Kind) Token { return Token{Kind: k} }

func TestLex(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []Kind
	}{
		{"number", "42", []Kind{KindNumber, KindNewline, KindEof}},
		{"identifier", "foo", []Kind{KindId, KindNewline, KindEof}},
		{
			"keywords",
			"class return if else def print and or not None True False",
			[]Kind{
				KindClass, KindReturn, KindIf, KindElse, KindDef, KindPrint,
				KindAnd, KindOr, KindNot, KindNone, KindTrue, KindFalse,
				KindNewline, KindEof,
			},
		},
		{"two-char operators", "== != <= >=", []Kind{KindEq, KindNotEq, KindLessOrEq, KindGreaterOrEq, KindNewline, KindEof}},
		{"single-char operators", "= < > !", []Kind{KindChar, KindChar, KindChar, KindChar, KindNewline, KindEof}},
		{"string literal", `"hi"`, []Kind{KindString, KindNewline, KindEof}},
		{"comment only line is blank", "  # a comment", []Kind{KindEof}},
		{"trailing comment", "x = 1 # set x", []Kind{KindId, KindChar, KindNumber, KindNewline, KindEof}},
		{
			"indent and dedent",
			"if x:\n  print x\nprint 1",
			[]Kind{
				KindIf, KindId, KindChar, KindNewline,
				KindIndent, KindPrint, KindId, KindNewline,
				KindDedent, KindPrint, KindNumber, KindNewline,
				KindEof,
			},
		},
		{
			"blank line does not affect indentation",
			"if x:\n  print 1\n\n  print 2",
			[]Kind{
				KindIf, KindId, KindChar, KindNewline,
				KindIndent, KindPrint, KindNumber, KindNewline,
				KindPrint, KindNumber, KindNewline,
				KindDedent, KindEof,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, err := New(tt.source)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			var got []Kind
			for {
				cur := lx.Current()
				got = append(got, cur.Kind)
				if cur.Kind == KindEof {
					break
				}
				lx.Advance()
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("token %d: got %s, want %s (full: got %v, want %v)", i, got[i], tt.want[i], got, tt.want)
				}
			}
		})
	}
}

func TestLexStringEscapes(t *testing.T) {
	lx, err := New(`print 'a\nb\tc\'d\"e\qf'`)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	lx.Advance() // past 'print'
	str, err := lx.ExpectKind(KindString)
	if err != nil {
		t.Fatalf("ExpectKind() error = %v", err)
	}
	want := "a\nb\tc'd\"ef"
	if str.StrValue != want {
		t.Fatalf("got %q, want %q", str.StrValue, want)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := New(`print "unterminated`)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestLexOddIndentationRejected(t *testing.T) {
	_, err := New("if x:\n   print 1")
	if err == nil {
		t.Fatal("expected an error for odd indentation")
	}
}

func TestLexDedentsToZeroAtEof(t *testing.T) {
	lx, err := New("if x:\n  if y:\n    print 1")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	var indents, dedents int
	for {
		cur := lx.Current()
		if cur.Kind == KindIndent {
			indents++
		}
		if cur.Kind == KindDedent {
			dedents++
		}
		if cur.Kind == KindEof {
			break
		}
		lx.Advance()
	}
	if indents != dedents {
		t.Fatalf("unbalanced indent/dedent: %d indents, %d dedents", indents, dedents)
	}
}

func TestTokenEqual(t *testing.T) {
	if !(Token{Kind: KindNumber, IntValue: 3}).Equal(Token{Kind: KindNumber, IntValue: 3}) {
		t.Fatal("expected equal numbers to be equal")
	}
	if (Token{Kind: KindNumber, IntValue: 3}).Equal(Token{Kind: KindNumber, IntValue: 4}) {
		t.Fatal("expected different numbers to be unequal")
	}
	if !tok(KindPrint).Equal(tok(KindPrint)) {
		t.Fatal("expected equal keyword tokens to be equal")
	}
}
