package interp

import (
	"testing"

	"github.com/ogunblade/plox/lexer"
	"github.com/ogunblade/plox/object"
)

func Test_Run(t *testing.T) {
	tests := []struct {
		name   string
		source string
		stdOut string
	}{
		{"indentation and print", "x = 1\nif x:\n  print x\n", "1\n"},
		{"string concat and print-none", "s = 'hi'\nprint s + '!', None\n", "hi! None\n"},
		{"class with __str__", "class P:\n  def __str__(self):\n    return 'P'\np = P()\nprint p\n", "P\n"},
		{"inheritance and override", "class A:\n  def f(self):\n    return 1\nclass B(A):\n  def f(self):\n    return 2\nprint B().f(), A().f()\n", "2 1\n"},
		{"short-circuit or", "print 1 or 0, 0 or 2, 0 or 0\n", "True True False\n"},

		{"field assignment and dotted read-back", `class Box:
  def set(self, other, v):
    other.value = v
a = Box()
b = Box()
a.set(b, 5)
print b.value
`, "5\n"},

		{"parent field initializer plus child calling parent method", `class Base:
  def __init__(self):
    self.label = 'base'
  def greet(self):
    return self.label
  def name(self):
    return self.label
class Derived(Base):
  def greet(self):
    return 'hi ' + self.name()
d = Derived()
print d.greet()
`, "hi base\n"},

		{"division by zero nested two calls deep", `class Inner:
  def fail(self):
    return 1 / 0
class Outer:
  def run(self, inner):
    return inner.fail()
o = Outer()
i = Inner()
print o.run(i)
`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := object.NewBufferContext()
			err := Run(tt.source, ctx)
			if tt.name == "division by zero nested two calls deep" {
				if err == nil {
					t.Fatalf("expected a runtime error")
				}
				if ctx.String() != tt.stdOut {
					t.Fatalf("stdOut: got %q, expected no partial output %q", ctx.String(), tt.stdOut)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ctx.String() != tt.stdOut {
				t.Fatalf("stdOut: got %q, expected %q", ctx.String(), tt.stdOut)
			}
		})
	}
}

func TestDivisionByZeroStopsBeforePrint(t *testing.T) {
	ctx := object.NewBufferContext()
	err := Run("print 1 / 0\n", ctx)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	if ctx.String() != "" {
		t.Fatalf("expected no partial output, got %q", ctx.String())
	}
}

func TestOddIndentationIsRejected(t *testing.T) {
	_, err := lexer.New("if True:\n   print 1\n")
	if err == nil {
		t.Fatalf("expected a lexer error for odd indentation")
	}
	if _, ok := err.(*lexer.Error); !ok {
		t.Fatalf("expected *lexer.Error, got %T", err)
	}
}

func TestCommentOnlyLineAtNonzeroIndentationDoesNotPerturbBlocks(t *testing.T) {
	src := "if True:\n  # a comment indented as if it were code\n  print 1\n"
	ctx := object.NewBufferContext()
	if err := Run(src, ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.String() != "1\n" {
		t.Fatalf("got %q", ctx.String())
	}
}
