package object

import (
	"strings"
	"testing"
)

func TestIsTrue(t *testing.T) {
	tests := []struct {
		name string
		h    Handle
		want bool
	}{
		{"zero number", Own(Number{Value: 0}), false},
		{"nonzero number", Own(Number{Value: 7}), true},
		{"empty string", Own(Str{Value: ""}), false},
		{"nonempty string", Own(Str{Value: "x"}), true},
		{"false bool", Own(Bool{Value: false}), false},
		{"true bool", Own(Bool{Value: true}), true},
		{"none", None(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTrue(tt.h); got != tt.want {
				t.Errorf("IsTrue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrintHandle(t *testing.T) {
	tests := []struct {
		name string
		h    Handle
		want string
	}{
		{"number", Own(Number{Value: 42}), "42"},
		{"string", Own(Str{Value: "hi"}), "hi"},
		{"true", Own(Bool{Value: true}), "True"},
		{"false", Own(Bool{Value: false}), "False"},
		{"none", None(), "None"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := PrintHandle(&sb, tt.h, NewBufferContext()); err != nil {
				t.Fatalf("PrintHandle() error = %v", err)
			}
			if sb.String() != tt.want {
				t.Errorf("PrintHandle() = %q, want %q", sb.String(), tt.want)
			}
		})
	}
}

func TestClassPrint(t *testing.T) {
	cls := NewClass("Point", nil, nil)
	var sb strings.Builder
	if err := cls.Print(&sb, NewBufferContext()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if sb.String() != "Class Point" {
		t.Errorf("Print() = %q, want %q", sb.String(), "Class Point")
	}
}

// constNode is a minimal object.Node stub for exercising Class/Instance
// method dispatch without depending on the ast package.
type constNode struct {
	result StepResult
}

func (c constNode) Execute(*Scope, Context) (StepResult, error) {
	return c.result, nil
}

func TestInstanceCallAndMethodResolution(t *testing.T) {
	parent := NewClass("Animal", []Method{
		{Name: "speak", Params: nil, Body: constNode{result: Val(Own(Str{Value: "..."}))}},
	}, nil)
	child := NewClass("Dog", []Method{
		{Name: "speak", Params: nil, Body: constNode{result: Val(Own(Str{Value: "Woof"}))}},
	}, parent)

	dog := NewInstance(child)
	result, err := dog.Call("speak", nil, NewBufferContext())
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	s, ok := result.Str()
	if !ok || s.Value != "Woof" {
		t.Fatalf("Call() = %v, want Woof (child method should shadow parent)", result)
	}

	cat := NewInstance(parent)
	result, err = cat.Call("speak", nil, NewBufferContext())
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	s, ok = result.Str()
	if !ok || s.Value != "..." {
		t.Fatalf("Call() = %v, want ... (inherited method)", result)
	}
}

func TestInstanceCallWrongArityIsNotFound(t *testing.T) {
	cls := NewClass("C", []Method{
		{Name: "f", Params: []string{"x"}, Body: constNode{result: Val(None())}},
	}, nil)
	in := NewInstance(cls)
	if _, err := in.Call("f", nil, NewBufferContext()); err == nil {
		t.Fatal("expected an error calling f with wrong arity")
	}
}

func TestInstancePrintViaStr(t *testing.T) {
	cls := NewClass("P", []Method{
		{Name: "__str__", Params: nil, Body: constNode{result: Val(Own(Str{Value: "P"}))}},
	}, nil)
	in := NewInstance(cls)
	var sb strings.Builder
	if err := in.Print(&sb, NewBufferContext()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if sb.String() != "P" {
		t.Errorf("Print() = %q, want %q", sb.String(), "P")
	}
}

func TestInstancePrintOpaqueWithoutStr(t *testing.T) {
	cls := NewClass("Q", nil, nil)
	in := NewInstance(cls)
	var sb strings.Builder
	if err := in.Print(&sb, NewBufferContext()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if sb.String() == "" || strings.Contains(sb.String(), " ") {
		t.Errorf("Print() = %q, want a single opaque token", sb.String())
	}
}
