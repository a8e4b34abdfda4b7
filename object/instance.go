package object

import (
	"fmt"
	"io"
)

// Instance is a mutable instance of a Class: a non-owning reference to
// its Class plus a per-instance Scope holding its fields.
type Instance struct {
	Class  *Class
	Fields *Scope
}

// NewInstance constructs an instance of cls with an empty field scope.
func NewInstance(cls *Class) *Instance {
	return &Instance{Class: cls, Fields: NewScope()}
}

// HasMethod reports whether cls (or an ancestor) defines a method named
// name taking exactly argCount arguments — wrong arity counts as not
// found.
func (in *Instance) HasMethod(name string, argCount int) bool {
	m, ok := in.Class.FindMethod(name)
	return ok && len(m.Params) == argCount
}

// Call dispatches method name on in with the given arguments: a fresh
// scope binds each formal parameter to its argument handle, then binds
// self to a shared handle on the instance, before executing the method
// body.
func (in *Instance) Call(name string, args []Handle, ctx Context) (Handle, error) {
	if !in.HasMethod(name, len(args)) {
		return None(), fmt.Errorf("no method %s", name)
	}
	method, _ := in.Class.FindMethod(name)

	scope := NewScope()
	for i, param := range method.Params {
		scope.Set(param, args[i])
	}
	scope.Set("self", Share(in))

	result, err := method.Body.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	return result.Value, nil
}

// Print prints via __str__/0 if defined; otherwise prints an opaque
// identifier derived from the instance's address.
func (in *Instance) Print(w io.Writer, ctx Context) error {
	if in.HasMethod("__str__", 0) {
		result, err := in.Call("__str__", nil, ctx)
		if err != nil {
			return err
		}
		return PrintHandle(w, result, ctx)
	}
	_, err := fmt.Fprintf(w, "%p", in)
	return err
}
