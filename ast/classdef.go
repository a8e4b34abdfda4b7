package ast

import "github.com/ogunblade/plox/object"

// ClassDefinition binds Name in scope to a share-handle on Class and
// returns that handle. The Class itself is built by the parser once
// all its methods are known; this node only performs the binding.
type ClassDefinition struct {
	Name  string
	Class *object.Class
}

func NewClassDefinition(name string, cls *object.Class) *ClassDefinition {
	return &ClassDefinition{Name: name, Class: cls}
}

func (c *ClassDefinition) Execute(scope *object.Scope, ctx object.Context) (StepResult, error) {
	h := object.Share(c.Class)
	scope.Set(c.Name, h)
	return value(h), nil
}
