package object

import (
	"fmt"
	"io"
)

// Method carries a name, its ordered formal parameter names (excluding
// self, which Instance.Call binds separately), and its executable body.
type Method struct {
	Name   string
	Params []string
	Body   Node
}

// Class is immutable after construction: a name, an ordered list of
// Methods, and an optional parent Class for single inheritance.
type Class struct {
	Name    string
	Methods []Method
	Parent  *Class
}

// NewClass constructs a Class. Within a single class, methods are
// searched in the order given.
func NewClass(name string, methods []Method, parent *Class) *Class {
	return &Class{Name: name, Methods: methods, Parent: parent}
}

// FindMethod returns the first method named name, searching this
// class's own methods first, then delegating to the parent.
func (c *Class) FindMethod(name string) (*Method, bool) {
	for i := range c.Methods {
		if c.Methods[i].Name == name {
			return &c.Methods[i], true
		}
	}
	if c.Parent != nil {
		return c.Parent.FindMethod(name)
	}
	return nil, false
}

func (c *Class) Print(w io.Writer, _ Context) error {
	_, err := fmt.Fprintf(w, "Class %s", c.Name)
	return err
}
