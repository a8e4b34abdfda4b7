package object

import (
	"fmt"
	"io"
)

// Object is any entity inhabiting the interpreted program's value
// universe: it knows how to print itself.
type Object interface {
	Print(w io.Writer, ctx Context) error
}

// Number wraps a signed integer. Prints as decimal digits.
type Number struct {
	Value int64
}

func (n Number) Print(w io.Writer, _ Context) error {
	_, err := fmt.Fprintf(w, "%d", n.Value)
	return err
}

// Str wraps a string. Prints verbatim, with no quoting.
type Str struct {
	Value string
}

func (s Str) Print(w io.Writer, _ Context) error {
	_, err := io.WriteString(w, s.Value)
	return err
}

// Bool wraps a boolean. Prints as the literal True or False.
type Bool struct {
	Value bool
}

func (b Bool) Print(w io.Writer, _ Context) error {
	if b.Value {
		_, err := io.WriteString(w, "True")
		return err
	}
	_, err := io.WriteString(w, "False")
	return err
}
