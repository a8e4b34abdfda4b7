package object

import "io"

// PrintHandle prints h to w: the empty handle prints as "None",
// matching what a print or stringify expression shows for a none
// value; anything else delegates to the object's own Print.
func PrintHandle(w io.Writer, h Handle, ctx Context) error {
	if h.IsNone() {
		_, err := io.WriteString(w, "None")
		return err
	}
	return h.Object().Print(w, ctx)
}
