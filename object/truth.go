package object

// IsTrue implements truthiness: Number is true iff
// nonzero, Str iff non-empty, Bool iff its value, and both the empty
// handle and any other object kind are false.
func IsTrue(h Handle) bool {
	if h.IsNone() {
		return false
	}
	switch v := h.Object().(type) {
	case Number:
		return v.Value != 0
	case Str:
		return v.Value != ""
	case Bool:
		return v.Value
	default:
		return false
	}
}
