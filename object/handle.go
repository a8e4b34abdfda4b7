package object

// Handle is a shared, possibly-empty reference to an Object. Go's
// garbage collector already gives every Object shared ownership, so
// Own and Share construct identical handles — they are kept as two
// names purely to document intent at call sites: Own for a value just
// constructed, Share for a reference into something pinned elsewhere.
type Handle struct {
	obj Object
}

// Own wraps a newly constructed object as its sole initial owner.
func Own(obj Object) Handle {
	return Handle{obj: obj}
}

// Share yields a handle to an object that outlives this reference to it
// (for example, a Class pinned by the global scope).
func Share(obj Object) Handle {
	return Handle{obj: obj}
}

// None is the empty handle.
func None() Handle {
	return Handle{}
}

// IsNone reports whether the handle carries no object.
func (h Handle) IsNone() bool {
	return h.obj == nil
}

// Object returns the underlying Object, or nil for the empty handle.
// Dereferencing an empty handle through this accessor is a programming
// error in every caller except the handful of semantic operations
// (IsTrue, Equal, printing) that define behavior over "none" directly.
func (h Handle) Object() Object {
	return h.obj
}

// Number returns the handle's Object as a Number, if it is one.
func (h Handle) Number() (Number, bool) {
	n, ok := h.obj.(Number)
	return n, ok
}

// Str returns the handle's Object as a Str, if it is one.
func (h Handle) Str() (Str, bool) {
	s, ok := h.obj.(Str)
	return s, ok
}

// Bool returns the handle's Object as a Bool, if it is one.
func (h Handle) Bool() (Bool, bool) {
	b, ok := h.obj.(Bool)
	return b, ok
}

// Instance returns the handle's Object as a *Instance, if it is one.
func (h Handle) Instance() (*Instance, bool) {
	in, ok := h.obj.(*Instance)
	return in, ok
}

// Class returns the handle's Object as a *Class, if it is one.
func (h Handle) Class() (*Class, bool) {
	c, ok := h.obj.(*Class)
	return c, ok
}
